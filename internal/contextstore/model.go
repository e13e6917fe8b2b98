package contextstore

// RecordType tags a stored record by its origin.
type RecordType string

const (
	// RecordTypeTranscript marks text produced by the transcription service.
	RecordTypeTranscript RecordType = "transcript"

	// RecordTypeAnalysis marks text produced by the generative model.
	RecordTypeAnalysis RecordType = "analysis"
)

// Record is a stored unit of text. Records are immutable once written; the
// store is append-only from this system's perspective.
type Record struct {
	ID        string            `json:"id"`
	Type      RecordType        `json:"type"`
	Content   string            `json:"content"`
	Timestamp int64             `json:"timestamp"`
	Metadata  map[string]string `json:"metadata"`
}

// QueryResult is one ranked match from a similarity search.
type QueryResult struct {
	ID         string            `json:"id"`
	Type       RecordType        `json:"type"`
	Content    string            `json:"content"`
	Similarity float32           `json:"similarity"`
	Metadata   map[string]string `json:"metadata"`
}
