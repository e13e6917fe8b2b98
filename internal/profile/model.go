package profile

// UploadedImage is one image extracted from a multipart upload.
type UploadedImage struct {
	Filename string
	Data     []byte
}

// ImageResult is the per-file outcome of a batch upload. A failed file carries
// Error and nothing else; a successful one carries both analysis fields.
type ImageResult struct {
	Filename         string `json:"filename"`
	ProspectAnalysis string `json:"prospect_analysis,omitempty"`
	Persona          string `json:"persona,omitempty"`
	Error            string `json:"error,omitempty"`
}

// AnalyzeResponse is the body returned by the combined profile analysis
// endpoint.
type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}
