package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotbound-ai/hotbound/internal/contextstore"
	"github.com/hotbound-ai/hotbound/internal/gemini"
)

type visionCall struct {
	prompt string
	images []gemini.ImagePart
}

type mockResponder struct {
	calls   []visionCall
	replies []string
	err     error
}

func (m *mockResponder) GenerateVision(_ context.Context, prompt string, images []gemini.ImagePart) (string, error) {
	m.calls = append(m.calls, visionCall{prompt: prompt, images: images})
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) > 0 {
		reply := m.replies[0]
		m.replies = m.replies[1:]
		return reply, nil
	}
	return "generated", nil
}

type mockWriter struct {
	records []contextstore.Record
	err     error
}

func (m *mockWriter) Write(_ context.Context, content string, typ contextstore.RecordType, metadata map[string]string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.records = append(m.records, contextstore.Record{Type: typ, Content: content, Metadata: metadata})
	return "id", nil
}

func newServiceForTest(responder *mockResponder, writer *mockWriter) *Service {
	return NewService(responder, writer, time.Minute)
}

func TestAnalyzeBatch_OneResultPerInput(t *testing.T) {
	responder := &mockResponder{}
	svc := newServiceForTest(responder, &mockWriter{})

	images := []UploadedImage{
		{Filename: "a.png", Data: []byte("png-a")},
		{Filename: "b.pdf", Data: []byte("not-an-image")},
		{Filename: "c.jpg", Data: []byte("jpg-c")},
		{Filename: "d.exe", Data: []byte("nope")},
	}

	results := svc.AnalyzeBatch(context.Background(), images)

	require.Len(t, results, len(images))

	// Valid files carry both analysis fields and no error.
	for _, i := range []int{0, 2} {
		assert.Equal(t, images[i].Filename, results[i].Filename)
		assert.NotEmpty(t, results[i].ProspectAnalysis)
		assert.NotEmpty(t, results[i].Persona)
		assert.Empty(t, results[i].Error)
	}

	// Rejected files carry an error and nothing else.
	for _, i := range []int{1, 3} {
		assert.Equal(t, images[i].Filename, results[i].Filename)
		assert.Equal(t, "file type not allowed", results[i].Error)
		assert.Empty(t, results[i].ProspectAnalysis)
		assert.Empty(t, results[i].Persona)
	}
}

func TestAnalyzeBatch_TwoGenerationsPerValidImage(t *testing.T) {
	responder := &mockResponder{replies: []string{"facts", "persona"}}
	svc := newServiceForTest(responder, &mockWriter{})

	results := svc.AnalyzeBatch(context.Background(), []UploadedImage{
		{Filename: "a.png", Data: []byte("png-a")},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "facts", results[0].ProspectAnalysis)
	assert.Equal(t, "persona", results[0].Persona)

	require.Len(t, responder.calls, 2)
	assert.Equal(t, extractionPrompt, responder.calls[0].prompt)
	assert.Equal(t, personaPrompt, responder.calls[1].prompt)
	for _, call := range responder.calls {
		require.Len(t, call.images, 1)
		assert.Equal(t, "png", call.images[0].Format)
		assert.Equal(t, []byte("png-a"), call.images[0].Data)
	}
}

func TestAnalyzeBatch_VendorFailureIsPerFile(t *testing.T) {
	responder := &mockResponder{err: errors.New("model unavailable")}
	svc := newServiceForTest(responder, &mockWriter{})

	results := svc.AnalyzeBatch(context.Background(), []UploadedImage{
		{Filename: "a.png", Data: []byte("x")},
		{Filename: "b.jpeg", Data: []byte("y")},
	})

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "image analysis failed", r.Error)
		assert.NotContains(t, r.Error, "model unavailable")
	}
}

func TestAnalyzeBatch_PersistsBothAnalyses(t *testing.T) {
	writer := &mockWriter{}
	svc := newServiceForTest(&mockResponder{replies: []string{"facts", "persona"}}, writer)

	svc.AnalyzeBatch(context.Background(), []UploadedImage{
		{Filename: "a.png", Data: []byte("x")},
	})

	require.Len(t, writer.records, 2)
	assert.Equal(t, contextstore.RecordTypeAnalysis, writer.records[0].Type)
	assert.Equal(t, "facts", writer.records[0].Content)
	assert.Equal(t, "prospect_analysis", writer.records[0].Metadata["kind"])
	assert.Equal(t, "a.png", writer.records[0].Metadata["filename"])

	assert.Equal(t, "persona", writer.records[1].Content)
	assert.Equal(t, "persona", writer.records[1].Metadata["kind"])
}

func TestAnalyzeBatch_PersistenceFailureNonFatal(t *testing.T) {
	writer := &mockWriter{err: errors.New("disk full")}
	svc := newServiceForTest(&mockResponder{}, writer)

	results := svc.AnalyzeBatch(context.Background(), []UploadedImage{
		{Filename: "a.png", Data: []byte("x")},
	})

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	assert.NotEmpty(t, results[0].ProspectAnalysis)
}

func TestAnalyzeProfile_CombinesAllImages(t *testing.T) {
	responder := &mockResponder{replies: []string{"summary"}}
	writer := &mockWriter{}
	svc := newServiceForTest(responder, writer)

	analysis, err := svc.AnalyzeProfile(context.Background(), []UploadedImage{
		{Filename: "a.png", Data: []byte("x")},
		{Filename: "b.jpg", Data: []byte("y")},
	})

	require.NoError(t, err)
	assert.Equal(t, "summary", analysis)

	require.Len(t, responder.calls, 1)
	require.Len(t, responder.calls[0].images, 2)
	assert.Equal(t, "png", responder.calls[0].images[0].Format)
	assert.Equal(t, "jpeg", responder.calls[0].images[1].Format)

	require.Len(t, writer.records, 1)
	assert.Equal(t, "profile_analysis", writer.records[0].Metadata["kind"])
}

func TestAnalyzeProfile_VendorFailure(t *testing.T) {
	svc := newServiceForTest(&mockResponder{err: errors.New("quota")}, &mockWriter{})

	_, err := svc.AnalyzeProfile(context.Background(), []UploadedImage{
		{Filename: "a.png", Data: []byte("x")},
	})
	require.Error(t, err)
}
