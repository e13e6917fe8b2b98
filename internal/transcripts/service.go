// Package transcripts converts uploaded call recordings into text and feeds
// them into the prospect context store.
package transcripts

import (
	"context"
	"log/slog"
	"time"

	"github.com/hotbound-ai/hotbound/internal/contextstore"
)

// Transcriber is the speech-to-text slice of the vendor adapter.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

// RecordWriter persists transcripts for later context retrieval.
type RecordWriter interface {
	Write(ctx context.Context, content string, typ contextstore.RecordType, metadata map[string]string) (string, error)
}

type Service struct {
	transcriber   Transcriber
	store         RecordWriter
	vendorTimeout time.Duration
}

func NewService(transcriber Transcriber, store RecordWriter, vendorTimeout time.Duration) *Service {
	return &Service{
		transcriber:   transcriber,
		store:         store,
		vendorTimeout: vendorTimeout,
	}
}

// Transcribe sends the audio to the speech-to-text vendor and persists the
// resulting transcript. Persistence failure is logged but never fails the
// request; the caller already holds the transcript.
func (s *Service) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	vendorCtx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	defer cancel()

	transcript, err := s.transcriber.Transcribe(vendorCtx, audio, contentTypeFor(filename))
	if err != nil {
		return "", err
	}

	metadata := map[string]string{"filename": filename}
	if _, err := s.store.Write(ctx, transcript, contextstore.RecordTypeTranscript, metadata); err != nil {
		slog.Error("persisting transcript record", "filename", filename, "error", err)
	}

	return transcript, nil
}
