// Package profile turns uploaded prospect images (LinkedIn screenshots and
// similar) into sales-relevant analyses via the generative vision model.
package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/hotbound-ai/hotbound/internal/contextstore"
	"github.com/hotbound-ai/hotbound/internal/gemini"
)

// extractionPrompt asks the model for sales-relevant facts pulled from one
// image, as a JSON array with per-item justification and scores.
const extractionPrompt = `I'm a salesperson looking for relevant information on my clients and ` +
	`prospects so I can connect with them and close more deals. Extract the relevant information ` +
	`from this image and return it as a JSON array of objects with this shape:

[
  {
    "id": "...",
    "information": "...",
    "justification": "...",
    "confidence_score": "...",
    "relevance_score": "..."
  }
]

For each piece of information, justify why it will help me connect with this prospect. ` +
	`Be brief and succinct, and make sure the output is valid JSON.`

// personaPrompt asks the model to develop the prospect persona a voice agent
// will play on a simulated cold call.
const personaPrompt = `Develop the prospect persona I will cold call as a salesperson, based on ` +
	`the relevant information extracted from this image. The persona acts as this person on a ` +
	`sales call: their professional experience, skills, education, and volunteer experience ` +
	`determine how they raise objections, concur with conversation points, and how confident or ` +
	`unsure they feel about a deal. The persona is the prospect, never the salesperson. ` +
	`Be brief and succinct.`

// combinedAnalysisPrompt produces one summary across all submitted images.
const combinedAnalysisPrompt = `Analyze these profile screenshots and provide a summary of the ` +
	`person's professional background, skills, and potential pain points that an enterprise ` +
	`sales tool could address.`

// Responder is the vision slice of the generative model adapter.
type Responder interface {
	GenerateVision(ctx context.Context, prompt string, images []gemini.ImagePart) (string, error)
}

// RecordWriter persists successful analyses for later context retrieval.
type RecordWriter interface {
	Write(ctx context.Context, content string, typ contextstore.RecordType, metadata map[string]string) (string, error)
}

type Service struct {
	responder     Responder
	store         RecordWriter
	vendorTimeout time.Duration
}

func NewService(responder Responder, store RecordWriter, vendorTimeout time.Duration) *Service {
	return &Service{
		responder:     responder,
		store:         store,
		vendorTimeout: vendorTimeout,
	}
}

// AnalyzeBatch processes each uploaded image independently and returns exactly
// one result per input. A bad extension or a failed vendor call produces a
// per-file error entry; it never aborts the rest of the batch.
func (s *Service) AnalyzeBatch(ctx context.Context, images []UploadedImage) []ImageResult {
	results := make([]ImageResult, 0, len(images))

	for _, img := range images {
		if !AllowedImageFile(img.Filename) {
			results = append(results, ImageResult{Filename: img.Filename, Error: "file type not allowed"})
			continue
		}

		result, err := s.analyzeOne(ctx, img)
		if err != nil {
			slog.Error("analyzing image", "filename", img.Filename, "error", err)
			results = append(results, ImageResult{Filename: img.Filename, Error: "image analysis failed"})
			continue
		}
		results = append(results, result)
	}

	return results
}

func (s *Service) analyzeOne(ctx context.Context, img UploadedImage) (ImageResult, error) {
	part := gemini.ImagePart{Format: imageFormat(img.Filename), Data: img.Data}

	genCtx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	analysis, err := s.responder.GenerateVision(genCtx, extractionPrompt, []gemini.ImagePart{part})
	cancel()
	if err != nil {
		return ImageResult{}, err
	}

	genCtx, cancel = context.WithTimeout(ctx, s.vendorTimeout)
	persona, err := s.responder.GenerateVision(genCtx, personaPrompt, []gemini.ImagePart{part})
	cancel()
	if err != nil {
		return ImageResult{}, err
	}

	s.persist(ctx, analysis, img.Filename, "prospect_analysis")
	s.persist(ctx, persona, img.Filename, "persona")

	return ImageResult{
		Filename:         img.Filename,
		ProspectAnalysis: analysis,
		Persona:          persona,
	}, nil
}

// AnalyzeProfile runs one combined generation over all images.
func (s *Service) AnalyzeProfile(ctx context.Context, images []UploadedImage) (string, error) {
	parts := make([]gemini.ImagePart, len(images))
	for i, img := range images {
		parts[i] = gemini.ImagePart{Format: imageFormat(img.Filename), Data: img.Data}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	defer cancel()

	analysis, err := s.responder.GenerateVision(genCtx, combinedAnalysisPrompt, parts)
	if err != nil {
		return "", err
	}

	s.persist(ctx, analysis, "", "profile_analysis")
	return analysis, nil
}

// persist writes an analysis record. Persistence failure never blocks the
// response; it is logged and counted.
func (s *Service) persist(ctx context.Context, content, filename, kind string) {
	metadata := map[string]string{"kind": kind}
	if filename != "" {
		metadata["filename"] = filename
	}
	if _, err := s.store.Write(ctx, content, contextstore.RecordTypeAnalysis, metadata); err != nil {
		slog.Error("persisting analysis record", "kind", kind, "filename", filename, "error", err)
	}
}
