// Package conversation orchestrates one simulated sales-call turn: context
// lookup, voice derivation, prompt construction, generation, persistence, and
// synthesis, strictly in that order, with no automatic retries.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hotbound-ai/hotbound/internal/contextstore"
	"github.com/hotbound-ai/hotbound/internal/metrics"
)

var (
	// ErrGeneration marks a failed generation call. Fatal to the turn;
	// synthesis is never attempted after it.
	ErrGeneration = errors.New("generating prospect reply failed")

	// ErrSynthesis marks a failed voice-synthesis call, reported distinctly
	// from generation failures.
	ErrSynthesis = errors.New("synthesizing prospect reply failed")
)

// Responder generates text for a prompt.
type Responder interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Synthesizer converts text plus voice parameters into an audio byte stream.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string, speed, pitch float64) ([]byte, error)
}

// ContextStore is the slice of the context store the orchestrator needs.
type ContextStore interface {
	ContextFor(ctx context.Context, query string, n int) (string, error)
	Write(ctx context.Context, content string, typ contextstore.RecordType, metadata map[string]string) (string, error)
}

const contextResults = 3

// Service runs conversation turns. It is stateless across invocations; all
// durable state lives in the context store.
type Service struct {
	store         ContextStore
	responder     Responder
	synthesizer   Synthesizer
	defaultVoice  VoiceParameters
	vendorTimeout time.Duration
}

func NewService(store ContextStore, responder Responder, synthesizer Synthesizer, defaultVoice VoiceParameters, vendorTimeout time.Duration) *Service {
	return &Service{
		store:         store,
		responder:     responder,
		synthesizer:   synthesizer,
		defaultVoice:  defaultVoice,
		vendorTimeout: vendorTimeout,
	}
}

// Simulate executes one turn and returns the synthesized audio. Context
// enrichment and persistence are best-effort; generation and synthesis
// failures are fatal and distinguishable via ErrGeneration and ErrSynthesis.
func (s *Service) Simulate(ctx context.Context, userInput, history string) ([]byte, error) {
	// 1. Gather context. A store failure degrades to an ungrounded prompt
	// rather than failing the turn.
	queryCtx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	contextText, err := s.store.ContextFor(queryCtx, userInput, contextResults)
	cancel()
	if err != nil {
		slog.Warn("context lookup failed, continuing without context", "error", err)
		contextText = ""
	}

	// 2. Derive voice parameters. Pure, never fails.
	voice := DeriveVoiceParameters(contextText, s.defaultVoice)

	// 3. Build prompt.
	prompt := BuildPrompt(contextText, userInput, history)

	// 4. Generate. Fatal on failure; no partial audio is ever returned.
	genCtx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	reply, err := s.responder.Generate(genCtx, prompt)
	cancel()
	if err != nil {
		slog.Error("generation failed", "error", err)
		metrics.ConversationTurnsTotal.WithLabelValues("generation_failed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	// 5. Persist the reply. Non-fatal: the user still gets their response.
	if _, err := s.store.Write(ctx, reply, contextstore.RecordTypeAnalysis, map[string]string{
		"prompt":     prompt,
		"user_input": userInput,
	}); err != nil {
		slog.Error("persisting generated reply failed", "error", err)
	}

	// 6. Synthesize. Fatal on failure, reported distinctly from generation.
	synthCtx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	audio, err := s.synthesizer.Synthesize(synthCtx, reply, voice.VoiceID, voice.Speed, voice.Pitch)
	cancel()
	if err != nil {
		slog.Error("synthesis failed", "error", err)
		metrics.ConversationTurnsTotal.WithLabelValues("synthesis_failed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	metrics.ConversationTurnsTotal.WithLabelValues("ok").Inc()
	return audio, nil
}
