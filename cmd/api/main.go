package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hotbound-ai/hotbound/internal/api"
	"github.com/hotbound-ai/hotbound/internal/config"
	"github.com/hotbound-ai/hotbound/internal/contextstore"
	"github.com/hotbound-ai/hotbound/internal/conversation"
	"github.com/hotbound-ai/hotbound/internal/deepgram"
	"github.com/hotbound-ai/hotbound/internal/gemini"
	"github.com/hotbound-ai/hotbound/internal/profile"
	"github.com/hotbound-ai/hotbound/internal/server"
	"github.com/hotbound-ai/hotbound/internal/transcripts"
	"github.com/hotbound-ai/hotbound/internal/vapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	ctx := context.Background()

	// Gemini (generation, vision and embeddings)
	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		slog.Error("creating gemini client", "error", err)
		os.Exit(1)
	}
	defer geminiClient.Close()

	// Context store, embedded via the Gemini embedding model
	store, err := contextstore.New(cfg.Store, geminiClient)
	if err != nil {
		slog.Error("opening context store", "error", err)
		os.Exit(1)
	}

	// Vendor adapters
	transcriberClient := deepgram.NewClient(cfg.Deepgram)
	synthesizerClient := vapi.NewClient(cfg.Vapi)

	// Profile analysis
	profileSvc := profile.NewService(geminiClient, store, cfg.Vendor.Timeout)
	profileHandler := profile.NewHandler(profileSvc)

	// Transcription
	transcriptSvc := transcripts.NewService(transcriberClient, store, cfg.Vendor.Timeout)
	transcriptHandler := transcripts.NewHandler(transcriptSvc)

	// Conversation simulation
	defaultVoice := conversation.VoiceParameters{
		VoiceID: cfg.Vapi.VoiceID,
		Speed:   1.0,
		Pitch:   0.0,
	}
	conversationSvc := conversation.NewService(store, geminiClient, synthesizerClient, defaultVoice, cfg.Vendor.Timeout)
	conversationHandler := conversation.NewHandler(conversationSvc)

	// Context query
	contextHandler := contextstore.NewHandler(store)

	// Router
	router := api.NewRouter(api.RouterConfig{
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxUploadBytes:     cfg.Upload.MaxBytes,
		StoreHealthy:       store.Healthy,
	}, api.HandlerSet{
		UploadImages:         profileHandler.UploadImages,
		UploadAudio:          transcriptHandler.UploadAudio,
		AnalyzeProfile:       profileHandler.AnalyzeProfile,
		SimulateConversation: conversationHandler.Simulate,
		QueryContext:         contextHandler.Query,
	})

	// Start server
	srv := server.New(cfg.Server, router)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
