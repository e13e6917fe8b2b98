package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Gemini   GeminiConfig
	Deepgram DeepgramConfig
	Vapi     VapiConfig
	Store    StoreConfig
	Upload   UploadConfig
	Vendor   VendorConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level  string
	Format string
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
}

type DeepgramConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type VapiConfig struct {
	APIKey  string
	BaseURL string
	VoiceID string
}

type StoreConfig struct {
	Path       string
	Collection string
	Compress   bool
}

type UploadConfig struct {
	MaxBytes int64
}

// VendorConfig bounds each outbound vendor call. A conversation turn makes up
// to three sequential vendor round trips plus a store write, so worst-case
// request latency is roughly three times this timeout.
type VendorConfig struct {
	Timeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Load .env file if it exists (ignore error if missing)
	_ = k.Load(file.Provider(".env"), dotenv.Parser())

	// Load environment variables (override .env)
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "_", "."))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: k.String("server.host"),
			Port: k.Int("server.port"),
		},
		Log: LogConfig{
			Level:  k.String("log.level"),
			Format: k.String("log.format"),
		},
		Gemini: GeminiConfig{
			APIKey:     k.String("gemini.api.key"),
			Model:      k.String("gemini.model"),
			EmbedModel: k.String("gemini.embed.model"),
		},
		Deepgram: DeepgramConfig{
			APIKey:  k.String("deepgram.api.key"),
			BaseURL: k.String("deepgram.base.url"),
			Model:   k.String("deepgram.model"),
		},
		Vapi: VapiConfig{
			APIKey:  k.String("vapi.api.key"),
			BaseURL: k.String("vapi.base.url"),
			VoiceID: k.String("vapi.voice.id"),
		},
		Store: StoreConfig{
			Path:       k.String("store.path"),
			Collection: k.String("store.collection"),
			Compress:   k.Bool("store.compress"),
		},
		Upload: UploadConfig{
			MaxBytes: k.Int64("upload.max.bytes"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(k.String("cors.allowed.origins")),
		},
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-pro"
	}
	if cfg.Gemini.EmbedModel == "" {
		cfg.Gemini.EmbedModel = "text-embedding-004"
	}
	if cfg.Deepgram.BaseURL == "" {
		cfg.Deepgram.BaseURL = "https://api.deepgram.com"
	}
	if cfg.Deepgram.Model == "" {
		cfg.Deepgram.Model = "general"
	}
	if cfg.Vapi.BaseURL == "" {
		cfg.Vapi.BaseURL = "https://api.vapi.ai"
	}
	if cfg.Vapi.VoiceID == "" {
		cfg.Vapi.VoiceID = "en-US-Neural2-J"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "./data/contextstore"
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = "hotbound_data"
	}
	if cfg.Upload.MaxBytes == 0 {
		cfg.Upload.MaxBytes = 32 << 20 // 32 MiB
	}

	// Parse durations
	timeoutStr := k.String("vendor.timeout")
	if timeoutStr == "" {
		timeoutStr = "60s"
	}
	cfg.Vendor.Timeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("parsing vendor timeout: %w", err)
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
