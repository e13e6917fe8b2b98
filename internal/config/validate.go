package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks Config for startup-fatal problems.
// It collects all errors into a single joined error.
//
// Vendor credentials are validated once, at startup: a missing key is a
// deployment mistake, not something to discover on the first request.
func (c *Config) Validate() error {
	var errs []string

	if c.Gemini.APIKey == "" {
		errs = append(errs, "GEMINI_API_KEY is required")
	}
	if c.Deepgram.APIKey == "" {
		errs = append(errs, "DEEPGRAM_API_KEY is required")
	}
	if c.Vapi.APIKey == "" {
		errs = append(errs, "VAPI_API_KEY is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT must be 1-65535, got %d", c.Server.Port))
	}
	if c.Upload.MaxBytes < 1 {
		errs = append(errs, fmt.Sprintf("UPLOAD_MAX_BYTES must be positive, got %d", c.Upload.MaxBytes))
	}
	if c.Vendor.Timeout <= 0 {
		errs = append(errs, "VENDOR_TIMEOUT must be positive")
	}
	if !strings.HasPrefix(c.Deepgram.BaseURL, "http") {
		errs = append(errs, "DEEPGRAM_BASE_URL must be an http(s) URL")
	}
	if !strings.HasPrefix(c.Vapi.BaseURL, "http") {
		errs = append(errs, "VAPI_BASE_URL must be an http(s) URL")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
