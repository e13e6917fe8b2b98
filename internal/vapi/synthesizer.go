// Package vapi wraps the voice-synthesis vendor's REST API.
package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hotbound-ai/hotbound/internal/config"
	"github.com/hotbound-ai/hotbound/internal/vendors"
)

const vendorName = "vapi"

// Client converts text plus voice parameters into an MP3 byte stream.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.VapiConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{},
	}
}

type synthesizeRequest struct {
	Text        string  `json:"text"`
	VoiceID     string  `json:"voice_id"`
	AudioFormat string  `json:"audio_format"`
	Speed       float64 `json:"speed"`
	Pitch       float64 `json:"pitch"`
}

// Synthesize returns MP3 audio for text spoken with the given voice. A non-2xx
// status or an empty body is a failure; malformed audio is never returned.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string, speed, pitch float64) ([]byte, error) {
	start := time.Now()
	const op = "synthesize"

	audio, err := c.synthesize(ctx, text, voiceID, speed, pitch)
	vendors.Observe(vendorName, op, start, err)
	return audio, err
}

func (c *Client) synthesize(ctx context.Context, text, voiceID string, speed, pitch float64) ([]byte, error) {
	const op = "synthesize"

	payload, err := json.Marshal(synthesizeRequest{
		Text:        text,
		VoiceID:     voiceID,
		AudioFormat: "mp3",
		Speed:       speed,
		Pitch:       pitch,
	})
	if err != nil {
		return nil, vendors.New(vendorName, op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/synthesize", bytes.NewReader(payload))
	if err != nil {
		return nil, vendors.New(vendorName, op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, vendors.New(vendorName, op, err)
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, vendors.New(vendorName, op, err)
	}

	if rsp.StatusCode != http.StatusOK {
		return nil, vendors.Newf(vendorName, op, "status %d: %s", rsp.StatusCode, string(body))
	}

	if len(body) == 0 {
		return nil, vendors.Newf(vendorName, op, "empty audio response")
	}

	return body, nil
}
