// Package deepgram wraps Deepgram's prerecorded transcription REST API.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hotbound-ai/hotbound/internal/config"
	"github.com/hotbound-ai/hotbound/internal/vendors"
)

const vendorName = "deepgram"

// Client calls the prerecorded (batch) transcription endpoint. It does not
// retry; callers bound each call with a context deadline.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(cfg config.DeepgramConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{},
	}
}

// listenResponse mirrors the slice of Deepgram's response we consume.
type listenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe submits an audio byte stream and returns the plain-text
// transcript of the first channel's top alternative.
func (c *Client) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	start := time.Now()
	const op = "transcribe"

	transcript, err := c.transcribe(ctx, audio, contentType)
	vendors.Observe(vendorName, op, start, err)
	return transcript, err
}

func (c *Client) transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	const op = "transcribe"

	q := url.Values{}
	q.Set("model", c.model)
	q.Set("smart_format", "true")
	endpoint := fmt.Sprintf("%s/v1/listen?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return "", vendors.New(vendorName, op, err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return "", vendors.New(vendorName, op, err)
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return "", vendors.New(vendorName, op, err)
	}

	if rsp.StatusCode != http.StatusOK {
		return "", vendors.Newf(vendorName, op, "status %d: %s", rsp.StatusCode, string(body))
	}

	var parsed listenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", vendors.New(vendorName, op, err)
	}

	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", vendors.Newf(vendorName, op, "response has no transcription alternatives")
	}

	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}
