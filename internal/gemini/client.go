// Package gemini wraps the Google generative model behind narrow
// request/response calls. It performs no retries, caching, or interpretation;
// that responsibility belongs to callers.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	genaiopt "google.golang.org/api/option"

	"github.com/hotbound-ai/hotbound/internal/config"
	"github.com/hotbound-ai/hotbound/internal/vendors"
)

const vendorName = "gemini"

// ImagePart is one inline image for a vision call. Format is the bare subtype
// ("jpeg", "png", ...), matching what genai.ImageData expects.
type ImagePart struct {
	Format string
	Data   []byte
}

// Client is a thin adapter over the Gemini SDK for generation and embeddings.
type Client struct {
	client     *genai.Client
	model      string
	embedModel string
}

// NewClient dials the Gemini API. The credential was validated at startup.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, genaiopt.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Client{
		client:     client,
		model:      cfg.Model,
		embedModel: cfg.EmbedModel,
	}, nil
}

// Generate runs a text-only generation call.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, "generate", genai.Text(prompt))
}

// GenerateVision runs a generation call over a prompt plus inline images.
func (c *Client) GenerateVision(ctx context.Context, prompt string, images []ImagePart) (string, error) {
	parts := make([]genai.Part, 0, len(images)+1)
	parts = append(parts, genai.Text(prompt))
	for _, img := range images {
		parts = append(parts, genai.ImageData(img.Format, img.Data))
	}
	return c.generate(ctx, "generate_vision", parts...)
}

func (c *Client) generate(ctx context.Context, op string, parts ...genai.Part) (string, error) {
	start := time.Now()

	model := c.client.GenerativeModel(c.model)
	rsp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		err = vendors.New(vendorName, op, err)
		vendors.Observe(vendorName, op, start, err)
		return "", err
	}

	if len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil || len(rsp.Candidates[0].Content.Parts) == 0 {
		err = vendors.New(vendorName, op, errors.New("empty response"))
		vendors.Observe(vendorName, op, start, err)
		return "", err
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if b.Len() == 0 {
		err = vendors.New(vendorName, op, errors.New("no text parts in response"))
		vendors.Observe(vendorName, op, start, err)
		return "", err
	}

	vendors.Observe(vendorName, op, start, nil)
	return b.String(), nil
}

// Embed returns the embedding vector for text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	const op = "embed"

	model := c.client.EmbeddingModel(c.embedModel)
	rsp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		err = vendors.New(vendorName, op, err)
		vendors.Observe(vendorName, op, start, err)
		return nil, err
	}

	if rsp == nil || rsp.Embedding == nil || len(rsp.Embedding.Values) == 0 {
		err = vendors.New(vendorName, op, errors.New("empty embedding"))
		vendors.Observe(vendorName, op, start, err)
		return nil, err
	}

	vendors.Observe(vendorName, op, start, nil)
	return rsp.Embedding.Values, nil
}

// Close releases the underlying SDK connection.
func (c *Client) Close() error {
	return c.client.Close()
}
