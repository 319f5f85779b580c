// Package gemini adapts the Gemini multimodal API to the image generation
// pipeline: one prompt plus ordered inline images in, one image and one
// description out.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"roomdesign/internal/domain"
)

const (
	DefaultModel   = "gemini-2.0-flash-preview-image-generation"
	DefaultTimeout = 60 * time.Second

	// FallbackText is returned when the model produced no text part.
	FallbackText = "No description available."

	defaultImageMIME = "image/png"
)

// Image is an encoded image with its MIME type.
type Image struct {
	Data []byte
	MIME string
}

// Output is the decoded model answer. Image is nil when no inline data came back.
type Output struct {
	Image *Image
	Text  string
}

// Options controls how the client is configured.
type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  zerolog.Logger
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client calls GenerateContent once per request with no retries.
type Client struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewClient builds a Gemini API client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini: api key is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newClient(gc.Models, opts), nil
}

func newClient(models contentGenerator, opts Options) *Client {
	model := strings.TrimPrefix(strings.TrimSpace(opts.Model), "models/")
	if model == "" {
		model = DefaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{models: models, model: model, timeout: timeout, logger: opts.Logger}
}

// Generate sends prompt followed by images, in order, and decodes the first
// candidate. Transport and API errors wrap domain.ErrGenerationFailure.
func (c *Client) Generate(ctx context.Context, prompt string, images []Image) (Output, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIME))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.models.GenerateContent(callCtx, c.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Dur("took", time.Since(start)).Msg("gemini generate failed")
		return Output{}, fmt.Errorf("%w: %w", domain.ErrGenerationFailure, err)
	}

	out := decodeResponse(resp)
	c.logger.Debug().
		Str("model", c.model).
		Int("input_images", len(images)).
		Bool("image", out.Image != nil).
		Dur("took", time.Since(start)).
		Msg("gemini generate")
	return out, nil
}

func decodeResponse(resp *genai.GenerateContentResponse) Output {
	out := Output{}
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0] != nil && resp.Candidates[0].Content != nil {
		for _, raw := range resp.Candidates[0].Content.Parts {
			part := DecodePart(raw)
			switch part.Kind {
			case PartImage:
				if out.Image == nil {
					img := part.Image
					out.Image = &img
				}
			case PartText:
				if out.Text == "" {
					out.Text = part.Text
				}
			}
		}
	}
	if out.Text == "" {
		out.Text = FallbackText
	}
	return out
}
