package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultImageModel = "gemini-2.5-flash-image"

// GeminiRenderer requests inline image output from a Gemini image model.
type GeminiRenderer struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// NewGeminiRenderer constructs a renderer for the given model. Generation is
// heavier than analysis, so the timeout should be on the order of minutes.
func NewGeminiRenderer(apiKey, model string, timeout time.Duration) *GeminiRenderer {
	if strings.TrimSpace(model) == "" {
		model = defaultImageModel
	}
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &GeminiRenderer{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Render sends the photo and compiled prompt to the image model and returns
// the first inline image part. The call is attempted exactly once.
func (g *GeminiRenderer) Render(ctx context.Context, req Request) (Result, error) {
	if g == nil || strings.TrimSpace(g.apiKey) == "" {
		return Result{}, ErrNotConfigured
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return Result{}, fmt.Errorf("render: empty prompt")
	}
	if len(req.Image) == 0 {
		return Result{}, fmt.Errorf("render: empty image data")
	}

	childCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(childCtx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return Result{}, fmt.Errorf("render: create genai client: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(req.Image, req.MIME),
			genai.NewPartFromText(req.Prompt),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: NormalizeAspectRatio(req.AspectRatio),
		},
	}

	resp, err := client.Models.GenerateContent(childCtx, g.model, contents, cfg)
	if err != nil {
		if errors.Is(childCtx.Err(), context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("render: %w", ErrTimedOut)
		}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return Result{}, &StatusError{Code: apiErr.Code, Message: apiErr.Message}
		}
		return Result{}, fmt.Errorf("render: generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Result{}, fmt.Errorf("render: %w", ErrNoImage)
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if strings.TrimSpace(mime) == "" {
			mime = "image/png"
		}
		return Result{Data: part.InlineData.Data, MIME: mime}, nil
	}
	return Result{}, fmt.Errorf("render: %w", ErrNoImage)
}
