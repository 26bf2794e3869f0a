// Package vision talks to the Gemini text/vision model over the Generative
// Language REST API: scene analysis of room photos and staging description
// generation.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	// MaxImageBytes bounds inbound photos before they are forwarded.
	MaxImageBytes = 7 * 1024 * 1024

	defaultModel = "gemini-2.0-flash"

	defaultBaseURL = "https://generativelanguage.googleapis.com"
)

// Client wraps the Google Generative Language API for multimodal requests.
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	client      *http.Client
	tokenSource oauth2.TokenSource
}

// NewClient constructs a client for the desired model. The token source is
// optional; when absent the API key authorizes requests via query parameter.
func NewClient(apiKey, model string, timeout time.Duration, tokenSource oauth2.TokenSource) *Client {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &Client{
		apiKey:      apiKey,
		model:       normalizeModel(model),
		baseURL:     defaultBaseURL,
		client:      &http.Client{Timeout: timeout},
		tokenSource: tokenSource,
	}
}

// Configured reports whether any credential is available.
func (c *Client) Configured() bool {
	return c != nil && (strings.TrimSpace(c.apiKey) != "" || c.tokenSource != nil)
}

// Generate sends a prompt, optionally preceded by an inline image, and
// returns the joined candidate text. Each call is attempted exactly once.
func (c *Client) Generate(ctx context.Context, system, prompt string, image []byte, mimeType string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	var parts []map[string]any
	if len(image) > 0 {
		parts = append(parts, map[string]any{
			"inline_data": map[string]string{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(image),
			},
		})
	}
	parts = append(parts, map[string]any{"text": prompt})

	payload := map[string]any{
		"contents": []map[string]any{
			{"role": "user", "parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature": 0.2,
		},
	}
	if strings.TrimSpace(system) != "" {
		payload["systemInstruction"] = map[string]any{
			"parts": []map[string]string{
				{"text": system},
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("vision: marshal payload: %w", err)
	}

	model := c.model
	if override := modelFromContext(ctx); override != "" {
		model = override
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(model))
	if c.tokenSource == nil {
		endpoint = fmt.Sprintf("%s?key=%s", endpoint, url.QueryEscape(c.apiKey))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("vision: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokenSource != nil {
		token, err := c.tokenSource.Token()
		if err != nil {
			return "", fmt.Errorf("vision: fetch oauth token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("vision: %w", ErrTimeout)
		}
		return "", fmt.Errorf("vision: perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: failure.Error.Message}
	}

	var completion struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("vision: decode response: %w", err)
	}

	if len(completion.Candidates) == 0 || len(completion.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision: empty response")
	}

	var chunks []string
	for _, part := range completion.Candidates[0].Content.Parts {
		if trimmed := strings.TrimSpace(part.Text); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
	}
	if len(chunks) == 0 {
		return "", fmt.Errorf("vision: candidate missing text")
	}
	return strings.Join(chunks, "\n\n"), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

func normalizeModel(model string) string {
	clean := strings.TrimSpace(model)
	clean = strings.TrimPrefix(clean, "models/")
	if clean == "" {
		return defaultModel
	}
	return clean
}
