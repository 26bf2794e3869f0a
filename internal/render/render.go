// Package render forwards a compiled staging prompt plus the original photo
// to an image-generation backend and extracts the produced image.
package render

import (
	"context"
	"errors"
	"fmt"
)

// DefaultAspectRatio replaces any requested ratio outside the allow-list.
const DefaultAspectRatio = "4:3"

var allowedAspectRatios = map[string]struct{}{
	"1:1":  {},
	"2:3":  {},
	"3:2":  {},
	"3:4":  {},
	"4:3":  {},
	"4:5":  {},
	"5:4":  {},
	"9:16": {},
	"16:9": {},
	"21:9": {},
}

// NormalizeAspectRatio validates a requested ratio against the allow-list.
// Unknown values are silently replaced with the default rather than
// rejected; generation is best effort and never blocks on this parameter.
func NormalizeAspectRatio(ratio string) string {
	if _, ok := allowedAspectRatios[ratio]; ok {
		return ratio
	}
	return DefaultAspectRatio
}

// Request carries one generation call's inputs. AspectRatio must already be
// normalized.
type Request struct {
	Image       []byte
	MIME        string
	Prompt      string
	AspectRatio string
}

// Result is the produced image.
type Result struct {
	Data []byte
	MIME string
}

// Renderer is implemented by the Gemini and Vertex Imagen backends.
type Renderer interface {
	Render(ctx context.Context, req Request) (Result, error)
}

// ErrNotConfigured indicates the image credential is missing.
var ErrNotConfigured = errors.New("render: image model not configured")

// ErrTimedOut indicates generation exceeded its deadline.
var ErrTimedOut = errors.New("image generation timed out")

// ErrNoImage indicates the model answered without an inline image part.
var ErrNoImage = errors.New("model returned no image")

// StatusError passes the remote service's status code and message through
// to the caller.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("render: status %d", e.Code)
	}
	return fmt.Sprintf("render: status %d: %s", e.Code, e.Message)
}
