package vision

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates the text/vision credential is missing.
var ErrNotConfigured = errors.New("vision: client not configured")

// ErrTimeout indicates the request exceeded its deadline.
var ErrTimeout = errors.New("request timed out")

// UpstreamError carries the remote service's status code and message so
// callers can pass both through.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("vision: status %d", e.StatusCode)
	}
	return fmt.Sprintf("vision: status %d: %s", e.StatusCode, e.Message)
}
