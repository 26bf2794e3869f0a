package vision

import (
	"context"
	"strings"
)

type contextKey string

const modelContextKey contextKey = "vision-model-override"

// WithModel returns a context carrying a preferred model override. An empty
// model leaves the context untouched.
func WithModel(ctx context.Context, model string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(model) == "" {
		return ctx
	}
	return context.WithValue(ctx, modelContextKey, normalizeModel(model))
}

// modelFromContext extracts the requested model override, if any.
func modelFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(modelContextKey).(string); ok {
		return normalizeModel(value)
	}
	return ""
}
