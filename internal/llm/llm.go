// Package llm provides optional language-model text generation behind a
// small backend interface. The pipeline works fully without it; when no
// backend is configured the Null backend is selected and callers fall
// back to their rule-based paths.
package llm

import (
	"context"
	"errors"
)

// FormatJSON is the format string for requesting JSON mode from backends.
const FormatJSON = "json"

// ErrDisabled is returned by the Null backend for every generation call.
var ErrDisabled = errors.New("llm backend disabled")

// GenerateRequest defines the input for a generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// Backend defines the interface for text generation.
type Backend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// NullBackend is the no-configuration default. Every call fails with
// ErrDisabled so callers take their rule-based fallback.
type NullBackend struct{}

// Name returns the backend name.
func (NullBackend) Name() string { return "null" }

// Generate always returns ErrDisabled.
func (NullBackend) Generate(context.Context, GenerateRequest) (GenerateResponse, error) {
	return GenerateResponse{}, ErrDisabled
}

// Select picks a backend by provider name. An empty or unknown provider
// yields the Null backend.
func Select(provider, endpoint, model, apiKey string) Backend {
	switch provider {
	case "openai", "openai_compat":
		opts := []OpenAICompatOption{}
		if apiKey != "" {
			opts = append(opts, WithAPIKey(apiKey))
		}
		return NewOpenAICompatBackend(endpoint, model, opts...)
	default:
		return NullBackend{}
	}
}
