package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dealradar/dealradar/pkg/extract"
	"github.com/dealradar/dealradar/pkg/logger"
)

// classifyPrompt asks for exactly one category name so the answer can
// be validated against the known set.
const classifyPrompt = `Classify this product deal into exactly one category.

Title: %s

Categories: %s

Respond with only the category name.`

// Classifier refines category classification with a language model,
// keeping the keyword classifier as the fallback for every failure
// mode: disabled backend, transport error, or an answer outside the
// known category set.
type Classifier struct {
	backend Backend
	log     *slog.Logger
	valid   map[string]bool
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithClassifierLogger sets the logger used for classification diagnostics.
func WithClassifierLogger(log *slog.Logger) ClassifierOption {
	return func(c *Classifier) { c.log = log }
}

// NewClassifier creates a Classifier on the given backend. A nil
// backend behaves like the Null backend.
func NewClassifier(backend Backend, opts ...ClassifierOption) *Classifier {
	if backend == nil {
		backend = NullBackend{}
	}
	valid := make(map[string]bool)
	for _, name := range extract.Categories() {
		valid[name] = true
	}
	c := &Classifier{
		backend: backend,
		log:     logger.Discard(),
		valid:   valid,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the category for a deal title. It never fails;
// whenever the model cannot produce a usable answer the keyword
// classifier decides.
func (c *Classifier) Classify(ctx context.Context, title string) string {
	resp, err := c.backend.Generate(ctx, GenerateRequest{
		Prompt:      fmt.Sprintf(classifyPrompt, title, strings.Join(extract.Categories(), ", ")),
		Temperature: 0.1,
		MaxTokens:   10,
	})
	if err != nil {
		if !errors.Is(err, ErrDisabled) {
			c.log.Debug("category generation failed, using keyword fallback",
				"backend", c.backend.Name(),
				"error", err,
			)
		}
		return extract.Categorize(title)
	}

	answer := strings.ToLower(strings.TrimSpace(resp.Content))
	if c.valid[answer] {
		return answer
	}

	c.log.Debug("model returned unknown category, using keyword fallback",
		"backend", c.backend.Name(),
		"answer", answer,
	)
	return extract.Categorize(title)
}
