package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealradar/dealradar/internal/llm"
)

// stubBackend returns a fixed answer or error.
type stubBackend struct {
	content string
	err     error
}

func (stubBackend) Name() string { return "stub" }

func (s stubBackend) Generate(context.Context, llm.GenerateRequest) (llm.GenerateResponse, error) {
	if s.err != nil {
		return llm.GenerateResponse{}, s.err
	}
	return llm.GenerateResponse{Content: s.content, Model: "stub"}, nil
}

func TestClassifierUsesModelAnswer(t *testing.T) {
	t.Parallel()

	c := llm.NewClassifier(stubBackend{content: " Electronics \n"})
	got := c.Classify(context.Background(), "Nike Revolution 6 Running Shoes")

	// The model answer wins even when keywords point elsewhere.
	assert.Equal(t, "electronics", got)
}

func TestClassifierFallsBackOnUnknownAnswer(t *testing.T) {
	t.Parallel()

	c := llm.NewClassifier(stubBackend{content: "gadgets-and-gizmos"})
	got := c.Classify(context.Background(), "boAt Airdopes 141 Bluetooth Earbuds")

	assert.Equal(t, "electronics", got)
}

func TestClassifierFallsBackOnError(t *testing.T) {
	t.Parallel()

	c := llm.NewClassifier(stubBackend{err: errors.New("connection refused")})
	got := c.Classify(context.Background(), "Prestige Pressure Cooker 5 Litre")

	assert.Equal(t, "home", got)
}

func TestClassifierNilBackend(t *testing.T) {
	t.Parallel()

	c := llm.NewClassifier(nil)
	got := c.Classify(context.Background(), "Levis Mens Slim Fit Jeans")

	assert.Equal(t, "fashion", got)
}

func TestClassifierKeywordFallbackOther(t *testing.T) {
	t.Parallel()

	c := llm.NewClassifier(llm.NullBackend{})
	got := c.Classify(context.Background(), "Mystery box of assorted items")

	assert.Equal(t, "other", got)
}
