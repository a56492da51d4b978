package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by generators that have no working backend,
// most notably the null generator installed when no provider credentials are
// present.
var ErrNotConfigured = errors.New("text generator not configured")

// Request is a single prompt exchange. Zero-valued knobs defer to provider
// defaults.
type Request struct {
	System      string
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// TextGenerator turns a prompt into a completion. Implementations exist for
// OpenAI, Gemini and Ollama plus a null generator; callers pick one through
// the Registry and must treat errors as data, not fatal conditions.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
	AvailableModels() []string
}
