package llm

import "context"

// NullGenerator is the generator of last resort: every call reports the
// missing configuration. Wiring it instead of a nil interface keeps call
// sites free of nil checks.
type NullGenerator struct{}

func NewNullGenerator() NullGenerator { return NullGenerator{} }

func (NullGenerator) Name() string { return "null" }

func (NullGenerator) Generate(ctx context.Context, req Request) (string, error) {
	return "", ErrNotConfigured
}

func (NullGenerator) AvailableModels() []string { return nil }
