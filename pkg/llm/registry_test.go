package llm

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type staticGenerator struct {
	name string
	out  string
}

func (s staticGenerator) Name() string { return s.name }
func (s staticGenerator) Generate(ctx context.Context, req Request) (string, error) {
	return s.out, nil
}
func (s staticGenerator) AvailableModels() []string { return nil }

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	r.Register(staticGenerator{name: "openai", out: "hi"})

	got, err := r.Get("openai").Generate(context.Background(), Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("Expected generation to succeed, got %v", err)
	}
	if got != "hi" {
		t.Errorf("Expected hi, got %q", got)
	}
}

func TestRegistryUnknownFallsBackToNull(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing").Generate(context.Background(), Request{Prompt: "x"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured from fallback, got %v", err)
	}
}

func TestRegistryProvidersSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(staticGenerator{name: "ollama"})
	r.Register(staticGenerator{name: "gemini"})
	r.Register(staticGenerator{name: "openai"})

	want := []string{"gemini", "ollama", "openai"}
	if got := r.Providers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNullGenerator(t *testing.T) {
	var g TextGenerator = NewNullGenerator()

	out, err := g.Generate(context.Background(), Request{Prompt: "anything"})
	if out != "" {
		t.Errorf("Expected empty output, got %q", out)
	}
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}
