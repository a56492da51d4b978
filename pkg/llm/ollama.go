package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/presbrey/ollamafarm"
)

const defaultOllamaModel = "llama3:8b"

type ollamaGenerator struct {
	farm *ollamafarm.Farm
}

// NewOllama pools the given servers; the first online one serves each call.
func NewOllama(urls []string) (TextGenerator, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("no ollama servers configured")
	}

	farm := ollamafarm.New()
	registered := 0
	for _, u := range urls {
		if err := farm.RegisterURL(u, nil); err != nil {
			continue
		}
		registered++
	}
	if registered == 0 {
		return nil, fmt.Errorf("no ollama server could be registered")
	}

	return &ollamaGenerator{farm: farm}, nil
}

func (g *ollamaGenerator) Name() string { return "ollama" }

// Generate implements TextGenerator.
func (g *ollamaGenerator) Generate(ctx context.Context, req Request) (string, error) {
	srv := g.farm.First(&ollamafarm.Where{Offline: false})
	if srv == nil {
		return "", fmt.Errorf("no ollama server online")
	}

	model := req.Model
	if model == "" {
		model = defaultOllamaModel
	}

	msgs := make([]api.Message, 0, 2)
	if req.System != "" {
		msgs = append(msgs, api.Message{Role: "system", Content: req.System})
	}
	msgs = append(msgs, api.Message{Role: "user", Content: req.Prompt})

	options := map[string]interface{}{}
	if req.Temperature > 0 {
		options["temperature"] = req.Temperature
	}
	if req.MaxTokens > 0 {
		options["num_predict"] = req.MaxTokens
	}

	stream := false
	chatReq := api.ChatRequest{
		Model:    model,
		Messages: msgs,
		Stream:   &stream,
		Options:  options,
	}

	var sb strings.Builder
	err := srv.Client().Chat(ctx, &chatReq, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat failed: %w", err)
	}
	return sb.String(), nil
}

func (g *ollamaGenerator) AvailableModels() []string {
	return []string{defaultOllamaModel}
}
