package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAIGenerator struct {
	client openai.Client
}

// NewOpenAI builds the OpenAI-backed generator. An empty key is a
// configuration error, not a null generator; the factory decides the
// fallback.
func NewOpenAI(apiKey string) (TextGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is not configured")
	}
	return &openAIGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

func (g *openAIGenerator) Name() string { return "openai" }

// Generate implements TextGenerator.
func (g *openAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    openai.ChatModelGPT3_5Turbo,
	}
	if req.Model != "" {
		params.Model = openai.ChatModel(req.Model)
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func (g *openAIGenerator) AvailableModels() []string {
	return []string{
		string(openai.ChatModelGPT3_5Turbo),
		string(openai.ChatModelGPT4o),
		string(openai.ChatModelGPT4oMini),
	}
}
