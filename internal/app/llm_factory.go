package app

import (
	"github.com/hukuitappei/voicetask/internal/config"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/llm"
)

// LLMRegistryFactory builds text generators from configured credentials
type LLMRegistryFactory struct {
	config config.LLMKeysConfig
	logger *Logger.Logger
}

// NewLLMRegistryFactory creates a new LLM registry factory
func NewLLMRegistryFactory(config config.LLMKeysConfig, logger *Logger.Logger) *LLMRegistryFactory {
	return &LLMRegistryFactory{
		config: config,
		logger: logger,
	}
}

// CreateRegistry constructs every provider whose credentials are present.
// A provider that fails to construct is skipped rather than fatal; callers
// that later ask for it get the registry's null fallback.
func (f *LLMRegistryFactory) CreateRegistry() *llm.Registry {
	registry := llm.NewRegistry()

	if f.config.OpenAIAPIKey != "" {
		if gen, err := llm.NewOpenAI(f.config.OpenAIAPIKey); err != nil {
			f.logger.Warnf("openai generator unavailable: %v", err)
		} else {
			registry.Register(gen)
		}
	}

	if f.config.GeminiAPIKey != "" {
		if gen, err := llm.NewGemini(f.config.GeminiAPIKey); err != nil {
			f.logger.Warnf("gemini generator unavailable: %v", err)
		} else {
			registry.Register(gen)
		}
	}

	if len(f.config.OllamaURLs) > 0 {
		if gen, err := llm.NewOllama(f.config.OllamaURLs); err != nil {
			f.logger.Warnf("ollama generator unavailable: %v", err)
		} else {
			registry.Register(gen)
		}
	}

	f.logger.Infof("LLM registry created with %d provider(s)", len(registry.Providers()))
	return registry
}
