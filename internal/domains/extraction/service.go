package extraction

import (
	"context"
	"errors"
	"fmt"

	"github.com/hukuitappei/voicetask/internal/constants/prompts"
	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/llm"
)

// Mode selects between the pure rule patterns and an LLM round trip whose
// free-text answer is parsed with those same patterns.
type Mode string

const (
	ModeRule Mode = "rule"
	ModeLLM  Mode = "llm"
)

// User-facing messages, kept in Japanese like the rest of the product
// surface. LLM trouble is reported as data, never as a raised error.
const (
	msgNotConfigured = "OpenAI APIキーが設定されていません"
	msgTaskAnalyze   = "タスク分析エラー: %v"
	msgEventAnalyze  = "イベント分析エラー: %v"

	// the analyzer exchange is deliberately capped tighter than the
	// general-purpose llm.max_tokens setting
	llmAnalyzeMaxTokens = 500
)

// ExtractRequest is the text-analysis payload.
// @Description Transcript text to analyze
type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
	Mode Mode   `json:"mode" example:"rule"`
}

// ExtractResult carries both kinds plus per-kind analysis errors; an empty
// message means that side succeeded.
type ExtractResult struct {
	Tasks      []ExtractedEntity `json:"tasks"`
	Events     []ExtractedEntity `json:"events"`
	TaskError  string            `json:"task_error,omitempty"`
	EventError string            `json:"event_error,omitempty"`
}

type RelatednessResult struct {
	TaskRelated  bool `json:"task_related"`
	EventRelated bool `json:"event_related"`
}

// ExtractionService defines the interface for transcript analysis
type ExtractionService interface {
	// ExtractTasks and ExtractEvents return entities plus a user-facing
	// error message; the message is empty on success and extraction never
	// fails hard.
	ExtractTasks(ctx context.Context, text string, mode Mode) ([]ExtractedEntity, string)
	ExtractEvents(ctx context.Context, text string, mode Mode) ([]ExtractedEntity, string)

	ExtractAll(ctx context.Context, req ExtractRequest) ExtractResult
	Relatedness(text string) RelatednessResult
}

type extractionService struct {
	taskAnalyzer  *Analyzer
	eventAnalyzer *Analyzer
	registry      *llm.Registry
	settings      settings.SettingsService
	logger        *Logger.Logger
}

// ExtractTasks implements ExtractionService
func (s *extractionService) ExtractTasks(ctx context.Context, text string, mode Mode) ([]ExtractedEntity, string) {
	if mode != ModeLLM {
		return s.taskAnalyzer.Analyze(text), ""
	}
	return s.analyzeWithLLM(ctx, s.taskAnalyzer, &prompts.TASK_EXTRACTION, text, msgTaskAnalyze)
}

// ExtractEvents implements ExtractionService
func (s *extractionService) ExtractEvents(ctx context.Context, text string, mode Mode) ([]ExtractedEntity, string) {
	if mode != ModeLLM {
		return s.eventAnalyzer.Analyze(text), ""
	}
	return s.analyzeWithLLM(ctx, s.eventAnalyzer, &prompts.EVENT_EXTRACTION, text, msgEventAnalyze)
}

// ExtractAll implements ExtractionService
func (s *extractionService) ExtractAll(ctx context.Context, req ExtractRequest) ExtractResult {
	tasks, taskErr := s.ExtractTasks(ctx, req.Text, req.Mode)
	events, eventErr := s.ExtractEvents(ctx, req.Text, req.Mode)
	return ExtractResult{
		Tasks:      tasks,
		Events:     events,
		TaskError:  taskErr,
		EventError: eventErr,
	}
}

// Relatedness implements ExtractionService
func (s *extractionService) Relatedness(text string) RelatednessResult {
	return RelatednessResult{
		TaskRelated:  IsTaskRelated(text),
		EventRelated: IsEventRelated(text),
	}
}

func (s *extractionService) analyzeWithLLM(ctx context.Context, analyzer *Analyzer, prompt *prompts.SYS_PROMPT, text, errFormat string) ([]ExtractedEntity, string) {
	tree := s.settings.GetSettings(ctx)
	pd := prompt.GetCurrentPrompt()

	response, err := s.generatorFor(tree).Generate(ctx, llm.Request{
		System:      pd.System,
		Prompt:      pd.Render(text),
		Model:       tree.GetString("llm.model", "gpt-3.5-turbo"),
		Temperature: tree.GetFloat("llm.temperature", 0.3),
		MaxTokens:   llmAnalyzeMaxTokens,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return []ExtractedEntity{}, msgNotConfigured
		}
		s.logger.Warnf("llm extraction failed: %v", err)
		return []ExtractedEntity{}, fmt.Sprintf(errFormat, err)
	}

	return analyzer.Analyze(response), ""
}

// generatorFor honors the llm.enabled switch before consulting the registry,
// so a disabled document degrades to the not-configured message.
func (s *extractionService) generatorFor(tree settings.SettingsTree) llm.TextGenerator {
	if !tree.GetBool("llm.enabled", false) {
		return llm.NewNullGenerator()
	}
	return s.registry.Get(tree.GetString("llm.provider", "openai"))
}

// NewExtractionService creates a new extraction service
func NewExtractionService(registry *llm.Registry, settingsService settings.SettingsService, logger *Logger.Logger) ExtractionService {
	return &extractionService{
		taskAnalyzer:  NewTaskAnalyzer(),
		eventAnalyzer: NewEventAnalyzer(),
		registry:      registry,
		settings:      settingsService,
		logger:        logger,
	}
}
