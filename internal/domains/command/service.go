package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/llm"
	"github.com/hukuitappei/voicetask/pkg/utils"
)

var (
	ErrCommandNotFound    = errors.New("command not found")
	ErrCommandDisabled    = errors.New("command disabled")
	ErrInvalidCommandData = errors.New("invalid command data")
	ErrNotConfigured      = errors.New("OpenAI APIキーが設定されていません")
)

// CommandService defines the interface for prompt-command business logic
type CommandService interface {
	ListCommands(ctx context.Context) ([]CommandResponse, error)
	GetCommand(ctx context.Context, name string) (*CommandResponse, error)
	CreateCommand(ctx context.Context, req CreateCommandRequest) (*CommandResponse, error)
	UpdateCommand(ctx context.Context, name string, req UpdateCommandRequest) (*CommandResponse, error)
	DeleteCommand(ctx context.Context, name string) error

	// Execute substitutes the text into the command prompt and runs it
	// through the configured text generator.
	Execute(ctx context.Context, name, text string) (*ExecuteResponse, error)
}

type commandService struct {
	repository CommandRepository
	outputs    OutputWriter
	registry   *llm.Registry
	settings   settings.SettingsService
	logger     *Logger.Logger
}

// load falls back to the seeded set so a corrupt or missing file never
// takes the feature down.
func (s *commandService) load() *CommandSet {
	set, err := s.repository.Load()
	if err != nil {
		s.logger.Warnf("error loading commands, falling back to defaults: %v", err)
		return NewCommandSet()
	}
	return set
}

func toResponse(name string, cmd Command) *CommandResponse {
	return &CommandResponse{
		Name:         name,
		Description:  cmd.Description,
		LLMPrompt:    cmd.LLMPrompt,
		OutputFormat: cmd.OutputFormat,
		Enabled:      cmd.Enabled,
	}
}

// ListCommands implements CommandService
func (s *commandService) ListCommands(ctx context.Context) ([]CommandResponse, error) {
	set := s.load()

	responses := make([]CommandResponse, 0, len(set.Commands))
	for _, name := range set.Names() {
		responses = append(responses, *toResponse(name, set.Commands[name]))
	}
	return responses, nil
}

// GetCommand implements CommandService
func (s *commandService) GetCommand(ctx context.Context, name string) (*CommandResponse, error) {
	set := s.load()

	cmd, ok := set.Get(name)
	if !ok {
		return nil, ErrCommandNotFound
	}
	return toResponse(name, cmd), nil
}

// CreateCommand implements CommandService
func (s *commandService) CreateCommand(ctx context.Context, req CreateCommandRequest) (*CommandResponse, error) {
	format := req.OutputFormat
	if format == "" {
		format = FormatSummary
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unknown output format %q", ErrInvalidCommandData, req.OutputFormat)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	set := s.load()
	set.Add(req.Name, Command{
		Description:  req.Description,
		LLMPrompt:    req.LLMPrompt,
		OutputFormat: format,
		Enabled:      enabled,
	})

	if err := s.repository.Save(set); err != nil {
		s.logger.Errorf("error saving commands: %v", err)
		return nil, fmt.Errorf("failed to save commands: %w", err)
	}

	s.logger.Infof("command created: %s", req.Name)
	cmd, _ := set.Get(req.Name)
	return toResponse(req.Name, cmd), nil
}

// UpdateCommand implements CommandService
func (s *commandService) UpdateCommand(ctx context.Context, name string, req UpdateCommandRequest) (*CommandResponse, error) {
	set := s.load()

	cmd, ok := set.Get(name)
	if !ok {
		return nil, ErrCommandNotFound
	}

	if req.Description != nil {
		cmd.Description = *req.Description
	}
	if req.LLMPrompt != nil {
		cmd.LLMPrompt = *req.LLMPrompt
	}
	if req.OutputFormat != nil {
		if !req.OutputFormat.IsValid() {
			return nil, fmt.Errorf("%w: unknown output format %q", ErrInvalidCommandData, *req.OutputFormat)
		}
		cmd.OutputFormat = *req.OutputFormat
	}
	if req.Enabled != nil {
		cmd.Enabled = *req.Enabled
	}

	set.Add(name, cmd)
	if err := s.repository.Save(set); err != nil {
		s.logger.Errorf("error saving commands: %v", err)
		return nil, fmt.Errorf("failed to save commands: %w", err)
	}

	s.logger.Infof("command updated: %s", name)
	return toResponse(name, cmd), nil
}

// DeleteCommand implements CommandService
func (s *commandService) DeleteCommand(ctx context.Context, name string) error {
	set := s.load()

	if !set.Remove(name) {
		return ErrCommandNotFound
	}

	if err := s.repository.Save(set); err != nil {
		s.logger.Errorf("error saving commands: %v", err)
		return fmt.Errorf("failed to save commands: %w", err)
	}

	s.logger.Infof("command deleted: %s", name)
	return nil
}

// Execute implements CommandService
func (s *commandService) Execute(ctx context.Context, name, text string) (*ExecuteResponse, error) {
	set := s.load()

	cmd, ok := set.Get(name)
	if !ok {
		return nil, ErrCommandNotFound
	}
	if !cmd.Enabled {
		return nil, fmt.Errorf("%w: %s", ErrCommandDisabled, name)
	}

	tree := s.settings.GetSettings(ctx)
	result, err := s.generatorFor(tree).Generate(ctx, llm.Request{
		Prompt:      cmd.RenderPrompt(text),
		Model:       tree.GetString("llm.model", "gpt-3.5-turbo"),
		Temperature: tree.GetFloat("llm.temperature", 0.3),
		MaxTokens:   tree.GetInt("llm.max_tokens", 1000),
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return nil, ErrNotConfigured
		}
		s.logger.Errorf("error executing command %s: %v", name, err)
		return nil, fmt.Errorf("failed to execute command %s: %w", name, err)
	}

	response := &ExecuteResponse{Command: name, Result: result}

	// text_file commands persist their result; a write failure keeps
	// the result usable.
	if cmd.OutputFormat == FormatTextFile {
		filename := fmt.Sprintf("command_result_%s_%s.txt", name, utils.FileTimestamp(time.Now()))
		path, err := s.outputs.SaveOutput(filename, []byte(result))
		if err != nil {
			s.logger.Warnf("error saving command output %s: %v", filename, err)
		} else {
			response.OutputFile = &path
		}
	}

	s.logger.Infof("command executed: %s", name)
	return response, nil
}

// generatorFor honors the llm.enabled switch before consulting the registry.
func (s *commandService) generatorFor(tree settings.SettingsTree) llm.TextGenerator {
	if !tree.GetBool("llm.enabled", false) {
		return llm.NewNullGenerator()
	}
	return s.registry.Get(tree.GetString("llm.provider", "openai"))
}

// NewCommandService creates a new instance of CommandService
func NewCommandService(repository CommandRepository, outputs OutputWriter, registry *llm.Registry, settingsService settings.SettingsService, logger *Logger.Logger) CommandService {
	return &commandService{
		repository: repository,
		outputs:    outputs,
		registry:   registry,
		settings:   settingsService,
		logger:     logger,
	}
}
