package command

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/llm"
)

func TestNewCommandSetSeeds(t *testing.T) {
	set := NewCommandSet()

	expected := map[string]OutputFormat{
		"箇条書き":       FormatBulletPoints,
		"要約":         FormatSummary,
		"テキストファイル出力": FormatTextFile,
	}

	if len(set.Commands) != len(expected) {
		t.Fatalf("Expected %d seeded commands, got %d", len(expected), len(set.Commands))
	}
	for name, format := range expected {
		cmd, ok := set.Get(name)
		if !ok {
			t.Errorf("Expected seeded command %q", name)
			continue
		}
		if cmd.OutputFormat != format {
			t.Errorf("Expected format %q for %q, got %q", format, name, cmd.OutputFormat)
		}
		if !cmd.Enabled {
			t.Errorf("Expected seeded command %q to be enabled", name)
		}
		if !strings.Contains(cmd.LLMPrompt, "{text}") {
			t.Errorf("Expected prompt of %q to carry the {text} placeholder", name)
		}
	}
}

func TestRenderPrompt(t *testing.T) {
	cmd := Command{LLMPrompt: "以下を処理：\n\n{text}"}

	got := cmd.RenderPrompt("こんにちは")

	if got != "以下を処理：\n\nこんにちは" {
		t.Errorf("Expected substituted prompt, got %q", got)
	}
}

type memoryCommandRepo struct {
	set     *CommandSet
	loadErr error
	saves   int
}

func (r *memoryCommandRepo) Load() (*CommandSet, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.set == nil {
		return NewCommandSet(), nil
	}
	return r.set, nil
}

func (r *memoryCommandRepo) Save(set *CommandSet) error {
	r.set = set
	r.saves++
	return nil
}

type recordingWriter struct {
	filename string
	content  []byte
	err      error
}

func (w *recordingWriter) SaveOutput(filename string, content []byte) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	w.filename = filename
	w.content = content
	return filepath.Join("outputs", filename), nil
}

type stubSettings struct {
	tree settings.SettingsTree
}

func (s stubSettings) GetSettings(ctx context.Context) settings.SettingsTree {
	return s.tree
}

func (s stubSettings) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsTree, error) {
	return s.tree, nil
}

func (s stubSettings) GetValue(ctx context.Context, path string) (any, error) {
	v, _ := s.tree.Get(path)
	return v, nil
}

func (s stubSettings) UpdateValue(ctx context.Context, req settings.UpdateValueRequest) (settings.SettingsTree, error) {
	return s.tree, nil
}

func (s stubSettings) Reset(ctx context.Context) (settings.SettingsTree, error) {
	return s.tree, nil
}

type scriptedGenerator struct {
	response string
	err      error
	requests []llm.Request
}

func (g *scriptedGenerator) Name() string { return "scripted" }

func (g *scriptedGenerator) Generate(ctx context.Context, req llm.Request) (string, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func (g *scriptedGenerator) AvailableModels() []string { return nil }

func llmEnabledTree() settings.SettingsTree {
	return settings.SettingsTree{
		"llm": map[string]any{"enabled": true, "provider": "scripted"},
	}
}

func newService(repo *memoryCommandRepo, writer OutputWriter, tree settings.SettingsTree, gen llm.TextGenerator) CommandService {
	registry := llm.NewRegistry()
	if gen != nil {
		registry.Register(gen)
	}
	if writer == nil {
		writer = &recordingWriter{}
	}
	return NewCommandService(repo, writer, registry, stubSettings{tree: tree}, Logger.NewNop())
}

func TestExecuteSubstitutesText(t *testing.T) {
	gen := &scriptedGenerator{response: "・一つ目\n・二つ目"}
	service := newService(&memoryCommandRepo{}, nil, llmEnabledTree(), gen)

	resp, err := service.Execute(context.Background(), "箇条書き", "一つ目。二つ目。")
	if err != nil {
		t.Fatalf("Expected execute to succeed, got %v", err)
	}

	if resp.Result != "・一つ目\n・二つ目" {
		t.Errorf("Expected generator result, got %q", resp.Result)
	}
	if len(gen.requests) != 1 {
		t.Fatalf("Expected 1 generator call, got %d", len(gen.requests))
	}
	prompt := gen.requests[0].Prompt
	if !strings.Contains(prompt, "一つ目。二つ目。") {
		t.Errorf("Expected prompt to carry the input text, got %q", prompt)
	}
	if strings.Contains(prompt, "{text}") {
		t.Errorf("Expected placeholder to be substituted, got %q", prompt)
	}
	if gen.requests[0].MaxTokens != 1000 {
		t.Errorf("Expected default max tokens 1000, got %d", gen.requests[0].MaxTokens)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	service := newService(&memoryCommandRepo{}, nil, llmEnabledTree(), &scriptedGenerator{})

	_, err := service.Execute(context.Background(), "存在しない", "テキスト")
	if !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("Expected ErrCommandNotFound, got %v", err)
	}
}

func TestExecuteDisabledCommand(t *testing.T) {
	repo := &memoryCommandRepo{}
	service := newService(repo, nil, llmEnabledTree(), &scriptedGenerator{})
	ctx := context.Background()

	disabled := false
	_, err := service.CreateCommand(ctx, CreateCommandRequest{
		Name:      "停止中",
		LLMPrompt: "{text}",
		Enabled:   &disabled,
	})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	_, err = service.Execute(ctx, "停止中", "テキスト")
	if !errors.Is(err, ErrCommandDisabled) {
		t.Errorf("Expected ErrCommandDisabled, got %v", err)
	}
}

func TestExecuteWithoutConfiguredGenerator(t *testing.T) {
	service := newService(&memoryCommandRepo{}, nil, settings.SettingsTree{}, nil)

	_, err := service.Execute(context.Background(), "要約", "テキスト")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestExecuteTextFileWritesOutput(t *testing.T) {
	writer := &recordingWriter{}
	gen := &scriptedGenerator{response: "整形済みテキスト"}
	service := newService(&memoryCommandRepo{}, writer, llmEnabledTree(), gen)

	resp, err := service.Execute(context.Background(), "テキストファイル出力", "元のテキスト")
	if err != nil {
		t.Fatalf("Expected execute to succeed, got %v", err)
	}

	if !strings.HasPrefix(writer.filename, "command_result_テキストファイル出力_") {
		t.Errorf("Expected output filename prefix, got %q", writer.filename)
	}
	if !strings.HasSuffix(writer.filename, ".txt") {
		t.Errorf("Expected .txt output file, got %q", writer.filename)
	}
	if string(writer.content) != "整形済みテキスト" {
		t.Errorf("Expected result to be written, got %q", writer.content)
	}
	if resp.OutputFile == nil || *resp.OutputFile != filepath.Join("outputs", writer.filename) {
		t.Errorf("Expected response to carry the output path, got %v", resp.OutputFile)
	}
}

func TestExecuteTextFileSurvivesWriteFailure(t *testing.T) {
	writer := &recordingWriter{err: errors.New("disk full")}
	gen := &scriptedGenerator{response: "整形済みテキスト"}
	service := newService(&memoryCommandRepo{}, writer, llmEnabledTree(), gen)

	resp, err := service.Execute(context.Background(), "テキストファイル出力", "元のテキスト")
	if err != nil {
		t.Fatalf("Expected execute to survive write failure, got %v", err)
	}
	if resp.OutputFile != nil {
		t.Errorf("Expected no output path on write failure, got %q", *resp.OutputFile)
	}
	if resp.Result != "整形済みテキスト" {
		t.Errorf("Expected result to survive, got %q", resp.Result)
	}
}

func TestCreateCommandRejectsUnknownFormat(t *testing.T) {
	service := newService(&memoryCommandRepo{}, nil, llmEnabledTree(), nil)

	_, err := service.CreateCommand(context.Background(), CreateCommandRequest{
		Name:         "不正",
		LLMPrompt:    "{text}",
		OutputFormat: "markdown",
	})
	if !errors.Is(err, ErrInvalidCommandData) {
		t.Errorf("Expected ErrInvalidCommandData, got %v", err)
	}
}

func TestUpdateCommand(t *testing.T) {
	repo := &memoryCommandRepo{}
	service := newService(repo, nil, llmEnabledTree(), nil)
	ctx := context.Background()

	description := "新しい説明"
	enabled := false
	updated, err := service.UpdateCommand(ctx, "要約", UpdateCommandRequest{
		Description: &description,
		Enabled:     &enabled,
	})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	if updated.Description != description {
		t.Errorf("Expected description %q, got %q", description, updated.Description)
	}
	if updated.Enabled {
		t.Error("Expected command to be disabled")
	}
	if repo.saves != 1 {
		t.Errorf("Expected 1 save, got %d", repo.saves)
	}
}

func TestDeleteCommand(t *testing.T) {
	repo := &memoryCommandRepo{}
	service := newService(repo, nil, llmEnabledTree(), nil)
	ctx := context.Background()

	if err := service.DeleteCommand(ctx, "箇条書き"); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}
	if err := service.DeleteCommand(ctx, "箇条書き"); !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("Expected ErrCommandNotFound on second delete, got %v", err)
	}
}

func TestListCommandsSorted(t *testing.T) {
	service := newService(&memoryCommandRepo{}, nil, llmEnabledTree(), nil)

	commands, err := service.ListCommands(context.Background())
	if err != nil {
		t.Fatalf("Expected list to succeed, got %v", err)
	}
	if len(commands) != 3 {
		t.Fatalf("Expected 3 seeded commands, got %d", len(commands))
	}
	for i := 1; i < len(commands); i++ {
		if commands[i-1].Name > commands[i].Name {
			t.Errorf("Expected sorted names, got %q before %q", commands[i-1].Name, commands[i].Name)
		}
	}
}
