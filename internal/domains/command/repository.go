package command

import (
	"sort"
	"strings"

	"github.com/hukuitappei/voicetask/internal/constants/prompts"
)

// OutputFormat controls what happens with a command's result.
type OutputFormat string

const (
	FormatBulletPoints OutputFormat = "bullet_points"
	FormatSummary      OutputFormat = "summary"
	FormatTextFile     OutputFormat = "text_file"
)

func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatBulletPoints, FormatSummary, FormatTextFile:
		return true
	}
	return false
}

// placeholder is replaced with the input text when a command runs.
const placeholder = "{text}"

// Command is one stored prompt command. The name lives in the set's
// map key, matching the on-disk layout.
type Command struct {
	Description  string       `json:"description"`
	LLMPrompt    string       `json:"llm_prompt"`
	OutputFormat OutputFormat `json:"output_format"`
	Enabled      bool         `json:"enabled"`
}

// RenderPrompt substitutes the input text into the command prompt.
func (c Command) RenderPrompt(text string) string {
	return strings.ReplaceAll(c.LLMPrompt, placeholder, text)
}

// CommandSet is the full prompt-command document.
type CommandSet struct {
	Commands map[string]Command `json:"commands"`
}

// NewCommandSet builds a set seeded with the built-in commands.
func NewCommandSet() *CommandSet {
	return &CommandSet{
		Commands: map[string]Command{
			"箇条書き": {
				Description:  "文字起こし結果を箇条書きに変換",
				LLMPrompt:    "以下の文字起こし結果を箇条書きに変換してください：\n\n{text}",
				OutputFormat: FormatBulletPoints,
				Enabled:      true,
			},
			"要約": {
				Description:  "文字起こし結果を要約",
				LLMPrompt:    prompts.SUMMARIZE.GetCurrentPrompt().Template,
				OutputFormat: FormatSummary,
				Enabled:      true,
			},
			"テキストファイル出力": {
				Description:  "文字起こし結果をテキストファイルとして保存",
				LLMPrompt:    "以下の文字起こし結果を整理してテキストファイル用にフォーマットしてください：\n\n{text}",
				OutputFormat: FormatTextFile,
				Enabled:      true,
			},
		},
	}
}

// Get looks a command up by name.
func (s *CommandSet) Get(name string) (Command, bool) {
	cmd, ok := s.Commands[name]
	return cmd, ok
}

// Add stores a command under its name, replacing any existing one.
func (s *CommandSet) Add(name string, cmd Command) {
	if s.Commands == nil {
		s.Commands = make(map[string]Command)
	}
	s.Commands[name] = cmd
}

// Remove deletes a command, reporting whether it was present.
func (s *CommandSet) Remove(name string) bool {
	if _, ok := s.Commands[name]; !ok {
		return false
	}
	delete(s.Commands, name)
	return true
}

// Names returns every command name in sorted order.
func (s *CommandSet) Names() []string {
	names := make([]string, 0, len(s.Commands))
	for name := range s.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateCommandRequest represents the request to create a command
type CreateCommandRequest struct {
	Name         string       `json:"name" binding:"required,min=1,max=100"`
	Description  string       `json:"description" binding:"max=500"`
	LLMPrompt    string       `json:"llm_prompt" binding:"required,min=1"`
	OutputFormat OutputFormat `json:"output_format"`
	Enabled      *bool        `json:"enabled"`
}

// UpdateCommandRequest represents the request to update a command
type UpdateCommandRequest struct {
	Description  *string       `json:"description" binding:"omitempty,max=500"`
	LLMPrompt    *string       `json:"llm_prompt" binding:"omitempty,min=1"`
	OutputFormat *OutputFormat `json:"output_format"`
	Enabled      *bool         `json:"enabled"`
}

// ExecuteCommandRequest represents the request to run a command
type ExecuteCommandRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommandResponse represents one stored command
type CommandResponse struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	LLMPrompt    string       `json:"llm_prompt"`
	OutputFormat OutputFormat `json:"output_format"`
	Enabled      bool         `json:"enabled"`
}

// ExecuteResponse represents a command run
type ExecuteResponse struct {
	Command    string  `json:"command"`
	Result     string  `json:"result"`
	OutputFile *string `json:"output_file,omitempty"`
}

// CommandRepository defines the interface for command persistence
type CommandRepository interface {
	Load() (*CommandSet, error)
	Save(*CommandSet) error
}

// OutputWriter stores command results as downloadable files.
type OutputWriter interface {
	SaveOutput(filename string, content []byte) (string, error)
}
