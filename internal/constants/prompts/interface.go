package prompts

import "strings"

type PromptDefinition struct {
	System   string
	Template string // user prompt with a {text} placeholder
	Version  float32
}

type SYS_PROMPT struct {
	Intent         string
	CurrentVersion float32
	Items          map[float32]PromptDefinition // version-content
}

func (sp *SYS_PROMPT) GetVersion(version float32) (PromptDefinition, bool) {
	i, ok := sp.Items[version]
	return i, ok
}

func (sp *SYS_PROMPT) GetCurrentPrompt() PromptDefinition {
	return sp.Items[sp.CurrentVersion]
}

// Render substitutes the transcript into the template's {text} slot.
func (pd PromptDefinition) Render(text string) string {
	return strings.ReplaceAll(pd.Template, "{text}", text)
}
