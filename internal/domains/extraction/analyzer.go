package extraction

import (
	"strings"
	"unicode/utf8"
)

// Titles of three runes or fewer are noise ("短い", stray particles) and are
// dropped after a pattern matched; the line is still consumed.
const minTitleRunes = 4

// Analyzer walks text line by line against an ordered pattern list and
// builds entities of one kind. It is pure: no IO, no state mutation.
type Analyzer struct {
	kind     Kind
	patterns []linePattern
}

func NewTaskAnalyzer() *Analyzer {
	return &Analyzer{kind: KindTask, patterns: taskLinePatterns}
}

func NewEventAnalyzer() *Analyzer {
	return &Analyzer{kind: KindEvent, patterns: eventLinePatterns}
}

// Analyze extracts at most one entity per non-empty line. The first matching
// pattern settles the line even when its title is then discarded as too
// short.
func (a *Analyzer) Analyze(text string) []ExtractedEntity {
	entities := make([]ExtractedEntity, 0)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		for _, p := range a.patterns {
			match := p.re.FindStringSubmatch(line)
			if match == nil {
				continue
			}

			title := p.extract(match)
			if title != "" && utf8.RuneCountInString(title) >= minTitleRunes {
				entities = append(entities, a.buildEntity(title, line))
			}
			break
		}
	}

	return entities
}

func (a *Analyzer) buildEntity(title, line string) ExtractedEntity {
	entity := ExtractedEntity{
		Kind:        a.kind,
		Title:       title,
		Description: title,
		Category:    DefaultCategory,
		SourceLine:  line,
	}
	if a.kind == KindTask {
		entity.Priority = classifyPriority(line)
		entity.Category = classifyCategory(line)
	}
	return entity
}
