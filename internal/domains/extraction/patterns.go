package extraction

import (
	"regexp"
	"strings"
)

// linePattern pairs a compiled expression with the function that pulls the
// title out of its match. Patterns are tried strictly in slice order and the
// first hit settles the line, so the order here is part of the contract:
// quoted beats bulleted beats labeled.
type linePattern struct {
	name    string
	re      *regexp.Regexp
	extract func(match []string) string
}

func firstGroup(match []string) string {
	return strings.TrimSpace(match[1])
}

// Labels are accepted line-leading only, followed by a colon (half or full
// width) or whitespace: both タスク：資料 and タスク 資料 name a task.
func labeled(label string) linePattern {
	return linePattern{
		name:    "labeled-" + label,
		re:      regexp.MustCompile(`^(?i:` + label + `)[：:\s]\s*(.+?)$`),
		extract: firstGroup,
	}
}

var (
	quotedPattern = linePattern{
		name:    "quoted",
		re:      regexp.MustCompile(`["「](.+?)[」"]`),
		extract: firstGroup,
	}
	bulletedPattern = linePattern{
		name:    "bulleted",
		re:      regexp.MustCompile(`^[-•*]\s*(.+?)$`),
		extract: firstGroup,
	}
)

var taskLinePatterns = []linePattern{
	quotedPattern,
	bulletedPattern,
	labeled("タスク"),
	labeled("やること"),
	labeled("todo"),
	labeled("task"),
}

var eventLinePatterns = []linePattern{
	quotedPattern,
	bulletedPattern,
	labeled("予定"),
	labeled("会議"),
}

// Secondary classification keywords, scanned over the full source line in
// fixed order; the first hit wins.
var priorityKeywords = []struct {
	keyword  string
	priority Priority
}{
	{"緊急", PriorityUrgent},
	{"高", PriorityHigh},
	{"中", PriorityMedium},
	{"低", PriorityLow},
}

var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"仕事", "Work"},
	{"プライベート", "Personal"},
	{"勉強", "Study"},
	{"健康", "Health"},
}

func classifyPriority(line string) Priority {
	for _, pk := range priorityKeywords {
		if strings.Contains(line, pk.keyword) {
			return pk.priority
		}
	}
	return PriorityMedium
}

func classifyCategory(line string) string {
	for _, ck := range categoryKeywords {
		if strings.Contains(line, ck.keyword) {
			return ck.category
		}
	}
	return DefaultCategory
}
