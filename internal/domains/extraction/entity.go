package extraction

// Kind tells tasks apart from calendar events in extraction output.
type Kind string

const (
	KindTask  Kind = "task"
	KindEvent Kind = "event"
)

// Priority levels for extracted tasks
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultCategory tags entities whose line carried no category keyword.
const DefaultCategory = "音声文字起こし"

// ExtractedEntity is one task or event pulled out of transcript text.
// @Description Task or event extracted from a transcript line
type ExtractedEntity struct {
	Kind        Kind     `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority,omitempty"` // tasks only
	Category    string   `json:"category"`
	SourceLine  string   `json:"source_line"`
}
