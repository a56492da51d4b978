package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/extraction"
)

// DefaultCategory is assigned when an event is created without one.
const DefaultCategory = "その他"

// ImportedCategory tags events pulled in from Google Calendar.
const ImportedCategory = "Google同期"

// UntitledTitle replaces an empty summary on imported events.
const UntitledTitle = "無題"

// DefaultDuration is the span of an event created without an end time.
const DefaultDuration = time.Hour

// DefaultCategories seeds a fresh store with the built-in category list.
func DefaultCategories() []string {
	return []string{"会議", "予定", "イベント", "その他"}
}

type Event struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	AllDay        bool       `json:"all_day"`
	Category      string     `json:"category"`
	GoogleEventID *string    `json:"google_event_id,omitempty"`
	TranscriptID  *uuid.UUID `json:"transcript_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewEvent builds an event from a create request. Without explicit
// dates the event starts now and runs for DefaultDuration.
func NewEvent(req CreateEventRequest) *Event {
	now := time.Now()

	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := start.Add(DefaultDuration)
	if req.EndDate != nil {
		end = *req.EndDate
	}

	category := req.Category
	if category == "" {
		category = DefaultCategory
	}

	return &Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		AllDay:      req.AllDay,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FromExtracted converts an analyzer hit into an event starting now.
func FromExtracted(entity extraction.ExtractedEntity, transcriptID *uuid.UUID) *Event {
	now := time.Now()

	category := entity.Category
	if category == "" {
		category = DefaultCategory
	}

	return &Event{
		ID:           uuid.New(),
		Title:        entity.Title,
		Description:  entity.Description,
		StartDate:    now,
		EndDate:      now.Add(DefaultDuration),
		Category:     category,
		TranscriptID: transcriptID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewImported builds a local copy of a Google Calendar event that has
// no counterpart in the store yet.
func NewImported(googleEventID, title, description string, start, end time.Time, allDay bool) *Event {
	if title == "" {
		title = UntitledTitle
	}

	now := time.Now()
	return &Event{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		StartDate:     start,
		EndDate:       end,
		AllDay:        allDay,
		Category:      ImportedCategory,
		GoogleEventID: &googleEventID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MarkSynced records the Google Calendar event mirroring this event.
func (e *Event) MarkSynced(googleEventID string) {
	e.GoogleEventID = &googleEventID
	e.UpdatedAt = time.Now()
}

// IsSynced reports whether the event already has a calendar mirror.
func (e *Event) IsSynced() bool {
	return e.GoogleEventID != nil && *e.GoogleEventID != ""
}

// ToResponse converts Event to EventResponse
func (e *Event) ToResponse() *EventResponse {
	return &EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		AllDay:        e.AllDay,
		Category:      e.Category,
		GoogleEventID: e.GoogleEventID,
		TranscriptID:  e.TranscriptID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// CreateEventRequest represents the request to create a new event
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=1000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	AllDay      bool       `json:"all_day"`
	Category    string     `json:"category" binding:"max=100"`
}

// UpdateEventRequest represents the request to update an existing event
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	AllDay      *bool      `json:"all_day"`
	Category    *string    `json:"category" binding:"omitempty,max=100"`
}

// ListEventsRequest represents the request to list events with filters
type ListEventsRequest struct {
	Category string     `form:"category"`
	From     *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Offset   int        `form:"offset"`
	Limit    int        `form:"limit"`
}

// EventResponse represents the event data returned to clients
type EventResponse struct {
	ID            uuid.UUID  `json:"id" swaggertype:"string"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	AllDay        bool       `json:"all_day"`
	Category      string     `json:"category"`
	GoogleEventID *string    `json:"google_event_id,omitempty"`
	TranscriptID  *uuid.UUID `json:"transcript_id,omitempty" swaggertype:"string"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Query operations
	List(ctx context.Context, req ListEventsRequest) ([]*Event, int64, error)

	// Calendar mirroring
	GetByGoogleEventID(ctx context.Context, googleEventID string) (*Event, error)
	ListUnsynced(ctx context.Context) ([]*Event, error)
	SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error
}
