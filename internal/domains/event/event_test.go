package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

func TestNewEventDefaults(t *testing.T) {
	before := time.Now()
	event := NewEvent(CreateEventRequest{Title: "定例会議"})
	after := time.Now()

	if event.StartDate.Before(before) || event.StartDate.After(after) {
		t.Errorf("Expected start date around now, got %v", event.StartDate)
	}
	if got := event.EndDate.Sub(event.StartDate); got != DefaultDuration {
		t.Errorf("Expected default duration %v, got %v", DefaultDuration, got)
	}
	if event.Category != DefaultCategory {
		t.Errorf("Expected category %q, got %q", DefaultCategory, event.Category)
	}
}

func TestNewEventExplicitDates(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	event := NewEvent(CreateEventRequest{Title: "打ち合わせ", StartDate: &start, EndDate: &end, Category: "会議"})

	if !event.StartDate.Equal(start) {
		t.Errorf("Expected start %v, got %v", start, event.StartDate)
	}
	if !event.EndDate.Equal(end) {
		t.Errorf("Expected end %v, got %v", end, event.EndDate)
	}
	if event.Category != "会議" {
		t.Errorf("Expected category %q, got %q", "会議", event.Category)
	}
}

func TestNewEventStartOnlyGetsDefaultDuration(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	event := NewEvent(CreateEventRequest{Title: "打ち合わせ", StartDate: &start})

	expected := start.Add(DefaultDuration)
	if !event.EndDate.Equal(expected) {
		t.Errorf("Expected end %v, got %v", expected, event.EndDate)
	}
}

func TestNewImported(t *testing.T) {
	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	event := NewImported("gcal-123", "", "remote description", start, end, false)

	if event.Title != UntitledTitle {
		t.Errorf("Expected fallback title %q, got %q", UntitledTitle, event.Title)
	}
	if event.Category != ImportedCategory {
		t.Errorf("Expected category %q, got %q", ImportedCategory, event.Category)
	}
	if !event.IsSynced() || *event.GoogleEventID != "gcal-123" {
		t.Errorf("Expected imported event to carry google event ID, got %v", event.GoogleEventID)
	}
}

func TestFromExtractedKeepsCategory(t *testing.T) {
	entity := extraction.ExtractedEntity{
		Kind:        extraction.KindEvent,
		Title:       "来週の定例会議",
		Description: "来週の定例会議",
		Category:    extraction.DefaultCategory,
	}

	event := FromExtracted(entity, nil)

	if event.Category != extraction.DefaultCategory {
		t.Errorf("Expected category %q, got %q", extraction.DefaultCategory, event.Category)
	}
	if got := event.EndDate.Sub(event.StartDate); got != DefaultDuration {
		t.Errorf("Expected default duration %v, got %v", DefaultDuration, got)
	}
}

type memoryEventRepo struct {
	events    map[uuid.UUID]*Event
	failTitle string
}

func newMemoryEventRepo() *memoryEventRepo {
	return &memoryEventRepo{events: make(map[uuid.UUID]*Event)}
}

func (r *memoryEventRepo) Create(ctx context.Context, event *Event) error {
	if r.failTitle != "" && event.Title == r.failTitle {
		return errors.New("store rejected event")
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *memoryEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *memoryEventRepo) Update(ctx context.Context, event *Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return ErrEventNotFound
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *memoryEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *memoryEventRepo) List(ctx context.Context, req ListEventsRequest) ([]*Event, int64, error) {
	var out []*Event
	for _, event := range r.events {
		if req.Category != "" && event.Category != req.Category {
			continue
		}
		if req.From != nil && event.StartDate.Before(*req.From) {
			continue
		}
		if req.To != nil && event.StartDate.After(*req.To) {
			continue
		}
		copied := *event
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memoryEventRepo) GetByGoogleEventID(ctx context.Context, googleEventID string) (*Event, error) {
	for _, event := range r.events {
		if event.GoogleEventID != nil && *event.GoogleEventID == googleEventID {
			copied := *event
			return &copied, nil
		}
	}
	return nil, ErrEventNotFound
}

func (r *memoryEventRepo) ListUnsynced(ctx context.Context) ([]*Event, error) {
	var out []*Event
	for _, event := range r.events {
		if !event.IsSynced() {
			copied := *event
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryEventRepo) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	event, ok := r.events[id]
	if !ok {
		return ErrEventNotFound
	}
	event.MarkSynced(googleEventID)
	return nil
}

type recordingMirror struct {
	deleted []string
	err     error
}

func (m *recordingMirror) DeleteRemoteEvent(ctx context.Context, googleEventID string) error {
	m.deleted = append(m.deleted, googleEventID)
	return m.err
}

func TestCreateEventRejectsBackwardsRange(t *testing.T) {
	service := NewEventService(newMemoryEventRepo(), nil, Logger.NewNop())

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := service.CreateEvent(context.Background(), CreateEventRequest{Title: "打ち合わせ", StartDate: &start, EndDate: &end})
	if !errors.Is(err, ErrInvalidEventData) {
		t.Errorf("Expected ErrInvalidEventData, got %v", err)
	}
}

func TestUpdateEventAppliesOnlyProvidedFields(t *testing.T) {
	repo := newMemoryEventRepo()
	service := NewEventService(repo, nil, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, CreateEventRequest{Title: "定例会議", Category: "会議"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	title := "臨時会議"
	allDay := true
	updated, err := service.UpdateEvent(ctx, created.ID, UpdateEventRequest{Title: &title, AllDay: &allDay})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	if updated.Title != title {
		t.Errorf("Expected title %q, got %q", title, updated.Title)
	}
	if !updated.AllDay {
		t.Error("Expected all_day to be set")
	}
	if updated.Category != "会議" {
		t.Errorf("Expected untouched category %q, got %q", "会議", updated.Category)
	}
}

func TestUpdateEventRejectsBackwardsRange(t *testing.T) {
	repo := newMemoryEventRepo()
	service := NewEventService(repo, nil, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, CreateEventRequest{Title: "定例会議"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	badEnd := created.StartDate.Add(-time.Hour)
	_, err = service.UpdateEvent(ctx, created.ID, UpdateEventRequest{EndDate: &badEnd})
	if !errors.Is(err, ErrInvalidEventData) {
		t.Errorf("Expected ErrInvalidEventData, got %v", err)
	}
}

func TestDeleteEventRemovesRemoteMirror(t *testing.T) {
	repo := newMemoryEventRepo()
	mirror := &recordingMirror{}
	service := NewEventService(repo, mirror, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, CreateEventRequest{Title: "定例会議"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}
	if err := repo.SetGoogleEventID(ctx, created.ID, "gcal-event-4"); err != nil {
		t.Fatalf("Expected sync marking to succeed, got %v", err)
	}

	if err := service.DeleteEvent(ctx, created.ID); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	if len(mirror.deleted) != 1 || mirror.deleted[0] != "gcal-event-4" {
		t.Errorf("Expected remote event gcal-event-4 to be deleted, got %v", mirror.deleted)
	}
}

func TestCreateFromEntitiesSkipsTasks(t *testing.T) {
	repo := newMemoryEventRepo()
	service := NewEventService(repo, nil, Logger.NewNop())

	entities := []extraction.ExtractedEntity{
		{Kind: extraction.KindTask, Title: "資料を準備する"},
		{Kind: extraction.KindEvent, Title: "来週の定例会議"},
	}

	responses, err := service.CreateFromEntities(context.Background(), entities, nil)
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("Expected 1 stored event, got %d", len(responses))
	}
	if responses[0].Title != "来週の定例会議" {
		t.Errorf("Expected title %q, got %q", "来週の定例会議", responses[0].Title)
	}
}
