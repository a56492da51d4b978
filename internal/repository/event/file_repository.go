package event

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/repository/fsjson"
)

// eventRecord is the on-disk shape of one event inside settings/calendar.json.
type eventRecord struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	AllDay        bool      `json:"all_day"`
	Category      string    `json:"category"`
	GoogleEventID *string   `json:"google_event_id"`
	TranscriptID  *string   `json:"transcript_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// metadata is the bookkeeping block of settings/calendar.json. total_events
// is recomputed on every save so a failed write cannot make it drift.
type metadata struct {
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	TotalEvents int       `json:"total_events"`
}

type eventDocument struct {
	Events     map[string]eventRecord `json:"events"`
	Categories []string               `json:"categories"`
	Metadata   metadata               `json:"metadata"`
}

// FileEventRepo keeps every event in one JSON document.
type FileEventRepo struct {
	mu        sync.Mutex
	path      string
	createdAt time.Time
}

func defaultEventDocument() *eventDocument {
	return &eventDocument{
		Events:     make(map[string]eventRecord),
		Categories: event.DefaultCategories(),
	}
}

func (f *FileEventRepo) load() (*eventDocument, error) {
	doc := &eventDocument{}
	if err := fsjson.Load(f.path, doc); err != nil {
		if os.IsNotExist(err) {
			doc = defaultEventDocument()
			if err := f.save(doc); err != nil {
				return nil, fmt.Errorf("failed to seed event store: %w", err)
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to load event store: %w", err)
	}
	if doc.Events == nil {
		doc.Events = make(map[string]eventRecord)
	}
	if !doc.Metadata.CreatedAt.IsZero() {
		f.createdAt = doc.Metadata.CreatedAt
	}
	return doc, nil
}

func (f *FileEventRepo) save(doc *eventDocument) error {
	now := time.Now()
	if f.createdAt.IsZero() {
		f.createdAt = now
	}
	doc.Metadata = metadata{
		CreatedAt:   f.createdAt,
		LastUpdated: now,
		TotalEvents: len(doc.Events),
	}
	if err := fsjson.Save(f.path, doc); err != nil {
		return fmt.Errorf("failed to save event store: %w", err)
	}
	return nil
}

func eventRecordFromDomain(e *event.Event) eventRecord {
	rec := eventRecord{
		ID:            e.ID.String(),
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		AllDay:        e.AllDay,
		Category:      e.Category,
		GoogleEventID: e.GoogleEventID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.TranscriptID != nil {
		id := e.TranscriptID.String()
		rec.TranscriptID = &id
	}
	return rec
}

func (r eventRecord) toDomain() (*event.Event, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event id %q: %w", r.ID, err)
	}

	e := &event.Event{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		AllDay:        r.AllDay,
		Category:      r.Category,
		GoogleEventID: r.GoogleEventID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.TranscriptID != nil {
		tid, err := uuid.Parse(*r.TranscriptID)
		if err == nil {
			e.TranscriptID = &tid
		}
	}
	return e, nil
}

// Create implements event.EventRepository
func (f *FileEventRepo) Create(ctx context.Context, e *event.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.Events[e.ID.String()] = eventRecordFromDomain(e)
	return f.save(doc)
}

// GetByID implements event.EventRepository
func (f *FileEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	rec, ok := doc.Events[id.String()]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return rec.toDomain()
}

// Update implements event.EventRepository
func (f *FileEventRepo) Update(ctx context.Context, e *event.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	key := e.ID.String()
	if _, ok := doc.Events[key]; !ok {
		return event.ErrEventNotFound
	}
	doc.Events[key] = eventRecordFromDomain(e)
	return f.save(doc)
}

// Delete implements event.EventRepository
func (f *FileEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	key := id.String()
	if _, ok := doc.Events[key]; !ok {
		return event.ErrEventNotFound
	}
	delete(doc.Events, key)
	return f.save(doc)
}

// List implements event.EventRepository
func (f *FileEventRepo) List(ctx context.Context, req event.ListEventsRequest) ([]*event.Event, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, 0, err
	}

	var matched []*event.Event
	for _, rec := range doc.Events {
		if req.Category != "" && rec.Category != req.Category {
			continue
		}
		if req.From != nil && rec.StartDate.Before(*req.From) {
			continue
		}
		if req.To != nil && rec.StartDate.After(*req.To) {
			continue
		}
		e, err := rec.toDomain()
		if err != nil {
			return nil, 0, err
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartDate.Before(matched[j].StartDate)
	})

	total := int64(len(matched))
	if req.Offset > 0 {
		if req.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[req.Offset:]
		}
	}
	if req.Limit > 0 && req.Limit < len(matched) {
		matched = matched[:req.Limit]
	}
	return matched, total, nil
}

// GetByGoogleEventID implements event.EventRepository
func (f *FileEventRepo) GetByGoogleEventID(ctx context.Context, googleEventID string) (*event.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc.Events {
		if rec.GoogleEventID != nil && *rec.GoogleEventID == googleEventID {
			return rec.toDomain()
		}
	}
	return nil, event.ErrEventNotFound
}

// ListUnsynced implements event.EventRepository
func (f *FileEventRepo) ListUnsynced(ctx context.Context) ([]*event.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	var out []*event.Event
	for _, rec := range doc.Events {
		if rec.GoogleEventID != nil && *rec.GoogleEventID != "" {
			continue
		}
		e, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

// SetGoogleEventID implements event.EventRepository
func (f *FileEventRepo) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	rec, ok := doc.Events[id.String()]
	if !ok {
		return event.ErrEventNotFound
	}
	rec.GoogleEventID = &googleEventID
	rec.UpdatedAt = time.Now()
	doc.Events[id.String()] = rec
	return f.save(doc)
}

// NewFileEventRepo creates an event repository backed by a JSON document.
func NewFileEventRepo(path string) event.EventRepository {
	return &FileEventRepo{path: path}
}
