package task

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/internal/repository/fsjson"
)

// taskRecord is the on-disk shape of one task inside settings/tasks.json.
type taskRecord struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Category      string     `json:"category"`
	DueDate       *time.Time `json:"due_date"`
	GoogleEventID *string    `json:"google_event_id"`
	TranscriptID  *string    `json:"transcript_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// metadata is the bookkeeping block of settings/tasks.json. total_tasks is
// recomputed on every save so a failed write cannot make it drift.
type metadata struct {
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	TotalTasks  int       `json:"total_tasks"`
}

type taskDocument struct {
	Tasks      map[string]taskRecord `json:"tasks"`
	Categories []string              `json:"categories"`
	Priorities []string              `json:"priorities"`
	Metadata   metadata              `json:"metadata"`
}

// FileTaskRepo keeps every task in one JSON document. Suited to the
// single-user file storage driver; the GORM repo covers mysql.
type FileTaskRepo struct {
	mu        sync.Mutex
	path      string
	createdAt time.Time
}

func defaultTaskDocument() *taskDocument {
	return &taskDocument{
		Tasks:      make(map[string]taskRecord),
		Categories: task.DefaultCategories(),
		Priorities: task.PriorityLabels(),
	}
}

func (f *FileTaskRepo) load() (*taskDocument, error) {
	doc := &taskDocument{}
	if err := fsjson.Load(f.path, doc); err != nil {
		if os.IsNotExist(err) {
			doc = defaultTaskDocument()
			if err := f.save(doc); err != nil {
				return nil, fmt.Errorf("failed to seed task store: %w", err)
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to load task store: %w", err)
	}
	if doc.Tasks == nil {
		doc.Tasks = make(map[string]taskRecord)
	}
	if !doc.Metadata.CreatedAt.IsZero() {
		f.createdAt = doc.Metadata.CreatedAt
	}
	return doc, nil
}

func (f *FileTaskRepo) save(doc *taskDocument) error {
	now := time.Now()
	if f.createdAt.IsZero() {
		f.createdAt = now
	}
	doc.Metadata = metadata{
		CreatedAt:   f.createdAt,
		LastUpdated: now,
		TotalTasks:  len(doc.Tasks),
	}
	if err := fsjson.Save(f.path, doc); err != nil {
		return fmt.Errorf("failed to save task store: %w", err)
	}
	return nil
}

func taskRecordFromDomain(t *task.Task) taskRecord {
	rec := taskRecord{
		ID:            t.ID.String(),
		Title:         t.Title,
		Description:   t.Description,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		Category:      t.Category,
		DueDate:       t.DueDate,
		GoogleEventID: t.GoogleEventID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.TranscriptID != nil {
		id := t.TranscriptID.String()
		rec.TranscriptID = &id
	}
	return rec
}

func (r taskRecord) toDomain() (*task.Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task id %q: %w", r.ID, err)
	}

	t := &task.Task{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		Status:        task.TaskStatus(r.Status),
		Priority:      task.TaskPriority(r.Priority),
		Category:      r.Category,
		DueDate:       r.DueDate,
		GoogleEventID: r.GoogleEventID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.TranscriptID != nil {
		tid, err := uuid.Parse(*r.TranscriptID)
		if err == nil {
			t.TranscriptID = &tid
		}
	}
	return t, nil
}

// Create implements task.TaskRepository
func (f *FileTaskRepo) Create(ctx context.Context, t *task.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.Tasks[t.ID.String()] = taskRecordFromDomain(t)
	return f.save(doc)
}

// GetByID implements task.TaskRepository
func (f *FileTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	rec, ok := doc.Tasks[id.String()]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	return rec.toDomain()
}

// Update implements task.TaskRepository
func (f *FileTaskRepo) Update(ctx context.Context, t *task.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	key := t.ID.String()
	if _, ok := doc.Tasks[key]; !ok {
		return task.ErrTaskNotFound
	}
	doc.Tasks[key] = taskRecordFromDomain(t)
	return f.save(doc)
}

// Delete implements task.TaskRepository
func (f *FileTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	key := id.String()
	if _, ok := doc.Tasks[key]; !ok {
		return task.ErrTaskNotFound
	}
	delete(doc.Tasks, key)
	return f.save(doc)
}

// List implements task.TaskRepository
func (f *FileTaskRepo) List(ctx context.Context, req task.ListTasksRequest) ([]*task.Task, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, 0, err
	}

	var matched []*task.Task
	for _, rec := range doc.Tasks {
		if req.Status != "" && rec.Status != string(req.Status) {
			continue
		}
		if req.Priority != "" && rec.Priority != string(req.Priority) {
			continue
		}
		if req.Category != "" && rec.Category != req.Category {
			continue
		}
		t, err := rec.toDomain()
		if err != nil {
			return nil, 0, err
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	matched = paginate(matched, req.Offset, req.Limit)
	return matched, total, nil
}

// Stats implements task.TaskRepository
func (f *FileTaskRepo) Stats(ctx context.Context) (*task.TaskStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	stats := &task.TaskStats{
		ByStatus:   make(map[task.TaskStatus]int64),
		ByPriority: make(map[task.TaskPriority]int64),
		Categories: doc.Categories,
	}

	now := time.Now()
	for _, rec := range doc.Tasks {
		stats.Total++
		stats.ByStatus[task.TaskStatus(rec.Status)]++
		stats.ByPriority[task.TaskPriority(rec.Priority)]++
		if rec.Status != string(task.StatusCompleted) && rec.DueDate != nil && rec.DueDate.Before(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// ListUnsynced implements task.TaskRepository
func (f *FileTaskRepo) ListUnsynced(ctx context.Context) ([]*task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	var out []*task.Task
	for _, rec := range doc.Tasks {
		if rec.GoogleEventID != nil && *rec.GoogleEventID != "" {
			continue
		}
		t, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// SetGoogleEventID implements task.TaskRepository
func (f *FileTaskRepo) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	rec, ok := doc.Tasks[id.String()]
	if !ok {
		return task.ErrTaskNotFound
	}
	rec.GoogleEventID = &googleEventID
	rec.UpdatedAt = time.Now()
	doc.Tasks[id.String()] = rec
	return f.save(doc)
}

func paginate(items []*task.Task, offset, limit int) []*task.Task {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// NewFileTaskRepo creates a task repository backed by a JSON document.
func NewFileTaskRepo(path string) task.TaskRepository {
	return &FileTaskRepo{path: path}
}
