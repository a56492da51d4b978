package calendarsync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

type fakeTaskStore struct {
	tasks map[uuid.UUID]*task.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]*task.Task)}
}

func (r *fakeTaskStore) Create(ctx context.Context, t *task.Task) error {
	copied := *t
	r.tasks[t.ID] = &copied
	return nil
}

func (r *fakeTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTaskStore) Update(ctx context.Context, t *task.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return task.ErrTaskNotFound
	}
	copied := *t
	r.tasks[t.ID] = &copied
	return nil
}

func (r *fakeTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskStore) List(ctx context.Context, req task.ListTasksRequest) ([]*task.Task, int64, error) {
	var out []*task.Task
	for _, t := range r.tasks {
		copied := *t
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTaskStore) Stats(ctx context.Context) (*task.TaskStats, error) {
	return &task.TaskStats{Total: int64(len(r.tasks))}, nil
}

func (r *fakeTaskStore) ListUnsynced(ctx context.Context) ([]*task.Task, error) {
	var out []*task.Task
	for _, t := range r.tasks {
		if !t.IsSynced() {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskStore) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	t, ok := r.tasks[id]
	if !ok {
		return task.ErrTaskNotFound
	}
	t.MarkSynced(googleEventID)
	return nil
}

type fakeEventStore struct {
	events map[uuid.UUID]*event.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[uuid.UUID]*event.Event)}
}

func (r *fakeEventStore) Create(ctx context.Context, e *event.Event) error {
	copied := *e
	r.events[e.ID] = &copied
	return nil
}

func (r *fakeEventStore) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventStore) Update(ctx context.Context, e *event.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return event.ErrEventNotFound
	}
	copied := *e
	r.events[e.ID] = &copied
	return nil
}

func (r *fakeEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.events, id)
	return nil
}

func (r *fakeEventStore) List(ctx context.Context, req event.ListEventsRequest) ([]*event.Event, int64, error) {
	var out []*event.Event
	for _, e := range r.events {
		copied := *e
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEventStore) GetByGoogleEventID(ctx context.Context, googleEventID string) (*event.Event, error) {
	for _, e := range r.events {
		if e.GoogleEventID != nil && *e.GoogleEventID == googleEventID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, event.ErrEventNotFound
}

func (r *fakeEventStore) ListUnsynced(ctx context.Context) ([]*event.Event, error) {
	var out []*event.Event
	for _, e := range r.events {
		if !e.IsSynced() {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEventStore) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	e, ok := r.events[id]
	if !ok {
		return event.ErrEventNotFound
	}
	e.MarkSynced(googleEventID)
	return nil
}

// scriptedClient counts inserts and can fail on a chosen title.
type scriptedClient struct {
	taskInserts  int
	eventInserts int
	failTitle    string
	remotes      []RemoteEvent
	listErr      error
}

func (c *scriptedClient) CreateTaskEvent(ctx context.Context, t *task.Task) (string, error) {
	if c.failTitle != "" && t.Title == c.failTitle {
		return "", errors.New("insert rejected")
	}
	c.taskInserts++
	return fmt.Sprintf("g-task-%d", c.taskInserts), nil
}

func (c *scriptedClient) CreateEvent(ctx context.Context, e *event.Event) (string, error) {
	if c.failTitle != "" && e.Title == c.failTitle {
		return "", errors.New("insert rejected")
	}
	c.eventInserts++
	return fmt.Sprintf("g-event-%d", c.eventInserts), nil
}

func (c *scriptedClient) ListUpcoming(ctx context.Context, maxResults int) ([]RemoteEvent, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.remotes, nil
}

func TestSyncTaskRecordsGoogleEventID(t *testing.T) {
	ctx := context.Background()
	tasks := newFakeTaskStore()
	events := newFakeEventStore()
	client := &scriptedClient{}
	service := NewSyncService(tasks, events, client, Logger.NewNop())

	due := time.Now().Add(24 * time.Hour)
	created := task.NewTask(task.CreateTaskRequest{Title: "請求書を送る", DueDate: &due})
	if err := tasks.Create(ctx, created); err != nil {
		t.Fatalf("Expected task create to succeed, got %v", err)
	}

	resp, err := service.SyncTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected sync to succeed, got %v", err)
	}
	if resp.GoogleEventID == nil || *resp.GoogleEventID != "g-task-1" {
		t.Errorf("Expected google event id g-task-1, got %v", resp.GoogleEventID)
	}

	stored, err := tasks.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected stored task, got %v", err)
	}
	if !stored.IsSynced() {
		t.Error("Expected stored task to be marked synced")
	}
}

func TestSyncTaskAlreadyMirroredShortCircuits(t *testing.T) {
	ctx := context.Background()
	tasks := newFakeTaskStore()
	client := &scriptedClient{}
	service := NewSyncService(tasks, newFakeEventStore(), client, Logger.NewNop())

	created := task.NewTask(task.CreateTaskRequest{Title: "同期済みタスク"})
	created.MarkSynced("g-existing")
	if err := tasks.Create(ctx, created); err != nil {
		t.Fatalf("Expected task create to succeed, got %v", err)
	}

	resp, err := service.SyncTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected sync to succeed, got %v", err)
	}
	if resp.GoogleEventID == nil || *resp.GoogleEventID != "g-existing" {
		t.Errorf("Expected existing google event id, got %v", resp.GoogleEventID)
	}
	if client.taskInserts != 0 {
		t.Errorf("Expected no inserts for a mirrored task, got %d", client.taskInserts)
	}
}

func TestSyncTaskUnknownID(t *testing.T) {
	service := NewSyncService(newFakeTaskStore(), newFakeEventStore(), &scriptedClient{}, Logger.NewNop())

	_, err := service.SyncTask(context.Background(), uuid.New())
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestSyncWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	tasks := newFakeTaskStore()
	service := NewSyncService(tasks, newFakeEventStore(), nil, Logger.NewNop())

	created := task.NewTask(task.CreateTaskRequest{Title: "未認証"})
	if err := tasks.Create(ctx, created); err != nil {
		t.Fatalf("Expected task create to succeed, got %v", err)
	}

	_, err := service.SyncTask(ctx, created.ID)
	if !errors.Is(err, ErrNotLinked) {
		t.Errorf("Expected ErrNotLinked, got %v", err)
	}
}

func TestSyncEventRecordsGoogleEventID(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventStore()
	service := NewSyncService(newFakeTaskStore(), events, &scriptedClient{}, Logger.NewNop())

	start := time.Now().Add(time.Hour)
	created := event.NewEvent(event.CreateEventRequest{Title: "打ち合わせ", StartDate: &start})
	if err := events.Create(ctx, created); err != nil {
		t.Fatalf("Expected event create to succeed, got %v", err)
	}

	resp, err := service.SyncEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected sync to succeed, got %v", err)
	}
	if resp.GoogleEventID == nil || *resp.GoogleEventID != "g-event-1" {
		t.Errorf("Expected google event id g-event-1, got %v", resp.GoogleEventID)
	}
}

func TestPushAllSkipsUndatedTasksAndKeepsGoing(t *testing.T) {
	ctx := context.Background()
	tasks := newFakeTaskStore()
	events := newFakeEventStore()
	client := &scriptedClient{failTitle: "壊れた予定"}
	service := NewSyncService(tasks, events, client, Logger.NewNop())

	due := time.Now().Add(48 * time.Hour)
	dated := task.NewTask(task.CreateTaskRequest{Title: "資料作成", DueDate: &due})
	undated := task.NewTask(task.CreateTaskRequest{Title: "いつかやる"})
	if err := tasks.Create(ctx, dated); err != nil {
		t.Fatalf("Expected task create to succeed, got %v", err)
	}
	if err := tasks.Create(ctx, undated); err != nil {
		t.Fatalf("Expected task create to succeed, got %v", err)
	}

	start := time.Now().Add(time.Hour)
	good := event.NewEvent(event.CreateEventRequest{Title: "定例会", StartDate: &start})
	bad := event.NewEvent(event.CreateEventRequest{Title: "壊れた予定", StartDate: &start})
	if err := events.Create(ctx, good); err != nil {
		t.Fatalf("Expected event create to succeed, got %v", err)
	}
	if err := events.Create(ctx, bad); err != nil {
		t.Fatalf("Expected event create to succeed, got %v", err)
	}

	report, err := service.PushAll(ctx)
	if err != nil {
		t.Fatalf("Expected push to succeed, got %v", err)
	}
	if report.PushedTasks != 1 {
		t.Errorf("Expected 1 pushed task, got %d", report.PushedTasks)
	}
	if report.PushedEvents != 1 {
		t.Errorf("Expected 1 pushed event, got %d", report.PushedEvents)
	}
	if len(report.Errors) != 1 {
		t.Errorf("Expected 1 error entry, got %v", report.Errors)
	}

	stored, err := tasks.GetByID(ctx, undated.ID)
	if err != nil {
		t.Fatalf("Expected stored task, got %v", err)
	}
	if stored.IsSynced() {
		t.Error("Expected undated task to stay local")
	}
}

func TestImportCreatesUnseenRemoteEvents(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventStore()

	start := time.Now().Add(2 * time.Hour)
	known := event.NewImported("g-known", "既存の予定", "", start, start.Add(time.Hour), false)
	if err := events.Create(ctx, known); err != nil {
		t.Fatalf("Expected event create to succeed, got %v", err)
	}

	client := &scriptedClient{remotes: []RemoteEvent{
		{ID: "g-known", Title: "既存の予定", Start: start, End: start.Add(time.Hour)},
		{ID: "g-new", Title: "新しい予定", Start: start, End: start.Add(time.Hour)},
		{ID: "g-untitled", Title: "", Start: start, End: start.Add(24 * time.Hour), AllDay: true},
	}}
	service := NewSyncService(newFakeTaskStore(), events, client, Logger.NewNop())

	report, err := service.Import(ctx)
	if err != nil {
		t.Fatalf("Expected import to succeed, got %v", err)
	}
	if report.Imported != 2 {
		t.Errorf("Expected 2 imported events, got %d", report.Imported)
	}
	if report.Seen != 1 {
		t.Errorf("Expected 1 already-known event, got %d", report.Seen)
	}

	imported, err := events.GetByGoogleEventID(ctx, "g-untitled")
	if err != nil {
		t.Fatalf("Expected imported event, got %v", err)
	}
	if imported.Title != event.UntitledTitle {
		t.Errorf("Expected fallback title %q, got %q", event.UntitledTitle, imported.Title)
	}
	if imported.Category != event.ImportedCategory {
		t.Errorf("Expected category %q, got %q", event.ImportedCategory, imported.Category)
	}
	if !imported.AllDay {
		t.Error("Expected all-day flag to survive import")
	}
}

func TestImportListFailure(t *testing.T) {
	client := &scriptedClient{listErr: errors.New("quota exceeded")}
	service := NewSyncService(newFakeTaskStore(), newFakeEventStore(), client, Logger.NewNop())

	_, err := service.Import(context.Background())
	if err == nil {
		t.Fatal("Expected import to fail when the remote listing fails")
	}
}
