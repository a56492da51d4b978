package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask(CreateTaskRequest{Title: "資料を準備する"})

	if task.Status != StatusPending {
		t.Errorf("Expected status %q, got %q", StatusPending, task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Expected priority %q, got %q", PriorityMedium, task.Priority)
	}
	if task.Category != DefaultCategory {
		t.Errorf("Expected category %q, got %q", DefaultCategory, task.Category)
	}
	if task.ID == uuid.Nil {
		t.Error("Expected a generated ID, got uuid.Nil")
	}
}

func TestNewTaskKeepsExplicitFields(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)
	task := NewTask(CreateTaskRequest{
		Title:    "請求書を送る",
		Priority: PriorityHigh,
		Category: "仕事",
		DueDate:  &due,
	})

	if task.Priority != PriorityHigh {
		t.Errorf("Expected priority %q, got %q", PriorityHigh, task.Priority)
	}
	if task.Category != "仕事" {
		t.Errorf("Expected category %q, got %q", "仕事", task.Category)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, task.DueDate)
	}
}

func TestFromExtracted(t *testing.T) {
	transcriptID := uuid.New()
	entity := extraction.ExtractedEntity{
		Kind:        extraction.KindTask,
		Title:       "資料を準備する",
		Description: "資料を準備する",
		Priority:    extraction.PriorityHigh,
		Category:    extraction.DefaultCategory,
	}

	task := FromExtracted(entity, &transcriptID)

	if task.Priority != PriorityHigh {
		t.Errorf("Expected priority %q, got %q", PriorityHigh, task.Priority)
	}
	if task.Category != extraction.DefaultCategory {
		t.Errorf("Expected category %q, got %q", extraction.DefaultCategory, task.Category)
	}
	if task.TranscriptID == nil || *task.TranscriptID != transcriptID {
		t.Errorf("Expected transcript ID %s, got %v", transcriptID, task.TranscriptID)
	}
	if task.Status != StatusPending {
		t.Errorf("Expected status %q, got %q", StatusPending, task.Status)
	}
}

func TestFromExtractedInvalidPriorityFallsBack(t *testing.T) {
	entity := extraction.ExtractedEntity{Kind: extraction.KindTask, Title: "何かする", Priority: "critical"}

	task := FromExtracted(entity, nil)

	if task.Priority != PriorityMedium {
		t.Errorf("Expected fallback priority %q, got %q", PriorityMedium, task.Priority)
	}
}

func TestIsOverdue(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"no due date", Task{Status: StatusPending}, false},
		{"future due date", Task{Status: StatusPending, DueDate: &future}, false},
		{"past due date", Task{Status: StatusPending, DueDate: &past}, true},
		{"completed past due", Task{Status: StatusCompleted, DueDate: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(); got != tt.expected {
				t.Errorf("Expected IsOverdue %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMarkSynced(t *testing.T) {
	task := NewTask(CreateTaskRequest{Title: "会議の準備"})

	if task.IsSynced() {
		t.Error("Expected new task to be unsynced")
	}

	task.MarkSynced("gcal-event-1")

	if !task.IsSynced() {
		t.Error("Expected task to be synced after MarkSynced")
	}
	if *task.GoogleEventID != "gcal-event-1" {
		t.Errorf("Expected google event ID %q, got %q", "gcal-event-1", *task.GoogleEventID)
	}
}

type memoryTaskRepo struct {
	tasks     map[uuid.UUID]*Task
	failTitle string
}

func newMemoryTaskRepo() *memoryTaskRepo {
	return &memoryTaskRepo{tasks: make(map[uuid.UUID]*Task)}
}

func (r *memoryTaskRepo) Create(ctx context.Context, task *Task) error {
	if r.failTitle != "" && task.Title == r.failTitle {
		return errors.New("store rejected task")
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memoryTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *memoryTaskRepo) Update(ctx context.Context, task *Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memoryTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memoryTaskRepo) List(ctx context.Context, req ListTasksRequest) ([]*Task, int64, error) {
	var out []*Task
	for _, task := range r.tasks {
		if req.Status != "" && task.Status != req.Status {
			continue
		}
		if req.Priority != "" && task.Priority != req.Priority {
			continue
		}
		if req.Category != "" && task.Category != req.Category {
			continue
		}
		copied := *task
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memoryTaskRepo) Stats(ctx context.Context) (*TaskStats, error) {
	stats := &TaskStats{
		ByStatus:   make(map[TaskStatus]int64),
		ByPriority: make(map[TaskPriority]int64),
		Categories: DefaultCategories(),
	}
	for _, task := range r.tasks {
		stats.Total++
		stats.ByStatus[task.Status]++
		stats.ByPriority[task.Priority]++
		if task.IsOverdue() {
			stats.Overdue++
		}
	}
	return stats, nil
}

func (r *memoryTaskRepo) ListUnsynced(ctx context.Context) ([]*Task, error) {
	var out []*Task
	for _, task := range r.tasks {
		if !task.IsSynced() {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryTaskRepo) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	task, ok := r.tasks[id]
	if !ok {
		return ErrTaskNotFound
	}
	task.MarkSynced(googleEventID)
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

func TestCreateTaskRejectsUnknownPriority(t *testing.T) {
	service := NewTaskService(newMemoryTaskRepo(), nil, Logger.NewNop())

	_, err := service.CreateTask(context.Background(), CreateTaskRequest{Title: "何かする", Priority: "critical"})
	if !errors.Is(err, ErrInvalidTaskData) {
		t.Errorf("Expected ErrInvalidTaskData, got %v", err)
	}
}

func TestUpdateTaskAppliesOnlyProvidedFields(t *testing.T) {
	repo := newMemoryTaskRepo()
	service := NewTaskService(repo, nil, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateTask(ctx, CreateTaskRequest{Title: "元のタイトル", Category: "仕事"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	title := "新しいタイトル"
	status := StatusInProgress
	updated, err := service.UpdateTask(ctx, created.ID, UpdateTaskRequest{Title: &title, Status: &status})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	if updated.Title != title {
		t.Errorf("Expected title %q, got %q", title, updated.Title)
	}
	if updated.Status != StatusInProgress {
		t.Errorf("Expected status %q, got %q", StatusInProgress, updated.Status)
	}
	if updated.Category != "仕事" {
		t.Errorf("Expected untouched category %q, got %q", "仕事", updated.Category)
	}
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	repo := newMemoryTaskRepo()
	service := NewTaskService(repo, nil, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateTask(ctx, CreateTaskRequest{Title: "何かする"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	bad := TaskStatus("archived")
	_, err = service.UpdateTask(ctx, created.ID, UpdateTaskRequest{Status: &bad})
	if !errors.Is(err, ErrInvalidTaskData) {
		t.Errorf("Expected ErrInvalidTaskData, got %v", err)
	}
}

func TestCompleteTask(t *testing.T) {
	repo := newMemoryTaskRepo()
	service := NewTaskService(repo, nil, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateTask(ctx, CreateTaskRequest{Title: "資料を準備する"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	completed, err := service.CompleteTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected completion to succeed, got %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Errorf("Expected status %q, got %q", StatusCompleted, completed.Status)
	}
}

func TestDeleteTaskRemovesRemoteMirror(t *testing.T) {
	repo := newMemoryTaskRepo()
	mirror := &recordingMirror{}
	service := NewTaskService(repo, mirror, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateTask(ctx, CreateTaskRequest{Title: "会議の準備"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}
	if err := repo.SetGoogleEventID(ctx, created.ID, "gcal-event-9"); err != nil {
		t.Fatalf("Expected sync marking to succeed, got %v", err)
	}

	if err := service.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	if len(mirror.deleted) != 1 || mirror.deleted[0] != "gcal-event-9" {
		t.Errorf("Expected remote event gcal-event-9 to be deleted, got %v", mirror.deleted)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected task to be gone, got %v", err)
	}
}

func TestDeleteTaskSurvivesMirrorFailure(t *testing.T) {
	repo := newMemoryTaskRepo()
	mirror := &recordingMirror{err: errors.New("calendar unreachable")}
	service := NewTaskService(repo, mirror, Logger.NewNop())
	ctx := context.Background()

	created, err := service.CreateTask(ctx, CreateTaskRequest{Title: "会議の準備"})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}
	if err := repo.SetGoogleEventID(ctx, created.ID, "gcal-event-9"); err != nil {
		t.Fatalf("Expected sync marking to succeed, got %v", err)
	}

	if err := service.DeleteTask(ctx, created.ID); err != nil {
		t.Errorf("Expected local delete despite mirror failure, got %v", err)
	}
}

func TestCreateFromEntitiesSkipsEventsAndFailures(t *testing.T) {
	repo := newMemoryTaskRepo()
	repo.failTitle = "壊れたタスク"
	service := NewTaskService(repo, nil, Logger.NewNop())

	entities := []extraction.ExtractedEntity{
		{Kind: extraction.KindTask, Title: "資料を準備する", Priority: extraction.PriorityMedium},
		{Kind: extraction.KindEvent, Title: "定例会議"},
		{Kind: extraction.KindTask, Title: "壊れたタスク", Priority: extraction.PriorityMedium},
		{Kind: extraction.KindTask, Title: "請求書を送る", Priority: extraction.PriorityHigh},
	}

	responses, err := service.CreateFromEntities(context.Background(), entities, nil)
	if err != nil {
		t.Fatalf("Expected partial success, got %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("Expected 2 stored tasks, got %d", len(responses))
	}
	if responses[0].Title != "資料を準備する" || responses[1].Title != "請求書を送る" {
		t.Errorf("Expected surviving titles in order, got %q and %q", responses[0].Title, responses[1].Title)
	}
}

func TestCreateFromEntitiesAllFailed(t *testing.T) {
	repo := newMemoryTaskRepo()
	repo.failTitle = "壊れたタスク"
	service := NewTaskService(repo, nil, Logger.NewNop())

	entities := []extraction.ExtractedEntity{
		{Kind: extraction.KindTask, Title: "壊れたタスク"},
	}

	_, err := service.CreateFromEntities(context.Background(), entities, nil)
	if err == nil {
		t.Error("Expected an error when every extracted task fails to store")
	}
}
