package task

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/task"
)

func storedTask(title string, status task.TaskStatus, priority task.TaskPriority, category string, createdAt time.Time) *task.Task {
	return &task.Task{
		ID:        uuid.New(),
		Title:     title,
		Status:    status,
		Priority:  priority,
		Category:  category,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func readTaskDocument(t *testing.T, path string) *taskDocument {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected store file at %s, got %v", path, err)
	}
	doc := &taskDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		t.Fatalf("Expected valid JSON document, got %v", err)
	}
	return doc
}

func TestFileTaskRepoSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewFileTaskRepo(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Expected no store file before first use, got %v", err)
	}

	tasks, total, err := repo.List(ctx, task.ListTasksRequest{})
	if err != nil {
		t.Fatalf("Expected no error on first list, got %v", err)
	}
	if total != 0 || len(tasks) != 0 {
		t.Errorf("Expected empty store, got %d tasks (total %d)", len(tasks), total)
	}

	doc := readTaskDocument(t, path)
	if !reflect.DeepEqual(doc.Categories, task.DefaultCategories()) {
		t.Errorf("Expected seeded categories %v, got %v", task.DefaultCategories(), doc.Categories)
	}
	if !reflect.DeepEqual(doc.Priorities, task.PriorityLabels()) {
		t.Errorf("Expected seeded priorities %v, got %v", task.PriorityLabels(), doc.Priorities)
	}
	if doc.Metadata.CreatedAt.IsZero() || doc.Metadata.LastUpdated.IsZero() {
		t.Errorf("Expected stamped metadata, got %+v", doc.Metadata)
	}
	if doc.Metadata.TotalTasks != 0 {
		t.Errorf("Expected total_tasks 0, got %d", doc.Metadata.TotalTasks)
	}
}

func TestFileTaskRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewFileTaskRepo(filepath.Join(t.TempDir(), "tasks.json"))

	due := time.Now().Add(24 * time.Hour)
	transcriptID := uuid.New()
	created := task.NewTask(task.CreateTaskRequest{
		Title:    "請求書を送る",
		Priority: task.PriorityHigh,
		Category: "仕事",
		DueDate:  &due,
	})
	created.TranscriptID = &transcriptID

	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Expected no error creating task, got %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error fetching task, got %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("Expected title %q, got %q", created.Title, got.Title)
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("Expected priority %q, got %q", task.PriorityHigh, got.Priority)
	}
	if got.Category != "仕事" {
		t.Errorf("Expected category %q, got %q", "仕事", got.Category)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, got.DueDate)
	}
	if got.TranscriptID == nil || *got.TranscriptID != transcriptID {
		t.Errorf("Expected transcript ID %s, got %v", transcriptID, got.TranscriptID)
	}
}

func TestFileTaskRepoGetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewFileTaskRepo(filepath.Join(t.TempDir(), "tasks.json"))

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestFileTaskRepoPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")

	created := task.NewTask(task.CreateTaskRequest{Title: "資料を準備する"})
	if err := NewFileTaskRepo(path).Create(ctx, created); err != nil {
		t.Fatalf("Expected no error creating task, got %v", err)
	}

	got, err := NewFileTaskRepo(path).GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected task to survive a reopen, got %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("Expected title %q, got %q", created.Title, got.Title)
	}
}

func TestFileTaskRepoUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewFileTaskRepo(filepath.Join(t.TempDir(), "tasks.json"))

	created := task.NewTask(task.CreateTaskRequest{Title: "会議の準備"})
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Expected no error creating task, got %v", err)
	}

	created.Title = "会議の資料を準備"
	created.MarkCompleted()
	if err := repo.Update(ctx, created); err != nil {
		t.Fatalf("Expected no error updating task, got %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error fetching task, got %v", err)
	}
	if got.Title != "会議の資料を準備" {
		t.Errorf("Expected updated title, got %q", got.Title)
	}
	if got.Status != task.StatusCompleted {
		t.Errorf("Expected status %q, got %q", task.StatusCompleted, got.Status)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error deleting task, got %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound on second delete, got %v", err)
	}

	if err := repo.Update(ctx, storedTask("未登録", task.StatusPending, task.PriorityLow, "その他", time.Now())); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound updating unknown task, got %v", err)
	}
}

func TestFileTaskRepoListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewFileTaskRepo(filepath.Join(t.TempDir(), "tasks.json"))

	base := time.Now()
	oldest := storedTask("古いタスク", task.StatusPending, task.PriorityLow, "仕事", base.Add(-2*time.Hour))
	middle := storedTask("途中のタスク", task.StatusInProgress, task.PriorityHigh, "仕事", base.Add(-time.Hour))
	newest := storedTask("新しいタスク", task.StatusPending, task.PriorityHigh, "勉強", base)
	for _, tk := range []*task.Task{oldest, middle, newest} {
		if err := repo.Create(ctx, tk); err != nil {
			t.Fatalf("Expected no error creating %q, got %v", tk.Title, err)
		}
	}

	tasks, total, err := repo.List(ctx, task.ListTasksRequest{})
	if err != nil {
		t.Fatalf("Expected no error listing tasks, got %v", err)
	}
	if total != 3 || len(tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d (total %d)", len(tasks), total)
	}
	if tasks[0].ID != newest.ID || tasks[2].ID != oldest.ID {
		t.Errorf("Expected newest first ordering, got %q .. %q", tasks[0].Title, tasks[2].Title)
	}

	tasks, total, err = repo.List(ctx, task.ListTasksRequest{Status: task.StatusPending})
	if err != nil {
		t.Fatalf("Expected no error listing by status, got %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 pending tasks, got %d", total)
	}
	for _, tk := range tasks {
		if tk.Status != task.StatusPending {
			t.Errorf("Expected only pending tasks, got %q", tk.Status)
		}
	}

	_, total, err = repo.List(ctx, task.ListTasksRequest{Priority: task.PriorityHigh, Category: "仕事"})
	if err != nil {
		t.Fatalf("Expected no error listing by priority and category, got %v", err)
	}
	if total != 1 {
		t.Errorf("Expected 1 high priority work task, got %d", total)
	}

	tasks, total, err = repo.List(ctx, task.ListTasksRequest{Offset: 1, Limit: 1})
	if err != nil {
		t.Fatalf("Expected no error paginating, got %v", err)
	}
	if total != 3 {
		t.Errorf("Expected total 3 regardless of page, got %d", total)
	}
	if len(tasks) != 1 || tasks[0].ID != middle.ID {
		t.Errorf("Expected the middle task on page 2, got %d tasks", len(tasks))
	}

	tasks, _, err = repo.List(ctx, task.ListTasksRequest{Offset: 10})
	if err != nil {
		t.Fatalf("Expected no error on out of range offset, got %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected empty page past the end, got %d tasks", len(tasks))
	}
}

func TestFileTaskRepoStats(t *testing.T) {
	ctx := context.Background()
	repo := NewFileTaskRepo(filepath.Join(t.TempDir(), "tasks.json"))

	past := time.Now().Add(-time.Hour)
	overdue := storedTask("期限切れ", task.StatusPending, task.PriorityUrgent, "仕事", past)
	overdue.DueDate = &past
	done := storedTask("完了済み", task.StatusCompleted, task.PriorityLow, "仕事", past)
	done.DueDate = &past
	open := storedTask("進行中", task.StatusInProgress, task.PriorityMedium, "勉強", past)

	for _, tk := range []*task.Task{overdue, done, open} {
		if err := repo.Create(ctx, tk); err != nil {
			t.Fatalf("Expected no error creating %q, got %v", tk.Title, err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Expected no error computing stats, got %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("Expected total 3, got %d", stats.Total)
	}
	if stats.ByStatus[task.StatusPending] != 1 || stats.ByStatus[task.StatusCompleted] != 1 || stats.ByStatus[task.StatusInProgress] != 1 {
		t.Errorf("Expected one task per status, got %v", stats.ByStatus)
	}
	if stats.ByPriority[task.PriorityUrgent] != 1 {
		t.Errorf("Expected 1 urgent task, got %d", stats.ByPriority[task.PriorityUrgent])
	}
	if stats.Overdue != 1 {
		t.Errorf("Expected 1 overdue task (completed excluded), got %d", stats.Overdue)
	}
	if !reflect.DeepEqual(stats.Categories, task.DefaultCategories()) {
		t.Errorf("Expected seeded categories, got %v", stats.Categories)
	}
}

func TestFileTaskRepoUnsyncedFlow(t *testing.T) {
	ctx := context.Background()
	repo := NewFileTaskRepo(filepath.Join(t.TempDir(), "tasks.json"))

	base := time.Now()
	first := storedTask("先のタスク", task.StatusPending, task.PriorityMedium, "仕事", base.Add(-time.Hour))
	second := storedTask("後のタスク", task.StatusPending, task.PriorityMedium, "仕事", base)
	for _, tk := range []*task.Task{second, first} {
		if err := repo.Create(ctx, tk); err != nil {
			t.Fatalf("Expected no error creating %q, got %v", tk.Title, err)
		}
	}

	unsynced, err := repo.ListUnsynced(ctx)
	if err != nil {
		t.Fatalf("Expected no error listing unsynced, got %v", err)
	}
	if len(unsynced) != 2 {
		t.Fatalf("Expected 2 unsynced tasks, got %d", len(unsynced))
	}
	if unsynced[0].ID != first.ID {
		t.Errorf("Expected oldest first ordering, got %q first", unsynced[0].Title)
	}

	if err := repo.SetGoogleEventID(ctx, first.ID, "gcal-event-1"); err != nil {
		t.Fatalf("Expected no error marking synced, got %v", err)
	}

	unsynced, err = repo.ListUnsynced(ctx)
	if err != nil {
		t.Fatalf("Expected no error listing unsynced, got %v", err)
	}
	if len(unsynced) != 1 || unsynced[0].ID != second.ID {
		t.Errorf("Expected only the unsynced task, got %d", len(unsynced))
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("Expected no error fetching task, got %v", err)
	}
	if got.GoogleEventID == nil || *got.GoogleEventID != "gcal-event-1" {
		t.Errorf("Expected google event ID %q, got %v", "gcal-event-1", got.GoogleEventID)
	}

	if err := repo.SetGoogleEventID(ctx, uuid.New(), "gcal-event-2"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound for unknown task, got %v", err)
	}
}

func TestFileTaskRepoMetadataTracksStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")

	repo := NewFileTaskRepo(path)
	if _, _, err := repo.List(ctx, task.ListTasksRequest{}); err != nil {
		t.Fatalf("Expected no error seeding store, got %v", err)
	}
	seeded := readTaskDocument(t, path)

	if err := NewFileTaskRepo(path).Create(ctx, task.NewTask(task.CreateTaskRequest{Title: "資料を準備する"})); err != nil {
		t.Fatalf("Expected no error creating task, got %v", err)
	}

	doc := readTaskDocument(t, path)
	if doc.Metadata.TotalTasks != 1 {
		t.Errorf("Expected total_tasks 1, got %d", doc.Metadata.TotalTasks)
	}
	if !doc.Metadata.CreatedAt.Equal(seeded.Metadata.CreatedAt) {
		t.Errorf("Expected created_at %v to survive the reopen, got %v", seeded.Metadata.CreatedAt, doc.Metadata.CreatedAt)
	}
	if doc.Metadata.LastUpdated.Before(seeded.Metadata.LastUpdated) {
		t.Errorf("Expected last_updated to advance, got %v before %v", doc.Metadata.LastUpdated, seeded.Metadata.LastUpdated)
	}
}

func TestFileTaskRepoRejectsCorruptStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Expected no error writing fixture, got %v", err)
	}

	if _, _, err := NewFileTaskRepo(path).List(ctx, task.ListTasksRequest{}); err == nil {
		t.Error("Expected an error for a corrupt store file, got nil")
	}
}
