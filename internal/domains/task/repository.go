package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/extraction"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// DefaultCategory is assigned when a task is created without one.
const DefaultCategory = "その他"

// DefaultCategories seeds a fresh store with the built-in category list.
func DefaultCategories() []string {
	return []string{"仕事", "プライベート", "勉強", "健康", "その他"}
}

// PriorityLabels maps each priority onto its display label, ordered
// from lowest to highest.
func PriorityLabels() []string {
	return []string{"低", "中", "高", "緊急"}
}

type Task struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	Category      string       `json:"category"`
	DueDate       *time.Time   `json:"due_date,omitempty"`
	GoogleEventID *string      `json:"google_event_id,omitempty"`
	TranscriptID  *uuid.UUID   `json:"transcript_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// NewTask builds a pending task from a create request, filling in the
// category and priority defaults.
func NewTask(req CreateTaskRequest) *Task {
	now := time.Now()

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	category := req.Category
	if category == "" {
		category = DefaultCategory
	}

	return &Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusPending,
		Priority:    priority,
		Category:    category,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FromExtracted converts an analyzer hit into a pending task, keeping
// the analyzer's priority and category when they are usable.
func FromExtracted(entity extraction.ExtractedEntity, transcriptID *uuid.UUID) *Task {
	priority := TaskPriority(entity.Priority)
	if !priority.IsValid() {
		priority = PriorityMedium
	}

	category := entity.Category
	if category == "" {
		category = DefaultCategory
	}

	now := time.Now()
	return &Task{
		ID:           uuid.New(),
		Title:        entity.Title,
		Description:  entity.Description,
		Status:       StatusPending,
		Priority:     priority,
		Category:     category,
		TranscriptID: transcriptID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MarkCompleted marks the task as completed
func (t *Task) MarkCompleted() {
	t.Status = StatusCompleted
	t.UpdatedAt = time.Now()
}

// MarkSynced records the Google Calendar event mirroring this task.
func (t *Task) MarkSynced(googleEventID string) {
	t.GoogleEventID = &googleEventID
	t.UpdatedAt = time.Now()
}

// IsSynced reports whether the task already has a calendar mirror.
func (t *Task) IsSynced() bool {
	return t.GoogleEventID != nil && *t.GoogleEventID != ""
}

// IsOverdue checks if the task is overdue
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(time.Now())
}

// ToResponse converts Task to TaskResponse
func (t *Task) ToResponse() *TaskResponse {
	return &TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		Category:      t.Category,
		DueDate:       t.DueDate,
		GoogleEventID: t.GoogleEventID,
		TranscriptID:  t.TranscriptID,
		IsOverdue:     t.IsOverdue(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// CreateTaskRequest represents the request to create a new task
type CreateTaskRequest struct {
	Title       string       `json:"title" binding:"required,min=1,max=200"`
	Description string       `json:"description" binding:"max=1000"`
	Priority    TaskPriority `json:"priority"`
	Category    string       `json:"category" binding:"max=100"`
	DueDate     *time.Time   `json:"due_date"`
}

// UpdateTaskRequest represents the request to update an existing task
type UpdateTaskRequest struct {
	Title       *string       `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string       `json:"description" binding:"omitempty,max=1000"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	Category    *string       `json:"category" binding:"omitempty,max=100"`
	DueDate     *time.Time    `json:"due_date"`
}

// ListTasksRequest represents the request to list tasks with filters
type ListTasksRequest struct {
	Status   TaskStatus   `form:"status"`
	Priority TaskPriority `form:"priority"`
	Category string       `form:"category"`
	Offset   int          `form:"offset"`
	Limit    int          `form:"limit"`
}

// TaskResponse represents the task data returned to clients
type TaskResponse struct {
	ID            uuid.UUID    `json:"id" swaggertype:"string"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	Category      string       `json:"category"`
	DueDate       *time.Time   `json:"due_date,omitempty"`
	GoogleEventID *string      `json:"google_event_id,omitempty"`
	TranscriptID  *uuid.UUID   `json:"transcript_id,omitempty" swaggertype:"string"`
	IsOverdue     bool         `json:"is_overdue"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TaskStats summarises the store for the dashboard endpoints.
type TaskStats struct {
	Total      int64                  `json:"total"`
	ByStatus   map[TaskStatus]int64   `json:"by_status"`
	ByPriority map[TaskPriority]int64 `json:"by_priority"`
	Overdue    int64                  `json:"overdue"`
	Categories []string               `json:"categories"`
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Query operations
	List(ctx context.Context, req ListTasksRequest) ([]*Task, int64, error)
	Stats(ctx context.Context) (*TaskStats, error)

	// Calendar mirroring
	ListUnsynced(ctx context.Context) ([]*Task, error)
	SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error
}
