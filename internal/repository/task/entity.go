package task

import (
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"gorm.io/gorm"
)

// TaskEntity represents the database entity for Task with GORM tags
type TaskEntity struct {
	ID            uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	Title         string     `gorm:"column:title;type:varchar(200);not null"`
	Description   string     `gorm:"column:description;type:text"`
	Status        string     `gorm:"column:status;type:varchar(20);not null;index;default:pending"`
	Priority      string     `gorm:"column:priority;type:varchar(20);not null;index;default:medium"`
	Category      string     `gorm:"column:category;type:varchar(100);index"`
	DueDate       *time.Time `gorm:"column:due_date;index"`
	GoogleEventID *string    `gorm:"column:google_event_id;type:varchar(255);index"`
	TranscriptID  *uuid.UUID `gorm:"column:transcript_id;type:char(36);index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime(3)"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime(3)"`
}

// TableName returns the table name for GORM
func (TaskEntity) TableName() string {
	return "tasks"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (t *TaskEntity) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ToDomain converts TaskEntity to domain Task
func (t *TaskEntity) ToDomain() *task.Task {
	return &task.Task{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        task.TaskStatus(t.Status),
		Priority:      task.TaskPriority(t.Priority),
		Category:      t.Category,
		DueDate:       t.DueDate,
		GoogleEventID: t.GoogleEventID,
		TranscriptID:  t.TranscriptID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// FromDomain converts domain Task to TaskEntity
func (t *TaskEntity) FromDomain(domainTask *task.Task) {
	t.ID = domainTask.ID
	t.Title = domainTask.Title
	t.Description = domainTask.Description
	t.Status = string(domainTask.Status)
	t.Priority = string(domainTask.Priority)
	t.Category = domainTask.Category
	t.DueDate = domainTask.DueDate
	t.GoogleEventID = domainTask.GoogleEventID
	t.TranscriptID = domainTask.TranscriptID
	t.CreatedAt = domainTask.CreatedAt
	t.UpdatedAt = domainTask.UpdatedAt
}

// NewTaskEntityFromDomain creates a new TaskEntity from domain Task
func NewTaskEntityFromDomain(domainTask *task.Task) *TaskEntity {
	entity := &TaskEntity{}
	entity.FromDomain(domainTask)
	return entity
}
