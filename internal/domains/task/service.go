package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTaskData = errors.New("invalid task data")
)

// EventMirror removes the remote calendar copy of a synced task. The
// calendar client implements it; NoopMirror stands in when calendar
// sync is disabled.
type EventMirror interface {
	DeleteRemoteEvent(ctx context.Context, googleEventID string) error
}

// NoopMirror is the EventMirror used when no calendar is configured.
type NoopMirror struct{}

func (NoopMirror) DeleteRemoteEvent(ctx context.Context, googleEventID string) error {
	return nil
}

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, id uuid.UUID) (*TaskResponse, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req UpdateTaskRequest) (*TaskResponse, error)
	CompleteTask(ctx context.Context, id uuid.UUID) (*TaskResponse, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ListTasks(ctx context.Context, req ListTasksRequest) ([]*TaskResponse, int64, error)
	Stats(ctx context.Context) (*TaskStats, error)

	// CreateFromEntities stores every extracted task hit, skipping the
	// ones the store rejects.
	CreateFromEntities(ctx context.Context, entities []extraction.ExtractedEntity, transcriptID *uuid.UUID) ([]*TaskResponse, error)
}

type taskService struct {
	repository TaskRepository
	mirror     EventMirror
	logger     *Logger.Logger
}

// CreateTask implements TaskService
func (s *taskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error) {
	if req.Priority != "" && !req.Priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidTaskData, req.Priority)
	}

	task := NewTask(req)
	if err := s.repository.Create(ctx, task); err != nil {
		s.logger.Errorf("error creating task: %v", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infof("task created successfully: %s", task.ID)
	return task.ToResponse(), nil
}

// GetTask implements TaskService
func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting task %s: %v", id, err)
		return nil, err
	}
	return task.ToResponse(), nil
}

// UpdateTask implements TaskService
func (s *taskService) UpdateTask(ctx context.Context, id uuid.UUID, req UpdateTaskRequest) (*TaskResponse, error) {
	task, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting task %s for update: %v", id, err)
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTaskData, *req.Status)
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidTaskData, *req.Priority)
		}
		task.Priority = *req.Priority
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.repository.Update(ctx, task); err != nil {
		s.logger.Errorf("error updating task %s: %v", id, err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Infof("task updated successfully: %s", task.ID)
	return task.ToResponse(), nil
}

// CompleteTask implements TaskService
func (s *taskService) CompleteTask(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting task %s for completion: %v", id, err)
		return nil, err
	}

	task.MarkCompleted()
	if err := s.repository.Update(ctx, task); err != nil {
		s.logger.Errorf("error completing task %s: %v", id, err)
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	s.logger.Infof("task completed: %s", task.ID)
	return task.ToResponse(), nil
}

// DeleteTask implements TaskService
func (s *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	task, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting task %s for deletion: %v", id, err)
		return err
	}

	// The remote copy goes first; a failure there must not strand the
	// local row, so it only logs.
	if task.IsSynced() {
		if err := s.mirror.DeleteRemoteEvent(ctx, *task.GoogleEventID); err != nil {
			s.logger.Warnf("error deleting calendar event for task %s: %v", task.ID, err)
		}
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		s.logger.Errorf("error deleting task %s: %v", id, err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Infof("task deleted successfully: %s", id)
	return nil
}

// ListTasks implements TaskService
func (s *taskService) ListTasks(ctx context.Context, req ListTasksRequest) ([]*TaskResponse, int64, error) {
	if req.Status != "" && !req.Status.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrInvalidTaskData, req.Status)
	}
	if req.Priority != "" && !req.Priority.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown priority %q", ErrInvalidTaskData, req.Priority)
	}

	tasks, total, err := s.repository.List(ctx, req)
	if err != nil {
		s.logger.Errorf("error listing tasks: %v", err)
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, task.ToResponse())
	}
	return responses, total, nil
}

// Stats implements TaskService
func (s *taskService) Stats(ctx context.Context) (*TaskStats, error) {
	stats, err := s.repository.Stats(ctx)
	if err != nil {
		s.logger.Errorf("error computing task stats: %v", err)
		return nil, fmt.Errorf("failed to compute task stats: %w", err)
	}
	return stats, nil
}

// CreateFromEntities implements TaskService
func (s *taskService) CreateFromEntities(ctx context.Context, entities []extraction.ExtractedEntity, transcriptID *uuid.UUID) ([]*TaskResponse, error) {
	responses := make([]*TaskResponse, 0, len(entities))
	var lastErr error
	for _, entity := range entities {
		if entity.Kind != extraction.KindTask {
			continue
		}
		task := FromExtracted(entity, transcriptID)
		if err := s.repository.Create(ctx, task); err != nil {
			s.logger.Errorf("error storing extracted task %q: %v", entity.Title, err)
			lastErr = err
			continue
		}
		responses = append(responses, task.ToResponse())
	}

	if len(responses) == 0 && lastErr != nil {
		return nil, fmt.Errorf("failed to store extracted tasks: %w", lastErr)
	}
	s.logger.Infof("stored %d extracted tasks", len(responses))
	return responses, nil
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(repository TaskRepository, mirror EventMirror, logger *Logger.Logger) TaskService {
	if mirror == nil {
		mirror = NoopMirror{}
	}
	return &taskService{
		repository: repository,
		mirror:     mirror,
		logger:     logger,
	}
}
