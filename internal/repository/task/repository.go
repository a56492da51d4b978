package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"gorm.io/gorm"
)

type GormTaskRepo struct {
	db *gorm.DB
}

// Create implements task.TaskRepository
func (g *GormTaskRepo) Create(ctx context.Context, t *task.Task) error {
	entity := NewTaskEntityFromDomain(t)
	if err := g.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	// Pick up timestamps the database filled in.
	*t = *entity.ToDomain()
	return nil
}

// GetByID implements task.TaskRepository
func (g *GormTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	var entity TaskEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, task.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// Update implements task.TaskRepository
func (g *GormTaskRepo) Update(ctx context.Context, t *task.Task) error {
	var entity TaskEntity
	if err := g.db.WithContext(ctx).Where("id = ?", t.ID).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to get task for update: %w", err)
	}

	entity.FromDomain(t)
	if err := g.db.WithContext(ctx).Save(&entity).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete implements task.TaskRepository
func (g *GormTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := g.db.WithContext(ctx).Where("id = ?", id).Delete(&TaskEntity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// List implements task.TaskRepository
func (g *GormTaskRepo) List(ctx context.Context, req task.ListTasksRequest) ([]*task.Task, int64, error) {
	var entities []TaskEntity
	var total int64

	query := g.applyFilters(g.db.WithContext(ctx).Model(&TaskEntity{}), req)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	query = query.Order("created_at DESC")
	if req.Limit > 0 {
		query = query.Limit(req.Limit)
	}
	if req.Offset > 0 {
		query = query.Offset(req.Offset)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, len(entities))
	for i := range entities {
		tasks[i] = entities[i].ToDomain()
	}
	return tasks, total, nil
}

// Stats implements task.TaskRepository
func (g *GormTaskRepo) Stats(ctx context.Context) (*task.TaskStats, error) {
	stats := &task.TaskStats{
		ByStatus:   make(map[task.TaskStatus]int64),
		ByPriority: make(map[task.TaskPriority]int64),
	}

	if err := g.db.WithContext(ctx).Model(&TaskEntity{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	type countRow struct {
		K string
		N int64
	}

	var byStatus []countRow
	if err := g.db.WithContext(ctx).Model(&TaskEntity{}).
		Select("status as k, count(*) as n").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to count tasks by status: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[task.TaskStatus(row.K)] = row.N
	}

	var byPriority []countRow
	if err := g.db.WithContext(ctx).Model(&TaskEntity{}).
		Select("priority as k, count(*) as n").Group("priority").Scan(&byPriority).Error; err != nil {
		return nil, fmt.Errorf("failed to count tasks by priority: %w", err)
	}
	for _, row := range byPriority {
		stats.ByPriority[task.TaskPriority(row.K)] = row.N
	}

	if err := g.db.WithContext(ctx).Model(&TaskEntity{}).
		Where("status <> ? AND due_date IS NOT NULL AND due_date < ?", string(task.StatusCompleted), time.Now()).
		Count(&stats.Overdue).Error; err != nil {
		return nil, fmt.Errorf("failed to count overdue tasks: %w", err)
	}

	var used []string
	if err := g.db.WithContext(ctx).Model(&TaskEntity{}).
		Distinct().Order("category").Pluck("category", &used).Error; err != nil {
		return nil, fmt.Errorf("failed to list task categories: %w", err)
	}
	stats.Categories = mergeCategories(task.DefaultCategories(), used)

	return stats, nil
}

// ListUnsynced implements task.TaskRepository
func (g *GormTaskRepo) ListUnsynced(ctx context.Context) ([]*task.Task, error) {
	var entities []TaskEntity
	if err := g.db.WithContext(ctx).
		Where("google_event_id IS NULL OR google_event_id = ''").
		Order("created_at ASC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list unsynced tasks: %w", err)
	}

	tasks := make([]*task.Task, len(entities))
	for i := range entities {
		tasks[i] = entities[i].ToDomain()
	}
	return tasks, nil
}

// SetGoogleEventID implements task.TaskRepository
func (g *GormTaskRepo) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	var entity TaskEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to get task for sync marking: %w", err)
	}

	if err := g.db.WithContext(ctx).Model(&entity).
		Update("google_event_id", googleEventID).Error; err != nil {
		return fmt.Errorf("failed to record google event id: %w", err)
	}
	return nil
}

func (g *GormTaskRepo) applyFilters(query *gorm.DB, req task.ListTasksRequest) *gorm.DB {
	if req.Status != "" {
		query = query.Where("status = ?", string(req.Status))
	}
	if req.Priority != "" {
		query = query.Where("priority = ?", string(req.Priority))
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	return query
}

// mergeCategories keeps the default ordering and appends anything the rows
// introduced beyond it.
func mergeCategories(defaults, used []string) []string {
	seen := make(map[string]bool, len(defaults))
	out := make([]string, 0, len(defaults)+len(used))
	for _, c := range defaults {
		seen[c] = true
		out = append(out, c)
	}
	for _, c := range used {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// NewGormTaskRepo creates a new GORM-based task repository
func NewGormTaskRepo(db *gorm.DB) task.TaskRepository {
	return &GormTaskRepo{db: db}
}
