package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"gorm.io/gorm"
)

type GormEventRepo struct {
	db *gorm.DB
}

// Create implements event.EventRepository
func (g *GormEventRepo) Create(ctx context.Context, e *event.Event) error {
	entity := NewEventEntityFromDomain(e)
	if err := g.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	*e = *entity.ToDomain()
	return nil
}

// GetByID implements event.EventRepository
func (g *GormEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	var entity EventEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// Update implements event.EventRepository
func (g *GormEventRepo) Update(ctx context.Context, e *event.Event) error {
	var entity EventEntity
	if err := g.db.WithContext(ctx).Where("id = ?", e.ID).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event for update: %w", err)
	}

	entity.FromDomain(e)
	if err := g.db.WithContext(ctx).Save(&entity).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete implements event.EventRepository
func (g *GormEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := g.db.WithContext(ctx).Where("id = ?", id).Delete(&EventEntity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

// List implements event.EventRepository
func (g *GormEventRepo) List(ctx context.Context, req event.ListEventsRequest) ([]*event.Event, int64, error) {
	var entities []EventEntity
	var total int64

	query := g.db.WithContext(ctx).Model(&EventEntity{})
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.From != nil {
		query = query.Where("start_date >= ?", *req.From)
	}
	if req.To != nil {
		query = query.Where("start_date <= ?", *req.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query = query.Order("start_date ASC")
	if req.Limit > 0 {
		query = query.Limit(req.Limit)
	}
	if req.Offset > 0 {
		query = query.Offset(req.Offset)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*event.Event, len(entities))
	for i := range entities {
		events[i] = entities[i].ToDomain()
	}
	return events, total, nil
}

// GetByGoogleEventID implements event.EventRepository
func (g *GormEventRepo) GetByGoogleEventID(ctx context.Context, googleEventID string) (*event.Event, error) {
	var entity EventEntity
	if err := g.db.WithContext(ctx).Where("google_event_id = ?", googleEventID).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by google event id: %w", err)
	}
	return entity.ToDomain(), nil
}

// ListUnsynced implements event.EventRepository
func (g *GormEventRepo) ListUnsynced(ctx context.Context) ([]*event.Event, error) {
	var entities []EventEntity
	if err := g.db.WithContext(ctx).
		Where("google_event_id IS NULL OR google_event_id = ''").
		Order("start_date ASC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list unsynced events: %w", err)
	}

	events := make([]*event.Event, len(entities))
	for i := range entities {
		events[i] = entities[i].ToDomain()
	}
	return events, nil
}

// SetGoogleEventID implements event.EventRepository
func (g *GormEventRepo) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	var entity EventEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event for sync marking: %w", err)
	}

	if err := g.db.WithContext(ctx).Model(&entity).
		Update("google_event_id", googleEventID).Error; err != nil {
		return fmt.Errorf("failed to record google event id: %w", err)
	}
	return nil
}

// NewGormEventRepo creates a new GORM-based event repository
func NewGormEventRepo(db *gorm.DB) event.EventRepository {
	return &GormEventRepo{db: db}
}
