package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventData = errors.New("invalid event data")
)

// EventMirror removes the remote calendar copy of a synced event.
type EventMirror interface {
	DeleteRemoteEvent(ctx context.Context, googleEventID string) error
}

// NoopMirror is the EventMirror used when no calendar is configured.
type NoopMirror struct{}

func (NoopMirror) DeleteRemoteEvent(ctx context.Context, googleEventID string) error {
	return nil
}

// EventService defines the interface for event business logic
type EventService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ListEvents(ctx context.Context, req ListEventsRequest) ([]*EventResponse, int64, error)

	// CreateFromEntities stores every extracted event hit, skipping the
	// ones the store rejects.
	CreateFromEntities(ctx context.Context, entities []extraction.ExtractedEntity, transcriptID *uuid.UUID) ([]*EventResponse, error)
}

type eventService struct {
	repository EventRepository
	mirror     EventMirror
	logger     *Logger.Logger
}

// CreateEvent implements EventService
func (s *eventService) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	event := NewEvent(req)
	if event.EndDate.Before(event.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidEventData)
	}

	if err := s.repository.Create(ctx, event); err != nil {
		s.logger.Errorf("error creating event: %v", err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Infof("event created successfully: %s", event.ID)
	return event.ToResponse(), nil
}

// GetEvent implements EventService
func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting event %s: %v", id, err)
		return nil, err
	}
	return event.ToResponse(), nil
}

// UpdateEvent implements EventService
func (s *eventService) UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting event %s for update: %v", id, err)
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	if req.Category != nil {
		event.Category = *req.Category
	}

	if event.EndDate.Before(event.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidEventData)
	}

	if err := s.repository.Update(ctx, event); err != nil {
		s.logger.Errorf("error updating event %s: %v", id, err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.logger.Infof("event updated successfully: %s", event.ID)
	return event.ToResponse(), nil
}

// DeleteEvent implements EventService
func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	event, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting event %s for deletion: %v", id, err)
		return err
	}

	// A remote delete failure must not strand the local row.
	if event.IsSynced() {
		if err := s.mirror.DeleteRemoteEvent(ctx, *event.GoogleEventID); err != nil {
			s.logger.Warnf("error deleting calendar event for %s: %v", event.ID, err)
		}
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		s.logger.Errorf("error deleting event %s: %v", id, err)
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.Infof("event deleted successfully: %s", id)
	return nil
}

// ListEvents implements EventService
func (s *eventService) ListEvents(ctx context.Context, req ListEventsRequest) ([]*EventResponse, int64, error) {
	events, total, err := s.repository.List(ctx, req)
	if err != nil {
		s.logger.Errorf("error listing events: %v", err)
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]*EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, event.ToResponse())
	}
	return responses, total, nil
}

// CreateFromEntities implements EventService
func (s *eventService) CreateFromEntities(ctx context.Context, entities []extraction.ExtractedEntity, transcriptID *uuid.UUID) ([]*EventResponse, error) {
	responses := make([]*EventResponse, 0, len(entities))
	var lastErr error
	for _, entity := range entities {
		if entity.Kind != extraction.KindEvent {
			continue
		}
		event := FromExtracted(entity, transcriptID)
		if err := s.repository.Create(ctx, event); err != nil {
			s.logger.Errorf("error storing extracted event %q: %v", entity.Title, err)
			lastErr = err
			continue
		}
		responses = append(responses, event.ToResponse())
	}

	if len(responses) == 0 && lastErr != nil {
		return nil, fmt.Errorf("failed to store extracted events: %w", lastErr)
	}
	s.logger.Infof("stored %d extracted events", len(responses))
	return responses, nil
}

// NewEventService creates a new instance of EventService
func NewEventService(repository EventRepository, mirror EventMirror, logger *Logger.Logger) EventService {
	if mirror == nil {
		mirror = NoopMirror{}
	}
	return &eventService{
		repository: repository,
		mirror:     mirror,
		logger:     logger,
	}
}
