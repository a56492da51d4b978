package calendarsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

const defaultImportLimit = 10

type syncService struct {
	tasks    task.TaskRepository
	events   event.EventRepository
	calendar CalendarClient
	logger   *Logger.Logger
}

// SyncTask implements SyncService
func (s *syncService) SyncTask(ctx context.Context, id uuid.UUID) (*task.TaskResponse, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error loading task %s for sync: %v", id, err)
		return nil, err
	}

	// Already-mirrored records are never re-inserted.
	if t.IsSynced() {
		s.logger.Infof("task already mirrored to google calendar: %s", id)
		return t.ToResponse(), nil
	}

	googleEventID, err := s.calendar.CreateTaskEvent(ctx, t)
	if err != nil {
		s.logger.Errorf("error mirroring task %s: %v", id, err)
		return nil, fmt.Errorf("failed to mirror task: %w", err)
	}

	if err := s.tasks.SetGoogleEventID(ctx, t.ID, googleEventID); err != nil {
		s.logger.Errorf("error recording google event id for task %s: %v", id, err)
		return nil, fmt.Errorf("failed to record google event id: %w", err)
	}

	t.MarkSynced(googleEventID)
	s.logger.Infof("task mirrored to google calendar: %s -> %s", id, googleEventID)
	return t.ToResponse(), nil
}

// SyncEvent implements SyncService
func (s *syncService) SyncEvent(ctx context.Context, id uuid.UUID) (*event.EventResponse, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error loading event %s for sync: %v", id, err)
		return nil, err
	}

	if e.IsSynced() {
		s.logger.Infof("event already mirrored to google calendar: %s", id)
		return e.ToResponse(), nil
	}

	googleEventID, err := s.calendar.CreateEvent(ctx, e)
	if err != nil {
		s.logger.Errorf("error mirroring event %s: %v", id, err)
		return nil, fmt.Errorf("failed to mirror event: %w", err)
	}

	if err := s.events.SetGoogleEventID(ctx, e.ID, googleEventID); err != nil {
		s.logger.Errorf("error recording google event id for event %s: %v", id, err)
		return nil, fmt.Errorf("failed to record google event id: %w", err)
	}

	e.MarkSynced(googleEventID)
	s.logger.Infof("event mirrored to google calendar: %s -> %s", id, googleEventID)
	return e.ToResponse(), nil
}

// PushAll implements SyncService
func (s *syncService) PushAll(ctx context.Context) (*SyncReport, error) {
	report := &SyncReport{RanAt: time.Now()}

	tasks, err := s.tasks.ListUnsynced(ctx)
	if err != nil {
		s.logger.Errorf("error listing unsynced tasks: %v", err)
		return nil, fmt.Errorf("failed to list unsynced tasks: %w", err)
	}
	for _, t := range tasks {
		// Undated tasks stay local until a due date is set.
		if t.DueDate == nil {
			continue
		}
		if _, err := s.SyncTask(ctx, t.ID); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("task %s: %v", t.ID, err))
			continue
		}
		report.PushedTasks++
	}

	events, err := s.events.ListUnsynced(ctx)
	if err != nil {
		s.logger.Errorf("error listing unsynced events: %v", err)
		return nil, fmt.Errorf("failed to list unsynced events: %w", err)
	}
	for _, e := range events {
		if _, err := s.SyncEvent(ctx, e.ID); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("event %s: %v", e.ID, err))
			continue
		}
		report.PushedEvents++
	}

	s.logger.Infof("calendar push finished: %d tasks, %d events, %d errors",
		report.PushedTasks, report.PushedEvents, len(report.Errors))
	return report, nil
}

// Import implements SyncService
func (s *syncService) Import(ctx context.Context) (*ImportReport, error) {
	report := &ImportReport{RanAt: time.Now()}

	remotes, err := s.calendar.ListUpcoming(ctx, defaultImportLimit)
	if err != nil {
		s.logger.Errorf("error listing google calendar events: %v", err)
		return nil, fmt.Errorf("failed to list google calendar events: %w", err)
	}

	for _, remote := range remotes {
		_, err := s.events.GetByGoogleEventID(ctx, remote.ID)
		if err == nil {
			report.Seen++
			continue
		}
		if !errors.Is(err, event.ErrEventNotFound) {
			s.logger.Errorf("error checking google event %s: %v", remote.ID, err)
			report.Errors = append(report.Errors, fmt.Sprintf("event %s: %v", remote.ID, err))
			continue
		}

		imported := event.NewImported(remote.ID, remote.Title, remote.Description, remote.Start, remote.End, remote.AllDay)
		if err := s.events.Create(ctx, imported); err != nil {
			s.logger.Errorf("error importing google event %s: %v", remote.ID, err)
			report.Errors = append(report.Errors, fmt.Sprintf("event %s: %v", remote.ID, err))
			continue
		}
		report.Imported++
	}

	s.logger.Infof("calendar import finished: %d new, %d already known", report.Imported, report.Seen)
	return report, nil
}

// NewSyncService wires the calendar mirror over the task and event stores.
func NewSyncService(
	tasks task.TaskRepository,
	events event.EventRepository,
	calendar CalendarClient,
	logger *Logger.Logger,
) SyncService {
	if calendar == nil {
		calendar = NullClient{}
	}
	return &syncService{
		tasks:    tasks,
		events:   events,
		calendar: calendar,
		logger:   logger,
	}
}
