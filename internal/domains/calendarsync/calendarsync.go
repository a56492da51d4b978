package calendarsync

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/task"
)

// ErrNotLinked is returned when no Google Calendar credentials are configured.
var ErrNotLinked = errors.New("Googleカレンダーが認証されていません")

// JobType identifies a queued sync job.
type JobType string

const (
	JobTypeCalendarPush   JobType = "calendar_push"
	JobTypeCalendarImport JobType = "calendar_import"
)

// JobPayload is the wire form of a queued sync job.
type JobPayload struct {
	JobType    JobType   `json:"job_type"`
	Trigger    string    `json:"trigger"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// RemoteEvent is a calendar entry as Google reports it.
type RemoteEvent struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// CalendarClient is the outbound calendar surface the sync service drives.
// pkg/gcal provides the real implementation; NullClient stands in when the
// integration is switched off.
type CalendarClient interface {
	CreateTaskEvent(ctx context.Context, t *task.Task) (string, error)
	CreateEvent(ctx context.Context, e *event.Event) (string, error)
	ListUpcoming(ctx context.Context, maxResults int) ([]RemoteEvent, error)
}

// NullClient rejects every call with ErrNotLinked.
type NullClient struct{}

// CreateTaskEvent implements CalendarClient
func (NullClient) CreateTaskEvent(ctx context.Context, t *task.Task) (string, error) {
	return "", ErrNotLinked
}

// CreateEvent implements CalendarClient
func (NullClient) CreateEvent(ctx context.Context, e *event.Event) (string, error) {
	return "", ErrNotLinked
}

// ListUpcoming implements CalendarClient
func (NullClient) ListUpcoming(ctx context.Context, maxResults int) ([]RemoteEvent, error) {
	return nil, ErrNotLinked
}

// SyncReport summarizes one push pass.
type SyncReport struct {
	PushedTasks  int       `json:"pushed_tasks"`
	PushedEvents int       `json:"pushed_events"`
	Errors       []string  `json:"errors,omitempty"`
	RanAt        time.Time `json:"ran_at"`
}

// ImportReport summarizes one pull pass.
type ImportReport struct {
	Imported int       `json:"imported"`
	Seen     int       `json:"seen"`
	Errors   []string  `json:"errors,omitempty"`
	RanAt    time.Time `json:"ran_at"`
}

// SyncService mirrors local tasks and events to Google Calendar and imports
// remote entries that have no local counterpart. It is usable without the
// background worker so manual sync endpoints keep working when the periodic
// queue is disabled.
type SyncService interface {
	SyncTask(ctx context.Context, id uuid.UUID) (*task.TaskResponse, error)
	SyncEvent(ctx context.Context, id uuid.UUID) (*event.EventResponse, error)
	PushAll(ctx context.Context) (*SyncReport, error)
	Import(ctx context.Context) (*ImportReport, error)
}
