package calendarsync

import (
	"context"
	"time"

	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/pkg/gcal"
)

// GoogleCalendarClient adapts the raw calendar wrapper to the domain types
// the sync service works with.
type GoogleCalendarClient struct {
	client *gcal.Client
}

// NewGoogleCalendarClient wraps an authenticated calendar client.
func NewGoogleCalendarClient(client *gcal.Client) *GoogleCalendarClient {
	return &GoogleCalendarClient{client: client}
}

// CreateTaskEvent implements CalendarClient
func (c *GoogleCalendarClient) CreateTaskEvent(ctx context.Context, t *task.Task) (string, error) {
	return c.client.InsertEvent(ctx, taskEventInput(t, time.Now()))
}

// CreateEvent implements CalendarClient
func (c *GoogleCalendarClient) CreateEvent(ctx context.Context, e *event.Event) (string, error) {
	return c.client.InsertEvent(ctx, eventInput(e))
}

// ListUpcoming implements CalendarClient
func (c *GoogleCalendarClient) ListUpcoming(ctx context.Context, maxResults int) ([]RemoteEvent, error) {
	items, err := c.client.ListUpcoming(ctx, maxResults)
	if err != nil {
		return nil, err
	}

	remotes := make([]RemoteEvent, 0, len(items))
	for _, item := range items {
		remotes = append(remotes, RemoteEvent{
			ID:          item.ID,
			Title:       item.Summary,
			Description: item.Description,
			Start:       item.Start,
			End:         item.End,
			AllDay:      item.AllDay,
		})
	}
	return remotes, nil
}

// taskEventInput maps a task onto a calendar entry at its due date. An
// undated task lands at the current time with a one hour window.
func taskEventInput(t *task.Task, now time.Time) gcal.EventInput {
	start := now
	end := now.Add(time.Hour)
	if t.DueDate != nil {
		start = *t.DueDate
		end = *t.DueDate
	}

	return gcal.EventInput{
		Summary:     t.Title,
		Description: t.Description,
		Start:       start,
		End:         end,
	}
}

func eventInput(e *event.Event) gcal.EventInput {
	return gcal.EventInput{
		Summary:     e.Title,
		Description: e.Description,
		Start:       e.StartDate,
		End:         e.EndDate,
		AllDay:      e.AllDay,
	}
}
