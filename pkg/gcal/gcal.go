// Package gcal wraps the Google Calendar v3 API behind refresh-token
// credentials. No browser flow is involved; the refresh token comes from
// configuration and access tokens are minted on demand.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultTimeZone   = "Asia/Tokyo"
	defaultCalendarID = "primary"
	dateOnlyLayout    = "2006-01-02"
)

var ErrMissingCredentials = errors.New("missing google oauth credentials")

// Config carries the oauth application and the user's refresh token.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
}

// Client is a thin wrapper over the calendar service bound to one calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClient builds a calendar client whose access tokens refresh themselves
// from the configured refresh token.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, ErrMissingCredentials
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarScope},
	}
	source := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	service, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	return &Client{service: service, calendarID: calendarID}, nil
}

// EventInput is the insert payload. All-day entries use date-only fields on
// the wire; timed entries carry RFC3339 stamps in the Asia/Tokyo zone.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// RemoteItem is a calendar entry as returned by the list call.
type RemoteItem struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// InsertEvent creates the event and returns the Google-assigned id.
func (c *Client) InsertEvent(ctx context.Context, input EventInput) (string, error) {
	created, err := c.service.Events.Insert(c.calendarID, eventBody(input)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return created.Id, nil
}

// DeleteRemoteEvent removes a mirrored event from the calendar.
func (c *Client) DeleteRemoteEvent(ctx context.Context, googleEventID string) error {
	if err := c.service.Events.Delete(c.calendarID, googleEventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// ListUpcoming returns upcoming entries ordered by start time.
func (c *Client) ListUpcoming(ctx context.Context, maxResults int) ([]RemoteItem, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	result, err := c.service.Events.List(c.calendarID).
		TimeMin(time.Now().UTC().Format(time.RFC3339)).
		MaxResults(int64(maxResults)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	items := make([]RemoteItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, remoteItem(item))
	}
	return items, nil
}

func eventBody(input EventInput) *calendar.Event {
	body := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
	}
	if input.AllDay {
		body.Start = &calendar.EventDateTime{Date: input.Start.Format(dateOnlyLayout)}
		body.End = &calendar.EventDateTime{Date: input.End.Format(dateOnlyLayout)}
		return body
	}
	body.Start = &calendar.EventDateTime{DateTime: input.Start.Format(time.RFC3339), TimeZone: defaultTimeZone}
	body.End = &calendar.EventDateTime{DateTime: input.End.Format(time.RFC3339), TimeZone: defaultTimeZone}
	return body
}

func remoteItem(item *calendar.Event) RemoteItem {
	out := RemoteItem{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
	}
	if item.Start != nil {
		out.Start, out.AllDay = parseEventTime(item.Start)
	}
	if item.End != nil {
		out.End, _ = parseEventTime(item.End)
	}
	return out
}

// parseEventTime handles both wire shapes: timed entries carry DateTime,
// all-day entries carry a date-only Date.
func parseEventTime(t *calendar.EventDateTime) (time.Time, bool) {
	if t.DateTime != "" {
		if parsed, err := time.Parse(time.RFC3339, t.DateTime); err == nil {
			return parsed, false
		}
	}
	if t.Date != "" {
		if parsed, err := time.Parse(dateOnlyLayout, t.Date); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
