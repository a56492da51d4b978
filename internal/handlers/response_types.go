package handlers

import (
	"time"

	"github.com/hukuitappei/voicetask/internal/domains/calendarsync"
	"github.com/hukuitappei/voicetask/internal/domains/command"
	"github.com/hukuitappei/voicetask/internal/domains/dictionary"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/internal/domains/transcript"
)

// Response wrapper types for Swagger documentation

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Something went wrong"`
	Details string `json:"details,omitempty" example:"Validation error details"`
}

// PaginationInfo represents pagination information
type PaginationInfo struct {
	Total  int64 `json:"total" example:"150"`
	Offset int   `json:"offset" example:"0"`
	Limit  int   `json:"limit" example:"20"`
}

// Session-related responses

// SessionOpenedResponse represents the response for opening a capture session
type SessionOpenedResponse struct {
	Message   string                   `json:"message" example:"Session opened successfully"`
	Session   *session.SessionResponse `json:"session"`
	Token     string                   `json:"token"`
	ExpiresAt time.Time                `json:"expires_at"`
}

// SessionStatusResponse represents the response for the current session
type SessionStatusResponse struct {
	Session *session.SessionResponse `json:"session"`
}

// SessionHistoryResponse represents the recent utterance timeline
type SessionHistoryResponse struct {
	Utterances []session.Utterance `json:"utterances"`
}

// Transcription-related responses

// TranscriptDetailResponse represents the response for a single transcript
type TranscriptDetailResponse struct {
	Transcript *transcript.TranscriptResponse `json:"transcript"`
}

// ListTranscriptsResponse represents the response for listing transcripts
type ListTranscriptsResponse struct {
	Transcripts []*transcript.TranscriptResponse `json:"transcripts"`
	Pagination  PaginationInfo                   `json:"pagination"`
}

// Task-related responses

// CreateTaskResponse represents the response for task creation
type CreateTaskResponse struct {
	Message string            `json:"message" example:"Task created successfully"`
	Task    task.TaskResponse `json:"task"`
}

// TaskDetailResponse represents the response for getting a single task
type TaskDetailResponse struct {
	Task task.TaskResponse `json:"task"`
}

// UpdateTaskResponse represents the response for updating a task
type UpdateTaskResponse struct {
	Message string            `json:"message" example:"Task updated successfully"`
	Task    task.TaskResponse `json:"task"`
}

// ListTasksResponse represents the response for listing tasks
type ListTasksResponse struct {
	Tasks      []*task.TaskResponse `json:"tasks"`
	Pagination PaginationInfo       `json:"pagination"`
}

// TaskStatsResponse represents the response for task statistics
type TaskStatsResponse struct {
	Stats *task.TaskStats `json:"stats"`
}

// SyncedTaskResponse represents the response for mirroring a task to Google Calendar
type SyncedTaskResponse struct {
	Message string            `json:"message" example:"Task synced to Google Calendar"`
	Task    task.TaskResponse `json:"task"`
}

// Event-related responses

// CreateEventResponse represents the response for event creation
type CreateEventResponse struct {
	Message string              `json:"message" example:"Event created successfully"`
	Event   event.EventResponse `json:"event"`
}

// EventDetailResponse represents the response for getting a single event
type EventDetailResponse struct {
	Event event.EventResponse `json:"event"`
}

// UpdateEventResponse represents the response for updating an event
type UpdateEventResponse struct {
	Message string              `json:"message" example:"Event updated successfully"`
	Event   event.EventResponse `json:"event"`
}

// ListEventsResponse represents the response for listing events
type ListEventsResponse struct {
	Events     []*event.EventResponse `json:"events"`
	Pagination PaginationInfo         `json:"pagination"`
}

// SyncedEventResponse represents the response for mirroring an event to Google Calendar
type SyncedEventResponse struct {
	Message string              `json:"message" example:"Event synced to Google Calendar"`
	Event   event.EventResponse `json:"event"`
}

// Calendar-related responses

// CalendarSyncResponse represents the response for a push-all run
type CalendarSyncResponse struct {
	Message string                   `json:"message" example:"Calendar sync completed"`
	Report  *calendarsync.SyncReport `json:"report"`
}

// CalendarImportResponse represents the response for an import run
type CalendarImportResponse struct {
	Message string                     `json:"message" example:"Calendar import completed"`
	Report  *calendarsync.ImportReport `json:"report"`
}

// Dictionary-related responses

// TermCreatedResponse represents the response for adding a dictionary term
type TermCreatedResponse struct {
	Message string                  `json:"message" example:"Term added successfully"`
	Term    dictionary.TermResponse `json:"term"`
}

// TermDetailResponse represents the response for getting a dictionary term
type TermDetailResponse struct {
	Term dictionary.TermResponse `json:"term"`
}

// ApplyCorrectionsRequest represents the request to correct a piece of text
type ApplyCorrectionsRequest struct {
	Text string `json:"text" binding:"required"`
}

// Command-related responses

// ListCommandsResponse represents the response for listing commands
type ListCommandsResponse struct {
	Commands []command.CommandResponse `json:"commands"`
}

// CommandCreatedResponse represents the response for command creation
type CommandCreatedResponse struct {
	Message string                  `json:"message" example:"Command created successfully"`
	Command command.CommandResponse `json:"command"`
}

// CommandDetailResponse represents the response for getting a single command
type CommandDetailResponse struct {
	Command command.CommandResponse `json:"command"`
}

// CommandUpdatedResponse represents the response for updating a command
type CommandUpdatedResponse struct {
	Message string                  `json:"message" example:"Command updated successfully"`
	Command command.CommandResponse `json:"command"`
}

// Settings-related responses

// SettingsDocumentResponse represents the effective settings document
type SettingsDocumentResponse struct {
	Settings settings.SettingsTree `json:"settings"`
}

// SettingsUpdatedResponse represents the response for a settings write
type SettingsUpdatedResponse struct {
	Message  string                `json:"message" example:"Settings updated successfully"`
	Settings settings.SettingsTree `json:"settings"`
}

// SettingsValueResponse represents a single value read by dotted path
type SettingsValueResponse struct {
	Path  string `json:"path" example:"whisper.language"`
	Value any    `json:"value"`
}
