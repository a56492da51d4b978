package session

import (
	"time"

	"github.com/google/uuid"
)

// SessionState tracks where a capture session is in its lifecycle.
type SessionState string

const (
	StateCreated      SessionState = "created"
	StateRecording    SessionState = "recording"
	StateTranscribing SessionState = "transcribing"
	StateAnalyzing    SessionState = "analyzing"
	StateDone         SessionState = "done"
	StateFailed       SessionState = "failed"
)

func (s SessionState) IsValid() bool {
	switch s {
	case StateCreated, StateRecording, StateTranscribing, StateAnalyzing, StateDone, StateFailed:
		return true
	}
	return false
}

// Session is one authenticated capture session. It lives in Redis with
// a TTL, so it survives process restarts but not abandonment.
type Session struct {
	ID             uuid.UUID    `json:"id"`
	State          SessionState `json:"state"`
	LastTranscript string       `json:"last_transcript,omitempty"`
	Utterances     int          `json:"utterances"`
	TasksDetected  int          `json:"tasks_detected"`
	EventsDetected int          `json:"events_detected"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NewSession builds a fresh session in the created state.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		State:     StateCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToResponse converts Session to SessionResponse
func (s *Session) ToResponse() *SessionResponse {
	return &SessionResponse{
		ID:             s.ID,
		State:          s.State,
		LastTranscript: s.LastTranscript,
		Utterances:     s.Utterances,
		TasksDetected:  s.TasksDetected,
		EventsDetected: s.EventsDetected,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// Utterance is one finished capture inside a session.
type Utterance struct {
	Text       string    `json:"text"`
	Tasks      int       `json:"tasks"`
	Events     int       `json:"events"`
	RecordedAt time.Time `json:"recorded_at"`
}

// OpenSessionRequest represents the request to open a session
type OpenSessionRequest struct {
	Password string `json:"password"`
}

// SessionResponse represents the session data returned to clients
type SessionResponse struct {
	ID             uuid.UUID    `json:"id" swaggertype:"string"`
	State          SessionState `json:"state"`
	LastTranscript string       `json:"last_transcript,omitempty"`
	Utterances     int          `json:"utterances"`
	TasksDetected  int          `json:"tasks_detected"`
	EventsDetected int          `json:"events_detected"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// OpenSessionResponse carries the fresh session and its bearer token.
type OpenSessionResponse struct {
	Session   *SessionResponse `json:"session"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// SessionRepository defines the interface for session state persistence
type SessionRepository interface {
	Save(session *Session, ttl time.Duration) error
	Get(id uuid.UUID) (*Session, error)
	Delete(id uuid.UUID) error

	// Utterance timeline, bounded by the caller-supplied limit on read.
	AppendUtterance(id uuid.UUID, utterance Utterance) error
	Utterances(id uuid.UUID, limit int64) ([]Utterance, error)
}
