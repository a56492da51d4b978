package websocket

import (
	"time"

	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/internal/domains/transcript"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Client -> server control messages
	MessageTypeStart MessageType = "start"
	MessageTypeStop  MessageType = "stop"

	// Server -> client event messages
	MessageTypeState      MessageType = "state"
	MessageTypeTranscript MessageType = "transcript"
	MessageTypeError      MessageType = "error"
)

// ControlMessage is a JSON text frame the client sends to drive the capture
type ControlMessage struct {
	Type MessageType `json:"type"`
}

// StateMessage reports a capture lifecycle transition
type StateMessage struct {
	Type      MessageType          `json:"type"`
	State     session.SessionState `json:"state"`
	Timestamp time.Time            `json:"timestamp"`
}

// TranscriptMessage carries the finished pipeline result
type TranscriptMessage struct {
	Type      MessageType                    `json:"type"`
	Result    *transcript.TranscribeResponse `json:"result"`
	Timestamp time.Time                      `json:"timestamp"`
}

// ErrorMessage reports a capture problem without closing the connection
type ErrorMessage struct {
	Type      MessageType `json:"type"`
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// Error codes pushed inside ErrorMessage
const (
	ErrCodeInvalidState  = "invalid_state"
	ErrCodeBadFrame      = "bad_frame"
	ErrCodeEmptyAudio    = "empty_audio"
	ErrCodeTranscription = "transcription_failed"
	ErrCodeUnknownType   = "unknown_message_type"
)
