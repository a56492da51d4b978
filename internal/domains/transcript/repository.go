package transcript

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Transcript is one stored speech-to-text result. Text lives in the
// record; the rendered text file and raw audio are kept alongside for
// download.
type Transcript struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	Language    string    `json:"language,omitempty"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model,omitempty"`
	Corrections int       `json:"corrections"`
	TextFile    string    `json:"text_file,omitempty"`
	AudioFile   *string   `json:"audio_file,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTranscript builds a transcript record for freshly recognized text.
func NewTranscript(text, language, provider, model string) *Transcript {
	return &Transcript{
		ID:        uuid.New(),
		Text:      text,
		Language:  language,
		Provider:  provider,
		Model:     model,
		CreatedAt: time.Now(),
	}
}

// ToResponse converts Transcript to TranscriptResponse
func (t *Transcript) ToResponse() *TranscriptResponse {
	return &TranscriptResponse{
		ID:          t.ID,
		Text:        t.Text,
		Language:    t.Language,
		Provider:    t.Provider,
		Model:       t.Model,
		Corrections: t.Corrections,
		TextFile:    t.TextFile,
		AudioFile:   t.AudioFile,
		CreatedAt:   t.CreatedAt,
	}
}

// ListTranscriptsRequest represents the request to list transcripts
type ListTranscriptsRequest struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

// TranscriptResponse represents the transcript data returned to clients
type TranscriptResponse struct {
	ID          uuid.UUID `json:"id" swaggertype:"string"`
	Text        string    `json:"text"`
	Language    string    `json:"language,omitempty"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model,omitempty"`
	Corrections int       `json:"corrections"`
	TextFile    string    `json:"text_file,omitempty"`
	AudioFile   *string   `json:"audio_file,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TranscriptRepository defines the interface for transcript data access
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *Transcript) error
	GetByID(ctx context.Context, id uuid.UUID) (*Transcript, error)
	List(ctx context.Context, req ListTranscriptsRequest) ([]*Transcript, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MediaStore persists the rendered transcript files and uploaded audio.
type MediaStore interface {
	SaveTranscriptionFile(filename string, content []byte) (string, error)
	SaveRecordingFile(filename string, content []byte) (string, error)
	Remove(path string) error
}
