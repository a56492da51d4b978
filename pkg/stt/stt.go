package stt

import (
	"context"
	"time"
)

// Request carries one finished utterance to a speech-to-text backend.
type Request struct {
	Audio       []byte // complete file content, WAV unless a provider says otherwise
	Filename    string
	Language    string // hint such as "ja"; empty lets the backend detect
	Prompt      string // decode hint, e.g. domain vocabulary
	Model       string // whisper size name or API model
	Temperature float64
}

// Result is the provider-independent transcription outcome.
type Result struct {
	Text        string
	Language    string
	GeneratedAt time.Time
}

// Transcriber converts finished audio into text.
type Transcriber interface {
	Name() string
	Transcribe(ctx context.Context, req Request) (*Result, error)
}

// Local whisper checkpoints are configured by size name; the hosted API only
// serves whisper-1, so every size collapses onto it.
var sizeToAPIModel = map[string]string{
	"tiny":   "whisper-1",
	"base":   "whisper-1",
	"small":  "whisper-1",
	"medium": "whisper-1",
	"large":  "whisper-1",
}

// APIModelForSize maps a configured model size to the hosted API model name.
func APIModelForSize(size string) string {
	if m, ok := sizeToAPIModel[size]; ok {
		return m
	}
	return "whisper-1"
}
