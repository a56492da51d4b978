package stt

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the null transcriber installed when no
// speech-to-text backend is configured.
var ErrNotConfigured = errors.New("OpenAI APIキーが設定されていません")

// NullTranscriber is the transcriber of last resort: every call reports the
// missing configuration. Wiring it instead of a nil interface keeps call
// sites free of nil checks.
type NullTranscriber struct{}

func NewNullTranscriber() NullTranscriber { return NullTranscriber{} }

func (NullTranscriber) Name() string { return "null" }

func (NullTranscriber) Transcribe(ctx context.Context, req Request) (*Result, error) {
	return nil, ErrNotConfigured
}
