package stt

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAITranscriber struct {
	client openai.Client
}

// NewOpenAI builds the hosted-API transcriber.
func NewOpenAI(apiKey string) (Transcriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is not configured")
	}
	return &openAITranscriber{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

func (t *openAITranscriber) Name() string { return "openai" }

// Transcribe implements Transcriber.
func (t *openAITranscriber) Transcribe(ctx context.Context, req Request) (*Result, error) {
	if len(req.Audio) == 0 {
		return nil, fmt.Errorf("no audio data provided")
	}

	filename := req.Filename
	if filename == "" {
		filename = "audio.wav"
	}

	params := openai.AudioTranscriptionNewParams{
		File:  openai.File(bytes.NewReader(req.Audio), filename, "audio/wav"),
		Model: openai.AudioModel(APIModelForSize(req.Model)),
	}
	if req.Language != "" {
		params.Language = openai.String(req.Language)
	}
	if req.Prompt != "" {
		params.Prompt = openai.String(req.Prompt)
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	transcription, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}

	return &Result{
		Text:        transcription.Text,
		Language:    req.Language,
		GeneratedAt: time.Now(),
	}, nil
}
