package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/dictionary"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/stt"
	"github.com/hukuitappei/voicetask/pkg/utils"
)

var (
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrEmptyAudio         = errors.New("empty audio payload")
)

// msgNoTranscription is reported instead of running analysis over an
// empty recognition result.
const msgNoTranscription = "文字起こし結果がありません"

// TranscribeRequest carries one uploaded recording through the pipeline.
type TranscribeRequest struct {
	Audio    []byte
	Filename string
	Language string
}

// TranscribeResponse bundles the stored transcript with the analysis
// pass that ran over it. Analysis trouble is reported as data so a
// degraded analyzer never fails the transcription itself.
type TranscribeResponse struct {
	Transcript     *TranscriptResponse          `json:"transcript"`
	Tasks          []extraction.ExtractedEntity `json:"tasks"`
	Events         []extraction.ExtractedEntity `json:"events"`
	AnalysisErrors []string                     `json:"analysis_errors,omitempty"`
	StoredTasks    []*task.TaskResponse         `json:"stored_tasks,omitempty"`
	StoredEvents   []*event.EventResponse       `json:"stored_events,omitempty"`
}

// TranscriptionService defines the interface for the transcription pipeline
type TranscriptionService interface {
	// Transcribe runs recognition, dictionary corrections, persistence
	// and the task/event analysis pass over one recording.
	Transcribe(ctx context.Context, req TranscribeRequest) (*TranscribeResponse, error)

	GetTranscript(ctx context.Context, id uuid.UUID) (*TranscriptResponse, error)
	ListTranscripts(ctx context.Context, req ListTranscriptsRequest) ([]*TranscriptResponse, int64, error)
	DeleteTranscript(ctx context.Context, id uuid.UUID) error
}

type transcriptionService struct {
	transcriber stt.Transcriber
	repository  TranscriptRepository
	media       MediaStore
	dictionary  dictionary.DictionaryService
	extraction  extraction.ExtractionService
	tasks       task.TaskService
	events      event.EventService
	settings    settings.SettingsService
	logger      *Logger.Logger
}

// Transcribe implements TranscriptionService
func (s *transcriptionService) Transcribe(ctx context.Context, req TranscribeRequest) (*TranscribeResponse, error) {
	if len(req.Audio) == 0 {
		return nil, ErrEmptyAudio
	}

	tree := s.settings.GetSettings(ctx)

	language := req.Language
	if language == "" {
		language = tree.GetString("whisper.language", "ja")
	}
	filename := req.Filename
	if filename == "" {
		filename = "recording.wav"
	}
	model := stt.APIModelForSize(tree.GetString("whisper.model_size", "base"))

	result, err := s.transcriber.Transcribe(ctx, stt.Request{
		Audio:       req.Audio,
		Filename:    filename,
		Language:    language,
		Prompt:      tree.GetString("whisper.initial_prompt", ""),
		Model:       model,
		Temperature: tree.GetFloat("whisper.temperature", 0),
	})
	if err != nil {
		s.logger.Errorf("transcription failed: %v", err)
		return nil, fmt.Errorf("文字起こしエラー: %w", err)
	}

	text := result.Text
	corrections := 0
	if tree.GetBool("extraction.apply_dictionary", true) {
		corrected, err := s.dictionary.ApplyCorrections(ctx, text)
		if err != nil {
			s.logger.Warnf("error applying dictionary corrections: %v", err)
		} else {
			text = corrected.Text
			corrections = corrected.Applied
		}
	}

	transcript := NewTranscript(text, result.Language, s.transcriber.Name(), model)
	transcript.Corrections = corrections
	timestamp := utils.FileTimestamp(transcript.CreatedAt)

	// File persistence is best effort: the record is the source of
	// truth, the files exist for download.
	if tree.GetBool("transcription.save_transcriptions", true) {
		name := fmt.Sprintf("transcription_%s.txt", timestamp)
		if path, err := s.media.SaveTranscriptionFile(name, transcriptionFileContent(text, timestamp)); err != nil {
			s.logger.Warnf("error saving transcription file %s: %v", name, err)
		} else {
			transcript.TextFile = path
		}
	}
	if tree.GetBool("transcription.save_recordings", true) {
		name := fmt.Sprintf("recording_%s.wav", timestamp)
		if path, err := s.media.SaveRecordingFile(name, req.Audio); err != nil {
			s.logger.Warnf("error saving recording file %s: %v", name, err)
		} else {
			transcript.AudioFile = &path
		}
	}

	if err := s.repository.Create(ctx, transcript); err != nil {
		s.logger.Errorf("error storing transcript: %v", err)
		return nil, fmt.Errorf("failed to store transcript: %w", err)
	}

	tasks, events, analysisErrors := s.analyze(ctx, text)

	response := &TranscribeResponse{
		Transcript:     transcript.ToResponse(),
		Tasks:          tasks,
		Events:         events,
		AnalysisErrors: analysisErrors,
	}

	transcriptID := transcript.ID
	if len(tasks) > 0 && tree.GetBool("extraction.auto_extract_tasks", false) {
		stored, err := s.tasks.CreateFromEntities(ctx, tasks, &transcriptID)
		if err != nil {
			s.logger.Warnf("error auto-storing extracted tasks: %v", err)
		} else {
			response.StoredTasks = stored
		}
	}
	if len(events) > 0 && tree.GetBool("extraction.auto_extract_events", false) {
		stored, err := s.events.CreateFromEntities(ctx, events, &transcriptID)
		if err != nil {
			s.logger.Warnf("error auto-storing extracted events: %v", err)
		} else {
			response.StoredEvents = stored
		}
	}

	s.logger.Infof("transcript stored successfully: %s", transcript.ID)
	return response, nil
}

// analyze mirrors the post-transcription analysis pass: an empty text
// yields only the no-result message, and per-kind analyzer trouble is
// collected instead of raised.
func (s *transcriptionService) analyze(ctx context.Context, text string) ([]extraction.ExtractedEntity, []extraction.ExtractedEntity, []string) {
	if text == "" {
		return nil, nil, []string{msgNoTranscription}
	}

	var errs []string
	tasks, taskErr := s.extraction.ExtractTasks(ctx, text, extraction.ModeLLM)
	if taskErr != "" {
		errs = append(errs, taskErr)
	}
	events, eventErr := s.extraction.ExtractEvents(ctx, text, extraction.ModeLLM)
	if eventErr != "" {
		errs = append(errs, eventErr)
	}
	return tasks, events, errs
}

// GetTranscript implements TranscriptionService
func (s *transcriptionService) GetTranscript(ctx context.Context, id uuid.UUID) (*TranscriptResponse, error) {
	transcript, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting transcript %s: %v", id, err)
		return nil, err
	}
	return transcript.ToResponse(), nil
}

// ListTranscripts implements TranscriptionService
func (s *transcriptionService) ListTranscripts(ctx context.Context, req ListTranscriptsRequest) ([]*TranscriptResponse, int64, error) {
	transcripts, total, err := s.repository.List(ctx, req)
	if err != nil {
		s.logger.Errorf("error listing transcripts: %v", err)
		return nil, 0, fmt.Errorf("failed to list transcripts: %w", err)
	}

	responses := make([]*TranscriptResponse, 0, len(transcripts))
	for _, transcript := range transcripts {
		responses = append(responses, transcript.ToResponse())
	}
	return responses, total, nil
}

// DeleteTranscript implements TranscriptionService
func (s *transcriptionService) DeleteTranscript(ctx context.Context, id uuid.UUID) error {
	transcript, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorf("error getting transcript %s for deletion: %v", id, err)
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		s.logger.Errorf("error deleting transcript %s: %v", id, err)
		return fmt.Errorf("failed to delete transcript: %w", err)
	}

	// Orphaned files are only warned about; the record is gone.
	if transcript.TextFile != "" {
		if err := s.media.Remove(transcript.TextFile); err != nil {
			s.logger.Warnf("error removing transcription file %s: %v", transcript.TextFile, err)
		}
	}
	if transcript.AudioFile != nil {
		if err := s.media.Remove(*transcript.AudioFile); err != nil {
			s.logger.Warnf("error removing recording file %s: %v", *transcript.AudioFile, err)
		}
	}

	s.logger.Infof("transcript deleted successfully: %s", id)
	return nil
}

func transcriptionFileContent(text, timestamp string) []byte {
	var b strings.Builder
	b.WriteString("文字起こし結果 - ")
	b.WriteString(timestamp)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n")
	b.WriteString(text)
	return []byte(b.String())
}

// NewTranscriptionService creates a new instance of TranscriptionService
func NewTranscriptionService(
	transcriber stt.Transcriber,
	repository TranscriptRepository,
	media MediaStore,
	dictionaryService dictionary.DictionaryService,
	extractionService extraction.ExtractionService,
	taskService task.TaskService,
	eventService event.EventService,
	settingsService settings.SettingsService,
	logger *Logger.Logger,
) TranscriptionService {
	return &transcriptionService{
		transcriber: transcriber,
		repository:  repository,
		media:       media,
		dictionary:  dictionaryService,
		extraction:  extractionService,
		tasks:       taskService,
		events:      eventService,
		settings:    settingsService,
		logger:      logger,
	}
}
