package transcript

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hukuitappei/voicetask/internal/domains/dictionary"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/stt"
)

type stubTranscriber struct {
	text string
	err  error
	last stt.Request
}

func (s *stubTranscriber) Name() string { return "stub" }

func (s *stubTranscriber) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &stt.Result{Text: s.text, Language: req.Language, GeneratedAt: time.Now()}, nil
}

type memoryTranscriptRepo struct {
	records map[uuid.UUID]*Transcript
}

func newMemoryTranscriptRepo() *memoryTranscriptRepo {
	return &memoryTranscriptRepo{records: make(map[uuid.UUID]*Transcript)}
}

func (r *memoryTranscriptRepo) Create(ctx context.Context, transcript *Transcript) error {
	copied := *transcript
	r.records[transcript.ID] = &copied
	return nil
}

func (r *memoryTranscriptRepo) GetByID(ctx context.Context, id uuid.UUID) (*Transcript, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, ErrTranscriptNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *memoryTranscriptRepo) List(ctx context.Context, req ListTranscriptsRequest) ([]*Transcript, int64, error) {
	var out []*Transcript
	for _, record := range r.records {
		copied := *record
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memoryTranscriptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return ErrTranscriptNotFound
	}
	delete(r.records, id)
	return nil
}

type memoryMedia struct {
	transcriptions map[string][]byte
	recordings     map[string][]byte
	removed        []string
}

func (m *memoryMedia) SaveTranscriptionFile(filename string, content []byte) (string, error) {
	if m.transcriptions == nil {
		m.transcriptions = make(map[string][]byte)
	}
	m.transcriptions[filename] = content
	return filepath.Join("transcriptions", filename), nil
}

func (m *memoryMedia) SaveRecordingFile(filename string, content []byte) (string, error) {
	if m.recordings == nil {
		m.recordings = make(map[string][]byte)
	}
	m.recordings[filename] = content
	return filepath.Join("recordings", filename), nil
}

func (m *memoryMedia) Remove(path string) error {
	m.removed = append(m.removed, path)
	return nil
}

type stubDictionary struct {
	rewrite string
	applied int
	calls   int
}

func (s *stubDictionary) GetDictionary(ctx context.Context) (*dictionary.DictionaryResponse, error) {
	return nil, nil
}

func (s *stubDictionary) AddTerm(ctx context.Context, req dictionary.AddTermRequest) (*dictionary.TermResponse, error) {
	return nil, nil
}

func (s *stubDictionary) GetTerm(ctx context.Context, category, term string) (*dictionary.TermResponse, error) {
	return nil, nil
}

func (s *stubDictionary) RemoveTerm(ctx context.Context, category, term string) error {
	return nil
}

func (s *stubDictionary) ApplyCorrections(ctx context.Context, text string) (*dictionary.CorrectionResponse, error) {
	s.calls++
	out := text
	if s.rewrite != "" {
		out = s.rewrite
	}
	return &dictionary.CorrectionResponse{Text: out, Applied: s.applied}, nil
}

type stubExtraction struct {
	tasks    []extraction.ExtractedEntity
	events   []extraction.ExtractedEntity
	taskErr  string
	eventErr string
	calls    int
	lastMode extraction.Mode
}

func (s *stubExtraction) ExtractTasks(ctx context.Context, text string, mode extraction.Mode) ([]extraction.ExtractedEntity, string) {
	s.calls++
	s.lastMode = mode
	return s.tasks, s.taskErr
}

func (s *stubExtraction) ExtractEvents(ctx context.Context, text string, mode extraction.Mode) ([]extraction.ExtractedEntity, string) {
	s.calls++
	s.lastMode = mode
	return s.events, s.eventErr
}

func (s *stubExtraction) ExtractAll(ctx context.Context, req extraction.ExtractRequest) extraction.ExtractResult {
	return extraction.ExtractResult{}
}

func (s *stubExtraction) Relatedness(text string) extraction.RelatednessResult {
	return extraction.RelatednessResult{}
}

type stubTasks struct {
	entities     []extraction.ExtractedEntity
	transcriptID *uuid.UUID
}

func (s *stubTasks) CreateTask(ctx context.Context, req task.CreateTaskRequest) (*task.TaskResponse, error) {
	return nil, nil
}

func (s *stubTasks) GetTask(ctx context.Context, id uuid.UUID) (*task.TaskResponse, error) {
	return nil, nil
}

func (s *stubTasks) UpdateTask(ctx context.Context, id uuid.UUID, req task.UpdateTaskRequest) (*task.TaskResponse, error) {
	return nil, nil
}

func (s *stubTasks) CompleteTask(ctx context.Context, id uuid.UUID) (*task.TaskResponse, error) {
	return nil, nil
}

func (s *stubTasks) DeleteTask(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubTasks) ListTasks(ctx context.Context, req task.ListTasksRequest) ([]*task.TaskResponse, int64, error) {
	return nil, 0, nil
}

func (s *stubTasks) Stats(ctx context.Context) (*task.TaskStats, error) { return nil, nil }

func (s *stubTasks) CreateFromEntities(ctx context.Context, entities []extraction.ExtractedEntity, transcriptID *uuid.UUID) ([]*task.TaskResponse, error) {
	s.entities = entities
	s.transcriptID = transcriptID
	out := make([]*task.TaskResponse, 0, len(entities))
	for _, entity := range entities {
		out = append(out, &task.TaskResponse{Title: entity.Title})
	}
	return out, nil
}

type stubEvents struct {
	entities     []extraction.ExtractedEntity
	transcriptID *uuid.UUID
}

func (s *stubEvents) CreateEvent(ctx context.Context, req event.CreateEventRequest) (*event.EventResponse, error) {
	return nil, nil
}

func (s *stubEvents) GetEvent(ctx context.Context, id uuid.UUID) (*event.EventResponse, error) {
	return nil, nil
}

func (s *stubEvents) UpdateEvent(ctx context.Context, id uuid.UUID, req event.UpdateEventRequest) (*event.EventResponse, error) {
	return nil, nil
}

func (s *stubEvents) DeleteEvent(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubEvents) ListEvents(ctx context.Context, req event.ListEventsRequest) ([]*event.EventResponse, int64, error) {
	return nil, 0, nil
}

func (s *stubEvents) CreateFromEntities(ctx context.Context, entities []extraction.ExtractedEntity, transcriptID *uuid.UUID) ([]*event.EventResponse, error) {
	s.entities = entities
	s.transcriptID = transcriptID
	out := make([]*event.EventResponse, 0, len(entities))
	for _, entity := range entities {
		out = append(out, &event.EventResponse{Title: entity.Title})
	}
	return out, nil
}

type stubSettings struct {
	tree settings.SettingsTree
}

func (s stubSettings) GetSettings(ctx context.Context) settings.SettingsTree {
	return s.tree
}

func (s stubSettings) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsTree, error) {
	return s.tree, nil
}

func (s stubSettings) GetValue(ctx context.Context, path string) (any, error) {
	v, _ := s.tree.Get(path)
	return v, nil
}

func (s stubSettings) UpdateValue(ctx context.Context, req settings.UpdateValueRequest) (settings.SettingsTree, error) {
	return s.tree, nil
}

func (s stubSettings) Reset(ctx context.Context) (settings.SettingsTree, error) {
	return s.tree, nil
}

type pipeline struct {
	transcriber *stubTranscriber
	repo        *memoryTranscriptRepo
	media       *memoryMedia
	dict        *stubDictionary
	extract     *stubExtraction
	tasks       *stubTasks
	events      *stubEvents
	service     TranscriptionService
}

func newPipeline(tree settings.SettingsTree) *pipeline {
	p := &pipeline{
		transcriber: &stubTranscriber{text: "こんにちは"},
		repo:        newMemoryTranscriptRepo(),
		media:       &memoryMedia{},
		dict:        &stubDictionary{},
		extract:     &stubExtraction{},
		tasks:       &stubTasks{},
		events:      &stubEvents{},
	}
	p.service = NewTranscriptionService(
		p.transcriber, p.repo, p.media, p.dict, p.extract, p.tasks, p.events,
		stubSettings{tree: tree}, Logger.NewNop(),
	)
	return p
}

func TestTranscribeEmptyAudio(t *testing.T) {
	p := newPipeline(settings.SettingsTree{})

	_, err := p.service.Transcribe(context.Background(), TranscribeRequest{})
	if !errors.Is(err, ErrEmptyAudio) {
		t.Errorf("Expected ErrEmptyAudio, got %v", err)
	}
}

func TestTranscribePipeline(t *testing.T) {
	p := newPipeline(settings.SettingsTree{})
	p.transcriber.text = "めも　今日の会議"
	p.dict.rewrite = "メモ 今日の会議"
	p.dict.applied = 1
	p.extract.tasks = []extraction.ExtractedEntity{{Kind: extraction.KindTask, Title: "会議の準備"}}
	p.extract.events = []extraction.ExtractedEntity{{Kind: extraction.KindEvent, Title: "今日の会議"}}

	resp, err := p.service.Transcribe(context.Background(), TranscribeRequest{
		Audio:    []byte{1, 2, 3, 4},
		Filename: "upload.wav",
	})
	if err != nil {
		t.Fatalf("Expected pipeline to succeed, got %v", err)
	}

	if p.transcriber.last.Language != "ja" {
		t.Errorf("Expected default language ja, got %q", p.transcriber.last.Language)
	}
	if p.transcriber.last.Model != "whisper-1" {
		t.Errorf("Expected model whisper-1, got %q", p.transcriber.last.Model)
	}

	if resp.Transcript.Text != "メモ 今日の会議" {
		t.Errorf("Expected corrected text, got %q", resp.Transcript.Text)
	}
	if resp.Transcript.Corrections != 1 {
		t.Errorf("Expected 1 correction, got %d", resp.Transcript.Corrections)
	}
	if len(resp.Tasks) != 1 || len(resp.Events) != 1 {
		t.Errorf("Expected 1 task and 1 event, got %d and %d", len(resp.Tasks), len(resp.Events))
	}
	if len(resp.AnalysisErrors) != 0 {
		t.Errorf("Expected no analysis errors, got %v", resp.AnalysisErrors)
	}
	if p.extract.lastMode != extraction.ModeLLM {
		t.Errorf("Expected analysis in llm mode, got %q", p.extract.lastMode)
	}

	if len(p.media.transcriptions) != 1 {
		t.Fatalf("Expected 1 saved transcription file, got %d", len(p.media.transcriptions))
	}
	for name, content := range p.media.transcriptions {
		if !strings.HasPrefix(name, "transcription_") || !strings.HasSuffix(name, ".txt") {
			t.Errorf("Expected transcription_<ts>.txt filename, got %q", name)
		}
		text := string(content)
		if !strings.HasPrefix(text, "文字起こし結果 - ") {
			t.Errorf("Expected header line, got %q", text)
		}
		if !strings.Contains(text, strings.Repeat("=", 50)) {
			t.Error("Expected 50-char separator rule in file")
		}
		if !strings.HasSuffix(text, "メモ 今日の会議") {
			t.Errorf("Expected corrected text in file, got %q", text)
		}
	}
	if len(p.media.recordings) != 1 {
		t.Fatalf("Expected 1 saved recording, got %d", len(p.media.recordings))
	}
	for name, content := range p.media.recordings {
		if !strings.HasPrefix(name, "recording_") || !strings.HasSuffix(name, ".wav") {
			t.Errorf("Expected recording_<ts>.wav filename, got %q", name)
		}
		if len(content) != 4 {
			t.Errorf("Expected raw audio bytes to be saved, got %d bytes", len(content))
		}
	}

	stored, err := p.repo.GetByID(context.Background(), resp.Transcript.ID)
	if err != nil {
		t.Fatalf("Expected stored transcript, got %v", err)
	}
	if stored.TextFile == "" || stored.AudioFile == nil {
		t.Errorf("Expected stored file paths, got %q and %v", stored.TextFile, stored.AudioFile)
	}
	if resp.StoredTasks != nil || resp.StoredEvents != nil {
		t.Error("Expected no auto-stored entities with default settings")
	}
}

func TestTranscribeProviderError(t *testing.T) {
	p := newPipeline(settings.SettingsTree{})
	p.transcriber.err = errors.New("api unreachable")

	_, err := p.service.Transcribe(context.Background(), TranscribeRequest{Audio: []byte{1}})
	if err == nil {
		t.Fatal("Expected an error from a failing provider")
	}
	if !strings.HasPrefix(err.Error(), "文字起こしエラー: ") {
		t.Errorf("Expected 文字起こしエラー prefix, got %q", err.Error())
	}
}

func TestTranscribeEmptyResultSkipsAnalysis(t *testing.T) {
	p := newPipeline(settings.SettingsTree{})
	p.transcriber.text = ""

	resp, err := p.service.Transcribe(context.Background(), TranscribeRequest{Audio: []byte{1}})
	if err != nil {
		t.Fatalf("Expected pipeline to succeed, got %v", err)
	}

	if len(resp.AnalysisErrors) != 1 || resp.AnalysisErrors[0] != "文字起こし結果がありません" {
		t.Errorf("Expected the no-result message, got %v", resp.AnalysisErrors)
	}
	if p.extract.calls != 0 {
		t.Errorf("Expected analysis to be skipped, got %d calls", p.extract.calls)
	}
}

func TestTranscribeCollectsAnalysisErrors(t *testing.T) {
	p := newPipeline(settings.SettingsTree{})
	p.extract.taskErr = "OpenAI APIキーが設定されていません"
	p.extract.eventErr = "イベント分析エラー: timeout"

	resp, err := p.service.Transcribe(context.Background(), TranscribeRequest{Audio: []byte{1}})
	if err != nil {
		t.Fatalf("Expected pipeline to succeed, got %v", err)
	}

	if len(resp.AnalysisErrors) != 2 {
		t.Fatalf("Expected 2 analysis errors, got %v", resp.AnalysisErrors)
	}
	if resp.AnalysisErrors[0] != "OpenAI APIキーが設定されていません" {
		t.Errorf("Expected task error first, got %q", resp.AnalysisErrors[0])
	}
}

func TestTranscribeAutoStoresEntities(t *testing.T) {
	tree := settings.SettingsTree{
		"extraction": map[string]any{
			"auto_extract_tasks":  true,
			"auto_extract_events": true,
		},
	}
	p := newPipeline(tree)
	p.extract.tasks = []extraction.ExtractedEntity{{Kind: extraction.KindTask, Title: "資料を準備する"}}
	p.extract.events = []extraction.ExtractedEntity{{Kind: extraction.KindEvent, Title: "定例会議"}}

	resp, err := p.service.Transcribe(context.Background(), TranscribeRequest{Audio: []byte{1}})
	if err != nil {
		t.Fatalf("Expected pipeline to succeed, got %v", err)
	}

	if len(resp.StoredTasks) != 1 || resp.StoredTasks[0].Title != "資料を準備する" {
		t.Errorf("Expected auto-stored task, got %v", resp.StoredTasks)
	}
	if len(resp.StoredEvents) != 1 || resp.StoredEvents[0].Title != "定例会議" {
		t.Errorf("Expected auto-stored event, got %v", resp.StoredEvents)
	}
	if p.tasks.transcriptID == nil || *p.tasks.transcriptID != resp.Transcript.ID {
		t.Errorf("Expected stored tasks to reference the transcript, got %v", p.tasks.transcriptID)
	}
}

func TestTranscribeRespectsSaveFlags(t *testing.T) {
	tree := settings.SettingsTree{
		"transcription": map[string]any{
			"save_transcriptions": false,
			"save_recordings":     false,
		},
		"extraction": map[string]any{"apply_dictionary": false},
	}
	p := newPipeline(tree)

	resp, err := p.service.Transcribe(context.Background(), TranscribeRequest{Audio: []byte{1}})
	if err != nil {
		t.Fatalf("Expected pipeline to succeed, got %v", err)
	}

	if len(p.media.transcriptions) != 0 || len(p.media.recordings) != 0 {
		t.Error("Expected no files to be written with save flags off")
	}
	if p.dict.calls != 0 {
		t.Errorf("Expected dictionary to be skipped, got %d calls", p.dict.calls)
	}
	if resp.Transcript.TextFile != "" || resp.Transcript.AudioFile != nil {
		t.Error("Expected no file paths on the record")
	}
}

func TestDeleteTranscriptRemovesFiles(t *testing.T) {
	p := newPipeline(settings.SettingsTree{})
	ctx := context.Background()

	resp, err := p.service.Transcribe(ctx, TranscribeRequest{Audio: []byte{1}})
	if err != nil {
		t.Fatalf("Expected pipeline to succeed, got %v", err)
	}

	if err := p.service.DeleteTranscript(ctx, resp.Transcript.ID); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	if _, err := p.repo.GetByID(ctx, resp.Transcript.ID); !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("Expected record to be gone, got %v", err)
	}
	if len(p.media.removed) != 2 {
		t.Errorf("Expected both files to be removed, got %v", p.media.removed)
	}
}
