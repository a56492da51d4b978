package transcript

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/transcript"
	"github.com/hukuitappei/voicetask/internal/repository/fsjson"
)

type transcriptRecord struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Language    string    `json:"language,omitempty"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model,omitempty"`
	Corrections int       `json:"corrections"`
	TextFile    string    `json:"text_file,omitempty"`
	AudioFile   *string   `json:"audio_file,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type transcriptDocument struct {
	Transcripts map[string]transcriptRecord `json:"transcripts"`
}

// FileTranscriptRepo keeps the transcript index in a single JSON document.
// The rendered text and audio live as plain files next to it; the index only
// records where they went.
type FileTranscriptRepo struct {
	mu   sync.Mutex
	path string
}

func (r *FileTranscriptRepo) load() (*transcriptDocument, error) {
	doc := &transcriptDocument{}
	if err := fsjson.Load(r.path, doc); err != nil {
		if os.IsNotExist(err) {
			return &transcriptDocument{Transcripts: map[string]transcriptRecord{}}, nil
		}
		return nil, err
	}
	if doc.Transcripts == nil {
		doc.Transcripts = map[string]transcriptRecord{}
	}
	return doc, nil
}

func transcriptRecordFromDomain(t *transcript.Transcript) transcriptRecord {
	return transcriptRecord{
		ID:          t.ID.String(),
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

func (r transcriptRecord) toDomain() (*transcript.Transcript, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid transcript id %q: %w", r.ID, err)
	}
	return &transcript.Transcript{
		ID:          id,
		Text:        r.Text,
		Language:    r.Language,
		Provider:    r.Provider,
		Model:       r.Model,
		Corrections: r.Corrections,
		TextFile:    r.TextFile,
		AudioFile:   r.AudioFile,
		CreatedAt:   r.CreatedAt,
	}, nil
}

// Create implements transcript.TranscriptRepository
func (r *FileTranscriptRepo) Create(ctx context.Context, t *transcript.Transcript) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	doc.Transcripts[t.ID.String()] = transcriptRecordFromDomain(t)
	return fsjson.Save(r.path, doc)
}

// GetByID implements transcript.TranscriptRepository
func (r *FileTranscriptRepo) GetByID(ctx context.Context, id uuid.UUID) (*transcript.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	rec, ok := doc.Transcripts[id.String()]
	if !ok {
		return nil, transcript.ErrTranscriptNotFound
	}
	return rec.toDomain()
}

// List implements transcript.TranscriptRepository
func (r *FileTranscriptRepo) List(ctx context.Context, req transcript.ListTranscriptsRequest) ([]*transcript.Transcript, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	items := make([]*transcript.Transcript, 0, len(doc.Transcripts))
	for _, rec := range doc.Transcripts {
		t, err := rec.toDomain()
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	total := int64(len(items))

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil, total, nil
	}
	items = items[offset:]
	if req.Limit > 0 && req.Limit < len(items) {
		items = items[:req.Limit]
	}
	return items, total, nil
}

// Delete implements transcript.TranscriptRepository
func (r *FileTranscriptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Transcripts[id.String()]; !ok {
		return transcript.ErrTranscriptNotFound
	}
	delete(doc.Transcripts, id.String())
	return fsjson.Save(r.path, doc)
}

// NewFileTranscriptRepo creates a transcript index backed by the given JSON file.
func NewFileTranscriptRepo(path string) transcript.TranscriptRepository {
	return &FileTranscriptRepo{path: path}
}
