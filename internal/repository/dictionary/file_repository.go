package dictionary

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hukuitappei/voicetask/internal/domains/dictionary"
	"github.com/hukuitappei/voicetask/internal/repository/fsjson"
)

// metadata carries the bookkeeping block of settings/user_dictionary.json.
// total_entries is recomputed on every save rather than incremented, so a
// failed write can never make the counter drift.
type metadata struct {
	CreatedAt    time.Time `json:"created_at"`
	LastUpdated  time.Time `json:"last_updated"`
	TotalEntries int       `json:"total_entries"`
}

type dictionaryDocument struct {
	Categories map[string]dictionary.Category `json:"categories"`
	Metadata   metadata                       `json:"metadata"`
}

// FileDictionaryRepo persists the correction dictionary as one JSON document.
type FileDictionaryRepo struct {
	mu        sync.Mutex
	path      string
	createdAt time.Time
}

// Load implements dictionary.DictionaryRepository
func (f *FileDictionaryRepo) Load() (*dictionary.Dictionary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc := &dictionaryDocument{}
	if err := fsjson.Load(f.path, doc); err != nil {
		if os.IsNotExist(err) {
			seeded := dictionary.NewDictionary()
			if err := f.write(seeded); err != nil {
				return nil, fmt.Errorf("failed to seed dictionary store: %w", err)
			}
			return seeded, nil
		}
		return nil, fmt.Errorf("failed to load dictionary store: %w", err)
	}

	if !doc.Metadata.CreatedAt.IsZero() {
		f.createdAt = doc.Metadata.CreatedAt
	}
	if doc.Categories == nil {
		doc.Categories = make(map[string]dictionary.Category)
	}
	return &dictionary.Dictionary{Categories: doc.Categories}, nil
}

// Save implements dictionary.DictionaryRepository
func (f *FileDictionaryRepo) Save(d *dictionary.Dictionary) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.write(d); err != nil {
		return fmt.Errorf("failed to save dictionary store: %w", err)
	}
	return nil
}

func (f *FileDictionaryRepo) write(d *dictionary.Dictionary) error {
	now := time.Now()
	if f.createdAt.IsZero() {
		f.createdAt = now
	}

	doc := &dictionaryDocument{
		Categories: d.Categories,
		Metadata: metadata{
			CreatedAt:    f.createdAt,
			LastUpdated:  now,
			TotalEntries: d.TotalEntries(),
		},
	}
	return fsjson.Save(f.path, doc)
}

// NewFileDictionaryRepo creates a dictionary repository backed by a JSON
// document.
func NewFileDictionaryRepo(path string) dictionary.DictionaryRepository {
	return &FileDictionaryRepo{path: path}
}
