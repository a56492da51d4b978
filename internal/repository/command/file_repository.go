package command

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hukuitappei/voicetask/internal/domains/command"
	"github.com/hukuitappei/voicetask/internal/repository/fsjson"
)

type metadata struct {
	CreatedAt     time.Time `json:"created_at"`
	LastUpdated   time.Time `json:"last_updated"`
	TotalCommands int       `json:"total_commands"`
}

type commandDocument struct {
	Commands map[string]command.Command `json:"commands"`
	Metadata metadata                   `json:"metadata"`
}

// FileCommandRepo persists the command set as one JSON document.
type FileCommandRepo struct {
	mu        sync.Mutex
	path      string
	createdAt time.Time
}

// Load implements command.CommandRepository
func (f *FileCommandRepo) Load() (*command.CommandSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc := &commandDocument{}
	if err := fsjson.Load(f.path, doc); err != nil {
		if os.IsNotExist(err) {
			seeded := command.NewCommandSet()
			if err := f.write(seeded); err != nil {
				return nil, fmt.Errorf("failed to seed command store: %w", err)
			}
			return seeded, nil
		}
		return nil, fmt.Errorf("failed to load command store: %w", err)
	}

	if !doc.Metadata.CreatedAt.IsZero() {
		f.createdAt = doc.Metadata.CreatedAt
	}
	if doc.Commands == nil {
		doc.Commands = make(map[string]command.Command)
	}
	return &command.CommandSet{Commands: doc.Commands}, nil
}

// Save implements command.CommandRepository
func (f *FileCommandRepo) Save(set *command.CommandSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.write(set); err != nil {
		return fmt.Errorf("failed to save command store: %w", err)
	}
	return nil
}

func (f *FileCommandRepo) write(set *command.CommandSet) error {
	now := time.Now()
	if f.createdAt.IsZero() {
		f.createdAt = now
	}

	doc := &commandDocument{
		Commands: set.Commands,
		Metadata: metadata{
			CreatedAt:     f.createdAt,
			LastUpdated:   now,
			TotalCommands: len(set.Commands),
		},
	}
	return fsjson.Save(f.path, doc)
}

// NewFileCommandRepo creates a command repository backed by a JSON document.
func NewFileCommandRepo(path string) command.CommandRepository {
	return &FileCommandRepo{path: path}
}
