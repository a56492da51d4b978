package settings

import (
	"fmt"
	"os"
	"sync"

	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/internal/repository/fsjson"
)

// FileSettingsRepo persists the raw settings tree to
// settings/app_settings.json. Filling in defaults is the service's job; the
// file holds exactly what the user changed plus whatever was merged at the
// last save.
type FileSettingsRepo struct {
	mu   sync.Mutex
	path string
}

// Load implements settings.SettingsRepository
func (f *FileSettingsRepo) Load() (settings.SettingsTree, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tree := settings.SettingsTree{}
	if err := fsjson.Load(f.path, &tree); err != nil {
		if os.IsNotExist(err) {
			return settings.SettingsTree{}, nil
		}
		return nil, fmt.Errorf("failed to load settings store: %w", err)
	}
	return tree, nil
}

// Save implements settings.SettingsRepository
func (f *FileSettingsRepo) Save(tree settings.SettingsTree) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := fsjson.Save(f.path, tree); err != nil {
		return fmt.Errorf("failed to save settings store: %w", err)
	}
	return nil
}

// NewFileSettingsRepo creates a settings repository backed by a JSON document.
func NewFileSettingsRepo(path string) settings.SettingsRepository {
	return &FileSettingsRepo{path: path}
}
