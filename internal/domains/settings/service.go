package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// Common errors
var (
	ErrValueNotFound  = errors.New("settings value not found")
	ErrEmptyPath      = errors.New("settings path must not be empty")
	ErrInvalidPayload = errors.New("invalid settings payload")
)

// SettingsService defines the interface for settings document business logic
type SettingsService interface {
	// GetSettings returns the effective document: saved values merged over
	// factory defaults. A missing or unreadable file degrades to defaults.
	GetSettings(ctx context.Context) SettingsTree

	// UpdateSettings merges the patch over the effective document and saves.
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsTree, error)

	// Value access by dotted path
	GetValue(ctx context.Context, path string) (any, error)
	UpdateValue(ctx context.Context, req UpdateValueRequest) (SettingsTree, error)

	// Reset discards the saved document and restores factory defaults.
	Reset(ctx context.Context) (SettingsTree, error)
}

type settingsService struct {
	repository SettingsRepository
	logger     *Logger.Logger
}

// GetSettings implements SettingsService
func (s *settingsService) GetSettings(ctx context.Context) SettingsTree {
	loaded, err := s.repository.Load()
	if err != nil {
		s.logger.Warnf("error loading saved settings, using defaults: %v", err)
		loaded = SettingsTree{}
	}
	return Merge(DefaultTree(), loaded)
}

// UpdateSettings implements SettingsService
func (s *settingsService) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsTree, error) {
	if req.Settings == nil {
		return nil, ErrInvalidPayload
	}

	merged := Merge(s.GetSettings(ctx), SettingsTree(req.Settings))
	if err := s.repository.Save(merged); err != nil {
		s.logger.Errorf("error saving settings: %v", err)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Infof("settings updated: %d top-level keys", len(req.Settings))
	return merged, nil
}

// GetValue implements SettingsService
func (s *settingsService) GetValue(ctx context.Context, path string) (any, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	v, ok := s.GetSettings(ctx).Get(path)
	if !ok {
		return nil, ErrValueNotFound
	}
	return v, nil
}

// UpdateValue implements SettingsService
func (s *settingsService) UpdateValue(ctx context.Context, req UpdateValueRequest) (SettingsTree, error) {
	if req.Path == "" {
		return nil, ErrEmptyPath
	}

	tree := s.GetSettings(ctx).Clone()
	tree.Set(req.Path, req.Value)

	if err := s.repository.Save(tree); err != nil {
		s.logger.Errorf("error saving settings value %s: %v", req.Path, err)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Infof("settings value updated: %s", req.Path)
	return tree, nil
}

// Reset implements SettingsService
func (s *settingsService) Reset(ctx context.Context) (SettingsTree, error) {
	defaults := DefaultTree()
	if err := s.repository.Save(defaults); err != nil {
		s.logger.Errorf("error resetting settings: %v", err)
		return nil, fmt.Errorf("failed to reset settings: %w", err)
	}

	s.logger.Infof("settings reset to defaults")
	return defaults, nil
}

// NewSettingsService creates a new settings service
func NewSettingsService(repository SettingsRepository, logger *Logger.Logger) SettingsService {
	return &settingsService{
		repository: repository,
		logger:     logger,
	}
}
