package dictionary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hukuitappei/voicetask/pkg/Logger"
)

var (
	ErrTermNotFound = errors.New("dictionary term not found")
)

// DictionaryService defines the interface for dictionary business logic
type DictionaryService interface {
	GetDictionary(ctx context.Context) (*DictionaryResponse, error)
	AddTerm(ctx context.Context, req AddTermRequest) (*TermResponse, error)
	GetTerm(ctx context.Context, category, term string) (*TermResponse, error)
	RemoveTerm(ctx context.Context, category, term string) error

	// ApplyCorrections rewrites known terms in the text to their
	// definitions and reports how many replacements ran.
	ApplyCorrections(ctx context.Context, text string) (*CorrectionResponse, error)
}

type dictionaryService struct {
	repository DictionaryRepository
	logger     *Logger.Logger
}

// load falls back to the seeded dictionary so a corrupt or missing
// file never takes the feature down.
func (s *dictionaryService) load() *Dictionary {
	dict, err := s.repository.Load()
	if err != nil {
		s.logger.Warnf("error loading dictionary, falling back to defaults: %v", err)
		return NewDictionary()
	}
	return dict
}

// GetDictionary implements DictionaryService
func (s *dictionaryService) GetDictionary(ctx context.Context) (*DictionaryResponse, error) {
	dict := s.load()
	return &DictionaryResponse{
		Categories:   dict.Categories,
		TotalEntries: dict.TotalEntries(),
	}, nil
}

// AddTerm implements DictionaryService
func (s *dictionaryService) AddTerm(ctx context.Context, req AddTermRequest) (*TermResponse, error) {
	dict := s.load()

	entry := Entry{
		Definition:    req.Definition,
		Pronunciation: req.Pronunciation,
		AddedAt:       time.Now(),
	}
	dict.AddTerm(req.Category, req.Term, entry)

	if err := s.repository.Save(dict); err != nil {
		s.logger.Errorf("error saving dictionary: %v", err)
		return nil, fmt.Errorf("failed to save dictionary: %w", err)
	}

	s.logger.Infof("dictionary term added: %s/%s", req.Category, req.Term)
	return &TermResponse{
		Category:      req.Category,
		Term:          req.Term,
		Definition:    entry.Definition,
		Pronunciation: entry.Pronunciation,
		AddedAt:       entry.AddedAt,
	}, nil
}

// GetTerm implements DictionaryService
func (s *dictionaryService) GetTerm(ctx context.Context, category, term string) (*TermResponse, error) {
	dict := s.load()

	entry, ok := dict.GetTerm(category, term)
	if !ok {
		return nil, ErrTermNotFound
	}
	return &TermResponse{
		Category:      category,
		Term:          term,
		Definition:    entry.Definition,
		Pronunciation: entry.Pronunciation,
		AddedAt:       entry.AddedAt,
	}, nil
}

// RemoveTerm implements DictionaryService
func (s *dictionaryService) RemoveTerm(ctx context.Context, category, term string) error {
	dict := s.load()

	if !dict.RemoveTerm(category, term) {
		return ErrTermNotFound
	}

	if err := s.repository.Save(dict); err != nil {
		s.logger.Errorf("error saving dictionary: %v", err)
		return fmt.Errorf("failed to save dictionary: %w", err)
	}

	s.logger.Infof("dictionary term removed: %s/%s", category, term)
	return nil
}

// ApplyCorrections implements DictionaryService
func (s *dictionaryService) ApplyCorrections(ctx context.Context, text string) (*CorrectionResponse, error) {
	dict := s.load()

	corrected, applied := dict.ApplyCorrections(text)
	if applied > 0 {
		s.logger.Infof("applied %d dictionary corrections", applied)
	}
	return &CorrectionResponse{Text: corrected, Applied: applied}, nil
}

// NewDictionaryService creates a new instance of DictionaryService
func NewDictionaryService(repository DictionaryRepository, logger *Logger.Logger) DictionaryService {
	return &dictionaryService{
		repository: repository,
		logger:     logger,
	}
}
