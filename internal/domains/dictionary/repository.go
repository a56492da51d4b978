package dictionary

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Entry is one dictionary term: the definition is the canonical form a
// matched term is rewritten to.
type Entry struct {
	Definition    string    `json:"definition"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// Category groups entries under a description.
type Category struct {
	Description string           `json:"description"`
	Entries     map[string]Entry `json:"entries"`
}

// Dictionary is the full correction dictionary document.
type Dictionary struct {
	Categories map[string]Category `json:"categories"`
}

// NewDictionary builds a dictionary seeded with the built-in categories.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Categories: map[string]Category{
			"技術用語": {Description: "技術関連の用語", Entries: map[string]Entry{}},
			"略語":   {Description: "略語とその意味", Entries: map[string]Entry{}},
			"カスタム": {Description: "ユーザー定義の用語", Entries: map[string]Entry{}},
		},
	}
}

// AddTerm stores a term under the category, creating the category on
// first use.
func (d *Dictionary) AddTerm(category, term string, entry Entry) {
	if d.Categories == nil {
		d.Categories = make(map[string]Category)
	}

	cat, ok := d.Categories[category]
	if !ok {
		cat = Category{
			Description: fmt.Sprintf("%sの用語", category),
			Entries:     map[string]Entry{},
		}
	}
	if cat.Entries == nil {
		cat.Entries = map[string]Entry{}
	}

	cat.Entries[term] = entry
	d.Categories[category] = cat
}

// GetTerm looks a term up inside one category.
func (d *Dictionary) GetTerm(category, term string) (Entry, bool) {
	cat, ok := d.Categories[category]
	if !ok {
		return Entry{}, false
	}
	entry, ok := cat.Entries[term]
	return entry, ok
}

// RemoveTerm deletes a term from a category, reporting whether it was
// present.
func (d *Dictionary) RemoveTerm(category, term string) bool {
	cat, ok := d.Categories[category]
	if !ok {
		return false
	}
	if _, ok := cat.Entries[term]; !ok {
		return false
	}
	delete(cat.Entries, term)
	return true
}

// TotalEntries counts terms across every category.
func (d *Dictionary) TotalEntries() int {
	total := 0
	for _, cat := range d.Categories {
		total += len(cat.Entries)
	}
	return total
}

type correctionPair struct {
	term       string
	definition string
}

// ApplyCorrections rewrites every dictionary term found in the text to
// its definition. Longer terms run first so that a term embedded in a
// longer one never clobbers it.
func (d *Dictionary) ApplyCorrections(text string) (string, int) {
	var pairs []correctionPair
	for _, cat := range d.Categories {
		for term, entry := range cat.Entries {
			if term == "" || entry.Definition == "" {
				continue
			}
			pairs = append(pairs, correctionPair{term: term, definition: entry.Definition})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(pairs[i].term), utf8.RuneCountInString(pairs[j].term)
		if li != lj {
			return li > lj
		}
		return pairs[i].term < pairs[j].term
	})

	applied := 0
	for _, pair := range pairs {
		if count := strings.Count(text, pair.term); count > 0 {
			text = strings.ReplaceAll(text, pair.term, pair.definition)
			applied += count
		}
	}
	return text, applied
}

// AddTermRequest represents the request to add a dictionary term
type AddTermRequest struct {
	Category      string `json:"category" binding:"required,min=1,max=100"`
	Term          string `json:"term" binding:"required,min=1,max=100"`
	Definition    string `json:"definition" binding:"required,min=1,max=500"`
	Pronunciation string `json:"pronunciation" binding:"max=200"`
}

// TermResponse represents one stored term
type TermResponse struct {
	Category      string    `json:"category"`
	Term          string    `json:"term"`
	Definition    string    `json:"definition"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// DictionaryResponse represents the whole dictionary
type DictionaryResponse struct {
	Categories   map[string]Category `json:"categories"`
	TotalEntries int                 `json:"total_entries"`
}

// CorrectionResponse reports a correction run over a piece of text.
type CorrectionResponse struct {
	Text    string `json:"text"`
	Applied int    `json:"applied"`
}

// DictionaryRepository defines the interface for dictionary persistence
type DictionaryRepository interface {
	Load() (*Dictionary, error)
	Save(*Dictionary) error
}
