package library

import (
	"fmt"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

// Set is the pair of stores the application writes to. Notion content is
// kept apart from the other labs.
type Set struct {
	Prompts *Store
	Notion  *Store
}

// OpenSet opens both stores under dir
func OpenSet(dir string, opts ...Option) (*Set, error) {
	prompts, err := Open(dir, PromptsStore, opts...)
	if err != nil {
		return nil, err
	}
	notion, err := Open(dir, NotionStore, opts...)
	if err != nil {
		return nil, err
	}
	return &Set{Prompts: prompts, Notion: notion}, nil
}

// ForKind returns the store documents of kind are saved to
func (s *Set) ForKind(kind prompt.Kind) *Store {
	if kind == prompt.KindNotion {
		return s.Notion
	}
	return s.Prompts
}

// Named returns the store called name, or nil
func (s *Set) Named(name string) *Store {
	switch name {
	case s.Prompts.Name():
		return s.Prompts
	case s.Notion.Name():
		return s.Notion
	}
	return nil
}

// Save routes doc to the store of its payload's kind
func (s *Set) Save(doc prompt.Document) error {
	doc = doc.Normalize()
	return s.ForKind(doc.Kind).Save(doc)
}

// Find looks up id in both stores
func (s *Set) Find(id string) (prompt.Document, *Store, error) {
	for _, st := range []*Store{s.Prompts, s.Notion} {
		if doc, ok := st.Get(id); ok {
			return doc, st, nil
		}
	}
	return prompt.Document{}, nil, fmt.Errorf("%s: %w", id, ErrNotFound)
}
