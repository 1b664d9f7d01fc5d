package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sant0-9/promptcraft/internal/prompt"
)

// Store names on disk
const (
	PromptsStore = "promptcraft-prompts"
	NotionStore  = "notion-prompts"
)

var (
	// ErrDuplicateID is returned when saving a document whose id is already stored
	ErrDuplicateID = errors.New("document id already in library")
	ErrNotFound    = errors.New("document not found")
)

// Store is a named, file-backed list of documents kept newest first.
// The whole list is rewritten on every change.
type Store struct {
	mu     sync.Mutex
	name   string
	path   string
	docs   []prompt.Document
	logger *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for store operations
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads the store called name from dir. A missing file is an empty store.
func Open(dir, name string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("library dir is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("library name is required")
	}

	s := &Store{
		name:   name,
		path:   filepath.Join(dir, name+".json"),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	docs, err := load(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library %s: %w", name, err)
	}
	s.docs = docs
	s.logger.Debug("library opened", "store", name, "path", s.path, "documents", len(docs))
	return s, nil
}

// Name returns the store's name
func (s *Store) Name() string { return s.name }

// Path returns the file backing the store
func (s *Store) Path() string { return s.path }

// Save inserts doc at the front and persists the list
func (s *Store) Save(doc prompt.Document) error {
	doc = doc.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if d.ID == doc.ID {
			return fmt.Errorf("save %s: %w", doc.ID, ErrDuplicateID)
		}
	}

	next := make([]prompt.Document, 0, len(s.docs)+1)
	next = append(next, doc)
	next = append(next, s.docs...)

	if err := persist(s.path, next); err != nil {
		return fmt.Errorf("failed to save %s: %w", doc.ID, err)
	}
	s.docs = next
	s.logger.Info("document saved", "store", s.name, "id", doc.ID, "kind", doc.Kind, "name", doc.Name)
	return nil
}

// List returns a copy of all documents, newest first
func (s *Store) List() []prompt.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]prompt.Document(nil), s.docs...)
}

// Search returns documents whose name, genre or task contains term,
// ignoring case. An empty term matches everything.
func (s *Store) Search(term string) []prompt.Document {
	if term == "" {
		return s.List()
	}
	needle := strings.ToLower(term)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []prompt.Document
	for _, d := range s.docs {
		if matches(d, needle) {
			out = append(out, d)
		}
	}
	return out
}

func matches(d prompt.Document, needle string) bool {
	for _, field := range []string{d.Name, d.Genre, d.Task} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Get looks up a document by id
func (s *Store) Get(id string) (prompt.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return prompt.Document{}, false
}

// Len returns the number of stored documents
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Delete removes the document with id. Unknown ids are ignored.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, d := range s.docs {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]prompt.Document, 0, len(s.docs)-1)
	next = append(next, s.docs[:idx]...)
	next = append(next, s.docs[idx+1:]...)

	if err := persist(s.path, next); err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	s.docs = next
	s.logger.Info("document deleted", "store", s.name, "id", id)
	return nil
}

func load(path string) ([]prompt.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	var docs []prompt.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("corrupt library file %s: %w", path, err)
	}
	return docs, nil
}

func persist(path string, docs []prompt.Document) error {
	if docs == nil {
		docs = []prompt.Document{}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}
	return writeFileAtomic(path, data, 0o644)
}
