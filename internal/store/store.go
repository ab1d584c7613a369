// Package store holds the four entity collections in memory for the lifetime
// of the process and persists them as a single JSON document. Every mutating
// service call triggers a full-document rewrite; the store is not designed
// for high write volume or concurrent writers.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teamdash/teamdash/internal/domain"
)

const fileName = "store.json"

// Document is the persisted shape: one JSON object with four named arrays.
type Document struct {
	Teams    []*domain.Team    `json:"teams"`
	Users    []*domain.User    `json:"users"`
	Tasks    []*domain.Task    `json:"tasks"`
	Comments []*domain.Comment `json:"comments"`
}

func emptyDocument() *Document {
	return &Document{
		Teams:    []*domain.Team{},
		Users:    []*domain.User{},
		Tasks:    []*domain.Task{},
		Comments: []*domain.Comment{},
	}
}

// Store is an injected handle over the document; callers receive it from the
// composition root instead of reaching into shared global state.
type Store struct {
	path string // empty means memory-only, persistence disabled
	doc  *Document
}

// Open creates the data directory if needed and loads the document. A missing
// file means empty collections. A corrupt or schema-invalid document falls
// back to an empty store rather than failing the process.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dataDir, err)
	}

	s := &Store{
		path: filepath.Join(dataDir, fileName),
		doc:  emptyDocument(),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	if doc, ok := decodeDocument(data); ok {
		s.doc = doc
	}
	return s, nil
}

// MustOpen is Open for the composition root, where a store failure means the
// process cannot start at all.
func MustOpen(dataDir string) *Store {
	s, err := Open(dataDir)
	if err != nil {
		panic(fmt.Sprintf("failed to open store: %v", err))
	}
	return s
}

// NewMemory returns a store with persistence disabled, for tests.
func NewMemory() *Store {
	return &Store{doc: emptyDocument()}
}

// Doc exposes the in-memory collections. Callers mutate them directly and
// then call Save; the execution model is single-threaded per request.
func (s *Store) Doc() *Document {
	return s.doc
}

// Save rewrites the entire document. A memory-only store saves nothing.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Reset clears all collections and persists the empty document. Used for
// test isolation.
func (s *Store) Reset() error {
	s.doc = emptyDocument()
	return s.Save()
}

// MemoryOnly clears all collections and disables persistence for the
// remainder of the process.
func (s *Store) MemoryOnly() {
	s.doc = emptyDocument()
	s.path = ""
}
