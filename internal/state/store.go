package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoDocument is returned by a store when nothing has been saved yet.
var ErrNoDocument = errors.New("no state document")

// Store abstracts where the serialized state document lives. The engine owns
// exactly one document; substituting the in-memory store makes persistence
// deterministic in tests.
type Store interface {
	// Read returns the raw document bytes, or ErrNoDocument.
	Read() ([]byte, error)
	// Write replaces the document atomically.
	Write(data []byte) error
}

// FileStore persists the document at a fixed path. Writes go to a temporary
// file first and are renamed over the target, so a crash mid-write never
// corrupts the previously saved document.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the document bytes.
func (s *FileStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

// Write replaces the document via temp-file-then-rename.
func (s *FileStore) Write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// MemoryStore keeps the document in memory for tests.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	// FailWrites forces Write to error, for exercising the
	// availability-over-durability path.
	FailWrites bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed pre-populates the store with a document.
func (s *MemoryStore) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}

// Read returns the stored bytes.
func (s *MemoryStore) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNoDocument
	}
	return append([]byte(nil), s.data...), nil
}

// Write replaces the stored bytes.
func (s *MemoryStore) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errors.New("memory store: writes disabled")
	}
	s.data = append([]byte(nil), data...)
	return nil
}
