// Package history persists the bounded log of applied wallpapers.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/pkg/filesystem"
	"github.com/doeshing/skypaper/internal/ports"
)

// FileStore keeps history as a single JSON array document. Single-writer,
// last-write-wins on the file.
type FileStore struct {
	path string
	cap  int
	mu   sync.Mutex
}

// NewFileStore creates a history store at path, defaulting to
// ~/.skypaper/history.json.
func NewFileStore(path string, cap int) *FileStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".skypaper", "history.json")
	}
	if cap <= 0 {
		cap = domain.DefaultHistoryCap
	}
	return &FileStore{path: filesystem.ExpandPath(path), cap: cap}
}

// Record implements ports.HistoryStore. It appends the entry and rewrites the
// document trimmed to the cap, dropping the oldest entries first.
func (f *FileStore) Record(entry domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	entries = domain.TrimHistory(append(entries, entry), f.cap)

	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create history dir: %v: %w", err, domain.ErrHistoryPersist)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %v: %w", err, domain.ErrHistoryPersist)
	}
	if err := os.WriteFile(f.path, data, domain.FilePermissions); err != nil {
		return fmt.Errorf("write history: %v: %w", err, domain.ErrHistoryPersist)
	}
	return nil
}

// Load implements ports.HistoryStore. A missing file is an empty history,
// not an error.
func (f *FileStore) Load() ([]domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %v: %w", err, domain.ErrHistoryPersist)
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse history: %v: %w", err, domain.ErrHistoryPersist)
	}
	return entries, nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove history: %v: %w", err, domain.ErrHistoryPersist)
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

var _ ports.HistoryStore = (*FileStore)(nil)
