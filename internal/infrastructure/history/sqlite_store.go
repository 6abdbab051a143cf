package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/pkg/filesystem"
	"github.com/doeshing/skypaper/internal/ports"
)

// SQLiteStore persists history in a SQLite database. Selected by
// history.backend: sqlite in the config.
type SQLiteStore struct {
	db   *sql.DB
	path string
	cap  int
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path, defaulting to
// ~/.skypaper/history.db.
func NewSQLiteStore(path string, cap int) (*SQLiteStore, error) {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".skypaper", "history.db")
	}
	if cap <= 0 {
		cap = domain.DefaultHistoryCap
	}
	path = filesystem.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, fmt.Errorf("create history dir: %v: %w", err, domain.ErrHistoryPersist)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %v: %w", err, domain.ErrHistoryPersist)
	}
	store := &SQLiteStore{db: db, path: path, cap: cap}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS wallpapers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		applied_at TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("init history schema: %v: %w", err, domain.ErrHistoryPersist)
	}
	return nil
}

// Record inserts a new entry and deletes rows beyond the newest cap.
func (s *SQLiteStore) Record(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO wallpapers (path, applied_at) VALUES (?, ?)`,
		entry.Path, entry.AppliedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert history row: %v: %w", err, domain.ErrHistoryPersist)
	}
	_, err = s.db.Exec(`DELETE FROM wallpapers WHERE id NOT IN (
		SELECT id FROM wallpapers ORDER BY id DESC LIMIT ?
	)`, s.cap)
	if err != nil {
		return fmt.Errorf("trim history: %v: %w", err, domain.ErrHistoryPersist)
	}
	return nil
}

// Load returns entries oldest-to-newest.
func (s *SQLiteStore) Load() ([]domain.HistoryEntry, error) {
	rows, err := s.db.Query(`SELECT path, applied_at FROM wallpapers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query history: %v: %w", err, domain.ErrHistoryPersist)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var ts string
		if err := rows.Scan(&entry.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan history row: %v: %w", err, domain.ErrHistoryPersist)
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.AppliedAt = t
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %v: %w", err, domain.ErrHistoryPersist)
	}
	return entries, nil
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM wallpapers`); err != nil {
		return fmt.Errorf("clear history: %v: %w", err, domain.ErrHistoryPersist)
	}
	return nil
}

// Path returns the database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
