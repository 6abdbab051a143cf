package history_test

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/infrastructure/history"
	"github.com/doeshing/skypaper/internal/ports"
)

func entry(i int) domain.HistoryEntry {
	return domain.HistoryEntry{
		Path:      fmt.Sprintf("/wallpapers/img_%03d.jpg", i),
		AppliedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
	}
}

// Both backends must satisfy the same bounded-log contract.
func stores(t *testing.T, cap int) map[string]ports.HistoryStore {
	t.Helper()
	sqlite, err := history.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"), cap)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]ports.HistoryStore{
		"file":   history.NewFileStore(filepath.Join(t.TempDir(), "history.json"), cap),
		"sqlite": sqlite,
	}
}

func TestHistoryStore_LoadEmptyIsNotAnError(t *testing.T) {
	for name, store := range stores(t, 50) {
		t.Run(name, func(t *testing.T) {
			entries, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(entries) != 0 {
				t.Fatalf("Load() = %v, want empty", entries)
			}
		})
	}
}

func TestHistoryStore_PreservesInsertionOrder(t *testing.T) {
	for name, store := range stores(t, 50) {
		t.Run(name, func(t *testing.T) {
			var want []domain.HistoryEntry
			for i := 0; i < 10; i++ {
				e := entry(i)
				if err := store.Record(e); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
				want = append(want, e)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHistoryStore_CapsAtNewestEntries(t *testing.T) {
	const cap = 50
	for name, store := range stores(t, cap) {
		t.Run(name, func(t *testing.T) {
			var all []domain.HistoryEntry
			for i := 0; i < cap+13; i++ {
				e := entry(i)
				if err := store.Record(e); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
				all = append(all, e)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(got) != cap {
				t.Fatalf("len = %d, want %d", len(got), cap)
			}
			if diff := cmp.Diff(all[len(all)-cap:], got); diff != "" {
				t.Fatalf("kept wrong entries (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHistoryStore_Clear(t *testing.T) {
	for name, store := range stores(t, 50) {
		t.Run(name, func(t *testing.T) {
			if err := store.Record(entry(1)); err != nil {
				t.Fatalf("Record() error = %v", err)
			}
			if err := store.Clear(); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			entries, err := store.Load()
			if err != nil {
				t.Fatalf("Load() after Clear() error = %v", err)
			}
			if len(entries) != 0 {
				t.Fatalf("Load() after Clear() = %v, want empty", entries)
			}
			// Clearing twice is safe.
			if err := store.Clear(); err != nil {
				t.Fatalf("second Clear() error = %v", err)
			}
		})
	}
}

func TestFileStore_DocumentIsAJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := history.NewFileStore(path, 50)
	if err := store.Record(entry(0)); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read history file: %v", err)
	}
	if len(data) == 0 || data[0] != '[' {
		t.Fatalf("history document does not start with '[': %q", data[:min(len(data), 20)])
	}
}

func TestExportJSONL(t *testing.T) {
	store := history.NewFileStore(filepath.Join(t.TempDir(), "history.json"), 50)
	for i := 0; i < 3; i++ {
		if err := store.Record(entry(i)); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	dest := filepath.Join(t.TempDir(), "export.jsonl")
	if err := history.ExportJSONL(store, dest); err != nil {
		t.Fatalf("ExportJSONL() error = %v", err)
	}

	file, err := os.Open(dest)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines++
	}
	if lines != 3 {
		t.Fatalf("export has %d lines, want 3", lines)
	}
}
