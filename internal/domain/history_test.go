package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/skypaper/internal/domain"
)

func TestTrimHistory(t *testing.T) {
	entries := make([]domain.HistoryEntry, 0, 60)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		entries = append(entries, domain.HistoryEntry{
			Path:      fmt.Sprintf("/wallpapers/img_%02d.jpg", i),
			AppliedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	trimmed := domain.TrimHistory(entries, 50)
	if len(trimmed) != 50 {
		t.Fatalf("len = %d, want 50", len(trimmed))
	}
	if diff := cmp.Diff(entries[10:], trimmed); diff != "" {
		t.Fatalf("TrimHistory kept wrong entries (-want +got):\n%s", diff)
	}

	short := entries[:7]
	if diff := cmp.Diff(short, domain.TrimHistory(short, 50)); diff != "" {
		t.Fatalf("TrimHistory modified an under-cap sequence (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(entries, domain.TrimHistory(entries, 0)); diff != "" {
		t.Fatalf("TrimHistory with cap 0 modified entries (-want +got):\n%s", diff)
	}
}
