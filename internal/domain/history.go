package domain

import "time"

// HistoryEntry records one applied wallpaper.
type HistoryEntry struct {
	Path      string    `json:"path"`
	AppliedAt time.Time `json:"applied_at"`
}

// TrimHistory enforces the bounded-log invariant: the result is at most cap
// entries, keeping the newest and preserving insertion order. A cap <= 0
// leaves the slice untouched.
func TrimHistory(entries []HistoryEntry, cap int) []HistoryEntry {
	if cap <= 0 || len(entries) <= cap {
		return entries
	}
	return entries[len(entries)-cap:]
}
