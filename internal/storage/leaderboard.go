// Package storage keeps the leaderboard: the best scores with player names.
// Store persists to SQLite through the pure-Go modernc.org/sqlite driver;
// Memory is a process-local fallback when no database is available.
package storage

import (
	"strings"
	"time"
)

// MaxEntries is the leaderboard length. Lower scores are dropped on save.
const MaxEntries = 20

// AnonymousName replaces blank names on save.
const AnonymousName = "ANON"

// Entry is one leaderboard row.
type Entry struct {
	ID        string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Leaderboard loads and records scores.
type Leaderboard interface {
	// Load returns at most MaxEntries entries, highest score first. Equal
	// scores keep the order they were saved in.
	Load() ([]Entry, error)
	// Save records a score. The name is trimmed and upper-cased.
	Save(name string, score int) error
}

// NormalizeName returns the name as it is stored.
func NormalizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return AnonymousName
	}
	return name
}

// Best returns the top score of a board, or 0 when it is empty or
// unreadable.
func Best(lb Leaderboard) int {
	entries, err := lb.Load()
	if err != nil || len(entries) == 0 {
		return 0
	}
	return entries[0].Score
}
