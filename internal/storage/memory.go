package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is a leaderboard that lives only as long as the process.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

var _ Leaderboard = (*Memory)(nil)

// NewMemory creates an empty in-memory leaderboard.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// Load returns a copy of the entries, highest score first.
func (m *Memory) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Save appends the score, re-sorts and keeps the best MaxEntries.
func (m *Memory) Save(name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{
		ID:        uuid.NewString(),
		Name:      NormalizeName(name),
		Score:     score,
		CreatedAt: m.now(),
	})
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].Score > m.entries[j].Score
	})
	if len(m.entries) > MaxEntries {
		m.entries = m.entries[:MaxEntries]
	}
	return nil
}
