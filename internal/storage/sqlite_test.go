package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// boards returns one fresh instance of every Leaderboard implementation.
func boards(t *testing.T) map[string]Leaderboard {
	return map[string]Leaderboard{
		"sqlite": openTestStore(t),
		"memory": NewMemory(),
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Save("ada", 300); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "ADA" || entries[0].Score != 300 {
		t.Errorf("Load() = %+v, expected the saved score", entries)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	for name, lb := range boards(t) {
		t.Run(name, func(t *testing.T) {
			for _, s := range []struct {
				name  string
				score int
			}{{"bob", 100}, {"amy", 50}, {"cy", 200}} {
				if err := lb.Save(s.name, s.score); err != nil {
					t.Fatalf("Save() failed: %v", err)
				}
			}

			entries, err := lb.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(entries) != 3 {
				t.Fatalf("Expected 3 entries, got %d", len(entries))
			}
			expected := []string{"CY", "BOB", "AMY"}
			for i, e := range entries {
				if e.Name != expected[i] {
					t.Errorf("entries[%d].Name = %q, expected %q", i, e.Name, expected[i])
				}
				if e.ID == "" {
					t.Errorf("entries[%d] has no ID", i)
				}
				if e.CreatedAt.IsZero() {
					t.Errorf("entries[%d] has no timestamp", i)
				}
			}
		})
	}
}

func TestLeaderboardTruncatesToTop20(t *testing.T) {
	for name, lb := range boards(t) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= MaxEntries+5; i++ {
				if err := lb.Save("p", i*10); err != nil {
					t.Fatalf("Save() failed: %v", err)
				}
			}

			entries, err := lb.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(entries) != MaxEntries {
				t.Fatalf("Load() returned %d entries, expected %d", len(entries), MaxEntries)
			}
			if entries[0].Score != (MaxEntries+5)*10 {
				t.Errorf("top score = %d", entries[0].Score)
			}
			if last := entries[MaxEntries-1].Score; last != 60 {
				t.Errorf("lowest kept score = %d, expected 60", last)
			}
		})
	}
}

func TestLeaderboardLowScoreDropped(t *testing.T) {
	for name, lb := range boards(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < MaxEntries; i++ {
				if err := lb.Save("high", 1000); err != nil {
					t.Fatalf("Save() failed: %v", err)
				}
			}
			if err := lb.Save("low", 1); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			// A tie with the full board loses to the older entries.
			if err := lb.Save("late", 1000); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}

			entries, _ := lb.Load()
			for _, e := range entries {
				if e.Name == "LOW" || e.Name == "LATE" {
					t.Errorf("%s should not be on a full board of higher or equal scores", e.Name)
				}
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"ada", "ADA"},
		{"  Grace ", "GRACE"},
		{"", AnonymousName},
		{"   ", AnonymousName},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.expected {
			t.Errorf("NormalizeName(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestBest(t *testing.T) {
	lb := NewMemory()
	if got := Best(lb); got != 0 {
		t.Errorf("Best(empty) = %d, expected 0", got)
	}
	lb.Save("a", 70)
	lb.Save("b", 90)
	if got := Best(lb); got != 90 {
		t.Errorf("Best() = %d, expected 90", got)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Entries != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("empty Summary() = %+v", sum)
	}

	store.Save("a", 100)
	store.Save("b", 300)

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Entries != 2 || sum.HighScore != 300 || sum.AvgScore != 200 {
		t.Errorf("Summary() = %+v", sum)
	}
	if !sum.LastPlayed.Equal(fixed) {
		t.Errorf("LastPlayed = %v, expected %v", sum.LastPlayed, fixed)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	store.Save("a", 1)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	entries, _ := store.Load()
	if len(entries) != 0 {
		t.Errorf("Load() after Clear() = %v", entries)
	}
}
