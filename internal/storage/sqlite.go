package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store is the SQLite-backed leaderboard. It is safe for concurrent use;
// SSH sessions share one Store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ Leaderboard = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// created_at holds Unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leaderboard (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_score ON leaderboard(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save inserts the score and trims the table back to MaxEntries rows in one
// transaction.
func (s *Store) Save(name string, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.Exec(
		"INSERT INTO leaderboard (id, name, score, created_at) VALUES (?, ?, ?, ?)",
		uuid.NewString(), NormalizeName(name), score, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	// rowid breaks ties in insertion order, so the newest of equal scores
	// is the one dropped.
	_, err = tx.Exec(
		`DELETE FROM leaderboard WHERE id NOT IN (
			SELECT id FROM leaderboard ORDER BY score DESC, rowid ASC LIMIT ?
		)`,
		MaxEntries,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot trim leaderboard: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return nil
}

// Load returns the leaderboard, highest score first.
func (s *Store) Load() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, score, created_at
		 FROM leaderboard
		 ORDER BY score DESC, rowid ASC
		 LIMIT ?`,
		MaxEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Summary is aggregated information about the stored scores.
type Summary struct {
	Entries    int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Summary returns aggregate statistics over the leaderboard.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	var last sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM leaderboard`,
	).Scan(&sum.Entries, &sum.HighScore, &sum.AvgScore, &last)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize scores: %w", err)
	}
	if last.Valid {
		sum.LastPlayed = time.UnixMilli(last.Int64)
	}
	return sum, nil
}

// Clear deletes every leaderboard entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
