// Package storage provides SQLite-based persistence for highscores, settings
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Pablify/Snake/internal/config"
	"github.com/Pablify/Snake/internal/game"
)

const settingMuted = "muted"

// Store manages the SQLite database connection. It implements
// game.Persistence for the highscore and mute state.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run in the history table.
type RunEntry struct {
	ID        int64
	Mode      config.Mode
	Wrap      bool
	Score     int
	Reason    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			mode TEXT NOT NULL,
			wrap INTEGER NOT NULL,
			best INTEGER NOT NULL,
			PRIMARY KEY (mode, wrap)
		);

		CREATE TABLE IF NOT EXISTS settings (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			wrap INTEGER NOT NULL,
			score INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_key ON runs(mode, wrap, score DESC);
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

// Load reads the persisted mute setting and all highscore records.
func (s *Store) Load() (game.SaveData, error) {
	data := game.SaveData{Records: make(map[game.RecordKey]int)}

	var muted string
	err := s.db.QueryRow("SELECT value FROM settings WHERE name = ?", settingMuted).Scan(&muted)
	switch {
	case err == sql.ErrNoRows:
		// First launch, sound defaults to on.
	case err != nil:
		return data, fmt.Errorf("storage: cannot read settings: %w", err)
	default:
		data.Muted = muted == "1"
	}

	rows, err := s.db.Query("SELECT mode, wrap, best FROM highscores")
	if err != nil {
		return data, fmt.Errorf("storage: cannot query highscores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mode string
		var wrap bool
		var best int
		if err := rows.Scan(&mode, &wrap, &best); err != nil {
			return data, fmt.Errorf("storage: cannot scan highscore row: %w", err)
		}
		data.Records[game.RecordKey{Mode: config.Mode(mode), Wrap: wrap}] = best
	}
	if err := rows.Err(); err != nil {
		return data, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return data, nil
}

// Save upserts the mute setting and every highscore record in one
// transaction.
func (s *Store) Save(data game.SaveData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	muted := "0"
	if data.Muted {
		muted = "1"
	}
	if _, err := tx.Exec(
		`INSERT INTO settings (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		settingMuted, muted,
	); err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}

	for key, best := range data.Records {
		if _, err := tx.Exec(
			`INSERT INTO highscores (mode, wrap, best) VALUES (?, ?, ?)
			 ON CONFLICT(mode, wrap) DO UPDATE SET best = excluded.best`,
			string(key.Mode), key.Wrap, best,
		); err != nil {
			return fmt.Errorf("storage: cannot save highscore %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// RecordRun appends one finished run to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(mode config.Mode, wrap bool, score int, reason string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (mode, wrap, score, reason) VALUES (?, ?, ?, ?)",
		string(mode), wrap, score, reason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for the given (mode, wrap) key,
// ordered by score descending.
func (s *Store) TopRuns(mode config.Mode, wrap bool, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, wrap, score, reason, created_at
		 FROM runs
		 WHERE mode = ? AND wrap = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		string(mode), wrap, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// AllRuns retrieves the whole run history, newest first.
func (s *Store) AllRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(
		`SELECT id, mode, wrap, score, reason, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ClearRuns deletes the run history for the given (mode, wrap) key.
func (s *Store) ClearRuns(mode config.Mode, wrap bool) error {
	if _, err := s.db.Exec(
		"DELETE FROM runs WHERE mode = ? AND wrap = ?",
		string(mode), wrap,
	); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var mode string
		var createdAt any
		if err := rows.Scan(&e.ID, &mode, &e.Wrap, &e.Score, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Mode = config.Mode(mode)

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
