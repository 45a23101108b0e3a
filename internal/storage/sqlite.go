// Package storage provides SQLite-based persistence for high scores and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID        int64
	Mode      tiles.Mode
	Score     int
	Elapsed   time.Duration
	Success   bool
	CreatedAt time.Time
}

// RunFromResult builds a Run for a finished engine session.
func RunFromResult(mode tiles.Mode, res tiles.Result) Run {
	return Run{
		Mode:    mode,
		Score:   res.Score,
		Elapsed: res.Elapsed,
		Success: res.Success,
	}
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			success INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
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

// Get implements highscore.KV.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, highscore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read key %s: %w", key, err)
	}
	return value, nil
}

// Set implements highscore.KV.
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %s: %w", key, err)
	}
	return nil
}

// Ensure Store implements highscore.KV
var _ highscore.KV = (*Store)(nil)

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (mode, score, elapsed_ms, success) VALUES (?, ?, ?, ?)",
		run.Mode.String(), run.Score, run.Elapsed.Milliseconds(), run.Success,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for the given mode, ranked by the mode's metric.
// Timed modes only rank successful runs, fastest first; others rank by score descending.
func (s *Store) TopRuns(mode tiles.Mode, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, mode, score, elapsed_ms, success, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, elapsed_ms ASC, id ASC
		 LIMIT ?`
	if mode.LowerIsBetter() {
		query = `SELECT id, mode, score, elapsed_ms, success, created_at
		 FROM runs
		 WHERE mode = ? AND success = 1
		 ORDER BY elapsed_ms ASC, id ASC
		 LIMIT ?`
	}

	return s.queryRuns(query, mode.String(), limit)
}

// RecentRuns retrieves the most recent N runs for the given mode.
func (s *Store) RecentRuns(mode tiles.Mode, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, mode, score, elapsed_ms, success, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mode.String(), limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var mode string
		var elapsedMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &mode, &r.Score, &elapsedMs, &r.Success, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m, err := tiles.ParseMode(mode)
		if err != nil {
			continue
		}
		r.Mode = m
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(mode tiles.Mode) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode.String())
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       tiles.Mode
	Runs       int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode tiles.Mode) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs WHERE mode = ?`,
		mode.String(),
	).Scan(&stats.Runs, &stats.Wins, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
