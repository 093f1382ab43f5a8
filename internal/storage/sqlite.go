// Package storage provides SQLite-based persistence for play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one recorded run of the game.
type Session struct {
	ID           string
	Frontend     string // "terminal", "window", "ssh" or "sim"
	Player       string
	StartedAt    time.Time
	EndedAt      time.Time
	Frames       uint64
	LeftReturns  int
	RightReturns int
	Serves       int
}

// NewSession builds a session record from the final game stats.
func NewSession(frontend, player string, startedAt time.Time, stats pong.Stats) Session {
	return Session{
		Frontend:     frontend,
		Player:       player,
		StartedAt:    startedAt,
		EndedAt:      time.Now(),
		Frames:       stats.Frames,
		LeftReturns:  stats.LeftReturns,
		RightReturns: stats.RightReturns,
		Serves:       stats.Serves,
	}
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// Totals aggregates every recorded session.
type Totals struct {
	Sessions int
	Frames   uint64
	Returns  int
	Serves   int
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
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			frontend TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			left_returns INTEGER NOT NULL DEFAULT 0,
			right_returns INTEGER NOT NULL DEFAULT 0,
			serves INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
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

// SaveSession records a finished session. An empty ID gets a new UUID.
// Returns the session ID.
func (s *Store) SaveSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, frontend, player, started_at, ended_at, frames, left_returns, right_returns, serves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Frontend, sess.Player,
		sess.StartedAt.UnixMilli(), sess.EndedAt.UnixMilli(),
		int64(sess.Frames), sess.LeftReturns, sess.RightReturns, sess.Serves, //nolint:gosec // frame counts fit in int64
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	return sess.ID, nil
}

// RecentSessions returns the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, player, started_at, ended_at, frames, left_returns, right_returns, serves
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess           Session
			started, ended int64
			frames         int64
		)
		if err := rows.Scan(&sess.ID, &sess.Frontend, &sess.Player, &started, &ended,
			&frames, &sess.LeftReturns, &sess.RightReturns, &sess.Serves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = time.UnixMilli(started)
		sess.EndedAt = time.UnixMilli(ended)
		sess.Frames = uint64(max(frames, 0))
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals sums every recorded session.
func (s *Store) Totals() (Totals, error) {
	var (
		t      Totals
		frames int64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0),
		        COALESCE(SUM(left_returns + right_returns), 0), COALESCE(SUM(serves), 0)
		 FROM sessions`,
	).Scan(&t.Sessions, &frames, &t.Returns, &t.Serves)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	t.Frames = uint64(max(frames, 0))
	return t, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
