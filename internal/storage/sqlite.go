// Package storage provides a SQLite journal of played sessions: the
// configuration and replay tape of each session plus one row per finished
// round. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// ErrNotFound is returned when a requested session does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord describes one recorded session.
type SessionRecord struct {
	ID           int64
	Source       string // "play", "sim" or "ssh"
	Seed         int64
	Arena        core.Arena
	Start        core.Position
	MoveInterval time.Duration
	FoodInterval time.Duration
	Tape         []byte // Encoded replay tape, empty until saved
	Rounds       int    // Number of journaled rounds, filled by queries
	CreatedAt    time.Time
}

// Runtime rebuilds the runtime configuration the session was played with.
func (r SessionRecord) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Arena = r.Arena
	cfg.Start = r.Start
	cfg.MoveInterval = r.MoveInterval
	cfg.FoodInterval = r.FoodInterval
	cfg.Seed = r.Seed
	return cfg
}

// RoundRecord is one finished round of a session.
type RoundRecord struct {
	ID        int64
	SessionID int64
	Round     int
	Ticks     uint64
	Length    int
	FoodEaten int
	Causes    []snake.Cause
	CreatedAt time.Time
}

// RoundFromSummary converts a finished round into a journal row.
func RoundFromSummary(s snake.RoundSummary) RoundRecord {
	return RoundRecord{
		Round:     s.Round,
		Ticks:     s.Ticks,
		Length:    s.Length,
		FoodEaten: s.FoodEaten,
		Causes:    s.Causes,
	}
}

// Summary converts the row back into a round summary.
func (r RoundRecord) Summary() snake.RoundSummary {
	return snake.RoundSummary{
		Round:     r.Round,
		Ticks:     r.Ticks,
		Length:    r.Length,
		FoodEaten: r.FoodEaten,
		Causes:    r.Causes,
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

	// Concurrent SSH sessions write through a single connection
	db.SetMaxOpenConns(1)

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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			seed INTEGER NOT NULL,
			arena_width INTEGER NOT NULL,
			arena_height INTEGER NOT NULL,
			start_x INTEGER NOT NULL,
			start_y INTEGER NOT NULL,
			move_interval_ms INTEGER NOT NULL,
			food_interval_ms INTEGER NOT NULL,
			tape BLOB,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			round INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			length INTEGER NOT NULL,
			food_eaten INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id, round);
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

// CreateSession inserts a new session and returns its ID.
func (s *Store) CreateSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (source, seed, arena_width, arena_height, start_x, start_y, move_interval_ms, food_interval_ms, tape)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Source,
		rec.Seed,
		rec.Arena.Width,
		rec.Arena.Height,
		rec.Start.X,
		rec.Start.Y,
		rec.MoveInterval.Milliseconds(),
		rec.FoodInterval.Milliseconds(),
		rec.Tape,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveTape stores the encoded replay tape of a session.
func (s *Store) SaveTape(sessionID int64, tape []byte) error {
	result, err := s.db.Exec("UPDATE sessions SET tape = ? WHERE id = ?", tape, sessionID)
	if err != nil {
		return fmt.Errorf("storage: cannot save tape: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot save tape: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: session %d: %w", sessionID, ErrNotFound)
	}
	return nil
}

// SaveRound journals a finished round of a session and returns its ID.
func (s *Store) SaveRound(sessionID int64, rec RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (session_id, round, ticks, length, food_eaten, cause)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID,
		rec.Round,
		int64(rec.Ticks),
		rec.Length,
		rec.FoodEaten,
		joinCauses(rec.Causes),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const sessionColumns = `s.id, s.source, s.seed, s.arena_width, s.arena_height, s.start_x, s.start_y,
	s.move_interval_ms, s.food_interval_ms, s.tape, s.created_at,
	(SELECT COUNT(*) FROM rounds r WHERE r.session_id = s.id)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (SessionRecord, error) {
	var rec SessionRecord
	var moveMs, foodMs int64
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.Source,
		&rec.Seed,
		&rec.Arena.Width,
		&rec.Arena.Height,
		&rec.Start.X,
		&rec.Start.Y,
		&moveMs,
		&foodMs,
		&rec.Tape,
		&createdAt,
		&rec.Rounds,
	)
	if err != nil {
		return SessionRecord{}, err
	}
	rec.MoveInterval = time.Duration(moveMs) * time.Millisecond
	rec.FoodInterval = time.Duration(foodMs) * time.Millisecond
	rec.CreatedAt = parseTimestamp(createdAt)
	return rec, nil
}

// Session retrieves a session by ID.
func (s *Store) Session(id int64) (SessionRecord, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions s WHERE s.id = ?`, id)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, fmt.Errorf("storage: session %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return rec, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+` FROM sessions s ORDER BY s.id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// Rounds retrieves every journaled round of a session in play order.
func (s *Store) Rounds(sessionID int64) ([]RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, round, ticks, length, food_eaten, cause, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY round, id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var ticks int64
		var cause string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Round, &ticks, &r.Length, &r.FoodEaten, &cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Causes = splitCauses(cause)
		r.CreatedAt = parseTimestamp(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
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

func joinCauses(causes []snake.Cause) string {
	parts := make([]string, len(causes))
	for i, c := range causes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func splitCauses(s string) []snake.Cause {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	causes := make([]snake.Cause, len(parts))
	for i, p := range parts {
		causes[i] = snake.Cause(p)
	}
	return causes
}
