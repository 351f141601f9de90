// Package storage keeps a journal of finished rounds in SQLite.
// The database lives in memory, so the journal lasts as long as the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultRecentLimit is used when RecentRounds is called with a non-positive limit.
const DefaultRecentLimit = 10

// Store manages the in-memory round journal.
type Store struct {
	db *sql.DB
}

// Round is one finished game.
type Round struct {
	ID         int64
	SessionID  string
	Difficulty int
	Score      int
	Length     int // Snake length at game over
	Ticks      uint64
	NewRecord  bool
	EndedAt    time.Time
}

// NewSessionID returns a fresh identifier for a player session.
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates an empty in-memory journal.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			difficulty INTEGER NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			new_record INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_difficulty ON rounds(difficulty, score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the journal.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
// A zero EndedAt is replaced with the current time.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.SessionID == "" {
		return 0, fmt.Errorf("storage: round has no session id")
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (session_id, difficulty, score, length, ticks, new_record, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Difficulty, r.Score, r.Length, int64(r.Ticks), r.NewRecord, r.EndedAt.UnixNano(),
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

// RecentRounds returns up to limit rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, difficulty, score, length, ticks, new_record, ended_at
		 FROM rounds
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// SessionRounds returns every round of one session, oldest first.
func (s *Store) SessionRounds(sessionID string) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, difficulty, score, length, ticks, new_record, ended_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	var rounds []Round
	for rows.Next() {
		var r Round
		var ticks, endedAt int64
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Difficulty, &r.Score, &r.Length, &ticks, &r.NewRecord, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.EndedAt = time.Unix(0, endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// BestByDifficulty returns the highest recorded score per difficulty level.
// Levels without rounds are absent from the map.
func (s *Store) BestByDifficulty() (map[int]int, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, MAX(score)
		 FROM rounds
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[int]int)
	for rows.Next() {
		var level, score int
		if err := rows.Scan(&level, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[level] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}

// Count returns the number of recorded rounds.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}
