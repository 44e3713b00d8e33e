package journal

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Entry is one completed focus session recorded locally.
type Entry struct {
	ID              string
	Subject         string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	Emotion         *string
	Synced          bool
}

// DayTotal aggregates study seconds for one calendar day.
type DayTotal struct {
	Date    string // 2006-01-02
	Seconds int
}

// Store provides SQLite-backed persistence for the local session journal.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the journal database inside dir.
func Open(dir string) (*sql.DB, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("open journal: dir is empty")
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "journal.db"))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return db, nil
}

// New returns a Store bound to an existing database handle.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	return &Store{db: db}, nil
}

// RecordSession inserts a completed focus session and returns its id.
func (s *Store) RecordSession(subject string, startedAt, endedAt time.Time, durationSeconds int, emotion *string) (string, error) {
	if s == nil || s.db == nil {
		return "", fmt.Errorf("record session: store is nil")
	}
	if durationSeconds <= 0 {
		return "", fmt.Errorf("record session: duration must be > 0")
	}

	id := uuid.NewString()
	var emotionValue any
	if emotion != nil && strings.TrimSpace(*emotion) != "" {
		emotionValue = *emotion
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, subject, started_at, ended_at, duration_seconds, emotion, synced)
		 VALUES (?, ?, ?, ?, ?, ?, 0)`,
		id,
		subject,
		startedAt.UTC().Format(time.RFC3339Nano),
		endedAt.UTC().Format(time.RFC3339Nano),
		durationSeconds,
		emotionValue,
	)
	if err != nil {
		return "", fmt.Errorf("record session: insert: %w", err)
	}
	return id, nil
}

// RecentSessions returns the newest sessions first.
func (s *Store) RecentSessions(limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("recent sessions: store is nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("recent sessions: limit must be > 0")
	}

	rows, err := s.db.Query(
		`SELECT id, subject, started_at, ended_at, duration_seconds, emotion, synced
		 FROM sessions
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: query: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows, "recent sessions")
}

// TotalsByDay sums study seconds per calendar day for sessions ending at or
// after since.
func (s *Store) TotalsByDay(since time.Time) ([]DayTotal, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("totals by day: store is nil")
	}

	rows, err := s.db.Query(
		`SELECT substr(ended_at, 1, 10) AS day, SUM(duration_seconds)
		 FROM sessions
		 WHERE ended_at >= ?
		 GROUP BY day
		 ORDER BY day ASC`,
		since.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("totals by day: query: %w", err)
	}
	defer rows.Close()

	totals := make([]DayTotal, 0)
	for rows.Next() {
		var total DayTotal
		if err := rows.Scan(&total.Date, &total.Seconds); err != nil {
			return nil, fmt.Errorf("totals by day: scan: %w", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("totals by day: rows: %w", err)
	}
	return totals, nil
}

// UnsyncedSessions returns sessions not yet pushed to the record store,
// oldest first.
func (s *Store) UnsyncedSessions(limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("unsynced sessions: store is nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("unsynced sessions: limit must be > 0")
	}

	rows, err := s.db.Query(
		`SELECT id, subject, started_at, ended_at, duration_seconds, emotion, synced
		 FROM sessions
		 WHERE synced = 0
		 ORDER BY ended_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("unsynced sessions: query: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows, "unsynced sessions")
}

// MarkSynced flags a session as pushed to the record store.
func (s *Store) MarkSynced(id string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("mark synced: store is nil")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("mark synced: id is empty")
	}

	result, err := s.db.Exec(`UPDATE sessions SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark synced: update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark synced: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("mark synced: not found (id=%s)", id)
	}
	return nil
}

func scanEntries(rows *sql.Rows, op string) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		var startedAtStr, endedAtStr string
		var emotion sql.NullString
		var synced int

		if err := rows.Scan(&entry.ID, &entry.Subject, &startedAtStr, &endedAtStr, &entry.DurationSeconds, &emotion, &synced); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		var err error
		entry.StartedAt, err = time.Parse(time.RFC3339Nano, startedAtStr)
		if err != nil {
			return nil, fmt.Errorf("%s: parse started_at: %w", op, err)
		}
		entry.EndedAt, err = time.Parse(time.RFC3339Nano, endedAtStr)
		if err != nil {
			return nil, fmt.Errorf("%s: parse ended_at: %w", op, err)
		}
		if emotion.Valid {
			e := emotion.String
			entry.Emotion = &e
		}
		entry.Synced = synced != 0

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return entries, nil
}
