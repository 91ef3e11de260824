// Package sqlite provides a SQLite-backed implementation of the mood store port.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
)

var _ ports.MoodStore = (*Adapter)(nil)

// Adapter implements the mood store port for SQLite
type Adapter struct {
	db *sql.DB
}

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// A second pooled connection to ":memory:" would see an empty database.
	if strings.Contains(storagePath, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// RecordMood appends a reading. Readings are never updated in place.
func (a *Adapter) RecordMood(ctx context.Context, r domain.MoodReading) error {
	if err := domain.ValidateMood(r.Value); err != nil {
		return err
	}
	if r.UserID == "" {
		return errors.New("sqlite: user id is required")
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}

	_, err := a.db.ExecContext(ctx,
		"INSERT INTO moods (id, user_id, value, recorded_at) VALUES (?, ?, ?, ?)",
		r.ID, r.UserID, r.Value, r.RecordedAt.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to record mood: %w", err)
	}
	return nil
}

// FetchLatestMood returns nil, nil when the user has no readings.
func (a *Adapter) FetchLatestMood(ctx context.Context, userID string) (*domain.MoodReading, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, user_id, value, recorded_at
		FROM moods
		WHERE user_id = ?
		ORDER BY recorded_at DESC, seq DESC
		LIMIT 1
	`, userID)

	var (
		reading domain.MoodReading
		nanos   int64
	)
	if err := row.Scan(&reading.ID, &reading.UserID, &reading.Value, &nanos); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest mood: %w", err)
	}
	reading.RecordedAt = time.Unix(0, nanos).UTC()
	return &reading, nil
}

// MoodHistory returns up to limit readings for userID, newest first.
func (a *Adapter) MoodHistory(ctx context.Context, userID string, limit int) ([]domain.MoodReading, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, user_id, value, recorded_at
		FROM moods
		WHERE user_id = ?
		ORDER BY recorded_at DESC, seq DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}
	defer rows.Close()

	history := []domain.MoodReading{}
	for rows.Next() {
		var (
			r     domain.MoodReading
			nanos int64
		)
		if err := rows.Scan(&r.ID, &r.UserID, &r.Value, &nanos); err != nil {
			return nil, fmt.Errorf("failed to scan mood: %w", err)
		}
		r.RecordedAt = time.Unix(0, nanos).UTC()
		history = append(history, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate moods: %w", err)
	}
	return history, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS moods (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		value INTEGER NOT NULL CHECK (value BETWEEN 1 AND 10),
		recorded_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_moods_user_recorded ON moods (user_id, recorded_at DESC);
	`
	_, err := a.db.Exec(query)
	return err
}
