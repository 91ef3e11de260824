package ports

import (
	"context"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

// MoodReader returns the most recent reading for a user, or nil when the
// user has never recorded one.
type MoodReader interface {
	FetchLatestMood(ctx context.Context, userID string) (*domain.MoodReading, error)
}

type MoodStore interface {
	MoodReader
	RecordMood(ctx context.Context, r domain.MoodReading) error
}
