package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

var (
	// ErrMalformedPayload indicates a provider response did not match the expected shape.
	ErrMalformedPayload = errors.New("malformed provider payload")
	// ErrMissingCredential indicates the relay has no upstream API key configured.
	ErrMissingCredential = errors.New("relay missing upstream credential")
	// ErrProviderStatus matches any ProviderError.
	ErrProviderStatus = errors.New("provider returned non-success status")
)

// ProviderError carries the status of a non-success provider response.
type ProviderError struct {
	Source domain.Source
	Status int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: status %d", e.Source, e.Status)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderStatus
}

// TrackProvider searches a music catalog. Results are already filtered to
// full-length tracks and bounded to a page.
type TrackProvider interface {
	SearchTracks(ctx context.Context, query string) ([]domain.Track, error)
	// StreamURL is derived from the track id without a lookup call.
	StreamURL(trackID string) string
}

type VideoProvider interface {
	SearchVideos(ctx context.Context, query string) ([]domain.Video, error)
}

type BookProvider interface {
	SearchBooks(ctx context.Context, query string) ([]domain.Book, error)
}
