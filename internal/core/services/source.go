package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
	"github.com/ewilliams-labs/moodwell/internal/logging"
	"github.com/ewilliams-labs/moodwell/internal/metrics"
)

// SearchFunc is a provider search call.
type SearchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// Source wraps one provider so that a failed call never reaches the
// orchestrator: the error becomes an empty result and one notification.
type Source[T any] struct {
	name     domain.Source
	search   SearchFunc[T]
	notifier ports.Notifier
}

func NewSource[T any](name domain.Source, search SearchFunc[T], notifier ports.Notifier) *Source[T] {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Source[T]{name: name, search: search, notifier: notifier}
}

// Fetch always returns a non-nil slice.
func (s *Source[T]) Fetch(ctx context.Context, query string) []T {
	start := time.Now()
	items, err := s.search(ctx, query)
	metrics.RecordSource(string(s.name), start, err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("source", string(s.name)).Str("query", query).Msg("content source failed")
		s.notifier.Notify(ctx, domain.Notification{
			Source:  s.name,
			Message: failureMessage(s.name),
			At:      time.Now(),
		})
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func failureMessage(src domain.Source) string {
	switch src {
	case domain.SourceTracks:
		return "Failed to load music recommendations"
	case domain.SourceVideos:
		return "Failed to load podcast recommendations"
	case domain.SourceBooks:
		return "Failed to load book recommendations"
	default:
		return fmt.Sprintf("Failed to load %s", src)
	}
}
