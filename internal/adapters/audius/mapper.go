package audius

import (
	"math"
	"strings"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

// mapTrackToDomain converts a raw catalog track. Tracks without an id or
// title are rejected. A missing duration maps to zero, which the duration
// filter then drops. Fractional seconds round up so that anything longer
// than the threshold still passes it.
func mapTrackToDomain(wt wireTrack) (domain.Track, bool) {
	id := deref(wt.ID)
	title := deref(wt.Title)
	if id == "" || title == "" {
		return domain.Track{}, false
	}

	var artist string
	if wt.User != nil {
		artist = deref(wt.User.Name)
		if artist == "" {
			artist = deref(wt.User.Handle)
		}
	}

	var seconds int
	if wt.Duration != nil && *wt.Duration > 0 {
		seconds = int(math.Ceil(*wt.Duration))
	}

	return domain.Track{
		ID:              id,
		Title:           title,
		ArtistName:      artist,
		DurationSeconds: seconds,
	}, true
}

// mapTracksToDomain keeps the first occurrence of each track id.
func mapTracksToDomain(items []wireTrack) []domain.Track {
	tracks := make([]domain.Track, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		t, ok := mapTrackToDomain(item)
		if !ok {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		tracks = append(tracks, t)
	}
	return tracks
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
