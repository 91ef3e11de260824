package domain

const (
	// PageSize bounds every recommendation section.
	PageSize = 6
	// TrackFetchSize is requested upstream so enough tracks survive the
	// duration filter to fill a page.
	TrackFetchSize = 20
	// MinFullTrackSeconds excludes teasers and snippets.
	MinFullTrackSeconds = 30
)

// Track represents a music track in the domain layer.
type Track struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ArtistName      string `json:"artistName"`
	DurationSeconds int    `json:"durationSeconds"`
}

// IsFullTrack reports whether t is long enough to be recommended.
func (t Track) IsFullTrack() bool {
	return t.DurationSeconds > MinFullTrackSeconds
}

// FilterFullTracks drops short tracks, keeps provider order and truncates
// the result to PageSize.
func FilterFullTracks(tracks []Track) []Track {
	out := make([]Track, 0, PageSize)
	for _, t := range tracks {
		if !t.IsFullTrack() {
			continue
		}
		out = append(out, t)
		if len(out) == PageSize {
			break
		}
	}
	return out
}
