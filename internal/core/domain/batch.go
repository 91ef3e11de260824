package domain

import "time"

// Source names one of the three content sections.
type Source string

const (
	SourceTracks Source = "tracks"
	SourceVideos Source = "videos"
	SourceBooks  Source = "books"
)

// RecommendationBatch is the result set of the most recent refresh.
// Loading stays true until every section of the latest refresh has settled.
type RecommendationBatch struct {
	Tracks     []Track     `json:"tracks"`
	Videos     []Video     `json:"videos"`
	Books      []Book      `json:"books"`
	Loading    bool        `json:"loading"`
	Mood       int         `json:"mood"`
	Query      QueryBundle `json:"query"`
	Generation uint64      `json:"generation"`
}

// NewRecommendationBatch returns an empty, idle batch.
func NewRecommendationBatch() RecommendationBatch {
	return RecommendationBatch{
		Tracks: []Track{},
		Videos: []Video{},
		Books:  []Book{},
	}
}

// Clone copies the section slices so callers cannot alias owned state.
func (b RecommendationBatch) Clone() RecommendationBatch {
	out := b
	out.Tracks = append(make([]Track, 0, len(b.Tracks)), b.Tracks...)
	out.Videos = append(make([]Video, 0, len(b.Videos)), b.Videos...)
	out.Books = make([]Book, 0, len(b.Books))
	for _, bk := range b.Books {
		bk.Authors = append([]string{}, bk.Authors...)
		out.Books = append(out.Books, bk)
	}
	return out
}

// Notification is a one-shot, non-blocking message for the user, such as a
// provider failure toast.
type Notification struct {
	Source  Source    `json:"source"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
