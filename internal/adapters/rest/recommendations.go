package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/services"
)

type trackView struct {
	domain.Track
	StreamURL string `json:"streamUrl"`
	Playing   bool   `json:"playing"`
}

type recommendationsResponse struct {
	Tracks     []trackView        `json:"tracks"`
	Videos     []domain.Video     `json:"videos"`
	Books      []domain.Book      `json:"books"`
	Loading    bool               `json:"loading"`
	Mood       moodResponse       `json:"mood"`
	Query      domain.QueryBundle `json:"query"`
	Generation uint64             `json:"generation"`
}

func newRecommendationsResponse(s *services.Session) recommendationsResponse {
	batch := s.Orchestrator().Batch()
	playback := s.Player().State()

	tracks := make([]trackView, 0, len(batch.Tracks))
	for _, t := range batch.Tracks {
		tracks = append(tracks, trackView{
			Track:     t,
			StreamURL: s.Orchestrator().StreamURL(t.ID),
			Playing:   playback.IsTrackPlaying(t.ID),
		})
	}
	mood := batch.Mood
	if batch.Generation == 0 {
		mood = s.Mood()
	}
	return recommendationsResponse{
		Tracks:     tracks,
		Videos:     batch.Videos,
		Books:      batch.Books,
		Loading:    batch.Loading,
		Mood:       newMoodResponse(mood),
		Query:      batch.Query,
		Generation: batch.Generation,
	}
}

// GetRecommendations handles GET /recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newRecommendationsResponse(h.session(r)))
}

// RefreshRecommendations handles POST /recommendations/refresh. The refresh
// reuses the last mood and may complete after the response is sent.
func (h *Handler) RefreshRecommendations(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	s.Refresh(r.Context())
	writeJSON(w, http.StatusAccepted, newRecommendationsResponse(s))
}
