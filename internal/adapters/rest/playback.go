package rest

import (
	"errors"
	"net/http"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

type playbackResponse struct {
	ActiveTrackID string                `json:"activeTrackId,omitempty"`
	IsPlaying     bool                  `json:"isPlaying"`
	Status        domain.PlaybackStatus `json:"status"`
	StreamURL     string                `json:"streamUrl,omitempty"`
}

type toggleRequest struct {
	TrackID string `json:"trackId" validate:"required"`
}

type mediaEventRequest struct {
	TrackID string `json:"trackId"`
	Event   string `json:"event" validate:"required"`
}

func (h *Handler) playbackResponse(r *http.Request, st domain.PlaybackState) playbackResponse {
	resp := playbackResponse{ActiveTrackID: st.ActiveTrackID, IsPlaying: st.IsPlaying, Status: st.Status()}
	if st.ActiveTrackID != "" {
		resp.StreamURL = h.session(r).Orchestrator().StreamURL(st.ActiveTrackID)
	}
	return resp
}

// GetPlayback handles GET /playback
func (h *Handler) GetPlayback(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.playbackResponse(r, h.session(r).Player().State()))
}

// TogglePlayback handles POST /playback/toggle
func (h *Handler) TogglePlayback(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	st, err := h.session(r).Player().Toggle(req.TrackID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTrackID) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.playbackResponse(r, st))
}

// PlaybackEvent handles POST /playback/events, reported by the media layer.
func (h *Handler) PlaybackEvent(w http.ResponseWriter, r *http.Request) {
	var req mediaEventRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	ev, err := domain.ParseMediaEvent(req.Event)
	if err != nil {
		writeErrorWithCode(w, http.StatusBadRequest, err.Error(), codeInvalidEvent)
		return
	}
	st := h.session(r).Player().HandleEvent(req.TrackID, ev)
	writeJSON(w, http.StatusOK, h.playbackResponse(r, st))
}
