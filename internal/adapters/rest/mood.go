package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/logging"
)

const (
	codeInvalidBody  = "INVALID_BODY"
	codeValidation   = "VALIDATION_FAILED"
	codeMoodRange    = "MOOD_OUT_OF_RANGE"
	codeInvalidEvent = "UNKNOWN_MEDIA_EVENT"
)

type moodResponse struct {
	Value int    `json:"value"`
	Band  string `json:"band"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

func newMoodResponse(mood int) moodResponse {
	d := domain.Describe(mood)
	return moodResponse{Value: mood, Band: domain.BandFor(mood).String(), Label: d.Label, Emoji: d.Emoji}
}

type recordMoodRequest struct {
	Value *int `json:"value" validate:"required"`
}

type recordMoodResponse struct {
	ID         string       `json:"id"`
	RecordedAt time.Time    `json:"recordedAt"`
	Mood       moodResponse `json:"mood"`
}

// GetMood handles GET /mood
func (h *Handler) GetMood(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newMoodResponse(h.session(r).Mood()))
}

// RecordMood handles POST /moods
func (h *Handler) RecordMood(w http.ResponseWriter, r *http.Request) {
	var req recordMoodRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	reading, err := h.session(r).RecordMood(r.Context(), *req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMood) {
			writeErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), codeMoodRange)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("rest: record mood failed")
		writeError(w, http.StatusInternalServerError, "failed to record mood")
		return
	}

	writeJSON(w, http.StatusCreated, recordMoodResponse{
		ID:         reading.ID,
		RecordedAt: reading.RecordedAt,
		Mood:       newMoodResponse(reading.Value),
	})
}
