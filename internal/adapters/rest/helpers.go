package rest

import (
	"errors"
	"io"
	"mime"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/ewilliams-labs/moodwell/internal/logging"
)

const maxRequestBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("rest: failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeErrorWithCode(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

func isJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

var errBadBody = errors.New("invalid request body")

// decodeBody enforces a JSON content type and decodes the body into dst,
// writing the error response itself. It reports whether the handler may continue.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(dst); err != nil {
		writeErrorWithCode(w, http.StatusBadRequest, errBadBody.Error(), codeInvalidBody)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeErrorWithCode(w, http.StatusBadRequest, err.Error(), codeValidation)
		return false
	}
	return true
}
