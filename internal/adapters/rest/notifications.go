package rest

import "net/http"

// GetNotifications handles GET /notifications. Delivered notifications are
// removed from the inbox.
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": h.session(r).Inbox().Drain(),
	})
}
