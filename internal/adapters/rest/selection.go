package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

type selectionResponse struct {
	Open bool         `json:"open"`
	Book *domain.Book `json:"book,omitempty"`
	// BookID is set even when the book has since left the batch.
	BookID string `json:"bookId,omitempty"`
}

type selectRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

func (h *Handler) selectionResponse(r *http.Request, st domain.SelectionState) selectionResponse {
	resp := selectionResponse{Open: st.IsOpen(), BookID: st.SelectedBookID}
	if !st.IsOpen() {
		return resp
	}
	for _, b := range h.session(r).Orchestrator().Batch().Books {
		if b.ID == st.SelectedBookID {
			book := b
			resp.Book = &book
			break
		}
	}
	return resp
}

// GetSelection handles GET /selection
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.selectionResponse(r, h.session(r).Selector().State()))
}

// SelectBook handles PUT /selection
func (h *Handler) SelectBook(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	st, err := h.session(r).Selector().Select(req.BookID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.selectionResponse(r, st))
}

// CloseSelection handles DELETE /selection. With ?target=content the
// gesture landed on the detail itself and the view stays open.
func (h *Handler) CloseSelection(w http.ResponseWriter, r *http.Request) {
	sel := h.session(r).Selector()
	var st domain.SelectionState
	switch target := domain.DismissTarget(r.URL.Query().Get("target")); target {
	case "":
		st = sel.Close()
	case domain.DismissOverlay, domain.DismissContent:
		st = sel.Dismiss(target)
	default:
		writeError(w, http.StatusBadRequest, "target must be overlay or content")
		return
	}
	writeJSON(w, http.StatusOK, h.selectionResponse(r, st))
}
