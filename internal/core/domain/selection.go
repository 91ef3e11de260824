package domain

import "errors"

var ErrEmptyBookID = errors.New("domain: book id is required")

// SelectionState holds the single open book detail view, if any.
type SelectionState struct {
	SelectedBookID string `json:"selectedBookId,omitempty"`
}

func (s SelectionState) IsOpen() bool {
	return s.SelectedBookID != ""
}

// Select opens bookID, replacing whatever was open.
func (s SelectionState) Select(bookID string) (SelectionState, error) {
	if bookID == "" {
		return s, ErrEmptyBookID
	}
	return SelectionState{SelectedBookID: bookID}, nil
}

func (s SelectionState) Close() SelectionState {
	return SelectionState{}
}

// DismissTarget is where a dismiss gesture landed.
type DismissTarget string

const (
	DismissOverlay DismissTarget = "overlay"
	DismissContent DismissTarget = "content"
)

// Dismiss closes the detail view only when the gesture hit the surrounding
// overlay.
func (s SelectionState) Dismiss(target DismissTarget) SelectionState {
	if target == DismissOverlay {
		return s.Close()
	}
	return s
}
