package domain

import (
	"errors"
	"testing"
)

func TestSelectionState(t *testing.T) {
	var s SelectionState
	if s.IsOpen() {
		t.Fatal("initial state should be closed")
	}

	s, err := s.Select("X")
	if err != nil {
		t.Fatalf("select X: %v", err)
	}
	s, err = s.Select("Y")
	if err != nil {
		t.Fatalf("select Y: %v", err)
	}
	if s.SelectedBookID != "Y" {
		t.Fatalf("selected = %q, want Y", s.SelectedBookID)
	}

	s = s.Close()
	if s.IsOpen() {
		t.Fatalf("expected closed, got %+v", s)
	}
}

func TestSelectionState_SelectEmpty(t *testing.T) {
	s := SelectionState{SelectedBookID: "X"}
	got, err := s.Select("")
	if !errors.Is(err, ErrEmptyBookID) {
		t.Fatalf("expected ErrEmptyBookID, got %v", err)
	}
	if got != s {
		t.Fatalf("state changed on error: %+v", got)
	}
}

func TestSelectionState_Dismiss(t *testing.T) {
	open := SelectionState{SelectedBookID: "X"}

	if got := open.Dismiss(DismissContent); got != open {
		t.Fatalf("dismiss on content closed the view: %+v", got)
	}
	if got := open.Dismiss(DismissOverlay); got.IsOpen() {
		t.Fatalf("dismiss on overlay left the view open: %+v", got)
	}
}
