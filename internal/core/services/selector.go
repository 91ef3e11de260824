package services

import (
	"sync"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

// Selector holds the open book detail view for one session.
type Selector struct {
	mu    sync.Mutex
	state domain.SelectionState
}

func NewSelector() *Selector {
	return &Selector{}
}

func (s *Selector) State() domain.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Selector) Select(bookID string) (domain.SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.state.Select(bookID)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

func (s *Selector) Close() domain.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Close()
	return s.state
}

func (s *Selector) Dismiss(target domain.DismissTarget) domain.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Dismiss(target)
	return s.state
}
