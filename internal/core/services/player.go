package services

import (
	"sync"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/logging"
)

// Player serializes playback transitions for one session.
type Player struct {
	mu    sync.Mutex
	state domain.PlaybackState
}

func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) State() domain.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Toggle applies a user play/pause intent.
func (p *Player) Toggle(trackID string) (domain.PlaybackState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next, err := p.state.Toggle(trackID)
	if err != nil {
		return p.state, err
	}
	p.state = next
	return next, nil
}

// HandleEvent applies a media-layer event. Ended and paused are normal
// transitions, not playback errors.
func (p *Player) HandleEvent(trackID string, ev domain.MediaEvent) domain.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = p.state.Apply(trackID, ev)
	logging.Debug().Str("track_id", trackID).Str("event", string(ev)).Str("status", string(p.state.Status())).Msg("media event")
	return p.state
}
