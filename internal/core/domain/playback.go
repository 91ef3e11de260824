package domain

import (
	"errors"
	"fmt"
)

var ErrEmptyTrackID = errors.New("domain: track id is required")

// PlaybackStatus is derived from PlaybackState.
type PlaybackStatus string

const (
	PlaybackIdle    PlaybackStatus = "idle"
	PlaybackPlaying PlaybackStatus = "playing"
	PlaybackPaused  PlaybackStatus = "paused"
)

// PlaybackState tracks the single active track. IsPlaying is never true
// without an ActiveTrackID.
type PlaybackState struct {
	ActiveTrackID string `json:"activeTrackId,omitempty"`
	IsPlaying     bool   `json:"isPlaying"`
}

func (s PlaybackState) Status() PlaybackStatus {
	switch {
	case s.ActiveTrackID == "":
		return PlaybackIdle
	case s.IsPlaying:
		return PlaybackPlaying
	default:
		return PlaybackPaused
	}
}

// IsTrackPlaying reports whether trackID is the one track currently playing.
func (s PlaybackState) IsTrackPlaying(trackID string) bool {
	return s.IsPlaying && s.ActiveTrackID == trackID
}

// Toggle applies a user play/pause intent on trackID. Toggling the active
// track flips between playing and paused; any other track replaces it and
// starts playing.
func (s PlaybackState) Toggle(trackID string) (PlaybackState, error) {
	if trackID == "" {
		return s, ErrEmptyTrackID
	}
	if s.ActiveTrackID == trackID {
		return PlaybackState{ActiveTrackID: trackID, IsPlaying: !s.IsPlaying}, nil
	}
	return PlaybackState{ActiveTrackID: trackID, IsPlaying: true}, nil
}

// MediaEvent is reported by the media layer rather than the user.
type MediaEvent string

const (
	MediaEnded  MediaEvent = "ended"
	MediaPaused MediaEvent = "paused"
)

func ParseMediaEvent(raw string) (MediaEvent, error) {
	switch ev := MediaEvent(raw); ev {
	case MediaEnded, MediaPaused:
		return ev, nil
	default:
		return "", fmt.Errorf("domain: unknown media event %q", raw)
	}
}

// Apply handles a media-layer event. Both events pause the active track.
// Events for a track other than the active one are stale and ignored; an
// empty trackID targets the active track.
func (s PlaybackState) Apply(trackID string, ev MediaEvent) PlaybackState {
	if s.ActiveTrackID == "" {
		return s
	}
	if trackID != "" && trackID != s.ActiveTrackID {
		return s
	}
	switch ev {
	case MediaEnded, MediaPaused:
		s.IsPlaying = false
	}
	return s
}
