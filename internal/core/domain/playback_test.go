package domain

import (
	"errors"
	"testing"
)

func TestPlaybackState_Toggle(t *testing.T) {
	tests := []struct {
		name       string
		start      PlaybackState
		toggles    []string
		wantStatus PlaybackStatus
		wantActive string
	}{
		{
			name:       "idle to playing",
			start:      PlaybackState{},
			toggles:    []string{"A"},
			wantStatus: PlaybackPlaying,
			wantActive: "A",
		},
		{
			name:       "toggling twice pauses, never idles",
			start:      PlaybackState{},
			toggles:    []string{"A", "A"},
			wantStatus: PlaybackPaused,
			wantActive: "A",
		},
		{
			name:       "paused resumes",
			start:      PlaybackState{ActiveTrackID: "A"},
			toggles:    []string{"A"},
			wantStatus: PlaybackPlaying,
			wantActive: "A",
		},
		{
			name:       "switching from playing track",
			start:      PlaybackState{ActiveTrackID: "A", IsPlaying: true},
			toggles:    []string{"B"},
			wantStatus: PlaybackPlaying,
			wantActive: "B",
		},
		{
			name:       "switching from paused track",
			start:      PlaybackState{ActiveTrackID: "A"},
			toggles:    []string{"B"},
			wantStatus: PlaybackPlaying,
			wantActive: "B",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.start
			for _, id := range tc.toggles {
				var err error
				s, err = s.Toggle(id)
				if err != nil {
					t.Fatalf("toggle %s: %v", id, err)
				}
			}
			if s.Status() != tc.wantStatus {
				t.Fatalf("status = %s, want %s", s.Status(), tc.wantStatus)
			}
			if s.ActiveTrackID != tc.wantActive {
				t.Fatalf("active = %q, want %q", s.ActiveTrackID, tc.wantActive)
			}
		})
	}
}

func TestPlaybackState_SwitchLeavesSingleTrackPlaying(t *testing.T) {
	s, _ := PlaybackState{}.Toggle("A")
	s, _ = s.Toggle("B")

	if s.IsTrackPlaying("A") {
		t.Fatal("track A still reports playing")
	}
	if !s.IsTrackPlaying("B") {
		t.Fatal("track B should be playing")
	}
}

func TestPlaybackState_ToggleEmptyID(t *testing.T) {
	s := PlaybackState{ActiveTrackID: "A", IsPlaying: true}
	got, err := s.Toggle("")
	if !errors.Is(err, ErrEmptyTrackID) {
		t.Fatalf("expected ErrEmptyTrackID, got %v", err)
	}
	if got != s {
		t.Fatalf("state changed on error: %+v", got)
	}
}

func TestPlaybackState_Apply(t *testing.T) {
	playing := PlaybackState{ActiveTrackID: "A", IsPlaying: true}

	tests := []struct {
		name    string
		start   PlaybackState
		trackID string
		event   MediaEvent
		want    PlaybackState
	}{
		{name: "ended pauses active track", start: playing, trackID: "A", event: MediaEnded, want: PlaybackState{ActiveTrackID: "A"}},
		{name: "native pause", start: playing, trackID: "A", event: MediaPaused, want: PlaybackState{ActiveTrackID: "A"}},
		{name: "empty id targets active", start: playing, trackID: "", event: MediaEnded, want: PlaybackState{ActiveTrackID: "A"}},
		{name: "stale event for other track ignored", start: playing, trackID: "Z", event: MediaEnded, want: playing},
		{name: "idle ignores events", start: PlaybackState{}, trackID: "A", event: MediaEnded, want: PlaybackState{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.Apply(tc.trackID, tc.event); got != tc.want {
				t.Fatalf("Apply = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseMediaEvent(t *testing.T) {
	if ev, err := ParseMediaEvent("ended"); err != nil || ev != MediaEnded {
		t.Fatalf("ParseMediaEvent(ended) = %v, %v", ev, err)
	}
	if _, err := ParseMediaEvent("rewind"); err == nil {
		t.Fatal("expected error for unknown event")
	}
}
