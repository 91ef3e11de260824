package domain

import (
	"errors"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	low := QueryBundle{
		MusicQuery:   "relaxing meditation ambient",
		PodcastQuery: "mental health therapy mindfulness",
		BookQuery:    "self help depression anxiety",
	}
	neutral := QueryBundle{
		MusicQuery:   "chill peaceful calm",
		PodcastQuery: "motivation wellness lifestyle",
		BookQuery:    "psychology happiness mindfulness",
	}
	high := QueryBundle{
		MusicQuery:   "uplifting energetic positive",
		PodcastQuery: "success motivation inspiration",
		BookQuery:    "personal development success happiness",
	}

	tests := []struct {
		name string
		mood int
		want QueryBundle
	}{
		{name: "lowest score", mood: 1, want: low},
		{name: "concrete low mood", mood: 2, want: low},
		{name: "upper edge of low band", mood: 3, want: low},
		{name: "lower edge of neutral band", mood: 4, want: neutral},
		{name: "default mood", mood: DefaultMood, want: neutral},
		{name: "upper edge of neutral band", mood: 6, want: neutral},
		{name: "lower edge of high band", mood: 7, want: high},
		{name: "highest score", mood: 10, want: high},
		{name: "below range stays total", mood: 0, want: low},
		{name: "above range stays total", mood: 11, want: high},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.mood); got != tc.want {
				t.Fatalf("Classify(%d) = %+v, want %+v", tc.mood, got, tc.want)
			}
		})
	}
}

func TestBandFor_Monotonic(t *testing.T) {
	prev := BandFor(MinMood)
	for mood := MinMood + 1; mood <= MaxMood; mood++ {
		got := BandFor(mood)
		if got < prev {
			t.Fatalf("band decreased at mood %d: %v after %v", mood, got, prev)
		}
		prev = got
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		mood  int
		label string
		emoji string
	}{
		{mood: 1, label: "Feeling Low", emoji: "😔"},
		{mood: 5, label: "Feeling Okay", emoji: "😐"},
		{mood: 9, label: "Feeling Great", emoji: "😊"},
	}

	for _, tc := range tests {
		got := Describe(tc.mood)
		if got.Label != tc.label || got.Emoji != tc.emoji {
			t.Errorf("Describe(%d) = %+v, want %s %s", tc.mood, got, tc.label, tc.emoji)
		}
	}
}

func TestNewMoodReading(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if _, err := NewMoodReading("m1", "u1", 11, now); !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	if _, err := NewMoodReading("m1", "", 4, now); err == nil {
		t.Fatal("expected error for empty user id")
	}

	r, err := NewMoodReading("m1", "u1", 4, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != 4 || r.UserID != "u1" || !r.RecordedAt.Equal(now) {
		t.Fatalf("unexpected reading: %+v", r)
	}
}

func TestEffectiveMood(t *testing.T) {
	if got := EffectiveMood(nil); got != DefaultMood {
		t.Fatalf("EffectiveMood(nil) = %d, want %d", got, DefaultMood)
	}
	if got := EffectiveMood(&MoodReading{Value: 8}); got != 8 {
		t.Fatalf("EffectiveMood = %d, want 8", got)
	}
}
