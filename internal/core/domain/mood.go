package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinMood = 1
	MaxMood = 10
	// DefaultMood is used when the mood store has no reading for a user.
	DefaultMood = 5
)

var ErrInvalidMood = errors.New("domain: mood must be between 1 and 10")

// MoodReading is a single self-reported mood score.
type MoodReading struct {
	ID         string
	UserID     string
	Value      int
	RecordedAt time.Time
}

// NewMoodReading validates value and builds a reading for userID.
func NewMoodReading(id, userID string, value int, at time.Time) (MoodReading, error) {
	if userID == "" {
		return MoodReading{}, errors.New("domain: user id is required")
	}
	if err := ValidateMood(value); err != nil {
		return MoodReading{}, err
	}
	return MoodReading{ID: id, UserID: userID, Value: value, RecordedAt: at}, nil
}

func ValidateMood(value int) error {
	if value < MinMood || value > MaxMood {
		return fmt.Errorf("%w: got %d", ErrInvalidMood, value)
	}
	return nil
}

// EffectiveMood returns the reading's value, falling back to DefaultMood
// when there is no reading.
func EffectiveMood(r *MoodReading) int {
	if r == nil {
		return DefaultMood
	}
	return r.Value
}

// MoodBand is one of the three closed mood ranges that drive content selection.
type MoodBand int

const (
	BandLow     MoodBand = iota // 1-3
	BandNeutral                 // 4-6
	BandHigh                    // 7-10
)

func (b MoodBand) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandNeutral:
		return "neutral"
	default:
		return "high"
	}
}

// BandFor is total: scores below 1 fall in BandLow and above 10 in BandHigh.
func BandFor(mood int) MoodBand {
	switch {
	case mood <= 3:
		return BandLow
	case mood <= 6:
		return BandNeutral
	default:
		return BandHigh
	}
}

// QueryBundle holds the free-text searches sent to each content provider.
type QueryBundle struct {
	MusicQuery   string `json:"musicQuery"`
	PodcastQuery string `json:"podcastQuery"`
	BookQuery    string `json:"bookQuery"`
}

var bundles = map[MoodBand]QueryBundle{
	BandLow: {
		MusicQuery:   "relaxing meditation ambient",
		PodcastQuery: "mental health therapy mindfulness",
		BookQuery:    "self help depression anxiety",
	},
	BandNeutral: {
		MusicQuery:   "chill peaceful calm",
		PodcastQuery: "motivation wellness lifestyle",
		BookQuery:    "psychology happiness mindfulness",
	},
	BandHigh: {
		MusicQuery:   "uplifting energetic positive",
		PodcastQuery: "success motivation inspiration",
		BookQuery:    "personal development success happiness",
	},
}

// Classify maps a mood score to its query bundle.
func Classify(mood int) QueryBundle {
	return bundles[BandFor(mood)]
}

// MoodDescription is the display form of a mood band.
type MoodDescription struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

var descriptions = map[MoodBand]MoodDescription{
	BandLow:     {Label: "Feeling Low", Emoji: "😔"},
	BandNeutral: {Label: "Feeling Okay", Emoji: "😐"},
	BandHigh:    {Label: "Feeling Great", Emoji: "😊"},
}

func Describe(mood int) MoodDescription {
	return descriptions[BandFor(mood)]
}
