package services

import (
	"context"
	"time"

	"github.com/ewilliams-labs/moodwell/internal/logging"
)

// MoodWatcher re-reads the mood store for every active session so readings
// written elsewhere still trigger a refresh. Each tick first evicts idle
// sessions from the registry.
type MoodWatcher struct {
	registry *SessionRegistry
	interval time.Duration
}

func NewMoodWatcher(registry *SessionRegistry, interval time.Duration) *MoodWatcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &MoodWatcher{registry: registry, interval: interval}
}

// Run polls until ctx is done.
func (w *MoodWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	log := logging.With("mood_watcher")
	log.Info().Dur("interval", w.interval).Msg("mood watcher started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("mood watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll sweeps idle sessions, then checks each remaining session once and
// returns how many refreshes it scheduled.
func (w *MoodWatcher) Poll(ctx context.Context) int {
	w.registry.Sweep()
	changed := 0
	for _, s := range w.registry.Sessions() {
		if ctx.Err() != nil {
			break
		}
		if s.Load(ctx) {
			changed++
		}
	}
	return changed
}
