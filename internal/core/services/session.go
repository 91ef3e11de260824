package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
	"github.com/ewilliams-labs/moodwell/internal/logging"
	"github.com/ewilliams-labs/moodwell/internal/metrics"
)

// ErrNoMoodStore is returned by RecordMood when the session has no store.
var ErrNoMoodStore = errors.New("service: mood store not configured")

// Trigger records why a refresh ran.
type Trigger string

const (
	TriggerInitial    Trigger = "initial"
	TriggerMoodChange Trigger = "mood_change"
	TriggerManual     Trigger = "manual"
)

// RefreshJob is a refresh handed to a Dispatcher. Generation is claimed
// when the job is prepared, so the batch shows Loading while it waits.
type RefreshJob struct {
	Session    *Session
	Mood       int
	Trigger    Trigger
	Generation uint64
}

// Dispatcher runs refresh jobs off the caller's goroutine. Submit reports
// false when the job was not accepted.
type Dispatcher interface {
	Submit(job RefreshJob) bool
}

// SessionDeps is shared by every session a registry creates.
type SessionDeps struct {
	Providers Providers
	Store     ports.MoodStore
	// Dispatcher may be nil, in which case refreshes run synchronously.
	Dispatcher Dispatcher
	// Notifier receives notifications in addition to the session inbox.
	Notifier  ports.Notifier
	InboxSize int
	Now       func() time.Time
	// IdleTimeout is how long a registry keeps a session nobody has asked
	// for. Zero keeps sessions forever.
	IdleTimeout time.Duration
}

// Session is the per-user view state: recommendations, playback, the open
// book detail and pending notifications.
type Session struct {
	userID     string
	orch       *Orchestrator
	player     *Player
	selector   *Selector
	inbox      *Inbox
	store      ports.MoodStore
	dispatcher Dispatcher
	now        func() time.Time

	mu       sync.Mutex
	observed bool
	mood     int
}

func NewSession(userID string, deps SessionDeps) *Session {
	inbox := NewInbox(deps.InboxSize)
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		userID:     userID,
		orch:       NewOrchestrator(deps.Providers, MultiNotifier{inbox, deps.Notifier}),
		player:     NewPlayer(),
		selector:   NewSelector(),
		inbox:      inbox,
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		now:        now,
		mood:       domain.DefaultMood,
	}
}

func (s *Session) UserID() string { return s.userID }
func (s *Session) Orchestrator() *Orchestrator { return s.orch }
func (s *Session) Player() *Player { return s.player }
func (s *Session) Selector() *Selector { return s.selector }
func (s *Session) Inbox() *Inbox { return s.inbox }

// Mood returns the last observed effective mood.
func (s *Session) Mood() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood
}

// Load reads the latest mood from the store and observes it. A store error
// is logged and treated as no reading.
func (s *Session) Load(ctx context.Context) bool {
	var reading *domain.MoodReading
	if s.store != nil {
		r, err := s.store.FetchLatestMood(ctx, s.userID)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("user_id", s.userID).Msg("mood store read failed, using default mood")
		} else {
			reading = r
		}
	}
	return s.ObserveMood(ctx, reading)
}

// ObserveMood refreshes when the effective mood differs from the last one
// observed. The first observation always refreshes. Reports whether a
// refresh was scheduled.
func (s *Session) ObserveMood(ctx context.Context, r *domain.MoodReading) bool {
	mood := domain.EffectiveMood(r)

	s.mu.Lock()
	if s.observed && s.mood == mood {
		s.mu.Unlock()
		return false
	}
	trigger := TriggerMoodChange
	if !s.observed {
		trigger = TriggerInitial
	}
	s.observed = true
	s.mood = mood
	s.mu.Unlock()

	logging.Ctx(ctx).Info().Str("user_id", s.userID).Int("mood", mood).Str("trigger", string(trigger)).Msg("mood observed")
	s.schedule(ctx, mood, trigger)
	return true
}

// RecordMood validates and persists a new reading, then observes it.
func (s *Session) RecordMood(ctx context.Context, value int) (domain.MoodReading, error) {
	if s.store == nil {
		return domain.MoodReading{}, ErrNoMoodStore
	}
	reading, err := domain.NewMoodReading(uuid.NewString(), s.userID, value, s.now())
	if err != nil {
		return domain.MoodReading{}, err
	}
	if err := s.store.RecordMood(ctx, reading); err != nil {
		return domain.MoodReading{}, fmt.Errorf("service: failed to record mood: %w", err)
	}
	s.ObserveMood(ctx, &reading)
	return reading, nil
}

// Refresh is a user-requested refresh of the last observed mood.
func (s *Session) Refresh(ctx context.Context) {
	s.schedule(ctx, s.Mood(), TriggerManual)
}

// RefreshNow runs a refresh on the calling goroutine.
func (s *Session) RefreshNow(ctx context.Context, mood int, trigger Trigger) domain.RecommendationBatch {
	return s.RunJob(ctx, s.Prepare(mood, trigger))
}

// Prepare claims a refresh generation for mood and returns the job that
// runs it.
func (s *Session) Prepare(mood int, trigger Trigger) RefreshJob {
	metrics.RefreshTotal.WithLabelValues(string(trigger)).Inc()
	return RefreshJob{Session: s, Mood: mood, Trigger: trigger, Generation: s.orch.Begin(mood)}
}

// RunJob executes a prepared job. A job overtaken by a newer one while
// queued does nothing.
func (s *Session) RunJob(ctx context.Context, job RefreshJob) domain.RecommendationBatch {
	return s.orch.Run(logging.ContextWithUserID(ctx, s.userID), job.Generation, job.Mood)
}

func (s *Session) schedule(ctx context.Context, mood int, trigger Trigger) {
	if s.dispatcher == nil {
		s.RefreshNow(ctx, mood, trigger)
		return
	}
	job := s.Prepare(mood, trigger)
	if !s.dispatcher.Submit(job) {
		s.orch.Abandon(job.Generation)
		logging.Ctx(ctx).Warn().Str("user_id", s.userID).Str("trigger", string(trigger)).Msg("refresh not dispatched")
	}
}
