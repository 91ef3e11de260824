package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/services"
)

type stubTracks struct {
	mu      sync.Mutex
	queries []string
	gate    chan struct{}
}

func (s *stubTracks) SearchTracks(ctx context.Context, q string) ([]domain.Track, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()
	if s.gate != nil {
		<-s.gate
	}
	return []domain.Track{{ID: "t1", Title: q, DurationSeconds: 90}}, nil
}

func (s *stubTracks) StreamURL(id string) string { return id }

func (s *stubTracks) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

type stubVideos struct{}

func (stubVideos) SearchVideos(context.Context, string) ([]domain.Video, error) { return nil, nil }

type stubBooks struct{}

func (stubBooks) SearchBooks(context.Context, string) ([]domain.Book, error) { return nil, nil }

func newSession(tracks *stubTracks, pool *Pool) *services.Session {
	return services.NewSession("u1", services.SessionDeps{
		Providers:  services.Providers{Tracks: tracks, Videos: stubVideos{}, Books: stubBooks{}},
		Dispatcher: pool,
	})
}

func TestPool_RunsDispatchedRefresh(t *testing.T) {
	tracks := &stubTracks{}
	pool := NewPool(2, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	s := newSession(tracks, pool)
	require.True(t, s.ObserveMood(context.Background(), &domain.MoodReading{Value: 9}))

	require.Eventually(t, func() bool {
		b := s.Orchestrator().Batch()
		return b.Generation == 1 && !b.Loading
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 9, s.Orchestrator().Batch().Mood)
	assert.Equal(t, []string{domain.Classify(9).MusicQuery}, tracks.queries)
}

func TestPool_SubmitDropsWhenFull(t *testing.T) {
	tracks := &stubTracks{gate: make(chan struct{})}
	pool := NewPool(1, 1)
	pool.Start(context.Background())

	s := newSession(tracks, pool)

	require.True(t, pool.Submit(s.Prepare(5, services.TriggerManual)))
	// Wait for the worker to pick it up so the queue slot frees.
	require.Eventually(t, func() bool { return tracks.calls() == 1 }, time.Second, time.Millisecond)
	queued := s.Prepare(5, services.TriggerManual)
	require.True(t, pool.Submit(queued))
	assert.False(t, pool.Submit(queued), "queue full")

	close(tracks.gate)
	pool.Stop()
	assert.Equal(t, 2, tracks.calls())
	assert.False(t, s.Orchestrator().Batch().Loading)
}

func TestPool_SkipsJobsOvertakenInQueue(t *testing.T) {
	tracks := &stubTracks{gate: make(chan struct{})}
	pool := NewPool(1, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	s := newSession(tracks, pool)
	ctx := context.Background()
	require.True(t, s.ObserveMood(ctx, &domain.MoodReading{Value: 2}))
	require.Eventually(t, func() bool { return tracks.calls() == 1 }, time.Second, time.Millisecond)

	require.True(t, s.ObserveMood(ctx, &domain.MoodReading{Value: 9}))
	require.True(t, s.ObserveMood(ctx, &domain.MoodReading{Value: 5}))

	pending := s.Orchestrator().Batch()
	assert.True(t, pending.Loading)
	assert.Equal(t, 5, pending.Mood)

	close(tracks.gate)
	require.Eventually(t, func() bool { return !s.Orchestrator().Batch().Loading }, time.Second, 5*time.Millisecond)

	tracks.mu.Lock()
	defer tracks.mu.Unlock()
	assert.Equal(t, []string{domain.Classify(2).MusicQuery, domain.Classify(5).MusicQuery}, tracks.queries)
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	s := newSession(&stubTracks{}, pool)
	assert.False(t, pool.Submit(services.RefreshJob{Session: s, Mood: 5}))
	assert.False(t, pool.Submit(services.RefreshJob{}))
}
