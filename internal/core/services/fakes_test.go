package services

import (
	"context"
	"sync"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

type fakeProvider[T any] struct {
	mu      sync.Mutex
	results map[string][]T
	err     error
	gates   map[string]chan struct{}
	queries []string
}

func (f *fakeProvider[T]) search(ctx context.Context, q string) ([]T, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	gate := f.gates[q]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results[q], nil
}

func (f *fakeProvider[T]) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeProvider[T]) gate(q string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gates == nil {
		f.gates = map[string]chan struct{}{}
	}
	ch := make(chan struct{})
	f.gates[q] = ch
	return ch
}

type fakeTracks struct{ fakeProvider[domain.Track] }

func (f *fakeTracks) SearchTracks(ctx context.Context, q string) ([]domain.Track, error) {
	return f.search(ctx, q)
}

func (f *fakeTracks) StreamURL(id string) string { return "https://stream.test/" + id }

type fakeVideos struct{ fakeProvider[domain.Video] }

func (f *fakeVideos) SearchVideos(ctx context.Context, q string) ([]domain.Video, error) {
	return f.search(ctx, q)
}

type fakeBooks struct{ fakeProvider[domain.Book] }

func (f *fakeBooks) SearchBooks(ctx context.Context, q string) ([]domain.Book, error) {
	return f.search(ctx, q)
}

type fakes struct {
	tracks *fakeTracks
	videos *fakeVideos
	books  *fakeBooks
}

// newFakes answers every band's queries with one item tagged by band.
func newFakes() fakes {
	f := fakes{tracks: &fakeTracks{}, videos: &fakeVideos{}, books: &fakeBooks{}}
	f.tracks.results = map[string][]domain.Track{}
	f.videos.results = map[string][]domain.Video{}
	f.books.results = map[string][]domain.Book{}
	for _, mood := range []int{2, 5, 9} {
		q := domain.Classify(mood)
		band := domain.BandFor(mood).String()
		f.tracks.results[q.MusicQuery] = []domain.Track{{ID: "t-" + band, Title: band, DurationSeconds: 120}}
		f.videos.results[q.PodcastQuery] = []domain.Video{{ID: "v-" + band, Title: band}}
		f.books.results[q.BookQuery] = []domain.Book{{ID: "b-" + band, Title: band, Authors: []string{}}}
	}
	return f
}

func (f fakes) providers() Providers {
	return Providers{Tracks: f.tracks, Videos: f.videos, Books: f.books}
}

type fakeStore struct {
	mu       sync.Mutex
	latest   *domain.MoodReading
	err      error
	recorded []domain.MoodReading
}

func (s *fakeStore) FetchLatestMood(_ context.Context, _ string) (*domain.MoodReading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.latest == nil {
		return nil, nil
	}
	r := *s.latest
	return &r, nil
}

func (s *fakeStore) RecordMood(_ context.Context, r domain.MoodReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.recorded = append(s.recorded, r)
	s.latest = &r
	return nil
}

func (s *fakeStore) set(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &domain.MoodReading{ID: "x", UserID: "u1", Value: value}
}

type captureDispatcher struct {
	mu     sync.Mutex
	jobs   []RefreshJob
	reject bool
}

func (d *captureDispatcher) Submit(job RefreshJob) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.reject {
		return false
	}
	d.jobs = append(d.jobs, job)
	return true
}

func (d *captureDispatcher) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.jobs)
}

// drain runs the captured jobs in submission order.
func (d *captureDispatcher) drain(ctx context.Context) {
	d.mu.Lock()
	jobs := d.jobs
	d.jobs = nil
	d.mu.Unlock()
	for _, job := range jobs {
		job.Session.RunJob(ctx, job)
	}
}
