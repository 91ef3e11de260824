package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
	"github.com/ewilliams-labs/moodwell/internal/logging"
	"github.com/ewilliams-labs/moodwell/internal/metrics"
)

// Providers groups the three content sources.
type Providers struct {
	Tracks ports.TrackProvider
	Videos ports.VideoProvider
	Books  ports.BookProvider
}

// Orchestrator owns the recommendation batch. It is the only writer.
type Orchestrator struct {
	tracks *Source[domain.Track]
	videos *Source[domain.Video]
	books  *Source[domain.Book]
	stream func(trackID string) string

	mu         sync.Mutex
	batch      domain.RecommendationBatch
	generation uint64
	lastMood   int
	hasMood    bool
	shown      shownState
}

// shownState is the header of the last refresh that started fetching.
type shownState struct {
	mood       int
	query      domain.QueryBundle
	generation uint64
}

// NewOrchestrator constructs an Orchestrator. Source failures are reported to notifier.
func NewOrchestrator(p Providers, notifier ports.Notifier) *Orchestrator {
	return &Orchestrator{
		tracks: NewSource(domain.SourceTracks, p.Tracks.SearchTracks, notifier),
		videos: NewSource(domain.SourceVideos, p.Videos.SearchVideos, notifier),
		books:  NewSource(domain.SourceBooks, p.Books.SearchBooks, notifier),
		stream: p.Tracks.StreamURL,
		batch:  domain.NewRecommendationBatch(),
	}
}

// Refresh classifies mood, queries all three sources concurrently and
// replaces each section with its result. It blocks until every source has
// settled and returns the batch as it stands afterwards.
//
// A refresh that is overtaken by a newer one neither writes its sections
// nor clears Loading.
func (o *Orchestrator) Refresh(ctx context.Context, mood int) domain.RecommendationBatch {
	return o.Run(ctx, o.Begin(mood), mood)
}

// Begin claims a new generation for mood and marks the batch as loading.
// Any earlier generation still pending or in flight becomes stale. The
// returned generation is passed to Run, or to Abandon if it never runs.
func (o *Orchestrator) Begin(mood int) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.generation++
	o.lastMood, o.hasMood = mood, true
	o.batch.Loading = true
	o.batch.Mood = mood
	o.batch.Query = domain.Classify(mood)
	o.batch.Generation = o.generation
	return o.generation
}

// Run fetches the sections for a generation claimed by Begin. A generation
// that is already stale when Run starts is skipped without querying any
// source.
func (o *Orchestrator) Run(ctx context.Context, gen uint64, mood int) domain.RecommendationBatch {
	q := domain.Classify(mood)
	log := logging.Ctx(ctx).With().Uint64("generation", gen).Int("mood", mood).Logger()

	o.mu.Lock()
	if gen != o.generation {
		latest := o.generation
		out := o.batch.Clone()
		o.mu.Unlock()
		log.Debug().Uint64("latest", latest).Msg("refresh skipped, superseded before start")
		return out
	}
	o.shown = shownState{mood: mood, query: q, generation: gen}
	o.mu.Unlock()

	log.Debug().Str("band", domain.BandFor(mood).String()).Msg("refresh started")

	var g errgroup.Group
	g.Go(func() error {
		tracks := o.tracks.Fetch(ctx, q.MusicQuery)
		o.apply(gen, domain.SourceTracks, func(b *domain.RecommendationBatch) { b.Tracks = tracks })
		return nil
	})
	g.Go(func() error {
		videos := o.videos.Fetch(ctx, q.PodcastQuery)
		o.apply(gen, domain.SourceVideos, func(b *domain.RecommendationBatch) { b.Videos = videos })
		return nil
	})
	g.Go(func() error {
		books := o.books.Fetch(ctx, q.BookQuery)
		o.apply(gen, domain.SourceBooks, func(b *domain.RecommendationBatch) { b.Books = books })
		return nil
	})
	_ = g.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen == o.generation {
		o.batch.Loading = false
		log.Debug().
			Int("tracks", len(o.batch.Tracks)).
			Int("videos", len(o.batch.Videos)).
			Int("books", len(o.batch.Books)).
			Msg("refresh settled")
	} else {
		log.Debug().Uint64("latest", o.generation).Msg("refresh superseded")
	}
	return o.batch.Clone()
}

// Abandon releases a generation that will never run. If it is still the
// latest, Loading is cleared and the batch header goes back to the mood
// whose sections are on display.
func (o *Orchestrator) Abandon(gen uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.generation {
		return
	}
	o.batch.Loading = false
	o.batch.Mood = o.shown.mood
	o.batch.Query = o.shown.query
	o.batch.Generation = o.shown.generation
}

// RefreshLast re-runs the last refreshed mood, or DefaultMood if there was none.
func (o *Orchestrator) RefreshLast(ctx context.Context) domain.RecommendationBatch {
	mood, _ := o.LastMood()
	return o.Refresh(ctx, mood)
}

func (o *Orchestrator) apply(gen uint64, src domain.Source, set func(*domain.RecommendationBatch)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.generation {
		metrics.StaleResults.WithLabelValues(string(src)).Inc()
		return
	}
	set(&o.batch)
}

// Batch returns a snapshot of the current batch.
func (o *Orchestrator) Batch() domain.RecommendationBatch {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.batch.Clone()
}

// LastMood reports the mood of the most recent refresh. ok is false before
// the first refresh, in which case DefaultMood is returned.
func (o *Orchestrator) LastMood() (mood int, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.hasMood {
		return domain.DefaultMood, false
	}
	return o.lastMood, true
}

// StreamURL resolves the playable URL of a track.
func (o *Orchestrator) StreamURL(trackID string) string {
	return o.stream(trackID)
}
