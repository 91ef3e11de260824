// Package worker runs recommendation refreshes in the background.
package worker

import (
	"context"
	"sync"

	"github.com/ewilliams-labs/moodwell/internal/core/services"
	"github.com/ewilliams-labs/moodwell/internal/logging"
	"github.com/ewilliams-labs/moodwell/internal/metrics"
)

var _ services.Dispatcher = (*Pool)(nil)

// Pool manages background workers for refresh jobs.
type Pool struct {
	workers int
	jobs    chan services.RefreshJob
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool creates a worker pool with the given worker count and queue size.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{workers: workers, jobs: make(chan services.RefreshJob, queueSize)}
}

// Start launches the worker goroutines. Jobs run with ctx, not the context
// of whoever submitted them.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(ctx, id, job)
			}
		}(i)
	}
	log := logging.With("worker")
	log.Info().Int("workers", p.workers).Int("queue", cap(p.jobs)).Msg("worker pool started")
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Submit queues a job without blocking. It returns false when the queue is
// full or the pool has stopped.
func (p *Pool) Submit(job services.RefreshJob) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed || job.Session == nil {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		metrics.DroppedJobs.Inc()
		log := logging.With("worker")
		log.Warn().
			Str("user_id", job.Session.UserID()).
			Str("trigger", string(job.Trigger)).
			Msg("dropping refresh job, queue full")
		return false
	}
}

func (p *Pool) processJob(ctx context.Context, id int, job services.RefreshJob) {
	log := logging.With("worker")
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("user_id", job.Session.UserID()).Msg("refresh job panicked")
			job.Session.Orchestrator().Abandon(job.Generation)
		}
	}()

	job.Session.RunJob(ctx, job)
	log.Debug().
		Int("worker", id).
		Str("user_id", job.Session.UserID()).
		Int("mood", job.Mood).
		Uint64("generation", job.Generation).
		Msg("processed refresh job")
}
