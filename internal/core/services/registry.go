package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ewilliams-labs/moodwell/internal/logging"
	"github.com/ewilliams-labs/moodwell/internal/metrics"
)

// SessionRegistry creates sessions on first use. Sessions not requested
// for longer than SessionDeps.IdleTimeout are dropped by Sweep.
type SessionRegistry struct {
	deps SessionDeps
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*registryEntry
}

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

func NewSessionRegistry(deps SessionDeps) *SessionRegistry {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &SessionRegistry{deps: deps, now: now, sessions: make(map[string]*registryEntry)}
}

// Get returns the session for userID. A new session performs its initial
// load before Get returns (or before its job is queued, when async).
func (r *SessionRegistry) Get(ctx context.Context, userID string) *Session {
	r.mu.Lock()
	if e, ok := r.sessions[userID]; ok {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.session
	}
	s := NewSession(userID, r.deps)
	r.sessions[userID] = &registryEntry{session: s, lastSeen: r.now()}
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	s.Load(ctx)
	return s
}

// Lookup returns an existing session without creating one.
func (r *SessionRegistry) Lookup(userID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[userID]
	if !ok {
		return nil, false
	}
	return e.session, true
}

// Sessions returns every active session ordered by user ID.
func (r *SessionRegistry) Sessions() []*Session {
	r.mu.Lock()
	out := make([]*Session, 0, len(r.sessions))
	for _, e := range r.sessions {
		out = append(out, e.session)
	}
	r.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].userID < out[j].userID })
	return out
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the idle timeout and returns
// how many it removed. A queued job for an evicted session still runs
// against the detached session and is then discarded with it.
func (r *SessionRegistry) Sweep() int {
	ttl := r.deps.IdleTimeout
	if ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	var evicted []string
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if len(evicted) > 0 {
		metrics.ActiveSessions.Set(float64(n))
		sort.Strings(evicted)
		log := logging.With("session_registry")
		log.Info().
			Strs("user_ids", evicted).
			Int("remaining", n).
			Msg("evicted idle sessions")
	}
	return len(evicted)
}
