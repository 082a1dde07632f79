package server

import (
	"sync"
	"time"
)

// rateLimiter is a fixed-window in-memory limiter keyed by caller.
type rateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string]*windowCounter
}

type windowCounter struct {
	count   int
	resetAt time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string]*windowCounter),
	}
}

func (r *rateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	counter, ok := r.hits[key]
	if !ok || now.After(counter.resetAt) {
		r.hits[key] = &windowCounter{count: 1, resetAt: now.Add(r.window)}
		return true
	}
	if counter.count >= r.limit {
		return false
	}
	counter.count++
	return true
}
