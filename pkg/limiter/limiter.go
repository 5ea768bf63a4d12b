package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is an in-memory sliding-window limiter. It records hit
// timestamps per arbitrary key (client ip, route) and refuses new hits once
// the window already holds the configured maximum.
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	maxHits int
	now     func() time.Time
}

func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// Allow records a hit for key when the window has room and reports how many
// hits remain. A refused hit is not recorded.
func (r *MemoryLimiter) Allow(key string) (bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := r.prune(key)
	if len(pruned) >= r.maxHits {
		return false, 0
	}

	r.history[key] = append(pruned, r.now())

	return true, r.maxHits - len(pruned) - 1
}

// TooMany reports whether key has reached the maximum within the window.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.prune(key)) >= r.maxHits
}

// Sweep drops keys whose hits all fell outside the window.
func (r *MemoryLimiter) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key := range r.history {
		if len(r.prune(key)) == 0 {
			delete(r.history, key)
			removed++
		}
	}

	return removed
}

func (r *MemoryLimiter) prune(key string) []time.Time {
	now := r.now()
	slice := r.history[key]

	pruned := slice[:0]
	for _, t := range slice {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	r.history[key] = pruned

	return pruned
}
