package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notive",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Response cache lookups by outcome.",
	}, []string{"result"})

	loads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notive",
		Subsystem: "cache",
		Name:      "loads_total",
		Help:      "Loader invocations by outcome.",
	}, []string{"result"})
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is a process-local key/value store with lazy TTL expiry and
// in-flight de-duplication of loads. It is NOT shared across processes.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Reset drops every stored value. Loads already in flight still complete
// and may store their result afterwards.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entry)
}

// Delete removes key if present.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// Len reports how many entries are stored, expired ones included until
// they are read.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// lookup returns a fresh value for key and prunes it when expired.
func (m *Memory) lookup(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.entries[key]
	if !ok {
		return nil, false
	}

	if !m.now().Before(item.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}

	return item.value, true
}

func (m *Memory) store(key string, value any, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
}

// GetOrSet returns the fresh value stored under key, or runs loader once for
// every concurrent caller of the same key and shares its outcome. Successful
// results are kept for ttl; failures and ttl <= 0 results are never stored.
//
// The loader runs detached from the caller's cancellation since its result
// is shared with other waiters.
func GetOrSet[T any](ctx context.Context, m *Memory, key string, ttl time.Duration, loader func(context.Context) (T, error)) (T, error) {
	var zero T

	if m == nil {
		return loader(ctx)
	}

	if value, ok := m.lookup(key); ok {
		lookups.WithLabelValues("hit").Inc()
		return cast[T](key, value)
	}

	lookups.WithLabelValues("miss").Inc()

	detached := context.WithoutCancel(ctx)

	result, err, _ := m.group.Do(key, func() (any, error) {
		// A load for this key may have settled between lookup and Do.
		if value, ok := m.lookup(key); ok {
			return value, nil
		}

		value, err := loader(detached)
		if err != nil {
			loads.WithLabelValues("error").Inc()
			return nil, err
		}

		loads.WithLabelValues("ok").Inc()

		if ttl > 0 {
			m.store(key, value, ttl)
		}

		return value, nil
	})

	if err != nil {
		return zero, err
	}

	return cast[T](key, result)
}

func cast[T any](key string, value any) (T, error) {
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: key %q holds %T", key, value)
	}

	return typed, nil
}
