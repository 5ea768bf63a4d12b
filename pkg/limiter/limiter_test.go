package limiter

import (
	"sync"
	"testing"
	"time"
)

func TestMemoryLimiter_BasicFlow(t *testing.T) {
	lim := NewMemoryLimiter(time.Minute, 3)
	base := time.Unix(1_700_000_000, 0)
	lim.now = func() time.Time { return base }
	key := "1.2.3.4"

	for i, want := range []int{2, 1, 0} {
		ok, remaining := lim.Allow(key)
		if !ok || remaining != want {
			t.Fatalf("hit %d: expected allowed with %d remaining, got %v %d", i, want, ok, remaining)
		}
	}

	if !lim.TooMany(key) {
		t.Fatalf("should be limited after reaching threshold")
	}

	if ok, _ := lim.Allow(key); ok {
		t.Fatalf("fourth hit should be refused")
	}

	if ok, _ := lim.Allow("5.6.7.8"); !ok {
		t.Fatalf("other keys are limited independently")
	}

	lim.now = func() time.Time { return base.Add(61 * time.Second) }

	if lim.TooMany(key) {
		t.Fatalf("should not be limited after window passes")
	}
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	lim := NewMemoryLimiter(time.Second, 5)
	base := time.Unix(1_700_000_000, 0)
	lim.now = func() time.Time { return base }

	lim.Allow("a")
	lim.Allow("b")

	lim.now = func() time.Time { return base.Add(2 * time.Second) }
	lim.Allow("b")

	if removed := lim.Sweep(); removed != 1 {
		t.Fatalf("expected one stale key removed, got %d", removed)
	}
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	lim := NewMemoryLimiter(time.Minute, 50)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if ok, _ := lim.Allow("same"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowed != 50 {
		t.Fatalf("expected exactly 50 allowed hits, got %d", allowed)
	}
}
