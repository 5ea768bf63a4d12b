package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noop(context.Context) error {
	return nil
}

func TestNewValidatesInput(t *testing.T) {
	testCases := []struct {
		name       string
		expression string
		job        Job
	}{
		{name: "empty expression", expression: "", job: noop},
		{name: "nil job", expression: "@daily", job: nil},
		{name: "invalid expression", expression: "every night", job: noop},
		{name: "too many fields", expression: "0 0 0 * * * *", job: noop},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.expression, tc.job); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewAppliesOptions(t *testing.T) {
	s, err := New("*/10 * * * * *", noop, WithName("cache-warmer"), WithJobTimeout(time.Second), WithRunOnStart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Name() != "cache-warmer" || s.timeout != time.Second || !s.runOnStart {
		t.Fatalf("options not applied: %+v", s)
	}

	if _, ok := s.LastResult(); ok {
		t.Fatalf("expected no result before the first run")
	}
}

func TestRunAppliesTimeoutAndPropagatesErrors(t *testing.T) {
	boom := errors.New("notion unavailable")
	var hadDeadline bool

	s, err := New("@hourly", func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()

		return boom
	}, WithJobTimeout(time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Run(nil); !errors.Is(err, boom) {
		t.Fatalf("expected job error, got %v", err)
	}

	if !hadDeadline {
		t.Fatalf("expected run with a deadline")
	}
}

func TestStartRunsOnStartAndRecordsResult(t *testing.T) {
	var calls atomic.Int32

	s, err := New("@daily", func(context.Context) error {
		calls.Add(1)

		return nil
	}, WithRunOnStart(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	s.Stop()

	if calls.Load() != 1 {
		t.Fatalf("expected one warm-up run, got %d", calls.Load())
	}

	result, ok := s.LastResult()
	if !ok || result.Err != nil || result.StartedAt.IsZero() {
		t.Fatalf("unexpected result %+v %v", result, ok)
	}
}

func TestStartFiresOnSchedule(t *testing.T) {
	fired := make(chan struct{}, 1)

	s, err := New("@every 1s", func(context.Context) error {
		select {
		case fired <- struct{}{}:
		default:
		}

		return nil
	}, WithCron(cron.New(cron.WithParser(DefaultParser))), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatalf("expected job to run")
	}

	s.Stop()
}

func TestStartTwiceFails(t *testing.T) {
	s, err := New("@daily", noop, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Start(nil); err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	t.Cleanup(s.Stop)

	if err := s.Start(context.Background()); err == nil {
		t.Fatalf("expected error when starting twice")
	}
}

func TestCancelledContextStopsScheduler(t *testing.T) {
	s, err := New("@daily", noop, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := s.Start(ctx); err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for {
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()

		if !started {
			return
		}

		if time.Now().After(deadline) {
			t.Fatalf("expected scheduler to stop after cancel")
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func TestTickSkipsOverlappingRuns(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	s, err := New("@daily", func(context.Context) error {
		calls.Add(1)
		close(entered)
		<-release

		return errors.New("slow failure")
	}, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		s.tick(context.Background())
		close(done)
	}()

	<-entered
	s.tick(context.Background())
	close(release)
	<-done

	if calls.Load() != 1 {
		t.Fatalf("expected overlapping tick to be skipped, job ran %d times", calls.Load())
	}

	if result, ok := s.LastResult(); !ok || result.Err == nil {
		t.Fatalf("expected failed result, got %+v", result)
	}
}
