package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

type Job func(context.Context) error

// DefaultParser accepts five or six fields and descriptors like "@every 30s".
var DefaultParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notive_scheduler_runs_total",
		Help: "Scheduled job executions by job name and outcome.",
	}, []string{"job", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notive_scheduler_run_duration_seconds",
		Help:    "Duration of scheduled job executions.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
)

// Result describes the latest finished run.
type Result struct {
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

// Scheduler fires one named job on a cron expression. Ticks that land while
// the job is still running are dropped.
type Scheduler struct {
	name       string
	expression string
	job        Job
	timeout    time.Duration
	runOnStart bool
	logger     *slog.Logger
	engine     *cron.Cron

	busy    atomic.Bool
	last    atomic.Pointer[Result]
	pending sync.WaitGroup

	mu      sync.Mutex
	started bool
}

type Option func(*Scheduler)

// WithCron swaps the cron engine, mostly for tests.
func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.engine = c
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithJobTimeout bounds every run of the job.
func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func WithName(name string) Option {
	return func(s *Scheduler) {
		if name != "" {
			s.name = name
		}
	}
}

// WithRunOnStart fires the job once as soon as the scheduler starts.
func WithRunOnStart() Option {
	return func(s *Scheduler) {
		s.runOnStart = true
	}
}

func New(expression string, job Job, opts ...Option) (*Scheduler, error) {
	switch {
	case expression == "":
		return nil, errors.New("scheduler: cron expression cannot be empty")
	case job == nil:
		return nil, errors.New("scheduler: job cannot be nil")
	}

	if _, err := DefaultParser.Parse(expression); err != nil {
		return nil, fmt.Errorf("scheduler: invalid cron expression %q: %w", expression, err)
	}

	s := &Scheduler{
		name:       "job",
		expression: expression,
		job:        job,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.engine == nil {
		s.engine = cron.New(cron.WithParser(DefaultParser))
	}

	return s, nil
}

func (s *Scheduler) Name() string {
	return s.name
}

// LastResult reports the most recent finished run, if any.
func (s *Scheduler) LastResult() (Result, bool) {
	if r := s.last.Load(); r != nil {
		return *r, true
	}

	return Result{}, false
}

// Start registers the job with the cron engine. Cancelling ctx stops the
// scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler: nil scheduler")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("scheduler: %s already started", s.name)
	}

	if _, err := s.engine.AddFunc(s.expression, func() { s.tick(ctx) }); err != nil {
		return fmt.Errorf("scheduler: schedule %s: %w", s.name, err)
	}

	s.engine.Start()
	s.started = true

	s.logger.Info("scheduler started", "job", s.name, "expression", s.expression)

	if s.runOnStart {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			s.tick(ctx)
		}()
	}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
	}

	return nil
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.busy.CompareAndSwap(false, true) {
		runsTotal.WithLabelValues(s.name, "skipped").Inc()
		s.logger.Warn("scheduled job still running, skipping tick", "job", s.name)

		return
	}
	defer s.busy.Store(false)

	result := Result{StartedAt: time.Now()}
	result.Err = s.Run(ctx)
	result.Duration = time.Since(result.StartedAt)

	s.last.Store(&result)
	runDuration.WithLabelValues(s.name).Observe(result.Duration.Seconds())

	if result.Err != nil {
		runsTotal.WithLabelValues(s.name, "error").Inc()
		s.logger.Error("scheduled job failed", "job", s.name, "error", result.Err)

		return
	}

	runsTotal.WithLabelValues(s.name, "ok").Inc()
	s.logger.Debug("scheduled job finished", "job", s.name, "duration", result.Duration)
}

// Stop halts the engine and waits for a running job to return.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()

		return
	}

	s.started = false
	done := s.engine.Stop()
	s.mu.Unlock()

	<-done.Done()
	s.pending.Wait()
}

// Run executes the job now, outside the schedule.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler: nil scheduler")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.job(ctx)
}
