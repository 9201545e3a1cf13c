package suite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sentinel errors reported in Result.Err.
var (
	// ErrNilSolve indicates a Job without a Solve function.
	ErrNilSolve = errors.New("suite: job has no solve function")

	// ErrPanic indicates a Solve call that panicked.
	ErrPanic = errors.New("suite: solve panicked")
)

// Answer holds a puzzle's two answers, formatted by the solver.
type Answer struct {
	Part1, Part2 string
}

// Job is one named solver.
type Job struct {
	Name  string
	Solve func(ctx context.Context) (Answer, error)
}

// Result is the outcome of one Job.
type Result struct {
	Name    string
	Answer  Answer
	Elapsed time.Duration
	Err     error
}

// Runner executes Jobs on a bounded pool.
type Runner struct {
	workers int
	log     *zap.Logger
	reg     prometheus.Registerer
	metrics *metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default is zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRegisterer registers the Runner's metrics with reg. By default they
// are created but not registered.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Runner) { r.reg = reg }
}

// NewRunner validates cfg and builds a Runner.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{workers: cfg.Workers, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	m, err := newMetrics(r.reg)
	if err != nil {
		return nil, fmt.Errorf("suite: register metrics: %w", err)
	}
	r.metrics = m

	return r, nil
}

// Run solves every job, at most cfg.Workers at a time, and returns one
// Result per job in input order. A failing job does not stop the others.
// The returned error combines every failure, each wrapped with its job name.
// Jobs not yet started when ctx is done report ctx.Err().
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	runID := uuid.NewString()
	log := r.log.With(zap.String("run_id", runID))
	log.Info("run started", zap.Int("jobs", len(jobs)), zap.Int("workers", r.workers))
	start := time.Now()

	results := make([]Result, len(jobs))
	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = r.solve(ctx, log, job)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	var err error
	for _, res := range results {
		if res.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", res.Name, res.Err))
		}
	}
	log.Info("run finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("failed", len(multierr.Errors(err))),
	)

	return results, err
}

// solve runs one job and records its duration.
func (r *Runner) solve(ctx context.Context, log *zap.Logger, job Job) (res Result) {
	res.Name = job.Name
	log = log.With(zap.String("job", job.Name))
	if err := ctx.Err(); err != nil {
		res.Err = err
		log.Warn("job skipped", zap.Error(err))
		return res
	}
	if job.Solve == nil {
		res.Err = ErrNilSolve
		r.metrics.failures.WithLabelValues(job.Name).Inc()
		log.Error("job failed", zap.Error(res.Err))
		return res
	}

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
		res.Elapsed = time.Since(start)
		r.metrics.duration.WithLabelValues(job.Name).Observe(res.Elapsed.Seconds())
		if res.Err != nil {
			r.metrics.failures.WithLabelValues(job.Name).Inc()
			log.Error("job failed", zap.Duration("elapsed", res.Elapsed), zap.Error(res.Err))
			return
		}
		log.Info("job solved",
			zap.Duration("elapsed", res.Elapsed),
			zap.String("part1", res.Answer.Part1),
			zap.String("part2", res.Answer.Part2),
		)
	}()

	res.Answer, res.Err = job.Solve(ctx)

	return res
}
