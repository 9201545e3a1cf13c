package suite_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/puzzlekit/suite"
)

func newRunner(t *testing.T, workers int, opts ...suite.Option) *suite.Runner {
	t.Helper()
	cfg := suite.DefaultConfig()
	cfg.Workers = workers
	r, err := suite.NewRunner(cfg, opts...)
	require.NoError(t, err)
	return r
}

func TestRun_Kernels(t *testing.T) {
	defer goleak.VerifyNone(t)

	reg := prometheus.NewRegistry()
	r := newRunner(t, 3, suite.WithRegisterer(reg))

	results, err := r.Run(context.Background(), suite.Kernels())
	require.NoError(t, err)

	got := make(map[string]suite.Answer, len(results))
	names := make([]string, 0, len(results))
	for _, res := range results {
		require.NoError(t, res.Err, res.Name)
		got[res.Name] = res.Answer
		names = append(names, res.Name)
	}
	assert.Equal(t, []string{"basins", "origami", "flood", "polymer", "dijkstra", "packet", "caves"}, names)

	want := map[string]suite.Answer{
		"basins":   {Part1: "15", Part2: "1134"},
		"origami":  {Part1: "17", Part2: "\n#####\n#...#\n#...#\n#...#\n#####"},
		"flood":    {Part1: "1656", Part2: "195"},
		"polymer":  {Part1: "1588", Part2: "2188189693529"},
		"dijkstra": {Part1: "40", Part2: "315"},
		"packet":   {Part1: "31", Part2: "1"},
		"caves":    {Part1: "226", Part2: "3509"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}

	// one histogram series per job
	n, err := testutil.GatherAndCount(reg, "puzzlekit_suite_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	n, err = testutil.GatherAndCount(reg, "puzzlekit_suite_failures_total")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRun_CollectsEveryFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	errA := errors.New("a broke")
	jobs := []suite.Job{
		{Name: "ok", Solve: func(context.Context) (suite.Answer, error) {
			return suite.Answer{Part1: "1", Part2: "2"}, nil
		}},
		{Name: "fails", Solve: func(context.Context) (suite.Answer, error) { return suite.Answer{}, errA }},
		{Name: "nil"},
		{Name: "panics", Solve: func(context.Context) (suite.Answer, error) { panic("boom") }},
	}
	reg := prometheus.NewRegistry()
	results, err := newRunner(t, 2, suite.WithRegisterer(reg)).Run(context.Background(), jobs)

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, suite.ErrNilSolve)
	assert.ErrorIs(t, err, suite.ErrPanic)
	assert.Contains(t, err.Error(), "fails: a broke")

	require.Len(t, results, 4)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, suite.Answer{Part1: "1", Part2: "2"}, results[0].Answer)
	assert.ErrorIs(t, results[1].Err, errA)
	assert.ErrorIs(t, results[2].Err, suite.ErrNilSolve)
	assert.ErrorIs(t, results[3].Err, suite.ErrPanic)
	for i, res := range results {
		assert.Equal(t, jobs[i].Name, res.Name)
	}
	n, err := testutil.GatherAndCount(reg, "puzzlekit_suite_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	defer goleak.VerifyNone(t)

	const workers = 2
	var active, peak atomic.Int32
	job := func(context.Context) (suite.Answer, error) {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return suite.Answer{}, nil
	}
	jobs := make([]suite.Job, 8)
	for i := range jobs {
		jobs[i] = suite.Job{Name: "sleep", Solve: job}
	}

	_, err := newRunner(t, workers).Run(context.Background(), jobs)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestRun_CanceledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	jobs := []suite.Job{{Name: "never", Solve: func(context.Context) (suite.Answer, error) {
		called.Store(true)
		return suite.Answer{}, nil
	}}}
	results, err := newRunner(t, 1).Run(ctx, jobs)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.False(t, called.Load())
}

func TestRun_LogsWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRunner(t, 1, suite.WithLogger(zap.New(core)))

	jobs := []suite.Job{{Name: "one", Solve: func(context.Context) (suite.Answer, error) {
		return suite.Answer{Part1: "x"}, nil
	}}}
	_, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "run started", entries[0].Message)
	assert.Equal(t, "job solved", entries[1].Message)
	assert.Equal(t, "run finished", entries[2].Message)

	runID := entries[0].ContextMap()["run_id"]
	require.NotEmpty(t, runID)
	for _, e := range entries {
		assert.Equal(t, runID, e.ContextMap()["run_id"])
	}
	assert.Equal(t, "one", entries[1].ContextMap()["job"])
	assert.Equal(t, "x", entries[1].ContextMap()["part1"])
}

func TestNewRunner_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	newRunner(t, 1, suite.WithRegisterer(reg))
	newRunner(t, 1, suite.WithRegisterer(reg))

	_, err := suite.NewRunner(suite.Config{Workers: 0})
	assert.ErrorIs(t, err, suite.ErrBadConfig)
}
