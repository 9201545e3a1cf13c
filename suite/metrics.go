package suite

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names exported by a Runner.
const (
	metricsNamespace = "puzzlekit"
	metricsSubsystem = "suite"
)

// metrics holds the collectors a Runner reports to.
type metrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// newMetrics creates the collectors and registers them with reg. Collectors
// already registered by an earlier Runner on the same registry are reused.
// A nil reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time of one job's Solve call.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"job"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "failures_total",
			Help:      "Jobs whose Solve returned an error or panicked.",
		}, []string{"job"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.failures, err = register(reg, m.failures); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}
