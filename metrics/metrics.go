package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/search"
)

// Outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder is a Prometheus-backed search.Recorder. It is safe for concurrent use.
type Recorder struct {
	searches   *prometheus.CounterVec
	expanded   *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
}

// New registers the gridpath collectors on reg (prometheus.DefaultRegisterer
// when nil). Collectors already registered by an earlier New are reused.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_searches_total",
		Help: "FindPath calls by engine and outcome.",
	}, []string{"engine", "outcome"})
	expanded := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_nodes",
		Help:    "Cells closed per FindPath call.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"engine"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Wall time per FindPath call.",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"engine"})
	pathLength := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_path_length",
		Help:    "Cells on found paths, endpoints included.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"engine"})

	var err error
	r := &Recorder{}
	if r.searches, err = register(reg, searches); err != nil {
		return nil, err
	}
	if r.expanded, err = register(reg, expanded); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if r.pathLength, err = register(reg, pathLength); err != nil {
		return nil, err
	}

	return r, nil
}

// register adds c to reg, returning the collector already registered under the
// same descriptor when there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}

	return c, nil
}

// ObserveSearch implements search.Recorder.
func (r *Recorder) ObserveSearch(engine string, res search.Result, err error, elapsed time.Duration) {
	outcome := Outcome(res, err)
	r.searches.WithLabelValues(engine, outcome).Inc()
	if outcome == OutcomeRejected {
		return
	}
	r.expanded.WithLabelValues(engine).Observe(float64(res.Expanded))
	r.duration.WithLabelValues(engine).Observe(elapsed.Seconds())
	if res.Found {
		r.pathLength.WithLabelValues(engine).Observe(float64(len(res.Path)))
	}
}

// Outcome classifies one FindPath call.
func Outcome(res search.Result, err error) string {
	switch {
	case err == nil && res.Found:
		return OutcomeFound
	case err == nil:
		return OutcomeNotFound
	case errors.Is(err, search.ErrNoMap),
		errors.Is(err, search.ErrOutOfBounds),
		errors.Is(err, search.ErrObstacleEndpoint),
		errors.Is(err, search.ErrOptionViolation):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

var _ search.Recorder = (*Recorder)(nil)
