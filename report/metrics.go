// Package report - Prometheus metrics.
package report

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	methodLabel  = "method"
	modeLabel    = "mode"
	outcomeLabel = "outcome"
	matchLabel   = "match"
)

// Metrics records solve timings and outcomes on a private registry, so
// several batches in one process never collide on global collectors.
// All methods are safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
	matches  *prometheus.CounterVec
	relError *prometheus.HistogramVec
}

// NewMetrics builds and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "knapsack_solve_duration_seconds",
			Help:    "Time spent solving one instance.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{methodLabel, modeLabel}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "knapsack_instances_total",
			Help: "Solved instances by outcome (selected, unreachable, none).",
		}, []string{methodLabel, modeLabel, outcomeLabel}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "knapsack_reference_comparisons_total",
			Help: "Exact results compared with a reference solution.",
		}, []string{methodLabel, matchLabel}),
		relError: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "knapsack_relative_error",
			Help:    "Relative error of approximate results against a reference.",
			Buckets: []float64{0, 0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5},
		}, []string{methodLabel}),
	}
	m.registry.MustRegister(m.duration, m.outcomes, m.matches, m.relError)

	return m
}

// Registry exposes the private registry, for example to serve it over HTTP.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one result of method.
func (m *Metrics) Observe(method string, r Record) {
	mode := r.Mode.String()
	m.duration.WithLabelValues(method, mode).Observe(r.Elapsed.Seconds())
	m.outcomes.WithLabelValues(method, mode, r.Outcome()).Inc()

	c := r.Comparison
	switch {
	case c == nil:
	case c.Exact:
		m.matches.WithLabelValues(method, c.Match.String()).Inc()
	default:
		m.relError.WithLabelValues(method).Observe(c.RelativeError)
	}
}

// WriteText writes every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return errors.Wrapf(err, "encode %s", mf.GetName())
		}
	}

	return nil
}
