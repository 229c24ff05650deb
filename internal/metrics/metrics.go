// Package metrics exposes the Prometheus collectors for lovesim.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lovesim"

// Metrics groups the simulation and counter collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	simulations     *prometheus.CounterVec
	relationship    prometheus.Histogram
	counterFailures *prometheus.CounterVec
}

var (
	defaultOnce sync.Once
	shared      *Metrics
)

// Default returns the instance registered with the global registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		shared = MustNewMetrics(prometheus.DefaultRegisterer)
	})
	return shared
}

// MustNewMetrics registers a fresh set of collectors with reg and panics on
// duplicate registration. Tests pass their own prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "simulations_total",
				Help:      "Completed simulations by entry point.",
			},
			[]string{"source"},
		),
		relationship: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "headline_relationship_probability",
				Help:      "Six-month relationship probability of completed simulations, in percent.",
				Buckets:   prometheus.LinearBuckets(10, 10, 9),
			},
		),
		counterFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "counter_failures_total",
				Help:      "Run counter operations that failed and were skipped.",
			},
			[]string{"backend", "op"},
		),
	}
	reg.MustRegister(m.simulations, m.relationship, m.counterFailures)
	return m
}

// ObserveSimulation records one completed simulation.
func (m *Metrics) ObserveSimulation(source string, relationship float64) {
	if m == nil {
		return
	}
	m.simulations.WithLabelValues(source).Inc()
	m.relationship.Observe(relationship)
}

// CounterFailure records a failed counter operation.
func (m *Metrics) CounterFailure(backend, op string) {
	if m == nil {
		return
	}
	m.counterFailures.WithLabelValues(backend, op).Inc()
}
