// SPDX-License-Identifier: MIT
// Package: cliquespec/search
//
// metrics.go — Prometheus instruments for the search loop.

package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the search instruments. A nil *Metrics records nothing.
type Metrics struct {
	trials          *prometheus.CounterVec
	counterexamples prometheus.Counter
	trialSeconds    prometheus.Histogram
	cliques         prometheus.Histogram
}

// NewMetrics registers the search instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliquespec",
			Subsystem: "search",
			Name:      "trials_total",
			Help:      "Trials completed, by status.",
		}, []string{"status"}),
		counterexamples: f.NewCounter(prometheus.CounterOpts{
			Namespace: "cliquespec",
			Subsystem: "search",
			Name:      "counterexamples_total",
			Help:      "Counterexamples found.",
		}),
		trialSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cliquespec",
			Subsystem: "search",
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock duration of one trial.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		cliques: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cliquespec",
			Subsystem: "search",
			Name:      "evaluated_cliques",
			Help:      "Clique count of G1 in evaluated trials.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 14),
		}),
	}
}

func (m *Metrics) observe(o Outcome) {
	if m == nil {
		return
	}
	m.trials.WithLabelValues(o.Status.String()).Inc()
	m.trialSeconds.Observe(o.Duration.Seconds())
	if o.Status != Filtered && o.Cliques1 != nil {
		m.cliques.Observe(float64(o.Cliques1.Len()))
	}
	if o.Status == Counterexample {
		m.counterexamples.Inc()
	}
}
