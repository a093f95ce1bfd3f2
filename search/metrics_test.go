package search

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.observe(Outcome{Status: Filtered})
	m.observe(Outcome{Status: Filtered})
	m.observe(Outcome{Status: Consistent})
	m.observe(Outcome{Status: Counterexample})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.trials.WithLabelValues("filtered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.trials.WithLabelValues("consistent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterexamples))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.observe(Outcome{Status: Counterexample}) })
}
