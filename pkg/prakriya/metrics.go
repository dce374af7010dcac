package prakriya

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times engine calls, labelled by derivation kind
// (tinanta or krdanta).
type Metrics struct {
	derivations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the derivation metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		derivations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rupavali_derivations_total",
				Help: "Total number of engine derivation calls",
			},
			[]string{"kind"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rupavali_derivation_failures_total",
				Help: "Engine derivation calls that returned an error",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "rupavali_derivation_duration_seconds",
				Help: "Duration of engine derivation calls",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.derivations, m.failures, m.duration)
	return m
}

func (m *Metrics) observe(kind string, elapsed time.Duration, err error) {
	m.derivations.WithLabelValues(kind).Inc()
	if err != nil {
		m.failures.WithLabelValues(kind).Inc()
	}
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
