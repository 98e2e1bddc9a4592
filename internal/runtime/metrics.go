package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the run loop.
type Metrics struct {
	EventsTotal    *prometheus.CounterVec
	EffectsTotal   *prometheus.CounterVec
	UpdateDuration prometheus.Histogram
	ActiveWorkout  prometheus.Gauge
}

// NewMetrics registers the runtime metrics with the given registerer.
// Pass prometheus.DefaultRegisterer in production; tests use their own
// registry to stay isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "repcore",
			Name:      "events_total",
			Help:      "Events reduced by the core, by kind.",
		}, []string{"kind"}),
		EffectsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "repcore",
			Name:      "effects_total",
			Help:      "Effects executed by the runtime, by kind.",
		}, []string{"kind"}),
		UpdateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "repcore",
			Name:      "update_duration_seconds",
			Help:      "Time spent reducing a single event.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 6),
		}),
		ActiveWorkout: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "repcore",
			Name:      "active_workout",
			Help:      "Whether a workout session is currently in progress.",
		}),
	}
}
