package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sampleCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expsmooth",
			Subsystem: "filter",
			Name:      "sample_total",
			Help:      "Total number of samples added.",
		}, []string{"name", "type"})

	resetCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expsmooth",
			Subsystem: "filter",
			Name:      "reset_total",
			Help:      "Total number of filter resets.",
		}, []string{"name"})
)

// IncBaselineSampleCount inc the samples taken as a new baseline
func IncBaselineSampleCount(name string) {
	sampleCounter.WithLabelValues(name, "baseline").Inc()
}

// IncBlendSampleCount inc the samples blended into the history
func IncBlendSampleCount(name string) {
	sampleCounter.WithLabelValues(name, "blend").Inc()
}

// IncResetCount inc the filter resets
func IncResetCount(name string) {
	resetCounter.WithLabelValues(name).Inc()
}
