package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	sampleIntervalHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "expsmooth",
			Subsystem: "filter",
			Name:      "sample_interval_seconds",
			Help:      "Bucketed histogram of the time between two samples.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.0, 24),
		}, []string{"name"})
)

// ObserveSampleInterval observe the time elapsed since the previous sample
func ObserveSampleInterval(name string, elapsed time.Duration) {
	sampleIntervalHistogram.WithLabelValues(name).Observe(elapsed.Seconds())
}
