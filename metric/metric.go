package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(valueGauge)
	prometheus.MustRegister(sampleGauge)

	prometheus.MustRegister(sampleCounter)
	prometheus.MustRegister(resetCounter)

	prometheus.MustRegister(sampleIntervalHistogram)
}
