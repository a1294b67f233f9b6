package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	valueGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "expsmooth",
			Subsystem: "filter",
			Name:      "value",
			Help:      "Current smoothed value.",
		}, []string{"name"})

	sampleGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "expsmooth",
			Subsystem: "filter",
			Name:      "sample",
			Help:      "Last raw sample.",
		}, []string{"name"})
)

// SetFilterValue set the smoothed value of the filter
func SetFilterValue(name string, value float64) {
	valueGauge.WithLabelValues(name).Set(value)
}

// SetFilterSample set the last raw sample of the filter
func SetFilterSample(name string, sample float64) {
	sampleGauge.WithLabelValues(name).Set(sample)
}
