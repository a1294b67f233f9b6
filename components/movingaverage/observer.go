package movingaverage

//go:generate mockgen -destination=../../mock/mockobserver/mock_observer.go -package=mockobserver github.com/matrixorigin/expsmooth/components/movingaverage Observer

import (
	"time"
)

// SampleEvent describes one ingested sample.
type SampleEvent struct {
	Name   string
	Sample float64
	// Value is the smoothed value after the sample was applied
	Value float64
	// Elapsed since the previous sample, zero for a baseline
	Elapsed time.Duration
	// Baseline is true when the sample was taken as-is because the filter had
	// no history
	Baseline bool
}

// Observer is notified of filter state changes. Callbacks run synchronously on
// the goroutine that drives the filter.
type Observer interface {
	// Sampled is called after a sample is ingested.
	Sampled(event SampleEvent)
	// Reset is called after the filter discards its history.
	Reset(name string)
}
