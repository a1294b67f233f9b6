// Copyright 2021 MatrixOrigin.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package movingaverage

import (
	"math"
	"time"

	"github.com/matrixorigin/expsmooth/components/log"
	"github.com/matrixorigin/expsmooth/util/clock"
	"go.uber.org/zap"
)

// SmoothedValue is an exponential moving average over samples taken at
// irregular intervals. Instead of a fixed smoothing factor, every sample is
// blended in with a weight derived from the time elapsed since the previous
// one, so the response does not depend on how often the caller samples.
//
// The time constant tau is the time it takes the filtered response to a step
// input to reach 1-1/e (about 63.2%) of the step.
// References: https://en.wikipedia.org/wiki/Exponential_smoothing
//
// SmoothedValue is not safe for concurrent use. Give every signal its own
// filter or serialize access externally.
type SmoothedValue struct {
	opts options

	tau         time.Duration
	value       float64
	initialized bool
	last        clock.Ticks
}

// New returns a SmoothedValue with time constant tau. The filter holds no
// value until the first sample.
func New(tau time.Duration, opts ...Option) (*SmoothedValue, error) {
	if err := checkTimeConstant(tau); err != nil {
		return nil, err
	}

	sv := &SmoothedValue{tau: tau}
	for _, opt := range opts {
		opt(&sv.opts)
	}
	sv.opts.adjust()
	return sv, nil
}

// DecayWeight returns the share of the previous smoothed value that survives
// after elapsed: exp(-elapsed/tau).
func DecayWeight(elapsed, tau time.Duration) float64 {
	return math.Exp(-elapsed.Seconds() / tau.Seconds())
}

// Name returns the filter name
func (sv *SmoothedValue) Name() string {
	return sv.opts.name
}

// TimeConstant returns the time constant used for subsequent samples
func (sv *SmoothedValue) TimeConstant() time.Duration {
	return sv.tau
}

// Initialized returns true if a sample was added since construction or the
// last reset.
func (sv *SmoothedValue) Initialized() bool {
	return sv.initialized
}

// LastSampleTime returns the clock reading of the last sample.
func (sv *SmoothedValue) LastSampleTime() (clock.Ticks, bool) {
	if !sv.initialized {
		return 0, false
	}
	return sv.last, true
}

// Value returns the smoothed value, and false if there is none yet.
func (sv *SmoothedValue) Value() (float64, bool) {
	if !sv.initialized {
		return 0, false
	}
	return sv.value, true
}

// MustValue is like Value but panics if there is no value yet.
func (sv *SmoothedValue) MustValue() float64 {
	v, ok := sv.Value()
	if !ok {
		panic(ErrNotInitialized)
	}
	return v
}

// Reset discards the history, so the next sample is taken unfiltered.
func (sv *SmoothedValue) Reset() {
	sv.initialized = false
	sv.opts.logger.Debug("filter reset")
	if sv.opts.observer != nil {
		sv.opts.observer.Reset(sv.opts.name)
	}
}

// SetTimeConstant changes the time constant for subsequent samples. The
// current value is kept. A rejected time constant leaves the filter unchanged.
func (sv *SmoothedValue) SetTimeConstant(tau time.Duration) error {
	if err := checkTimeConstant(tau); err != nil {
		sv.opts.logger.Warn("reject time constant",
			log.TimeConstantField("tau", tau),
			zap.Error(err))
		return err
	}

	sv.opts.logger.Debug("time constant changed",
		log.TimeConstantField("from", sv.tau),
		log.TimeConstantField("to", tau))
	sv.tau = tau
	return nil
}

// NewSample adds a sample taken now according to the filter clock, and
// returns the new smoothed value.
func (sv *SmoothedValue) NewSample(sample float64) float64 {
	return sv.SampleAt(sample, sv.opts.clock.Now())
}

// SampleAt adds a sample taken at clock reading now, and returns the new
// smoothed value. Readings must not go backwards between samples; a reading
// that did would be taken as a jump forward by almost a full clock period.
func (sv *SmoothedValue) SampleAt(sample float64, now clock.Ticks) float64 {
	if !sv.initialized {
		sv.value = sample
		sv.last = now
		sv.initialized = true
		sv.opts.logger.Debug("filter baseline",
			log.SampleField(sample),
			log.TicksField("now", now))
		sv.notify(sample, 0, true)
		return sv.value
	}

	elapsed := clock.Since(now, sv.last)
	decay := DecayWeight(elapsed, sv.tau)
	sv.value = (1-decay)*sample + decay*sv.value
	sv.last = now
	sv.notify(sample, elapsed, false)
	return sv.value
}

func (sv *SmoothedValue) notify(sample float64, elapsed time.Duration, baseline bool) {
	if sv.opts.observer == nil {
		return
	}

	sv.opts.observer.Sampled(SampleEvent{
		Name:     sv.opts.name,
		Sample:   sample,
		Value:    sv.value,
		Elapsed:  elapsed,
		Baseline: baseline,
	})
}
