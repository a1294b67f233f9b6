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
	"github.com/matrixorigin/expsmooth/components/log"
	"github.com/matrixorigin/expsmooth/util/clock"
	"go.uber.org/zap"
)

const defaultName = "default"

// Option SmoothedValue option
type Option func(*options)

type options struct {
	name     string
	logger   *zap.Logger
	clock    clock.Clock
	observer Observer
}

func (opts *options) adjust() {
	if opts.name == "" {
		opts.name = defaultName
	}

	if opts.clock == nil {
		opts.clock = clock.NewMonotonic()
	}

	opts.logger = log.Adjust(opts.logger).Named("smoothing").With(log.NameField(opts.name))
}

// WithName set the name used in logs and observer callbacks
func WithName(name string) Option {
	return func(opts *options) {
		opts.name = name
	}
}

// WithLogger set logger
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithClock set the clock NewSample reads the current time from
func WithClock(c clock.Clock) Option {
	return func(opts *options) {
		opts.clock = c
	}
}

// WithObserver set an observer notified after every sample and reset
func WithObserver(observer Observer) Option {
	return func(opts *options) {
		opts.observer = observer
	}
}
