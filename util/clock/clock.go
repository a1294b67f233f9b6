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

// Package clock provides millisecond resolution monotonic clock sources.
// Readings are 32-bit unsigned tick counts, the same width as an uptime
// counter on a microcontroller, so they wrap after 2^32 ms (about 49.7 days).
// Since handles the wrap, as long as two readings are less than one full
// period apart.
package clock

import (
	"sync/atomic"
	"time"
)

// Ticks is a monotonic clock reading in milliseconds.
type Ticks uint32

// Clock is a monotonic millisecond clock.
type Clock interface {
	// Now returns the current reading.
	Now() Ticks
}

// Func adapts a plain function to the Clock interface.
type Func func() Ticks

// Now implements Clock.
func (f Func) Now() Ticks {
	return f()
}

type monotonic struct {
	start time.Time
}

// NewMonotonic returns a Clock that counts milliseconds since it was created.
// It uses the monotonic reading carried by time.Time, so wall clock changes do
// not affect it.
func NewMonotonic() Clock {
	return &monotonic{start: time.Now()}
}

func (c *monotonic) Now() Ticks {
	return Ticks(uint32(time.Since(c.start).Milliseconds()))
}

// Since returns the time elapsed from last to now. The subtraction is done in
// 32-bit unsigned arithmetic, so a counter that wrapped between the two
// readings still yields the real elapsed time.
func Since(now, last Ticks) time.Duration {
	return time.Duration(now-last) * time.Millisecond
}

// Manual is a Clock whose reading only changes when told to.
type Manual struct {
	now uint32
}

// NewManual returns a manual clock reading start.
func NewManual(start Ticks) *Manual {
	return &Manual{now: uint32(start)}
}

// Now implements Clock.
func (c *Manual) Now() Ticks {
	return Ticks(atomic.LoadUint32(&c.now))
}

// Set moves the clock to the given reading.
func (c *Manual) Set(now Ticks) {
	atomic.StoreUint32(&c.now, uint32(now))
}

// Advance moves the clock forward by d, truncated to whole milliseconds.
// The reading wraps like the hardware counter it stands in for.
func (c *Manual) Advance(d time.Duration) Ticks {
	return Ticks(atomic.AddUint32(&c.now, uint32(d.Milliseconds())))
}
