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

package clock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSince(t *testing.T) {
	assert.Equal(t, time.Duration(0), Since(100, 100))
	assert.Equal(t, 1500*time.Millisecond, Since(2500, 1000))
}

func TestSinceAcrossRollover(t *testing.T) {
	last := Ticks(math.MaxUint32 - 499)
	now := Ticks(1500)
	assert.Equal(t, 2*time.Second, Since(now, last))

	assert.Equal(t, time.Millisecond, Since(0, math.MaxUint32))
}

func TestManualClock(t *testing.T) {
	c := NewManual(10)
	assert.Equal(t, Ticks(10), c.Now())

	assert.Equal(t, Ticks(2010), c.Advance(2*time.Second))
	assert.Equal(t, Ticks(2010), c.Now())

	// sub-millisecond steps are dropped, like a millis() counter
	c.Advance(900 * time.Microsecond)
	assert.Equal(t, Ticks(2010), c.Now())

	c.Set(7)
	assert.Equal(t, Ticks(7), c.Now())
}

func TestManualClockWraps(t *testing.T) {
	c := NewManual(math.MaxUint32 - 999)
	before := c.Now()
	after := c.Advance(3 * time.Second)
	assert.Equal(t, Ticks(2000), after)
	assert.Equal(t, 3*time.Second, Since(after, before))
}

func TestFunc(t *testing.T) {
	var c Clock = Func(func() Ticks { return 42 })
	assert.Equal(t, Ticks(42), c.Now())
}

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonic()
	v1 := c.Now()
	time.Sleep(20 * time.Millisecond)
	v2 := c.Now()
	assert.True(t, Since(v2, v1) >= 20*time.Millisecond)
}
