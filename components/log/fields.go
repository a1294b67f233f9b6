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

package log

import (
	"time"

	"github.com/matrixorigin/expsmooth/util/clock"
	"go.uber.org/zap"
)

// NameField returns the filter name field
func NameField(name string) zap.Field {
	return zap.String("filter", name)
}

// TimeConstantField returns zap.DurationField
func TimeConstantField(key string, tau time.Duration) zap.Field {
	return zap.Duration(key, tau)
}

// SampleField returns zap.Float64Field
func SampleField(sample float64) zap.Field {
	return zap.Float64("sample", sample)
}

// ValueField returns zap.Float64Field
func ValueField(value float64) zap.Field {
	return zap.Float64("value", value)
}

// ElapsedField returns zap.DurationField
func ElapsedField(elapsed time.Duration) zap.Field {
	return zap.Duration("elapsed", elapsed)
}

// TicksField returns zap.Uint32Field
func TicksField(key string, ticks clock.Ticks) zap.Field {
	return zap.Uint32(key, uint32(ticks))
}
