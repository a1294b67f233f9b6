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

package metric

import (
	"github.com/matrixorigin/expsmooth/components/movingaverage"
)

type observer struct{}

// NewObserver returns a movingaverage.Observer that exports filter state to
// the prometheus collectors of this package.
func NewObserver() movingaverage.Observer {
	return observer{}
}

func (observer) Sampled(event movingaverage.SampleEvent) {
	SetFilterSample(event.Name, event.Sample)
	SetFilterValue(event.Name, event.Value)
	if event.Baseline {
		IncBaselineSampleCount(event.Name)
		return
	}

	IncBlendSampleCount(event.Name)
	ObserveSampleInterval(event.Name, event.Elapsed)
}

func (observer) Reset(name string) {
	IncResetCount(name)
}
