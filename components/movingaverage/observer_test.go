package movingaverage_test

import (
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/matrixorigin/expsmooth/components/movingaverage"
	"github.com/matrixorigin/expsmooth/mock/mockobserver"
	"github.com/matrixorigin/expsmooth/util/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserverCallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := clock.NewManual(0)
	ob := mockobserver.NewMockObserver(ctrl)
	sv, err := movingaverage.New(time.Second,
		movingaverage.WithName("vbat"),
		movingaverage.WithClock(c),
		movingaverage.WithObserver(ob))
	require.NoError(t, err)

	var blend movingaverage.SampleEvent
	gomock.InOrder(
		ob.EXPECT().Sampled(movingaverage.SampleEvent{Name: "vbat", Sample: 3, Value: 3, Baseline: true}),
		ob.EXPECT().Sampled(gomock.Any()).Do(func(e movingaverage.SampleEvent) { blend = e }),
		ob.EXPECT().Reset("vbat"),
		ob.EXPECT().Sampled(movingaverage.SampleEvent{Name: "vbat", Sample: 7, Value: 7, Baseline: true}),
	)

	sv.NewSample(3)
	c.Advance(time.Second)
	v := sv.NewSample(4)
	sv.Reset()
	sv.NewSample(7)

	assert.Equal(t, "vbat", blend.Name)
	assert.Equal(t, 4.0, blend.Sample)
	assert.Equal(t, v, blend.Value)
	assert.Equal(t, time.Second, blend.Elapsed)
	assert.False(t, blend.Baseline)
	assert.InDelta(t, 3*math.Exp(-1)+4*(1-math.Exp(-1)), blend.Value, 1e-9)
}
