package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAdjust(t *testing.T) {
	assert.Equal(t, Logger(), Adjust(nil))

	logger := zap.NewNop()
	assert.Equal(t, logger, Adjust(logger))
	assert.NotNil(t, Adjust(nil, zap.AddCallerSkip(1)))
}

func TestUseLogger(t *testing.T) {
	old := Logger()
	defer UseLogger(old)

	core, logs := observer.New(zapcore.DebugLevel)
	UseLogger(zap.New(core))
	Adjust(nil).Info("hello", NameField("vbat"), SampleField(3.7), TicksField("now", 12))

	entries := logs.All()
	assert.Equal(t, 1, len(entries))
	ctx := entries[0].ContextMap()
	assert.Equal(t, "vbat", ctx["filter"])
	assert.Equal(t, 3.7, ctx["sample"])
	assert.Equal(t, uint32(12), ctx["now"])
}

func TestGetDefaultZapLoggerWithLevel(t *testing.T) {
	l := GetDefaultZapLoggerWithLevel(zapcore.WarnLevel)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}
