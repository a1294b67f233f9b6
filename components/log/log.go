package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	l = GetDefaultZapLoggerWithLevel(zapcore.InfoLevel)
)

// UseLogger sets the logger used by filters created without one
func UseLogger(logger *zap.Logger) {
	l = logger
}

// Logger returns the package level logger
func Logger() *zap.Logger {
	return l
}
