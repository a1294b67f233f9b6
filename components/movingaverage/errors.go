package movingaverage

import (
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidTimeConstant time constant is zero or negative
	ErrInvalidTimeConstant = errors.New("smoothing: time constant must be greater than zero")
	// ErrNotInitialized no sample since construction or the last reset
	ErrNotInitialized = errors.New("smoothing: no sample since construction or reset")
	// ErrInvalidConfig invalid filter config
	ErrInvalidConfig = errors.New("smoothing: invalid config")
)

func checkTimeConstant(tau time.Duration) error {
	if tau <= 0 {
		return errors.Wrapf(ErrInvalidTimeConstant, "got %s", tau)
	}
	return nil
}
