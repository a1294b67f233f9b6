package movingaverage

import (
	"github.com/cockroachdb/errors"
	"github.com/matrixorigin/expsmooth/util/typeutil"
)

// Config SmoothedValue config
type Config struct {
	Name         string            `toml:"name" json:"name"`
	TimeConstant typeutil.Duration `toml:"time-constant" json:"time-constant"`
}

// Adjust fills in defaults
func (c *Config) Adjust() {
	if c.Name == "" {
		c.Name = defaultName
	}
}

// Validate checks the config
func (c *Config) Validate() error {
	if err := checkTimeConstant(c.TimeConstant.Duration); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrInvalidConfig), "filter %q", c.Name)
	}
	return nil
}

// NewFromConfig creates a SmoothedValue from cfg. Options given here are
// applied after the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*SmoothedValue, error) {
	cfg.Adjust()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New(cfg.TimeConstant.Duration, append([]Option{WithName(cfg.Name)}, opts...)...)
}
