package pareto

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

const (
	// DefaultPoints is the number of grid points per curve.
	DefaultPoints = 10

	// DefaultSlackFactor tightens every swept bound by 0.1%.
	DefaultSlackFactor = 0.999
)

// Options configures a sweep.
type Options struct {
	Points      int
	SlackFactor float64
	Logger      logr.Logger
}

// DefaultOptions returns the documented defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{Points: DefaultPoints, SlackFactor: DefaultSlackFactor, Logger: logr.Discard()}
}

func (o Options) validate() error {
	if o.Points < 1 {
		return fmt.Errorf("%w: points must be ≥ 1, got %d", ErrInvalidOptions, o.Points)
	}
	if math.IsNaN(o.SlackFactor) || o.SlackFactor <= 0 || o.SlackFactor > 1 {
		return fmt.Errorf("%w: slack factor must lie in (0,1], got %v", ErrInvalidOptions, o.SlackFactor)
	}

	return nil
}
