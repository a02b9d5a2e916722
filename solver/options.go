package solver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"
	"github.com/go-logr/logr"
)

const (
	// DefaultTolerance is the primal feasibility tolerance handed to HiGHS
	// and used when checking a limit-status incumbent.
	DefaultTolerance = 1e-7

	// DefaultIntegralityTol is the distance from an integer under which a
	// binary counts as integral.
	DefaultIntegralityTol = 1e-6

	// DefaultMaxNodes bounds the branch-and-bound tree HiGHS may explore.
	DefaultMaxNodes = 1 << 14

	// DefaultGap is the relative MIP gap at which HiGHS stops.
	DefaultGap = 1e-7
)

// Options configures a Solver.
type Options struct {
	Tolerance      float64
	IntegralityTol float64
	MaxNodes       int
	Gap            float64
	TimeLimit      time.Duration // per Optimize; zero means no limit beyond the context deadline
	Logger         logr.Logger
}

// DefaultOptions returns the documented defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		IntegralityTol: DefaultIntegralityTol,
		MaxNodes:       DefaultMaxNodes,
		Gap:            DefaultGap,
		Logger:         logr.Discard(),
	}
}

func (o Options) validate() error {
	positive := func(name string, x float64) error {
		if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
			return fmt.Errorf("%w: %s must be finite and > 0, got %v", ErrInvalidOptions, name, x)
		}
		return nil
	}
	if err := positive("tolerance", o.Tolerance); err != nil {
		return err
	}
	if err := positive("integrality tolerance", o.IntegralityTol); err != nil {
		return err
	}
	if o.IntegralityTol >= 0.5 {
		return fmt.Errorf("%w: integrality tolerance must be < 0.5", ErrInvalidOptions)
	}
	if math.IsNaN(o.Gap) || o.Gap < 0 {
		return fmt.Errorf("%w: gap must be ≥ 0", ErrInvalidOptions)
	}
	if o.MaxNodes <= 0 {
		return fmt.Errorf("%w: max nodes must be > 0", ErrInvalidOptions)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("%w: time limit must be ≥ 0", ErrInvalidOptions)
	}

	return nil
}

// timeLimit is the tighter of TimeLimit and the time left before ctx's
// deadline, or zero when neither applies.
func (o Options) timeLimit(ctx context.Context) time.Duration {
	limit := o.TimeLimit
	if dl, ok := ctx.Deadline(); ok {
		left := max(time.Until(dl), time.Millisecond)
		if limit == 0 || left < limit {
			limit = left
		}
	}

	return limit
}

// highsOptions translates o for one HiGHS run.
func (o Options) highsOptions(ctx context.Context) []highs.SolveOption {
	opts := []highs.SolveOption{
		highs.WithOutput(false),
		highs.WithMIPRelGap(o.Gap),
		highs.WithFloatOption("primal_feasibility_tolerance", o.Tolerance),
		highs.WithFloatOption("mip_feasibility_tolerance", o.IntegralityTol),
		highs.WithIntOption("mip_max_nodes", o.MaxNodes),
	}
	if limit := o.timeLimit(ctx); limit > 0 {
		opts = append(opts, highs.WithTimeLimit(limit.Seconds()))
	}

	return opts
}
