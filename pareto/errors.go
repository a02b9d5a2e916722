package pareto

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/loopchain/model"
)

var (
	// ErrPayoffInfeasible is wrapped by *ExtremeError when an objective
	// minimum cannot be established.
	ErrPayoffInfeasible = errors.New("pareto: payoff extreme not optimal")

	// ErrConstraintLeak is returned when a sweep leaves the oracle with a
	// different number of live constraints than it started with.
	ErrConstraintLeak = errors.New("pareto: epsilon constraint leaked")

	// ErrInvalidOptions is returned for out-of-range sweep options.
	ErrInvalidOptions = errors.New("pareto: invalid options")

	// ErrNilObjective is returned when Objectives lacks an expression.
	ErrNilObjective = errors.New("pareto: nil objective")
)

// ExtremeError reports which payoff extreme failed and with what status.
type ExtremeError struct {
	Objective string // "cost" or "environmental"
	Status    model.Status
}

func (e *ExtremeError) Error() string {
	return fmt.Sprintf("%v: minimizing %s returned %s", ErrPayoffInfeasible, e.Objective, e.Status)
}

func (e *ExtremeError) Unwrap() error { return ErrPayoffInfeasible }
