package solver

import "errors"

var (
	// ErrNilModel is returned by New when no model is given.
	ErrNilModel = errors.New("solver: nil model")

	// ErrNoObjective is returned by Optimize before SetObjective was called.
	ErrNoObjective = errors.New("solver: objective not set")

	// ErrNoSolution is returned by ValueOf when the last Optimize produced no
	// solution vector.
	ErrNoSolution = errors.New("solver: no solution available")

	// ErrInvalidOptions is returned by New for out-of-range options.
	ErrInvalidOptions = errors.New("solver: invalid options")
)
