package model

import "errors"

var (
	// ErrUnknownVar is returned when an expression references a variable that
	// does not belong to the model.
	ErrUnknownVar = errors.New("model: unknown variable")

	// ErrUnknownHandle is returned by RemoveConstraint for a handle that was
	// never issued or has already been released.
	ErrUnknownHandle = errors.New("model: unknown constraint handle")

	// ErrInvalidBound is returned for a NaN right-hand side.
	ErrInvalidBound = errors.New("model: invalid constraint bound")

	// ErrNilExpr is returned when a nil expression is passed.
	ErrNilExpr = errors.New("model: nil expression")
)
