package params

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every parameter error. All sentinels below
// wrap it, so errors.Is(err, ErrConfiguration) matches any of them.
var ErrConfiguration = errors.New("params: configuration error")

var (
	// ErrUndeclaredID is returned when a table references an identifier that is
	// not a member of the set the table is keyed by.
	ErrUndeclaredID = fmt.Errorf("%w: undeclared identifier", ErrConfiguration)

	// ErrMissingEntry is returned when a declared identifier has no entry in a
	// table that must cover it.
	ErrMissingEntry = fmt.Errorf("%w: missing entry", ErrConfiguration)

	// ErrDuplicateID is returned when an identifier is declared twice, within a
	// set or across node sets.
	ErrDuplicateID = fmt.Errorf("%w: duplicate identifier", ErrConfiguration)

	// ErrEmptySet is returned when a set that the network cannot do without
	// (plants, customers, products) is empty, or an identifier is blank.
	ErrEmptySet = fmt.Errorf("%w: empty set or identifier", ErrConfiguration)

	// ErrInvalidValue is returned for negative, NaN, infinite or out-of-[0,1]
	// numeric parameters.
	ErrInvalidValue = fmt.Errorf("%w: invalid value", ErrConfiguration)

	// ErrNoDefaultDistance is returned when the distance table has no declared
	// default. An implicit zero would let flows route for free.
	ErrNoDefaultDistance = fmt.Errorf("%w: distance default not declared", ErrConfiguration)
)

// ConfigError locates a configuration problem: the table, the offending key
// and the sentinel describing it.
type ConfigError struct {
	Table  string
	Key    string
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%v: %s[%s]", e.Err, e.Table, e.Key)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(table, key string, err error, detail string) *ConfigError {
	return &ConfigError{Table: table, Key: key, Err: err, Detail: detail}
}
