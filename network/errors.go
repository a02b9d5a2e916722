package network

import "errors"

// ErrNilBundle is returned by Build when no parameter bundle is given.
var ErrNilBundle = errors.New("network: nil parameter bundle")
