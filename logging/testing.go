package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// NewTestLogger returns a logger writing through t.Log at TRACE verbosity.
func NewTestLogger(t testing.TB) logr.Logger {
	return zapr.NewLogger(zaptest.NewLogger(t, zaptest.Level(zap.NewAtomicLevelAt(-TRACE)), zaptest.WrapOptions(zap.AddCaller())))
}
