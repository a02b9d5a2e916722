// Package logging builds the zap-backed logr.Logger shared by the CLI and the
// library packages, and fixes the verbosity levels they log at.
package logging

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// ParseLevel maps "info", "debug" and "trace" to a verbosity.
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a logger that emits entries up to verbosity v. development
// selects zap's console encoder with caller info; otherwise JSON.
func New(v int, development bool) (logr.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	// logr verbosity v maps to zap level -v.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: build zap logger: %w", err)
	}

	return zapr.NewLogger(z), nil
}

// Sync flushes the zap core behind log. Loggers not built by New are a no-op.
// Terminals and pipes reject fsync with EINVAL or ENOTTY; those are ignored.
func Sync(log logr.Logger) error {
	u, ok := log.GetSink().(zapr.Underlier)
	if !ok {
		return nil
	}
	err := u.GetUnderlying().Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}

	return err
}
