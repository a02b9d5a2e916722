package logging_test

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopchain/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]int{"": logging.INFO, "Info": logging.INFO, "debug": logging.DEBUG, " TRACE ": logging.TRACE} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_RespectsVerbosity(t *testing.T) {
	log, err := logging.New(logging.DEBUG, false)
	require.NoError(t, err)
	assert.True(t, log.V(logging.DEBUG).Enabled())
	assert.False(t, log.V(logging.TRACE).Enabled())

	tl := logging.NewTestLogger(t)
	assert.True(t, tl.V(logging.TRACE).Enabled())
}

func TestSync_FlushesBuiltLoggers(t *testing.T) {
	log, err := logging.New(logging.INFO, false)
	require.NoError(t, err)
	log.Info("flush me")
	assert.NoError(t, logging.Sync(log))

	assert.NoError(t, logging.Sync(logr.Discard()))
	assert.NoError(t, logging.Sync(logging.NewTestLogger(t)))
}
