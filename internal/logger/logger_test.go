package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		l, err := New(level, false)
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, l)
	}
}

func TestNewUnknownLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}

func TestNewVerboseIgnoresLevel(t *testing.T) {
	// Verbose wins even when the configured level string is bogus.
	l, err := New("loud", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
