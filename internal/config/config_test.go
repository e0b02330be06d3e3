package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/parahull/internal/config"
)

func TestParseLogLevelRoundTrip(t *testing.T) {
	levels := []config.LogLevel{
		config.LevelError, config.LevelCritical, config.LevelWarning,
		config.LevelNotice, config.LevelInfo, config.LevelDebug, config.LevelTrace,
	}
	for _, want := range levels {
		got, err := config.ParseLogLevel(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseLogLevelUnknown(t *testing.T) {
	_, err := config.ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestDefaultSplitThreshold(t *testing.T) {
	assert.Equal(t, 25, config.DefaultSplitThreshold(100, 4))
	assert.Equal(t, 1<<16, config.DefaultSplitThreshold(1<<20, 1))
	assert.Equal(t, 10, config.DefaultSplitThreshold(10, 0), "zero threads falls back to one worker")
}
