package logx_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/parahull/internal/config"
	"github.com/ajroetker/parahull/internal/logx"
)

func TestNewWritesLevelPrefixedLines(t *testing.T) {
	var buf bytes.Buffer
	log := logx.New(&buf, config.LevelInfo)

	log.Info().Msg("hull computed")

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "[INFO]")
	assert.Contains(t, out, "hull computed")
}

func TestNewFiltersBelowMinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logx.New(&buf, config.LevelWarning)

	log.Debug().Msg("should not appear")
	log.Warn().Msg("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestDefaultReturnsLogger(t *testing.T) {
	log := logx.Default()
	assert.NotNil(t, log)
}
