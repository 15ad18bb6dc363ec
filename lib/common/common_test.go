package common

import (
	"testing"
	"time"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	for input, expected := range map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warn":    logger.WARNING,
		"warning": logger.WARNING,
		"error":   logger.ERROR,
	} {
		level, err := ParseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestInitLoggers(t *testing.T) {
	assert.NotPanics(t, func() { InitLoggers("error") })
	assert.NotPanics(t, func() { InitLoggers("info") })
	assert.Panics(t, func() { InitLoggers("loud") })
}

func TestPerfConfig_String(t *testing.T) {
	c := &PerfConfig{
		Kinds:     []string{"ordered", "chain"},
		Runs:      3,
		BenchTime: 500 * time.Millisecond,
		CSVPath:   "out.csv",
		LogLevel:  "info",
	}
	s := c.String()

	assert.Contains(t, s, "SELECTION")
	assert.Contains(t, s, "ordered, chain")
	assert.Contains(t, s, "500ms")
	assert.Contains(t, s, "out.csv")
	assert.Regexp(t, `Workloads\s+: all`, s)
}

func TestScriptConfig_String(t *testing.T) {
	c := &ScriptConfig{Files: []string{"a.yaml", "b.yaml"}, FailFast: true, LogLevel: "warn"}
	s := c.String()

	assert.Contains(t, s, "SCRIPTS")
	assert.Contains(t, s, "b.yaml")
	assert.Regexp(t, `Fail Fast\s+: true`, s)
}
