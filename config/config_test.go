package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	c := NewDefaultConfig()

	assert.Equal(t, DefaultLogLevel, c.LogLevel)
	assert.Equal(t, OutputText, c.Output)
	assert.Equal(t, DefaultWorkers, c.Workers)
	assert.Empty(t, c.LogFile)
}

func TestLogLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"panic":   logrus.PanicLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}

	for name, want := range tests {
		assert.Equal(t, want, LogLevel(name), name)
	}
}

func TestLoggerIsBuiltOnce(t *testing.T) {
	c := NewDefaultConfig()
	c.LogLevel = "warn"

	first := c.Logger()
	second := c.Logger()

	assert.Same(t, first.Logger, second.Logger)
	assert.Equal(t, logrus.WarnLevel, first.Logger.Level)
	assert.Equal(t, "chainaddr", first.Data["prefix"])
}

func TestLoggerWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chainaddr.log")

	c := NewDefaultConfig()
	c.LogFile = path
	c.Logger().Logger.Out = &testLogWriter{t: t}
	c.Logger().WithField("keys", 3).Info("derived")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"derived"`)
	assert.Contains(t, string(data), `"keys":3`)
}

func TestNewTestConfig(t *testing.T) {
	c := NewTestConfig(t)
	c.Logger().Debug("visible in test output")

	assert.Equal(t, logrus.DebugLevel, c.Logger().Logger.Level)
}
