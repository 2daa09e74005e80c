package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const (
	DefaultLogLevel = "info"
	DefaultOutput   = "text"
	DefaultWorkers  = 4

	// ConfigName is the config file looked up in DataDir, without extension.
	ConfigName = "chainaddr"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the settings shared by every chainaddr command.
type Config struct {
	// Directory searched for chainaddr.{toml,yaml,json}
	DataDir string `mapstructure:"datadir"`

	LogLevel string `mapstructure:"log"`

	// Optional file that receives a copy of every log entry
	LogFile string `mapstructure:"log-file"`

	// Output format of derived keys: text or json
	Output string `mapstructure:"output"`

	// Goroutines used by the batch command
	Workers int `mapstructure:"workers"`

	logger *logrus.Logger
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
		Workers:  DefaultWorkers,
	}
}

// NewTestConfig returns a default configuration whose logger writes to the
// test log.
func NewTestConfig(t testing.TB) *Config {
	c := NewDefaultConfig()
	c.logger = logrus.New()
	c.logger.Out = &testLogWriter{t: t}
	c.logger.Level = logrus.DebugLevel
	return c
}

// Logger builds the logger on first use. Logs go to stderr so that derived
// keys on stdout stay machine readable.
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Out = os.Stderr
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)

		if c.LogFile != "" {
			c.logger.Hooks.Add(lfshook.NewHook(c.LogFile, &logrus.JSONFormatter{}))
		}
	}
	return c.logger.WithField("prefix", "chainaddr")
}

func DefaultDataDir() string {
	home := HomeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, ".Chainaddr")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "Chainaddr")
		} else {
			return filepath.Join(home, ".chainaddr")
		}
	}
	return ""
}

func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// LogLevel maps a level name to a logrus level, defaulting to info.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

type testLogWriter struct {
	t testing.TB
}

func (w *testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
