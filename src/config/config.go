package config

import (
	"testing"

	"github.com/nistparam/nistparam/src/common"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultPrefix   = "nistparam"
)

// Config contains the configuration properties of a Parser.
type Config struct {
	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// Prefix is the value of the "prefix" field on every log entry.
	Prefix string `mapstructure:"log-prefix"`

	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Prefix:   DefaultPrefix,
	}
}

// NewTestConfig returns a config object with default values and a special
// logger for debugging tests.
func NewTestConfig(t testing.TB, level logrus.Level) *Config {
	config := NewDefaultConfig()
	config.logger = common.NewTestLogger(t, level)
	return config
}

// FromViper decodes v on top of the default values. Keys that v does not set
// keep their defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	config := NewDefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SetLogger replaces the underlying logrus Logger.
func (c *Config) SetLogger(logger *logrus.Logger) {
	c.logger = logger
}

// Logger returns a formatted logrus Entry, with prefix set to c.Prefix.
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
	}
	return c.logger.WithField("prefix", c.Prefix)
}

// LogLevel parses a string into a Logrus log level.
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
