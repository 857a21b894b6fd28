package config

import (
	"fmt"
	"strings"
)

// LoggingConfig is the logging section of a config file.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`

	// Format is "text" or "json".
	Format string `yaml:"format,omitempty"`
}

// LogLevel constants.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// LogFormat constants.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// DefaultLoggingConfig returns info-level text logging.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  LogLevelInfo,
		Format: LogFormatText,
	}
}

// Validate rejects unknown levels and formats. Empty values are allowed.
func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("invalid log format %q", c.Format)
	}
	return nil
}
