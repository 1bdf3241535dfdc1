package logger

import (
	"github.com/rs/zerolog"

	"github.com/kbukum/contract-agent/config"
)

// Config contains logging configuration.
type Config struct {
	Level   config.Level
	Format  string // "json" or "console"
	Output  string // "stdout" or "stderr"
	NoColor bool
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// zerologLevel maps the agent's five-value level enum onto zerolog levels.
// WARNING and CRITICAL have no same-named zerolog level; they become warn
// and fatal.
func zerologLevel(l config.Level) zerolog.Level {
	switch l {
	case config.LevelDebug:
		return zerolog.DebugLevel
	case config.LevelWarning:
		return zerolog.WarnLevel
	case config.LevelError:
		return zerolog.ErrorLevel
	case config.LevelCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
