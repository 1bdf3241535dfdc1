package config

import "strings"

// Level is the agent log level. The five names mirror the levels the rest
// of the deployment tooling understands; matching is case-insensitive.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if name == n {
			return Level(i), nil
		}
	}
	return LevelInfo, invalidEnum(KeyLogLevel, s, levelNames)
}

// String returns the canonical upper-case level name.
func (l Level) String() string {
	if l < LevelDebug || l > LevelCritical {
		return "INFO"
	}
	return levelNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
