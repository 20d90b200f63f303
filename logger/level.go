package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity attached to each line.
type Level int

const (
	// ErrorLevel tags error lines.
	ErrorLevel Level = iota
	// WarnLevel tags warning lines.
	WarnLevel
	// InfoLevel tags informational lines.
	InfoLevel
	// DebugLevel tags debug lines.
	DebugLevel
)

// invalidLevelName is printed in place of the level for values outside the enumeration.
const invalidLevelName = "LOGGING ERROR (Invalid Level)"

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown logging level")

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{
		ErrorLevel,
		WarnLevel,
		InfoLevel,
		DebugLevel,
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= DebugLevel
}

// String returns the name used in the line tag.
// Values outside the enumeration return the invalid level marker.
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return invalidLevelName
	}
}

// ParseLevel parses a level name. Case and surrounding space are ignored.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
