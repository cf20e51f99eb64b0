package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Severity levels, ordered from least to most severe. They share slog's
// numeric scale; LevelCritical extends it above LevelError.
const (
	LevelDebug    = slog.LevelDebug
	LevelInfo     = slog.LevelInfo
	LevelWarning  = slog.LevelWarn
	LevelError    = slog.LevelError
	LevelCritical = slog.Level(12)
)

// levels is the walk order for RaiseLevel and LowerLevel.
var levels = [...]slog.Level{
	LevelDebug,
	LevelInfo,
	LevelWarning,
	LevelError,
	LevelCritical,
}

// Levels returns the five severity levels, least severe first.
func Levels() []slog.Level {
	out := make([]slog.Level, len(levels))
	copy(out, levels[:])
	return out
}

// LevelNames returns the display names of Levels, in the same order.
func LevelNames() []string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = LevelName(l)
	}
	return names
}

// LevelName returns the bracketed name used in log lines.
func LevelName(l slog.Level) string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL%+d", int(l))
	}
}

// ParseLevel converts a string log level to slog.Level.
//
// Supported levels: debug, info, warn/warning, error, critical/fatal.
// Defaults to info if unrecognised.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "critical", "fatal":
		return LevelCritical
	default:
		return LevelInfo
	}
}

// levelIndex returns the position of l in levels. A level between two
// entries maps to the lower one.
func levelIndex(l slog.Level) int {
	idx := 0
	for i, candidate := range levels {
		if l >= candidate {
			idx = i
		}
	}
	return idx
}
