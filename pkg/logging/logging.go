// Package logging provides the process-wide leveled logger.
//
// The numeric 0-9 level mirrors the --log-level flag: 0 only errors,
// 1+ warnings, 3+ info, 5+ debug. Output always goes to stderr so that
// stdio MCP transports keep stdout clean for protocol traffic.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.ErrorLevel)

// Initialize configures the global logger for the given verbosity level
func Initialize(level int) {
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerologLevel(level))
}

// zerologLevel maps the 0-9 verbosity scale onto zerolog levels
func zerologLevel(level int) zerolog.Level {
	switch {
	case level >= 5:
		return zerolog.DebugLevel
	case level >= 3:
		return zerolog.InfoLevel
	case level >= 1:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Debug logs at debug level (level 5-9)
func Debug(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

// Info logs at info level (level 3-9)
func Info(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

// Warn logs at warning level (level 1-9)
func Warn(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

// Error logs at error level (always)
func Error(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}
