// Package gamelog owns the shared zerolog logger for the toolkit.
// Packages log through Logger so a host game can swap the sink once.
package gamelog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Logger returns the current shared logger
func Logger() zerolog.Logger {
	return logger
}

// SetLogger replaces the shared logger
func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetLevel adjusts the level on the shared logger in place
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Pretty switches the shared logger to a human-readable console writer.
// Intended for development binaries; JSON output stays the default.
func Pretty() {
	logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
