// Package logging configures the process-wide slog logger with a colored
// tint handler.
//
// The log level comes from the LOG_LEVEL environment variable (debug, info,
// warn, error; default info).
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler as the slog default, at the level named by
// LOG_LEVEL.
func Setup() {
	SetupWithLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel installs a tint handler as the slog default at an explicit
// level, regardless of the environment.
func SetupWithLevel(level slog.Level) {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
