package logger

import (
	"log/slog"
	"os"
)

// NewLogger builds the application logger. Debug runs log at LevelDebug,
// everything else at LevelInfo.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)

	slog.SetDefault(logger)
	return logger
}
