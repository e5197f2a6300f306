package logger

import (
	"log/slog"
	"os"
)

const (
	envDev  = "dev"
	envTest = "test"
	envProd = "prod"
)

type Logger struct {
	*slog.Logger
}

// New builds a logger for the given environment: text at debug level for
// dev, discard-level text for tests, JSON at info level otherwise.
func New(env string) *Logger {
	var handler slog.Handler

	switch env {
	case envDev:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envTest:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{slog.New(handler)}
}
