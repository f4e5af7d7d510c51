package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// Initialize builds the process-wide slog logger. Level comes from
// LOG_LEVEL (or WF_DEBUG=1 as a shortcut for DEBUG), output format from
// LOG_FORMAT (text or json). Safe to call more than once
func Initialize() {
	once.Do(func() {
		level := parseLevel(os.Getenv("LOG_LEVEL"))

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}

		logger = slog.New(handler)
	})
}

func parseLevel(s string) slog.Level {
	if s == "" {
		if debug := os.Getenv("WF_DEBUG"); debug == "1" || debug == "true" {
			return slog.LevelDebug
		}
		return slog.LevelInfo
	}

	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLogger returns the process-wide logger, initializing it on first use
func GetLogger() *slog.Logger {
	Initialize()
	return logger
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
