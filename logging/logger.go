package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/turbot/owid-covid-dashboard/constants"
)

// LogLevelOff is above every slog level so nothing is written
const LogLevelOff = slog.Level(100)

func Initialize(appName string) {
	slog.SetDefault(NewLogger(os.Stderr, appName))
}

// NewLogger returns a JSON logger writing to w, with the level taken from the environment
func NewLogger(w io.Writer, appName string) *slog.Logger {
	level := getLogLevel()
	if level == LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewJSONHandler(w, handlerOptions)).With("source", appName)
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(constants.EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off":
		return LogLevelOff
	default:
		return LogLevelOff
	}
}
