package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Configure the slog default logger with a log level and an optional
// output file.
//
// Valid log levels are "none", "error", "warn", "info", "debug"; any other
// value returns an error. When logFile is empty the logger writes text to
// stdout, otherwise JSON to the named file (an error is returned if the
// path cannot be opened).
//
// Returns the os.File pointer slog writes to, so callers can close it on
// shutdown when one was opened; it is nil for the stdout and "none" cases.
func ConfigureDefaultLogger(logLevel string, logFile string, loggerOptions slog.HandlerOptions) (*os.File, error) {
	if logLevel == "none" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	}

	switch logLevel {
	case "error":
		loggerOptions.Level = slog.LevelError
	case "warn":
		loggerOptions.Level = slog.LevelWarn
	case "info":
		loggerOptions.Level = slog.LevelInfo
	case "debug":
		loggerOptions.Level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unexpected log level %q", logLevel)
	}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &loggerOptions)))
		return nil, nil
	}

	logFilePointer, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logFilePointer, &loggerOptions)))
	return logFilePointer, nil
}
