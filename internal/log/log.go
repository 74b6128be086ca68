// Package log configures the process-wide structured logger.
package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB = 5
	maxBackups   = 3
)

// DebugEnabled reports whether verbose message logging was requested
// via the TOMATO_DEBUG environment variable.
func DebugEnabled() bool {
	v, _ := strconv.ParseBool(os.Getenv("TOMATO_DEBUG"))
	return v
}

// Init routes slog output to a rotated log file. The TUI owns the
// terminal, so logs never go to stderr.
func Init(logFilePath string) error {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
		return err
	}

	w := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}

	level := slog.LevelInfo
	if DebugEnabled() {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(h))

	return nil
}
