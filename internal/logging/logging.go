package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup creates a configured *slog.Logger, sets it as the default, and returns it.
// The level parameter accepts: "debug", "info", "warn", "error" (case-insensitive).
// Defaults to info if the level string is unrecognized.
func Setup(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// AccessLogger returns a logger writing request records to a rotated file.
// Rotation keeps a day's worth of traffic per file and prunes old files.
// An empty path disables the access log.
func AccessLogger(path string) (*slog.Logger, io.Closer) {
	if path == "" {
		return nil, nil
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxAge:     1,  // days per file
		MaxBackups: 30,
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(w, nil)), w
}
