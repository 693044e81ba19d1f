// Package logging builds slog loggers for the command-line tools.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger creates a text or JSON slog logger writing to w at the given
// level.
func Logger(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// FileWriter returns a size-rotated log file writer. Rotation keeps at
// most 5 files of 10MB each, so long-running batch conversions cannot fill
// the disk.
func FileWriter(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}
}

// TeeWriter writes to stderr and, when path is non-empty, to a rotated
// log file as well.
func TeeWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	return io.MultiWriter(os.Stderr, FileWriter(path))
}
