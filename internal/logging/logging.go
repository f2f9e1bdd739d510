// Package logging configures the structured logger backed by a rotating log
// file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/focusplan/internal/osutil"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Writer returns a rotating writer for the log file at path.
func Writer(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup installs a file-backed logger as the slog default and returns the
// writer so that it can be closed on exit. An empty path discards logs.
func Setup(path string, level slog.Level) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(New(io.Discard, level))
		return io.NopCloser(nil), nil
	}

	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	w := Writer(path)

	slog.SetDefault(New(w, level))

	return w, nil
}
