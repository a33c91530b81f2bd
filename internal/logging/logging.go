// Package logging sets up the structured debug log shared by the CLI and TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "mescal-debug.log"

// Logger wraps a slog.Logger together with the file it writes to.
type Logger struct {
	*slog.Logger
	file *os.File
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// New returns a JSON-lines logger writing debug-level entries to w.
func New(w io.Writer) *Logger {
	return &Logger{Logger: slog.New(jsonHandler(w))}
}

// Open returns a discard logger when debug is false. Otherwise it creates
// path (DebugLogPath when empty) and logs JSON lines into it.
func Open(debug bool, path string) (*Logger, error) {
	if !debug {
		return Discard(), nil
	}
	if path == "" {
		path = DebugLogPath
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}

	l := &Logger{Logger: slog.New(jsonHandler(f)), file: f}
	l.Debug("debug start", "log_file", path, "time", time.Now().Format(time.RFC3339))
	return l, nil
}

// Close flushes the end marker and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.Debug("debug end", "time", time.Now().Format(time.RFC3339))
	return l.file.Close()
}

func jsonHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}
