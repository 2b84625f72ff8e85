package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MaxSessionLogs is the number of session log files retained in the log dir
const MaxSessionLogs = 9

// Setup initializes the engine logger with file and stdout output.
// It creates the log directory, cleans up old session logs, sets up a
// MultiWriter for stdout and file output, parses the log level, and installs
// the default slog logger. Returns the log file handle (caller must close).
func Setup(logDir, level string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	cleanupLogs(logDir)

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFileName := filepath.Join(logDir, fmt.Sprintf("session_%s.log", timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	mw := io.MultiWriter(os.Stdout, logFile)

	handler := slog.New(slog.NewTextHandler(mw, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(handler)

	slog.Info("Logging initialized", "level", level, "file", logFileName)
	return logFile, nil
}

// ParseLevel converts a level string to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// cleanupLogs removes the oldest session logs, keeping the most recent ones.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var sessions []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "session_") && strings.HasSuffix(e.Name(), ".log") {
			sessions = append(sessions, e.Name())
		}
	}
	if len(sessions) < MaxSessionLogs {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(sessions)
	for _, name := range sessions[:len(sessions)-MaxSessionLogs+1] {
		_ = os.Remove(filepath.Join(logDir, name))
	}
}
