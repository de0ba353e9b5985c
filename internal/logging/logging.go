// Package logging builds the charmbracelet/log loggers used by the CLI, the
// API server and the TUI. The TUI owns the terminal, so it writes to a
// session file under the config directory instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a config log level to a charm log level. Unknown values
// resolve to info.
func ParseLevel(level string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	case "FATAL":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// Discard returns a logger that drops everything. Useful for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel + 1})
}

// SessionFile is an open TUI session log.
type SessionFile struct {
	Path   string
	Logger *log.Logger
	file   *os.File
}

// OpenSession creates logs/<timestamp>.log under dir and returns a logfmt
// logger writing to it.
func OpenSession(dir, level string, now time.Time) (*SessionFile, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	name := fmt.Sprintf("session_%s.log", now.Format("20060102_150405"))
	path := filepath.Join(logDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	return &SessionFile{Path: path, Logger: logger, file: f}, nil
}

// Close writes a closing marker and releases the file.
func (s *SessionFile) Close(reason string) error {
	if s == nil || s.file == nil {
		return nil
	}
	if reason != "" {
		s.Logger.Info("session closed", "reason", reason)
	}
	err := s.file.Close()
	s.file = nil
	return err
}
