package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]log.Level{
		"debug":   log.DebugLevel,
		" INFO ":  log.InfoLevel,
		"warning": log.WarnLevel,
		"WARN":    log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range tcs {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, "WARN")
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at WARN, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestOpenSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stamp := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	session, err := OpenSession(dir, "INFO", stamp)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}

	wantPath := filepath.Join(dir, "logs", "session_20261019_093000.log")
	if session.Path != wantPath {
		t.Fatalf("expected path %q, got %q", wantPath, session.Path)
	}

	session.Logger.Info("prompt copied", "method", "system")
	if err := session.Close("quit"); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := session.Close("again"); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "method=system") || !strings.Contains(text, "reason=quit") {
		t.Fatalf("unexpected log contents:\n%s", text)
	}
}
