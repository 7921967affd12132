package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfigureLoggerVerboseOverridesConfig(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	configureLogger(l, true, "error", "", true)
	l.Debug("visible at debug")
	if !strings.Contains(buf.String(), "visible at debug") {
		t.Fatalf("verbose flag should enable debug logging, got %q", buf.String())
	}
}

func TestConfigureLoggerConfigLevel(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	configureLogger(l, false, "error", "", true)
	l.Warn("suppressed")
	if strings.Contains(buf.String(), "suppressed") {
		t.Fatalf("error level should drop warnings, got %q", buf.String())
	}
	l.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("error level should keep errors, got %q", buf.String())
	}
}

func TestConfigureLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	configureLogger(l, false, "chatty", "", true)
	if !strings.Contains(buf.String(), "unknown log_level") {
		t.Fatalf("expected a warning about the unknown level, got %q", buf.String())
	}
	l.Info("still informative")
	if !strings.Contains(buf.String(), "still informative") {
		t.Fatalf("unknown level should fall back to info, got %q", buf.String())
	}
}

func TestConfigureLoggerWarnsOnUnopenedLogFile(t *testing.T) {
	// the warning must fire on verbose runs as well
	var buf bytes.Buffer
	l := log.New(&buf)
	configureLogger(l, true, "", "/nope/profab.log", false)
	if !strings.Contains(buf.String(), "log file could not be opened") {
		t.Fatalf("expected a log file warning on a verbose run, got %q", buf.String())
	}

	buf.Reset()
	l = log.New(&buf)
	configureLogger(l, false, "info", "/nope/profab.log", false)
	if !strings.Contains(buf.String(), "log file could not be opened") {
		t.Fatalf("expected a log file warning, got %q", buf.String())
	}
}
