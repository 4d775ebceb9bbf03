package logging

import (
	"os"
	"strings"
	"testing"
)

// TestMain points the package at a temp directory before the first logger
// latches the default under the user's home.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ozone-logging-test-*")
	if err != nil {
		os.Exit(1)
	}
	SetDirectory(dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("test-component")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.component != "test-component" {
		t.Errorf("Expected component 'test-component', got %q", logger.component)
	}

	if logger.RunID() == "" {
		t.Error("Expected non-empty run ID")
	}

	if logger.LogPath() == "" {
		t.Error("Expected non-empty log path")
	}

	if _, err := os.Stat(logger.LogPath()); os.IsNotExist(err) {
		t.Errorf("Log file does not exist at %s", logger.LogPath())
	}
}

func TestLoggerWritesStructuredEntries(t *testing.T) {
	logger, err := NewLogger("writer")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Infof("navigating to %s", "https://example.com")
	logger.Errorf("click failed: %v", "timeout")

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "[writer]") {
		t.Error("Expected component tag in log output")
	}
	if !strings.Contains(content, "[INFO] navigating to https://example.com") {
		t.Error("Expected info entry in log output")
	}
	if !strings.Contains(content, "[ERROR] click failed: timeout") {
		t.Error("Expected error entry in log output")
	}
}

func TestLoggersShareRunFile(t *testing.T) {
	a, err := NewLogger("component-a")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer a.Close()

	b, err := NewLogger("component-b")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer b.Close()

	if a.RunID() != b.RunID() {
		t.Errorf("Expected shared run ID, got %q and %q", a.RunID(), b.RunID())
	}
	if a.LogPath() != b.LogPath() {
		t.Errorf("Expected shared log file, got %q and %q", a.LogPath(), b.LogPath())
	}
}

func TestTraceAdapter(t *testing.T) {
	logger, err := NewLogger("chain")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	trace := logger.Trace()
	trace.Log("Find(#login)")
	trace.Log("FAIL resolution failure in Find(#login): gone")

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Find(#login)") {
		t.Error("Expected traced step line in log output")
	}
	if !strings.Contains(string(data), "FAIL resolution failure") {
		t.Error("Expected traced failure line in log output")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	logger, err := NewLogger("closer")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}
