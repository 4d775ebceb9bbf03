package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleTraceRendersLines(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsoleTrace(&buf)

	console.Log("Goto(https://example.com)")
	console.Log("FAIL resolution failure in Find(#x): gone")
	console.Log("exists(#banner): no visible match within 500ms")
	console.Summary("flow completed")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), out)
	}

	for _, want := range []string{
		"Goto(https://example.com)",
		"FAIL resolution failure",
		"exists(#banner)",
		"flow completed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestConsoleTraceNilWriterDefaultsToStdout(t *testing.T) {
	console := NewConsoleTrace(nil)
	if console.out == nil {
		t.Error("Expected a non-nil writer")
	}
}
