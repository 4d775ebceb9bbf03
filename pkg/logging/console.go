package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/karel66/Ozone/pkg/flow"
)

// Console color palette.
var (
	stepGray    = lipgloss.Color("#6B7280") // step description lines
	failureRed  = lipgloss.Color("#FF5F5F") // failure lines
	probeCyan   = lipgloss.Color("#67E8F9") // probe and info lines
	successMint = lipgloss.Color("#A8E6CF") // summary lines
)

var (
	stepStyle = lipgloss.NewStyle().
			Foreground(stepGray)

	failureStyle = lipgloss.NewStyle().
			Foreground(failureRed).
			Bold(true)

	probeStyle = lipgloss.NewStyle().
			Foreground(probeCyan)

	summaryStyle = lipgloss.NewStyle().
			Foreground(successMint)
)

// ConsoleTrace renders trace lines to a terminal, one styled line per
// event: step descriptions dimmed, failures red, probe notes cyan. It is
// safe for concurrent use so parallel runs can share one console.
type ConsoleTrace struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleTrace builds a console sink writing to out; nil means stdout.
func NewConsoleTrace(out io.Writer) *ConsoleTrace {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleTrace{out: out}
}

// Log renders one trace line.
func (t *ConsoleTrace) Log(line string) {
	style := stepStyle
	switch {
	case strings.HasPrefix(line, "FAIL "):
		style = failureStyle
	case strings.HasPrefix(line, "exists(") || strings.HasPrefix(line, "retry "):
		style = probeStyle
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, style.Render(line))
}

// Summary renders a closing line outside the per-step stream, such as the
// final verdict of a doctor run.
func (t *ConsoleTrace) Summary(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, summaryStyle.Render(line))
}

var _ flow.Trace = (*ConsoleTrace)(nil)
