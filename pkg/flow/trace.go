package flow

// Trace receives one human-readable line per traced event: the description
// of every step about to execute, the rendering of every failure exactly
// once, and informational notes from probe steps. Implementations must be
// safe for use from the single goroutine running a chain; chains running
// concurrently via RunAll should carry separate sinks or a sink that is
// safe for concurrent use.
type Trace interface {
	Log(line string)
}

// TraceFunc adapts a plain function to the Trace interface.
type TraceFunc func(line string)

// Log calls f(line).
func (f TraceFunc) Log(line string) { f(line) }

// NopTrace discards all lines. It is the default sink for contexts built
// without an explicit trace.
var NopTrace Trace = nopTrace{}

type nopTrace struct{}

func (nopTrace) Log(string) {}
