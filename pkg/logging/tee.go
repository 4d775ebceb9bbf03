package logging

import "github.com/karel66/Ozone/pkg/flow"

type teeTrace struct {
	sinks []flow.Trace
}

// Tee fans trace lines out to every given sink, skipping nils. Commands
// use it to mirror the step stream to the console and the run log.
func Tee(sinks ...flow.Trace) flow.Trace {
	kept := make([]flow.Trace, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return teeTrace{sinks: kept}
}

func (t teeTrace) Log(line string) {
	for _, s := range t.sinks {
		s.Log(line)
	}
}
