package web

import (
	"fmt"

	"github.com/gobwas/glob"
)

// URLPolicy controls which URLs Goto may navigate to, using glob patterns
// over the full URL string. Denied patterns take precedence; an empty
// allow list allows everything not denied.
type URLPolicy struct {
	allowed []glob.Glob
	denied  []glob.Glob
}

// NewURLPolicy compiles the allow and deny pattern lists. An invalid
// pattern is reported with its list and text so configs fail loudly at
// startup, not mid-chain.
func NewURLPolicy(allowed, denied []string) (*URLPolicy, error) {
	p := &URLPolicy{}

	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed pattern '%s': %w", pattern, err)
		}
		p.allowed = append(p.allowed, g)
	}

	for _, pattern := range denied {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid denied pattern '%s': %w", pattern, err)
		}
		p.denied = append(p.denied, g)
	}

	return p, nil
}

// Allowed reports whether url passes the policy.
func (p *URLPolicy) Allowed(url string) bool {
	for _, pattern := range p.denied {
		if pattern.Match(url) {
			return false
		}
	}

	if len(p.allowed) == 0 {
		return true
	}

	for _, pattern := range p.allowed {
		if pattern.Match(url) {
			return true
		}
	}

	return false
}
