// Package rules implements the rule engine: a deterministic, single-threaded
// tree-walking interpreter that mutates one posting (inside its parent
// transaction) at a time per a loaded rule program (§4.2).
package rules

import (
	"fmt"
	"regexp"
)

// StrMatch is the small sublanguage predicates use to test a string: Eq is
// mandatory, Regex is optional and anchored (§4.2).
type StrMatch interface {
	Match(s string) bool
}

// Eq matches a string by exact equality.
type Eq struct {
	S string
}

func (e Eq) Match(s string) bool { return s == e.S }

// Regex matches a string against an anchored regular expression: the
// pattern is always wrapped as ^(?:pattern)$ so a partial match never
// silently succeeds.
type Regex struct {
	Pattern string
	re      *regexp.Regexp
}

// NewRegex compiles pattern, anchoring it at both ends.
func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return &Regex{Pattern: pattern, re: re}, nil
}

func (r *Regex) Match(s string) bool { return r.re.MatchString(s) }
