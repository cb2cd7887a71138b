package ruleprogram

import (
	"fmt"
	"io"

	"github.com/ledgerkit/ledgerkit/rules"
	"gopkg.in/yaml.v3"
)

// Load parses a rule-program YAML document and builds a validated
// rules.Program. Load-time errors include a malformed YAML document, a
// rule node that sets zero or more than one predicate/action variant, an
// unknown flow-result string, a missing "start" chain, and a jump to an
// undefined chain — the last two are caught by rules.NewProgram.
func Load(r io.Reader) (*rules.Program, error) {
	var doc map[string][]ruleSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("rule program: %w", err)
	}

	chains := make(map[string]rules.Chain, len(doc))
	for name, ruleSpecs := range doc {
		chain := make(rules.Chain, len(ruleSpecs))
		for i := range ruleSpecs {
			rule, err := ruleSpecs[i].toRule()
			if err != nil {
				return nil, fmt.Errorf("rule program: chain %q rule %d: %w", name, i, err)
			}
			chain[i] = rule
		}
		chains[name] = chain
	}

	return rules.NewProgram(chains)
}
