package rules

import "fmt"

// FlowResult determines what happens after a matching rule's action runs
// (§3, §4.2).
type FlowResult int

const (
	// Continue advances the cursor to the next rule in the current chain.
	Continue FlowResult = iota
	// Return ends evaluation of the current chain immediately.
	Return
)

// Rule is a (Predicate, Action, FlowResult) triple (§3).
type Rule struct {
	Predicate Predicate
	Action    Action
	Flow      FlowResult
}

// Chain is a named ordered list of Rules.
type Chain []Rule

// StartChain is the designated entry point chain name (§3).
const StartChain = "start"

// Program is a finite mapping from chain name to Chain, immutable after
// load (§3).
type Program struct {
	Chains map[string]Chain
}

// NewProgram validates and constructs a Program. It enforces the two
// load-time errors spec.md §6.3/§4.2 require: a missing "start" chain, and a
// JumpChain referencing an undefined chain. It additionally rejects
// JumpChain nested inside an All action (see JumpChain's doc comment) —
// that nesting is legal per the action grammar but left semantically
// undefined by the spec, so this implementation treats it as a rule-program
// error instead of guessing.
func NewProgram(chains map[string]Chain) (*Program, error) {
	p := &Program{Chains: chains}

	if _, ok := chains[StartChain]; !ok {
		return nil, fmt.Errorf("rule program: missing %q chain", StartChain)
	}

	for name, chain := range chains {
		for i, rule := range chain {
			if err := validateAction(rule.Action, false); err != nil {
				return nil, fmt.Errorf("rule program: chain %q rule %d: %w", name, i, err)
			}
			if jump, ok := rule.Action.(JumpChain); ok {
				if _, ok := chains[jump.Chain]; !ok {
					return nil, fmt.Errorf("rule program: chain %q rule %d: jump to undefined chain %q", name, i, jump.Chain)
				}
			}
		}
	}

	return p, nil
}

// validateAction walks an action tree rejecting JumpChain below the top
// level (nested == true once inside an All).
func validateAction(a Action, nested bool) error {
	switch v := a.(type) {
	case JumpChain:
		if nested {
			return fmt.Errorf("jump to chain %q must be a rule's direct action, not nested inside All", v.Chain)
		}
	case All:
		for _, sub := range v.Actions {
			if err := validateAction(sub, true); err != nil {
				return err
			}
		}
	}
	return nil
}
