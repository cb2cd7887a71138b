package rules

import (
	"fmt"

	"github.com/ledgerkit/ledgerkit/ast"
)

// EvalContext is the posting/transaction pair every Predicate and Action is
// evaluated against: one posting at a time, inside its parent transaction
// (§4.2, §5 — the rule engine holds no other state between postings).
type EvalContext struct {
	Transaction *ast.Transaction
	Posting     *ast.Posting

	// Warnings collects non-fatal notices, e.g. removing an fp-* tag from
	// within rules, which is permitted but logged as a warning (§4.2 errors).
	Warnings []string
}

func (c *EvalContext) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
