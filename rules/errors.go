package rules

import (
	"fmt"
	"strings"
)

// UndefinedChainError is a rule-engine error (§4.2, §7): JumpChain named a
// chain the program does not define. NewProgram catches this at load time
// for static jumps; this error type exists for defense in depth and for any
// caller that builds a Program without going through NewProgram.
type UndefinedChainError struct {
	Chain string
}

func (e *UndefinedChainError) Error() string {
	return fmt.Sprintf("rule engine: jump to undefined chain %q", e.Chain)
}

// StepBudgetExceededError is raised when a single posting's evaluation
// exceeds the configured step budget (§4.2), identifying the chain stack at
// the point of failure so a cyclic jump graph can be diagnosed.
type StepBudgetExceededError struct {
	Budget     int
	ChainStack []string
}

func (e *StepBudgetExceededError) Error() string {
	return fmt.Sprintf("rule engine: step budget %d exceeded, chain stack: %s",
		e.Budget, strings.Join(e.ChainStack, " -> "))
}
