package rules

import "github.com/ledgerkit/ledgerkit/ast"

// DefaultStepBudget is the minimum per-posting step budget spec.md §4.2
// requires implementations to default to.
const DefaultStepBudget = 10_000

// Interpreter evaluates a Program against one posting at a time. It holds
// no state between postings other than the program itself (immutable) and
// the step budget (§5).
type Interpreter struct {
	Program    *Program
	StepBudget int

	// Trace, if set, is called once per evaluated rule (after its
	// predicate is tested and before its action runs), reporting the
	// chain, the cursor, and whether the predicate matched. It
	// exists for the doctor trace subcommand and has no effect on
	// evaluation semantics.
	Trace func(chain string, cursor int, matched bool)
}

// NewInterpreter constructs an Interpreter with the default step budget.
func NewInterpreter(program *Program) *Interpreter {
	return &Interpreter{Program: program, StepBudget: DefaultStepBudget}
}

// frame is one entry in the explicit jump stack: a bounded data structure
// standing in for host-language recursion, so termination guarantees do not
// depend on the Go call stack (§9 design note).
type frame struct {
	chain  string
	cursor int
}

// Run evaluates the program against the given posting inside its parent
// transaction, starting from the "start" chain, until the top-level chain
// ends (by Return or by falling off its last rule) or an error occurs.
func (in *Interpreter) Run(txn *ast.Transaction, posting *ast.Posting) (*EvalContext, error) {
	ctx := &EvalContext{Transaction: txn, Posting: posting}

	stack := []frame{{chain: StartChain, cursor: 0}}
	steps := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		chain, ok := in.Program.Chains[top.chain]
		if !ok {
			return ctx, &UndefinedChainError{Chain: top.chain}
		}

		if top.cursor >= len(chain) {
			// Falling off the end is an implicit Return with no match.
			stack = stack[:len(stack)-1]
			continue
		}

		steps++
		if steps > in.StepBudget {
			return ctx, &StepBudgetExceededError{Budget: in.StepBudget, ChainStack: chainNames(stack)}
		}

		rule := chain[top.cursor]
		matched := rule.Predicate.Eval(ctx)
		if in.Trace != nil {
			in.Trace(top.chain, top.cursor, matched)
		}

		if !matched {
			// A non-firing rule advances regardless of its FlowResult.
			top.cursor++
			continue
		}

		if jump, ok := rule.Action.(JumpChain); ok {
			// Push the return point (the next rule in this chain) before
			// transferring control.
			top.cursor++
			stack = append(stack, frame{chain: jump.Chain, cursor: 0})
			continue
		}

		if err := rule.Action.Apply(ctx); err != nil {
			return ctx, err
		}

		if rule.Flow == Return {
			stack = stack[:len(stack)-1]
			continue
		}
		top.cursor++
	}

	return ctx, nil
}

func chainNames(stack []frame) []string {
	names := make([]string, len(stack))
	for i, f := range stack {
		names[i] = f.chain
	}
	return names
}
