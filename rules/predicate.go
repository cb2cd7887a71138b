package rules

// Predicate is evaluated against the current posting/transaction, pure and
// side-effect-free (§4.2). Implementations are a closed set of tagged
// variants rather than a class hierarchy.
type Predicate interface {
	Eval(ctx *EvalContext) bool
}

// True always matches.
type True struct{}

func (True) Eval(*EvalContext) bool { return true }

// Account matches the posting's account name.
type Account struct {
	Match StrMatch
}

func (p Account) Eval(ctx *EvalContext) bool {
	return p.Match.Match(ctx.Posting.Account())
}

// TransactionDescription matches the parent transaction's description.
type TransactionDescription struct {
	Match StrMatch
}

func (p TransactionDescription) Eval(ctx *EvalContext) bool {
	return p.Match.Match(ctx.Transaction.Description)
}

// PostingHasValueTag is true iff the named value tag is present on the
// posting under inspection.
type PostingHasValueTag struct {
	Name string
}

func (p PostingHasValueTag) Eval(ctx *EvalContext) bool {
	_, ok := ctx.Posting.ValueTag(p.Name)
	return ok
}

// PostingValueTag is true iff the named value tag is present and its value
// matches.
type PostingValueTag struct {
	Name  string
	Match StrMatch
}

func (p PostingValueTag) Eval(ctx *EvalContext) bool {
	v, ok := ctx.Posting.ValueTag(p.Name)
	return ok && p.Match.Match(v)
}

// PostingHasFlagTag is true iff the named flag tag is present on the
// posting under inspection — the flag-tag counterpart of PostingValueTag,
// filling a gap the base predicate set leaves silent.
type PostingHasFlagTag struct {
	Name string
}

func (p PostingHasFlagTag) Eval(ctx *EvalContext) bool {
	return ctx.Posting.HasFlagTag(p.Name)
}

// PostingHasAnyFlagTag is true iff the posting carries at least one flag
// tag, regardless of name.
type PostingHasAnyFlagTag struct{}

func (PostingHasAnyFlagTag) Eval(ctx *EvalContext) bool {
	for _, t := range ctx.Posting.Tags() {
		if t.IsFlag() {
			return true
		}
	}
	return false
}

// Not negates its operand.
type Not struct {
	Predicate Predicate
}

func (p Not) Eval(ctx *EvalContext) bool {
	return !p.Predicate.Eval(ctx)
}

// AllOf is the conjunction of its operands. An empty AllOf is true (§4.2).
type AllOf struct {
	Predicates []Predicate
}

func (p AllOf) Eval(ctx *EvalContext) bool {
	for _, sub := range p.Predicates {
		if !sub.Eval(ctx) {
			return false
		}
	}
	return true
}

// Any is the disjunction of its operands. An empty Any is false (§4.2).
type Any struct {
	Predicates []Predicate
}

func (p Any) Eval(ctx *EvalContext) bool {
	for _, sub := range p.Predicates {
		if sub.Eval(ctx) {
			return true
		}
	}
	return false
}
