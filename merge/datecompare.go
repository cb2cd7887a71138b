package merge

import "github.com/ledgerkit/ledgerkit/ast"

// DateEqual abstracts the date comparator the soft-match step uses (§4.3,
// §9 open question: the spec leaves "same date" open to interpretation, e.g.
// a tolerance window for a transaction that posts a day late). Implementations
// must be a pure function of the two dates.
type DateEqual interface {
	Equal(a, b ast.Date) bool
}

// StrictDateEqual is the shipped DateEqual: calendar-day equality, no
// tolerance window. This is the interpretation this implementation resolves
// the open question to; a tolerance-window comparator can be supplied via
// Options.DateComparator without changing the merge algorithm.
type StrictDateEqual struct{}

// Equal reports whether a and b name the same calendar day.
func (StrictDateEqual) Equal(a, b ast.Date) bool {
	return a.Equal(b)
}
