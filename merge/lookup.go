package merge

import (
	"github.com/ledgerkit/ledgerkit/ast"
	"github.com/ledgerkit/ledgerkit/ledger"
)

// unknownAccountTag is the flag tag that marks a posting's account as a
// placeholder the rule engine (or an operator) is expected to fill in later
// (§4.3 account-override rule).
const unknownAccountTag = "unknown-account"

// existingPostingLookup is the merge engine's two-step Existing Posting
// Lookup (§4.3): an exact fingerprint match, falling back to a soft match on
// (date, amount, balance, account) when the source posting carries no
// fingerprint the index recognizes, or it carries one the index doesn't
// know about yet.
//
// It returns the set of destination Handles the posting could merge into.
// Two or more fingerprint hits is a FingerprintCollisionError: the
// fingerprint-match step is defined to find at most one posting, so more
// than one is a fingerprint-integrity violation, not an ordinary ambiguity.
func existingPostingLookup(dest *ast.Journal, idx *ledger.Index, srcDate ast.Date, p *ast.Posting, cmp DateEqual) ([]ledger.Handle, error) {
	fpHandles := idx.LookupAny(p.Fingerprints())
	if len(fpHandles) >= 2 {
		return nil, &FingerprintCollisionError{Handles: fpHandles}
	}
	if len(fpHandles) == 1 {
		return fpHandles, nil
	}

	var softMatches []ledger.Handle
	for ti, txn := range dest.Transactions {
		if !cmp.Equal(srcDate, txn.Date()) {
			continue
		}
		for pi, q := range txn.Postings {
			if softMatch(p, q) {
				softMatches = append(softMatches, ledger.Handle{TransactionIndex: ti, PostingIndex: pi})
			}
		}
	}
	return softMatches, nil
}

// softMatch implements the soft-match predicate (§4.3): same amount and
// balance assertion (when both sides state one), same account unless either
// side is an unresolved placeholder. A posting with an elided amount never
// soft-matches: there is no value to compare it against.
func softMatch(p, q *ast.Posting) bool {
	if p.Amount == nil || q.Amount == nil {
		return false
	}
	if !p.Amount.Equal(*q.Amount) {
		return false
	}
	if p.Balance != nil && q.Balance != nil && !p.Balance.Equal(*q.Balance) {
		return false
	}
	pUnknown := p.HasFlagTag(unknownAccountTag)
	qUnknown := q.HasFlagTag(unknownAccountTag)
	if !pUnknown && !qUnknown && p.Account() != q.Account() {
		return false
	}
	return true
}
