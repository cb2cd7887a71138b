package merge

import (
	"fmt"

	"github.com/ledgerkit/ledgerkit/ast"
	"github.com/ledgerkit/ledgerkit/ledger"
)

// candidateTag builds the "candidate-<fp>" value tag (§4.3, §8 scenario 4)
// that records one ambiguous destination candidate on a diverted posting.
// The tag name encodes a fingerprint value taken from the candidate; when the
// candidate carries no fingerprint of its own (a destination journal merged
// before fingerprints existed) a position-derived key stands in, so the tag
// is still unique and stable for as long as that destination posting's
// Handle is.
func candidateTag(idx *ledger.Index, h ledger.Handle) ast.Tag {
	candidate := idx.Posting(h)
	key := ""
	if fps := candidate.Fingerprints(); len(fps) > 0 {
		key = *fps[0].Value
	} else {
		key = fmt.Sprintf("pos-%d.%d", h.TransactionIndex, h.PostingIndex)
	}
	return ast.ValueTag("candidate-"+key, candidate.Account())
}
