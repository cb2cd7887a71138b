// Package merge implements the merge engine: it unions a destination
// journal with one or more source journals via fingerprint identity with a
// soft-match fallback (§4.3), producing a deterministic merged journal plus
// a side channel of ambiguous items.
package merge

import (
	"fmt"

	"github.com/ledgerkit/ledgerkit/ledger"
)

// FingerprintCollisionError is raised when a source posting's fingerprint
// set intersects two or more distinct destination postings (§4.3 step 1) —
// a fingerprint-integrity error (§7), distinct from an ordinary soft-match
// ambiguity.
type FingerprintCollisionError struct {
	Handles []ledger.Handle
}

func (e *FingerprintCollisionError) Error() string {
	return fmt.Sprintf("merge: fingerprint collision across %d distinct destination postings: %v", len(e.Handles), e.Handles)
}

// FingerprintConflictError is raised when merging a posting into its match
// finds the same fingerprint tag name present on both sides with different
// values: two identities claim the same posting (§4.3 "merging p into q").
type FingerprintConflictError struct {
	Name        string
	SourceValue string
	DestValue   string
}

func (e *FingerprintConflictError) Error() string {
	return fmt.Sprintf("merge: fingerprint conflict on %s: source=%q destination=%q", e.Name, e.SourceValue, e.DestValue)
}

// AmbiguousNoFingerprintError is a merge-ambiguity error (§7): a source
// posting with no fingerprints reached the ambiguous (multiple soft-match
// candidates) branch, where a fingerprint would be needed to tag the
// candidates for the unmerged side channel. This is a hard error, distinct
// from the ordinary ambiguity-with-fingerprint outcome, which is not an
// error at all.
type AmbiguousNoFingerprintError struct {
	Account string
}

func (e *AmbiguousNoFingerprintError) Error() string {
	return fmt.Sprintf("merge: posting on account %q is ambiguous against multiple destination postings and carries no fingerprint to record the ambiguity", e.Account)
}
