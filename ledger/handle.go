// Package ledger provides the fingerprint discipline that gives every
// posting a stable cross-run identity (§4.1, §6.2), and the errors that
// discipline raises when it is violated.
package ledger

// Handle is a stable reference to a posting inside a Journal. It is an
// (transaction index, posting index) pair rather than a raw pointer,
// because a Journal's transaction and posting slices can grow and reallocate
// as the merge engine appends to them (§9 design note: posting identity in
// the index).
type Handle struct {
	TransactionIndex int
	PostingIndex     int
}
