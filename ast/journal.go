// Package ast declares the journal model: Amounts, Tags, Postings,
// Transactions, and the Journal that holds them in order. It is the shared
// data the parser produces, the rule engine mutates posting-by-posting, and
// the merge engine folds together.
package ast

// Journal is an ordered sequence of Transactions (§3). There is no
// uniqueness invariant on transactions; uniqueness is enforced at the
// posting level via fingerprints.
type Journal struct {
	Transactions []*Transaction
}

// NewJournal constructs an empty Journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append appends a transaction, preserving journal order.
func (j *Journal) Append(t *Transaction) {
	j.Transactions = append(j.Transactions, t)
}

// Len returns the number of transactions in the journal.
func (j *Journal) Len() int {
	return len(j.Transactions)
}

// Postings calls fn for every posting in the journal, in journal order then
// intra-transaction order — the enumeration order the merge engine's
// determinism guarantee (§4.3) depends on.
func (j *Journal) Postings(fn func(txn *Transaction, p *Posting)) {
	for _, txn := range j.Transactions {
		for _, p := range txn.Postings {
			fn(txn, p)
		}
	}
}
