package ledger

import "github.com/ledgerkit/ledgerkit/ast"

// fingerprintKey identifies a fingerprint tag by its (name, value) pair —
// the merge engine never parses namespace or value, only exact string
// equality of the pair matters (§6.2).
type fingerprintKey struct {
	Name  string
	Value string
}

// Index is the journal-level fingerprint -> posting Handle map (§4.1). It is
// built on demand and mutated exclusively by the merge engine as postings
// are appended or tagged (§5).
type Index struct {
	journal *ast.Journal
	byFp    map[fingerprintKey]Handle
}

// BuildIndex walks journal order then intra-transaction order (the
// enumeration order the merge engine's determinism guarantee depends on),
// indexing every fingerprint tag. Inserting a duplicate fingerprint is an
// error surfaced to the merge engine (§4.1 invariant).
func BuildIndex(j *ast.Journal) (*Index, error) {
	idx := &Index{journal: j, byFp: make(map[fingerprintKey]Handle)}
	for ti, txn := range j.Transactions {
		for pi, p := range txn.Postings {
			h := Handle{TransactionIndex: ti, PostingIndex: pi}
			if err := idx.insertPosting(h, p); err != nil {
				return nil, err
			}
		}
	}
	return idx, nil
}

func (idx *Index) insertPosting(h Handle, p *ast.Posting) error {
	for _, fp := range p.Fingerprints() {
		key := fingerprintKey{Name: fp.Name, Value: *fp.Value}
		if existing, ok := idx.byFp[key]; ok && existing != h {
			return &DuplicateFingerprintError{Name: key.Name, Value: key.Value, First: existing, Second: h}
		}
		idx.byFp[key] = h
	}
	return nil
}

// Insert registers the fingerprints currently carried by the posting at h.
// Call this after appending a new posting to the journal or after a rule
// mutates its fingerprint tags, so the index stays in sync (§5).
func (idx *Index) Insert(h Handle) error {
	return idx.insertPosting(h, idx.Posting(h))
}

// Lookup returns the Handle of the posting carrying fingerprint (name,
// value), if any.
func (idx *Index) Lookup(name, value string) (Handle, bool) {
	h, ok := idx.byFp[fingerprintKey{Name: name, Value: value}]
	return h, ok
}

// LookupAny returns the set of distinct Handles carrying any of the given
// fingerprint tags (used by the merge engine's fingerprint-match step,
// §4.3). Order is not significant; callers that need determinism sort by
// Handle.
func (idx *Index) LookupAny(fps []ast.Tag) []Handle {
	seen := make(map[Handle]bool)
	var out []Handle
	for _, fp := range fps {
		if fp.Value == nil {
			continue
		}
		if h, ok := idx.byFp[fingerprintKey{Name: fp.Name, Value: *fp.Value}]; ok && !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}

// Posting resolves a Handle to the posting it currently names.
func (idx *Index) Posting(h Handle) *ast.Posting {
	return idx.journal.Transactions[h.TransactionIndex].Postings[h.PostingIndex]
}

// Transaction resolves a Handle to its parent transaction.
func (idx *Index) Transaction(h Handle) *ast.Transaction {
	return idx.journal.Transactions[h.TransactionIndex]
}

// Journal returns the journal this index was built from.
func (idx *Index) Journal() *ast.Journal {
	return idx.journal
}
