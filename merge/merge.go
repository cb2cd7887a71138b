package merge

import (
	"github.com/ledgerkit/ledgerkit/ast"
	"github.com/ledgerkit/ledgerkit/ledger"
)

// Options configures a merge run.
type Options struct {
	// DateComparator is used by the soft-match step. Nil selects
	// StrictDateEqual.
	DateComparator DateEqual
}

func (o Options) dateComparator() DateEqual {
	if o.DateComparator == nil {
		return StrictDateEqual{}
	}
	return o.DateComparator
}

// Merge folds each source journal into dest, in order, applying the §4.3
// algorithm to every source transaction. It mutates and returns dest along
// with the unmerged side-channel journal holding every transaction that
// could not be merged unambiguously.
//
// dest is taken by reference and extended in place: callers that need the
// pre-merge journal preserved must clone it first. Source journals are never
// mutated, which is what gives the merge its idempotence property (§8): a
// later merge of the same source against the resulting M is a no-op.
//
// Merge returns an error and abandons the run at the first fingerprint- or
// identity-integrity violation (duplicate fingerprint already in dest,
// fingerprint collision, fingerprint conflict, or an unfingerprinted
// ambiguous posting). Ordinary ambiguity — multiple soft-match candidates,
// each carrying a fingerprint — is not an error: it routes the whole parent
// transaction to the unmerged journal.
func Merge(dest *ast.Journal, sources []*ast.Journal, opts Options) (merged *ast.Journal, unmerged *ast.Journal, err error) {
	idx, err := ledger.BuildIndex(dest)
	if err != nil {
		return nil, nil, err
	}

	cmp := opts.dateComparator()
	unmerged = ast.NewJournal()

	for _, src := range sources {
		for _, txn := range src.Transactions {
			if err := mergeTransaction(dest, idx, txn, unmerged, cmp); err != nil {
				return nil, nil, err
			}
		}
	}

	return dest, unmerged, nil
}

// mergeTransaction runs the three-phase algorithm for one source
// transaction: probe for a default destination, decide whether the whole
// transaction is ambiguous, and either divert it whole to unmerged or merge
// each of its postings (§4.3).
func mergeTransaction(dest *ast.Journal, idx *ledger.Index, srcTxn *ast.Transaction, unmerged *ast.Journal, cmp DateEqual) error {
	results := make([][]ledger.Handle, len(srcTxn.Postings))
	for i, p := range srcTxn.Postings {
		handles, err := existingPostingLookup(dest, idx, srcTxn.Date(), p, cmp)
		if err != nil {
			return err
		}
		results[i] = handles
	}

	for _, r := range results {
		if len(r) > 1 {
			return divertAmbiguous(idx, srcTxn, results, unmerged)
		}
	}

	var defaultTxn *ast.Transaction
	defaultTxnIndex := -1
	for _, r := range results {
		if len(r) == 1 {
			defaultTxn = idx.Transaction(r[0])
			defaultTxnIndex = r[0].TransactionIndex
			break
		}
	}
	if defaultTxn == nil {
		defaultTxn = srcTxn.Clone()
		dest.Append(defaultTxn)
		defaultTxnIndex = dest.Len() - 1
	}

	for i, p := range srcTxn.Postings {
		switch len(results[i]) {
		case 1:
			h := results[i][0]
			if err := mergeInto(p, idx.Posting(h)); err != nil {
				return err
			}
			if err := idx.Insert(h); err != nil {
				return err
			}
		case 0:
			clone := p.Clone()
			defaultTxn.AppendPosting(clone)
			h := ledger.Handle{TransactionIndex: defaultTxnIndex, PostingIndex: len(defaultTxn.Postings) - 1}
			if err := idx.Insert(h); err != nil {
				return err
			}
		}
	}

	return nil
}

// divertAmbiguous routes the entire source transaction to the unmerged
// journal, unchanged except for candidate-<fp> tags added to the postings
// whose lookup was ambiguous (§4.3, §8 scenario 4). Nothing is written to
// dest for this transaction: none of its postings merge, including the ones
// whose own lookup was unambiguous.
func divertAmbiguous(idx *ledger.Index, srcTxn *ast.Transaction, results [][]ledger.Handle, unmerged *ast.Journal) error {
	diverted := srcTxn.Clone()
	for i, p := range srcTxn.Postings {
		clone := p.Clone()
		if len(results[i]) > 1 {
			if len(p.Fingerprints()) == 0 {
				return &AmbiguousNoFingerprintError{Account: p.Account()}
			}
			for _, h := range results[i] {
				tag := candidateTag(idx, h)
				clone.SetValueTag(tag.Name, *tag.Value)
			}
		}
		diverted.AppendPosting(clone)
	}
	unmerged.Append(diverted)
	return nil
}

// mergeInto folds source posting p's tags into destination posting q and
// applies the account-override rule, in place (§4.3 "merging p into q").
func mergeInto(p, q *ast.Posting) error {
	for _, t := range p.Tags() {
		if t.IsFlag() {
			q.AddFlagTag(t.Name)
			continue
		}
		existing, ok := q.ValueTag(t.Name)
		if !ok {
			q.SetValueTag(t.Name, *t.Value)
			continue
		}
		if existing == *t.Value {
			continue
		}
		if t.IsFingerprint() {
			return &FingerprintConflictError{Name: t.Name, SourceValue: *t.Value, DestValue: existing}
		}
		// Non-fingerprint value tag disagreement: the incoming source value
		// wins, matching the account-override rule's source-authoritative
		// direction.
		q.SetValueTag(t.Name, *t.Value)
	}

	if q.HasFlagTag(unknownAccountTag) && !p.HasFlagTag(unknownAccountTag) {
		q.SetAccount(p.Account())
		q.RemoveFlagTag(unknownAccountTag)
	}

	return nil
}
