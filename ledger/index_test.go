package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerkit/ledgerkit/ast"
)

func mustDate(t *testing.T, s string) ast.Date {
	t.Helper()
	d, err := ast.ParseDate(s)
	assert.NoError(t, err)
	return d
}

func TestBuildIndex_UniqueFingerprints(t *testing.T) {
	j := ast.NewJournal()
	txn := ast.NewTransaction(mustDate(t, "2024-01-15"), "Coffee")
	p1 := ast.NewPosting("expenses:unknown")
	p1.SetValueTag("fp-nwcsv6.1.checking", "abc")
	p2 := ast.NewPosting("assets:bank")
	p2.SetValueTag("fp-nwcsv6.1.checking", "def")
	txn.AppendPosting(p1)
	txn.AppendPosting(p2)
	j.Append(txn)

	idx, err := BuildIndex(j)
	assert.NoError(t, err)

	h, ok := idx.Lookup("fp-nwcsv6.1.checking", "abc")
	assert.True(t, ok)
	assert.Equal(t, "expenses:unknown", idx.Posting(h).Account())
}

func TestBuildIndex_DuplicateFingerprintIsFatal(t *testing.T) {
	j := ast.NewJournal()
	txn := ast.NewTransaction(mustDate(t, "2024-02-01"), "Dup")
	p1 := ast.NewPosting("expenses:unknown")
	p1.SetValueTag("fp-x.1.a", "zzz")
	p2 := ast.NewPosting("assets:bank")
	p2.SetValueTag("fp-x.1.a", "zzz")
	txn.AppendPosting(p1)
	txn.AppendPosting(p2)
	j.Append(txn)

	_, err := BuildIndex(j)
	assert.Error(t, err)

	var dupErr *DuplicateFingerprintError
	assert.True(t, asDuplicate(err, &dupErr))
}

func asDuplicate(err error, target **DuplicateFingerprintError) bool {
	if e, ok := err.(*DuplicateFingerprintError); ok {
		*target = e
		return true
	}
	return false
}

func TestIndex_LookupAny(t *testing.T) {
	j := ast.NewJournal()
	txn := ast.NewTransaction(mustDate(t, "2024-02-01"), "Ambiguous")
	q1 := ast.NewPosting("expenses:unknown")
	q1.SetValueTag("fp-x.1.a", "q1")
	q2 := ast.NewPosting("expenses:unknown")
	q2.SetValueTag("fp-y.1.a", "q2")
	txn.AppendPosting(q1)
	txn.AppendPosting(q2)
	j.Append(txn)

	idx, err := BuildIndex(j)
	assert.NoError(t, err)

	src := ast.NewPosting("expenses:unknown")
	src.SetValueTag("fp-x.1.a", "q1")
	src.SetValueTag("fp-y.1.a", "q2")

	handles := idx.LookupAny(src.Fingerprints())
	assert.Equal(t, 2, len(handles))
}
