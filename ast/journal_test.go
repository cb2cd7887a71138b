package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestJournal_AppendAndIterate(t *testing.T) {
	j := NewJournal()
	assert.Equal(t, 0, j.Len())

	date, _ := ParseDate("2024-01-15")
	txn := NewTransaction(date, "Coffee")
	txn.AppendPosting(NewPosting("expenses:unknown"))
	txn.AppendPosting(NewPosting("assets:bank"))
	j.Append(txn)

	assert.Equal(t, 1, j.Len())

	var accounts []string
	j.Postings(func(_ *Transaction, p *Posting) {
		accounts = append(accounts, p.Account())
	})
	assert.Equal(t, []string{"expenses:unknown", "assets:bank"}, accounts)
}
