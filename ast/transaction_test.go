package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTransaction_TagsAreASet(t *testing.T) {
	date, err := ParseDate("2024-01-15")
	assert.NoError(t, err)

	txn := NewTransaction(date, "Coffee")
	txn.AddTag("recurring")
	txn.AddTag("recurring")

	assert.Equal(t, 1, len(txn.Tags()))
	assert.True(t, txn.HasTag("recurring"))
}

func TestTransaction_PostingOrderIsStable(t *testing.T) {
	date, _ := ParseDate("2024-01-15")
	txn := NewTransaction(date, "Coffee")
	txn.AppendPosting(NewPosting("expenses:unknown"))
	txn.AppendPosting(NewPosting("assets:bank"))

	assert.Equal(t, "expenses:unknown", txn.Postings[0].Account())
	assert.Equal(t, "assets:bank", txn.Postings[1].Account())
}

func TestTransaction_Clone(t *testing.T) {
	date, _ := ParseDate("2024-01-15")
	txn := NewTransaction(date, "Coffee")
	txn.Code = "A1"
	txn.AddTag("recurring")

	clone := txn.Clone()
	clone.Description = "Different"
	clone.AddTag("other")

	assert.Equal(t, "Coffee", txn.Description)
	assert.Equal(t, 1, len(txn.Tags()))
	assert.Equal(t, date, clone.Date(), "date is immutable and carried through clone")
}
