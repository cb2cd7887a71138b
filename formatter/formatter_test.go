package formatter

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerkit/ledgerkit/ast"
	"github.com/ledgerkit/ledgerkit/parser"
)

func TestFormat_RoundTripsTagsAmountsAndBalances(t *testing.T) {
	src := `2024-02-01 (4021) Tesco  ; :reconciled:
    expenses:unknown  -10 GBP  = -10 GBP  ; bank: Nationwide, imported
    assets:bank  10 GBP
`
	j, err := parser.Parse([]byte(src), "test.journal")
	assert.NoError(t, err)

	out := Format(j)

	reparsed, err := parser.Parse([]byte(out), "roundtrip.journal")
	assert.NoError(t, err)
	assert.Equal(t, 1, reparsed.Len())

	txn := reparsed.Transactions[0]
	assert.Equal(t, "4021", txn.Code)
	assert.Equal(t, "Tesco", txn.Description)
	assert.True(t, txn.HasTag("reconciled"))

	p0 := txn.Postings[0]
	assert.Equal(t, "-10", p0.Amount.Value.String())
	assert.Equal(t, "-10", p0.Balance.Value.String())
	bank, ok := p0.ValueTag("bank")
	assert.True(t, ok)
	assert.Equal(t, "Nationwide", bank)
	assert.Equal(t, "imported", p0.Comment)
}

func TestFormat_EmptyJournal(t *testing.T) {
	assert.Equal(t, "", Format(ast.NewJournal()))
}

func TestFormat_MultipleTransactionsSeparatedByBlankLine(t *testing.T) {
	j := ast.NewJournal()
	d1, _ := ast.ParseDate("2024-01-01")
	d2, _ := ast.ParseDate("2024-01-02")
	j.Append(ast.NewTransaction(d1, "A"))
	j.Append(ast.NewTransaction(d2, "B"))

	out := Format(j)
	reparsed, err := parser.Parse([]byte(out), "roundtrip.journal")
	assert.NoError(t, err)
	assert.Equal(t, 2, reparsed.Len())
}
