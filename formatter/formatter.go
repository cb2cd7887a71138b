// Package formatter serializes a *ast.Journal back to Ledger-format text
// (§6.1): a transaction is a date-led header line followed by indented
// posting lines, tags appended as "; name: value" or "; :name:" comments.
// Formatting any journal the parser package produced round-trips every
// attribute the journal model carries: tags, amounts, balances, comments,
// and posting order.
package formatter

import (
	"strings"

	"github.com/ledgerkit/ledgerkit/ast"
)

const postingIndent = "    "

// Format renders an entire journal, one blank line between transactions.
func Format(j *ast.Journal) string {
	var b strings.Builder
	for i, txn := range j.Transactions {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeTransaction(&b, txn)
	}
	return b.String()
}

func writeTransaction(b *strings.Builder, txn *ast.Transaction) {
	b.WriteString(txn.Date().String())
	if txn.Code != "" {
		b.WriteString(" (")
		b.WriteString(txn.Code)
		b.WriteByte(')')
	}
	if txn.Description != "" {
		b.WriteByte(' ')
		b.WriteString(txn.Description)
	}
	if tags := txn.Tags(); len(tags) > 0 {
		b.WriteString("  ; ")
		segs := make([]string, len(tags))
		for i, name := range tags {
			segs[i] = ":" + name + ":"
		}
		b.WriteString(strings.Join(segs, ", "))
	}
	b.WriteByte('\n')

	for _, p := range txn.Postings {
		writePosting(b, p)
	}
}

func writePosting(b *strings.Builder, p *ast.Posting) {
	b.WriteString(postingIndent)
	b.WriteString(p.Account())

	if p.Amount != nil {
		b.WriteString("  ")
		b.WriteString(p.Amount.Value.String())
		b.WriteByte(' ')
		b.WriteString(p.Amount.Commodity)
	}

	if p.Balance != nil {
		b.WriteString("  = ")
		b.WriteString(p.Balance.Value.String())
		b.WriteByte(' ')
		b.WriteString(p.Balance.Commodity)
	}

	if segs := tagSegments(p); len(segs) > 0 {
		b.WriteString("  ; ")
		b.WriteString(strings.Join(segs, ", "))
	}
	b.WriteByte('\n')
}

// tagSegments renders a posting's tags and freeform comment as the segments
// of its trailing "; ..." comment, in the order value/flag tags then the
// comment text.
func tagSegments(p *ast.Posting) []string {
	var segs []string
	for _, t := range p.Tags() {
		if t.IsFlag() {
			segs = append(segs, ":"+t.Name+":")
		} else {
			segs = append(segs, t.Name+": "+*t.Value)
		}
	}
	if p.Comment != "" {
		segs = append(segs, p.Comment)
	}
	return segs
}
