package importer

import (
	"fmt"

	"github.com/ledgerkit/ledgerkit/ast"
)

// GenerateFingerprints implements the `generate-fingerprints` subcommand
// (§6.4): reads a journal lacking fingerprints and assigns a default
// fingerprint to every posting that doesn't already carry one under the
// given namespace. The hash input is the posting's own content (date,
// description, account, amount) rather than a raw import record, since by
// this point the source bytes that produced the posting are gone — so the
// same content always hashes to the same value, and postings that already
// carry a fingerprint under the namespace keep it, which makes re-running
// generate-fingerprints a no-op (idempotent). An existing fingerprint is not
// recomputed when a posting's content is later edited. The posting's index
// within its transaction is folded in
// the same way importer.legSalt salts the two legs of a CSV row, so two
// postings that otherwise share account+amount (e.g. a wash transaction)
// still land on distinct fingerprints (§4.1 uniqueness invariant).
func GenerateFingerprints(j *ast.Journal, algo string, version int, userlabel string) {
	fpName := FingerprintName(algo, version, userlabel)

	for _, txn := range j.Transactions {
		for i, p := range txn.Postings {
			if _, ok := p.ValueTag(fpName); ok {
				continue
			}
			p.SetValueTag(fpName, FingerprintValue(legSalt(contentKey(txn, p), i)))
		}
	}
}

func contentKey(txn *ast.Transaction, p *ast.Posting) []byte {
	amt := "elided"
	if p.Amount != nil {
		amt = p.Amount.String()
	}
	return []byte(fmt.Sprintf("%s|%s|%s|%s", txn.Date().String(), txn.Description, p.Account(), amt))
}
