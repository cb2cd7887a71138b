package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ledgerkit/ledgerkit/ast"
)

// UnknownAccountTag is the flag tag importers place on the counter-posting
// they cannot classify — the same sentinel the merge engine's
// account-override rule and the rule engine's classification chains look
// for (§4.3, §8 scenario 6).
const UnknownAccountTag = "unknown-account"

// CSVColumns maps the source CSV's column indices to the fields a record
// needs. Indices are 0-based.
type CSVColumns struct {
	Date        int
	Description int
	Amount      int
	// Balance is optional; -1 means "not present in this export".
	Balance int
}

// CSVImporter reads a bank's CSV export and emits one Transaction per row,
// with two postings: Account (the known side) and CounterAccount (tagged
// UnknownAccountTag, since the importer has no classification logic of its
// own — that is the rule engine's job, §4.2).
type CSVImporter struct {
	Columns CSVColumns

	// Algo, Version, and UserLabel build the fingerprint namespace
	// "fp-<algo>.<version>.<userlabel>" (§6.2), e.g. "nwcsv", 6, "checking".
	Algo      string
	Version   int
	UserLabel string

	// Account is the known leg's account, e.g. "assets:bank:checking".
	Account string
	// CounterAccount is the unclassified leg's account, e.g.
	// "expenses:unknown".
	CounterAccount string
	// Commodity is the currency symbol applied to every parsed amount.
	Commodity string

	// HasHeader skips the CSV's first row.
	HasHeader bool
}

// Import reads every row of r and returns a Journal of one Transaction per
// row, each tagged with a freshly generated fingerprint pair.
func (imp *CSVImporter) Import(r io.Reader, filename string) (*ast.Journal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("importer: reading %s: %w", filename, err)
	}
	if imp.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	fpName := FingerprintName(imp.Algo, imp.Version, imp.UserLabel)

	j := ast.NewJournal()
	for i, row := range rows {
		txn, err := imp.buildTransaction(row, fpName, i)
		if err != nil {
			return nil, fmt.Errorf("importer: %s record %d: %w", filename, i, err)
		}
		j.Append(txn)
	}
	return j, nil
}

func (imp *CSVImporter) buildTransaction(row []string, fpName string, recordIndex int) (*ast.Transaction, error) {
	if err := imp.validateRow(row); err != nil {
		return nil, err
	}

	date, err := ast.ParseDate(strings.TrimSpace(row[imp.Columns.Date]))
	if err != nil {
		return nil, err
	}
	amount, err := ast.ParseAmount(strings.TrimSpace(row[imp.Columns.Amount]), imp.Commodity)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(row[imp.Columns.Description])

	record := []byte(strings.Join(row, ","))

	txn := ast.NewTransaction(date, description)

	known := ast.NewPosting(imp.Account)
	known.Amount = &amount
	known.SetValueTag(fpName, FingerprintValue(legSalt(record, 0)))
	if imp.Columns.Balance >= 0 && imp.Columns.Balance < len(row) && strings.TrimSpace(row[imp.Columns.Balance]) != "" {
		bal, err := ast.ParseAmount(strings.TrimSpace(row[imp.Columns.Balance]), imp.Commodity)
		if err != nil {
			return nil, err
		}
		known.Balance = &bal
	}
	txn.AppendPosting(known)

	counter := ast.NewPosting(imp.CounterAccount)
	negated := ast.NewAmount(amount.Value.Neg(), imp.Commodity)
	counter.Amount = &negated
	counter.AddFlagTag(UnknownAccountTag)
	counter.SetValueTag(fpName, FingerprintValue(legSalt(record, 1)))
	txn.AppendPosting(counter)

	return txn, nil
}

func (imp *CSVImporter) validateRow(row []string) error {
	for _, col := range []int{imp.Columns.Date, imp.Columns.Description, imp.Columns.Amount} {
		if col < 0 || col >= len(row) {
			return fmt.Errorf("column index %d out of range for row of %d fields", col, len(row))
		}
	}
	return nil
}
