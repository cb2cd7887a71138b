package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ledgerkit/ledgerkit/formatter"
	"github.com/ledgerkit/ledgerkit/importer"
	"github.com/ledgerkit/ledgerkit/loader"
)

// ImportCmd imports a bank CSV export into a journal of fingerprinted
// transactions, ready to be merged into an existing journal (§6.1, §6.4).
type ImportCmd struct {
	File FileOrStdin `help:"CSV input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`

	Output string `help:"Write the resulting journal here instead of stdout." short:"o"`

	DateColumn        int `help:"0-based index of the date column." default:"0"`
	DescriptionColumn int `help:"0-based index of the description column." default:"1"`
	AmountColumn      int `help:"0-based index of the amount column." default:"2"`
	BalanceColumn     int `help:"0-based index of the balance column, or -1 if absent." default:"-1"`
	HasHeader         bool `help:"Skip the CSV's first row."`

	Account        string `help:"Account for the known leg, e.g. assets:bank:checking." required:""`
	CounterAccount string `help:"Account for the unclassified leg, e.g. expenses:unknown." default:"expenses:unknown"`
	Commodity      string `help:"Currency symbol applied to every parsed amount." required:""`

	Algo      string `help:"Fingerprint algorithm label." default:"csv"`
	Version   int    `help:"Fingerprint namespace version." default:"1"`
	UserLabel string `help:"Fingerprint namespace user label, e.g. the account nickname." required:""`
}

// Run executes the import command.
func (cmd *ImportCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	content, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	imp := &importer.CSVImporter{
		Columns: importer.CSVColumns{
			Date:        cmd.DateColumn,
			Description: cmd.DescriptionColumn,
			Amount:      cmd.AmountColumn,
			Balance:     cmd.BalanceColumn,
		},
		Algo:           cmd.Algo,
		Version:        cmd.Version,
		UserLabel:      cmd.UserLabel,
		Account:        cmd.Account,
		CounterAccount: cmd.CounterAccount,
		Commodity:      cmd.Commodity,
		HasHeader:      cmd.HasHeader,
	}

	j, err := imp.Import(bytes.NewReader(content), cmd.File.Filename)
	if err != nil {
		return err
	}

	rendered := []byte(formatter.Format(j))

	if cmd.Output == "" {
		_, _ = ctx.Stdout.Write(rendered)
		return nil
	}

	if _, err := os.Stat(cmd.Output); err == nil {
		overwrite, err := promptYesNo(ctx, fmt.Sprintf("%s already exists, overwrite?", cmd.Output))
		if err != nil {
			return err
		}
		if !overwrite {
			printInfof(ctx.Stdout, "aborted, %s left unchanged", cmd.Output)
			return nil
		}
	}

	if err := loader.WriteJournal(cmd.Output, rendered); err != nil {
		return err
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("imported %d transactions into %s", j.Len(), cmd.Output))
	return nil
}
