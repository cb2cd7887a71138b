package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ledgerkit/ledgerkit/formatter"
	"github.com/ledgerkit/ledgerkit/importer"
	"github.com/ledgerkit/ledgerkit/loader"
)

// GenerateFingerprintsCmd backfills fingerprints onto postings that don't
// already carry one in the given namespace (§6.2, §6.4).
type GenerateFingerprintsCmd struct {
	File FileOrStdin `help:"Journal filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`

	Output string `help:"Write the resulting journal here instead of stdout." short:"o"`

	Algo      string `help:"Fingerprint algorithm label." default:"sha256"`
	Version   int    `help:"Fingerprint namespace version." default:"1"`
	UserLabel string `help:"Fingerprint namespace user label." required:""`
}

// Run executes the generate-fingerprints command.
func (cmd *GenerateFingerprintsCmd) Run(ctx *kong.Context, globals *Globals) error {
	ldr := loader.New()
	j, err := cmd.File.LoadJournal(context.Background(), ldr)
	if err != nil {
		return err
	}

	importer.GenerateFingerprints(j, cmd.Algo, cmd.Version, cmd.UserLabel)

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
	printSuccess(ctx.Stdout, fmt.Sprintf("fingerprints generated in %s", cmd.Output))
	return nil
}
