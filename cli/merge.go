package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ledgerkit/ledgerkit/errors"
	"github.com/ledgerkit/ledgerkit/formatter"
	"github.com/ledgerkit/ledgerkit/loader"
	"github.com/ledgerkit/ledgerkit/merge"
	"github.com/ledgerkit/ledgerkit/output"
)

// MergeCmd merges one or more source journals into a destination journal by
// fingerprint identity with soft-match fallback (§4.3, §6.4).
type MergeCmd struct {
	Dest    string   `help:"Destination journal, merged in place." arg:""`
	Sources []string `help:"Source journals to merge into dest." arg:"" name:"source"`

	Unmerged string `help:"Write transactions that couldn't be merged unambiguously here." default:""`
}

// Run executes the merge command.
func (cmd *MergeCmd) Run(ctx *kong.Context, globals *Globals) error {
	ldr := loader.New()

	dest, err := ldr.LoadJournal(context.Background(), cmd.Dest)
	if err != nil {
		return err
	}

	sources, err := ldr.LoadSources(context.Background(), cmd.Sources)
	if err != nil {
		return err
	}

	merged, unmerged, err := merge.Merge(dest, sources, merge.Options{})
	if err != nil {
		styles := output.NewStyles(ctx.Stderr)
		printError(ctx.Stderr, errors.NewTextFormatter(styles).Format(err))
		return NewCommandError(1)
	}

	rendered := []byte(formatter.Format(merged))

	if _, statErr := os.Stat(cmd.Dest); statErr == nil {
		overwrite, err := promptYesNo(ctx, fmt.Sprintf("%s will be overwritten with the merged journal, continue?", cmd.Dest))
		if err != nil {
			return err
		}
		if !overwrite {
			printInfof(ctx.Stdout, "aborted, %s left unchanged", cmd.Dest)
			return nil
		}
	}

	if err := loader.WriteJournal(cmd.Dest, rendered); err != nil {
		return err
	}

	if cmd.Unmerged != "" && unmerged.Len() > 0 {
		unmergedRendered := []byte(formatter.Format(unmerged))
		if err := loader.WriteJournal(cmd.Unmerged, unmergedRendered); err != nil {
			return err
		}
		printInfof(ctx.Stdout, "%d transactions could not be merged unambiguously, written to %s", unmerged.Len(), cmd.Unmerged)
	} else if unmerged.Len() > 0 {
		printInfof(ctx.Stdout, "%d transactions could not be merged unambiguously and were discarded (pass --unmerged to keep them)", unmerged.Len())
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("merged into %s", cmd.Dest))
	return nil
}
