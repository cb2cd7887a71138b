package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ledgerkit/ledgerkit/ast"
	"github.com/ledgerkit/ledgerkit/formatter"
	"github.com/ledgerkit/ledgerkit/loader"
	"github.com/ledgerkit/ledgerkit/ruleprogram"
	"github.com/ledgerkit/ledgerkit/rules"
)

// ApplyRulesCmd runs a YAML rule program over every posting in a journal
// (§4, §6.3, §6.4), mutating postings in place via each rule's actions.
type ApplyRulesCmd struct {
	Program string      `help:"Rule program YAML file." arg:""`
	File    FileOrStdin `help:"Journal filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`

	Output string `help:"Write the resulting journal here instead of stdout." short:"o"`

	StepBudget int `help:"Per-posting rule step budget." default:"10000"`
}

// Run executes the apply-rules command.
func (cmd *ApplyRulesCmd) Run(ctx *kong.Context, globals *Globals) error {
	programFile, err := os.Open(cmd.Program)
	if err != nil {
		return fmt.Errorf("failed to open rule program: %w", err)
	}
	defer programFile.Close()

	program, err := ruleprogram.Load(programFile)
	if err != nil {
		return err
	}

	ldr := loader.New()
	j, err := cmd.File.LoadJournal(context.Background(), ldr)
	if err != nil {
		return err
	}

	interp := rules.NewInterpreter(program)
	if cmd.StepBudget > 0 {
		interp.StepBudget = cmd.StepBudget
	}

	var runErr error
	j.Postings(func(txn *ast.Transaction, p *ast.Posting) {
		if runErr != nil {
			return
		}
		evalCtx, err := interp.Run(txn, p)
		if err != nil {
			runErr = err
			return
		}
		for _, w := range evalCtx.Warnings {
			printInfof(ctx.Stdout, "%s: %s", txn.Description, w)
		}
	})
	if runErr != nil {
		return runErr
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
	printSuccess(ctx.Stdout, fmt.Sprintf("rules applied, written to %s", cmd.Output))
	return nil
}
