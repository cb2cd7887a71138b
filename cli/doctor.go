package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ledgerkit/ledgerkit/loader"
	"github.com/ledgerkit/ledgerkit/parser"
	"github.com/ledgerkit/ledgerkit/ruleprogram"
	"github.com/ledgerkit/ledgerkit/rules"
)

// DoctorCmd provides doctor utilities for debugging ledgerkit files.
type DoctorCmd struct {
	Lex   LexCmd   `cmd:"" help:"Show lexical tokens from a journal file."`
	Trace TraceCmd `cmd:"" help:"Trace rule-engine evaluation for one transaction's postings."`
}

// LexCmd shows lexical tokens from a journal file.
type LexCmd struct {
	File FileOrStdin `help:"Journal input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	content, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	lexer := parser.NewLexer(content, cmd.File.Filename)
	tokens, err := lexer.ScanAll()
	if err != nil {
		return fmt.Errorf("failed to lex file: %w", err)
	}

	for _, token := range tokens {
		if token.Type == parser.EOF {
			continue
		}

		tokenContent := token.String(content)

		_, _ = fmt.Fprintf(ctx.Stdout, "%-10s %d:%d    %q\n",
			token.Type.String(),
			token.Line,
			token.Column,
			tokenContent)
	}

	return nil
}

// TraceCmd runs the rule program over a single transaction (identified by
// its 0-based index in the journal) and prints every rule the interpreter
// evaluated, in order, using the interpreter's Trace hook.
type TraceCmd struct {
	Program          string      `help:"Rule program YAML file." arg:""`
	File             FileOrStdin `help:"Journal filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	TransactionIndex int         `help:"0-based index of the transaction to trace." default:"0"`
}

// Run executes the trace command.
func (cmd *TraceCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	if cmd.TransactionIndex < 0 || cmd.TransactionIndex >= j.Len() {
		return fmt.Errorf("transaction index %d out of range (journal has %d transactions)", cmd.TransactionIndex, j.Len())
	}
	txn := j.Transactions[cmd.TransactionIndex]

	interp := rules.NewInterpreter(program)

	for i, p := range txn.Postings {
		_, _ = fmt.Fprintf(ctx.Stdout, "posting %d (%s):\n", i, p.Account())
		interp.Trace = func(chain string, cursor int, matched bool) {
			_, _ = fmt.Fprintf(ctx.Stdout, "  %s[%d] matched=%t\n", chain, cursor, matched)
		}
		evalCtx, err := interp.Run(txn, p)
		if err != nil {
			return err
		}
		for _, w := range evalCtx.Warnings {
			printInfof(ctx.Stdout, "%s", w)
		}
	}

	return nil
}
