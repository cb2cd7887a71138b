package errors

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerkit/ledgerkit/ast"
	"github.com/ledgerkit/ledgerkit/ledger"
	"github.com/ledgerkit/ledgerkit/parser"
	"github.com/ledgerkit/ledgerkit/rules"
)

func TestTextFormatter_FormatParseError(t *testing.T) {
	err := &parser.ParseError{
		Pos:     ast.Position{Filename: "test.journal", Line: 6, Column: 5},
		Message: "expected DATE",
	}

	out := NewTextFormatter(nil).Format(err)
	assert.Equal(t, "test.journal:6:5: expected DATE", out)
}

func TestTextFormatter_FormatDuplicateFingerprintError(t *testing.T) {
	err := &ledger.DuplicateFingerprintError{
		Name:   "fp-x.1.a",
		Value:  "zzz",
		First:  ledger.Handle{TransactionIndex: 0, PostingIndex: 0},
		Second: ledger.Handle{TransactionIndex: 1, PostingIndex: 0},
	}

	out := NewTextFormatter(nil).Format(err)
	assert.Equal(t, "duplicate fingerprint fp-x.1.a=zzz: held by posting {0 0} and posting {1 0}", out)
}

func TestTextFormatter_FormatStepBudgetExceededError(t *testing.T) {
	err := &rules.StepBudgetExceededError{Budget: 10_000, ChainStack: []string{"start", "classify"}}

	out := NewTextFormatter(nil).Format(err)
	assert.Equal(t, "step budget 10000 exceeded, chain stack: start -> classify", out)
}

func TestTextFormatter_FormatAll_SeparatesWithBlankLine(t *testing.T) {
	errs := []error{
		&rules.UndefinedChainError{Chain: "missing"},
		&rules.UndefinedChainError{Chain: "also-missing"},
	}

	out := NewTextFormatter(nil).FormatAll(errs)
	assert.Equal(t, `jump to undefined chain "missing"

jump to undefined chain "also-missing"`, out)
}

func TestJSONFormatter_FormatParseErrorIncludesPosition(t *testing.T) {
	err := &parser.ParseError{
		Pos:     ast.Position{Filename: "test.journal", Line: 3, Column: 1},
		Message: "bad token",
	}

	out := NewJSONFormatter().Format(err)
	assert.Contains(t, out, `"line":3`)
	assert.Contains(t, out, `"bad token"`)
}

func TestJSONFormatter_FormatAll_ProducesArray(t *testing.T) {
	errs := []error{
		&rules.UndefinedChainError{Chain: "a"},
		&rules.UndefinedChainError{Chain: "b"},
	}

	out := NewJSONFormatter().FormatAll(errs)
	assert.Contains(t, out, `"chain": "a"`)
	assert.Contains(t, out, `"chain": "b"`)
}
