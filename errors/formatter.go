// Package errors formats the module's domain errors for output, split from
// the domain logic that raises them (the teacher's errors/ledger split):
// parser.ParseError, ledger.DuplicateFingerprintError,
// rules.UndefinedChainError, rules.StepBudgetExceededError,
// merge.FingerprintCollisionError, merge.FingerprintConflictError, and
// merge.AmbiguousNoFingerprintError all carry source location or chain
// context worth rendering distinctly; this package is where that rendering
// lives so callers in cli don't each reimplement it.
package errors

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/ledgerkit/ledger"
	"github.com/ledgerkit/ledgerkit/merge"
	"github.com/ledgerkit/ledgerkit/output"
	"github.com/ledgerkit/ledgerkit/parser"
	"github.com/ledgerkit/ledgerkit/rules"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// TextFormatter formats errors for command-line output, styled with
// output.Styles when one is given.
type TextFormatter struct {
	styles *output.Styles
}

// NewTextFormatter creates a new text formatter. styles may be nil.
func NewTextFormatter(styles *output.Styles) *TextFormatter {
	return &TextFormatter{styles: styles}
}

// Format formats a single error.
func (tf *TextFormatter) Format(err error) string {
	message := detail(err)
	if tf.styles != nil {
		return tf.styles.Error(message)
	}
	return message
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))
		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}
	return buf.String()
}

// detail renders the message body for each domain error type, falling back
// to err.Error() for anything else.
func detail(err error) string {
	switch e := err.(type) {
	case *parser.ParseError:
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)

	case *ledger.DuplicateFingerprintError:
		return fmt.Sprintf("duplicate fingerprint %s=%s: held by posting %v and posting %v",
			e.Name, e.Value, e.First, e.Second)

	case *rules.UndefinedChainError:
		return fmt.Sprintf("jump to undefined chain %q", e.Chain)

	case *rules.StepBudgetExceededError:
		return fmt.Sprintf("step budget %d exceeded, chain stack: %s", e.Budget, joinChainStack(e.ChainStack))

	case *merge.FingerprintCollisionError:
		return fmt.Sprintf("fingerprint collision across %d existing postings: %v", len(e.Handles), e.Handles)

	case *merge.FingerprintConflictError:
		return fmt.Sprintf("fingerprint %q conflict: source=%q dest=%q", e.Name, e.SourceValue, e.DestValue)

	case *merge.AmbiguousNoFingerprintError:
		return fmt.Sprintf("posting on account %q is ambiguous but carries no fingerprint to tag as a candidate", e.Account)

	default:
		return err.Error()
	}
}

func joinChainStack(stack []string) string {
	var buf bytes.Buffer
	for i, name := range stack {
		if i > 0 {
			buf.WriteString(" -> ")
		}
		buf.WriteString(name)
	}
	return buf.String()
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string                 `json:"type"`
	Message  string                 `json:"message"`
	Position *PositionJSON          `json:"position,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// PositionJSON represents a file position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	jsonErrors := make([]ErrorJSON, len(errs))
	for i, err := range errs {
		jsonErrors[i] = jf.toJSON(err)
	}
	data, _ := json.MarshalIndent(jsonErrors, "", "  ")
	return string(data)
}

// toJSON converts an error to ErrorJSON.
func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Details: make(map[string]interface{}),
	}

	switch e := err.(type) {
	case *parser.ParseError:
		errJSON.Position = &PositionJSON{Filename: e.Pos.Filename, Line: e.Pos.Line, Column: e.Pos.Column}

	case *ledger.DuplicateFingerprintError:
		errJSON.Details["name"] = e.Name
		errJSON.Details["value"] = e.Value

	case *rules.UndefinedChainError:
		errJSON.Details["chain"] = e.Chain

	case *rules.StepBudgetExceededError:
		errJSON.Details["budget"] = e.Budget
		errJSON.Details["chain_stack"] = e.ChainStack

	case *merge.FingerprintCollisionError:
		errJSON.Details["handle_count"] = len(e.Handles)

	case *merge.FingerprintConflictError:
		errJSON.Details["name"] = e.Name
		errJSON.Details["source_value"] = e.SourceValue
		errJSON.Details["dest_value"] = e.DestValue

	case *merge.AmbiguousNoFingerprintError:
		errJSON.Details["account"] = e.Account
	}

	return errJSON
}
