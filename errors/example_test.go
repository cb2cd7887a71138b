package errors_test

import (
	"fmt"

	"github.com/ledgerkit/ledgerkit/errors"
	"github.com/ledgerkit/ledgerkit/rules"
)

// Example showing how to use TextFormatter for CLI output.
func ExampleTextFormatter() {
	err := &rules.UndefinedChainError{Chain: "classify"}

	formatter := errors.NewTextFormatter(nil)
	fmt.Println(formatter.Format(err))
	// Output: jump to undefined chain "classify"
}

// Example showing how to use JSONFormatter for API/web output.
func ExampleJSONFormatter() {
	errs := []error{
		&rules.StepBudgetExceededError{Budget: 10_000, ChainStack: []string{"start"}},
		&rules.UndefinedChainError{Chain: "classify"},
	}

	formatter := errors.NewJSONFormatter()
	fmt.Println(formatter.FormatAll(errs))
}
