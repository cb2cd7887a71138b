package parser

import (
	"fmt"

	"github.com/ledgerkit/ledgerkit/ast"
)

// ParseError is an input-format error (§7): a malformed journal, with the
// source position where parsing failed.
type ParseError struct {
	Pos     ast.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func tokenPosition(tok Token, filename string) ast.Position {
	return ast.Position{Filename: filename, Offset: tok.Start, Line: tok.Line, Column: tok.Column}
}
