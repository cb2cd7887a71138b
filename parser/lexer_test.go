package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLexer_ScanAll_TransactionAndPosting(t *testing.T) {
	src := []byte("2024-02-01 * Tesco\n    expenses:unknown  -10 GBP  ; bank: Nationwide\n    assets:bank  10 GBP\n")
	lex := NewLexer(src, "test.journal")
	tokens, err := lex.ScanAll()
	assert.NoError(t, err)

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []TokenType{
		DATE, STAR, IDENT, // header
		ACCOUNT, NUMBER, IDENT, COMMENT, // first posting
		ACCOUNT, NUMBER, IDENT, // second posting
		EOF,
	}, types)
}

func TestLexer_BlankLineEmitsNewline(t *testing.T) {
	src := []byte("2024-01-01 A\n    assets:bank  1 GBP\n\n2024-01-02 B\n    assets:bank  1 GBP\n")
	lex := NewLexer(src, "test.journal")
	tokens, err := lex.ScanAll()
	assert.NoError(t, err)

	found := false
	for _, tok := range tokens {
		if tok.Type == NEWLINE {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLexer_AccountRequiresColon(t *testing.T) {
	src := []byte("2024-01-01 A\n    GBP  1 GBP\n")
	lex := NewLexer(src, "test.journal")
	tokens, err := lex.ScanAll()
	assert.NoError(t, err)
	assert.Equal(t, IDENT, tokens[2].Type)
}

func TestLexer_InvalidUTF8(t *testing.T) {
	src := []byte("2024-01-01 A\n\x01bad\n")
	lex := NewLexer(src, "test.journal")
	_, err := lex.ScanAll()
	assert.Error(t, err)
}
