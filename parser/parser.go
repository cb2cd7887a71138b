package parser

import (
	"fmt"
	"strings"

	"github.com/ledgerkit/ledgerkit/ast"
)

// Parse lexes and parses a Ledger-format journal (§6.1): a transaction is a
// date-led header line followed by indented posting lines; tags are
// appended as "; name: value" or "; :name:" comments.
func Parse(source []byte, filename string) (*ast.Journal, error) {
	lex := NewLexer(source, filename)
	tokens, err := lex.ScanAll()
	if err != nil {
		return nil, err
	}
	p := &Parser{source: source, filename: filename, tokens: tokens, interner: lex.Interner()}
	return p.parseJournal()
}

// Parser is a recursive-descent parser over the Lexer's token stream,
// building an *ast.Journal. It is indentation-sensitive: a token at Column
// 1 starts a new transaction (or is a stray top-level comment); any other
// token belongs to the transaction currently being parsed.
type Parser struct {
	source   []byte
	filename string
	tokens   []Token
	pos      int
	interner *Interner
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == EOF }

func (p *Parser) errorf(tok Token, format string, args ...any) error {
	return &ParseError{Pos: tokenPosition(tok, p.filename), Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) parseJournal() (*ast.Journal, error) {
	j := ast.NewJournal()
	for !p.isAtEnd() {
		tok := p.peek()
		switch {
		case tok.Type == NEWLINE:
			p.advance()
		case tok.Type == COMMENT:
			p.advance() // top-level file comment, not attached to any transaction
		case tok.Type == DATE:
			txn, err := p.parseTransaction()
			if err != nil {
				return nil, err
			}
			j.Append(txn)
		default:
			return nil, p.errorf(tok, "expected a transaction date, found %s", tok.Type)
		}
	}
	return j, nil
}

func (p *Parser) parseTransaction() (*ast.Transaction, error) {
	dateTok := p.advance()
	date, err := ast.ParseDate(dateTok.String(p.source))
	if err != nil {
		return nil, p.errorf(dateTok, "%v", err)
	}

	txn := ast.NewTransaction(date, "")
	txn.Pos = tokenPosition(dateTok, p.filename)
	headerLine := dateTok.Line

	// Optional cleared/pending status marker. The journal model carries no
	// status field (§3 Transaction has no such attribute), so it is
	// accepted for compatibility with hand-written input and discarded.
	if p.peek().Line == headerLine && (p.peek().Type == STAR || p.peek().Type == BANG) {
		p.advance()
	}

	// Optional parenthesized code.
	if p.peek().Line == headerLine && p.peek().Type == LPAREN {
		p.advance()
		if p.peek().Type != RPAREN {
			codeTok := p.advance()
			txn.Code = codeTok.String(p.source)
		}
		if p.peek().Type == RPAREN {
			p.advance()
		}
	}

	var words []string
	for p.peek().Line == headerLine && p.peek().Type != COMMENT && p.peek().Type != EOF {
		words = append(words, p.advance().String(p.source))
	}
	txn.Description = strings.Join(words, " ")

	if p.peek().Line == headerLine && p.peek().Type == COMMENT {
		applyTransactionTags(txn, p.advance().String(p.source))
	}

	for {
		tok := p.peek()
		if tok.Type == EOF {
			break
		}
		if tok.Type == NEWLINE {
			p.advance()
			break
		}
		if tok.Column == 1 {
			break
		}
		if tok.Type == COMMENT {
			p.advance()
			text := tok.String(p.source)
			if n := len(txn.Postings); n > 0 {
				applyPostingTags(txn.Postings[n-1], text)
			} else {
				applyTransactionTags(txn, text)
			}
			continue
		}
		posting, err := p.parsePosting()
		if err != nil {
			return nil, err
		}
		txn.AppendPosting(posting)
	}

	return txn, nil
}

func (p *Parser) parsePosting() (*ast.Posting, error) {
	accTok := p.peek()
	if accTok.Type != ACCOUNT && accTok.Type != IDENT {
		return nil, p.errorf(accTok, "expected an account name, found %s", accTok.Type)
	}
	p.advance()
	line := accTok.Line

	posting := ast.NewPosting(p.interner.InternBytes(accTok.Bytes(p.source)))
	posting.Pos = tokenPosition(accTok, p.filename)

	if p.peek().Line == line && p.peek().Type == NUMBER {
		a, err := p.parseAmount(line)
		if err != nil {
			return nil, err
		}
		posting.Amount = &a
	}

	if p.peek().Line == line && p.peek().Type == EQ {
		p.advance()
		if p.peek().Line != line || p.peek().Type != NUMBER {
			return nil, p.errorf(p.peek(), "expected an amount after '='")
		}
		b, err := p.parseAmount(line)
		if err != nil {
			return nil, err
		}
		posting.Balance = &b
	}

	if p.peek().Line == line && p.peek().Type == COMMENT {
		applyPostingTags(posting, p.advance().String(p.source))
	}

	return posting, nil
}

func (p *Parser) parseAmount(line int) (ast.Amount, error) {
	numTok := p.advance()
	commodity := ""
	if p.peek().Line == line && p.peek().Type == IDENT {
		commodity = p.interner.InternBytes(p.advance().Bytes(p.source))
	}
	a, err := ast.ParseAmount(numTok.String(p.source), commodity)
	if err != nil {
		return ast.Amount{}, p.errorf(numTok, "%v", err)
	}
	return a, nil
}

// applyTransactionTags parses the body of a ";"-comment into tags and
// applies flag tags to the transaction. Value-tag segments at the
// transaction level contribute only their name, since the journal model's
// Transaction carries a flag-tag set, not value tags (§3); this is a
// deliberate scope reduction from the posting-level tag grammar.
func applyTransactionTags(txn *ast.Transaction, comment string) {
	for _, seg := range splitTagSegments(comment) {
		name, _, isTag := parseTagSegment(seg)
		if isTag {
			txn.AddTag(name)
		}
	}
}

// applyPostingTags parses the body of a ";"-comment into tags, applying
// flag and value tags to the posting; any segment that is not
// tag-shaped is treated as freeform commentary and appended to the
// posting's Comment.
func applyPostingTags(p *ast.Posting, comment string) {
	var freeform []string
	for _, seg := range splitTagSegments(comment) {
		name, value, isTag := parseTagSegment(seg)
		switch {
		case !isTag:
			freeform = append(freeform, seg)
		case value == "":
			p.AddFlagTag(name)
		default:
			p.SetValueTag(name, value)
		}
	}
	if len(freeform) > 0 {
		if p.Comment != "" {
			freeform = append([]string{p.Comment}, freeform...)
		}
		p.Comment = strings.Join(freeform, "; ")
	}
}

// splitTagSegments splits a comment's body (the text after the leading ';')
// on commas, the Ledger convention for multiple tags sharing one comment.
func splitTagSegments(comment string) []string {
	body := strings.TrimPrefix(comment, ";")
	parts := strings.Split(body, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseTagSegment recognizes ":name:" (flag tag, value == "") and
// "name: value" (value tag). isTag is false for anything else (freeform
// text).
func parseTagSegment(seg string) (name, value string, isTag bool) {
	if len(seg) >= 2 && seg[0] == ':' && seg[len(seg)-1] == ':' {
		inner := seg[1 : len(seg)-1]
		if inner != "" && !strings.Contains(inner, ":") {
			return inner, "", true
		}
		return "", "", false
	}
	if idx := strings.Index(seg, ":"); idx > 0 {
		name = strings.TrimSpace(seg[:idx])
		value = strings.TrimSpace(seg[idx+1:])
		if name != "" {
			return name, value, true
		}
	}
	return "", "", false
}
