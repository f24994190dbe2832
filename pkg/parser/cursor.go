package parser

import "github.com/raymyers/decaf-cc/pkg/lexer"

// Cursor is a mutable, front-consumable view over a token sequence.
// Tokens are consumed exactly once; Peek and PeekSecond never consume.
type Cursor struct {
	tokens []lexer.Token
	pos    int
}

// NewCursor creates a cursor over the given token sequence
func NewCursor(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Empty reports whether all tokens have been consumed
func (c *Cursor) Empty() bool {
	return c.pos >= len(c.tokens)
}

// Peek returns the next token without consuming it
func (c *Cursor) Peek() (lexer.Token, error) {
	if c.Empty() {
		return lexer.Token{}, &EndOfInputError{}
	}
	return c.tokens[c.pos], nil
}

// PeekSecond returns the token one past the head without consuming
// anything. It exists to disambiguate an identifier followed by '('
// (a call) from a bare location.
func (c *Cursor) PeekSecond() (lexer.Token, error) {
	if c.pos+1 >= len(c.tokens) {
		return lexer.Token{}, &EndOfInputError{}
	}
	return c.tokens[c.pos+1], nil
}

// Check reports whether the next token has the given kind and text.
// It never fails; an empty cursor reports false.
func (c *Cursor) Check(kind lexer.TokenKind, text string) bool {
	if c.Empty() {
		return false
	}
	tok := c.tokens[c.pos]
	return tok.Kind == kind && tok.Text == text
}

// CheckKind reports whether the next token has the given kind
func (c *Cursor) CheckKind(kind lexer.TokenKind) bool {
	return !c.Empty() && c.tokens[c.pos].Kind == kind
}

// Take removes and returns the next token
func (c *Cursor) Take() (lexer.Token, error) {
	if c.Empty() {
		return lexer.Token{}, &EndOfInputError{}
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

// Discard removes and drops the next token unconditionally
func (c *Cursor) Discard() error {
	if c.Empty() {
		return &EndOfInputError{}
	}
	c.pos++
	return nil
}

// Expect consumes the next token and fails unless it matches the given
// kind and text exactly. A mismatch reports the line of the next
// remaining token, or of the mismatched token itself when it was last.
func (c *Cursor) Expect(kind lexer.TokenKind, text string) error {
	if c.Empty() {
		return &EndOfInputError{Expected: "'" + text + "'"}
	}
	tok := c.tokens[c.pos]
	c.pos++
	if tok.Kind != kind || tok.Text != text {
		line := tok.Line
		if !c.Empty() {
			line = c.tokens[c.pos].Line
		}
		return &SyntaxError{Expected: text, Found: tok.Text, Line: line}
	}
	return nil
}
