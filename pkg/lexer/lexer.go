// Package lexer tokenizes Decaf source code
package lexer

import "fmt"

// ScanError reports an illegal character or unterminated literal
type ScanError struct {
	Msg  string
	Line int
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s on line %d", e.Msg, e.Line)
}

// Lexer scans Decaf source code
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // next reading position
	ch      byte // current character
	line    int
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// Tokenize scans the entire input and returns the token sequence
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, *tok)
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// next returns the next token, or nil at end of input
func (l *Lexer) next() (*Token, error) {
	l.skipWhitespace()
	l.skipComments()
	l.skipWhitespace()

	tok := &Token{Kind: KindSymbol, Line: l.line}

	switch l.ch {
	case 0:
		return nil, nil
	case '=', '!', '<', '>':
		if l.peekChar() == '=' {
			tok.Text = string(l.ch) + "="
			l.readChar()
		} else {
			tok.Text = string(l.ch)
		}
	case '&':
		if l.peekChar() != '&' {
			return nil, &ScanError{Msg: "invalid symbol '&'", Line: l.line}
		}
		tok.Text = "&&"
		l.readChar()
	case '|':
		if l.peekChar() != '|' {
			return nil, &ScanError{Msg: "invalid symbol '|'", Line: l.line}
		}
		tok.Text = "||"
		l.readChar()
	case '+', '-', '*', '/', '%', '(', ')', '{', '}', '[', ']', ';', ',':
		tok.Text = string(l.ch)
	case '"':
		text, err := l.readString()
		if err != nil {
			return nil, err
		}
		tok.Kind = KindStrLit
		tok.Text = text
		return tok, nil
	default:
		if isLetter(l.ch) {
			tok.Text = l.readIdentifier()
			tok.Kind = LookupIdent(tok.Text)
			return tok, nil
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		return nil, &ScanError{Msg: fmt.Sprintf("invalid character '%c'", l.ch), Line: l.line}
	}

	l.readChar()
	return tok, nil
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComments() {
	for l.ch == '/' && l.peekChar() == '/' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		l.skipWhitespace()
	}
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

func (l *Lexer) readNumber() (*Token, error) {
	tok := &Token{Kind: KindDecLit, Line: l.line}
	pos := l.pos
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		tok.Kind = KindHexLit
		l.readChar() // consume 0
		l.readChar() // consume x
		if !isHexDigit(l.ch) {
			return nil, &ScanError{Msg: "invalid hex literal", Line: l.line}
		}
		for isHexDigit(l.ch) {
			l.readChar()
		}
	} else {
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	tok.Text = l.input[pos:l.pos]
	return tok, nil
}

// readString scans a string literal. The returned text keeps the surrounding
// quotes and leaves escape sequences undecoded; the parser owns decoding.
func (l *Lexer) readString() (string, error) {
	line := l.line
	pos := l.pos
	l.readChar() // consume opening quote
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return "", &ScanError{Msg: "unterminated string literal", Line: line}
		}
		if l.ch == '\\' {
			l.readChar() // keep escaped char raw
		}
		l.readChar()
	}
	l.readChar() // consume closing quote
	return l.input[pos:l.pos], nil
}

// isLetter matches the characters that may start an identifier.
// Underscores and digits may only continue one.
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
