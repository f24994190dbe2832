package lexer

// TokenKind classifies a lexical token
type TokenKind int

const (
	KindKeyword TokenKind = iota // def, int, bool, ...
	KindIdent                    // main, foo, x
	KindSymbol                   // ( ) { } == && ...
	KindDecLit                   // 42
	KindHexLit                   // 0x2A
	KindStrLit                   // "hello" (quotes included, escapes raw)
)

var kindNames = map[TokenKind]string{
	KindKeyword: "KEY",
	KindIdent:   "ID",
	KindSymbol:  "SYM",
	KindDecLit:  "DECLIT",
	KindHexLit:  "HEXLIT",
	KindStrLit:  "STRLIT",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a classified lexical unit with its source line
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

// keywords is the set of Decaf reserved words
var keywords = map[string]bool{
	"def":      true,
	"int":      true,
	"bool":     true,
	"void":     true,
	"if":       true,
	"else":     true,
	"while":    true,
	"return":   true,
	"break":    true,
	"continue": true,
	"true":     true,
	"false":    true,
}

// LookupIdent returns KindKeyword for reserved words, KindIdent otherwise
func LookupIdent(ident string) TokenKind {
	if keywords[ident] {
		return KindKeyword
	}
	return KindIdent
}
