package lexer

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	input := `def int main() { return 42; }`

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{KindKeyword, "def"},
		{KindKeyword, "int"},
		{KindIdent, "main"},
		{KindSymbol, "("},
		{KindSymbol, ")"},
		{KindSymbol, "{"},
		{KindKeyword, "return"},
		{KindDecLit, "42"},
		{KindSymbol, ";"},
		{KindSymbol, "}"},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("expected %d tokens, got %d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		if tokens[i].Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v",
				i, tt.expectedKind, tokens[i].Kind)
		}
		if tokens[i].Text != tt.expectedText {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q",
				i, tt.expectedText, tokens[i].Text)
		}
	}
}

func TestSymbols(t *testing.T) {
	input := `+ - * / % = == != < <= > >= && || ! ( ) { } [ ] ; ,`

	expected := []string{
		"+", "-", "*", "/", "%", "=", "==", "!=", "<", "<=", ">", ">=",
		"&&", "||", "!", "(", ")", "{", "}", "[", "]", ";", ",",
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, text := range expected {
		if tokens[i].Kind != KindSymbol {
			t.Errorf("tokens[%d] - expected symbol, got %v", i, tokens[i].Kind)
		}
		if tokens[i].Text != text {
			t.Errorf("tokens[%d] - expected %q, got %q", i, text, tokens[i].Text)
		}
	}
}

func TestLiterals(t *testing.T) {
	input := `12 0x1F "hi\n" true false`

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{KindDecLit, "12"},
		{KindHexLit, "0x1F"},
		{KindStrLit, `"hi\n"`},
		{KindKeyword, "true"},
		{KindKeyword, "false"},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("expected %d tokens, got %d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Kind != tt.expectedKind {
			t.Errorf("tokens[%d] - kind wrong. expected=%v, got=%v",
				i, tt.expectedKind, tokens[i].Kind)
		}
		if tokens[i].Text != tt.expectedText {
			t.Errorf("tokens[%d] - text wrong. expected=%q, got=%q",
				i, tt.expectedText, tokens[i].Text)
		}
	}
}

func TestLineNumbers(t *testing.T) {
	input := "int x;\n// comment line\ndef void f()\n{\n}"

	tests := []struct {
		text string
		line int
	}{
		{"int", 1},
		{"x", 1},
		{";", 1},
		{"def", 3},
		{"void", 3},
		{"f", 3},
		{"(", 3},
		{")", 3},
		{"{", 4},
		{"}", 5},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("expected %d tokens, got %d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Text != tt.text {
			t.Errorf("tokens[%d] - expected %q, got %q", i, tt.text, tokens[i].Text)
		}
		if tokens[i].Line != tt.line {
			t.Errorf("tokens[%d] (%q) - expected line %d, got %d",
				i, tt.text, tt.line, tokens[i].Line)
		}
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	input := `while whilex xwhile x_1 B2b`

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{KindKeyword, "while"},
		{KindIdent, "whilex"},
		{KindIdent, "xwhile"},
		{KindIdent, "x_1"},
		{KindIdent, "B2b"},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	for i, tt := range tests {
		if tokens[i].Kind != tt.expectedKind {
			t.Errorf("tokens[%d] - kind wrong. expected=%v, got=%v",
				i, tt.expectedKind, tokens[i].Kind)
		}
		if tokens[i].Text != tt.expectedText {
			t.Errorf("tokens[%d] - text wrong. expected=%q, got=%q",
				i, tt.expectedText, tokens[i].Text)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, err := Tokenize("   // only a comment\n")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %d", len(tokens))
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"illegal character", "int x @ y;", 1},
		{"leading underscore", "int _x;", 1},
		{"lone ampersand", "a & b", 1},
		{"lone pipe", "a | b", 1},
		{"unterminated string", "x = \"abc", 1},
		{"string with newline", "x = \"abc\ndef\"", 1},
		{"bad hex literal", "x = 0x;", 1},
		{"error line counted", "int x;\n\nint @;", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			var scanErr *ScanError
			if !errors.As(err, &scanErr) {
				t.Fatalf("expected *ScanError, got %T (%v)", err, err)
			}
			if scanErr.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, scanErr.Line)
			}
		})
	}
}
