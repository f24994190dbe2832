package parser

import (
	"errors"
	"testing"

	"github.com/raymyers/decaf-cc/pkg/lexer"
)

func toks(texts ...string) []lexer.Token {
	tokens := make([]lexer.Token, len(texts))
	for i, text := range texts {
		tokens[i] = lexer.Token{Kind: lexer.KindSymbol, Text: text, Line: i + 1}
	}
	return tokens
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	cur := NewCursor(toks(";", ","))

	first, err := cur.Peek()
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	again, _ := cur.Peek()
	if first != again {
		t.Error("peek consumed a token")
	}

	second, err := cur.PeekSecond()
	if err != nil {
		t.Fatalf("peek second failed: %v", err)
	}
	if second.Text != "," {
		t.Errorf("expected ',', got %q", second.Text)
	}
	if head, _ := cur.Peek(); head.Text != ";" {
		t.Error("peek second moved the cursor")
	}
}

func TestCursorTakeConsumes(t *testing.T) {
	cur := NewCursor(toks(";", ","))

	tok, err := cur.Take()
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if tok.Text != ";" {
		t.Errorf("expected ';', got %q", tok.Text)
	}
	if cur.Empty() {
		t.Error("cursor empty after one of two tokens")
	}
	cur.Discard()
	if !cur.Empty() {
		t.Error("cursor not empty after consuming all tokens")
	}
}

func TestCursorEmptyOperations(t *testing.T) {
	cur := NewCursor(nil)

	if !cur.Empty() {
		t.Error("nil-token cursor should be empty")
	}
	if cur.Check(lexer.KindSymbol, ";") {
		t.Error("check on empty cursor should be false")
	}
	if cur.CheckKind(lexer.KindIdent) {
		t.Error("check kind on empty cursor should be false")
	}

	var eofErr *EndOfInputError
	if _, err := cur.Peek(); !errors.As(err, &eofErr) {
		t.Errorf("peek: expected *EndOfInputError, got %v", err)
	}
	if _, err := cur.Take(); !errors.As(err, &eofErr) {
		t.Errorf("take: expected *EndOfInputError, got %v", err)
	}
	if err := cur.Discard(); !errors.As(err, &eofErr) {
		t.Errorf("discard: expected *EndOfInputError, got %v", err)
	}
	if err := cur.Expect(lexer.KindSymbol, ";"); !errors.As(err, &eofErr) {
		t.Errorf("expect: expected *EndOfInputError, got %v", err)
	}
}

func TestCursorCheck(t *testing.T) {
	cur := NewCursor([]lexer.Token{{Kind: lexer.KindKeyword, Text: "def", Line: 1}})

	if !cur.Check(lexer.KindKeyword, "def") {
		t.Error("check should match kind and text")
	}
	if cur.Check(lexer.KindIdent, "def") {
		t.Error("check should reject wrong kind")
	}
	if cur.Check(lexer.KindKeyword, "if") {
		t.Error("check should reject wrong text")
	}
	if !cur.CheckKind(lexer.KindKeyword) {
		t.Error("check kind should match")
	}
	if cur.Empty() {
		t.Error("check must not consume")
	}
}

func TestCursorExpect(t *testing.T) {
	t.Run("match consumes", func(t *testing.T) {
		cur := NewCursor(toks(";"))
		if err := cur.Expect(lexer.KindSymbol, ";"); err != nil {
			t.Fatalf("expect failed: %v", err)
		}
		if !cur.Empty() {
			t.Error("expect should consume the matched token")
		}
	})

	t.Run("mismatch reports next remaining line", func(t *testing.T) {
		cur := NewCursor([]lexer.Token{
			{Kind: lexer.KindSymbol, Text: ",", Line: 3},
			{Kind: lexer.KindSymbol, Text: ")", Line: 4},
		})
		err := cur.Expect(lexer.KindSymbol, ";")
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("expected *SyntaxError, got %v", err)
		}
		if synErr.Expected != ";" || synErr.Found != "," {
			t.Errorf("unexpected detail: %+v", synErr)
		}
		if synErr.Line != 4 {
			t.Errorf("expected line of next remaining token (4), got %d", synErr.Line)
		}
	})

	t.Run("mismatch on last token reports its own line", func(t *testing.T) {
		cur := NewCursor([]lexer.Token{{Kind: lexer.KindSymbol, Text: ",", Line: 7}})
		err := cur.Expect(lexer.KindSymbol, ";")
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("expected *SyntaxError, got %v", err)
		}
		if synErr.Line != 7 {
			t.Errorf("expected line 7, got %d", synErr.Line)
		}
	})
}
