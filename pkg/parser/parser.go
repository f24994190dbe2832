// Package parser implements a recursive descent parser for Decaf
package parser

import (
	"strconv"

	"github.com/raymyers/decaf-cc/pkg/ast"
	"github.com/raymyers/decaf-cc/pkg/lexer"
)

// Parse consumes the entire token sequence and returns the program AST.
// The first grammar violation aborts the parse; no partial tree is
// returned. An empty token sequence is a valid, empty program.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return parseProgram(NewCursor(tokens))
}

func parseProgram(cur *Cursor) (*ast.Program, error) {
	prog := &ast.Program{}
	for !cur.Empty() {
		if cur.Check(lexer.KindKeyword, "def") {
			fn, err := parseFuncDecl(cur)
			if err != nil {
				return nil, err
			}
			prog.Functions = append(prog.Functions, fn)
		} else {
			decl, err := parseVarDecl(cur)
			if err != nil {
				return nil, err
			}
			prog.Globals = append(prog.Globals, decl)
		}
	}
	return prog, nil
}

func parseFuncDecl(cur *Cursor) (ast.FuncDecl, error) {
	head, err := cur.Peek()
	if err != nil {
		return ast.FuncDecl{}, &EndOfInputError{Expected: "'def'"}
	}
	fn := ast.FuncDecl{Line: head.Line}

	if err := cur.Expect(lexer.KindKeyword, "def"); err != nil {
		return ast.FuncDecl{}, err
	}
	if fn.ReturnType, err = parseType(cur); err != nil {
		return ast.FuncDecl{}, err
	}
	if fn.Name, err = parseIdent(cur); err != nil {
		return ast.FuncDecl{}, err
	}

	if err := cur.Expect(lexer.KindSymbol, "("); err != nil {
		return ast.FuncDecl{}, err
	}
	if !cur.Check(lexer.KindSymbol, ")") {
		if fn.Params, err = parseParams(cur); err != nil {
			return ast.FuncDecl{}, err
		}
	}
	if err := cur.Expect(lexer.KindSymbol, ")"); err != nil {
		return ast.FuncDecl{}, err
	}

	if fn.Body, err = parseBlock(cur); err != nil {
		return ast.FuncDecl{}, err
	}
	return fn, nil
}

// parseParams parses one-or-more comma-separated "type identifier"
// pairs. The caller handles the empty list by spotting ')' directly
// after '('.
func parseParams(cur *Cursor) ([]ast.Param, error) {
	if cur.Empty() {
		return nil, &EndOfInputError{Expected: "type"}
	}

	param, err := parseParam(cur)
	if err != nil {
		return nil, err
	}
	params := []ast.Param{param}

	if cur.Check(lexer.KindSymbol, ",") {
		for !cur.Check(lexer.KindSymbol, ")") {
			if err := cur.Expect(lexer.KindSymbol, ","); err != nil {
				return nil, err
			}
			param, err := parseParam(cur)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}
	return params, nil
}

func parseParam(cur *Cursor) (ast.Param, error) {
	typ, err := parseType(cur)
	if err != nil {
		return ast.Param{}, err
	}
	name, err := parseIdent(cur)
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name, Type: typ}, nil
}

func parseVarDecl(cur *Cursor) (ast.VarDecl, error) {
	head, err := cur.Peek()
	if err != nil {
		return ast.VarDecl{}, &EndOfInputError{Expected: "type"}
	}
	decl := ast.VarDecl{Length: 1, Line: head.Line}

	if decl.Type, err = parseType(cur); err != nil {
		return ast.VarDecl{}, err
	}
	if decl.Name, err = parseIdent(cur); err != nil {
		return ast.VarDecl{}, err
	}

	if cur.Check(lexer.KindSymbol, "[") {
		cur.Discard()
		lenTok, err := cur.Take()
		if err != nil {
			return ast.VarDecl{}, &EndOfInputError{Expected: "array length"}
		}
		if lenTok.Kind != lexer.KindDecLit {
			return ast.VarDecl{}, &InvalidLiteralError{Text: lenTok.Text, Line: lenTok.Line}
		}
		length, err := strconv.ParseInt(lenTok.Text, 10, 32)
		if err != nil {
			return ast.VarDecl{}, &InvalidLiteralError{Text: lenTok.Text, Line: lenTok.Line}
		}
		decl.IsArray = true
		decl.Length = int(length)
		if err := cur.Expect(lexer.KindSymbol, "]"); err != nil {
			return ast.VarDecl{}, err
		}
	}

	if err := cur.Expect(lexer.KindSymbol, ";"); err != nil {
		return ast.VarDecl{}, err
	}
	return decl, nil
}

// parseType consumes one keyword token naming a Decaf type
func parseType(cur *Cursor) (ast.Type, error) {
	tok, err := cur.Take()
	if err != nil {
		return 0, &EndOfInputError{Expected: "int, bool, or void"}
	}
	if tok.Kind != lexer.KindKeyword {
		return 0, &InvalidTypeError{Text: tok.Text, Line: tok.Line}
	}
	switch tok.Text {
	case "int":
		return ast.TypeInt, nil
	case "bool":
		return ast.TypeBool, nil
	case "void":
		return ast.TypeVoid, nil
	}
	return 0, &InvalidTypeError{Text: tok.Text, Line: tok.Line}
}

// parseIdent consumes one identifier token and returns its text
func parseIdent(cur *Cursor) (string, error) {
	tok, err := cur.Take()
	if err != nil {
		return "", &EndOfInputError{Expected: "id token"}
	}
	if tok.Kind != lexer.KindIdent {
		return "", &InvalidIdentError{Text: tok.Text, Line: tok.Line}
	}
	return tok.Text, nil
}

func parseBlock(cur *Cursor) (*ast.Block, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "'{'"}
	}
	block := &ast.Block{Line: head.Line}

	if err := cur.Expect(lexer.KindSymbol, "{"); err != nil {
		return nil, err
	}
	for !cur.Check(lexer.KindSymbol, "}") {
		if startsType(cur) {
			decl, err := parseVarDecl(cur)
			if err != nil {
				return nil, err
			}
			block.Locals = append(block.Locals, decl)
		} else {
			stmt, err := parseStatement(cur)
			if err != nil {
				return nil, err
			}
			block.Statements = append(block.Statements, stmt)
		}
	}
	cur.Discard() // the closing '}'
	return block, nil
}

func startsType(cur *Cursor) bool {
	return cur.Check(lexer.KindKeyword, "int") ||
		cur.Check(lexer.KindKeyword, "bool") ||
		cur.Check(lexer.KindKeyword, "void")
}

// startsCall reports whether the cursor sits on an identifier
// immediately followed by '('
func startsCall(cur *Cursor) bool {
	if !cur.CheckKind(lexer.KindIdent) {
		return false
	}
	second, err := cur.PeekSecond()
	return err == nil && second.Kind == lexer.KindSymbol && second.Text == "("
}

func parseStatement(cur *Cursor) (ast.Stmt, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "statement"}
	}
	line := head.Line

	switch {
	case cur.Check(lexer.KindKeyword, "break"):
		cur.Discard()
		if err := cur.Expect(lexer.KindSymbol, ";"); err != nil {
			return nil, err
		}
		return ast.Break{Line: line}, nil

	case cur.Check(lexer.KindKeyword, "continue"):
		cur.Discard()
		if err := cur.Expect(lexer.KindSymbol, ";"); err != nil {
			return nil, err
		}
		return ast.Continue{Line: line}, nil

	case cur.Check(lexer.KindKeyword, "return"):
		cur.Discard()
		ret := ast.Return{Line: line}
		if !cur.Check(lexer.KindSymbol, ";") {
			if ret.Expr, err = parseExpr(cur); err != nil {
				return nil, err
			}
		}
		if err := cur.Expect(lexer.KindSymbol, ";"); err != nil {
			return nil, err
		}
		return ret, nil

	case cur.Check(lexer.KindKeyword, "while"):
		return parseWhile(cur)

	case cur.Check(lexer.KindKeyword, "if"):
		return parseIf(cur)

	case startsCall(cur):
		call, err := parseFuncCall(cur)
		if err != nil {
			return nil, err
		}
		if err := cur.Expect(lexer.KindSymbol, ";"); err != nil {
			return nil, err
		}
		return call, nil

	case cur.CheckKind(lexer.KindIdent):
		target, err := parseLoc(cur)
		if err != nil {
			return nil, err
		}
		if err := cur.Expect(lexer.KindSymbol, "="); err != nil {
			return nil, err
		}
		value, err := parseExpr(cur)
		if err != nil {
			return nil, err
		}
		if err := cur.Expect(lexer.KindSymbol, ";"); err != nil {
			return nil, err
		}
		return ast.Assign{Target: target, Value: value, Line: line}, nil
	}

	return nil, &InvalidStatementError{Line: line}
}

func parseWhile(cur *Cursor) (ast.Stmt, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "'while'"}
	}
	loop := ast.While{Line: head.Line}
	cur.Discard() // the 'while' keyword

	if err := cur.Expect(lexer.KindSymbol, "("); err != nil {
		return nil, err
	}
	if loop.Cond, err = parseExpr(cur); err != nil {
		return nil, err
	}
	if err := cur.Expect(lexer.KindSymbol, ")"); err != nil {
		return nil, err
	}
	if loop.Body, err = parseBlock(cur); err != nil {
		return nil, err
	}
	return loop, nil
}

func parseIf(cur *Cursor) (ast.Stmt, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "'if'"}
	}
	cond := ast.If{Line: head.Line}
	cur.Discard() // the 'if' keyword

	if err := cur.Expect(lexer.KindSymbol, "("); err != nil {
		return nil, err
	}
	if cond.Cond, err = parseExpr(cur); err != nil {
		return nil, err
	}
	if err := cur.Expect(lexer.KindSymbol, ")"); err != nil {
		return nil, err
	}
	if cond.Then, err = parseBlock(cur); err != nil {
		return nil, err
	}
	if cur.Check(lexer.KindKeyword, "else") {
		cur.Discard()
		if cond.Else, err = parseBlock(cur); err != nil {
			return nil, err
		}
	}
	return cond, nil
}

// parseLoc parses a scalar or indexed storage reference
func parseLoc(cur *Cursor) (ast.Location, error) {
	head, err := cur.Peek()
	if err != nil {
		return ast.Location{}, &EndOfInputError{Expected: "location"}
	}
	loc := ast.Location{Line: head.Line}

	if loc.Name, err = parseIdent(cur); err != nil {
		return ast.Location{}, err
	}
	if cur.Check(lexer.KindSymbol, "[") {
		cur.Discard()
		if loc.Index, err = parseExpr(cur); err != nil {
			return ast.Location{}, err
		}
		if err := cur.Expect(lexer.KindSymbol, "]"); err != nil {
			return ast.Location{}, err
		}
	}
	return loc, nil
}
