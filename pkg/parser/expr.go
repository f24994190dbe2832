package parser

import (
	"strconv"
	"strings"

	"github.com/raymyers/decaf-cc/pkg/ast"
	"github.com/raymyers/decaf-cc/pkg/lexer"
)

// binaryOps maps operator symbols to AST operators
var binaryOps = map[string]ast.BinaryOp{
	"+":  ast.OpAdd,
	"-":  ast.OpSub,
	"*":  ast.OpMul,
	"/":  ast.OpDiv,
	"%":  ast.OpMod,
	"<":  ast.OpLt,
	"<=": ast.OpLe,
	">":  ast.OpGt,
	">=": ast.OpGe,
	"==": ast.OpEq,
	"!=": ast.OpNe,
	"&&": ast.OpAnd,
	"||": ast.OpOr,
}

// parseExpr parses a full expression at the loosest precedence level
func parseExpr(cur *Cursor) (ast.Expr, error) {
	return parseOr(cur)
}

// parseBinaryLevel implements one left-associative precedence level:
// parse an operand at the tighter level, then fold while the head token
// is one of this level's operators
func parseBinaryLevel(cur *Cursor, ops []string, next func(*Cursor) (ast.Expr, error)) (ast.Expr, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "expression"}
	}
	line := head.Line

	left, err := next(cur)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := matchOp(cur, ops)
		if !ok {
			return left, nil
		}
		cur.Discard()
		right, err := next(cur)
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Op: binaryOps[op], Left: left, Right: right, Line: line}
	}
}

func matchOp(cur *Cursor, ops []string) (string, bool) {
	for _, op := range ops {
		if cur.Check(lexer.KindSymbol, op) {
			return op, true
		}
	}
	return "", false
}

func parseOr(cur *Cursor) (ast.Expr, error) {
	return parseBinaryLevel(cur, []string{"||"}, parseAnd)
}

func parseAnd(cur *Cursor) (ast.Expr, error) {
	return parseBinaryLevel(cur, []string{"&&"}, parseEquality)
}

func parseEquality(cur *Cursor) (ast.Expr, error) {
	return parseBinaryLevel(cur, []string{"==", "!="}, parseRelational)
}

func parseRelational(cur *Cursor) (ast.Expr, error) {
	return parseBinaryLevel(cur, []string{"<", "<=", ">", ">="}, parseAdditive)
}

func parseAdditive(cur *Cursor) (ast.Expr, error) {
	return parseBinaryLevel(cur, []string{"+", "-"}, parseMultiplicative)
}

func parseMultiplicative(cur *Cursor) (ast.Expr, error) {
	return parseBinaryLevel(cur, []string{"*", "/", "%"}, parseUnary)
}

// parseUnary applies at most one prefix operator, then defers to the
// base level. Unary operators do not stack.
func parseUnary(cur *Cursor) (ast.Expr, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "expression"}
	}
	line := head.Line

	var op ast.UnaryOp
	switch {
	case cur.Check(lexer.KindSymbol, "-"):
		op = ast.OpNeg
	case cur.Check(lexer.KindSymbol, "!"):
		op = ast.OpNot
	default:
		return parseBaseExpr(cur)
	}
	cur.Discard()

	operand, err := parseBaseExpr(cur)
	if err != nil {
		return nil, err
	}
	return ast.Unary{Op: op, Expr: operand, Line: line}, nil
}

func parseBaseExpr(cur *Cursor) (ast.Expr, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "expression, location, function call, or literal"}
	}
	line := head.Line

	switch {
	case cur.Check(lexer.KindSymbol, "("):
		cur.Discard()
		inner, err := parseExpr(cur)
		if err != nil {
			return nil, err
		}
		if err := cur.Expect(lexer.KindSymbol, ")"); err != nil {
			return nil, err
		}
		return inner, nil

	case startsCall(cur):
		call, err := parseFuncCall(cur)
		if err != nil {
			return nil, err
		}
		return call, nil

	case cur.CheckKind(lexer.KindIdent):
		return parseLoc(cur)

	case cur.CheckKind(lexer.KindDecLit), cur.CheckKind(lexer.KindHexLit),
		cur.CheckKind(lexer.KindStrLit),
		cur.Check(lexer.KindKeyword, "true"), cur.Check(lexer.KindKeyword, "false"):
		return parseLit(cur)
	}

	return nil, &InvalidExprError{Text: head.Text, Line: line}
}

// parseFuncCall returns the concrete node so callers can use it as an
// expression or a statement
func parseFuncCall(cur *Cursor) (ast.Call, error) {
	head, err := cur.Peek()
	if err != nil {
		return ast.Call{}, &EndOfInputError{Expected: "id token"}
	}
	call := ast.Call{Line: head.Line}

	if call.Name, err = parseIdent(cur); err != nil {
		return ast.Call{}, err
	}
	if err := cur.Expect(lexer.KindSymbol, "("); err != nil {
		return ast.Call{}, err
	}
	if !cur.Check(lexer.KindSymbol, ")") {
		if call.Args, err = parseArgs(cur); err != nil {
			return ast.Call{}, err
		}
	}
	if err := cur.Expect(lexer.KindSymbol, ")"); err != nil {
		return ast.Call{}, err
	}
	return call, nil
}

// parseArgs parses one-or-more comma-separated argument expressions.
// The caller handles the empty list by spotting ')' directly after '('.
func parseArgs(cur *Cursor) ([]ast.Expr, error) {
	if cur.Empty() {
		return nil, &EndOfInputError{Expected: "expression"}
	}

	arg, err := parseExpr(cur)
	if err != nil {
		return nil, err
	}
	args := []ast.Expr{arg}

	if cur.Check(lexer.KindSymbol, ",") {
		for !cur.Check(lexer.KindSymbol, ")") {
			if err := cur.Expect(lexer.KindSymbol, ","); err != nil {
				return nil, err
			}
			arg, err := parseExpr(cur)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	return args, nil
}

func parseLit(cur *Cursor) (ast.Expr, error) {
	head, err := cur.Peek()
	if err != nil {
		return nil, &EndOfInputError{Expected: "DEC, HEX, STR, false, or true"}
	}
	line := head.Line

	switch {
	case cur.CheckKind(lexer.KindDecLit):
		tok, _ := cur.Take()
		value, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			return nil, &InvalidLiteralError{Text: tok.Text, Line: line}
		}
		return ast.IntLiteral{Value: int(value), Line: line}, nil

	case cur.CheckKind(lexer.KindHexLit):
		tok, _ := cur.Take()
		value, err := strconv.ParseUint(tok.Text[2:], 16, 32)
		if err != nil {
			return nil, &InvalidLiteralError{Text: tok.Text, Line: line}
		}
		return ast.IntLiteral{Value: int(int32(value)), Line: line}, nil

	case cur.Check(lexer.KindKeyword, "true"):
		cur.Discard()
		return ast.BoolLiteral{Value: true, Line: line}, nil

	case cur.Check(lexer.KindKeyword, "false"):
		cur.Discard()
		return ast.BoolLiteral{Value: false, Line: line}, nil

	case cur.CheckKind(lexer.KindStrLit):
		tok, _ := cur.Take()
		text := tok.Text[1 : len(tok.Text)-1] // strip surrounding quotes
		return ast.StringLiteral{Value: decodeEscapes(text), Line: line}, nil
	}

	return nil, &InvalidLiteralError{Text: head.Text, Line: line}
}

// escapePatterns are tried in fixed order; only the first occurrence of
// the first matching pattern is rewritten.
// TODO: decode every escape sequence, not just the first.
var escapePatterns = []struct {
	pattern string
	decoded string
}{
	{`\n`, "\n"},
	{`\t`, "\t"},
	{`\\`, `\`},
	{`\"`, `"`},
}

func decodeEscapes(s string) string {
	for _, esc := range escapePatterns {
		if strings.Contains(s, esc.pattern) {
			return strings.Replace(s, esc.pattern, esc.decoded, 1)
		}
	}
	return s
}
