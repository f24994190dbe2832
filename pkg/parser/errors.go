package parser

import "fmt"

// EndOfInputError reports a token stream that ran out mid-construct.
// Expected describes what the grammar required next, when known.
type EndOfInputError struct {
	Expected string
}

func (e *EndOfInputError) Error() string {
	if e.Expected == "" {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected end of input (expected %s)", e.Expected)
}

// SyntaxError reports a token that does not match what the grammar
// requires at this position
type SyntaxError struct {
	Expected string
	Found    string
	Line     int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected '%s' but found '%s' on line %d", e.Expected, e.Found, e.Line)
}

// InvalidTypeError reports a token that is not int, bool, or void where
// a type is required
type InvalidTypeError struct {
	Text string
	Line int
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type '%s' on line %d", e.Text, e.Line)
}

// InvalidIdentError reports a non-identifier token where an identifier
// is required
type InvalidIdentError struct {
	Text string
	Line int
}

func (e *InvalidIdentError) Error() string {
	return fmt.Sprintf("invalid ID '%s' on line %d", e.Text, e.Line)
}

// InvalidLiteralError reports a malformed or out-of-range literal
type InvalidLiteralError struct {
	Text string
	Line int
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal '%s' on line %d", e.Text, e.Line)
}

// InvalidExprError reports a token that cannot begin a base expression
type InvalidExprError struct {
	Text string
	Line int
}

func (e *InvalidExprError) Error() string {
	return fmt.Sprintf("invalid base expression '%s' on line %d", e.Text, e.Line)
}

// InvalidStatementError reports a token that cannot begin a statement
type InvalidStatementError struct {
	Line int
}

func (e *InvalidStatementError) Error() string {
	return fmt.Sprintf("invalid statement on line %d", e.Line)
}
