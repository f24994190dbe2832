// Package ast provides AST printing functionality
package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Printer outputs the AST as Decaf source. Expressions are printed fully
// parenthesized so the output reparses to a structurally identical tree.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: 0}
}

// FormatProgram renders a program to a string
func FormatProgram(prog *Program) string {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgram(prog)
	return buf.String()
}

// PrintProgram prints a complete program
func (p *Printer) PrintProgram(prog *Program) {
	for _, g := range prog.Globals {
		p.printVarDecl(g)
	}
	for _, f := range prog.Functions {
		p.printFuncDecl(f)
	}
}

func (p *Printer) writeIndent() {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
}

func (p *Printer) printVarDecl(v VarDecl) {
	p.writeIndent()
	if v.IsArray {
		fmt.Fprintf(p.w, "%s %s[%d];\n", v.Type, v.Name, v.Length)
	} else {
		fmt.Fprintf(p.w, "%s %s;\n", v.Type, v.Name)
	}
}

func (p *Printer) printFuncDecl(f FuncDecl) {
	fmt.Fprintf(p.w, "def %s %s(", f.ReturnType, f.Name)
	for i, param := range f.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		fmt.Fprintf(p.w, "%s %s", param.Type, param.Name)
	}
	fmt.Fprintln(p.w, ")")
	p.printBlock(f.Body)
}

func (p *Printer) printBlock(b *Block) {
	p.writeIndent()
	fmt.Fprintln(p.w, "{")
	p.indent++
	for _, local := range b.Locals {
		p.printVarDecl(local)
	}
	for _, stmt := range b.Statements {
		p.printStmt(stmt)
	}
	p.indent--
	p.writeIndent()
	fmt.Fprintln(p.w, "}")
}

func (p *Printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case Assign:
		p.writeIndent()
		p.printExpr(s.Target)
		fmt.Fprint(p.w, " = ")
		p.printExpr(s.Value)
		fmt.Fprintln(p.w, ";")
	case Call:
		p.writeIndent()
		p.printExpr(s)
		fmt.Fprintln(p.w, ";")
	case If:
		p.writeIndent()
		fmt.Fprint(p.w, "if (")
		p.printExpr(s.Cond)
		fmt.Fprintln(p.w, ")")
		p.printBlock(s.Then)
		if s.Else != nil {
			p.writeIndent()
			fmt.Fprintln(p.w, "else")
			p.printBlock(s.Else)
		}
	case While:
		p.writeIndent()
		fmt.Fprint(p.w, "while (")
		p.printExpr(s.Cond)
		fmt.Fprintln(p.w, ")")
		p.printBlock(s.Body)
	case Break:
		p.writeIndent()
		fmt.Fprintln(p.w, "break;")
	case Continue:
		p.writeIndent()
		fmt.Fprintln(p.w, "continue;")
	case Return:
		p.writeIndent()
		fmt.Fprint(p.w, "return")
		if s.Expr != nil {
			fmt.Fprint(p.w, " ")
			p.printExpr(s.Expr)
		}
		fmt.Fprintln(p.w, ";")
	default:
		fmt.Fprintf(p.w, "// unknown stmt %T\n", stmt)
	}
}

func (p *Printer) printExpr(expr Expr) {
	switch e := expr.(type) {
	case IntLiteral:
		fmt.Fprintf(p.w, "%d", e.Value)
	case BoolLiteral:
		fmt.Fprintf(p.w, "%t", e.Value)
	case StringLiteral:
		fmt.Fprintf(p.w, "\"%s\"", escapeString(e.Value))
	case Location:
		fmt.Fprint(p.w, e.Name)
		if e.Index != nil {
			fmt.Fprint(p.w, "[")
			p.printExpr(e.Index)
			fmt.Fprint(p.w, "]")
		}
	case Unary:
		fmt.Fprint(p.w, e.Op.String())
		p.printExpr(e.Expr)
	case Binary:
		fmt.Fprint(p.w, "(")
		p.printExpr(e.Left)
		fmt.Fprintf(p.w, " %s ", e.Op)
		p.printExpr(e.Right)
		fmt.Fprint(p.w, ")")
	case Call:
		fmt.Fprintf(p.w, "%s(", e.Name)
		for i, arg := range e.Args {
			if i > 0 {
				fmt.Fprint(p.w, ", ")
			}
			p.printExpr(arg)
		}
		fmt.Fprint(p.w, ")")
	default:
		fmt.Fprintf(p.w, "/* unknown expr %T */", expr)
	}
}

var escaper = strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n", "\t", "\\t")

func escapeString(s string) string {
	return escaper.Replace(s)
}
