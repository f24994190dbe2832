// Package ast defines the abstract syntax tree for Decaf
package ast

// Node is the base interface for all AST nodes
type Node interface {
	implDecafNode()
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implDecafExpr()
}

// Stmt is the interface for all statement nodes
type Stmt interface {
	Node
	implDecafStmt()
}

// Type represents a Decaf type
type Type int

const (
	TypeInt Type = iota
	TypeBool
	TypeVoid
)

func (t Type) String() string {
	names := []string{"int", "bool", "void"}
	if int(t) < len(names) {
		return names[t]
	}
	return "?"
}

// BinaryOp represents binary operators
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpAnd // &&
	OpOr  // ||
)

func (op BinaryOp) String() string {
	names := []string{"+", "-", "*", "/", "%", "<", "<=", ">", ">=", "==", "!=", "&&", "||"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// UnaryOp represents unary operators
type UnaryOp int

const (
	OpNeg UnaryOp = iota // -
	OpNot                // !
)

func (op UnaryOp) String() string {
	names := []string{"-", "!"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// Program is the root node: global variables and function definitions
// in source order
type Program struct {
	Globals   []VarDecl
	Functions []FuncDecl
}

// VarDecl represents a variable declaration. Scalars have Length 1.
type VarDecl struct {
	Name    string
	Type    Type
	IsArray bool
	Length  int
	Line    int
}

// Param represents a single formal parameter
type Param struct {
	Name string
	Type Type
}

// FuncDecl represents a function definition
type FuncDecl struct {
	Name       string
	ReturnType Type
	Params     []Param
	Body       *Block
	Line       int
}

// Block represents a brace-delimited sequence of local declarations
// followed by statements
type Block struct {
	Locals     []VarDecl
	Statements []Stmt
	Line       int
}

// Location represents a storage reference. Index is nil for scalar
// access and non-nil for array access.
type Location struct {
	Name  string
	Index Expr
	Line  int
}

// IntLiteral represents an integer constant (decimal or hex in source)
type IntLiteral struct {
	Value int
	Line  int
}

// BoolLiteral represents true or false
type BoolLiteral struct {
	Value bool
	Line  int
}

// StringLiteral represents a string constant with quotes stripped and
// escapes decoded
type StringLiteral struct {
	Value string
	Line  int
}

// Unary represents a unary expression
type Unary struct {
	Op   UnaryOp
	Expr Expr
	Line int
}

// Binary represents a binary expression
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Line  int
}

// Call represents a function call, as an expression or a statement
type Call struct {
	Name string
	Args []Expr
	Line int
}

// Assign represents an assignment statement: target = value;
type Assign struct {
	Target Location
	Value  Expr
	Line   int
}

// If represents a conditional statement. Else is nil when absent.
type If struct {
	Cond Expr
	Then *Block
	Else *Block
	Line int
}

// While represents a while loop
type While struct {
	Cond Expr
	Body *Block
	Line int
}

// Break represents a break statement
type Break struct {
	Line int
}

// Continue represents a continue statement
type Continue struct {
	Line int
}

// Return represents a return statement. Expr is nil for a bare return.
type Return struct {
	Expr Expr
	Line int
}

// Marker methods for interface implementation
func (Program) implDecafNode() {}

func (VarDecl) implDecafNode() {}

func (FuncDecl) implDecafNode() {}

func (Block) implDecafNode() {}

func (Location) implDecafNode() {}
func (Location) implDecafExpr() {}

func (IntLiteral) implDecafNode() {}
func (IntLiteral) implDecafExpr() {}

func (BoolLiteral) implDecafNode() {}
func (BoolLiteral) implDecafExpr() {}

func (StringLiteral) implDecafNode() {}
func (StringLiteral) implDecafExpr() {}

func (Unary) implDecafNode() {}
func (Unary) implDecafExpr() {}

func (Binary) implDecafNode() {}
func (Binary) implDecafExpr() {}

func (Call) implDecafNode() {}
func (Call) implDecafExpr() {}
func (Call) implDecafStmt() {}

func (Assign) implDecafNode() {}
func (Assign) implDecafStmt() {}

func (If) implDecafNode() {}
func (If) implDecafStmt() {}

func (While) implDecafNode() {}
func (While) implDecafStmt() {}

func (Break) implDecafNode() {}
func (Break) implDecafStmt() {}

func (Continue) implDecafNode() {}
func (Continue) implDecafStmt() {}

func (Return) implDecafNode() {}
func (Return) implDecafStmt() {}
