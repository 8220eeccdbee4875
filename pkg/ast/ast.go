// Package ast defines the data-only syntax tree consumed by the evaluator.
// Nodes carry no behavior; the parser produces them and the interpreter walks
// them.
package ast

// Program is an ordered sequence of statements and the execution root.
type Program []Statement

// Statement is implemented by every statement node.
type Statement interface {
	stmtNode()
}

// Expression is implemented by every expression node, leaf terms included.
type Expression interface {
	exprNode()
}

// Operation identifies a binary operator.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "/"

	OpEquals         Operation = "=="
	OpGreaterThan    Operation = ">"
	OpLessThan       Operation = "<"
	OpGreaterOrEqual Operation = ">="
	OpLessOrEqual    Operation = "<="
)

//-----------------------------------------------------------------------------
// Statements
//-----------------------------------------------------------------------------

// AssignmentStatement writes the evaluated value through the target, which is
// a Variable, DotExpression, or IndexExpression.
type AssignmentStatement struct {
	Target Expression
	Value  Expression
}

// ReturnStatement aborts the enclosing body. A nil Value returns nil.
type ReturnStatement struct {
	Value Expression
}

// LocalStatement binds a name in the current scope, shadowing anything of the
// same name reachable through the global fallback. A nil Value binds nil.
type LocalStatement struct {
	Name  string
	Value Expression
}

// ExpressionStatement evaluates its expression for side effects only.
type ExpressionStatement struct {
	Expression Expression
}

// FunctionStatement declares a named function; the binding is always global.
type FunctionStatement struct {
	Name       string
	Parameters []string
	Body       []Statement
}

// ElseIfClause is one ordered elseif arm of an IfStatement.
type ElseIfClause struct {
	Condition Expression
	Body      []Statement
}

// IfStatement executes the block of the first truthy condition in source
// order. A nil Else means no else block.
type IfStatement struct {
	Condition Expression
	Then      []Statement
	ElseIfs   []*ElseIfClause
	Else      []Statement
}

// NumericForStatement is the numeric for loop. A nil Step defaults to 1.
type NumericForStatement struct {
	Name  string
	Start Expression
	Limit Expression
	Step  Expression
	Body  []Statement
}

func (*AssignmentStatement) stmtNode() {}
func (*ReturnStatement) stmtNode()     {}
func (*LocalStatement) stmtNode()      {}
func (*ExpressionStatement) stmtNode() {}
func (*FunctionStatement) stmtNode()   {}
func (*IfStatement) stmtNode()         {}
func (*NumericForStatement) stmtNode() {}

//-----------------------------------------------------------------------------
// Expressions
//-----------------------------------------------------------------------------

// BinaryExpression applies Operator to both operands, evaluated eagerly left
// then right.
type BinaryExpression struct {
	Left     Expression
	Operator Operation
	Right    Expression
}

// CallExpression applies a callee to its arguments.
type CallExpression struct {
	Callee    Expression
	Arguments []Expression
}

// DotExpression is sugar for indexing with a fixed string key.
type DotExpression struct {
	Object Expression
	Field  string
}

// IndexExpression indexes with a dynamically evaluated key.
type IndexExpression struct {
	Object Expression
	Key    Expression
}

// FunctionExpression is an anonymous closure literal.
type FunctionExpression struct {
	Parameters []string
	Body       []Statement
}

func (*BinaryExpression) exprNode()   {}
func (*CallExpression) exprNode()     {}
func (*DotExpression) exprNode()      {}
func (*IndexExpression) exprNode()    {}
func (*FunctionExpression) exprNode() {}

//-----------------------------------------------------------------------------
// Terms (leaf expressions)
//-----------------------------------------------------------------------------

type NumberLiteral struct {
	Value float64
}

type StringLiteral struct {
	Value string
}

type BooleanLiteral struct {
	Value bool
}

type NilLiteral struct{}

// Variable resolves a name in the current scope with explicit fallback to the
// interpreter's global scope; unbound names read as nil.
type Variable struct {
	Name string
}

// TableField is one entry of a table constructor. Exactly one of Name/Key is
// set for keyed entries; both empty means a positional entry that consumes
// the constructor's auto-index counter.
type TableField struct {
	Name  string
	Key   Expression
	Value Expression
}

// TableConstructor builds a fresh table from its ordered field list.
type TableConstructor struct {
	Fields []*TableField
}

func (*NumberLiteral) exprNode()    {}
func (*StringLiteral) exprNode()    {}
func (*BooleanLiteral) exprNode()   {}
func (*NilLiteral) exprNode()       {}
func (*Variable) exprNode()         {}
func (*TableConstructor) exprNode() {}
