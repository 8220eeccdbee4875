package ast

// Terse constructors used throughout the interpreter tests.

func Num(v float64) *NumberLiteral { return &NumberLiteral{Value: v} }

func Str(v string) *StringLiteral { return &StringLiteral{Value: v} }

func Bool(v bool) *BooleanLiteral { return &BooleanLiteral{Value: v} }

func Nil() *NilLiteral { return &NilLiteral{} }

func Var(name string) *Variable { return &Variable{Name: name} }

func Bin(left Expression, op Operation, right Expression) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: op, Right: right}
}

func Call(callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args}
}

func Dot(object Expression, field string) *DotExpression {
	return &DotExpression{Object: object, Field: field}
}

func Index(object, key Expression) *IndexExpression {
	return &IndexExpression{Object: object, Key: key}
}

func FnExpr(params []string, body ...Statement) *FunctionExpression {
	return &FunctionExpression{Parameters: params, Body: body}
}

func Table(fields ...*TableField) *TableConstructor {
	return &TableConstructor{Fields: fields}
}

func FieldNamed(name string, value Expression) *TableField {
	return &TableField{Name: name, Value: value}
}

func FieldKeyed(key, value Expression) *TableField {
	return &TableField{Key: key, Value: value}
}

func FieldPos(value Expression) *TableField {
	return &TableField{Value: value}
}

func Assign(target, value Expression) *AssignmentStatement {
	return &AssignmentStatement{Target: target, Value: value}
}

func Ret(value Expression) *ReturnStatement { return &ReturnStatement{Value: value} }

func Local(name string, value Expression) *LocalStatement {
	return &LocalStatement{Name: name, Value: value}
}

func ExprStmt(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: expr}
}

func FnStmt(name string, params []string, body ...Statement) *FunctionStatement {
	return &FunctionStatement{Name: name, Parameters: params, Body: body}
}

func If(cond Expression, then []Statement, elseifs []*ElseIfClause, els []Statement) *IfStatement {
	return &IfStatement{Condition: cond, Then: then, ElseIfs: elseifs, Else: els}
}

func ElseIf(cond Expression, body ...Statement) *ElseIfClause {
	return &ElseIfClause{Condition: cond, Body: body}
}

func For(name string, start, limit, step Expression, body ...Statement) *NumericForStatement {
	return &NumericForStatement{Name: name, Start: start, Limit: limit, Step: step, Body: body}
}
