package interpreter

import (
	"fmt"

	"minilua/interpreter-go/pkg/ast"
	"minilua/interpreter-go/pkg/runtime"
)

// evaluateBinary evaluates both operands eagerly, left then right, with no
// short-circuiting, then applies the operator.
func (in *Interpreter) evaluateBinary(e *ast.BinaryExpression, scope *runtime.Scope) (runtime.Value, error) {
	left, err := in.evaluateExpression(e.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluateExpression(e.Right, scope)
	if err != nil {
		return nil, err
	}
	return applyOperation(e.Operator, left, right)
}

func applyOperation(op ast.Operation, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.OpAdd:
		return arithmetic(left, right, func(a, b float64) float64 { return a + b })
	case ast.OpSubtract:
		return arithmetic(left, right, func(a, b float64) float64 { return a - b })
	case ast.OpMultiply:
		return arithmetic(left, right, func(a, b float64) float64 { return a * b })
	case ast.OpDivide:
		return arithmetic(left, right, func(a, b float64) float64 { return a / b })
	case ast.OpEquals:
		return comparison(left, right, func(a, b float64) bool { return a == b })
	case ast.OpGreaterThan:
		return comparison(left, right, func(a, b float64) bool { return a > b })
	case ast.OpLessThan:
		return comparison(left, right, func(a, b float64) bool { return a < b })
	case ast.OpGreaterOrEqual:
		return comparison(left, right, func(a, b float64) bool { return a >= b })
	case ast.OpLessOrEqual:
		return comparison(left, right, func(a, b float64) bool { return a <= b })
	default:
		return nil, fmt.Errorf("unsupported operator %q", op)
	}
}

// arithmetic requires two numbers. The error names the first offending
// operand, left checked before right.
func arithmetic(left, right runtime.Value, fn func(a, b float64) float64) (runtime.Value, error) {
	a, ok := left.(runtime.NumberValue)
	if !ok {
		return nil, newRuntimeError(InvalidArithmetic, left)
	}
	b, ok := right.(runtime.NumberValue)
	if !ok {
		return nil, newRuntimeError(InvalidArithmetic, right)
	}
	return runtime.NumberValue{Val: fn(a.Val, b.Val)}, nil
}

// comparison is permissive where arithmetic is strict: any pairing other
// than number/number yields nil instead of an error, equality included.
func comparison(left, right runtime.Value, fn func(a, b float64) bool) (runtime.Value, error) {
	a, aok := left.(runtime.NumberValue)
	b, bok := right.(runtime.NumberValue)
	if !aok || !bok {
		return runtime.NilValue{}, nil
	}
	return runtime.BoolValue{Val: fn(a.Val, b.Val)}, nil
}
