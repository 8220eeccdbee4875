package interpreter

import (
	"fmt"

	"minilua/interpreter-go/pkg/ast"
	"minilua/interpreter-go/pkg/runtime"
)

func (in *Interpreter) executeStatement(stmt ast.Statement, scope *runtime.Scope) error {
	switch s := stmt.(type) {
	case *ast.AssignmentStatement:
		return in.executeAssignment(s, scope)
	case *ast.LocalStatement:
		value, err := in.evaluateExpression(s.Value, scope)
		if err != nil {
			return err
		}
		scope.Put(s.Name, value)
		return nil
	case *ast.ReturnStatement:
		value, err := in.evaluateExpression(s.Value, scope)
		if err != nil {
			return err
		}
		return &returnSignal{value: value}
	case *ast.ExpressionStatement:
		_, err := in.evaluateExpression(s.Expression, scope)
		return err
	case *ast.FunctionStatement:
		fn := &runtime.FunctionValue{
			Parameters: s.Parameters,
			Body:       s.Body,
			Capture:    scope.Clone(),
		}
		// Named functions always bind globally, even when declared inside
		// another function's body.
		in.global.Put(s.Name, fn)
		return nil
	case *ast.IfStatement:
		return in.executeIf(s, scope)
	case *ast.NumericForStatement:
		return in.executeNumericFor(s, scope)
	default:
		return fmt.Errorf("unsupported statement %T", stmt)
	}
}

func (in *Interpreter) executeBlock(body []ast.Statement, scope *runtime.Scope) error {
	for _, stmt := range body {
		if err := in.executeStatement(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}

// executeAssignment routes the three assignable target shapes. A bare name
// assigns locally when the current scope already binds it, globally
// otherwise; dot and bracket targets mutate the table in place.
func (in *Interpreter) executeAssignment(s *ast.AssignmentStatement, scope *runtime.Scope) error {
	value, err := in.evaluateExpression(s.Value, scope)
	if err != nil {
		return err
	}
	switch target := s.Target.(type) {
	case *ast.Variable:
		if scope.Has(target.Name) {
			scope.Put(target.Name, value)
		} else {
			in.global.Put(target.Name, value)
		}
		return nil
	case *ast.DotExpression:
		object, err := in.evaluateExpression(target.Object, scope)
		if err != nil {
			return err
		}
		table, ok := object.(*runtime.TableValue)
		if !ok {
			return newRuntimeError(InvalidIndex, object)
		}
		table.Set(runtime.NameIndex(target.Field), value)
		return nil
	case *ast.IndexExpression:
		object, err := in.evaluateExpression(target.Object, scope)
		if err != nil {
			return err
		}
		table, ok := object.(*runtime.TableValue)
		if !ok {
			return newRuntimeError(InvalidIndex, object)
		}
		key, err := in.evaluateExpression(target.Key, scope)
		if err != nil {
			return err
		}
		ix, ok := runtime.NormalizeIndex(key)
		if !ok {
			return newRuntimeError(InvalidIndex, key)
		}
		table.Set(ix, value)
		return nil
	default:
		return fmt.Errorf("unsupported assignment target %T", s.Target)
	}
}

// executeIf evaluates the condition chain top to bottom and runs the first
// truthy branch. Branches execute in the enclosing scope; there is no block
// scope for if bodies.
func (in *Interpreter) executeIf(s *ast.IfStatement, scope *runtime.Scope) error {
	cond, err := in.evaluateExpression(s.Condition, scope)
	if err != nil {
		return err
	}
	if runtime.Truthy(cond) {
		return in.executeBlock(s.Then, scope)
	}
	for _, clause := range s.ElseIfs {
		cond, err := in.evaluateExpression(clause.Condition, scope)
		if err != nil {
			return err
		}
		if runtime.Truthy(cond) {
			return in.executeBlock(clause.Body, scope)
		}
	}
	if s.Else != nil {
		return in.executeBlock(s.Else, scope)
	}
	return nil
}

// executeNumericFor evaluates start, limit, and step exactly once before the
// first iteration and type-checks each clause before the body ever runs.
// The loop is ascending only: it continues while current <= limit.
func (in *Interpreter) executeNumericFor(s *ast.NumericForStatement, scope *runtime.Scope) error {
	start, err := in.evaluateExpression(s.Start, scope)
	if err != nil {
		return err
	}
	startNum, ok := start.(runtime.NumberValue)
	if !ok {
		return newRuntimeError(BadForInitialValue, start)
	}
	limit, err := in.evaluateExpression(s.Limit, scope)
	if err != nil {
		return err
	}
	limitNum, ok := limit.(runtime.NumberValue)
	if !ok {
		return newRuntimeError(BadForLimit, limit)
	}
	step := 1.0
	if s.Step != nil {
		stepVal, err := in.evaluateExpression(s.Step, scope)
		if err != nil {
			return err
		}
		stepNum, ok := stepVal.(runtime.NumberValue)
		if !ok {
			return newRuntimeError(BadForStep, stepVal)
		}
		step = stepNum.Val
	}
	for current := startNum.Val; current <= limitNum.Val; current += step {
		scope.Put(s.Name, runtime.NumberValue{Val: current})
		if err := in.executeBlock(s.Body, scope); err != nil {
			return err
		}
	}
	return nil
}
