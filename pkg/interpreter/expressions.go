package interpreter

import (
	"fmt"

	"minilua/interpreter-go/pkg/ast"
	"minilua/interpreter-go/pkg/runtime"
)

func (in *Interpreter) evaluateExpression(expr ast.Expression, scope *runtime.Scope) (runtime.Value, error) {
	switch e := expr.(type) {
	case nil:
		return runtime.NilValue{}, nil
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: e.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: e.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: e.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.Variable:
		if value, ok := scope.Get(e.Name); ok {
			return value, nil
		}
		if value, ok := in.global.Get(e.Name); ok {
			return value, nil
		}
		return runtime.NilValue{}, nil
	case *ast.BinaryExpression:
		return in.evaluateBinary(e, scope)
	case *ast.CallExpression:
		return in.evaluateCall(e, scope)
	case *ast.DotExpression:
		object, err := in.evaluateExpression(e.Object, scope)
		if err != nil {
			return nil, err
		}
		return in.indexTable(object, runtime.StringValue{Val: e.Field})
	case *ast.IndexExpression:
		object, err := in.evaluateExpression(e.Object, scope)
		if err != nil {
			return nil, err
		}
		key, err := in.evaluateExpression(e.Key, scope)
		if err != nil {
			return nil, err
		}
		return in.indexTable(object, key)
	case *ast.FunctionExpression:
		return &runtime.FunctionValue{
			Parameters: e.Parameters,
			Body:       e.Body,
			Capture:    scope.Clone(),
		}, nil
	case *ast.TableConstructor:
		return in.evaluateTableConstructor(e, scope)
	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

// indexTable resolves object[key] after both sides are evaluated. Only
// tables can be indexed, and only numbers and strings can key them; a miss
// on a valid key is nil, never an error.
func (in *Interpreter) indexTable(object, key runtime.Value) (runtime.Value, error) {
	table, ok := object.(*runtime.TableValue)
	if !ok {
		return nil, newRuntimeError(InvalidIndex, object)
	}
	ix, ok := runtime.NormalizeIndex(key)
	if !ok {
		return nil, newRuntimeError(InvalidIndex, key)
	}
	return table.Get(ix), nil
}

func (in *Interpreter) evaluateCall(e *ast.CallExpression, scope *runtime.Scope) (runtime.Value, error) {
	callee, err := in.evaluateExpression(e.Callee, scope)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, len(e.Arguments))
	for i, arg := range e.Arguments {
		value, err := in.evaluateExpression(arg, scope)
		if err != nil {
			return nil, err
		}
		args[i] = value
	}
	return in.applyCall(callee, args)
}

// evaluateTableConstructor builds a fresh table. Positional entries take
// successive integer indexes starting at 1; named and bracketed entries do
// not advance the positional counter.
func (in *Interpreter) evaluateTableConstructor(e *ast.TableConstructor, scope *runtime.Scope) (runtime.Value, error) {
	table := runtime.NewTable()
	auto := int64(1)
	for _, field := range e.Fields {
		switch {
		case field.Name != "":
			value, err := in.evaluateExpression(field.Value, scope)
			if err != nil {
				return nil, err
			}
			table.Set(runtime.NameIndex(field.Name), value)
		case field.Key != nil:
			key, err := in.evaluateExpression(field.Key, scope)
			if err != nil {
				return nil, err
			}
			ix, ok := runtime.NormalizeIndex(key)
			if !ok {
				return nil, newRuntimeError(InvalidIndex, key)
			}
			value, err := in.evaluateExpression(field.Value, scope)
			if err != nil {
				return nil, err
			}
			table.Set(ix, value)
		default:
			value, err := in.evaluateExpression(field.Value, scope)
			if err != nil {
				return nil, err
			}
			table.Set(runtime.NumberIndex(auto), value)
			auto++
		}
	}
	return table, nil
}
