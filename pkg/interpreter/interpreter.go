package interpreter

import (
	"errors"

	"minilua/interpreter-go/pkg/ast"
	"minilua/interpreter-go/pkg/parser"
	"minilua/interpreter-go/pkg/runtime"
)

// Interpreter executes programs against a persistent global scope. A single
// instance can run any number of programs in sequence; globals survive
// between runs. Instances are not safe for concurrent use.
type Interpreter struct {
	global *runtime.Scope
	parser *parser.ChunkParser
}

func New() *Interpreter {
	return &Interpreter{global: runtime.NewScope()}
}

// Define binds a host native function in the global scope.
func (in *Interpreter) Define(name string, fn runtime.NativeFunc) {
	in.global.Put(name, runtime.NativeFunctionValue{Name: name, Impl: fn})
}

// GlobalScope exposes the interpreter's global scope to hosts that want to
// pre-seed or inspect bindings directly.
func (in *Interpreter) GlobalScope() *runtime.Scope {
	return in.global
}

// Execute parses source and evaluates the resulting program. The parser is
// created lazily on first use and reused afterwards.
func (in *Interpreter) Execute(source string) (runtime.Value, error) {
	if in.parser == nil {
		p, err := parser.New()
		if err != nil {
			return nil, err
		}
		in.parser = p
	}
	program, err := in.parser.Parse([]byte(source))
	if err != nil {
		return nil, err
	}
	return in.EvaluateProgram(program)
}

// Close releases the parser, if one was created. The interpreter remains
// usable through EvaluateProgram afterwards.
func (in *Interpreter) Close() {
	if in.parser != nil {
		in.parser.Close()
		in.parser = nil
	}
}

// EvaluateProgram runs a pre-parsed program in a fresh top-level scope that
// reaches the persistent global scope only through the evaluator's explicit
// fallback. A top-level Return ends the program and yields its value; a
// program that falls off the end yields nil.
func (in *Interpreter) EvaluateProgram(program ast.Program) (runtime.Value, error) {
	scope := runtime.NewScope()
	for _, stmt := range program {
		if err := in.executeStatement(stmt, scope); err != nil {
			var ret *returnSignal
			if errors.As(err, &ret) {
				return ret.value, nil
			}
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}

// CallFunction invokes a script function or native from host code with
// pre-built argument values.
func (in *Interpreter) CallFunction(callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	return in.applyCall(callee, args)
}

func (in *Interpreter) applyCall(callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := callee.(type) {
	case runtime.NativeFunctionValue:
		result := fn.Impl(args)
		if result == nil {
			return runtime.NilValue{}, nil
		}
		return result, nil
	case *runtime.FunctionValue:
		scope := fn.Capture.Clone()
		for i, name := range fn.Parameters {
			if i < len(args) {
				scope.Put(name, args[i])
			} else {
				scope.Put(name, runtime.NilValue{})
			}
		}
		if err := in.executeBlock(fn.Body, scope); err != nil {
			var ret *returnSignal
			if errors.As(err, &ret) {
				return ret.value, nil
			}
			return nil, err
		}
		return runtime.NilValue{}, nil
	default:
		return nil, newRuntimeError(InvalidCall, callee)
	}
}
