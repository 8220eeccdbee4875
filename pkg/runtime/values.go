// Package runtime holds the value model and scope machinery shared by the
// evaluator and its hosts.
package runtime

import (
	"fmt"

	"minilua/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindNumber
	KindString
	KindBool
	KindTable
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindTable:
		return "table"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Every operation site
// in the evaluator switches exhaustively over the implementations below.
type Value interface {
	Kind() Kind
}

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type NumberValue struct {
	Val float64
}

func (NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }

// FunctionValue is a closure: parameter names, body, and the structural copy
// of the defining scope taken at creation time. The copy shares cells with
// the defining scope for every name that existed at capture time.
type FunctionValue struct {
	Parameters []string
	Body       []ast.Statement
	Capture    *Scope
}

func (*FunctionValue) Kind() Kind { return KindFunction }

// NativeFunc is a host-provided callback. It receives the evaluated argument
// list and returns a value synchronously; it has no way to raise a typed
// runtime error back into the evaluator.
type NativeFunc func(args []Value) Value

type NativeFunctionValue struct {
	Name string
	Impl NativeFunc
}

func (NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// Truthy reports the language's truthiness rule: only false and nil are
// falsy; everything else, 0 and the empty table included, is truthy.
func Truthy(v Value) bool {
	switch b := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return b.Val
	default:
		return true
	}
}
