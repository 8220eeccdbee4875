package interpreter

import (
	"fmt"

	"minilua/interpreter-go/pkg/runtime"
)

// ErrorKind classifies the typed runtime failures the evaluator can raise.
type ErrorKind int

const (
	InvalidIndex ErrorKind = iota
	InvalidCall
	InvalidArithmetic
	BadForInitialValue
	BadForLimit
	BadForStep
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidIndex:
		return "InvalidIndex"
	case InvalidCall:
		return "InvalidCall"
	case InvalidArithmetic:
		return "InvalidArithmetic"
	case BadForInitialValue:
		return "BadForInitialValue"
	case BadForLimit:
		return "BadForLimit"
	case BadForStep:
		return "BadForStep"
	default:
		return fmt.Sprintf("unknown_error_kind_%d", int(k))
	}
}

// RuntimeError is a typed evaluation failure. It carries the offending value
// so hosts can render diagnostics like "attempt to index a boolean value".
type RuntimeError struct {
	Kind  ErrorKind
	Value runtime.Value
}

func (e *RuntimeError) Error() string {
	kind := e.Value.Kind()
	switch e.Kind {
	case InvalidIndex:
		return fmt.Sprintf("attempt to index a %s value", kind)
	case InvalidCall:
		return fmt.Sprintf("attempt to call a %s value", kind)
	case InvalidArithmetic:
		return fmt.Sprintf("attempt to perform arithmetic on a %s value", kind)
	case BadForInitialValue:
		return fmt.Sprintf("'for' initial value must be a number (got %s)", kind)
	case BadForLimit:
		return fmt.Sprintf("'for' limit must be a number (got %s)", kind)
	case BadForStep:
		return fmt.Sprintf("'for' step must be a number (got %s)", kind)
	default:
		return fmt.Sprintf("runtime error on a %s value", kind)
	}
}

func newRuntimeError(kind ErrorKind, v runtime.Value) *RuntimeError {
	return &RuntimeError{Kind: kind, Value: v}
}

// returnSignal unwinds a Return statement through block execution as an
// error value. It is caught at the call boundary (and at the top of a
// program) and never escapes to the host.
type returnSignal struct {
	value runtime.Value
}

func (*returnSignal) Error() string { return "return outside function" }
