package main

import (
	"fmt"
	"os"
	"strings"

	"minilua/interpreter-go/pkg/interpreter"
	"minilua/interpreter-go/pkg/runtime"
)

// newInterpreter builds an interpreter with the host natives registered.
func newInterpreter() *interpreter.Interpreter {
	in := interpreter.New()
	registerNatives(in, os.Stdout)
	return in
}

func registerNatives(in *interpreter.Interpreter, out *os.File) {
	in.Define("print", func(args []runtime.Value) runtime.Value {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = formatValue(arg)
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return nil
	})
	in.Define("type", func(args []runtime.Value) runtime.Value {
		if len(args) == 0 {
			return runtime.NilValue{}
		}
		return runtime.StringValue{Val: args[0].Kind().String()}
	})
	in.Define("tostring", func(args []runtime.Value) runtime.Value {
		if len(args) == 0 {
			return runtime.StringValue{Val: formatValue(runtime.NilValue{})}
		}
		return runtime.StringValue{Val: formatValue(args[0])}
	})
}

// formatValue renders a runtime value for display.
func formatValue(v runtime.Value) string {
	return formatValueGuarded(v, make(map[*runtime.TableValue]bool))
}

func formatValueGuarded(v runtime.Value, open map[*runtime.TableValue]bool) string {
	switch val := v.(type) {
	case runtime.NilValue:
		return "<nil>"
	case runtime.NumberValue:
		return runtime.FormatNumber(val.Val)
	case runtime.StringValue:
		return val.Val
	case runtime.BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case *runtime.TableValue:
		return formatTable(val, open)
	case *runtime.FunctionValue:
		return "<function>"
	case runtime.NativeFunctionValue:
		return "<native function>"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// formatTable tracks the tables currently being rendered so a table that
// reaches itself prints a placeholder instead of recursing forever.
func formatTable(t *runtime.TableValue, open map[*runtime.TableValue]bool) string {
	if open[t] {
		return "{...}"
	}
	open[t] = true
	defer delete(open, t)

	var b strings.Builder
	b.WriteString("{")
	for i, ix := range t.Indexes() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ix.String())
		b.WriteString(" = ")
		b.WriteString(formatValueGuarded(t.Get(ix), open))
	}
	b.WriteString("}")
	return b.String()
}
