package parser

import (
	"errors"
	"strings"
	"testing"

	"minilua/interpreter-go/pkg/ast"
)

func newTestParser(t *testing.T) *ChunkParser {
	t.Helper()
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func parseSource(t *testing.T, source string) ast.Program {
	t.Helper()
	program, err := newTestParser(t).Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	return program
}

func parseFailure(t *testing.T, source string) *ParseError {
	t.Helper()
	_, err := newTestParser(t).Parse([]byte(source))
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want error", source)
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse(%q) error = %T, want ParseError", source, err)
	}
	return parseErr
}

func TestParseAssignmentAndLocal(t *testing.T) {
	program := parseSource(t, "x = 1\nlocal y = \"two\"\nlocal z")
	if len(program) != 3 {
		t.Fatalf("statement count = %d", len(program))
	}

	assign, ok := program[0].(*ast.AssignmentStatement)
	if !ok {
		t.Fatalf("program[0] = %T", program[0])
	}
	if assign.Target.(*ast.Variable).Name != "x" {
		t.Fatal("assignment target mismatch")
	}
	if assign.Value.(*ast.NumberLiteral).Value != 1 {
		t.Fatal("assignment value mismatch")
	}

	local, ok := program[1].(*ast.LocalStatement)
	if !ok {
		t.Fatalf("program[1] = %T", program[1])
	}
	if local.Name != "y" || local.Value.(*ast.StringLiteral).Value != "two" {
		t.Fatal("local declaration mismatch")
	}

	bare, ok := program[2].(*ast.LocalStatement)
	if !ok {
		t.Fatalf("program[2] = %T", program[2])
	}
	if bare.Name != "z" {
		t.Fatal("bare local name mismatch")
	}
	if _, ok := bare.Value.(*ast.NilLiteral); !ok {
		t.Fatal("bare local should initialize to nil")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	program := parseSource(t, "function add(a, b)\n  return a + b\nend")
	fn, ok := program[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("program[0] = %T", program[0])
	}
	if fn.Name != "add" || len(fn.Parameters) != 2 || fn.Parameters[1] != "b" {
		t.Fatalf("declaration = %+v", fn)
	}
	ret, ok := fn.Body[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("body[0] = %T", fn.Body[0])
	}
	bin := ret.Value.(*ast.BinaryExpression)
	if bin.Operator != ast.OpAdd {
		t.Fatalf("operator = %q", bin.Operator)
	}
}

func TestParseAnonymousFunction(t *testing.T) {
	program := parseSource(t, "f = function(x) return x end")
	assign := program[0].(*ast.AssignmentStatement)
	fn, ok := assign.Value.(*ast.FunctionExpression)
	if !ok {
		t.Fatalf("value = %T", assign.Value)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0] != "x" {
		t.Fatalf("parameters = %v", fn.Parameters)
	}
}

func TestParseIfChain(t *testing.T) {
	program := parseSource(t, `
if x == 1 then
  a = 1
elseif x == 2 then
  a = 2
elseif x == 3 then
  a = 3
else
  a = 4
end
`)
	stmt, ok := program[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("program[0] = %T", program[0])
	}
	if len(stmt.Then) != 1 || len(stmt.ElseIfs) != 2 || len(stmt.Else) != 1 {
		t.Fatalf("if shape: then=%d elseifs=%d else=%d", len(stmt.Then), len(stmt.ElseIfs), len(stmt.Else))
	}
	second := stmt.ElseIfs[1].Condition.(*ast.BinaryExpression)
	if second.Right.(*ast.NumberLiteral).Value != 3 {
		t.Fatal("second elseif condition mismatch")
	}
}

func TestParseNumericFor(t *testing.T) {
	program := parseSource(t, "for i = 0, 10, 2 do\n  sum = sum + i\nend")
	loop, ok := program[0].(*ast.NumericForStatement)
	if !ok {
		t.Fatalf("program[0] = %T", program[0])
	}
	if loop.Name != "i" {
		t.Fatalf("loop variable = %q", loop.Name)
	}
	if loop.Step.(*ast.NumberLiteral).Value != 2 {
		t.Fatal("step mismatch")
	}

	program = parseSource(t, "for i = 1, 3 do\nend")
	loop = program[0].(*ast.NumericForStatement)
	if loop.Step != nil {
		t.Fatal("omitted step should be nil")
	}
}

func TestParseIndexing(t *testing.T) {
	program := parseSource(t, "return t.a")
	ret := program[0].(*ast.ReturnStatement)
	dot := ret.Value.(*ast.DotExpression)
	if dot.Field != "a" || dot.Object.(*ast.Variable).Name != "t" {
		t.Fatalf("dot = %+v", dot)
	}

	program = parseSource(t, "return t[1 + 1]")
	index := program[0].(*ast.ReturnStatement).Value.(*ast.IndexExpression)
	if _, ok := index.Key.(*ast.BinaryExpression); !ok {
		t.Fatalf("key = %T", index.Key)
	}
}

func TestParseTableConstructor(t *testing.T) {
	program := parseSource(t, `t = { 1, x = 2, ["y"] = 3 }`)
	table := program[0].(*ast.AssignmentStatement).Value.(*ast.TableConstructor)
	if len(table.Fields) != 3 {
		t.Fatalf("field count = %d", len(table.Fields))
	}
	if table.Fields[0].Name != "" || table.Fields[0].Key != nil {
		t.Fatal("first field should be positional")
	}
	if table.Fields[1].Name != "x" {
		t.Fatalf("second field name = %q", table.Fields[1].Name)
	}
	key, ok := table.Fields[2].Key.(*ast.StringLiteral)
	if !ok || key.Value != "y" {
		t.Fatal("third field should be bracket-keyed by string")
	}
}

func TestParseNumberLiterals(t *testing.T) {
	cases := map[string]float64{
		"return 3":    3,
		"return 1.5":  1.5,
		"return 0x10": 16,
		"return 2e2":  200,
		"return -4":   -4,
		"return -0.5": -0.5,
		"return 1e-2": 0.01,
		"return 0xff": 255,
	}
	for source, want := range cases {
		program := parseSource(t, source)
		lit, ok := program[0].(*ast.ReturnStatement).Value.(*ast.NumberLiteral)
		if !ok {
			t.Fatalf("%q produced %T", source, program[0].(*ast.ReturnStatement).Value)
		}
		if lit.Value != want {
			t.Errorf("%q = %v, want %v", source, lit.Value, want)
		}
	}
}

func TestParseStringLiterals(t *testing.T) {
	cases := map[string]string{
		`return "plain"`:        "plain",
		`return 'single'`:       "single",
		`return "tab\there"`:    "tab\there",
		`return "line\n"`:       "line\n",
		`return "quote\""`:      `quote"`,
		`return "\65\66\67"`:    "ABC",
		"return [[long text]]":  "long text",
		"return [==[a ]] b]==]": "a ]] b",
	}
	for source, want := range cases {
		program := parseSource(t, source)
		lit, ok := program[0].(*ast.ReturnStatement).Value.(*ast.StringLiteral)
		if !ok {
			t.Fatalf("%q produced a non-string literal", source)
		}
		if lit.Value != want {
			t.Errorf("%q = %q, want %q", source, lit.Value, want)
		}
	}
}

func TestUnsupportedConstructs(t *testing.T) {
	sources := []string{
		"while true do end",
		"repeat until true",
		"do end",
		"a, b = 1, 2",
		"return 1, 2",
		"return a and b",
		"return a .. b",
		"return a ~= b",
		"return ...",
		"obj:method()",
		"function t.m() end",
		"for k, v in pairs(t) do end",
		"for i = 1, 10 do break end",
	}
	for _, source := range sources {
		parseErr := parseFailure(t, source)
		if !strings.Contains(parseErr.Message, "unsupported") {
			t.Errorf("%q: message = %q, want unsupported construct", source, parseErr.Message)
		}
	}
}

func TestSyntaxErrorCarriesLocation(t *testing.T) {
	parseErr := parseFailure(t, "function broken(\n")
	if parseErr.Location.Line == 0 {
		t.Fatalf("missing location: %+v", parseErr)
	}
	if !strings.Contains(parseErr.Message, "syntax error") {
		t.Fatalf("message = %q", parseErr.Message)
	}
}

func TestCommentsAreIgnored(t *testing.T) {
	program := parseSource(t, "-- leading comment\nx = 1 -- trailing\n--[[ block\ncomment ]]\nreturn x")
	if len(program) != 2 {
		t.Fatalf("statement count = %d", len(program))
	}
}
