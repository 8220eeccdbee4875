package parser

import (
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"minilua/interpreter-go/pkg/ast"
)

var supportedOperators = map[string]ast.Operation{
	"+":  ast.OpAdd,
	"-":  ast.OpSubtract,
	"*":  ast.OpMultiply,
	"/":  ast.OpDivide,
	"==": ast.OpEquals,
	">":  ast.OpGreaterThan,
	"<":  ast.OpLessThan,
	">=": ast.OpGreaterOrEqual,
	"<=": ast.OpLessOrEqual,
}

func (ctx *parseContext) parseExpression(node *sitter.Node) (ast.Expression, error) {
	if node == nil {
		return nil, fmt.Errorf("parser: missing expression")
	}
	switch node.Kind() {
	case "identifier":
		return &ast.Variable{Name: ctx.text(node)}, nil
	case "number":
		value, err := parseNumber(ctx.text(node))
		if err != nil {
			return nil, wrapParseError(node, err)
		}
		return &ast.NumberLiteral{Value: value}, nil
	case "string":
		value, err := unquoteString(ctx.text(node))
		if err != nil {
			return nil, wrapParseError(node, err)
		}
		return &ast.StringLiteral{Value: value}, nil
	case "nil":
		return &ast.NilLiteral{}, nil
	case "true":
		return &ast.BooleanLiteral{Value: true}, nil
	case "false":
		return &ast.BooleanLiteral{Value: false}, nil
	case "binary_expression":
		return ctx.parseBinary(node)
	case "unary_expression":
		return ctx.parseUnary(node)
	case "parenthesized_expression":
		inner := node.ChildByFieldName("expression")
		if inner == nil {
			inner = firstNamedChild(node)
		}
		return ctx.parseExpression(inner)
	case "function_call":
		return ctx.parseCall(node)
	case "dot_index_expression":
		object, err := ctx.parseExpression(node.ChildByFieldName("table"))
		if err != nil {
			return nil, err
		}
		return &ast.DotExpression{Object: object, Field: ctx.text(node.ChildByFieldName("field"))}, nil
	case "bracket_index_expression":
		object, err := ctx.parseExpression(node.ChildByFieldName("table"))
		if err != nil {
			return nil, err
		}
		key, err := ctx.parseExpression(node.ChildByFieldName("field"))
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpression{Object: object, Key: key}, nil
	case "function_definition":
		params, err := ctx.parseParameters(node.ChildByFieldName("parameters"))
		if err != nil {
			return nil, err
		}
		body, err := ctx.parseBlock(node.ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
		return &ast.FunctionExpression{Parameters: params, Body: body}, nil
	case "table_constructor":
		return ctx.parseTableConstructor(node)
	case "vararg_expression":
		return nil, unsupported(node, "varargs")
	case "method_index_expression":
		return nil, unsupported(node, "method call")
	default:
		return nil, unsupported(node, fmt.Sprintf("expression %s", node.Kind()))
	}
}

func (ctx *parseContext) parseBinary(node *sitter.Node) (ast.Expression, error) {
	leftNode := node.ChildByFieldName("left")
	rightNode := node.ChildByFieldName("right")
	if leftNode == nil || rightNode == nil {
		return nil, unsupported(node, "binary expression")
	}
	opText := ctx.operatorText(node, leftNode, rightNode)
	op, ok := supportedOperators[opText]
	if !ok {
		return nil, unsupported(node, fmt.Sprintf("operator %q", opText))
	}
	left, err := ctx.parseExpression(leftNode)
	if err != nil {
		return nil, err
	}
	right, err := ctx.parseExpression(rightNode)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Left: left, Operator: op, Right: right}, nil
}

// operatorText extracts the operator token sitting between the two operands.
func (ctx *parseContext) operatorText(node, left, right *sitter.Node) string {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil || child.IsNamed() {
			continue
		}
		if child.StartByte() >= left.EndByte() && child.EndByte() <= right.StartByte() {
			return ctx.text(child)
		}
	}
	return ""
}

// parseUnary folds negation of a number literal into a negative literal.
// Every other unary form is outside the subset.
func (ctx *parseContext) parseUnary(node *sitter.Node) (ast.Expression, error) {
	operand := firstNamedChild(node)
	if operand == nil {
		return nil, unsupported(node, "unary expression")
	}
	opEnd := operand.StartByte() - node.StartByte()
	op := strings.TrimSpace(string(ctx.source[node.StartByte() : node.StartByte()+opEnd]))
	if op != "-" || operand.Kind() != "number" {
		return nil, unsupported(node, fmt.Sprintf("unary operator %q", op))
	}
	value, err := parseNumber(ctx.text(operand))
	if err != nil {
		return nil, wrapParseError(operand, err)
	}
	return &ast.NumberLiteral{Value: -value}, nil
}

func (ctx *parseContext) parseCall(node *sitter.Node) (ast.Expression, error) {
	callee, err := ctx.parseExpression(node.ChildByFieldName("name"))
	if err != nil {
		return nil, err
	}
	args := make([]ast.Expression, 0)
	if argsNode := node.ChildByFieldName("arguments"); argsNode != nil {
		for i := uint(0); i < argsNode.NamedChildCount(); i++ {
			child := argsNode.NamedChild(i)
			if isIgnorableNode(child) {
				continue
			}
			arg, err := ctx.parseExpression(child)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	return &ast.CallExpression{Callee: callee, Arguments: args}, nil
}

func (ctx *parseContext) parseTableConstructor(node *sitter.Node) (ast.Expression, error) {
	fields := make([]*ast.TableField, 0)
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if isIgnorableNode(child) || child.Kind() != "field" {
			continue
		}
		value, err := ctx.parseExpression(child.ChildByFieldName("value"))
		if err != nil {
			return nil, err
		}
		if nameNode := child.ChildByFieldName("name"); nameNode != nil {
			fields = append(fields, &ast.TableField{Name: ctx.text(nameNode), Value: value})
			continue
		}
		if keyNode := child.ChildByFieldName("key"); keyNode != nil {
			key, err := ctx.parseExpression(keyNode)
			if err != nil {
				return nil, err
			}
			fields = append(fields, &ast.TableField{Key: key, Value: value})
			continue
		}
		fields = append(fields, &ast.TableField{Value: value})
	}
	return &ast.TableConstructor{Fields: fields}, nil
}

// parseNumber accepts decimal and hexadecimal Lua number literals.
func parseNumber(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "0x") && !strings.ContainsAny(lower, ".p") {
		n, err := strconv.ParseUint(lower[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("parser: malformed number %q", text)
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parser: malformed number %q", text)
	}
	return f, nil
}

// unquoteString strips string delimiters and resolves escape sequences.
// Long-bracket strings are taken verbatim, minus a leading newline.
func unquoteString(text string) (string, error) {
	if strings.HasPrefix(text, "[") {
		level := 0
		for level+1 < len(text) && text[level+1] == '=' {
			level++
		}
		open := level + 2
		closeLen := level + 2
		if len(text) < open+closeLen || text[level+1] != '[' {
			return "", fmt.Errorf("parser: malformed long string")
		}
		body := text[open : len(text)-closeLen]
		body = strings.TrimPrefix(body, "\n")
		return body, nil
	}
	if len(text) < 2 {
		return "", fmt.Errorf("parser: malformed string")
	}
	quote := text[0]
	if quote != '"' && quote != '\'' {
		return "", fmt.Errorf("parser: malformed string")
	}
	body := text[1 : len(text)-1]
	var out strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("parser: unterminated escape")
		}
		switch e := body[i]; e {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case 'a':
			out.WriteByte('\a')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'v':
			out.WriteByte('\v')
		case '\\', '"', '\'':
			out.WriteByte(e)
		case '\n':
			out.WriteByte('\n')
		default:
			if e < '0' || e > '9' {
				return "", fmt.Errorf("parser: unsupported escape sequence \\%c", e)
			}
			code := 0
			digits := 0
			for digits < 3 && i < len(body) && body[i] >= '0' && body[i] <= '9' {
				code = code*10 + int(body[i]-'0')
				i++
				digits++
			}
			i--
			if code > 255 {
				return "", fmt.Errorf("parser: escape sequence out of range")
			}
			out.WriteByte(byte(code))
		}
	}
	return out.String(), nil
}
