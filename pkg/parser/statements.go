package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"minilua/interpreter-go/pkg/ast"
)

func (ctx *parseContext) parseStatement(node *sitter.Node) (ast.Statement, error) {
	switch node.Kind() {
	case "assignment_statement":
		return ctx.parseAssignment(node, false)
	case "variable_declaration":
		return ctx.parseLocalDeclaration(node)
	case "function_declaration":
		return ctx.parseFunctionDeclaration(node)
	case "return_statement":
		return ctx.parseReturn(node)
	case "if_statement":
		return ctx.parseIf(node)
	case "for_statement":
		return ctx.parseFor(node)
	case "function_call":
		expr, err := ctx.parseExpression(node)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expression: expr}, nil
	case "while_statement", "repeat_statement", "do_statement",
		"goto_statement", "label_statement", "break_statement":
		return nil, unsupported(node, node.Kind())
	default:
		return nil, unsupported(node, fmt.Sprintf("statement %s", node.Kind()))
	}
}

func (ctx *parseContext) parseBlock(node *sitter.Node) ([]ast.Statement, error) {
	body := make([]ast.Statement, 0)
	if node == nil {
		return body, nil
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if isIgnorableNode(child) {
			continue
		}
		stmt, err := ctx.parseStatement(child)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

// parseAssignment handles `a = e` and, when local is set, `local a = e`.
// Multi-target and multi-value forms are outside the subset.
func (ctx *parseContext) parseAssignment(node *sitter.Node, local bool) (ast.Statement, error) {
	var variables, expressions *sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "variable_list":
			variables = child
		case "expression_list":
			expressions = child
		}
	}
	if variables == nil || expressions == nil {
		return nil, unsupported(node, "assignment without value")
	}
	if variables.NamedChildCount() != 1 || expressions.NamedChildCount() != 1 {
		return nil, unsupported(node, "multiple assignment")
	}

	value, err := ctx.parseExpression(expressions.NamedChild(0))
	if err != nil {
		return nil, err
	}

	targetNode := variables.NamedChild(0)
	if local {
		if targetNode.Kind() != "identifier" {
			return nil, unsupported(targetNode, "local declaration target")
		}
		return &ast.LocalStatement{Name: ctx.text(targetNode), Value: value}, nil
	}

	target, err := ctx.parseExpression(targetNode)
	if err != nil {
		return nil, err
	}
	switch target.(type) {
	case *ast.Variable, *ast.DotExpression, *ast.IndexExpression:
		return &ast.AssignmentStatement{Target: target, Value: value}, nil
	default:
		return nil, unsupported(targetNode, "assignment target")
	}
}

func (ctx *parseContext) parseLocalDeclaration(node *sitter.Node) (ast.Statement, error) {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "assignment_statement":
			return ctx.parseAssignment(child, true)
		case "variable_list":
			// `local x` with no initializer binds nil.
			if child.NamedChildCount() != 1 {
				return nil, unsupported(child, "multiple local declaration")
			}
			name := child.NamedChild(0)
			if name.Kind() != "identifier" {
				return nil, unsupported(name, "local declaration target")
			}
			return &ast.LocalStatement{Name: ctx.text(name), Value: &ast.NilLiteral{}}, nil
		}
	}
	return nil, unsupported(node, "local declaration")
}

func (ctx *parseContext) parseFunctionDeclaration(node *sitter.Node) (ast.Statement, error) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil || nameNode.Kind() != "identifier" {
		return nil, unsupported(node, "non-identifier function name")
	}
	params, err := ctx.parseParameters(node.ChildByFieldName("parameters"))
	if err != nil {
		return nil, err
	}
	body, err := ctx.parseBlock(node.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStatement{
		Name:       ctx.text(nameNode),
		Parameters: params,
		Body:       body,
	}, nil
}

func (ctx *parseContext) parseParameters(node *sitter.Node) ([]string, error) {
	params := make([]string, 0)
	if node == nil {
		return params, nil
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() != "identifier" {
			return nil, unsupported(child, "parameter")
		}
		params = append(params, ctx.text(child))
	}
	return params, nil
}

func (ctx *parseContext) parseReturn(node *sitter.Node) (ast.Statement, error) {
	list := firstNamedChild(node)
	if list == nil {
		return &ast.ReturnStatement{}, nil
	}
	if list.Kind() != "expression_list" {
		return nil, unsupported(node, "return statement")
	}
	if list.NamedChildCount() > 1 {
		return nil, unsupported(node, "multiple return values")
	}
	if list.NamedChildCount() == 0 {
		return &ast.ReturnStatement{}, nil
	}
	value, err := ctx.parseExpression(list.NamedChild(0))
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Value: value}, nil
}

func (ctx *parseContext) parseIf(node *sitter.Node) (ast.Statement, error) {
	cond, err := ctx.parseExpression(node.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	then, err := ctx.parseBlock(node.ChildByFieldName("consequence"))
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Condition: cond, Then: then}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "elseif_statement":
			cond, err := ctx.parseExpression(child.ChildByFieldName("condition"))
			if err != nil {
				return nil, err
			}
			body, err := ctx.parseBlock(child.ChildByFieldName("consequence"))
			if err != nil {
				return nil, err
			}
			stmt.ElseIfs = append(stmt.ElseIfs, &ast.ElseIfClause{Condition: cond, Body: body})
		case "else_statement":
			body, err := ctx.parseBlock(child.ChildByFieldName("body"))
			if err != nil {
				return nil, err
			}
			stmt.Else = body
		}
	}
	return stmt, nil
}

func (ctx *parseContext) parseFor(node *sitter.Node) (ast.Statement, error) {
	clause := node.ChildByFieldName("clause")
	if clause == nil {
		clause = firstNamedChild(node)
	}
	if clause == nil || clause.Kind() != "for_numeric_clause" {
		return nil, unsupported(node, "generic for")
	}
	nameNode := clause.ChildByFieldName("name")
	if nameNode == nil || nameNode.Kind() != "identifier" {
		return nil, unsupported(clause, "for loop variable")
	}
	start, err := ctx.parseExpression(clause.ChildByFieldName("start"))
	if err != nil {
		return nil, err
	}
	limit, err := ctx.parseExpression(clause.ChildByFieldName("end"))
	if err != nil {
		return nil, err
	}
	var step ast.Expression
	if stepNode := clause.ChildByFieldName("step"); stepNode != nil {
		step, err = ctx.parseExpression(stepNode)
		if err != nil {
			return nil, err
		}
	}
	body, err := ctx.parseBlock(node.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return &ast.NumericForStatement{
		Name:  ctx.text(nameNode),
		Start: start,
		Limit: limit,
		Step:  step,
		Body:  body,
	}, nil
}
