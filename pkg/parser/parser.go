// Package parser lowers tree-sitter Lua syntax trees onto the evaluator's
// AST. The full Lua grammar parses; constructs outside the supported subset
// are rejected here with a located ParseError.
package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"minilua/interpreter-go/pkg/ast"
	"minilua/interpreter-go/pkg/parser/language"
)

// ChunkParser wraps a tree-sitter parser configured for Lua chunks.
type ChunkParser struct {
	parser *sitter.Parser
}

// New constructs a parser with the Lua language loaded.
func New() (*ChunkParser, error) {
	lang := language.Lua()
	if lang == nil {
		return nil, fmt.Errorf("parser: lua language not available")
	}

	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return &ChunkParser{parser: p}, nil
}

// Close releases parser resources.
func (p *ChunkParser) Close() {
	if p == nil || p.parser == nil {
		return
	}
	p.parser.Close()
}

// Parse parses Lua source into a program.
func (p *ChunkParser) Parse(source []byte) (ast.Program, error) {
	if p == nil || p.parser == nil {
		return nil, fmt.Errorf("parser: nil parser")
	}

	tree := p.parser.Parse(source, nil)
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parser: unexpected root node")
	}
	if root.Kind() != "chunk" {
		if root.HasError() {
			return nil, syntaxError(root)
		}
		return nil, fmt.Errorf("parser: unexpected root node %q", root.Kind())
	}
	if root.HasError() {
		return nil, syntaxError(root)
	}

	ctx := &parseContext{source: source}

	program := make(ast.Program, 0, root.NamedChildCount())
	for i := uint(0); i < root.NamedChildCount(); i++ {
		node := root.NamedChild(i)
		if isIgnorableNode(node) {
			continue
		}
		stmt, err := ctx.parseStatement(node)
		if err != nil {
			return nil, wrapParseError(node, err)
		}
		program = append(program, stmt)
	}
	return program, nil
}

type parseContext struct {
	source []byte
}

func (ctx *parseContext) text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return string(ctx.source[node.StartByte():node.EndByte()])
}

func isIgnorableNode(node *sitter.Node) bool {
	if node == nil {
		return true
	}
	switch node.Kind() {
	case "comment", "hash_bang_line":
		return true
	default:
		return false
	}
}

func firstNamedChild(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if !isIgnorableNode(child) {
			return child
		}
	}
	return nil
}
