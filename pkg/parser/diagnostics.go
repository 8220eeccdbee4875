package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParseError includes a message plus a best-effort source location.
type ParseError struct {
	Message  string
	Location SourceLocation
}

func (e *ParseError) Error() string {
	return e.Message
}

func wrapParseError(node *sitter.Node, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr
	}
	if node == nil {
		return err
	}
	return &ParseError{
		Message:  err.Error(),
		Location: locationForNode(node),
	}
}

// unsupported reports a construct the full Lua grammar accepts but the
// evaluator's subset does not.
func unsupported(node *sitter.Node, what string) error {
	return &ParseError{
		Message:  fmt.Sprintf("parser: unsupported construct: %s", what),
		Location: locationForNode(node),
	}
}

func syntaxError(root *sitter.Node) *ParseError {
	missing, broken := scanForSyntaxIssue(root)

	at := missing
	if at == nil {
		at = broken
	}
	if at == nil {
		at = root
	}

	message := "parser: syntax error"
	if missing != nil {
		message = fmt.Sprintf("parser: syntax error: expected %s", formatExpectedKind(missing.Kind()))
	}
	return &ParseError{
		Message:  message,
		Location: locationForNode(at),
	}
}

// scanForSyntaxIssue walks the tree once, returning the earliest missing
// node and the earliest error node. A missing node names the token the
// parser expected; an error node only pins the failure's position.
func scanForSyntaxIssue(root *sitter.Node) (missing, broken *sitter.Node) {
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if node.IsMissing() && (missing == nil || node.StartByte() < missing.StartByte()) {
			missing = node
		}
		if node.IsError() && (broken == nil || node.StartByte() < broken.StartByte()) {
			broken = node
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(root)
	return missing, broken
}

func locationForNode(node *sitter.Node) SourceLocation {
	if node == nil {
		return SourceLocation{}
	}
	start := node.StartPosition()
	end := node.EndPosition()
	return SourceLocation{
		Line:      int(start.Row) + 1,
		Column:    int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndColumn: int(end.Column) + 1,
	}
}

func formatExpectedKind(kind string) string {
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return "token"
	}
	isSymbol := true
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			isSymbol = false
			break
		}
	}
	if len(trimmed) == 1 || isSymbol {
		return fmt.Sprintf("'%s'", trimmed)
	}
	return strings.ReplaceAll(trimmed, "_", " ")
}
