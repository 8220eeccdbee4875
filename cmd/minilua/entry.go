package main

import (
	"errors"
	"fmt"
	"os"

	"minilua/interpreter-go/pkg/parser"
	"minilua/interpreter-go/pkg/runtime"
)

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}
	return executeSource(string(source), path)
}

func runInline(source string) int {
	return executeSource(source, "")
}

func executeSource(source, path string) int {
	in := newInterpreter()
	defer in.Close()

	result, err := in.Execute(source)
	if err != nil {
		if path != "" {
			fmt.Fprintf(os.Stderr, "minilua: %s: %s\n", path, describeError(err))
		} else {
			fmt.Fprintln(os.Stderr, describeError(err))
		}
		return 1
	}
	if result.Kind() != runtime.KindNil {
		fmt.Fprintln(os.Stdout, formatValue(result))
	}
	return 0
}

// describeError renders parse errors with their source location; runtime
// errors already carry their full message.
func describeError(err error) string {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		loc := parseErr.Location
		if loc.Line > 0 {
			return fmt.Sprintf("%d:%d: %s", loc.Line, loc.Column, parseErr.Message)
		}
		return parseErr.Message
	}
	return err.Error()
}
