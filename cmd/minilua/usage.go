package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  minilua run <file.lua>")
	fmt.Fprintln(os.Stderr, "  minilua <file.lua>")
	fmt.Fprintln(os.Stderr, "  minilua -e <source>")
	fmt.Fprintln(os.Stderr, "  minilua test <suite.yml ...>")
	fmt.Fprintln(os.Stderr, "  minilua --version")
}
