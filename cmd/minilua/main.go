package main

import (
	"fmt"
	"os"
)

const cliToolVersion = "minilua 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "-e":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "minilua -e expects exactly one chunk of source")
			return 1
		}
		return runInline(args[1])
	case "run":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "minilua run expects exactly one script path")
			return 1
		}
		return runFile(args[1])
	case "test":
		return runTest(args[1:])
	default:
		if len(args) == 1 {
			return runFile(args[0])
		}
		printUsage()
		return 1
	}
}
