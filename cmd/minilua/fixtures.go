package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite is a YAML fixture file: named source chunks with the value or error
// each one is expected to produce.
type Suite struct {
	Name     string    `yaml:"name"`
	Fixtures []Fixture `yaml:"fixtures"`
}

type Fixture struct {
	Name      string `yaml:"name"`
	Source    string `yaml:"source"`
	Want      string `yaml:"want"`
	WantError string `yaml:"want_error"`
}

func loadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var suite Suite
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &suite, nil
}

func runTest(paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "minilua test expects at least one suite file")
		return 1
	}
	failures := 0
	total := 0
	for _, path := range paths {
		suite, err := loadSuite(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, fixture := range suite.Fixtures {
			total++
			if msg := runFixture(fixture); msg != "" {
				failures++
				fmt.Fprintf(os.Stderr, "FAIL %s/%s: %s\n", suite.Name, fixture.Name, msg)
			} else {
				fmt.Fprintf(os.Stdout, "ok   %s/%s\n", suite.Name, fixture.Name)
			}
		}
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d fixture(s) failed\n", failures, total)
		return 1
	}
	fmt.Fprintf(os.Stdout, "%d fixture(s) passed\n", total)
	return 0
}

// runFixture returns an empty string on success, a failure description
// otherwise.
func runFixture(fixture Fixture) string {
	in := newInterpreter()
	defer in.Close()

	result, err := in.Execute(fixture.Source)
	if fixture.WantError != "" {
		if err == nil {
			return fmt.Sprintf("expected error %q, got value %s", fixture.WantError, formatValue(result))
		}
		if !strings.Contains(err.Error(), fixture.WantError) {
			return fmt.Sprintf("expected error %q, got %q", fixture.WantError, err.Error())
		}
		return ""
	}
	if err != nil {
		return fmt.Sprintf("unexpected error: %s", describeError(err))
	}
	if got := formatValue(result); got != fixture.Want {
		return fmt.Sprintf("expected %q, got %q", fixture.Want, got)
	}
	return ""
}
