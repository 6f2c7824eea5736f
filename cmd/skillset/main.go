// Package main is the entry point for the skillset CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"

	"github.com/thoreinstein/skillset/cmd/skillset/commands"
	"github.com/thoreinstein/skillset/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

// printError writes err followed by any suggestion and hints attached to it.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", red("Error:"), err)

	var hints []string
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		hints = append(hints, exitErr.Suggestion)
	}
	for _, h := range errors.GetAllHints(err) {
		if !slices.Contains(hints, h) {
			hints = append(hints, h)
		}
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	for _, h := range hints {
		fmt.Fprintf(w, "%s %s\n", yellow("Hint:"), h)
	}
}
