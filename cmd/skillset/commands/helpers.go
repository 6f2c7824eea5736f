package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
	"github.com/thoreinstein/skillset/internal/overwrite"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/internal/sync"
)

// Outcome tags. fatih/color drops the escapes when stdout is not a terminal.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// streams are the reader and writer a command talks to, plus whether a
// person is on the other end.
type streams struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// streamsFor inspects the terminal once per command. Quiet mode discards
// progress output unless a prompt may need to be shown.
func streamsFor(cmd *cobra.Command) streams {
	s := streams{
		in:          cmd.InOrStdin(),
		out:         cmd.OutOrStdout(),
		interactive: logging.IsTerminal(cmd.InOrStdin()) && logging.IsTTY(cmd.OutOrStdout()),
	}
	if quiet && !s.interactive {
		s.out = io.Discard
	}
	return s
}

// workingDir wraps os.Getwd for commands that resolve workspace paths.
func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "resolving working directory"), "")
	}
	return cwd, nil
}

// sourceDir is the canonical skills directory for the active scope.
func sourceDir(cfg *config.Config, cwd string) string {
	return paths.ResolveSource(userScope, cwd, cfg.Source, cfg.UserSource)
}

// targetsFromConfig expands the configured targets. "~/" paths resolve
// against the home directory and relative paths against cwd.
func targetsFromConfig(cfg *config.Config, cwd string) []sync.Target {
	targets := make([]sync.Target, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		targets = append(targets, sync.Target{
			Label: t.Label,
			Path:  paths.WorkspaceStore(cwd, t.Path),
		})
	}
	return targets
}

// newDecider picks the overwrite decision source. An explicit --only list
// wins; without a terminal or with --yes every overwrite is allowed.
func newDecider(yes bool, only []string, s streams) overwrite.Decider {
	switch {
	case len(only) > 0:
		return overwrite.Only(only...)
	case yes || !s.interactive:
		return overwrite.Always()
	default:
		return prompt.NewOverwritePrompter(s.in, s.out)
	}
}

// newPicker returns the fuzzy finder on a terminal and the numbered
// selector otherwise.
func newPicker(s streams) prompt.Picker {
	if s.interactive {
		return prompt.FuzzyPicker{}
	}
	return prompt.NewSelectorWithIO(s.in, s.out)
}

// outcomePrinter prints one line per (skill, target) pair as the engine
// reports it.
func outcomePrinter(w io.Writer) sync.Observer {
	return sync.ObserverFunc(func(r sync.Result) {
		switch r.Outcome {
		case sync.OutcomeCopied:
			fmt.Fprintf(w, "  %s %s to %s\n", green("Copied"), r.Skill, r.Target.Label)
		case sync.OutcomeOverwrote:
			fmt.Fprintf(w, "  %s %s at %s\n", yellow("Overwrote"), r.Skill, r.Target.Label)
		case sync.OutcomeSkipped:
			fmt.Fprintf(w, "  %s %s at %s\n", faint("Skipped"), r.Skill, r.Target.Label)
		case sync.OutcomeFailed:
			fmt.Fprintf(w, "  %s %s at %s: %v\n", red("Failed"), r.Skill, r.Target.Label, r.Err)
		}
	})
}

// printSummary prints the closing line of a sync or install.
func printSummary(w io.Writer, verb string, report *sync.Report) {
	fmt.Fprintf(w, "%s complete: %d copied, %d overwritten, %d skipped, %d failed.\n",
		verb,
		report.Count(sync.OutcomeCopied),
		report.Count(sync.OutcomeOverwrote),
		report.Count(sync.OutcomeSkipped),
		report.Count(sync.OutcomeFailed))
}

// failedPairs turns failed pairs into a non-zero exit after everything has
// been printed.
func failedPairs(report *sync.Report) error {
	failed := report.Failed()
	if len(failed) == 0 {
		return nil
	}
	err := errors.Newf("%d of %d copies failed", len(failed), len(report.Results))
	return errors.NewSystemError(err, "Re-run with -v for details")
}

// userError maps validation and precondition failures to exit code 1 and
// everything else to exit code 2.
func userError(err error, suggestion string, userErrs ...error) error {
	for _, target := range userErrs {
		if errors.Is(err, target) {
			return errors.NewUserError(err, suggestion)
		}
	}
	return errors.NewSystemError(err, "")
}
