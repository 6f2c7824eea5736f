package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/skill"
	"github.com/thoreinstein/skillset/internal/sync"
)

// syncOnly holds the value of the --only flag.
var syncOnly []string

func init() {
	syncCmd.Flags().StringSliceVar(&syncOnly, "only", nil,
		"overwrite only these skills; existing copies of others are kept")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync skills from the source to every configured target",
	Long: `Copy every skill in the source directory into every configured target.

Skills that do not exist at a target are copied. For skills that already
exist you are asked whether to overwrite them: answer y, n, or all to
overwrite everything that follows without asking again. Without a terminal,
or with --yes, existing skills are overwritten.

A failed copy is reported and the remaining skills are still synced; the
command then exits non-zero.`,
	Example: `  # Sync the workspace skills
  skillset sync

  # Sync the user-level skills without prompting
  skillset sync --user --yes

  # Refresh only two skills where they already exist
  skillset sync --only code-review,pdf

  See Also: skillset list, skillset add`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cwd, err := workingDir()
		if err != nil {
			return err
		}
		return runSyncWithIO(cmd.Context(), cfg, cwd, streamsFor(cmd))
	},
}

// runSyncWithIO syncs the active source to the configured targets.
func runSyncWithIO(ctx context.Context, cfg *config.Config, cwd string, s streams) error {
	source := sourceDir(cfg, cwd)
	if err := sync.RequireSource(source); err != nil {
		return errors.NewUserError(err, "Create a skill with: skillset add <name>")
	}

	skills, err := skill.Discover(source)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if len(skills) == 0 {
		fmt.Fprintf(s.out, "No skills found in source: %s\n", source)
		return nil
	}

	fmt.Fprintf(s.out, "Found %d skill(s) to sync:\n", len(skills))
	engine := sync.New(newDecider(assumeYes, syncOnly, s), sync.WithObserver(outcomePrinter(s.out)))
	report, err := engine.SyncSkills(ctx, source, skills, targetsFromConfig(cfg, cwd))
	if err != nil {
		return userError(errors.Wrap(err, "sync aborted"), "", skill.ErrInvalidName)
	}

	printSummary(s.out, "Sync", report)
	return failedPairs(report)
}
