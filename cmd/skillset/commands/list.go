package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
	"github.com/thoreinstein/skillset/internal/skill"
	"github.com/thoreinstein/skillset/internal/sync"
)

// listLong holds the value of the --long flag.
var listLong bool

func init() {
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false,
		"show each skill's description")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List skills in the source and their status per target",
	Long: `List the skills in the source directory. Each skill is followed by
every configured target, marked ✓ when a skill of that name is present
there and — when it is not.

Presence is checked by name only; run 'skillset sync' to bring copies up
to date.`,
	Example: `  # List workspace skills
  skillset list

  # List user-level skills with descriptions
  skillset list --user --long

  See Also: skillset sync`,
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
		return runListWithIO(cmd.Context(), cfg, cwd, cmd.OutOrStdout())
	},
}

func runListWithIO(ctx context.Context, cfg *config.Config, cwd string, w io.Writer) error {
	source := sourceDir(cfg, cwd)
	fmt.Fprintf(w, "Source: %s\n", source)
	fmt.Fprintf(w, "Config: %s\n\n", configFile())

	targets := targetsFromConfig(cfg, cwd)
	statuses, err := sync.Status(source, targets)
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "reading skill status"), "")
	}

	if len(statuses) == 0 {
		fmt.Fprintln(w, "No skills found in source directory.")
		return nil
	}

	logger := logging.FromContext(ctx)
	fmt.Fprintln(w, "Skills:")
	for _, st := range statuses {
		marks := make([]string, len(targets))
		for i, t := range targets {
			if st.Installed[i] {
				marks[i] = t.Label + " " + green("✓")
			} else {
				marks[i] = t.Label + " " + faint("—")
			}
		}
		fmt.Fprintf(w, "  %s  %s\n", bold(st.Name), strings.Join(marks, "  "))

		if !listLong {
			continue
		}
		m, err := skill.ReadManifest(filepath.Join(source, st.Name))
		if err != nil {
			logger.Debug("reading manifest", "skill", st.Name, "error", err)
			continue
		}
		if m.Description != "" {
			fmt.Fprintf(w, "      %s\n", m.Description)
		}
	}
	return nil
}
