package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/skill"
)

// addForce holds the value of the --force flag.
var addForce bool

func init() {
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false,
		"replace an existing skill of the same name")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Scaffold a new skill in the source directory",
	Long: `Create <source>/<name>/ with a template SKILL.md and README.md.

The name may contain letters, digits, hyphens and underscores. An existing
skill is only replaced with --force.`,
	Example: `  # Add a workspace skill
  skillset add code-review

  # Add a user-level skill, replacing any previous one
  skillset add release-notes --user --force

  See Also: skillset sync, skillset doc --agents-md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cwd, err := workingDir()
		if err != nil {
			return err
		}
		return runAddWithIO(args[0], cfg, cwd, cmd.OutOrStdout())
	},
}

func runAddWithIO(name string, cfg *config.Config, cwd string, w io.Writer) error {
	dir, err := skill.Scaffold(sourceDir(cfg, cwd), name, addForce)
	switch {
	case errors.Is(err, skill.ErrInvalidName):
		return errors.NewUserError(err, "Use only letters, digits, '-' or '_'")
	case errors.Is(err, skill.ErrExists):
		return errors.NewUserError(err, "Use --force to overwrite")
	case err != nil:
		return errors.NewSystemError(err, "")
	}

	syncHint := "skillset sync"
	if userScope {
		syncHint += " --user"
	}
	fmt.Fprintf(w, "Skill '%s' created at: %s\n", name, dir)
	fmt.Fprintf(w, "Edit %s to add your skill content.\n", filepath.Join(dir, skill.ManifestFile))
	fmt.Fprintf(w, "Run '%s' to load it into the configured tools.\n", syncHint)
	return nil
}
