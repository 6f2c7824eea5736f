package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/install"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/internal/skill"
	"github.com/thoreinstein/skillset/internal/sync"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"rm"},
	Short:   "Remove a skill from every configured target",
	Long: `Remove a skill directory from every configured target that has it.
With --user the skill is also removed from the user skill store. The
workspace source is never touched.

Without a name, choose one of the installed skills. You are asked to
confirm unless --yes is given.`,
	Example: `  # Remove a skill from all tools
  skillset remove code-review

  # Remove it from all tools and the user store without prompting
  skillset remove code-review --user --yes

  See Also: skillset list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cwd, err := workingDir()
		if err != nil {
			return err
		}
		return runRemoveWithIO(args, cfg, cwd, streamsFor(cmd))
	},
}

func runRemoveWithIO(args []string, cfg *config.Config, cwd string, s streams) error {
	targets := targetsFromConfig(cfg, cwd)
	if userScope {
		targets = append(targets, sync.Target{
			Label: install.LabelUser,
			Path:  paths.UserStore(cfg.UserSource),
		})
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		picked, err := pickInstalled(targets, s)
		if err != nil {
			return err
		}
		name = picked
	}

	locations, err := sync.Installed(name, targets)
	if err != nil {
		if errors.Is(err, skill.ErrInvalidName) {
			return errors.NewUserError(err, "Use only letters, digits, '-' or '_'")
		}
		return errors.NewSystemError(err, "")
	}
	if len(locations) == 0 {
		fmt.Fprintf(s.out, "Skill '%s' not found in any configured target.\n", name)
		return nil
	}

	if !assumeYes {
		labels := make([]string, len(locations))
		for i, loc := range locations {
			labels[i] = loc.Label
		}
		ok, err := prompt.Confirm(s.in, s.out,
			fmt.Sprintf("Remove '%s' from %s?", name, strings.Join(labels, ", ")))
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "reading confirmation"), "")
		}
		if !ok {
			fmt.Fprintln(s.out, "Aborted.")
			return nil
		}
	}

	var failed int
	for _, r := range sync.Remove(locations) {
		if r.Err != nil {
			failed++
			fmt.Fprintf(s.out, "  %s %s from %s: %v\n", red("Failed to remove"), name, r.Location.Label, r.Err)
			continue
		}
		fmt.Fprintf(s.out, "  %s %s from %s\n", green("Removed"), name, r.Location.Label)
	}
	if failed > 0 {
		return errors.NewSystemError(
			errors.Newf("%d of %d removals failed", failed, len(locations)),
			"Check permissions on the listed targets")
	}

	fmt.Fprintln(s.out, "Remove complete.")
	return nil
}

// pickInstalled asks for one of the skills present in any target.
func pickInstalled(targets []sync.Target, s streams) (string, error) {
	names, err := sync.InstalledNames(targets)
	if err != nil {
		return "", errors.NewSystemError(err, "")
	}
	if len(names) == 0 {
		return "", errors.NewUserError(
			errors.New("no skills installed in any configured target"),
			"Run: skillset sync")
	}

	choices := make([]prompt.Choice, len(names))
	for i, n := range names {
		choices[i] = prompt.Choice{Name: n}
		if locs, err := sync.Installed(n, targets); err == nil {
			labels := make([]string, len(locs))
			for j, loc := range locs {
				labels[j] = loc.Label
			}
			choices[i].Detail = strings.Join(labels, ", ")
		}
	}
	idx, err := newPicker(s).Pick("Select a skill to remove", choices)
	if err != nil {
		return "", errors.NewUserError(err, "Pass the skill name as an argument")
	}
	return names[idx], nil
}
