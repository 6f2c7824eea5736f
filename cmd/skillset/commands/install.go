package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/git"
	"github.com/thoreinstein/skillset/internal/install"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/internal/repo"
	"github.com/thoreinstein/skillset/internal/skill"
	"github.com/thoreinstein/skillset/internal/sync"
)

// Destination names accepted by --to.
const (
	destWorkspace = "workspace"
	destUser      = "user"
)

var (
	installSkill     string
	installPick      bool
	installRefresh   bool
	installSSH       bool
	installTo        []string
	installSkillDirs []string
	installSync      bool
)

func init() {
	installCmd.Flags().StringVar(&installSkill, "skill", "",
		"install only this skill from the package")
	installCmd.Flags().BoolVar(&installPick, "pick", false,
		"choose the skill to install interactively")
	installCmd.Flags().BoolVar(&installRefresh, "refresh", false,
		"update a cached package with git pull before installing")
	installCmd.Flags().BoolVar(&installSSH, "ssh", false,
		"clone owner/repo references over SSH")
	installCmd.Flags().StringSliceVar(&installTo, "to", nil,
		"destinations: workspace, user (default: workspace, or user with --user)")
	installCmd.Flags().StringArrayVar(&installSkillDirs, "skill-dir", nil,
		"skills directory inside the package, tried in order (repeatable)")
	installCmd.Flags().BoolVar(&installSync, "sync", false,
		"sync the installed skills to the configured targets afterwards")
	installCmd.MarkFlagsMutuallyExclusive("skill", "pick")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <owner/repo|url|path>",
	Short: "Install skills from a git repository or local directory",
	Long: `Install skills from a package into the workspace or user skill store.

A package is an owner/repo reference (cloned from the configured host),
a git URL, or a local directory. Git packages are shallow-cloned once into
the cache directory and reused afterwards; pass --refresh to update a
cached clone.

Inside the package the first existing skills directory is used: by default
.claude/skills, then skills. A local directory that itself contains skills
is used as is.`,
	Example: `  # Install every skill of a GitHub repository into the workspace
  skillset install anthropics/skills

  # Install one skill into the user store and sync it to all tools
  skillset install anthropics/skills --skill pdf --user --sync

  # Install from a local checkout
  skillset install ./vendor/skills --to workspace,user

  See Also: skillset sync, skillset list`,
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
		s := streamsFor(cmd)
		resolver := repo.NewResolver(git.NewCLI(), paths.ReposCacheDir(),
			repo.WithHost(cfg.Install.Host),
			repo.WithSSH(installSSH || cfg.Install.UseSSH),
			repo.WithProgress(s.out))
		return runInstallWithIO(cmd.Context(), args[0], cfg, cwd, resolver, s)
	},
}

func runInstallWithIO(ctx context.Context, pkg string, cfg *config.Config, cwd string, resolver install.Resolver, s streams) error {
	opts := install.Options{
		Package:   pkg,
		Skill:     installSkill,
		Refresh:   installRefresh,
		SkillDirs: installSkillDirs,
	}
	if len(opts.SkillDirs) == 0 {
		opts.SkillDirs = cfg.Install.SkillDirs
	}
	if err := setDestinations(&opts, cfg, cwd); err != nil {
		return err
	}
	if installPick && installSkill == "" {
		opts.Choose = chooseOne(newPicker(s))
	}

	fmt.Fprintf(s.out, "Installing from %s:\n", pkg)
	engine := sync.New(newDecider(assumeYes, nil, s), sync.WithObserver(outcomePrinter(s.out)))
	res, err := install.New(resolver, engine).Install(ctx, opts)
	if err != nil {
		return installError(err)
	}

	printSummary(s.out, "Install", res.Report)
	if err := failedPairs(res.Report); err != nil {
		return err
	}
	if !installSync {
		return nil
	}

	targets := targetsFromConfig(cfg, cwd)
	for _, store := range []string{opts.WorkspaceStore, opts.UserStore} {
		if store == "" {
			continue
		}
		fmt.Fprintf(s.out, "Syncing %s:\n", store)
		report, err := engine.SyncSkills(ctx, store, res.Report.Skills, targets)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "sync aborted"), "")
		}
		printSummary(s.out, "Sync", report)
		if err := failedPairs(report); err != nil {
			return err
		}
	}
	return nil
}

// setDestinations fills the store roots named by --to. Without --to the
// active scope decides.
func setDestinations(opts *install.Options, cfg *config.Config, cwd string) error {
	dests := installTo
	if len(dests) == 0 {
		dests = []string{destWorkspace}
		if userScope {
			dests = []string{destUser}
		}
	}

	for _, d := range dests {
		switch strings.ToLower(strings.TrimSpace(d)) {
		case destWorkspace:
			opts.WorkspaceStore = paths.WorkspaceStore(cwd, cfg.Source)
		case destUser:
			opts.UserStore = paths.UserStore(cfg.UserSource)
		default:
			return errors.NewUserError(
				errors.Newf("unknown install destination %q", d),
				"Use --to workspace, --to user, or both")
		}
	}
	return nil
}

// chooseOne adapts a Picker to install.Options.Choose.
func chooseOne(p prompt.Picker) func([]string) ([]string, error) {
	return func(available []string) ([]string, error) {
		choices := make([]prompt.Choice, len(available))
		for i, name := range available {
			choices[i] = prompt.Choice{Name: name}
		}
		idx, err := p.Pick("Select a skill to install", choices)
		if err != nil {
			return nil, err
		}
		return []string{available[idx]}, nil
	}
}

func installError(err error) error {
	switch {
	case errors.Is(err, repo.ErrCloneFailed), errors.Is(err, repo.ErrUpdateFailed):
		return errors.NewSystemError(err, "Check the reference and that git can reach the repository")
	case errors.Is(err, repo.ErrInvalidSpec):
		return errors.NewUserError(err, "Use owner/repo, a git URL, or a path such as ./skills")
	case errors.Is(err, repo.ErrNoSkillsDir):
		return errors.NewUserError(err, "Point at the skills directory with --skill-dir")
	}

	userErrs := []error{
		install.ErrSkillNotFound,
		install.ErrNoDestination,
		repo.ErrEmptySkillsDir,
		skill.ErrInvalidName,
		prompt.ErrSelectionCancelled,
		prompt.ErrInvalidSelection,
	}
	if slices.ContainsFunc(userErrs, func(target error) bool { return errors.Is(err, target) }) {
		return errors.NewUserError(err, "")
	}
	return errors.NewSystemError(err, "")
}
