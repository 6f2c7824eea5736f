// Package install copies skills from a package (a cached git clone or a
// local directory) into the workspace and user skill stores.
package install

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/internal/repo"
	"github.com/thoreinstein/skillset/internal/skill"
	"github.com/thoreinstein/skillset/internal/sync"
)

// Sentinel errors for install validation. Both are returned before anything
// is cloned or written.
var (
	ErrSkillNotFound = errors.New("skill not found in package")
	ErrNoDestination = errors.New("no install destination selected")
)

// Store labels used in prompts and results.
const (
	LabelWorkspace = "workspace"
	LabelUser      = "user store"
)

// Resolver turns a package reference into a local directory.
type Resolver interface {
	Resolve(ctx context.Context, raw string, refresh bool) (string, error)
}

// Options describe one install.
type Options struct {
	// Package is an owner/repo reference, a git URL, or a local path.
	Package string

	// Skill restricts the install to one skill of the package.
	Skill string

	// Choose, when set and Skill is empty, picks the skills to install from
	// the package's sorted skill list.
	Choose func(available []string) ([]string, error)

	// Refresh fast-forwards an existing cache entry before installing.
	Refresh bool

	// SkillDirs are the candidate skills directories inside the package.
	// Empty means repo.DefaultSkillDirs.
	SkillDirs []string

	// WorkspaceStore and UserStore are the destination roots. An empty
	// value skips that destination.
	WorkspaceStore string
	UserStore      string
}

func (o Options) targets() []sync.Target {
	var targets []sync.Target
	if o.WorkspaceStore != "" {
		targets = append(targets, sync.Target{Label: LabelWorkspace, Path: o.WorkspaceStore})
	}
	if o.UserStore != "" {
		targets = append(targets, sync.Target{Label: LabelUser, Path: o.UserStore})
	}
	return targets
}

// Result summarizes a finished install.
type Result struct {
	// Root is the package directory: the cache entry or the local path.
	Root string

	// SkillsDir is the directory the skills were taken from.
	SkillsDir string

	// Report holds one result per (skill, destination) pair.
	Report *sync.Report
}

// Installer installs packages through a resolver and a sync engine.
type Installer struct {
	resolver Resolver
	engine   *sync.Engine
}

// New returns an Installer.
func New(resolver Resolver, engine *sync.Engine) *Installer {
	return &Installer{resolver: resolver, engine: engine}
}

// Install resolves opts.Package, selects its skills, and copies them to the
// chosen stores using the engine's overwrite protocol.
func (i *Installer) Install(ctx context.Context, opts Options) (*Result, error) {
	targets := opts.targets()
	if len(targets) == 0 {
		return nil, errors.WithHint(ErrNoDestination, "choose the workspace, the user store, or both")
	}
	if opts.Skill != "" {
		if err := skill.ValidateName(opts.Skill); err != nil {
			return nil, err
		}
	}

	logger := logging.FromContext(ctx).With(slog.String("package", opts.Package))

	root, err := i.root(ctx, opts)
	if err != nil {
		return nil, err
	}

	skillsDir, err := findSkillsDir(root, opts.SkillDirs, LooksLikePath(opts.Package))
	if err != nil {
		return nil, errors.Wrapf(err, "package %s", opts.Package)
	}

	available, err := skill.Discover(skillsDir)
	if err != nil {
		return nil, err
	}

	selected, err := selectSkills(available, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("installing skills", slog.String("from", skillsDir), slog.Any("skills", selected))

	report, err := i.engine.SyncSkills(ctx, skillsDir, selected, targets)
	if err != nil {
		return nil, err
	}

	return &Result{Root: root, SkillsDir: skillsDir, Report: report}, nil
}

func (i *Installer) root(ctx context.Context, opts Options) (string, error) {
	if !LooksLikePath(opts.Package) {
		return i.resolver.Resolve(ctx, opts.Package, opts.Refresh)
	}

	dir, err := filepath.Abs(paths.ExpandHome(opts.Package))
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", opts.Package)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", errors.Wrapf(err, "local package %s", opts.Package)
	}
	if !info.IsDir() {
		return "", errors.Newf("local package %s is not a directory", opts.Package)
	}
	return dir, nil
}

// findSkillsDir probes the candidates. A local directory that matches no
// candidate may itself be a skills directory.
func findSkillsDir(root string, candidates []string, local bool) (string, error) {
	dir, err := repo.FindSkillsDir(root, candidates)
	if err == nil || !local || !errors.Is(err, repo.ErrNoSkillsDir) {
		return dir, err
	}
	skills, discoverErr := skill.Discover(root)
	if discoverErr != nil || len(skills) == 0 {
		return "", err
	}
	return root, nil
}

func selectSkills(available []string, opts Options) ([]string, error) {
	if opts.Skill != "" {
		if !slices.Contains(available, opts.Skill) {
			return nil, errors.Wrapf(ErrSkillNotFound, "%q (available: %s)",
				opts.Skill, strings.Join(available, ", "))
		}
		return []string{opts.Skill}, nil
	}

	if opts.Choose != nil {
		chosen, err := opts.Choose(available)
		if err != nil {
			return nil, err
		}
		if len(chosen) == 0 {
			return nil, errors.Wrap(ErrSkillNotFound, "no skill selected")
		}
		for _, name := range chosen {
			if !slices.Contains(available, name) {
				return nil, errors.Wrapf(ErrSkillNotFound, "%q", name)
			}
		}
		return chosen, nil
	}

	return available, nil
}
