package sync

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
	"github.com/thoreinstein/skillset/internal/overwrite"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/internal/skill"
)

// ErrSourceNotFound is returned by RequireSource when the source directory
// does not exist.
var ErrSourceNotFound = errors.New("source directory not found")

// CopyFunc copies one skill directory over another.
type CopyFunc func(from, to string) error

// Engine runs synchronizations. The zero value is not usable; call New.
type Engine struct {
	decider  overwrite.Decider
	observer Observer
	copy     CopyFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver delivers each result to o as it happens.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithCopier replaces skill.Copy.
func WithCopier(fn CopyFunc) Option {
	return func(e *Engine) { e.copy = fn }
}

// New returns an engine that consults decider about existing destinations.
// A nil decider overwrites everything.
func New(decider overwrite.Decider, opts ...Option) *Engine {
	e := &Engine{
		decider: decider,
		copy:    skill.Copy,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RequireSource returns ErrSourceNotFound when source is not a directory.
func RequireSource(source string) error {
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WithHint(
				errors.Wrapf(ErrSourceNotFound, "%s", source),
				"create it, or add a skill with: skillset add <name>")
		}
		return errors.Wrapf(err, "checking source %s", source)
	}
	if !info.IsDir() {
		return errors.Newf("source %s is not a directory", source)
	}
	return nil
}

// Sync copies every skill discovered in source to each of targets.
// An empty source produces an empty report and touches no target.
func (e *Engine) Sync(ctx context.Context, source string, targets []Target) (*Report, error) {
	skills, err := skill.Discover(source)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, source, skills, targets)
}

// SyncSkills copies only the named skills, which must all be present in
// source. Names are deduplicated and processed in sorted order.
func (e *Engine) SyncSkills(ctx context.Context, source string, skills []string, targets []Target) (*Report, error) {
	names := slices.Clone(skills)
	slices.Sort(names)
	names = slices.Compact(names)

	for _, name := range names {
		if err := skill.ValidateName(name); err != nil {
			return nil, err
		}
		if !skill.HasManifest(filepath.Join(source, name)) {
			return nil, errors.Wrapf(skill.ErrSourceMissing, "%s", filepath.Join(source, name))
		}
	}

	return e.run(ctx, source, names, targets)
}

func (e *Engine) run(ctx context.Context, source string, skills []string, targets []Target) (*Report, error) {
	logger := logging.FromContext(ctx)
	report := &Report{Skills: skills}

	if len(skills) == 0 {
		logger.Info("nothing to sync", slog.String("source", source))
		return report, nil
	}

	for _, t := range targets {
		if err := paths.EnsureDir(t.Path, 0); err != nil {
			return report, errors.Wrapf(err, "preparing target %s", t.Label)
		}
	}

	arbiter := overwrite.NewArbiter(e.decider)
	for _, name := range skills {
		from := filepath.Join(source, name)
		for _, t := range targets {
			res, err := e.syncOne(ctx, arbiter, name, from, t)
			if err != nil {
				return report, err
			}
			report.Results = append(report.Results, res)
			if e.observer != nil {
				e.observer.Observe(res)
			}
		}
	}

	logger.Debug("sync finished",
		slog.Int("skills", len(skills)),
		slog.Int("targets", len(targets)),
		slog.Int("failed", len(report.Failed())))

	return report, nil
}

func (e *Engine) syncOne(ctx context.Context, arbiter *overwrite.Arbiter, name, from string, t Target) (Result, error) {
	res := Result{Skill: name, Target: t, Outcome: OutcomeCopied}
	to := filepath.Join(t.Path, name)

	exists, err := skill.Exists(to)
	if err != nil {
		res.Outcome, res.Err = OutcomeFailed, err
		return res, nil
	}
	if exists {
		ok, err := arbiter.Allow(ctx, name, t.Label)
		if err != nil {
			return res, err
		}
		if !ok {
			res.Outcome = OutcomeSkipped
			return res, nil
		}
		res.Outcome = OutcomeOverwrote
	}

	logging.FromContext(ctx).Debug("copying skill",
		slog.String("skill", name),
		slog.String("target", t.Label),
		slog.String("dest", to))

	if err := e.copy(from, to); err != nil {
		res.Outcome, res.Err = OutcomeFailed, err
	}
	return res, nil
}
