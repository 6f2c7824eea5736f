package repo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/git"
	"github.com/thoreinstein/skillset/internal/logging"
)

// Sentinel errors for resolution. Both wrap git.ErrCommandFailed when the
// git client was the cause.
var (
	ErrCloneFailed  = errors.New("clone failed")
	ErrUpdateFailed = errors.New("update failed")
)

// DefaultHost is used to expand owner/repo references.
const DefaultHost = "github.com"

// cloneDepth keeps package clones shallow.
const cloneDepth = 1

// Resolver maps package references to directories in the cache, cloning on
// first use. Entries are never deleted automatically.
type Resolver struct {
	git      git.Runner
	cacheDir string
	host     string
	useSSH   bool
	progress io.Writer
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithHost sets the host owner/repo references expand against.
func WithHost(host string) ResolverOption {
	return func(r *Resolver) {
		if host != "" {
			r.host = host
		}
	}
}

// WithSSH clones owner/repo references over SSH.
func WithSSH(useSSH bool) ResolverOption {
	return func(r *Resolver) { r.useSSH = useSSH }
}

// WithProgress writes one-line status messages to w.
func WithProgress(w io.Writer) ResolverOption {
	return func(r *Resolver) { r.progress = w }
}

// NewResolver returns a resolver keeping clones under cacheDir.
func NewResolver(runner git.Runner, cacheDir string, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		git:      runner,
		cacheDir: cacheDir,
		host:     DefaultHost,
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns where ref is (or would be) cached.
func (r *Resolver) Path(ref Reference) string {
	return filepath.Join(r.cacheDir, ref.CacheKey())
}

// Resolve returns the local clone of raw.
//
// An absent entry is cloned into a staging directory and renamed into place
// only after git succeeds, so a failed clone leaves nothing behind and the
// next call clones again. An existing entry is reused as is, or
// fast-forwarded first when refresh is set.
func (r *Resolver) Resolve(ctx context.Context, raw string, refresh bool) (string, error) {
	ref, err := ParseReference(raw)
	if err != nil {
		return "", err
	}

	url := ref.CloneURL(r.host, r.useSSH)
	if err := git.ValidateURL(url); err != nil {
		return "", errors.Mark(errors.Wrapf(err, "package %s", raw), ErrInvalidSpec)
	}

	logger := logging.FromContext(ctx).With(slog.String("package", raw))
	dest := r.Path(ref)

	info, err := os.Stat(dest)
	switch {
	case err == nil && info.IsDir():
		if !refresh {
			logger.Debug("using cached package", slog.String("path", dest))
			fmt.Fprintf(r.progress, "Using cached %s at %s\n", raw, dest)
			return dest, nil
		}
		return dest, r.update(ctx, raw, dest)
	case err == nil:
		return "", errors.Newf("cache entry %s is not a directory", dest)
	case !os.IsNotExist(err):
		return "", errors.Wrapf(err, "checking cache entry %s", dest)
	}

	logger.Info("cloning package", slog.String("url", url))
	fmt.Fprintf(r.progress, "Cloning %s from %s...\n", raw, url)

	if err := r.clone(ctx, raw, url, ref.CacheKey(), dest); err != nil {
		return "", err
	}

	fmt.Fprintf(r.progress, "Cloned to %s\n", dest)
	return dest, nil
}

func (r *Resolver) clone(ctx context.Context, raw, url, key, dest string) error {
	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating cache directory %s", r.cacheDir)
	}

	stage, err := os.MkdirTemp(r.cacheDir, ".clone-"+key+"-*")
	if err != nil {
		return errors.Wrap(err, "creating staging directory")
	}

	if err := r.git.Clone(ctx, url, stage, cloneDepth); err != nil {
		if cleanupErr := os.RemoveAll(stage); cleanupErr != nil {
			logging.FromContext(ctx).Warn("removing failed clone", slog.String("path", stage), slog.Any("error", cleanupErr))
		}
		return errors.Mark(errors.Wrapf(err, "failed to clone %s", raw), ErrCloneFailed)
	}

	if err := os.Rename(stage, dest); err != nil {
		os.RemoveAll(stage)
		// Another process may have populated the entry meanwhile.
		if info, statErr := os.Stat(dest); statErr == nil && info.IsDir() {
			return nil
		}
		return errors.Wrapf(err, "moving clone into %s", dest)
	}
	return nil
}

func (r *Resolver) update(ctx context.Context, raw, dest string) error {
	logging.FromContext(ctx).Info("updating package", slog.String("package", raw), slog.String("path", dest))
	fmt.Fprintf(r.progress, "Updating %s...\n", raw)

	if err := git.ValidateRemote(dest); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to update %s", raw), ErrUpdateFailed)
	}
	if err := r.git.Pull(ctx, dest); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to update %s", raw), ErrUpdateFailed)
	}
	return nil
}
