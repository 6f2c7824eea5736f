// Package git wraps the external git client for cloning and updating
// package repositories.
//
// Only the exit status of git is interpreted. Its output is streamed to the
// configured writers and never parsed.
package git

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
)

// Sentinel errors for git operations.
var (
	// ErrCommandFailed is returned when git exits non-zero or cannot start.
	ErrCommandFailed = errors.New("git command failed")

	// ErrInvalidURL is returned by ValidateURL.
	ErrInvalidURL = errors.New("invalid git URL")
)

// Runner performs the git operations the package resolver needs.
type Runner interface {
	// Clone makes a shallow clone of url into dest with the given depth.
	Clone(ctx context.Context, url, dest string, depth int) error

	// Pull fast-forwards the repository at dir.
	Pull(ctx context.Context, dir string) error
}

// CLI runs the git binary found on PATH.
type CLI struct {
	// Binary overrides the executable name. Empty means "git".
	Binary string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*CLI)(nil)

// NewCLI returns a CLI connected to the process's standard streams, so
// credential prompts (SSH passphrase, HTTPS token) reach the user.
func NewCLI() *CLI {
	return &CLI{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Available reports whether the git binary can be found.
func (c *CLI) Available() bool {
	_, err := exec.LookPath(c.binary())
	return err == nil
}

// Clone runs "git clone --depth=<depth> <url> <dest>".
func (c *CLI) Clone(ctx context.Context, url, dest string, depth int) error {
	return c.run(ctx, "clone", fmt.Sprintf("--depth=%d", depth), url, dest)
}

// Pull runs "git -C <dir> pull --ff-only".
func (c *CLI) Pull(ctx context.Context, dir string) error {
	return c.run(ctx, "-C", dir, "pull", "--ff-only")
}

func (c *CLI) binary() string {
	if c.Binary == "" {
		return "git"
	}
	return c.Binary
}

func (c *CLI) run(ctx context.Context, args ...string) error {
	logging.FromContext(ctx).Debug("running git", slog.String("args", strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, c.binary(), args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrCommandFailed), "git %s", args[0])
	}
	return nil
}

// scpLike matches user@host:path remotes.
var scpLike = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:[^/]`)

var allowedSchemes = []string{"https://", "http://", "ssh://", "git://", "file://"}

// IsURL reports whether s uses a URL scheme or the scp-like SSH syntax.
func IsURL(s string) bool {
	if strings.Contains(s, "://") {
		return true
	}
	return scpLike.MatchString(s)
}

// ValidateURL rejects remotes git would treat as options or as transport
// helpers (ext::), and schemes outside the allowed list.
func ValidateURL(url string) error {
	if url == "" {
		return errors.Wrap(ErrInvalidURL, "empty URL")
	}
	if strings.HasPrefix(url, "-") {
		return errors.Wrapf(ErrInvalidURL, "%q looks like an option", url)
	}
	for _, scheme := range allowedSchemes {
		if strings.HasPrefix(url, scheme) && len(url) > len(scheme) {
			return nil
		}
	}
	if scpLike.MatchString(url) {
		return nil
	}
	return errors.Wrapf(ErrInvalidURL, "%q: unsupported scheme", url)
}

// ValidateRemote checks that repoPath holds a git working tree by verifying
// the existence of a .git directory.
func ValidateRemote(repoPath string) error {
	gitDir := filepath.Join(repoPath, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf("not a git repository: %s", repoPath)
		}
		return errors.Wrap(err, "checking git directory")
	}
	if !info.IsDir() {
		return errors.Newf(".git is not a directory: %s", gitDir)
	}
	return nil
}
