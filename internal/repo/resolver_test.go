package repo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/git"
	"github.com/thoreinstein/skillset/internal/git/mocks"
	"github.com/thoreinstein/skillset/internal/skill"
)

func TestResolve_ClonesOnFirstUse(t *testing.T) {
	cache := t.TempDir()
	runner := mocks.NewMockRunner(t)
	runner.EXPECT().
		Clone(mock.Anything, "https://github.com/acme/tools.git", mock.AnythingOfType("string"), 1).
		RunAndReturn(func(_ context.Context, _ string, dest string, _ int) error {
			return os.WriteFile(filepath.Join(dest, "README.md"), []byte("hi"), 0o644)
		}).Once()

	r := NewResolver(runner, cache)
	path, err := r.Resolve(context.Background(), "acme/tools", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, "acme-tools"), path)

	_, err = os.Stat(filepath.Join(path, "README.md"))
	assert.NoError(t, err)

	// Second resolution reuses the entry without calling git.
	again, err := r.Resolve(context.Background(), "acme/tools", false)
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestResolve_UsesSSHAndHost(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	runner.EXPECT().
		Clone(mock.Anything, "git@git.example.com:acme/tools.git", mock.Anything, 1).
		Return(nil).Once()

	r := NewResolver(runner, t.TempDir(), WithSSH(true), WithHost("git.example.com"))
	_, err := r.Resolve(context.Background(), "acme/tools", false)
	require.NoError(t, err)
}

func TestResolve_CloneFailureLeavesNoEntry(t *testing.T) {
	cache := t.TempDir()
	runner := mocks.NewMockRunner(t)
	failure := errors.Mark(errors.New("exit status 128"), git.ErrCommandFailed)
	runner.EXPECT().
		Clone(mock.Anything, mock.Anything, mock.Anything, 1).
		RunAndReturn(func(_ context.Context, _ string, dest string, _ int) error {
			// Partial content written before git gave up.
			_ = os.WriteFile(filepath.Join(dest, "partial"), nil, 0o644)
			return failure
		}).Times(2)

	r := NewResolver(runner, cache)
	for i := 0; i < 2; i++ {
		_, err := r.Resolve(context.Background(), "owner/missing-repo", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCloneFailed))
		assert.True(t, errors.Is(err, git.ErrCommandFailed))
		assert.Contains(t, err.Error(), "owner/missing-repo")
	}

	entries, err := os.ReadDir(cache)
	require.NoError(t, err)
	assert.Empty(t, entries, "no cache entry or staging directory left behind")
}

func TestResolve_RefreshPulls(t *testing.T) {
	cache := t.TempDir()
	entry := filepath.Join(cache, "acme-tools")
	require.NoError(t, os.MkdirAll(filepath.Join(entry, ".git"), 0o755))

	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Pull(mock.Anything, entry).Return(nil).Once()

	r := NewResolver(runner, cache)
	path, err := r.Resolve(context.Background(), "acme/tools", true)
	require.NoError(t, err)
	assert.Equal(t, entry, path)
}

func TestResolve_RefreshFailureIsFatal(t *testing.T) {
	cache := t.TempDir()
	entry := filepath.Join(cache, "acme-tools")
	require.NoError(t, os.MkdirAll(filepath.Join(entry, ".git"), 0o755))

	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Pull(mock.Anything, entry).
		Return(errors.Mark(errors.New("not a fast-forward"), git.ErrCommandFailed)).Once()

	_, err := NewResolver(runner, cache).Resolve(context.Background(), "acme/tools", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpdateFailed))
	assert.Contains(t, err.Error(), "acme/tools")
}

func TestResolve_InvalidReferenceNeverRunsGit(t *testing.T) {
	runner := mocks.NewMockRunner(t)

	_, err := NewResolver(runner, t.TempDir()).Resolve(context.Background(), "just-a-name", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSpec))
}

func TestResolve_URLReferenceCacheKey(t *testing.T) {
	cache := t.TempDir()
	url := "https://example.com/team/skills.git"

	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Clone(mock.Anything, url, mock.Anything, 1).Return(nil).Once()

	path, err := NewResolver(runner, cache).Resolve(context.Background(), url, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "url-"))
}

func TestResolve_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	upstream := filepath.Join(t.TempDir(), "upstream")
	require.NoError(t, os.MkdirAll(filepath.Join(upstream, "skills", "alpha"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(upstream, "skills", "alpha", skill.ManifestFile), []byte("---\nname: alpha\n---\n"), 0o644))
	runGit(t, upstream, "init")
	runGit(t, upstream, "config", "user.email", "test@example.com")
	runGit(t, upstream, "config", "user.name", "Test User")
	runGit(t, upstream, "add", ".")
	runGit(t, upstream, "commit", "-m", "initial")

	cli := git.NewCLI()
	cli.Stdin, cli.Stdout, cli.Stderr = nil, nil, nil

	r := NewResolver(cli, t.TempDir())
	path, err := r.Resolve(context.Background(), "file://"+upstream, false)
	require.NoError(t, err)

	dir, err := FindSkillsDir(path, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(path, "skills"), dir)

	_, err = r.Resolve(context.Background(), "file://"+upstream, true)
	require.NoError(t, err)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
}
