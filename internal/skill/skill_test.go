package skill

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillset/internal/errors"
)

// writeSkill creates root/name/SKILL.md plus any extra files given as
// relative path → content pairs.
func writeSkill(t *testing.T, root, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte("---\nname: "+name+"\n---\n"), 0o644))
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "review", false},
		{"hyphen and underscore", "code_review-v2", false},
		{"uppercase", "PDF", false},
		{"empty", "", true},
		{"space", "my skill", true},
		{"slash", "a/b", true},
		{"dot", "v1.0", true},
		{"parent", "..", true},
		{"leading dot", ".hidden", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidName))
				return
			}
			require.NoError(t, err)
			assert.True(t, ValidName(tt.input))
		})
	}
}

func TestDiscover_SortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "zeta", nil)
	writeSkill(t, root, "alpha", nil)
	writeSkill(t, root, "Beta_2", nil)

	// Directory without a manifest.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "draft"), 0o755))
	// Plain file at the root.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("x"), 0o644))
	// Invalid name with a manifest.
	writeSkill(t, root, "bad.name", nil)
	// Manifest that is a directory.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "odd", ManifestFile), 0o755))

	got, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta_2", "alpha", "zeta"}, got)
}

func TestDiscover_MissingRoot(t *testing.T) {
	got, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDiscover_RootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Discover(path)
	assert.Error(t, err)
}

func TestDiscover_FollowsLinkedSkillDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	elsewhere := t.TempDir()
	writeSkill(t, elsewhere, "linked", nil)

	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "linked"), filepath.Join(root, "linked")))

	got, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"linked"}, got)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	ok, err := Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCopy_NewDestination(t *testing.T) {
	src := writeSkill(t, t.TempDir(), "alpha", map[string]string{
		"README.md":           "readme",
		"scripts/run.sh":      "#!/bin/sh\necho hi\n",
		"refs/deep/nested.md": "deep",
	})
	require.NoError(t, os.Chmod(filepath.Join(src, "scripts", "run.sh"), 0o755))

	dst := filepath.Join(t.TempDir(), "targets", "cursor", "alpha")
	require.NoError(t, Copy(src, dst))

	for _, rel := range []string{ManifestFile, "README.md", "scripts/run.sh", "refs/deep/nested.md"} {
		want, err := os.ReadFile(filepath.Join(src, rel))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dst, rel))
		require.NoError(t, err, rel)
		assert.Equal(t, string(want), string(got), rel)
	}

	info, err := os.Stat(filepath.Join(dst, "scripts", "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopy_ReplacesWithoutMerging(t *testing.T) {
	src := writeSkill(t, t.TempDir(), "alpha", map[string]string{"new.txt": "new"})

	dst := filepath.Join(t.TempDir(), "alpha")
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "stale.txt"), []byte("old"), 0o644))

	require.NoError(t, Copy(src, dst))

	_, err := os.Stat(filepath.Join(dst, "stale.txt"))
	assert.True(t, os.IsNotExist(err), "stale file should be gone")
	got, err := os.ReadFile(filepath.Join(dst, "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopy_SourceMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ghost")
	err := Copy(missing, filepath.Join(t.TempDir(), "ghost"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceMissing))
	assert.Contains(t, err.Error(), missing)
}

func TestCopy_SymlinkInsideSkillFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	src := writeSkill(t, t.TempDir(), "alpha", nil)
	require.NoError(t, os.Symlink(filepath.Join(src, ManifestFile), filepath.Join(src, "link.md")))

	parent := t.TempDir()
	dst := filepath.Join(parent, "alpha")
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "previous.txt"), []byte("v1"), 0o644))

	err := Copy(src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSymlink))
	assert.Contains(t, err.Error(), "link.md")

	// The previous copy is untouched and no staging directory remains.
	got, err := os.ReadFile(filepath.Join(dst, "previous.txt"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), stagePrefix), "staging dir left: %s", e.Name())
	}
}

func TestCopy_IntoItself(t *testing.T) {
	src := writeSkill(t, t.TempDir(), "alpha", nil)
	err := Copy(src, filepath.Join(src, "nested", "alpha"))
	assert.Error(t, err)
}

func TestCopy_ReadOnlySourceStaysReplaceable(t *testing.T) {
	src := writeSkill(t, t.TempDir(), "alpha", map[string]string{"notes.md": "v1"})
	require.NoError(t, os.Chmod(src, 0o555))
	t.Cleanup(func() { _ = os.Chmod(src, 0o755) })

	dst := filepath.Join(t.TempDir(), "alpha")
	require.NoError(t, Copy(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	// A second sync has to remove the first copy's children.
	require.NoError(t, Copy(src, dst))
	got, err := os.ReadFile(filepath.Join(dst, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

func TestScaffold(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".skillset", "skills")

	dir, err := Scaffold(root, "code-review", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "code-review"), dir)

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "code-review", m.Name)
	assert.Equal(t, defaultDescription, m.Description)

	content, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# CODE REVIEW")
	assert.Contains(t, string(content), "## When to use")

	readme, err := os.ReadFile(filepath.Join(dir, ReadmeFile))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# code-review Skill")
	assert.Contains(t, string(readme), "A skill for code review.")

	skills, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"code-review"}, skills)
}

func TestScaffold_ExistingRequiresForce(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", map[string]string{"custom.txt": "mine"})

	_, err := Scaffold(root, "alpha", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	_, err = os.Stat(filepath.Join(root, "alpha", "custom.txt"))
	require.NoError(t, err, "existing skill must be untouched")

	_, err = Scaffold(root, "alpha", true)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "alpha", "custom.txt"))
	assert.True(t, os.IsNotExist(err), "force replaces the directory")
}

func TestScaffold_InvalidName(t *testing.T) {
	root := t.TempDir()
	_, err := Scaffold(root, "bad name", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidName))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
