package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillset/internal/errors"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantURL   string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "owner/repo", raw: "anthropics/skills", wantOwner: "anthropics", wantRepo: "skills"},
		{name: "trimmed", raw: "  acme/tools \n", wantOwner: "acme", wantRepo: "tools"},
		{name: "https", raw: "https://github.com/acme/tools.git", wantURL: "https://github.com/acme/tools.git"},
		{name: "http", raw: "http://git.local/acme/tools", wantURL: "http://git.local/acme/tools"},
		{name: "ssh scheme", raw: "ssh://git@host/acme/tools.git", wantURL: "ssh://git@host/acme/tools.git"},
		{name: "file", raw: "file:///srv/git/tools", wantURL: "file:///srv/git/tools"},
		{name: "scp-like", raw: "git@github.com:acme/tools.git", wantURL: "git@github.com:acme/tools.git"},
		{name: "empty", raw: "", wantErr: true},
		{name: "one segment", raw: "skills", wantErr: true},
		{name: "three segments", raw: "a/b/c", wantErr: true},
		{name: "empty owner", raw: "/repo", wantErr: true},
		{name: "empty repo", raw: "owner/", wantErr: true},
		{name: "dot dot", raw: "../repo", wantErr: true},
		{name: "space", raw: "own er/repo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseReference(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSpec))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, ref.URL)
			assert.Equal(t, tt.wantOwner, ref.Owner)
			assert.Equal(t, tt.wantRepo, ref.Repo)
			assert.Equal(t, tt.wantURL != "", ref.IsURL())
		})
	}
}

func TestParseReference_ErrorNamesInput(t *testing.T) {
	_, err := ParseReference("not-a-package")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-package")
}

func TestCacheKey(t *testing.T) {
	ref, err := ParseReference("anthropics/skills")
	require.NoError(t, err)
	assert.Equal(t, "anthropics-skills", ref.CacheKey())

	a, err := ParseReference("https://github.com/acme/tools.git")
	require.NoError(t, err)
	b, err := ParseReference("https://github.com/acme/other.git")
	require.NoError(t, err)

	assert.Regexp(t, `^url-[0-9a-f]{16}$`, a.CacheKey())
	assert.Equal(t, a.CacheKey(), a.CacheKey(), "stable")
	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
}

func TestCloneURL(t *testing.T) {
	ref, err := ParseReference("acme/tools")
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/acme/tools.git", ref.CloneURL("github.com", false))
	assert.Equal(t, "git@github.com:acme/tools.git", ref.CloneURL("github.com", true))
	assert.Equal(t, "https://gitlab.example.com/acme/tools.git", ref.CloneURL("gitlab.example.com", false))

	direct, err := ParseReference("git@host:x/y.git")
	require.NoError(t, err)
	assert.Equal(t, "git@host:x/y.git", direct.CloneURL("github.com", false))
}
