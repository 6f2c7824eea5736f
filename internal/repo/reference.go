// Package repo resolves package references to local clones in the skillset
// cache and locates the skills directory inside them.
package repo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
)

// ErrInvalidSpec is returned for references that are neither a URL nor
// owner/repo.
var ErrInvalidSpec = errors.New("invalid package reference")

// urlPrefixes are the schemes accepted as direct clone URLs.
var urlPrefixes = []string{"https://", "http://", "ssh://", "file://"}

// sshPrefix matches the user@host: form used by SSH remotes.
var sshPrefix = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:`)

// segmentPattern restricts owner and repo so the cache key stays a single
// path element.
var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// urlKeyLength is the number of hex characters of the URL digest used in
// cache keys.
const urlKeyLength = 16

// Reference is a parsed package reference.
type Reference struct {
	// Raw is the reference as given.
	Raw string

	// Owner and Repo are set for owner/repo references.
	Owner string
	Repo  string

	// URL is set for direct URL references.
	URL string
}

// ParseReference classifies raw as a direct URL or an owner/repo shorthand.
func ParseReference(raw string) (Reference, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Reference{}, errors.Wrap(ErrInvalidSpec, "empty reference")
	}

	if isURL(raw) {
		return Reference{Raw: raw, URL: raw}, nil
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Reference{}, errors.WithHint(
			errors.Wrapf(ErrInvalidSpec, "%q", raw),
			"expected owner/repo or a git URL")
	}
	for _, p := range parts {
		if !segmentPattern.MatchString(p) || p == "." || p == ".." {
			return Reference{}, errors.WithHint(
				errors.Wrapf(ErrInvalidSpec, "%q", raw),
				"owner and repo may contain only letters, digits, '.', '-' and '_'")
		}
	}

	return Reference{Raw: raw, Owner: parts[0], Repo: parts[1]}, nil
}

func isURL(s string) bool {
	for _, p := range urlPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return sshPrefix.MatchString(s)
}

// IsURL reports whether r was given as a direct URL.
func (r Reference) IsURL() bool { return r.URL != "" }

func (r Reference) String() string { return r.Raw }

// CacheKey names r's directory in the cache: "owner-repo" for shorthand
// references and "url-" followed by a digest prefix for URLs.
func (r Reference) CacheKey() string {
	if r.IsURL() {
		sum := sha256.Sum256([]byte(r.URL))
		return "url-" + hex.EncodeToString(sum[:])[:urlKeyLength]
	}
	return r.Owner + "-" + r.Repo
}

// CloneURL returns the URL to clone. Direct URLs are returned verbatim;
// owner/repo expands against host over HTTPS, or SSH when useSSH is set.
func (r Reference) CloneURL(host string, useSSH bool) string {
	if r.IsURL() {
		return r.URL
	}
	if useSSH {
		return fmt.Sprintf("git@%s:%s/%s.git", host, r.Owner, r.Repo)
	}
	return fmt.Sprintf("https://%s/%s/%s.git", host, r.Owner, r.Repo)
}
