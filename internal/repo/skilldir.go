package repo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/skill"
)

// Sentinel errors for skills directory lookup.
var (
	ErrNoSkillsDir    = errors.New("no skills directory found")
	ErrEmptySkillsDir = errors.New("skills directory contains no skills")
)

// DefaultSkillDirs are probed in order when no candidates are configured.
var DefaultSkillDirs = []string{".claude/skills", "skills"}

// FindSkillsDir returns the first candidate under root that exists as a
// directory. That candidate must hold at least one skill: an empty one is
// an error rather than a reason to try the next candidate.
func FindSkillsDir(root string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultSkillDirs
	}

	for _, c := range candidates {
		dir := filepath.Join(root, filepath.FromSlash(c))
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", errors.Wrapf(err, "checking %s", dir)
		}
		if !info.IsDir() {
			continue
		}

		skills, err := skill.Discover(dir)
		if err != nil {
			return "", err
		}
		if len(skills) == 0 {
			return "", errors.Wrapf(ErrEmptySkillsDir, "%s exists but contains no skills", c)
		}
		return dir, nil
	}

	return "", errors.Wrapf(ErrNoSkillsDir, "checked %s", strings.Join(candidates, ", "))
}
