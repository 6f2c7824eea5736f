package skill

import (
	"regexp"

	"github.com/thoreinstein/skillset/internal/errors"
)

// ManifestFile is the file that marks a directory as a skill.
const ManifestFile = "SKILL.md"

// ErrInvalidName indicates a skill name outside [A-Za-z0-9_-]+.
var ErrInvalidName = errors.New("invalid skill name")

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name is a usable skill name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidateName returns ErrInvalidName with a detail naming the problem.
func ValidateName(name string) error {
	if name == "" {
		return errors.WithDetail(ErrInvalidName, "skill name cannot be empty")
	}
	if !ValidName(name) {
		return errors.WithDetailf(errors.Wrapf(ErrInvalidName, "%q", name),
			"skill names may contain only letters, digits, '-' and '_'")
	}
	return nil
}
