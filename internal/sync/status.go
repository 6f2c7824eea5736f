package sync

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/skill"
)

// SkillStatus reports where one source skill is present.
type SkillStatus struct {
	Name string

	// Installed is parallel to the targets passed to Status.
	Installed []bool
}

// Status lists the skills in source and, for each target, whether a
// directory of the same name exists there. Presence says nothing about
// whether the copies match.
func Status(source string, targets []Target) ([]SkillStatus, error) {
	skills, err := skill.Discover(source)
	if err != nil {
		return nil, err
	}

	statuses := make([]SkillStatus, 0, len(skills))
	for _, name := range skills {
		st := SkillStatus{Name: name, Installed: make([]bool, len(targets))}
		for i, t := range targets {
			ok, err := skill.Exists(filepath.Join(t.Path, name))
			if err != nil {
				return nil, err
			}
			st.Installed[i] = ok
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// Location is one place a skill is installed.
type Location struct {
	Label string
	Path  string
}

// Installed returns every target holding a skill called name, in target
// order.
func Installed(name string, targets []Target) ([]Location, error) {
	if err := skill.ValidateName(name); err != nil {
		return nil, err
	}

	var found []Location
	for _, t := range targets {
		p := filepath.Join(t.Path, name)
		ok, err := skill.Exists(p)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, Location{Label: t.Label, Path: p})
		}
	}
	return found, nil
}

// InstalledNames returns the sorted union of skill names present across
// targets.
func InstalledNames(targets []Target) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, t := range targets {
		skills, err := skill.Discover(t.Path)
		if err != nil {
			return nil, err
		}
		for _, s := range skills {
			if !seen[s] {
				seen[s] = true
				names = append(names, s)
			}
		}
	}
	slices.Sort(names)
	return names, nil
}

// RemoveResult is the outcome of removing one location.
type RemoveResult struct {
	Location Location
	Err      error
}

// Remove deletes each location's directory. Failures are reported per
// location and do not stop the rest.
func Remove(locations []Location) []RemoveResult {
	results := make([]RemoveResult, 0, len(locations))
	for _, loc := range locations {
		var err error
		if rmErr := os.RemoveAll(loc.Path); rmErr != nil {
			err = errors.Wrapf(rmErr, "removing %s from %s", filepath.Base(loc.Path), loc.Label)
		}
		results = append(results, RemoveResult{Location: loc, Err: err})
	}
	return results
}
