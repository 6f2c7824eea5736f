package skill

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/thoreinstein/skillset/internal/errors"
)

// Discover returns the sorted names of the skills found directly under root.
//
// A missing root yields an empty list. Subdirectories without a manifest,
// entries with invalid names, and plain files are skipped silently, which
// lets callers use Discover as an existence probe. Only a failure to read
// root itself is returned as an error.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, "reading skills directory %s", root)
	}

	skills := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !ValidName(name) || !isDir(filepath.Join(root, name)) {
			continue
		}
		if !HasManifest(filepath.Join(root, name)) {
			continue
		}
		skills = append(skills, name)
	}

	sort.Strings(skills)
	return skills, nil
}

// HasManifest reports whether dir contains a regular SKILL.md file.
func HasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ManifestFile))
	return err == nil && !info.IsDir()
}

// Exists reports whether anything is present at path. Symbolic links count
// as present even when dangling.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "checking %s", path)
}

// isDir follows symlinks: a linked skill directory at the root is listed and
// copied through its target. Links inside a skill are rejected by Copy.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
