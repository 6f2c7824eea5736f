package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/skillset/internal/errors"
)

// AppName is the directory name used under the XDG roots.
const AppName = "skillset"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.yaml"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the permission for directories skillset creates.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "resolving home directory")
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// CacheHome returns the XDG cache home directory.
// On Linux: ~/.cache
// On macOS: ~/Library/Caches
// On Windows: %LOCALAPPDATA%\cache
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns <ConfigHome>/skillset.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ReposCacheDir returns the directory for cached package clones.
// Returns: <CacheHome>/skillset/repos/
func ReposCacheDir() string {
	return filepath.Join(CacheHome(), AppName, "repos")
}

// ExpandHome replaces a leading "~/" (or a bare "~") with the home
// directory. Other paths are returned unchanged. When the home directory is
// unknown the path is returned as given.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := ResolveHome()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ResolveSource returns the canonical skills directory for the requested
// scope. In user scope it is the expanded userSource; otherwise source is
// taken relative to cwd (absolute and "~/" sources are honored as-is).
func ResolveSource(userScope bool, cwd, source, userSource string) string {
	if userScope {
		return UserStore(userSource)
	}
	return WorkspaceStore(cwd, source)
}

// WorkspaceStore returns the workspace skills directory for cwd.
func WorkspaceStore(cwd, source string) string {
	expanded := ExpandHome(source)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(cwd, expanded)
}

// UserStore returns the user-level skills directory.
func UserStore(userSource string) string {
	return ExpandHome(userSource)
}
