package install

import (
	"path/filepath"
	"strings"
)

// LooksLikePath reports whether source names a local directory rather than
// a package reference. Only explicit forms count: "owner/repo" also contains
// a slash and must stay a package.
func LooksLikePath(source string) bool {
	switch source {
	case ".", "..", "~":
		return true
	}
	for _, prefix := range []string{"./", "../", "/", "~/"} {
		if strings.HasPrefix(source, prefix) {
			return true
		}
	}
	// Windows: .\dir, C:\dir, \\server\share
	if strings.HasPrefix(source, `.\`) || strings.HasPrefix(source, `..\`) || strings.HasPrefix(source, `\\`) {
		return true
	}
	if filepath.VolumeName(source) != "" {
		return true
	}
	return false
}
