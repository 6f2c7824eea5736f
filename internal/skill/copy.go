package skill

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
)

// Sentinel errors for copy operations.
var (
	// ErrSourceMissing is returned when the directory to copy does not exist.
	ErrSourceMissing = errors.New("source skill directory does not exist")

	// ErrSymlink is returned when a symbolic link is found inside a skill.
	ErrSymlink = errors.New("symbolic links inside skills are not supported")

	// ErrUnsupportedFile is returned for devices, sockets and named pipes.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// stagePrefix names the hidden sibling directory a copy is built in. The
// leading dot keeps it out of Discover results.
const stagePrefix = ".skillset-stage-"

// Copy replaces the directory at to with a full copy of from.
//
// The new tree is built in a staging directory next to to; only once the
// copy is complete is the old destination removed and the staging directory
// renamed into place. The destination is therefore never a mix of two
// versions: it is the previous copy, absent, or the new copy. Parent
// directories of to are created as needed. Regular files are copied byte for
// byte with their permission bits; symbolic links and special files inside
// the tree fail the copy rather than being skipped.
func Copy(from, to string) error {
	info, err := os.Stat(from)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrSourceMissing, "%s", from)
		}
		return errors.Wrapf(err, "checking source %s", from)
	}
	if !info.IsDir() {
		return errors.Newf("source %s is not a directory", from)
	}
	if within(to, from) {
		return errors.Newf("cannot copy %s into itself (%s)", from, to)
	}

	parent := filepath.Dir(to)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return errors.Wrapf(err, "creating parent directory %s", parent)
	}

	stage, err := os.MkdirTemp(parent, stagePrefix+"*")
	if err != nil {
		return errors.Wrapf(err, "creating staging directory in %s", parent)
	}
	// After a successful rename the staging path no longer exists and
	// RemoveAll is a no-op.
	defer os.RemoveAll(stage)

	if err := copyDir(from, stage); err != nil {
		return err
	}
	// Owner rwx is kept so a later sync can remove the copy.
	if err := os.Chmod(stage, info.Mode().Perm()|0o700); err != nil {
		return errors.Wrapf(err, "setting permissions on %s", to)
	}

	if err := os.RemoveAll(to); err != nil {
		return errors.Wrapf(err, "removing existing %s", to)
	}
	if err := os.Rename(stage, to); err != nil {
		return errors.Wrapf(err, "moving copy into place at %s", to)
	}

	return nil
}

// copyDir recursively copies the contents of src into the existing dst.
func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch mode := entry.Type(); {
		case mode&os.ModeSymlink != 0:
			return errors.Wrapf(ErrSymlink, "%s", srcPath)
		case mode.IsDir():
			info, err := entry.Info()
			if err != nil {
				return errors.Wrapf(err, "stating %s", srcPath)
			}
			if err := os.Mkdir(dstPath, info.Mode().Perm()|0o700); err != nil {
				return errors.Wrapf(err, "creating directory %s", dstPath)
			}
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		case mode.IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrUnsupportedFile, "%s (%s)", srcPath, mode.Type())
		}
	}

	return nil
}

// copyFile copies a single file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening source file %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "stating source file %s", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "creating destination file %s", dst)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrapf(err, "copying content from %s to %s", src, dst)
	}

	return errors.Wrapf(dstFile.Close(), "closing %s", dst)
}

// within reports whether path is dir or lies beneath it.
func within(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
