package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/skillset/internal/errors"
)

// ErrFileTooLarge indicates that a file exceeded the size limit its reader
// was given. The wrapped error names the file and the limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadFileWithLimit reads path, refusing files larger than limit bytes. The
// size is checked up front and again while reading, since the file may grow
// between the two.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, tooLarge(path, limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(path, limit)
	}
	return data, nil
}

func tooLarge(path string, limit int64) error {
	return errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", path, limit)
}
