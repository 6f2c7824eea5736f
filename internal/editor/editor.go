// Package editor launches the user's text editor on a file and waits for it
// to exit.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
)

// ErrEditorFailed is returned when the editor cannot be started or exits
// non-zero.
var ErrEditorFailed = errors.New("editor failed")

// Session wires an editor process to the caller's terminal.
type Session struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Open runs the detected editor on path. $EDITOR and $VISUAL may carry
// arguments, as in "code --wait".
func (s Session) Open(ctx context.Context, path string) error {
	argv := Command()
	logging.FromContext(ctx).Debug("opening editor", "editor", argv[0], "path", path)

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Mark(errors.Wrapf(err, "running editor %s", argv[0]), ErrEditorFailed)
	}
	return nil
}

// Command returns the editor command line split into words.
// Fallback chain: $EDITOR → $VISUAL → nano → vi
func Command() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}
	return []string{"vi"}
}
