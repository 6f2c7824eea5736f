package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and wrappers that expose a descriptor.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is backed by a terminal file descriptor.
// It accepts readers as well as writers so callers can probe stdin.
func IsTerminal(v any) bool {
	if f, ok := v.(fder); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsTTY returns true if the given writer is a terminal.
func IsTTY(w io.Writer) bool {
	return IsTerminal(w)
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - The writer is not a TTY
//   - The NO_COLOR environment variable is set
//   - The TERM environment variable is set to "dumb"
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTTY
}
