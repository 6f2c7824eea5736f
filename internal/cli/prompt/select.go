// Package prompt provides interactive CLI prompts for user input.
//
// Every prompt reads from an injected reader and writes to an injected
// writer so commands can be driven from tests. Terminal detection happens in
// the command layer, never here.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
)

// Sentinel errors for selection.
var (
	ErrNoChoices          = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Choice is one selectable item.
type Choice struct {
	// Name is returned to the caller and shown first.
	Name string

	// Detail is optional context shown next to the name.
	Detail string
}

func (c Choice) label() string {
	if c.Detail == "" {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Detail)
}

// Selector handles numbered selection prompts. It is the line-oriented
// fallback for the fuzzy Picker when no terminal is attached.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stdout)
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{reader: r, writer: w}
}

// Select prompts the user to choose one of choices and returns its index.
//
// Returns:
//   - ErrNoChoices if the list is empty
//   - 0 if only one choice exists (auto-selects without prompting)
//   - the selected index based on user input, defaulting to the first
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) Select(title string, choices []Choice) (int, error) {
	if len(choices) == 0 {
		return -1, ErrNoChoices
	}
	if len(choices) == 1 {
		return 0, nil
	}

	fmt.Fprintf(s.writer, "%s:\n", title)
	for i, c := range choices {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, c.label())
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := readLine(bufio.NewReader(s.reader))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return -1, ErrSelectionCancelled
		}
		return -1, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return -1, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(choices) {
		return -1, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(choices))
	}

	return selection - 1, nil
}
