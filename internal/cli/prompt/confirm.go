package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/overwrite"
)

// OverwritePrompter asks on a terminal whether an existing skill may be
// replaced. It implements overwrite.Decider.
type OverwritePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

var _ overwrite.Decider = (*OverwritePrompter)(nil)

// NewOverwritePrompter returns a prompter reading answers from r and writing
// questions to w. The reader is buffered once, so answers typed ahead are
// consumed in order.
func NewOverwritePrompter(r io.Reader, w io.Writer) *OverwritePrompter {
	return &OverwritePrompter{reader: bufio.NewReader(r), writer: w}
}

// Decide prints the question for skill at label and reads one line.
// End of input counts as "no".
func (p *OverwritePrompter) Decide(_ context.Context, skill, label string) (overwrite.Decision, error) {
	fmt.Fprintf(p.writer, "Skill '%s' already exists at %s. Overwrite? [y/n/all] ", skill, label)

	answer, err := readLine(p.reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.writer)
			return overwrite.DecisionNo, nil
		}
		return overwrite.DecisionNo, errors.Wrap(err, "reading answer")
	}

	return overwrite.ParseDecision(answer), nil
}

// Confirm asks a yes/no question and reports whether the answer was "y" or
// "yes". Anything else, including end of input, is no.
func Confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N] ", question)

	answer, err := readLine(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return false, nil
		}
		return false, errors.Wrap(err, "reading answer")
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine returns the next line. A final line without a newline is
// returned as a normal answer; io.EOF is only reported when nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
