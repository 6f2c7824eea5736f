package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/skillset/internal/errors"
)

// Picker chooses one item from a list.
type Picker interface {
	Pick(title string, choices []Choice) (int, error)
}

// FuzzyPicker selects with a full-screen fuzzy finder. It needs a terminal
// on stdin and stdout.
type FuzzyPicker struct{}

// Pick opens the finder over choices, showing each Detail in a preview
// window. Aborting the finder returns ErrSelectionCancelled.
func (FuzzyPicker) Pick(title string, choices []Choice) (int, error) {
	if len(choices) == 0 {
		return -1, ErrNoChoices
	}

	idx, err := fuzzyfinder.Find(
		choices,
		func(i int) string { return choices[i].Name },
		fuzzyfinder.WithPromptString(title+"> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Name: %s\n\n%s", choices[i].Name, choices[i].Detail)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return -1, ErrSelectionCancelled
		}
		return -1, errors.Wrap(err, "interactive selection failed")
	}

	return idx, nil
}

// Pick adapts the numbered Selector to the Picker interface.
func (s *Selector) Pick(title string, choices []Choice) (int, error) {
	return s.Select(title, choices)
}
