package sync

// Target is a named destination root.
type Target struct {
	// Label identifies the target in prompts and output, e.g. "Cursor".
	Label string `json:"label" yaml:"label"`

	// Path is the directory skills are copied into.
	Path string `json:"path" yaml:"path"`
}

// Outcome is what happened to one (skill, target) pair.
type Outcome int

const (
	// OutcomeCopied means the destination was absent and has been written.
	OutcomeCopied Outcome = iota
	// OutcomeOverwrote means an existing destination was replaced.
	OutcomeOverwrote
	// OutcomeSkipped means an existing destination was kept.
	OutcomeSkipped
	// OutcomeFailed means the copy failed; Result.Err holds the cause.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeOverwrote:
		return "overwrote"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome for one skill at one target.
type Result struct {
	Skill   string
	Target  Target
	Outcome Outcome
	Err     error
}

// Report collects the results of one run in the order they happened.
type Report struct {
	// Skills are the skills the run considered, sorted.
	Skills []string

	Results []Result
}

// Failed returns the results whose copy failed.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Count returns how many results had outcome o.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Observer receives each result as soon as it is known.
type Observer interface {
	Observe(Result)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Result)

// Observe calls f.
func (f ObserverFunc) Observe(r Result) { f(r) }
