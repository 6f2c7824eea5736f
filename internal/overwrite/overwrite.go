// Package overwrite decides whether an existing destination skill may be
// replaced.
//
// An [Arbiter] holds the run's [Policy]. Under [PolicyPerItem] every
// conflict is put to a [Decider]; an answer of [DecisionAll] moves the
// arbiter to [PolicyAll] for the rest of the run, after which no further
// questions are asked. The policy never moves back.
package overwrite

import (
	"context"
	"slices"
	"strings"
)

// Policy is the arbiter's state for the current run.
type Policy int

const (
	// PolicyPerItem asks the decider about each existing destination.
	PolicyPerItem Policy = iota
	// PolicyAll overwrites every existing destination without asking.
	PolicyAll
)

func (p Policy) String() string {
	switch p {
	case PolicyPerItem:
		return "per-item"
	case PolicyAll:
		return "all"
	default:
		return "unknown"
	}
}

// Decision is a decider's answer for one conflict.
type Decision int

const (
	// DecisionNo keeps the existing destination.
	DecisionNo Decision = iota
	// DecisionYes overwrites this destination only.
	DecisionYes
	// DecisionAll overwrites this and every later destination.
	DecisionAll
)

func (d Decision) String() string {
	switch d {
	case DecisionYes:
		return "yes"
	case DecisionAll:
		return "all"
	default:
		return "no"
	}
}

// ParseDecision maps a raw answer to a Decision. "y" and "yes" mean
// DecisionYes, "a" and "all" mean DecisionAll; matching ignores case and
// surrounding whitespace. Anything else, including the empty string, is
// DecisionNo.
func ParseDecision(answer string) Decision {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return DecisionYes
	case "a", "all":
		return DecisionAll
	default:
		return DecisionNo
	}
}

// Decider answers whether skill may be overwritten at the target labelled
// label. An error aborts the run.
type Decider interface {
	Decide(ctx context.Context, skill, label string) (Decision, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, skill, label string) (Decision, error)

// Decide calls f.
func (f DeciderFunc) Decide(ctx context.Context, skill, label string) (Decision, error) {
	return f(ctx, skill, label)
}

// forced is the non-interactive decider. NewArbiter recognizes it and starts
// in PolicyAll, so it is never actually consulted.
type forced struct{}

func (forced) Decide(context.Context, string, string) (Decision, error) {
	return DecisionAll, nil
}

// Always returns the forced decider: every existing destination is
// overwritten without asking.
func Always() Decider { return forced{} }

// Never keeps every existing destination. Only absent destinations are
// written.
func Never() Decider {
	return DeciderFunc(func(context.Context, string, string) (Decision, error) {
		return DecisionNo, nil
	})
}

// Only overwrites the named skills and keeps everything else.
func Only(names ...string) Decider {
	allowed := slices.Clone(names)
	return DeciderFunc(func(_ context.Context, skill, _ string) (Decision, error) {
		if slices.Contains(allowed, skill) {
			return DecisionYes, nil
		}
		return DecisionNo, nil
	})
}
