package overwrite

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
)

// Arbiter applies the overwrite protocol for one run. It is not safe for
// concurrent use.
type Arbiter struct {
	policy  Policy
	decider Decider
	asked   int
}

// NewArbiter returns an arbiter consulting d. A nil decider or the forced
// decider from Always starts the arbiter in PolicyAll.
func NewArbiter(d Decider) *Arbiter {
	a := &Arbiter{policy: PolicyPerItem, decider: d}
	if _, ok := d.(forced); ok || d == nil {
		a.policy = PolicyAll
	}
	return a
}

// Policy returns the current policy.
func (a *Arbiter) Policy() Policy { return a.policy }

// Asked returns how many times the decider has been consulted.
func (a *Arbiter) Asked() int { return a.asked }

// Allow reports whether the existing destination for skill at label may be
// overwritten. A decider error is returned unchanged apart from context and
// leaves the policy as it was.
func (a *Arbiter) Allow(ctx context.Context, skill, label string) (bool, error) {
	if a.policy == PolicyAll {
		return true, nil
	}

	a.asked++
	decision, err := a.decider.Decide(ctx, skill, label)
	if err != nil {
		return false, errors.Wrapf(err, "deciding overwrite of %s at %s", skill, label)
	}

	logging.FromContext(ctx).Debug("overwrite decision",
		slog.String("skill", skill),
		slog.String("target", label),
		slog.String("decision", decision.String()))

	switch decision {
	case DecisionAll:
		a.policy = PolicyAll
		return true, nil
	case DecisionYes:
		return true, nil
	default:
		return false, nil
	}
}
