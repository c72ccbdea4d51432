package algo

import "github.com/pkg/errors"

// ErrInvariantViolation marks a fatal, "never reachable on valid inputs"
// condition per spec §7 — e.g. a DistTable entry used as a heuristic input
// turned out unreachable, meaning the caller handed the solver an instance
// it never checked for solvability. Wrapped with pkg/errors so the stack
// trace survives to whoever is unlucky enough to see it.
var ErrInvariantViolation = errors.New("lacam: invariant violation")

func invariantViolationf(format string, args ...any) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}
