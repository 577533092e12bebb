package availability

import (
	"errors"
	"fmt"
)

// ErrConflict is the expected outcome of a reservation attempt that lost a
// race for overlapping time. It is not retried internally; the caller must
// re-query for fresh slots.
var ErrConflict = errors.New("requested window is no longer free")

// ValidationError reports malformed caller input. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DependencyError reports a failed or timed-out store read. A query that
// hits one fails closed: the engine never guesses availability.
type DependencyError struct {
	Source string
	Err    error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s read failed: %v", e.Source, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// CommitFailure reports an infrastructure failure during the atomic insert.
// The outcome is unknown: the caller must re-query before assuming the
// reservation did or did not happen.
type CommitFailure struct {
	Err error
}

func (e *CommitFailure) Error() string {
	return fmt.Sprintf("reservation commit failed: %v", e.Err)
}

func (e *CommitFailure) Unwrap() error { return e.Err }
