package lifecycle

import (
	"errors"
	"fmt"
)

// ErrSequenceViolation is returned when a user acts on a closed pack.
// Packs must be played in catalog order; the action is not retried.
var ErrSequenceViolation = errors.New("quizpack is locked: packs open in catalog order")

// ErrNotFound is returned when the referenced pack, question, catalog
// entry, or session row does not exist.
var ErrNotFound = errors.New("quizpack not found")

// ErrCursorOutOfRange is returned when a saved question cursor falls
// outside the pack's question range.
var ErrCursorOutOfRange = errors.New("question cursor out of range")

// InvalidTransitionError reports an event applied to a row whose status
// does not permit it.
type InvalidTransitionError struct {
	From  string
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a quizpack in status %q", e.Event, e.From)
}
