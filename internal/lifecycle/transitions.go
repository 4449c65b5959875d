package lifecycle

import (
	"time"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// Tally is the answer-derived progress of a session: how many questions
// have been checked, and how they split into correct and incorrect.
type Tally struct {
	Solved    int
	Correct   int
	Incorrect int
}

// Rate returns the percentage of correct answers, or nil while nothing
// has been solved.
func (t Tally) Rate() *float64 {
	if t.Solved == 0 {
		return nil
	}
	r := float64(t.Correct) / float64(t.Solved) * 100
	return &r
}

// The functions below are the transition table of the session state
// machine. Each takes the current row by value and returns the next row,
// touching nothing outside it, so every transition is testable without a
// store. Callers persist the result and handle answer-row deletion where
// a transition requires it.

// Initialize moves an opened pack into in_progress, resumes an already
// active one, and leaves a completed one untouched. A closed pack is a
// sequence violation.
func Initialize(p store.Progress, attemptID string, now time.Time) (store.Progress, error) {
	switch p.Status {
	case store.StatusClosed:
		return p, ErrSequenceViolation
	case store.StatusOpened:
		p.Status = store.StatusInProgress
		p.SessionNumber++
		p.AttemptID = attemptID
		p.StartedAt = &now
		p.LastPlayedAt = &now
		return p, nil
	case store.StatusInProgress:
		// Resume: only the activity timestamp moves.
		p.LastPlayedAt = &now
		return p, nil
	case store.StatusCompleted:
		// Resuming a completed pack does not reopen it; replaying is an
		// explicit reset.
		return p, nil
	default:
		return p, &InvalidTransitionError{From: p.Status, Event: "initialize"}
	}
}

// Save records the cursor and answer tally of an active session. A
// completed row is allowed through as the implicit replay-resume: writing
// progress to it flips it back to in_progress.
func Save(p store.Progress, cursor int, tally Tally, now time.Time) (store.Progress, error) {
	switch p.Status {
	case store.StatusInProgress, store.StatusCompleted:
	default:
		return p, &InvalidTransitionError{From: p.Status, Event: "save progress"}
	}
	if cursor < 0 || (p.TotalQuestionCount > 0 && cursor > p.TotalQuestionCount) {
		return p, ErrCursorOutOfRange
	}

	p.Status = store.StatusInProgress
	p.CurrentQuestionOrder = cursor
	p.SolvedCount = tally.Solved
	p.CorrectCount = tally.Correct
	p.IncorrectCount = tally.Incorrect
	p.CorrectRate = tally.Rate()
	p.LastPlayedAt = &now
	return p, nil
}

// Complete finalizes an active session. Completing an already completed
// row is a no-op, so duplicate completion calls are safe.
func Complete(p store.Progress, tally Tally, now time.Time) (store.Progress, error) {
	if p.Status == store.StatusCompleted {
		return p, nil
	}
	if p.Status != store.StatusInProgress {
		return p, &InvalidTransitionError{From: p.Status, Event: "complete"}
	}

	p.Status = store.StatusCompleted
	p.CurrentQuestionOrder = p.TotalQuestionCount
	p.SolvedCount = tally.Solved
	p.CorrectCount = tally.Correct
	p.IncorrectCount = tally.Incorrect
	p.CorrectRate = tally.Rate()
	p.CompletedAt = &now
	p.LastPlayedAt = &now
	p.SessionNumber++
	if p.StartedAt != nil {
		p.TotalTimeSeconds = int(now.Sub(*p.StartedAt) / time.Second)
	}
	return p, nil
}

// Reset starts a fresh attempt at a completed pack. Counters zero and the
// cursor rewinds, but the completion marker survives as history. The
// caller must have deleted the session's answer rows already.
func Reset(p store.Progress, attemptID string, now time.Time) (store.Progress, error) {
	if p.Status != store.StatusCompleted {
		return p, &InvalidTransitionError{From: p.Status, Event: "reset"}
	}

	p.Status = store.StatusInProgress
	p.SessionNumber++
	p.AttemptID = attemptID
	p.CurrentQuestionOrder = 0
	p.SolvedCount = 0
	p.CorrectCount = 0
	p.IncorrectCount = 0
	p.CorrectRate = nil
	p.TotalTimeSeconds = 0
	p.StartedAt = &now
	p.LastPlayedAt = &now
	return p, nil
}

// Abort backs out of an active session. A pack that was completed before
// this attempt returns to completed, so the home screen keeps treating it
// as cleared; a pack never completed regresses to opened. Counters zero
// either way: the pre-replay figures are not restored. The caller must
// have deleted the session's answer
// rows already, so in_progress never becomes opened while answers exist.
func Abort(p store.Progress, now time.Time) (store.Progress, error) {
	if p.Status != store.StatusInProgress {
		return p, nil
	}

	p.CurrentQuestionOrder = 0
	p.SolvedCount = 0
	p.CorrectCount = 0
	p.IncorrectCount = 0
	p.CorrectRate = nil
	p.AttemptID = ""
	p.LastPlayedAt = &now

	if p.CompletedAt != nil {
		p.Status = store.StatusCompleted
	} else {
		p.Status = store.StatusOpened
		p.StartedAt = nil
	}
	return p, nil
}
