package progression

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/communitystats"
	"github.com/hanjihoon73/lawquiz/internal/lifecycle"
	"github.com/hanjihoon73/lawquiz/internal/quizbank"
	"github.com/hanjihoon73/lawquiz/internal/store"
	"github.com/hanjihoon73/lawquiz/internal/unlock"
)

// Decision is the outcome of a cross-pack conflict check. When Blocked is
// set, another pack is in progress and the caller must confirm aborting it
// with the user before anything proceeds: aborting destroys the blocking
// session's answers irreversibly, so it never happens implicitly.
type Decision struct {
	Proceed bool
	Blocked *store.Progress
}

// ConflictError reports that a different pack holds the user's active
// session, blocking an operation that would start a second one.
type ConflictError struct {
	Blocked *store.Progress
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("quizpack %d is already in progress", e.Blocked.QuizpackID)
}

// AnswerResult is what the UI needs after checking one answer.
type AnswerResult struct {
	QuestionID  int
	Correct     bool
	Explanation string
}

// Coordinator enforces the cross-quizpack invariant that at most one pack
// is in progress per user, and fronts the session lifecycle for the UI
// layer.
type Coordinator struct {
	progress  store.ProgressRepo
	answers   store.AnswerRepo
	lifecycle *lifecycle.Service
	unlocker  *unlock.Engine
	bank      *quizbank.Reader
	stats     *communitystats.Writer
	log       *zap.Logger

	clock func() time.Time
}

// NewCoordinator wires the progression core together.
func NewCoordinator(
	progress store.ProgressRepo,
	answers store.AnswerRepo,
	lc *lifecycle.Service,
	unlocker *unlock.Engine,
	bank *quizbank.Reader,
	stats *communitystats.Writer,
	log *zap.Logger,
) *Coordinator {
	return &Coordinator{
		progress:  progress,
		answers:   answers,
		lifecycle: lc,
		unlocker:  unlocker,
		bank:      bank,
		stats:     stats,
		log:       log,
		clock:     time.Now,
	}
}

// BeginQuizpack checks whether the user may enter targetPackID. The check
// re-derives "is anything in progress" from the store on every call rather
// than caching a current session anywhere.
func (c *Coordinator) BeginQuizpack(ctx context.Context, userID string, targetPackID int) (Decision, error) {
	blocking, err := c.progress.InProgress(ctx, userID, targetPackID)
	if err != nil {
		return Decision{}, err
	}
	if blocking != nil {
		return Decision{Blocked: blocking}, nil
	}
	return Decision{Proceed: true}, nil
}

// Initialize starts or resumes the session once BeginQuizpack allowed it.
func (c *Coordinator) Initialize(ctx context.Context, userID string, packID int) (*store.Progress, error) {
	return c.lifecycle.Initialize(ctx, userID, packID)
}

// RecordAnswer grades the user's selection and persists the answer row.
// Persistence here is best-effort: a store failure is logged and swallowed
// so it never interrupts quiz-taking, and the next save re-derives counts
// from whatever rows actually landed.
func (c *Coordinator) RecordAnswer(ctx context.Context, userID string, packID, questionID int, sel quizbank.Selection) (*AnswerResult, error) {
	row, err := c.progress.Get(ctx, userID, packID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, lifecycle.ErrNotFound
	}

	q, err := c.bank.Question(ctx, packID, questionID)
	if err != nil {
		return nil, err
	}

	correct := quizbank.Grade(q, sel)

	if err := c.answers.Upsert(ctx, &store.Answer{
		SessionID:    row.ID,
		QuestionID:   questionID,
		AnswerOrder:  q.Order,
		ChoiceIDs:    sel.Choices,
		BlankAnswers: sel.Blanks,
		Correct:      correct,
		AnsweredAt:   c.clock(),
	}); err != nil {
		c.log.Warn("answer save failed, continuing",
			zap.String("user_id", userID),
			zap.Int("quizpack_id", packID),
			zap.Int("question_id", questionID),
			zap.Error(err),
		)
	}

	return &AnswerResult{
		QuestionID:  questionID,
		Correct:     correct,
		Explanation: q.Explanation,
	}, nil
}

// SaveProgress persists the session cursor; counts come from the stored
// answer rows. Saving to a completed row is the implicit replay-resume
// that flips it back to in_progress, so it runs the same conflict check
// as an explicit start: the flip is refused while a different pack holds
// the user's active session.
func (c *Coordinator) SaveProgress(ctx context.Context, userID string, packID, cursor int) (*store.Progress, error) {
	row, err := c.progress.Get(ctx, userID, packID)
	if err != nil {
		return nil, err
	}
	if row != nil && row.Status == store.StatusCompleted {
		blocking, err := c.progress.InProgress(ctx, userID, packID)
		if err != nil {
			return nil, err
		}
		if blocking != nil {
			return nil, &ConflictError{Blocked: blocking}
		}
	}
	return c.lifecycle.SaveProgress(ctx, userID, packID, cursor)
}

// CompleteQuizpack finalizes the session, then notifies the community
// aggregates. The notification is fire-and-forget: its failure is logged
// and never blocks the completion the user just earned.
func (c *Coordinator) CompleteQuizpack(ctx context.Context, userID string, packID int) (*store.Progress, error) {
	row, err := c.lifecycle.Complete(ctx, userID, packID)
	if err != nil {
		return nil, err
	}

	if err := c.stats.RecordCompletion(ctx, packID, row.CorrectCount, row.TotalQuestionCount); err != nil {
		c.log.Warn("community stats update failed, continuing",
			zap.Int("quizpack_id", packID),
			zap.Error(err),
		)
	}
	return row, nil
}

// Restart funnels the retry flow through the same conflict check as a
// fresh start, since a different pack may be mid-run, and only then resets.
func (c *Coordinator) Restart(ctx context.Context, userID string, packID int) (Decision, *store.Progress, error) {
	decision, err := c.BeginQuizpack(ctx, userID, packID)
	if err != nil {
		return Decision{}, nil, err
	}
	if !decision.Proceed {
		return decision, nil, nil
	}

	row, err := c.lifecycle.Reset(ctx, userID, packID)
	if err != nil {
		return Decision{}, nil, err
	}
	return decision, row, nil
}

// Abort backs the user out of their active session on packID.
func (c *Coordinator) Abort(ctx context.Context, userID string, packID int) (*store.Progress, error) {
	return c.lifecycle.Abort(ctx, userID, packID)
}

// AbortSession aborts the blocking session from a conflict decision.
func (c *Coordinator) AbortSession(ctx context.Context, sessionID int) (*store.Progress, error) {
	return c.lifecycle.AbortSession(ctx, sessionID)
}

// UnlockNext opens the successor of completedPackID. ok is false once the
// final pack is cleared.
func (c *Coordinator) UnlockNext(ctx context.Context, userID string, completedPackID int) (int, bool, error) {
	return c.unlocker.UnlockNext(ctx, userID, completedPackID)
}

// RatePack records the user's 1-5 star rating for a pack.
func (c *Coordinator) RatePack(ctx context.Context, packID, rating int) error {
	return c.stats.RecordRating(ctx, packID, rating)
}
