package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// Service executes session transitions against the store: it loads the
// row, applies the pure transition, and persists the result. Multi-row
// operations (reset, abort) delete answers before the status write, so a
// partial failure leaves stale counts rather than answer rows that
// contradict an opened or completed status.
type Service struct {
	progress store.ProgressRepo
	answers  store.AnswerRepo
	catalog  store.CatalogRepo
	bank     store.BankRepo
	log      *zap.Logger

	clock func() time.Time
}

// NewService creates a lifecycle service over the given repositories.
func NewService(progress store.ProgressRepo, answers store.AnswerRepo, catalog store.CatalogRepo, bank store.BankRepo, log *zap.Logger) *Service {
	return &Service{
		progress: progress,
		answers:  answers,
		catalog:  catalog,
		bank:     bank,
		log:      log,
		clock:    time.Now,
	}
}

// Initialize starts or resumes a session for (userID, packID) and returns
// the resulting row.
//
// First access to the pack at catalog position 1 creates its row; rows for
// later packs are created by the unlock engine, so their absence means the
// pack is still locked. Creation goes through the reconciling create: if a
// duplicate initialize races this one, the losing call re-reads the row
// that won and replays the opened transition on it, yielding the same
// session number as the winner.
func (s *Service) Initialize(ctx context.Context, userID string, packID int) (*store.Progress, error) {
	row, err := s.progress.Get(ctx, userID, packID)
	if err != nil {
		return nil, err
	}

	if row == nil {
		entry, err := s.catalog.Entry(ctx, packID)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, fmt.Errorf("pack %d: %w", packID, ErrNotFound)
		}
		if entry.CatalogOrder != 1 {
			return nil, ErrSequenceViolation
		}

		pack, err := s.bank.Pack(ctx, packID)
		if err != nil {
			return nil, err
		}
		if pack == nil {
			return nil, fmt.Errorf("pack %d: %w", packID, ErrNotFound)
		}

		row, _, err = s.progress.ReconcileCreate(ctx, &store.Progress{
			UserID:             userID,
			QuizpackID:         packID,
			CatalogOrder:       entry.CatalogOrder,
			Status:             store.StatusOpened,
			TotalQuestionCount: pack.QuestionCount,
		})
		if err != nil {
			return nil, err
		}
	}

	next, err := Initialize(*row, uuid.NewString(), s.clock())
	if err != nil {
		return nil, err
	}
	if next.Status == store.StatusCompleted && row.Status == store.StatusCompleted {
		// Completed packs don't reopen on access.
		return row, nil
	}
	return s.progress.Update(ctx, &next)
}

// SaveProgress persists the session cursor and the answer-derived tally.
// Counts are re-derived from the persisted answer rows rather than trusted
// from the caller, so a lost best-effort answer write shows up as a stale
// count, not an inconsistent one.
func (s *Service) SaveProgress(ctx context.Context, userID string, packID int, cursor int) (*store.Progress, error) {
	row, err := s.progress.Get(ctx, userID, packID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("no session for pack %d: %w", packID, ErrNotFound)
	}

	tally, err := s.tallyFor(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	next, err := Save(*row, cursor, tally, s.clock())
	if err != nil {
		return nil, err
	}
	return s.progress.Update(ctx, &next)
}

// Complete finalizes the active session and returns the completed row.
func (s *Service) Complete(ctx context.Context, userID string, packID int) (*store.Progress, error) {
	row, err := s.progress.Get(ctx, userID, packID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("no session for pack %d: %w", packID, ErrNotFound)
	}
	if row.Status == store.StatusCompleted {
		return row, nil
	}

	tally, err := s.tallyFor(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	next, err := Complete(*row, tally, s.clock())
	if err != nil {
		return nil, err
	}
	return s.progress.Update(ctx, &next)
}

// Reset starts a fresh attempt at a completed pack, discarding the prior
// session's answer rows first.
func (s *Service) Reset(ctx context.Context, userID string, packID int) (*store.Progress, error) {
	row, err := s.progress.Get(ctx, userID, packID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("no session for pack %d: %w", packID, ErrNotFound)
	}
	if row.Status != store.StatusCompleted {
		return nil, &InvalidTransitionError{From: row.Status, Event: "reset"}
	}

	if err := s.answers.DeleteForSession(ctx, row.ID); err != nil {
		return nil, err
	}

	next, err := Reset(*row, uuid.NewString(), s.clock())
	if err != nil {
		return nil, err
	}
	return s.progress.Update(ctx, &next)
}

// Abort backs out of the user's active session on packID. Aborting a pack
// that is not in progress is a no-op.
func (s *Service) Abort(ctx context.Context, userID string, packID int) (*store.Progress, error) {
	row, err := s.progress.Get(ctx, userID, packID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("no session for pack %d: %w", packID, ErrNotFound)
	}
	return s.abortRow(ctx, row)
}

// AbortSession aborts by session row id. The coordinator uses this for the
// blocking session surfaced by a conflict check.
func (s *Service) AbortSession(ctx context.Context, sessionID int) (*store.Progress, error) {
	row, err := s.progress.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}
	return s.abortRow(ctx, row)
}

func (s *Service) abortRow(ctx context.Context, row *store.Progress) (*store.Progress, error) {
	if row.Status != store.StatusInProgress {
		return row, nil
	}

	// Answers go first: a failure here leaves the session resumable, while
	// the reverse order could leave answer rows under a non-active status.
	if err := s.answers.DeleteForSession(ctx, row.ID); err != nil {
		return nil, err
	}

	next, err := Abort(*row, s.clock())
	if err != nil {
		return nil, err
	}

	updated, err := s.progress.Update(ctx, &next)
	if err != nil {
		return nil, err
	}
	s.log.Info("session aborted",
		zap.String("user_id", row.UserID),
		zap.Int("quizpack_id", row.QuizpackID),
		zap.String("status", updated.Status),
	)
	return updated, nil
}

// tallyFor derives the session's counts from its persisted answer rows.
func (s *Service) tallyFor(ctx context.Context, sessionID int) (Tally, error) {
	answers, err := s.answers.List(ctx, sessionID)
	if err != nil {
		return Tally{}, err
	}

	var t Tally
	for _, a := range answers {
		t.Solved++
		if a.Correct {
			t.Correct++
		} else {
			t.Incorrect++
		}
	}
	return t, nil
}
