package unlock

import (
	"context"

	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// Engine opens the next quizpack in catalog order after a completion. It
// is called both when the user advances into the next pack and when they
// merely return home, so unlocking never depends on where they navigate.
type Engine struct {
	progress store.ProgressRepo
	catalog  store.CatalogRepo
	bank     store.BankRepo
	log      *zap.Logger
}

// NewEngine creates an unlock engine over the given repositories.
func NewEngine(progress store.ProgressRepo, catalog store.CatalogRepo, bank store.BankRepo, log *zap.Logger) *Engine {
	return &Engine{progress: progress, catalog: catalog, bank: bank, log: log}
}

// UnlockNext opens the successor of completedPackID for the user and
// returns its pack id. ok is false when there is no successor: either the
// completed pack is not in the catalog, or the user has cleared the final
// pack. The operation is idempotent: a pack that is already
// opened, in progress, or completed is left untouched.
func (e *Engine) UnlockNext(ctx context.Context, userID string, completedPackID int) (nextPackID int, ok bool, err error) {
	entry, err := e.catalog.Entry(ctx, completedPackID)
	if err != nil {
		return 0, false, err
	}
	if entry == nil {
		return 0, false, nil
	}

	next, err := e.catalog.EntryByOrder(ctx, entry.CatalogOrder+1)
	if err != nil {
		return 0, false, err
	}
	if next == nil {
		// Final pack cleared.
		return 0, false, nil
	}

	row, err := e.progress.Get(ctx, userID, next.QuizpackID)
	if err != nil {
		return 0, false, err
	}

	if row != nil {
		if row.Status != store.StatusClosed {
			return next.QuizpackID, true, nil
		}
		row.Status = store.StatusOpened
		if _, err := e.progress.Update(ctx, row); err != nil {
			return 0, false, err
		}
		return next.QuizpackID, true, nil
	}

	pack, err := e.bank.Pack(ctx, next.QuizpackID)
	if err != nil {
		return 0, false, err
	}
	total := 0
	if pack != nil {
		total = pack.QuestionCount
	}

	_, created, err := e.progress.ReconcileCreate(ctx, &store.Progress{
		UserID:             userID,
		QuizpackID:         next.QuizpackID,
		CatalogOrder:       next.CatalogOrder,
		Status:             store.StatusOpened,
		TotalQuestionCount: total,
	})
	if err != nil {
		return 0, false, err
	}
	if created {
		e.log.Info("quizpack unlocked",
			zap.String("user_id", userID),
			zap.Int("quizpack_id", next.QuizpackID),
			zap.Int("catalog_order", next.CatalogOrder),
		)
	}
	return next.QuizpackID, true, nil
}
