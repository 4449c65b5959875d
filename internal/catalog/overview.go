package catalog

import (
	"context"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// PackOverview is one row of the home-screen pack list: catalog metadata
// merged with the user's progress and the community aggregates.
type PackOverview struct {
	QuizpackID    int
	CatalogOrder  int
	Keywords      string
	QuestionCount int
	Status        string
	CorrectRate   *float64
	CursorOrder   int
	SolvedCount   int
	TotalCount    int
	AverageRating float64
}

// Service derives the per-user catalog view.
type Service struct {
	progress store.ProgressRepo
	catalog  store.CatalogRepo
	bank     store.BankRepo
	stats    store.StatsRepo
}

// NewService creates a catalog view service.
func NewService(progress store.ProgressRepo, cat store.CatalogRepo, bank store.BankRepo, stats store.StatsRepo) *Service {
	return &Service{progress: progress, catalog: cat, bank: bank, stats: stats}
}

// Overview lists every catalog pack in order with the user's status
// overlaid. A pack with no progress row derives its display status: the
// first pack is always opened, any other pack is opened once its
// predecessor is completed and closed before that.
func (s *Service) Overview(ctx context.Context, userID string) ([]PackOverview, error) {
	entries, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.progress.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byPack := make(map[int]*store.Progress, len(rows))
	for i := range rows {
		byPack[rows[i].QuizpackID] = &rows[i]
	}

	out := make([]PackOverview, 0, len(entries))
	for i, entry := range entries {
		pack, err := s.bank.Pack(ctx, entry.QuizpackID)
		if err != nil {
			return nil, err
		}

		ov := PackOverview{
			QuizpackID:   entry.QuizpackID,
			CatalogOrder: entry.CatalogOrder,
			Status:       store.StatusClosed,
		}
		if pack != nil {
			ov.Keywords = pack.Keywords
			ov.QuestionCount = pack.QuestionCount
			ov.TotalCount = pack.QuestionCount
		}

		if row := byPack[entry.QuizpackID]; row != nil {
			ov.Status = row.Status
			ov.CorrectRate = row.CorrectRate
			ov.CursorOrder = row.CurrentQuestionOrder
			ov.SolvedCount = row.SolvedCount
			if row.TotalQuestionCount > 0 {
				ov.TotalCount = row.TotalQuestionCount
			}
		} else if i == 0 {
			// First catalog pack is always reachable.
			ov.Status = store.StatusOpened
		} else {
			prev := byPack[entries[i-1].QuizpackID]
			if prev != nil && prev.Status == store.StatusCompleted {
				ov.Status = store.StatusOpened
			}
		}

		st, err := s.stats.Get(ctx, entry.QuizpackID)
		if err != nil {
			return nil, err
		}
		if st != nil {
			ov.AverageRating = st.AverageRating
		}

		out = append(out, ov)
	}
	return out, nil
}
