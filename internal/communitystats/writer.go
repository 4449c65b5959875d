package communitystats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// Rating bounds for pack feedback.
const (
	RatingMin = 1
	RatingMax = 5
)

// Writer maintains community-wide aggregates per quizpack, separate from
// any single user's progress. Completion notifications arrive best-effort
// from the coordinator; a failed write never blocks the user's completion.
type Writer struct {
	stats store.StatsRepo
	log   *zap.Logger
}

// NewWriter creates a Writer over the stats repository.
func NewWriter(stats store.StatsRepo, log *zap.Logger) *Writer {
	return &Writer{stats: stats, log: log}
}

// RecordCompletion folds one finished session into the pack's aggregates.
func (w *Writer) RecordCompletion(ctx context.Context, packID, correctCount, totalCount int) error {
	data, err := w.stats.Get(ctx, packID)
	if err != nil {
		return err
	}
	if data == nil {
		data = &store.PackStatsData{QuizpackID: packID}
	}

	data.TotalCompletions++
	data.TotalCorrectCount += correctCount
	data.TotalQuestionCount += totalCount
	if data.TotalQuestionCount > 0 {
		data.AverageCorrectRate = float64(data.TotalCorrectCount) / float64(data.TotalQuestionCount) * 100
	}

	return w.stats.Save(ctx, data)
}

// RecordRating folds one 1-5 star rating into the pack's aggregates.
func (w *Writer) RecordRating(ctx context.Context, packID, rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return fmt.Errorf("rating %d out of range [%d,%d]", rating, RatingMin, RatingMax)
	}

	data, err := w.stats.Get(ctx, packID)
	if err != nil {
		return err
	}
	if data == nil {
		data = &store.PackStatsData{QuizpackID: packID}
	}

	data.RatingSum += rating
	data.RatingCount++
	data.AverageRating = float64(data.RatingSum) / float64(data.RatingCount)

	return w.stats.Save(ctx, data)
}

// Get returns the pack's aggregates, or nil when nobody has completed or
// rated it yet.
func (w *Writer) Get(ctx context.Context, packID int) (*store.PackStatsData, error) {
	return w.stats.Get(ctx, packID)
}
