package store

import (
	"context"
	"fmt"

	"github.com/hanjihoon73/lawquiz/ent"
	"github.com/hanjihoon73/lawquiz/ent/packstats"
)

// statsRepo implements StatsRepo using the ent client.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Get(ctx context.Context, packID int) (*PackStatsData, error) {
	row, err := r.client.PackStats.Query().
		Where(packstats.QuizpackID(packID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query pack stats for %d: %w", packID, err)
	}
	return &PackStatsData{
		QuizpackID:         row.QuizpackID,
		TotalCompletions:   row.TotalCompletions,
		TotalCorrectCount:  row.TotalCorrectCount,
		TotalQuestionCount: row.TotalQuestionCount,
		AverageCorrectRate: row.AverageCorrectRate,
		RatingSum:          row.RatingSum,
		RatingCount:        row.RatingCount,
		AverageRating:      row.AverageRating,
	}, nil
}

func (r *statsRepo) Save(ctx context.Context, data *PackStatsData) error {
	existing, err := r.client.PackStats.Query().
		Where(packstats.QuizpackID(data.QuizpackID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query pack stats for save: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetTotalCompletions(data.TotalCompletions).
			SetTotalCorrectCount(data.TotalCorrectCount).
			SetTotalQuestionCount(data.TotalQuestionCount).
			SetAverageCorrectRate(data.AverageCorrectRate).
			SetRatingSum(data.RatingSum).
			SetRatingCount(data.RatingCount).
			SetAverageRating(data.AverageRating).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update pack stats: %w", err)
		}
		return nil
	}

	_, err = r.client.PackStats.Create().
		SetQuizpackID(data.QuizpackID).
		SetTotalCompletions(data.TotalCompletions).
		SetTotalCorrectCount(data.TotalCorrectCount).
		SetTotalQuestionCount(data.TotalQuestionCount).
		SetAverageCorrectRate(data.AverageCorrectRate).
		SetRatingSum(data.RatingSum).
		SetRatingCount(data.RatingCount).
		SetAverageRating(data.AverageRating).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create pack stats: %w", err)
	}
	return nil
}
