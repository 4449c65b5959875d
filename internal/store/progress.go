package store

import (
	"context"
	"fmt"

	"github.com/hanjihoon73/lawquiz/ent"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID string, packID int) (*Progress, error) {
	row, err := r.client.UserQuizpack.Query().
		Where(
			userquizpack.UserID(userID),
			userquizpack.QuizpackID(packID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user quizpack: %w", err)
	}
	return entToProgress(row), nil
}

func (r *progressRepo) GetByID(ctx context.Context, id int) (*Progress, error) {
	row, err := r.client.UserQuizpack.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user quizpack %d: %w", id, err)
	}
	return entToProgress(row), nil
}

func (r *progressRepo) Create(ctx context.Context, p *Progress) (*Progress, error) {
	builder := r.client.UserQuizpack.Create().
		SetUserID(p.UserID).
		SetQuizpackID(p.QuizpackID).
		SetCatalogOrder(p.CatalogOrder).
		SetStatus(p.Status).
		SetCurrentQuestionOrder(p.CurrentQuestionOrder).
		SetSolvedCount(p.SolvedCount).
		SetCorrectCount(p.CorrectCount).
		SetIncorrectCount(p.IncorrectCount).
		SetTotalQuestionCount(p.TotalQuestionCount).
		SetSessionNumber(p.SessionNumber).
		SetAttemptID(p.AttemptID).
		SetTotalTimeSeconds(p.TotalTimeSeconds).
		SetNillableCorrectRate(p.CorrectRate).
		SetNillableStartedAt(p.StartedAt).
		SetNillableLastPlayedAt(p.LastPlayedAt).
		SetNillableCompletedAt(p.CompletedAt)

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user quizpack: %w", err)
	}
	return entToProgress(row), nil
}

// ReconcileCreate is the named recovery path for duplicate-initialization
// races: two near-simultaneous creates for the same (user, pack) resolve by
// re-reading the row that won instead of propagating the constraint error.
func (r *progressRepo) ReconcileCreate(ctx context.Context, p *Progress) (*Progress, bool, error) {
	created, err := r.Create(ctx, p)
	if err == nil {
		return created, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, err
	}

	existing, getErr := r.Get(ctx, p.UserID, p.QuizpackID)
	if getErr != nil {
		return nil, false, fmt.Errorf("reconcile after conflict: %w", getErr)
	}
	if existing == nil {
		// Conflict but no row: the racing writer rolled back. Surface the
		// original error so the caller can retry.
		return nil, false, err
	}
	return existing, false, nil
}

func (r *progressRepo) Update(ctx context.Context, p *Progress) (*Progress, error) {
	builder := r.client.UserQuizpack.UpdateOneID(p.ID).
		SetStatus(p.Status).
		SetCatalogOrder(p.CatalogOrder).
		SetCurrentQuestionOrder(p.CurrentQuestionOrder).
		SetSolvedCount(p.SolvedCount).
		SetCorrectCount(p.CorrectCount).
		SetIncorrectCount(p.IncorrectCount).
		SetTotalQuestionCount(p.TotalQuestionCount).
		SetSessionNumber(p.SessionNumber).
		SetAttemptID(p.AttemptID).
		SetTotalTimeSeconds(p.TotalTimeSeconds)

	if p.CorrectRate != nil {
		builder = builder.SetCorrectRate(*p.CorrectRate)
	} else {
		builder = builder.ClearCorrectRate()
	}
	if p.StartedAt != nil {
		builder = builder.SetStartedAt(*p.StartedAt)
	} else {
		builder = builder.ClearStartedAt()
	}
	if p.LastPlayedAt != nil {
		builder = builder.SetLastPlayedAt(*p.LastPlayedAt)
	} else {
		builder = builder.ClearLastPlayedAt()
	}
	if p.CompletedAt != nil {
		builder = builder.SetCompletedAt(*p.CompletedAt)
	} else {
		builder = builder.ClearCompletedAt()
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user quizpack %d: %w", p.ID, err)
	}
	return entToProgress(row), nil
}

func (r *progressRepo) InProgress(ctx context.Context, userID string, excludePackID int) (*Progress, error) {
	q := r.client.UserQuizpack.Query().
		Where(
			userquizpack.UserID(userID),
			userquizpack.Status(StatusInProgress),
		)
	if excludePackID != 0 {
		q = q.Where(userquizpack.QuizpackIDNEQ(excludePackID))
	}

	row, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query in-progress quizpack: %w", err)
	}
	return entToProgress(row), nil
}

func (r *progressRepo) ListForUser(ctx context.Context, userID string) ([]Progress, error) {
	rows, err := r.client.UserQuizpack.Query().
		Where(userquizpack.UserID(userID)).
		Order(ent.Asc(userquizpack.FieldCatalogOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user quizpacks: %w", err)
	}

	out := make([]Progress, 0, len(rows))
	for _, row := range rows {
		out = append(out, *entToProgress(row))
	}
	return out, nil
}

func entToProgress(row *ent.UserQuizpack) *Progress {
	return &Progress{
		ID:                   row.ID,
		UserID:               row.UserID,
		QuizpackID:           row.QuizpackID,
		CatalogOrder:         row.CatalogOrder,
		Status:               row.Status,
		CurrentQuestionOrder: row.CurrentQuestionOrder,
		SolvedCount:          row.SolvedCount,
		CorrectCount:         row.CorrectCount,
		IncorrectCount:       row.IncorrectCount,
		CorrectRate:          row.CorrectRate,
		TotalQuestionCount:   row.TotalQuestionCount,
		SessionNumber:        row.SessionNumber,
		AttemptID:            row.AttemptID,
		StartedAt:            row.StartedAt,
		LastPlayedAt:         row.LastPlayedAt,
		CompletedAt:          row.CompletedAt,
		TotalTimeSeconds:     row.TotalTimeSeconds,
	}
}
