package store

import (
	"context"
	"fmt"

	"github.com/hanjihoon73/lawquiz/ent"
	"github.com/hanjihoon73/lawquiz/ent/choice"
	"github.com/hanjihoon73/lawquiz/ent/question"
)

// bankRepo implements BankRepo using the ent client.
type bankRepo struct {
	client *ent.Client
}

func (r *bankRepo) Pack(ctx context.Context, packID int) (*PackInfo, error) {
	row, err := r.client.Quizpack.Get(ctx, packID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quizpack %d: %w", packID, err)
	}
	return &PackInfo{
		ID:            row.ID,
		Keywords:      row.Keywords,
		QuestionCount: row.QuestionCount,
		Active:        row.Active,
	}, nil
}

func (r *bankRepo) Questions(ctx context.Context, packID int) ([]Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.QuizpackID(packID)).
		Order(ent.Asc(question.FieldQuestionOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions for pack %d: %w", packID, err)
	}

	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		q := Question{
			ID:          row.ID,
			QuizpackID:  row.QuizpackID,
			Order:       row.QuestionOrder,
			Type:        row.Type,
			Text:        row.Question,
			Passage:     row.Passage,
			Hint:        row.Hint,
			Explanation: row.Explanation,
			BlankCount:  row.BlankCount,
		}

		choices, err := r.client.Choice.Query().
			Where(choice.QuestionID(row.ID)).
			Order(ent.Asc(choice.FieldChoiceOrder)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list choices for question %d: %w", row.ID, err)
		}
		for _, c := range choices {
			q.Choices = append(q.Choices, Choice{
				ID:            c.ID,
				Order:         c.ChoiceOrder,
				Text:          c.Text,
				Correct:       c.Correct,
				BlankPosition: c.BlankPosition,
			})
		}

		out = append(out, q)
	}
	return out, nil
}
