package store

import (
	"context"
	"fmt"

	"github.com/hanjihoon73/lawquiz/ent"
	entschema "github.com/hanjihoon73/lawquiz/ent/schema"
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
)

// answerRepo implements AnswerRepo using the ent client.
type answerRepo struct {
	client *ent.Client
}

// Upsert is keyed by (session, question): re-checking a question within the
// same session overwrites the earlier row instead of duplicating it.
func (r *answerRepo) Upsert(ctx context.Context, a *Answer) error {
	selected := entschema.SelectedAnswer{
		Choices: a.ChoiceIDs,
		Blanks:  a.BlankAnswers,
	}

	existing, err := r.client.UserQuizAnswer.Query().
		Where(
			userquizanswer.UserQuizpackID(a.SessionID),
			userquizanswer.QuestionID(a.QuestionID),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query existing answer: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetSelected(selected).
			SetCorrect(a.Correct).
			SetAnsweredAt(a.AnsweredAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update answer: %w", err)
		}
		return nil
	}

	_, err = r.client.UserQuizAnswer.Create().
		SetUserQuizpackID(a.SessionID).
		SetQuestionID(a.QuestionID).
		SetAnswerOrder(a.AnswerOrder).
		SetSelected(selected).
		SetCorrect(a.Correct).
		SetAnsweredAt(a.AnsweredAt).
		Save(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("create answer: %w", err)
	}

	// Lost a create race for the same question: update the winner in place.
	winner, getErr := r.client.UserQuizAnswer.Query().
		Where(
			userquizanswer.UserQuizpackID(a.SessionID),
			userquizanswer.QuestionID(a.QuestionID),
		).
		Only(ctx)
	if getErr != nil {
		return fmt.Errorf("reconcile answer conflict: %w", getErr)
	}
	_, err = winner.Update().
		SetSelected(selected).
		SetCorrect(a.Correct).
		SetAnsweredAt(a.AnsweredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update answer after conflict: %w", err)
	}
	return nil
}

func (r *answerRepo) List(ctx context.Context, sessionID int) ([]Answer, error) {
	rows, err := r.client.UserQuizAnswer.Query().
		Where(userquizanswer.UserQuizpackID(sessionID)).
		Order(ent.Asc(userquizanswer.FieldAnswerOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	out := make([]Answer, 0, len(rows))
	for _, row := range rows {
		out = append(out, Answer{
			ID:           row.ID,
			SessionID:    row.UserQuizpackID,
			QuestionID:   row.QuestionID,
			AnswerOrder:  row.AnswerOrder,
			ChoiceIDs:    row.Selected.Choices,
			BlankAnswers: row.Selected.Blanks,
			Correct:      row.Correct,
			AnsweredAt:   row.AnsweredAt,
		})
	}
	return out, nil
}

func (r *answerRepo) Count(ctx context.Context, sessionID int) (int, error) {
	n, err := r.client.UserQuizAnswer.Query().
		Where(userquizanswer.UserQuizpackID(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	return n, nil
}

func (r *answerRepo) DeleteForSession(ctx context.Context, sessionID int) error {
	_, err := r.client.UserQuizAnswer.Delete().
		Where(userquizanswer.UserQuizpackID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete answers for session %d: %w", sessionID, err)
	}
	return nil
}
