package quizbank

import (
	"context"
	"fmt"

	"github.com/hanjihoon73/lawquiz/internal/lifecycle"
	"github.com/hanjihoon73/lawquiz/internal/store"
)

// Question types supported by the bank.
const (
	TypeMultiple    = "multiple"
	TypeTrueFalse   = "truefalse"
	TypeChoiceBlank = "choiceblank"
)

// Reader exposes the question bank to the progression core. The core uses
// it for pack-size snapshots at session start and for grading.
type Reader struct {
	bank store.BankRepo
}

// NewReader creates a Reader over the bank repository.
func NewReader(bank store.BankRepo) *Reader {
	return &Reader{bank: bank}
}

// QuestionsForPack returns the pack's questions in display order along
// with the total count.
func (r *Reader) QuestionsForPack(ctx context.Context, packID int) ([]store.Question, int, error) {
	questions, err := r.bank.Questions(ctx, packID)
	if err != nil {
		return nil, 0, err
	}
	return questions, len(questions), nil
}

// Question returns a single question of a pack by its id.
func (r *Reader) Question(ctx context.Context, packID, questionID int) (*store.Question, error) {
	questions, err := r.bank.Questions(ctx, packID)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].ID == questionID {
			return &questions[i], nil
		}
	}
	return nil, fmt.Errorf("question %d not in pack %d: %w", questionID, packID, lifecycle.ErrNotFound)
}
