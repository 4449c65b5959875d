package quizbank

import (
	"context"
	"errors"
	"testing"

	"github.com/hanjihoon73/lawquiz/internal/lifecycle"
	"github.com/hanjihoon73/lawquiz/internal/store"
)

// fakeBank serves a fixed question list for one pack.
type fakeBank struct {
	packID    int
	questions []store.Question
}

func (f fakeBank) Pack(ctx context.Context, packID int) (*store.PackInfo, error) {
	if packID != f.packID {
		return nil, nil
	}
	return &store.PackInfo{ID: f.packID, QuestionCount: len(f.questions), Active: true}, nil
}

func (f fakeBank) Questions(ctx context.Context, packID int) ([]store.Question, error) {
	if packID != f.packID {
		return nil, nil
	}
	return f.questions, nil
}

func newTestReader() *Reader {
	return NewReader(fakeBank{
		packID: 7,
		questions: []store.Question{
			{ID: 41, QuizpackID: 7, Order: 1, Type: TypeTrueFalse, Text: "q1"},
			{ID: 42, QuizpackID: 7, Order: 2, Type: TypeTrueFalse, Text: "q2"},
		},
	})
}

func TestReaderQuestionFound(t *testing.T) {
	r := newTestReader()

	q, err := r.Question(context.Background(), 7, 42)
	if err != nil {
		t.Fatalf("question: %v", err)
	}
	if q.ID != 42 || q.Text != "q2" {
		t.Errorf("question = %+v, want id 42", q)
	}
}

func TestReaderQuestionMissing(t *testing.T) {
	r := newTestReader()

	_, err := r.Question(context.Background(), 7, 999)
	if !errors.Is(err, lifecycle.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestReaderQuestionsForPack(t *testing.T) {
	r := newTestReader()

	questions, total, err := r.QuestionsForPack(context.Background(), 7)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if total != 2 || len(questions) != 2 {
		t.Errorf("total = %d, len = %d, want 2", total, len(questions))
	}
}
