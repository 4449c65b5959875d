package quizbank

import (
	"testing"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

func intp(v int) *int { return &v }

func multipleQuestion() *store.Question {
	return &store.Question{
		ID:   1,
		Type: TypeMultiple,
		Choices: []store.Choice{
			{ID: 10, Order: 1, Correct: true},
			{ID: 11, Order: 2},
			{ID: 12, Order: 3, Correct: true},
			{ID: 13, Order: 4},
		},
	}
}

func blankQuestion() *store.Question {
	return &store.Question{
		ID:         2,
		Type:       TypeChoiceBlank,
		BlankCount: 2,
		Choices: []store.Choice{
			{ID: 20, Order: 1, Correct: true, BlankPosition: intp(1)},
			{ID: 21, Order: 2, Correct: true, BlankPosition: intp(2)},
			{ID: 22, Order: 3},
			{ID: 23, Order: 4},
		},
	}
}

func TestSelectionEmpty(t *testing.T) {
	if !(Selection{}).Empty() {
		t.Error("zero selection should be empty")
	}
	if (Selection{Choices: []int{1}}).Empty() {
		t.Error("selection with choices should not be empty")
	}
	if (Selection{Blanks: map[int]int{1: 2}}).Empty() {
		t.Error("selection with blanks should not be empty")
	}
}

func TestGradeMultiple(t *testing.T) {
	q := multipleQuestion()

	tests := []struct {
		name    string
		choices []int
		want    bool
	}{
		{"exact set", []int{10, 12}, true},
		{"order irrelevant", []int{12, 10}, true},
		{"missing one", []int{10}, false},
		{"extra wrong", []int{10, 12, 11}, false},
		{"all wrong", []int{11, 13}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(q, Selection{Choices: tt.choices})
			if got != tt.want {
				t.Errorf("Grade(%v) = %v, want %v", tt.choices, got, tt.want)
			}
		})
	}
}

func TestGradeTrueFalse(t *testing.T) {
	q := &store.Question{
		ID:   3,
		Type: TypeTrueFalse,
		Choices: []store.Choice{
			{ID: 30, Order: 1},
			{ID: 31, Order: 2, Correct: true},
		},
	}

	if !Grade(q, Selection{Choices: []int{31}}) {
		t.Error("correct choice graded wrong")
	}
	if Grade(q, Selection{Choices: []int{30}}) {
		t.Error("wrong choice graded correct")
	}
	if Grade(q, Selection{Choices: []int{30, 31}}) {
		t.Error("selecting both graded correct")
	}
}

func TestGradeChoiceBlank(t *testing.T) {
	q := blankQuestion()

	tests := []struct {
		name   string
		blanks map[int]int
		want   bool
	}{
		{"all blanks right", map[int]int{1: 20, 2: 21}, true},
		{"blanks swapped", map[int]int{1: 21, 2: 20}, false},
		{"one blank wrong", map[int]int{1: 20, 2: 22}, false},
		{"one blank missing", map[int]int{1: 20}, false},
		{"no blanks", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(q, Selection{Blanks: tt.blanks})
			if got != tt.want {
				t.Errorf("Grade(%v) = %v, want %v", tt.blanks, got, tt.want)
			}
		})
	}
}

func TestGradeNoCorrectChoices(t *testing.T) {
	q := &store.Question{
		ID:   4,
		Type: TypeMultiple,
		Choices: []store.Choice{
			{ID: 40, Order: 1},
			{ID: 41, Order: 2},
		},
	}
	if Grade(q, Selection{}) {
		t.Error("a question without correct choices must never grade correct")
	}
}
