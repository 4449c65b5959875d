package quizbank

import "github.com/hanjihoon73/lawquiz/internal/store"

// Selection is a user's answer to one question: choice ids for multiple
// choice and true/false, or a blank-position → choice-id mapping for
// fill-in-the-blank questions.
type Selection struct {
	Choices []int
	Blanks  map[int]int
}

// Empty reports whether the selection carries no answer at all.
func (s Selection) Empty() bool {
	return len(s.Choices) == 0 && len(s.Blanks) == 0
}

// Grade checks a selection against the question's choices.
//
// Choiceblank questions are correct when every correct choice with a blank
// position sits in exactly that blank. The other types are correct when
// the selected set equals the correct set.
func Grade(q *store.Question, sel Selection) bool {
	if q.Type == TypeChoiceBlank {
		if len(sel.Blanks) == 0 {
			return false
		}
		for _, c := range q.Choices {
			if !c.Correct || c.BlankPosition == nil {
				continue
			}
			if sel.Blanks[*c.BlankPosition] != c.ID {
				return false
			}
		}
		return true
	}

	var correctIDs []int
	for _, c := range q.Choices {
		if c.Correct {
			correctIDs = append(correctIDs, c.ID)
		}
	}
	if len(sel.Choices) != len(correctIDs) {
		return false
	}
	for _, id := range sel.Choices {
		found := false
		for _, want := range correctIDs {
			if id == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(correctIDs) > 0
}
