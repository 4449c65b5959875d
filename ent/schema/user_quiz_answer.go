package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SelectedAnswer is the serialized form of a user's answer to one question.
// Multiple-choice and true/false answers use Choices; fill-in-the-blank
// answers map blank position to the choice placed there.
type SelectedAnswer struct {
	Choices []int       `json:"choices,omitempty"`
	Blanks  map[int]int `json:"blanks,omitempty"`
}

// UserQuizAnswer records one answered question within a session.
// Rows are upserted by (user_quizpack_id, question_id) and deleted in bulk
// when the owning session is reset or aborted.
type UserQuizAnswer struct {
	ent.Schema
}

func (UserQuizAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_quizpack_id").
			Comment("Owning session row"),
		field.Int("question_id"),
		field.Int("answer_order").
			Comment("Position at which the question was answered in the session"),
		field.JSON("selected", SelectedAnswer{}),
		field.Bool("correct"),
		field.Time("answered_at"),
	}
}

func (UserQuizAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_quizpack_id", "question_id").Unique(),
		index.Fields("user_quizpack_id"),
	}
}
