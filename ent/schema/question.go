package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a single quiz question belonging to a quizpack.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quizpack_id").
			Comment("Owning quizpack"),
		field.Int("question_order").
			Comment("1-based position within the pack"),
		field.String("type").
			NotEmpty().
			Comment("multiple, truefalse, or choiceblank"),
		field.String("question").
			NotEmpty().
			Comment("The question text"),
		field.String("passage").
			Optional().
			Comment("Supporting passage, if any"),
		field.String("hint").
			Optional(),
		field.String("explanation").
			Optional(),
		field.Int("blank_count").
			Default(0).
			Comment("Number of blanks (choiceblank only)"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quizpack_id"),
		index.Fields("quizpack_id", "question_order").Unique(),
	}
}
