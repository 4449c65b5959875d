package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Quizpack is a named, ordered bundle of questions; the unit of progression.
type Quizpack struct {
	ent.Schema
}

func (Quizpack) Fields() []ent.Field {
	return []ent.Field{
		field.String("keywords").
			NotEmpty().
			Comment("Topic keywords shown on the pack card"),
		field.Int("question_count").
			Default(0).
			Comment("Number of active questions in the pack"),
		field.Bool("active").
			Default(true).
			Comment("Inactive packs are hidden from the catalog"),
	}
}
