package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Choice is one answer option for a question.
type Choice struct {
	ent.Schema
}

func (Choice) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id").
			Comment("Owning question"),
		field.Int("choice_order").
			Comment("1-based display position"),
		field.String("text").
			NotEmpty(),
		field.Bool("correct").
			Default(false),
		field.Int("blank_position").
			Optional().
			Nillable().
			Comment("Which blank this choice fills (choiceblank only)"),
	}
}

func (Choice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
