package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PackStats accumulates community-wide completion and rating aggregates for
// a quizpack, distinct from any single user's progress.
type PackStats struct {
	ent.Schema
}

func (PackStats) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quizpack_id").
			Unique(),
		field.Int("total_completions").
			Default(0),
		field.Int("total_correct_count").
			Default(0),
		field.Int("total_question_count").
			Default(0).
			Comment("Sum of pack sizes across completions"),
		field.Float("average_correct_rate").
			Default(0),
		field.Int("rating_sum").
			Default(0),
		field.Int("rating_count").
			Default(0),
		field.Float("average_rating").
			Default(0),
	}
}

func (PackStats) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quizpack_id"),
	}
}
