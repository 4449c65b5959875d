package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserQuizpack tracks one user's progression through one quizpack.
// There is at most one row per (user_id, quizpack_id); the uniqueness
// constraint is what makes duplicate-initialization races detectable.
type UserQuizpack struct {
	ent.Schema
}

func (UserQuizpack) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Opaque user identifier from the auth provider"),
		field.Int("quizpack_id"),
		field.Int("catalog_order").
			Comment("Pack position at the time this row was created"),
		field.String("status").
			NotEmpty().
			Comment("closed, opened, in_progress, or completed"),
		field.Int("current_question_order").
			Default(0).
			Comment("1-based cursor of the next unanswered question; 0 = not started"),
		field.Int("solved_count").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Int("incorrect_count").
			Default(0),
		field.Float("correct_rate").
			Optional().
			Nillable().
			Comment("correct_count/solved_count*100; unset while solved_count is 0"),
		field.Int("total_question_count").
			Default(0).
			Comment("Pack size snapshot taken at session start"),
		field.Int("session_number").
			Default(0).
			Comment("Attempt counter; bumps on first start, completion, and reset"),
		field.String("attempt_id").
			Optional().
			Comment("UUID identifying the current in_progress phase"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("last_played_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("First-completion marker; survives resets"),
		field.Int("total_time_seconds").
			Default(0).
			Comment("Wall-clock seconds of the completing session"),
	}
}

func (UserQuizpack) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "quizpack_id").Unique(),
		index.Fields("user_id", "status"),
	}
}
