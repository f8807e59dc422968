package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutcomeEvent records a single exercise outcome within a session.
// Rows are append-only: a retry of the same exercise appends a new
// row, it never rewrites an earlier one.
type OutcomeEvent struct {
	ent.Schema
}

func (OutcomeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OutcomeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("user_id").
			NotEmpty(),
		field.String("unit_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.String("exercise_id").
			NotEmpty(),
		field.String("objective_id").
			NotEmpty().
			Comment("Objective the exercise is tagged with"),
		field.Bool("correct"),
	}
}

func (OutcomeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("unit_id", "user_id"),
		index.Fields("exercise_id"),
	}
}
