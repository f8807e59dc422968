package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/complete).
// One start row is appended when a lesson attempt begins and one
// complete row when it is finalized; a session with no complete row
// is in progress and invisible to progress computation.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("unit_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson package the attempt was for"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("exercises_answered").
			Default(0).
			Comment("Total outcomes recorded (on complete only)"),
		field.Int("exercises_correct").
			Default(0).
			Comment("Total correct (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("unit_id", "user_id"),
		index.Fields("action"),
	}
}
