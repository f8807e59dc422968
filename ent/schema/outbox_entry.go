package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEntry is a finalized session awaiting upload. Entries are
// created on session completion, retried with backoff while offline,
// and deleted once the server acknowledges them.
type OutboxEntry struct {
	ent.Schema
}

func (OutboxEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("Session this entry uploads"),
		field.String("user_id").
			NotEmpty(),
		field.String("unit_id").
			NotEmpty(),
		field.JSON("payload", map[string]any{}).
			Comment("Serialized session record as sent to the server"),
		field.Int("attempts").
			Default(0).
			Comment("Failed upload attempts so far"),
		field.Time("next_attempt_at").
			Default(time.Now).
			Comment("Earliest time the next upload may be tried"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (OutboxEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_attempt_at"),
		index.Fields("created_at"),
	}
}
