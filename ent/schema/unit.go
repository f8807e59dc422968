package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Unit is a locally cached learning unit: the canonical, ordered list of
// learning objectives plus the lesson order. Populated by bundle import,
// read-only afterwards.
type Unit struct {
	ent.Schema
}

// ObjectiveSpec is the serialized form of one canonical learning objective.
type ObjectiveSpec struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (Unit) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").
			NotEmpty().
			Unique().
			Comment("Stable unit identifier from the content bundle"),
		field.String("title").
			NotEmpty(),
		field.JSON("objectives", []ObjectiveSpec{}).
			Comment("Canonical objectives in unit order; IDs are assigned once and never reused"),
		field.JSON("lesson_order", []string{}).
			Optional().
			Comment("Lesson package IDs in teaching order"),
		field.Time("imported_at").
			Default(time.Now).
			Comment("When this unit was last imported"),
	}
}

func (Unit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id"),
	}
}
