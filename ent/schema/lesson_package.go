package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonPackage is the locally cached content bundle for one lesson:
// its exercises, each tagged with exactly one objective ID from the
// owning unit's canonical list.
type LessonPackage struct {
	ent.Schema
}

// ExerciseSpec is the serialized form of one exercise.
type ExerciseSpec struct {
	ID          string   `json:"id"`
	ObjectiveID string   `json:"objective_id"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
}

func (LessonPackage) Fields() []ent.Field {
	return []ent.Field{
		field.String("package_id").
			NotEmpty().
			Unique().
			Comment("Stable lesson package identifier from the content bundle"),
		field.String("unit_id").
			NotEmpty().
			Comment("Owning unit"),
		field.String("title").
			NotEmpty(),
		field.Int("position").
			Default(0).
			Comment("Order within the unit"),
		field.JSON("exercises", []ExerciseSpec{}),
		field.Time("imported_at").
			Default(time.Now),
	}
}

func (LessonPackage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id"),
		index.Fields("unit_id", "position"),
	}
}
