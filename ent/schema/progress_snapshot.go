package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressSnapshot holds the most recently computed per-objective
// progress for one (unit, user) pair. Exactly one row is retained per
// pair; each recomputation replaces it wholesale. Persisting it keeps
// newly-completed detection correct across app restarts.
type ProgressSnapshot struct {
	ent.Schema
}

// ObjectiveProgressRow is the serialized form of one objective's progress.
type ObjectiveProgressRow struct {
	ObjectiveID    string `json:"objective_id"`
	Text           string `json:"text"`
	ExercisesTotal int    `json:"exercises_total"`
	ExercisesDone  int    `json:"exercises_correct"`
	Status         string `json:"status"`
	NewlyCompleted bool   `json:"newly_completed"`
}

func (ProgressSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.JSON("items", []ObjectiveProgressRow{}).
			Comment("Objective rows in canonical unit order"),
		field.Time("computed_at").
			Default(time.Now),
	}
}

func (ProgressSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id", "user_id").
			Unique(),
	}
}
