// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonPackagesColumns holds the columns for the "lesson_packages" table.
	LessonPackagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "package_id", Type: field.TypeString, Unique: true},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "exercises", Type: field.TypeJSON},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// LessonPackagesTable holds the schema information for the "lesson_packages" table.
	LessonPackagesTable = &schema.Table{
		Name:       "lesson_packages",
		Columns:    LessonPackagesColumns,
		PrimaryKey: []*schema.Column{LessonPackagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonpackage_unit_id",
				Unique:  false,
				Columns: []*schema.Column{LessonPackagesColumns[2]},
			},
			{
				Name:    "lessonpackage_unit_id_position",
				Unique:  false,
				Columns: []*schema.Column{LessonPackagesColumns[2], LessonPackagesColumns[4]},
			},
		},
	}
	// OutboxEntriesColumns holds the columns for the "outbox_entries" table.
	OutboxEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OutboxEntriesTable holds the schema information for the "outbox_entries" table.
	OutboxEntriesTable = &schema.Table{
		Name:       "outbox_entries",
		Columns:    OutboxEntriesColumns,
		PrimaryKey: []*schema.Column{OutboxEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxentry_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEntriesColumns[6]},
			},
			{
				Name:    "outboxentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEntriesColumns[7]},
			},
		},
	}
	// OutcomeEventsColumns holds the columns for the "outcome_events" table.
	OutcomeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// OutcomeEventsTable holds the schema information for the "outcome_events" table.
	OutcomeEventsTable = &schema.Table{
		Name:       "outcome_events",
		Columns:    OutcomeEventsColumns,
		PrimaryKey: []*schema.Column{OutcomeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outcomeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[1]},
			},
			{
				Name:    "outcomeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[2]},
			},
			{
				Name:    "outcomeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[3]},
			},
			{
				Name:    "outcomeevent_unit_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[5], OutcomeEventsColumns[4]},
			},
			{
				Name:    "outcomeevent_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[7]},
			},
		},
	}
	// ProgressSnapshotsColumns holds the columns for the "progress_snapshots" table.
	ProgressSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "items", Type: field.TypeJSON},
		{Name: "computed_at", Type: field.TypeTime},
	}
	// ProgressSnapshotsTable holds the schema information for the "progress_snapshots" table.
	ProgressSnapshotsTable = &schema.Table{
		Name:       "progress_snapshots",
		Columns:    ProgressSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProgressSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progresssnapshot_unit_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressSnapshotsColumns[1], ProgressSnapshotsColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "exercises_answered", Type: field.TypeInt, Default: 0},
		{Name: "exercises_correct", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_unit_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5], SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[7]},
			},
		},
	}
	// UnitsColumns holds the columns for the "units" table.
	UnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "unit_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "objectives", Type: field.TypeJSON},
		{Name: "lesson_order", Type: field.TypeJSON, Nullable: true},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// UnitsTable holds the schema information for the "units" table.
	UnitsTable = &schema.Table{
		Name:       "units",
		Columns:    UnitsColumns,
		PrimaryKey: []*schema.Column{UnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unit_unit_id",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonPackagesTable,
		OutboxEntriesTable,
		OutcomeEventsTable,
		ProgressSnapshotsTable,
		SessionEventsTable,
		UnitsTable,
	}
)

func init() {
}
