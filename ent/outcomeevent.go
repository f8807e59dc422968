// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/outcomeevent"
)

// OutcomeEvent is the model entity for the OutcomeEvent schema.
type OutcomeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// ExerciseID holds the value of the "exercise_id" field.
	ExerciseID string `json:"exercise_id,omitempty"`
	// Objective the exercise is tagged with
	ObjectiveID string `json:"objective_id,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct      bool `json:"correct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutcomeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outcomeevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case outcomeevent.FieldID, outcomeevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case outcomeevent.FieldSessionID, outcomeevent.FieldUserID, outcomeevent.FieldUnitID, outcomeevent.FieldLessonID, outcomeevent.FieldExerciseID, outcomeevent.FieldObjectiveID:
			values[i] = new(sql.NullString)
		case outcomeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutcomeEvent fields.
func (_m *OutcomeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outcomeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case outcomeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case outcomeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case outcomeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case outcomeevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case outcomeevent.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case outcomeevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case outcomeevent.FieldExerciseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_id", values[i])
			} else if value.Valid {
				_m.ExerciseID = value.String
			}
		case outcomeevent.FieldObjectiveID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_id", values[i])
			} else if value.Valid {
				_m.ObjectiveID = value.String
			}
		case outcomeevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutcomeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *OutcomeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OutcomeEvent.
// Note that you need to call OutcomeEvent.Unwrap() before calling this method if this OutcomeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutcomeEvent) Update() *OutcomeEventUpdateOne {
	return NewOutcomeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutcomeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutcomeEvent) Unwrap() *OutcomeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutcomeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutcomeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("OutcomeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("exercise_id=")
	builder.WriteString(_m.ExerciseID)
	builder.WriteString(", ")
	builder.WriteString("objective_id=")
	builder.WriteString(_m.ObjectiveID)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteByte(')')
	return builder.String()
}

// OutcomeEvents is a parsable slice of OutcomeEvent.
type OutcomeEvents []*OutcomeEvent
