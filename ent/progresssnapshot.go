// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/progresssnapshot"
	"github.com/lernio/lernio/ent/schema"
)

// ProgressSnapshot is the model entity for the ProgressSnapshot schema.
type ProgressSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Objective rows in canonical unit order
	Items []schema.ObjectiveProgressRow `json:"items,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt   time.Time `json:"computed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progresssnapshot.FieldItems:
			values[i] = new([]byte)
		case progresssnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case progresssnapshot.FieldUnitID, progresssnapshot.FieldUserID:
			values[i] = new(sql.NullString)
		case progresssnapshot.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressSnapshot fields.
func (_m *ProgressSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progresssnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progresssnapshot.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case progresssnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case progresssnapshot.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case progresssnapshot.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressSnapshot.
// Note that you need to call ProgressSnapshot.Unwrap() before calling this method if this ProgressSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressSnapshot) Update() *ProgressSnapshotUpdateOne {
	return NewProgressSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressSnapshot) Unwrap() *ProgressSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressSnapshots is a parsable slice of ProgressSnapshot.
type ProgressSnapshots []*ProgressSnapshot
