// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/schema"
)

// LessonPackage is the model entity for the LessonPackage schema.
type LessonPackage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable lesson package identifier from the content bundle
	PackageID string `json:"package_id,omitempty"`
	// Owning unit
	UnitID string `json:"unit_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Order within the unit
	Position int `json:"position,omitempty"`
	// Exercises holds the value of the "exercises" field.
	Exercises []schema.ExerciseSpec `json:"exercises,omitempty"`
	// ImportedAt holds the value of the "imported_at" field.
	ImportedAt   time.Time `json:"imported_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonPackage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonpackage.FieldExercises:
			values[i] = new([]byte)
		case lessonpackage.FieldID, lessonpackage.FieldPosition:
			values[i] = new(sql.NullInt64)
		case lessonpackage.FieldPackageID, lessonpackage.FieldUnitID, lessonpackage.FieldTitle:
			values[i] = new(sql.NullString)
		case lessonpackage.FieldImportedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonPackage fields.
func (_m *LessonPackage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonpackage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonpackage.FieldPackageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field package_id", values[i])
			} else if value.Valid {
				_m.PackageID = value.String
			}
		case lessonpackage.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case lessonpackage.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lessonpackage.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case lessonpackage.FieldExercises:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exercises", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Exercises); err != nil {
					return fmt.Errorf("unmarshal field exercises: %w", err)
				}
			}
		case lessonpackage.FieldImportedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field imported_at", values[i])
			} else if value.Valid {
				_m.ImportedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonPackage.
// This includes values selected through modifiers, order, etc.
func (_m *LessonPackage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonPackage.
// Note that you need to call LessonPackage.Unwrap() before calling this method if this LessonPackage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonPackage) Update() *LessonPackageUpdateOne {
	return NewLessonPackageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonPackage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonPackage) Unwrap() *LessonPackage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonPackage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonPackage) String() string {
	var builder strings.Builder
	builder.WriteString("LessonPackage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("package_id=")
	builder.WriteString(_m.PackageID)
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("exercises=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exercises))
	builder.WriteString(", ")
	builder.WriteString("imported_at=")
	builder.WriteString(_m.ImportedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonPackages is a parsable slice of LessonPackage.
type LessonPackages []*LessonPackage
