// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/predicate"
	"github.com/lernio/lernio/ent/schema"
	"github.com/lernio/lernio/ent/unit"
)

// UnitUpdate is the builder for updating Unit entities.
type UnitUpdate struct {
	config
	hooks    []Hook
	mutation *UnitMutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdate) Where(ps ...predicate.Unit) *UnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *UnitUpdate) SetUnitID(v string) *UnitUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableUnitID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *UnitUpdate) SetTitle(v string) *UnitUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableTitle(v *string) *UnitUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *UnitUpdate) SetObjectives(v []schema.ObjectiveSpec) *UnitUpdate {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *UnitUpdate) AppendObjectives(v []schema.ObjectiveSpec) *UnitUpdate {
	_u.mutation.AppendObjectives(v)
	return _u
}

// SetLessonOrder sets the "lesson_order" field.
func (_u *UnitUpdate) SetLessonOrder(v []string) *UnitUpdate {
	_u.mutation.SetLessonOrder(v)
	return _u
}

// AppendLessonOrder appends value to the "lesson_order" field.
func (_u *UnitUpdate) AppendLessonOrder(v []string) *UnitUpdate {
	_u.mutation.AppendLessonOrder(v)
	return _u
}

// ClearLessonOrder clears the value of the "lesson_order" field.
func (_u *UnitUpdate) ClearLessonOrder() *UnitUpdate {
	_u.mutation.ClearLessonOrder()
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *UnitUpdate) SetImportedAt(v time.Time) *UnitUpdate {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableImportedAt(v *time.Time) *UnitUpdate {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdate) Mutation() *UnitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdate) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := unit.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := unit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Unit.title": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(unit.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(unit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(unit.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldObjectives, value)
		})
	}
	if value, ok := _u.mutation.LessonOrder(); ok {
		_spec.SetField(unit.FieldLessonOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldLessonOrder, value)
		})
	}
	if _u.mutation.LessonOrderCleared() {
		_spec.ClearField(unit.FieldLessonOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(unit.FieldImportedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitUpdateOne is the builder for updating a single Unit entity.
type UnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *UnitUpdateOne) SetUnitID(v string) *UnitUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableUnitID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *UnitUpdateOne) SetTitle(v string) *UnitUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableTitle(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *UnitUpdateOne) SetObjectives(v []schema.ObjectiveSpec) *UnitUpdateOne {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *UnitUpdateOne) AppendObjectives(v []schema.ObjectiveSpec) *UnitUpdateOne {
	_u.mutation.AppendObjectives(v)
	return _u
}

// SetLessonOrder sets the "lesson_order" field.
func (_u *UnitUpdateOne) SetLessonOrder(v []string) *UnitUpdateOne {
	_u.mutation.SetLessonOrder(v)
	return _u
}

// AppendLessonOrder appends value to the "lesson_order" field.
func (_u *UnitUpdateOne) AppendLessonOrder(v []string) *UnitUpdateOne {
	_u.mutation.AppendLessonOrder(v)
	return _u
}

// ClearLessonOrder clears the value of the "lesson_order" field.
func (_u *UnitUpdateOne) ClearLessonOrder() *UnitUpdateOne {
	_u.mutation.ClearLessonOrder()
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *UnitUpdateOne) SetImportedAt(v time.Time) *UnitUpdateOne {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableImportedAt(v *time.Time) *UnitUpdateOne {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdateOne) Mutation() *UnitMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdateOne) Where(ps ...predicate.Unit) *UnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitUpdateOne) Select(field string, fields ...string) *UnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Unit entity.
func (_u *UnitUpdateOne) Save(ctx context.Context) (*Unit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdateOne) SaveX(ctx context.Context) *Unit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdateOne) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := unit.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := unit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Unit.title": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdateOne) sqlSave(ctx context.Context) (_node *Unit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Unit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unit.FieldID)
		for _, f := range fields {
			if !unit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(unit.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(unit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(unit.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldObjectives, value)
		})
	}
	if value, ok := _u.mutation.LessonOrder(); ok {
		_spec.SetField(unit.FieldLessonOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldLessonOrder, value)
		})
	}
	if _u.mutation.LessonOrderCleared() {
		_spec.ClearField(unit.FieldLessonOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(unit.FieldImportedAt, field.TypeTime, value)
	}
	_node = &Unit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
