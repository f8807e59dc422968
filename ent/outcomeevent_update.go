// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/outcomeevent"
	"github.com/lernio/lernio/ent/predicate"
)

// OutcomeEventUpdate is the builder for updating OutcomeEvent entities.
type OutcomeEventUpdate struct {
	config
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (_u *OutcomeEventUpdate) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *OutcomeEventUpdate) SetSessionID(v string) *OutcomeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableSessionID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OutcomeEventUpdate) SetUserID(v string) *OutcomeEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableUserID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *OutcomeEventUpdate) SetUnitID(v string) *OutcomeEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableUnitID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *OutcomeEventUpdate) SetLessonID(v string) *OutcomeEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableLessonID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *OutcomeEventUpdate) SetExerciseID(v string) *OutcomeEventUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableExerciseID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *OutcomeEventUpdate) SetObjectiveID(v string) *OutcomeEventUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableObjectiveID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *OutcomeEventUpdate) SetCorrect(v bool) *OutcomeEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableCorrect(v *bool) *OutcomeEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_u *OutcomeEventUpdate) Mutation() *OutcomeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutcomeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutcomeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := outcomeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := outcomeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := outcomeevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := outcomeevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := outcomeevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.exercise_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := outcomeevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OutcomeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(outcomeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(outcomeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(outcomeevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(outcomeevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(outcomeevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(outcomeevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(outcomeevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutcomeEventUpdateOne is the builder for updating a single OutcomeEvent entity.
type OutcomeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *OutcomeEventUpdateOne) SetSessionID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableSessionID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OutcomeEventUpdateOne) SetUserID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableUserID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *OutcomeEventUpdateOne) SetUnitID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableUnitID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *OutcomeEventUpdateOne) SetLessonID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableLessonID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *OutcomeEventUpdateOne) SetExerciseID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableExerciseID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *OutcomeEventUpdateOne) SetObjectiveID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableObjectiveID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *OutcomeEventUpdateOne) SetCorrect(v bool) *OutcomeEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableCorrect(v *bool) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_u *OutcomeEventUpdateOne) Mutation() *OutcomeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (_u *OutcomeEventUpdateOne) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutcomeEventUpdateOne) Select(field string, fields ...string) *OutcomeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutcomeEvent entity.
func (_u *OutcomeEventUpdateOne) Save(ctx context.Context) (*OutcomeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeEventUpdateOne) SaveX(ctx context.Context) *OutcomeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutcomeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := outcomeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := outcomeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := outcomeevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := outcomeevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := outcomeevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.exercise_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := outcomeevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OutcomeEventUpdateOne) sqlSave(ctx context.Context) (_node *OutcomeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutcomeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outcomeevent.FieldID)
		for _, f := range fields {
			if !outcomeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outcomeevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(outcomeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(outcomeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(outcomeevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(outcomeevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(outcomeevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(outcomeevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(outcomeevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &OutcomeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
