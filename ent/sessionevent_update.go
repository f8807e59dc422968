// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/predicate"
	"github.com/lernio/lernio/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdate) SetUserID(v string) *SessionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableUserID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *SessionEventUpdate) SetUnitID(v string) *SessionEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableUnitID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SessionEventUpdate) SetLessonID(v string) *SessionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLessonID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetExercisesAnswered sets the "exercises_answered" field.
func (_u *SessionEventUpdate) SetExercisesAnswered(v int) *SessionEventUpdate {
	_u.mutation.ResetExercisesAnswered()
	_u.mutation.SetExercisesAnswered(v)
	return _u
}

// SetNillableExercisesAnswered sets the "exercises_answered" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableExercisesAnswered(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetExercisesAnswered(*v)
	}
	return _u
}

// AddExercisesAnswered adds value to the "exercises_answered" field.
func (_u *SessionEventUpdate) AddExercisesAnswered(v int) *SessionEventUpdate {
	_u.mutation.AddExercisesAnswered(v)
	return _u
}

// SetExercisesCorrect sets the "exercises_correct" field.
func (_u *SessionEventUpdate) SetExercisesCorrect(v int) *SessionEventUpdate {
	_u.mutation.ResetExercisesCorrect()
	_u.mutation.SetExercisesCorrect(v)
	return _u
}

// SetNillableExercisesCorrect sets the "exercises_correct" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableExercisesCorrect(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetExercisesCorrect(*v)
	}
	return _u
}

// AddExercisesCorrect adds value to the "exercises_correct" field.
func (_u *SessionEventUpdate) AddExercisesCorrect(v int) *SessionEventUpdate {
	_u.mutation.AddExercisesCorrect(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := sessionevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := sessionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(sessionevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(sessionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExercisesAnswered(); ok {
		_spec.SetField(sessionevent.FieldExercisesAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesAnswered(); ok {
		_spec.AddField(sessionevent.FieldExercisesAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCorrect(); ok {
		_spec.SetField(sessionevent.FieldExercisesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCorrect(); ok {
		_spec.AddField(sessionevent.FieldExercisesCorrect, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdateOne) SetUserID(v string) *SessionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableUserID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *SessionEventUpdateOne) SetUnitID(v string) *SessionEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableUnitID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SessionEventUpdateOne) SetLessonID(v string) *SessionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLessonID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetExercisesAnswered sets the "exercises_answered" field.
func (_u *SessionEventUpdateOne) SetExercisesAnswered(v int) *SessionEventUpdateOne {
	_u.mutation.ResetExercisesAnswered()
	_u.mutation.SetExercisesAnswered(v)
	return _u
}

// SetNillableExercisesAnswered sets the "exercises_answered" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableExercisesAnswered(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetExercisesAnswered(*v)
	}
	return _u
}

// AddExercisesAnswered adds value to the "exercises_answered" field.
func (_u *SessionEventUpdateOne) AddExercisesAnswered(v int) *SessionEventUpdateOne {
	_u.mutation.AddExercisesAnswered(v)
	return _u
}

// SetExercisesCorrect sets the "exercises_correct" field.
func (_u *SessionEventUpdateOne) SetExercisesCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.ResetExercisesCorrect()
	_u.mutation.SetExercisesCorrect(v)
	return _u
}

// SetNillableExercisesCorrect sets the "exercises_correct" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableExercisesCorrect(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetExercisesCorrect(*v)
	}
	return _u
}

// AddExercisesCorrect adds value to the "exercises_correct" field.
func (_u *SessionEventUpdateOne) AddExercisesCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.AddExercisesCorrect(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := sessionevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := sessionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(sessionevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(sessionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExercisesAnswered(); ok {
		_spec.SetField(sessionevent.FieldExercisesAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesAnswered(); ok {
		_spec.AddField(sessionevent.FieldExercisesAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCorrect(); ok {
		_spec.SetField(sessionevent.FieldExercisesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCorrect(); ok {
		_spec.AddField(sessionevent.FieldExercisesCorrect, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
