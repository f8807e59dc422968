// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/outcomeevent"
)

// OutcomeEventCreate is the builder for creating a OutcomeEvent entity.
type OutcomeEventCreate struct {
	config
	mutation *OutcomeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *OutcomeEventCreate) SetSequence(v int64) *OutcomeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OutcomeEventCreate) SetTimestamp(v time.Time) *OutcomeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableTimestamp(v *time.Time) *OutcomeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *OutcomeEventCreate) SetSessionID(v string) *OutcomeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *OutcomeEventCreate) SetUserID(v string) *OutcomeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *OutcomeEventCreate) SetUnitID(v string) *OutcomeEventCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *OutcomeEventCreate) SetLessonID(v string) *OutcomeEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *OutcomeEventCreate) SetExerciseID(v string) *OutcomeEventCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *OutcomeEventCreate) SetObjectiveID(v string) *OutcomeEventCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *OutcomeEventCreate) SetCorrect(v bool) *OutcomeEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_c *OutcomeEventCreate) Mutation() *OutcomeEventMutation {
	return _c.mutation
}

// Save creates the OutcomeEvent in the database.
func (_c *OutcomeEventCreate) Save(ctx context.Context) (*OutcomeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutcomeEventCreate) SaveX(ctx context.Context) *OutcomeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutcomeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := outcomeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutcomeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OutcomeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OutcomeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "OutcomeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := outcomeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OutcomeEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := outcomeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "OutcomeEvent.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := outcomeevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "OutcomeEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := outcomeevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "OutcomeEvent.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := outcomeevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "OutcomeEvent.objective_id"`)}
	}
	if v, ok := _c.mutation.ObjectiveID(); ok {
		if err := outcomeevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "OutcomeEvent.correct"`)}
	}
	return nil
}

func (_c *OutcomeEventCreate) sqlSave(ctx context.Context) (*OutcomeEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutcomeEventCreate) createSpec() (*OutcomeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OutcomeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outcomeevent.Table, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(outcomeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(outcomeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(outcomeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(outcomeevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(outcomeevent.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(outcomeevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(outcomeevent.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(outcomeevent.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(outcomeevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// OutcomeEventCreateBulk is the builder for creating many OutcomeEvent entities in bulk.
type OutcomeEventCreateBulk struct {
	config
	err      error
	builders []*OutcomeEventCreate
}

// Save creates the OutcomeEvent entities in the database.
func (_c *OutcomeEventCreateBulk) Save(ctx context.Context) ([]*OutcomeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutcomeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutcomeEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OutcomeEventCreateBulk) SaveX(ctx context.Context) []*OutcomeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
