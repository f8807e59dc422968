// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/outcomeevent"
	"github.com/lernio/lernio/ent/predicate"
)

// OutcomeEventDelete is the builder for deleting a OutcomeEvent entity.
type OutcomeEventDelete struct {
	config
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// Where appends a list predicates to the OutcomeEventDelete builder.
func (_d *OutcomeEventDelete) Where(ps ...predicate.OutcomeEvent) *OutcomeEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OutcomeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OutcomeEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OutcomeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(outcomeevent.Table, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// OutcomeEventDeleteOne is the builder for deleting a single OutcomeEvent entity.
type OutcomeEventDeleteOne struct {
	_d *OutcomeEventDelete
}

// Where appends a list predicates to the OutcomeEventDelete builder.
func (_d *OutcomeEventDeleteOne) Where(ps ...predicate.OutcomeEvent) *OutcomeEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OutcomeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{outcomeevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OutcomeEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
