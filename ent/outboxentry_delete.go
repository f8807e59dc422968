// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/outboxentry"
	"github.com/lernio/lernio/ent/predicate"
)

// OutboxEntryDelete is the builder for deleting a OutboxEntry entity.
type OutboxEntryDelete struct {
	config
	hooks    []Hook
	mutation *OutboxEntryMutation
}

// Where appends a list predicates to the OutboxEntryDelete builder.
func (_d *OutboxEntryDelete) Where(ps ...predicate.OutboxEntry) *OutboxEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OutboxEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OutboxEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OutboxEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(outboxentry.Table, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt))
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

// OutboxEntryDeleteOne is the builder for deleting a single OutboxEntry entity.
type OutboxEntryDeleteOne struct {
	_d *OutboxEntryDelete
}

// Where appends a list predicates to the OutboxEntryDelete builder.
func (_d *OutboxEntryDeleteOne) Where(ps ...predicate.OutboxEntry) *OutboxEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OutboxEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{outboxentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OutboxEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
