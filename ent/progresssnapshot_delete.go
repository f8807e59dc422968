// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/predicate"
	"github.com/lernio/lernio/ent/progresssnapshot"
)

// ProgressSnapshotDelete is the builder for deleting a ProgressSnapshot entity.
type ProgressSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ProgressSnapshotMutation
}

// Where appends a list predicates to the ProgressSnapshotDelete builder.
func (_d *ProgressSnapshotDelete) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProgressSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProgressSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProgressSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(progresssnapshot.Table, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
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

// ProgressSnapshotDeleteOne is the builder for deleting a single ProgressSnapshot entity.
type ProgressSnapshotDeleteOne struct {
	_d *ProgressSnapshotDelete
}

// Where appends a list predicates to the ProgressSnapshotDelete builder.
func (_d *ProgressSnapshotDeleteOne) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProgressSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{progresssnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProgressSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
