// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/predicate"
)

// LessonPackageDelete is the builder for deleting a LessonPackage entity.
type LessonPackageDelete struct {
	config
	hooks    []Hook
	mutation *LessonPackageMutation
}

// Where appends a list predicates to the LessonPackageDelete builder.
func (_d *LessonPackageDelete) Where(ps ...predicate.LessonPackage) *LessonPackageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LessonPackageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonPackageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LessonPackageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lessonpackage.Table, sqlgraph.NewFieldSpec(lessonpackage.FieldID, field.TypeInt))
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

// LessonPackageDeleteOne is the builder for deleting a single LessonPackage entity.
type LessonPackageDeleteOne struct {
	_d *LessonPackageDelete
}

// Where appends a list predicates to the LessonPackageDelete builder.
func (_d *LessonPackageDeleteOne) Where(ps ...predicate.LessonPackage) *LessonPackageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LessonPackageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lessonpackage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonPackageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
