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
	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/predicate"
	"github.com/lernio/lernio/ent/schema"
)

// LessonPackageUpdate is the builder for updating LessonPackage entities.
type LessonPackageUpdate struct {
	config
	hooks    []Hook
	mutation *LessonPackageMutation
}

// Where appends a list predicates to the LessonPackageUpdate builder.
func (_u *LessonPackageUpdate) Where(ps ...predicate.LessonPackage) *LessonPackageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPackageID sets the "package_id" field.
func (_u *LessonPackageUpdate) SetPackageID(v string) *LessonPackageUpdate {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillablePackageID(v *string) *LessonPackageUpdate {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *LessonPackageUpdate) SetUnitID(v string) *LessonPackageUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillableUnitID(v *string) *LessonPackageUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonPackageUpdate) SetTitle(v string) *LessonPackageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillableTitle(v *string) *LessonPackageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonPackageUpdate) SetPosition(v int) *LessonPackageUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillablePosition(v *int) *LessonPackageUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonPackageUpdate) AddPosition(v int) *LessonPackageUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *LessonPackageUpdate) SetExercises(v []schema.ExerciseSpec) *LessonPackageUpdate {
	_u.mutation.SetExercises(v)
	return _u
}

// AppendExercises appends value to the "exercises" field.
func (_u *LessonPackageUpdate) AppendExercises(v []schema.ExerciseSpec) *LessonPackageUpdate {
	_u.mutation.AppendExercises(v)
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *LessonPackageUpdate) SetImportedAt(v time.Time) *LessonPackageUpdate {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillableImportedAt(v *time.Time) *LessonPackageUpdate {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the LessonPackageMutation object of the builder.
func (_u *LessonPackageUpdate) Mutation() *LessonPackageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonPackageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPackageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonPackageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPackageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPackageUpdate) check() error {
	if v, ok := _u.mutation.PackageID(); ok {
		if err := lessonpackage.PackageIDValidator(v); err != nil {
			return &ValidationError{Name: "package_id", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.package_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := lessonpackage.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lessonpackage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPackageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonpackage.Table, lessonpackage.Columns, sqlgraph.NewFieldSpec(lessonpackage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PackageID(); ok {
		_spec.SetField(lessonpackage.FieldPackageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(lessonpackage.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonpackage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lessonpackage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lessonpackage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(lessonpackage.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExercises(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonpackage.FieldExercises, value)
		})
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(lessonpackage.FieldImportedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonPackageUpdateOne is the builder for updating a single LessonPackage entity.
type LessonPackageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonPackageMutation
}

// SetPackageID sets the "package_id" field.
func (_u *LessonPackageUpdateOne) SetPackageID(v string) *LessonPackageUpdateOne {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillablePackageID(v *string) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *LessonPackageUpdateOne) SetUnitID(v string) *LessonPackageUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillableUnitID(v *string) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonPackageUpdateOne) SetTitle(v string) *LessonPackageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillableTitle(v *string) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonPackageUpdateOne) SetPosition(v int) *LessonPackageUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillablePosition(v *int) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonPackageUpdateOne) AddPosition(v int) *LessonPackageUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *LessonPackageUpdateOne) SetExercises(v []schema.ExerciseSpec) *LessonPackageUpdateOne {
	_u.mutation.SetExercises(v)
	return _u
}

// AppendExercises appends value to the "exercises" field.
func (_u *LessonPackageUpdateOne) AppendExercises(v []schema.ExerciseSpec) *LessonPackageUpdateOne {
	_u.mutation.AppendExercises(v)
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *LessonPackageUpdateOne) SetImportedAt(v time.Time) *LessonPackageUpdateOne {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillableImportedAt(v *time.Time) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the LessonPackageMutation object of the builder.
func (_u *LessonPackageUpdateOne) Mutation() *LessonPackageMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonPackageUpdate builder.
func (_u *LessonPackageUpdateOne) Where(ps ...predicate.LessonPackage) *LessonPackageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonPackageUpdateOne) Select(field string, fields ...string) *LessonPackageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonPackage entity.
func (_u *LessonPackageUpdateOne) Save(ctx context.Context) (*LessonPackage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPackageUpdateOne) SaveX(ctx context.Context) *LessonPackage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonPackageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPackageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPackageUpdateOne) check() error {
	if v, ok := _u.mutation.PackageID(); ok {
		if err := lessonpackage.PackageIDValidator(v); err != nil {
			return &ValidationError{Name: "package_id", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.package_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := lessonpackage.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lessonpackage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPackageUpdateOne) sqlSave(ctx context.Context) (_node *LessonPackage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonpackage.Table, lessonpackage.Columns, sqlgraph.NewFieldSpec(lessonpackage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonPackage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonpackage.FieldID)
		for _, f := range fields {
			if !lessonpackage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonpackage.FieldID {
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
	if value, ok := _u.mutation.PackageID(); ok {
		_spec.SetField(lessonpackage.FieldPackageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(lessonpackage.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonpackage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lessonpackage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lessonpackage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(lessonpackage.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExercises(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonpackage.FieldExercises, value)
		})
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(lessonpackage.FieldImportedAt, field.TypeTime, value)
	}
	_node = &LessonPackage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
