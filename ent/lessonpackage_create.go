// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/schema"
)

// LessonPackageCreate is the builder for creating a LessonPackage entity.
type LessonPackageCreate struct {
	config
	mutation *LessonPackageMutation
	hooks    []Hook
}

// SetPackageID sets the "package_id" field.
func (_c *LessonPackageCreate) SetPackageID(v string) *LessonPackageCreate {
	_c.mutation.SetPackageID(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *LessonPackageCreate) SetUnitID(v string) *LessonPackageCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonPackageCreate) SetTitle(v string) *LessonPackageCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LessonPackageCreate) SetPosition(v int) *LessonPackageCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *LessonPackageCreate) SetNillablePosition(v *int) *LessonPackageCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetExercises sets the "exercises" field.
func (_c *LessonPackageCreate) SetExercises(v []schema.ExerciseSpec) *LessonPackageCreate {
	_c.mutation.SetExercises(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *LessonPackageCreate) SetImportedAt(v time.Time) *LessonPackageCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *LessonPackageCreate) SetNillableImportedAt(v *time.Time) *LessonPackageCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// Mutation returns the LessonPackageMutation object of the builder.
func (_c *LessonPackageCreate) Mutation() *LessonPackageMutation {
	return _c.mutation
}

// Save creates the LessonPackage in the database.
func (_c *LessonPackageCreate) Save(ctx context.Context) (*LessonPackage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonPackageCreate) SaveX(ctx context.Context) *LessonPackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPackageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPackageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonPackageCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := lessonpackage.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := lessonpackage.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonPackageCreate) check() error {
	if _, ok := _c.mutation.PackageID(); !ok {
		return &ValidationError{Name: "package_id", err: errors.New(`ent: missing required field "LessonPackage.package_id"`)}
	}
	if v, ok := _c.mutation.PackageID(); ok {
		if err := lessonpackage.PackageIDValidator(v); err != nil {
			return &ValidationError{Name: "package_id", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.package_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "LessonPackage.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := lessonpackage.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LessonPackage.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lessonpackage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonPackage.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "LessonPackage.position"`)}
	}
	if _, ok := _c.mutation.Exercises(); !ok {
		return &ValidationError{Name: "exercises", err: errors.New(`ent: missing required field "LessonPackage.exercises"`)}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "LessonPackage.imported_at"`)}
	}
	return nil
}

func (_c *LessonPackageCreate) sqlSave(ctx context.Context) (*LessonPackage, error) {
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

func (_c *LessonPackageCreate) createSpec() (*LessonPackage, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonPackage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonpackage.Table, sqlgraph.NewFieldSpec(lessonpackage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PackageID(); ok {
		_spec.SetField(lessonpackage.FieldPackageID, field.TypeString, value)
		_node.PackageID = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(lessonpackage.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lessonpackage.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(lessonpackage.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Exercises(); ok {
		_spec.SetField(lessonpackage.FieldExercises, field.TypeJSON, value)
		_node.Exercises = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(lessonpackage.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// LessonPackageCreateBulk is the builder for creating many LessonPackage entities in bulk.
type LessonPackageCreateBulk struct {
	config
	err      error
	builders []*LessonPackageCreate
}

// Save creates the LessonPackage entities in the database.
func (_c *LessonPackageCreateBulk) Save(ctx context.Context) ([]*LessonPackage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonPackage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonPackageMutation)
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
func (_c *LessonPackageCreateBulk) SaveX(ctx context.Context) []*LessonPackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPackageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPackageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
