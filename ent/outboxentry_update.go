// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernio/lernio/ent/outboxentry"
	"github.com/lernio/lernio/ent/predicate"
)

// OutboxEntryUpdate is the builder for updating OutboxEntry entities.
type OutboxEntryUpdate struct {
	config
	hooks    []Hook
	mutation *OutboxEntryMutation
}

// Where appends a list predicates to the OutboxEntryUpdate builder.
func (_u *OutboxEntryUpdate) Where(ps ...predicate.OutboxEntry) *OutboxEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *OutboxEntryUpdate) SetSessionID(v string) *OutboxEntryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableSessionID(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OutboxEntryUpdate) SetUserID(v string) *OutboxEntryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableUserID(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *OutboxEntryUpdate) SetUnitID(v string) *OutboxEntryUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableUnitID(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxEntryUpdate) SetPayload(v map[string]interface{}) *OutboxEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboxEntryUpdate) SetAttempts(v int) *OutboxEntryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableAttempts(v *int) *OutboxEntryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboxEntryUpdate) AddAttempts(v int) *OutboxEntryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *OutboxEntryUpdate) SetNextAttemptAt(v time.Time) *OutboxEntryUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableNextAttemptAt(v *time.Time) *OutboxEntryUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_u *OutboxEntryUpdate) Mutation() *OutboxEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboxEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboxEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxEntryUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := outboxentry.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := outboxentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := outboxentry.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxentry.Table, outboxentry.Columns, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(outboxentry.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(outboxentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(outboxentry.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboxEntryUpdateOne is the builder for updating a single OutboxEntry entity.
type OutboxEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboxEntryMutation
}

// SetSessionID sets the "session_id" field.
func (_u *OutboxEntryUpdateOne) SetSessionID(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableSessionID(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OutboxEntryUpdateOne) SetUserID(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableUserID(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *OutboxEntryUpdateOne) SetUnitID(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableUnitID(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxEntryUpdateOne) SetPayload(v map[string]interface{}) *OutboxEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboxEntryUpdateOne) SetAttempts(v int) *OutboxEntryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableAttempts(v *int) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboxEntryUpdateOne) AddAttempts(v int) *OutboxEntryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *OutboxEntryUpdateOne) SetNextAttemptAt(v time.Time) *OutboxEntryUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableNextAttemptAt(v *time.Time) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_u *OutboxEntryUpdateOne) Mutation() *OutboxEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutboxEntryUpdate builder.
func (_u *OutboxEntryUpdateOne) Where(ps ...predicate.OutboxEntry) *OutboxEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboxEntryUpdateOne) Select(field string, fields ...string) *OutboxEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboxEntry entity.
func (_u *OutboxEntryUpdateOne) Save(ctx context.Context) (*OutboxEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxEntryUpdateOne) SaveX(ctx context.Context) *OutboxEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboxEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxEntryUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := outboxentry.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := outboxentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := outboxentry.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxEntryUpdateOne) sqlSave(ctx context.Context) (_node *OutboxEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxentry.Table, outboxentry.Columns, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboxEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboxentry.FieldID)
		for _, f := range fields {
			if !outboxentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboxentry.FieldID {
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
		_spec.SetField(outboxentry.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(outboxentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(outboxentry.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	_node = &OutboxEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
