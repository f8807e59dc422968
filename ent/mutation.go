// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/outboxentry"
	"github.com/lernio/lernio/ent/outcomeevent"
	"github.com/lernio/lernio/ent/predicate"
	"github.com/lernio/lernio/ent/progresssnapshot"
	"github.com/lernio/lernio/ent/schema"
	"github.com/lernio/lernio/ent/sessionevent"
	"github.com/lernio/lernio/ent/unit"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLessonPackage    = "LessonPackage"
	TypeOutboxEntry      = "OutboxEntry"
	TypeOutcomeEvent     = "OutcomeEvent"
	TypeProgressSnapshot = "ProgressSnapshot"
	TypeSessionEvent     = "SessionEvent"
	TypeUnit             = "Unit"
)

// LessonPackageMutation represents an operation that mutates the LessonPackage nodes in the graph.
type LessonPackageMutation struct {
	config
	op              Op
	typ             string
	id              *int
	package_id      *string
	unit_id         *string
	title           *string
	position        *int
	addposition     *int
	exercises       *[]schema.ExerciseSpec
	appendexercises []schema.ExerciseSpec
	imported_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*LessonPackage, error)
	predicates      []predicate.LessonPackage
}

var _ ent.Mutation = (*LessonPackageMutation)(nil)

// lessonpackageOption allows management of the mutation configuration using functional options.
type lessonpackageOption func(*LessonPackageMutation)

// newLessonPackageMutation creates new mutation for the LessonPackage entity.
func newLessonPackageMutation(c config, op Op, opts ...lessonpackageOption) *LessonPackageMutation {
	m := &LessonPackageMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonPackage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonPackageID sets the ID field of the mutation.
func withLessonPackageID(id int) lessonpackageOption {
	return func(m *LessonPackageMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonPackage
		)
		m.oldValue = func(ctx context.Context) (*LessonPackage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonPackage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonPackage sets the old LessonPackage of the mutation.
func withLessonPackage(node *LessonPackage) lessonpackageOption {
	return func(m *LessonPackageMutation) {
		m.oldValue = func(context.Context) (*LessonPackage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonPackageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonPackageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonPackageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonPackageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonPackage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPackageID sets the "package_id" field.
func (m *LessonPackageMutation) SetPackageID(s string) {
	m.package_id = &s
}

// PackageID returns the value of the "package_id" field in the mutation.
func (m *LessonPackageMutation) PackageID() (r string, exists bool) {
	v := m.package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageID returns the old "package_id" field's value of the LessonPackage entity.
// If the LessonPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPackageMutation) OldPackageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageID: %w", err)
	}
	return oldValue.PackageID, nil
}

// ResetPackageID resets all changes to the "package_id" field.
func (m *LessonPackageMutation) ResetPackageID() {
	m.package_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *LessonPackageMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *LessonPackageMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the LessonPackage entity.
// If the LessonPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPackageMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *LessonPackageMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetTitle sets the "title" field.
func (m *LessonPackageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LessonPackageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the LessonPackage entity.
// If the LessonPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPackageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LessonPackageMutation) ResetTitle() {
	m.title = nil
}

// SetPosition sets the "position" field.
func (m *LessonPackageMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *LessonPackageMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the LessonPackage entity.
// If the LessonPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPackageMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *LessonPackageMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *LessonPackageMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *LessonPackageMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetExercises sets the "exercises" field.
func (m *LessonPackageMutation) SetExercises(ss []schema.ExerciseSpec) {
	m.exercises = &ss
	m.appendexercises = nil
}

// Exercises returns the value of the "exercises" field in the mutation.
func (m *LessonPackageMutation) Exercises() (r []schema.ExerciseSpec, exists bool) {
	v := m.exercises
	if v == nil {
		return
	}
	return *v, true
}

// OldExercises returns the old "exercises" field's value of the LessonPackage entity.
// If the LessonPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPackageMutation) OldExercises(ctx context.Context) (v []schema.ExerciseSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercises is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercises requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercises: %w", err)
	}
	return oldValue.Exercises, nil
}

// AppendExercises adds ss to the "exercises" field.
func (m *LessonPackageMutation) AppendExercises(ss []schema.ExerciseSpec) {
	m.appendexercises = append(m.appendexercises, ss...)
}

// AppendedExercises returns the list of values that were appended to the "exercises" field in this mutation.
func (m *LessonPackageMutation) AppendedExercises() ([]schema.ExerciseSpec, bool) {
	if len(m.appendexercises) == 0 {
		return nil, false
	}
	return m.appendexercises, true
}

// ResetExercises resets all changes to the "exercises" field.
func (m *LessonPackageMutation) ResetExercises() {
	m.exercises = nil
	m.appendexercises = nil
}

// SetImportedAt sets the "imported_at" field.
func (m *LessonPackageMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *LessonPackageMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the LessonPackage entity.
// If the LessonPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPackageMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *LessonPackageMutation) ResetImportedAt() {
	m.imported_at = nil
}

// Where appends a list predicates to the LessonPackageMutation builder.
func (m *LessonPackageMutation) Where(ps ...predicate.LessonPackage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonPackageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonPackageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonPackage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonPackageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonPackageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonPackage).
func (m *LessonPackageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonPackageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.package_id != nil {
		fields = append(fields, lessonpackage.FieldPackageID)
	}
	if m.unit_id != nil {
		fields = append(fields, lessonpackage.FieldUnitID)
	}
	if m.title != nil {
		fields = append(fields, lessonpackage.FieldTitle)
	}
	if m.position != nil {
		fields = append(fields, lessonpackage.FieldPosition)
	}
	if m.exercises != nil {
		fields = append(fields, lessonpackage.FieldExercises)
	}
	if m.imported_at != nil {
		fields = append(fields, lessonpackage.FieldImportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonPackageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonpackage.FieldPackageID:
		return m.PackageID()
	case lessonpackage.FieldUnitID:
		return m.UnitID()
	case lessonpackage.FieldTitle:
		return m.Title()
	case lessonpackage.FieldPosition:
		return m.Position()
	case lessonpackage.FieldExercises:
		return m.Exercises()
	case lessonpackage.FieldImportedAt:
		return m.ImportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonPackageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonpackage.FieldPackageID:
		return m.OldPackageID(ctx)
	case lessonpackage.FieldUnitID:
		return m.OldUnitID(ctx)
	case lessonpackage.FieldTitle:
		return m.OldTitle(ctx)
	case lessonpackage.FieldPosition:
		return m.OldPosition(ctx)
	case lessonpackage.FieldExercises:
		return m.OldExercises(ctx)
	case lessonpackage.FieldImportedAt:
		return m.OldImportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LessonPackage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonPackageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonpackage.FieldPackageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageID(v)
		return nil
	case lessonpackage.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case lessonpackage.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lessonpackage.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case lessonpackage.FieldExercises:
		v, ok := value.([]schema.ExerciseSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercises(v)
		return nil
	case lessonpackage.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LessonPackage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonPackageMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, lessonpackage.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonPackageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessonpackage.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonPackageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessonpackage.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown LessonPackage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonPackageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonPackageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonPackageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LessonPackage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonPackageMutation) ResetField(name string) error {
	switch name {
	case lessonpackage.FieldPackageID:
		m.ResetPackageID()
		return nil
	case lessonpackage.FieldUnitID:
		m.ResetUnitID()
		return nil
	case lessonpackage.FieldTitle:
		m.ResetTitle()
		return nil
	case lessonpackage.FieldPosition:
		m.ResetPosition()
		return nil
	case lessonpackage.FieldExercises:
		m.ResetExercises()
		return nil
	case lessonpackage.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonPackage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonPackageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonPackageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonPackageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonPackageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonPackageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonPackageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonPackageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonPackage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonPackageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonPackage edge %s", name)
}

// OutboxEntryMutation represents an operation that mutates the OutboxEntry nodes in the graph.
type OutboxEntryMutation struct {
	config
	op              Op
	typ             string
	id              *int
	session_id      *string
	user_id         *string
	unit_id         *string
	payload         *map[string]interface{}
	attempts        *int
	addattempts     *int
	next_attempt_at *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*OutboxEntry, error)
	predicates      []predicate.OutboxEntry
}

var _ ent.Mutation = (*OutboxEntryMutation)(nil)

// outboxentryOption allows management of the mutation configuration using functional options.
type outboxentryOption func(*OutboxEntryMutation)

// newOutboxEntryMutation creates new mutation for the OutboxEntry entity.
func newOutboxEntryMutation(c config, op Op, opts ...outboxentryOption) *OutboxEntryMutation {
	m := &OutboxEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxEntryID sets the ID field of the mutation.
func withOutboxEntryID(id int) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxEntry
		)
		m.oldValue = func(ctx context.Context) (*OutboxEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxEntry sets the old OutboxEntry of the mutation.
func withOutboxEntry(node *OutboxEntry) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		m.oldValue = func(context.Context) (*OutboxEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *OutboxEntryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *OutboxEntryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *OutboxEntryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *OutboxEntryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OutboxEntryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OutboxEntryMutation) ResetUserID() {
	m.user_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *OutboxEntryMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *OutboxEntryMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *OutboxEntryMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetPayload sets the "payload" field.
func (m *OutboxEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OutboxEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *OutboxEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetAttempts sets the "attempts" field.
func (m *OutboxEntryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *OutboxEntryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *OutboxEntryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *OutboxEntryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *OutboxEntryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *OutboxEntryMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *OutboxEntryMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *OutboxEntryMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboxEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboxEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboxEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OutboxEntryMutation builder.
func (m *OutboxEntryMutation) Where(ps ...predicate.OutboxEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxEntry).
func (m *OutboxEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, outboxentry.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, outboxentry.FieldUserID)
	}
	if m.unit_id != nil {
		fields = append(fields, outboxentry.FieldUnitID)
	}
	if m.payload != nil {
		fields = append(fields, outboxentry.FieldPayload)
	}
	if m.attempts != nil {
		fields = append(fields, outboxentry.FieldAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, outboxentry.FieldNextAttemptAt)
	}
	if m.created_at != nil {
		fields = append(fields, outboxentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxentry.FieldSessionID:
		return m.SessionID()
	case outboxentry.FieldUserID:
		return m.UserID()
	case outboxentry.FieldUnitID:
		return m.UnitID()
	case outboxentry.FieldPayload:
		return m.Payload()
	case outboxentry.FieldAttempts:
		return m.Attempts()
	case outboxentry.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case outboxentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case outboxentry.FieldUserID:
		return m.OldUserID(ctx)
	case outboxentry.FieldUnitID:
		return m.OldUnitID(ctx)
	case outboxentry.FieldPayload:
		return m.OldPayload(ctx)
	case outboxentry.FieldAttempts:
		return m.OldAttempts(ctx)
	case outboxentry.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case outboxentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case outboxentry.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case outboxentry.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case outboxentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case outboxentry.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case outboxentry.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case outboxentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxEntryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, outboxentry.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboxentry.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboxentry.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OutboxEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ResetField(name string) error {
	switch name {
	case outboxentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case outboxentry.FieldUserID:
		m.ResetUserID()
		return nil
	case outboxentry.FieldUnitID:
		m.ResetUnitID()
		return nil
	case outboxentry.FieldPayload:
		m.ResetPayload()
		return nil
	case outboxentry.FieldAttempts:
		m.ResetAttempts()
		return nil
	case outboxentry.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case outboxentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry edge %s", name)
}

// OutcomeEventMutation represents an operation that mutates the OutcomeEvent nodes in the graph.
type OutcomeEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	user_id       *string
	unit_id       *string
	lesson_id     *string
	exercise_id   *string
	objective_id  *string
	correct       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OutcomeEvent, error)
	predicates    []predicate.OutcomeEvent
}

var _ ent.Mutation = (*OutcomeEventMutation)(nil)

// outcomeeventOption allows management of the mutation configuration using functional options.
type outcomeeventOption func(*OutcomeEventMutation)

// newOutcomeEventMutation creates new mutation for the OutcomeEvent entity.
func newOutcomeEventMutation(c config, op Op, opts ...outcomeeventOption) *OutcomeEventMutation {
	m := &OutcomeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOutcomeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutcomeEventID sets the ID field of the mutation.
func withOutcomeEventID(id int) outcomeeventOption {
	return func(m *OutcomeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OutcomeEvent
		)
		m.oldValue = func(ctx context.Context) (*OutcomeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutcomeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutcomeEvent sets the old OutcomeEvent of the mutation.
func withOutcomeEvent(node *OutcomeEvent) outcomeeventOption {
	return func(m *OutcomeEventMutation) {
		m.oldValue = func(context.Context) (*OutcomeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutcomeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutcomeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutcomeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutcomeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutcomeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *OutcomeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *OutcomeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *OutcomeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *OutcomeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *OutcomeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *OutcomeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *OutcomeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *OutcomeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *OutcomeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *OutcomeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *OutcomeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *OutcomeEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OutcomeEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OutcomeEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *OutcomeEventMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *OutcomeEventMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *OutcomeEventMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *OutcomeEventMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *OutcomeEventMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *OutcomeEventMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetExerciseID sets the "exercise_id" field.
func (m *OutcomeEventMutation) SetExerciseID(s string) {
	m.exercise_id = &s
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *OutcomeEventMutation) ExerciseID() (r string, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldExerciseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *OutcomeEventMutation) ResetExerciseID() {
	m.exercise_id = nil
}

// SetObjectiveID sets the "objective_id" field.
func (m *OutcomeEventMutation) SetObjectiveID(s string) {
	m.objective_id = &s
}

// ObjectiveID returns the value of the "objective_id" field in the mutation.
func (m *OutcomeEventMutation) ObjectiveID() (r string, exists bool) {
	v := m.objective_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectiveID returns the old "objective_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldObjectiveID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectiveID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectiveID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectiveID: %w", err)
	}
	return oldValue.ObjectiveID, nil
}

// ResetObjectiveID resets all changes to the "objective_id" field.
func (m *OutcomeEventMutation) ResetObjectiveID() {
	m.objective_id = nil
}

// SetCorrect sets the "correct" field.
func (m *OutcomeEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *OutcomeEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *OutcomeEventMutation) ResetCorrect() {
	m.correct = nil
}

// Where appends a list predicates to the OutcomeEventMutation builder.
func (m *OutcomeEventMutation) Where(ps ...predicate.OutcomeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutcomeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutcomeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutcomeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutcomeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutcomeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutcomeEvent).
func (m *OutcomeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutcomeEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, outcomeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, outcomeevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, outcomeevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, outcomeevent.FieldUserID)
	}
	if m.unit_id != nil {
		fields = append(fields, outcomeevent.FieldUnitID)
	}
	if m.lesson_id != nil {
		fields = append(fields, outcomeevent.FieldLessonID)
	}
	if m.exercise_id != nil {
		fields = append(fields, outcomeevent.FieldExerciseID)
	}
	if m.objective_id != nil {
		fields = append(fields, outcomeevent.FieldObjectiveID)
	}
	if m.correct != nil {
		fields = append(fields, outcomeevent.FieldCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutcomeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.Sequence()
	case outcomeevent.FieldTimestamp:
		return m.Timestamp()
	case outcomeevent.FieldSessionID:
		return m.SessionID()
	case outcomeevent.FieldUserID:
		return m.UserID()
	case outcomeevent.FieldUnitID:
		return m.UnitID()
	case outcomeevent.FieldLessonID:
		return m.LessonID()
	case outcomeevent.FieldExerciseID:
		return m.ExerciseID()
	case outcomeevent.FieldObjectiveID:
		return m.ObjectiveID()
	case outcomeevent.FieldCorrect:
		return m.Correct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutcomeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.OldSequence(ctx)
	case outcomeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case outcomeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case outcomeevent.FieldUserID:
		return m.OldUserID(ctx)
	case outcomeevent.FieldUnitID:
		return m.OldUnitID(ctx)
	case outcomeevent.FieldLessonID:
		return m.OldLessonID(ctx)
	case outcomeevent.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case outcomeevent.FieldObjectiveID:
		return m.OldObjectiveID(ctx)
	case outcomeevent.FieldCorrect:
		return m.OldCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outcomeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case outcomeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case outcomeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case outcomeevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case outcomeevent.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case outcomeevent.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case outcomeevent.FieldExerciseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case outcomeevent.FieldObjectiveID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectiveID(v)
		return nil
	case outcomeevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutcomeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, outcomeevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutcomeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outcomeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutcomeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutcomeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutcomeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OutcomeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutcomeEventMutation) ResetField(name string) error {
	switch name {
	case outcomeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case outcomeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case outcomeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case outcomeevent.FieldUserID:
		m.ResetUserID()
		return nil
	case outcomeevent.FieldUnitID:
		m.ResetUnitID()
		return nil
	case outcomeevent.FieldLessonID:
		m.ResetLessonID()
		return nil
	case outcomeevent.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case outcomeevent.FieldObjectiveID:
		m.ResetObjectiveID()
		return nil
	case outcomeevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutcomeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutcomeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutcomeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutcomeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutcomeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutcomeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutcomeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutcomeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutcomeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutcomeEvent edge %s", name)
}

// ProgressSnapshotMutation represents an operation that mutates the ProgressSnapshot nodes in the graph.
type ProgressSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	unit_id       *string
	user_id       *string
	items         *[]schema.ObjectiveProgressRow
	appenditems   []schema.ObjectiveProgressRow
	computed_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProgressSnapshot, error)
	predicates    []predicate.ProgressSnapshot
}

var _ ent.Mutation = (*ProgressSnapshotMutation)(nil)

// progresssnapshotOption allows management of the mutation configuration using functional options.
type progresssnapshotOption func(*ProgressSnapshotMutation)

// newProgressSnapshotMutation creates new mutation for the ProgressSnapshot entity.
func newProgressSnapshotMutation(c config, op Op, opts ...progresssnapshotOption) *ProgressSnapshotMutation {
	m := &ProgressSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressSnapshotID sets the ID field of the mutation.
func withProgressSnapshotID(id int) progresssnapshotOption {
	return func(m *ProgressSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ProgressSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressSnapshot sets the old ProgressSnapshot of the mutation.
func withProgressSnapshot(node *ProgressSnapshot) progresssnapshotOption {
	return func(m *ProgressSnapshotMutation) {
		m.oldValue = func(context.Context) (*ProgressSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUnitID sets the "unit_id" field.
func (m *ProgressSnapshotMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *ProgressSnapshotMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the ProgressSnapshot entity.
// If the ProgressSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressSnapshotMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *ProgressSnapshotMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ProgressSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProgressSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProgressSnapshot entity.
// If the ProgressSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProgressSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetItems sets the "items" field.
func (m *ProgressSnapshotMutation) SetItems(spr []schema.ObjectiveProgressRow) {
	m.items = &spr
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *ProgressSnapshotMutation) Items() (r []schema.ObjectiveProgressRow, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the ProgressSnapshot entity.
// If the ProgressSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressSnapshotMutation) OldItems(ctx context.Context) (v []schema.ObjectiveProgressRow, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds spr to the "items" field.
func (m *ProgressSnapshotMutation) AppendItems(spr []schema.ObjectiveProgressRow) {
	m.appenditems = append(m.appenditems, spr...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *ProgressSnapshotMutation) AppendedItems() ([]schema.ObjectiveProgressRow, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *ProgressSnapshotMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *ProgressSnapshotMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *ProgressSnapshotMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the ProgressSnapshot entity.
// If the ProgressSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressSnapshotMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *ProgressSnapshotMutation) ResetComputedAt() {
	m.computed_at = nil
}

// Where appends a list predicates to the ProgressSnapshotMutation builder.
func (m *ProgressSnapshotMutation) Where(ps ...predicate.ProgressSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressSnapshot).
func (m *ProgressSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.unit_id != nil {
		fields = append(fields, progresssnapshot.FieldUnitID)
	}
	if m.user_id != nil {
		fields = append(fields, progresssnapshot.FieldUserID)
	}
	if m.items != nil {
		fields = append(fields, progresssnapshot.FieldItems)
	}
	if m.computed_at != nil {
		fields = append(fields, progresssnapshot.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progresssnapshot.FieldUnitID:
		return m.UnitID()
	case progresssnapshot.FieldUserID:
		return m.UserID()
	case progresssnapshot.FieldItems:
		return m.Items()
	case progresssnapshot.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progresssnapshot.FieldUnitID:
		return m.OldUnitID(ctx)
	case progresssnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case progresssnapshot.FieldItems:
		return m.OldItems(ctx)
	case progresssnapshot.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progresssnapshot.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case progresssnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case progresssnapshot.FieldItems:
		v, ok := value.([]schema.ObjectiveProgressRow)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case progresssnapshot.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProgressSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProgressSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressSnapshotMutation) ResetField(name string) error {
	switch name {
	case progresssnapshot.FieldUnitID:
		m.ResetUnitID()
		return nil
	case progresssnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case progresssnapshot.FieldItems:
		m.ResetItems()
		return nil
	case progresssnapshot.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressSnapshot edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	user_id               *string
	unit_id               *string
	lesson_id             *string
	action                *string
	exercises_answered    *int
	addexercises_answered *int
	exercises_correct     *int
	addexercises_correct  *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SessionEvent, error)
	predicates            []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *SessionEventMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *SessionEventMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *SessionEventMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *SessionEventMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *SessionEventMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *SessionEventMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetExercisesAnswered sets the "exercises_answered" field.
func (m *SessionEventMutation) SetExercisesAnswered(i int) {
	m.exercises_answered = &i
	m.addexercises_answered = nil
}

// ExercisesAnswered returns the value of the "exercises_answered" field in the mutation.
func (m *SessionEventMutation) ExercisesAnswered() (r int, exists bool) {
	v := m.exercises_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldExercisesAnswered returns the old "exercises_answered" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldExercisesAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercisesAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercisesAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercisesAnswered: %w", err)
	}
	return oldValue.ExercisesAnswered, nil
}

// AddExercisesAnswered adds i to the "exercises_answered" field.
func (m *SessionEventMutation) AddExercisesAnswered(i int) {
	if m.addexercises_answered != nil {
		*m.addexercises_answered += i
	} else {
		m.addexercises_answered = &i
	}
}

// AddedExercisesAnswered returns the value that was added to the "exercises_answered" field in this mutation.
func (m *SessionEventMutation) AddedExercisesAnswered() (r int, exists bool) {
	v := m.addexercises_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetExercisesAnswered resets all changes to the "exercises_answered" field.
func (m *SessionEventMutation) ResetExercisesAnswered() {
	m.exercises_answered = nil
	m.addexercises_answered = nil
}

// SetExercisesCorrect sets the "exercises_correct" field.
func (m *SessionEventMutation) SetExercisesCorrect(i int) {
	m.exercises_correct = &i
	m.addexercises_correct = nil
}

// ExercisesCorrect returns the value of the "exercises_correct" field in the mutation.
func (m *SessionEventMutation) ExercisesCorrect() (r int, exists bool) {
	v := m.exercises_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldExercisesCorrect returns the old "exercises_correct" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldExercisesCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercisesCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercisesCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercisesCorrect: %w", err)
	}
	return oldValue.ExercisesCorrect, nil
}

// AddExercisesCorrect adds i to the "exercises_correct" field.
func (m *SessionEventMutation) AddExercisesCorrect(i int) {
	if m.addexercises_correct != nil {
		*m.addexercises_correct += i
	} else {
		m.addexercises_correct = &i
	}
}

// AddedExercisesCorrect returns the value that was added to the "exercises_correct" field in this mutation.
func (m *SessionEventMutation) AddedExercisesCorrect() (r int, exists bool) {
	v := m.addexercises_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetExercisesCorrect resets all changes to the "exercises_correct" field.
func (m *SessionEventMutation) ResetExercisesCorrect() {
	m.exercises_correct = nil
	m.addexercises_correct = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sessionevent.FieldUserID)
	}
	if m.unit_id != nil {
		fields = append(fields, sessionevent.FieldUnitID)
	}
	if m.lesson_id != nil {
		fields = append(fields, sessionevent.FieldLessonID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.exercises_answered != nil {
		fields = append(fields, sessionevent.FieldExercisesAnswered)
	}
	if m.exercises_correct != nil {
		fields = append(fields, sessionevent.FieldExercisesCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldUserID:
		return m.UserID()
	case sessionevent.FieldUnitID:
		return m.UnitID()
	case sessionevent.FieldLessonID:
		return m.LessonID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldExercisesAnswered:
		return m.ExercisesAnswered()
	case sessionevent.FieldExercisesCorrect:
		return m.ExercisesCorrect()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldUserID:
		return m.OldUserID(ctx)
	case sessionevent.FieldUnitID:
		return m.OldUnitID(ctx)
	case sessionevent.FieldLessonID:
		return m.OldLessonID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldExercisesAnswered:
		return m.OldExercisesAnswered(ctx)
	case sessionevent.FieldExercisesCorrect:
		return m.OldExercisesCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionevent.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case sessionevent.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldExercisesAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercisesAnswered(v)
		return nil
	case sessionevent.FieldExercisesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercisesCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addexercises_answered != nil {
		fields = append(fields, sessionevent.FieldExercisesAnswered)
	}
	if m.addexercises_correct != nil {
		fields = append(fields, sessionevent.FieldExercisesCorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldExercisesAnswered:
		return m.AddedExercisesAnswered()
	case sessionevent.FieldExercisesCorrect:
		return m.AddedExercisesCorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldExercisesAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExercisesAnswered(v)
		return nil
	case sessionevent.FieldExercisesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExercisesCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionevent.FieldUnitID:
		m.ResetUnitID()
		return nil
	case sessionevent.FieldLessonID:
		m.ResetLessonID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldExercisesAnswered:
		m.ResetExercisesAnswered()
		return nil
	case sessionevent.FieldExercisesCorrect:
		m.ResetExercisesCorrect()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// UnitMutation represents an operation that mutates the Unit nodes in the graph.
type UnitMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	unit_id            *string
	title              *string
	objectives         *[]schema.ObjectiveSpec
	appendobjectives   []schema.ObjectiveSpec
	lesson_order       *[]string
	appendlesson_order []string
	imported_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Unit, error)
	predicates         []predicate.Unit
}

var _ ent.Mutation = (*UnitMutation)(nil)

// unitOption allows management of the mutation configuration using functional options.
type unitOption func(*UnitMutation)

// newUnitMutation creates new mutation for the Unit entity.
func newUnitMutation(c config, op Op, opts ...unitOption) *UnitMutation {
	m := &UnitMutation{
		config:        c,
		op:            op,
		typ:           TypeUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitID sets the ID field of the mutation.
func withUnitID(id int) unitOption {
	return func(m *UnitMutation) {
		var (
			err   error
			once  sync.Once
			value *Unit
		)
		m.oldValue = func(ctx context.Context) (*Unit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Unit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnit sets the old Unit of the mutation.
func withUnit(node *Unit) unitOption {
	return func(m *UnitMutation) {
		m.oldValue = func(context.Context) (*Unit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Unit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUnitID sets the "unit_id" field.
func (m *UnitMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *UnitMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *UnitMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetTitle sets the "title" field.
func (m *UnitMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *UnitMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *UnitMutation) ResetTitle() {
	m.title = nil
}

// SetObjectives sets the "objectives" field.
func (m *UnitMutation) SetObjectives(ss []schema.ObjectiveSpec) {
	m.objectives = &ss
	m.appendobjectives = nil
}

// Objectives returns the value of the "objectives" field in the mutation.
func (m *UnitMutation) Objectives() (r []schema.ObjectiveSpec, exists bool) {
	v := m.objectives
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectives returns the old "objectives" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldObjectives(ctx context.Context) (v []schema.ObjectiveSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectives is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectives requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectives: %w", err)
	}
	return oldValue.Objectives, nil
}

// AppendObjectives adds ss to the "objectives" field.
func (m *UnitMutation) AppendObjectives(ss []schema.ObjectiveSpec) {
	m.appendobjectives = append(m.appendobjectives, ss...)
}

// AppendedObjectives returns the list of values that were appended to the "objectives" field in this mutation.
func (m *UnitMutation) AppendedObjectives() ([]schema.ObjectiveSpec, bool) {
	if len(m.appendobjectives) == 0 {
		return nil, false
	}
	return m.appendobjectives, true
}

// ResetObjectives resets all changes to the "objectives" field.
func (m *UnitMutation) ResetObjectives() {
	m.objectives = nil
	m.appendobjectives = nil
}

// SetLessonOrder sets the "lesson_order" field.
func (m *UnitMutation) SetLessonOrder(s []string) {
	m.lesson_order = &s
	m.appendlesson_order = nil
}

// LessonOrder returns the value of the "lesson_order" field in the mutation.
func (m *UnitMutation) LessonOrder() (r []string, exists bool) {
	v := m.lesson_order
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonOrder returns the old "lesson_order" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldLessonOrder(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonOrder: %w", err)
	}
	return oldValue.LessonOrder, nil
}

// AppendLessonOrder adds s to the "lesson_order" field.
func (m *UnitMutation) AppendLessonOrder(s []string) {
	m.appendlesson_order = append(m.appendlesson_order, s...)
}

// AppendedLessonOrder returns the list of values that were appended to the "lesson_order" field in this mutation.
func (m *UnitMutation) AppendedLessonOrder() ([]string, bool) {
	if len(m.appendlesson_order) == 0 {
		return nil, false
	}
	return m.appendlesson_order, true
}

// ClearLessonOrder clears the value of the "lesson_order" field.
func (m *UnitMutation) ClearLessonOrder() {
	m.lesson_order = nil
	m.appendlesson_order = nil
	m.clearedFields[unit.FieldLessonOrder] = struct{}{}
}

// LessonOrderCleared returns if the "lesson_order" field was cleared in this mutation.
func (m *UnitMutation) LessonOrderCleared() bool {
	_, ok := m.clearedFields[unit.FieldLessonOrder]
	return ok
}

// ResetLessonOrder resets all changes to the "lesson_order" field.
func (m *UnitMutation) ResetLessonOrder() {
	m.lesson_order = nil
	m.appendlesson_order = nil
	delete(m.clearedFields, unit.FieldLessonOrder)
}

// SetImportedAt sets the "imported_at" field.
func (m *UnitMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *UnitMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *UnitMutation) ResetImportedAt() {
	m.imported_at = nil
}

// Where appends a list predicates to the UnitMutation builder.
func (m *UnitMutation) Where(ps ...predicate.Unit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Unit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Unit).
func (m *UnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.unit_id != nil {
		fields = append(fields, unit.FieldUnitID)
	}
	if m.title != nil {
		fields = append(fields, unit.FieldTitle)
	}
	if m.objectives != nil {
		fields = append(fields, unit.FieldObjectives)
	}
	if m.lesson_order != nil {
		fields = append(fields, unit.FieldLessonOrder)
	}
	if m.imported_at != nil {
		fields = append(fields, unit.FieldImportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldUnitID:
		return m.UnitID()
	case unit.FieldTitle:
		return m.Title()
	case unit.FieldObjectives:
		return m.Objectives()
	case unit.FieldLessonOrder:
		return m.LessonOrder()
	case unit.FieldImportedAt:
		return m.ImportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unit.FieldUnitID:
		return m.OldUnitID(ctx)
	case unit.FieldTitle:
		return m.OldTitle(ctx)
	case unit.FieldObjectives:
		return m.OldObjectives(ctx)
	case unit.FieldLessonOrder:
		return m.OldLessonOrder(ctx)
	case unit.FieldImportedAt:
		return m.OldImportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Unit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unit.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case unit.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case unit.FieldObjectives:
		v, ok := value.([]schema.ObjectiveSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectives(v)
		return nil
	case unit.FieldLessonOrder:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonOrder(v)
		return nil
	case unit.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Unit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unit.FieldLessonOrder) {
		fields = append(fields, unit.FieldLessonOrder)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitMutation) ClearField(name string) error {
	switch name {
	case unit.FieldLessonOrder:
		m.ClearLessonOrder()
		return nil
	}
	return fmt.Errorf("unknown Unit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitMutation) ResetField(name string) error {
	switch name {
	case unit.FieldUnitID:
		m.ResetUnitID()
		return nil
	case unit.FieldTitle:
		m.ResetTitle()
		return nil
	case unit.FieldObjectives:
		m.ResetObjectives()
		return nil
	case unit.FieldLessonOrder:
		m.ResetLessonOrder()
		return nil
	case unit.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Unit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Unit edge %s", name)
}
