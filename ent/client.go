// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/lernio/lernio/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/outboxentry"
	"github.com/lernio/lernio/ent/outcomeevent"
	"github.com/lernio/lernio/ent/progresssnapshot"
	"github.com/lernio/lernio/ent/sessionevent"
	"github.com/lernio/lernio/ent/unit"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LessonPackage is the client for interacting with the LessonPackage builders.
	LessonPackage *LessonPackageClient
	// OutboxEntry is the client for interacting with the OutboxEntry builders.
	OutboxEntry *OutboxEntryClient
	// OutcomeEvent is the client for interacting with the OutcomeEvent builders.
	OutcomeEvent *OutcomeEventClient
	// ProgressSnapshot is the client for interacting with the ProgressSnapshot builders.
	ProgressSnapshot *ProgressSnapshotClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// Unit is the client for interacting with the Unit builders.
	Unit *UnitClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LessonPackage = NewLessonPackageClient(c.config)
	c.OutboxEntry = NewOutboxEntryClient(c.config)
	c.OutcomeEvent = NewOutcomeEventClient(c.config)
	c.ProgressSnapshot = NewProgressSnapshotClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.Unit = NewUnitClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		LessonPackage:    NewLessonPackageClient(cfg),
		OutboxEntry:      NewOutboxEntryClient(cfg),
		OutcomeEvent:     NewOutcomeEventClient(cfg),
		ProgressSnapshot: NewProgressSnapshotClient(cfg),
		SessionEvent:     NewSessionEventClient(cfg),
		Unit:             NewUnitClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		LessonPackage:    NewLessonPackageClient(cfg),
		OutboxEntry:      NewOutboxEntryClient(cfg),
		OutcomeEvent:     NewOutcomeEventClient(cfg),
		ProgressSnapshot: NewProgressSnapshotClient(cfg),
		SessionEvent:     NewSessionEventClient(cfg),
		Unit:             NewUnitClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LessonPackage.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.LessonPackage, c.OutboxEntry, c.OutcomeEvent, c.ProgressSnapshot,
		c.SessionEvent, c.Unit,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LessonPackage, c.OutboxEntry, c.OutcomeEvent, c.ProgressSnapshot,
		c.SessionEvent, c.Unit,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LessonPackageMutation:
		return c.LessonPackage.mutate(ctx, m)
	case *OutboxEntryMutation:
		return c.OutboxEntry.mutate(ctx, m)
	case *OutcomeEventMutation:
		return c.OutcomeEvent.mutate(ctx, m)
	case *ProgressSnapshotMutation:
		return c.ProgressSnapshot.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *UnitMutation:
		return c.Unit.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LessonPackageClient is a client for the LessonPackage schema.
type LessonPackageClient struct {
	config
}

// NewLessonPackageClient returns a client for the LessonPackage from the given config.
func NewLessonPackageClient(c config) *LessonPackageClient {
	return &LessonPackageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonpackage.Hooks(f(g(h())))`.
func (c *LessonPackageClient) Use(hooks ...Hook) {
	c.hooks.LessonPackage = append(c.hooks.LessonPackage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonpackage.Intercept(f(g(h())))`.
func (c *LessonPackageClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonPackage = append(c.inters.LessonPackage, interceptors...)
}

// Create returns a builder for creating a LessonPackage entity.
func (c *LessonPackageClient) Create() *LessonPackageCreate {
	mutation := newLessonPackageMutation(c.config, OpCreate)
	return &LessonPackageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonPackage entities.
func (c *LessonPackageClient) CreateBulk(builders ...*LessonPackageCreate) *LessonPackageCreateBulk {
	return &LessonPackageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonPackageClient) MapCreateBulk(slice any, setFunc func(*LessonPackageCreate, int)) *LessonPackageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonPackageCreateBulk{err: fmt.Errorf("calling to LessonPackageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonPackageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonPackageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonPackage.
func (c *LessonPackageClient) Update() *LessonPackageUpdate {
	mutation := newLessonPackageMutation(c.config, OpUpdate)
	return &LessonPackageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonPackageClient) UpdateOne(_m *LessonPackage) *LessonPackageUpdateOne {
	mutation := newLessonPackageMutation(c.config, OpUpdateOne, withLessonPackage(_m))
	return &LessonPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonPackageClient) UpdateOneID(id int) *LessonPackageUpdateOne {
	mutation := newLessonPackageMutation(c.config, OpUpdateOne, withLessonPackageID(id))
	return &LessonPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonPackage.
func (c *LessonPackageClient) Delete() *LessonPackageDelete {
	mutation := newLessonPackageMutation(c.config, OpDelete)
	return &LessonPackageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonPackageClient) DeleteOne(_m *LessonPackage) *LessonPackageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonPackageClient) DeleteOneID(id int) *LessonPackageDeleteOne {
	builder := c.Delete().Where(lessonpackage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonPackageDeleteOne{builder}
}

// Query returns a query builder for LessonPackage.
func (c *LessonPackageClient) Query() *LessonPackageQuery {
	return &LessonPackageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonPackage},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonPackage entity by its id.
func (c *LessonPackageClient) Get(ctx context.Context, id int) (*LessonPackage, error) {
	return c.Query().Where(lessonpackage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonPackageClient) GetX(ctx context.Context, id int) *LessonPackage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonPackageClient) Hooks() []Hook {
	return c.hooks.LessonPackage
}

// Interceptors returns the client interceptors.
func (c *LessonPackageClient) Interceptors() []Interceptor {
	return c.inters.LessonPackage
}

func (c *LessonPackageClient) mutate(ctx context.Context, m *LessonPackageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonPackageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonPackageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonPackageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonPackage mutation op: %q", m.Op())
	}
}

// OutboxEntryClient is a client for the OutboxEntry schema.
type OutboxEntryClient struct {
	config
}

// NewOutboxEntryClient returns a client for the OutboxEntry from the given config.
func NewOutboxEntryClient(c config) *OutboxEntryClient {
	return &OutboxEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxentry.Hooks(f(g(h())))`.
func (c *OutboxEntryClient) Use(hooks ...Hook) {
	c.hooks.OutboxEntry = append(c.hooks.OutboxEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxentry.Intercept(f(g(h())))`.
func (c *OutboxEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxEntry = append(c.inters.OutboxEntry, interceptors...)
}

// Create returns a builder for creating a OutboxEntry entity.
func (c *OutboxEntryClient) Create() *OutboxEntryCreate {
	mutation := newOutboxEntryMutation(c.config, OpCreate)
	return &OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxEntry entities.
func (c *OutboxEntryClient) CreateBulk(builders ...*OutboxEntryCreate) *OutboxEntryCreateBulk {
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxEntryClient) MapCreateBulk(slice any, setFunc func(*OutboxEntryCreate, int)) *OutboxEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxEntryCreateBulk{err: fmt.Errorf("calling to OutboxEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxEntry.
func (c *OutboxEntryClient) Update() *OutboxEntryUpdate {
	mutation := newOutboxEntryMutation(c.config, OpUpdate)
	return &OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxEntryClient) UpdateOne(_m *OutboxEntry) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntry(_m))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxEntryClient) UpdateOneID(id int) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntryID(id))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxEntry.
func (c *OutboxEntryClient) Delete() *OutboxEntryDelete {
	mutation := newOutboxEntryMutation(c.config, OpDelete)
	return &OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxEntryClient) DeleteOne(_m *OutboxEntry) *OutboxEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxEntryClient) DeleteOneID(id int) *OutboxEntryDeleteOne {
	builder := c.Delete().Where(outboxentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxEntryDeleteOne{builder}
}

// Query returns a query builder for OutboxEntry.
func (c *OutboxEntryClient) Query() *OutboxEntryQuery {
	return &OutboxEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxEntry entity by its id.
func (c *OutboxEntryClient) Get(ctx context.Context, id int) (*OutboxEntry, error) {
	return c.Query().Where(outboxentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxEntryClient) GetX(ctx context.Context, id int) *OutboxEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxEntryClient) Hooks() []Hook {
	return c.hooks.OutboxEntry
}

// Interceptors returns the client interceptors.
func (c *OutboxEntryClient) Interceptors() []Interceptor {
	return c.inters.OutboxEntry
}

func (c *OutboxEntryClient) mutate(ctx context.Context, m *OutboxEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxEntry mutation op: %q", m.Op())
	}
}

// OutcomeEventClient is a client for the OutcomeEvent schema.
type OutcomeEventClient struct {
	config
}

// NewOutcomeEventClient returns a client for the OutcomeEvent from the given config.
func NewOutcomeEventClient(c config) *OutcomeEventClient {
	return &OutcomeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outcomeevent.Hooks(f(g(h())))`.
func (c *OutcomeEventClient) Use(hooks ...Hook) {
	c.hooks.OutcomeEvent = append(c.hooks.OutcomeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outcomeevent.Intercept(f(g(h())))`.
func (c *OutcomeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutcomeEvent = append(c.inters.OutcomeEvent, interceptors...)
}

// Create returns a builder for creating a OutcomeEvent entity.
func (c *OutcomeEventClient) Create() *OutcomeEventCreate {
	mutation := newOutcomeEventMutation(c.config, OpCreate)
	return &OutcomeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutcomeEvent entities.
func (c *OutcomeEventClient) CreateBulk(builders ...*OutcomeEventCreate) *OutcomeEventCreateBulk {
	return &OutcomeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutcomeEventClient) MapCreateBulk(slice any, setFunc func(*OutcomeEventCreate, int)) *OutcomeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutcomeEventCreateBulk{err: fmt.Errorf("calling to OutcomeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutcomeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutcomeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutcomeEvent.
func (c *OutcomeEventClient) Update() *OutcomeEventUpdate {
	mutation := newOutcomeEventMutation(c.config, OpUpdate)
	return &OutcomeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutcomeEventClient) UpdateOne(_m *OutcomeEvent) *OutcomeEventUpdateOne {
	mutation := newOutcomeEventMutation(c.config, OpUpdateOne, withOutcomeEvent(_m))
	return &OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutcomeEventClient) UpdateOneID(id int) *OutcomeEventUpdateOne {
	mutation := newOutcomeEventMutation(c.config, OpUpdateOne, withOutcomeEventID(id))
	return &OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutcomeEvent.
func (c *OutcomeEventClient) Delete() *OutcomeEventDelete {
	mutation := newOutcomeEventMutation(c.config, OpDelete)
	return &OutcomeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutcomeEventClient) DeleteOne(_m *OutcomeEvent) *OutcomeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutcomeEventClient) DeleteOneID(id int) *OutcomeEventDeleteOne {
	builder := c.Delete().Where(outcomeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutcomeEventDeleteOne{builder}
}

// Query returns a query builder for OutcomeEvent.
func (c *OutcomeEventClient) Query() *OutcomeEventQuery {
	return &OutcomeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutcomeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OutcomeEvent entity by its id.
func (c *OutcomeEventClient) Get(ctx context.Context, id int) (*OutcomeEvent, error) {
	return c.Query().Where(outcomeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutcomeEventClient) GetX(ctx context.Context, id int) *OutcomeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutcomeEventClient) Hooks() []Hook {
	return c.hooks.OutcomeEvent
}

// Interceptors returns the client interceptors.
func (c *OutcomeEventClient) Interceptors() []Interceptor {
	return c.inters.OutcomeEvent
}

func (c *OutcomeEventClient) mutate(ctx context.Context, m *OutcomeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutcomeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutcomeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutcomeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutcomeEvent mutation op: %q", m.Op())
	}
}

// ProgressSnapshotClient is a client for the ProgressSnapshot schema.
type ProgressSnapshotClient struct {
	config
}

// NewProgressSnapshotClient returns a client for the ProgressSnapshot from the given config.
func NewProgressSnapshotClient(c config) *ProgressSnapshotClient {
	return &ProgressSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progresssnapshot.Hooks(f(g(h())))`.
func (c *ProgressSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ProgressSnapshot = append(c.hooks.ProgressSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progresssnapshot.Intercept(f(g(h())))`.
func (c *ProgressSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressSnapshot = append(c.inters.ProgressSnapshot, interceptors...)
}

// Create returns a builder for creating a ProgressSnapshot entity.
func (c *ProgressSnapshotClient) Create() *ProgressSnapshotCreate {
	mutation := newProgressSnapshotMutation(c.config, OpCreate)
	return &ProgressSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressSnapshot entities.
func (c *ProgressSnapshotClient) CreateBulk(builders ...*ProgressSnapshotCreate) *ProgressSnapshotCreateBulk {
	return &ProgressSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressSnapshotClient) MapCreateBulk(slice any, setFunc func(*ProgressSnapshotCreate, int)) *ProgressSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressSnapshotCreateBulk{err: fmt.Errorf("calling to ProgressSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressSnapshot.
func (c *ProgressSnapshotClient) Update() *ProgressSnapshotUpdate {
	mutation := newProgressSnapshotMutation(c.config, OpUpdate)
	return &ProgressSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressSnapshotClient) UpdateOne(_m *ProgressSnapshot) *ProgressSnapshotUpdateOne {
	mutation := newProgressSnapshotMutation(c.config, OpUpdateOne, withProgressSnapshot(_m))
	return &ProgressSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressSnapshotClient) UpdateOneID(id int) *ProgressSnapshotUpdateOne {
	mutation := newProgressSnapshotMutation(c.config, OpUpdateOne, withProgressSnapshotID(id))
	return &ProgressSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressSnapshot.
func (c *ProgressSnapshotClient) Delete() *ProgressSnapshotDelete {
	mutation := newProgressSnapshotMutation(c.config, OpDelete)
	return &ProgressSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressSnapshotClient) DeleteOne(_m *ProgressSnapshot) *ProgressSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressSnapshotClient) DeleteOneID(id int) *ProgressSnapshotDeleteOne {
	builder := c.Delete().Where(progresssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressSnapshotDeleteOne{builder}
}

// Query returns a query builder for ProgressSnapshot.
func (c *ProgressSnapshotClient) Query() *ProgressSnapshotQuery {
	return &ProgressSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressSnapshot entity by its id.
func (c *ProgressSnapshotClient) Get(ctx context.Context, id int) (*ProgressSnapshot, error) {
	return c.Query().Where(progresssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressSnapshotClient) GetX(ctx context.Context, id int) *ProgressSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressSnapshotClient) Hooks() []Hook {
	return c.hooks.ProgressSnapshot
}

// Interceptors returns the client interceptors.
func (c *ProgressSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ProgressSnapshot
}

func (c *ProgressSnapshotClient) mutate(ctx context.Context, m *ProgressSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressSnapshot mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// UnitClient is a client for the Unit schema.
type UnitClient struct {
	config
}

// NewUnitClient returns a client for the Unit from the given config.
func NewUnitClient(c config) *UnitClient {
	return &UnitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unit.Hooks(f(g(h())))`.
func (c *UnitClient) Use(hooks ...Hook) {
	c.hooks.Unit = append(c.hooks.Unit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unit.Intercept(f(g(h())))`.
func (c *UnitClient) Intercept(interceptors ...Interceptor) {
	c.inters.Unit = append(c.inters.Unit, interceptors...)
}

// Create returns a builder for creating a Unit entity.
func (c *UnitClient) Create() *UnitCreate {
	mutation := newUnitMutation(c.config, OpCreate)
	return &UnitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Unit entities.
func (c *UnitClient) CreateBulk(builders ...*UnitCreate) *UnitCreateBulk {
	return &UnitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnitClient) MapCreateBulk(slice any, setFunc func(*UnitCreate, int)) *UnitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnitCreateBulk{err: fmt.Errorf("calling to UnitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Unit.
func (c *UnitClient) Update() *UnitUpdate {
	mutation := newUnitMutation(c.config, OpUpdate)
	return &UnitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnitClient) UpdateOne(_m *Unit) *UnitUpdateOne {
	mutation := newUnitMutation(c.config, OpUpdateOne, withUnit(_m))
	return &UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnitClient) UpdateOneID(id int) *UnitUpdateOne {
	mutation := newUnitMutation(c.config, OpUpdateOne, withUnitID(id))
	return &UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Unit.
func (c *UnitClient) Delete() *UnitDelete {
	mutation := newUnitMutation(c.config, OpDelete)
	return &UnitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnitClient) DeleteOne(_m *Unit) *UnitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnitClient) DeleteOneID(id int) *UnitDeleteOne {
	builder := c.Delete().Where(unit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnitDeleteOne{builder}
}

// Query returns a query builder for Unit.
func (c *UnitClient) Query() *UnitQuery {
	return &UnitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnit},
		inters: c.Interceptors(),
	}
}

// Get returns a Unit entity by its id.
func (c *UnitClient) Get(ctx context.Context, id int) (*Unit, error) {
	return c.Query().Where(unit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnitClient) GetX(ctx context.Context, id int) *Unit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnitClient) Hooks() []Hook {
	return c.hooks.Unit
}

// Interceptors returns the client interceptors.
func (c *UnitClient) Interceptors() []Interceptor {
	return c.inters.Unit
}

func (c *UnitClient) mutate(ctx context.Context, m *UnitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Unit mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LessonPackage, OutboxEntry, OutcomeEvent, ProgressSnapshot, SessionEvent,
		Unit []ent.Hook
	}
	inters struct {
		LessonPackage, OutboxEntry, OutcomeEvent, ProgressSnapshot, SessionEvent,
		Unit []ent.Interceptor
	}
)
