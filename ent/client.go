// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/generationevent"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/statssnapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GenerationEvent is the client for interacting with the GenerationEvent builders.
	GenerationEvent *GenerationEventClient
	// StatsSnapshot is the client for interacting with the StatsSnapshot builders.
	StatsSnapshot *StatsSnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GenerationEvent = NewGenerationEventClient(c.config)
	c.StatsSnapshot = NewStatsSnapshotClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		GenerationEvent: NewGenerationEventClient(cfg),
		StatsSnapshot:   NewStatsSnapshotClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		GenerationEvent: NewGenerationEventClient(cfg),
		StatsSnapshot:   NewStatsSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GenerationEvent.
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
	c.GenerationEvent.Use(hooks...)
	c.StatsSnapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GenerationEvent.Intercept(interceptors...)
	c.StatsSnapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GenerationEventMutation:
		return c.GenerationEvent.mutate(ctx, m)
	case *StatsSnapshotMutation:
		return c.StatsSnapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GenerationEventClient is a client for the GenerationEvent schema.
type GenerationEventClient struct {
	config
}

// NewGenerationEventClient returns a client for the GenerationEvent from the given config.
func NewGenerationEventClient(c config) *GenerationEventClient {
	return &GenerationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationevent.Hooks(f(g(h())))`.
func (c *GenerationEventClient) Use(hooks ...Hook) {
	c.hooks.GenerationEvent = append(c.hooks.GenerationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationevent.Intercept(f(g(h())))`.
func (c *GenerationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationEvent = append(c.inters.GenerationEvent, interceptors...)
}

// Create returns a builder for creating a GenerationEvent entity.
func (c *GenerationEventClient) Create() *GenerationEventCreate {
	mutation := newGenerationEventMutation(c.config, OpCreate)
	return &GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationEvent entities.
func (c *GenerationEventClient) CreateBulk(builders ...*GenerationEventCreate) *GenerationEventCreateBulk {
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationEventClient) MapCreateBulk(slice any, setFunc func(*GenerationEventCreate, int)) *GenerationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationEventCreateBulk{err: fmt.Errorf("calling to GenerationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationEvent.
func (c *GenerationEventClient) Update() *GenerationEventUpdate {
	mutation := newGenerationEventMutation(c.config, OpUpdate)
	return &GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationEventClient) UpdateOne(_m *GenerationEvent) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEvent(_m))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationEventClient) UpdateOneID(id int) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEventID(id))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationEvent.
func (c *GenerationEventClient) Delete() *GenerationEventDelete {
	mutation := newGenerationEventMutation(c.config, OpDelete)
	return &GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationEventClient) DeleteOne(_m *GenerationEvent) *GenerationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationEventClient) DeleteOneID(id int) *GenerationEventDeleteOne {
	builder := c.Delete().Where(generationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationEventDeleteOne{builder}
}

// Query returns a query builder for GenerationEvent.
func (c *GenerationEventClient) Query() *GenerationEventQuery {
	return &GenerationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationEvent entity by its id.
func (c *GenerationEventClient) Get(ctx context.Context, id int) (*GenerationEvent, error) {
	return c.Query().Where(generationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationEventClient) GetX(ctx context.Context, id int) *GenerationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationEventClient) Hooks() []Hook {
	return c.hooks.GenerationEvent
}

// Interceptors returns the client interceptors.
func (c *GenerationEventClient) Interceptors() []Interceptor {
	return c.inters.GenerationEvent
}

func (c *GenerationEventClient) mutate(ctx context.Context, m *GenerationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationEvent mutation op: %q", m.Op())
	}
}

// StatsSnapshotClient is a client for the StatsSnapshot schema.
type StatsSnapshotClient struct {
	config
}

// NewStatsSnapshotClient returns a client for the StatsSnapshot from the given config.
func NewStatsSnapshotClient(c config) *StatsSnapshotClient {
	return &StatsSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statssnapshot.Hooks(f(g(h())))`.
func (c *StatsSnapshotClient) Use(hooks ...Hook) {
	c.hooks.StatsSnapshot = append(c.hooks.StatsSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statssnapshot.Intercept(f(g(h())))`.
func (c *StatsSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.StatsSnapshot = append(c.inters.StatsSnapshot, interceptors...)
}

// Create returns a builder for creating a StatsSnapshot entity.
func (c *StatsSnapshotClient) Create() *StatsSnapshotCreate {
	mutation := newStatsSnapshotMutation(c.config, OpCreate)
	return &StatsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StatsSnapshot entities.
func (c *StatsSnapshotClient) CreateBulk(builders ...*StatsSnapshotCreate) *StatsSnapshotCreateBulk {
	return &StatsSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StatsSnapshotClient) MapCreateBulk(slice any, setFunc func(*StatsSnapshotCreate, int)) *StatsSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StatsSnapshotCreateBulk{err: fmt.Errorf("calling to StatsSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StatsSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StatsSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StatsSnapshot.
func (c *StatsSnapshotClient) Update() *StatsSnapshotUpdate {
	mutation := newStatsSnapshotMutation(c.config, OpUpdate)
	return &StatsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StatsSnapshotClient) UpdateOne(_m *StatsSnapshot) *StatsSnapshotUpdateOne {
	mutation := newStatsSnapshotMutation(c.config, OpUpdateOne, withStatsSnapshot(_m))
	return &StatsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StatsSnapshotClient) UpdateOneID(id int) *StatsSnapshotUpdateOne {
	mutation := newStatsSnapshotMutation(c.config, OpUpdateOne, withStatsSnapshotID(id))
	return &StatsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StatsSnapshot.
func (c *StatsSnapshotClient) Delete() *StatsSnapshotDelete {
	mutation := newStatsSnapshotMutation(c.config, OpDelete)
	return &StatsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StatsSnapshotClient) DeleteOne(_m *StatsSnapshot) *StatsSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StatsSnapshotClient) DeleteOneID(id int) *StatsSnapshotDeleteOne {
	builder := c.Delete().Where(statssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StatsSnapshotDeleteOne{builder}
}

// Query returns a query builder for StatsSnapshot.
func (c *StatsSnapshotClient) Query() *StatsSnapshotQuery {
	return &StatsSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStatsSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a StatsSnapshot entity by its id.
func (c *StatsSnapshotClient) Get(ctx context.Context, id int) (*StatsSnapshot, error) {
	return c.Query().Where(statssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StatsSnapshotClient) GetX(ctx context.Context, id int) *StatsSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StatsSnapshotClient) Hooks() []Hook {
	return c.hooks.StatsSnapshot
}

// Interceptors returns the client interceptors.
func (c *StatsSnapshotClient) Interceptors() []Interceptor {
	return c.inters.StatsSnapshot
}

func (c *StatsSnapshotClient) mutate(ctx context.Context, m *StatsSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StatsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StatsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StatsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StatsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StatsSnapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GenerationEvent, StatsSnapshot []ent.Hook
	}
	inters struct {
		GenerationEvent, StatsSnapshot []ent.Interceptor
	}
)
