// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/avelsher/pdfprobe/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisRun is the client for interacting with the AnalysisRun builders.
	AnalysisRun *AnalysisRunClient
	// FileResult is the client for interacting with the FileResult builders.
	FileResult *FileResultClient
	// ProbeOutcome is the client for interacting with the ProbeOutcome builders.
	ProbeOutcome *ProbeOutcomeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisRun = NewAnalysisRunClient(c.config)
	c.FileResult = NewFileResultClient(c.config)
	c.ProbeOutcome = NewProbeOutcomeClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		AnalysisRun:  NewAnalysisRunClient(cfg),
		FileResult:   NewFileResultClient(cfg),
		ProbeOutcome: NewProbeOutcomeClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		AnalysisRun:  NewAnalysisRunClient(cfg),
		FileResult:   NewFileResultClient(cfg),
		ProbeOutcome: NewProbeOutcomeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisRun.
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
	c.AnalysisRun.Use(hooks...)
	c.FileResult.Use(hooks...)
	c.ProbeOutcome.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisRun.Intercept(interceptors...)
	c.FileResult.Intercept(interceptors...)
	c.ProbeOutcome.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisRunMutation:
		return c.AnalysisRun.mutate(ctx, m)
	case *FileResultMutation:
		return c.FileResult.mutate(ctx, m)
	case *ProbeOutcomeMutation:
		return c.ProbeOutcome.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisRunClient is a client for the AnalysisRun schema.
type AnalysisRunClient struct {
	config
}

// NewAnalysisRunClient returns a client for the AnalysisRun from the given config.
func NewAnalysisRunClient(c config) *AnalysisRunClient {
	return &AnalysisRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisrun.Hooks(f(g(h())))`.
func (c *AnalysisRunClient) Use(hooks ...Hook) {
	c.hooks.AnalysisRun = append(c.hooks.AnalysisRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisrun.Intercept(f(g(h())))`.
func (c *AnalysisRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisRun = append(c.inters.AnalysisRun, interceptors...)
}

// Create returns a builder for creating a AnalysisRun entity.
func (c *AnalysisRunClient) Create() *AnalysisRunCreate {
	mutation := newAnalysisRunMutation(c.config, OpCreate)
	return &AnalysisRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisRun entities.
func (c *AnalysisRunClient) CreateBulk(builders ...*AnalysisRunCreate) *AnalysisRunCreateBulk {
	return &AnalysisRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisRunClient) MapCreateBulk(slice any, setFunc func(*AnalysisRunCreate, int)) *AnalysisRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisRunCreateBulk{err: fmt.Errorf("calling to AnalysisRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisRun.
func (c *AnalysisRunClient) Update() *AnalysisRunUpdate {
	mutation := newAnalysisRunMutation(c.config, OpUpdate)
	return &AnalysisRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisRunClient) UpdateOne(_m *AnalysisRun) *AnalysisRunUpdateOne {
	mutation := newAnalysisRunMutation(c.config, OpUpdateOne, withAnalysisRun(_m))
	return &AnalysisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisRunClient) UpdateOneID(id uuid.UUID) *AnalysisRunUpdateOne {
	mutation := newAnalysisRunMutation(c.config, OpUpdateOne, withAnalysisRunID(id))
	return &AnalysisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisRun.
func (c *AnalysisRunClient) Delete() *AnalysisRunDelete {
	mutation := newAnalysisRunMutation(c.config, OpDelete)
	return &AnalysisRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisRunClient) DeleteOne(_m *AnalysisRun) *AnalysisRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisRunClient) DeleteOneID(id uuid.UUID) *AnalysisRunDeleteOne {
	builder := c.Delete().Where(analysisrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisRunDeleteOne{builder}
}

// Query returns a query builder for AnalysisRun.
func (c *AnalysisRunClient) Query() *AnalysisRunQuery {
	return &AnalysisRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisRun entity by its id.
func (c *AnalysisRunClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisRun, error) {
	return c.Query().Where(analysisrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisRunClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResults queries the results edge of a AnalysisRun.
func (c *AnalysisRunClient) QueryResults(_m *AnalysisRun) *FileResultQuery {
	query := (&FileResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrun.Table, analysisrun.FieldID, id),
			sqlgraph.To(fileresult.Table, fileresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisrun.ResultsTable, analysisrun.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisRunClient) Hooks() []Hook {
	return c.hooks.AnalysisRun
}

// Interceptors returns the client interceptors.
func (c *AnalysisRunClient) Interceptors() []Interceptor {
	return c.inters.AnalysisRun
}

func (c *AnalysisRunClient) mutate(ctx context.Context, m *AnalysisRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisRun mutation op: %q", m.Op())
	}
}

// FileResultClient is a client for the FileResult schema.
type FileResultClient struct {
	config
}

// NewFileResultClient returns a client for the FileResult from the given config.
func NewFileResultClient(c config) *FileResultClient {
	return &FileResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fileresult.Hooks(f(g(h())))`.
func (c *FileResultClient) Use(hooks ...Hook) {
	c.hooks.FileResult = append(c.hooks.FileResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fileresult.Intercept(f(g(h())))`.
func (c *FileResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.FileResult = append(c.inters.FileResult, interceptors...)
}

// Create returns a builder for creating a FileResult entity.
func (c *FileResultClient) Create() *FileResultCreate {
	mutation := newFileResultMutation(c.config, OpCreate)
	return &FileResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FileResult entities.
func (c *FileResultClient) CreateBulk(builders ...*FileResultCreate) *FileResultCreateBulk {
	return &FileResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileResultClient) MapCreateBulk(slice any, setFunc func(*FileResultCreate, int)) *FileResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileResultCreateBulk{err: fmt.Errorf("calling to FileResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FileResult.
func (c *FileResultClient) Update() *FileResultUpdate {
	mutation := newFileResultMutation(c.config, OpUpdate)
	return &FileResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileResultClient) UpdateOne(_m *FileResult) *FileResultUpdateOne {
	mutation := newFileResultMutation(c.config, OpUpdateOne, withFileResult(_m))
	return &FileResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileResultClient) UpdateOneID(id uuid.UUID) *FileResultUpdateOne {
	mutation := newFileResultMutation(c.config, OpUpdateOne, withFileResultID(id))
	return &FileResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FileResult.
func (c *FileResultClient) Delete() *FileResultDelete {
	mutation := newFileResultMutation(c.config, OpDelete)
	return &FileResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileResultClient) DeleteOne(_m *FileResult) *FileResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileResultClient) DeleteOneID(id uuid.UUID) *FileResultDeleteOne {
	builder := c.Delete().Where(fileresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileResultDeleteOne{builder}
}

// Query returns a query builder for FileResult.
func (c *FileResultClient) Query() *FileResultQuery {
	return &FileResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFileResult},
		inters: c.Interceptors(),
	}
}

// Get returns a FileResult entity by its id.
func (c *FileResultClient) Get(ctx context.Context, id uuid.UUID) (*FileResult, error) {
	return c.Query().Where(fileresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileResultClient) GetX(ctx context.Context, id uuid.UUID) *FileResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a FileResult.
func (c *FileResultClient) QueryRun(_m *FileResult) *AnalysisRunQuery {
	query := (&AnalysisRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fileresult.Table, fileresult.FieldID, id),
			sqlgraph.To(analysisrun.Table, analysisrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fileresult.RunTable, fileresult.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutcomes queries the outcomes edge of a FileResult.
func (c *FileResultClient) QueryOutcomes(_m *FileResult) *ProbeOutcomeQuery {
	query := (&ProbeOutcomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fileresult.Table, fileresult.FieldID, id),
			sqlgraph.To(probeoutcome.Table, probeoutcome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fileresult.OutcomesTable, fileresult.OutcomesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FileResultClient) Hooks() []Hook {
	return c.hooks.FileResult
}

// Interceptors returns the client interceptors.
func (c *FileResultClient) Interceptors() []Interceptor {
	return c.inters.FileResult
}

func (c *FileResultClient) mutate(ctx context.Context, m *FileResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FileResult mutation op: %q", m.Op())
	}
}

// ProbeOutcomeClient is a client for the ProbeOutcome schema.
type ProbeOutcomeClient struct {
	config
}

// NewProbeOutcomeClient returns a client for the ProbeOutcome from the given config.
func NewProbeOutcomeClient(c config) *ProbeOutcomeClient {
	return &ProbeOutcomeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `probeoutcome.Hooks(f(g(h())))`.
func (c *ProbeOutcomeClient) Use(hooks ...Hook) {
	c.hooks.ProbeOutcome = append(c.hooks.ProbeOutcome, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `probeoutcome.Intercept(f(g(h())))`.
func (c *ProbeOutcomeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProbeOutcome = append(c.inters.ProbeOutcome, interceptors...)
}

// Create returns a builder for creating a ProbeOutcome entity.
func (c *ProbeOutcomeClient) Create() *ProbeOutcomeCreate {
	mutation := newProbeOutcomeMutation(c.config, OpCreate)
	return &ProbeOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProbeOutcome entities.
func (c *ProbeOutcomeClient) CreateBulk(builders ...*ProbeOutcomeCreate) *ProbeOutcomeCreateBulk {
	return &ProbeOutcomeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProbeOutcomeClient) MapCreateBulk(slice any, setFunc func(*ProbeOutcomeCreate, int)) *ProbeOutcomeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProbeOutcomeCreateBulk{err: fmt.Errorf("calling to ProbeOutcomeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProbeOutcomeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProbeOutcomeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProbeOutcome.
func (c *ProbeOutcomeClient) Update() *ProbeOutcomeUpdate {
	mutation := newProbeOutcomeMutation(c.config, OpUpdate)
	return &ProbeOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProbeOutcomeClient) UpdateOne(_m *ProbeOutcome) *ProbeOutcomeUpdateOne {
	mutation := newProbeOutcomeMutation(c.config, OpUpdateOne, withProbeOutcome(_m))
	return &ProbeOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProbeOutcomeClient) UpdateOneID(id uuid.UUID) *ProbeOutcomeUpdateOne {
	mutation := newProbeOutcomeMutation(c.config, OpUpdateOne, withProbeOutcomeID(id))
	return &ProbeOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProbeOutcome.
func (c *ProbeOutcomeClient) Delete() *ProbeOutcomeDelete {
	mutation := newProbeOutcomeMutation(c.config, OpDelete)
	return &ProbeOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProbeOutcomeClient) DeleteOne(_m *ProbeOutcome) *ProbeOutcomeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProbeOutcomeClient) DeleteOneID(id uuid.UUID) *ProbeOutcomeDeleteOne {
	builder := c.Delete().Where(probeoutcome.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProbeOutcomeDeleteOne{builder}
}

// Query returns a query builder for ProbeOutcome.
func (c *ProbeOutcomeClient) Query() *ProbeOutcomeQuery {
	return &ProbeOutcomeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProbeOutcome},
		inters: c.Interceptors(),
	}
}

// Get returns a ProbeOutcome entity by its id.
func (c *ProbeOutcomeClient) Get(ctx context.Context, id uuid.UUID) (*ProbeOutcome, error) {
	return c.Query().Where(probeoutcome.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProbeOutcomeClient) GetX(ctx context.Context, id uuid.UUID) *ProbeOutcome {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFileResult queries the file_result edge of a ProbeOutcome.
func (c *ProbeOutcomeClient) QueryFileResult(_m *ProbeOutcome) *FileResultQuery {
	query := (&FileResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(probeoutcome.Table, probeoutcome.FieldID, id),
			sqlgraph.To(fileresult.Table, fileresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, probeoutcome.FileResultTable, probeoutcome.FileResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProbeOutcomeClient) Hooks() []Hook {
	return c.hooks.ProbeOutcome
}

// Interceptors returns the client interceptors.
func (c *ProbeOutcomeClient) Interceptors() []Interceptor {
	return c.inters.ProbeOutcome
}

func (c *ProbeOutcomeClient) mutate(ctx context.Context, m *ProbeOutcomeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProbeOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProbeOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProbeOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProbeOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProbeOutcome mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisRun, FileResult, ProbeOutcome []ent.Hook
	}
	inters struct {
		AnalysisRun, FileResult, ProbeOutcome []ent.Interceptor
	}
)
