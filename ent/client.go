// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hanjihoon73/lawquiz/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
	"github.com/hanjihoon73/lawquiz/ent/choice"
	"github.com/hanjihoon73/lawquiz/ent/packstats"
	"github.com/hanjihoon73/lawquiz/ent/question"
	"github.com/hanjihoon73/lawquiz/ent/quizpack"
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CatalogEntry is the client for interacting with the CatalogEntry builders.
	CatalogEntry *CatalogEntryClient
	// Choice is the client for interacting with the Choice builders.
	Choice *ChoiceClient
	// PackStats is the client for interacting with the PackStats builders.
	PackStats *PackStatsClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// Quizpack is the client for interacting with the Quizpack builders.
	Quizpack *QuizpackClient
	// UserQuizAnswer is the client for interacting with the UserQuizAnswer builders.
	UserQuizAnswer *UserQuizAnswerClient
	// UserQuizpack is the client for interacting with the UserQuizpack builders.
	UserQuizpack *UserQuizpackClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CatalogEntry = NewCatalogEntryClient(c.config)
	c.Choice = NewChoiceClient(c.config)
	c.PackStats = NewPackStatsClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.Quizpack = NewQuizpackClient(c.config)
	c.UserQuizAnswer = NewUserQuizAnswerClient(c.config)
	c.UserQuizpack = NewUserQuizpackClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		CatalogEntry:   NewCatalogEntryClient(cfg),
		Choice:         NewChoiceClient(cfg),
		PackStats:      NewPackStatsClient(cfg),
		Question:       NewQuestionClient(cfg),
		Quizpack:       NewQuizpackClient(cfg),
		UserQuizAnswer: NewUserQuizAnswerClient(cfg),
		UserQuizpack:   NewUserQuizpackClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		CatalogEntry:   NewCatalogEntryClient(cfg),
		Choice:         NewChoiceClient(cfg),
		PackStats:      NewPackStatsClient(cfg),
		Question:       NewQuestionClient(cfg),
		Quizpack:       NewQuizpackClient(cfg),
		UserQuizAnswer: NewUserQuizAnswerClient(cfg),
		UserQuizpack:   NewUserQuizpackClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CatalogEntry.
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
		c.CatalogEntry, c.Choice, c.PackStats, c.Question, c.Quizpack, c.UserQuizAnswer,
		c.UserQuizpack,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CatalogEntry, c.Choice, c.PackStats, c.Question, c.Quizpack, c.UserQuizAnswer,
		c.UserQuizpack,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CatalogEntryMutation:
		return c.CatalogEntry.mutate(ctx, m)
	case *ChoiceMutation:
		return c.Choice.mutate(ctx, m)
	case *PackStatsMutation:
		return c.PackStats.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuizpackMutation:
		return c.Quizpack.mutate(ctx, m)
	case *UserQuizAnswerMutation:
		return c.UserQuizAnswer.mutate(ctx, m)
	case *UserQuizpackMutation:
		return c.UserQuizpack.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CatalogEntryClient is a client for the CatalogEntry schema.
type CatalogEntryClient struct {
	config
}

// NewCatalogEntryClient returns a client for the CatalogEntry from the given config.
func NewCatalogEntryClient(c config) *CatalogEntryClient {
	return &CatalogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `catalogentry.Hooks(f(g(h())))`.
func (c *CatalogEntryClient) Use(hooks ...Hook) {
	c.hooks.CatalogEntry = append(c.hooks.CatalogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `catalogentry.Intercept(f(g(h())))`.
func (c *CatalogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CatalogEntry = append(c.inters.CatalogEntry, interceptors...)
}

// Create returns a builder for creating a CatalogEntry entity.
func (c *CatalogEntryClient) Create() *CatalogEntryCreate {
	mutation := newCatalogEntryMutation(c.config, OpCreate)
	return &CatalogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CatalogEntry entities.
func (c *CatalogEntryClient) CreateBulk(builders ...*CatalogEntryCreate) *CatalogEntryCreateBulk {
	return &CatalogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CatalogEntryClient) MapCreateBulk(slice any, setFunc func(*CatalogEntryCreate, int)) *CatalogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CatalogEntryCreateBulk{err: fmt.Errorf("calling to CatalogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CatalogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CatalogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CatalogEntry.
func (c *CatalogEntryClient) Update() *CatalogEntryUpdate {
	mutation := newCatalogEntryMutation(c.config, OpUpdate)
	return &CatalogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CatalogEntryClient) UpdateOne(ce *CatalogEntry) *CatalogEntryUpdateOne {
	mutation := newCatalogEntryMutation(c.config, OpUpdateOne, withCatalogEntry(ce))
	return &CatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CatalogEntryClient) UpdateOneID(id int) *CatalogEntryUpdateOne {
	mutation := newCatalogEntryMutation(c.config, OpUpdateOne, withCatalogEntryID(id))
	return &CatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CatalogEntry.
func (c *CatalogEntryClient) Delete() *CatalogEntryDelete {
	mutation := newCatalogEntryMutation(c.config, OpDelete)
	return &CatalogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CatalogEntryClient) DeleteOne(ce *CatalogEntry) *CatalogEntryDeleteOne {
	return c.DeleteOneID(ce.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CatalogEntryClient) DeleteOneID(id int) *CatalogEntryDeleteOne {
	builder := c.Delete().Where(catalogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CatalogEntryDeleteOne{builder}
}

// Query returns a query builder for CatalogEntry.
func (c *CatalogEntryClient) Query() *CatalogEntryQuery {
	return &CatalogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCatalogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CatalogEntry entity by its id.
func (c *CatalogEntryClient) Get(ctx context.Context, id int) (*CatalogEntry, error) {
	return c.Query().Where(catalogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CatalogEntryClient) GetX(ctx context.Context, id int) *CatalogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CatalogEntryClient) Hooks() []Hook {
	return c.hooks.CatalogEntry
}

// Interceptors returns the client interceptors.
func (c *CatalogEntryClient) Interceptors() []Interceptor {
	return c.inters.CatalogEntry
}

func (c *CatalogEntryClient) mutate(ctx context.Context, m *CatalogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CatalogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CatalogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CatalogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CatalogEntry mutation op: %q", m.Op())
	}
}

// ChoiceClient is a client for the Choice schema.
type ChoiceClient struct {
	config
}

// NewChoiceClient returns a client for the Choice from the given config.
func NewChoiceClient(c config) *ChoiceClient {
	return &ChoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `choice.Hooks(f(g(h())))`.
func (c *ChoiceClient) Use(hooks ...Hook) {
	c.hooks.Choice = append(c.hooks.Choice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `choice.Intercept(f(g(h())))`.
func (c *ChoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Choice = append(c.inters.Choice, interceptors...)
}

// Create returns a builder for creating a Choice entity.
func (c *ChoiceClient) Create() *ChoiceCreate {
	mutation := newChoiceMutation(c.config, OpCreate)
	return &ChoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Choice entities.
func (c *ChoiceClient) CreateBulk(builders ...*ChoiceCreate) *ChoiceCreateBulk {
	return &ChoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChoiceClient) MapCreateBulk(slice any, setFunc func(*ChoiceCreate, int)) *ChoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChoiceCreateBulk{err: fmt.Errorf("calling to ChoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Choice.
func (c *ChoiceClient) Update() *ChoiceUpdate {
	mutation := newChoiceMutation(c.config, OpUpdate)
	return &ChoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChoiceClient) UpdateOne(ch *Choice) *ChoiceUpdateOne {
	mutation := newChoiceMutation(c.config, OpUpdateOne, withChoice(ch))
	return &ChoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChoiceClient) UpdateOneID(id int) *ChoiceUpdateOne {
	mutation := newChoiceMutation(c.config, OpUpdateOne, withChoiceID(id))
	return &ChoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Choice.
func (c *ChoiceClient) Delete() *ChoiceDelete {
	mutation := newChoiceMutation(c.config, OpDelete)
	return &ChoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChoiceClient) DeleteOne(ch *Choice) *ChoiceDeleteOne {
	return c.DeleteOneID(ch.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChoiceClient) DeleteOneID(id int) *ChoiceDeleteOne {
	builder := c.Delete().Where(choice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChoiceDeleteOne{builder}
}

// Query returns a query builder for Choice.
func (c *ChoiceClient) Query() *ChoiceQuery {
	return &ChoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Choice entity by its id.
func (c *ChoiceClient) Get(ctx context.Context, id int) (*Choice, error) {
	return c.Query().Where(choice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChoiceClient) GetX(ctx context.Context, id int) *Choice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChoiceClient) Hooks() []Hook {
	return c.hooks.Choice
}

// Interceptors returns the client interceptors.
func (c *ChoiceClient) Interceptors() []Interceptor {
	return c.inters.Choice
}

func (c *ChoiceClient) mutate(ctx context.Context, m *ChoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Choice mutation op: %q", m.Op())
	}
}

// PackStatsClient is a client for the PackStats schema.
type PackStatsClient struct {
	config
}

// NewPackStatsClient returns a client for the PackStats from the given config.
func NewPackStatsClient(c config) *PackStatsClient {
	return &PackStatsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `packstats.Hooks(f(g(h())))`.
func (c *PackStatsClient) Use(hooks ...Hook) {
	c.hooks.PackStats = append(c.hooks.PackStats, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `packstats.Intercept(f(g(h())))`.
func (c *PackStatsClient) Intercept(interceptors ...Interceptor) {
	c.inters.PackStats = append(c.inters.PackStats, interceptors...)
}

// Create returns a builder for creating a PackStats entity.
func (c *PackStatsClient) Create() *PackStatsCreate {
	mutation := newPackStatsMutation(c.config, OpCreate)
	return &PackStatsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PackStats entities.
func (c *PackStatsClient) CreateBulk(builders ...*PackStatsCreate) *PackStatsCreateBulk {
	return &PackStatsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PackStatsClient) MapCreateBulk(slice any, setFunc func(*PackStatsCreate, int)) *PackStatsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PackStatsCreateBulk{err: fmt.Errorf("calling to PackStatsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PackStatsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PackStatsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PackStats.
func (c *PackStatsClient) Update() *PackStatsUpdate {
	mutation := newPackStatsMutation(c.config, OpUpdate)
	return &PackStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PackStatsClient) UpdateOne(ps *PackStats) *PackStatsUpdateOne {
	mutation := newPackStatsMutation(c.config, OpUpdateOne, withPackStats(ps))
	return &PackStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PackStatsClient) UpdateOneID(id int) *PackStatsUpdateOne {
	mutation := newPackStatsMutation(c.config, OpUpdateOne, withPackStatsID(id))
	return &PackStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PackStats.
func (c *PackStatsClient) Delete() *PackStatsDelete {
	mutation := newPackStatsMutation(c.config, OpDelete)
	return &PackStatsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PackStatsClient) DeleteOne(ps *PackStats) *PackStatsDeleteOne {
	return c.DeleteOneID(ps.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PackStatsClient) DeleteOneID(id int) *PackStatsDeleteOne {
	builder := c.Delete().Where(packstats.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PackStatsDeleteOne{builder}
}

// Query returns a query builder for PackStats.
func (c *PackStatsClient) Query() *PackStatsQuery {
	return &PackStatsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePackStats},
		inters: c.Interceptors(),
	}
}

// Get returns a PackStats entity by its id.
func (c *PackStatsClient) Get(ctx context.Context, id int) (*PackStats, error) {
	return c.Query().Where(packstats.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PackStatsClient) GetX(ctx context.Context, id int) *PackStats {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PackStatsClient) Hooks() []Hook {
	return c.hooks.PackStats
}

// Interceptors returns the client interceptors.
func (c *PackStatsClient) Interceptors() []Interceptor {
	return c.inters.PackStats
}

func (c *PackStatsClient) mutate(ctx context.Context, m *PackStatsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PackStatsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PackStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PackStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PackStatsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PackStats mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(q *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(q))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id int) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(q *Question) *QuestionDeleteOne {
	return c.DeleteOneID(q.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id int) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id int) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id int) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// QuizpackClient is a client for the Quizpack schema.
type QuizpackClient struct {
	config
}

// NewQuizpackClient returns a client for the Quizpack from the given config.
func NewQuizpackClient(c config) *QuizpackClient {
	return &QuizpackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizpack.Hooks(f(g(h())))`.
func (c *QuizpackClient) Use(hooks ...Hook) {
	c.hooks.Quizpack = append(c.hooks.Quizpack, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizpack.Intercept(f(g(h())))`.
func (c *QuizpackClient) Intercept(interceptors ...Interceptor) {
	c.inters.Quizpack = append(c.inters.Quizpack, interceptors...)
}

// Create returns a builder for creating a Quizpack entity.
func (c *QuizpackClient) Create() *QuizpackCreate {
	mutation := newQuizpackMutation(c.config, OpCreate)
	return &QuizpackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Quizpack entities.
func (c *QuizpackClient) CreateBulk(builders ...*QuizpackCreate) *QuizpackCreateBulk {
	return &QuizpackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizpackClient) MapCreateBulk(slice any, setFunc func(*QuizpackCreate, int)) *QuizpackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizpackCreateBulk{err: fmt.Errorf("calling to QuizpackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizpackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizpackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Quizpack.
func (c *QuizpackClient) Update() *QuizpackUpdate {
	mutation := newQuizpackMutation(c.config, OpUpdate)
	return &QuizpackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizpackClient) UpdateOne(q *Quizpack) *QuizpackUpdateOne {
	mutation := newQuizpackMutation(c.config, OpUpdateOne, withQuizpack(q))
	return &QuizpackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizpackClient) UpdateOneID(id int) *QuizpackUpdateOne {
	mutation := newQuizpackMutation(c.config, OpUpdateOne, withQuizpackID(id))
	return &QuizpackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Quizpack.
func (c *QuizpackClient) Delete() *QuizpackDelete {
	mutation := newQuizpackMutation(c.config, OpDelete)
	return &QuizpackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizpackClient) DeleteOne(q *Quizpack) *QuizpackDeleteOne {
	return c.DeleteOneID(q.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizpackClient) DeleteOneID(id int) *QuizpackDeleteOne {
	builder := c.Delete().Where(quizpack.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizpackDeleteOne{builder}
}

// Query returns a query builder for Quizpack.
func (c *QuizpackClient) Query() *QuizpackQuery {
	return &QuizpackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizpack},
		inters: c.Interceptors(),
	}
}

// Get returns a Quizpack entity by its id.
func (c *QuizpackClient) Get(ctx context.Context, id int) (*Quizpack, error) {
	return c.Query().Where(quizpack.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizpackClient) GetX(ctx context.Context, id int) *Quizpack {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizpackClient) Hooks() []Hook {
	return c.hooks.Quizpack
}

// Interceptors returns the client interceptors.
func (c *QuizpackClient) Interceptors() []Interceptor {
	return c.inters.Quizpack
}

func (c *QuizpackClient) mutate(ctx context.Context, m *QuizpackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizpackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizpackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizpackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizpackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Quizpack mutation op: %q", m.Op())
	}
}

// UserQuizAnswerClient is a client for the UserQuizAnswer schema.
type UserQuizAnswerClient struct {
	config
}

// NewUserQuizAnswerClient returns a client for the UserQuizAnswer from the given config.
func NewUserQuizAnswerClient(c config) *UserQuizAnswerClient {
	return &UserQuizAnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userquizanswer.Hooks(f(g(h())))`.
func (c *UserQuizAnswerClient) Use(hooks ...Hook) {
	c.hooks.UserQuizAnswer = append(c.hooks.UserQuizAnswer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userquizanswer.Intercept(f(g(h())))`.
func (c *UserQuizAnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserQuizAnswer = append(c.inters.UserQuizAnswer, interceptors...)
}

// Create returns a builder for creating a UserQuizAnswer entity.
func (c *UserQuizAnswerClient) Create() *UserQuizAnswerCreate {
	mutation := newUserQuizAnswerMutation(c.config, OpCreate)
	return &UserQuizAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserQuizAnswer entities.
func (c *UserQuizAnswerClient) CreateBulk(builders ...*UserQuizAnswerCreate) *UserQuizAnswerCreateBulk {
	return &UserQuizAnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserQuizAnswerClient) MapCreateBulk(slice any, setFunc func(*UserQuizAnswerCreate, int)) *UserQuizAnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserQuizAnswerCreateBulk{err: fmt.Errorf("calling to UserQuizAnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserQuizAnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserQuizAnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserQuizAnswer.
func (c *UserQuizAnswerClient) Update() *UserQuizAnswerUpdate {
	mutation := newUserQuizAnswerMutation(c.config, OpUpdate)
	return &UserQuizAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserQuizAnswerClient) UpdateOne(uqa *UserQuizAnswer) *UserQuizAnswerUpdateOne {
	mutation := newUserQuizAnswerMutation(c.config, OpUpdateOne, withUserQuizAnswer(uqa))
	return &UserQuizAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserQuizAnswerClient) UpdateOneID(id int) *UserQuizAnswerUpdateOne {
	mutation := newUserQuizAnswerMutation(c.config, OpUpdateOne, withUserQuizAnswerID(id))
	return &UserQuizAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserQuizAnswer.
func (c *UserQuizAnswerClient) Delete() *UserQuizAnswerDelete {
	mutation := newUserQuizAnswerMutation(c.config, OpDelete)
	return &UserQuizAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserQuizAnswerClient) DeleteOne(uqa *UserQuizAnswer) *UserQuizAnswerDeleteOne {
	return c.DeleteOneID(uqa.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserQuizAnswerClient) DeleteOneID(id int) *UserQuizAnswerDeleteOne {
	builder := c.Delete().Where(userquizanswer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserQuizAnswerDeleteOne{builder}
}

// Query returns a query builder for UserQuizAnswer.
func (c *UserQuizAnswerClient) Query() *UserQuizAnswerQuery {
	return &UserQuizAnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserQuizAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a UserQuizAnswer entity by its id.
func (c *UserQuizAnswerClient) Get(ctx context.Context, id int) (*UserQuizAnswer, error) {
	return c.Query().Where(userquizanswer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserQuizAnswerClient) GetX(ctx context.Context, id int) *UserQuizAnswer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserQuizAnswerClient) Hooks() []Hook {
	return c.hooks.UserQuizAnswer
}

// Interceptors returns the client interceptors.
func (c *UserQuizAnswerClient) Interceptors() []Interceptor {
	return c.inters.UserQuizAnswer
}

func (c *UserQuizAnswerClient) mutate(ctx context.Context, m *UserQuizAnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserQuizAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserQuizAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserQuizAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserQuizAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserQuizAnswer mutation op: %q", m.Op())
	}
}

// UserQuizpackClient is a client for the UserQuizpack schema.
type UserQuizpackClient struct {
	config
}

// NewUserQuizpackClient returns a client for the UserQuizpack from the given config.
func NewUserQuizpackClient(c config) *UserQuizpackClient {
	return &UserQuizpackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userquizpack.Hooks(f(g(h())))`.
func (c *UserQuizpackClient) Use(hooks ...Hook) {
	c.hooks.UserQuizpack = append(c.hooks.UserQuizpack, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userquizpack.Intercept(f(g(h())))`.
func (c *UserQuizpackClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserQuizpack = append(c.inters.UserQuizpack, interceptors...)
}

// Create returns a builder for creating a UserQuizpack entity.
func (c *UserQuizpackClient) Create() *UserQuizpackCreate {
	mutation := newUserQuizpackMutation(c.config, OpCreate)
	return &UserQuizpackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserQuizpack entities.
func (c *UserQuizpackClient) CreateBulk(builders ...*UserQuizpackCreate) *UserQuizpackCreateBulk {
	return &UserQuizpackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserQuizpackClient) MapCreateBulk(slice any, setFunc func(*UserQuizpackCreate, int)) *UserQuizpackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserQuizpackCreateBulk{err: fmt.Errorf("calling to UserQuizpackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserQuizpackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserQuizpackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserQuizpack.
func (c *UserQuizpackClient) Update() *UserQuizpackUpdate {
	mutation := newUserQuizpackMutation(c.config, OpUpdate)
	return &UserQuizpackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserQuizpackClient) UpdateOne(uq *UserQuizpack) *UserQuizpackUpdateOne {
	mutation := newUserQuizpackMutation(c.config, OpUpdateOne, withUserQuizpack(uq))
	return &UserQuizpackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserQuizpackClient) UpdateOneID(id int) *UserQuizpackUpdateOne {
	mutation := newUserQuizpackMutation(c.config, OpUpdateOne, withUserQuizpackID(id))
	return &UserQuizpackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserQuizpack.
func (c *UserQuizpackClient) Delete() *UserQuizpackDelete {
	mutation := newUserQuizpackMutation(c.config, OpDelete)
	return &UserQuizpackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserQuizpackClient) DeleteOne(uq *UserQuizpack) *UserQuizpackDeleteOne {
	return c.DeleteOneID(uq.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserQuizpackClient) DeleteOneID(id int) *UserQuizpackDeleteOne {
	builder := c.Delete().Where(userquizpack.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserQuizpackDeleteOne{builder}
}

// Query returns a query builder for UserQuizpack.
func (c *UserQuizpackClient) Query() *UserQuizpackQuery {
	return &UserQuizpackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserQuizpack},
		inters: c.Interceptors(),
	}
}

// Get returns a UserQuizpack entity by its id.
func (c *UserQuizpackClient) Get(ctx context.Context, id int) (*UserQuizpack, error) {
	return c.Query().Where(userquizpack.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserQuizpackClient) GetX(ctx context.Context, id int) *UserQuizpack {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserQuizpackClient) Hooks() []Hook {
	return c.hooks.UserQuizpack
}

// Interceptors returns the client interceptors.
func (c *UserQuizpackClient) Interceptors() []Interceptor {
	return c.inters.UserQuizpack
}

func (c *UserQuizpackClient) mutate(ctx context.Context, m *UserQuizpackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserQuizpackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserQuizpackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserQuizpackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserQuizpackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserQuizpack mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CatalogEntry, Choice, PackStats, Question, Quizpack, UserQuizAnswer,
		UserQuizpack []ent.Hook
	}
	inters struct {
		CatalogEntry, Choice, PackStats, Question, Quizpack, UserQuizAnswer,
		UserQuizpack []ent.Interceptor
	}
)
