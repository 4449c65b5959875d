// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// UserQuizpackQuery is the builder for querying UserQuizpack entities.
type UserQuizpackQuery struct {
	config
	ctx        *QueryContext
	order      []userquizpack.OrderOption
	inters     []Interceptor
	predicates []predicate.UserQuizpack
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UserQuizpackQuery builder.
func (uqq *UserQuizpackQuery) Where(ps ...predicate.UserQuizpack) *UserQuizpackQuery {
	uqq.predicates = append(uqq.predicates, ps...)
	return uqq
}

// Limit the number of records to be returned by this query.
func (uqq *UserQuizpackQuery) Limit(limit int) *UserQuizpackQuery {
	uqq.ctx.Limit = &limit
	return uqq
}

// Offset to start from.
func (uqq *UserQuizpackQuery) Offset(offset int) *UserQuizpackQuery {
	uqq.ctx.Offset = &offset
	return uqq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (uqq *UserQuizpackQuery) Unique(unique bool) *UserQuizpackQuery {
	uqq.ctx.Unique = &unique
	return uqq
}

// Order specifies how the records should be ordered.
func (uqq *UserQuizpackQuery) Order(o ...userquizpack.OrderOption) *UserQuizpackQuery {
	uqq.order = append(uqq.order, o...)
	return uqq
}

// First returns the first UserQuizpack entity from the query.
// Returns a *NotFoundError when no UserQuizpack was found.
func (uqq *UserQuizpackQuery) First(ctx context.Context) (*UserQuizpack, error) {
	nodes, err := uqq.Limit(1).All(setContextOp(ctx, uqq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{userquizpack.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (uqq *UserQuizpackQuery) FirstX(ctx context.Context) *UserQuizpack {
	node, err := uqq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UserQuizpack ID from the query.
// Returns a *NotFoundError when no UserQuizpack ID was found.
func (uqq *UserQuizpackQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uqq.Limit(1).IDs(setContextOp(ctx, uqq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{userquizpack.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (uqq *UserQuizpackQuery) FirstIDX(ctx context.Context) int {
	id, err := uqq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UserQuizpack entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UserQuizpack entity is found.
// Returns a *NotFoundError when no UserQuizpack entities are found.
func (uqq *UserQuizpackQuery) Only(ctx context.Context) (*UserQuizpack, error) {
	nodes, err := uqq.Limit(2).All(setContextOp(ctx, uqq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{userquizpack.Label}
	default:
		return nil, &NotSingularError{userquizpack.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (uqq *UserQuizpackQuery) OnlyX(ctx context.Context) *UserQuizpack {
	node, err := uqq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UserQuizpack ID in the query.
// Returns a *NotSingularError when more than one UserQuizpack ID is found.
// Returns a *NotFoundError when no entities are found.
func (uqq *UserQuizpackQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uqq.Limit(2).IDs(setContextOp(ctx, uqq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{userquizpack.Label}
	default:
		err = &NotSingularError{userquizpack.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (uqq *UserQuizpackQuery) OnlyIDX(ctx context.Context) int {
	id, err := uqq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UserQuizpacks.
func (uqq *UserQuizpackQuery) All(ctx context.Context) ([]*UserQuizpack, error) {
	ctx = setContextOp(ctx, uqq.ctx, ent.OpQueryAll)
	if err := uqq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UserQuizpack, *UserQuizpackQuery]()
	return withInterceptors[[]*UserQuizpack](ctx, uqq, qr, uqq.inters)
}

// AllX is like All, but panics if an error occurs.
func (uqq *UserQuizpackQuery) AllX(ctx context.Context) []*UserQuizpack {
	nodes, err := uqq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UserQuizpack IDs.
func (uqq *UserQuizpackQuery) IDs(ctx context.Context) (ids []int, err error) {
	if uqq.ctx.Unique == nil && uqq.path != nil {
		uqq.Unique(true)
	}
	ctx = setContextOp(ctx, uqq.ctx, ent.OpQueryIDs)
	if err = uqq.Select(userquizpack.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (uqq *UserQuizpackQuery) IDsX(ctx context.Context) []int {
	ids, err := uqq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (uqq *UserQuizpackQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, uqq.ctx, ent.OpQueryCount)
	if err := uqq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, uqq, querierCount[*UserQuizpackQuery](), uqq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (uqq *UserQuizpackQuery) CountX(ctx context.Context) int {
	count, err := uqq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (uqq *UserQuizpackQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, uqq.ctx, ent.OpQueryExist)
	switch _, err := uqq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (uqq *UserQuizpackQuery) ExistX(ctx context.Context) bool {
	exist, err := uqq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UserQuizpackQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (uqq *UserQuizpackQuery) Clone() *UserQuizpackQuery {
	if uqq == nil {
		return nil
	}
	return &UserQuizpackQuery{
		config:     uqq.config,
		ctx:        uqq.ctx.Clone(),
		order:      append([]userquizpack.OrderOption{}, uqq.order...),
		inters:     append([]Interceptor{}, uqq.inters...),
		predicates: append([]predicate.UserQuizpack{}, uqq.predicates...),
		// clone intermediate query.
		sql:  uqq.sql.Clone(),
		path: uqq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UserQuizpack.Query().
//		GroupBy(userquizpack.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (uqq *UserQuizpackQuery) GroupBy(field string, fields ...string) *UserQuizpackGroupBy {
	uqq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UserQuizpackGroupBy{build: uqq}
	grbuild.flds = &uqq.ctx.Fields
	grbuild.label = userquizpack.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.UserQuizpack.Query().
//		Select(userquizpack.FieldUserID).
//		Scan(ctx, &v)
func (uqq *UserQuizpackQuery) Select(fields ...string) *UserQuizpackSelect {
	uqq.ctx.Fields = append(uqq.ctx.Fields, fields...)
	sbuild := &UserQuizpackSelect{UserQuizpackQuery: uqq}
	sbuild.label = userquizpack.Label
	sbuild.flds, sbuild.scan = &uqq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UserQuizpackSelect configured with the given aggregations.
func (uqq *UserQuizpackQuery) Aggregate(fns ...AggregateFunc) *UserQuizpackSelect {
	return uqq.Select().Aggregate(fns...)
}

func (uqq *UserQuizpackQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range uqq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, uqq); err != nil {
				return err
			}
		}
	}
	for _, f := range uqq.ctx.Fields {
		if !userquizpack.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if uqq.path != nil {
		prev, err := uqq.path(ctx)
		if err != nil {
			return err
		}
		uqq.sql = prev
	}
	return nil
}

func (uqq *UserQuizpackQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UserQuizpack, error) {
	var (
		nodes = []*UserQuizpack{}
		_spec = uqq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UserQuizpack).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UserQuizpack{config: uqq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, uqq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (uqq *UserQuizpackQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := uqq.querySpec()
	_spec.Node.Columns = uqq.ctx.Fields
	if len(uqq.ctx.Fields) > 0 {
		_spec.Unique = uqq.ctx.Unique != nil && *uqq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, uqq.driver, _spec)
}

func (uqq *UserQuizpackQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(userquizpack.Table, userquizpack.Columns, sqlgraph.NewFieldSpec(userquizpack.FieldID, field.TypeInt))
	_spec.From = uqq.sql
	if unique := uqq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if uqq.path != nil {
		_spec.Unique = true
	}
	if fields := uqq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userquizpack.FieldID)
		for i := range fields {
			if fields[i] != userquizpack.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := uqq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := uqq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := uqq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := uqq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (uqq *UserQuizpackQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(uqq.driver.Dialect())
	t1 := builder.Table(userquizpack.Table)
	columns := uqq.ctx.Fields
	if len(columns) == 0 {
		columns = userquizpack.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if uqq.sql != nil {
		selector = uqq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if uqq.ctx.Unique != nil && *uqq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range uqq.predicates {
		p(selector)
	}
	for _, p := range uqq.order {
		p(selector)
	}
	if offset := uqq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := uqq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UserQuizpackGroupBy is the group-by builder for UserQuizpack entities.
type UserQuizpackGroupBy struct {
	selector
	build *UserQuizpackQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (uqgb *UserQuizpackGroupBy) Aggregate(fns ...AggregateFunc) *UserQuizpackGroupBy {
	uqgb.fns = append(uqgb.fns, fns...)
	return uqgb
}

// Scan applies the selector query and scans the result into the given value.
func (uqgb *UserQuizpackGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uqgb.build.ctx, ent.OpQueryGroupBy)
	if err := uqgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserQuizpackQuery, *UserQuizpackGroupBy](ctx, uqgb.build, uqgb, uqgb.build.inters, v)
}

func (uqgb *UserQuizpackGroupBy) sqlScan(ctx context.Context, root *UserQuizpackQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(uqgb.fns))
	for _, fn := range uqgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*uqgb.flds)+len(uqgb.fns))
		for _, f := range *uqgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*uqgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uqgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UserQuizpackSelect is the builder for selecting fields of UserQuizpack entities.
type UserQuizpackSelect struct {
	*UserQuizpackQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (uqs *UserQuizpackSelect) Aggregate(fns ...AggregateFunc) *UserQuizpackSelect {
	uqs.fns = append(uqs.fns, fns...)
	return uqs
}

// Scan applies the selector query and scans the result into the given value.
func (uqs *UserQuizpackSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uqs.ctx, ent.OpQuerySelect)
	if err := uqs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserQuizpackQuery, *UserQuizpackSelect](ctx, uqs.UserQuizpackQuery, uqs, uqs.inters, v)
}

func (uqs *UserQuizpackSelect) sqlScan(ctx context.Context, root *UserQuizpackQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(uqs.fns))
	for _, fn := range uqs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*uqs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uqs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
