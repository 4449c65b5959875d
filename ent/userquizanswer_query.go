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
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
)

// UserQuizAnswerQuery is the builder for querying UserQuizAnswer entities.
type UserQuizAnswerQuery struct {
	config
	ctx        *QueryContext
	order      []userquizanswer.OrderOption
	inters     []Interceptor
	predicates []predicate.UserQuizAnswer
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UserQuizAnswerQuery builder.
func (uqaq *UserQuizAnswerQuery) Where(ps ...predicate.UserQuizAnswer) *UserQuizAnswerQuery {
	uqaq.predicates = append(uqaq.predicates, ps...)
	return uqaq
}

// Limit the number of records to be returned by this query.
func (uqaq *UserQuizAnswerQuery) Limit(limit int) *UserQuizAnswerQuery {
	uqaq.ctx.Limit = &limit
	return uqaq
}

// Offset to start from.
func (uqaq *UserQuizAnswerQuery) Offset(offset int) *UserQuizAnswerQuery {
	uqaq.ctx.Offset = &offset
	return uqaq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (uqaq *UserQuizAnswerQuery) Unique(unique bool) *UserQuizAnswerQuery {
	uqaq.ctx.Unique = &unique
	return uqaq
}

// Order specifies how the records should be ordered.
func (uqaq *UserQuizAnswerQuery) Order(o ...userquizanswer.OrderOption) *UserQuizAnswerQuery {
	uqaq.order = append(uqaq.order, o...)
	return uqaq
}

// First returns the first UserQuizAnswer entity from the query.
// Returns a *NotFoundError when no UserQuizAnswer was found.
func (uqaq *UserQuizAnswerQuery) First(ctx context.Context) (*UserQuizAnswer, error) {
	nodes, err := uqaq.Limit(1).All(setContextOp(ctx, uqaq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{userquizanswer.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) FirstX(ctx context.Context) *UserQuizAnswer {
	node, err := uqaq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UserQuizAnswer ID from the query.
// Returns a *NotFoundError when no UserQuizAnswer ID was found.
func (uqaq *UserQuizAnswerQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uqaq.Limit(1).IDs(setContextOp(ctx, uqaq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{userquizanswer.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) FirstIDX(ctx context.Context) int {
	id, err := uqaq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UserQuizAnswer entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UserQuizAnswer entity is found.
// Returns a *NotFoundError when no UserQuizAnswer entities are found.
func (uqaq *UserQuizAnswerQuery) Only(ctx context.Context) (*UserQuizAnswer, error) {
	nodes, err := uqaq.Limit(2).All(setContextOp(ctx, uqaq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{userquizanswer.Label}
	default:
		return nil, &NotSingularError{userquizanswer.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) OnlyX(ctx context.Context) *UserQuizAnswer {
	node, err := uqaq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UserQuizAnswer ID in the query.
// Returns a *NotSingularError when more than one UserQuizAnswer ID is found.
// Returns a *NotFoundError when no entities are found.
func (uqaq *UserQuizAnswerQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uqaq.Limit(2).IDs(setContextOp(ctx, uqaq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{userquizanswer.Label}
	default:
		err = &NotSingularError{userquizanswer.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) OnlyIDX(ctx context.Context) int {
	id, err := uqaq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UserQuizAnswers.
func (uqaq *UserQuizAnswerQuery) All(ctx context.Context) ([]*UserQuizAnswer, error) {
	ctx = setContextOp(ctx, uqaq.ctx, ent.OpQueryAll)
	if err := uqaq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UserQuizAnswer, *UserQuizAnswerQuery]()
	return withInterceptors[[]*UserQuizAnswer](ctx, uqaq, qr, uqaq.inters)
}

// AllX is like All, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) AllX(ctx context.Context) []*UserQuizAnswer {
	nodes, err := uqaq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UserQuizAnswer IDs.
func (uqaq *UserQuizAnswerQuery) IDs(ctx context.Context) (ids []int, err error) {
	if uqaq.ctx.Unique == nil && uqaq.path != nil {
		uqaq.Unique(true)
	}
	ctx = setContextOp(ctx, uqaq.ctx, ent.OpQueryIDs)
	if err = uqaq.Select(userquizanswer.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) IDsX(ctx context.Context) []int {
	ids, err := uqaq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (uqaq *UserQuizAnswerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, uqaq.ctx, ent.OpQueryCount)
	if err := uqaq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, uqaq, querierCount[*UserQuizAnswerQuery](), uqaq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) CountX(ctx context.Context) int {
	count, err := uqaq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (uqaq *UserQuizAnswerQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, uqaq.ctx, ent.OpQueryExist)
	switch _, err := uqaq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (uqaq *UserQuizAnswerQuery) ExistX(ctx context.Context) bool {
	exist, err := uqaq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UserQuizAnswerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (uqaq *UserQuizAnswerQuery) Clone() *UserQuizAnswerQuery {
	if uqaq == nil {
		return nil
	}
	return &UserQuizAnswerQuery{
		config:     uqaq.config,
		ctx:        uqaq.ctx.Clone(),
		order:      append([]userquizanswer.OrderOption{}, uqaq.order...),
		inters:     append([]Interceptor{}, uqaq.inters...),
		predicates: append([]predicate.UserQuizAnswer{}, uqaq.predicates...),
		// clone intermediate query.
		sql:  uqaq.sql.Clone(),
		path: uqaq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserQuizpackID int `json:"user_quizpack_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UserQuizAnswer.Query().
//		GroupBy(userquizanswer.FieldUserQuizpackID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (uqaq *UserQuizAnswerQuery) GroupBy(field string, fields ...string) *UserQuizAnswerGroupBy {
	uqaq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UserQuizAnswerGroupBy{build: uqaq}
	grbuild.flds = &uqaq.ctx.Fields
	grbuild.label = userquizanswer.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserQuizpackID int `json:"user_quizpack_id,omitempty"`
//	}
//
//	client.UserQuizAnswer.Query().
//		Select(userquizanswer.FieldUserQuizpackID).
//		Scan(ctx, &v)
func (uqaq *UserQuizAnswerQuery) Select(fields ...string) *UserQuizAnswerSelect {
	uqaq.ctx.Fields = append(uqaq.ctx.Fields, fields...)
	sbuild := &UserQuizAnswerSelect{UserQuizAnswerQuery: uqaq}
	sbuild.label = userquizanswer.Label
	sbuild.flds, sbuild.scan = &uqaq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UserQuizAnswerSelect configured with the given aggregations.
func (uqaq *UserQuizAnswerQuery) Aggregate(fns ...AggregateFunc) *UserQuizAnswerSelect {
	return uqaq.Select().Aggregate(fns...)
}

func (uqaq *UserQuizAnswerQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range uqaq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, uqaq); err != nil {
				return err
			}
		}
	}
	for _, f := range uqaq.ctx.Fields {
		if !userquizanswer.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if uqaq.path != nil {
		prev, err := uqaq.path(ctx)
		if err != nil {
			return err
		}
		uqaq.sql = prev
	}
	return nil
}

func (uqaq *UserQuizAnswerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UserQuizAnswer, error) {
	var (
		nodes = []*UserQuizAnswer{}
		_spec = uqaq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UserQuizAnswer).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UserQuizAnswer{config: uqaq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, uqaq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (uqaq *UserQuizAnswerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := uqaq.querySpec()
	_spec.Node.Columns = uqaq.ctx.Fields
	if len(uqaq.ctx.Fields) > 0 {
		_spec.Unique = uqaq.ctx.Unique != nil && *uqaq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, uqaq.driver, _spec)
}

func (uqaq *UserQuizAnswerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(userquizanswer.Table, userquizanswer.Columns, sqlgraph.NewFieldSpec(userquizanswer.FieldID, field.TypeInt))
	_spec.From = uqaq.sql
	if unique := uqaq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if uqaq.path != nil {
		_spec.Unique = true
	}
	if fields := uqaq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userquizanswer.FieldID)
		for i := range fields {
			if fields[i] != userquizanswer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := uqaq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := uqaq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := uqaq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := uqaq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (uqaq *UserQuizAnswerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(uqaq.driver.Dialect())
	t1 := builder.Table(userquizanswer.Table)
	columns := uqaq.ctx.Fields
	if len(columns) == 0 {
		columns = userquizanswer.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if uqaq.sql != nil {
		selector = uqaq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if uqaq.ctx.Unique != nil && *uqaq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range uqaq.predicates {
		p(selector)
	}
	for _, p := range uqaq.order {
		p(selector)
	}
	if offset := uqaq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := uqaq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UserQuizAnswerGroupBy is the group-by builder for UserQuizAnswer entities.
type UserQuizAnswerGroupBy struct {
	selector
	build *UserQuizAnswerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (uqagb *UserQuizAnswerGroupBy) Aggregate(fns ...AggregateFunc) *UserQuizAnswerGroupBy {
	uqagb.fns = append(uqagb.fns, fns...)
	return uqagb
}

// Scan applies the selector query and scans the result into the given value.
func (uqagb *UserQuizAnswerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uqagb.build.ctx, ent.OpQueryGroupBy)
	if err := uqagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserQuizAnswerQuery, *UserQuizAnswerGroupBy](ctx, uqagb.build, uqagb, uqagb.build.inters, v)
}

func (uqagb *UserQuizAnswerGroupBy) sqlScan(ctx context.Context, root *UserQuizAnswerQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(uqagb.fns))
	for _, fn := range uqagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*uqagb.flds)+len(uqagb.fns))
		for _, f := range *uqagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*uqagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uqagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UserQuizAnswerSelect is the builder for selecting fields of UserQuizAnswer entities.
type UserQuizAnswerSelect struct {
	*UserQuizAnswerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (uqas *UserQuizAnswerSelect) Aggregate(fns ...AggregateFunc) *UserQuizAnswerSelect {
	uqas.fns = append(uqas.fns, fns...)
	return uqas
}

// Scan applies the selector query and scans the result into the given value.
func (uqas *UserQuizAnswerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uqas.ctx, ent.OpQuerySelect)
	if err := uqas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserQuizAnswerQuery, *UserQuizAnswerSelect](ctx, uqas.UserQuizAnswerQuery, uqas, uqas.inters, v)
}

func (uqas *UserQuizAnswerSelect) sqlScan(ctx context.Context, root *UserQuizAnswerQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(uqas.fns))
	for _, fn := range uqas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*uqas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uqas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
