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
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// CatalogEntryQuery is the builder for querying CatalogEntry entities.
type CatalogEntryQuery struct {
	config
	ctx        *QueryContext
	order      []catalogentry.OrderOption
	inters     []Interceptor
	predicates []predicate.CatalogEntry
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CatalogEntryQuery builder.
func (ceq *CatalogEntryQuery) Where(ps ...predicate.CatalogEntry) *CatalogEntryQuery {
	ceq.predicates = append(ceq.predicates, ps...)
	return ceq
}

// Limit the number of records to be returned by this query.
func (ceq *CatalogEntryQuery) Limit(limit int) *CatalogEntryQuery {
	ceq.ctx.Limit = &limit
	return ceq
}

// Offset to start from.
func (ceq *CatalogEntryQuery) Offset(offset int) *CatalogEntryQuery {
	ceq.ctx.Offset = &offset
	return ceq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ceq *CatalogEntryQuery) Unique(unique bool) *CatalogEntryQuery {
	ceq.ctx.Unique = &unique
	return ceq
}

// Order specifies how the records should be ordered.
func (ceq *CatalogEntryQuery) Order(o ...catalogentry.OrderOption) *CatalogEntryQuery {
	ceq.order = append(ceq.order, o...)
	return ceq
}

// First returns the first CatalogEntry entity from the query.
// Returns a *NotFoundError when no CatalogEntry was found.
func (ceq *CatalogEntryQuery) First(ctx context.Context) (*CatalogEntry, error) {
	nodes, err := ceq.Limit(1).All(setContextOp(ctx, ceq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{catalogentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ceq *CatalogEntryQuery) FirstX(ctx context.Context) *CatalogEntry {
	node, err := ceq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CatalogEntry ID from the query.
// Returns a *NotFoundError when no CatalogEntry ID was found.
func (ceq *CatalogEntryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ceq.Limit(1).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{catalogentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ceq *CatalogEntryQuery) FirstIDX(ctx context.Context) int {
	id, err := ceq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CatalogEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CatalogEntry entity is found.
// Returns a *NotFoundError when no CatalogEntry entities are found.
func (ceq *CatalogEntryQuery) Only(ctx context.Context) (*CatalogEntry, error) {
	nodes, err := ceq.Limit(2).All(setContextOp(ctx, ceq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{catalogentry.Label}
	default:
		return nil, &NotSingularError{catalogentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ceq *CatalogEntryQuery) OnlyX(ctx context.Context) *CatalogEntry {
	node, err := ceq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CatalogEntry ID in the query.
// Returns a *NotSingularError when more than one CatalogEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (ceq *CatalogEntryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ceq.Limit(2).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{catalogentry.Label}
	default:
		err = &NotSingularError{catalogentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ceq *CatalogEntryQuery) OnlyIDX(ctx context.Context) int {
	id, err := ceq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CatalogEntries.
func (ceq *CatalogEntryQuery) All(ctx context.Context) ([]*CatalogEntry, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryAll)
	if err := ceq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CatalogEntry, *CatalogEntryQuery]()
	return withInterceptors[[]*CatalogEntry](ctx, ceq, qr, ceq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ceq *CatalogEntryQuery) AllX(ctx context.Context) []*CatalogEntry {
	nodes, err := ceq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CatalogEntry IDs.
func (ceq *CatalogEntryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ceq.ctx.Unique == nil && ceq.path != nil {
		ceq.Unique(true)
	}
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryIDs)
	if err = ceq.Select(catalogentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ceq *CatalogEntryQuery) IDsX(ctx context.Context) []int {
	ids, err := ceq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ceq *CatalogEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryCount)
	if err := ceq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ceq, querierCount[*CatalogEntryQuery](), ceq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ceq *CatalogEntryQuery) CountX(ctx context.Context) int {
	count, err := ceq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ceq *CatalogEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryExist)
	switch _, err := ceq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ceq *CatalogEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := ceq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CatalogEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ceq *CatalogEntryQuery) Clone() *CatalogEntryQuery {
	if ceq == nil {
		return nil
	}
	return &CatalogEntryQuery{
		config:     ceq.config,
		ctx:        ceq.ctx.Clone(),
		order:      append([]catalogentry.OrderOption{}, ceq.order...),
		inters:     append([]Interceptor{}, ceq.inters...),
		predicates: append([]predicate.CatalogEntry{}, ceq.predicates...),
		// clone intermediate query.
		sql:  ceq.sql.Clone(),
		path: ceq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CatalogOrder int `json:"catalog_order,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CatalogEntry.Query().
//		GroupBy(catalogentry.FieldCatalogOrder).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ceq *CatalogEntryQuery) GroupBy(field string, fields ...string) *CatalogEntryGroupBy {
	ceq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CatalogEntryGroupBy{build: ceq}
	grbuild.flds = &ceq.ctx.Fields
	grbuild.label = catalogentry.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CatalogOrder int `json:"catalog_order,omitempty"`
//	}
//
//	client.CatalogEntry.Query().
//		Select(catalogentry.FieldCatalogOrder).
//		Scan(ctx, &v)
func (ceq *CatalogEntryQuery) Select(fields ...string) *CatalogEntrySelect {
	ceq.ctx.Fields = append(ceq.ctx.Fields, fields...)
	sbuild := &CatalogEntrySelect{CatalogEntryQuery: ceq}
	sbuild.label = catalogentry.Label
	sbuild.flds, sbuild.scan = &ceq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CatalogEntrySelect configured with the given aggregations.
func (ceq *CatalogEntryQuery) Aggregate(fns ...AggregateFunc) *CatalogEntrySelect {
	return ceq.Select().Aggregate(fns...)
}

func (ceq *CatalogEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ceq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ceq); err != nil {
				return err
			}
		}
	}
	for _, f := range ceq.ctx.Fields {
		if !catalogentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ceq.path != nil {
		prev, err := ceq.path(ctx)
		if err != nil {
			return err
		}
		ceq.sql = prev
	}
	return nil
}

func (ceq *CatalogEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CatalogEntry, error) {
	var (
		nodes = []*CatalogEntry{}
		_spec = ceq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CatalogEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CatalogEntry{config: ceq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ceq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ceq *CatalogEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ceq.querySpec()
	_spec.Node.Columns = ceq.ctx.Fields
	if len(ceq.ctx.Fields) > 0 {
		_spec.Unique = ceq.ctx.Unique != nil && *ceq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ceq.driver, _spec)
}

func (ceq *CatalogEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(catalogentry.Table, catalogentry.Columns, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	_spec.From = ceq.sql
	if unique := ceq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ceq.path != nil {
		_spec.Unique = true
	}
	if fields := ceq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogentry.FieldID)
		for i := range fields {
			if fields[i] != catalogentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ceq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ceq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ceq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ceq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ceq *CatalogEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ceq.driver.Dialect())
	t1 := builder.Table(catalogentry.Table)
	columns := ceq.ctx.Fields
	if len(columns) == 0 {
		columns = catalogentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ceq.sql != nil {
		selector = ceq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ceq.ctx.Unique != nil && *ceq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ceq.predicates {
		p(selector)
	}
	for _, p := range ceq.order {
		p(selector)
	}
	if offset := ceq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ceq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CatalogEntryGroupBy is the group-by builder for CatalogEntry entities.
type CatalogEntryGroupBy struct {
	selector
	build *CatalogEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cegb *CatalogEntryGroupBy) Aggregate(fns ...AggregateFunc) *CatalogEntryGroupBy {
	cegb.fns = append(cegb.fns, fns...)
	return cegb
}

// Scan applies the selector query and scans the result into the given value.
func (cegb *CatalogEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cegb.build.ctx, ent.OpQueryGroupBy)
	if err := cegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CatalogEntryQuery, *CatalogEntryGroupBy](ctx, cegb.build, cegb, cegb.build.inters, v)
}

func (cegb *CatalogEntryGroupBy) sqlScan(ctx context.Context, root *CatalogEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cegb.fns))
	for _, fn := range cegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cegb.flds)+len(cegb.fns))
		for _, f := range *cegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CatalogEntrySelect is the builder for selecting fields of CatalogEntry entities.
type CatalogEntrySelect struct {
	*CatalogEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ces *CatalogEntrySelect) Aggregate(fns ...AggregateFunc) *CatalogEntrySelect {
	ces.fns = append(ces.fns, fns...)
	return ces
}

// Scan applies the selector query and scans the result into the given value.
func (ces *CatalogEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ces.ctx, ent.OpQuerySelect)
	if err := ces.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CatalogEntryQuery, *CatalogEntrySelect](ctx, ces.CatalogEntryQuery, ces, ces.inters, v)
}

func (ces *CatalogEntrySelect) sqlScan(ctx context.Context, root *CatalogEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ces.fns))
	for _, fn := range ces.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ces.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ces.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
