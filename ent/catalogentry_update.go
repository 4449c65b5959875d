// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// CatalogEntryUpdate is the builder for updating CatalogEntry entities.
type CatalogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// Where appends a list predicates to the CatalogEntryUpdate builder.
func (ceu *CatalogEntryUpdate) Where(ps ...predicate.CatalogEntry) *CatalogEntryUpdate {
	ceu.mutation.Where(ps...)
	return ceu
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (ceu *CatalogEntryUpdate) Mutation() *CatalogEntryMutation {
	return ceu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ceu *CatalogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ceu.sqlSave, ceu.mutation, ceu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceu *CatalogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := ceu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ceu *CatalogEntryUpdate) Exec(ctx context.Context) error {
	_, err := ceu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceu *CatalogEntryUpdate) ExecX(ctx context.Context) {
	if err := ceu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ceu *CatalogEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(catalogentry.Table, catalogentry.Columns, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	if ps := ceu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ceu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ceu.mutation.done = true
	return n, nil
}

// CatalogEntryUpdateOne is the builder for updating a single CatalogEntry entity.
type CatalogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (ceuo *CatalogEntryUpdateOne) Mutation() *CatalogEntryMutation {
	return ceuo.mutation
}

// Where appends a list predicates to the CatalogEntryUpdate builder.
func (ceuo *CatalogEntryUpdateOne) Where(ps ...predicate.CatalogEntry) *CatalogEntryUpdateOne {
	ceuo.mutation.Where(ps...)
	return ceuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ceuo *CatalogEntryUpdateOne) Select(field string, fields ...string) *CatalogEntryUpdateOne {
	ceuo.fields = append([]string{field}, fields...)
	return ceuo
}

// Save executes the query and returns the updated CatalogEntry entity.
func (ceuo *CatalogEntryUpdateOne) Save(ctx context.Context) (*CatalogEntry, error) {
	return withHooks(ctx, ceuo.sqlSave, ceuo.mutation, ceuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceuo *CatalogEntryUpdateOne) SaveX(ctx context.Context) *CatalogEntry {
	node, err := ceuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ceuo *CatalogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := ceuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceuo *CatalogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := ceuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ceuo *CatalogEntryUpdateOne) sqlSave(ctx context.Context) (_node *CatalogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(catalogentry.Table, catalogentry.Columns, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	id, ok := ceuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CatalogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ceuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogentry.FieldID)
		for _, f := range fields {
			if !catalogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != catalogentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ceuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &CatalogEntry{config: ceuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ceuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ceuo.mutation.done = true
	return _node, nil
}
