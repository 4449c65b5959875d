// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// CatalogEntryDelete is the builder for deleting a CatalogEntry entity.
type CatalogEntryDelete struct {
	config
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// Where appends a list predicates to the CatalogEntryDelete builder.
func (ced *CatalogEntryDelete) Where(ps ...predicate.CatalogEntry) *CatalogEntryDelete {
	ced.mutation.Where(ps...)
	return ced
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ced *CatalogEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ced.sqlExec, ced.mutation, ced.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ced *CatalogEntryDelete) ExecX(ctx context.Context) int {
	n, err := ced.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ced *CatalogEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(catalogentry.Table, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	if ps := ced.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ced.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ced.mutation.done = true
	return affected, err
}

// CatalogEntryDeleteOne is the builder for deleting a single CatalogEntry entity.
type CatalogEntryDeleteOne struct {
	ced *CatalogEntryDelete
}

// Where appends a list predicates to the CatalogEntryDelete builder.
func (cedo *CatalogEntryDeleteOne) Where(ps ...predicate.CatalogEntry) *CatalogEntryDeleteOne {
	cedo.ced.mutation.Where(ps...)
	return cedo
}

// Exec executes the deletion query.
func (cedo *CatalogEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := cedo.ced.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{catalogentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cedo *CatalogEntryDeleteOne) ExecX(ctx context.Context) {
	if err := cedo.Exec(ctx); err != nil {
		panic(err)
	}
}
