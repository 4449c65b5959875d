// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
)

// CatalogEntryCreate is the builder for creating a CatalogEntry entity.
type CatalogEntryCreate struct {
	config
	mutation *CatalogEntryMutation
	hooks    []Hook
}

// SetCatalogOrder sets the "catalog_order" field.
func (cec *CatalogEntryCreate) SetCatalogOrder(i int) *CatalogEntryCreate {
	cec.mutation.SetCatalogOrder(i)
	return cec
}

// SetQuizpackID sets the "quizpack_id" field.
func (cec *CatalogEntryCreate) SetQuizpackID(i int) *CatalogEntryCreate {
	cec.mutation.SetQuizpackID(i)
	return cec
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (cec *CatalogEntryCreate) Mutation() *CatalogEntryMutation {
	return cec.mutation
}

// Save creates the CatalogEntry in the database.
func (cec *CatalogEntryCreate) Save(ctx context.Context) (*CatalogEntry, error) {
	return withHooks(ctx, cec.sqlSave, cec.mutation, cec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cec *CatalogEntryCreate) SaveX(ctx context.Context) *CatalogEntry {
	v, err := cec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cec *CatalogEntryCreate) Exec(ctx context.Context) error {
	_, err := cec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cec *CatalogEntryCreate) ExecX(ctx context.Context) {
	if err := cec.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cec *CatalogEntryCreate) check() error {
	if _, ok := cec.mutation.CatalogOrder(); !ok {
		return &ValidationError{Name: "catalog_order", err: errors.New(`ent: missing required field "CatalogEntry.catalog_order"`)}
	}
	if _, ok := cec.mutation.QuizpackID(); !ok {
		return &ValidationError{Name: "quizpack_id", err: errors.New(`ent: missing required field "CatalogEntry.quizpack_id"`)}
	}
	return nil
}

func (cec *CatalogEntryCreate) sqlSave(ctx context.Context) (*CatalogEntry, error) {
	if err := cec.check(); err != nil {
		return nil, err
	}
	_node, _spec := cec.createSpec()
	if err := sqlgraph.CreateNode(ctx, cec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cec.mutation.id = &_node.ID
	cec.mutation.done = true
	return _node, nil
}

func (cec *CatalogEntryCreate) createSpec() (*CatalogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CatalogEntry{config: cec.config}
		_spec = sqlgraph.NewCreateSpec(catalogentry.Table, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	)
	if value, ok := cec.mutation.CatalogOrder(); ok {
		_spec.SetField(catalogentry.FieldCatalogOrder, field.TypeInt, value)
		_node.CatalogOrder = value
	}
	if value, ok := cec.mutation.QuizpackID(); ok {
		_spec.SetField(catalogentry.FieldQuizpackID, field.TypeInt, value)
		_node.QuizpackID = value
	}
	return _node, _spec
}

// CatalogEntryCreateBulk is the builder for creating many CatalogEntry entities in bulk.
type CatalogEntryCreateBulk struct {
	config
	err      error
	builders []*CatalogEntryCreate
}

// Save creates the CatalogEntry entities in the database.
func (cecb *CatalogEntryCreateBulk) Save(ctx context.Context) ([]*CatalogEntry, error) {
	if cecb.err != nil {
		return nil, cecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cecb.builders))
	nodes := make([]*CatalogEntry, len(cecb.builders))
	mutators := make([]Mutator, len(cecb.builders))
	for i := range cecb.builders {
		func(i int, root context.Context) {
			builder := cecb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CatalogEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, cecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, cecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cecb *CatalogEntryCreateBulk) SaveX(ctx context.Context) []*CatalogEntry {
	v, err := cecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cecb *CatalogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := cecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cecb *CatalogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := cecb.Exec(ctx); err != nil {
		panic(err)
	}
}
