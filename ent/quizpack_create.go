// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/quizpack"
)

// QuizpackCreate is the builder for creating a Quizpack entity.
type QuizpackCreate struct {
	config
	mutation *QuizpackMutation
	hooks    []Hook
}

// SetKeywords sets the "keywords" field.
func (qc *QuizpackCreate) SetKeywords(s string) *QuizpackCreate {
	qc.mutation.SetKeywords(s)
	return qc
}

// SetQuestionCount sets the "question_count" field.
func (qc *QuizpackCreate) SetQuestionCount(i int) *QuizpackCreate {
	qc.mutation.SetQuestionCount(i)
	return qc
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (qc *QuizpackCreate) SetNillableQuestionCount(i *int) *QuizpackCreate {
	if i != nil {
		qc.SetQuestionCount(*i)
	}
	return qc
}

// SetActive sets the "active" field.
func (qc *QuizpackCreate) SetActive(b bool) *QuizpackCreate {
	qc.mutation.SetActive(b)
	return qc
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (qc *QuizpackCreate) SetNillableActive(b *bool) *QuizpackCreate {
	if b != nil {
		qc.SetActive(*b)
	}
	return qc
}

// Mutation returns the QuizpackMutation object of the builder.
func (qc *QuizpackCreate) Mutation() *QuizpackMutation {
	return qc.mutation
}

// Save creates the Quizpack in the database.
func (qc *QuizpackCreate) Save(ctx context.Context) (*Quizpack, error) {
	qc.defaults()
	return withHooks(ctx, qc.sqlSave, qc.mutation, qc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qc *QuizpackCreate) SaveX(ctx context.Context) *Quizpack {
	v, err := qc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qc *QuizpackCreate) Exec(ctx context.Context) error {
	_, err := qc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qc *QuizpackCreate) ExecX(ctx context.Context) {
	if err := qc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qc *QuizpackCreate) defaults() {
	if _, ok := qc.mutation.QuestionCount(); !ok {
		v := quizpack.DefaultQuestionCount
		qc.mutation.SetQuestionCount(v)
	}
	if _, ok := qc.mutation.Active(); !ok {
		v := quizpack.DefaultActive
		qc.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qc *QuizpackCreate) check() error {
	if _, ok := qc.mutation.Keywords(); !ok {
		return &ValidationError{Name: "keywords", err: errors.New(`ent: missing required field "Quizpack.keywords"`)}
	}
	if v, ok := qc.mutation.Keywords(); ok {
		if err := quizpack.KeywordsValidator(v); err != nil {
			return &ValidationError{Name: "keywords", err: fmt.Errorf(`ent: validator failed for field "Quizpack.keywords": %w`, err)}
		}
	}
	if _, ok := qc.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "Quizpack.question_count"`)}
	}
	if _, ok := qc.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Quizpack.active"`)}
	}
	return nil
}

func (qc *QuizpackCreate) sqlSave(ctx context.Context) (*Quizpack, error) {
	if err := qc.check(); err != nil {
		return nil, err
	}
	_node, _spec := qc.createSpec()
	if err := sqlgraph.CreateNode(ctx, qc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	qc.mutation.id = &_node.ID
	qc.mutation.done = true
	return _node, nil
}

func (qc *QuizpackCreate) createSpec() (*Quizpack, *sqlgraph.CreateSpec) {
	var (
		_node = &Quizpack{config: qc.config}
		_spec = sqlgraph.NewCreateSpec(quizpack.Table, sqlgraph.NewFieldSpec(quizpack.FieldID, field.TypeInt))
	)
	if value, ok := qc.mutation.Keywords(); ok {
		_spec.SetField(quizpack.FieldKeywords, field.TypeString, value)
		_node.Keywords = value
	}
	if value, ok := qc.mutation.QuestionCount(); ok {
		_spec.SetField(quizpack.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := qc.mutation.Active(); ok {
		_spec.SetField(quizpack.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// QuizpackCreateBulk is the builder for creating many Quizpack entities in bulk.
type QuizpackCreateBulk struct {
	config
	err      error
	builders []*QuizpackCreate
}

// Save creates the Quizpack entities in the database.
func (qcb *QuizpackCreateBulk) Save(ctx context.Context) ([]*Quizpack, error) {
	if qcb.err != nil {
		return nil, qcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qcb.builders))
	nodes := make([]*Quizpack, len(qcb.builders))
	mutators := make([]Mutator, len(qcb.builders))
	for i := range qcb.builders {
		func(i int, root context.Context) {
			builder := qcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizpackMutation)
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
					_, err = mutators[i+1].Mutate(root, qcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, qcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qcb *QuizpackCreateBulk) SaveX(ctx context.Context) []*Quizpack {
	v, err := qcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qcb *QuizpackCreateBulk) Exec(ctx context.Context) error {
	_, err := qcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qcb *QuizpackCreateBulk) ExecX(ctx context.Context) {
	if err := qcb.Exec(ctx); err != nil {
		panic(err)
	}
}
