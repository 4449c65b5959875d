// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/choice"
)

// ChoiceCreate is the builder for creating a Choice entity.
type ChoiceCreate struct {
	config
	mutation *ChoiceMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (cc *ChoiceCreate) SetQuestionID(i int) *ChoiceCreate {
	cc.mutation.SetQuestionID(i)
	return cc
}

// SetChoiceOrder sets the "choice_order" field.
func (cc *ChoiceCreate) SetChoiceOrder(i int) *ChoiceCreate {
	cc.mutation.SetChoiceOrder(i)
	return cc
}

// SetText sets the "text" field.
func (cc *ChoiceCreate) SetText(s string) *ChoiceCreate {
	cc.mutation.SetText(s)
	return cc
}

// SetCorrect sets the "correct" field.
func (cc *ChoiceCreate) SetCorrect(b bool) *ChoiceCreate {
	cc.mutation.SetCorrect(b)
	return cc
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (cc *ChoiceCreate) SetNillableCorrect(b *bool) *ChoiceCreate {
	if b != nil {
		cc.SetCorrect(*b)
	}
	return cc
}

// SetBlankPosition sets the "blank_position" field.
func (cc *ChoiceCreate) SetBlankPosition(i int) *ChoiceCreate {
	cc.mutation.SetBlankPosition(i)
	return cc
}

// SetNillableBlankPosition sets the "blank_position" field if the given value is not nil.
func (cc *ChoiceCreate) SetNillableBlankPosition(i *int) *ChoiceCreate {
	if i != nil {
		cc.SetBlankPosition(*i)
	}
	return cc
}

// Mutation returns the ChoiceMutation object of the builder.
func (cc *ChoiceCreate) Mutation() *ChoiceMutation {
	return cc.mutation
}

// Save creates the Choice in the database.
func (cc *ChoiceCreate) Save(ctx context.Context) (*Choice, error) {
	cc.defaults()
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *ChoiceCreate) SaveX(ctx context.Context) *Choice {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *ChoiceCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *ChoiceCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *ChoiceCreate) defaults() {
	if _, ok := cc.mutation.Correct(); !ok {
		v := choice.DefaultCorrect
		cc.mutation.SetCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cc *ChoiceCreate) check() error {
	if _, ok := cc.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Choice.question_id"`)}
	}
	if _, ok := cc.mutation.ChoiceOrder(); !ok {
		return &ValidationError{Name: "choice_order", err: errors.New(`ent: missing required field "Choice.choice_order"`)}
	}
	if _, ok := cc.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Choice.text"`)}
	}
	if v, ok := cc.mutation.Text(); ok {
		if err := choice.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Choice.text": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Choice.correct"`)}
	}
	return nil
}

func (cc *ChoiceCreate) sqlSave(ctx context.Context) (*Choice, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *ChoiceCreate) createSpec() (*Choice, *sqlgraph.CreateSpec) {
	var (
		_node = &Choice{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(choice.Table, sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt))
	)
	if value, ok := cc.mutation.QuestionID(); ok {
		_spec.SetField(choice.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := cc.mutation.ChoiceOrder(); ok {
		_spec.SetField(choice.FieldChoiceOrder, field.TypeInt, value)
		_node.ChoiceOrder = value
	}
	if value, ok := cc.mutation.Text(); ok {
		_spec.SetField(choice.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := cc.mutation.Correct(); ok {
		_spec.SetField(choice.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := cc.mutation.BlankPosition(); ok {
		_spec.SetField(choice.FieldBlankPosition, field.TypeInt, value)
		_node.BlankPosition = &value
	}
	return _node, _spec
}

// ChoiceCreateBulk is the builder for creating many Choice entities in bulk.
type ChoiceCreateBulk struct {
	config
	err      error
	builders []*ChoiceCreate
}

// Save creates the Choice entities in the database.
func (ccb *ChoiceCreateBulk) Save(ctx context.Context) ([]*Choice, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Choice, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChoiceMutation)
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
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *ChoiceCreateBulk) SaveX(ctx context.Context) []*Choice {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *ChoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *ChoiceCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}
