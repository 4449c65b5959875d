// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/schema"
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
)

// UserQuizAnswerCreate is the builder for creating a UserQuizAnswer entity.
type UserQuizAnswerCreate struct {
	config
	mutation *UserQuizAnswerMutation
	hooks    []Hook
}

// SetUserQuizpackID sets the "user_quizpack_id" field.
func (uqac *UserQuizAnswerCreate) SetUserQuizpackID(i int) *UserQuizAnswerCreate {
	uqac.mutation.SetUserQuizpackID(i)
	return uqac
}

// SetQuestionID sets the "question_id" field.
func (uqac *UserQuizAnswerCreate) SetQuestionID(i int) *UserQuizAnswerCreate {
	uqac.mutation.SetQuestionID(i)
	return uqac
}

// SetAnswerOrder sets the "answer_order" field.
func (uqac *UserQuizAnswerCreate) SetAnswerOrder(i int) *UserQuizAnswerCreate {
	uqac.mutation.SetAnswerOrder(i)
	return uqac
}

// SetSelected sets the "selected" field.
func (uqac *UserQuizAnswerCreate) SetSelected(sa schema.SelectedAnswer) *UserQuizAnswerCreate {
	uqac.mutation.SetSelected(sa)
	return uqac
}

// SetCorrect sets the "correct" field.
func (uqac *UserQuizAnswerCreate) SetCorrect(b bool) *UserQuizAnswerCreate {
	uqac.mutation.SetCorrect(b)
	return uqac
}

// SetAnsweredAt sets the "answered_at" field.
func (uqac *UserQuizAnswerCreate) SetAnsweredAt(t time.Time) *UserQuizAnswerCreate {
	uqac.mutation.SetAnsweredAt(t)
	return uqac
}

// Mutation returns the UserQuizAnswerMutation object of the builder.
func (uqac *UserQuizAnswerCreate) Mutation() *UserQuizAnswerMutation {
	return uqac.mutation
}

// Save creates the UserQuizAnswer in the database.
func (uqac *UserQuizAnswerCreate) Save(ctx context.Context) (*UserQuizAnswer, error) {
	return withHooks(ctx, uqac.sqlSave, uqac.mutation, uqac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uqac *UserQuizAnswerCreate) SaveX(ctx context.Context) *UserQuizAnswer {
	v, err := uqac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uqac *UserQuizAnswerCreate) Exec(ctx context.Context) error {
	_, err := uqac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uqac *UserQuizAnswerCreate) ExecX(ctx context.Context) {
	if err := uqac.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uqac *UserQuizAnswerCreate) check() error {
	if _, ok := uqac.mutation.UserQuizpackID(); !ok {
		return &ValidationError{Name: "user_quizpack_id", err: errors.New(`ent: missing required field "UserQuizAnswer.user_quizpack_id"`)}
	}
	if _, ok := uqac.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "UserQuizAnswer.question_id"`)}
	}
	if _, ok := uqac.mutation.AnswerOrder(); !ok {
		return &ValidationError{Name: "answer_order", err: errors.New(`ent: missing required field "UserQuizAnswer.answer_order"`)}
	}
	if _, ok := uqac.mutation.Selected(); !ok {
		return &ValidationError{Name: "selected", err: errors.New(`ent: missing required field "UserQuizAnswer.selected"`)}
	}
	if _, ok := uqac.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "UserQuizAnswer.correct"`)}
	}
	if _, ok := uqac.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "UserQuizAnswer.answered_at"`)}
	}
	return nil
}

func (uqac *UserQuizAnswerCreate) sqlSave(ctx context.Context) (*UserQuizAnswer, error) {
	if err := uqac.check(); err != nil {
		return nil, err
	}
	_node, _spec := uqac.createSpec()
	if err := sqlgraph.CreateNode(ctx, uqac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	uqac.mutation.id = &_node.ID
	uqac.mutation.done = true
	return _node, nil
}

func (uqac *UserQuizAnswerCreate) createSpec() (*UserQuizAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &UserQuizAnswer{config: uqac.config}
		_spec = sqlgraph.NewCreateSpec(userquizanswer.Table, sqlgraph.NewFieldSpec(userquizanswer.FieldID, field.TypeInt))
	)
	if value, ok := uqac.mutation.UserQuizpackID(); ok {
		_spec.SetField(userquizanswer.FieldUserQuizpackID, field.TypeInt, value)
		_node.UserQuizpackID = value
	}
	if value, ok := uqac.mutation.QuestionID(); ok {
		_spec.SetField(userquizanswer.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := uqac.mutation.AnswerOrder(); ok {
		_spec.SetField(userquizanswer.FieldAnswerOrder, field.TypeInt, value)
		_node.AnswerOrder = value
	}
	if value, ok := uqac.mutation.Selected(); ok {
		_spec.SetField(userquizanswer.FieldSelected, field.TypeJSON, value)
		_node.Selected = value
	}
	if value, ok := uqac.mutation.Correct(); ok {
		_spec.SetField(userquizanswer.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := uqac.mutation.AnsweredAt(); ok {
		_spec.SetField(userquizanswer.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	return _node, _spec
}

// UserQuizAnswerCreateBulk is the builder for creating many UserQuizAnswer entities in bulk.
type UserQuizAnswerCreateBulk struct {
	config
	err      error
	builders []*UserQuizAnswerCreate
}

// Save creates the UserQuizAnswer entities in the database.
func (uqacb *UserQuizAnswerCreateBulk) Save(ctx context.Context) ([]*UserQuizAnswer, error) {
	if uqacb.err != nil {
		return nil, uqacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(uqacb.builders))
	nodes := make([]*UserQuizAnswer, len(uqacb.builders))
	mutators := make([]Mutator, len(uqacb.builders))
	for i := range uqacb.builders {
		func(i int, root context.Context) {
			builder := uqacb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserQuizAnswerMutation)
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
					_, err = mutators[i+1].Mutate(root, uqacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, uqacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, uqacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (uqacb *UserQuizAnswerCreateBulk) SaveX(ctx context.Context) []*UserQuizAnswer {
	v, err := uqacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uqacb *UserQuizAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := uqacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uqacb *UserQuizAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := uqacb.Exec(ctx); err != nil {
		panic(err)
	}
}
