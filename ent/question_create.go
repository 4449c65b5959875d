// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetQuizpackID sets the "quizpack_id" field.
func (qc *QuestionCreate) SetQuizpackID(i int) *QuestionCreate {
	qc.mutation.SetQuizpackID(i)
	return qc
}

// SetQuestionOrder sets the "question_order" field.
func (qc *QuestionCreate) SetQuestionOrder(i int) *QuestionCreate {
	qc.mutation.SetQuestionOrder(i)
	return qc
}

// SetType sets the "type" field.
func (qc *QuestionCreate) SetType(s string) *QuestionCreate {
	qc.mutation.SetType(s)
	return qc
}

// SetQuestion sets the "question" field.
func (qc *QuestionCreate) SetQuestion(s string) *QuestionCreate {
	qc.mutation.SetQuestion(s)
	return qc
}

// SetPassage sets the "passage" field.
func (qc *QuestionCreate) SetPassage(s string) *QuestionCreate {
	qc.mutation.SetPassage(s)
	return qc
}

// SetNillablePassage sets the "passage" field if the given value is not nil.
func (qc *QuestionCreate) SetNillablePassage(s *string) *QuestionCreate {
	if s != nil {
		qc.SetPassage(*s)
	}
	return qc
}

// SetHint sets the "hint" field.
func (qc *QuestionCreate) SetHint(s string) *QuestionCreate {
	qc.mutation.SetHint(s)
	return qc
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableHint(s *string) *QuestionCreate {
	if s != nil {
		qc.SetHint(*s)
	}
	return qc
}

// SetExplanation sets the "explanation" field.
func (qc *QuestionCreate) SetExplanation(s string) *QuestionCreate {
	qc.mutation.SetExplanation(s)
	return qc
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableExplanation(s *string) *QuestionCreate {
	if s != nil {
		qc.SetExplanation(*s)
	}
	return qc
}

// SetBlankCount sets the "blank_count" field.
func (qc *QuestionCreate) SetBlankCount(i int) *QuestionCreate {
	qc.mutation.SetBlankCount(i)
	return qc
}

// SetNillableBlankCount sets the "blank_count" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableBlankCount(i *int) *QuestionCreate {
	if i != nil {
		qc.SetBlankCount(*i)
	}
	return qc
}

// Mutation returns the QuestionMutation object of the builder.
func (qc *QuestionCreate) Mutation() *QuestionMutation {
	return qc.mutation
}

// Save creates the Question in the database.
func (qc *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	qc.defaults()
	return withHooks(ctx, qc.sqlSave, qc.mutation, qc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qc *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := qc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qc *QuestionCreate) Exec(ctx context.Context) error {
	_, err := qc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qc *QuestionCreate) ExecX(ctx context.Context) {
	if err := qc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qc *QuestionCreate) defaults() {
	if _, ok := qc.mutation.BlankCount(); !ok {
		v := question.DefaultBlankCount
		qc.mutation.SetBlankCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qc *QuestionCreate) check() error {
	if _, ok := qc.mutation.QuizpackID(); !ok {
		return &ValidationError{Name: "quizpack_id", err: errors.New(`ent: missing required field "Question.quizpack_id"`)}
	}
	if _, ok := qc.mutation.QuestionOrder(); !ok {
		return &ValidationError{Name: "question_order", err: errors.New(`ent: missing required field "Question.question_order"`)}
	}
	if _, ok := qc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Question.type"`)}
	}
	if v, ok := qc.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if _, ok := qc.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Question.question"`)}
	}
	if v, ok := qc.mutation.Question(); ok {
		if err := question.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Question.question": %w`, err)}
		}
	}
	if _, ok := qc.mutation.BlankCount(); !ok {
		return &ValidationError{Name: "blank_count", err: errors.New(`ent: missing required field "Question.blank_count"`)}
	}
	return nil
}

func (qc *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (qc *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: qc.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := qc.mutation.QuizpackID(); ok {
		_spec.SetField(question.FieldQuizpackID, field.TypeInt, value)
		_node.QuizpackID = value
	}
	if value, ok := qc.mutation.QuestionOrder(); ok {
		_spec.SetField(question.FieldQuestionOrder, field.TypeInt, value)
		_node.QuestionOrder = value
	}
	if value, ok := qc.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := qc.mutation.Question(); ok {
		_spec.SetField(question.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := qc.mutation.Passage(); ok {
		_spec.SetField(question.FieldPassage, field.TypeString, value)
		_node.Passage = value
	}
	if value, ok := qc.mutation.Hint(); ok {
		_spec.SetField(question.FieldHint, field.TypeString, value)
		_node.Hint = value
	}
	if value, ok := qc.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := qc.mutation.BlankCount(); ok {
		_spec.SetField(question.FieldBlankCount, field.TypeInt, value)
		_node.BlankCount = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (qcb *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if qcb.err != nil {
		return nil, qcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qcb.builders))
	nodes := make([]*Question, len(qcb.builders))
	mutators := make([]Mutator, len(qcb.builders))
	for i := range qcb.builders {
		func(i int, root context.Context) {
			builder := qcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (qcb *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := qcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qcb *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := qcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qcb *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := qcb.Exec(ctx); err != nil {
		panic(err)
	}
}
