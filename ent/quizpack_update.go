// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
	"github.com/hanjihoon73/lawquiz/ent/quizpack"
)

// QuizpackUpdate is the builder for updating Quizpack entities.
type QuizpackUpdate struct {
	config
	hooks    []Hook
	mutation *QuizpackMutation
}

// Where appends a list predicates to the QuizpackUpdate builder.
func (qu *QuizpackUpdate) Where(ps ...predicate.Quizpack) *QuizpackUpdate {
	qu.mutation.Where(ps...)
	return qu
}

// SetKeywords sets the "keywords" field.
func (qu *QuizpackUpdate) SetKeywords(s string) *QuizpackUpdate {
	qu.mutation.SetKeywords(s)
	return qu
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (qu *QuizpackUpdate) SetNillableKeywords(s *string) *QuizpackUpdate {
	if s != nil {
		qu.SetKeywords(*s)
	}
	return qu
}

// SetQuestionCount sets the "question_count" field.
func (qu *QuizpackUpdate) SetQuestionCount(i int) *QuizpackUpdate {
	qu.mutation.ResetQuestionCount()
	qu.mutation.SetQuestionCount(i)
	return qu
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (qu *QuizpackUpdate) SetNillableQuestionCount(i *int) *QuizpackUpdate {
	if i != nil {
		qu.SetQuestionCount(*i)
	}
	return qu
}

// AddQuestionCount adds i to the "question_count" field.
func (qu *QuizpackUpdate) AddQuestionCount(i int) *QuizpackUpdate {
	qu.mutation.AddQuestionCount(i)
	return qu
}

// SetActive sets the "active" field.
func (qu *QuizpackUpdate) SetActive(b bool) *QuizpackUpdate {
	qu.mutation.SetActive(b)
	return qu
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (qu *QuizpackUpdate) SetNillableActive(b *bool) *QuizpackUpdate {
	if b != nil {
		qu.SetActive(*b)
	}
	return qu
}

// Mutation returns the QuizpackMutation object of the builder.
func (qu *QuizpackUpdate) Mutation() *QuizpackMutation {
	return qu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qu *QuizpackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qu.sqlSave, qu.mutation, qu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qu *QuizpackUpdate) SaveX(ctx context.Context) int {
	affected, err := qu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qu *QuizpackUpdate) Exec(ctx context.Context) error {
	_, err := qu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qu *QuizpackUpdate) ExecX(ctx context.Context) {
	if err := qu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qu *QuizpackUpdate) check() error {
	if v, ok := qu.mutation.Keywords(); ok {
		if err := quizpack.KeywordsValidator(v); err != nil {
			return &ValidationError{Name: "keywords", err: fmt.Errorf(`ent: validator failed for field "Quizpack.keywords": %w`, err)}
		}
	}
	return nil
}

func (qu *QuizpackUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizpack.Table, quizpack.Columns, sqlgraph.NewFieldSpec(quizpack.FieldID, field.TypeInt))
	if ps := qu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qu.mutation.Keywords(); ok {
		_spec.SetField(quizpack.FieldKeywords, field.TypeString, value)
	}
	if value, ok := qu.mutation.QuestionCount(); ok {
		_spec.SetField(quizpack.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := qu.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizpack.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := qu.mutation.Active(); ok {
		_spec.SetField(quizpack.FieldActive, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qu.mutation.done = true
	return n, nil
}

// QuizpackUpdateOne is the builder for updating a single Quizpack entity.
type QuizpackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizpackMutation
}

// SetKeywords sets the "keywords" field.
func (quo *QuizpackUpdateOne) SetKeywords(s string) *QuizpackUpdateOne {
	quo.mutation.SetKeywords(s)
	return quo
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (quo *QuizpackUpdateOne) SetNillableKeywords(s *string) *QuizpackUpdateOne {
	if s != nil {
		quo.SetKeywords(*s)
	}
	return quo
}

// SetQuestionCount sets the "question_count" field.
func (quo *QuizpackUpdateOne) SetQuestionCount(i int) *QuizpackUpdateOne {
	quo.mutation.ResetQuestionCount()
	quo.mutation.SetQuestionCount(i)
	return quo
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (quo *QuizpackUpdateOne) SetNillableQuestionCount(i *int) *QuizpackUpdateOne {
	if i != nil {
		quo.SetQuestionCount(*i)
	}
	return quo
}

// AddQuestionCount adds i to the "question_count" field.
func (quo *QuizpackUpdateOne) AddQuestionCount(i int) *QuizpackUpdateOne {
	quo.mutation.AddQuestionCount(i)
	return quo
}

// SetActive sets the "active" field.
func (quo *QuizpackUpdateOne) SetActive(b bool) *QuizpackUpdateOne {
	quo.mutation.SetActive(b)
	return quo
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (quo *QuizpackUpdateOne) SetNillableActive(b *bool) *QuizpackUpdateOne {
	if b != nil {
		quo.SetActive(*b)
	}
	return quo
}

// Mutation returns the QuizpackMutation object of the builder.
func (quo *QuizpackUpdateOne) Mutation() *QuizpackMutation {
	return quo.mutation
}

// Where appends a list predicates to the QuizpackUpdate builder.
func (quo *QuizpackUpdateOne) Where(ps ...predicate.Quizpack) *QuizpackUpdateOne {
	quo.mutation.Where(ps...)
	return quo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (quo *QuizpackUpdateOne) Select(field string, fields ...string) *QuizpackUpdateOne {
	quo.fields = append([]string{field}, fields...)
	return quo
}

// Save executes the query and returns the updated Quizpack entity.
func (quo *QuizpackUpdateOne) Save(ctx context.Context) (*Quizpack, error) {
	return withHooks(ctx, quo.sqlSave, quo.mutation, quo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (quo *QuizpackUpdateOne) SaveX(ctx context.Context) *Quizpack {
	node, err := quo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (quo *QuizpackUpdateOne) Exec(ctx context.Context) error {
	_, err := quo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (quo *QuizpackUpdateOne) ExecX(ctx context.Context) {
	if err := quo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (quo *QuizpackUpdateOne) check() error {
	if v, ok := quo.mutation.Keywords(); ok {
		if err := quizpack.KeywordsValidator(v); err != nil {
			return &ValidationError{Name: "keywords", err: fmt.Errorf(`ent: validator failed for field "Quizpack.keywords": %w`, err)}
		}
	}
	return nil
}

func (quo *QuizpackUpdateOne) sqlSave(ctx context.Context) (_node *Quizpack, err error) {
	if err := quo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizpack.Table, quizpack.Columns, sqlgraph.NewFieldSpec(quizpack.FieldID, field.TypeInt))
	id, ok := quo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quizpack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := quo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizpack.FieldID)
		for _, f := range fields {
			if !quizpack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizpack.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := quo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := quo.mutation.Keywords(); ok {
		_spec.SetField(quizpack.FieldKeywords, field.TypeString, value)
	}
	if value, ok := quo.mutation.QuestionCount(); ok {
		_spec.SetField(quizpack.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := quo.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizpack.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := quo.mutation.Active(); ok {
		_spec.SetField(quizpack.FieldActive, field.TypeBool, value)
	}
	_node = &Quizpack{config: quo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, quo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	quo.mutation.done = true
	return _node, nil
}
