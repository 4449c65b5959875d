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
	"github.com/hanjihoon73/lawquiz/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (qu *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	qu.mutation.Where(ps...)
	return qu
}

// SetQuizpackID sets the "quizpack_id" field.
func (qu *QuestionUpdate) SetQuizpackID(i int) *QuestionUpdate {
	qu.mutation.ResetQuizpackID()
	qu.mutation.SetQuizpackID(i)
	return qu
}

// SetNillableQuizpackID sets the "quizpack_id" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableQuizpackID(i *int) *QuestionUpdate {
	if i != nil {
		qu.SetQuizpackID(*i)
	}
	return qu
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (qu *QuestionUpdate) AddQuizpackID(i int) *QuestionUpdate {
	qu.mutation.AddQuizpackID(i)
	return qu
}

// SetQuestionOrder sets the "question_order" field.
func (qu *QuestionUpdate) SetQuestionOrder(i int) *QuestionUpdate {
	qu.mutation.ResetQuestionOrder()
	qu.mutation.SetQuestionOrder(i)
	return qu
}

// SetNillableQuestionOrder sets the "question_order" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableQuestionOrder(i *int) *QuestionUpdate {
	if i != nil {
		qu.SetQuestionOrder(*i)
	}
	return qu
}

// AddQuestionOrder adds i to the "question_order" field.
func (qu *QuestionUpdate) AddQuestionOrder(i int) *QuestionUpdate {
	qu.mutation.AddQuestionOrder(i)
	return qu
}

// SetType sets the "type" field.
func (qu *QuestionUpdate) SetType(s string) *QuestionUpdate {
	qu.mutation.SetType(s)
	return qu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableType(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetType(*s)
	}
	return qu
}

// SetQuestion sets the "question" field.
func (qu *QuestionUpdate) SetQuestion(s string) *QuestionUpdate {
	qu.mutation.SetQuestion(s)
	return qu
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableQuestion(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetQuestion(*s)
	}
	return qu
}

// SetPassage sets the "passage" field.
func (qu *QuestionUpdate) SetPassage(s string) *QuestionUpdate {
	qu.mutation.SetPassage(s)
	return qu
}

// SetNillablePassage sets the "passage" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillablePassage(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetPassage(*s)
	}
	return qu
}

// ClearPassage clears the value of the "passage" field.
func (qu *QuestionUpdate) ClearPassage() *QuestionUpdate {
	qu.mutation.ClearPassage()
	return qu
}

// SetHint sets the "hint" field.
func (qu *QuestionUpdate) SetHint(s string) *QuestionUpdate {
	qu.mutation.SetHint(s)
	return qu
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableHint(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetHint(*s)
	}
	return qu
}

// ClearHint clears the value of the "hint" field.
func (qu *QuestionUpdate) ClearHint() *QuestionUpdate {
	qu.mutation.ClearHint()
	return qu
}

// SetExplanation sets the "explanation" field.
func (qu *QuestionUpdate) SetExplanation(s string) *QuestionUpdate {
	qu.mutation.SetExplanation(s)
	return qu
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableExplanation(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetExplanation(*s)
	}
	return qu
}

// ClearExplanation clears the value of the "explanation" field.
func (qu *QuestionUpdate) ClearExplanation() *QuestionUpdate {
	qu.mutation.ClearExplanation()
	return qu
}

// SetBlankCount sets the "blank_count" field.
func (qu *QuestionUpdate) SetBlankCount(i int) *QuestionUpdate {
	qu.mutation.ResetBlankCount()
	qu.mutation.SetBlankCount(i)
	return qu
}

// SetNillableBlankCount sets the "blank_count" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableBlankCount(i *int) *QuestionUpdate {
	if i != nil {
		qu.SetBlankCount(*i)
	}
	return qu
}

// AddBlankCount adds i to the "blank_count" field.
func (qu *QuestionUpdate) AddBlankCount(i int) *QuestionUpdate {
	qu.mutation.AddBlankCount(i)
	return qu
}

// Mutation returns the QuestionMutation object of the builder.
func (qu *QuestionUpdate) Mutation() *QuestionMutation {
	return qu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qu *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qu.sqlSave, qu.mutation, qu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qu *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := qu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qu *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := qu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qu *QuestionUpdate) ExecX(ctx context.Context) {
	if err := qu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qu *QuestionUpdate) check() error {
	if v, ok := qu.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Question(); ok {
		if err := question.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Question.question": %w`, err)}
		}
	}
	return nil
}

func (qu *QuestionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := qu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qu.mutation.QuizpackID(); ok {
		_spec.SetField(question.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := qu.mutation.AddedQuizpackID(); ok {
		_spec.AddField(question.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := qu.mutation.QuestionOrder(); ok {
		_spec.SetField(question.FieldQuestionOrder, field.TypeInt, value)
	}
	if value, ok := qu.mutation.AddedQuestionOrder(); ok {
		_spec.AddField(question.FieldQuestionOrder, field.TypeInt, value)
	}
	if value, ok := qu.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
	}
	if value, ok := qu.mutation.Question(); ok {
		_spec.SetField(question.FieldQuestion, field.TypeString, value)
	}
	if value, ok := qu.mutation.Passage(); ok {
		_spec.SetField(question.FieldPassage, field.TypeString, value)
	}
	if qu.mutation.PassageCleared() {
		_spec.ClearField(question.FieldPassage, field.TypeString)
	}
	if value, ok := qu.mutation.Hint(); ok {
		_spec.SetField(question.FieldHint, field.TypeString, value)
	}
	if qu.mutation.HintCleared() {
		_spec.ClearField(question.FieldHint, field.TypeString)
	}
	if value, ok := qu.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if qu.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if value, ok := qu.mutation.BlankCount(); ok {
		_spec.SetField(question.FieldBlankCount, field.TypeInt, value)
	}
	if value, ok := qu.mutation.AddedBlankCount(); ok {
		_spec.AddField(question.FieldBlankCount, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qu.mutation.done = true
	return n, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetQuizpackID sets the "quizpack_id" field.
func (quo *QuestionUpdateOne) SetQuizpackID(i int) *QuestionUpdateOne {
	quo.mutation.ResetQuizpackID()
	quo.mutation.SetQuizpackID(i)
	return quo
}

// SetNillableQuizpackID sets the "quizpack_id" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableQuizpackID(i *int) *QuestionUpdateOne {
	if i != nil {
		quo.SetQuizpackID(*i)
	}
	return quo
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (quo *QuestionUpdateOne) AddQuizpackID(i int) *QuestionUpdateOne {
	quo.mutation.AddQuizpackID(i)
	return quo
}

// SetQuestionOrder sets the "question_order" field.
func (quo *QuestionUpdateOne) SetQuestionOrder(i int) *QuestionUpdateOne {
	quo.mutation.ResetQuestionOrder()
	quo.mutation.SetQuestionOrder(i)
	return quo
}

// SetNillableQuestionOrder sets the "question_order" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableQuestionOrder(i *int) *QuestionUpdateOne {
	if i != nil {
		quo.SetQuestionOrder(*i)
	}
	return quo
}

// AddQuestionOrder adds i to the "question_order" field.
func (quo *QuestionUpdateOne) AddQuestionOrder(i int) *QuestionUpdateOne {
	quo.mutation.AddQuestionOrder(i)
	return quo
}

// SetType sets the "type" field.
func (quo *QuestionUpdateOne) SetType(s string) *QuestionUpdateOne {
	quo.mutation.SetType(s)
	return quo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableType(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetType(*s)
	}
	return quo
}

// SetQuestion sets the "question" field.
func (quo *QuestionUpdateOne) SetQuestion(s string) *QuestionUpdateOne {
	quo.mutation.SetQuestion(s)
	return quo
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableQuestion(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetQuestion(*s)
	}
	return quo
}

// SetPassage sets the "passage" field.
func (quo *QuestionUpdateOne) SetPassage(s string) *QuestionUpdateOne {
	quo.mutation.SetPassage(s)
	return quo
}

// SetNillablePassage sets the "passage" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillablePassage(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetPassage(*s)
	}
	return quo
}

// ClearPassage clears the value of the "passage" field.
func (quo *QuestionUpdateOne) ClearPassage() *QuestionUpdateOne {
	quo.mutation.ClearPassage()
	return quo
}

// SetHint sets the "hint" field.
func (quo *QuestionUpdateOne) SetHint(s string) *QuestionUpdateOne {
	quo.mutation.SetHint(s)
	return quo
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableHint(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetHint(*s)
	}
	return quo
}

// ClearHint clears the value of the "hint" field.
func (quo *QuestionUpdateOne) ClearHint() *QuestionUpdateOne {
	quo.mutation.ClearHint()
	return quo
}

// SetExplanation sets the "explanation" field.
func (quo *QuestionUpdateOne) SetExplanation(s string) *QuestionUpdateOne {
	quo.mutation.SetExplanation(s)
	return quo
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableExplanation(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetExplanation(*s)
	}
	return quo
}

// ClearExplanation clears the value of the "explanation" field.
func (quo *QuestionUpdateOne) ClearExplanation() *QuestionUpdateOne {
	quo.mutation.ClearExplanation()
	return quo
}

// SetBlankCount sets the "blank_count" field.
func (quo *QuestionUpdateOne) SetBlankCount(i int) *QuestionUpdateOne {
	quo.mutation.ResetBlankCount()
	quo.mutation.SetBlankCount(i)
	return quo
}

// SetNillableBlankCount sets the "blank_count" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableBlankCount(i *int) *QuestionUpdateOne {
	if i != nil {
		quo.SetBlankCount(*i)
	}
	return quo
}

// AddBlankCount adds i to the "blank_count" field.
func (quo *QuestionUpdateOne) AddBlankCount(i int) *QuestionUpdateOne {
	quo.mutation.AddBlankCount(i)
	return quo
}

// Mutation returns the QuestionMutation object of the builder.
func (quo *QuestionUpdateOne) Mutation() *QuestionMutation {
	return quo.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (quo *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	quo.mutation.Where(ps...)
	return quo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (quo *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	quo.fields = append([]string{field}, fields...)
	return quo
}

// Save executes the query and returns the updated Question entity.
func (quo *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, quo.sqlSave, quo.mutation, quo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (quo *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := quo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (quo *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := quo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (quo *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := quo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (quo *QuestionUpdateOne) check() error {
	if v, ok := quo.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Question(); ok {
		if err := question.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Question.question": %w`, err)}
		}
	}
	return nil
}

func (quo *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := quo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := quo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := quo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := quo.mutation.QuizpackID(); ok {
		_spec.SetField(question.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := quo.mutation.AddedQuizpackID(); ok {
		_spec.AddField(question.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := quo.mutation.QuestionOrder(); ok {
		_spec.SetField(question.FieldQuestionOrder, field.TypeInt, value)
	}
	if value, ok := quo.mutation.AddedQuestionOrder(); ok {
		_spec.AddField(question.FieldQuestionOrder, field.TypeInt, value)
	}
	if value, ok := quo.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
	}
	if value, ok := quo.mutation.Question(); ok {
		_spec.SetField(question.FieldQuestion, field.TypeString, value)
	}
	if value, ok := quo.mutation.Passage(); ok {
		_spec.SetField(question.FieldPassage, field.TypeString, value)
	}
	if quo.mutation.PassageCleared() {
		_spec.ClearField(question.FieldPassage, field.TypeString)
	}
	if value, ok := quo.mutation.Hint(); ok {
		_spec.SetField(question.FieldHint, field.TypeString, value)
	}
	if quo.mutation.HintCleared() {
		_spec.ClearField(question.FieldHint, field.TypeString)
	}
	if value, ok := quo.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if quo.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if value, ok := quo.mutation.BlankCount(); ok {
		_spec.SetField(question.FieldBlankCount, field.TypeInt, value)
	}
	if value, ok := quo.mutation.AddedBlankCount(); ok {
		_spec.AddField(question.FieldBlankCount, field.TypeInt, value)
	}
	_node = &Question{config: quo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, quo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	quo.mutation.done = true
	return _node, nil
}
