// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
	"github.com/hanjihoon73/lawquiz/ent/schema"
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
)

// UserQuizAnswerUpdate is the builder for updating UserQuizAnswer entities.
type UserQuizAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *UserQuizAnswerMutation
}

// Where appends a list predicates to the UserQuizAnswerUpdate builder.
func (uqau *UserQuizAnswerUpdate) Where(ps ...predicate.UserQuizAnswer) *UserQuizAnswerUpdate {
	uqau.mutation.Where(ps...)
	return uqau
}

// SetUserQuizpackID sets the "user_quizpack_id" field.
func (uqau *UserQuizAnswerUpdate) SetUserQuizpackID(i int) *UserQuizAnswerUpdate {
	uqau.mutation.ResetUserQuizpackID()
	uqau.mutation.SetUserQuizpackID(i)
	return uqau
}

// SetNillableUserQuizpackID sets the "user_quizpack_id" field if the given value is not nil.
func (uqau *UserQuizAnswerUpdate) SetNillableUserQuizpackID(i *int) *UserQuizAnswerUpdate {
	if i != nil {
		uqau.SetUserQuizpackID(*i)
	}
	return uqau
}

// AddUserQuizpackID adds i to the "user_quizpack_id" field.
func (uqau *UserQuizAnswerUpdate) AddUserQuizpackID(i int) *UserQuizAnswerUpdate {
	uqau.mutation.AddUserQuizpackID(i)
	return uqau
}

// SetQuestionID sets the "question_id" field.
func (uqau *UserQuizAnswerUpdate) SetQuestionID(i int) *UserQuizAnswerUpdate {
	uqau.mutation.ResetQuestionID()
	uqau.mutation.SetQuestionID(i)
	return uqau
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (uqau *UserQuizAnswerUpdate) SetNillableQuestionID(i *int) *UserQuizAnswerUpdate {
	if i != nil {
		uqau.SetQuestionID(*i)
	}
	return uqau
}

// AddQuestionID adds i to the "question_id" field.
func (uqau *UserQuizAnswerUpdate) AddQuestionID(i int) *UserQuizAnswerUpdate {
	uqau.mutation.AddQuestionID(i)
	return uqau
}

// SetAnswerOrder sets the "answer_order" field.
func (uqau *UserQuizAnswerUpdate) SetAnswerOrder(i int) *UserQuizAnswerUpdate {
	uqau.mutation.ResetAnswerOrder()
	uqau.mutation.SetAnswerOrder(i)
	return uqau
}

// SetNillableAnswerOrder sets the "answer_order" field if the given value is not nil.
func (uqau *UserQuizAnswerUpdate) SetNillableAnswerOrder(i *int) *UserQuizAnswerUpdate {
	if i != nil {
		uqau.SetAnswerOrder(*i)
	}
	return uqau
}

// AddAnswerOrder adds i to the "answer_order" field.
func (uqau *UserQuizAnswerUpdate) AddAnswerOrder(i int) *UserQuizAnswerUpdate {
	uqau.mutation.AddAnswerOrder(i)
	return uqau
}

// SetSelected sets the "selected" field.
func (uqau *UserQuizAnswerUpdate) SetSelected(sa schema.SelectedAnswer) *UserQuizAnswerUpdate {
	uqau.mutation.SetSelected(sa)
	return uqau
}

// SetNillableSelected sets the "selected" field if the given value is not nil.
func (uqau *UserQuizAnswerUpdate) SetNillableSelected(sa *schema.SelectedAnswer) *UserQuizAnswerUpdate {
	if sa != nil {
		uqau.SetSelected(*sa)
	}
	return uqau
}

// SetCorrect sets the "correct" field.
func (uqau *UserQuizAnswerUpdate) SetCorrect(b bool) *UserQuizAnswerUpdate {
	uqau.mutation.SetCorrect(b)
	return uqau
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (uqau *UserQuizAnswerUpdate) SetNillableCorrect(b *bool) *UserQuizAnswerUpdate {
	if b != nil {
		uqau.SetCorrect(*b)
	}
	return uqau
}

// SetAnsweredAt sets the "answered_at" field.
func (uqau *UserQuizAnswerUpdate) SetAnsweredAt(t time.Time) *UserQuizAnswerUpdate {
	uqau.mutation.SetAnsweredAt(t)
	return uqau
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (uqau *UserQuizAnswerUpdate) SetNillableAnsweredAt(t *time.Time) *UserQuizAnswerUpdate {
	if t != nil {
		uqau.SetAnsweredAt(*t)
	}
	return uqau
}

// Mutation returns the UserQuizAnswerMutation object of the builder.
func (uqau *UserQuizAnswerUpdate) Mutation() *UserQuizAnswerMutation {
	return uqau.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uqau *UserQuizAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, uqau.sqlSave, uqau.mutation, uqau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uqau *UserQuizAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := uqau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uqau *UserQuizAnswerUpdate) Exec(ctx context.Context) error {
	_, err := uqau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uqau *UserQuizAnswerUpdate) ExecX(ctx context.Context) {
	if err := uqau.Exec(ctx); err != nil {
		panic(err)
	}
}

func (uqau *UserQuizAnswerUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userquizanswer.Table, userquizanswer.Columns, sqlgraph.NewFieldSpec(userquizanswer.FieldID, field.TypeInt))
	if ps := uqau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uqau.mutation.UserQuizpackID(); ok {
		_spec.SetField(userquizanswer.FieldUserQuizpackID, field.TypeInt, value)
	}
	if value, ok := uqau.mutation.AddedUserQuizpackID(); ok {
		_spec.AddField(userquizanswer.FieldUserQuizpackID, field.TypeInt, value)
	}
	if value, ok := uqau.mutation.QuestionID(); ok {
		_spec.SetField(userquizanswer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := uqau.mutation.AddedQuestionID(); ok {
		_spec.AddField(userquizanswer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := uqau.mutation.AnswerOrder(); ok {
		_spec.SetField(userquizanswer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := uqau.mutation.AddedAnswerOrder(); ok {
		_spec.AddField(userquizanswer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := uqau.mutation.Selected(); ok {
		_spec.SetField(userquizanswer.FieldSelected, field.TypeJSON, value)
	}
	if value, ok := uqau.mutation.Correct(); ok {
		_spec.SetField(userquizanswer.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := uqau.mutation.AnsweredAt(); ok {
		_spec.SetField(userquizanswer.FieldAnsweredAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uqau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userquizanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uqau.mutation.done = true
	return n, nil
}

// UserQuizAnswerUpdateOne is the builder for updating a single UserQuizAnswer entity.
type UserQuizAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserQuizAnswerMutation
}

// SetUserQuizpackID sets the "user_quizpack_id" field.
func (uqauo *UserQuizAnswerUpdateOne) SetUserQuizpackID(i int) *UserQuizAnswerUpdateOne {
	uqauo.mutation.ResetUserQuizpackID()
	uqauo.mutation.SetUserQuizpackID(i)
	return uqauo
}

// SetNillableUserQuizpackID sets the "user_quizpack_id" field if the given value is not nil.
func (uqauo *UserQuizAnswerUpdateOne) SetNillableUserQuizpackID(i *int) *UserQuizAnswerUpdateOne {
	if i != nil {
		uqauo.SetUserQuizpackID(*i)
	}
	return uqauo
}

// AddUserQuizpackID adds i to the "user_quizpack_id" field.
func (uqauo *UserQuizAnswerUpdateOne) AddUserQuizpackID(i int) *UserQuizAnswerUpdateOne {
	uqauo.mutation.AddUserQuizpackID(i)
	return uqauo
}

// SetQuestionID sets the "question_id" field.
func (uqauo *UserQuizAnswerUpdateOne) SetQuestionID(i int) *UserQuizAnswerUpdateOne {
	uqauo.mutation.ResetQuestionID()
	uqauo.mutation.SetQuestionID(i)
	return uqauo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (uqauo *UserQuizAnswerUpdateOne) SetNillableQuestionID(i *int) *UserQuizAnswerUpdateOne {
	if i != nil {
		uqauo.SetQuestionID(*i)
	}
	return uqauo
}

// AddQuestionID adds i to the "question_id" field.
func (uqauo *UserQuizAnswerUpdateOne) AddQuestionID(i int) *UserQuizAnswerUpdateOne {
	uqauo.mutation.AddQuestionID(i)
	return uqauo
}

// SetAnswerOrder sets the "answer_order" field.
func (uqauo *UserQuizAnswerUpdateOne) SetAnswerOrder(i int) *UserQuizAnswerUpdateOne {
	uqauo.mutation.ResetAnswerOrder()
	uqauo.mutation.SetAnswerOrder(i)
	return uqauo
}

// SetNillableAnswerOrder sets the "answer_order" field if the given value is not nil.
func (uqauo *UserQuizAnswerUpdateOne) SetNillableAnswerOrder(i *int) *UserQuizAnswerUpdateOne {
	if i != nil {
		uqauo.SetAnswerOrder(*i)
	}
	return uqauo
}

// AddAnswerOrder adds i to the "answer_order" field.
func (uqauo *UserQuizAnswerUpdateOne) AddAnswerOrder(i int) *UserQuizAnswerUpdateOne {
	uqauo.mutation.AddAnswerOrder(i)
	return uqauo
}

// SetSelected sets the "selected" field.
func (uqauo *UserQuizAnswerUpdateOne) SetSelected(sa schema.SelectedAnswer) *UserQuizAnswerUpdateOne {
	uqauo.mutation.SetSelected(sa)
	return uqauo
}

// SetNillableSelected sets the "selected" field if the given value is not nil.
func (uqauo *UserQuizAnswerUpdateOne) SetNillableSelected(sa *schema.SelectedAnswer) *UserQuizAnswerUpdateOne {
	if sa != nil {
		uqauo.SetSelected(*sa)
	}
	return uqauo
}

// SetCorrect sets the "correct" field.
func (uqauo *UserQuizAnswerUpdateOne) SetCorrect(b bool) *UserQuizAnswerUpdateOne {
	uqauo.mutation.SetCorrect(b)
	return uqauo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (uqauo *UserQuizAnswerUpdateOne) SetNillableCorrect(b *bool) *UserQuizAnswerUpdateOne {
	if b != nil {
		uqauo.SetCorrect(*b)
	}
	return uqauo
}

// SetAnsweredAt sets the "answered_at" field.
func (uqauo *UserQuizAnswerUpdateOne) SetAnsweredAt(t time.Time) *UserQuizAnswerUpdateOne {
	uqauo.mutation.SetAnsweredAt(t)
	return uqauo
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (uqauo *UserQuizAnswerUpdateOne) SetNillableAnsweredAt(t *time.Time) *UserQuizAnswerUpdateOne {
	if t != nil {
		uqauo.SetAnsweredAt(*t)
	}
	return uqauo
}

// Mutation returns the UserQuizAnswerMutation object of the builder.
func (uqauo *UserQuizAnswerUpdateOne) Mutation() *UserQuizAnswerMutation {
	return uqauo.mutation
}

// Where appends a list predicates to the UserQuizAnswerUpdate builder.
func (uqauo *UserQuizAnswerUpdateOne) Where(ps ...predicate.UserQuizAnswer) *UserQuizAnswerUpdateOne {
	uqauo.mutation.Where(ps...)
	return uqauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uqauo *UserQuizAnswerUpdateOne) Select(field string, fields ...string) *UserQuizAnswerUpdateOne {
	uqauo.fields = append([]string{field}, fields...)
	return uqauo
}

// Save executes the query and returns the updated UserQuizAnswer entity.
func (uqauo *UserQuizAnswerUpdateOne) Save(ctx context.Context) (*UserQuizAnswer, error) {
	return withHooks(ctx, uqauo.sqlSave, uqauo.mutation, uqauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uqauo *UserQuizAnswerUpdateOne) SaveX(ctx context.Context) *UserQuizAnswer {
	node, err := uqauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uqauo *UserQuizAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := uqauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uqauo *UserQuizAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := uqauo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (uqauo *UserQuizAnswerUpdateOne) sqlSave(ctx context.Context) (_node *UserQuizAnswer, err error) {
	_spec := sqlgraph.NewUpdateSpec(userquizanswer.Table, userquizanswer.Columns, sqlgraph.NewFieldSpec(userquizanswer.FieldID, field.TypeInt))
	id, ok := uqauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserQuizAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uqauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userquizanswer.FieldID)
		for _, f := range fields {
			if !userquizanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userquizanswer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uqauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uqauo.mutation.UserQuizpackID(); ok {
		_spec.SetField(userquizanswer.FieldUserQuizpackID, field.TypeInt, value)
	}
	if value, ok := uqauo.mutation.AddedUserQuizpackID(); ok {
		_spec.AddField(userquizanswer.FieldUserQuizpackID, field.TypeInt, value)
	}
	if value, ok := uqauo.mutation.QuestionID(); ok {
		_spec.SetField(userquizanswer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := uqauo.mutation.AddedQuestionID(); ok {
		_spec.AddField(userquizanswer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := uqauo.mutation.AnswerOrder(); ok {
		_spec.SetField(userquizanswer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := uqauo.mutation.AddedAnswerOrder(); ok {
		_spec.AddField(userquizanswer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := uqauo.mutation.Selected(); ok {
		_spec.SetField(userquizanswer.FieldSelected, field.TypeJSON, value)
	}
	if value, ok := uqauo.mutation.Correct(); ok {
		_spec.SetField(userquizanswer.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := uqauo.mutation.AnsweredAt(); ok {
		_spec.SetField(userquizanswer.FieldAnsweredAt, field.TypeTime, value)
	}
	_node = &UserQuizAnswer{config: uqauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uqauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userquizanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uqauo.mutation.done = true
	return _node, nil
}
