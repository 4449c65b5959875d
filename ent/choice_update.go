// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/choice"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// ChoiceUpdate is the builder for updating Choice entities.
type ChoiceUpdate struct {
	config
	hooks    []Hook
	mutation *ChoiceMutation
}

// Where appends a list predicates to the ChoiceUpdate builder.
func (cu *ChoiceUpdate) Where(ps ...predicate.Choice) *ChoiceUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetQuestionID sets the "question_id" field.
func (cu *ChoiceUpdate) SetQuestionID(i int) *ChoiceUpdate {
	cu.mutation.ResetQuestionID()
	cu.mutation.SetQuestionID(i)
	return cu
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (cu *ChoiceUpdate) SetNillableQuestionID(i *int) *ChoiceUpdate {
	if i != nil {
		cu.SetQuestionID(*i)
	}
	return cu
}

// AddQuestionID adds i to the "question_id" field.
func (cu *ChoiceUpdate) AddQuestionID(i int) *ChoiceUpdate {
	cu.mutation.AddQuestionID(i)
	return cu
}

// SetChoiceOrder sets the "choice_order" field.
func (cu *ChoiceUpdate) SetChoiceOrder(i int) *ChoiceUpdate {
	cu.mutation.ResetChoiceOrder()
	cu.mutation.SetChoiceOrder(i)
	return cu
}

// SetNillableChoiceOrder sets the "choice_order" field if the given value is not nil.
func (cu *ChoiceUpdate) SetNillableChoiceOrder(i *int) *ChoiceUpdate {
	if i != nil {
		cu.SetChoiceOrder(*i)
	}
	return cu
}

// AddChoiceOrder adds i to the "choice_order" field.
func (cu *ChoiceUpdate) AddChoiceOrder(i int) *ChoiceUpdate {
	cu.mutation.AddChoiceOrder(i)
	return cu
}

// SetText sets the "text" field.
func (cu *ChoiceUpdate) SetText(s string) *ChoiceUpdate {
	cu.mutation.SetText(s)
	return cu
}

// SetNillableText sets the "text" field if the given value is not nil.
func (cu *ChoiceUpdate) SetNillableText(s *string) *ChoiceUpdate {
	if s != nil {
		cu.SetText(*s)
	}
	return cu
}

// SetCorrect sets the "correct" field.
func (cu *ChoiceUpdate) SetCorrect(b bool) *ChoiceUpdate {
	cu.mutation.SetCorrect(b)
	return cu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (cu *ChoiceUpdate) SetNillableCorrect(b *bool) *ChoiceUpdate {
	if b != nil {
		cu.SetCorrect(*b)
	}
	return cu
}

// SetBlankPosition sets the "blank_position" field.
func (cu *ChoiceUpdate) SetBlankPosition(i int) *ChoiceUpdate {
	cu.mutation.ResetBlankPosition()
	cu.mutation.SetBlankPosition(i)
	return cu
}

// SetNillableBlankPosition sets the "blank_position" field if the given value is not nil.
func (cu *ChoiceUpdate) SetNillableBlankPosition(i *int) *ChoiceUpdate {
	if i != nil {
		cu.SetBlankPosition(*i)
	}
	return cu
}

// AddBlankPosition adds i to the "blank_position" field.
func (cu *ChoiceUpdate) AddBlankPosition(i int) *ChoiceUpdate {
	cu.mutation.AddBlankPosition(i)
	return cu
}

// ClearBlankPosition clears the value of the "blank_position" field.
func (cu *ChoiceUpdate) ClearBlankPosition() *ChoiceUpdate {
	cu.mutation.ClearBlankPosition()
	return cu
}

// Mutation returns the ChoiceMutation object of the builder.
func (cu *ChoiceUpdate) Mutation() *ChoiceMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *ChoiceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *ChoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *ChoiceUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *ChoiceUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *ChoiceUpdate) check() error {
	if v, ok := cu.mutation.Text(); ok {
		if err := choice.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Choice.text": %w`, err)}
		}
	}
	return nil
}

func (cu *ChoiceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(choice.Table, choice.Columns, sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.QuestionID(); ok {
		_spec.SetField(choice.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedQuestionID(); ok {
		_spec.AddField(choice.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := cu.mutation.ChoiceOrder(); ok {
		_spec.SetField(choice.FieldChoiceOrder, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedChoiceOrder(); ok {
		_spec.AddField(choice.FieldChoiceOrder, field.TypeInt, value)
	}
	if value, ok := cu.mutation.Text(); ok {
		_spec.SetField(choice.FieldText, field.TypeString, value)
	}
	if value, ok := cu.mutation.Correct(); ok {
		_spec.SetField(choice.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := cu.mutation.BlankPosition(); ok {
		_spec.SetField(choice.FieldBlankPosition, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedBlankPosition(); ok {
		_spec.AddField(choice.FieldBlankPosition, field.TypeInt, value)
	}
	if cu.mutation.BlankPositionCleared() {
		_spec.ClearField(choice.FieldBlankPosition, field.TypeInt)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{choice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// ChoiceUpdateOne is the builder for updating a single Choice entity.
type ChoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChoiceMutation
}

// SetQuestionID sets the "question_id" field.
func (cuo *ChoiceUpdateOne) SetQuestionID(i int) *ChoiceUpdateOne {
	cuo.mutation.ResetQuestionID()
	cuo.mutation.SetQuestionID(i)
	return cuo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (cuo *ChoiceUpdateOne) SetNillableQuestionID(i *int) *ChoiceUpdateOne {
	if i != nil {
		cuo.SetQuestionID(*i)
	}
	return cuo
}

// AddQuestionID adds i to the "question_id" field.
func (cuo *ChoiceUpdateOne) AddQuestionID(i int) *ChoiceUpdateOne {
	cuo.mutation.AddQuestionID(i)
	return cuo
}

// SetChoiceOrder sets the "choice_order" field.
func (cuo *ChoiceUpdateOne) SetChoiceOrder(i int) *ChoiceUpdateOne {
	cuo.mutation.ResetChoiceOrder()
	cuo.mutation.SetChoiceOrder(i)
	return cuo
}

// SetNillableChoiceOrder sets the "choice_order" field if the given value is not nil.
func (cuo *ChoiceUpdateOne) SetNillableChoiceOrder(i *int) *ChoiceUpdateOne {
	if i != nil {
		cuo.SetChoiceOrder(*i)
	}
	return cuo
}

// AddChoiceOrder adds i to the "choice_order" field.
func (cuo *ChoiceUpdateOne) AddChoiceOrder(i int) *ChoiceUpdateOne {
	cuo.mutation.AddChoiceOrder(i)
	return cuo
}

// SetText sets the "text" field.
func (cuo *ChoiceUpdateOne) SetText(s string) *ChoiceUpdateOne {
	cuo.mutation.SetText(s)
	return cuo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (cuo *ChoiceUpdateOne) SetNillableText(s *string) *ChoiceUpdateOne {
	if s != nil {
		cuo.SetText(*s)
	}
	return cuo
}

// SetCorrect sets the "correct" field.
func (cuo *ChoiceUpdateOne) SetCorrect(b bool) *ChoiceUpdateOne {
	cuo.mutation.SetCorrect(b)
	return cuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (cuo *ChoiceUpdateOne) SetNillableCorrect(b *bool) *ChoiceUpdateOne {
	if b != nil {
		cuo.SetCorrect(*b)
	}
	return cuo
}

// SetBlankPosition sets the "blank_position" field.
func (cuo *ChoiceUpdateOne) SetBlankPosition(i int) *ChoiceUpdateOne {
	cuo.mutation.ResetBlankPosition()
	cuo.mutation.SetBlankPosition(i)
	return cuo
}

// SetNillableBlankPosition sets the "blank_position" field if the given value is not nil.
func (cuo *ChoiceUpdateOne) SetNillableBlankPosition(i *int) *ChoiceUpdateOne {
	if i != nil {
		cuo.SetBlankPosition(*i)
	}
	return cuo
}

// AddBlankPosition adds i to the "blank_position" field.
func (cuo *ChoiceUpdateOne) AddBlankPosition(i int) *ChoiceUpdateOne {
	cuo.mutation.AddBlankPosition(i)
	return cuo
}

// ClearBlankPosition clears the value of the "blank_position" field.
func (cuo *ChoiceUpdateOne) ClearBlankPosition() *ChoiceUpdateOne {
	cuo.mutation.ClearBlankPosition()
	return cuo
}

// Mutation returns the ChoiceMutation object of the builder.
func (cuo *ChoiceUpdateOne) Mutation() *ChoiceMutation {
	return cuo.mutation
}

// Where appends a list predicates to the ChoiceUpdate builder.
func (cuo *ChoiceUpdateOne) Where(ps ...predicate.Choice) *ChoiceUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *ChoiceUpdateOne) Select(field string, fields ...string) *ChoiceUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Choice entity.
func (cuo *ChoiceUpdateOne) Save(ctx context.Context) (*Choice, error) {
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *ChoiceUpdateOne) SaveX(ctx context.Context) *Choice {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *ChoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *ChoiceUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *ChoiceUpdateOne) check() error {
	if v, ok := cuo.mutation.Text(); ok {
		if err := choice.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Choice.text": %w`, err)}
		}
	}
	return nil
}

func (cuo *ChoiceUpdateOne) sqlSave(ctx context.Context) (_node *Choice, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(choice.Table, choice.Columns, sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Choice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, choice.FieldID)
		for _, f := range fields {
			if !choice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != choice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.QuestionID(); ok {
		_spec.SetField(choice.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedQuestionID(); ok {
		_spec.AddField(choice.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.ChoiceOrder(); ok {
		_spec.SetField(choice.FieldChoiceOrder, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedChoiceOrder(); ok {
		_spec.AddField(choice.FieldChoiceOrder, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.Text(); ok {
		_spec.SetField(choice.FieldText, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Correct(); ok {
		_spec.SetField(choice.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := cuo.mutation.BlankPosition(); ok {
		_spec.SetField(choice.FieldBlankPosition, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedBlankPosition(); ok {
		_spec.AddField(choice.FieldBlankPosition, field.TypeInt, value)
	}
	if cuo.mutation.BlankPositionCleared() {
		_spec.ClearField(choice.FieldBlankPosition, field.TypeInt)
	}
	_node = &Choice{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{choice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
