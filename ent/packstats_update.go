// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/packstats"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// PackStatsUpdate is the builder for updating PackStats entities.
type PackStatsUpdate struct {
	config
	hooks    []Hook
	mutation *PackStatsMutation
}

// Where appends a list predicates to the PackStatsUpdate builder.
func (psu *PackStatsUpdate) Where(ps ...predicate.PackStats) *PackStatsUpdate {
	psu.mutation.Where(ps...)
	return psu
}

// SetQuizpackID sets the "quizpack_id" field.
func (psu *PackStatsUpdate) SetQuizpackID(i int) *PackStatsUpdate {
	psu.mutation.ResetQuizpackID()
	psu.mutation.SetQuizpackID(i)
	return psu
}

// SetNillableQuizpackID sets the "quizpack_id" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableQuizpackID(i *int) *PackStatsUpdate {
	if i != nil {
		psu.SetQuizpackID(*i)
	}
	return psu
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (psu *PackStatsUpdate) AddQuizpackID(i int) *PackStatsUpdate {
	psu.mutation.AddQuizpackID(i)
	return psu
}

// SetTotalCompletions sets the "total_completions" field.
func (psu *PackStatsUpdate) SetTotalCompletions(i int) *PackStatsUpdate {
	psu.mutation.ResetTotalCompletions()
	psu.mutation.SetTotalCompletions(i)
	return psu
}

// SetNillableTotalCompletions sets the "total_completions" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableTotalCompletions(i *int) *PackStatsUpdate {
	if i != nil {
		psu.SetTotalCompletions(*i)
	}
	return psu
}

// AddTotalCompletions adds i to the "total_completions" field.
func (psu *PackStatsUpdate) AddTotalCompletions(i int) *PackStatsUpdate {
	psu.mutation.AddTotalCompletions(i)
	return psu
}

// SetTotalCorrectCount sets the "total_correct_count" field.
func (psu *PackStatsUpdate) SetTotalCorrectCount(i int) *PackStatsUpdate {
	psu.mutation.ResetTotalCorrectCount()
	psu.mutation.SetTotalCorrectCount(i)
	return psu
}

// SetNillableTotalCorrectCount sets the "total_correct_count" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableTotalCorrectCount(i *int) *PackStatsUpdate {
	if i != nil {
		psu.SetTotalCorrectCount(*i)
	}
	return psu
}

// AddTotalCorrectCount adds i to the "total_correct_count" field.
func (psu *PackStatsUpdate) AddTotalCorrectCount(i int) *PackStatsUpdate {
	psu.mutation.AddTotalCorrectCount(i)
	return psu
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (psu *PackStatsUpdate) SetTotalQuestionCount(i int) *PackStatsUpdate {
	psu.mutation.ResetTotalQuestionCount()
	psu.mutation.SetTotalQuestionCount(i)
	return psu
}

// SetNillableTotalQuestionCount sets the "total_question_count" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableTotalQuestionCount(i *int) *PackStatsUpdate {
	if i != nil {
		psu.SetTotalQuestionCount(*i)
	}
	return psu
}

// AddTotalQuestionCount adds i to the "total_question_count" field.
func (psu *PackStatsUpdate) AddTotalQuestionCount(i int) *PackStatsUpdate {
	psu.mutation.AddTotalQuestionCount(i)
	return psu
}

// SetAverageCorrectRate sets the "average_correct_rate" field.
func (psu *PackStatsUpdate) SetAverageCorrectRate(f float64) *PackStatsUpdate {
	psu.mutation.ResetAverageCorrectRate()
	psu.mutation.SetAverageCorrectRate(f)
	return psu
}

// SetNillableAverageCorrectRate sets the "average_correct_rate" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableAverageCorrectRate(f *float64) *PackStatsUpdate {
	if f != nil {
		psu.SetAverageCorrectRate(*f)
	}
	return psu
}

// AddAverageCorrectRate adds f to the "average_correct_rate" field.
func (psu *PackStatsUpdate) AddAverageCorrectRate(f float64) *PackStatsUpdate {
	psu.mutation.AddAverageCorrectRate(f)
	return psu
}

// SetRatingSum sets the "rating_sum" field.
func (psu *PackStatsUpdate) SetRatingSum(i int) *PackStatsUpdate {
	psu.mutation.ResetRatingSum()
	psu.mutation.SetRatingSum(i)
	return psu
}

// SetNillableRatingSum sets the "rating_sum" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableRatingSum(i *int) *PackStatsUpdate {
	if i != nil {
		psu.SetRatingSum(*i)
	}
	return psu
}

// AddRatingSum adds i to the "rating_sum" field.
func (psu *PackStatsUpdate) AddRatingSum(i int) *PackStatsUpdate {
	psu.mutation.AddRatingSum(i)
	return psu
}

// SetRatingCount sets the "rating_count" field.
func (psu *PackStatsUpdate) SetRatingCount(i int) *PackStatsUpdate {
	psu.mutation.ResetRatingCount()
	psu.mutation.SetRatingCount(i)
	return psu
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableRatingCount(i *int) *PackStatsUpdate {
	if i != nil {
		psu.SetRatingCount(*i)
	}
	return psu
}

// AddRatingCount adds i to the "rating_count" field.
func (psu *PackStatsUpdate) AddRatingCount(i int) *PackStatsUpdate {
	psu.mutation.AddRatingCount(i)
	return psu
}

// SetAverageRating sets the "average_rating" field.
func (psu *PackStatsUpdate) SetAverageRating(f float64) *PackStatsUpdate {
	psu.mutation.ResetAverageRating()
	psu.mutation.SetAverageRating(f)
	return psu
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (psu *PackStatsUpdate) SetNillableAverageRating(f *float64) *PackStatsUpdate {
	if f != nil {
		psu.SetAverageRating(*f)
	}
	return psu
}

// AddAverageRating adds f to the "average_rating" field.
func (psu *PackStatsUpdate) AddAverageRating(f float64) *PackStatsUpdate {
	psu.mutation.AddAverageRating(f)
	return psu
}

// Mutation returns the PackStatsMutation object of the builder.
func (psu *PackStatsUpdate) Mutation() *PackStatsMutation {
	return psu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (psu *PackStatsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, psu.sqlSave, psu.mutation, psu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psu *PackStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := psu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (psu *PackStatsUpdate) Exec(ctx context.Context) error {
	_, err := psu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psu *PackStatsUpdate) ExecX(ctx context.Context) {
	if err := psu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (psu *PackStatsUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(packstats.Table, packstats.Columns, sqlgraph.NewFieldSpec(packstats.FieldID, field.TypeInt))
	if ps := psu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psu.mutation.QuizpackID(); ok {
		_spec.SetField(packstats.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AddedQuizpackID(); ok {
		_spec.AddField(packstats.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := psu.mutation.TotalCompletions(); ok {
		_spec.SetField(packstats.FieldTotalCompletions, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AddedTotalCompletions(); ok {
		_spec.AddField(packstats.FieldTotalCompletions, field.TypeInt, value)
	}
	if value, ok := psu.mutation.TotalCorrectCount(); ok {
		_spec.SetField(packstats.FieldTotalCorrectCount, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AddedTotalCorrectCount(); ok {
		_spec.AddField(packstats.FieldTotalCorrectCount, field.TypeInt, value)
	}
	if value, ok := psu.mutation.TotalQuestionCount(); ok {
		_spec.SetField(packstats.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AddedTotalQuestionCount(); ok {
		_spec.AddField(packstats.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AverageCorrectRate(); ok {
		_spec.SetField(packstats.FieldAverageCorrectRate, field.TypeFloat64, value)
	}
	if value, ok := psu.mutation.AddedAverageCorrectRate(); ok {
		_spec.AddField(packstats.FieldAverageCorrectRate, field.TypeFloat64, value)
	}
	if value, ok := psu.mutation.RatingSum(); ok {
		_spec.SetField(packstats.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AddedRatingSum(); ok {
		_spec.AddField(packstats.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := psu.mutation.RatingCount(); ok {
		_spec.SetField(packstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AddedRatingCount(); ok {
		_spec.AddField(packstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := psu.mutation.AverageRating(); ok {
		_spec.SetField(packstats.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := psu.mutation.AddedAverageRating(); ok {
		_spec.AddField(packstats.FieldAverageRating, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, psu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{packstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	psu.mutation.done = true
	return n, nil
}

// PackStatsUpdateOne is the builder for updating a single PackStats entity.
type PackStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PackStatsMutation
}

// SetQuizpackID sets the "quizpack_id" field.
func (psuo *PackStatsUpdateOne) SetQuizpackID(i int) *PackStatsUpdateOne {
	psuo.mutation.ResetQuizpackID()
	psuo.mutation.SetQuizpackID(i)
	return psuo
}

// SetNillableQuizpackID sets the "quizpack_id" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableQuizpackID(i *int) *PackStatsUpdateOne {
	if i != nil {
		psuo.SetQuizpackID(*i)
	}
	return psuo
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (psuo *PackStatsUpdateOne) AddQuizpackID(i int) *PackStatsUpdateOne {
	psuo.mutation.AddQuizpackID(i)
	return psuo
}

// SetTotalCompletions sets the "total_completions" field.
func (psuo *PackStatsUpdateOne) SetTotalCompletions(i int) *PackStatsUpdateOne {
	psuo.mutation.ResetTotalCompletions()
	psuo.mutation.SetTotalCompletions(i)
	return psuo
}

// SetNillableTotalCompletions sets the "total_completions" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableTotalCompletions(i *int) *PackStatsUpdateOne {
	if i != nil {
		psuo.SetTotalCompletions(*i)
	}
	return psuo
}

// AddTotalCompletions adds i to the "total_completions" field.
func (psuo *PackStatsUpdateOne) AddTotalCompletions(i int) *PackStatsUpdateOne {
	psuo.mutation.AddTotalCompletions(i)
	return psuo
}

// SetTotalCorrectCount sets the "total_correct_count" field.
func (psuo *PackStatsUpdateOne) SetTotalCorrectCount(i int) *PackStatsUpdateOne {
	psuo.mutation.ResetTotalCorrectCount()
	psuo.mutation.SetTotalCorrectCount(i)
	return psuo
}

// SetNillableTotalCorrectCount sets the "total_correct_count" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableTotalCorrectCount(i *int) *PackStatsUpdateOne {
	if i != nil {
		psuo.SetTotalCorrectCount(*i)
	}
	return psuo
}

// AddTotalCorrectCount adds i to the "total_correct_count" field.
func (psuo *PackStatsUpdateOne) AddTotalCorrectCount(i int) *PackStatsUpdateOne {
	psuo.mutation.AddTotalCorrectCount(i)
	return psuo
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (psuo *PackStatsUpdateOne) SetTotalQuestionCount(i int) *PackStatsUpdateOne {
	psuo.mutation.ResetTotalQuestionCount()
	psuo.mutation.SetTotalQuestionCount(i)
	return psuo
}

// SetNillableTotalQuestionCount sets the "total_question_count" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableTotalQuestionCount(i *int) *PackStatsUpdateOne {
	if i != nil {
		psuo.SetTotalQuestionCount(*i)
	}
	return psuo
}

// AddTotalQuestionCount adds i to the "total_question_count" field.
func (psuo *PackStatsUpdateOne) AddTotalQuestionCount(i int) *PackStatsUpdateOne {
	psuo.mutation.AddTotalQuestionCount(i)
	return psuo
}

// SetAverageCorrectRate sets the "average_correct_rate" field.
func (psuo *PackStatsUpdateOne) SetAverageCorrectRate(f float64) *PackStatsUpdateOne {
	psuo.mutation.ResetAverageCorrectRate()
	psuo.mutation.SetAverageCorrectRate(f)
	return psuo
}

// SetNillableAverageCorrectRate sets the "average_correct_rate" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableAverageCorrectRate(f *float64) *PackStatsUpdateOne {
	if f != nil {
		psuo.SetAverageCorrectRate(*f)
	}
	return psuo
}

// AddAverageCorrectRate adds f to the "average_correct_rate" field.
func (psuo *PackStatsUpdateOne) AddAverageCorrectRate(f float64) *PackStatsUpdateOne {
	psuo.mutation.AddAverageCorrectRate(f)
	return psuo
}

// SetRatingSum sets the "rating_sum" field.
func (psuo *PackStatsUpdateOne) SetRatingSum(i int) *PackStatsUpdateOne {
	psuo.mutation.ResetRatingSum()
	psuo.mutation.SetRatingSum(i)
	return psuo
}

// SetNillableRatingSum sets the "rating_sum" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableRatingSum(i *int) *PackStatsUpdateOne {
	if i != nil {
		psuo.SetRatingSum(*i)
	}
	return psuo
}

// AddRatingSum adds i to the "rating_sum" field.
func (psuo *PackStatsUpdateOne) AddRatingSum(i int) *PackStatsUpdateOne {
	psuo.mutation.AddRatingSum(i)
	return psuo
}

// SetRatingCount sets the "rating_count" field.
func (psuo *PackStatsUpdateOne) SetRatingCount(i int) *PackStatsUpdateOne {
	psuo.mutation.ResetRatingCount()
	psuo.mutation.SetRatingCount(i)
	return psuo
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableRatingCount(i *int) *PackStatsUpdateOne {
	if i != nil {
		psuo.SetRatingCount(*i)
	}
	return psuo
}

// AddRatingCount adds i to the "rating_count" field.
func (psuo *PackStatsUpdateOne) AddRatingCount(i int) *PackStatsUpdateOne {
	psuo.mutation.AddRatingCount(i)
	return psuo
}

// SetAverageRating sets the "average_rating" field.
func (psuo *PackStatsUpdateOne) SetAverageRating(f float64) *PackStatsUpdateOne {
	psuo.mutation.ResetAverageRating()
	psuo.mutation.SetAverageRating(f)
	return psuo
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (psuo *PackStatsUpdateOne) SetNillableAverageRating(f *float64) *PackStatsUpdateOne {
	if f != nil {
		psuo.SetAverageRating(*f)
	}
	return psuo
}

// AddAverageRating adds f to the "average_rating" field.
func (psuo *PackStatsUpdateOne) AddAverageRating(f float64) *PackStatsUpdateOne {
	psuo.mutation.AddAverageRating(f)
	return psuo
}

// Mutation returns the PackStatsMutation object of the builder.
func (psuo *PackStatsUpdateOne) Mutation() *PackStatsMutation {
	return psuo.mutation
}

// Where appends a list predicates to the PackStatsUpdate builder.
func (psuo *PackStatsUpdateOne) Where(ps ...predicate.PackStats) *PackStatsUpdateOne {
	psuo.mutation.Where(ps...)
	return psuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (psuo *PackStatsUpdateOne) Select(field string, fields ...string) *PackStatsUpdateOne {
	psuo.fields = append([]string{field}, fields...)
	return psuo
}

// Save executes the query and returns the updated PackStats entity.
func (psuo *PackStatsUpdateOne) Save(ctx context.Context) (*PackStats, error) {
	return withHooks(ctx, psuo.sqlSave, psuo.mutation, psuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psuo *PackStatsUpdateOne) SaveX(ctx context.Context) *PackStats {
	node, err := psuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (psuo *PackStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := psuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psuo *PackStatsUpdateOne) ExecX(ctx context.Context) {
	if err := psuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (psuo *PackStatsUpdateOne) sqlSave(ctx context.Context) (_node *PackStats, err error) {
	_spec := sqlgraph.NewUpdateSpec(packstats.Table, packstats.Columns, sqlgraph.NewFieldSpec(packstats.FieldID, field.TypeInt))
	id, ok := psuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PackStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := psuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, packstats.FieldID)
		for _, f := range fields {
			if !packstats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != packstats.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := psuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psuo.mutation.QuizpackID(); ok {
		_spec.SetField(packstats.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AddedQuizpackID(); ok {
		_spec.AddField(packstats.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.TotalCompletions(); ok {
		_spec.SetField(packstats.FieldTotalCompletions, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AddedTotalCompletions(); ok {
		_spec.AddField(packstats.FieldTotalCompletions, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.TotalCorrectCount(); ok {
		_spec.SetField(packstats.FieldTotalCorrectCount, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AddedTotalCorrectCount(); ok {
		_spec.AddField(packstats.FieldTotalCorrectCount, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.TotalQuestionCount(); ok {
		_spec.SetField(packstats.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AddedTotalQuestionCount(); ok {
		_spec.AddField(packstats.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AverageCorrectRate(); ok {
		_spec.SetField(packstats.FieldAverageCorrectRate, field.TypeFloat64, value)
	}
	if value, ok := psuo.mutation.AddedAverageCorrectRate(); ok {
		_spec.AddField(packstats.FieldAverageCorrectRate, field.TypeFloat64, value)
	}
	if value, ok := psuo.mutation.RatingSum(); ok {
		_spec.SetField(packstats.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AddedRatingSum(); ok {
		_spec.AddField(packstats.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.RatingCount(); ok {
		_spec.SetField(packstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AddedRatingCount(); ok {
		_spec.AddField(packstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := psuo.mutation.AverageRating(); ok {
		_spec.SetField(packstats.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := psuo.mutation.AddedAverageRating(); ok {
		_spec.AddField(packstats.FieldAverageRating, field.TypeFloat64, value)
	}
	_node = &PackStats{config: psuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, psuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{packstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	psuo.mutation.done = true
	return _node, nil
}
