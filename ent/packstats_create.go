// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/packstats"
)

// PackStatsCreate is the builder for creating a PackStats entity.
type PackStatsCreate struct {
	config
	mutation *PackStatsMutation
	hooks    []Hook
}

// SetQuizpackID sets the "quizpack_id" field.
func (psc *PackStatsCreate) SetQuizpackID(i int) *PackStatsCreate {
	psc.mutation.SetQuizpackID(i)
	return psc
}

// SetTotalCompletions sets the "total_completions" field.
func (psc *PackStatsCreate) SetTotalCompletions(i int) *PackStatsCreate {
	psc.mutation.SetTotalCompletions(i)
	return psc
}

// SetNillableTotalCompletions sets the "total_completions" field if the given value is not nil.
func (psc *PackStatsCreate) SetNillableTotalCompletions(i *int) *PackStatsCreate {
	if i != nil {
		psc.SetTotalCompletions(*i)
	}
	return psc
}

// SetTotalCorrectCount sets the "total_correct_count" field.
func (psc *PackStatsCreate) SetTotalCorrectCount(i int) *PackStatsCreate {
	psc.mutation.SetTotalCorrectCount(i)
	return psc
}

// SetNillableTotalCorrectCount sets the "total_correct_count" field if the given value is not nil.
func (psc *PackStatsCreate) SetNillableTotalCorrectCount(i *int) *PackStatsCreate {
	if i != nil {
		psc.SetTotalCorrectCount(*i)
	}
	return psc
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (psc *PackStatsCreate) SetTotalQuestionCount(i int) *PackStatsCreate {
	psc.mutation.SetTotalQuestionCount(i)
	return psc
}

// SetNillableTotalQuestionCount sets the "total_question_count" field if the given value is not nil.
func (psc *PackStatsCreate) SetNillableTotalQuestionCount(i *int) *PackStatsCreate {
	if i != nil {
		psc.SetTotalQuestionCount(*i)
	}
	return psc
}

// SetAverageCorrectRate sets the "average_correct_rate" field.
func (psc *PackStatsCreate) SetAverageCorrectRate(f float64) *PackStatsCreate {
	psc.mutation.SetAverageCorrectRate(f)
	return psc
}

// SetNillableAverageCorrectRate sets the "average_correct_rate" field if the given value is not nil.
func (psc *PackStatsCreate) SetNillableAverageCorrectRate(f *float64) *PackStatsCreate {
	if f != nil {
		psc.SetAverageCorrectRate(*f)
	}
	return psc
}

// SetRatingSum sets the "rating_sum" field.
func (psc *PackStatsCreate) SetRatingSum(i int) *PackStatsCreate {
	psc.mutation.SetRatingSum(i)
	return psc
}

// SetNillableRatingSum sets the "rating_sum" field if the given value is not nil.
func (psc *PackStatsCreate) SetNillableRatingSum(i *int) *PackStatsCreate {
	if i != nil {
		psc.SetRatingSum(*i)
	}
	return psc
}

// SetRatingCount sets the "rating_count" field.
func (psc *PackStatsCreate) SetRatingCount(i int) *PackStatsCreate {
	psc.mutation.SetRatingCount(i)
	return psc
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (psc *PackStatsCreate) SetNillableRatingCount(i *int) *PackStatsCreate {
	if i != nil {
		psc.SetRatingCount(*i)
	}
	return psc
}

// SetAverageRating sets the "average_rating" field.
func (psc *PackStatsCreate) SetAverageRating(f float64) *PackStatsCreate {
	psc.mutation.SetAverageRating(f)
	return psc
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (psc *PackStatsCreate) SetNillableAverageRating(f *float64) *PackStatsCreate {
	if f != nil {
		psc.SetAverageRating(*f)
	}
	return psc
}

// Mutation returns the PackStatsMutation object of the builder.
func (psc *PackStatsCreate) Mutation() *PackStatsMutation {
	return psc.mutation
}

// Save creates the PackStats in the database.
func (psc *PackStatsCreate) Save(ctx context.Context) (*PackStats, error) {
	psc.defaults()
	return withHooks(ctx, psc.sqlSave, psc.mutation, psc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (psc *PackStatsCreate) SaveX(ctx context.Context) *PackStats {
	v, err := psc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psc *PackStatsCreate) Exec(ctx context.Context) error {
	_, err := psc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psc *PackStatsCreate) ExecX(ctx context.Context) {
	if err := psc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psc *PackStatsCreate) defaults() {
	if _, ok := psc.mutation.TotalCompletions(); !ok {
		v := packstats.DefaultTotalCompletions
		psc.mutation.SetTotalCompletions(v)
	}
	if _, ok := psc.mutation.TotalCorrectCount(); !ok {
		v := packstats.DefaultTotalCorrectCount
		psc.mutation.SetTotalCorrectCount(v)
	}
	if _, ok := psc.mutation.TotalQuestionCount(); !ok {
		v := packstats.DefaultTotalQuestionCount
		psc.mutation.SetTotalQuestionCount(v)
	}
	if _, ok := psc.mutation.AverageCorrectRate(); !ok {
		v := packstats.DefaultAverageCorrectRate
		psc.mutation.SetAverageCorrectRate(v)
	}
	if _, ok := psc.mutation.RatingSum(); !ok {
		v := packstats.DefaultRatingSum
		psc.mutation.SetRatingSum(v)
	}
	if _, ok := psc.mutation.RatingCount(); !ok {
		v := packstats.DefaultRatingCount
		psc.mutation.SetRatingCount(v)
	}
	if _, ok := psc.mutation.AverageRating(); !ok {
		v := packstats.DefaultAverageRating
		psc.mutation.SetAverageRating(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psc *PackStatsCreate) check() error {
	if _, ok := psc.mutation.QuizpackID(); !ok {
		return &ValidationError{Name: "quizpack_id", err: errors.New(`ent: missing required field "PackStats.quizpack_id"`)}
	}
	if _, ok := psc.mutation.TotalCompletions(); !ok {
		return &ValidationError{Name: "total_completions", err: errors.New(`ent: missing required field "PackStats.total_completions"`)}
	}
	if _, ok := psc.mutation.TotalCorrectCount(); !ok {
		return &ValidationError{Name: "total_correct_count", err: errors.New(`ent: missing required field "PackStats.total_correct_count"`)}
	}
	if _, ok := psc.mutation.TotalQuestionCount(); !ok {
		return &ValidationError{Name: "total_question_count", err: errors.New(`ent: missing required field "PackStats.total_question_count"`)}
	}
	if _, ok := psc.mutation.AverageCorrectRate(); !ok {
		return &ValidationError{Name: "average_correct_rate", err: errors.New(`ent: missing required field "PackStats.average_correct_rate"`)}
	}
	if _, ok := psc.mutation.RatingSum(); !ok {
		return &ValidationError{Name: "rating_sum", err: errors.New(`ent: missing required field "PackStats.rating_sum"`)}
	}
	if _, ok := psc.mutation.RatingCount(); !ok {
		return &ValidationError{Name: "rating_count", err: errors.New(`ent: missing required field "PackStats.rating_count"`)}
	}
	if _, ok := psc.mutation.AverageRating(); !ok {
		return &ValidationError{Name: "average_rating", err: errors.New(`ent: missing required field "PackStats.average_rating"`)}
	}
	return nil
}

func (psc *PackStatsCreate) sqlSave(ctx context.Context) (*PackStats, error) {
	if err := psc.check(); err != nil {
		return nil, err
	}
	_node, _spec := psc.createSpec()
	if err := sqlgraph.CreateNode(ctx, psc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	psc.mutation.id = &_node.ID
	psc.mutation.done = true
	return _node, nil
}

func (psc *PackStatsCreate) createSpec() (*PackStats, *sqlgraph.CreateSpec) {
	var (
		_node = &PackStats{config: psc.config}
		_spec = sqlgraph.NewCreateSpec(packstats.Table, sqlgraph.NewFieldSpec(packstats.FieldID, field.TypeInt))
	)
	if value, ok := psc.mutation.QuizpackID(); ok {
		_spec.SetField(packstats.FieldQuizpackID, field.TypeInt, value)
		_node.QuizpackID = value
	}
	if value, ok := psc.mutation.TotalCompletions(); ok {
		_spec.SetField(packstats.FieldTotalCompletions, field.TypeInt, value)
		_node.TotalCompletions = value
	}
	if value, ok := psc.mutation.TotalCorrectCount(); ok {
		_spec.SetField(packstats.FieldTotalCorrectCount, field.TypeInt, value)
		_node.TotalCorrectCount = value
	}
	if value, ok := psc.mutation.TotalQuestionCount(); ok {
		_spec.SetField(packstats.FieldTotalQuestionCount, field.TypeInt, value)
		_node.TotalQuestionCount = value
	}
	if value, ok := psc.mutation.AverageCorrectRate(); ok {
		_spec.SetField(packstats.FieldAverageCorrectRate, field.TypeFloat64, value)
		_node.AverageCorrectRate = value
	}
	if value, ok := psc.mutation.RatingSum(); ok {
		_spec.SetField(packstats.FieldRatingSum, field.TypeInt, value)
		_node.RatingSum = value
	}
	if value, ok := psc.mutation.RatingCount(); ok {
		_spec.SetField(packstats.FieldRatingCount, field.TypeInt, value)
		_node.RatingCount = value
	}
	if value, ok := psc.mutation.AverageRating(); ok {
		_spec.SetField(packstats.FieldAverageRating, field.TypeFloat64, value)
		_node.AverageRating = value
	}
	return _node, _spec
}

// PackStatsCreateBulk is the builder for creating many PackStats entities in bulk.
type PackStatsCreateBulk struct {
	config
	err      error
	builders []*PackStatsCreate
}

// Save creates the PackStats entities in the database.
func (pscb *PackStatsCreateBulk) Save(ctx context.Context) ([]*PackStats, error) {
	if pscb.err != nil {
		return nil, pscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pscb.builders))
	nodes := make([]*PackStats, len(pscb.builders))
	mutators := make([]Mutator, len(pscb.builders))
	for i := range pscb.builders {
		func(i int, root context.Context) {
			builder := pscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PackStatsMutation)
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
					_, err = mutators[i+1].Mutate(root, pscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pscb *PackStatsCreateBulk) SaveX(ctx context.Context) []*PackStats {
	v, err := pscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pscb *PackStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := pscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pscb *PackStatsCreateBulk) ExecX(ctx context.Context) {
	if err := pscb.Exec(ctx); err != nil {
		panic(err)
	}
}
