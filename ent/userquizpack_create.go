// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// UserQuizpackCreate is the builder for creating a UserQuizpack entity.
type UserQuizpackCreate struct {
	config
	mutation *UserQuizpackMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (uqc *UserQuizpackCreate) SetUserID(s string) *UserQuizpackCreate {
	uqc.mutation.SetUserID(s)
	return uqc
}

// SetQuizpackID sets the "quizpack_id" field.
func (uqc *UserQuizpackCreate) SetQuizpackID(i int) *UserQuizpackCreate {
	uqc.mutation.SetQuizpackID(i)
	return uqc
}

// SetCatalogOrder sets the "catalog_order" field.
func (uqc *UserQuizpackCreate) SetCatalogOrder(i int) *UserQuizpackCreate {
	uqc.mutation.SetCatalogOrder(i)
	return uqc
}

// SetStatus sets the "status" field.
func (uqc *UserQuizpackCreate) SetStatus(s string) *UserQuizpackCreate {
	uqc.mutation.SetStatus(s)
	return uqc
}

// SetCurrentQuestionOrder sets the "current_question_order" field.
func (uqc *UserQuizpackCreate) SetCurrentQuestionOrder(i int) *UserQuizpackCreate {
	uqc.mutation.SetCurrentQuestionOrder(i)
	return uqc
}

// SetNillableCurrentQuestionOrder sets the "current_question_order" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableCurrentQuestionOrder(i *int) *UserQuizpackCreate {
	if i != nil {
		uqc.SetCurrentQuestionOrder(*i)
	}
	return uqc
}

// SetSolvedCount sets the "solved_count" field.
func (uqc *UserQuizpackCreate) SetSolvedCount(i int) *UserQuizpackCreate {
	uqc.mutation.SetSolvedCount(i)
	return uqc
}

// SetNillableSolvedCount sets the "solved_count" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableSolvedCount(i *int) *UserQuizpackCreate {
	if i != nil {
		uqc.SetSolvedCount(*i)
	}
	return uqc
}

// SetCorrectCount sets the "correct_count" field.
func (uqc *UserQuizpackCreate) SetCorrectCount(i int) *UserQuizpackCreate {
	uqc.mutation.SetCorrectCount(i)
	return uqc
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableCorrectCount(i *int) *UserQuizpackCreate {
	if i != nil {
		uqc.SetCorrectCount(*i)
	}
	return uqc
}

// SetIncorrectCount sets the "incorrect_count" field.
func (uqc *UserQuizpackCreate) SetIncorrectCount(i int) *UserQuizpackCreate {
	uqc.mutation.SetIncorrectCount(i)
	return uqc
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableIncorrectCount(i *int) *UserQuizpackCreate {
	if i != nil {
		uqc.SetIncorrectCount(*i)
	}
	return uqc
}

// SetCorrectRate sets the "correct_rate" field.
func (uqc *UserQuizpackCreate) SetCorrectRate(f float64) *UserQuizpackCreate {
	uqc.mutation.SetCorrectRate(f)
	return uqc
}

// SetNillableCorrectRate sets the "correct_rate" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableCorrectRate(f *float64) *UserQuizpackCreate {
	if f != nil {
		uqc.SetCorrectRate(*f)
	}
	return uqc
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (uqc *UserQuizpackCreate) SetTotalQuestionCount(i int) *UserQuizpackCreate {
	uqc.mutation.SetTotalQuestionCount(i)
	return uqc
}

// SetNillableTotalQuestionCount sets the "total_question_count" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableTotalQuestionCount(i *int) *UserQuizpackCreate {
	if i != nil {
		uqc.SetTotalQuestionCount(*i)
	}
	return uqc
}

// SetSessionNumber sets the "session_number" field.
func (uqc *UserQuizpackCreate) SetSessionNumber(i int) *UserQuizpackCreate {
	uqc.mutation.SetSessionNumber(i)
	return uqc
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableSessionNumber(i *int) *UserQuizpackCreate {
	if i != nil {
		uqc.SetSessionNumber(*i)
	}
	return uqc
}

// SetAttemptID sets the "attempt_id" field.
func (uqc *UserQuizpackCreate) SetAttemptID(s string) *UserQuizpackCreate {
	uqc.mutation.SetAttemptID(s)
	return uqc
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableAttemptID(s *string) *UserQuizpackCreate {
	if s != nil {
		uqc.SetAttemptID(*s)
	}
	return uqc
}

// SetStartedAt sets the "started_at" field.
func (uqc *UserQuizpackCreate) SetStartedAt(t time.Time) *UserQuizpackCreate {
	uqc.mutation.SetStartedAt(t)
	return uqc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableStartedAt(t *time.Time) *UserQuizpackCreate {
	if t != nil {
		uqc.SetStartedAt(*t)
	}
	return uqc
}

// SetLastPlayedAt sets the "last_played_at" field.
func (uqc *UserQuizpackCreate) SetLastPlayedAt(t time.Time) *UserQuizpackCreate {
	uqc.mutation.SetLastPlayedAt(t)
	return uqc
}

// SetNillableLastPlayedAt sets the "last_played_at" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableLastPlayedAt(t *time.Time) *UserQuizpackCreate {
	if t != nil {
		uqc.SetLastPlayedAt(*t)
	}
	return uqc
}

// SetCompletedAt sets the "completed_at" field.
func (uqc *UserQuizpackCreate) SetCompletedAt(t time.Time) *UserQuizpackCreate {
	uqc.mutation.SetCompletedAt(t)
	return uqc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableCompletedAt(t *time.Time) *UserQuizpackCreate {
	if t != nil {
		uqc.SetCompletedAt(*t)
	}
	return uqc
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (uqc *UserQuizpackCreate) SetTotalTimeSeconds(i int) *UserQuizpackCreate {
	uqc.mutation.SetTotalTimeSeconds(i)
	return uqc
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (uqc *UserQuizpackCreate) SetNillableTotalTimeSeconds(i *int) *UserQuizpackCreate {
	if i != nil {
		uqc.SetTotalTimeSeconds(*i)
	}
	return uqc
}

// Mutation returns the UserQuizpackMutation object of the builder.
func (uqc *UserQuizpackCreate) Mutation() *UserQuizpackMutation {
	return uqc.mutation
}

// Save creates the UserQuizpack in the database.
func (uqc *UserQuizpackCreate) Save(ctx context.Context) (*UserQuizpack, error) {
	uqc.defaults()
	return withHooks(ctx, uqc.sqlSave, uqc.mutation, uqc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uqc *UserQuizpackCreate) SaveX(ctx context.Context) *UserQuizpack {
	v, err := uqc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uqc *UserQuizpackCreate) Exec(ctx context.Context) error {
	_, err := uqc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uqc *UserQuizpackCreate) ExecX(ctx context.Context) {
	if err := uqc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uqc *UserQuizpackCreate) defaults() {
	if _, ok := uqc.mutation.CurrentQuestionOrder(); !ok {
		v := userquizpack.DefaultCurrentQuestionOrder
		uqc.mutation.SetCurrentQuestionOrder(v)
	}
	if _, ok := uqc.mutation.SolvedCount(); !ok {
		v := userquizpack.DefaultSolvedCount
		uqc.mutation.SetSolvedCount(v)
	}
	if _, ok := uqc.mutation.CorrectCount(); !ok {
		v := userquizpack.DefaultCorrectCount
		uqc.mutation.SetCorrectCount(v)
	}
	if _, ok := uqc.mutation.IncorrectCount(); !ok {
		v := userquizpack.DefaultIncorrectCount
		uqc.mutation.SetIncorrectCount(v)
	}
	if _, ok := uqc.mutation.TotalQuestionCount(); !ok {
		v := userquizpack.DefaultTotalQuestionCount
		uqc.mutation.SetTotalQuestionCount(v)
	}
	if _, ok := uqc.mutation.SessionNumber(); !ok {
		v := userquizpack.DefaultSessionNumber
		uqc.mutation.SetSessionNumber(v)
	}
	if _, ok := uqc.mutation.TotalTimeSeconds(); !ok {
		v := userquizpack.DefaultTotalTimeSeconds
		uqc.mutation.SetTotalTimeSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uqc *UserQuizpackCreate) check() error {
	if _, ok := uqc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserQuizpack.user_id"`)}
	}
	if v, ok := uqc.mutation.UserID(); ok {
		if err := userquizpack.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserQuizpack.user_id": %w`, err)}
		}
	}
	if _, ok := uqc.mutation.QuizpackID(); !ok {
		return &ValidationError{Name: "quizpack_id", err: errors.New(`ent: missing required field "UserQuizpack.quizpack_id"`)}
	}
	if _, ok := uqc.mutation.CatalogOrder(); !ok {
		return &ValidationError{Name: "catalog_order", err: errors.New(`ent: missing required field "UserQuizpack.catalog_order"`)}
	}
	if _, ok := uqc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UserQuizpack.status"`)}
	}
	if v, ok := uqc.mutation.Status(); ok {
		if err := userquizpack.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserQuizpack.status": %w`, err)}
		}
	}
	if _, ok := uqc.mutation.CurrentQuestionOrder(); !ok {
		return &ValidationError{Name: "current_question_order", err: errors.New(`ent: missing required field "UserQuizpack.current_question_order"`)}
	}
	if _, ok := uqc.mutation.SolvedCount(); !ok {
		return &ValidationError{Name: "solved_count", err: errors.New(`ent: missing required field "UserQuizpack.solved_count"`)}
	}
	if _, ok := uqc.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "UserQuizpack.correct_count"`)}
	}
	if _, ok := uqc.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "UserQuizpack.incorrect_count"`)}
	}
	if _, ok := uqc.mutation.TotalQuestionCount(); !ok {
		return &ValidationError{Name: "total_question_count", err: errors.New(`ent: missing required field "UserQuizpack.total_question_count"`)}
	}
	if _, ok := uqc.mutation.SessionNumber(); !ok {
		return &ValidationError{Name: "session_number", err: errors.New(`ent: missing required field "UserQuizpack.session_number"`)}
	}
	if _, ok := uqc.mutation.TotalTimeSeconds(); !ok {
		return &ValidationError{Name: "total_time_seconds", err: errors.New(`ent: missing required field "UserQuizpack.total_time_seconds"`)}
	}
	return nil
}

func (uqc *UserQuizpackCreate) sqlSave(ctx context.Context) (*UserQuizpack, error) {
	if err := uqc.check(); err != nil {
		return nil, err
	}
	_node, _spec := uqc.createSpec()
	if err := sqlgraph.CreateNode(ctx, uqc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	uqc.mutation.id = &_node.ID
	uqc.mutation.done = true
	return _node, nil
}

func (uqc *UserQuizpackCreate) createSpec() (*UserQuizpack, *sqlgraph.CreateSpec) {
	var (
		_node = &UserQuizpack{config: uqc.config}
		_spec = sqlgraph.NewCreateSpec(userquizpack.Table, sqlgraph.NewFieldSpec(userquizpack.FieldID, field.TypeInt))
	)
	if value, ok := uqc.mutation.UserID(); ok {
		_spec.SetField(userquizpack.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := uqc.mutation.QuizpackID(); ok {
		_spec.SetField(userquizpack.FieldQuizpackID, field.TypeInt, value)
		_node.QuizpackID = value
	}
	if value, ok := uqc.mutation.CatalogOrder(); ok {
		_spec.SetField(userquizpack.FieldCatalogOrder, field.TypeInt, value)
		_node.CatalogOrder = value
	}
	if value, ok := uqc.mutation.Status(); ok {
		_spec.SetField(userquizpack.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := uqc.mutation.CurrentQuestionOrder(); ok {
		_spec.SetField(userquizpack.FieldCurrentQuestionOrder, field.TypeInt, value)
		_node.CurrentQuestionOrder = value
	}
	if value, ok := uqc.mutation.SolvedCount(); ok {
		_spec.SetField(userquizpack.FieldSolvedCount, field.TypeInt, value)
		_node.SolvedCount = value
	}
	if value, ok := uqc.mutation.CorrectCount(); ok {
		_spec.SetField(userquizpack.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := uqc.mutation.IncorrectCount(); ok {
		_spec.SetField(userquizpack.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := uqc.mutation.CorrectRate(); ok {
		_spec.SetField(userquizpack.FieldCorrectRate, field.TypeFloat64, value)
		_node.CorrectRate = &value
	}
	if value, ok := uqc.mutation.TotalQuestionCount(); ok {
		_spec.SetField(userquizpack.FieldTotalQuestionCount, field.TypeInt, value)
		_node.TotalQuestionCount = value
	}
	if value, ok := uqc.mutation.SessionNumber(); ok {
		_spec.SetField(userquizpack.FieldSessionNumber, field.TypeInt, value)
		_node.SessionNumber = value
	}
	if value, ok := uqc.mutation.AttemptID(); ok {
		_spec.SetField(userquizpack.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := uqc.mutation.StartedAt(); ok {
		_spec.SetField(userquizpack.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := uqc.mutation.LastPlayedAt(); ok {
		_spec.SetField(userquizpack.FieldLastPlayedAt, field.TypeTime, value)
		_node.LastPlayedAt = &value
	}
	if value, ok := uqc.mutation.CompletedAt(); ok {
		_spec.SetField(userquizpack.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := uqc.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(userquizpack.FieldTotalTimeSeconds, field.TypeInt, value)
		_node.TotalTimeSeconds = value
	}
	return _node, _spec
}

// UserQuizpackCreateBulk is the builder for creating many UserQuizpack entities in bulk.
type UserQuizpackCreateBulk struct {
	config
	err      error
	builders []*UserQuizpackCreate
}

// Save creates the UserQuizpack entities in the database.
func (uqcb *UserQuizpackCreateBulk) Save(ctx context.Context) ([]*UserQuizpack, error) {
	if uqcb.err != nil {
		return nil, uqcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(uqcb.builders))
	nodes := make([]*UserQuizpack, len(uqcb.builders))
	mutators := make([]Mutator, len(uqcb.builders))
	for i := range uqcb.builders {
		func(i int, root context.Context) {
			builder := uqcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserQuizpackMutation)
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
					_, err = mutators[i+1].Mutate(root, uqcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, uqcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, uqcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (uqcb *UserQuizpackCreateBulk) SaveX(ctx context.Context) []*UserQuizpack {
	v, err := uqcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uqcb *UserQuizpackCreateBulk) Exec(ctx context.Context) error {
	_, err := uqcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uqcb *UserQuizpackCreateBulk) ExecX(ctx context.Context) {
	if err := uqcb.Exec(ctx); err != nil {
		panic(err)
	}
}
