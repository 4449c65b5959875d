// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// UserQuizpackDelete is the builder for deleting a UserQuizpack entity.
type UserQuizpackDelete struct {
	config
	hooks    []Hook
	mutation *UserQuizpackMutation
}

// Where appends a list predicates to the UserQuizpackDelete builder.
func (uqd *UserQuizpackDelete) Where(ps ...predicate.UserQuizpack) *UserQuizpackDelete {
	uqd.mutation.Where(ps...)
	return uqd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (uqd *UserQuizpackDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, uqd.sqlExec, uqd.mutation, uqd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (uqd *UserQuizpackDelete) ExecX(ctx context.Context) int {
	n, err := uqd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (uqd *UserQuizpackDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userquizpack.Table, sqlgraph.NewFieldSpec(userquizpack.FieldID, field.TypeInt))
	if ps := uqd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, uqd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	uqd.mutation.done = true
	return affected, err
}

// UserQuizpackDeleteOne is the builder for deleting a single UserQuizpack entity.
type UserQuizpackDeleteOne struct {
	uqd *UserQuizpackDelete
}

// Where appends a list predicates to the UserQuizpackDelete builder.
func (uqdo *UserQuizpackDeleteOne) Where(ps ...predicate.UserQuizpack) *UserQuizpackDeleteOne {
	uqdo.uqd.mutation.Where(ps...)
	return uqdo
}

// Exec executes the deletion query.
func (uqdo *UserQuizpackDeleteOne) Exec(ctx context.Context) error {
	n, err := uqdo.uqd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userquizpack.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (uqdo *UserQuizpackDeleteOne) ExecX(ctx context.Context) {
	if err := uqdo.Exec(ctx); err != nil {
		panic(err)
	}
}
