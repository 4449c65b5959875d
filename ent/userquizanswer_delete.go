// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
)

// UserQuizAnswerDelete is the builder for deleting a UserQuizAnswer entity.
type UserQuizAnswerDelete struct {
	config
	hooks    []Hook
	mutation *UserQuizAnswerMutation
}

// Where appends a list predicates to the UserQuizAnswerDelete builder.
func (uqad *UserQuizAnswerDelete) Where(ps ...predicate.UserQuizAnswer) *UserQuizAnswerDelete {
	uqad.mutation.Where(ps...)
	return uqad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (uqad *UserQuizAnswerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, uqad.sqlExec, uqad.mutation, uqad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (uqad *UserQuizAnswerDelete) ExecX(ctx context.Context) int {
	n, err := uqad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (uqad *UserQuizAnswerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userquizanswer.Table, sqlgraph.NewFieldSpec(userquizanswer.FieldID, field.TypeInt))
	if ps := uqad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, uqad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	uqad.mutation.done = true
	return affected, err
}

// UserQuizAnswerDeleteOne is the builder for deleting a single UserQuizAnswer entity.
type UserQuizAnswerDeleteOne struct {
	uqad *UserQuizAnswerDelete
}

// Where appends a list predicates to the UserQuizAnswerDelete builder.
func (uqado *UserQuizAnswerDeleteOne) Where(ps ...predicate.UserQuizAnswer) *UserQuizAnswerDeleteOne {
	uqado.uqad.mutation.Where(ps...)
	return uqado
}

// Exec executes the deletion query.
func (uqado *UserQuizAnswerDeleteOne) Exec(ctx context.Context) error {
	n, err := uqado.uqad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userquizanswer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (uqado *UserQuizAnswerDeleteOne) ExecX(ctx context.Context) {
	if err := uqado.Exec(ctx); err != nil {
		panic(err)
	}
}
