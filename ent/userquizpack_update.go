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
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// UserQuizpackUpdate is the builder for updating UserQuizpack entities.
type UserQuizpackUpdate struct {
	config
	hooks    []Hook
	mutation *UserQuizpackMutation
}

// Where appends a list predicates to the UserQuizpackUpdate builder.
func (uqu *UserQuizpackUpdate) Where(ps ...predicate.UserQuizpack) *UserQuizpackUpdate {
	uqu.mutation.Where(ps...)
	return uqu
}

// SetUserID sets the "user_id" field.
func (uqu *UserQuizpackUpdate) SetUserID(s string) *UserQuizpackUpdate {
	uqu.mutation.SetUserID(s)
	return uqu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableUserID(s *string) *UserQuizpackUpdate {
	if s != nil {
		uqu.SetUserID(*s)
	}
	return uqu
}

// SetQuizpackID sets the "quizpack_id" field.
func (uqu *UserQuizpackUpdate) SetQuizpackID(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetQuizpackID()
	uqu.mutation.SetQuizpackID(i)
	return uqu
}

// SetNillableQuizpackID sets the "quizpack_id" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableQuizpackID(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetQuizpackID(*i)
	}
	return uqu
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (uqu *UserQuizpackUpdate) AddQuizpackID(i int) *UserQuizpackUpdate {
	uqu.mutation.AddQuizpackID(i)
	return uqu
}

// SetCatalogOrder sets the "catalog_order" field.
func (uqu *UserQuizpackUpdate) SetCatalogOrder(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetCatalogOrder()
	uqu.mutation.SetCatalogOrder(i)
	return uqu
}

// SetNillableCatalogOrder sets the "catalog_order" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableCatalogOrder(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetCatalogOrder(*i)
	}
	return uqu
}

// AddCatalogOrder adds i to the "catalog_order" field.
func (uqu *UserQuizpackUpdate) AddCatalogOrder(i int) *UserQuizpackUpdate {
	uqu.mutation.AddCatalogOrder(i)
	return uqu
}

// SetStatus sets the "status" field.
func (uqu *UserQuizpackUpdate) SetStatus(s string) *UserQuizpackUpdate {
	uqu.mutation.SetStatus(s)
	return uqu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableStatus(s *string) *UserQuizpackUpdate {
	if s != nil {
		uqu.SetStatus(*s)
	}
	return uqu
}

// SetCurrentQuestionOrder sets the "current_question_order" field.
func (uqu *UserQuizpackUpdate) SetCurrentQuestionOrder(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetCurrentQuestionOrder()
	uqu.mutation.SetCurrentQuestionOrder(i)
	return uqu
}

// SetNillableCurrentQuestionOrder sets the "current_question_order" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableCurrentQuestionOrder(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetCurrentQuestionOrder(*i)
	}
	return uqu
}

// AddCurrentQuestionOrder adds i to the "current_question_order" field.
func (uqu *UserQuizpackUpdate) AddCurrentQuestionOrder(i int) *UserQuizpackUpdate {
	uqu.mutation.AddCurrentQuestionOrder(i)
	return uqu
}

// SetSolvedCount sets the "solved_count" field.
func (uqu *UserQuizpackUpdate) SetSolvedCount(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetSolvedCount()
	uqu.mutation.SetSolvedCount(i)
	return uqu
}

// SetNillableSolvedCount sets the "solved_count" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableSolvedCount(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetSolvedCount(*i)
	}
	return uqu
}

// AddSolvedCount adds i to the "solved_count" field.
func (uqu *UserQuizpackUpdate) AddSolvedCount(i int) *UserQuizpackUpdate {
	uqu.mutation.AddSolvedCount(i)
	return uqu
}

// SetCorrectCount sets the "correct_count" field.
func (uqu *UserQuizpackUpdate) SetCorrectCount(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetCorrectCount()
	uqu.mutation.SetCorrectCount(i)
	return uqu
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableCorrectCount(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetCorrectCount(*i)
	}
	return uqu
}

// AddCorrectCount adds i to the "correct_count" field.
func (uqu *UserQuizpackUpdate) AddCorrectCount(i int) *UserQuizpackUpdate {
	uqu.mutation.AddCorrectCount(i)
	return uqu
}

// SetIncorrectCount sets the "incorrect_count" field.
func (uqu *UserQuizpackUpdate) SetIncorrectCount(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetIncorrectCount()
	uqu.mutation.SetIncorrectCount(i)
	return uqu
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableIncorrectCount(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetIncorrectCount(*i)
	}
	return uqu
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (uqu *UserQuizpackUpdate) AddIncorrectCount(i int) *UserQuizpackUpdate {
	uqu.mutation.AddIncorrectCount(i)
	return uqu
}

// SetCorrectRate sets the "correct_rate" field.
func (uqu *UserQuizpackUpdate) SetCorrectRate(f float64) *UserQuizpackUpdate {
	uqu.mutation.ResetCorrectRate()
	uqu.mutation.SetCorrectRate(f)
	return uqu
}

// SetNillableCorrectRate sets the "correct_rate" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableCorrectRate(f *float64) *UserQuizpackUpdate {
	if f != nil {
		uqu.SetCorrectRate(*f)
	}
	return uqu
}

// AddCorrectRate adds f to the "correct_rate" field.
func (uqu *UserQuizpackUpdate) AddCorrectRate(f float64) *UserQuizpackUpdate {
	uqu.mutation.AddCorrectRate(f)
	return uqu
}

// ClearCorrectRate clears the value of the "correct_rate" field.
func (uqu *UserQuizpackUpdate) ClearCorrectRate() *UserQuizpackUpdate {
	uqu.mutation.ClearCorrectRate()
	return uqu
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (uqu *UserQuizpackUpdate) SetTotalQuestionCount(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetTotalQuestionCount()
	uqu.mutation.SetTotalQuestionCount(i)
	return uqu
}

// SetNillableTotalQuestionCount sets the "total_question_count" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableTotalQuestionCount(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetTotalQuestionCount(*i)
	}
	return uqu
}

// AddTotalQuestionCount adds i to the "total_question_count" field.
func (uqu *UserQuizpackUpdate) AddTotalQuestionCount(i int) *UserQuizpackUpdate {
	uqu.mutation.AddTotalQuestionCount(i)
	return uqu
}

// SetSessionNumber sets the "session_number" field.
func (uqu *UserQuizpackUpdate) SetSessionNumber(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetSessionNumber()
	uqu.mutation.SetSessionNumber(i)
	return uqu
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableSessionNumber(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetSessionNumber(*i)
	}
	return uqu
}

// AddSessionNumber adds i to the "session_number" field.
func (uqu *UserQuizpackUpdate) AddSessionNumber(i int) *UserQuizpackUpdate {
	uqu.mutation.AddSessionNumber(i)
	return uqu
}

// SetAttemptID sets the "attempt_id" field.
func (uqu *UserQuizpackUpdate) SetAttemptID(s string) *UserQuizpackUpdate {
	uqu.mutation.SetAttemptID(s)
	return uqu
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableAttemptID(s *string) *UserQuizpackUpdate {
	if s != nil {
		uqu.SetAttemptID(*s)
	}
	return uqu
}

// ClearAttemptID clears the value of the "attempt_id" field.
func (uqu *UserQuizpackUpdate) ClearAttemptID() *UserQuizpackUpdate {
	uqu.mutation.ClearAttemptID()
	return uqu
}

// SetStartedAt sets the "started_at" field.
func (uqu *UserQuizpackUpdate) SetStartedAt(t time.Time) *UserQuizpackUpdate {
	uqu.mutation.SetStartedAt(t)
	return uqu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableStartedAt(t *time.Time) *UserQuizpackUpdate {
	if t != nil {
		uqu.SetStartedAt(*t)
	}
	return uqu
}

// ClearStartedAt clears the value of the "started_at" field.
func (uqu *UserQuizpackUpdate) ClearStartedAt() *UserQuizpackUpdate {
	uqu.mutation.ClearStartedAt()
	return uqu
}

// SetLastPlayedAt sets the "last_played_at" field.
func (uqu *UserQuizpackUpdate) SetLastPlayedAt(t time.Time) *UserQuizpackUpdate {
	uqu.mutation.SetLastPlayedAt(t)
	return uqu
}

// SetNillableLastPlayedAt sets the "last_played_at" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableLastPlayedAt(t *time.Time) *UserQuizpackUpdate {
	if t != nil {
		uqu.SetLastPlayedAt(*t)
	}
	return uqu
}

// ClearLastPlayedAt clears the value of the "last_played_at" field.
func (uqu *UserQuizpackUpdate) ClearLastPlayedAt() *UserQuizpackUpdate {
	uqu.mutation.ClearLastPlayedAt()
	return uqu
}

// SetCompletedAt sets the "completed_at" field.
func (uqu *UserQuizpackUpdate) SetCompletedAt(t time.Time) *UserQuizpackUpdate {
	uqu.mutation.SetCompletedAt(t)
	return uqu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableCompletedAt(t *time.Time) *UserQuizpackUpdate {
	if t != nil {
		uqu.SetCompletedAt(*t)
	}
	return uqu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (uqu *UserQuizpackUpdate) ClearCompletedAt() *UserQuizpackUpdate {
	uqu.mutation.ClearCompletedAt()
	return uqu
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (uqu *UserQuizpackUpdate) SetTotalTimeSeconds(i int) *UserQuizpackUpdate {
	uqu.mutation.ResetTotalTimeSeconds()
	uqu.mutation.SetTotalTimeSeconds(i)
	return uqu
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (uqu *UserQuizpackUpdate) SetNillableTotalTimeSeconds(i *int) *UserQuizpackUpdate {
	if i != nil {
		uqu.SetTotalTimeSeconds(*i)
	}
	return uqu
}

// AddTotalTimeSeconds adds i to the "total_time_seconds" field.
func (uqu *UserQuizpackUpdate) AddTotalTimeSeconds(i int) *UserQuizpackUpdate {
	uqu.mutation.AddTotalTimeSeconds(i)
	return uqu
}

// Mutation returns the UserQuizpackMutation object of the builder.
func (uqu *UserQuizpackUpdate) Mutation() *UserQuizpackMutation {
	return uqu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uqu *UserQuizpackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, uqu.sqlSave, uqu.mutation, uqu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uqu *UserQuizpackUpdate) SaveX(ctx context.Context) int {
	affected, err := uqu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uqu *UserQuizpackUpdate) Exec(ctx context.Context) error {
	_, err := uqu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uqu *UserQuizpackUpdate) ExecX(ctx context.Context) {
	if err := uqu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uqu *UserQuizpackUpdate) check() error {
	if v, ok := uqu.mutation.UserID(); ok {
		if err := userquizpack.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserQuizpack.user_id": %w`, err)}
		}
	}
	if v, ok := uqu.mutation.Status(); ok {
		if err := userquizpack.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserQuizpack.status": %w`, err)}
		}
	}
	return nil
}

func (uqu *UserQuizpackUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uqu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(userquizpack.Table, userquizpack.Columns, sqlgraph.NewFieldSpec(userquizpack.FieldID, field.TypeInt))
	if ps := uqu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uqu.mutation.UserID(); ok {
		_spec.SetField(userquizpack.FieldUserID, field.TypeString, value)
	}
	if value, ok := uqu.mutation.QuizpackID(); ok {
		_spec.SetField(userquizpack.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedQuizpackID(); ok {
		_spec.AddField(userquizpack.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.CatalogOrder(); ok {
		_spec.SetField(userquizpack.FieldCatalogOrder, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedCatalogOrder(); ok {
		_spec.AddField(userquizpack.FieldCatalogOrder, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.Status(); ok {
		_spec.SetField(userquizpack.FieldStatus, field.TypeString, value)
	}
	if value, ok := uqu.mutation.CurrentQuestionOrder(); ok {
		_spec.SetField(userquizpack.FieldCurrentQuestionOrder, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedCurrentQuestionOrder(); ok {
		_spec.AddField(userquizpack.FieldCurrentQuestionOrder, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.SolvedCount(); ok {
		_spec.SetField(userquizpack.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedSolvedCount(); ok {
		_spec.AddField(userquizpack.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.CorrectCount(); ok {
		_spec.SetField(userquizpack.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedCorrectCount(); ok {
		_spec.AddField(userquizpack.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.IncorrectCount(); ok {
		_spec.SetField(userquizpack.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(userquizpack.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.CorrectRate(); ok {
		_spec.SetField(userquizpack.FieldCorrectRate, field.TypeFloat64, value)
	}
	if value, ok := uqu.mutation.AddedCorrectRate(); ok {
		_spec.AddField(userquizpack.FieldCorrectRate, field.TypeFloat64, value)
	}
	if uqu.mutation.CorrectRateCleared() {
		_spec.ClearField(userquizpack.FieldCorrectRate, field.TypeFloat64)
	}
	if value, ok := uqu.mutation.TotalQuestionCount(); ok {
		_spec.SetField(userquizpack.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedTotalQuestionCount(); ok {
		_spec.AddField(userquizpack.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.SessionNumber(); ok {
		_spec.SetField(userquizpack.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedSessionNumber(); ok {
		_spec.AddField(userquizpack.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AttemptID(); ok {
		_spec.SetField(userquizpack.FieldAttemptID, field.TypeString, value)
	}
	if uqu.mutation.AttemptIDCleared() {
		_spec.ClearField(userquizpack.FieldAttemptID, field.TypeString)
	}
	if value, ok := uqu.mutation.StartedAt(); ok {
		_spec.SetField(userquizpack.FieldStartedAt, field.TypeTime, value)
	}
	if uqu.mutation.StartedAtCleared() {
		_spec.ClearField(userquizpack.FieldStartedAt, field.TypeTime)
	}
	if value, ok := uqu.mutation.LastPlayedAt(); ok {
		_spec.SetField(userquizpack.FieldLastPlayedAt, field.TypeTime, value)
	}
	if uqu.mutation.LastPlayedAtCleared() {
		_spec.ClearField(userquizpack.FieldLastPlayedAt, field.TypeTime)
	}
	if value, ok := uqu.mutation.CompletedAt(); ok {
		_spec.SetField(userquizpack.FieldCompletedAt, field.TypeTime, value)
	}
	if uqu.mutation.CompletedAtCleared() {
		_spec.ClearField(userquizpack.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := uqu.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(userquizpack.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := uqu.mutation.AddedTotalTimeSeconds(); ok {
		_spec.AddField(userquizpack.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uqu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userquizpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uqu.mutation.done = true
	return n, nil
}

// UserQuizpackUpdateOne is the builder for updating a single UserQuizpack entity.
type UserQuizpackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserQuizpackMutation
}

// SetUserID sets the "user_id" field.
func (uquo *UserQuizpackUpdateOne) SetUserID(s string) *UserQuizpackUpdateOne {
	uquo.mutation.SetUserID(s)
	return uquo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableUserID(s *string) *UserQuizpackUpdateOne {
	if s != nil {
		uquo.SetUserID(*s)
	}
	return uquo
}

// SetQuizpackID sets the "quizpack_id" field.
func (uquo *UserQuizpackUpdateOne) SetQuizpackID(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetQuizpackID()
	uquo.mutation.SetQuizpackID(i)
	return uquo
}

// SetNillableQuizpackID sets the "quizpack_id" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableQuizpackID(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetQuizpackID(*i)
	}
	return uquo
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (uquo *UserQuizpackUpdateOne) AddQuizpackID(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddQuizpackID(i)
	return uquo
}

// SetCatalogOrder sets the "catalog_order" field.
func (uquo *UserQuizpackUpdateOne) SetCatalogOrder(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetCatalogOrder()
	uquo.mutation.SetCatalogOrder(i)
	return uquo
}

// SetNillableCatalogOrder sets the "catalog_order" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableCatalogOrder(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetCatalogOrder(*i)
	}
	return uquo
}

// AddCatalogOrder adds i to the "catalog_order" field.
func (uquo *UserQuizpackUpdateOne) AddCatalogOrder(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddCatalogOrder(i)
	return uquo
}

// SetStatus sets the "status" field.
func (uquo *UserQuizpackUpdateOne) SetStatus(s string) *UserQuizpackUpdateOne {
	uquo.mutation.SetStatus(s)
	return uquo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableStatus(s *string) *UserQuizpackUpdateOne {
	if s != nil {
		uquo.SetStatus(*s)
	}
	return uquo
}

// SetCurrentQuestionOrder sets the "current_question_order" field.
func (uquo *UserQuizpackUpdateOne) SetCurrentQuestionOrder(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetCurrentQuestionOrder()
	uquo.mutation.SetCurrentQuestionOrder(i)
	return uquo
}

// SetNillableCurrentQuestionOrder sets the "current_question_order" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableCurrentQuestionOrder(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetCurrentQuestionOrder(*i)
	}
	return uquo
}

// AddCurrentQuestionOrder adds i to the "current_question_order" field.
func (uquo *UserQuizpackUpdateOne) AddCurrentQuestionOrder(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddCurrentQuestionOrder(i)
	return uquo
}

// SetSolvedCount sets the "solved_count" field.
func (uquo *UserQuizpackUpdateOne) SetSolvedCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetSolvedCount()
	uquo.mutation.SetSolvedCount(i)
	return uquo
}

// SetNillableSolvedCount sets the "solved_count" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableSolvedCount(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetSolvedCount(*i)
	}
	return uquo
}

// AddSolvedCount adds i to the "solved_count" field.
func (uquo *UserQuizpackUpdateOne) AddSolvedCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddSolvedCount(i)
	return uquo
}

// SetCorrectCount sets the "correct_count" field.
func (uquo *UserQuizpackUpdateOne) SetCorrectCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetCorrectCount()
	uquo.mutation.SetCorrectCount(i)
	return uquo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableCorrectCount(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetCorrectCount(*i)
	}
	return uquo
}

// AddCorrectCount adds i to the "correct_count" field.
func (uquo *UserQuizpackUpdateOne) AddCorrectCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddCorrectCount(i)
	return uquo
}

// SetIncorrectCount sets the "incorrect_count" field.
func (uquo *UserQuizpackUpdateOne) SetIncorrectCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetIncorrectCount()
	uquo.mutation.SetIncorrectCount(i)
	return uquo
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableIncorrectCount(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetIncorrectCount(*i)
	}
	return uquo
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (uquo *UserQuizpackUpdateOne) AddIncorrectCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddIncorrectCount(i)
	return uquo
}

// SetCorrectRate sets the "correct_rate" field.
func (uquo *UserQuizpackUpdateOne) SetCorrectRate(f float64) *UserQuizpackUpdateOne {
	uquo.mutation.ResetCorrectRate()
	uquo.mutation.SetCorrectRate(f)
	return uquo
}

// SetNillableCorrectRate sets the "correct_rate" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableCorrectRate(f *float64) *UserQuizpackUpdateOne {
	if f != nil {
		uquo.SetCorrectRate(*f)
	}
	return uquo
}

// AddCorrectRate adds f to the "correct_rate" field.
func (uquo *UserQuizpackUpdateOne) AddCorrectRate(f float64) *UserQuizpackUpdateOne {
	uquo.mutation.AddCorrectRate(f)
	return uquo
}

// ClearCorrectRate clears the value of the "correct_rate" field.
func (uquo *UserQuizpackUpdateOne) ClearCorrectRate() *UserQuizpackUpdateOne {
	uquo.mutation.ClearCorrectRate()
	return uquo
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (uquo *UserQuizpackUpdateOne) SetTotalQuestionCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetTotalQuestionCount()
	uquo.mutation.SetTotalQuestionCount(i)
	return uquo
}

// SetNillableTotalQuestionCount sets the "total_question_count" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableTotalQuestionCount(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetTotalQuestionCount(*i)
	}
	return uquo
}

// AddTotalQuestionCount adds i to the "total_question_count" field.
func (uquo *UserQuizpackUpdateOne) AddTotalQuestionCount(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddTotalQuestionCount(i)
	return uquo
}

// SetSessionNumber sets the "session_number" field.
func (uquo *UserQuizpackUpdateOne) SetSessionNumber(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetSessionNumber()
	uquo.mutation.SetSessionNumber(i)
	return uquo
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableSessionNumber(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetSessionNumber(*i)
	}
	return uquo
}

// AddSessionNumber adds i to the "session_number" field.
func (uquo *UserQuizpackUpdateOne) AddSessionNumber(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddSessionNumber(i)
	return uquo
}

// SetAttemptID sets the "attempt_id" field.
func (uquo *UserQuizpackUpdateOne) SetAttemptID(s string) *UserQuizpackUpdateOne {
	uquo.mutation.SetAttemptID(s)
	return uquo
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableAttemptID(s *string) *UserQuizpackUpdateOne {
	if s != nil {
		uquo.SetAttemptID(*s)
	}
	return uquo
}

// ClearAttemptID clears the value of the "attempt_id" field.
func (uquo *UserQuizpackUpdateOne) ClearAttemptID() *UserQuizpackUpdateOne {
	uquo.mutation.ClearAttemptID()
	return uquo
}

// SetStartedAt sets the "started_at" field.
func (uquo *UserQuizpackUpdateOne) SetStartedAt(t time.Time) *UserQuizpackUpdateOne {
	uquo.mutation.SetStartedAt(t)
	return uquo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableStartedAt(t *time.Time) *UserQuizpackUpdateOne {
	if t != nil {
		uquo.SetStartedAt(*t)
	}
	return uquo
}

// ClearStartedAt clears the value of the "started_at" field.
func (uquo *UserQuizpackUpdateOne) ClearStartedAt() *UserQuizpackUpdateOne {
	uquo.mutation.ClearStartedAt()
	return uquo
}

// SetLastPlayedAt sets the "last_played_at" field.
func (uquo *UserQuizpackUpdateOne) SetLastPlayedAt(t time.Time) *UserQuizpackUpdateOne {
	uquo.mutation.SetLastPlayedAt(t)
	return uquo
}

// SetNillableLastPlayedAt sets the "last_played_at" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableLastPlayedAt(t *time.Time) *UserQuizpackUpdateOne {
	if t != nil {
		uquo.SetLastPlayedAt(*t)
	}
	return uquo
}

// ClearLastPlayedAt clears the value of the "last_played_at" field.
func (uquo *UserQuizpackUpdateOne) ClearLastPlayedAt() *UserQuizpackUpdateOne {
	uquo.mutation.ClearLastPlayedAt()
	return uquo
}

// SetCompletedAt sets the "completed_at" field.
func (uquo *UserQuizpackUpdateOne) SetCompletedAt(t time.Time) *UserQuizpackUpdateOne {
	uquo.mutation.SetCompletedAt(t)
	return uquo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableCompletedAt(t *time.Time) *UserQuizpackUpdateOne {
	if t != nil {
		uquo.SetCompletedAt(*t)
	}
	return uquo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (uquo *UserQuizpackUpdateOne) ClearCompletedAt() *UserQuizpackUpdateOne {
	uquo.mutation.ClearCompletedAt()
	return uquo
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (uquo *UserQuizpackUpdateOne) SetTotalTimeSeconds(i int) *UserQuizpackUpdateOne {
	uquo.mutation.ResetTotalTimeSeconds()
	uquo.mutation.SetTotalTimeSeconds(i)
	return uquo
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (uquo *UserQuizpackUpdateOne) SetNillableTotalTimeSeconds(i *int) *UserQuizpackUpdateOne {
	if i != nil {
		uquo.SetTotalTimeSeconds(*i)
	}
	return uquo
}

// AddTotalTimeSeconds adds i to the "total_time_seconds" field.
func (uquo *UserQuizpackUpdateOne) AddTotalTimeSeconds(i int) *UserQuizpackUpdateOne {
	uquo.mutation.AddTotalTimeSeconds(i)
	return uquo
}

// Mutation returns the UserQuizpackMutation object of the builder.
func (uquo *UserQuizpackUpdateOne) Mutation() *UserQuizpackMutation {
	return uquo.mutation
}

// Where appends a list predicates to the UserQuizpackUpdate builder.
func (uquo *UserQuizpackUpdateOne) Where(ps ...predicate.UserQuizpack) *UserQuizpackUpdateOne {
	uquo.mutation.Where(ps...)
	return uquo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uquo *UserQuizpackUpdateOne) Select(field string, fields ...string) *UserQuizpackUpdateOne {
	uquo.fields = append([]string{field}, fields...)
	return uquo
}

// Save executes the query and returns the updated UserQuizpack entity.
func (uquo *UserQuizpackUpdateOne) Save(ctx context.Context) (*UserQuizpack, error) {
	return withHooks(ctx, uquo.sqlSave, uquo.mutation, uquo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uquo *UserQuizpackUpdateOne) SaveX(ctx context.Context) *UserQuizpack {
	node, err := uquo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uquo *UserQuizpackUpdateOne) Exec(ctx context.Context) error {
	_, err := uquo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uquo *UserQuizpackUpdateOne) ExecX(ctx context.Context) {
	if err := uquo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uquo *UserQuizpackUpdateOne) check() error {
	if v, ok := uquo.mutation.UserID(); ok {
		if err := userquizpack.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserQuizpack.user_id": %w`, err)}
		}
	}
	if v, ok := uquo.mutation.Status(); ok {
		if err := userquizpack.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserQuizpack.status": %w`, err)}
		}
	}
	return nil
}

func (uquo *UserQuizpackUpdateOne) sqlSave(ctx context.Context) (_node *UserQuizpack, err error) {
	if err := uquo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userquizpack.Table, userquizpack.Columns, sqlgraph.NewFieldSpec(userquizpack.FieldID, field.TypeInt))
	id, ok := uquo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserQuizpack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uquo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userquizpack.FieldID)
		for _, f := range fields {
			if !userquizpack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userquizpack.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uquo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uquo.mutation.UserID(); ok {
		_spec.SetField(userquizpack.FieldUserID, field.TypeString, value)
	}
	if value, ok := uquo.mutation.QuizpackID(); ok {
		_spec.SetField(userquizpack.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedQuizpackID(); ok {
		_spec.AddField(userquizpack.FieldQuizpackID, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.CatalogOrder(); ok {
		_spec.SetField(userquizpack.FieldCatalogOrder, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedCatalogOrder(); ok {
		_spec.AddField(userquizpack.FieldCatalogOrder, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.Status(); ok {
		_spec.SetField(userquizpack.FieldStatus, field.TypeString, value)
	}
	if value, ok := uquo.mutation.CurrentQuestionOrder(); ok {
		_spec.SetField(userquizpack.FieldCurrentQuestionOrder, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedCurrentQuestionOrder(); ok {
		_spec.AddField(userquizpack.FieldCurrentQuestionOrder, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.SolvedCount(); ok {
		_spec.SetField(userquizpack.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedSolvedCount(); ok {
		_spec.AddField(userquizpack.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.CorrectCount(); ok {
		_spec.SetField(userquizpack.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(userquizpack.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.IncorrectCount(); ok {
		_spec.SetField(userquizpack.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(userquizpack.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.CorrectRate(); ok {
		_spec.SetField(userquizpack.FieldCorrectRate, field.TypeFloat64, value)
	}
	if value, ok := uquo.mutation.AddedCorrectRate(); ok {
		_spec.AddField(userquizpack.FieldCorrectRate, field.TypeFloat64, value)
	}
	if uquo.mutation.CorrectRateCleared() {
		_spec.ClearField(userquizpack.FieldCorrectRate, field.TypeFloat64)
	}
	if value, ok := uquo.mutation.TotalQuestionCount(); ok {
		_spec.SetField(userquizpack.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedTotalQuestionCount(); ok {
		_spec.AddField(userquizpack.FieldTotalQuestionCount, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.SessionNumber(); ok {
		_spec.SetField(userquizpack.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedSessionNumber(); ok {
		_spec.AddField(userquizpack.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AttemptID(); ok {
		_spec.SetField(userquizpack.FieldAttemptID, field.TypeString, value)
	}
	if uquo.mutation.AttemptIDCleared() {
		_spec.ClearField(userquizpack.FieldAttemptID, field.TypeString)
	}
	if value, ok := uquo.mutation.StartedAt(); ok {
		_spec.SetField(userquizpack.FieldStartedAt, field.TypeTime, value)
	}
	if uquo.mutation.StartedAtCleared() {
		_spec.ClearField(userquizpack.FieldStartedAt, field.TypeTime)
	}
	if value, ok := uquo.mutation.LastPlayedAt(); ok {
		_spec.SetField(userquizpack.FieldLastPlayedAt, field.TypeTime, value)
	}
	if uquo.mutation.LastPlayedAtCleared() {
		_spec.ClearField(userquizpack.FieldLastPlayedAt, field.TypeTime)
	}
	if value, ok := uquo.mutation.CompletedAt(); ok {
		_spec.SetField(userquizpack.FieldCompletedAt, field.TypeTime, value)
	}
	if uquo.mutation.CompletedAtCleared() {
		_spec.ClearField(userquizpack.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := uquo.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(userquizpack.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := uquo.mutation.AddedTotalTimeSeconds(); ok {
		_spec.AddField(userquizpack.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	_node = &UserQuizpack{config: uquo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uquo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userquizpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uquo.mutation.done = true
	return _node, nil
}
