// Code generated by ent, DO NOT EDIT.

package userquizpack

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldUserID, v))
}

// QuizpackID applies equality check predicate on the "quizpack_id" field. It's identical to QuizpackIDEQ.
func QuizpackID(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldQuizpackID, v))
}

// CatalogOrder applies equality check predicate on the "catalog_order" field. It's identical to CatalogOrderEQ.
func CatalogOrder(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCatalogOrder, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldStatus, v))
}

// CurrentQuestionOrder applies equality check predicate on the "current_question_order" field. It's identical to CurrentQuestionOrderEQ.
func CurrentQuestionOrder(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCurrentQuestionOrder, v))
}

// SolvedCount applies equality check predicate on the "solved_count" field. It's identical to SolvedCountEQ.
func SolvedCount(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldSolvedCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldIncorrectCount, v))
}

// CorrectRate applies equality check predicate on the "correct_rate" field. It's identical to CorrectRateEQ.
func CorrectRate(v float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCorrectRate, v))
}

// TotalQuestionCount applies equality check predicate on the "total_question_count" field. It's identical to TotalQuestionCountEQ.
func TotalQuestionCount(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldTotalQuestionCount, v))
}

// SessionNumber applies equality check predicate on the "session_number" field. It's identical to SessionNumberEQ.
func SessionNumber(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldSessionNumber, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldAttemptID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldStartedAt, v))
}

// LastPlayedAt applies equality check predicate on the "last_played_at" field. It's identical to LastPlayedAtEQ.
func LastPlayedAt(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldLastPlayedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCompletedAt, v))
}

// TotalTimeSeconds applies equality check predicate on the "total_time_seconds" field. It's identical to TotalTimeSecondsEQ.
func TotalTimeSeconds(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldTotalTimeSeconds, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldContainsFold(FieldUserID, v))
}

// QuizpackIDEQ applies the EQ predicate on the "quizpack_id" field.
func QuizpackIDEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldQuizpackID, v))
}

// QuizpackIDNEQ applies the NEQ predicate on the "quizpack_id" field.
func QuizpackIDNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldQuizpackID, v))
}

// QuizpackIDIn applies the In predicate on the "quizpack_id" field.
func QuizpackIDIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldQuizpackID, vs...))
}

// QuizpackIDNotIn applies the NotIn predicate on the "quizpack_id" field.
func QuizpackIDNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldQuizpackID, vs...))
}

// QuizpackIDGT applies the GT predicate on the "quizpack_id" field.
func QuizpackIDGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldQuizpackID, v))
}

// QuizpackIDGTE applies the GTE predicate on the "quizpack_id" field.
func QuizpackIDGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldQuizpackID, v))
}

// QuizpackIDLT applies the LT predicate on the "quizpack_id" field.
func QuizpackIDLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldQuizpackID, v))
}

// QuizpackIDLTE applies the LTE predicate on the "quizpack_id" field.
func QuizpackIDLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldQuizpackID, v))
}

// CatalogOrderEQ applies the EQ predicate on the "catalog_order" field.
func CatalogOrderEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCatalogOrder, v))
}

// CatalogOrderNEQ applies the NEQ predicate on the "catalog_order" field.
func CatalogOrderNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldCatalogOrder, v))
}

// CatalogOrderIn applies the In predicate on the "catalog_order" field.
func CatalogOrderIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldCatalogOrder, vs...))
}

// CatalogOrderNotIn applies the NotIn predicate on the "catalog_order" field.
func CatalogOrderNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldCatalogOrder, vs...))
}

// CatalogOrderGT applies the GT predicate on the "catalog_order" field.
func CatalogOrderGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldCatalogOrder, v))
}

// CatalogOrderGTE applies the GTE predicate on the "catalog_order" field.
func CatalogOrderGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldCatalogOrder, v))
}

// CatalogOrderLT applies the LT predicate on the "catalog_order" field.
func CatalogOrderLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldCatalogOrder, v))
}

// CatalogOrderLTE applies the LTE predicate on the "catalog_order" field.
func CatalogOrderLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldCatalogOrder, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldContainsFold(FieldStatus, v))
}

// CurrentQuestionOrderEQ applies the EQ predicate on the "current_question_order" field.
func CurrentQuestionOrderEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCurrentQuestionOrder, v))
}

// CurrentQuestionOrderNEQ applies the NEQ predicate on the "current_question_order" field.
func CurrentQuestionOrderNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldCurrentQuestionOrder, v))
}

// CurrentQuestionOrderIn applies the In predicate on the "current_question_order" field.
func CurrentQuestionOrderIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldCurrentQuestionOrder, vs...))
}

// CurrentQuestionOrderNotIn applies the NotIn predicate on the "current_question_order" field.
func CurrentQuestionOrderNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldCurrentQuestionOrder, vs...))
}

// CurrentQuestionOrderGT applies the GT predicate on the "current_question_order" field.
func CurrentQuestionOrderGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldCurrentQuestionOrder, v))
}

// CurrentQuestionOrderGTE applies the GTE predicate on the "current_question_order" field.
func CurrentQuestionOrderGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldCurrentQuestionOrder, v))
}

// CurrentQuestionOrderLT applies the LT predicate on the "current_question_order" field.
func CurrentQuestionOrderLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldCurrentQuestionOrder, v))
}

// CurrentQuestionOrderLTE applies the LTE predicate on the "current_question_order" field.
func CurrentQuestionOrderLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldCurrentQuestionOrder, v))
}

// SolvedCountEQ applies the EQ predicate on the "solved_count" field.
func SolvedCountEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldSolvedCount, v))
}

// SolvedCountNEQ applies the NEQ predicate on the "solved_count" field.
func SolvedCountNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldSolvedCount, v))
}

// SolvedCountIn applies the In predicate on the "solved_count" field.
func SolvedCountIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldSolvedCount, vs...))
}

// SolvedCountNotIn applies the NotIn predicate on the "solved_count" field.
func SolvedCountNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldSolvedCount, vs...))
}

// SolvedCountGT applies the GT predicate on the "solved_count" field.
func SolvedCountGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldSolvedCount, v))
}

// SolvedCountGTE applies the GTE predicate on the "solved_count" field.
func SolvedCountGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldSolvedCount, v))
}

// SolvedCountLT applies the LT predicate on the "solved_count" field.
func SolvedCountLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldSolvedCount, v))
}

// SolvedCountLTE applies the LTE predicate on the "solved_count" field.
func SolvedCountLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldSolvedCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldIncorrectCount, v))
}

// CorrectRateEQ applies the EQ predicate on the "correct_rate" field.
func CorrectRateEQ(v float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCorrectRate, v))
}

// CorrectRateNEQ applies the NEQ predicate on the "correct_rate" field.
func CorrectRateNEQ(v float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldCorrectRate, v))
}

// CorrectRateIn applies the In predicate on the "correct_rate" field.
func CorrectRateIn(vs ...float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldCorrectRate, vs...))
}

// CorrectRateNotIn applies the NotIn predicate on the "correct_rate" field.
func CorrectRateNotIn(vs ...float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldCorrectRate, vs...))
}

// CorrectRateGT applies the GT predicate on the "correct_rate" field.
func CorrectRateGT(v float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldCorrectRate, v))
}

// CorrectRateGTE applies the GTE predicate on the "correct_rate" field.
func CorrectRateGTE(v float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldCorrectRate, v))
}

// CorrectRateLT applies the LT predicate on the "correct_rate" field.
func CorrectRateLT(v float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldCorrectRate, v))
}

// CorrectRateLTE applies the LTE predicate on the "correct_rate" field.
func CorrectRateLTE(v float64) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldCorrectRate, v))
}

// CorrectRateIsNil applies the IsNil predicate on the "correct_rate" field.
func CorrectRateIsNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIsNull(FieldCorrectRate))
}

// CorrectRateNotNil applies the NotNil predicate on the "correct_rate" field.
func CorrectRateNotNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotNull(FieldCorrectRate))
}

// TotalQuestionCountEQ applies the EQ predicate on the "total_question_count" field.
func TotalQuestionCountEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldTotalQuestionCount, v))
}

// TotalQuestionCountNEQ applies the NEQ predicate on the "total_question_count" field.
func TotalQuestionCountNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldTotalQuestionCount, v))
}

// TotalQuestionCountIn applies the In predicate on the "total_question_count" field.
func TotalQuestionCountIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldTotalQuestionCount, vs...))
}

// TotalQuestionCountNotIn applies the NotIn predicate on the "total_question_count" field.
func TotalQuestionCountNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldTotalQuestionCount, vs...))
}

// TotalQuestionCountGT applies the GT predicate on the "total_question_count" field.
func TotalQuestionCountGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldTotalQuestionCount, v))
}

// TotalQuestionCountGTE applies the GTE predicate on the "total_question_count" field.
func TotalQuestionCountGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldTotalQuestionCount, v))
}

// TotalQuestionCountLT applies the LT predicate on the "total_question_count" field.
func TotalQuestionCountLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldTotalQuestionCount, v))
}

// TotalQuestionCountLTE applies the LTE predicate on the "total_question_count" field.
func TotalQuestionCountLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldTotalQuestionCount, v))
}

// SessionNumberEQ applies the EQ predicate on the "session_number" field.
func SessionNumberEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionNumberNEQ applies the NEQ predicate on the "session_number" field.
func SessionNumberNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldSessionNumber, v))
}

// SessionNumberIn applies the In predicate on the "session_number" field.
func SessionNumberIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldSessionNumber, vs...))
}

// SessionNumberNotIn applies the NotIn predicate on the "session_number" field.
func SessionNumberNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldSessionNumber, vs...))
}

// SessionNumberGT applies the GT predicate on the "session_number" field.
func SessionNumberGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldSessionNumber, v))
}

// SessionNumberGTE applies the GTE predicate on the "session_number" field.
func SessionNumberGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldSessionNumber, v))
}

// SessionNumberLT applies the LT predicate on the "session_number" field.
func SessionNumberLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldSessionNumber, v))
}

// SessionNumberLTE applies the LTE predicate on the "session_number" field.
func SessionNumberLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldSessionNumber, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDIsNil applies the IsNil predicate on the "attempt_id" field.
func AttemptIDIsNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIsNull(FieldAttemptID))
}

// AttemptIDNotNil applies the NotNil predicate on the "attempt_id" field.
func AttemptIDNotNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotNull(FieldAttemptID))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldContainsFold(FieldAttemptID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotNull(FieldStartedAt))
}

// LastPlayedAtEQ applies the EQ predicate on the "last_played_at" field.
func LastPlayedAtEQ(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldLastPlayedAt, v))
}

// LastPlayedAtNEQ applies the NEQ predicate on the "last_played_at" field.
func LastPlayedAtNEQ(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldLastPlayedAt, v))
}

// LastPlayedAtIn applies the In predicate on the "last_played_at" field.
func LastPlayedAtIn(vs ...time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldLastPlayedAt, vs...))
}

// LastPlayedAtNotIn applies the NotIn predicate on the "last_played_at" field.
func LastPlayedAtNotIn(vs ...time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldLastPlayedAt, vs...))
}

// LastPlayedAtGT applies the GT predicate on the "last_played_at" field.
func LastPlayedAtGT(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldLastPlayedAt, v))
}

// LastPlayedAtGTE applies the GTE predicate on the "last_played_at" field.
func LastPlayedAtGTE(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldLastPlayedAt, v))
}

// LastPlayedAtLT applies the LT predicate on the "last_played_at" field.
func LastPlayedAtLT(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldLastPlayedAt, v))
}

// LastPlayedAtLTE applies the LTE predicate on the "last_played_at" field.
func LastPlayedAtLTE(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldLastPlayedAt, v))
}

// LastPlayedAtIsNil applies the IsNil predicate on the "last_played_at" field.
func LastPlayedAtIsNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIsNull(FieldLastPlayedAt))
}

// LastPlayedAtNotNil applies the NotNil predicate on the "last_played_at" field.
func LastPlayedAtNotNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotNull(FieldLastPlayedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotNull(FieldCompletedAt))
}

// TotalTimeSecondsEQ applies the EQ predicate on the "total_time_seconds" field.
func TotalTimeSecondsEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldEQ(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsNEQ applies the NEQ predicate on the "total_time_seconds" field.
func TotalTimeSecondsNEQ(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNEQ(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsIn applies the In predicate on the "total_time_seconds" field.
func TotalTimeSecondsIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldIn(FieldTotalTimeSeconds, vs...))
}

// TotalTimeSecondsNotIn applies the NotIn predicate on the "total_time_seconds" field.
func TotalTimeSecondsNotIn(vs ...int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldNotIn(FieldTotalTimeSeconds, vs...))
}

// TotalTimeSecondsGT applies the GT predicate on the "total_time_seconds" field.
func TotalTimeSecondsGT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGT(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsGTE applies the GTE predicate on the "total_time_seconds" field.
func TotalTimeSecondsGTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldGTE(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsLT applies the LT predicate on the "total_time_seconds" field.
func TotalTimeSecondsLT(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLT(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsLTE applies the LTE predicate on the "total_time_seconds" field.
func TotalTimeSecondsLTE(v int) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.FieldLTE(FieldTotalTimeSeconds, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserQuizpack) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserQuizpack) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserQuizpack) predicate.UserQuizpack {
	return predicate.UserQuizpack(sql.NotPredicates(p))
}
