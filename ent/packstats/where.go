// Code generated by ent, DO NOT EDIT.

package packstats

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldID, id))
}

// QuizpackID applies equality check predicate on the "quizpack_id" field. It's identical to QuizpackIDEQ.
func QuizpackID(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldQuizpackID, v))
}

// TotalCompletions applies equality check predicate on the "total_completions" field. It's identical to TotalCompletionsEQ.
func TotalCompletions(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldTotalCompletions, v))
}

// TotalCorrectCount applies equality check predicate on the "total_correct_count" field. It's identical to TotalCorrectCountEQ.
func TotalCorrectCount(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldTotalCorrectCount, v))
}

// TotalQuestionCount applies equality check predicate on the "total_question_count" field. It's identical to TotalQuestionCountEQ.
func TotalQuestionCount(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldTotalQuestionCount, v))
}

// AverageCorrectRate applies equality check predicate on the "average_correct_rate" field. It's identical to AverageCorrectRateEQ.
func AverageCorrectRate(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldAverageCorrectRate, v))
}

// RatingSum applies equality check predicate on the "rating_sum" field. It's identical to RatingSumEQ.
func RatingSum(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldRatingSum, v))
}

// RatingCount applies equality check predicate on the "rating_count" field. It's identical to RatingCountEQ.
func RatingCount(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldRatingCount, v))
}

// AverageRating applies equality check predicate on the "average_rating" field. It's identical to AverageRatingEQ.
func AverageRating(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldAverageRating, v))
}

// QuizpackIDEQ applies the EQ predicate on the "quizpack_id" field.
func QuizpackIDEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldQuizpackID, v))
}

// QuizpackIDNEQ applies the NEQ predicate on the "quizpack_id" field.
func QuizpackIDNEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldQuizpackID, v))
}

// QuizpackIDIn applies the In predicate on the "quizpack_id" field.
func QuizpackIDIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldQuizpackID, vs...))
}

// QuizpackIDNotIn applies the NotIn predicate on the "quizpack_id" field.
func QuizpackIDNotIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldQuizpackID, vs...))
}

// QuizpackIDGT applies the GT predicate on the "quizpack_id" field.
func QuizpackIDGT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldQuizpackID, v))
}

// QuizpackIDGTE applies the GTE predicate on the "quizpack_id" field.
func QuizpackIDGTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldQuizpackID, v))
}

// QuizpackIDLT applies the LT predicate on the "quizpack_id" field.
func QuizpackIDLT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldQuizpackID, v))
}

// QuizpackIDLTE applies the LTE predicate on the "quizpack_id" field.
func QuizpackIDLTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldQuizpackID, v))
}

// TotalCompletionsEQ applies the EQ predicate on the "total_completions" field.
func TotalCompletionsEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldTotalCompletions, v))
}

// TotalCompletionsNEQ applies the NEQ predicate on the "total_completions" field.
func TotalCompletionsNEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldTotalCompletions, v))
}

// TotalCompletionsIn applies the In predicate on the "total_completions" field.
func TotalCompletionsIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldTotalCompletions, vs...))
}

// TotalCompletionsNotIn applies the NotIn predicate on the "total_completions" field.
func TotalCompletionsNotIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldTotalCompletions, vs...))
}

// TotalCompletionsGT applies the GT predicate on the "total_completions" field.
func TotalCompletionsGT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldTotalCompletions, v))
}

// TotalCompletionsGTE applies the GTE predicate on the "total_completions" field.
func TotalCompletionsGTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldTotalCompletions, v))
}

// TotalCompletionsLT applies the LT predicate on the "total_completions" field.
func TotalCompletionsLT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldTotalCompletions, v))
}

// TotalCompletionsLTE applies the LTE predicate on the "total_completions" field.
func TotalCompletionsLTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldTotalCompletions, v))
}

// TotalCorrectCountEQ applies the EQ predicate on the "total_correct_count" field.
func TotalCorrectCountEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldTotalCorrectCount, v))
}

// TotalCorrectCountNEQ applies the NEQ predicate on the "total_correct_count" field.
func TotalCorrectCountNEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldTotalCorrectCount, v))
}

// TotalCorrectCountIn applies the In predicate on the "total_correct_count" field.
func TotalCorrectCountIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldTotalCorrectCount, vs...))
}

// TotalCorrectCountNotIn applies the NotIn predicate on the "total_correct_count" field.
func TotalCorrectCountNotIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldTotalCorrectCount, vs...))
}

// TotalCorrectCountGT applies the GT predicate on the "total_correct_count" field.
func TotalCorrectCountGT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldTotalCorrectCount, v))
}

// TotalCorrectCountGTE applies the GTE predicate on the "total_correct_count" field.
func TotalCorrectCountGTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldTotalCorrectCount, v))
}

// TotalCorrectCountLT applies the LT predicate on the "total_correct_count" field.
func TotalCorrectCountLT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldTotalCorrectCount, v))
}

// TotalCorrectCountLTE applies the LTE predicate on the "total_correct_count" field.
func TotalCorrectCountLTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldTotalCorrectCount, v))
}

// TotalQuestionCountEQ applies the EQ predicate on the "total_question_count" field.
func TotalQuestionCountEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldTotalQuestionCount, v))
}

// TotalQuestionCountNEQ applies the NEQ predicate on the "total_question_count" field.
func TotalQuestionCountNEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldTotalQuestionCount, v))
}

// TotalQuestionCountIn applies the In predicate on the "total_question_count" field.
func TotalQuestionCountIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldTotalQuestionCount, vs...))
}

// TotalQuestionCountNotIn applies the NotIn predicate on the "total_question_count" field.
func TotalQuestionCountNotIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldTotalQuestionCount, vs...))
}

// TotalQuestionCountGT applies the GT predicate on the "total_question_count" field.
func TotalQuestionCountGT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldTotalQuestionCount, v))
}

// TotalQuestionCountGTE applies the GTE predicate on the "total_question_count" field.
func TotalQuestionCountGTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldTotalQuestionCount, v))
}

// TotalQuestionCountLT applies the LT predicate on the "total_question_count" field.
func TotalQuestionCountLT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldTotalQuestionCount, v))
}

// TotalQuestionCountLTE applies the LTE predicate on the "total_question_count" field.
func TotalQuestionCountLTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldTotalQuestionCount, v))
}

// AverageCorrectRateEQ applies the EQ predicate on the "average_correct_rate" field.
func AverageCorrectRateEQ(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldAverageCorrectRate, v))
}

// AverageCorrectRateNEQ applies the NEQ predicate on the "average_correct_rate" field.
func AverageCorrectRateNEQ(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldAverageCorrectRate, v))
}

// AverageCorrectRateIn applies the In predicate on the "average_correct_rate" field.
func AverageCorrectRateIn(vs ...float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldAverageCorrectRate, vs...))
}

// AverageCorrectRateNotIn applies the NotIn predicate on the "average_correct_rate" field.
func AverageCorrectRateNotIn(vs ...float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldAverageCorrectRate, vs...))
}

// AverageCorrectRateGT applies the GT predicate on the "average_correct_rate" field.
func AverageCorrectRateGT(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldAverageCorrectRate, v))
}

// AverageCorrectRateGTE applies the GTE predicate on the "average_correct_rate" field.
func AverageCorrectRateGTE(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldAverageCorrectRate, v))
}

// AverageCorrectRateLT applies the LT predicate on the "average_correct_rate" field.
func AverageCorrectRateLT(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldAverageCorrectRate, v))
}

// AverageCorrectRateLTE applies the LTE predicate on the "average_correct_rate" field.
func AverageCorrectRateLTE(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldAverageCorrectRate, v))
}

// RatingSumEQ applies the EQ predicate on the "rating_sum" field.
func RatingSumEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldRatingSum, v))
}

// RatingSumNEQ applies the NEQ predicate on the "rating_sum" field.
func RatingSumNEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldRatingSum, v))
}

// RatingSumIn applies the In predicate on the "rating_sum" field.
func RatingSumIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldRatingSum, vs...))
}

// RatingSumNotIn applies the NotIn predicate on the "rating_sum" field.
func RatingSumNotIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldRatingSum, vs...))
}

// RatingSumGT applies the GT predicate on the "rating_sum" field.
func RatingSumGT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldRatingSum, v))
}

// RatingSumGTE applies the GTE predicate on the "rating_sum" field.
func RatingSumGTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldRatingSum, v))
}

// RatingSumLT applies the LT predicate on the "rating_sum" field.
func RatingSumLT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldRatingSum, v))
}

// RatingSumLTE applies the LTE predicate on the "rating_sum" field.
func RatingSumLTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldRatingSum, v))
}

// RatingCountEQ applies the EQ predicate on the "rating_count" field.
func RatingCountEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldRatingCount, v))
}

// RatingCountNEQ applies the NEQ predicate on the "rating_count" field.
func RatingCountNEQ(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldRatingCount, v))
}

// RatingCountIn applies the In predicate on the "rating_count" field.
func RatingCountIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldRatingCount, vs...))
}

// RatingCountNotIn applies the NotIn predicate on the "rating_count" field.
func RatingCountNotIn(vs ...int) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldRatingCount, vs...))
}

// RatingCountGT applies the GT predicate on the "rating_count" field.
func RatingCountGT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldRatingCount, v))
}

// RatingCountGTE applies the GTE predicate on the "rating_count" field.
func RatingCountGTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldRatingCount, v))
}

// RatingCountLT applies the LT predicate on the "rating_count" field.
func RatingCountLT(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldRatingCount, v))
}

// RatingCountLTE applies the LTE predicate on the "rating_count" field.
func RatingCountLTE(v int) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldRatingCount, v))
}

// AverageRatingEQ applies the EQ predicate on the "average_rating" field.
func AverageRatingEQ(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldEQ(FieldAverageRating, v))
}

// AverageRatingNEQ applies the NEQ predicate on the "average_rating" field.
func AverageRatingNEQ(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldNEQ(FieldAverageRating, v))
}

// AverageRatingIn applies the In predicate on the "average_rating" field.
func AverageRatingIn(vs ...float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldIn(FieldAverageRating, vs...))
}

// AverageRatingNotIn applies the NotIn predicate on the "average_rating" field.
func AverageRatingNotIn(vs ...float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldNotIn(FieldAverageRating, vs...))
}

// AverageRatingGT applies the GT predicate on the "average_rating" field.
func AverageRatingGT(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldGT(FieldAverageRating, v))
}

// AverageRatingGTE applies the GTE predicate on the "average_rating" field.
func AverageRatingGTE(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldGTE(FieldAverageRating, v))
}

// AverageRatingLT applies the LT predicate on the "average_rating" field.
func AverageRatingLT(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldLT(FieldAverageRating, v))
}

// AverageRatingLTE applies the LTE predicate on the "average_rating" field.
func AverageRatingLTE(v float64) predicate.PackStats {
	return predicate.PackStats(sql.FieldLTE(FieldAverageRating, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PackStats) predicate.PackStats {
	return predicate.PackStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PackStats) predicate.PackStats {
	return predicate.PackStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PackStats) predicate.PackStats {
	return predicate.PackStats(sql.NotPredicates(p))
}
