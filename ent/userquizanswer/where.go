// Code generated by ent, DO NOT EDIT.

package userquizanswer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLTE(FieldID, id))
}

// UserQuizpackID applies equality check predicate on the "user_quizpack_id" field. It's identical to UserQuizpackIDEQ.
func UserQuizpackID(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldUserQuizpackID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldQuestionID, v))
}

// AnswerOrder applies equality check predicate on the "answer_order" field. It's identical to AnswerOrderEQ.
func AnswerOrder(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldAnswerOrder, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldCorrect, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldAnsweredAt, v))
}

// UserQuizpackIDEQ applies the EQ predicate on the "user_quizpack_id" field.
func UserQuizpackIDEQ(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldUserQuizpackID, v))
}

// UserQuizpackIDNEQ applies the NEQ predicate on the "user_quizpack_id" field.
func UserQuizpackIDNEQ(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNEQ(FieldUserQuizpackID, v))
}

// UserQuizpackIDIn applies the In predicate on the "user_quizpack_id" field.
func UserQuizpackIDIn(vs ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldIn(FieldUserQuizpackID, vs...))
}

// UserQuizpackIDNotIn applies the NotIn predicate on the "user_quizpack_id" field.
func UserQuizpackIDNotIn(vs ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNotIn(FieldUserQuizpackID, vs...))
}

// UserQuizpackIDGT applies the GT predicate on the "user_quizpack_id" field.
func UserQuizpackIDGT(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGT(FieldUserQuizpackID, v))
}

// UserQuizpackIDGTE applies the GTE predicate on the "user_quizpack_id" field.
func UserQuizpackIDGTE(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGTE(FieldUserQuizpackID, v))
}

// UserQuizpackIDLT applies the LT predicate on the "user_quizpack_id" field.
func UserQuizpackIDLT(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLT(FieldUserQuizpackID, v))
}

// UserQuizpackIDLTE applies the LTE predicate on the "user_quizpack_id" field.
func UserQuizpackIDLTE(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLTE(FieldUserQuizpackID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLTE(FieldQuestionID, v))
}

// AnswerOrderEQ applies the EQ predicate on the "answer_order" field.
func AnswerOrderEQ(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldAnswerOrder, v))
}

// AnswerOrderNEQ applies the NEQ predicate on the "answer_order" field.
func AnswerOrderNEQ(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNEQ(FieldAnswerOrder, v))
}

// AnswerOrderIn applies the In predicate on the "answer_order" field.
func AnswerOrderIn(vs ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldIn(FieldAnswerOrder, vs...))
}

// AnswerOrderNotIn applies the NotIn predicate on the "answer_order" field.
func AnswerOrderNotIn(vs ...int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNotIn(FieldAnswerOrder, vs...))
}

// AnswerOrderGT applies the GT predicate on the "answer_order" field.
func AnswerOrderGT(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGT(FieldAnswerOrder, v))
}

// AnswerOrderGTE applies the GTE predicate on the "answer_order" field.
func AnswerOrderGTE(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGTE(FieldAnswerOrder, v))
}

// AnswerOrderLT applies the LT predicate on the "answer_order" field.
func AnswerOrderLT(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLT(FieldAnswerOrder, v))
}

// AnswerOrderLTE applies the LTE predicate on the "answer_order" field.
func AnswerOrderLTE(v int) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLTE(FieldAnswerOrder, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNEQ(FieldCorrect, v))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.FieldLTE(FieldAnsweredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserQuizAnswer) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserQuizAnswer) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserQuizAnswer) predicate.UserQuizAnswer {
	return predicate.UserQuizAnswer(sql.NotPredicates(p))
}
