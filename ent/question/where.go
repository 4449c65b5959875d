// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// QuizpackID applies equality check predicate on the "quizpack_id" field. It's identical to QuizpackIDEQ.
func QuizpackID(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuizpackID, v))
}

// QuestionOrder applies equality check predicate on the "question_order" field. It's identical to QuestionOrderEQ.
func QuestionOrder(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionOrder, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldType, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestion, v))
}

// Passage applies equality check predicate on the "passage" field. It's identical to PassageEQ.
func Passage(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPassage, v))
}

// Hint applies equality check predicate on the "hint" field. It's identical to HintEQ.
func Hint(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldHint, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// BlankCount applies equality check predicate on the "blank_count" field. It's identical to BlankCountEQ.
func BlankCount(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBlankCount, v))
}

// QuizpackIDEQ applies the EQ predicate on the "quizpack_id" field.
func QuizpackIDEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuizpackID, v))
}

// QuizpackIDNEQ applies the NEQ predicate on the "quizpack_id" field.
func QuizpackIDNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuizpackID, v))
}

// QuizpackIDIn applies the In predicate on the "quizpack_id" field.
func QuizpackIDIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuizpackID, vs...))
}

// QuizpackIDNotIn applies the NotIn predicate on the "quizpack_id" field.
func QuizpackIDNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuizpackID, vs...))
}

// QuizpackIDGT applies the GT predicate on the "quizpack_id" field.
func QuizpackIDGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuizpackID, v))
}

// QuizpackIDGTE applies the GTE predicate on the "quizpack_id" field.
func QuizpackIDGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuizpackID, v))
}

// QuizpackIDLT applies the LT predicate on the "quizpack_id" field.
func QuizpackIDLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuizpackID, v))
}

// QuizpackIDLTE applies the LTE predicate on the "quizpack_id" field.
func QuizpackIDLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuizpackID, v))
}

// QuestionOrderEQ applies the EQ predicate on the "question_order" field.
func QuestionOrderEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionOrder, v))
}

// QuestionOrderNEQ applies the NEQ predicate on the "question_order" field.
func QuestionOrderNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionOrder, v))
}

// QuestionOrderIn applies the In predicate on the "question_order" field.
func QuestionOrderIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionOrder, vs...))
}

// QuestionOrderNotIn applies the NotIn predicate on the "question_order" field.
func QuestionOrderNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionOrder, vs...))
}

// QuestionOrderGT applies the GT predicate on the "question_order" field.
func QuestionOrderGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionOrder, v))
}

// QuestionOrderGTE applies the GTE predicate on the "question_order" field.
func QuestionOrderGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionOrder, v))
}

// QuestionOrderLT applies the LT predicate on the "question_order" field.
func QuestionOrderLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionOrder, v))
}

// QuestionOrderLTE applies the LTE predicate on the "question_order" field.
func QuestionOrderLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionOrder, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldType, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestion, v))
}

// PassageEQ applies the EQ predicate on the "passage" field.
func PassageEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPassage, v))
}

// PassageNEQ applies the NEQ predicate on the "passage" field.
func PassageNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPassage, v))
}

// PassageIn applies the In predicate on the "passage" field.
func PassageIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPassage, vs...))
}

// PassageNotIn applies the NotIn predicate on the "passage" field.
func PassageNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPassage, vs...))
}

// PassageGT applies the GT predicate on the "passage" field.
func PassageGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPassage, v))
}

// PassageGTE applies the GTE predicate on the "passage" field.
func PassageGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPassage, v))
}

// PassageLT applies the LT predicate on the "passage" field.
func PassageLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPassage, v))
}

// PassageLTE applies the LTE predicate on the "passage" field.
func PassageLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPassage, v))
}

// PassageContains applies the Contains predicate on the "passage" field.
func PassageContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPassage, v))
}

// PassageHasPrefix applies the HasPrefix predicate on the "passage" field.
func PassageHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPassage, v))
}

// PassageHasSuffix applies the HasSuffix predicate on the "passage" field.
func PassageHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPassage, v))
}

// PassageIsNil applies the IsNil predicate on the "passage" field.
func PassageIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPassage))
}

// PassageNotNil applies the NotNil predicate on the "passage" field.
func PassageNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPassage))
}

// PassageEqualFold applies the EqualFold predicate on the "passage" field.
func PassageEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPassage, v))
}

// PassageContainsFold applies the ContainsFold predicate on the "passage" field.
func PassageContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPassage, v))
}

// HintEQ applies the EQ predicate on the "hint" field.
func HintEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldHint, v))
}

// HintNEQ applies the NEQ predicate on the "hint" field.
func HintNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldHint, v))
}

// HintIn applies the In predicate on the "hint" field.
func HintIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldHint, vs...))
}

// HintNotIn applies the NotIn predicate on the "hint" field.
func HintNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldHint, vs...))
}

// HintGT applies the GT predicate on the "hint" field.
func HintGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldHint, v))
}

// HintGTE applies the GTE predicate on the "hint" field.
func HintGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldHint, v))
}

// HintLT applies the LT predicate on the "hint" field.
func HintLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldHint, v))
}

// HintLTE applies the LTE predicate on the "hint" field.
func HintLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldHint, v))
}

// HintContains applies the Contains predicate on the "hint" field.
func HintContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldHint, v))
}

// HintHasPrefix applies the HasPrefix predicate on the "hint" field.
func HintHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldHint, v))
}

// HintHasSuffix applies the HasSuffix predicate on the "hint" field.
func HintHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldHint, v))
}

// HintIsNil applies the IsNil predicate on the "hint" field.
func HintIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldHint))
}

// HintNotNil applies the NotNil predicate on the "hint" field.
func HintNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldHint))
}

// HintEqualFold applies the EqualFold predicate on the "hint" field.
func HintEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldHint, v))
}

// HintContainsFold applies the ContainsFold predicate on the "hint" field.
func HintContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldHint, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExplanation, v))
}

// BlankCountEQ applies the EQ predicate on the "blank_count" field.
func BlankCountEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBlankCount, v))
}

// BlankCountNEQ applies the NEQ predicate on the "blank_count" field.
func BlankCountNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldBlankCount, v))
}

// BlankCountIn applies the In predicate on the "blank_count" field.
func BlankCountIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldBlankCount, vs...))
}

// BlankCountNotIn applies the NotIn predicate on the "blank_count" field.
func BlankCountNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldBlankCount, vs...))
}

// BlankCountGT applies the GT predicate on the "blank_count" field.
func BlankCountGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldBlankCount, v))
}

// BlankCountGTE applies the GTE predicate on the "blank_count" field.
func BlankCountGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldBlankCount, v))
}

// BlankCountLT applies the LT predicate on the "blank_count" field.
func BlankCountLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldBlankCount, v))
}

// BlankCountLTE applies the LTE predicate on the "blank_count" field.
func BlankCountLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldBlankCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
