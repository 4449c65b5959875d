// Code generated by ent, DO NOT EDIT.

package choice

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldQuestionID, v))
}

// ChoiceOrder applies equality check predicate on the "choice_order" field. It's identical to ChoiceOrderEQ.
func ChoiceOrder(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldChoiceOrder, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldText, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldCorrect, v))
}

// BlankPosition applies equality check predicate on the "blank_position" field. It's identical to BlankPositionEQ.
func BlankPosition(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldBlankPosition, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldQuestionID, v))
}

// ChoiceOrderEQ applies the EQ predicate on the "choice_order" field.
func ChoiceOrderEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldChoiceOrder, v))
}

// ChoiceOrderNEQ applies the NEQ predicate on the "choice_order" field.
func ChoiceOrderNEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldChoiceOrder, v))
}

// ChoiceOrderIn applies the In predicate on the "choice_order" field.
func ChoiceOrderIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldChoiceOrder, vs...))
}

// ChoiceOrderNotIn applies the NotIn predicate on the "choice_order" field.
func ChoiceOrderNotIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldChoiceOrder, vs...))
}

// ChoiceOrderGT applies the GT predicate on the "choice_order" field.
func ChoiceOrderGT(v int) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldChoiceOrder, v))
}

// ChoiceOrderGTE applies the GTE predicate on the "choice_order" field.
func ChoiceOrderGTE(v int) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldChoiceOrder, v))
}

// ChoiceOrderLT applies the LT predicate on the "choice_order" field.
func ChoiceOrderLT(v int) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldChoiceOrder, v))
}

// ChoiceOrderLTE applies the LTE predicate on the "choice_order" field.
func ChoiceOrderLTE(v int) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldChoiceOrder, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Choice {
	return predicate.Choice(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Choice {
	return predicate.Choice(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Choice {
	return predicate.Choice(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Choice {
	return predicate.Choice(sql.FieldContainsFold(FieldText, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldCorrect, v))
}

// BlankPositionEQ applies the EQ predicate on the "blank_position" field.
func BlankPositionEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldBlankPosition, v))
}

// BlankPositionNEQ applies the NEQ predicate on the "blank_position" field.
func BlankPositionNEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldBlankPosition, v))
}

// BlankPositionIn applies the In predicate on the "blank_position" field.
func BlankPositionIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldBlankPosition, vs...))
}

// BlankPositionNotIn applies the NotIn predicate on the "blank_position" field.
func BlankPositionNotIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldBlankPosition, vs...))
}

// BlankPositionGT applies the GT predicate on the "blank_position" field.
func BlankPositionGT(v int) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldBlankPosition, v))
}

// BlankPositionGTE applies the GTE predicate on the "blank_position" field.
func BlankPositionGTE(v int) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldBlankPosition, v))
}

// BlankPositionLT applies the LT predicate on the "blank_position" field.
func BlankPositionLT(v int) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldBlankPosition, v))
}

// BlankPositionLTE applies the LTE predicate on the "blank_position" field.
func BlankPositionLTE(v int) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldBlankPosition, v))
}

// BlankPositionIsNil applies the IsNil predicate on the "blank_position" field.
func BlankPositionIsNil() predicate.Choice {
	return predicate.Choice(sql.FieldIsNull(FieldBlankPosition))
}

// BlankPositionNotNil applies the NotNil predicate on the "blank_position" field.
func BlankPositionNotNil() predicate.Choice {
	return predicate.Choice(sql.FieldNotNull(FieldBlankPosition))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Choice) predicate.Choice {
	return predicate.Choice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Choice) predicate.Choice {
	return predicate.Choice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Choice) predicate.Choice {
	return predicate.Choice(sql.NotPredicates(p))
}
