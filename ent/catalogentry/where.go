// Code generated by ent, DO NOT EDIT.

package catalogentry

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldID, id))
}

// CatalogOrder applies equality check predicate on the "catalog_order" field. It's identical to CatalogOrderEQ.
func CatalogOrder(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCatalogOrder, v))
}

// QuizpackID applies equality check predicate on the "quizpack_id" field. It's identical to QuizpackIDEQ.
func QuizpackID(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldQuizpackID, v))
}

// CatalogOrderEQ applies the EQ predicate on the "catalog_order" field.
func CatalogOrderEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCatalogOrder, v))
}

// CatalogOrderNEQ applies the NEQ predicate on the "catalog_order" field.
func CatalogOrderNEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldCatalogOrder, v))
}

// CatalogOrderIn applies the In predicate on the "catalog_order" field.
func CatalogOrderIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldCatalogOrder, vs...))
}

// CatalogOrderNotIn applies the NotIn predicate on the "catalog_order" field.
func CatalogOrderNotIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldCatalogOrder, vs...))
}

// CatalogOrderGT applies the GT predicate on the "catalog_order" field.
func CatalogOrderGT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldCatalogOrder, v))
}

// CatalogOrderGTE applies the GTE predicate on the "catalog_order" field.
func CatalogOrderGTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldCatalogOrder, v))
}

// CatalogOrderLT applies the LT predicate on the "catalog_order" field.
func CatalogOrderLT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldCatalogOrder, v))
}

// CatalogOrderLTE applies the LTE predicate on the "catalog_order" field.
func CatalogOrderLTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldCatalogOrder, v))
}

// QuizpackIDEQ applies the EQ predicate on the "quizpack_id" field.
func QuizpackIDEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldQuizpackID, v))
}

// QuizpackIDNEQ applies the NEQ predicate on the "quizpack_id" field.
func QuizpackIDNEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldQuizpackID, v))
}

// QuizpackIDIn applies the In predicate on the "quizpack_id" field.
func QuizpackIDIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldQuizpackID, vs...))
}

// QuizpackIDNotIn applies the NotIn predicate on the "quizpack_id" field.
func QuizpackIDNotIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldQuizpackID, vs...))
}

// QuizpackIDGT applies the GT predicate on the "quizpack_id" field.
func QuizpackIDGT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldQuizpackID, v))
}

// QuizpackIDGTE applies the GTE predicate on the "quizpack_id" field.
func QuizpackIDGTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldQuizpackID, v))
}

// QuizpackIDLT applies the LT predicate on the "quizpack_id" field.
func QuizpackIDLT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldQuizpackID, v))
}

// QuizpackIDLTE applies the LTE predicate on the "quizpack_id" field.
func QuizpackIDLTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldQuizpackID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.NotPredicates(p))
}
