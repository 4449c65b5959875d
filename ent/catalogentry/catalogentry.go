// Code generated by ent, DO NOT EDIT.

package catalogentry

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the catalogentry type in the database.
	Label = "catalog_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCatalogOrder holds the string denoting the catalog_order field in the database.
	FieldCatalogOrder = "catalog_order"
	// FieldQuizpackID holds the string denoting the quizpack_id field in the database.
	FieldQuizpackID = "quizpack_id"
	// Table holds the table name of the catalogentry in the database.
	Table = "catalog_entries"
)

// Columns holds all SQL columns for catalogentry fields.
var Columns = []string{
	FieldID,
	FieldCatalogOrder,
	FieldQuizpackID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the CatalogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCatalogOrder orders the results by the catalog_order field.
func ByCatalogOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogOrder, opts...).ToFunc()
}

// ByQuizpackID orders the results by the quizpack_id field.
func ByQuizpackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizpackID, opts...).ToFunc()
}
