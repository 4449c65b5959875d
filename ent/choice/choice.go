// Code generated by ent, DO NOT EDIT.

package choice

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the choice type in the database.
	Label = "choice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldChoiceOrder holds the string denoting the choice_order field in the database.
	FieldChoiceOrder = "choice_order"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldBlankPosition holds the string denoting the blank_position field in the database.
	FieldBlankPosition = "blank_position"
	// Table holds the table name of the choice in the database.
	Table = "choices"
)

// Columns holds all SQL columns for choice fields.
var Columns = []string{
	FieldID,
	FieldQuestionID,
	FieldChoiceOrder,
	FieldText,
	FieldCorrect,
	FieldBlankPosition,
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

var (
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
)

// OrderOption defines the ordering options for the Choice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByChoiceOrder orders the results by the choice_order field.
func ByChoiceOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChoiceOrder, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByBlankPosition orders the results by the blank_position field.
func ByBlankPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlankPosition, opts...).ToFunc()
}
