// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuizpackID holds the string denoting the quizpack_id field in the database.
	FieldQuizpackID = "quizpack_id"
	// FieldQuestionOrder holds the string denoting the question_order field in the database.
	FieldQuestionOrder = "question_order"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldPassage holds the string denoting the passage field in the database.
	FieldPassage = "passage"
	// FieldHint holds the string denoting the hint field in the database.
	FieldHint = "hint"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldBlankCount holds the string denoting the blank_count field in the database.
	FieldBlankCount = "blank_count"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQuizpackID,
	FieldQuestionOrder,
	FieldType,
	FieldQuestion,
	FieldPassage,
	FieldHint,
	FieldExplanation,
	FieldBlankCount,
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
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	QuestionValidator func(string) error
	// DefaultBlankCount holds the default value on creation for the "blank_count" field.
	DefaultBlankCount int
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuizpackID orders the results by the quizpack_id field.
func ByQuizpackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizpackID, opts...).ToFunc()
}

// ByQuestionOrder orders the results by the question_order field.
func ByQuestionOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionOrder, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByPassage orders the results by the passage field.
func ByPassage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassage, opts...).ToFunc()
}

// ByHint orders the results by the hint field.
func ByHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHint, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByBlankCount orders the results by the blank_count field.
func ByBlankCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlankCount, opts...).ToFunc()
}
