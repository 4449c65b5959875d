// Code generated by ent, DO NOT EDIT.

package userquizanswer

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userquizanswer type in the database.
	Label = "user_quiz_answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserQuizpackID holds the string denoting the user_quizpack_id field in the database.
	FieldUserQuizpackID = "user_quizpack_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldAnswerOrder holds the string denoting the answer_order field in the database.
	FieldAnswerOrder = "answer_order"
	// FieldSelected holds the string denoting the selected field in the database.
	FieldSelected = "selected"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// Table holds the table name of the userquizanswer in the database.
	Table = "user_quiz_answers"
)

// Columns holds all SQL columns for userquizanswer fields.
var Columns = []string{
	FieldID,
	FieldUserQuizpackID,
	FieldQuestionID,
	FieldAnswerOrder,
	FieldSelected,
	FieldCorrect,
	FieldAnsweredAt,
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

// OrderOption defines the ordering options for the UserQuizAnswer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserQuizpackID orders the results by the user_quizpack_id field.
func ByUserQuizpackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserQuizpackID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByAnswerOrder orders the results by the answer_order field.
func ByAnswerOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerOrder, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
}
