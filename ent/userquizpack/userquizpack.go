// Code generated by ent, DO NOT EDIT.

package userquizpack

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userquizpack type in the database.
	Label = "user_quizpack"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuizpackID holds the string denoting the quizpack_id field in the database.
	FieldQuizpackID = "quizpack_id"
	// FieldCatalogOrder holds the string denoting the catalog_order field in the database.
	FieldCatalogOrder = "catalog_order"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentQuestionOrder holds the string denoting the current_question_order field in the database.
	FieldCurrentQuestionOrder = "current_question_order"
	// FieldSolvedCount holds the string denoting the solved_count field in the database.
	FieldSolvedCount = "solved_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldIncorrectCount holds the string denoting the incorrect_count field in the database.
	FieldIncorrectCount = "incorrect_count"
	// FieldCorrectRate holds the string denoting the correct_rate field in the database.
	FieldCorrectRate = "correct_rate"
	// FieldTotalQuestionCount holds the string denoting the total_question_count field in the database.
	FieldTotalQuestionCount = "total_question_count"
	// FieldSessionNumber holds the string denoting the session_number field in the database.
	FieldSessionNumber = "session_number"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastPlayedAt holds the string denoting the last_played_at field in the database.
	FieldLastPlayedAt = "last_played_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTotalTimeSeconds holds the string denoting the total_time_seconds field in the database.
	FieldTotalTimeSeconds = "total_time_seconds"
	// Table holds the table name of the userquizpack in the database.
	Table = "user_quizpacks"
)

// Columns holds all SQL columns for userquizpack fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuizpackID,
	FieldCatalogOrder,
	FieldStatus,
	FieldCurrentQuestionOrder,
	FieldSolvedCount,
	FieldCorrectCount,
	FieldIncorrectCount,
	FieldCorrectRate,
	FieldTotalQuestionCount,
	FieldSessionNumber,
	FieldAttemptID,
	FieldStartedAt,
	FieldLastPlayedAt,
	FieldCompletedAt,
	FieldTotalTimeSeconds,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCurrentQuestionOrder holds the default value on creation for the "current_question_order" field.
	DefaultCurrentQuestionOrder int
	// DefaultSolvedCount holds the default value on creation for the "solved_count" field.
	DefaultSolvedCount int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultIncorrectCount holds the default value on creation for the "incorrect_count" field.
	DefaultIncorrectCount int
	// DefaultTotalQuestionCount holds the default value on creation for the "total_question_count" field.
	DefaultTotalQuestionCount int
	// DefaultSessionNumber holds the default value on creation for the "session_number" field.
	DefaultSessionNumber int
	// DefaultTotalTimeSeconds holds the default value on creation for the "total_time_seconds" field.
	DefaultTotalTimeSeconds int
)

// OrderOption defines the ordering options for the UserQuizpack queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuizpackID orders the results by the quizpack_id field.
func ByQuizpackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizpackID, opts...).ToFunc()
}

// ByCatalogOrder orders the results by the catalog_order field.
func ByCatalogOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogOrder, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentQuestionOrder orders the results by the current_question_order field.
func ByCurrentQuestionOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentQuestionOrder, opts...).ToFunc()
}

// BySolvedCount orders the results by the solved_count field.
func BySolvedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolvedCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByIncorrectCount orders the results by the incorrect_count field.
func ByIncorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectCount, opts...).ToFunc()
}

// ByCorrectRate orders the results by the correct_rate field.
func ByCorrectRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectRate, opts...).ToFunc()
}

// ByTotalQuestionCount orders the results by the total_question_count field.
func ByTotalQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestionCount, opts...).ToFunc()
}

// BySessionNumber orders the results by the session_number field.
func BySessionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionNumber, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastPlayedAt orders the results by the last_played_at field.
func ByLastPlayedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPlayedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTotalTimeSeconds orders the results by the total_time_seconds field.
func ByTotalTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSeconds, opts...).ToFunc()
}
