// Code generated by ent, DO NOT EDIT.

package packstats

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the packstats type in the database.
	Label = "pack_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuizpackID holds the string denoting the quizpack_id field in the database.
	FieldQuizpackID = "quizpack_id"
	// FieldTotalCompletions holds the string denoting the total_completions field in the database.
	FieldTotalCompletions = "total_completions"
	// FieldTotalCorrectCount holds the string denoting the total_correct_count field in the database.
	FieldTotalCorrectCount = "total_correct_count"
	// FieldTotalQuestionCount holds the string denoting the total_question_count field in the database.
	FieldTotalQuestionCount = "total_question_count"
	// FieldAverageCorrectRate holds the string denoting the average_correct_rate field in the database.
	FieldAverageCorrectRate = "average_correct_rate"
	// FieldRatingSum holds the string denoting the rating_sum field in the database.
	FieldRatingSum = "rating_sum"
	// FieldRatingCount holds the string denoting the rating_count field in the database.
	FieldRatingCount = "rating_count"
	// FieldAverageRating holds the string denoting the average_rating field in the database.
	FieldAverageRating = "average_rating"
	// Table holds the table name of the packstats in the database.
	Table = "pack_stats"
)

// Columns holds all SQL columns for packstats fields.
var Columns = []string{
	FieldID,
	FieldQuizpackID,
	FieldTotalCompletions,
	FieldTotalCorrectCount,
	FieldTotalQuestionCount,
	FieldAverageCorrectRate,
	FieldRatingSum,
	FieldRatingCount,
	FieldAverageRating,
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
	// DefaultTotalCompletions holds the default value on creation for the "total_completions" field.
	DefaultTotalCompletions int
	// DefaultTotalCorrectCount holds the default value on creation for the "total_correct_count" field.
	DefaultTotalCorrectCount int
	// DefaultTotalQuestionCount holds the default value on creation for the "total_question_count" field.
	DefaultTotalQuestionCount int
	// DefaultAverageCorrectRate holds the default value on creation for the "average_correct_rate" field.
	DefaultAverageCorrectRate float64
	// DefaultRatingSum holds the default value on creation for the "rating_sum" field.
	DefaultRatingSum int
	// DefaultRatingCount holds the default value on creation for the "rating_count" field.
	DefaultRatingCount int
	// DefaultAverageRating holds the default value on creation for the "average_rating" field.
	DefaultAverageRating float64
)

// OrderOption defines the ordering options for the PackStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuizpackID orders the results by the quizpack_id field.
func ByQuizpackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizpackID, opts...).ToFunc()
}

// ByTotalCompletions orders the results by the total_completions field.
func ByTotalCompletions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCompletions, opts...).ToFunc()
}

// ByTotalCorrectCount orders the results by the total_correct_count field.
func ByTotalCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCorrectCount, opts...).ToFunc()
}

// ByTotalQuestionCount orders the results by the total_question_count field.
func ByTotalQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestionCount, opts...).ToFunc()
}

// ByAverageCorrectRate orders the results by the average_correct_rate field.
func ByAverageCorrectRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageCorrectRate, opts...).ToFunc()
}

// ByRatingSum orders the results by the rating_sum field.
func ByRatingSum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingSum, opts...).ToFunc()
}

// ByRatingCount orders the results by the rating_count field.
func ByRatingCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingCount, opts...).ToFunc()
}

// ByAverageRating orders the results by the average_rating field.
func ByAverageRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageRating, opts...).ToFunc()
}
