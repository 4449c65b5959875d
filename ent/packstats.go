// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/packstats"
)

// PackStats is the model entity for the PackStats schema.
type PackStats struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// QuizpackID holds the value of the "quizpack_id" field.
	QuizpackID int `json:"quizpack_id,omitempty"`
	// TotalCompletions holds the value of the "total_completions" field.
	TotalCompletions int `json:"total_completions,omitempty"`
	// TotalCorrectCount holds the value of the "total_correct_count" field.
	TotalCorrectCount int `json:"total_correct_count,omitempty"`
	// Sum of pack sizes across completions
	TotalQuestionCount int `json:"total_question_count,omitempty"`
	// AverageCorrectRate holds the value of the "average_correct_rate" field.
	AverageCorrectRate float64 `json:"average_correct_rate,omitempty"`
	// RatingSum holds the value of the "rating_sum" field.
	RatingSum int `json:"rating_sum,omitempty"`
	// RatingCount holds the value of the "rating_count" field.
	RatingCount int `json:"rating_count,omitempty"`
	// AverageRating holds the value of the "average_rating" field.
	AverageRating float64 `json:"average_rating,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PackStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case packstats.FieldAverageCorrectRate, packstats.FieldAverageRating:
			values[i] = new(sql.NullFloat64)
		case packstats.FieldID, packstats.FieldQuizpackID, packstats.FieldTotalCompletions, packstats.FieldTotalCorrectCount, packstats.FieldTotalQuestionCount, packstats.FieldRatingSum, packstats.FieldRatingCount:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PackStats fields.
func (ps *PackStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case packstats.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ps.ID = int(value.Int64)
		case packstats.FieldQuizpackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizpack_id", values[i])
			} else if value.Valid {
				ps.QuizpackID = int(value.Int64)
			}
		case packstats.FieldTotalCompletions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_completions", values[i])
			} else if value.Valid {
				ps.TotalCompletions = int(value.Int64)
			}
		case packstats.FieldTotalCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_correct_count", values[i])
			} else if value.Valid {
				ps.TotalCorrectCount = int(value.Int64)
			}
		case packstats.FieldTotalQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_question_count", values[i])
			} else if value.Valid {
				ps.TotalQuestionCount = int(value.Int64)
			}
		case packstats.FieldAverageCorrectRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_correct_rate", values[i])
			} else if value.Valid {
				ps.AverageCorrectRate = value.Float64
			}
		case packstats.FieldRatingSum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_sum", values[i])
			} else if value.Valid {
				ps.RatingSum = int(value.Int64)
			}
		case packstats.FieldRatingCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_count", values[i])
			} else if value.Valid {
				ps.RatingCount = int(value.Int64)
			}
		case packstats.FieldAverageRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_rating", values[i])
			} else if value.Valid {
				ps.AverageRating = value.Float64
			}
		default:
			ps.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PackStats.
// This includes values selected through modifiers, order, etc.
func (ps *PackStats) Value(name string) (ent.Value, error) {
	return ps.selectValues.Get(name)
}

// Update returns a builder for updating this PackStats.
// Note that you need to call PackStats.Unwrap() before calling this method if this PackStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (ps *PackStats) Update() *PackStatsUpdateOne {
	return NewPackStatsClient(ps.config).UpdateOne(ps)
}

// Unwrap unwraps the PackStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ps *PackStats) Unwrap() *PackStats {
	_tx, ok := ps.config.driver.(*txDriver)
	if !ok {
		panic("ent: PackStats is not a transactional entity")
	}
	ps.config.driver = _tx.drv
	return ps
}

// String implements the fmt.Stringer.
func (ps *PackStats) String() string {
	var builder strings.Builder
	builder.WriteString("PackStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ps.ID))
	builder.WriteString("quizpack_id=")
	builder.WriteString(fmt.Sprintf("%v", ps.QuizpackID))
	builder.WriteString(", ")
	builder.WriteString("total_completions=")
	builder.WriteString(fmt.Sprintf("%v", ps.TotalCompletions))
	builder.WriteString(", ")
	builder.WriteString("total_correct_count=")
	builder.WriteString(fmt.Sprintf("%v", ps.TotalCorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_question_count=")
	builder.WriteString(fmt.Sprintf("%v", ps.TotalQuestionCount))
	builder.WriteString(", ")
	builder.WriteString("average_correct_rate=")
	builder.WriteString(fmt.Sprintf("%v", ps.AverageCorrectRate))
	builder.WriteString(", ")
	builder.WriteString("rating_sum=")
	builder.WriteString(fmt.Sprintf("%v", ps.RatingSum))
	builder.WriteString(", ")
	builder.WriteString("rating_count=")
	builder.WriteString(fmt.Sprintf("%v", ps.RatingCount))
	builder.WriteString(", ")
	builder.WriteString("average_rating=")
	builder.WriteString(fmt.Sprintf("%v", ps.AverageRating))
	builder.WriteByte(')')
	return builder.String()
}

// PackStatsSlice is a parsable slice of PackStats.
type PackStatsSlice []*PackStats
