// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/quizpack"
)

// Quizpack is the model entity for the Quizpack schema.
type Quizpack struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Topic keywords shown on the pack card
	Keywords string `json:"keywords,omitempty"`
	// Number of active questions in the pack
	QuestionCount int `json:"question_count,omitempty"`
	// Inactive packs are hidden from the catalog
	Active       bool `json:"active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quizpack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizpack.FieldActive:
			values[i] = new(sql.NullBool)
		case quizpack.FieldID, quizpack.FieldQuestionCount:
			values[i] = new(sql.NullInt64)
		case quizpack.FieldKeywords:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quizpack fields.
func (q *Quizpack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizpack.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			q.ID = int(value.Int64)
		case quizpack.FieldKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value.Valid {
				q.Keywords = value.String
			}
		case quizpack.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				q.QuestionCount = int(value.Int64)
			}
		case quizpack.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				q.Active = value.Bool
			}
		default:
			q.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Quizpack.
// This includes values selected through modifiers, order, etc.
func (q *Quizpack) Value(name string) (ent.Value, error) {
	return q.selectValues.Get(name)
}

// Update returns a builder for updating this Quizpack.
// Note that you need to call Quizpack.Unwrap() before calling this method if this Quizpack
// was returned from a transaction, and the transaction was committed or rolled back.
func (q *Quizpack) Update() *QuizpackUpdateOne {
	return NewQuizpackClient(q.config).UpdateOne(q)
}

// Unwrap unwraps the Quizpack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (q *Quizpack) Unwrap() *Quizpack {
	_tx, ok := q.config.driver.(*txDriver)
	if !ok {
		panic("ent: Quizpack is not a transactional entity")
	}
	q.config.driver = _tx.drv
	return q
}

// String implements the fmt.Stringer.
func (q *Quizpack) String() string {
	var builder strings.Builder
	builder.WriteString("Quizpack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", q.ID))
	builder.WriteString("keywords=")
	builder.WriteString(q.Keywords)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", q.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", q.Active))
	builder.WriteByte(')')
	return builder.String()
}

// Quizpacks is a parsable slice of Quizpack.
type Quizpacks []*Quizpack
