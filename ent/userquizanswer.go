// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/schema"
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
)

// UserQuizAnswer is the model entity for the UserQuizAnswer schema.
type UserQuizAnswer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning session row
	UserQuizpackID int `json:"user_quizpack_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID int `json:"question_id,omitempty"`
	// Position at which the question was answered in the session
	AnswerOrder int `json:"answer_order,omitempty"`
	// Selected holds the value of the "selected" field.
	Selected schema.SelectedAnswer `json:"selected,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt   time.Time `json:"answered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserQuizAnswer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userquizanswer.FieldSelected:
			values[i] = new([]byte)
		case userquizanswer.FieldCorrect:
			values[i] = new(sql.NullBool)
		case userquizanswer.FieldID, userquizanswer.FieldUserQuizpackID, userquizanswer.FieldQuestionID, userquizanswer.FieldAnswerOrder:
			values[i] = new(sql.NullInt64)
		case userquizanswer.FieldAnsweredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserQuizAnswer fields.
func (uqa *UserQuizAnswer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userquizanswer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			uqa.ID = int(value.Int64)
		case userquizanswer.FieldUserQuizpackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_quizpack_id", values[i])
			} else if value.Valid {
				uqa.UserQuizpackID = int(value.Int64)
			}
		case userquizanswer.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				uqa.QuestionID = int(value.Int64)
			}
		case userquizanswer.FieldAnswerOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_order", values[i])
			} else if value.Valid {
				uqa.AnswerOrder = int(value.Int64)
			}
		case userquizanswer.FieldSelected:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field selected", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &uqa.Selected); err != nil {
					return fmt.Errorf("unmarshal field selected: %w", err)
				}
			}
		case userquizanswer.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				uqa.Correct = value.Bool
			}
		case userquizanswer.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				uqa.AnsweredAt = value.Time
			}
		default:
			uqa.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserQuizAnswer.
// This includes values selected through modifiers, order, etc.
func (uqa *UserQuizAnswer) Value(name string) (ent.Value, error) {
	return uqa.selectValues.Get(name)
}

// Update returns a builder for updating this UserQuizAnswer.
// Note that you need to call UserQuizAnswer.Unwrap() before calling this method if this UserQuizAnswer
// was returned from a transaction, and the transaction was committed or rolled back.
func (uqa *UserQuizAnswer) Update() *UserQuizAnswerUpdateOne {
	return NewUserQuizAnswerClient(uqa.config).UpdateOne(uqa)
}

// Unwrap unwraps the UserQuizAnswer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (uqa *UserQuizAnswer) Unwrap() *UserQuizAnswer {
	_tx, ok := uqa.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserQuizAnswer is not a transactional entity")
	}
	uqa.config.driver = _tx.drv
	return uqa
}

// String implements the fmt.Stringer.
func (uqa *UserQuizAnswer) String() string {
	var builder strings.Builder
	builder.WriteString("UserQuizAnswer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", uqa.ID))
	builder.WriteString("user_quizpack_id=")
	builder.WriteString(fmt.Sprintf("%v", uqa.UserQuizpackID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", uqa.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("answer_order=")
	builder.WriteString(fmt.Sprintf("%v", uqa.AnswerOrder))
	builder.WriteString(", ")
	builder.WriteString("selected=")
	builder.WriteString(fmt.Sprintf("%v", uqa.Selected))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", uqa.Correct))
	builder.WriteString(", ")
	builder.WriteString("answered_at=")
	builder.WriteString(uqa.AnsweredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserQuizAnswers is a parsable slice of UserQuizAnswer.
type UserQuizAnswers []*UserQuizAnswer
