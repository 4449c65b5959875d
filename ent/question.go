// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning quizpack
	QuizpackID int `json:"quizpack_id,omitempty"`
	// 1-based position within the pack
	QuestionOrder int `json:"question_order,omitempty"`
	// multiple, truefalse, or choiceblank
	Type string `json:"type,omitempty"`
	// The question text
	Question string `json:"question,omitempty"`
	// Supporting passage, if any
	Passage string `json:"passage,omitempty"`
	// Hint holds the value of the "hint" field.
	Hint string `json:"hint,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Number of blanks (choiceblank only)
	BlankCount   int `json:"blank_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldID, question.FieldQuizpackID, question.FieldQuestionOrder, question.FieldBlankCount:
			values[i] = new(sql.NullInt64)
		case question.FieldType, question.FieldQuestion, question.FieldPassage, question.FieldHint, question.FieldExplanation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (q *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			q.ID = int(value.Int64)
		case question.FieldQuizpackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizpack_id", values[i])
			} else if value.Valid {
				q.QuizpackID = int(value.Int64)
			}
		case question.FieldQuestionOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_order", values[i])
			} else if value.Valid {
				q.QuestionOrder = int(value.Int64)
			}
		case question.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				q.Type = value.String
			}
		case question.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				q.Question = value.String
			}
		case question.FieldPassage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field passage", values[i])
			} else if value.Valid {
				q.Passage = value.String
			}
		case question.FieldHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint", values[i])
			} else if value.Valid {
				q.Hint = value.String
			}
		case question.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				q.Explanation = value.String
			}
		case question.FieldBlankCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blank_count", values[i])
			} else if value.Valid {
				q.BlankCount = int(value.Int64)
			}
		default:
			q.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (q *Question) Value(name string) (ent.Value, error) {
	return q.selectValues.Get(name)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (q *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(q.config).UpdateOne(q)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (q *Question) Unwrap() *Question {
	_tx, ok := q.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	q.config.driver = _tx.drv
	return q
}

// String implements the fmt.Stringer.
func (q *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", q.ID))
	builder.WriteString("quizpack_id=")
	builder.WriteString(fmt.Sprintf("%v", q.QuizpackID))
	builder.WriteString(", ")
	builder.WriteString("question_order=")
	builder.WriteString(fmt.Sprintf("%v", q.QuestionOrder))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(q.Type)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(q.Question)
	builder.WriteString(", ")
	builder.WriteString("passage=")
	builder.WriteString(q.Passage)
	builder.WriteString(", ")
	builder.WriteString("hint=")
	builder.WriteString(q.Hint)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(q.Explanation)
	builder.WriteString(", ")
	builder.WriteString("blank_count=")
	builder.WriteString(fmt.Sprintf("%v", q.BlankCount))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
