// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// UserQuizpack is the model entity for the UserQuizpack schema.
type UserQuizpack struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque user identifier from the auth provider
	UserID string `json:"user_id,omitempty"`
	// QuizpackID holds the value of the "quizpack_id" field.
	QuizpackID int `json:"quizpack_id,omitempty"`
	// Pack position at the time this row was created
	CatalogOrder int `json:"catalog_order,omitempty"`
	// closed, opened, in_progress, or completed
	Status string `json:"status,omitempty"`
	// 1-based cursor of the next unanswered question; 0 = not started
	CurrentQuestionOrder int `json:"current_question_order,omitempty"`
	// SolvedCount holds the value of the "solved_count" field.
	SolvedCount int `json:"solved_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// correct_count/solved_count*100; unset while solved_count is 0
	CorrectRate *float64 `json:"correct_rate,omitempty"`
	// Pack size snapshot taken at session start
	TotalQuestionCount int `json:"total_question_count,omitempty"`
	// Attempt counter; bumps on first start, completion, and reset
	SessionNumber int `json:"session_number,omitempty"`
	// UUID identifying the current in_progress phase
	AttemptID string `json:"attempt_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// LastPlayedAt holds the value of the "last_played_at" field.
	LastPlayedAt *time.Time `json:"last_played_at,omitempty"`
	// First-completion marker; survives resets
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Wall-clock seconds of the completing session
	TotalTimeSeconds int `json:"total_time_seconds,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserQuizpack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userquizpack.FieldCorrectRate:
			values[i] = new(sql.NullFloat64)
		case userquizpack.FieldID, userquizpack.FieldQuizpackID, userquizpack.FieldCatalogOrder, userquizpack.FieldCurrentQuestionOrder, userquizpack.FieldSolvedCount, userquizpack.FieldCorrectCount, userquizpack.FieldIncorrectCount, userquizpack.FieldTotalQuestionCount, userquizpack.FieldSessionNumber, userquizpack.FieldTotalTimeSeconds:
			values[i] = new(sql.NullInt64)
		case userquizpack.FieldUserID, userquizpack.FieldStatus, userquizpack.FieldAttemptID:
			values[i] = new(sql.NullString)
		case userquizpack.FieldStartedAt, userquizpack.FieldLastPlayedAt, userquizpack.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserQuizpack fields.
func (uq *UserQuizpack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userquizpack.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			uq.ID = int(value.Int64)
		case userquizpack.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				uq.UserID = value.String
			}
		case userquizpack.FieldQuizpackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizpack_id", values[i])
			} else if value.Valid {
				uq.QuizpackID = int(value.Int64)
			}
		case userquizpack.FieldCatalogOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_order", values[i])
			} else if value.Valid {
				uq.CatalogOrder = int(value.Int64)
			}
		case userquizpack.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				uq.Status = value.String
			}
		case userquizpack.FieldCurrentQuestionOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_question_order", values[i])
			} else if value.Valid {
				uq.CurrentQuestionOrder = int(value.Int64)
			}
		case userquizpack.FieldSolvedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field solved_count", values[i])
			} else if value.Valid {
				uq.SolvedCount = int(value.Int64)
			}
		case userquizpack.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				uq.CorrectCount = int(value.Int64)
			}
		case userquizpack.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				uq.IncorrectCount = int(value.Int64)
			}
		case userquizpack.FieldCorrectRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_rate", values[i])
			} else if value.Valid {
				uq.CorrectRate = new(float64)
				*uq.CorrectRate = value.Float64
			}
		case userquizpack.FieldTotalQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_question_count", values[i])
			} else if value.Valid {
				uq.TotalQuestionCount = int(value.Int64)
			}
		case userquizpack.FieldSessionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_number", values[i])
			} else if value.Valid {
				uq.SessionNumber = int(value.Int64)
			}
		case userquizpack.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				uq.AttemptID = value.String
			}
		case userquizpack.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				uq.StartedAt = new(time.Time)
				*uq.StartedAt = value.Time
			}
		case userquizpack.FieldLastPlayedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_played_at", values[i])
			} else if value.Valid {
				uq.LastPlayedAt = new(time.Time)
				*uq.LastPlayedAt = value.Time
			}
		case userquizpack.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				uq.CompletedAt = new(time.Time)
				*uq.CompletedAt = value.Time
			}
		case userquizpack.FieldTotalTimeSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_seconds", values[i])
			} else if value.Valid {
				uq.TotalTimeSeconds = int(value.Int64)
			}
		default:
			uq.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserQuizpack.
// This includes values selected through modifiers, order, etc.
func (uq *UserQuizpack) Value(name string) (ent.Value, error) {
	return uq.selectValues.Get(name)
}

// Update returns a builder for updating this UserQuizpack.
// Note that you need to call UserQuizpack.Unwrap() before calling this method if this UserQuizpack
// was returned from a transaction, and the transaction was committed or rolled back.
func (uq *UserQuizpack) Update() *UserQuizpackUpdateOne {
	return NewUserQuizpackClient(uq.config).UpdateOne(uq)
}

// Unwrap unwraps the UserQuizpack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (uq *UserQuizpack) Unwrap() *UserQuizpack {
	_tx, ok := uq.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserQuizpack is not a transactional entity")
	}
	uq.config.driver = _tx.drv
	return uq
}

// String implements the fmt.Stringer.
func (uq *UserQuizpack) String() string {
	var builder strings.Builder
	builder.WriteString("UserQuizpack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", uq.ID))
	builder.WriteString("user_id=")
	builder.WriteString(uq.UserID)
	builder.WriteString(", ")
	builder.WriteString("quizpack_id=")
	builder.WriteString(fmt.Sprintf("%v", uq.QuizpackID))
	builder.WriteString(", ")
	builder.WriteString("catalog_order=")
	builder.WriteString(fmt.Sprintf("%v", uq.CatalogOrder))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(uq.Status)
	builder.WriteString(", ")
	builder.WriteString("current_question_order=")
	builder.WriteString(fmt.Sprintf("%v", uq.CurrentQuestionOrder))
	builder.WriteString(", ")
	builder.WriteString("solved_count=")
	builder.WriteString(fmt.Sprintf("%v", uq.SolvedCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", uq.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", uq.IncorrectCount))
	builder.WriteString(", ")
	if v := uq.CorrectRate; v != nil {
		builder.WriteString("correct_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_question_count=")
	builder.WriteString(fmt.Sprintf("%v", uq.TotalQuestionCount))
	builder.WriteString(", ")
	builder.WriteString("session_number=")
	builder.WriteString(fmt.Sprintf("%v", uq.SessionNumber))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(uq.AttemptID)
	builder.WriteString(", ")
	if v := uq.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := uq.LastPlayedAt; v != nil {
		builder.WriteString("last_played_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := uq.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_time_seconds=")
	builder.WriteString(fmt.Sprintf("%v", uq.TotalTimeSeconds))
	builder.WriteByte(')')
	return builder.String()
}

// UserQuizpacks is a parsable slice of UserQuizpack.
type UserQuizpacks []*UserQuizpack
