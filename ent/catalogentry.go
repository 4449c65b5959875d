// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
)

// CatalogEntry is the model entity for the CatalogEntry schema.
type CatalogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// 1-based position in the unlock sequence
	CatalogOrder int `json:"catalog_order,omitempty"`
	// QuizpackID holds the value of the "quizpack_id" field.
	QuizpackID   int `json:"quizpack_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CatalogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case catalogentry.FieldID, catalogentry.FieldCatalogOrder, catalogentry.FieldQuizpackID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CatalogEntry fields.
func (ce *CatalogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case catalogentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ce.ID = int(value.Int64)
		case catalogentry.FieldCatalogOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_order", values[i])
			} else if value.Valid {
				ce.CatalogOrder = int(value.Int64)
			}
		case catalogentry.FieldQuizpackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizpack_id", values[i])
			} else if value.Valid {
				ce.QuizpackID = int(value.Int64)
			}
		default:
			ce.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CatalogEntry.
// This includes values selected through modifiers, order, etc.
func (ce *CatalogEntry) Value(name string) (ent.Value, error) {
	return ce.selectValues.Get(name)
}

// Update returns a builder for updating this CatalogEntry.
// Note that you need to call CatalogEntry.Unwrap() before calling this method if this CatalogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (ce *CatalogEntry) Update() *CatalogEntryUpdateOne {
	return NewCatalogEntryClient(ce.config).UpdateOne(ce)
}

// Unwrap unwraps the CatalogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ce *CatalogEntry) Unwrap() *CatalogEntry {
	_tx, ok := ce.config.driver.(*txDriver)
	if !ok {
		panic("ent: CatalogEntry is not a transactional entity")
	}
	ce.config.driver = _tx.drv
	return ce
}

// String implements the fmt.Stringer.
func (ce *CatalogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CatalogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ce.ID))
	builder.WriteString("catalog_order=")
	builder.WriteString(fmt.Sprintf("%v", ce.CatalogOrder))
	builder.WriteString(", ")
	builder.WriteString("quizpack_id=")
	builder.WriteString(fmt.Sprintf("%v", ce.QuizpackID))
	builder.WriteByte(')')
	return builder.String()
}

// CatalogEntries is a parsable slice of CatalogEntry.
type CatalogEntries []*CatalogEntry
