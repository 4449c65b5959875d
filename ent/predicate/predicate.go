// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CatalogEntry is the predicate function for catalogentry builders.
type CatalogEntry func(*sql.Selector)

// Choice is the predicate function for choice builders.
type Choice func(*sql.Selector)

// PackStats is the predicate function for packstats builders.
type PackStats func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Quizpack is the predicate function for quizpack builders.
type Quizpack func(*sql.Selector)

// UserQuizAnswer is the predicate function for userquizanswer builders.
type UserQuizAnswer func(*sql.Selector)

// UserQuizpack is the predicate function for userquizpack builders.
type UserQuizpack func(*sql.Selector)
