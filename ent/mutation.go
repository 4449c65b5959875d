// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
	"github.com/hanjihoon73/lawquiz/ent/choice"
	"github.com/hanjihoon73/lawquiz/ent/packstats"
	"github.com/hanjihoon73/lawquiz/ent/predicate"
	"github.com/hanjihoon73/lawquiz/ent/question"
	"github.com/hanjihoon73/lawquiz/ent/quizpack"
	"github.com/hanjihoon73/lawquiz/ent/schema"
	"github.com/hanjihoon73/lawquiz/ent/userquizanswer"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCatalogEntry   = "CatalogEntry"
	TypeChoice         = "Choice"
	TypePackStats      = "PackStats"
	TypeQuestion       = "Question"
	TypeQuizpack       = "Quizpack"
	TypeUserQuizAnswer = "UserQuizAnswer"
	TypeUserQuizpack   = "UserQuizpack"
)

// CatalogEntryMutation represents an operation that mutates the CatalogEntry nodes in the graph.
type CatalogEntryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	catalog_order    *int
	addcatalog_order *int
	quizpack_id      *int
	addquizpack_id   *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CatalogEntry, error)
	predicates       []predicate.CatalogEntry
}

var _ ent.Mutation = (*CatalogEntryMutation)(nil)

// catalogentryOption allows management of the mutation configuration using functional options.
type catalogentryOption func(*CatalogEntryMutation)

// newCatalogEntryMutation creates new mutation for the CatalogEntry entity.
func newCatalogEntryMutation(c config, op Op, opts ...catalogentryOption) *CatalogEntryMutation {
	m := &CatalogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCatalogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCatalogEntryID sets the ID field of the mutation.
func withCatalogEntryID(id int) catalogentryOption {
	return func(m *CatalogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CatalogEntry
		)
		m.oldValue = func(ctx context.Context) (*CatalogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CatalogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCatalogEntry sets the old CatalogEntry of the mutation.
func withCatalogEntry(node *CatalogEntry) catalogentryOption {
	return func(m *CatalogEntryMutation) {
		m.oldValue = func(context.Context) (*CatalogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CatalogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CatalogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CatalogEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CatalogEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CatalogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCatalogOrder sets the "catalog_order" field.
func (m *CatalogEntryMutation) SetCatalogOrder(i int) {
	m.catalog_order = &i
	m.addcatalog_order = nil
}

// CatalogOrder returns the value of the "catalog_order" field in the mutation.
func (m *CatalogEntryMutation) CatalogOrder() (r int, exists bool) {
	v := m.catalog_order
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogOrder returns the old "catalog_order" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldCatalogOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogOrder: %w", err)
	}
	return oldValue.CatalogOrder, nil
}

// AddCatalogOrder adds i to the "catalog_order" field.
func (m *CatalogEntryMutation) AddCatalogOrder(i int) {
	if m.addcatalog_order != nil {
		*m.addcatalog_order += i
	} else {
		m.addcatalog_order = &i
	}
}

// AddedCatalogOrder returns the value that was added to the "catalog_order" field in this mutation.
func (m *CatalogEntryMutation) AddedCatalogOrder() (r int, exists bool) {
	v := m.addcatalog_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetCatalogOrder resets all changes to the "catalog_order" field.
func (m *CatalogEntryMutation) ResetCatalogOrder() {
	m.catalog_order = nil
	m.addcatalog_order = nil
}

// SetQuizpackID sets the "quizpack_id" field.
func (m *CatalogEntryMutation) SetQuizpackID(i int) {
	m.quizpack_id = &i
	m.addquizpack_id = nil
}

// QuizpackID returns the value of the "quizpack_id" field in the mutation.
func (m *CatalogEntryMutation) QuizpackID() (r int, exists bool) {
	v := m.quizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizpackID returns the old "quizpack_id" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldQuizpackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizpackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizpackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizpackID: %w", err)
	}
	return oldValue.QuizpackID, nil
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (m *CatalogEntryMutation) AddQuizpackID(i int) {
	if m.addquizpack_id != nil {
		*m.addquizpack_id += i
	} else {
		m.addquizpack_id = &i
	}
}

// AddedQuizpackID returns the value that was added to the "quizpack_id" field in this mutation.
func (m *CatalogEntryMutation) AddedQuizpackID() (r int, exists bool) {
	v := m.addquizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizpackID resets all changes to the "quizpack_id" field.
func (m *CatalogEntryMutation) ResetQuizpackID() {
	m.quizpack_id = nil
	m.addquizpack_id = nil
}

// Where appends a list predicates to the CatalogEntryMutation builder.
func (m *CatalogEntryMutation) Where(ps ...predicate.CatalogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CatalogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CatalogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CatalogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CatalogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CatalogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CatalogEntry).
func (m *CatalogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CatalogEntryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.catalog_order != nil {
		fields = append(fields, catalogentry.FieldCatalogOrder)
	}
	if m.quizpack_id != nil {
		fields = append(fields, catalogentry.FieldQuizpackID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CatalogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case catalogentry.FieldCatalogOrder:
		return m.CatalogOrder()
	case catalogentry.FieldQuizpackID:
		return m.QuizpackID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CatalogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case catalogentry.FieldCatalogOrder:
		return m.OldCatalogOrder(ctx)
	case catalogentry.FieldQuizpackID:
		return m.OldQuizpackID(ctx)
	}
	return nil, fmt.Errorf("unknown CatalogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case catalogentry.FieldCatalogOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogOrder(v)
		return nil
	case catalogentry.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizpackID(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CatalogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addcatalog_order != nil {
		fields = append(fields, catalogentry.FieldCatalogOrder)
	}
	if m.addquizpack_id != nil {
		fields = append(fields, catalogentry.FieldQuizpackID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CatalogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case catalogentry.FieldCatalogOrder:
		return m.AddedCatalogOrder()
	case catalogentry.FieldQuizpackID:
		return m.AddedQuizpackID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case catalogentry.FieldCatalogOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCatalogOrder(v)
		return nil
	case catalogentry.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizpackID(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CatalogEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CatalogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CatalogEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CatalogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CatalogEntryMutation) ResetField(name string) error {
	switch name {
	case catalogentry.FieldCatalogOrder:
		m.ResetCatalogOrder()
		return nil
	case catalogentry.FieldQuizpackID:
		m.ResetQuizpackID()
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CatalogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CatalogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CatalogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CatalogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CatalogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CatalogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CatalogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CatalogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CatalogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CatalogEntry edge %s", name)
}

// ChoiceMutation represents an operation that mutates the Choice nodes in the graph.
type ChoiceMutation struct {
	config
	op                Op
	typ               string
	id                *int
	question_id       *int
	addquestion_id    *int
	choice_order      *int
	addchoice_order   *int
	text              *string
	correct           *bool
	blank_position    *int
	addblank_position *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Choice, error)
	predicates        []predicate.Choice
}

var _ ent.Mutation = (*ChoiceMutation)(nil)

// choiceOption allows management of the mutation configuration using functional options.
type choiceOption func(*ChoiceMutation)

// newChoiceMutation creates new mutation for the Choice entity.
func newChoiceMutation(c config, op Op, opts ...choiceOption) *ChoiceMutation {
	m := &ChoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeChoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChoiceID sets the ID field of the mutation.
func withChoiceID(id int) choiceOption {
	return func(m *ChoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Choice
		)
		m.oldValue = func(ctx context.Context) (*Choice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Choice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChoice sets the old Choice of the mutation.
func withChoice(node *Choice) choiceOption {
	return func(m *ChoiceMutation) {
		m.oldValue = func(context.Context) (*Choice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChoiceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChoiceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Choice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *ChoiceMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *ChoiceMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Choice entity.
// If the Choice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *ChoiceMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *ChoiceMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *ChoiceMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetChoiceOrder sets the "choice_order" field.
func (m *ChoiceMutation) SetChoiceOrder(i int) {
	m.choice_order = &i
	m.addchoice_order = nil
}

// ChoiceOrder returns the value of the "choice_order" field in the mutation.
func (m *ChoiceMutation) ChoiceOrder() (r int, exists bool) {
	v := m.choice_order
	if v == nil {
		return
	}
	return *v, true
}

// OldChoiceOrder returns the old "choice_order" field's value of the Choice entity.
// If the Choice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceMutation) OldChoiceOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoiceOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoiceOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoiceOrder: %w", err)
	}
	return oldValue.ChoiceOrder, nil
}

// AddChoiceOrder adds i to the "choice_order" field.
func (m *ChoiceMutation) AddChoiceOrder(i int) {
	if m.addchoice_order != nil {
		*m.addchoice_order += i
	} else {
		m.addchoice_order = &i
	}
}

// AddedChoiceOrder returns the value that was added to the "choice_order" field in this mutation.
func (m *ChoiceMutation) AddedChoiceOrder() (r int, exists bool) {
	v := m.addchoice_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetChoiceOrder resets all changes to the "choice_order" field.
func (m *ChoiceMutation) ResetChoiceOrder() {
	m.choice_order = nil
	m.addchoice_order = nil
}

// SetText sets the "text" field.
func (m *ChoiceMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ChoiceMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Choice entity.
// If the Choice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ChoiceMutation) ResetText() {
	m.text = nil
}

// SetCorrect sets the "correct" field.
func (m *ChoiceMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ChoiceMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Choice entity.
// If the Choice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ChoiceMutation) ResetCorrect() {
	m.correct = nil
}

// SetBlankPosition sets the "blank_position" field.
func (m *ChoiceMutation) SetBlankPosition(i int) {
	m.blank_position = &i
	m.addblank_position = nil
}

// BlankPosition returns the value of the "blank_position" field in the mutation.
func (m *ChoiceMutation) BlankPosition() (r int, exists bool) {
	v := m.blank_position
	if v == nil {
		return
	}
	return *v, true
}

// OldBlankPosition returns the old "blank_position" field's value of the Choice entity.
// If the Choice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceMutation) OldBlankPosition(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlankPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlankPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlankPosition: %w", err)
	}
	return oldValue.BlankPosition, nil
}

// AddBlankPosition adds i to the "blank_position" field.
func (m *ChoiceMutation) AddBlankPosition(i int) {
	if m.addblank_position != nil {
		*m.addblank_position += i
	} else {
		m.addblank_position = &i
	}
}

// AddedBlankPosition returns the value that was added to the "blank_position" field in this mutation.
func (m *ChoiceMutation) AddedBlankPosition() (r int, exists bool) {
	v := m.addblank_position
	if v == nil {
		return
	}
	return *v, true
}

// ClearBlankPosition clears the value of the "blank_position" field.
func (m *ChoiceMutation) ClearBlankPosition() {
	m.blank_position = nil
	m.addblank_position = nil
	m.clearedFields[choice.FieldBlankPosition] = struct{}{}
}

// BlankPositionCleared returns if the "blank_position" field was cleared in this mutation.
func (m *ChoiceMutation) BlankPositionCleared() bool {
	_, ok := m.clearedFields[choice.FieldBlankPosition]
	return ok
}

// ResetBlankPosition resets all changes to the "blank_position" field.
func (m *ChoiceMutation) ResetBlankPosition() {
	m.blank_position = nil
	m.addblank_position = nil
	delete(m.clearedFields, choice.FieldBlankPosition)
}

// Where appends a list predicates to the ChoiceMutation builder.
func (m *ChoiceMutation) Where(ps ...predicate.Choice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Choice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Choice).
func (m *ChoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChoiceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.question_id != nil {
		fields = append(fields, choice.FieldQuestionID)
	}
	if m.choice_order != nil {
		fields = append(fields, choice.FieldChoiceOrder)
	}
	if m.text != nil {
		fields = append(fields, choice.FieldText)
	}
	if m.correct != nil {
		fields = append(fields, choice.FieldCorrect)
	}
	if m.blank_position != nil {
		fields = append(fields, choice.FieldBlankPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case choice.FieldQuestionID:
		return m.QuestionID()
	case choice.FieldChoiceOrder:
		return m.ChoiceOrder()
	case choice.FieldText:
		return m.Text()
	case choice.FieldCorrect:
		return m.Correct()
	case choice.FieldBlankPosition:
		return m.BlankPosition()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case choice.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case choice.FieldChoiceOrder:
		return m.OldChoiceOrder(ctx)
	case choice.FieldText:
		return m.OldText(ctx)
	case choice.FieldCorrect:
		return m.OldCorrect(ctx)
	case choice.FieldBlankPosition:
		return m.OldBlankPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Choice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case choice.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case choice.FieldChoiceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoiceOrder(v)
		return nil
	case choice.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case choice.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case choice.FieldBlankPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlankPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Choice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChoiceMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_id != nil {
		fields = append(fields, choice.FieldQuestionID)
	}
	if m.addchoice_order != nil {
		fields = append(fields, choice.FieldChoiceOrder)
	}
	if m.addblank_position != nil {
		fields = append(fields, choice.FieldBlankPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case choice.FieldQuestionID:
		return m.AddedQuestionID()
	case choice.FieldChoiceOrder:
		return m.AddedChoiceOrder()
	case choice.FieldBlankPosition:
		return m.AddedBlankPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case choice.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	case choice.FieldChoiceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChoiceOrder(v)
		return nil
	case choice.FieldBlankPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlankPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Choice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(choice.FieldBlankPosition) {
		fields = append(fields, choice.FieldBlankPosition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChoiceMutation) ClearField(name string) error {
	switch name {
	case choice.FieldBlankPosition:
		m.ClearBlankPosition()
		return nil
	}
	return fmt.Errorf("unknown Choice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChoiceMutation) ResetField(name string) error {
	switch name {
	case choice.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case choice.FieldChoiceOrder:
		m.ResetChoiceOrder()
		return nil
	case choice.FieldText:
		m.ResetText()
		return nil
	case choice.FieldCorrect:
		m.ResetCorrect()
		return nil
	case choice.FieldBlankPosition:
		m.ResetBlankPosition()
		return nil
	}
	return fmt.Errorf("unknown Choice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChoiceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChoiceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChoiceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Choice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChoiceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Choice edge %s", name)
}

// PackStatsMutation represents an operation that mutates the PackStats nodes in the graph.
type PackStatsMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	quizpack_id             *int
	addquizpack_id          *int
	total_completions       *int
	addtotal_completions    *int
	total_correct_count     *int
	addtotal_correct_count  *int
	total_question_count    *int
	addtotal_question_count *int
	average_correct_rate    *float64
	addaverage_correct_rate *float64
	rating_sum              *int
	addrating_sum           *int
	rating_count            *int
	addrating_count         *int
	average_rating          *float64
	addaverage_rating       *float64
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*PackStats, error)
	predicates              []predicate.PackStats
}

var _ ent.Mutation = (*PackStatsMutation)(nil)

// packstatsOption allows management of the mutation configuration using functional options.
type packstatsOption func(*PackStatsMutation)

// newPackStatsMutation creates new mutation for the PackStats entity.
func newPackStatsMutation(c config, op Op, opts ...packstatsOption) *PackStatsMutation {
	m := &PackStatsMutation{
		config:        c,
		op:            op,
		typ:           TypePackStats,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPackStatsID sets the ID field of the mutation.
func withPackStatsID(id int) packstatsOption {
	return func(m *PackStatsMutation) {
		var (
			err   error
			once  sync.Once
			value *PackStats
		)
		m.oldValue = func(ctx context.Context) (*PackStats, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PackStats.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPackStats sets the old PackStats of the mutation.
func withPackStats(node *PackStats) packstatsOption {
	return func(m *PackStatsMutation) {
		m.oldValue = func(context.Context) (*PackStats, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PackStatsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PackStatsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PackStatsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PackStatsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PackStats.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuizpackID sets the "quizpack_id" field.
func (m *PackStatsMutation) SetQuizpackID(i int) {
	m.quizpack_id = &i
	m.addquizpack_id = nil
}

// QuizpackID returns the value of the "quizpack_id" field in the mutation.
func (m *PackStatsMutation) QuizpackID() (r int, exists bool) {
	v := m.quizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizpackID returns the old "quizpack_id" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldQuizpackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizpackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizpackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizpackID: %w", err)
	}
	return oldValue.QuizpackID, nil
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (m *PackStatsMutation) AddQuizpackID(i int) {
	if m.addquizpack_id != nil {
		*m.addquizpack_id += i
	} else {
		m.addquizpack_id = &i
	}
}

// AddedQuizpackID returns the value that was added to the "quizpack_id" field in this mutation.
func (m *PackStatsMutation) AddedQuizpackID() (r int, exists bool) {
	v := m.addquizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizpackID resets all changes to the "quizpack_id" field.
func (m *PackStatsMutation) ResetQuizpackID() {
	m.quizpack_id = nil
	m.addquizpack_id = nil
}

// SetTotalCompletions sets the "total_completions" field.
func (m *PackStatsMutation) SetTotalCompletions(i int) {
	m.total_completions = &i
	m.addtotal_completions = nil
}

// TotalCompletions returns the value of the "total_completions" field in the mutation.
func (m *PackStatsMutation) TotalCompletions() (r int, exists bool) {
	v := m.total_completions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCompletions returns the old "total_completions" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldTotalCompletions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCompletions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCompletions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCompletions: %w", err)
	}
	return oldValue.TotalCompletions, nil
}

// AddTotalCompletions adds i to the "total_completions" field.
func (m *PackStatsMutation) AddTotalCompletions(i int) {
	if m.addtotal_completions != nil {
		*m.addtotal_completions += i
	} else {
		m.addtotal_completions = &i
	}
}

// AddedTotalCompletions returns the value that was added to the "total_completions" field in this mutation.
func (m *PackStatsMutation) AddedTotalCompletions() (r int, exists bool) {
	v := m.addtotal_completions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCompletions resets all changes to the "total_completions" field.
func (m *PackStatsMutation) ResetTotalCompletions() {
	m.total_completions = nil
	m.addtotal_completions = nil
}

// SetTotalCorrectCount sets the "total_correct_count" field.
func (m *PackStatsMutation) SetTotalCorrectCount(i int) {
	m.total_correct_count = &i
	m.addtotal_correct_count = nil
}

// TotalCorrectCount returns the value of the "total_correct_count" field in the mutation.
func (m *PackStatsMutation) TotalCorrectCount() (r int, exists bool) {
	v := m.total_correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCorrectCount returns the old "total_correct_count" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldTotalCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCorrectCount: %w", err)
	}
	return oldValue.TotalCorrectCount, nil
}

// AddTotalCorrectCount adds i to the "total_correct_count" field.
func (m *PackStatsMutation) AddTotalCorrectCount(i int) {
	if m.addtotal_correct_count != nil {
		*m.addtotal_correct_count += i
	} else {
		m.addtotal_correct_count = &i
	}
}

// AddedTotalCorrectCount returns the value that was added to the "total_correct_count" field in this mutation.
func (m *PackStatsMutation) AddedTotalCorrectCount() (r int, exists bool) {
	v := m.addtotal_correct_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCorrectCount resets all changes to the "total_correct_count" field.
func (m *PackStatsMutation) ResetTotalCorrectCount() {
	m.total_correct_count = nil
	m.addtotal_correct_count = nil
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (m *PackStatsMutation) SetTotalQuestionCount(i int) {
	m.total_question_count = &i
	m.addtotal_question_count = nil
}

// TotalQuestionCount returns the value of the "total_question_count" field in the mutation.
func (m *PackStatsMutation) TotalQuestionCount() (r int, exists bool) {
	v := m.total_question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestionCount returns the old "total_question_count" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldTotalQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestionCount: %w", err)
	}
	return oldValue.TotalQuestionCount, nil
}

// AddTotalQuestionCount adds i to the "total_question_count" field.
func (m *PackStatsMutation) AddTotalQuestionCount(i int) {
	if m.addtotal_question_count != nil {
		*m.addtotal_question_count += i
	} else {
		m.addtotal_question_count = &i
	}
}

// AddedTotalQuestionCount returns the value that was added to the "total_question_count" field in this mutation.
func (m *PackStatsMutation) AddedTotalQuestionCount() (r int, exists bool) {
	v := m.addtotal_question_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestionCount resets all changes to the "total_question_count" field.
func (m *PackStatsMutation) ResetTotalQuestionCount() {
	m.total_question_count = nil
	m.addtotal_question_count = nil
}

// SetAverageCorrectRate sets the "average_correct_rate" field.
func (m *PackStatsMutation) SetAverageCorrectRate(f float64) {
	m.average_correct_rate = &f
	m.addaverage_correct_rate = nil
}

// AverageCorrectRate returns the value of the "average_correct_rate" field in the mutation.
func (m *PackStatsMutation) AverageCorrectRate() (r float64, exists bool) {
	v := m.average_correct_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageCorrectRate returns the old "average_correct_rate" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldAverageCorrectRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageCorrectRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageCorrectRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageCorrectRate: %w", err)
	}
	return oldValue.AverageCorrectRate, nil
}

// AddAverageCorrectRate adds f to the "average_correct_rate" field.
func (m *PackStatsMutation) AddAverageCorrectRate(f float64) {
	if m.addaverage_correct_rate != nil {
		*m.addaverage_correct_rate += f
	} else {
		m.addaverage_correct_rate = &f
	}
}

// AddedAverageCorrectRate returns the value that was added to the "average_correct_rate" field in this mutation.
func (m *PackStatsMutation) AddedAverageCorrectRate() (r float64, exists bool) {
	v := m.addaverage_correct_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageCorrectRate resets all changes to the "average_correct_rate" field.
func (m *PackStatsMutation) ResetAverageCorrectRate() {
	m.average_correct_rate = nil
	m.addaverage_correct_rate = nil
}

// SetRatingSum sets the "rating_sum" field.
func (m *PackStatsMutation) SetRatingSum(i int) {
	m.rating_sum = &i
	m.addrating_sum = nil
}

// RatingSum returns the value of the "rating_sum" field in the mutation.
func (m *PackStatsMutation) RatingSum() (r int, exists bool) {
	v := m.rating_sum
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingSum returns the old "rating_sum" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldRatingSum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingSum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingSum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingSum: %w", err)
	}
	return oldValue.RatingSum, nil
}

// AddRatingSum adds i to the "rating_sum" field.
func (m *PackStatsMutation) AddRatingSum(i int) {
	if m.addrating_sum != nil {
		*m.addrating_sum += i
	} else {
		m.addrating_sum = &i
	}
}

// AddedRatingSum returns the value that was added to the "rating_sum" field in this mutation.
func (m *PackStatsMutation) AddedRatingSum() (r int, exists bool) {
	v := m.addrating_sum
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatingSum resets all changes to the "rating_sum" field.
func (m *PackStatsMutation) ResetRatingSum() {
	m.rating_sum = nil
	m.addrating_sum = nil
}

// SetRatingCount sets the "rating_count" field.
func (m *PackStatsMutation) SetRatingCount(i int) {
	m.rating_count = &i
	m.addrating_count = nil
}

// RatingCount returns the value of the "rating_count" field in the mutation.
func (m *PackStatsMutation) RatingCount() (r int, exists bool) {
	v := m.rating_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingCount returns the old "rating_count" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldRatingCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingCount: %w", err)
	}
	return oldValue.RatingCount, nil
}

// AddRatingCount adds i to the "rating_count" field.
func (m *PackStatsMutation) AddRatingCount(i int) {
	if m.addrating_count != nil {
		*m.addrating_count += i
	} else {
		m.addrating_count = &i
	}
}

// AddedRatingCount returns the value that was added to the "rating_count" field in this mutation.
func (m *PackStatsMutation) AddedRatingCount() (r int, exists bool) {
	v := m.addrating_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatingCount resets all changes to the "rating_count" field.
func (m *PackStatsMutation) ResetRatingCount() {
	m.rating_count = nil
	m.addrating_count = nil
}

// SetAverageRating sets the "average_rating" field.
func (m *PackStatsMutation) SetAverageRating(f float64) {
	m.average_rating = &f
	m.addaverage_rating = nil
}

// AverageRating returns the value of the "average_rating" field in the mutation.
func (m *PackStatsMutation) AverageRating() (r float64, exists bool) {
	v := m.average_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageRating returns the old "average_rating" field's value of the PackStats entity.
// If the PackStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PackStatsMutation) OldAverageRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageRating: %w", err)
	}
	return oldValue.AverageRating, nil
}

// AddAverageRating adds f to the "average_rating" field.
func (m *PackStatsMutation) AddAverageRating(f float64) {
	if m.addaverage_rating != nil {
		*m.addaverage_rating += f
	} else {
		m.addaverage_rating = &f
	}
}

// AddedAverageRating returns the value that was added to the "average_rating" field in this mutation.
func (m *PackStatsMutation) AddedAverageRating() (r float64, exists bool) {
	v := m.addaverage_rating
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageRating resets all changes to the "average_rating" field.
func (m *PackStatsMutation) ResetAverageRating() {
	m.average_rating = nil
	m.addaverage_rating = nil
}

// Where appends a list predicates to the PackStatsMutation builder.
func (m *PackStatsMutation) Where(ps ...predicate.PackStats) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PackStatsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PackStatsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PackStats, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PackStatsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PackStatsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PackStats).
func (m *PackStatsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PackStatsMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.quizpack_id != nil {
		fields = append(fields, packstats.FieldQuizpackID)
	}
	if m.total_completions != nil {
		fields = append(fields, packstats.FieldTotalCompletions)
	}
	if m.total_correct_count != nil {
		fields = append(fields, packstats.FieldTotalCorrectCount)
	}
	if m.total_question_count != nil {
		fields = append(fields, packstats.FieldTotalQuestionCount)
	}
	if m.average_correct_rate != nil {
		fields = append(fields, packstats.FieldAverageCorrectRate)
	}
	if m.rating_sum != nil {
		fields = append(fields, packstats.FieldRatingSum)
	}
	if m.rating_count != nil {
		fields = append(fields, packstats.FieldRatingCount)
	}
	if m.average_rating != nil {
		fields = append(fields, packstats.FieldAverageRating)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PackStatsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case packstats.FieldQuizpackID:
		return m.QuizpackID()
	case packstats.FieldTotalCompletions:
		return m.TotalCompletions()
	case packstats.FieldTotalCorrectCount:
		return m.TotalCorrectCount()
	case packstats.FieldTotalQuestionCount:
		return m.TotalQuestionCount()
	case packstats.FieldAverageCorrectRate:
		return m.AverageCorrectRate()
	case packstats.FieldRatingSum:
		return m.RatingSum()
	case packstats.FieldRatingCount:
		return m.RatingCount()
	case packstats.FieldAverageRating:
		return m.AverageRating()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PackStatsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case packstats.FieldQuizpackID:
		return m.OldQuizpackID(ctx)
	case packstats.FieldTotalCompletions:
		return m.OldTotalCompletions(ctx)
	case packstats.FieldTotalCorrectCount:
		return m.OldTotalCorrectCount(ctx)
	case packstats.FieldTotalQuestionCount:
		return m.OldTotalQuestionCount(ctx)
	case packstats.FieldAverageCorrectRate:
		return m.OldAverageCorrectRate(ctx)
	case packstats.FieldRatingSum:
		return m.OldRatingSum(ctx)
	case packstats.FieldRatingCount:
		return m.OldRatingCount(ctx)
	case packstats.FieldAverageRating:
		return m.OldAverageRating(ctx)
	}
	return nil, fmt.Errorf("unknown PackStats field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PackStatsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case packstats.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizpackID(v)
		return nil
	case packstats.FieldTotalCompletions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCompletions(v)
		return nil
	case packstats.FieldTotalCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCorrectCount(v)
		return nil
	case packstats.FieldTotalQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestionCount(v)
		return nil
	case packstats.FieldAverageCorrectRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageCorrectRate(v)
		return nil
	case packstats.FieldRatingSum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingSum(v)
		return nil
	case packstats.FieldRatingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingCount(v)
		return nil
	case packstats.FieldAverageRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageRating(v)
		return nil
	}
	return fmt.Errorf("unknown PackStats field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PackStatsMutation) AddedFields() []string {
	var fields []string
	if m.addquizpack_id != nil {
		fields = append(fields, packstats.FieldQuizpackID)
	}
	if m.addtotal_completions != nil {
		fields = append(fields, packstats.FieldTotalCompletions)
	}
	if m.addtotal_correct_count != nil {
		fields = append(fields, packstats.FieldTotalCorrectCount)
	}
	if m.addtotal_question_count != nil {
		fields = append(fields, packstats.FieldTotalQuestionCount)
	}
	if m.addaverage_correct_rate != nil {
		fields = append(fields, packstats.FieldAverageCorrectRate)
	}
	if m.addrating_sum != nil {
		fields = append(fields, packstats.FieldRatingSum)
	}
	if m.addrating_count != nil {
		fields = append(fields, packstats.FieldRatingCount)
	}
	if m.addaverage_rating != nil {
		fields = append(fields, packstats.FieldAverageRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PackStatsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case packstats.FieldQuizpackID:
		return m.AddedQuizpackID()
	case packstats.FieldTotalCompletions:
		return m.AddedTotalCompletions()
	case packstats.FieldTotalCorrectCount:
		return m.AddedTotalCorrectCount()
	case packstats.FieldTotalQuestionCount:
		return m.AddedTotalQuestionCount()
	case packstats.FieldAverageCorrectRate:
		return m.AddedAverageCorrectRate()
	case packstats.FieldRatingSum:
		return m.AddedRatingSum()
	case packstats.FieldRatingCount:
		return m.AddedRatingCount()
	case packstats.FieldAverageRating:
		return m.AddedAverageRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PackStatsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case packstats.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizpackID(v)
		return nil
	case packstats.FieldTotalCompletions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCompletions(v)
		return nil
	case packstats.FieldTotalCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCorrectCount(v)
		return nil
	case packstats.FieldTotalQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestionCount(v)
		return nil
	case packstats.FieldAverageCorrectRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageCorrectRate(v)
		return nil
	case packstats.FieldRatingSum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatingSum(v)
		return nil
	case packstats.FieldRatingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatingCount(v)
		return nil
	case packstats.FieldAverageRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageRating(v)
		return nil
	}
	return fmt.Errorf("unknown PackStats numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PackStatsMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PackStatsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PackStatsMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PackStats nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PackStatsMutation) ResetField(name string) error {
	switch name {
	case packstats.FieldQuizpackID:
		m.ResetQuizpackID()
		return nil
	case packstats.FieldTotalCompletions:
		m.ResetTotalCompletions()
		return nil
	case packstats.FieldTotalCorrectCount:
		m.ResetTotalCorrectCount()
		return nil
	case packstats.FieldTotalQuestionCount:
		m.ResetTotalQuestionCount()
		return nil
	case packstats.FieldAverageCorrectRate:
		m.ResetAverageCorrectRate()
		return nil
	case packstats.FieldRatingSum:
		m.ResetRatingSum()
		return nil
	case packstats.FieldRatingCount:
		m.ResetRatingCount()
		return nil
	case packstats.FieldAverageRating:
		m.ResetAverageRating()
		return nil
	}
	return fmt.Errorf("unknown PackStats field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PackStatsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PackStatsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PackStatsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PackStatsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PackStatsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PackStatsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PackStatsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PackStats unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PackStatsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PackStats edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                Op
	typ               string
	id                *int
	quizpack_id       *int
	addquizpack_id    *int
	question_order    *int
	addquestion_order *int
	_type             *string
	question          *string
	passage           *string
	hint              *string
	explanation       *string
	blank_count       *int
	addblank_count    *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Question, error)
	predicates        []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuizpackID sets the "quizpack_id" field.
func (m *QuestionMutation) SetQuizpackID(i int) {
	m.quizpack_id = &i
	m.addquizpack_id = nil
}

// QuizpackID returns the value of the "quizpack_id" field in the mutation.
func (m *QuestionMutation) QuizpackID() (r int, exists bool) {
	v := m.quizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizpackID returns the old "quizpack_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuizpackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizpackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizpackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizpackID: %w", err)
	}
	return oldValue.QuizpackID, nil
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (m *QuestionMutation) AddQuizpackID(i int) {
	if m.addquizpack_id != nil {
		*m.addquizpack_id += i
	} else {
		m.addquizpack_id = &i
	}
}

// AddedQuizpackID returns the value that was added to the "quizpack_id" field in this mutation.
func (m *QuestionMutation) AddedQuizpackID() (r int, exists bool) {
	v := m.addquizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizpackID resets all changes to the "quizpack_id" field.
func (m *QuestionMutation) ResetQuizpackID() {
	m.quizpack_id = nil
	m.addquizpack_id = nil
}

// SetQuestionOrder sets the "question_order" field.
func (m *QuestionMutation) SetQuestionOrder(i int) {
	m.question_order = &i
	m.addquestion_order = nil
}

// QuestionOrder returns the value of the "question_order" field in the mutation.
func (m *QuestionMutation) QuestionOrder() (r int, exists bool) {
	v := m.question_order
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionOrder returns the old "question_order" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionOrder: %w", err)
	}
	return oldValue.QuestionOrder, nil
}

// AddQuestionOrder adds i to the "question_order" field.
func (m *QuestionMutation) AddQuestionOrder(i int) {
	if m.addquestion_order != nil {
		*m.addquestion_order += i
	} else {
		m.addquestion_order = &i
	}
}

// AddedQuestionOrder returns the value that was added to the "question_order" field in this mutation.
func (m *QuestionMutation) AddedQuestionOrder() (r int, exists bool) {
	v := m.addquestion_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionOrder resets all changes to the "question_order" field.
func (m *QuestionMutation) ResetQuestionOrder() {
	m.question_order = nil
	m.addquestion_order = nil
}

// SetType sets the "type" field.
func (m *QuestionMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *QuestionMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *QuestionMutation) ResetType() {
	m._type = nil
}

// SetQuestion sets the "question" field.
func (m *QuestionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *QuestionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *QuestionMutation) ResetQuestion() {
	m.question = nil
}

// SetPassage sets the "passage" field.
func (m *QuestionMutation) SetPassage(s string) {
	m.passage = &s
}

// Passage returns the value of the "passage" field in the mutation.
func (m *QuestionMutation) Passage() (r string, exists bool) {
	v := m.passage
	if v == nil {
		return
	}
	return *v, true
}

// OldPassage returns the old "passage" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPassage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassage: %w", err)
	}
	return oldValue.Passage, nil
}

// ClearPassage clears the value of the "passage" field.
func (m *QuestionMutation) ClearPassage() {
	m.passage = nil
	m.clearedFields[question.FieldPassage] = struct{}{}
}

// PassageCleared returns if the "passage" field was cleared in this mutation.
func (m *QuestionMutation) PassageCleared() bool {
	_, ok := m.clearedFields[question.FieldPassage]
	return ok
}

// ResetPassage resets all changes to the "passage" field.
func (m *QuestionMutation) ResetPassage() {
	m.passage = nil
	delete(m.clearedFields, question.FieldPassage)
}

// SetHint sets the "hint" field.
func (m *QuestionMutation) SetHint(s string) {
	m.hint = &s
}

// Hint returns the value of the "hint" field in the mutation.
func (m *QuestionMutation) Hint() (r string, exists bool) {
	v := m.hint
	if v == nil {
		return
	}
	return *v, true
}

// OldHint returns the old "hint" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldHint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHint: %w", err)
	}
	return oldValue.Hint, nil
}

// ClearHint clears the value of the "hint" field.
func (m *QuestionMutation) ClearHint() {
	m.hint = nil
	m.clearedFields[question.FieldHint] = struct{}{}
}

// HintCleared returns if the "hint" field was cleared in this mutation.
func (m *QuestionMutation) HintCleared() bool {
	_, ok := m.clearedFields[question.FieldHint]
	return ok
}

// ResetHint resets all changes to the "hint" field.
func (m *QuestionMutation) ResetHint() {
	m.hint = nil
	delete(m.clearedFields, question.FieldHint)
}

// SetExplanation sets the "explanation" field.
func (m *QuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *QuestionMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[question.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *QuestionMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[question.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuestionMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, question.FieldExplanation)
}

// SetBlankCount sets the "blank_count" field.
func (m *QuestionMutation) SetBlankCount(i int) {
	m.blank_count = &i
	m.addblank_count = nil
}

// BlankCount returns the value of the "blank_count" field in the mutation.
func (m *QuestionMutation) BlankCount() (r int, exists bool) {
	v := m.blank_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBlankCount returns the old "blank_count" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldBlankCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlankCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlankCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlankCount: %w", err)
	}
	return oldValue.BlankCount, nil
}

// AddBlankCount adds i to the "blank_count" field.
func (m *QuestionMutation) AddBlankCount(i int) {
	if m.addblank_count != nil {
		*m.addblank_count += i
	} else {
		m.addblank_count = &i
	}
}

// AddedBlankCount returns the value that was added to the "blank_count" field in this mutation.
func (m *QuestionMutation) AddedBlankCount() (r int, exists bool) {
	v := m.addblank_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlankCount resets all changes to the "blank_count" field.
func (m *QuestionMutation) ResetBlankCount() {
	m.blank_count = nil
	m.addblank_count = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.quizpack_id != nil {
		fields = append(fields, question.FieldQuizpackID)
	}
	if m.question_order != nil {
		fields = append(fields, question.FieldQuestionOrder)
	}
	if m._type != nil {
		fields = append(fields, question.FieldType)
	}
	if m.question != nil {
		fields = append(fields, question.FieldQuestion)
	}
	if m.passage != nil {
		fields = append(fields, question.FieldPassage)
	}
	if m.hint != nil {
		fields = append(fields, question.FieldHint)
	}
	if m.explanation != nil {
		fields = append(fields, question.FieldExplanation)
	}
	if m.blank_count != nil {
		fields = append(fields, question.FieldBlankCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldQuizpackID:
		return m.QuizpackID()
	case question.FieldQuestionOrder:
		return m.QuestionOrder()
	case question.FieldType:
		return m.GetType()
	case question.FieldQuestion:
		return m.Question()
	case question.FieldPassage:
		return m.Passage()
	case question.FieldHint:
		return m.Hint()
	case question.FieldExplanation:
		return m.Explanation()
	case question.FieldBlankCount:
		return m.BlankCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldQuizpackID:
		return m.OldQuizpackID(ctx)
	case question.FieldQuestionOrder:
		return m.OldQuestionOrder(ctx)
	case question.FieldType:
		return m.OldType(ctx)
	case question.FieldQuestion:
		return m.OldQuestion(ctx)
	case question.FieldPassage:
		return m.OldPassage(ctx)
	case question.FieldHint:
		return m.OldHint(ctx)
	case question.FieldExplanation:
		return m.OldExplanation(ctx)
	case question.FieldBlankCount:
		return m.OldBlankCount(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizpackID(v)
		return nil
	case question.FieldQuestionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionOrder(v)
		return nil
	case question.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case question.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case question.FieldPassage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassage(v)
		return nil
	case question.FieldHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHint(v)
		return nil
	case question.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case question.FieldBlankCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlankCount(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addquizpack_id != nil {
		fields = append(fields, question.FieldQuizpackID)
	}
	if m.addquestion_order != nil {
		fields = append(fields, question.FieldQuestionOrder)
	}
	if m.addblank_count != nil {
		fields = append(fields, question.FieldBlankCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldQuizpackID:
		return m.AddedQuizpackID()
	case question.FieldQuestionOrder:
		return m.AddedQuestionOrder()
	case question.FieldBlankCount:
		return m.AddedBlankCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizpackID(v)
		return nil
	case question.FieldQuestionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionOrder(v)
		return nil
	case question.FieldBlankCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlankCount(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldPassage) {
		fields = append(fields, question.FieldPassage)
	}
	if m.FieldCleared(question.FieldHint) {
		fields = append(fields, question.FieldHint)
	}
	if m.FieldCleared(question.FieldExplanation) {
		fields = append(fields, question.FieldExplanation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldPassage:
		m.ClearPassage()
		return nil
	case question.FieldHint:
		m.ClearHint()
		return nil
	case question.FieldExplanation:
		m.ClearExplanation()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldQuizpackID:
		m.ResetQuizpackID()
		return nil
	case question.FieldQuestionOrder:
		m.ResetQuestionOrder()
		return nil
	case question.FieldType:
		m.ResetType()
		return nil
	case question.FieldQuestion:
		m.ResetQuestion()
		return nil
	case question.FieldPassage:
		m.ResetPassage()
		return nil
	case question.FieldHint:
		m.ResetHint()
		return nil
	case question.FieldExplanation:
		m.ResetExplanation()
		return nil
	case question.FieldBlankCount:
		m.ResetBlankCount()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuizpackMutation represents an operation that mutates the Quizpack nodes in the graph.
type QuizpackMutation struct {
	config
	op                Op
	typ               string
	id                *int
	keywords          *string
	question_count    *int
	addquestion_count *int
	active            *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Quizpack, error)
	predicates        []predicate.Quizpack
}

var _ ent.Mutation = (*QuizpackMutation)(nil)

// quizpackOption allows management of the mutation configuration using functional options.
type quizpackOption func(*QuizpackMutation)

// newQuizpackMutation creates new mutation for the Quizpack entity.
func newQuizpackMutation(c config, op Op, opts ...quizpackOption) *QuizpackMutation {
	m := &QuizpackMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizpack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizpackID sets the ID field of the mutation.
func withQuizpackID(id int) quizpackOption {
	return func(m *QuizpackMutation) {
		var (
			err   error
			once  sync.Once
			value *Quizpack
		)
		m.oldValue = func(ctx context.Context) (*Quizpack, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Quizpack.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizpack sets the old Quizpack of the mutation.
func withQuizpack(node *Quizpack) quizpackOption {
	return func(m *QuizpackMutation) {
		m.oldValue = func(context.Context) (*Quizpack, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizpackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizpackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizpackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizpackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Quizpack.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKeywords sets the "keywords" field.
func (m *QuizpackMutation) SetKeywords(s string) {
	m.keywords = &s
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *QuizpackMutation) Keywords() (r string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the Quizpack entity.
// If the Quizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizpackMutation) OldKeywords(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *QuizpackMutation) ResetKeywords() {
	m.keywords = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *QuizpackMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *QuizpackMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the Quizpack entity.
// If the Quizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizpackMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *QuizpackMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *QuizpackMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *QuizpackMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetActive sets the "active" field.
func (m *QuizpackMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *QuizpackMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Quizpack entity.
// If the Quizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizpackMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *QuizpackMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the QuizpackMutation builder.
func (m *QuizpackMutation) Where(ps ...predicate.Quizpack) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizpackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizpackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Quizpack, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizpackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizpackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Quizpack).
func (m *QuizpackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizpackMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.keywords != nil {
		fields = append(fields, quizpack.FieldKeywords)
	}
	if m.question_count != nil {
		fields = append(fields, quizpack.FieldQuestionCount)
	}
	if m.active != nil {
		fields = append(fields, quizpack.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizpackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizpack.FieldKeywords:
		return m.Keywords()
	case quizpack.FieldQuestionCount:
		return m.QuestionCount()
	case quizpack.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizpackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizpack.FieldKeywords:
		return m.OldKeywords(ctx)
	case quizpack.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case quizpack.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Quizpack field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizpackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizpack.FieldKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case quizpack.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case quizpack.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Quizpack field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizpackMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_count != nil {
		fields = append(fields, quizpack.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizpackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizpack.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizpackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizpack.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Quizpack numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizpackMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizpackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizpackMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Quizpack nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizpackMutation) ResetField(name string) error {
	switch name {
	case quizpack.FieldKeywords:
		m.ResetKeywords()
		return nil
	case quizpack.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case quizpack.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Quizpack field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizpackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizpackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizpackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizpackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizpackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizpackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizpackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Quizpack unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizpackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Quizpack edge %s", name)
}

// UserQuizAnswerMutation represents an operation that mutates the UserQuizAnswer nodes in the graph.
type UserQuizAnswerMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_quizpack_id    *int
	adduser_quizpack_id *int
	question_id         *int
	addquestion_id      *int
	answer_order        *int
	addanswer_order     *int
	selected            *schema.SelectedAnswer
	correct             *bool
	answered_at         *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*UserQuizAnswer, error)
	predicates          []predicate.UserQuizAnswer
}

var _ ent.Mutation = (*UserQuizAnswerMutation)(nil)

// userquizanswerOption allows management of the mutation configuration using functional options.
type userquizanswerOption func(*UserQuizAnswerMutation)

// newUserQuizAnswerMutation creates new mutation for the UserQuizAnswer entity.
func newUserQuizAnswerMutation(c config, op Op, opts ...userquizanswerOption) *UserQuizAnswerMutation {
	m := &UserQuizAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeUserQuizAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserQuizAnswerID sets the ID field of the mutation.
func withUserQuizAnswerID(id int) userquizanswerOption {
	return func(m *UserQuizAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *UserQuizAnswer
		)
		m.oldValue = func(ctx context.Context) (*UserQuizAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserQuizAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserQuizAnswer sets the old UserQuizAnswer of the mutation.
func withUserQuizAnswer(node *UserQuizAnswer) userquizanswerOption {
	return func(m *UserQuizAnswerMutation) {
		m.oldValue = func(context.Context) (*UserQuizAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserQuizAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserQuizAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserQuizAnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserQuizAnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserQuizAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserQuizpackID sets the "user_quizpack_id" field.
func (m *UserQuizAnswerMutation) SetUserQuizpackID(i int) {
	m.user_quizpack_id = &i
	m.adduser_quizpack_id = nil
}

// UserQuizpackID returns the value of the "user_quizpack_id" field in the mutation.
func (m *UserQuizAnswerMutation) UserQuizpackID() (r int, exists bool) {
	v := m.user_quizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserQuizpackID returns the old "user_quizpack_id" field's value of the UserQuizAnswer entity.
// If the UserQuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizAnswerMutation) OldUserQuizpackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserQuizpackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserQuizpackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserQuizpackID: %w", err)
	}
	return oldValue.UserQuizpackID, nil
}

// AddUserQuizpackID adds i to the "user_quizpack_id" field.
func (m *UserQuizAnswerMutation) AddUserQuizpackID(i int) {
	if m.adduser_quizpack_id != nil {
		*m.adduser_quizpack_id += i
	} else {
		m.adduser_quizpack_id = &i
	}
}

// AddedUserQuizpackID returns the value that was added to the "user_quizpack_id" field in this mutation.
func (m *UserQuizAnswerMutation) AddedUserQuizpackID() (r int, exists bool) {
	v := m.adduser_quizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserQuizpackID resets all changes to the "user_quizpack_id" field.
func (m *UserQuizAnswerMutation) ResetUserQuizpackID() {
	m.user_quizpack_id = nil
	m.adduser_quizpack_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *UserQuizAnswerMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *UserQuizAnswerMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the UserQuizAnswer entity.
// If the UserQuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizAnswerMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *UserQuizAnswerMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *UserQuizAnswerMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *UserQuizAnswerMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetAnswerOrder sets the "answer_order" field.
func (m *UserQuizAnswerMutation) SetAnswerOrder(i int) {
	m.answer_order = &i
	m.addanswer_order = nil
}

// AnswerOrder returns the value of the "answer_order" field in the mutation.
func (m *UserQuizAnswerMutation) AnswerOrder() (r int, exists bool) {
	v := m.answer_order
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerOrder returns the old "answer_order" field's value of the UserQuizAnswer entity.
// If the UserQuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizAnswerMutation) OldAnswerOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerOrder: %w", err)
	}
	return oldValue.AnswerOrder, nil
}

// AddAnswerOrder adds i to the "answer_order" field.
func (m *UserQuizAnswerMutation) AddAnswerOrder(i int) {
	if m.addanswer_order != nil {
		*m.addanswer_order += i
	} else {
		m.addanswer_order = &i
	}
}

// AddedAnswerOrder returns the value that was added to the "answer_order" field in this mutation.
func (m *UserQuizAnswerMutation) AddedAnswerOrder() (r int, exists bool) {
	v := m.addanswer_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswerOrder resets all changes to the "answer_order" field.
func (m *UserQuizAnswerMutation) ResetAnswerOrder() {
	m.answer_order = nil
	m.addanswer_order = nil
}

// SetSelected sets the "selected" field.
func (m *UserQuizAnswerMutation) SetSelected(sa schema.SelectedAnswer) {
	m.selected = &sa
}

// Selected returns the value of the "selected" field in the mutation.
func (m *UserQuizAnswerMutation) Selected() (r schema.SelectedAnswer, exists bool) {
	v := m.selected
	if v == nil {
		return
	}
	return *v, true
}

// OldSelected returns the old "selected" field's value of the UserQuizAnswer entity.
// If the UserQuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizAnswerMutation) OldSelected(ctx context.Context) (v schema.SelectedAnswer, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelected: %w", err)
	}
	return oldValue.Selected, nil
}

// ResetSelected resets all changes to the "selected" field.
func (m *UserQuizAnswerMutation) ResetSelected() {
	m.selected = nil
}

// SetCorrect sets the "correct" field.
func (m *UserQuizAnswerMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *UserQuizAnswerMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the UserQuizAnswer entity.
// If the UserQuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizAnswerMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *UserQuizAnswerMutation) ResetCorrect() {
	m.correct = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *UserQuizAnswerMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *UserQuizAnswerMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the UserQuizAnswer entity.
// If the UserQuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizAnswerMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *UserQuizAnswerMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// Where appends a list predicates to the UserQuizAnswerMutation builder.
func (m *UserQuizAnswerMutation) Where(ps ...predicate.UserQuizAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserQuizAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserQuizAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserQuizAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserQuizAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserQuizAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserQuizAnswer).
func (m *UserQuizAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserQuizAnswerMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_quizpack_id != nil {
		fields = append(fields, userquizanswer.FieldUserQuizpackID)
	}
	if m.question_id != nil {
		fields = append(fields, userquizanswer.FieldQuestionID)
	}
	if m.answer_order != nil {
		fields = append(fields, userquizanswer.FieldAnswerOrder)
	}
	if m.selected != nil {
		fields = append(fields, userquizanswer.FieldSelected)
	}
	if m.correct != nil {
		fields = append(fields, userquizanswer.FieldCorrect)
	}
	if m.answered_at != nil {
		fields = append(fields, userquizanswer.FieldAnsweredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserQuizAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userquizanswer.FieldUserQuizpackID:
		return m.UserQuizpackID()
	case userquizanswer.FieldQuestionID:
		return m.QuestionID()
	case userquizanswer.FieldAnswerOrder:
		return m.AnswerOrder()
	case userquizanswer.FieldSelected:
		return m.Selected()
	case userquizanswer.FieldCorrect:
		return m.Correct()
	case userquizanswer.FieldAnsweredAt:
		return m.AnsweredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserQuizAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userquizanswer.FieldUserQuizpackID:
		return m.OldUserQuizpackID(ctx)
	case userquizanswer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case userquizanswer.FieldAnswerOrder:
		return m.OldAnswerOrder(ctx)
	case userquizanswer.FieldSelected:
		return m.OldSelected(ctx)
	case userquizanswer.FieldCorrect:
		return m.OldCorrect(ctx)
	case userquizanswer.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserQuizAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserQuizAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userquizanswer.FieldUserQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserQuizpackID(v)
		return nil
	case userquizanswer.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case userquizanswer.FieldAnswerOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerOrder(v)
		return nil
	case userquizanswer.FieldSelected:
		v, ok := value.(schema.SelectedAnswer)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelected(v)
		return nil
	case userquizanswer.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case userquizanswer.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserQuizAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserQuizAnswerMutation) AddedFields() []string {
	var fields []string
	if m.adduser_quizpack_id != nil {
		fields = append(fields, userquizanswer.FieldUserQuizpackID)
	}
	if m.addquestion_id != nil {
		fields = append(fields, userquizanswer.FieldQuestionID)
	}
	if m.addanswer_order != nil {
		fields = append(fields, userquizanswer.FieldAnswerOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserQuizAnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userquizanswer.FieldUserQuizpackID:
		return m.AddedUserQuizpackID()
	case userquizanswer.FieldQuestionID:
		return m.AddedQuestionID()
	case userquizanswer.FieldAnswerOrder:
		return m.AddedAnswerOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserQuizAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userquizanswer.FieldUserQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserQuizpackID(v)
		return nil
	case userquizanswer.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	case userquizanswer.FieldAnswerOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswerOrder(v)
		return nil
	}
	return fmt.Errorf("unknown UserQuizAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserQuizAnswerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserQuizAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserQuizAnswerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserQuizAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserQuizAnswerMutation) ResetField(name string) error {
	switch name {
	case userquizanswer.FieldUserQuizpackID:
		m.ResetUserQuizpackID()
		return nil
	case userquizanswer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case userquizanswer.FieldAnswerOrder:
		m.ResetAnswerOrder()
		return nil
	case userquizanswer.FieldSelected:
		m.ResetSelected()
		return nil
	case userquizanswer.FieldCorrect:
		m.ResetCorrect()
		return nil
	case userquizanswer.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown UserQuizAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserQuizAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserQuizAnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserQuizAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserQuizAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserQuizAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserQuizAnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserQuizAnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserQuizAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserQuizAnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserQuizAnswer edge %s", name)
}

// UserQuizpackMutation represents an operation that mutates the UserQuizpack nodes in the graph.
type UserQuizpackMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	user_id                   *string
	quizpack_id               *int
	addquizpack_id            *int
	catalog_order             *int
	addcatalog_order          *int
	status                    *string
	current_question_order    *int
	addcurrent_question_order *int
	solved_count              *int
	addsolved_count           *int
	correct_count             *int
	addcorrect_count          *int
	incorrect_count           *int
	addincorrect_count        *int
	correct_rate              *float64
	addcorrect_rate           *float64
	total_question_count      *int
	addtotal_question_count   *int
	session_number            *int
	addsession_number         *int
	attempt_id                *string
	started_at                *time.Time
	last_played_at            *time.Time
	completed_at              *time.Time
	total_time_seconds        *int
	addtotal_time_seconds     *int
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*UserQuizpack, error)
	predicates                []predicate.UserQuizpack
}

var _ ent.Mutation = (*UserQuizpackMutation)(nil)

// userquizpackOption allows management of the mutation configuration using functional options.
type userquizpackOption func(*UserQuizpackMutation)

// newUserQuizpackMutation creates new mutation for the UserQuizpack entity.
func newUserQuizpackMutation(c config, op Op, opts ...userquizpackOption) *UserQuizpackMutation {
	m := &UserQuizpackMutation{
		config:        c,
		op:            op,
		typ:           TypeUserQuizpack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserQuizpackID sets the ID field of the mutation.
func withUserQuizpackID(id int) userquizpackOption {
	return func(m *UserQuizpackMutation) {
		var (
			err   error
			once  sync.Once
			value *UserQuizpack
		)
		m.oldValue = func(ctx context.Context) (*UserQuizpack, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserQuizpack.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserQuizpack sets the old UserQuizpack of the mutation.
func withUserQuizpack(node *UserQuizpack) userquizpackOption {
	return func(m *UserQuizpackMutation) {
		m.oldValue = func(context.Context) (*UserQuizpack, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserQuizpackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserQuizpackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserQuizpackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserQuizpackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserQuizpack.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserQuizpackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserQuizpackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserQuizpackMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuizpackID sets the "quizpack_id" field.
func (m *UserQuizpackMutation) SetQuizpackID(i int) {
	m.quizpack_id = &i
	m.addquizpack_id = nil
}

// QuizpackID returns the value of the "quizpack_id" field in the mutation.
func (m *UserQuizpackMutation) QuizpackID() (r int, exists bool) {
	v := m.quizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizpackID returns the old "quizpack_id" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldQuizpackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizpackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizpackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizpackID: %w", err)
	}
	return oldValue.QuizpackID, nil
}

// AddQuizpackID adds i to the "quizpack_id" field.
func (m *UserQuizpackMutation) AddQuizpackID(i int) {
	if m.addquizpack_id != nil {
		*m.addquizpack_id += i
	} else {
		m.addquizpack_id = &i
	}
}

// AddedQuizpackID returns the value that was added to the "quizpack_id" field in this mutation.
func (m *UserQuizpackMutation) AddedQuizpackID() (r int, exists bool) {
	v := m.addquizpack_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizpackID resets all changes to the "quizpack_id" field.
func (m *UserQuizpackMutation) ResetQuizpackID() {
	m.quizpack_id = nil
	m.addquizpack_id = nil
}

// SetCatalogOrder sets the "catalog_order" field.
func (m *UserQuizpackMutation) SetCatalogOrder(i int) {
	m.catalog_order = &i
	m.addcatalog_order = nil
}

// CatalogOrder returns the value of the "catalog_order" field in the mutation.
func (m *UserQuizpackMutation) CatalogOrder() (r int, exists bool) {
	v := m.catalog_order
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogOrder returns the old "catalog_order" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldCatalogOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogOrder: %w", err)
	}
	return oldValue.CatalogOrder, nil
}

// AddCatalogOrder adds i to the "catalog_order" field.
func (m *UserQuizpackMutation) AddCatalogOrder(i int) {
	if m.addcatalog_order != nil {
		*m.addcatalog_order += i
	} else {
		m.addcatalog_order = &i
	}
}

// AddedCatalogOrder returns the value that was added to the "catalog_order" field in this mutation.
func (m *UserQuizpackMutation) AddedCatalogOrder() (r int, exists bool) {
	v := m.addcatalog_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetCatalogOrder resets all changes to the "catalog_order" field.
func (m *UserQuizpackMutation) ResetCatalogOrder() {
	m.catalog_order = nil
	m.addcatalog_order = nil
}

// SetStatus sets the "status" field.
func (m *UserQuizpackMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UserQuizpackMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserQuizpackMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentQuestionOrder sets the "current_question_order" field.
func (m *UserQuizpackMutation) SetCurrentQuestionOrder(i int) {
	m.current_question_order = &i
	m.addcurrent_question_order = nil
}

// CurrentQuestionOrder returns the value of the "current_question_order" field in the mutation.
func (m *UserQuizpackMutation) CurrentQuestionOrder() (r int, exists bool) {
	v := m.current_question_order
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentQuestionOrder returns the old "current_question_order" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldCurrentQuestionOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentQuestionOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentQuestionOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentQuestionOrder: %w", err)
	}
	return oldValue.CurrentQuestionOrder, nil
}

// AddCurrentQuestionOrder adds i to the "current_question_order" field.
func (m *UserQuizpackMutation) AddCurrentQuestionOrder(i int) {
	if m.addcurrent_question_order != nil {
		*m.addcurrent_question_order += i
	} else {
		m.addcurrent_question_order = &i
	}
}

// AddedCurrentQuestionOrder returns the value that was added to the "current_question_order" field in this mutation.
func (m *UserQuizpackMutation) AddedCurrentQuestionOrder() (r int, exists bool) {
	v := m.addcurrent_question_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentQuestionOrder resets all changes to the "current_question_order" field.
func (m *UserQuizpackMutation) ResetCurrentQuestionOrder() {
	m.current_question_order = nil
	m.addcurrent_question_order = nil
}

// SetSolvedCount sets the "solved_count" field.
func (m *UserQuizpackMutation) SetSolvedCount(i int) {
	m.solved_count = &i
	m.addsolved_count = nil
}

// SolvedCount returns the value of the "solved_count" field in the mutation.
func (m *UserQuizpackMutation) SolvedCount() (r int, exists bool) {
	v := m.solved_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSolvedCount returns the old "solved_count" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldSolvedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolvedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolvedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolvedCount: %w", err)
	}
	return oldValue.SolvedCount, nil
}

// AddSolvedCount adds i to the "solved_count" field.
func (m *UserQuizpackMutation) AddSolvedCount(i int) {
	if m.addsolved_count != nil {
		*m.addsolved_count += i
	} else {
		m.addsolved_count = &i
	}
}

// AddedSolvedCount returns the value that was added to the "solved_count" field in this mutation.
func (m *UserQuizpackMutation) AddedSolvedCount() (r int, exists bool) {
	v := m.addsolved_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSolvedCount resets all changes to the "solved_count" field.
func (m *UserQuizpackMutation) ResetSolvedCount() {
	m.solved_count = nil
	m.addsolved_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *UserQuizpackMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *UserQuizpackMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *UserQuizpackMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *UserQuizpackMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *UserQuizpackMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetIncorrectCount sets the "incorrect_count" field.
func (m *UserQuizpackMutation) SetIncorrectCount(i int) {
	m.incorrect_count = &i
	m.addincorrect_count = nil
}

// IncorrectCount returns the value of the "incorrect_count" field in the mutation.
func (m *UserQuizpackMutation) IncorrectCount() (r int, exists bool) {
	v := m.incorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// OldIncorrectCount returns the old "incorrect_count" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldIncorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncorrectCount: %w", err)
	}
	return oldValue.IncorrectCount, nil
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (m *UserQuizpackMutation) AddIncorrectCount(i int) {
	if m.addincorrect_count != nil {
		*m.addincorrect_count += i
	} else {
		m.addincorrect_count = &i
	}
}

// AddedIncorrectCount returns the value that was added to the "incorrect_count" field in this mutation.
func (m *UserQuizpackMutation) AddedIncorrectCount() (r int, exists bool) {
	v := m.addincorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncorrectCount resets all changes to the "incorrect_count" field.
func (m *UserQuizpackMutation) ResetIncorrectCount() {
	m.incorrect_count = nil
	m.addincorrect_count = nil
}

// SetCorrectRate sets the "correct_rate" field.
func (m *UserQuizpackMutation) SetCorrectRate(f float64) {
	m.correct_rate = &f
	m.addcorrect_rate = nil
}

// CorrectRate returns the value of the "correct_rate" field in the mutation.
func (m *UserQuizpackMutation) CorrectRate() (r float64, exists bool) {
	v := m.correct_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectRate returns the old "correct_rate" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldCorrectRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectRate: %w", err)
	}
	return oldValue.CorrectRate, nil
}

// AddCorrectRate adds f to the "correct_rate" field.
func (m *UserQuizpackMutation) AddCorrectRate(f float64) {
	if m.addcorrect_rate != nil {
		*m.addcorrect_rate += f
	} else {
		m.addcorrect_rate = &f
	}
}

// AddedCorrectRate returns the value that was added to the "correct_rate" field in this mutation.
func (m *UserQuizpackMutation) AddedCorrectRate() (r float64, exists bool) {
	v := m.addcorrect_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearCorrectRate clears the value of the "correct_rate" field.
func (m *UserQuizpackMutation) ClearCorrectRate() {
	m.correct_rate = nil
	m.addcorrect_rate = nil
	m.clearedFields[userquizpack.FieldCorrectRate] = struct{}{}
}

// CorrectRateCleared returns if the "correct_rate" field was cleared in this mutation.
func (m *UserQuizpackMutation) CorrectRateCleared() bool {
	_, ok := m.clearedFields[userquizpack.FieldCorrectRate]
	return ok
}

// ResetCorrectRate resets all changes to the "correct_rate" field.
func (m *UserQuizpackMutation) ResetCorrectRate() {
	m.correct_rate = nil
	m.addcorrect_rate = nil
	delete(m.clearedFields, userquizpack.FieldCorrectRate)
}

// SetTotalQuestionCount sets the "total_question_count" field.
func (m *UserQuizpackMutation) SetTotalQuestionCount(i int) {
	m.total_question_count = &i
	m.addtotal_question_count = nil
}

// TotalQuestionCount returns the value of the "total_question_count" field in the mutation.
func (m *UserQuizpackMutation) TotalQuestionCount() (r int, exists bool) {
	v := m.total_question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestionCount returns the old "total_question_count" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldTotalQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestionCount: %w", err)
	}
	return oldValue.TotalQuestionCount, nil
}

// AddTotalQuestionCount adds i to the "total_question_count" field.
func (m *UserQuizpackMutation) AddTotalQuestionCount(i int) {
	if m.addtotal_question_count != nil {
		*m.addtotal_question_count += i
	} else {
		m.addtotal_question_count = &i
	}
}

// AddedTotalQuestionCount returns the value that was added to the "total_question_count" field in this mutation.
func (m *UserQuizpackMutation) AddedTotalQuestionCount() (r int, exists bool) {
	v := m.addtotal_question_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestionCount resets all changes to the "total_question_count" field.
func (m *UserQuizpackMutation) ResetTotalQuestionCount() {
	m.total_question_count = nil
	m.addtotal_question_count = nil
}

// SetSessionNumber sets the "session_number" field.
func (m *UserQuizpackMutation) SetSessionNumber(i int) {
	m.session_number = &i
	m.addsession_number = nil
}

// SessionNumber returns the value of the "session_number" field in the mutation.
func (m *UserQuizpackMutation) SessionNumber() (r int, exists bool) {
	v := m.session_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionNumber returns the old "session_number" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldSessionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionNumber: %w", err)
	}
	return oldValue.SessionNumber, nil
}

// AddSessionNumber adds i to the "session_number" field.
func (m *UserQuizpackMutation) AddSessionNumber(i int) {
	if m.addsession_number != nil {
		*m.addsession_number += i
	} else {
		m.addsession_number = &i
	}
}

// AddedSessionNumber returns the value that was added to the "session_number" field in this mutation.
func (m *UserQuizpackMutation) AddedSessionNumber() (r int, exists bool) {
	v := m.addsession_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionNumber resets all changes to the "session_number" field.
func (m *UserQuizpackMutation) ResetSessionNumber() {
	m.session_number = nil
	m.addsession_number = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *UserQuizpackMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *UserQuizpackMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ClearAttemptID clears the value of the "attempt_id" field.
func (m *UserQuizpackMutation) ClearAttemptID() {
	m.attempt_id = nil
	m.clearedFields[userquizpack.FieldAttemptID] = struct{}{}
}

// AttemptIDCleared returns if the "attempt_id" field was cleared in this mutation.
func (m *UserQuizpackMutation) AttemptIDCleared() bool {
	_, ok := m.clearedFields[userquizpack.FieldAttemptID]
	return ok
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *UserQuizpackMutation) ResetAttemptID() {
	m.attempt_id = nil
	delete(m.clearedFields, userquizpack.FieldAttemptID)
}

// SetStartedAt sets the "started_at" field.
func (m *UserQuizpackMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *UserQuizpackMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *UserQuizpackMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[userquizpack.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *UserQuizpackMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[userquizpack.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *UserQuizpackMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, userquizpack.FieldStartedAt)
}

// SetLastPlayedAt sets the "last_played_at" field.
func (m *UserQuizpackMutation) SetLastPlayedAt(t time.Time) {
	m.last_played_at = &t
}

// LastPlayedAt returns the value of the "last_played_at" field in the mutation.
func (m *UserQuizpackMutation) LastPlayedAt() (r time.Time, exists bool) {
	v := m.last_played_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPlayedAt returns the old "last_played_at" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldLastPlayedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPlayedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPlayedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPlayedAt: %w", err)
	}
	return oldValue.LastPlayedAt, nil
}

// ClearLastPlayedAt clears the value of the "last_played_at" field.
func (m *UserQuizpackMutation) ClearLastPlayedAt() {
	m.last_played_at = nil
	m.clearedFields[userquizpack.FieldLastPlayedAt] = struct{}{}
}

// LastPlayedAtCleared returns if the "last_played_at" field was cleared in this mutation.
func (m *UserQuizpackMutation) LastPlayedAtCleared() bool {
	_, ok := m.clearedFields[userquizpack.FieldLastPlayedAt]
	return ok
}

// ResetLastPlayedAt resets all changes to the "last_played_at" field.
func (m *UserQuizpackMutation) ResetLastPlayedAt() {
	m.last_played_at = nil
	delete(m.clearedFields, userquizpack.FieldLastPlayedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *UserQuizpackMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *UserQuizpackMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *UserQuizpackMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[userquizpack.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *UserQuizpackMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[userquizpack.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *UserQuizpackMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, userquizpack.FieldCompletedAt)
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (m *UserQuizpackMutation) SetTotalTimeSeconds(i int) {
	m.total_time_seconds = &i
	m.addtotal_time_seconds = nil
}

// TotalTimeSeconds returns the value of the "total_time_seconds" field in the mutation.
func (m *UserQuizpackMutation) TotalTimeSeconds() (r int, exists bool) {
	v := m.total_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSeconds returns the old "total_time_seconds" field's value of the UserQuizpack entity.
// If the UserQuizpack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuizpackMutation) OldTotalTimeSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSeconds: %w", err)
	}
	return oldValue.TotalTimeSeconds, nil
}

// AddTotalTimeSeconds adds i to the "total_time_seconds" field.
func (m *UserQuizpackMutation) AddTotalTimeSeconds(i int) {
	if m.addtotal_time_seconds != nil {
		*m.addtotal_time_seconds += i
	} else {
		m.addtotal_time_seconds = &i
	}
}

// AddedTotalTimeSeconds returns the value that was added to the "total_time_seconds" field in this mutation.
func (m *UserQuizpackMutation) AddedTotalTimeSeconds() (r int, exists bool) {
	v := m.addtotal_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSeconds resets all changes to the "total_time_seconds" field.
func (m *UserQuizpackMutation) ResetTotalTimeSeconds() {
	m.total_time_seconds = nil
	m.addtotal_time_seconds = nil
}

// Where appends a list predicates to the UserQuizpackMutation builder.
func (m *UserQuizpackMutation) Where(ps ...predicate.UserQuizpack) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserQuizpackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserQuizpackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserQuizpack, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserQuizpackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserQuizpackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserQuizpack).
func (m *UserQuizpackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserQuizpackMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.user_id != nil {
		fields = append(fields, userquizpack.FieldUserID)
	}
	if m.quizpack_id != nil {
		fields = append(fields, userquizpack.FieldQuizpackID)
	}
	if m.catalog_order != nil {
		fields = append(fields, userquizpack.FieldCatalogOrder)
	}
	if m.status != nil {
		fields = append(fields, userquizpack.FieldStatus)
	}
	if m.current_question_order != nil {
		fields = append(fields, userquizpack.FieldCurrentQuestionOrder)
	}
	if m.solved_count != nil {
		fields = append(fields, userquizpack.FieldSolvedCount)
	}
	if m.correct_count != nil {
		fields = append(fields, userquizpack.FieldCorrectCount)
	}
	if m.incorrect_count != nil {
		fields = append(fields, userquizpack.FieldIncorrectCount)
	}
	if m.correct_rate != nil {
		fields = append(fields, userquizpack.FieldCorrectRate)
	}
	if m.total_question_count != nil {
		fields = append(fields, userquizpack.FieldTotalQuestionCount)
	}
	if m.session_number != nil {
		fields = append(fields, userquizpack.FieldSessionNumber)
	}
	if m.attempt_id != nil {
		fields = append(fields, userquizpack.FieldAttemptID)
	}
	if m.started_at != nil {
		fields = append(fields, userquizpack.FieldStartedAt)
	}
	if m.last_played_at != nil {
		fields = append(fields, userquizpack.FieldLastPlayedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, userquizpack.FieldCompletedAt)
	}
	if m.total_time_seconds != nil {
		fields = append(fields, userquizpack.FieldTotalTimeSeconds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserQuizpackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userquizpack.FieldUserID:
		return m.UserID()
	case userquizpack.FieldQuizpackID:
		return m.QuizpackID()
	case userquizpack.FieldCatalogOrder:
		return m.CatalogOrder()
	case userquizpack.FieldStatus:
		return m.Status()
	case userquizpack.FieldCurrentQuestionOrder:
		return m.CurrentQuestionOrder()
	case userquizpack.FieldSolvedCount:
		return m.SolvedCount()
	case userquizpack.FieldCorrectCount:
		return m.CorrectCount()
	case userquizpack.FieldIncorrectCount:
		return m.IncorrectCount()
	case userquizpack.FieldCorrectRate:
		return m.CorrectRate()
	case userquizpack.FieldTotalQuestionCount:
		return m.TotalQuestionCount()
	case userquizpack.FieldSessionNumber:
		return m.SessionNumber()
	case userquizpack.FieldAttemptID:
		return m.AttemptID()
	case userquizpack.FieldStartedAt:
		return m.StartedAt()
	case userquizpack.FieldLastPlayedAt:
		return m.LastPlayedAt()
	case userquizpack.FieldCompletedAt:
		return m.CompletedAt()
	case userquizpack.FieldTotalTimeSeconds:
		return m.TotalTimeSeconds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserQuizpackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userquizpack.FieldUserID:
		return m.OldUserID(ctx)
	case userquizpack.FieldQuizpackID:
		return m.OldQuizpackID(ctx)
	case userquizpack.FieldCatalogOrder:
		return m.OldCatalogOrder(ctx)
	case userquizpack.FieldStatus:
		return m.OldStatus(ctx)
	case userquizpack.FieldCurrentQuestionOrder:
		return m.OldCurrentQuestionOrder(ctx)
	case userquizpack.FieldSolvedCount:
		return m.OldSolvedCount(ctx)
	case userquizpack.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case userquizpack.FieldIncorrectCount:
		return m.OldIncorrectCount(ctx)
	case userquizpack.FieldCorrectRate:
		return m.OldCorrectRate(ctx)
	case userquizpack.FieldTotalQuestionCount:
		return m.OldTotalQuestionCount(ctx)
	case userquizpack.FieldSessionNumber:
		return m.OldSessionNumber(ctx)
	case userquizpack.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case userquizpack.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case userquizpack.FieldLastPlayedAt:
		return m.OldLastPlayedAt(ctx)
	case userquizpack.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case userquizpack.FieldTotalTimeSeconds:
		return m.OldTotalTimeSeconds(ctx)
	}
	return nil, fmt.Errorf("unknown UserQuizpack field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserQuizpackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userquizpack.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userquizpack.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizpackID(v)
		return nil
	case userquizpack.FieldCatalogOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogOrder(v)
		return nil
	case userquizpack.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case userquizpack.FieldCurrentQuestionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentQuestionOrder(v)
		return nil
	case userquizpack.FieldSolvedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolvedCount(v)
		return nil
	case userquizpack.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case userquizpack.FieldIncorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncorrectCount(v)
		return nil
	case userquizpack.FieldCorrectRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectRate(v)
		return nil
	case userquizpack.FieldTotalQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestionCount(v)
		return nil
	case userquizpack.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionNumber(v)
		return nil
	case userquizpack.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case userquizpack.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case userquizpack.FieldLastPlayedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPlayedAt(v)
		return nil
	case userquizpack.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case userquizpack.FieldTotalTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown UserQuizpack field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserQuizpackMutation) AddedFields() []string {
	var fields []string
	if m.addquizpack_id != nil {
		fields = append(fields, userquizpack.FieldQuizpackID)
	}
	if m.addcatalog_order != nil {
		fields = append(fields, userquizpack.FieldCatalogOrder)
	}
	if m.addcurrent_question_order != nil {
		fields = append(fields, userquizpack.FieldCurrentQuestionOrder)
	}
	if m.addsolved_count != nil {
		fields = append(fields, userquizpack.FieldSolvedCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, userquizpack.FieldCorrectCount)
	}
	if m.addincorrect_count != nil {
		fields = append(fields, userquizpack.FieldIncorrectCount)
	}
	if m.addcorrect_rate != nil {
		fields = append(fields, userquizpack.FieldCorrectRate)
	}
	if m.addtotal_question_count != nil {
		fields = append(fields, userquizpack.FieldTotalQuestionCount)
	}
	if m.addsession_number != nil {
		fields = append(fields, userquizpack.FieldSessionNumber)
	}
	if m.addtotal_time_seconds != nil {
		fields = append(fields, userquizpack.FieldTotalTimeSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserQuizpackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userquizpack.FieldQuizpackID:
		return m.AddedQuizpackID()
	case userquizpack.FieldCatalogOrder:
		return m.AddedCatalogOrder()
	case userquizpack.FieldCurrentQuestionOrder:
		return m.AddedCurrentQuestionOrder()
	case userquizpack.FieldSolvedCount:
		return m.AddedSolvedCount()
	case userquizpack.FieldCorrectCount:
		return m.AddedCorrectCount()
	case userquizpack.FieldIncorrectCount:
		return m.AddedIncorrectCount()
	case userquizpack.FieldCorrectRate:
		return m.AddedCorrectRate()
	case userquizpack.FieldTotalQuestionCount:
		return m.AddedTotalQuestionCount()
	case userquizpack.FieldSessionNumber:
		return m.AddedSessionNumber()
	case userquizpack.FieldTotalTimeSeconds:
		return m.AddedTotalTimeSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserQuizpackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userquizpack.FieldQuizpackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizpackID(v)
		return nil
	case userquizpack.FieldCatalogOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCatalogOrder(v)
		return nil
	case userquizpack.FieldCurrentQuestionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentQuestionOrder(v)
		return nil
	case userquizpack.FieldSolvedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSolvedCount(v)
		return nil
	case userquizpack.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case userquizpack.FieldIncorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncorrectCount(v)
		return nil
	case userquizpack.FieldCorrectRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectRate(v)
		return nil
	case userquizpack.FieldTotalQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestionCount(v)
		return nil
	case userquizpack.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionNumber(v)
		return nil
	case userquizpack.FieldTotalTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown UserQuizpack numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserQuizpackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userquizpack.FieldCorrectRate) {
		fields = append(fields, userquizpack.FieldCorrectRate)
	}
	if m.FieldCleared(userquizpack.FieldAttemptID) {
		fields = append(fields, userquizpack.FieldAttemptID)
	}
	if m.FieldCleared(userquizpack.FieldStartedAt) {
		fields = append(fields, userquizpack.FieldStartedAt)
	}
	if m.FieldCleared(userquizpack.FieldLastPlayedAt) {
		fields = append(fields, userquizpack.FieldLastPlayedAt)
	}
	if m.FieldCleared(userquizpack.FieldCompletedAt) {
		fields = append(fields, userquizpack.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserQuizpackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserQuizpackMutation) ClearField(name string) error {
	switch name {
	case userquizpack.FieldCorrectRate:
		m.ClearCorrectRate()
		return nil
	case userquizpack.FieldAttemptID:
		m.ClearAttemptID()
		return nil
	case userquizpack.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case userquizpack.FieldLastPlayedAt:
		m.ClearLastPlayedAt()
		return nil
	case userquizpack.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown UserQuizpack nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserQuizpackMutation) ResetField(name string) error {
	switch name {
	case userquizpack.FieldUserID:
		m.ResetUserID()
		return nil
	case userquizpack.FieldQuizpackID:
		m.ResetQuizpackID()
		return nil
	case userquizpack.FieldCatalogOrder:
		m.ResetCatalogOrder()
		return nil
	case userquizpack.FieldStatus:
		m.ResetStatus()
		return nil
	case userquizpack.FieldCurrentQuestionOrder:
		m.ResetCurrentQuestionOrder()
		return nil
	case userquizpack.FieldSolvedCount:
		m.ResetSolvedCount()
		return nil
	case userquizpack.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case userquizpack.FieldIncorrectCount:
		m.ResetIncorrectCount()
		return nil
	case userquizpack.FieldCorrectRate:
		m.ResetCorrectRate()
		return nil
	case userquizpack.FieldTotalQuestionCount:
		m.ResetTotalQuestionCount()
		return nil
	case userquizpack.FieldSessionNumber:
		m.ResetSessionNumber()
		return nil
	case userquizpack.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case userquizpack.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case userquizpack.FieldLastPlayedAt:
		m.ResetLastPlayedAt()
		return nil
	case userquizpack.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case userquizpack.FieldTotalTimeSeconds:
		m.ResetTotalTimeSeconds()
		return nil
	}
	return fmt.Errorf("unknown UserQuizpack field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserQuizpackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserQuizpackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserQuizpackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserQuizpackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserQuizpackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserQuizpackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserQuizpackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserQuizpack unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserQuizpackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserQuizpack edge %s", name)
}
