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
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/generationevent"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/predicate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/statssnapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGenerationEvent = "GenerationEvent"
	TypeStatsSnapshot   = "StatsSnapshot"
)

// GenerationEventMutation represents an operation that mutates the GenerationEvent nodes in the graph.
type GenerationEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	subject            *string
	unit_name          *string
	topics             *[]string
	appendtopics       []string
	difficulty         *string
	requested_count    *int
	addrequested_count *int
	returned_count     *int
	addreturned_count  *int
	model              *string
	latency_ms         *int64
	addlatency_ms      *int64
	success            *bool
	error_message      *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*GenerationEvent, error)
	predicates         []predicate.GenerationEvent
}

var _ ent.Mutation = (*GenerationEventMutation)(nil)

// generationeventOption allows management of the mutation configuration using functional options.
type generationeventOption func(*GenerationEventMutation)

// newGenerationEventMutation creates new mutation for the GenerationEvent entity.
func newGenerationEventMutation(c config, op Op, opts ...generationeventOption) *GenerationEventMutation {
	m := &GenerationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationEventID sets the ID field of the mutation.
func withGenerationEventID(id int) generationeventOption {
	return func(m *GenerationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationEvent
		)
		m.oldValue = func(ctx context.Context) (*GenerationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationEvent sets the old GenerationEvent of the mutation.
func withGenerationEvent(node *GenerationEvent) generationeventOption {
	return func(m *GenerationEventMutation) {
		m.oldValue = func(context.Context) (*GenerationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *GenerationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *GenerationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *GenerationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *GenerationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *GenerationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *GenerationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GenerationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GenerationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSubject sets the "subject" field.
func (m *GenerationEventMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *GenerationEventMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *GenerationEventMutation) ResetSubject() {
	m.subject = nil
}

// SetUnitName sets the "unit_name" field.
func (m *GenerationEventMutation) SetUnitName(s string) {
	m.unit_name = &s
}

// UnitName returns the value of the "unit_name" field in the mutation.
func (m *GenerationEventMutation) UnitName() (r string, exists bool) {
	v := m.unit_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitName returns the old "unit_name" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldUnitName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitName: %w", err)
	}
	return oldValue.UnitName, nil
}

// ResetUnitName resets all changes to the "unit_name" field.
func (m *GenerationEventMutation) ResetUnitName() {
	m.unit_name = nil
}

// SetTopics sets the "topics" field.
func (m *GenerationEventMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *GenerationEventMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *GenerationEventMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *GenerationEventMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ResetTopics resets all changes to the "topics" field.
func (m *GenerationEventMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *GenerationEventMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *GenerationEventMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *GenerationEventMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetRequestedCount sets the "requested_count" field.
func (m *GenerationEventMutation) SetRequestedCount(i int) {
	m.requested_count = &i
	m.addrequested_count = nil
}

// RequestedCount returns the value of the "requested_count" field in the mutation.
func (m *GenerationEventMutation) RequestedCount() (r int, exists bool) {
	v := m.requested_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedCount returns the old "requested_count" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldRequestedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedCount: %w", err)
	}
	return oldValue.RequestedCount, nil
}

// AddRequestedCount adds i to the "requested_count" field.
func (m *GenerationEventMutation) AddRequestedCount(i int) {
	if m.addrequested_count != nil {
		*m.addrequested_count += i
	} else {
		m.addrequested_count = &i
	}
}

// AddedRequestedCount returns the value that was added to the "requested_count" field in this mutation.
func (m *GenerationEventMutation) AddedRequestedCount() (r int, exists bool) {
	v := m.addrequested_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestedCount resets all changes to the "requested_count" field.
func (m *GenerationEventMutation) ResetRequestedCount() {
	m.requested_count = nil
	m.addrequested_count = nil
}

// SetReturnedCount sets the "returned_count" field.
func (m *GenerationEventMutation) SetReturnedCount(i int) {
	m.returned_count = &i
	m.addreturned_count = nil
}

// ReturnedCount returns the value of the "returned_count" field in the mutation.
func (m *GenerationEventMutation) ReturnedCount() (r int, exists bool) {
	v := m.returned_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReturnedCount returns the old "returned_count" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldReturnedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReturnedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReturnedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReturnedCount: %w", err)
	}
	return oldValue.ReturnedCount, nil
}

// AddReturnedCount adds i to the "returned_count" field.
func (m *GenerationEventMutation) AddReturnedCount(i int) {
	if m.addreturned_count != nil {
		*m.addreturned_count += i
	} else {
		m.addreturned_count = &i
	}
}

// AddedReturnedCount returns the value that was added to the "returned_count" field in this mutation.
func (m *GenerationEventMutation) AddedReturnedCount() (r int, exists bool) {
	v := m.addreturned_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReturnedCount resets all changes to the "returned_count" field.
func (m *GenerationEventMutation) ResetReturnedCount() {
	m.returned_count = nil
	m.addreturned_count = nil
}

// SetModel sets the "model" field.
func (m *GenerationEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GenerationEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *GenerationEventMutation) ResetModel() {
	m.model = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *GenerationEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *GenerationEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *GenerationEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *GenerationEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *GenerationEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *GenerationEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *GenerationEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *GenerationEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the GenerationEventMutation builder.
func (m *GenerationEventMutation) Where(ps ...predicate.GenerationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationEvent).
func (m *GenerationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, generationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, generationevent.FieldTimestamp)
	}
	if m.subject != nil {
		fields = append(fields, generationevent.FieldSubject)
	}
	if m.unit_name != nil {
		fields = append(fields, generationevent.FieldUnitName)
	}
	if m.topics != nil {
		fields = append(fields, generationevent.FieldTopics)
	}
	if m.difficulty != nil {
		fields = append(fields, generationevent.FieldDifficulty)
	}
	if m.requested_count != nil {
		fields = append(fields, generationevent.FieldRequestedCount)
	}
	if m.returned_count != nil {
		fields = append(fields, generationevent.FieldReturnedCount)
	}
	if m.model != nil {
		fields = append(fields, generationevent.FieldModel)
	}
	if m.latency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, generationevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, generationevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldSequence:
		return m.Sequence()
	case generationevent.FieldTimestamp:
		return m.Timestamp()
	case generationevent.FieldSubject:
		return m.Subject()
	case generationevent.FieldUnitName:
		return m.UnitName()
	case generationevent.FieldTopics:
		return m.Topics()
	case generationevent.FieldDifficulty:
		return m.Difficulty()
	case generationevent.FieldRequestedCount:
		return m.RequestedCount()
	case generationevent.FieldReturnedCount:
		return m.ReturnedCount()
	case generationevent.FieldModel:
		return m.Model()
	case generationevent.FieldLatencyMs:
		return m.LatencyMs()
	case generationevent.FieldSuccess:
		return m.Success()
	case generationevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationevent.FieldSequence:
		return m.OldSequence(ctx)
	case generationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case generationevent.FieldSubject:
		return m.OldSubject(ctx)
	case generationevent.FieldUnitName:
		return m.OldUnitName(ctx)
	case generationevent.FieldTopics:
		return m.OldTopics(ctx)
	case generationevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case generationevent.FieldRequestedCount:
		return m.OldRequestedCount(ctx)
	case generationevent.FieldReturnedCount:
		return m.OldReturnedCount(ctx)
	case generationevent.FieldModel:
		return m.OldModel(ctx)
	case generationevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case generationevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case generationevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case generationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case generationevent.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case generationevent.FieldUnitName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitName(v)
		return nil
	case generationevent.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case generationevent.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case generationevent.FieldRequestedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedCount(v)
		return nil
	case generationevent.FieldReturnedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReturnedCount(v)
		return nil
	case generationevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case generationevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case generationevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, generationevent.FieldSequence)
	}
	if m.addrequested_count != nil {
		fields = append(fields, generationevent.FieldRequestedCount)
	}
	if m.addreturned_count != nil {
		fields = append(fields, generationevent.FieldReturnedCount)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldSequence:
		return m.AddedSequence()
	case generationevent.FieldRequestedCount:
		return m.AddedRequestedCount()
	case generationevent.FieldReturnedCount:
		return m.AddedReturnedCount()
	case generationevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case generationevent.FieldRequestedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestedCount(v)
		return nil
	case generationevent.FieldReturnedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReturnedCount(v)
		return nil
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GenerationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationEventMutation) ResetField(name string) error {
	switch name {
	case generationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case generationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case generationevent.FieldSubject:
		m.ResetSubject()
		return nil
	case generationevent.FieldUnitName:
		m.ResetUnitName()
		return nil
	case generationevent.FieldTopics:
		m.ResetTopics()
		return nil
	case generationevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case generationevent.FieldRequestedCount:
		m.ResetRequestedCount()
		return nil
	case generationevent.FieldReturnedCount:
		m.ResetReturnedCount()
		return nil
	case generationevent.FieldModel:
		m.ResetModel()
		return nil
	case generationevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case generationevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case generationevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent edge %s", name)
}

// StatsSnapshotMutation represents an operation that mutates the StatsSnapshot nodes in the graph.
type StatsSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StatsSnapshot, error)
	predicates    []predicate.StatsSnapshot
}

var _ ent.Mutation = (*StatsSnapshotMutation)(nil)

// statssnapshotOption allows management of the mutation configuration using functional options.
type statssnapshotOption func(*StatsSnapshotMutation)

// newStatsSnapshotMutation creates new mutation for the StatsSnapshot entity.
func newStatsSnapshotMutation(c config, op Op, opts ...statssnapshotOption) *StatsSnapshotMutation {
	m := &StatsSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeStatsSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatsSnapshotID sets the ID field of the mutation.
func withStatsSnapshotID(id int) statssnapshotOption {
	return func(m *StatsSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *StatsSnapshot
		)
		m.oldValue = func(ctx context.Context) (*StatsSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatsSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatsSnapshot sets the old StatsSnapshot of the mutation.
func withStatsSnapshot(node *StatsSnapshot) statssnapshotOption {
	return func(m *StatsSnapshotMutation) {
		m.oldValue = func(context.Context) (*StatsSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatsSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatsSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatsSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatsSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatsSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *StatsSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StatsSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StatsSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *StatsSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *StatsSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *StatsSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the StatsSnapshotMutation builder.
func (m *StatsSnapshotMutation) Where(ps ...predicate.StatsSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatsSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatsSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatsSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatsSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatsSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatsSnapshot).
func (m *StatsSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatsSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.timestamp != nil {
		fields = append(fields, statssnapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, statssnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatsSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statssnapshot.FieldTimestamp:
		return m.Timestamp()
	case statssnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatsSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statssnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case statssnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatsSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statssnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case statssnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatsSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatsSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatsSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StatsSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatsSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatsSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatsSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StatsSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatsSnapshotMutation) ResetField(name string) error {
	switch name {
	case statssnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case statssnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatsSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatsSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatsSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatsSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatsSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatsSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatsSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StatsSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatsSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StatsSnapshot edge %s", name)
}
