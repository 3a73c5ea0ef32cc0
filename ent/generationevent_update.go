// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/generationevent"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/predicate"
)

// GenerationEventUpdate is the builder for updating GenerationEvent entities.
type GenerationEventUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationEventMutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdate) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *GenerationEventUpdate) SetSubject(v string) *GenerationEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableSubject(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetUnitName sets the "unit_name" field.
func (_u *GenerationEventUpdate) SetUnitName(v string) *GenerationEventUpdate {
	_u.mutation.SetUnitName(v)
	return _u
}

// SetNillableUnitName sets the "unit_name" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableUnitName(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetUnitName(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *GenerationEventUpdate) SetTopics(v []string) *GenerationEventUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *GenerationEventUpdate) AppendTopics(v []string) *GenerationEventUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GenerationEventUpdate) SetDifficulty(v string) *GenerationEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableDifficulty(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetRequestedCount sets the "requested_count" field.
func (_u *GenerationEventUpdate) SetRequestedCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetRequestedCount()
	_u.mutation.SetRequestedCount(v)
	return _u
}

// SetNillableRequestedCount sets the "requested_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableRequestedCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetRequestedCount(*v)
	}
	return _u
}

// AddRequestedCount adds value to the "requested_count" field.
func (_u *GenerationEventUpdate) AddRequestedCount(v int) *GenerationEventUpdate {
	_u.mutation.AddRequestedCount(v)
	return _u
}

// SetReturnedCount sets the "returned_count" field.
func (_u *GenerationEventUpdate) SetReturnedCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetReturnedCount()
	_u.mutation.SetReturnedCount(v)
	return _u
}

// SetNillableReturnedCount sets the "returned_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableReturnedCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetReturnedCount(*v)
	}
	return _u
}

// AddReturnedCount adds value to the "returned_count" field.
func (_u *GenerationEventUpdate) AddReturnedCount(v int) *GenerationEventUpdate {
	_u.mutation.AddReturnedCount(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *GenerationEventUpdate) SetModel(v string) *GenerationEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableModel(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenerationEventUpdate) SetLatencyMs(v int64) *GenerationEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableLatencyMs(v *int64) *GenerationEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenerationEventUpdate) AddLatencyMs(v int64) *GenerationEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdate) SetSuccess(v bool) *GenerationEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableSuccess(v *bool) *GenerationEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationEventUpdate) SetErrorMessage(v string) *GenerationEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableErrorMessage(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdate) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(generationevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitName(); ok {
		_spec.SetField(generationevent.FieldUnitName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(generationevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationevent.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generationevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedCount(); ok {
		_spec.SetField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedCount(); ok {
		_spec.AddField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReturnedCount(); ok {
		_spec.SetField(generationevent.FieldReturnedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReturnedCount(); ok {
		_spec.AddField(generationevent.FieldReturnedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(generationevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationEventUpdateOne is the builder for updating a single GenerationEvent entity.
type GenerationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationEventMutation
}

// SetSubject sets the "subject" field.
func (_u *GenerationEventUpdateOne) SetSubject(v string) *GenerationEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableSubject(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetUnitName sets the "unit_name" field.
func (_u *GenerationEventUpdateOne) SetUnitName(v string) *GenerationEventUpdateOne {
	_u.mutation.SetUnitName(v)
	return _u
}

// SetNillableUnitName sets the "unit_name" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableUnitName(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetUnitName(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *GenerationEventUpdateOne) SetTopics(v []string) *GenerationEventUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *GenerationEventUpdateOne) AppendTopics(v []string) *GenerationEventUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GenerationEventUpdateOne) SetDifficulty(v string) *GenerationEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableDifficulty(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetRequestedCount sets the "requested_count" field.
func (_u *GenerationEventUpdateOne) SetRequestedCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetRequestedCount()
	_u.mutation.SetRequestedCount(v)
	return _u
}

// SetNillableRequestedCount sets the "requested_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableRequestedCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetRequestedCount(*v)
	}
	return _u
}

// AddRequestedCount adds value to the "requested_count" field.
func (_u *GenerationEventUpdateOne) AddRequestedCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddRequestedCount(v)
	return _u
}

// SetReturnedCount sets the "returned_count" field.
func (_u *GenerationEventUpdateOne) SetReturnedCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetReturnedCount()
	_u.mutation.SetReturnedCount(v)
	return _u
}

// SetNillableReturnedCount sets the "returned_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableReturnedCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetReturnedCount(*v)
	}
	return _u
}

// AddReturnedCount adds value to the "returned_count" field.
func (_u *GenerationEventUpdateOne) AddReturnedCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddReturnedCount(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *GenerationEventUpdateOne) SetModel(v string) *GenerationEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableModel(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenerationEventUpdateOne) SetLatencyMs(v int64) *GenerationEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableLatencyMs(v *int64) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenerationEventUpdateOne) AddLatencyMs(v int64) *GenerationEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdateOne) SetSuccess(v bool) *GenerationEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableSuccess(v *bool) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationEventUpdateOne) SetErrorMessage(v string) *GenerationEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableErrorMessage(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdateOne) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdateOne) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationEventUpdateOne) Select(field string, fields ...string) *GenerationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationEvent entity.
func (_u *GenerationEventUpdateOne) Save(ctx context.Context) (*GenerationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) SaveX(ctx context.Context) *GenerationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationEventUpdateOne) sqlSave(ctx context.Context) (_node *GenerationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationevent.FieldID)
		for _, f := range fields {
			if !generationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(generationevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitName(); ok {
		_spec.SetField(generationevent.FieldUnitName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(generationevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationevent.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generationevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedCount(); ok {
		_spec.SetField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedCount(); ok {
		_spec.AddField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReturnedCount(); ok {
		_spec.SetField(generationevent.FieldReturnedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReturnedCount(); ok {
		_spec.AddField(generationevent.FieldReturnedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(generationevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &GenerationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
