// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/generationevent"
)

// GenerationEventCreate is the builder for creating a GenerationEvent entity.
type GenerationEventCreate struct {
	config
	mutation *GenerationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GenerationEventCreate) SetSequence(v int64) *GenerationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GenerationEventCreate) SetTimestamp(v time.Time) *GenerationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableTimestamp(v *time.Time) *GenerationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *GenerationEventCreate) SetSubject(v string) *GenerationEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetUnitName sets the "unit_name" field.
func (_c *GenerationEventCreate) SetUnitName(v string) *GenerationEventCreate {
	_c.mutation.SetUnitName(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *GenerationEventCreate) SetTopics(v []string) *GenerationEventCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *GenerationEventCreate) SetDifficulty(v string) *GenerationEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetRequestedCount sets the "requested_count" field.
func (_c *GenerationEventCreate) SetRequestedCount(v int) *GenerationEventCreate {
	_c.mutation.SetRequestedCount(v)
	return _c
}

// SetReturnedCount sets the "returned_count" field.
func (_c *GenerationEventCreate) SetReturnedCount(v int) *GenerationEventCreate {
	_c.mutation.SetReturnedCount(v)
	return _c
}

// SetNillableReturnedCount sets the "returned_count" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableReturnedCount(v *int) *GenerationEventCreate {
	if v != nil {
		_c.SetReturnedCount(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *GenerationEventCreate) SetModel(v string) *GenerationEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableModel(v *string) *GenerationEventCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *GenerationEventCreate) SetLatencyMs(v int64) *GenerationEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableLatencyMs(v *int64) *GenerationEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *GenerationEventCreate) SetSuccess(v bool) *GenerationEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenerationEventCreate) SetErrorMessage(v string) *GenerationEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableErrorMessage(v *string) *GenerationEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_c *GenerationEventCreate) Mutation() *GenerationEventMutation {
	return _c.mutation
}

// Save creates the GenerationEvent in the database.
func (_c *GenerationEventCreate) Save(ctx context.Context) (*GenerationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationEventCreate) SaveX(ctx context.Context) *GenerationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := generationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ReturnedCount(); !ok {
		v := generationevent.DefaultReturnedCount
		_c.mutation.SetReturnedCount(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := generationevent.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := generationevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := generationevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GenerationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GenerationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "GenerationEvent.subject"`)}
	}
	if _, ok := _c.mutation.UnitName(); !ok {
		return &ValidationError{Name: "unit_name", err: errors.New(`ent: missing required field "GenerationEvent.unit_name"`)}
	}
	if _, ok := _c.mutation.Topics(); !ok {
		return &ValidationError{Name: "topics", err: errors.New(`ent: missing required field "GenerationEvent.topics"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "GenerationEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.RequestedCount(); !ok {
		return &ValidationError{Name: "requested_count", err: errors.New(`ent: missing required field "GenerationEvent.requested_count"`)}
	}
	if _, ok := _c.mutation.ReturnedCount(); !ok {
		return &ValidationError{Name: "returned_count", err: errors.New(`ent: missing required field "GenerationEvent.returned_count"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "GenerationEvent.model"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "GenerationEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "GenerationEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "GenerationEvent.error_message"`)}
	}
	return nil
}

func (_c *GenerationEventCreate) sqlSave(ctx context.Context) (*GenerationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenerationEventCreate) createSpec() (*GenerationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationevent.Table, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(generationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(generationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(generationevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.UnitName(); ok {
		_spec.SetField(generationevent.FieldUnitName, field.TypeString, value)
		_node.UnitName = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(generationevent.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(generationevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.RequestedCount(); ok {
		_spec.SetField(generationevent.FieldRequestedCount, field.TypeInt, value)
		_node.RequestedCount = value
	}
	if value, ok := _c.mutation.ReturnedCount(); ok {
		_spec.SetField(generationevent.FieldReturnedCount, field.TypeInt, value)
		_node.ReturnedCount = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(generationevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generationevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// GenerationEventCreateBulk is the builder for creating many GenerationEvent entities in bulk.
type GenerationEventCreateBulk struct {
	config
	err      error
	builders []*GenerationEventCreate
}

// Save creates the GenerationEvent entities in the database.
func (_c *GenerationEventCreateBulk) Save(ctx context.Context) ([]*GenerationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GenerationEventCreateBulk) SaveX(ctx context.Context) []*GenerationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
