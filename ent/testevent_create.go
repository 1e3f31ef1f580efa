// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avinash/preptrack/ent/testevent"
)

// TestEventCreate is the builder for creating a TestEvent entity.
type TestEventCreate struct {
	config
	mutation *TestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TestEventCreate) SetSequence(v int64) *TestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TestEventCreate) SetTimestamp(v time.Time) *TestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableTimestamp(v *time.Time) *TestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TestEventCreate) SetUserID(v string) *TestEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTestName sets the "test_name" field.
func (_c *TestEventCreate) SetTestName(v string) *TestEventCreate {
	_c.mutation.SetTestName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *TestEventCreate) SetCategory(v string) *TestEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *TestEventCreate) SetDifficulty(v string) *TestEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *TestEventCreate) SetScore(v int) *TestEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *TestEventCreate) SetTotalScore(v int) *TestEventCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *TestEventCreate) SetAccuracy(v float64) *TestEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *TestEventCreate) SetDurationSecs(v int) *TestEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *TestEventCreate) SetTopics(v []string) *TestEventCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// Mutation returns the TestEventMutation object of the builder.
func (_c *TestEventCreate) Mutation() *TestEventMutation {
	return _c.mutation
}

// Save creates the TestEvent in the database.
func (_c *TestEventCreate) Save(ctx context.Context) (*TestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestEventCreate) SaveX(ctx context.Context) *TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := testevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TestEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := testevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestName(); !ok {
		return &ValidationError{Name: "test_name", err: errors.New(`ent: missing required field "TestEvent.test_name"`)}
	}
	if v, ok := _c.mutation.TestName(); ok {
		if err := testevent.TestNameValidator(v); err != nil {
			return &ValidationError{Name: "test_name", err: fmt.Errorf(`ent: validator failed for field "TestEvent.test_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "TestEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := testevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TestEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "TestEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := testevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "TestEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TestEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := testevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "TestEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "TestEvent.total_score"`)}
	}
	if v, ok := _c.mutation.TotalScore(); ok {
		if err := testevent.TotalScoreValidator(v); err != nil {
			return &ValidationError{Name: "total_score", err: fmt.Errorf(`ent: validator failed for field "TestEvent.total_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "TestEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "TestEvent.duration_secs"`)}
	}
	if v, ok := _c.mutation.DurationSecs(); ok {
		if err := testevent.DurationSecsValidator(v); err != nil {
			return &ValidationError{Name: "duration_secs", err: fmt.Errorf(`ent: validator failed for field "TestEvent.duration_secs": %w`, err)}
		}
	}
	return nil
}

func (_c *TestEventCreate) sqlSave(ctx context.Context) (*TestEvent, error) {
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

func (_c *TestEventCreate) createSpec() (*TestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testevent.Table, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(testevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(testevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(testevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TestName(); ok {
		_spec.SetField(testevent.FieldTestName, field.TypeString, value)
		_node.TestName = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(testevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(testevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(testevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(testevent.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(testevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(testevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(testevent.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	return _node, _spec
}

// TestEventCreateBulk is the builder for creating many TestEvent entities in bulk.
type TestEventCreateBulk struct {
	config
	err      error
	builders []*TestEventCreate
}

// Save creates the TestEvent entities in the database.
func (_c *TestEventCreateBulk) Save(ctx context.Context) ([]*TestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestEventMutation)
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
func (_c *TestEventCreateBulk) SaveX(ctx context.Context) []*TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
