// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avinash/preptrack/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressRecordCreate) SetUserID(v string) *ProgressRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *ProgressRecordCreate) SetCurrentStreak(v int) *ProgressRecordCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCurrentStreak(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *ProgressRecordCreate) SetLongestStreak(v int) *ProgressRecordCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLongestStreak(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetLongestStreak(*v)
	}
	return _c
}

// SetLastActive sets the "last_active" field.
func (_c *ProgressRecordCreate) SetLastActive(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetLastActive(v)
	return _c
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastActive(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastActive(*v)
	}
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *ProgressRecordCreate) SetTotalPoints(v int) *ProgressRecordCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableTotalPoints(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetProblemsSolved sets the "problems_solved" field.
func (_c *ProgressRecordCreate) SetProblemsSolved(v int) *ProgressRecordCreate {
	_c.mutation.SetProblemsSolved(v)
	return _c
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableProblemsSolved(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetProblemsSolved(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *ProgressRecordCreate) SetSkills(v map[string]interface{}) *ProgressRecordCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetAnalytics sets the "analytics" field.
func (_c *ProgressRecordCreate) SetAnalytics(v map[string]interface{}) *ProgressRecordCreate {
	_c.mutation.SetAnalytics(v)
	return _c
}

// SetCareer sets the "career" field.
func (_c *ProgressRecordCreate) SetCareer(v map[string]interface{}) *ProgressRecordCreate {
	_c.mutation.SetCareer(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProgressRecordCreate) SetVersion(v int64) *ProgressRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableVersion(v *int64) *ProgressRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProgressRecordCreate) SetCreatedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCreatedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressRecordCreate) SetUpdatedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableUpdatedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := progressrecord.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		v := progressrecord.DefaultLongestStreak
		_c.mutation.SetLongestStreak(v)
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := progressrecord.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.ProblemsSolved(); !ok {
		v := progressrecord.DefaultProblemsSolved
		_c.mutation.SetProblemsSolved(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := progressrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := progressrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progressrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProgressRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "ProgressRecord.current_streak"`)}
	}
	if v, ok := _c.mutation.CurrentStreak(); ok {
		if err := progressrecord.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.current_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "ProgressRecord.longest_streak"`)}
	}
	if v, ok := _c.mutation.LongestStreak(); ok {
		if err := progressrecord.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.longest_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "ProgressRecord.total_points"`)}
	}
	if v, ok := _c.mutation.TotalPoints(); ok {
		if err := progressrecord.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.total_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemsSolved(); !ok {
		return &ValidationError{Name: "problems_solved", err: errors.New(`ent: missing required field "ProgressRecord.problems_solved"`)}
	}
	if v, ok := _c.mutation.ProblemsSolved(); ok {
		if err := progressrecord.ProblemsSolvedValidator(v); err != nil {
			return &ValidationError{Name: "problems_solved", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.problems_solved": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProgressRecord.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProgressRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressRecord.updated_at"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(progressrecord.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.LastActive(); ok {
		_spec.SetField(progressrecord.FieldLastActive, field.TypeTime, value)
		_node.LastActive = &value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(progressrecord.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.ProblemsSolved(); ok {
		_spec.SetField(progressrecord.FieldProblemsSolved, field.TypeInt, value)
		_node.ProblemsSolved = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(progressrecord.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Analytics(); ok {
		_spec.SetField(progressrecord.FieldAnalytics, field.TypeJSON, value)
		_node.Analytics = value
	}
	if value, ok := _c.mutation.Career(); ok {
		_spec.SetField(progressrecord.FieldCareer, field.TypeJSON, value)
		_node.Career = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(progressrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
