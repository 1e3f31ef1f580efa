// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avinash/preptrack/ent/achievement"
	"github.com/avinash/preptrack/ent/predicate"
)

// AchievementUpdate is the builder for updating Achievement entities.
type AchievementUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementMutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdate) Where(ps ...predicate.Achievement) *AchievementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AchievementUpdate) SetName(v string) *AchievementUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableName(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AchievementUpdate) SetCategory(v string) *AchievementUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableCategory(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *AchievementUpdate) SetRarity(v string) *AchievementUpdate {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableRarity(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *AchievementUpdate) SetPoints(v int) *AchievementUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillablePoints(v *int) *AchievementUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AchievementUpdate) AddPoints(v int) *AchievementUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AchievementUpdate) SetProgress(v float64) *AchievementUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableProgress(v *float64) *AchievementUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AchievementUpdate) AddProgress(v float64) *AchievementUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *AchievementUpdate) SetEarnedAt(v time.Time) *AchievementUpdate {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableEarnedAt(v *time.Time) *AchievementUpdate {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// ClearEarnedAt clears the value of the "earned_at" field.
func (_u *AchievementUpdate) ClearEarnedAt() *AchievementUpdate {
	_u.mutation.ClearEarnedAt()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AchievementUpdate) SetIsActive(v bool) *AchievementUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableIsActive(v *bool) *AchievementUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AchievementUpdate) SetUpdatedAt(v time.Time) *AchievementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdate) Mutation() *AchievementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AchievementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := achievement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := achievement.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Achievement.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := achievement.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Achievement.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := achievement.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "Achievement.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := achievement.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Achievement.points": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(achievement.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(achievement.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(achievement.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(achievement.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
	}
	if _u.mutation.EarnedAtCleared() {
		_spec.ClearField(achievement.FieldEarnedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(achievement.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(achievement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementUpdateOne is the builder for updating a single Achievement entity.
type AchievementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementMutation
}

// SetName sets the "name" field.
func (_u *AchievementUpdateOne) SetName(v string) *AchievementUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableName(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AchievementUpdateOne) SetCategory(v string) *AchievementUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableCategory(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *AchievementUpdateOne) SetRarity(v string) *AchievementUpdateOne {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableRarity(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *AchievementUpdateOne) SetPoints(v int) *AchievementUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillablePoints(v *int) *AchievementUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AchievementUpdateOne) AddPoints(v int) *AchievementUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AchievementUpdateOne) SetProgress(v float64) *AchievementUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableProgress(v *float64) *AchievementUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AchievementUpdateOne) AddProgress(v float64) *AchievementUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *AchievementUpdateOne) SetEarnedAt(v time.Time) *AchievementUpdateOne {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableEarnedAt(v *time.Time) *AchievementUpdateOne {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// ClearEarnedAt clears the value of the "earned_at" field.
func (_u *AchievementUpdateOne) ClearEarnedAt() *AchievementUpdateOne {
	_u.mutation.ClearEarnedAt()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AchievementUpdateOne) SetIsActive(v bool) *AchievementUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableIsActive(v *bool) *AchievementUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AchievementUpdateOne) SetUpdatedAt(v time.Time) *AchievementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdateOne) Mutation() *AchievementMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdateOne) Where(ps ...predicate.Achievement) *AchievementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementUpdateOne) Select(field string, fields ...string) *AchievementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Achievement entity.
func (_u *AchievementUpdateOne) Save(ctx context.Context) (*Achievement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdateOne) SaveX(ctx context.Context) *Achievement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AchievementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := achievement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := achievement.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Achievement.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := achievement.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Achievement.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := achievement.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "Achievement.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := achievement.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Achievement.points": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdateOne) sqlSave(ctx context.Context) (_node *Achievement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Achievement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievement.FieldID)
		for _, f := range fields {
			if !achievement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievement.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(achievement.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(achievement.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(achievement.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(achievement.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
	}
	if _u.mutation.EarnedAtCleared() {
		_spec.ClearField(achievement.FieldEarnedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(achievement.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(achievement.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Achievement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
