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
	"github.com/avinash/preptrack/ent/predicate"
	"github.com/avinash/preptrack/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProgressRecordUpdate) SetCurrentStreak(v int) *ProgressRecordUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCurrentStreak(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProgressRecordUpdate) AddCurrentStreak(v int) *ProgressRecordUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *ProgressRecordUpdate) SetLongestStreak(v int) *ProgressRecordUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLongestStreak(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *ProgressRecordUpdate) AddLongestStreak(v int) *ProgressRecordUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProgressRecordUpdate) SetLastActive(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastActive(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *ProgressRecordUpdate) ClearLastActive() *ProgressRecordUpdate {
	_u.mutation.ClearLastActive()
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *ProgressRecordUpdate) SetTotalPoints(v int) *ProgressRecordUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTotalPoints(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *ProgressRecordUpdate) AddTotalPoints(v int) *ProgressRecordUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *ProgressRecordUpdate) SetProblemsSolved(v int) *ProgressRecordUpdate {
	_u.mutation.ResetProblemsSolved()
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableProblemsSolved(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// AddProblemsSolved adds value to the "problems_solved" field.
func (_u *ProgressRecordUpdate) AddProblemsSolved(v int) *ProgressRecordUpdate {
	_u.mutation.AddProblemsSolved(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ProgressRecordUpdate) SetSkills(v map[string]interface{}) *ProgressRecordUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ProgressRecordUpdate) ClearSkills() *ProgressRecordUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetAnalytics sets the "analytics" field.
func (_u *ProgressRecordUpdate) SetAnalytics(v map[string]interface{}) *ProgressRecordUpdate {
	_u.mutation.SetAnalytics(v)
	return _u
}

// ClearAnalytics clears the value of the "analytics" field.
func (_u *ProgressRecordUpdate) ClearAnalytics() *ProgressRecordUpdate {
	_u.mutation.ClearAnalytics()
	return _u
}

// SetCareer sets the "career" field.
func (_u *ProgressRecordUpdate) SetCareer(v map[string]interface{}) *ProgressRecordUpdate {
	_u.mutation.SetCareer(v)
	return _u
}

// ClearCareer clears the value of the "career" field.
func (_u *ProgressRecordUpdate) ClearCareer() *ProgressRecordUpdate {
	_u.mutation.ClearCareer()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdate) SetVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableVersion(v *int64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdate) AddVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdate) SetUpdatedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := progressrecord.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := progressrecord.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.longest_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := progressrecord.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemsSolved(); ok {
		if err := progressrecord.ProblemsSolvedValidator(v); err != nil {
			return &ValidationError{Name: "problems_solved", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.problems_solved": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(progressrecord.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(progressrecord.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(progressrecord.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(progressrecord.FieldLastActive, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(progressrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(progressrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(progressrecord.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsSolved(); ok {
		_spec.AddField(progressrecord.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(progressrecord.FieldSkills, field.TypeJSON, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(progressrecord.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Analytics(); ok {
		_spec.SetField(progressrecord.FieldAnalytics, field.TypeJSON, value)
	}
	if _u.mutation.AnalyticsCleared() {
		_spec.ClearField(progressrecord.FieldAnalytics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Career(); ok {
		_spec.SetField(progressrecord.FieldCareer, field.TypeJSON, value)
	}
	if _u.mutation.CareerCleared() {
		_spec.ClearField(progressrecord.FieldCareer, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProgressRecordUpdateOne) SetCurrentStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCurrentStreak(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProgressRecordUpdateOne) AddCurrentStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *ProgressRecordUpdateOne) SetLongestStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLongestStreak(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *ProgressRecordUpdateOne) AddLongestStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProgressRecordUpdateOne) SetLastActive(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastActive(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *ProgressRecordUpdateOne) ClearLastActive() *ProgressRecordUpdateOne {
	_u.mutation.ClearLastActive()
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *ProgressRecordUpdateOne) SetTotalPoints(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTotalPoints(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *ProgressRecordUpdateOne) AddTotalPoints(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *ProgressRecordUpdateOne) SetProblemsSolved(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetProblemsSolved()
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableProblemsSolved(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// AddProblemsSolved adds value to the "problems_solved" field.
func (_u *ProgressRecordUpdateOne) AddProblemsSolved(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddProblemsSolved(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ProgressRecordUpdateOne) SetSkills(v map[string]interface{}) *ProgressRecordUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ProgressRecordUpdateOne) ClearSkills() *ProgressRecordUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetAnalytics sets the "analytics" field.
func (_u *ProgressRecordUpdateOne) SetAnalytics(v map[string]interface{}) *ProgressRecordUpdateOne {
	_u.mutation.SetAnalytics(v)
	return _u
}

// ClearAnalytics clears the value of the "analytics" field.
func (_u *ProgressRecordUpdateOne) ClearAnalytics() *ProgressRecordUpdateOne {
	_u.mutation.ClearAnalytics()
	return _u
}

// SetCareer sets the "career" field.
func (_u *ProgressRecordUpdateOne) SetCareer(v map[string]interface{}) *ProgressRecordUpdateOne {
	_u.mutation.SetCareer(v)
	return _u
}

// ClearCareer clears the value of the "career" field.
func (_u *ProgressRecordUpdateOne) ClearCareer() *ProgressRecordUpdateOne {
	_u.mutation.ClearCareer()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdateOne) SetVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableVersion(v *int64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdateOne) AddVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdateOne) SetUpdatedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := progressrecord.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := progressrecord.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.longest_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := progressrecord.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemsSolved(); ok {
		if err := progressrecord.ProblemsSolvedValidator(v); err != nil {
			return &ValidationError{Name: "problems_solved", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.problems_solved": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(progressrecord.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(progressrecord.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(progressrecord.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(progressrecord.FieldLastActive, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(progressrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(progressrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(progressrecord.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsSolved(); ok {
		_spec.AddField(progressrecord.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(progressrecord.FieldSkills, field.TypeJSON, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(progressrecord.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Analytics(); ok {
		_spec.SetField(progressrecord.FieldAnalytics, field.TypeJSON, value)
	}
	if _u.mutation.AnalyticsCleared() {
		_spec.ClearField(progressrecord.FieldAnalytics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Career(); ok {
		_spec.SetField(progressrecord.FieldCareer, field.TypeJSON, value)
	}
	if _u.mutation.CareerCleared() {
		_spec.ClearField(progressrecord.FieldCareer, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
