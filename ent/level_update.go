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
	"github.com/google/uuid"
	"github.com/iamtheretronerd/levelup/ent/level"
	"github.com/iamtheretronerd/levelup/ent/predicate"
)

// LevelUpdate is the builder for updating Level entities.
type LevelUpdate struct {
	config
	hooks    []Hook
	mutation *LevelMutation
}

// Where appends a list predicates to the LevelUpdate builder.
func (_u *LevelUpdate) Where(ps ...predicate.Level) *LevelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJourneyID sets the "journey_id" field.
func (_u *LevelUpdate) SetJourneyID(v uuid.UUID) *LevelUpdate {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableJourneyID(v *uuid.UUID) *LevelUpdate {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetLevelNumber sets the "level_number" field.
func (_u *LevelUpdate) SetLevelNumber(v int) *LevelUpdate {
	_u.mutation.ResetLevelNumber()
	_u.mutation.SetLevelNumber(v)
	return _u
}

// SetNillableLevelNumber sets the "level_number" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableLevelNumber(v *int) *LevelUpdate {
	if v != nil {
		_u.SetLevelNumber(*v)
	}
	return _u
}

// AddLevelNumber adds value to the "level_number" field.
func (_u *LevelUpdate) AddLevelNumber(v int) *LevelUpdate {
	_u.mutation.AddLevelNumber(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LevelUpdate) SetCompleted(v bool) *LevelUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableCompleted(v *bool) *LevelUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (_u *LevelUpdate) SetDifficultyRating(v int) *LevelUpdate {
	_u.mutation.ResetDifficultyRating()
	_u.mutation.SetDifficultyRating(v)
	return _u
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableDifficultyRating(v *int) *LevelUpdate {
	if v != nil {
		_u.SetDifficultyRating(*v)
	}
	return _u
}

// AddDifficultyRating adds value to the "difficulty_rating" field.
func (_u *LevelUpdate) AddDifficultyRating(v int) *LevelUpdate {
	_u.mutation.AddDifficultyRating(v)
	return _u
}

// ClearDifficultyRating clears the value of the "difficulty_rating" field.
func (_u *LevelUpdate) ClearDifficultyRating() *LevelUpdate {
	_u.mutation.ClearDifficultyRating()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LevelUpdate) SetCompletedAt(v time.Time) *LevelUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableCompletedAt(v *time.Time) *LevelUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LevelUpdate) ClearCompletedAt() *LevelUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LevelMutation object of the builder.
func (_u *LevelUpdate) Mutation() *LevelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LevelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LevelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelUpdate) check() error {
	if v, ok := _u.mutation.LevelNumber(); ok {
		if err := level.LevelNumberValidator(v); err != nil {
			return &ValidationError{Name: "level_number", err: fmt.Errorf(`ent: validator failed for field "Level.level_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyRating(); ok {
		if err := level.DifficultyRatingValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_rating", err: fmt.Errorf(`ent: validator failed for field "Level.difficulty_rating": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(level.Table, level.Columns, sqlgraph.NewFieldSpec(level.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JourneyID(); ok {
		_spec.SetField(level.FieldJourneyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LevelNumber(); ok {
		_spec.SetField(level.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelNumber(); ok {
		_spec.AddField(level.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(level.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DifficultyRating(); ok {
		_spec.SetField(level.FieldDifficultyRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyRating(); ok {
		_spec.AddField(level.FieldDifficultyRating, field.TypeInt, value)
	}
	if _u.mutation.DifficultyRatingCleared() {
		_spec.ClearField(level.FieldDifficultyRating, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(level.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(level.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{level.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LevelUpdateOne is the builder for updating a single Level entity.
type LevelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LevelMutation
}

// SetJourneyID sets the "journey_id" field.
func (_u *LevelUpdateOne) SetJourneyID(v uuid.UUID) *LevelUpdateOne {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableJourneyID(v *uuid.UUID) *LevelUpdateOne {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetLevelNumber sets the "level_number" field.
func (_u *LevelUpdateOne) SetLevelNumber(v int) *LevelUpdateOne {
	_u.mutation.ResetLevelNumber()
	_u.mutation.SetLevelNumber(v)
	return _u
}

// SetNillableLevelNumber sets the "level_number" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableLevelNumber(v *int) *LevelUpdateOne {
	if v != nil {
		_u.SetLevelNumber(*v)
	}
	return _u
}

// AddLevelNumber adds value to the "level_number" field.
func (_u *LevelUpdateOne) AddLevelNumber(v int) *LevelUpdateOne {
	_u.mutation.AddLevelNumber(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LevelUpdateOne) SetCompleted(v bool) *LevelUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableCompleted(v *bool) *LevelUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (_u *LevelUpdateOne) SetDifficultyRating(v int) *LevelUpdateOne {
	_u.mutation.ResetDifficultyRating()
	_u.mutation.SetDifficultyRating(v)
	return _u
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableDifficultyRating(v *int) *LevelUpdateOne {
	if v != nil {
		_u.SetDifficultyRating(*v)
	}
	return _u
}

// AddDifficultyRating adds value to the "difficulty_rating" field.
func (_u *LevelUpdateOne) AddDifficultyRating(v int) *LevelUpdateOne {
	_u.mutation.AddDifficultyRating(v)
	return _u
}

// ClearDifficultyRating clears the value of the "difficulty_rating" field.
func (_u *LevelUpdateOne) ClearDifficultyRating() *LevelUpdateOne {
	_u.mutation.ClearDifficultyRating()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LevelUpdateOne) SetCompletedAt(v time.Time) *LevelUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableCompletedAt(v *time.Time) *LevelUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LevelUpdateOne) ClearCompletedAt() *LevelUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LevelMutation object of the builder.
func (_u *LevelUpdateOne) Mutation() *LevelMutation {
	return _u.mutation
}

// Where appends a list predicates to the LevelUpdate builder.
func (_u *LevelUpdateOne) Where(ps ...predicate.Level) *LevelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LevelUpdateOne) Select(field string, fields ...string) *LevelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Level entity.
func (_u *LevelUpdateOne) Save(ctx context.Context) (*Level, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelUpdateOne) SaveX(ctx context.Context) *Level {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LevelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelUpdateOne) check() error {
	if v, ok := _u.mutation.LevelNumber(); ok {
		if err := level.LevelNumberValidator(v); err != nil {
			return &ValidationError{Name: "level_number", err: fmt.Errorf(`ent: validator failed for field "Level.level_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyRating(); ok {
		if err := level.DifficultyRatingValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_rating", err: fmt.Errorf(`ent: validator failed for field "Level.difficulty_rating": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelUpdateOne) sqlSave(ctx context.Context) (_node *Level, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(level.Table, level.Columns, sqlgraph.NewFieldSpec(level.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Level.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, level.FieldID)
		for _, f := range fields {
			if !level.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != level.FieldID {
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
	if value, ok := _u.mutation.JourneyID(); ok {
		_spec.SetField(level.FieldJourneyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LevelNumber(); ok {
		_spec.SetField(level.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelNumber(); ok {
		_spec.AddField(level.FieldLevelNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(level.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DifficultyRating(); ok {
		_spec.SetField(level.FieldDifficultyRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyRating(); ok {
		_spec.AddField(level.FieldDifficultyRating, field.TypeInt, value)
	}
	if _u.mutation.DifficultyRatingCleared() {
		_spec.ClearField(level.FieldDifficultyRating, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(level.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(level.FieldCompletedAt, field.TypeTime)
	}
	_node = &Level{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{level.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
