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
	"github.com/iamtheretronerd/levelup/ent/journey"
	"github.com/iamtheretronerd/levelup/ent/predicate"
)

// JourneyUpdate is the builder for updating Journey entities.
type JourneyUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyMutation
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdate) Where(ps ...predicate.Journey) *JourneyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JourneyUpdate) SetUserID(v uuid.UUID) *JourneyUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableUserID(v *uuid.UUID) *JourneyUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *JourneyUpdate) SetSkill(v string) *JourneyUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableSkill(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *JourneyUpdate) SetLevel(v string) *JourneyUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableLevel(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTimeCommitment sets the "time_commitment" field.
func (_u *JourneyUpdate) SetTimeCommitment(v string) *JourneyUpdate {
	_u.mutation.SetTimeCommitment(v)
	return _u
}

// SetNillableTimeCommitment sets the "time_commitment" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableTimeCommitment(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetTimeCommitment(*v)
	}
	return _u
}

// ClearTimeCommitment clears the value of the "time_commitment" field.
func (_u *JourneyUpdate) ClearTimeCommitment() *JourneyUpdate {
	_u.mutation.ClearTimeCommitment()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *JourneyUpdate) SetGoal(v string) *JourneyUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableGoal(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *JourneyUpdate) ClearGoal() *JourneyUpdate {
	_u.mutation.ClearGoal()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JourneyUpdate) SetUpdatedAt(v time.Time) *JourneyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdate) Mutation() *JourneyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JourneyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := journey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyUpdate) check() error {
	if v, ok := _u.mutation.Skill(); ok {
		if err := journey.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Journey.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := journey.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Journey.level": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(journey.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(journey.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(journey.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeCommitment(); ok {
		_spec.SetField(journey.FieldTimeCommitment, field.TypeString, value)
	}
	if _u.mutation.TimeCommitmentCleared() {
		_spec.ClearField(journey.FieldTimeCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(journey.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(journey.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(journey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyUpdateOne is the builder for updating a single Journey entity.
type JourneyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyMutation
}

// SetUserID sets the "user_id" field.
func (_u *JourneyUpdateOne) SetUserID(v uuid.UUID) *JourneyUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableUserID(v *uuid.UUID) *JourneyUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *JourneyUpdateOne) SetSkill(v string) *JourneyUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableSkill(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *JourneyUpdateOne) SetLevel(v string) *JourneyUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableLevel(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTimeCommitment sets the "time_commitment" field.
func (_u *JourneyUpdateOne) SetTimeCommitment(v string) *JourneyUpdateOne {
	_u.mutation.SetTimeCommitment(v)
	return _u
}

// SetNillableTimeCommitment sets the "time_commitment" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableTimeCommitment(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetTimeCommitment(*v)
	}
	return _u
}

// ClearTimeCommitment clears the value of the "time_commitment" field.
func (_u *JourneyUpdateOne) ClearTimeCommitment() *JourneyUpdateOne {
	_u.mutation.ClearTimeCommitment()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *JourneyUpdateOne) SetGoal(v string) *JourneyUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableGoal(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *JourneyUpdateOne) ClearGoal() *JourneyUpdateOne {
	_u.mutation.ClearGoal()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JourneyUpdateOne) SetUpdatedAt(v time.Time) *JourneyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdateOne) Mutation() *JourneyMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdateOne) Where(ps ...predicate.Journey) *JourneyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyUpdateOne) Select(field string, fields ...string) *JourneyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Journey entity.
func (_u *JourneyUpdateOne) Save(ctx context.Context) (*Journey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdateOne) SaveX(ctx context.Context) *Journey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JourneyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := journey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyUpdateOne) check() error {
	if v, ok := _u.mutation.Skill(); ok {
		if err := journey.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Journey.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := journey.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Journey.level": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyUpdateOne) sqlSave(ctx context.Context) (_node *Journey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Journey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journey.FieldID)
		for _, f := range fields {
			if !journey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journey.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(journey.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(journey.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(journey.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeCommitment(); ok {
		_spec.SetField(journey.FieldTimeCommitment, field.TypeString, value)
	}
	if _u.mutation.TimeCommitmentCleared() {
		_spec.ClearField(journey.FieldTimeCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(journey.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(journey.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(journey.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Journey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
