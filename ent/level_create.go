// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/iamtheretronerd/levelup/ent/level"
)

// LevelCreate is the builder for creating a Level entity.
type LevelCreate struct {
	config
	mutation *LevelMutation
	hooks    []Hook
}

// SetJourneyID sets the "journey_id" field.
func (_c *LevelCreate) SetJourneyID(v uuid.UUID) *LevelCreate {
	_c.mutation.SetJourneyID(v)
	return _c
}

// SetLevelNumber sets the "level_number" field.
func (_c *LevelCreate) SetLevelNumber(v int) *LevelCreate {
	_c.mutation.SetLevelNumber(v)
	return _c
}

// SetTask sets the "task" field.
func (_c *LevelCreate) SetTask(v string) *LevelCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *LevelCreate) SetCompleted(v bool) *LevelCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *LevelCreate) SetNillableCompleted(v *bool) *LevelCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (_c *LevelCreate) SetDifficultyRating(v int) *LevelCreate {
	_c.mutation.SetDifficultyRating(v)
	return _c
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (_c *LevelCreate) SetNillableDifficultyRating(v *int) *LevelCreate {
	if v != nil {
		_c.SetDifficultyRating(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LevelCreate) SetCreatedAt(v time.Time) *LevelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LevelCreate) SetNillableCreatedAt(v *time.Time) *LevelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LevelCreate) SetCompletedAt(v time.Time) *LevelCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LevelCreate) SetNillableCompletedAt(v *time.Time) *LevelCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LevelCreate) SetID(v uuid.UUID) *LevelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LevelCreate) SetNillableID(v *uuid.UUID) *LevelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LevelMutation object of the builder.
func (_c *LevelCreate) Mutation() *LevelMutation {
	return _c.mutation
}

// Save creates the Level in the database.
func (_c *LevelCreate) Save(ctx context.Context) (*Level, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LevelCreate) SaveX(ctx context.Context) *Level {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LevelCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := level.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := level.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := level.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LevelCreate) check() error {
	if _, ok := _c.mutation.JourneyID(); !ok {
		return &ValidationError{Name: "journey_id", err: errors.New(`ent: missing required field "Level.journey_id"`)}
	}
	if _, ok := _c.mutation.LevelNumber(); !ok {
		return &ValidationError{Name: "level_number", err: errors.New(`ent: missing required field "Level.level_number"`)}
	}
	if v, ok := _c.mutation.LevelNumber(); ok {
		if err := level.LevelNumberValidator(v); err != nil {
			return &ValidationError{Name: "level_number", err: fmt.Errorf(`ent: validator failed for field "Level.level_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "Level.task"`)}
	}
	if v, ok := _c.mutation.Task(); ok {
		if err := level.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "Level.task": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Level.completed"`)}
	}
	if v, ok := _c.mutation.DifficultyRating(); ok {
		if err := level.DifficultyRatingValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_rating", err: fmt.Errorf(`ent: validator failed for field "Level.difficulty_rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Level.created_at"`)}
	}
	return nil
}

func (_c *LevelCreate) sqlSave(ctx context.Context) (*Level, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LevelCreate) createSpec() (*Level, *sqlgraph.CreateSpec) {
	var (
		_node = &Level{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(level.Table, sqlgraph.NewFieldSpec(level.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JourneyID(); ok {
		_spec.SetField(level.FieldJourneyID, field.TypeUUID, value)
		_node.JourneyID = value
	}
	if value, ok := _c.mutation.LevelNumber(); ok {
		_spec.SetField(level.FieldLevelNumber, field.TypeInt, value)
		_node.LevelNumber = value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(level.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(level.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.DifficultyRating(); ok {
		_spec.SetField(level.FieldDifficultyRating, field.TypeInt, value)
		_node.DifficultyRating = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(level.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(level.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// LevelCreateBulk is the builder for creating many Level entities in bulk.
type LevelCreateBulk struct {
	config
	err      error
	builders []*LevelCreate
}

// Save creates the Level entities in the database.
func (_c *LevelCreateBulk) Save(ctx context.Context) ([]*Level, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Level, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LevelMutation)
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
func (_c *LevelCreateBulk) SaveX(ctx context.Context) []*Level {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
