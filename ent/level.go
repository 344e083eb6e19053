// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iamtheretronerd/levelup/ent/level"
)

// Level is the model entity for the Level schema.
type Level struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JourneyID holds the value of the "journey_id" field.
	JourneyID uuid.UUID `json:"journey_id,omitempty"`
	// LevelNumber holds the value of the "level_number" field.
	LevelNumber int `json:"level_number,omitempty"`
	// Generated task description, set once at creation
	Task string `json:"task,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Learner's 1-5 rating, absent until completion
	DifficultyRating *int `json:"difficulty_rating,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Level) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case level.FieldCompleted:
			values[i] = new(sql.NullBool)
		case level.FieldLevelNumber, level.FieldDifficultyRating:
			values[i] = new(sql.NullInt64)
		case level.FieldTask:
			values[i] = new(sql.NullString)
		case level.FieldCreatedAt, level.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case level.FieldID, level.FieldJourneyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Level fields.
func (_m *Level) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case level.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case level.FieldJourneyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field journey_id", values[i])
			} else if value != nil {
				_m.JourneyID = *value
			}
		case level.FieldLevelNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level_number", values[i])
			} else if value.Valid {
				_m.LevelNumber = int(value.Int64)
			}
		case level.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case level.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case level.FieldDifficultyRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_rating", values[i])
			} else if value.Valid {
				_m.DifficultyRating = new(int)
				*_m.DifficultyRating = int(value.Int64)
			}
		case level.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case level.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Level.
// This includes values selected through modifiers, order, etc.
func (_m *Level) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Level.
// Note that you need to call Level.Unwrap() before calling this method if this Level
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Level) Update() *LevelUpdateOne {
	return NewLevelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Level entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Level) Unwrap() *Level {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Level is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Level) String() string {
	var builder strings.Builder
	builder.WriteString("Level(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("journey_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JourneyID))
	builder.WriteString(", ")
	builder.WriteString("level_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelNumber))
	builder.WriteString(", ")
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	if v := _m.DifficultyRating; v != nil {
		builder.WriteString("difficulty_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Levels is a parsable slice of Level.
type Levels []*Level
