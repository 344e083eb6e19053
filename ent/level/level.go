// Code generated by ent, DO NOT EDIT.

package level

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the level type in the database.
	Label = "level"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJourneyID holds the string denoting the journey_id field in the database.
	FieldJourneyID = "journey_id"
	// FieldLevelNumber holds the string denoting the level_number field in the database.
	FieldLevelNumber = "level_number"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldDifficultyRating holds the string denoting the difficulty_rating field in the database.
	FieldDifficultyRating = "difficulty_rating"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the level in the database.
	Table = "levels"
)

// Columns holds all SQL columns for level fields.
var Columns = []string{
	FieldID,
	FieldJourneyID,
	FieldLevelNumber,
	FieldTask,
	FieldCompleted,
	FieldDifficultyRating,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LevelNumberValidator is a validator for the "level_number" field. It is called by the builders before save.
	LevelNumberValidator func(int) error
	// TaskValidator is a validator for the "task" field. It is called by the builders before save.
	TaskValidator func(string) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DifficultyRatingValidator is a validator for the "difficulty_rating" field. It is called by the builders before save.
	DifficultyRatingValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Level queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJourneyID orders the results by the journey_id field.
func ByJourneyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyID, opts...).ToFunc()
}

// ByLevelNumber orders the results by the level_number field.
func ByLevelNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelNumber, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByDifficultyRating orders the results by the difficulty_rating field.
func ByDifficultyRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyRating, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
