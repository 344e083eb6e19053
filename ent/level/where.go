// Code generated by ent, DO NOT EDIT.

package level

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iamtheretronerd/levelup/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldID, id))
}

// JourneyID applies equality check predicate on the "journey_id" field. It's identical to JourneyIDEQ.
func JourneyID(v uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldJourneyID, v))
}

// LevelNumber applies equality check predicate on the "level_number" field. It's identical to LevelNumberEQ.
func LevelNumber(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldLevelNumber, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldTask, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldCompleted, v))
}

// DifficultyRating applies equality check predicate on the "difficulty_rating" field. It's identical to DifficultyRatingEQ.
func DifficultyRating(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldDifficultyRating, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldCompletedAt, v))
}

// JourneyIDEQ applies the EQ predicate on the "journey_id" field.
func JourneyIDEQ(v uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldJourneyID, v))
}

// JourneyIDNEQ applies the NEQ predicate on the "journey_id" field.
func JourneyIDNEQ(v uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldJourneyID, v))
}

// JourneyIDIn applies the In predicate on the "journey_id" field.
func JourneyIDIn(vs ...uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldJourneyID, vs...))
}

// JourneyIDNotIn applies the NotIn predicate on the "journey_id" field.
func JourneyIDNotIn(vs ...uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldJourneyID, vs...))
}

// JourneyIDGT applies the GT predicate on the "journey_id" field.
func JourneyIDGT(v uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldJourneyID, v))
}

// JourneyIDGTE applies the GTE predicate on the "journey_id" field.
func JourneyIDGTE(v uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldJourneyID, v))
}

// JourneyIDLT applies the LT predicate on the "journey_id" field.
func JourneyIDLT(v uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldJourneyID, v))
}

// JourneyIDLTE applies the LTE predicate on the "journey_id" field.
func JourneyIDLTE(v uuid.UUID) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldJourneyID, v))
}

// LevelNumberEQ applies the EQ predicate on the "level_number" field.
func LevelNumberEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldLevelNumber, v))
}

// LevelNumberNEQ applies the NEQ predicate on the "level_number" field.
func LevelNumberNEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldLevelNumber, v))
}

// LevelNumberIn applies the In predicate on the "level_number" field.
func LevelNumberIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldLevelNumber, vs...))
}

// LevelNumberNotIn applies the NotIn predicate on the "level_number" field.
func LevelNumberNotIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldLevelNumber, vs...))
}

// LevelNumberGT applies the GT predicate on the "level_number" field.
func LevelNumberGT(v int) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldLevelNumber, v))
}

// LevelNumberGTE applies the GTE predicate on the "level_number" field.
func LevelNumberGTE(v int) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldLevelNumber, v))
}

// LevelNumberLT applies the LT predicate on the "level_number" field.
func LevelNumberLT(v int) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldLevelNumber, v))
}

// LevelNumberLTE applies the LTE predicate on the "level_number" field.
func LevelNumberLTE(v int) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldLevelNumber, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.Level {
	return predicate.Level(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.Level {
	return predicate.Level(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.Level {
	return predicate.Level(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.Level {
	return predicate.Level(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.Level {
	return predicate.Level(sql.FieldContainsFold(FieldTask, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldCompleted, v))
}

// DifficultyRatingEQ applies the EQ predicate on the "difficulty_rating" field.
func DifficultyRatingEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldDifficultyRating, v))
}

// DifficultyRatingNEQ applies the NEQ predicate on the "difficulty_rating" field.
func DifficultyRatingNEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldDifficultyRating, v))
}

// DifficultyRatingIn applies the In predicate on the "difficulty_rating" field.
func DifficultyRatingIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingNotIn applies the NotIn predicate on the "difficulty_rating" field.
func DifficultyRatingNotIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingGT applies the GT predicate on the "difficulty_rating" field.
func DifficultyRatingGT(v int) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldDifficultyRating, v))
}

// DifficultyRatingGTE applies the GTE predicate on the "difficulty_rating" field.
func DifficultyRatingGTE(v int) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldDifficultyRating, v))
}

// DifficultyRatingLT applies the LT predicate on the "difficulty_rating" field.
func DifficultyRatingLT(v int) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldDifficultyRating, v))
}

// DifficultyRatingLTE applies the LTE predicate on the "difficulty_rating" field.
func DifficultyRatingLTE(v int) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldDifficultyRating, v))
}

// DifficultyRatingIsNil applies the IsNil predicate on the "difficulty_rating" field.
func DifficultyRatingIsNil() predicate.Level {
	return predicate.Level(sql.FieldIsNull(FieldDifficultyRating))
}

// DifficultyRatingNotNil applies the NotNil predicate on the "difficulty_rating" field.
func DifficultyRatingNotNil() predicate.Level {
	return predicate.Level(sql.FieldNotNull(FieldDifficultyRating))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Level {
	return predicate.Level(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Level {
	return predicate.Level(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Level) predicate.Level {
	return predicate.Level(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Level) predicate.Level {
	return predicate.Level(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Level) predicate.Level {
	return predicate.Level(sql.NotPredicates(p))
}
