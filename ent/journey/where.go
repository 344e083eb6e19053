// Code generated by ent, DO NOT EDIT.

package journey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iamtheretronerd/levelup/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUserID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldSkill, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldLevel, v))
}

// TimeCommitment applies equality check predicate on the "time_commitment" field. It's identical to TimeCommitmentEQ.
func TimeCommitment(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTimeCommitment, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldGoal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldUserID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldSkill, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldLevel, v))
}

// TimeCommitmentEQ applies the EQ predicate on the "time_commitment" field.
func TimeCommitmentEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTimeCommitment, v))
}

// TimeCommitmentNEQ applies the NEQ predicate on the "time_commitment" field.
func TimeCommitmentNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldTimeCommitment, v))
}

// TimeCommitmentIn applies the In predicate on the "time_commitment" field.
func TimeCommitmentIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldTimeCommitment, vs...))
}

// TimeCommitmentNotIn applies the NotIn predicate on the "time_commitment" field.
func TimeCommitmentNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldTimeCommitment, vs...))
}

// TimeCommitmentGT applies the GT predicate on the "time_commitment" field.
func TimeCommitmentGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldTimeCommitment, v))
}

// TimeCommitmentGTE applies the GTE predicate on the "time_commitment" field.
func TimeCommitmentGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldTimeCommitment, v))
}

// TimeCommitmentLT applies the LT predicate on the "time_commitment" field.
func TimeCommitmentLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldTimeCommitment, v))
}

// TimeCommitmentLTE applies the LTE predicate on the "time_commitment" field.
func TimeCommitmentLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldTimeCommitment, v))
}

// TimeCommitmentContains applies the Contains predicate on the "time_commitment" field.
func TimeCommitmentContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldTimeCommitment, v))
}

// TimeCommitmentHasPrefix applies the HasPrefix predicate on the "time_commitment" field.
func TimeCommitmentHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldTimeCommitment, v))
}

// TimeCommitmentHasSuffix applies the HasSuffix predicate on the "time_commitment" field.
func TimeCommitmentHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldTimeCommitment, v))
}

// TimeCommitmentIsNil applies the IsNil predicate on the "time_commitment" field.
func TimeCommitmentIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldTimeCommitment))
}

// TimeCommitmentNotNil applies the NotNil predicate on the "time_commitment" field.
func TimeCommitmentNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldTimeCommitment))
}

// TimeCommitmentEqualFold applies the EqualFold predicate on the "time_commitment" field.
func TimeCommitmentEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldTimeCommitment, v))
}

// TimeCommitmentContainsFold applies the ContainsFold predicate on the "time_commitment" field.
func TimeCommitmentContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldTimeCommitment, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalIsNil applies the IsNil predicate on the "goal" field.
func GoalIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldGoal))
}

// GoalNotNil applies the NotNil predicate on the "goal" field.
func GoalNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldGoal))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldGoal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.NotPredicates(p))
}
