// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/iamtheretronerd/levelup/ent/journey"
	"github.com/iamtheretronerd/levelup/ent/level"
	"github.com/iamtheretronerd/levelup/ent/schema"
	"github.com/iamtheretronerd/levelup/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	journeyFields := schema.Journey{}.Fields()
	_ = journeyFields
	// journeyDescSkill is the schema descriptor for skill field.
	journeyDescSkill := journeyFields[2].Descriptor()
	// journey.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	journey.SkillValidator = journeyDescSkill.Validators[0].(func(string) error)
	// journeyDescLevel is the schema descriptor for level field.
	journeyDescLevel := journeyFields[3].Descriptor()
	// journey.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	journey.LevelValidator = journeyDescLevel.Validators[0].(func(string) error)
	// journeyDescCreatedAt is the schema descriptor for created_at field.
	journeyDescCreatedAt := journeyFields[6].Descriptor()
	// journey.DefaultCreatedAt holds the default value on creation for the created_at field.
	journey.DefaultCreatedAt = journeyDescCreatedAt.Default.(func() time.Time)
	// journeyDescUpdatedAt is the schema descriptor for updated_at field.
	journeyDescUpdatedAt := journeyFields[7].Descriptor()
	// journey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	journey.DefaultUpdatedAt = journeyDescUpdatedAt.Default.(func() time.Time)
	// journey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	journey.UpdateDefaultUpdatedAt = journeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// journeyDescID is the schema descriptor for id field.
	journeyDescID := journeyFields[0].Descriptor()
	// journey.DefaultID holds the default value on creation for the id field.
	journey.DefaultID = journeyDescID.Default.(func() uuid.UUID)
	levelFields := schema.Level{}.Fields()
	_ = levelFields
	// levelDescLevelNumber is the schema descriptor for level_number field.
	levelDescLevelNumber := levelFields[2].Descriptor()
	// level.LevelNumberValidator is a validator for the "level_number" field. It is called by the builders before save.
	level.LevelNumberValidator = levelDescLevelNumber.Validators[0].(func(int) error)
	// levelDescTask is the schema descriptor for task field.
	levelDescTask := levelFields[3].Descriptor()
	// level.TaskValidator is a validator for the "task" field. It is called by the builders before save.
	level.TaskValidator = levelDescTask.Validators[0].(func(string) error)
	// levelDescCompleted is the schema descriptor for completed field.
	levelDescCompleted := levelFields[4].Descriptor()
	// level.DefaultCompleted holds the default value on creation for the completed field.
	level.DefaultCompleted = levelDescCompleted.Default.(bool)
	// levelDescDifficultyRating is the schema descriptor for difficulty_rating field.
	levelDescDifficultyRating := levelFields[5].Descriptor()
	// level.DifficultyRatingValidator is a validator for the "difficulty_rating" field. It is called by the builders before save.
	level.DifficultyRatingValidator = func() func(int) error {
		validators := levelDescDifficultyRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty_rating int) error {
			for _, fn := range fns {
				if err := fn(difficulty_rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// levelDescCreatedAt is the schema descriptor for created_at field.
	levelDescCreatedAt := levelFields[6].Descriptor()
	// level.DefaultCreatedAt holds the default value on creation for the created_at field.
	level.DefaultCreatedAt = levelDescCreatedAt.Default.(func() time.Time)
	// levelDescID is the schema descriptor for id field.
	levelDescID := levelFields[0].Descriptor()
	// level.DefaultID holds the default value on creation for the id field.
	level.DefaultID = levelDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPassword is the schema descriptor for password field.
	userDescPassword := userFields[3].Descriptor()
	// user.PasswordValidator is a validator for the "password" field. It is called by the builders before save.
	user.PasswordValidator = userDescPassword.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
