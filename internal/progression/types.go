package progression

import (
	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/store"
)

// State classifies a journey's progression position.
type State string

const (
	// StateNoLevelYet means no levels exist for the journey.
	StateNoLevelYet State = "no_level_yet"

	// StatePending means the most recent level is still being worked on.
	StatePending State = "pending"

	// StateNeedsNewLevel means the most recent level is completed and a
	// new one must be generated before the learner can continue.
	StateNeedsNewLevel State = "needs_new_level"
)

// Status is the resolved progression position of a journey. Current is
// nil for StateNoLevelYet; for StateNeedsNewLevel it holds the last,
// completed level.
type Status struct {
	State   State
	Current *store.Level
}

// GenerateInput carries the journey attributes needed to generate the
// next level.
type GenerateInput struct {
	JourneyID      uuid.UUID
	Skill          string
	Level          string
	TimeCommitment string
	Goal           string
}

// History is a journey's full level list with derived progress counts.
type History struct {
	Levels    []*store.Level
	Total     int
	Completed int
}
