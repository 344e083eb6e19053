package progression

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// History returns all of a journey's levels ascending by levelNumber,
// with total and completed counts. Used for progress displays, not for
// progression decisions.
func (e *Engine) History(ctx context.Context, journeyID uuid.UUID) (*History, error) {
	if journeyID == uuid.Nil {
		return nil, &ValidationError{Field: "journeyId", Reason: "required"}
	}

	levels, err := e.levels.ByJourney(ctx, journeyID)
	if err != nil {
		return nil, &PersistenceError{Op: "read levels", Err: err}
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].LevelNumber < levels[j].LevelNumber
	})

	completed := 0
	for _, l := range levels {
		if l.Completed {
			completed++
		}
	}

	return &History{
		Levels:    levels,
		Total:     len(levels),
		Completed: completed,
	}, nil
}
