package progression

import (
	"context"

	"github.com/google/uuid"
)

// ResolveStatus reports the journey's progression position. Read-only.
func (e *Engine) ResolveStatus(ctx context.Context, journeyID uuid.UUID) (*Status, error) {
	if journeyID == uuid.Nil {
		return nil, &ValidationError{Field: "journeyId", Reason: "required"}
	}

	levels, err := e.levels.ByJourney(ctx, journeyID)
	if err != nil {
		return nil, &PersistenceError{Op: "read levels", Err: err}
	}

	latest, err := latestOf(journeyID, levels)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &Status{State: StateNoLevelYet}, nil
	}

	if latest.Completed {
		return &Status{State: StateNeedsNewLevel, Current: latest}, nil
	}
	return &Status{State: StatePending, Current: latest}, nil
}
