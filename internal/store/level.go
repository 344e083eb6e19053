package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/ent"
	"github.com/iamtheretronerd/levelup/ent/level"
)

// levelRepo implements LevelRepo using the ent client.
type levelRepo struct {
	client *ent.Client
}

func (r *levelRepo) ByJourney(ctx context.Context, journeyID uuid.UUID) ([]*Level, error) {
	rows, err := r.client.Level.Query().
		Where(level.JourneyID(journeyID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query levels: %w", err)
	}

	out := make([]*Level, len(rows))
	for i, row := range rows {
		out[i] = entLevelToLevel(row)
	}
	return out, nil
}

func (r *levelRepo) ByID(ctx context.Context, id uuid.UUID) (*Level, error) {
	row, err := r.client.Level.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get level: %w", err)
	}
	return entLevelToLevel(row), nil
}

func (r *levelRepo) Insert(ctx context.Context, l *Level) error {
	_, err := r.client.Level.Create().
		SetID(l.ID).
		SetJourneyID(l.JourneyID).
		SetLevelNumber(l.LevelNumber).
		SetTask(l.Task).
		SetCompleted(l.Completed).
		SetCreatedAt(l.CreatedAt).
		Save(ctx)
	if err != nil {
		// The unique (journey_id, level_number) index rejected the row:
		// a concurrent insert won the slot.
		if ent.IsConstraintError(err) {
			return ErrDuplicateLevel
		}
		return fmt.Errorf("insert level: %w", err)
	}
	return nil
}

func (r *levelRepo) Complete(ctx context.Context, id uuid.UUID, rating int, at time.Time) (bool, error) {
	n, err := r.client.Level.Update().
		Where(
			level.ID(id),
			level.Completed(false),
		).
		SetCompleted(true).
		SetDifficultyRating(rating).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("complete level: %w", err)
	}
	return n > 0, nil
}

// entLevelToLevel converts an ent Level to a store Level.
func entLevelToLevel(row *ent.Level) *Level {
	return &Level{
		ID:               row.ID,
		JourneyID:        row.JourneyID,
		LevelNumber:      row.LevelNumber,
		Task:             row.Task,
		Completed:        row.Completed,
		DifficultyRating: row.DifficultyRating,
		CreatedAt:        row.CreatedAt,
		CompletedAt:      row.CompletedAt,
	}
}
