package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/ent"
	"github.com/iamtheretronerd/levelup/ent/journey"
)

// journeyRepo implements JourneyRepo using the ent client.
type journeyRepo struct {
	client *ent.Client
}

func (r *journeyRepo) Create(ctx context.Context, j *Journey) error {
	row, err := r.client.Journey.Create().
		SetID(j.ID).
		SetUserID(j.UserID).
		SetSkill(j.Skill).
		SetLevel(j.Level).
		SetTimeCommitment(j.TimeCommitment).
		SetGoal(j.Goal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert journey: %w", err)
	}
	j.CreatedAt = row.CreatedAt
	j.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *journeyRepo) ByID(ctx context.Context, id uuid.UUID) (*Journey, error) {
	row, err := r.client.Journey.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journey: %w", err)
	}
	return entJourneyToJourney(row), nil
}

func (r *journeyRepo) List(ctx context.Context, userID *uuid.UUID) ([]*Journey, error) {
	q := r.client.Journey.Query()
	if userID != nil {
		q = q.Where(journey.UserID(*userID))
	}
	rows, err := q.Order(ent.Desc(journey.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query journeys: %w", err)
	}

	out := make([]*Journey, len(rows))
	for i, row := range rows {
		out[i] = entJourneyToJourney(row)
	}
	return out, nil
}

func (r *journeyRepo) Update(ctx context.Context, j *Journey) (bool, error) {
	n, err := r.client.Journey.Update().
		Where(journey.ID(j.ID)).
		SetSkill(j.Skill).
		SetLevel(j.Level).
		SetTimeCommitment(j.TimeCommitment).
		SetGoal(j.Goal).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update journey: %w", err)
	}
	return n > 0, nil
}

func (r *journeyRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.Journey.Delete().
		Where(journey.ID(id)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete journey: %w", err)
	}
	return n > 0, nil
}

// entJourneyToJourney converts an ent Journey to a store Journey.
func entJourneyToJourney(row *ent.Journey) *Journey {
	return &Journey{
		ID:             row.ID,
		UserID:         row.UserID,
		Skill:          row.Skill,
		Level:          row.Level,
		TimeCommitment: row.TimeCommitment,
		Goal:           row.Goal,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
