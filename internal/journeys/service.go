package journeys

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/progression"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// Service manages journey metadata. Journeys are plain documents; the
// progression engine reads them but never writes them.
type Service struct {
	repo store.JourneyRepo
	log  *logger.Logger
}

// NewService creates a journey service.
func NewService(repo store.JourneyRepo, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log.With("component", "journeys")}
}

// CreateInput carries the fields for a new journey.
type CreateInput struct {
	UserID         uuid.UUID
	Skill          string
	Level          string
	TimeCommitment string
	Goal           string
}

// Create validates and persists a new journey, returning it with its
// assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*store.Journey, error) {
	if in.UserID == uuid.Nil {
		return nil, &progression.ValidationError{Field: "userId", Reason: "required"}
	}
	if strings.TrimSpace(in.Skill) == "" {
		return nil, &progression.ValidationError{Field: "skill", Reason: "required"}
	}
	if strings.TrimSpace(in.Level) == "" {
		return nil, &progression.ValidationError{Field: "level", Reason: "required"}
	}

	j := &store.Journey{
		ID:             uuid.New(),
		UserID:         in.UserID,
		Skill:          in.Skill,
		Level:          in.Level,
		TimeCommitment: in.TimeCommitment,
		Goal:           in.Goal,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, &progression.PersistenceError{Op: "insert journey", Err: err}
	}

	s.log.Info("journey created", "journey_id", j.ID, "skill", j.Skill)
	return j, nil
}

// Get returns a journey by ID, or NotFoundError.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*store.Journey, error) {
	j, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, &progression.PersistenceError{Op: "read journey", Err: err}
	}
	if j == nil {
		return nil, &progression.NotFoundError{Resource: "journey", ID: id}
	}
	return j, nil
}

// List returns all journeys, optionally filtered to one user.
func (s *Service) List(ctx context.Context, userID *uuid.UUID) ([]*store.Journey, error) {
	out, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, &progression.PersistenceError{Op: "read journeys", Err: err}
	}
	return out, nil
}

// UpdateInput carries the mutable journey fields. UserID and CreatedAt
// are never updated through this path.
type UpdateInput struct {
	Skill          string
	Level          string
	TimeCommitment string
	Goal           string
}

// Update overwrites a journey's mutable fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) error {
	if strings.TrimSpace(in.Skill) == "" {
		return &progression.ValidationError{Field: "skill", Reason: "required"}
	}
	if strings.TrimSpace(in.Level) == "" {
		return &progression.ValidationError{Field: "level", Reason: "required"}
	}

	ok, err := s.repo.Update(ctx, &store.Journey{
		ID:             id,
		Skill:          in.Skill,
		Level:          in.Level,
		TimeCommitment: in.TimeCommitment,
		Goal:           in.Goal,
	})
	if err != nil {
		return &progression.PersistenceError{Op: "update journey", Err: err}
	}
	if !ok {
		return &progression.NotFoundError{Resource: "journey", ID: id}
	}
	return nil
}

// Delete removes a journey.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return &progression.PersistenceError{Op: "delete journey", Err: err}
	}
	if !ok {
		return &progression.NotFoundError{Resource: "journey", ID: id}
	}
	s.log.Info("journey deleted", "journey_id", id)
	return nil
}
