package journeys

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/progression"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// fakeJourneyRepo is an in-memory store.JourneyRepo.
type fakeJourneyRepo struct {
	journeys map[uuid.UUID]*store.Journey
	err      error
}

func newFakeJourneyRepo() *fakeJourneyRepo {
	return &fakeJourneyRepo{journeys: make(map[uuid.UUID]*store.Journey)}
}

func (r *fakeJourneyRepo) Create(_ context.Context, j *store.Journey) error {
	if r.err != nil {
		return r.err
	}
	cp := *j
	r.journeys[j.ID] = &cp
	return nil
}

func (r *fakeJourneyRepo) ByID(_ context.Context, id uuid.UUID) (*store.Journey, error) {
	if r.err != nil {
		return nil, r.err
	}
	j, ok := r.journeys[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJourneyRepo) List(_ context.Context, userID *uuid.UUID) ([]*store.Journey, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*store.Journey
	for _, j := range r.journeys {
		if userID != nil && j.UserID != *userID {
			continue
		}
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeJourneyRepo) Update(_ context.Context, j *store.Journey) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	existing, ok := r.journeys[j.ID]
	if !ok {
		return false, nil
	}
	existing.Skill = j.Skill
	existing.Level = j.Level
	existing.TimeCommitment = j.TimeCommitment
	existing.Goal = j.Goal
	return true, nil
}

func (r *fakeJourneyRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.journeys[id]; !ok {
		return false, nil
	}
	delete(r.journeys, id)
	return true, nil
}

func newTestService() (*Service, *fakeJourneyRepo) {
	repo := newFakeJourneyRepo()
	return NewService(repo, logger.NewNop()), repo
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	j, err := svc.Create(context.Background(), CreateInput{
		UserID:         uuid.New(),
		Skill:          "Cooking",
		Level:          "Beginner",
		TimeCommitment: "30 minutes",
		Goal:           "cook dinner",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.ID == uuid.Nil {
		t.Fatal("expected an assigned id")
	}
	if _, ok := repo.journeys[j.ID]; !ok {
		t.Fatal("journey not persisted")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, repo := newTestService()

	tests := []struct {
		name string
		in   CreateInput
	}{
		{"missing user", CreateInput{Skill: "Cooking", Level: "Beginner"}},
		{"missing skill", CreateInput{UserID: uuid.New(), Level: "Beginner"}},
		{"blank level", CreateInput{UserID: uuid.New(), Skill: "Cooking", Level: " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var verr *progression.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
	if len(repo.journeys) != 0 {
		t.Fatalf("nothing should be persisted, got %d", len(repo.journeys))
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), uuid.New())
	var nerr *progression.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListFiltersByUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	alice := uuid.New()
	for _, skill := range []string{"Cooking", "Chess"} {
		if _, err := svc.Create(ctx, CreateInput{UserID: alice, Skill: skill, Level: "Beginner"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := svc.Create(ctx, CreateInput{UserID: uuid.New(), Skill: "Running", Level: "Beginner"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.List(ctx, &alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 journeys, got %d", len(mine))
	}

	all, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 journeys, got %d", len(all))
	}
}

func TestUpdate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	j, err := svc.Create(ctx, CreateInput{UserID: uuid.New(), Skill: "Cooking", Level: "Beginner"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Update(ctx, j.ID, UpdateInput{Skill: "Baking", Level: "Intermediate"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.journeys[j.ID].Skill != "Baking" {
		t.Fatalf("update not applied: %+v", repo.journeys[j.ID])
	}

	err = svc.Update(ctx, uuid.New(), UpdateInput{Skill: "Baking", Level: "Intermediate"})
	var nerr *progression.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	j, err := svc.Create(ctx, CreateInput{UserID: uuid.New(), Skill: "Cooking", Level: "Beginner"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, j.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.journeys) != 0 {
		t.Fatal("journey still present after delete")
	}

	err = svc.Delete(ctx, j.ID)
	var nerr *progression.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRepoErrorsSurfaceAsPersistence(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("disk gone")

	_, err := svc.List(context.Background(), nil)
	var perr *progression.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
