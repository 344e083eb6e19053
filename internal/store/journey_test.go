package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func newJourney(userID uuid.UUID, skill string) *Journey {
	return &Journey{
		ID:             uuid.New(),
		UserID:         userID,
		Skill:          skill,
		Level:          "Beginner",
		TimeCommitment: "30 minutes",
		Goal:           "get comfortable",
	}
}

func TestJourneyCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	j := newJourney(uuid.New(), "Cooking")
	if err := repo.Create(ctx, j); err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.CreatedAt.IsZero() {
		t.Fatal("createdAt should be filled in on create")
	}

	got, err := repo.ByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil || got.Skill != "Cooking" || got.UserID != j.UserID {
		t.Fatalf("unexpected journey: %+v", got)
	}

	missing, err := repo.ByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("by id (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestJourneyListFiltersByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	for _, j := range []*Journey{
		newJourney(alice, "Cooking"),
		newJourney(alice, "Chess"),
		newJourney(bob, "Running"),
	} {
		if err := repo.Create(ctx, j); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 journeys, got %d", len(all))
	}

	mine, err := repo.List(ctx, &alice)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 journeys for user, got %d", len(mine))
	}
	for _, j := range mine {
		if j.UserID != alice {
			t.Fatalf("journey %s belongs to %s", j.ID, j.UserID)
		}
	}
}

func TestJourneyUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	j := newJourney(uuid.New(), "Cooking")
	if err := repo.Create(ctx, j); err != nil {
		t.Fatalf("create: %v", err)
	}

	j.Skill = "Baking"
	j.Goal = "bake sourdough"
	ok, err := repo.Update(ctx, j)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("expected update to apply")
	}

	got, _ := repo.ByID(ctx, j.ID)
	if got.Skill != "Baking" || got.Goal != "bake sourdough" {
		t.Fatalf("update not persisted: %+v", got)
	}

	ok, err = repo.Update(ctx, newJourney(uuid.New(), "Nothing"))
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if ok {
		t.Fatal("update of unknown journey must report false")
	}
}

func TestJourneyDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	j := newJourney(uuid.New(), "Cooking")
	if err := repo.Create(ctx, j); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.Delete(ctx, j.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to apply")
	}

	got, _ := repo.ByID(ctx, j.ID)
	if got != nil {
		t.Fatal("journey still present after delete")
	}

	ok, err = repo.Delete(ctx, j.ID)
	if err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if ok {
		t.Fatal("second delete must report false")
	}
}
