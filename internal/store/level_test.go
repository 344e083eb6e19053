package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newLevel(journeyID uuid.UUID, number int) *Level {
	return &Level{
		ID:          uuid.New(),
		JourneyID:   journeyID,
		LevelNumber: number,
		Task:        "practice task",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestLevelInsertAndByJourney(t *testing.T) {
	s := openTestStore(t)
	repo := s.LevelRepo()
	ctx := context.Background()

	journeyID := uuid.New()
	for n := 1; n <= 3; n++ {
		if err := repo.Insert(ctx, newLevel(journeyID, n)); err != nil {
			t.Fatalf("insert level %d: %v", n, err)
		}
	}
	// A level of another journey must not show up.
	if err := repo.Insert(ctx, newLevel(uuid.New(), 1)); err != nil {
		t.Fatalf("insert other journey level: %v", err)
	}

	rows, err := repo.ByJourney(ctx, journeyID)
	if err != nil {
		t.Fatalf("by journey: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(rows))
	}
	for _, l := range rows {
		if l.Completed {
			t.Fatal("freshly inserted levels must be pending")
		}
		if l.DifficultyRating != nil || l.CompletedAt != nil {
			t.Fatal("pending levels must not carry rating or completion time")
		}
	}
}

func TestLevelInsertDuplicateSlot(t *testing.T) {
	s := openTestStore(t)
	repo := s.LevelRepo()
	ctx := context.Background()

	journeyID := uuid.New()
	if err := repo.Insert(ctx, newLevel(journeyID, 1)); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	err := repo.Insert(ctx, newLevel(journeyID, 1))
	if !errors.Is(err, ErrDuplicateLevel) {
		t.Fatalf("expected ErrDuplicateLevel, got %v", err)
	}

	// The same number on a different journey is fine.
	if err := repo.Insert(ctx, newLevel(uuid.New(), 1)); err != nil {
		t.Fatalf("insert on other journey: %v", err)
	}
}

func TestLevelByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.LevelRepo()
	ctx := context.Background()

	lvl := newLevel(uuid.New(), 1)
	if err := repo.Insert(ctx, lvl); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.ByID(ctx, lvl.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil || got.Task != "practice task" {
		t.Fatalf("unexpected level: %+v", got)
	}

	missing, err := repo.ByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("by id (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestLevelComplete(t *testing.T) {
	s := openTestStore(t)
	repo := s.LevelRepo()
	ctx := context.Background()

	lvl := newLevel(uuid.New(), 1)
	if err := repo.Insert(ctx, lvl); err != nil {
		t.Fatalf("insert: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Second)
	ok, err := repo.Complete(ctx, lvl.ID, 4, at)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !ok {
		t.Fatal("expected completion to apply")
	}

	got, err := repo.ByID(ctx, lvl.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if !got.Completed {
		t.Fatal("level should be completed")
	}
	if got.DifficultyRating == nil || *got.DifficultyRating != 4 {
		t.Fatalf("expected rating 4, got %v", got.DifficultyRating)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(at) {
		t.Fatalf("expected completedAt %s, got %v", at, got.CompletedAt)
	}
}

func TestLevelCompleteIsOneShot(t *testing.T) {
	s := openTestStore(t)
	repo := s.LevelRepo()
	ctx := context.Background()

	lvl := newLevel(uuid.New(), 1)
	if err := repo.Insert(ctx, lvl); err != nil {
		t.Fatalf("insert: %v", err)
	}

	at := time.Now().UTC()
	if ok, err := repo.Complete(ctx, lvl.ID, 2, at); err != nil || !ok {
		t.Fatalf("first complete: ok=%v err=%v", ok, err)
	}

	ok, err := repo.Complete(ctx, lvl.ID, 5, at.Add(time.Minute))
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if ok {
		t.Fatal("second completion must not apply")
	}

	got, _ := repo.ByID(ctx, lvl.ID)
	if *got.DifficultyRating != 2 {
		t.Fatalf("first rating overwritten: got %d", *got.DifficultyRating)
	}
}

func TestLevelCompleteUnknownID(t *testing.T) {
	s := openTestStore(t)
	repo := s.LevelRepo()

	ok, err := repo.Complete(context.Background(), uuid.New(), 3, time.Now().UTC())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ok {
		t.Fatal("completion of an unknown id must report false")
	}
}
