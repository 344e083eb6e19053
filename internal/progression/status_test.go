package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/llm"
)

func TestResolveStatus_NoLevelYet(t *testing.T) {
	repo := newFakeLevelRepo()
	e := newTestEngine(repo, llm.NewMockProvider())

	st, err := e.ResolveStatus(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.State != StateNoLevelYet {
		t.Fatalf("expected %s, got %s", StateNoLevelYet, st.State)
	}
	if st.Current != nil {
		t.Fatal("current should be nil with no levels")
	}
}

func TestResolveStatus_Pending(t *testing.T) {
	journeyID := uuid.New()
	pending := seedLevel(journeyID, 2, false, nil)
	repo := newFakeLevelRepo()
	repo.put(seedLevel(journeyID, 1, true, intPtr(3)))
	repo.put(pending)
	e := newTestEngine(repo, llm.NewMockProvider())

	st, err := e.ResolveStatus(context.Background(), journeyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.State != StatePending {
		t.Fatalf("expected %s, got %s", StatePending, st.State)
	}
	if st.Current == nil || st.Current.ID != pending.ID {
		t.Fatalf("expected pending level %s as current", pending.ID)
	}
}

func TestResolveStatus_NeedsNewLevel(t *testing.T) {
	journeyID := uuid.New()
	last := seedLevel(journeyID, 2, true, intPtr(4))
	repo := newFakeLevelRepo()
	repo.put(seedLevel(journeyID, 1, true, intPtr(3)))
	repo.put(last)
	e := newTestEngine(repo, llm.NewMockProvider())

	st, err := e.ResolveStatus(context.Background(), journeyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.State != StateNeedsNewLevel {
		t.Fatalf("expected %s, got %s", StateNeedsNewLevel, st.State)
	}
	if st.Current == nil || st.Current.ID != last.ID {
		t.Fatalf("expected last completed level %s as current", last.ID)
	}
}

func TestResolveStatus_NilJourneyID(t *testing.T) {
	e := newTestEngine(newFakeLevelRepo(), llm.NewMockProvider())

	_, err := e.ResolveStatus(context.Background(), uuid.Nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestHistory_SortedAscendingWithCounts(t *testing.T) {
	journeyID := uuid.New()
	repo := newFakeLevelRepo()
	// Inserted out of order; History must sort by level number.
	repo.put(seedLevel(journeyID, 2, true, intPtr(2)))
	repo.put(seedLevel(journeyID, 1, true, intPtr(3)))
	repo.put(seedLevel(journeyID, 3, false, nil))
	e := newTestEngine(repo, llm.NewMockProvider())

	h, err := e.History(context.Background(), journeyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Total != 3 {
		t.Fatalf("expected 3 levels, got %d", h.Total)
	}
	if h.Completed != 2 {
		t.Fatalf("expected 2 completed, got %d", h.Completed)
	}
	for i, l := range h.Levels {
		if l.LevelNumber != i+1 {
			t.Fatalf("position %d holds level number %d", i, l.LevelNumber)
		}
	}
}

func TestHistory_EmptyJourney(t *testing.T) {
	e := newTestEngine(newFakeLevelRepo(), llm.NewMockProvider())

	h, err := e.History(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Total != 0 || h.Completed != 0 || len(h.Levels) != 0 {
		t.Fatalf("expected empty history, got %+v", h)
	}
}
