package progression

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/llm"
	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// fakeLevelRepo is an in-memory store.LevelRepo that enforces the unique
// (journeyID, levelNumber) slot the way the real store does.
type fakeLevelRepo struct {
	mu     sync.Mutex
	levels map[uuid.UUID]*store.Level

	// beforeInsert runs inside Insert before the slot check, letting
	// tests wedge a competing write into the race window.
	beforeInsert func(r *fakeLevelRepo)

	readErr  error
	writeErr error
}

func newFakeLevelRepo() *fakeLevelRepo {
	return &fakeLevelRepo{levels: make(map[uuid.UUID]*store.Level)}
}

func (r *fakeLevelRepo) ByJourney(_ context.Context, journeyID uuid.UUID) ([]*store.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	var out []*store.Level
	for _, l := range r.levels {
		if l.JourneyID == journeyID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLevelRepo) ByID(_ context.Context, id uuid.UUID) (*store.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	l, ok := r.levels[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLevelRepo) Insert(_ context.Context, l *store.Level) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	if r.beforeInsert != nil {
		hook := r.beforeInsert
		r.beforeInsert = nil
		hook(r)
	}
	for _, existing := range r.levels {
		if existing.JourneyID == l.JourneyID && existing.LevelNumber == l.LevelNumber {
			return store.ErrDuplicateLevel
		}
	}
	cp := *l
	r.levels[l.ID] = &cp
	return nil
}

func (r *fakeLevelRepo) Complete(_ context.Context, id uuid.UUID, rating int, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return false, r.writeErr
	}
	l, ok := r.levels[id]
	if !ok || l.Completed {
		return false, nil
	}
	l.Completed = true
	l.DifficultyRating = &rating
	l.CompletedAt = &at
	return true, nil
}

// put seeds a level directly, bypassing Insert.
func (r *fakeLevelRepo) put(l *store.Level) {
	cp := *l
	r.levels[l.ID] = &cp
}

func (r *fakeLevelRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.levels)
}

func newTestEngine(repo *fakeLevelRepo, mock *llm.MockProvider) *Engine {
	return NewEngine(repo, mock, DefaultConfig(), logger.NewNop())
}

func genInput(journeyID uuid.UUID) GenerateInput {
	return GenerateInput{
		JourneyID:      journeyID,
		Skill:          "Cooking",
		Level:          "Beginner",
		TimeCommitment: "30 minutes",
		Goal:           "cook a full dinner",
	}
}

func seedLevel(journeyID uuid.UUID, number int, completed bool, rating *int) *store.Level {
	l := &store.Level{
		ID:          uuid.New(),
		JourneyID:   journeyID,
		LevelNumber: number,
		Task:        "seeded task",
		Completed:   completed,
		CreatedAt:   time.Now().UTC(),
	}
	if completed {
		at := time.Now().UTC()
		l.DifficultyRating = rating
		l.CompletedAt = &at
	}
	return l
}

func intPtr(n int) *int { return &n }

func TestGenerate_FirstLevelIsNumberOne(t *testing.T) {
	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Boil an egg and season it"})
	e := newTestEngine(repo, mock)

	lvl, err := e.Generate(context.Background(), genInput(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.LevelNumber != 1 {
		t.Fatalf("expected level number 1, got %d", lvl.LevelNumber)
	}
	if lvl.Task != "Boil an egg and season it" {
		t.Fatalf("unexpected task: %q", lvl.Task)
	}
	if lvl.Completed {
		t.Fatal("new level should be pending")
	}
	if lvl.DifficultyRating != nil || lvl.CompletedAt != nil {
		t.Fatal("new level should have no rating or completion time")
	}
	if repo.count() != 1 {
		t.Fatalf("expected 1 stored level, got %d", repo.count())
	}
}

func TestGenerate_PendingLevelReturnedWithoutGeneratorCall(t *testing.T) {
	journeyID := uuid.New()
	pending := seedLevel(journeyID, 1, false, nil)

	repo := newFakeLevelRepo()
	repo.put(pending)
	mock := llm.NewMockProvider()
	e := newTestEngine(repo, mock)

	lvl, err := e.Generate(context.Background(), genInput(journeyID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.ID != pending.ID {
		t.Fatalf("expected pending level %s back, got %s", pending.ID, lvl.ID)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("generator should not be called, got %d calls", mock.CallCount())
	}
	if repo.count() != 1 {
		t.Fatalf("expected 1 stored level, got %d", repo.count())
	}
}

func TestGenerate_RepeatedCallsCreateOneLevel(t *testing.T) {
	journeyID := uuid.New()
	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "First task"},
		llm.MockResponse{Text: "Should never be used"},
	)
	e := newTestEngine(repo, mock)

	first, err := e.Generate(context.Background(), genInput(journeyID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.Generate(context.Background(), genInput(journeyID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected the same level, got %s and %s", first.ID, second.ID)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 generator call, got %d", mock.CallCount())
	}
	if repo.count() != 1 {
		t.Fatalf("expected 1 stored level, got %d", repo.count())
	}
}

func TestGenerate_NextNumberAfterCompletion(t *testing.T) {
	journeyID := uuid.New()
	repo := newFakeLevelRepo()
	repo.put(seedLevel(journeyID, 1, true, intPtr(3)))
	repo.put(seedLevel(journeyID, 2, true, intPtr(4)))
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Third task"})
	e := newTestEngine(repo, mock)

	lvl, err := e.Generate(context.Background(), genInput(journeyID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.LevelNumber != 3 {
		t.Fatalf("expected level number 3, got %d", lvl.LevelNumber)
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    GenerateInput
		field string
	}{
		{"missing journey", GenerateInput{Skill: "Cooking", Level: "Beginner"}, "journeyId"},
		{"missing skill", GenerateInput{JourneyID: uuid.New(), Level: "Beginner"}, "skill"},
		{"blank skill", GenerateInput{JourneyID: uuid.New(), Skill: "  ", Level: "Beginner"}, "skill"},
		{"missing level", GenerateInput{JourneyID: uuid.New(), Skill: "Cooking"}, "level"},
	}

	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider()
	e := newTestEngine(repo, mock)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Generate(context.Background(), tt.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
	if mock.CallCount() != 0 {
		t.Fatalf("generator should not be called on invalid input, got %d calls", mock.CallCount())
	}
	if repo.count() != 0 {
		t.Fatalf("nothing should be persisted, got %d levels", repo.count())
	}
}

func TestGenerate_GeneratorFailureNothingPersisted(t *testing.T) {
	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	e := newTestEngine(repo, mock)

	_, err := e.Generate(context.Background(), genInput(uuid.New()))
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if repo.count() != 0 {
		t.Fatalf("nothing should be persisted, got %d levels", repo.count())
	}
}

func TestGenerate_BlankTaskRejected(t *testing.T) {
	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Text: "   \n  "})
	e := newTestEngine(repo, mock)

	_, err := e.Generate(context.Background(), genInput(uuid.New()))
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if repo.count() != 0 {
		t.Fatalf("nothing should be persisted, got %d levels", repo.count())
	}
}

func TestGenerate_TaskTextTrimmed(t *testing.T) {
	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  Chop an onion evenly  \n"})
	e := newTestEngine(repo, mock)

	lvl, err := e.Generate(context.Background(), genInput(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.Task != "Chop an onion evenly" {
		t.Fatalf("expected trimmed task, got %q", lvl.Task)
	}
}

func TestGenerate_LostInsertRaceReturnsWinner(t *testing.T) {
	journeyID := uuid.New()
	winner := seedLevel(journeyID, 1, false, nil)

	repo := newFakeLevelRepo()
	repo.beforeInsert = func(r *fakeLevelRepo) {
		r.put(winner)
	}
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Loser's task"})
	e := newTestEngine(repo, mock)

	lvl, err := e.Generate(context.Background(), genInput(journeyID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.ID != winner.ID {
		t.Fatalf("expected the winning level %s, got %s", winner.ID, lvl.ID)
	}
	if repo.count() != 1 {
		t.Fatalf("expected 1 stored level, got %d", repo.count())
	}
}

func TestGenerate_PromptUsesLastRating(t *testing.T) {
	tests := []struct {
		name   string
		rating *int
		want   string
	}{
		{"very easy", intPtr(1), "significantly more challenging"},
		{"easy", intPtr(2), "slightly more challenging"},
		{"just right", intPtr(3), "similar difficulty"},
		{"hard", intPtr(4), "slightly easier"},
		{"very hard", intPtr(5), "significantly easier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journeyID := uuid.New()
			repo := newFakeLevelRepo()
			repo.put(seedLevel(journeyID, 1, true, tt.rating))
			mock := llm.NewMockProvider(llm.MockResponse{Text: "Next task"})
			e := newTestEngine(repo, mock)

			if _, err := e.Generate(context.Background(), genInput(journeyID)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mock.Calls) != 1 {
				t.Fatalf("expected 1 generator call, got %d", len(mock.Calls))
			}
			if !strings.Contains(mock.Calls[0].Prompt, tt.want) {
				t.Fatalf("prompt missing %q:\n%s", tt.want, mock.Calls[0].Prompt)
			}
		})
	}
}

func TestGenerate_FirstLevelPromptIsBeginnerFriendly(t *testing.T) {
	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Text: "First task"})
	e := newTestEngine(repo, mock)

	if _, err := e.Generate(context.Background(), genInput(uuid.New())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, "beginner-friendly") {
		t.Fatalf("prompt missing beginner-friendly instruction:\n%s", prompt)
	}
	if !strings.Contains(prompt, "This is their first task.") {
		t.Fatalf("prompt missing first-task digest:\n%s", prompt)
	}
}

func TestGenerate_ReadErrorIsPersistenceError(t *testing.T) {
	repo := newFakeLevelRepo()
	repo.readErr = errors.New("disk gone")
	e := newTestEngine(repo, llm.NewMockProvider())

	_, err := e.Generate(context.Background(), genInput(uuid.New()))
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestGenerate_DuplicateLevelNumbersSurfaced(t *testing.T) {
	journeyID := uuid.New()
	repo := newFakeLevelRepo()
	repo.put(seedLevel(journeyID, 2, true, intPtr(3)))
	repo.put(seedLevel(journeyID, 2, false, nil))
	e := newTestEngine(repo, llm.NewMockProvider())

	_, err := e.Generate(context.Background(), genInput(journeyID))
	var ierr *IntegrityError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
	if ierr.LevelNumber != 2 {
		t.Fatalf("expected level number 2 in error, got %d", ierr.LevelNumber)
	}
}

func TestComplete_SetsRatingAndTimestamp(t *testing.T) {
	lvl := seedLevel(uuid.New(), 1, false, nil)
	repo := newFakeLevelRepo()
	repo.put(lvl)
	e := newTestEngine(repo, llm.NewMockProvider())

	if err := e.Complete(context.Background(), lvl.ID, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.ByID(context.Background(), lvl.ID)
	if !got.Completed {
		t.Fatal("level should be completed")
	}
	if got.DifficultyRating == nil || *got.DifficultyRating != 4 {
		t.Fatalf("expected rating 4, got %v", got.DifficultyRating)
	}
	if got.CompletedAt == nil {
		t.Fatal("completedAt should be set")
	}
}

func TestComplete_RatingOutOfRange(t *testing.T) {
	lvl := seedLevel(uuid.New(), 1, false, nil)
	repo := newFakeLevelRepo()
	repo.put(lvl)
	e := newTestEngine(repo, llm.NewMockProvider())

	for _, rating := range []int{0, 6, -1} {
		err := e.Complete(context.Background(), lvl.ID, rating)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("rating %d: expected ValidationError, got %v", rating, err)
		}
	}

	got, _ := repo.ByID(context.Background(), lvl.ID)
	if got.Completed {
		t.Fatal("level must stay pending after rejected ratings")
	}
}

func TestComplete_UnknownLevel(t *testing.T) {
	repo := newFakeLevelRepo()
	e := newTestEngine(repo, llm.NewMockProvider())

	err := e.Complete(context.Background(), uuid.New(), 3)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestComplete_SecondCompletionRejected(t *testing.T) {
	lvl := seedLevel(uuid.New(), 1, false, nil)
	repo := newFakeLevelRepo()
	repo.put(lvl)
	e := newTestEngine(repo, llm.NewMockProvider())

	if err := e.Complete(context.Background(), lvl.ID, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := repo.ByID(context.Background(), lvl.ID)

	err := e.Complete(context.Background(), lvl.ID, 5)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError on second completion, got %v", err)
	}

	got, _ := repo.ByID(context.Background(), lvl.ID)
	if *got.DifficultyRating != 2 {
		t.Fatalf("first rating overwritten: got %d", *got.DifficultyRating)
	}
	if !got.CompletedAt.Equal(*first.CompletedAt) {
		t.Fatal("completedAt changed on rejected second completion")
	}
}

// TestJourneyLifecycle walks a journey through three levels end to end:
// generate, complete with a rating, and generate the adjusted next task.
func TestJourneyLifecycle(t *testing.T) {
	journeyID := uuid.New()
	repo := newFakeLevelRepo()
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Make toast with butter"},
		llm.MockResponse{Text: "Cook scrambled eggs with three ingredients"},
		llm.MockResponse{Text: "Cook a simple pasta dish with sauce from scratch"},
	)
	e := newTestEngine(repo, mock)
	ctx := context.Background()
	in := genInput(journeyID)

	l1, err := e.Generate(ctx, in)
	if err != nil {
		t.Fatalf("generate level 1: %v", err)
	}
	if l1.LevelNumber != 1 {
		t.Fatalf("expected level 1, got %d", l1.LevelNumber)
	}

	// Too easy: next task should ramp up.
	if err := e.Complete(ctx, l1.ID, 1); err != nil {
		t.Fatalf("complete level 1: %v", err)
	}

	l2, err := e.Generate(ctx, in)
	if err != nil {
		t.Fatalf("generate level 2: %v", err)
	}
	if l2.LevelNumber != 2 {
		t.Fatalf("expected level 2, got %d", l2.LevelNumber)
	}
	if !strings.Contains(mock.Calls[1].Prompt, "significantly more challenging") {
		t.Fatalf("level 2 prompt should ramp difficulty:\n%s", mock.Calls[1].Prompt)
	}
	if !strings.Contains(mock.Calls[1].Prompt, "Make toast with butter") {
		t.Fatalf("level 2 prompt should list the prior task:\n%s", mock.Calls[1].Prompt)
	}

	// Just right.
	if err := e.Complete(ctx, l2.ID, 3); err != nil {
		t.Fatalf("complete level 2: %v", err)
	}

	l3, err := e.Generate(ctx, in)
	if err != nil {
		t.Fatalf("generate level 3: %v", err)
	}
	if l3.LevelNumber != 3 {
		t.Fatalf("expected level 3, got %d", l3.LevelNumber)
	}
	if !strings.Contains(mock.Calls[2].Prompt, "similar difficulty") {
		t.Fatalf("level 3 prompt should hold difficulty:\n%s", mock.Calls[2].Prompt)
	}

	h, err := e.History(ctx, journeyID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if h.Total != 3 || h.Completed != 2 {
		t.Fatalf("expected 3 total / 2 completed, got %d / %d", h.Total, h.Completed)
	}
}
