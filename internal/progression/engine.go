package progression

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/llm"
	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// Config tunes the generation call.
type Config struct {
	// GenerationTimeout bounds a single task-generation call. A timeout
	// surfaces as a GenerationError; nothing is persisted.
	GenerationTimeout time.Duration

	// MaxTokens caps the generated task length.
	MaxTokens int

	// Temperature for the generator. Tasks benefit from some variety.
	Temperature float64
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		GenerationTimeout: 30 * time.Second,
		MaxTokens:         256,
		Temperature:       0.7,
	}
}

// Engine is the level progression core: it resolves a journey's current
// status, generates new levels through the task generator, and records
// completion with a difficulty rating. It holds no state of its own; the
// level store is the only shared resource.
type Engine struct {
	levels   store.LevelRepo
	provider llm.Provider
	cfg      Config
	log      *logger.Logger

	now func() time.Time
}

// NewEngine creates a progression engine.
func NewEngine(levels store.LevelRepo, provider llm.Provider, cfg Config, log *logger.Logger) *Engine {
	return &Engine{
		levels:   levels,
		provider: provider,
		cfg:      cfg,
		log:      log.With("component", "progression"),
		now:      time.Now,
	}
}

// Generate returns the journey's current level, generating a new one if
// the latest level is completed or none exist. Repeated or concurrent
// calls never create more than one pending level: a pending level is
// returned as-is without touching the generator, and the store's unique
// (journeyID, levelNumber) index turns a lost insert race into a re-read.
func (e *Engine) Generate(ctx context.Context, in GenerateInput) (*store.Level, error) {
	if in.JourneyID == uuid.Nil {
		return nil, &ValidationError{Field: "journeyId", Reason: "required"}
	}
	if strings.TrimSpace(in.Skill) == "" {
		return nil, &ValidationError{Field: "skill", Reason: "required"}
	}
	if strings.TrimSpace(in.Level) == "" {
		return nil, &ValidationError{Field: "level", Reason: "required"}
	}

	levels, err := e.levels.ByJourney(ctx, in.JourneyID)
	if err != nil {
		return nil, &PersistenceError{Op: "read levels", Err: err}
	}

	latest, err := latestOf(in.JourneyID, levels)
	if err != nil {
		return nil, err
	}

	// Idempotency guard: a pending level means a previous call already
	// did the work. Duplicate requests get the same level back.
	if latest != nil && !latest.Completed {
		e.log.Debug("returning existing pending level",
			"journey_id", in.JourneyID,
			"level_number", latest.LevelNumber,
		)
		return latest, nil
	}

	next := 1
	var lastRating *int
	if latest != nil {
		next = latest.LevelNumber + 1
		lastRating = latest.DifficultyRating
	}

	req := BuildPrompt(PromptInput{
		Skill:          in.Skill,
		Level:          in.Level,
		TimeCommitment: in.TimeCommitment,
		Goal:           in.Goal,
		LevelNumber:    next,
		Prior:          priorDigest(levels),
		LastRating:     lastRating,
	})
	req.MaxTokens = e.cfg.MaxTokens
	req.Temperature = e.cfg.Temperature

	gctx, cancel := context.WithTimeout(ctx, e.cfg.GenerationTimeout)
	defer cancel()

	resp, err := e.provider.Generate(gctx, req)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	task := strings.TrimSpace(resp.Text)
	if task == "" {
		return nil, &GenerationError{Err: &llm.ErrEmptyResponse{Model: resp.Model}}
	}

	lvl := &store.Level{
		ID:          uuid.New(),
		JourneyID:   in.JourneyID,
		LevelNumber: next,
		Task:        task,
		Completed:   false,
		CreatedAt:   e.now().UTC(),
	}

	if err := e.levels.Insert(ctx, lvl); err != nil {
		if errors.Is(err, store.ErrDuplicateLevel) {
			// A concurrent call won the slot. Its level is the
			// journey's current level; return that instead.
			return e.rereadPending(ctx, in.JourneyID)
		}
		return nil, &PersistenceError{Op: "insert level", Err: err}
	}

	e.log.Info("level generated",
		"journey_id", in.JourneyID,
		"level_number", next,
	)
	return lvl, nil
}

// rereadPending fetches the pending level that a concurrent Generate
// call inserted.
func (e *Engine) rereadPending(ctx context.Context, journeyID uuid.UUID) (*store.Level, error) {
	levels, err := e.levels.ByJourney(ctx, journeyID)
	if err != nil {
		return nil, &PersistenceError{Op: "re-read levels", Err: err}
	}
	latest, err := latestOf(journeyID, levels)
	if err != nil {
		return nil, err
	}
	if latest != nil && !latest.Completed {
		return latest, nil
	}
	// The slot was taken but no pending level is visible now. The
	// caller can safely retry from the top.
	return nil, &PersistenceError{Op: "insert level", Err: store.ErrDuplicateLevel}
}

// Complete marks a level completed with the learner's difficulty rating.
// The update is a single conditional write against the pending state, so
// a second completion of the same level fails with NotFoundError instead
// of silently overwriting the first rating.
func (e *Engine) Complete(ctx context.Context, levelID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return &ValidationError{Field: "difficultyRating", Reason: "must be between 1 and 5"}
	}

	lvl, err := e.levels.ByID(ctx, levelID)
	if err != nil {
		return &PersistenceError{Op: "read level", Err: err}
	}
	if lvl == nil {
		return &NotFoundError{Resource: "level", ID: levelID}
	}

	ok, err := e.levels.Complete(ctx, levelID, rating, e.now().UTC())
	if err != nil {
		return &PersistenceError{Op: "complete level", Err: err}
	}
	if !ok {
		// Already completed, or raced with a concurrent completion.
		return &NotFoundError{Resource: "level", ID: levelID}
	}

	e.log.Info("level completed",
		"level_id", levelID,
		"difficulty_rating", rating,
	)
	return nil
}

// latestOf returns the level with the highest levelNumber, or nil when
// the slice is empty. A duplicate highest number is a data-integrity
// condition and is surfaced, not resolved.
func latestOf(journeyID uuid.UUID, levels []*store.Level) (*store.Level, error) {
	if len(levels) == 0 {
		return nil, nil
	}

	latest := levels[0]
	dup := false
	for _, l := range levels[1:] {
		switch {
		case l.LevelNumber > latest.LevelNumber:
			latest = l
			dup = false
		case l.LevelNumber == latest.LevelNumber:
			dup = true
		}
	}
	if dup {
		return nil, &IntegrityError{JourneyID: journeyID, LevelNumber: latest.LevelNumber}
	}
	return latest, nil
}

// priorDigest projects levels into prompt digest entries, most recent
// first.
func priorDigest(levels []*store.Level) []PriorLevel {
	sorted := make([]*store.Level, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LevelNumber > sorted[j].LevelNumber
	})

	out := make([]PriorLevel, len(sorted))
	for i, l := range sorted {
		out[i] = PriorLevel{
			Number: l.LevelNumber,
			Task:   l.Task,
			Rating: l.DifficultyRating,
		}
	}
	return out
}
