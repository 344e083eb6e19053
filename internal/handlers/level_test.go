package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iamtheretronerd/levelup/internal/llm"
	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/progression"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// memLevelRepo is an in-memory store.LevelRepo for handler tests.
type memLevelRepo struct {
	mu     sync.Mutex
	levels map[uuid.UUID]*store.Level
}

func newMemLevelRepo() *memLevelRepo {
	return &memLevelRepo{levels: make(map[uuid.UUID]*store.Level)}
}

func (r *memLevelRepo) ByJourney(_ context.Context, journeyID uuid.UUID) ([]*store.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Level
	for _, l := range r.levels {
		if l.JourneyID == journeyID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memLevelRepo) ByID(_ context.Context, id uuid.UUID) (*store.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.levels[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLevelRepo) Insert(_ context.Context, l *store.Level) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.levels {
		if existing.JourneyID == l.JourneyID && existing.LevelNumber == l.LevelNumber {
			return store.ErrDuplicateLevel
		}
	}
	cp := *l
	r.levels[l.ID] = &cp
	return nil
}

func (r *memLevelRepo) Complete(_ context.Context, id uuid.UUID, rating int, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.levels[id]
	if !ok || l.Completed {
		return false, nil
	}
	l.Completed = true
	l.DifficultyRating = &rating
	l.CompletedAt = &at
	return true, nil
}

func newLevelRouter(mock *llm.MockProvider) (*gin.Engine, *memLevelRepo) {
	gin.SetMode(gin.TestMode)

	repo := newMemLevelRepo()
	engine := progression.NewEngine(repo, mock, progression.DefaultConfig(), logger.NewNop())
	h := NewLevelHandler(engine)

	router := gin.New()
	router.GET("/api/levels/current/:journeyId", h.GetCurrent)
	router.POST("/api/levels/generate", h.Generate)
	router.POST("/api/levels/complete/:levelId", h.Complete)
	router.GET("/api/levels/history/:journeyId", h.GetHistory)
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func generateBody(journeyID uuid.UUID) map[string]any {
	return map[string]any{
		"journeyId":      journeyID.String(),
		"skill":          "Cooking",
		"level":          "Beginner",
		"timeCommitment": "30 minutes",
		"goal":           "cook dinner",
	}
}

func TestGetCurrent_EmptyJourney(t *testing.T) {
	router, _ := newLevelRouter(llm.NewMockProvider())

	w, out := doJSON(t, router, http.MethodGet, "/api/levels/current/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["success"])
	require.Equal(t, true, out["needsNewLevel"])
	require.Nil(t, out["currentLevel"])
}

func TestGetCurrent_InvalidJourneyID(t *testing.T) {
	router, _ := newLevelRouter(llm.NewMockProvider())

	w, out := doJSON(t, router, http.MethodGet, "/api/levels/current/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, out["success"])
}

func TestGenerate_CreatesFirstLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Make toast with butter"})
	router, _ := newLevelRouter(mock)
	journeyID := uuid.New()

	w, out := doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(journeyID))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["success"])

	lvl := out["level"].(map[string]any)
	require.Equal(t, float64(1), lvl["levelNumber"])
	require.Equal(t, "Make toast with butter", lvl["task"])
	require.Equal(t, false, lvl["completed"])

	// Current now reports the pending level.
	w, out = doJSON(t, router, http.MethodGet, "/api/levels/current/"+journeyID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, out["needsNewLevel"])
	require.NotNil(t, out["currentLevel"])
}

func TestGenerate_IdempotentWhilePending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Make toast with butter"})
	router, _ := newLevelRouter(mock)
	journeyID := uuid.New()

	_, first := doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(journeyID))
	_, second := doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(journeyID))

	firstID := first["level"].(map[string]any)["id"]
	secondID := second["level"].(map[string]any)["id"]
	require.Equal(t, firstID, secondID)
	require.Equal(t, 1, mock.CallCount())
}

func TestGenerate_GeneratorFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	router, repo := newLevelRouter(mock)

	w, out := doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(uuid.New()))
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, false, out["success"])
	require.Empty(t, repo.levels)
}

func TestGenerate_InvalidJourneyID(t *testing.T) {
	router, _ := newLevelRouter(llm.NewMockProvider())

	w, out := doJSON(t, router, http.MethodPost, "/api/levels/generate", map[string]any{
		"journeyId": "nope",
		"skill":     "Cooking",
		"level":     "Beginner",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, out["success"])
}

func TestComplete_Lifecycle(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Make toast with butter"})
	router, _ := newLevelRouter(mock)
	journeyID := uuid.New()

	_, out := doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(journeyID))
	levelID := out["level"].(map[string]any)["id"].(string)

	w, out := doJSON(t, router, http.MethodPost, "/api/levels/complete/"+levelID,
		map[string]any{"difficultyRating": 3})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["success"])

	// A second completion is rejected.
	w, out = doJSON(t, router, http.MethodPost, "/api/levels/complete/"+levelID,
		map[string]any{"difficultyRating": 5})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, false, out["success"])
}

func TestComplete_RatingOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Make toast with butter"})
	router, _ := newLevelRouter(mock)

	_, out := doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(uuid.New()))
	levelID := out["level"].(map[string]any)["id"].(string)

	w, out := doJSON(t, router, http.MethodPost, "/api/levels/complete/"+levelID,
		map[string]any{"difficultyRating": 9})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, out["success"])
}

func TestComplete_UnknownLevel(t *testing.T) {
	router, _ := newLevelRouter(llm.NewMockProvider())

	w, out := doJSON(t, router, http.MethodPost, "/api/levels/complete/"+uuid.NewString(),
		map[string]any{"difficultyRating": 3})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, false, out["success"])
}

func TestGetHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Task one"},
		llm.MockResponse{Text: "Task two"},
	)
	router, _ := newLevelRouter(mock)
	journeyID := uuid.New()

	_, out := doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(journeyID))
	firstID := out["level"].(map[string]any)["id"].(string)
	doJSON(t, router, http.MethodPost, "/api/levels/complete/"+firstID,
		map[string]any{"difficultyRating": 2})
	doJSON(t, router, http.MethodPost, "/api/levels/generate", generateBody(journeyID))

	w, out := doJSON(t, router, http.MethodGet, "/api/levels/history/"+journeyID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["success"])
	require.Equal(t, float64(2), out["totalLevels"])
	require.Equal(t, float64(1), out["completedLevels"])

	levels := out["levels"].([]any)
	require.Len(t, levels, 2)
	for i, raw := range levels {
		lvl := raw.(map[string]any)
		require.Equal(t, float64(i+1), lvl["levelNumber"], fmt.Sprintf("position %d", i))
	}
}
