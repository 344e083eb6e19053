package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/progression"
)

// LevelHandler exposes the progression engine over HTTP.
type LevelHandler struct {
	engine *progression.Engine
}

// NewLevelHandler creates a LevelHandler.
func NewLevelHandler(engine *progression.Engine) *LevelHandler {
	return &LevelHandler{engine: engine}
}

// GetCurrent handles GET /api/levels/current/:journeyId. It reports the
// journey's current level and whether a new one needs to be generated.
func (h *LevelHandler) GetCurrent(c *gin.Context) {
	journeyID, err := uuid.Parse(c.Param("journeyId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid journey ID")
		return
	}

	status, err := h.engine.ResolveStatus(c.Request.Context(), journeyID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"currentLevel": levelToJSON(status.Current),
		"needsNewLevel": status.State == progression.StateNoLevelYet ||
			status.State == progression.StateNeedsNewLevel,
	})
}

type generateRequest struct {
	JourneyID      string `json:"journeyId"`
	Skill          string `json:"skill"`
	Level          string `json:"level"`
	TimeCommitment string `json:"timeCommitment"`
	Goal           string `json:"goal"`
}

// Generate handles POST /api/levels/generate. Idempotent: if the journey
// already has a pending level it is returned without generating again.
func (h *LevelHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	journeyID, err := uuid.Parse(req.JourneyID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "journey ID, skill, and level are required")
		return
	}

	lvl, err := h.engine.Generate(c.Request.Context(), progression.GenerateInput{
		JourneyID:      journeyID,
		Skill:          req.Skill,
		Level:          req.Level,
		TimeCommitment: req.TimeCommitment,
		Goal:           req.Goal,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"level":   levelToJSON(lvl),
	})
}

type completeRequest struct {
	DifficultyRating int `json:"difficultyRating"`
}

// Complete handles POST /api/levels/complete/:levelId. A level can be
// completed exactly once; repeats report not found.
func (h *LevelHandler) Complete(c *gin.Context) {
	levelID, err := uuid.Parse(c.Param("levelId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid level ID")
		return
	}

	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "difficulty rating must be between 1 and 5")
		return
	}

	if err := h.engine.Complete(c.Request.Context(), levelID, req.DifficultyRating); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Level completed successfully",
	})
}

// GetHistory handles GET /api/levels/history/:journeyId.
func (h *LevelHandler) GetHistory(c *gin.Context) {
	journeyID, err := uuid.Parse(c.Param("journeyId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid journey ID")
		return
	}

	hist, err := h.engine.History(c.Request.Context(), journeyID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	levels := make([]*levelJSON, len(hist.Levels))
	for i, l := range hist.Levels {
		levels[i] = levelToJSON(l)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"levels":          levels,
		"totalLevels":     hist.Total,
		"completedLevels": hist.Completed,
	})
}
