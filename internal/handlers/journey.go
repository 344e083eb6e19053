package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/journeys"
)

// JourneyHandler exposes journey CRUD over HTTP.
type JourneyHandler struct {
	svc *journeys.Service
}

// NewJourneyHandler creates a JourneyHandler.
func NewJourneyHandler(svc *journeys.Service) *JourneyHandler {
	return &JourneyHandler{svc: svc}
}

type journeyRequest struct {
	UserID         string `json:"userId"`
	Skill          string `json:"skill"`
	Level          string `json:"level"`
	TimeCommitment string `json:"timeCommitment"`
	Goal           string `json:"goal"`
}

// Create handles POST /api/journeys.
func (h *JourneyHandler) Create(c *gin.Context) {
	var req journeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "userId, skill and level are mandatory")
		return
	}

	j, err := h.svc.Create(c.Request.Context(), journeys.CreateInput{
		UserID:         userID,
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
		"success":   true,
		"message":   "Journey created successfully",
		"journeyId": j.ID,
	})
}

// List handles GET /api/journeys with an optional userId filter.
func (h *JourneyHandler) List(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid user ID")
			return
		}
		userID = &id
	}

	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	data := make([]*journeyJSON, len(list))
	for i, j := range list {
		data[i] = journeyToJSON(j)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// Get handles GET /api/journeys/:id.
func (h *JourneyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid journey ID")
		return
	}

	j, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    journeyToJSON(j),
	})
}

// Update handles PUT /api/journeys/:id.
func (h *JourneyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid journey ID")
		return
	}

	var req journeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.svc.Update(c.Request.Context(), id, journeys.UpdateInput{
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
		"message": "Journey updated successfully",
	})
}

// Delete handles DELETE /api/journeys/:id.
func (h *JourneyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid journey ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Journey deleted successfully",
	})
}
