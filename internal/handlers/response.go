package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/progression"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// The frontend expects the original backend's envelope shape:
// {"success": bool, ...} with a "message" on failure.

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondEngineError maps the progression error taxonomy onto HTTP
// status codes: validation 400, not-found 404, generator 502, store and
// integrity 500.
func respondEngineError(c *gin.Context, err error) {
	var ve *progression.ValidationError
	if errors.As(err, &ve) {
		respondError(c, http.StatusBadRequest, ve.Error())
		return
	}

	var nf *progression.NotFoundError
	if errors.As(err, &nf) {
		respondError(c, http.StatusNotFound, nf.Error())
		return
	}

	var ge *progression.GenerationError
	if errors.As(err, &ge) {
		respondError(c, http.StatusBadGateway, "failed to generate new level")
		return
	}

	respondError(c, http.StatusInternalServerError, "internal error")
}

// levelJSON is the boundary serialization of a level.
type levelJSON struct {
	ID               uuid.UUID  `json:"id"`
	JourneyID        uuid.UUID  `json:"journeyId"`
	LevelNumber      int        `json:"levelNumber"`
	Task             string     `json:"task"`
	Completed        bool       `json:"completed"`
	DifficultyRating *int       `json:"difficultyRating"`
	CreatedAt        time.Time  `json:"createdAt"`
	CompletedAt      *time.Time `json:"completedAt"`
}

func levelToJSON(l *store.Level) *levelJSON {
	if l == nil {
		return nil
	}
	return &levelJSON{
		ID:               l.ID,
		JourneyID:        l.JourneyID,
		LevelNumber:      l.LevelNumber,
		Task:             l.Task,
		Completed:        l.Completed,
		DifficultyRating: l.DifficultyRating,
		CreatedAt:        l.CreatedAt,
		CompletedAt:      l.CompletedAt,
	}
}

// journeyJSON is the boundary serialization of a journey.
type journeyJSON struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Skill          string    `json:"skill"`
	Level          string    `json:"level"`
	TimeCommitment string    `json:"timeCommitment,omitempty"`
	Goal           string    `json:"goal,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func journeyToJSON(j *store.Journey) *journeyJSON {
	return &journeyJSON{
		ID:             j.ID,
		UserID:         j.UserID,
		Skill:          j.Skill,
		Level:          j.Level,
		TimeCommitment: j.TimeCommitment,
		Goal:           j.Goal,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}
