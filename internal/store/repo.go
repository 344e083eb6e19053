package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateLevel is returned by LevelRepo.Insert when another level
// already holds the same (journeyID, levelNumber) slot. Callers treat it
// as "someone else created this level first" and re-read.
var ErrDuplicateLevel = errors.New("level number already taken for journey")

// User is an account that owns journeys.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Journey is a user's learning track on one skill.
type Journey struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Skill          string
	Level          string
	TimeCommitment string
	Goal           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Level is one generated practice task within a journey.
// DifficultyRating and CompletedAt are nil until the completion
// transition sets them.
type Level struct {
	ID               uuid.UUID
	JourneyID        uuid.UUID
	LevelNumber      int
	Task             string
	Completed        bool
	DifficultyRating *int
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// UserRepo manages user accounts.
type UserRepo interface {
	Create(ctx context.Context, u *User) error
	ByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, currentEmail string, u *User) (bool, error)
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}

// JourneyRepo manages journey metadata.
type JourneyRepo interface {
	Create(ctx context.Context, j *Journey) error
	ByID(ctx context.Context, id uuid.UUID) (*Journey, error)
	List(ctx context.Context, userID *uuid.UUID) ([]*Journey, error)
	Update(ctx context.Context, j *Journey) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// LevelRepo manages level documents. The progression engine is the only
// writer of level state.
type LevelRepo interface {
	// ByJourney returns all levels for a journey, in no particular order.
	ByJourney(ctx context.Context, journeyID uuid.UUID) ([]*Level, error)

	// ByID returns the level with the given ID, or nil if absent.
	ByID(ctx context.Context, id uuid.UUID) (*Level, error)

	// Insert persists a new pending level. It returns ErrDuplicateLevel
	// when the (journeyID, levelNumber) slot is already occupied.
	Insert(ctx context.Context, l *Level) error

	// Complete marks the level completed with the given rating in a
	// single conditional update. It reports false when no pending level
	// with that ID exists — absent or already completed.
	Complete(ctx context.Context, id uuid.UUID, rating int, at time.Time) (bool, error)
}
