package progression

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError indicates missing or out-of-range input. It is raised
// before any store or generator call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError indicates an unknown level, or a completion attempted on
// a level that is absent or already completed. No mutation happened.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// GenerationError indicates the task generator failed, timed out, or
// returned empty text. No level was persisted; the caller may retry.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("task generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError indicates the level store was unreachable or rejected
// a write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IntegrityError indicates two levels of one journey share a level
// number. The store's unique index makes this unreachable through this
// engine; it is surfaced, never silently resolved.
type IntegrityError struct {
	JourneyID   uuid.UUID
	LevelNumber int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("journey %s has duplicate level number %d", e.JourneyID, e.LevelNumber)
}
