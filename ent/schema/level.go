package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Level is one generated practice task within a journey. Levels are
// numbered sequentially per journey and transition exactly once from
// pending to completed, picking up a 1-5 difficulty rating on the way.
type Level struct {
	ent.Schema
}

func (Level) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("journey_id", uuid.UUID{}),
		field.Int("level_number").
			Positive(),
		field.String("task").
			NotEmpty().
			Immutable().
			Comment("Generated task description, set once at creation"),
		field.Bool("completed").
			Default(false),
		field.Int("difficulty_rating").
			Optional().
			Nillable().
			Min(1).
			Max(5).
			Comment("Learner's 1-5 rating, absent until completion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Level) Indexes() []ent.Index {
	return []ent.Index{
		// Two concurrent generation calls must never both insert a level
		// for the same slot; the second insert fails on this index.
		index.Fields("journey_id", "level_number").
			Unique(),
		index.Fields("journey_id"),
	}
}
