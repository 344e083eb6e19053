package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Journey is a user's learning track on one skill: the skill itself,
// their self-reported experience level, time budget, and goal.
type Journey struct {
	ent.Schema
}

func (Journey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.String("skill").
			NotEmpty(),
		field.String("level").
			NotEmpty().
			Comment("Experience level: Beginner, Intermediate, or Advanced"),
		field.String("time_commitment").
			Optional().
			Comment("Free-form time budget, e.g. \"15 mins\""),
		field.String("goal").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Journey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
