package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatsSnapshot stores the full progress aggregate as one JSON record.
// Only the newest row matters; older rows are kept briefly as a
// fallback and pruned on save.
type StatsSnapshot struct {
	ent.Schema
}

func (StatsSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was written"),
		field.JSON("data", map[string]any{}).
			Comment("Full UserStats aggregate as JSON"),
	}
}

func (StatsSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
