package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records every question batch generation for cost
// tracking and debugging. Quiz results are never stored server-side;
// this is request observability only.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			Comment("Curriculum subject name"),
		field.String("unit_name").
			Comment("Curriculum unit display name"),
		field.JSON("topics", []string{}).
			Comment("Effective topic list sent to the model"),
		field.String("difficulty").
			Comment("easy, medium or hard"),
		field.Int("requested_count").
			Comment("Questions asked for"),
		field.Int("returned_count").
			Default(0).
			Comment("Questions the model actually produced"),
		field.String("model").
			Default("").
			Comment("Model ID that served the request"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Comment("Whether generation succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("success"),
	}
}
