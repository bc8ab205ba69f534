package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type ProbeOutcome struct{ ent.Schema }

func (ProbeOutcome) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "probe_outcome"},
	}
}

func (ProbeOutcome) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("file_result_id", uuid.UUID{}),
		field.Int("seq").NonNegative(),
		field.String("backend").NotEmpty(),
		field.String("status").NotEmpty(),
		field.Int("warnings").Default(0),
		field.JSON("messages", json.RawMessage{}).Optional(),
		field.Int("text_len").Optional().Nillable(),
		field.Int("pages").Default(0),
		field.Int64("elapsed_ms").Default(0),
	}
}

func (ProbeOutcome) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file_result", FileResult.Type).
			Ref("outcomes").
			Field("file_result_id").
			Unique().
			Required(),
	}
}

func (ProbeOutcome) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_result_id", "seq").Unique(),
		index.Fields("backend", "status"),
	}
}
