package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type FileResult struct{ ent.Schema }

func (FileResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "file_result"},
	}
}

func (FileResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("run_id", uuid.UUID{}),
		field.String("path").NotEmpty(),
		field.Int64("file_size").Default(0),
		field.Float("score").Min(0).Max(1),
		field.String("bucket").NotEmpty(),
		field.String("recommended").NotEmpty(),
		field.Bool("viable").Default(true),
	}
}

func (FileResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AnalysisRun.Type).
			Ref("results").
			Field("run_id").
			Unique().
			Required(),
		edge.To("outcomes", ProbeOutcome.Type),
	}
}

func (FileResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "score"),
		index.Fields("run_id", "path").Unique(),
	}
}
