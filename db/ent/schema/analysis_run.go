package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type AnalysisRun struct{ ent.Schema }

func (AnalysisRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_run"},
	}
}

func (AnalysisRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("root_dir").NotEmpty(),
		field.Int64("timeout_ms").Positive(),
		field.Int("concurrency").Positive(),
		field.Strings("backends"),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.Int("total_files").Default(0),
		field.String("best_backend").Optional().Nillable(),
	}
}

func (AnalysisRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("results", FileResult.Type),
	}
}

func (AnalysisRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}
