// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisRunColumns holds the columns for the "analysis_run" table.
	AnalysisRunColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "root_dir", Type: field.TypeString},
		{Name: "timeout_ms", Type: field.TypeInt64},
		{Name: "concurrency", Type: field.TypeInt},
		{Name: "backends", Type: field.TypeJSON},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_files", Type: field.TypeInt, Default: 0},
		{Name: "best_backend", Type: field.TypeString, Nullable: true},
	}
	// AnalysisRunTable holds the schema information for the "analysis_run" table.
	AnalysisRunTable = &schema.Table{
		Name:       "analysis_run",
		Columns:    AnalysisRunColumns,
		PrimaryKey: []*schema.Column{AnalysisRunColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunColumns[5]},
			},
		},
	}
	// FileResultColumns holds the columns for the "file_result" table.
	FileResultColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "bucket", Type: field.TypeString},
		{Name: "recommended", Type: field.TypeString},
		{Name: "viable", Type: field.TypeBool, Default: true},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// FileResultTable holds the schema information for the "file_result" table.
	FileResultTable = &schema.Table{
		Name:       "file_result",
		Columns:    FileResultColumns,
		PrimaryKey: []*schema.Column{FileResultColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_result_analysis_run_results",
				Columns:    []*schema.Column{FileResultColumns[7]},
				RefColumns: []*schema.Column{AnalysisRunColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fileresult_run_id_score",
				Unique:  false,
				Columns: []*schema.Column{FileResultColumns[7], FileResultColumns[3]},
			},
			{
				Name:    "fileresult_run_id_path",
				Unique:  true,
				Columns: []*schema.Column{FileResultColumns[7], FileResultColumns[1]},
			},
		},
	}
	// ProbeOutcomeColumns holds the columns for the "probe_outcome" table.
	ProbeOutcomeColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt},
		{Name: "backend", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "warnings", Type: field.TypeInt, Default: 0},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "text_len", Type: field.TypeInt, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
		{Name: "file_result_id", Type: field.TypeUUID},
	}
	// ProbeOutcomeTable holds the schema information for the "probe_outcome" table.
	ProbeOutcomeTable = &schema.Table{
		Name:       "probe_outcome",
		Columns:    ProbeOutcomeColumns,
		PrimaryKey: []*schema.Column{ProbeOutcomeColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "probe_outcome_file_result_outcomes",
				Columns:    []*schema.Column{ProbeOutcomeColumns[9]},
				RefColumns: []*schema.Column{FileResultColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "probeoutcome_file_result_id_seq",
				Unique:  true,
				Columns: []*schema.Column{ProbeOutcomeColumns[9], ProbeOutcomeColumns[1]},
			},
			{
				Name:    "probeoutcome_backend_status",
				Unique:  false,
				Columns: []*schema.Column{ProbeOutcomeColumns[2], ProbeOutcomeColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisRunTable,
		FileResultTable,
		ProbeOutcomeTable,
	}
)

func init() {
	AnalysisRunTable.Annotation = &entsql.Annotation{
		Table: "analysis_run",
	}
	FileResultTable.ForeignKeys[0].RefTable = AnalysisRunTable
	FileResultTable.Annotation = &entsql.Annotation{
		Table: "file_result",
	}
	ProbeOutcomeTable.ForeignKeys[0].RefTable = FileResultTable
	ProbeOutcomeTable.Annotation = &entsql.Annotation{
		Table: "probe_outcome",
	}
}
