// Code generated by ent, DO NOT EDIT.

package analysisrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldID, id))
}

// RootDir applies equality check predicate on the "root_dir" field. It's identical to RootDirEQ.
func RootDir(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldRootDir, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTimeoutMs, v))
}

// Concurrency applies equality check predicate on the "concurrency" field. It's identical to ConcurrencyEQ.
func Concurrency(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldConcurrency, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldFinishedAt, v))
}

// TotalFiles applies equality check predicate on the "total_files" field. It's identical to TotalFilesEQ.
func TotalFiles(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalFiles, v))
}

// BestBackend applies equality check predicate on the "best_backend" field. It's identical to BestBackendEQ.
func BestBackend(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldBestBackend, v))
}

// RootDirEQ applies the EQ predicate on the "root_dir" field.
func RootDirEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldRootDir, v))
}

// RootDirNEQ applies the NEQ predicate on the "root_dir" field.
func RootDirNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldRootDir, v))
}

// RootDirIn applies the In predicate on the "root_dir" field.
func RootDirIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldRootDir, vs...))
}

// RootDirNotIn applies the NotIn predicate on the "root_dir" field.
func RootDirNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldRootDir, vs...))
}

// RootDirGT applies the GT predicate on the "root_dir" field.
func RootDirGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldRootDir, v))
}

// RootDirGTE applies the GTE predicate on the "root_dir" field.
func RootDirGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldRootDir, v))
}

// RootDirLT applies the LT predicate on the "root_dir" field.
func RootDirLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldRootDir, v))
}

// RootDirLTE applies the LTE predicate on the "root_dir" field.
func RootDirLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldRootDir, v))
}

// RootDirContains applies the Contains predicate on the "root_dir" field.
func RootDirContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldRootDir, v))
}

// RootDirHasPrefix applies the HasPrefix predicate on the "root_dir" field.
func RootDirHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldRootDir, v))
}

// RootDirHasSuffix applies the HasSuffix predicate on the "root_dir" field.
func RootDirHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldRootDir, v))
}

// RootDirEqualFold applies the EqualFold predicate on the "root_dir" field.
func RootDirEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldRootDir, v))
}

// RootDirContainsFold applies the ContainsFold predicate on the "root_dir" field.
func RootDirContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldRootDir, v))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int64) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldTimeoutMs, v))
}

// ConcurrencyEQ applies the EQ predicate on the "concurrency" field.
func ConcurrencyEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldConcurrency, v))
}

// ConcurrencyNEQ applies the NEQ predicate on the "concurrency" field.
func ConcurrencyNEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldConcurrency, v))
}

// ConcurrencyIn applies the In predicate on the "concurrency" field.
func ConcurrencyIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldConcurrency, vs...))
}

// ConcurrencyNotIn applies the NotIn predicate on the "concurrency" field.
func ConcurrencyNotIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldConcurrency, vs...))
}

// ConcurrencyGT applies the GT predicate on the "concurrency" field.
func ConcurrencyGT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldConcurrency, v))
}

// ConcurrencyGTE applies the GTE predicate on the "concurrency" field.
func ConcurrencyGTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldConcurrency, v))
}

// ConcurrencyLT applies the LT predicate on the "concurrency" field.
func ConcurrencyLT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldConcurrency, v))
}

// ConcurrencyLTE applies the LTE predicate on the "concurrency" field.
func ConcurrencyLTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldConcurrency, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldFinishedAt))
}

// TotalFilesEQ applies the EQ predicate on the "total_files" field.
func TotalFilesEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalFiles, v))
}

// TotalFilesNEQ applies the NEQ predicate on the "total_files" field.
func TotalFilesNEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldTotalFiles, v))
}

// TotalFilesIn applies the In predicate on the "total_files" field.
func TotalFilesIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldTotalFiles, vs...))
}

// TotalFilesNotIn applies the NotIn predicate on the "total_files" field.
func TotalFilesNotIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldTotalFiles, vs...))
}

// TotalFilesGT applies the GT predicate on the "total_files" field.
func TotalFilesGT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldTotalFiles, v))
}

// TotalFilesGTE applies the GTE predicate on the "total_files" field.
func TotalFilesGTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldTotalFiles, v))
}

// TotalFilesLT applies the LT predicate on the "total_files" field.
func TotalFilesLT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldTotalFiles, v))
}

// TotalFilesLTE applies the LTE predicate on the "total_files" field.
func TotalFilesLTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldTotalFiles, v))
}

// BestBackendEQ applies the EQ predicate on the "best_backend" field.
func BestBackendEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldBestBackend, v))
}

// BestBackendNEQ applies the NEQ predicate on the "best_backend" field.
func BestBackendNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldBestBackend, v))
}

// BestBackendIn applies the In predicate on the "best_backend" field.
func BestBackendIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldBestBackend, vs...))
}

// BestBackendNotIn applies the NotIn predicate on the "best_backend" field.
func BestBackendNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldBestBackend, vs...))
}

// BestBackendGT applies the GT predicate on the "best_backend" field.
func BestBackendGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldBestBackend, v))
}

// BestBackendGTE applies the GTE predicate on the "best_backend" field.
func BestBackendGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldBestBackend, v))
}

// BestBackendLT applies the LT predicate on the "best_backend" field.
func BestBackendLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldBestBackend, v))
}

// BestBackendLTE applies the LTE predicate on the "best_backend" field.
func BestBackendLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldBestBackend, v))
}

// BestBackendContains applies the Contains predicate on the "best_backend" field.
func BestBackendContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldBestBackend, v))
}

// BestBackendHasPrefix applies the HasPrefix predicate on the "best_backend" field.
func BestBackendHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldBestBackend, v))
}

// BestBackendHasSuffix applies the HasSuffix predicate on the "best_backend" field.
func BestBackendHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldBestBackend, v))
}

// BestBackendIsNil applies the IsNil predicate on the "best_backend" field.
func BestBackendIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldBestBackend))
}

// BestBackendNotNil applies the NotNil predicate on the "best_backend" field.
func BestBackendNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldBestBackend))
}

// BestBackendEqualFold applies the EqualFold predicate on the "best_backend" field.
func BestBackendEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldBestBackend, v))
}

// BestBackendContainsFold applies the ContainsFold predicate on the "best_backend" field.
func BestBackendContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldBestBackend, v))
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.AnalysisRun {
	return predicate.AnalysisRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.FileResult) predicate.AnalysisRun {
	return predicate.AnalysisRun(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.NotPredicates(p))
}
