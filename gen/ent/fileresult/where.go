// Code generated by ent, DO NOT EDIT.

package fileresult

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldRunID, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldPath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldFileSize, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldScore, v))
}

// Bucket applies equality check predicate on the "bucket" field. It's identical to BucketEQ.
func Bucket(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldBucket, v))
}

// Recommended applies equality check predicate on the "recommended" field. It's identical to RecommendedEQ.
func Recommended(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldRecommended, v))
}

// Viable applies equality check predicate on the "viable" field. It's identical to ViableEQ.
func Viable(v bool) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldViable, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.FileResult {
	return predicate.FileResult(sql.FieldNotIn(FieldRunID, vs...))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.FileResult {
	return predicate.FileResult(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.FileResult {
	return predicate.FileResult(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldContainsFold(FieldPath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.FileResult {
	return predicate.FileResult(sql.FieldLTE(FieldFileSize, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.FileResult {
	return predicate.FileResult(sql.FieldLTE(FieldScore, v))
}

// BucketEQ applies the EQ predicate on the "bucket" field.
func BucketEQ(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldBucket, v))
}

// BucketNEQ applies the NEQ predicate on the "bucket" field.
func BucketNEQ(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldBucket, v))
}

// BucketIn applies the In predicate on the "bucket" field.
func BucketIn(vs ...string) predicate.FileResult {
	return predicate.FileResult(sql.FieldIn(FieldBucket, vs...))
}

// BucketNotIn applies the NotIn predicate on the "bucket" field.
func BucketNotIn(vs ...string) predicate.FileResult {
	return predicate.FileResult(sql.FieldNotIn(FieldBucket, vs...))
}

// BucketGT applies the GT predicate on the "bucket" field.
func BucketGT(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldGT(FieldBucket, v))
}

// BucketGTE applies the GTE predicate on the "bucket" field.
func BucketGTE(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldGTE(FieldBucket, v))
}

// BucketLT applies the LT predicate on the "bucket" field.
func BucketLT(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldLT(FieldBucket, v))
}

// BucketLTE applies the LTE predicate on the "bucket" field.
func BucketLTE(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldLTE(FieldBucket, v))
}

// BucketContains applies the Contains predicate on the "bucket" field.
func BucketContains(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldContains(FieldBucket, v))
}

// BucketHasPrefix applies the HasPrefix predicate on the "bucket" field.
func BucketHasPrefix(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldHasPrefix(FieldBucket, v))
}

// BucketHasSuffix applies the HasSuffix predicate on the "bucket" field.
func BucketHasSuffix(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldHasSuffix(FieldBucket, v))
}

// BucketEqualFold applies the EqualFold predicate on the "bucket" field.
func BucketEqualFold(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEqualFold(FieldBucket, v))
}

// BucketContainsFold applies the ContainsFold predicate on the "bucket" field.
func BucketContainsFold(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldContainsFold(FieldBucket, v))
}

// RecommendedEQ applies the EQ predicate on the "recommended" field.
func RecommendedEQ(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldRecommended, v))
}

// RecommendedNEQ applies the NEQ predicate on the "recommended" field.
func RecommendedNEQ(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldRecommended, v))
}

// RecommendedIn applies the In predicate on the "recommended" field.
func RecommendedIn(vs ...string) predicate.FileResult {
	return predicate.FileResult(sql.FieldIn(FieldRecommended, vs...))
}

// RecommendedNotIn applies the NotIn predicate on the "recommended" field.
func RecommendedNotIn(vs ...string) predicate.FileResult {
	return predicate.FileResult(sql.FieldNotIn(FieldRecommended, vs...))
}

// RecommendedGT applies the GT predicate on the "recommended" field.
func RecommendedGT(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldGT(FieldRecommended, v))
}

// RecommendedGTE applies the GTE predicate on the "recommended" field.
func RecommendedGTE(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldGTE(FieldRecommended, v))
}

// RecommendedLT applies the LT predicate on the "recommended" field.
func RecommendedLT(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldLT(FieldRecommended, v))
}

// RecommendedLTE applies the LTE predicate on the "recommended" field.
func RecommendedLTE(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldLTE(FieldRecommended, v))
}

// RecommendedContains applies the Contains predicate on the "recommended" field.
func RecommendedContains(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldContains(FieldRecommended, v))
}

// RecommendedHasPrefix applies the HasPrefix predicate on the "recommended" field.
func RecommendedHasPrefix(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldHasPrefix(FieldRecommended, v))
}

// RecommendedHasSuffix applies the HasSuffix predicate on the "recommended" field.
func RecommendedHasSuffix(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldHasSuffix(FieldRecommended, v))
}

// RecommendedEqualFold applies the EqualFold predicate on the "recommended" field.
func RecommendedEqualFold(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldEqualFold(FieldRecommended, v))
}

// RecommendedContainsFold applies the ContainsFold predicate on the "recommended" field.
func RecommendedContainsFold(v string) predicate.FileResult {
	return predicate.FileResult(sql.FieldContainsFold(FieldRecommended, v))
}

// ViableEQ applies the EQ predicate on the "viable" field.
func ViableEQ(v bool) predicate.FileResult {
	return predicate.FileResult(sql.FieldEQ(FieldViable, v))
}

// ViableNEQ applies the NEQ predicate on the "viable" field.
func ViableNEQ(v bool) predicate.FileResult {
	return predicate.FileResult(sql.FieldNEQ(FieldViable, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.FileResult {
	return predicate.FileResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.AnalysisRun) predicate.FileResult {
	return predicate.FileResult(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutcomes applies the HasEdge predicate on the "outcomes" edge.
func HasOutcomes() predicate.FileResult {
	return predicate.FileResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutcomesWith applies the HasEdge predicate on the "outcomes" edge with a given conditions (other predicates).
func HasOutcomesWith(preds ...predicate.ProbeOutcome) predicate.FileResult {
	return predicate.FileResult(func(s *sql.Selector) {
		step := newOutcomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileResult) predicate.FileResult {
	return predicate.FileResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileResult) predicate.FileResult {
	return predicate.FileResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileResult) predicate.FileResult {
	return predicate.FileResult(sql.NotPredicates(p))
}
