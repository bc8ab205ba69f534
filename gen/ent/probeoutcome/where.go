// Code generated by ent, DO NOT EDIT.

package probeoutcome

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldID, id))
}

// FileResultID applies equality check predicate on the "file_result_id" field. It's identical to FileResultIDEQ.
func FileResultID(v uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldFileResultID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldSeq, v))
}

// Backend applies equality check predicate on the "backend" field. It's identical to BackendEQ.
func Backend(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldBackend, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldStatus, v))
}

// Warnings applies equality check predicate on the "warnings" field. It's identical to WarningsEQ.
func Warnings(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldWarnings, v))
}

// TextLen applies equality check predicate on the "text_len" field. It's identical to TextLenEQ.
func TextLen(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldTextLen, v))
}

// Pages applies equality check predicate on the "pages" field. It's identical to PagesEQ.
func Pages(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldPages, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldElapsedMs, v))
}

// FileResultIDEQ applies the EQ predicate on the "file_result_id" field.
func FileResultIDEQ(v uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldFileResultID, v))
}

// FileResultIDNEQ applies the NEQ predicate on the "file_result_id" field.
func FileResultIDNEQ(v uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldFileResultID, v))
}

// FileResultIDIn applies the In predicate on the "file_result_id" field.
func FileResultIDIn(vs ...uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldFileResultID, vs...))
}

// FileResultIDNotIn applies the NotIn predicate on the "file_result_id" field.
func FileResultIDNotIn(vs ...uuid.UUID) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldFileResultID, vs...))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldSeq, v))
}

// BackendEQ applies the EQ predicate on the "backend" field.
func BackendEQ(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldBackend, v))
}

// BackendNEQ applies the NEQ predicate on the "backend" field.
func BackendNEQ(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldBackend, v))
}

// BackendIn applies the In predicate on the "backend" field.
func BackendIn(vs ...string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldBackend, vs...))
}

// BackendNotIn applies the NotIn predicate on the "backend" field.
func BackendNotIn(vs ...string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldBackend, vs...))
}

// BackendGT applies the GT predicate on the "backend" field.
func BackendGT(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldBackend, v))
}

// BackendGTE applies the GTE predicate on the "backend" field.
func BackendGTE(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldBackend, v))
}

// BackendLT applies the LT predicate on the "backend" field.
func BackendLT(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldBackend, v))
}

// BackendLTE applies the LTE predicate on the "backend" field.
func BackendLTE(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldBackend, v))
}

// BackendContains applies the Contains predicate on the "backend" field.
func BackendContains(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldContains(FieldBackend, v))
}

// BackendHasPrefix applies the HasPrefix predicate on the "backend" field.
func BackendHasPrefix(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldHasPrefix(FieldBackend, v))
}

// BackendHasSuffix applies the HasSuffix predicate on the "backend" field.
func BackendHasSuffix(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldHasSuffix(FieldBackend, v))
}

// BackendEqualFold applies the EqualFold predicate on the "backend" field.
func BackendEqualFold(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEqualFold(FieldBackend, v))
}

// BackendContainsFold applies the ContainsFold predicate on the "backend" field.
func BackendContainsFold(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldContainsFold(FieldBackend, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldContainsFold(FieldStatus, v))
}

// WarningsEQ applies the EQ predicate on the "warnings" field.
func WarningsEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldWarnings, v))
}

// WarningsNEQ applies the NEQ predicate on the "warnings" field.
func WarningsNEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldWarnings, v))
}

// WarningsIn applies the In predicate on the "warnings" field.
func WarningsIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldWarnings, vs...))
}

// WarningsNotIn applies the NotIn predicate on the "warnings" field.
func WarningsNotIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldWarnings, vs...))
}

// WarningsGT applies the GT predicate on the "warnings" field.
func WarningsGT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldWarnings, v))
}

// WarningsGTE applies the GTE predicate on the "warnings" field.
func WarningsGTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldWarnings, v))
}

// WarningsLT applies the LT predicate on the "warnings" field.
func WarningsLT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldWarnings, v))
}

// WarningsLTE applies the LTE predicate on the "warnings" field.
func WarningsLTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldWarnings, v))
}

// MessagesIsNil applies the IsNil predicate on the "messages" field.
func MessagesIsNil() predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIsNull(FieldMessages))
}

// MessagesNotNil applies the NotNil predicate on the "messages" field.
func MessagesNotNil() predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotNull(FieldMessages))
}

// TextLenEQ applies the EQ predicate on the "text_len" field.
func TextLenEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldTextLen, v))
}

// TextLenNEQ applies the NEQ predicate on the "text_len" field.
func TextLenNEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldTextLen, v))
}

// TextLenIn applies the In predicate on the "text_len" field.
func TextLenIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldTextLen, vs...))
}

// TextLenNotIn applies the NotIn predicate on the "text_len" field.
func TextLenNotIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldTextLen, vs...))
}

// TextLenGT applies the GT predicate on the "text_len" field.
func TextLenGT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldTextLen, v))
}

// TextLenGTE applies the GTE predicate on the "text_len" field.
func TextLenGTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldTextLen, v))
}

// TextLenLT applies the LT predicate on the "text_len" field.
func TextLenLT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldTextLen, v))
}

// TextLenLTE applies the LTE predicate on the "text_len" field.
func TextLenLTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldTextLen, v))
}

// TextLenIsNil applies the IsNil predicate on the "text_len" field.
func TextLenIsNil() predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIsNull(FieldTextLen))
}

// TextLenNotNil applies the NotNil predicate on the "text_len" field.
func TextLenNotNil() predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotNull(FieldTextLen))
}

// PagesEQ applies the EQ predicate on the "pages" field.
func PagesEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldPages, v))
}

// PagesNEQ applies the NEQ predicate on the "pages" field.
func PagesNEQ(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldPages, v))
}

// PagesIn applies the In predicate on the "pages" field.
func PagesIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldPages, vs...))
}

// PagesNotIn applies the NotIn predicate on the "pages" field.
func PagesNotIn(vs ...int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldPages, vs...))
}

// PagesGT applies the GT predicate on the "pages" field.
func PagesGT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldPages, v))
}

// PagesGTE applies the GTE predicate on the "pages" field.
func PagesGTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldPages, v))
}

// PagesLT applies the LT predicate on the "pages" field.
func PagesLT(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldPages, v))
}

// PagesLTE applies the LTE predicate on the "pages" field.
func PagesLTE(v int) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldPages, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int64) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.FieldLTE(FieldElapsedMs, v))
}

// HasFileResult applies the HasEdge predicate on the "file_result" edge.
func HasFileResult() predicate.ProbeOutcome {
	return predicate.ProbeOutcome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileResultTable, FileResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileResultWith applies the HasEdge predicate on the "file_result" edge with a given conditions (other predicates).
func HasFileResultWith(preds ...predicate.FileResult) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(func(s *sql.Selector) {
		step := newFileResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProbeOutcome) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProbeOutcome) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProbeOutcome) predicate.ProbeOutcome {
	return predicate.ProbeOutcome(sql.NotPredicates(p))
}
