// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisRun  = "AnalysisRun"
	TypeFileResult   = "FileResult"
	TypeProbeOutcome = "ProbeOutcome"
)

// AnalysisRunMutation represents an operation that mutates the AnalysisRun nodes in the graph.
type AnalysisRunMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	root_dir       *string
	timeout_ms     *int64
	addtimeout_ms  *int64
	concurrency    *int
	addconcurrency *int
	backends       *[]string
	appendbackends []string
	started_at     *time.Time
	finished_at    *time.Time
	total_files    *int
	addtotal_files *int
	best_backend   *string
	clearedFields  map[string]struct{}
	results        map[uuid.UUID]struct{}
	removedresults map[uuid.UUID]struct{}
	clearedresults bool
	done           bool
	oldValue       func(context.Context) (*AnalysisRun, error)
	predicates     []predicate.AnalysisRun
}

var _ ent.Mutation = (*AnalysisRunMutation)(nil)

// analysisrunOption allows management of the mutation configuration using functional options.
type analysisrunOption func(*AnalysisRunMutation)

// newAnalysisRunMutation creates new mutation for the AnalysisRun entity.
func newAnalysisRunMutation(c config, op Op, opts ...analysisrunOption) *AnalysisRunMutation {
	m := &AnalysisRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisRunID sets the ID field of the mutation.
func withAnalysisRunID(id uuid.UUID) analysisrunOption {
	return func(m *AnalysisRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisRun
		)
		m.oldValue = func(ctx context.Context) (*AnalysisRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisRun sets the old AnalysisRun of the mutation.
func withAnalysisRun(node *AnalysisRun) analysisrunOption {
	return func(m *AnalysisRunMutation) {
		m.oldValue = func(context.Context) (*AnalysisRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisRun entities.
func (m *AnalysisRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRootDir sets the "root_dir" field.
func (m *AnalysisRunMutation) SetRootDir(s string) {
	m.root_dir = &s
}

// RootDir returns the value of the "root_dir" field in the mutation.
func (m *AnalysisRunMutation) RootDir() (r string, exists bool) {
	v := m.root_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldRootDir returns the old "root_dir" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldRootDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootDir: %w", err)
	}
	return oldValue.RootDir, nil
}

// ResetRootDir resets all changes to the "root_dir" field.
func (m *AnalysisRunMutation) ResetRootDir() {
	m.root_dir = nil
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *AnalysisRunMutation) SetTimeoutMs(i int64) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *AnalysisRunMutation) TimeoutMs() (r int64, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldTimeoutMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *AnalysisRunMutation) AddTimeoutMs(i int64) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *AnalysisRunMutation) AddedTimeoutMs() (r int64, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *AnalysisRunMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetConcurrency sets the "concurrency" field.
func (m *AnalysisRunMutation) SetConcurrency(i int) {
	m.concurrency = &i
	m.addconcurrency = nil
}

// Concurrency returns the value of the "concurrency" field in the mutation.
func (m *AnalysisRunMutation) Concurrency() (r int, exists bool) {
	v := m.concurrency
	if v == nil {
		return
	}
	return *v, true
}

// OldConcurrency returns the old "concurrency" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldConcurrency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcurrency: %w", err)
	}
	return oldValue.Concurrency, nil
}

// AddConcurrency adds i to the "concurrency" field.
func (m *AnalysisRunMutation) AddConcurrency(i int) {
	if m.addconcurrency != nil {
		*m.addconcurrency += i
	} else {
		m.addconcurrency = &i
	}
}

// AddedConcurrency returns the value that was added to the "concurrency" field in this mutation.
func (m *AnalysisRunMutation) AddedConcurrency() (r int, exists bool) {
	v := m.addconcurrency
	if v == nil {
		return
	}
	return *v, true
}

// ResetConcurrency resets all changes to the "concurrency" field.
func (m *AnalysisRunMutation) ResetConcurrency() {
	m.concurrency = nil
	m.addconcurrency = nil
}

// SetBackends sets the "backends" field.
func (m *AnalysisRunMutation) SetBackends(s []string) {
	m.backends = &s
	m.appendbackends = nil
}

// Backends returns the value of the "backends" field in the mutation.
func (m *AnalysisRunMutation) Backends() (r []string, exists bool) {
	v := m.backends
	if v == nil {
		return
	}
	return *v, true
}

// OldBackends returns the old "backends" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldBackends(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackends is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackends requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackends: %w", err)
	}
	return oldValue.Backends, nil
}

// AppendBackends adds s to the "backends" field.
func (m *AnalysisRunMutation) AppendBackends(s []string) {
	m.appendbackends = append(m.appendbackends, s...)
}

// AppendedBackends returns the list of values that were appended to the "backends" field in this mutation.
func (m *AnalysisRunMutation) AppendedBackends() ([]string, bool) {
	if len(m.appendbackends) == 0 {
		return nil, false
	}
	return m.appendbackends, true
}

// ResetBackends resets all changes to the "backends" field.
func (m *AnalysisRunMutation) ResetBackends() {
	m.backends = nil
	m.appendbackends = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *AnalysisRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AnalysisRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AnalysisRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[analysisrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AnalysisRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AnalysisRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, analysisrun.FieldFinishedAt)
}

// SetTotalFiles sets the "total_files" field.
func (m *AnalysisRunMutation) SetTotalFiles(i int) {
	m.total_files = &i
	m.addtotal_files = nil
}

// TotalFiles returns the value of the "total_files" field in the mutation.
func (m *AnalysisRunMutation) TotalFiles() (r int, exists bool) {
	v := m.total_files
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFiles returns the old "total_files" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldTotalFiles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFiles: %w", err)
	}
	return oldValue.TotalFiles, nil
}

// AddTotalFiles adds i to the "total_files" field.
func (m *AnalysisRunMutation) AddTotalFiles(i int) {
	if m.addtotal_files != nil {
		*m.addtotal_files += i
	} else {
		m.addtotal_files = &i
	}
}

// AddedTotalFiles returns the value that was added to the "total_files" field in this mutation.
func (m *AnalysisRunMutation) AddedTotalFiles() (r int, exists bool) {
	v := m.addtotal_files
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFiles resets all changes to the "total_files" field.
func (m *AnalysisRunMutation) ResetTotalFiles() {
	m.total_files = nil
	m.addtotal_files = nil
}

// SetBestBackend sets the "best_backend" field.
func (m *AnalysisRunMutation) SetBestBackend(s string) {
	m.best_backend = &s
}

// BestBackend returns the value of the "best_backend" field in the mutation.
func (m *AnalysisRunMutation) BestBackend() (r string, exists bool) {
	v := m.best_backend
	if v == nil {
		return
	}
	return *v, true
}

// OldBestBackend returns the old "best_backend" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldBestBackend(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestBackend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestBackend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestBackend: %w", err)
	}
	return oldValue.BestBackend, nil
}

// ClearBestBackend clears the value of the "best_backend" field.
func (m *AnalysisRunMutation) ClearBestBackend() {
	m.best_backend = nil
	m.clearedFields[analysisrun.FieldBestBackend] = struct{}{}
}

// BestBackendCleared returns if the "best_backend" field was cleared in this mutation.
func (m *AnalysisRunMutation) BestBackendCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldBestBackend]
	return ok
}

// ResetBestBackend resets all changes to the "best_backend" field.
func (m *AnalysisRunMutation) ResetBestBackend() {
	m.best_backend = nil
	delete(m.clearedFields, analysisrun.FieldBestBackend)
}

// AddResultIDs adds the "results" edge to the FileResult entity by ids.
func (m *AnalysisRunMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the FileResult entity.
func (m *AnalysisRunMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the FileResult entity was cleared.
func (m *AnalysisRunMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the FileResult entity by IDs.
func (m *AnalysisRunMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the FileResult entity.
func (m *AnalysisRunMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *AnalysisRunMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *AnalysisRunMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the AnalysisRunMutation builder.
func (m *AnalysisRunMutation) Where(ps ...predicate.AnalysisRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisRun).
func (m *AnalysisRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisRunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.root_dir != nil {
		fields = append(fields, analysisrun.FieldRootDir)
	}
	if m.timeout_ms != nil {
		fields = append(fields, analysisrun.FieldTimeoutMs)
	}
	if m.concurrency != nil {
		fields = append(fields, analysisrun.FieldConcurrency)
	}
	if m.backends != nil {
		fields = append(fields, analysisrun.FieldBackends)
	}
	if m.started_at != nil {
		fields = append(fields, analysisrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, analysisrun.FieldFinishedAt)
	}
	if m.total_files != nil {
		fields = append(fields, analysisrun.FieldTotalFiles)
	}
	if m.best_backend != nil {
		fields = append(fields, analysisrun.FieldBestBackend)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisrun.FieldRootDir:
		return m.RootDir()
	case analysisrun.FieldTimeoutMs:
		return m.TimeoutMs()
	case analysisrun.FieldConcurrency:
		return m.Concurrency()
	case analysisrun.FieldBackends:
		return m.Backends()
	case analysisrun.FieldStartedAt:
		return m.StartedAt()
	case analysisrun.FieldFinishedAt:
		return m.FinishedAt()
	case analysisrun.FieldTotalFiles:
		return m.TotalFiles()
	case analysisrun.FieldBestBackend:
		return m.BestBackend()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisrun.FieldRootDir:
		return m.OldRootDir(ctx)
	case analysisrun.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case analysisrun.FieldConcurrency:
		return m.OldConcurrency(ctx)
	case analysisrun.FieldBackends:
		return m.OldBackends(ctx)
	case analysisrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysisrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case analysisrun.FieldTotalFiles:
		return m.OldTotalFiles(ctx)
	case analysisrun.FieldBestBackend:
		return m.OldBestBackend(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisrun.FieldRootDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootDir(v)
		return nil
	case analysisrun.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case analysisrun.FieldConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcurrency(v)
		return nil
	case analysisrun.FieldBackends:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackends(v)
		return nil
	case analysisrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysisrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case analysisrun.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFiles(v)
		return nil
	case analysisrun.FieldBestBackend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestBackend(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisRunMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_ms != nil {
		fields = append(fields, analysisrun.FieldTimeoutMs)
	}
	if m.addconcurrency != nil {
		fields = append(fields, analysisrun.FieldConcurrency)
	}
	if m.addtotal_files != nil {
		fields = append(fields, analysisrun.FieldTotalFiles)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisrun.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	case analysisrun.FieldConcurrency:
		return m.AddedConcurrency()
	case analysisrun.FieldTotalFiles:
		return m.AddedTotalFiles()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisrun.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	case analysisrun.FieldConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConcurrency(v)
		return nil
	case analysisrun.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFiles(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisrun.FieldFinishedAt) {
		fields = append(fields, analysisrun.FieldFinishedAt)
	}
	if m.FieldCleared(analysisrun.FieldBestBackend) {
		fields = append(fields, analysisrun.FieldBestBackend)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisRunMutation) ClearField(name string) error {
	switch name {
	case analysisrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case analysisrun.FieldBestBackend:
		m.ClearBestBackend()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisRunMutation) ResetField(name string) error {
	switch name {
	case analysisrun.FieldRootDir:
		m.ResetRootDir()
		return nil
	case analysisrun.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case analysisrun.FieldConcurrency:
		m.ResetConcurrency()
		return nil
	case analysisrun.FieldBackends:
		m.ResetBackends()
		return nil
	case analysisrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysisrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case analysisrun.FieldTotalFiles:
		m.ResetTotalFiles()
		return nil
	case analysisrun.FieldBestBackend:
		m.ResetBestBackend()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.results != nil {
		edges = append(edges, analysisrun.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisrun.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedresults != nil {
		edges = append(edges, analysisrun.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analysisrun.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresults {
		edges = append(edges, analysisrun.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisRunMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisrun.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisRunMutation) ResetEdge(name string) error {
	switch name {
	case analysisrun.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun edge %s", name)
}

// FileResultMutation represents an operation that mutates the FileResult nodes in the graph.
type FileResultMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	_path           *string
	file_size       *int64
	addfile_size    *int64
	score           *float64
	addscore        *float64
	bucket          *string
	recommended     *string
	viable          *bool
	clearedFields   map[string]struct{}
	run             *uuid.UUID
	clearedrun      bool
	outcomes        map[uuid.UUID]struct{}
	removedoutcomes map[uuid.UUID]struct{}
	clearedoutcomes bool
	done            bool
	oldValue        func(context.Context) (*FileResult, error)
	predicates      []predicate.FileResult
}

var _ ent.Mutation = (*FileResultMutation)(nil)

// fileresultOption allows management of the mutation configuration using functional options.
type fileresultOption func(*FileResultMutation)

// newFileResultMutation creates new mutation for the FileResult entity.
func newFileResultMutation(c config, op Op, opts ...fileresultOption) *FileResultMutation {
	m := &FileResultMutation{
		config:        c,
		op:            op,
		typ:           TypeFileResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileResultID sets the ID field of the mutation.
func withFileResultID(id uuid.UUID) fileresultOption {
	return func(m *FileResultMutation) {
		var (
			err   error
			once  sync.Once
			value *FileResult
		)
		m.oldValue = func(ctx context.Context) (*FileResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileResult sets the old FileResult of the mutation.
func withFileResult(node *FileResult) fileresultOption {
	return func(m *FileResultMutation) {
		m.oldValue = func(context.Context) (*FileResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileResult entities.
func (m *FileResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *FileResultMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *FileResultMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *FileResultMutation) ResetRunID() {
	m.run = nil
}

// SetPath sets the "path" field.
func (m *FileResultMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *FileResultMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *FileResultMutation) ResetPath() {
	m._path = nil
}

// SetFileSize sets the "file_size" field.
func (m *FileResultMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *FileResultMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *FileResultMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *FileResultMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *FileResultMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetScore sets the "score" field.
func (m *FileResultMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *FileResultMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *FileResultMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *FileResultMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *FileResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetBucket sets the "bucket" field.
func (m *FileResultMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *FileResultMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *FileResultMutation) ResetBucket() {
	m.bucket = nil
}

// SetRecommended sets the "recommended" field.
func (m *FileResultMutation) SetRecommended(s string) {
	m.recommended = &s
}

// Recommended returns the value of the "recommended" field in the mutation.
func (m *FileResultMutation) Recommended() (r string, exists bool) {
	v := m.recommended
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommended returns the old "recommended" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldRecommended(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommended is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommended requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommended: %w", err)
	}
	return oldValue.Recommended, nil
}

// ResetRecommended resets all changes to the "recommended" field.
func (m *FileResultMutation) ResetRecommended() {
	m.recommended = nil
}

// SetViable sets the "viable" field.
func (m *FileResultMutation) SetViable(b bool) {
	m.viable = &b
}

// Viable returns the value of the "viable" field in the mutation.
func (m *FileResultMutation) Viable() (r bool, exists bool) {
	v := m.viable
	if v == nil {
		return
	}
	return *v, true
}

// OldViable returns the old "viable" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldViable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViable: %w", err)
	}
	return oldValue.Viable, nil
}

// ResetViable resets all changes to the "viable" field.
func (m *FileResultMutation) ResetViable() {
	m.viable = nil
}

// ClearRun clears the "run" edge to the AnalysisRun entity.
func (m *FileResultMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[fileresult.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AnalysisRun entity was cleared.
func (m *FileResultMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *FileResultMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *FileResultMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddOutcomeIDs adds the "outcomes" edge to the ProbeOutcome entity by ids.
func (m *FileResultMutation) AddOutcomeIDs(ids ...uuid.UUID) {
	if m.outcomes == nil {
		m.outcomes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the ProbeOutcome entity.
func (m *FileResultMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the ProbeOutcome entity was cleared.
func (m *FileResultMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the ProbeOutcome entity by IDs.
func (m *FileResultMutation) RemoveOutcomeIDs(ids ...uuid.UUID) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the ProbeOutcome entity.
func (m *FileResultMutation) RemovedOutcomesIDs() (ids []uuid.UUID) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *FileResultMutation) OutcomesIDs() (ids []uuid.UUID) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *FileResultMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// Where appends a list predicates to the FileResultMutation builder.
func (m *FileResultMutation) Where(ps ...predicate.FileResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileResult).
func (m *FileResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, fileresult.FieldRunID)
	}
	if m._path != nil {
		fields = append(fields, fileresult.FieldPath)
	}
	if m.file_size != nil {
		fields = append(fields, fileresult.FieldFileSize)
	}
	if m.score != nil {
		fields = append(fields, fileresult.FieldScore)
	}
	if m.bucket != nil {
		fields = append(fields, fileresult.FieldBucket)
	}
	if m.recommended != nil {
		fields = append(fields, fileresult.FieldRecommended)
	}
	if m.viable != nil {
		fields = append(fields, fileresult.FieldViable)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fileresult.FieldRunID:
		return m.RunID()
	case fileresult.FieldPath:
		return m.Path()
	case fileresult.FieldFileSize:
		return m.FileSize()
	case fileresult.FieldScore:
		return m.Score()
	case fileresult.FieldBucket:
		return m.Bucket()
	case fileresult.FieldRecommended:
		return m.Recommended()
	case fileresult.FieldViable:
		return m.Viable()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fileresult.FieldRunID:
		return m.OldRunID(ctx)
	case fileresult.FieldPath:
		return m.OldPath(ctx)
	case fileresult.FieldFileSize:
		return m.OldFileSize(ctx)
	case fileresult.FieldScore:
		return m.OldScore(ctx)
	case fileresult.FieldBucket:
		return m.OldBucket(ctx)
	case fileresult.FieldRecommended:
		return m.OldRecommended(ctx)
	case fileresult.FieldViable:
		return m.OldViable(ctx)
	}
	return nil, fmt.Errorf("unknown FileResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fileresult.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case fileresult.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case fileresult.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case fileresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case fileresult.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case fileresult.FieldRecommended:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommended(v)
		return nil
	case fileresult.FieldViable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViable(v)
		return nil
	}
	return fmt.Errorf("unknown FileResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileResultMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, fileresult.FieldFileSize)
	}
	if m.addscore != nil {
		fields = append(fields, fileresult.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fileresult.FieldFileSize:
		return m.AddedFileSize()
	case fileresult.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fileresult.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case fileresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown FileResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FileResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileResultMutation) ResetField(name string) error {
	switch name {
	case fileresult.FieldRunID:
		m.ResetRunID()
		return nil
	case fileresult.FieldPath:
		m.ResetPath()
		return nil
	case fileresult.FieldFileSize:
		m.ResetFileSize()
		return nil
	case fileresult.FieldScore:
		m.ResetScore()
		return nil
	case fileresult.FieldBucket:
		m.ResetBucket()
		return nil
	case fileresult.FieldRecommended:
		m.ResetRecommended()
		return nil
	case fileresult.FieldViable:
		m.ResetViable()
		return nil
	}
	return fmt.Errorf("unknown FileResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, fileresult.EdgeRun)
	}
	if m.outcomes != nil {
		edges = append(edges, fileresult.EdgeOutcomes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fileresult.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case fileresult.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoutcomes != nil {
		edges = append(edges, fileresult.EdgeOutcomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fileresult.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, fileresult.EdgeRun)
	}
	if m.clearedoutcomes {
		edges = append(edges, fileresult.EdgeOutcomes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileResultMutation) EdgeCleared(name string) bool {
	switch name {
	case fileresult.EdgeRun:
		return m.clearedrun
	case fileresult.EdgeOutcomes:
		return m.clearedoutcomes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileResultMutation) ClearEdge(name string) error {
	switch name {
	case fileresult.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown FileResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileResultMutation) ResetEdge(name string) error {
	switch name {
	case fileresult.EdgeRun:
		m.ResetRun()
		return nil
	case fileresult.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	}
	return fmt.Errorf("unknown FileResult edge %s", name)
}

// ProbeOutcomeMutation represents an operation that mutates the ProbeOutcome nodes in the graph.
type ProbeOutcomeMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	seq                *int
	addseq             *int
	backend            *string
	status             *string
	warnings           *int
	addwarnings        *int
	messages           *json.RawMessage
	appendmessages     json.RawMessage
	text_len           *int
	addtext_len        *int
	pages              *int
	addpages           *int
	elapsed_ms         *int64
	addelapsed_ms      *int64
	clearedFields      map[string]struct{}
	file_result        *uuid.UUID
	clearedfile_result bool
	done               bool
	oldValue           func(context.Context) (*ProbeOutcome, error)
	predicates         []predicate.ProbeOutcome
}

var _ ent.Mutation = (*ProbeOutcomeMutation)(nil)

// probeoutcomeOption allows management of the mutation configuration using functional options.
type probeoutcomeOption func(*ProbeOutcomeMutation)

// newProbeOutcomeMutation creates new mutation for the ProbeOutcome entity.
func newProbeOutcomeMutation(c config, op Op, opts ...probeoutcomeOption) *ProbeOutcomeMutation {
	m := &ProbeOutcomeMutation{
		config:        c,
		op:            op,
		typ:           TypeProbeOutcome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProbeOutcomeID sets the ID field of the mutation.
func withProbeOutcomeID(id uuid.UUID) probeoutcomeOption {
	return func(m *ProbeOutcomeMutation) {
		var (
			err   error
			once  sync.Once
			value *ProbeOutcome
		)
		m.oldValue = func(ctx context.Context) (*ProbeOutcome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProbeOutcome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProbeOutcome sets the old ProbeOutcome of the mutation.
func withProbeOutcome(node *ProbeOutcome) probeoutcomeOption {
	return func(m *ProbeOutcomeMutation) {
		m.oldValue = func(context.Context) (*ProbeOutcome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProbeOutcomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProbeOutcomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProbeOutcome entities.
func (m *ProbeOutcomeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProbeOutcomeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProbeOutcomeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProbeOutcome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileResultID sets the "file_result_id" field.
func (m *ProbeOutcomeMutation) SetFileResultID(u uuid.UUID) {
	m.file_result = &u
}

// FileResultID returns the value of the "file_result_id" field in the mutation.
func (m *ProbeOutcomeMutation) FileResultID() (r uuid.UUID, exists bool) {
	v := m.file_result
	if v == nil {
		return
	}
	return *v, true
}

// OldFileResultID returns the old "file_result_id" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldFileResultID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileResultID: %w", err)
	}
	return oldValue.FileResultID, nil
}

// ResetFileResultID resets all changes to the "file_result_id" field.
func (m *ProbeOutcomeMutation) ResetFileResultID() {
	m.file_result = nil
}

// SetSeq sets the "seq" field.
func (m *ProbeOutcomeMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *ProbeOutcomeMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *ProbeOutcomeMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *ProbeOutcomeMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *ProbeOutcomeMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetBackend sets the "backend" field.
func (m *ProbeOutcomeMutation) SetBackend(s string) {
	m.backend = &s
}

// Backend returns the value of the "backend" field in the mutation.
func (m *ProbeOutcomeMutation) Backend() (r string, exists bool) {
	v := m.backend
	if v == nil {
		return
	}
	return *v, true
}

// OldBackend returns the old "backend" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldBackend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackend: %w", err)
	}
	return oldValue.Backend, nil
}

// ResetBackend resets all changes to the "backend" field.
func (m *ProbeOutcomeMutation) ResetBackend() {
	m.backend = nil
}

// SetStatus sets the "status" field.
func (m *ProbeOutcomeMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProbeOutcomeMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProbeOutcomeMutation) ResetStatus() {
	m.status = nil
}

// SetWarnings sets the "warnings" field.
func (m *ProbeOutcomeMutation) SetWarnings(i int) {
	m.warnings = &i
	m.addwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *ProbeOutcomeMutation) Warnings() (r int, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldWarnings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AddWarnings adds i to the "warnings" field.
func (m *ProbeOutcomeMutation) AddWarnings(i int) {
	if m.addwarnings != nil {
		*m.addwarnings += i
	} else {
		m.addwarnings = &i
	}
}

// AddedWarnings returns the value that was added to the "warnings" field in this mutation.
func (m *ProbeOutcomeMutation) AddedWarnings() (r int, exists bool) {
	v := m.addwarnings
	if v == nil {
		return
	}
	return *v, true
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *ProbeOutcomeMutation) ResetWarnings() {
	m.warnings = nil
	m.addwarnings = nil
}

// SetMessages sets the "messages" field.
func (m *ProbeOutcomeMutation) SetMessages(jm json.RawMessage) {
	m.messages = &jm
	m.appendmessages = nil
}

// Messages returns the value of the "messages" field in the mutation.
func (m *ProbeOutcomeMutation) Messages() (r json.RawMessage, exists bool) {
	v := m.messages
	if v == nil {
		return
	}
	return *v, true
}

// OldMessages returns the old "messages" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldMessages(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessages: %w", err)
	}
	return oldValue.Messages, nil
}

// AppendMessages adds jm to the "messages" field.
func (m *ProbeOutcomeMutation) AppendMessages(jm json.RawMessage) {
	m.appendmessages = append(m.appendmessages, jm...)
}

// AppendedMessages returns the list of values that were appended to the "messages" field in this mutation.
func (m *ProbeOutcomeMutation) AppendedMessages() (json.RawMessage, bool) {
	if len(m.appendmessages) == 0 {
		return nil, false
	}
	return m.appendmessages, true
}

// ClearMessages clears the value of the "messages" field.
func (m *ProbeOutcomeMutation) ClearMessages() {
	m.messages = nil
	m.appendmessages = nil
	m.clearedFields[probeoutcome.FieldMessages] = struct{}{}
}

// MessagesCleared returns if the "messages" field was cleared in this mutation.
func (m *ProbeOutcomeMutation) MessagesCleared() bool {
	_, ok := m.clearedFields[probeoutcome.FieldMessages]
	return ok
}

// ResetMessages resets all changes to the "messages" field.
func (m *ProbeOutcomeMutation) ResetMessages() {
	m.messages = nil
	m.appendmessages = nil
	delete(m.clearedFields, probeoutcome.FieldMessages)
}

// SetTextLen sets the "text_len" field.
func (m *ProbeOutcomeMutation) SetTextLen(i int) {
	m.text_len = &i
	m.addtext_len = nil
}

// TextLen returns the value of the "text_len" field in the mutation.
func (m *ProbeOutcomeMutation) TextLen() (r int, exists bool) {
	v := m.text_len
	if v == nil {
		return
	}
	return *v, true
}

// OldTextLen returns the old "text_len" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldTextLen(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextLen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextLen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextLen: %w", err)
	}
	return oldValue.TextLen, nil
}

// AddTextLen adds i to the "text_len" field.
func (m *ProbeOutcomeMutation) AddTextLen(i int) {
	if m.addtext_len != nil {
		*m.addtext_len += i
	} else {
		m.addtext_len = &i
	}
}

// AddedTextLen returns the value that was added to the "text_len" field in this mutation.
func (m *ProbeOutcomeMutation) AddedTextLen() (r int, exists bool) {
	v := m.addtext_len
	if v == nil {
		return
	}
	return *v, true
}

// ClearTextLen clears the value of the "text_len" field.
func (m *ProbeOutcomeMutation) ClearTextLen() {
	m.text_len = nil
	m.addtext_len = nil
	m.clearedFields[probeoutcome.FieldTextLen] = struct{}{}
}

// TextLenCleared returns if the "text_len" field was cleared in this mutation.
func (m *ProbeOutcomeMutation) TextLenCleared() bool {
	_, ok := m.clearedFields[probeoutcome.FieldTextLen]
	return ok
}

// ResetTextLen resets all changes to the "text_len" field.
func (m *ProbeOutcomeMutation) ResetTextLen() {
	m.text_len = nil
	m.addtext_len = nil
	delete(m.clearedFields, probeoutcome.FieldTextLen)
}

// SetPages sets the "pages" field.
func (m *ProbeOutcomeMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *ProbeOutcomeMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *ProbeOutcomeMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *ProbeOutcomeMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ResetPages resets all changes to the "pages" field.
func (m *ProbeOutcomeMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
}

// SetElapsedMs sets the "elapsed_ms" field.
func (m *ProbeOutcomeMutation) SetElapsedMs(i int64) {
	m.elapsed_ms = &i
	m.addelapsed_ms = nil
}

// ElapsedMs returns the value of the "elapsed_ms" field in the mutation.
func (m *ProbeOutcomeMutation) ElapsedMs() (r int64, exists bool) {
	v := m.elapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedMs returns the old "elapsed_ms" field's value of the ProbeOutcome entity.
// If the ProbeOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeOutcomeMutation) OldElapsedMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedMs: %w", err)
	}
	return oldValue.ElapsedMs, nil
}

// AddElapsedMs adds i to the "elapsed_ms" field.
func (m *ProbeOutcomeMutation) AddElapsedMs(i int64) {
	if m.addelapsed_ms != nil {
		*m.addelapsed_ms += i
	} else {
		m.addelapsed_ms = &i
	}
}

// AddedElapsedMs returns the value that was added to the "elapsed_ms" field in this mutation.
func (m *ProbeOutcomeMutation) AddedElapsedMs() (r int64, exists bool) {
	v := m.addelapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedMs resets all changes to the "elapsed_ms" field.
func (m *ProbeOutcomeMutation) ResetElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
}

// ClearFileResult clears the "file_result" edge to the FileResult entity.
func (m *ProbeOutcomeMutation) ClearFileResult() {
	m.clearedfile_result = true
	m.clearedFields[probeoutcome.FieldFileResultID] = struct{}{}
}

// FileResultCleared reports if the "file_result" edge to the FileResult entity was cleared.
func (m *ProbeOutcomeMutation) FileResultCleared() bool {
	return m.clearedfile_result
}

// FileResultIDs returns the "file_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileResultID instead. It exists only for internal usage by the builders.
func (m *ProbeOutcomeMutation) FileResultIDs() (ids []uuid.UUID) {
	if id := m.file_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFileResult resets all changes to the "file_result" edge.
func (m *ProbeOutcomeMutation) ResetFileResult() {
	m.file_result = nil
	m.clearedfile_result = false
}

// Where appends a list predicates to the ProbeOutcomeMutation builder.
func (m *ProbeOutcomeMutation) Where(ps ...predicate.ProbeOutcome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProbeOutcomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProbeOutcomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProbeOutcome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProbeOutcomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProbeOutcomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProbeOutcome).
func (m *ProbeOutcomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProbeOutcomeMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.file_result != nil {
		fields = append(fields, probeoutcome.FieldFileResultID)
	}
	if m.seq != nil {
		fields = append(fields, probeoutcome.FieldSeq)
	}
	if m.backend != nil {
		fields = append(fields, probeoutcome.FieldBackend)
	}
	if m.status != nil {
		fields = append(fields, probeoutcome.FieldStatus)
	}
	if m.warnings != nil {
		fields = append(fields, probeoutcome.FieldWarnings)
	}
	if m.messages != nil {
		fields = append(fields, probeoutcome.FieldMessages)
	}
	if m.text_len != nil {
		fields = append(fields, probeoutcome.FieldTextLen)
	}
	if m.pages != nil {
		fields = append(fields, probeoutcome.FieldPages)
	}
	if m.elapsed_ms != nil {
		fields = append(fields, probeoutcome.FieldElapsedMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProbeOutcomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case probeoutcome.FieldFileResultID:
		return m.FileResultID()
	case probeoutcome.FieldSeq:
		return m.Seq()
	case probeoutcome.FieldBackend:
		return m.Backend()
	case probeoutcome.FieldStatus:
		return m.Status()
	case probeoutcome.FieldWarnings:
		return m.Warnings()
	case probeoutcome.FieldMessages:
		return m.Messages()
	case probeoutcome.FieldTextLen:
		return m.TextLen()
	case probeoutcome.FieldPages:
		return m.Pages()
	case probeoutcome.FieldElapsedMs:
		return m.ElapsedMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProbeOutcomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case probeoutcome.FieldFileResultID:
		return m.OldFileResultID(ctx)
	case probeoutcome.FieldSeq:
		return m.OldSeq(ctx)
	case probeoutcome.FieldBackend:
		return m.OldBackend(ctx)
	case probeoutcome.FieldStatus:
		return m.OldStatus(ctx)
	case probeoutcome.FieldWarnings:
		return m.OldWarnings(ctx)
	case probeoutcome.FieldMessages:
		return m.OldMessages(ctx)
	case probeoutcome.FieldTextLen:
		return m.OldTextLen(ctx)
	case probeoutcome.FieldPages:
		return m.OldPages(ctx)
	case probeoutcome.FieldElapsedMs:
		return m.OldElapsedMs(ctx)
	}
	return nil, fmt.Errorf("unknown ProbeOutcome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProbeOutcomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case probeoutcome.FieldFileResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileResultID(v)
		return nil
	case probeoutcome.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case probeoutcome.FieldBackend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackend(v)
		return nil
	case probeoutcome.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case probeoutcome.FieldWarnings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case probeoutcome.FieldMessages:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessages(v)
		return nil
	case probeoutcome.FieldTextLen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextLen(v)
		return nil
	case probeoutcome.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case probeoutcome.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown ProbeOutcome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProbeOutcomeMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, probeoutcome.FieldSeq)
	}
	if m.addwarnings != nil {
		fields = append(fields, probeoutcome.FieldWarnings)
	}
	if m.addtext_len != nil {
		fields = append(fields, probeoutcome.FieldTextLen)
	}
	if m.addpages != nil {
		fields = append(fields, probeoutcome.FieldPages)
	}
	if m.addelapsed_ms != nil {
		fields = append(fields, probeoutcome.FieldElapsedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProbeOutcomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case probeoutcome.FieldSeq:
		return m.AddedSeq()
	case probeoutcome.FieldWarnings:
		return m.AddedWarnings()
	case probeoutcome.FieldTextLen:
		return m.AddedTextLen()
	case probeoutcome.FieldPages:
		return m.AddedPages()
	case probeoutcome.FieldElapsedMs:
		return m.AddedElapsedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProbeOutcomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case probeoutcome.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case probeoutcome.FieldWarnings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWarnings(v)
		return nil
	case probeoutcome.FieldTextLen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTextLen(v)
		return nil
	case probeoutcome.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	case probeoutcome.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown ProbeOutcome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProbeOutcomeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(probeoutcome.FieldMessages) {
		fields = append(fields, probeoutcome.FieldMessages)
	}
	if m.FieldCleared(probeoutcome.FieldTextLen) {
		fields = append(fields, probeoutcome.FieldTextLen)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProbeOutcomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProbeOutcomeMutation) ClearField(name string) error {
	switch name {
	case probeoutcome.FieldMessages:
		m.ClearMessages()
		return nil
	case probeoutcome.FieldTextLen:
		m.ClearTextLen()
		return nil
	}
	return fmt.Errorf("unknown ProbeOutcome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProbeOutcomeMutation) ResetField(name string) error {
	switch name {
	case probeoutcome.FieldFileResultID:
		m.ResetFileResultID()
		return nil
	case probeoutcome.FieldSeq:
		m.ResetSeq()
		return nil
	case probeoutcome.FieldBackend:
		m.ResetBackend()
		return nil
	case probeoutcome.FieldStatus:
		m.ResetStatus()
		return nil
	case probeoutcome.FieldWarnings:
		m.ResetWarnings()
		return nil
	case probeoutcome.FieldMessages:
		m.ResetMessages()
		return nil
	case probeoutcome.FieldTextLen:
		m.ResetTextLen()
		return nil
	case probeoutcome.FieldPages:
		m.ResetPages()
		return nil
	case probeoutcome.FieldElapsedMs:
		m.ResetElapsedMs()
		return nil
	}
	return fmt.Errorf("unknown ProbeOutcome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProbeOutcomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file_result != nil {
		edges = append(edges, probeoutcome.EdgeFileResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProbeOutcomeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case probeoutcome.EdgeFileResult:
		if id := m.file_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProbeOutcomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProbeOutcomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProbeOutcomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile_result {
		edges = append(edges, probeoutcome.EdgeFileResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProbeOutcomeMutation) EdgeCleared(name string) bool {
	switch name {
	case probeoutcome.EdgeFileResult:
		return m.clearedfile_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProbeOutcomeMutation) ClearEdge(name string) error {
	switch name {
	case probeoutcome.EdgeFileResult:
		m.ClearFileResult()
		return nil
	}
	return fmt.Errorf("unknown ProbeOutcome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProbeOutcomeMutation) ResetEdge(name string) error {
	switch name {
	case probeoutcome.EdgeFileResult:
		m.ResetFileResult()
		return nil
	}
	return fmt.Errorf("unknown ProbeOutcome edge %s", name)
}
