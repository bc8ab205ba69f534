package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avelsher/pdfprobe/gen/ent"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/avelsher/pdfprobe/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, runID uuid.UUID, result entity.Result) (*ent.FileResult, error)
	ListByRun(ctx context.Context, runID uuid.UUID) ([]*ent.FileResult, error)
}

type resultRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewResultRepository(entc *ent.Client, log *slog.Logger) ResultRepository {
	return &resultRepo{ent: entc, log: log}
}

func (r *resultRepo) Save(ctx context.Context, runID uuid.UUID, result entity.Result) (*ent.FileResult, error) {
	row, err := r.ent.FileResult.
		Create().
		SetRunID(runID).
		SetPath(result.Path).
		SetFileSize(result.FileSize).
		SetScore(result.Score).
		SetBucket(string(result.Bucket)).
		SetRecommended(result.Recommended).
		SetViable(result.Viable).
		Save(ctx)
	if err != nil {
		r.log.Error("file_result save failed", "run_id", runID, "path", result.Path, "err", err)
		return nil, err
	}

	builders := make([]*ent.ProbeOutcomeCreate, 0, len(result.Outcomes))
	for i, o := range result.Outcomes {
		// seq preserves backend registration order through the round trip
		create := r.ent.ProbeOutcome.
			Create().
			SetFileResultID(row.ID).
			SetSeq(i).
			SetBackend(o.Backend).
			SetStatus(string(o.Status)).
			SetWarnings(o.Warnings).
			SetPages(o.Pages).
			SetElapsedMs(o.Elapsed.Milliseconds())
		if o.TextLen != nil {
			create = create.SetTextLen(*o.TextLen)
		}
		if len(o.Messages) > 0 {
			if b, err := json.Marshal(o.Messages); err == nil {
				create = create.SetMessages(b)
			}
		}
		builders = append(builders, create)
	}
	if _, err := r.ent.ProbeOutcome.CreateBulk(builders...).Save(ctx); err != nil {
		r.log.Error("probe_outcome save failed", "file_result_id", row.ID, "err", err)
		return nil, err
	}

	r.log.Debug("file_result saved", "run_id", runID, "path", result.Path,
		"score", result.Score, "bucket", result.Bucket)
	return row, nil
}

func (r *resultRepo) ListByRun(ctx context.Context, runID uuid.UUID) ([]*ent.FileResult, error) {
	return r.ent.FileResult.
		Query().
		Where(fileresult.RunID(runID)).
		WithOutcomes(func(q *ent.ProbeOutcomeQuery) {
			q.Order(ent.Asc(probeoutcome.FieldSeq))
		}).
		Order(ent.Asc(fileresult.FieldPath)).
		All(ctx)
}
