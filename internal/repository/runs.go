package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avelsher/pdfprobe/gen/ent"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
)

type RunRepository interface {
	Start(ctx context.Context, rootDir string, timeout time.Duration, concurrency int, backends []string) (*ent.AnalysisRun, error)
	Finish(ctx context.Context, runID uuid.UUID, totalFiles int, bestBackend string) error
	Get(ctx context.Context, runID uuid.UUID) (*ent.AnalysisRun, error)
}

type runRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRunRepository(entc *ent.Client, log *slog.Logger) RunRepository {
	return &runRepo{ent: entc, log: log}
}

func (r *runRepo) Start(ctx context.Context, rootDir string, timeout time.Duration, concurrency int, backends []string) (*ent.AnalysisRun, error) {
	run, err := r.ent.AnalysisRun.
		Create().
		SetRootDir(rootDir).
		SetTimeoutMs(timeout.Milliseconds()).
		SetConcurrency(concurrency).
		SetBackends(backends).
		Save(ctx)
	if err != nil {
		r.log.Error("analysis_run start failed", "root_dir", rootDir, "err", err)
		return nil, err
	}
	r.log.Info("analysis_run started", "run_id", run.ID, "root_dir", rootDir, "backends", backends)
	return run, nil
}

func (r *runRepo) Finish(ctx context.Context, runID uuid.UUID, totalFiles int, bestBackend string) error {
	upd := r.ent.AnalysisRun.
		UpdateOneID(runID).
		SetFinishedAt(time.Now()).
		SetTotalFiles(totalFiles)
	if bestBackend != "" {
		upd = upd.SetBestBackend(bestBackend)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("analysis_run finish failed", "run_id", runID, "err", err)
		return err
	}
	r.log.Info("analysis_run finished", "run_id", runID, "total_files", totalFiles, "best_backend", bestBackend)
	return nil
}

func (r *runRepo) Get(ctx context.Context, runID uuid.UUID) (*ent.AnalysisRun, error) {
	return r.ent.AnalysisRun.Query().Where(analysisrun.ID(runID)).Only(ctx)
}
