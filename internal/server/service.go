// Package server exposes the analyzer over gRPC. It validates requests,
// drives discovery and the batch aggregator, and persists finished runs.
package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pdfprobev1 "github.com/avelsher/pdfprobe/gen/pdfprobe/v1"
	"github.com/avelsher/pdfprobe/internal/batch"
	"github.com/avelsher/pdfprobe/internal/common"
	"github.com/avelsher/pdfprobe/internal/ingest"
	"github.com/avelsher/pdfprobe/internal/probe"
	"github.com/avelsher/pdfprobe/internal/repository"
)

type AnalyzerService struct {
	pdfprobev1.UnimplementedAnalyzerServiceServer

	registry *probe.Registry
	defaults common.AnalysisConfig
	runs     repository.RunRepository
	results  repository.ResultRepository
	logger   *slog.Logger
}

func NewAnalyzerService(
	registry *probe.Registry,
	defaults common.AnalysisConfig,
	runs repository.RunRepository,
	results repository.ResultRepository,
	logger *slog.Logger,
) *AnalyzerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzerService{
		registry: registry,
		defaults: defaults,
		runs:     runs,
		results:  results,
		logger:   logger,
	}
}

func (s *AnalyzerService) AnalyzeDirectory(ctx context.Context, req *pdfprobev1.AnalyzeDirectoryRequest) (*pdfprobev1.AnalyzeDirectoryResponse, error) {
	if req.GetRootDir() == "" {
		return nil, status.Error(codes.InvalidArgument, "root_dir is required")
	}
	timeout := s.defaults.Timeout
	if req.GetTimeoutSeconds() > 0 {
		timeout = time.Duration(req.GetTimeoutSeconds() * float64(time.Second))
	}
	concurrency := s.defaults.Concurrency
	if req.GetConcurrency() > 0 {
		concurrency = int(req.GetConcurrency())
	}

	ctx, log := s.requestLogger(ctx)

	files, stats, err := ingest.DiscoverPDFs(req.GetRootDir(), int(req.GetLimit()), true)
	if err != nil {
		log.Error("server.discover.failed", "root_dir", req.GetRootDir(), "err", err)
		return nil, status.Errorf(codes.InvalidArgument, "discover: %v", err)
	}
	log.Info("server.discover.ok", "root_dir", req.GetRootDir(),
		"scanned", stats.Scanned, "matched", stats.Matched, "files", len(files))

	agg, err := batch.NewAggregator(s.registry, batch.Options{
		Timeout:     timeout,
		Concurrency: concurrency,
	}, log)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "configure run: %v", err)
	}

	run, err := s.runs.Start(ctx, req.GetRootDir(), timeout, concurrency, s.registry.Names())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "start run: %v", err)
	}

	results, err := agg.Analyze(ctx, files)
	if err != nil {
		// cancelled mid-run; persist what completed before reporting
		log.Warn("server.analyze.interrupted", "run_id", run.ID, "completed", len(results), "err", err)
	}
	for _, r := range results {
		if _, saveErr := s.results.Save(ctx, run.ID, r); saveErr != nil {
			return nil, status.Errorf(codes.Internal, "save result: %v", saveErr)
		}
	}

	summary := batch.Summarize(results, s.registry.Names())
	best := ""
	if b, ok := summary.BestBackend(); ok {
		best = b.Backend
	}
	if finishErr := s.runs.Finish(ctx, run.ID, len(results), best); finishErr != nil {
		return nil, status.Errorf(codes.Internal, "finish run: %v", finishErr)
	}
	if err != nil {
		return nil, status.Errorf(codes.Canceled, "analysis interrupted: %v", err)
	}

	resp := &pdfprobev1.AnalyzeDirectoryResponse{
		RunId:       run.ID.String(),
		TotalFiles:  int32(len(results)),
		BestBackend: best,
	}
	for bucket, count := range summary.Buckets {
		resp.Buckets = append(resp.Buckets, &pdfprobev1.BucketCount{
			Bucket: string(bucket),
			Count:  int32(count),
		})
	}
	return resp, nil
}

// requestLogger tags the request with an ID, reusing one already present on
// the context (an interceptor may have set it) before minting a new one.
func (s *AnalyzerService) requestLogger(ctx context.Context) (context.Context, *slog.Logger) {
	reqID := common.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
		ctx = common.WithRequestID(ctx, reqID)
	}
	return ctx, s.logger.With("request_id", reqID)
}

func (s *AnalyzerService) GetRun(ctx context.Context, req *pdfprobev1.GetRunRequest) (*pdfprobev1.GetRunResponse, error) {
	ctx, log := s.requestLogger(ctx)

	runID, err := uuid.Parse(req.GetRunId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "run_id must be a valid UUID")
	}

	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "run %s not found", runID)
	}
	rows, err := s.results.ListByRun(ctx, runID)
	if err != nil {
		log.Error("server.run.list_failed", "run_id", runID, "err", err)
		return nil, status.Errorf(codes.Internal, "list results: %v", err)
	}
	log.Debug("server.run.loaded", "run_id", runID, "files", len(rows))

	resp := &pdfprobev1.GetRunResponse{
		RunId:      run.ID.String(),
		RootDir:    run.RootDir,
		Backends:   run.Backends,
		TotalFiles: int32(run.TotalFiles),
	}
	if run.BestBackend != nil {
		resp.BestBackend = *run.BestBackend
	}
	for _, row := range rows {
		fr := &pdfprobev1.FileResult{
			Path:        row.Path,
			Score:       row.Score,
			Bucket:      row.Bucket,
			Recommended: row.Recommended,
		}
		for _, o := range row.Edges.Outcomes {
			fr.Outcomes = append(fr.Outcomes, &pdfprobev1.Outcome{
				Backend:   o.Backend,
				Status:    o.Status,
				Warnings:  int32(o.Warnings),
				ElapsedMs: o.ElapsedMs,
			})
		}
		resp.Results = append(resp.Results, fr)
	}
	return resp, nil
}
