package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelsher/pdfprobe/gen/ent"
	"github.com/avelsher/pdfprobe/internal/common"
	"github.com/avelsher/pdfprobe/internal/entity"
	"github.com/avelsher/pdfprobe/internal/repository"
)

// persist writes a finished run to SQLite (--inmem) or Postgres (DB_URL).
func persist(
	ctx context.Context,
	cfg *common.Config,
	inmem bool,
	rootDir string,
	backends []string,
	results []entity.Result,
	summary entity.Summary,
	logger *slog.Logger,
) error {
	entc, pool, err := openStore(ctx, cfg, inmem, logger)
	if err != nil {
		return err
	}
	defer repository.Close(entc, pool, logger)

	runs := repository.NewRunRepository(entc, logger)
	resultsRepo := repository.NewResultRepository(entc, logger)

	run, err := runs.Start(ctx, rootDir, cfg.Analysis.Timeout, cfg.Analysis.Concurrency, backends)
	if err != nil {
		return err
	}
	for _, r := range results {
		if _, err := resultsRepo.Save(ctx, run.ID, r); err != nil {
			return err
		}
	}
	best := ""
	if b, ok := summary.BestBackend(); ok {
		best = b.Backend
	}
	return runs.Finish(ctx, run.ID, len(results), best)
}

func openStore(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if inmem {
		entc, err := repository.OpenSQLite(ctx, "", logger)
		return entc, nil, err
	}
	return repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}
