package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pdfprobev1 "github.com/avelsher/pdfprobe/gen/pdfprobe/v1"
	"github.com/avelsher/pdfprobe/internal/common"
	"github.com/avelsher/pdfprobe/internal/probe"
	"github.com/avelsher/pdfprobe/internal/repository"
	"github.com/avelsher/pdfprobe/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.ValidateServer(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	registry, err := probe.Detect(logger,
		probe.NewPoppler(probe.PopplerConfig{Pdftotext: cfg.Tools.Pdftotext, Pdfinfo: cfg.Tools.Pdfinfo}, nil),
		probe.NewMutool(cfg.Tools.Mutool, nil),
		probe.NewPDFCPU(),
		probe.NewPlaintext(),
	)
	if err != nil {
		logger.Error("no usable backends", "error", err)
		os.Exit(1)
	}
	logger.Info("backends registered", "backends", registry.Names())

	runs := repository.NewRunRepository(entc, logger)
	results := repository.NewResultRepository(entc, logger)
	svc := server.NewAnalyzerService(registry, cfg.Analysis, runs, results, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	pdfprobev1.RegisterAnalyzerServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("serve failed", "error", err)
		os.Exit(1)
	}
}
