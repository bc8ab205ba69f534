package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/avelsher/pdfprobe/internal/batch"
	"github.com/avelsher/pdfprobe/internal/common"
	"github.com/avelsher/pdfprobe/internal/export"
	"github.com/avelsher/pdfprobe/internal/ingest"
	"github.com/avelsher/pdfprobe/internal/probe"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		docsDir     = flag.String("docs-dir", "", "directory containing PDF files (required)")
		reportOut   = flag.String("report", "", "JSON report output path (default: <docs-dir>-info/report.json)")
		summaryOut  = flag.String("summary", "", "text summary output path (default: <docs-dir>-info/summary.txt)")
		xlsxOut     = flag.String("xlsx", "", "XLSX workbook output path (optional)")
		timeoutSec  = flag.Float64("timeout", 30, "timeout in seconds for each backend probe")
		limit       = flag.Int("limit", 0, "limit the number of PDF files to process (0 = all)")
		concurrency = flag.Int("concurrency", 4, "number of files analyzed in parallel")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
		quiet       = flag.String("quiet", "", "quiet mode: progress, logs, or all")
		recOnly     = flag.Bool("recommendation-only", false, "print only the corpus-winning backend")
		inmem       = flag.Bool("inmem", false, "persist results to an in-memory SQLite store")
	)
	flag.Parse()

	if *docsDir == "" {
		printError("Error: --docs-dir is required\n")
		os.Exit(1)
	}
	if *quiet != "" && *quiet != "progress" && *quiet != "logs" && *quiet != "all" {
		printError("Error: --quiet must be one of progress, logs, all\n")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logSink := os.Stderr
	if *quiet == "logs" || *quiet == "all" {
		devnull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		logSink = devnull
	}
	logger := slog.New(slog.NewJSONHandler(logSink, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := common.LoadConfig()
	cfg.Analysis.Timeout = time.Duration(*timeoutSec * float64(time.Second))
	cfg.Analysis.Concurrency = *concurrency
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	// Register backends; exec-backed ones are skipped when the tool is missing.
	registry, err := probe.Detect(logger,
		probe.NewPoppler(probe.PopplerConfig{Pdftotext: cfg.Tools.Pdftotext, Pdfinfo: cfg.Tools.Pdfinfo}, nil),
		probe.NewMutool(cfg.Tools.Mutool, nil),
		probe.NewPDFCPU(),
		probe.NewPlaintext(),
	)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("backends registered", "backends", registry.Names())

	files, stats, err := ingest.DiscoverPDFs(*docsDir, *limit, true)
	if err != nil {
		logger.Error("discovery failed", "docs_dir", *docsDir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Warn("no PDF files found", "docs_dir", *docsDir, "scanned", stats.Scanned)
		return
	}
	logger.Info("discovery complete", "scanned", stats.Scanned, "matched", stats.Matched, "processing", len(files))

	totalProbes := len(files) * registry.Len()
	var completedProbes atomic.Int64
	showProgress := *quiet != "progress" && *quiet != "all"

	opts := batch.Options{
		Timeout:     cfg.Analysis.Timeout,
		Concurrency: cfg.Analysis.Concurrency,
	}
	if showProgress {
		opts.Progress = func(ev batch.Event) {
			n := completedProbes.Add(1)
			fmt.Fprintf(os.Stderr, "\r[%d/%d] %s %s (%s, %dms)        ",
				n, totalProbes, filepath.Base(ev.Path), ev.Backend, ev.Status, ev.Elapsed.Milliseconds())
		}
	}

	agg, err := batch.NewAggregator(registry, opts, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting analysis", "timeout", cfg.Analysis.Timeout, "concurrency", cfg.Analysis.Concurrency)
	results, err := agg.Analyze(ctx, files)
	if showProgress {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		logger.Warn("analysis interrupted", "completed", len(results), "error", err)
	}
	summary := batch.Summarize(results, registry.Names())

	// Optional persistence; analysis output does not depend on it.
	if *inmem || cfg.Database.DSN != "" {
		if err := persist(ctx, cfg, *inmem, *docsDir, registry.Names(), results, summary, logger); err != nil {
			logger.Error("failed to persist run", "error", err)
		}
	}

	writer := export.NewWriter(logger)

	infoDir := strings.TrimSuffix(*docsDir, string(filepath.Separator)) + "-info"
	if *reportOut == "" || *summaryOut == "" {
		if err := os.MkdirAll(infoDir, 0o755); err != nil {
			logger.Error("failed to create info directory", "dir", infoDir, "error", err)
			os.Exit(1)
		}
	}
	if *reportOut == "" {
		*reportOut = filepath.Join(infoDir, "report.json")
	}
	if *summaryOut == "" {
		*summaryOut = filepath.Join(infoDir, "summary.txt")
	}

	report := export.Report{
		GeneratedAt: time.Now(),
		RootDir:     *docsDir,
		Backends:    registry.Names(),
		TimeoutSec:  cfg.Analysis.Timeout.Seconds(),
		TotalFiles:  len(results),
		Summary:     summary,
		Results:     results,
	}
	reportJSON, err := writer.BuildJSON(report)
	if err != nil {
		logger.Error("failed to build report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*reportOut, reportJSON, 0o644); err != nil {
		logger.Error("failed to write report", "path", *reportOut, "error", err)
		os.Exit(1)
	}
	logger.Info("report written", "path", *reportOut)

	text := writer.BuildTextSummary(summary)
	if err := os.WriteFile(*summaryOut, []byte(text), 0o644); err != nil {
		logger.Error("failed to write summary", "path", *summaryOut, "error", err)
		os.Exit(1)
	}
	logger.Info("summary written", "path", *summaryOut)

	if *xlsxOut != "" {
		wb, err := writer.BuildXLSX(results, summary)
		if err != nil {
			logger.Error("failed to build workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, wb, 0o644); err != nil {
			logger.Error("failed to write workbook", "path", *xlsxOut, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "path", *xlsxOut)
	}

	if *recOnly {
		fmt.Println(writer.RecommendationLine(summary))
		return
	}
	fmt.Print(text)
}
