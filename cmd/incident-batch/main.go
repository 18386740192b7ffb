package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/common"
	"github.com/enviro-data/incident-etl/internal/export"
	"github.com/enviro-data/incident-etl/internal/extract"
	"github.com/enviro-data/incident-etl/internal/observability"
	"github.com/enviro-data/incident-etl/internal/pipeline"
	repo "github.com/enviro-data/incident-etl/internal/repository"
	"github.com/enviro-data/incident-etl/internal/textsource"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory with report PDFs (defaults to INCIDENT_RAW_DIR)")
		dbPath      = flag.String("db", "", "SQLite database file (defaults to INCIDENT_DB_PATH)")
		dbURL       = flag.String("db-url", "", "PostgreSQL DSN, overrides -db (defaults to DB_URL)")
		out         = flag.String("out", "", "output XLSX file path (optional)")
		metricsAddr = flag.String("metrics-addr", "", "address for the Prometheus /metrics listener (optional)")
	)
	flag.Parse()

	cfg := common.LoadConfig()
	if *dir != "" {
		cfg.Ingest.RawDir = *dir
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *dbURL != "" {
		cfg.Database.DSN = *dbURL
	}
	if *out != "" {
		cfg.Ingest.ExportPath = *out
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx := context.Background()

	paths, err := listReports(cfg.Ingest.RawDir)
	if err != nil {
		logger.Error("failed to list report directory", "dir", cfg.Ingest.RawDir, "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		logger.Warn("no report files found", "dir", cfg.Ingest.RawDir)
	}

	db, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	metrics := observability.NewMetrics()
	if cfg.Metrics.Addr != "" {
		go func() {
			logger.Info("metrics listener started", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, promhttp.Handler()); err != nil {
				logger.Error("metrics listener failed", "error", err)
			}
		}()
	}

	incidents := repo.NewIncidentRepository(db)
	p := pipeline.New(
		textsource.NewPDF(logger),
		extract.NewDispatcher(logger),
		incidents,
		metrics,
		logger,
	)

	logger.Info("starting ingestion", "dir", cfg.Ingest.RawDir, "files", len(paths))
	counters, err := p.Ingest(ctx, paths)
	if err != nil {
		logger.Error("ingestion run failed", "error", err)
		os.Exit(1)
	}

	if cfg.Ingest.ExportPath != "" {
		logger.Info("exporting to XLSX", "output", cfg.Ingest.ExportPath)
		xlsxBytes, err := export.NewService(incidents, logger).ExportIncidentsXLSX(ctx)
		if err != nil {
			logger.Error("failed to export incidents", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(cfg.Ingest.ExportPath, xlsxBytes, 0o644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Ingestion complete!\n")
	fmt.Printf("- Processed:  %d\n", counters.Processed)
	fmt.Printf("- Inserted:   %d\n", counters.Inserted)
	fmt.Printf("- Duplicates: %d\n", counters.Duplicates)
	fmt.Printf("- Skipped:    %d\n", counters.Skipped)
	fmt.Printf("- Errored:    %d\n", counters.Errored)
	if cfg.Ingest.ExportPath != "" {
		fmt.Printf("- Output:     %s\n", cfg.Ingest.ExportPath)
	}
}

// newLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func newLogger(cfg common.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Format) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// listReports returns the report files under dir with an allowed extension,
// sorted by name so runs are deterministic.
func listReports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
