// Command pell-report computes Pell Grant enrollment, retention, and
// graduation statistics for a census term and writes the results table
// and annotation extracts.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"pellcli/internal/cohort"
	"pellcli/internal/config"
	"pellcli/internal/exporter"
	"pellcli/internal/infrastructure"
	"pellcli/internal/loader"
	"pellcli/internal/report"
	"pellcli/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	term := flag.String("term", "", "census term override, e.g. 202580 (defaults to the configured term)")
	outDir := flag.String("out", "", "output directory override (defaults to the configured results dir)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *term != "" {
		cfg.Params.Term = *term
	}
	if *outDir != "" {
		cfg.Files.ResultsDir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidatePaths(); err != nil {
		slog.Error("Path validation failed", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	logger.Info("starting pell report",
		slog.String("version", version.Pipeline),
		slog.String("term", cfg.Params.Term),
		slog.String("ipeds_acad_year", cfg.Params.IPEDSAcademicYear),
		slog.String("results_dir", cfg.Files.ResultsDir))

	in, err := loadTables(cfg, logger)
	if err != nil {
		logger.Error("Failed to load input tables", "error", err)
		os.Exit(1)
	}

	calc := cohort.NewCalculator(cfg.Params.IDColumn, logger)
	writer := exporter.NewWriter(logger)
	svc := report.NewService(calc, writer, logger)

	err = svc.Run(in, report.Params{
		Term:              cfg.Params.Term,
		IPEDSAcademicYear: cfg.Params.IPEDSAcademicYear,
		IDColumn:          cfg.Params.IDColumn,
	}, report.OutputFiles{
		ResultsDir:    cfg.Files.ResultsDir,
		ResultsFile:   cfg.Files.ResultsFile,
		AppendDate:    cfg.Files.AppendDate,
		AppendVersion: cfg.Files.AppendVersion,
	})
	if err != nil {
		logger.Error("Report run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("pell report completed")
}

func loadTables(cfg *config.Config, logger *slog.Logger) (report.Tables, error) {
	var in report.Tables
	var err error

	if in.Pell, err = loader.ReadTable(cfg.Files.PellFile); err != nil {
		return in, err
	}
	logger.Info("loaded pell table",
		slog.String("path", cfg.Files.PellFile),
		slog.Int("rows", in.Pell.Len()))

	if in.Retention, err = loader.ReadTable(cfg.Files.RetentionFile); err != nil {
		return in, err
	}
	logger.Info("loaded retention table",
		slog.String("path", cfg.Files.RetentionFile),
		slog.Int("rows", in.Retention.Len()))

	if in.Enrollment, err = loader.ReadTable(cfg.Files.EnrollmentFile); err != nil {
		return in, err
	}
	logger.Info("loaded enrollment table",
		slog.String("path", cfg.Files.EnrollmentFile),
		slog.Int("rows", in.Enrollment.Len()))

	return in, nil
}
