package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/bankcfg"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/export"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/ingest"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/pipeline"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/repository"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir      = flag.String("dir", "", "directory with OCR'd contract text files (required)")
		bankName = flag.String("bank", "itau", "source bank: itau, santander or indisa")
		out      = flag.String("out", "", "output directory (defaults to EXPORT_OUT_DIR)")
		dbPath   = flag.String("db", "", "audit database path (defaults to AUDIT_DB_PATH)")
		patterns = flag.String("patterns", "", "comma-separated JSON pattern set files overriding defaults")
		withCSV  = flag.Bool("csv", false, "also write a CSV next to the workbook")
		workers  = flag.Int("workers", 0, "worker pool size (defaults to PIPELINE_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	bank, ok := constants.ParseBank(*bankName)
	if !ok {
		printError("Error: unknown bank %q\n", *bankName)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *out == "" {
		*out = cfg.Export.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Audit.DBPath
	}

	var patternFiles []string
	for _, p := range strings.Split(*patterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patternFiles = append(patternFiles, p)
		}
	}

	snap, err := bankcfg.NewSnapshot(cfg, bankcfg.Options{
		PatternFiles: patternFiles,
		Workers:      *workers,
	}, logger)
	if err != nil {
		logger.Error("failed to build configuration snapshot", "error", err)
		os.Exit(1)
	}

	db, err := repository.Open(ctx, repository.Config{Path: *dbPath}, logger)
	if err != nil {
		logger.Error("failed to open audit database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)
	auditRepo := repository.NewAuditRepository(db, logger)

	loader := ingest.NewLoader(logger)
	logger.Info("loading documents", "dir", *dir, "bank", bank)
	docs, _, stats, err := loader.LoadDirectory(ctx, *dir, bank)
	if err != nil {
		logger.Error("failed to load directory", "error", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		printError("Error: no contract text files found under %s\n", *dir)
		os.Exit(1)
	}

	recorder := trace.NewRecorder()
	processor := pipeline.NewProcessor(logger, snap, recorder)
	runner := pipeline.NewRunner(cfg, snap, processor, logger)

	result, err := runner.Run(ctx, docs)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	if err := auditRepo.SaveRun(ctx, result, recorder.Snapshot()); err != nil {
		logger.Error("failed to persist audit trail", "error", err)
		os.Exit(1)
	}

	exportService := export.NewService(cfg.Export.SheetName, logger)
	xlsxPath, err := exportService.WriteXLSX(result, *out)
	if err != nil {
		logger.Error("failed to write workbook", "error", err)
		os.Exit(1)
	}
	csvPath := ""
	if *withCSV {
		csvPath, err = exportService.WriteCSV(result, *out)
		if err != nil {
			logger.Error("failed to write csv", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("batch processing complete",
		"run_id", result.RunID,
		"files_loaded", stats.Succeeded,
		"records", len(result.Records),
		"failed", len(result.Failed),
		"output_file", xlsxPath)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents loaded: %d\n", len(docs))
	fmt.Printf("- Records produced: %d\n", len(result.Records))
	fmt.Printf("- Failures: %d\n", len(result.Failed))
	for _, f := range result.Failed {
		fmt.Printf("  * %s: %s\n", f.Name, f.Reason)
	}
	fmt.Printf("- Workbook: %s\n", filepath.Clean(xlsxPath))
	if csvPath != "" {
		fmt.Printf("- CSV: %s\n", filepath.Clean(csvPath))
	}
}
