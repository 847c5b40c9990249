package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docstack-labs/idverify/constants"
	"github.com/docstack-labs/idverify/internal/async"
	"github.com/docstack-labs/idverify/internal/common"
	"github.com/docstack-labs/idverify/internal/export"
	"github.com/docstack-labs/idverify/internal/ocr"
	processor "github.com/docstack-labs/idverify/internal/pipeline"
	repo "github.com/docstack-labs/idverify/internal/repository"
	svc "github.com/docstack-labs/idverify/internal/server"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of scanned documents to process (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		workers = flag.Int("workers", 4, "concurrent documents")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "documents.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if cfg.Database.SQLitePath != "" {
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	engine := ocr.NewEngine(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
	proc := processor.NewProcessor(logger, docsRepo, engine, nil)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(*workers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(2*time.Minute),
	)

	matched := 0
	skipped := 0
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && path != *dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(name))
		if constants.MapExtToFormat(ext) == "" {
			skipped++
			return nil
		}
		matched++
		return queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now()})
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan queued", "dir", *dir, "matched", matched, "skipped", skipped)

	queue.Shutdown(ctx)

	exporter := export.NewService(docsRepo, logger)
	xlsxBytes, err := exporter.ExportDocumentsXLSX(ctx, constants.DocStatusExtracted)
	if err != nil {
		logger.Error("failed to export documents", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete", "matched", matched, "output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents queued: %d\n", matched)
	fmt.Printf("- Skipped (unsupported): %d\n", skipped)
	fmt.Printf("- Output: %s\n", *out)
}
