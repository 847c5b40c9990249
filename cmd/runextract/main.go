package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/docstack-labs/idverify/internal/common"
	"github.com/docstack-labs/idverify/internal/extract"
	"github.com/docstack-labs/idverify/internal/ocr"
)

// runextract recognizes one scanned document and prints the extracted fields
// as JSON. No database involved; useful for tuning label lists and thresholds
// against sample scans.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <image-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	engine := ocr.NewEngine(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	rec, err := engine.Recognize(ctx, path)
	if err != nil {
		logger.Error("recognition failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("recognition OK",
		"fragments", len(rec.Fragments),
		"mean_conf", rec.MeanConf,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	pipe := extract.NewPipeline(nil, logger)
	result, err := pipe.Extract(rec.Fragments, rec.ImageHeight)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("marshal result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
