package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/docstack-labs/idverify/constants"
	"github.com/docstack-labs/idverify/internal/extract"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// RecognitionResult is one document's worth of recognition output: positioned
// text fragments plus the page geometry the extractor needs for relative
// position scoring.
type RecognitionResult struct {
	Fragments   []extract.TextFragment
	ImageWidth  int
	ImageHeight int
	MeanConf    float32 // mean word confidence in 0..1
	Language    string
	Duration    time.Duration
	Warnings    []string
}

// Engine shells out to tesseract in TSV mode and maps word rows to fragments.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize runs tesseract over a scanned image and returns its fragments.
// An unreadable file or unsupported extension is an error; a readable image
// with no detected words returns an empty fragment list for the caller to
// treat as missing input.
func (e *Engine) Recognize(ctx context.Context, path string) (RecognitionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) == "" {
		e.logger.Error("unsupported extension", "path", path, "ext", ext)
		return RecognitionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return RecognitionResult{Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}

	res := parseTSV(out)
	res.Language = e.cfg.TesseractLang
	res.Duration = time.Since(start)

	e.logger.Debug("recognition complete",
		"path", path,
		"fragments", len(res.Fragments),
		"mean_conf", res.MeanConf,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
