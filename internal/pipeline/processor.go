package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/docstack-labs/idverify/constants"
	"github.com/docstack-labs/idverify/internal/extract"
	"github.com/docstack-labs/idverify/internal/ocr"
	"github.com/docstack-labs/idverify/internal/repository"
)

// ReviewConfidenceThreshold flags extractions from weak scans for manual
// review.
const ReviewConfidenceThreshold = 0.6

// Recognizer is the external recognition engine the processor depends on.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (ocr.RecognitionResult, error)
}

// Processor coordinates recognition, field extraction, and persistence for a
// single document. Documents are processed one at a time per call; separate
// calls are independent and may run concurrently.
type Processor struct {
	Logger    *slog.Logger
	Docs      repository.DocumentRepository
	Engine    Recognizer
	Extractor *extract.Pipeline
}

func NewProcessor(logger *slog.Logger, docs repository.DocumentRepository, engine Recognizer, extractor *extract.Pipeline) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		extractor = extract.NewPipeline(nil, logger)
	}
	return &Processor{Logger: logger, Docs: docs, Engine: engine, Extractor: extractor}
}

// ProcessFile recognizes a scanned document, extracts its fields, and
// persists the outcome. Unreadable input is fatal and marks the document
// FAILED; unresolved fields are not.
func (p *Processor) ProcessFile(ctx context.Context, path string) (uuid.UUID, extract.Result, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return uuid.Nil, nil, fmt.Errorf("unsupported format: %s", ext)
	}

	doc, err := p.Docs.Create(ctx, path, ext, format)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("create document: %w", err)
	}

	rec, err := p.Engine.Recognize(ctx, path)
	if err != nil {
		_ = p.Docs.FinishFailure(ctx, doc.ID, err.Error())
		p.Logger.Error("processor.recognize.failed", "doc_id", doc.ID, "err", err)
		return doc.ID, nil, err
	}

	result, err := p.Extractor.Extract(rec.Fragments, rec.ImageHeight)
	if err != nil {
		// Empty fragment list: the scan was unreadable, not "all unset".
		_ = p.Docs.FinishFailure(ctx, doc.ID, err.Error())
		p.Logger.Error("processor.extract.failed", "doc_id", doc.ID, "err", err)
		return doc.ID, nil, err
	}

	payload, confidence, err := marshalResult(result)
	if err != nil {
		_ = p.Docs.FinishFailure(ctx, doc.ID, err.Error())
		return doc.ID, nil, err
	}

	needsReview := rec.MeanConf > 0 && rec.MeanConf < ReviewConfidenceThreshold
	if err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(), payload); err != nil {
		p.Logger.Warn("extracted payload failed schema check", "doc_id", doc.ID, "err", err)
		needsReview = true
	}

	out := repository.ExtractionOutcome{
		ExtractedData:   payload,
		FieldConfidence: confidence,
		OCRText:         joinFragments(rec.Fragments),
		MeanConfidence:  rec.MeanConf,
		ImageWidth:      rec.ImageWidth,
		ImageHeight:     rec.ImageHeight,
		NeedsReview:     needsReview,
	}
	if err := p.Docs.FinishExtraction(ctx, doc.ID, out); err != nil {
		return doc.ID, result, err
	}

	p.Logger.Info("processor.ok",
		"doc_id", doc.ID,
		"fields_resolved", len(result),
		"mean_conf", rec.MeanConf,
		"needs_review", needsReview,
	)
	return doc.ID, result, nil
}

// marshalResult renders the field map and the binary per-field confidence the
// API reports: 1.0 when a value was recovered, 0.0 otherwise.
func marshalResult(result extract.Result) (payload, confidence json.RawMessage, err error) {
	values := make(map[string]string, len(result))
	conf := make(map[string]float64, len(constants.Fields()))
	for _, f := range constants.Fields() {
		if v, ok := result.Value(f); ok {
			values[string(f)] = v
			conf[string(f)] = 1.0
		} else {
			conf[string(f)] = 0.0
		}
	}

	payload, err = json.Marshal(values)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal extracted data: %w", err)
	}
	confidence, err = json.Marshal(conf)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal confidence: %w", err)
	}
	return payload, confidence, nil
}

func joinFragments(frags []extract.TextFragment) string {
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, "\n")
}
