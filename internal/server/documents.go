package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docstack-labs/idverify/constants"
	"github.com/docstack-labs/idverify/gen/ent"
	idverifypb "github.com/docstack-labs/idverify/gen/proto/idverify/v1"
	"github.com/docstack-labs/idverify/internal/common"
	"github.com/docstack-labs/idverify/internal/export"
	processor "github.com/docstack-labs/idverify/internal/pipeline"
	"github.com/docstack-labs/idverify/internal/repository"
	"github.com/docstack-labs/idverify/internal/verify"
)

type DocumentsService struct {
	idverifypb.UnimplementedDocumentsServiceServer
	processor *processor.Processor
	docs      repository.DocumentRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewDocumentsService(proc *processor.Processor, docs repository.DocumentRepository, exporter *export.Service, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{
		processor: proc,
		docs:      docs,
		exporter:  exporter,
		logger:    logger,
	}
}

// ProcessDocument implements idverifypb.DocumentsServiceServer
func (s *DocumentsService) ProcessDocument(ctx context.Context, req *idverifypb.ProcessDocumentRequest) (*idverifypb.ProcessDocumentResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("process request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting document processing", "path", path)
	docID, result, err := s.processor.ProcessFile(ctx, path)
	if err != nil {
		// No document row means the input was rejected before recognition.
		if docID == uuid.Nil {
			return nil, common.InvalidArgumentErrorf("process: %v", err)
		}
		s.logger.Error("pipeline.failed", "doc_id", docID, "err", err)
		return nil, common.InternalErrorf("process: %v", err)
	}

	fields := make(map[string]string, len(result))
	confidence := make(map[string]float64, len(constants.Fields()))
	for _, f := range constants.Fields() {
		if v, ok := result.Value(f); ok {
			fields[string(f)] = v
			confidence[string(f)] = 1.0
		} else {
			confidence[string(f)] = 0.0
		}
	}

	needsReview := false
	if doc, err := s.docs.GetByID(ctx, docID); err == nil {
		needsReview = doc.NeedsReview
	}

	s.logger.Info("document processed", "doc_id", docID, "fields_resolved", len(fields), "needs_review", needsReview)
	return &idverifypb.ProcessDocumentResponse{
		DocumentId:      docID.String(),
		Fields:          fields,
		FieldConfidence: confidence,
		NeedsReview:     needsReview,
	}, nil
}

// GetDocument implements idverifypb.DocumentsServiceServer
func (s *DocumentsService) GetDocument(ctx context.Context, req *idverifypb.GetDocumentRequest) (*idverifypb.GetDocumentResponse, error) {
	docID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.GetDocumentId(), "error", err)
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("failed to get document", "doc_id", docID, "error", err)
		return nil, common.InternalErrorf("get document: %v", err)
	}

	return &idverifypb.GetDocumentResponse{Document: toPBDocument(doc)}, nil
}

// VerifyDocument implements idverifypb.DocumentsServiceServer
func (s *DocumentsService) VerifyDocument(ctx context.Context, req *idverifypb.VerifyDocumentRequest) (*idverifypb.VerifyDocumentResponse, error) {
	docID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.GetDocumentId(), "error", err)
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	submitted := req.GetFields()
	if len(submitted) == 0 {
		return nil, common.InvalidArgumentError("fields are required")
	}
	for key := range submitted {
		if !constants.IsField(key) {
			return nil, common.InvalidArgumentErrorf("unknown field: %s", key)
		}
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("failed to get document", "doc_id", docID, "error", err)
		return nil, common.InternalErrorf("get document: %v", err)
	}

	extracted := map[string]string{}
	if len(doc.ExtractedData) > 0 {
		if err := json.Unmarshal(doc.ExtractedData, &extracted); err != nil {
			s.logger.Error("stored extracted_data is unreadable", "doc_id", docID, "error", err)
			return nil, common.InternalError("stored extraction is unreadable")
		}
	}

	report := verify.BuildReport(extracted, submitted)
	summary := summarize(report)

	submittedJSON, err := json.Marshal(submitted)
	if err != nil {
		return nil, common.InternalErrorf("marshal submitted fields: %v", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, common.InternalErrorf("marshal report: %v", err)
	}

	if err := s.docs.SaveVerification(ctx, docID, submittedJSON, reportJSON, summary); err != nil {
		s.logger.Error("failed to save verification", "doc_id", docID, "error", err)
		return nil, common.InternalErrorf("save verification: %v", err)
	}

	s.logger.Info("document verified", "doc_id", docID, "summary", summary)
	return &idverifypb.VerifyDocumentResponse{
		DocumentId: docID.String(),
		Reports:    toPBReports(report),
		Summary:    summary,
	}, nil
}

// ExportDocuments implements idverifypb.DocumentsServiceServer
func (s *DocumentsService) ExportDocuments(ctx context.Context, req *idverifypb.ExportDocumentsRequest) (*idverifypb.ExportDocumentsResponse, error) {
	statusStr := strings.TrimSpace(req.GetStatus())
	if statusStr == "" {
		statusStr = string(constants.DocStatusCompleted)
	}
	status := constants.DocStatus(statusStr)
	if !validStatus(status) {
		return nil, common.InvalidArgumentErrorf("unknown status: %s", statusStr)
	}

	xlsx, err := s.exporter.ExportDocumentsXLSX(ctx, status)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "status", statusStr, "err", err)
		return nil, common.InternalErrorf("export: %v", err)
	}
	return &idverifypb.ExportDocumentsResponse{Xlsx: xlsx}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("document_id is required")
	}
	return uuid.Parse(raw)
}

func validStatus(status constants.DocStatus) bool {
	for _, s := range constants.DocStatuses {
		if s == string(status) {
			return true
		}
	}
	return false
}

// summarize renders the per-status counts, e.g. "5 verified, 1 corrected".
func summarize(report map[string]verify.FieldReport) string {
	counts := map[constants.VerificationStatus]int{}
	for _, fr := range report {
		counts[fr.Status]++
	}
	parts := make([]string, 0, 3)
	for _, st := range []constants.VerificationStatus{
		constants.VerificationVerified,
		constants.VerificationCorrected,
		constants.VerificationOverridden,
	} {
		if n := counts[st]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(string(st))))
		}
	}
	if len(parts) == 0 {
		return "no fields submitted"
	}
	return strings.Join(parts, ", ")
}

func toPBReports(report map[string]verify.FieldReport) []*idverifypb.FieldReport {
	keys := make([]string, 0, len(report))
	for k := range report {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*idverifypb.FieldReport, 0, len(keys))
	for _, k := range keys {
		fr := report[k]
		out = append(out, &idverifypb.FieldReport{
			Field:           k,
			OriginalValue:   fr.OriginalValue,
			FinalValue:      fr.FinalValue,
			Status:          string(fr.Status),
			SimilarityScore: fr.Similarity,
			Notes:           fr.Notes,
		})
	}
	return out
}

func toPBDocument(doc *ent.Document) *idverifypb.Document {
	out := &idverifypb.Document{
		DocumentId:  doc.ID.String(),
		SourcePath:  doc.SourcePath,
		Status:      doc.Status,
		NeedsReview: doc.NeedsReview,
		CreatedAt:   doc.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   doc.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if doc.ErrorMessage != nil {
		out.ErrorMessage = *doc.ErrorMessage
	}
	if doc.OcrMeanConfidence != nil {
		out.OcrMeanConfidence = float64(*doc.OcrMeanConfidence)
	}

	// Prefer the human-verified values once verification has run.
	raw := doc.FinalVerifiedData
	if len(raw) == 0 {
		raw = doc.ExtractedData
	}
	if len(raw) > 0 {
		fields := map[string]string{}
		if err := json.Unmarshal(raw, &fields); err == nil {
			out.Fields = fields
		}
	}
	if len(doc.FieldConfidence) > 0 {
		conf := map[string]float64{}
		if err := json.Unmarshal(doc.FieldConfidence, &conf); err == nil {
			out.FieldConfidence = conf
		}
	}
	return out
}
