package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docstack-labs/idverify/constants"
	"github.com/docstack-labs/idverify/gen/ent"
	"github.com/docstack-labs/idverify/gen/ent/document"
)

// ExtractionOutcome carries everything the pipeline persists after a
// successful extraction pass.
type ExtractionOutcome struct {
	ExtractedData   json.RawMessage // field -> value
	FieldConfidence json.RawMessage // field -> 1.0/0.0
	OCRText         string
	MeanConfidence  float32
	ImageWidth      int
	ImageHeight     int
	NeedsReview     bool
}

type DocumentRepository interface {
	Create(ctx context.Context, sourcePath, fileExt, format string) (*ent.Document, error)
	FinishExtraction(ctx context.Context, docID uuid.UUID, out ExtractionOutcome) error
	FinishFailure(ctx context.Context, docID uuid.UUID, message string) error
	GetByID(ctx context.Context, docID uuid.UUID) (*ent.Document, error)
	SaveVerification(ctx context.Context, docID uuid.UUID, submitted, report json.RawMessage, summary string) error
	ListByStatus(ctx context.Context, status constants.DocStatus) ([]*ent.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	if log == nil {
		log = slog.Default()
	}
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, sourcePath, fileExt, format string) (*ent.Document, error) {
	doc, err := r.ent.Document.
		Create().
		SetSourcePath(sourcePath).
		SetFileExt(fileExt).
		SetFormat(format).
		SetStatus(string(constants.DocStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "source_path", sourcePath, "err", err)
		return nil, err
	}
	r.log.Info("document created", "doc_id", doc.ID, "source_path", sourcePath)
	return doc, nil
}

func (r *documentRepo) FinishExtraction(ctx context.Context, docID uuid.UUID, out ExtractionOutcome) error {
	_, err := r.ent.Document.
		UpdateOneID(docID).
		SetExtractedData(out.ExtractedData).
		SetFieldConfidence(out.FieldConfidence).
		SetOcrText(out.OCRText).
		SetOcrMeanConfidence(out.MeanConfidence).
		SetImageWidth(out.ImageWidth).
		SetImageHeight(out.ImageHeight).
		SetNeedsReview(out.NeedsReview).
		SetStatus(string(constants.DocStatusExtracted)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("document finish(EXTRACTED) failed", "doc_id", docID, "err", err)
		return err
	}
	r.log.Info("document extracted", "doc_id", docID, "needs_review", out.NeedsReview)
	return nil
}

func (r *documentRepo) FinishFailure(ctx context.Context, docID uuid.UUID, message string) error {
	_, err := r.ent.Document.
		UpdateOneID(docID).
		SetStatus(string(constants.DocStatusFailed)).
		SetErrorMessage(message).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("document finish(FAILED) failed", "doc_id", docID, "err", err)
		return err
	}
	r.log.Warn("document failed", "doc_id", docID, "error", message)
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, docID uuid.UUID) (*ent.Document, error) {
	doc, err := r.ent.Document.Get(ctx, docID)
	if err != nil {
		r.log.Error("document get failed", "doc_id", docID, "err", err)
		return nil, err
	}
	return doc, nil
}

// SaveVerification appends a verification log and marks the document COMPLETED
// with the user-submitted values as the final data.
func (r *documentRepo) SaveVerification(ctx context.Context, docID uuid.UUID, submitted, report json.RawMessage, summary string) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.VerificationLog.
		Create().
		SetDocumentID(docID).
		SetSubmittedData(submitted).
		SetReport(report).
		SetSummary(summary).
		Save(ctx)
	if err == nil {
		_, err = tx.Document.
			UpdateOneID(docID).
			SetFinalVerifiedData(submitted).
			SetStatus(string(constants.DocStatusCompleted)).
			SetUpdatedAt(time.Now()).
			Save(ctx)
	}
	if err != nil {
		r.log.Error("save verification failed", "doc_id", docID, "err", err)
		if rerr := tx.Rollback(); rerr != nil {
			r.log.Error("verification rollback failed", "doc_id", docID, "err", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		r.log.Error("verification commit failed", "doc_id", docID, "err", err)
		return err
	}
	r.log.Info("verification saved", "doc_id", docID)
	return nil
}

func (r *documentRepo) ListByStatus(ctx context.Context, status constants.DocStatus) ([]*ent.Document, error) {
	docs, err := r.ent.Document.
		Query().
		Where(document.Status(string(status))).
		Order(ent.Asc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("document list failed", "status", status, "err", err)
		return nil, err
	}
	return docs, nil
}
