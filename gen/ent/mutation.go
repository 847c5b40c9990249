// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docstack-labs/idverify/gen/ent/document"
	"github.com/docstack-labs/idverify/gen/ent/predicate"
	"github.com/docstack-labs/idverify/gen/ent/verificationlog"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument        = "Document"
	TypeVerificationLog = "VerificationLog"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	source_path               *string
	file_ext                  *string
	format                    *string
	status                    *string
	error_message             *string
	extracted_data            *json.RawMessage
	appendextracted_data      json.RawMessage
	field_confidence          *json.RawMessage
	appendfield_confidence    json.RawMessage
	ocr_mean_confidence       *float32
	addocr_mean_confidence    *float32
	image_width               *int
	addimage_width            *int
	image_height              *int
	addimage_height           *int
	needs_review              *bool
	final_verified_data       *json.RawMessage
	appendfinal_verified_data json.RawMessage
	created_at                *time.Time
	updated_at                *time.Time
	ocr_text                  *string
	clearedFields             map[string]struct{}
	verifications             map[uuid.UUID]struct{}
	removedverifications      map[uuid.UUID]struct{}
	clearedverifications      bool
	done                      bool
	oldValue                  func(context.Context) (*Document, error)
	predicates                []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFormat sets the "format" field.
func (m *DocumentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *DocumentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *DocumentMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetExtractedData sets the "extracted_data" field.
func (m *DocumentMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *DocumentMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *DocumentMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *DocumentMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *DocumentMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[document.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *DocumentMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, document.FieldExtractedData)
}

// SetFieldConfidence sets the "field_confidence" field.
func (m *DocumentMutation) SetFieldConfidence(jm json.RawMessage) {
	m.field_confidence = &jm
	m.appendfield_confidence = nil
}

// FieldConfidence returns the value of the "field_confidence" field in the mutation.
func (m *DocumentMutation) FieldConfidence() (r json.RawMessage, exists bool) {
	v := m.field_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldConfidence returns the old "field_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFieldConfidence(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldConfidence: %w", err)
	}
	return oldValue.FieldConfidence, nil
}

// AppendFieldConfidence adds jm to the "field_confidence" field.
func (m *DocumentMutation) AppendFieldConfidence(jm json.RawMessage) {
	m.appendfield_confidence = append(m.appendfield_confidence, jm...)
}

// AppendedFieldConfidence returns the list of values that were appended to the "field_confidence" field in this mutation.
func (m *DocumentMutation) AppendedFieldConfidence() (json.RawMessage, bool) {
	if len(m.appendfield_confidence) == 0 {
		return nil, false
	}
	return m.appendfield_confidence, true
}

// ClearFieldConfidence clears the value of the "field_confidence" field.
func (m *DocumentMutation) ClearFieldConfidence() {
	m.field_confidence = nil
	m.appendfield_confidence = nil
	m.clearedFields[document.FieldFieldConfidence] = struct{}{}
}

// FieldConfidenceCleared returns if the "field_confidence" field was cleared in this mutation.
func (m *DocumentMutation) FieldConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldFieldConfidence]
	return ok
}

// ResetFieldConfidence resets all changes to the "field_confidence" field.
func (m *DocumentMutation) ResetFieldConfidence() {
	m.field_confidence = nil
	m.appendfield_confidence = nil
	delete(m.clearedFields, document.FieldFieldConfidence)
}

// SetOcrMeanConfidence sets the "ocr_mean_confidence" field.
func (m *DocumentMutation) SetOcrMeanConfidence(f float32) {
	m.ocr_mean_confidence = &f
	m.addocr_mean_confidence = nil
}

// OcrMeanConfidence returns the value of the "ocr_mean_confidence" field in the mutation.
func (m *DocumentMutation) OcrMeanConfidence() (r float32, exists bool) {
	v := m.ocr_mean_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrMeanConfidence returns the old "ocr_mean_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrMeanConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrMeanConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrMeanConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrMeanConfidence: %w", err)
	}
	return oldValue.OcrMeanConfidence, nil
}

// AddOcrMeanConfidence adds f to the "ocr_mean_confidence" field.
func (m *DocumentMutation) AddOcrMeanConfidence(f float32) {
	if m.addocr_mean_confidence != nil {
		*m.addocr_mean_confidence += f
	} else {
		m.addocr_mean_confidence = &f
	}
}

// AddedOcrMeanConfidence returns the value that was added to the "ocr_mean_confidence" field in this mutation.
func (m *DocumentMutation) AddedOcrMeanConfidence() (r float32, exists bool) {
	v := m.addocr_mean_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrMeanConfidence clears the value of the "ocr_mean_confidence" field.
func (m *DocumentMutation) ClearOcrMeanConfidence() {
	m.ocr_mean_confidence = nil
	m.addocr_mean_confidence = nil
	m.clearedFields[document.FieldOcrMeanConfidence] = struct{}{}
}

// OcrMeanConfidenceCleared returns if the "ocr_mean_confidence" field was cleared in this mutation.
func (m *DocumentMutation) OcrMeanConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrMeanConfidence]
	return ok
}

// ResetOcrMeanConfidence resets all changes to the "ocr_mean_confidence" field.
func (m *DocumentMutation) ResetOcrMeanConfidence() {
	m.ocr_mean_confidence = nil
	m.addocr_mean_confidence = nil
	delete(m.clearedFields, document.FieldOcrMeanConfidence)
}

// SetImageWidth sets the "image_width" field.
func (m *DocumentMutation) SetImageWidth(i int) {
	m.image_width = &i
	m.addimage_width = nil
}

// ImageWidth returns the value of the "image_width" field in the mutation.
func (m *DocumentMutation) ImageWidth() (r int, exists bool) {
	v := m.image_width
	if v == nil {
		return
	}
	return *v, true
}

// OldImageWidth returns the old "image_width" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldImageWidth(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageWidth: %w", err)
	}
	return oldValue.ImageWidth, nil
}

// AddImageWidth adds i to the "image_width" field.
func (m *DocumentMutation) AddImageWidth(i int) {
	if m.addimage_width != nil {
		*m.addimage_width += i
	} else {
		m.addimage_width = &i
	}
}

// AddedImageWidth returns the value that was added to the "image_width" field in this mutation.
func (m *DocumentMutation) AddedImageWidth() (r int, exists bool) {
	v := m.addimage_width
	if v == nil {
		return
	}
	return *v, true
}

// ClearImageWidth clears the value of the "image_width" field.
func (m *DocumentMutation) ClearImageWidth() {
	m.image_width = nil
	m.addimage_width = nil
	m.clearedFields[document.FieldImageWidth] = struct{}{}
}

// ImageWidthCleared returns if the "image_width" field was cleared in this mutation.
func (m *DocumentMutation) ImageWidthCleared() bool {
	_, ok := m.clearedFields[document.FieldImageWidth]
	return ok
}

// ResetImageWidth resets all changes to the "image_width" field.
func (m *DocumentMutation) ResetImageWidth() {
	m.image_width = nil
	m.addimage_width = nil
	delete(m.clearedFields, document.FieldImageWidth)
}

// SetImageHeight sets the "image_height" field.
func (m *DocumentMutation) SetImageHeight(i int) {
	m.image_height = &i
	m.addimage_height = nil
}

// ImageHeight returns the value of the "image_height" field in the mutation.
func (m *DocumentMutation) ImageHeight() (r int, exists bool) {
	v := m.image_height
	if v == nil {
		return
	}
	return *v, true
}

// OldImageHeight returns the old "image_height" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldImageHeight(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageHeight: %w", err)
	}
	return oldValue.ImageHeight, nil
}

// AddImageHeight adds i to the "image_height" field.
func (m *DocumentMutation) AddImageHeight(i int) {
	if m.addimage_height != nil {
		*m.addimage_height += i
	} else {
		m.addimage_height = &i
	}
}

// AddedImageHeight returns the value that was added to the "image_height" field in this mutation.
func (m *DocumentMutation) AddedImageHeight() (r int, exists bool) {
	v := m.addimage_height
	if v == nil {
		return
	}
	return *v, true
}

// ClearImageHeight clears the value of the "image_height" field.
func (m *DocumentMutation) ClearImageHeight() {
	m.image_height = nil
	m.addimage_height = nil
	m.clearedFields[document.FieldImageHeight] = struct{}{}
}

// ImageHeightCleared returns if the "image_height" field was cleared in this mutation.
func (m *DocumentMutation) ImageHeightCleared() bool {
	_, ok := m.clearedFields[document.FieldImageHeight]
	return ok
}

// ResetImageHeight resets all changes to the "image_height" field.
func (m *DocumentMutation) ResetImageHeight() {
	m.image_height = nil
	m.addimage_height = nil
	delete(m.clearedFields, document.FieldImageHeight)
}

// SetNeedsReview sets the "needs_review" field.
func (m *DocumentMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *DocumentMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *DocumentMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetFinalVerifiedData sets the "final_verified_data" field.
func (m *DocumentMutation) SetFinalVerifiedData(jm json.RawMessage) {
	m.final_verified_data = &jm
	m.appendfinal_verified_data = nil
}

// FinalVerifiedData returns the value of the "final_verified_data" field in the mutation.
func (m *DocumentMutation) FinalVerifiedData() (r json.RawMessage, exists bool) {
	v := m.final_verified_data
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalVerifiedData returns the old "final_verified_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFinalVerifiedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalVerifiedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalVerifiedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalVerifiedData: %w", err)
	}
	return oldValue.FinalVerifiedData, nil
}

// AppendFinalVerifiedData adds jm to the "final_verified_data" field.
func (m *DocumentMutation) AppendFinalVerifiedData(jm json.RawMessage) {
	m.appendfinal_verified_data = append(m.appendfinal_verified_data, jm...)
}

// AppendedFinalVerifiedData returns the list of values that were appended to the "final_verified_data" field in this mutation.
func (m *DocumentMutation) AppendedFinalVerifiedData() (json.RawMessage, bool) {
	if len(m.appendfinal_verified_data) == 0 {
		return nil, false
	}
	return m.appendfinal_verified_data, true
}

// ClearFinalVerifiedData clears the value of the "final_verified_data" field.
func (m *DocumentMutation) ClearFinalVerifiedData() {
	m.final_verified_data = nil
	m.appendfinal_verified_data = nil
	m.clearedFields[document.FieldFinalVerifiedData] = struct{}{}
}

// FinalVerifiedDataCleared returns if the "final_verified_data" field was cleared in this mutation.
func (m *DocumentMutation) FinalVerifiedDataCleared() bool {
	_, ok := m.clearedFields[document.FieldFinalVerifiedData]
	return ok
}

// ResetFinalVerifiedData resets all changes to the "final_verified_data" field.
func (m *DocumentMutation) ResetFinalVerifiedData() {
	m.final_verified_data = nil
	m.appendfinal_verified_data = nil
	delete(m.clearedFields, document.FieldFinalVerifiedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *DocumentMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *DocumentMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *DocumentMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[document.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *DocumentMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *DocumentMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, document.FieldOcrText)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationLog entity by ids.
func (m *DocumentMutation) AddVerificationIDs(ids ...uuid.UUID) {
	if m.verifications == nil {
		m.verifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.verifications[ids[i]] = struct{}{}
	}
}

// ClearVerifications clears the "verifications" edge to the VerificationLog entity.
func (m *DocumentMutation) ClearVerifications() {
	m.clearedverifications = true
}

// VerificationsCleared reports if the "verifications" edge to the VerificationLog entity was cleared.
func (m *DocumentMutation) VerificationsCleared() bool {
	return m.clearedverifications
}

// RemoveVerificationIDs removes the "verifications" edge to the VerificationLog entity by IDs.
func (m *DocumentMutation) RemoveVerificationIDs(ids ...uuid.UUID) {
	if m.removedverifications == nil {
		m.removedverifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.verifications, ids[i])
		m.removedverifications[ids[i]] = struct{}{}
	}
}

// RemovedVerifications returns the removed IDs of the "verifications" edge to the VerificationLog entity.
func (m *DocumentMutation) RemovedVerificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedverifications {
		ids = append(ids, id)
	}
	return
}

// VerificationsIDs returns the "verifications" edge IDs in the mutation.
func (m *DocumentMutation) VerificationsIDs() (ids []uuid.UUID) {
	for id := range m.verifications {
		ids = append(ids, id)
	}
	return
}

// ResetVerifications resets all changes to the "verifications" edge.
func (m *DocumentMutation) ResetVerifications() {
	m.verifications = nil
	m.clearedverifications = false
	m.removedverifications = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.format != nil {
		fields = append(fields, document.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.extracted_data != nil {
		fields = append(fields, document.FieldExtractedData)
	}
	if m.field_confidence != nil {
		fields = append(fields, document.FieldFieldConfidence)
	}
	if m.ocr_mean_confidence != nil {
		fields = append(fields, document.FieldOcrMeanConfidence)
	}
	if m.image_width != nil {
		fields = append(fields, document.FieldImageWidth)
	}
	if m.image_height != nil {
		fields = append(fields, document.FieldImageHeight)
	}
	if m.needs_review != nil {
		fields = append(fields, document.FieldNeedsReview)
	}
	if m.final_verified_data != nil {
		fields = append(fields, document.FieldFinalVerifiedData)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	if m.ocr_text != nil {
		fields = append(fields, document.FieldOcrText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldFormat:
		return m.Format()
	case document.FieldStatus:
		return m.Status()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldExtractedData:
		return m.ExtractedData()
	case document.FieldFieldConfidence:
		return m.FieldConfidence()
	case document.FieldOcrMeanConfidence:
		return m.OcrMeanConfidence()
	case document.FieldImageWidth:
		return m.ImageWidth()
	case document.FieldImageHeight:
		return m.ImageHeight()
	case document.FieldNeedsReview:
		return m.NeedsReview()
	case document.FieldFinalVerifiedData:
		return m.FinalVerifiedData()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	case document.FieldOcrText:
		return m.OcrText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldFormat:
		return m.OldFormat(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case document.FieldFieldConfidence:
		return m.OldFieldConfidence(ctx)
	case document.FieldOcrMeanConfidence:
		return m.OldOcrMeanConfidence(ctx)
	case document.FieldImageWidth:
		return m.OldImageWidth(ctx)
	case document.FieldImageHeight:
		return m.OldImageHeight(ctx)
	case document.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case document.FieldFinalVerifiedData:
		return m.OldFinalVerifiedData(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case document.FieldOcrText:
		return m.OldOcrText(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case document.FieldFieldConfidence:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldConfidence(v)
		return nil
	case document.FieldOcrMeanConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrMeanConfidence(v)
		return nil
	case document.FieldImageWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageWidth(v)
		return nil
	case document.FieldImageHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageHeight(v)
		return nil
	case document.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case document.FieldFinalVerifiedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalVerifiedData(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case document.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addocr_mean_confidence != nil {
		fields = append(fields, document.FieldOcrMeanConfidence)
	}
	if m.addimage_width != nil {
		fields = append(fields, document.FieldImageWidth)
	}
	if m.addimage_height != nil {
		fields = append(fields, document.FieldImageHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldOcrMeanConfidence:
		return m.AddedOcrMeanConfidence()
	case document.FieldImageWidth:
		return m.AddedImageWidth()
	case document.FieldImageHeight:
		return m.AddedImageHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldOcrMeanConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrMeanConfidence(v)
		return nil
	case document.FieldImageWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImageWidth(v)
		return nil
	case document.FieldImageHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImageHeight(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.FieldCleared(document.FieldExtractedData) {
		fields = append(fields, document.FieldExtractedData)
	}
	if m.FieldCleared(document.FieldFieldConfidence) {
		fields = append(fields, document.FieldFieldConfidence)
	}
	if m.FieldCleared(document.FieldOcrMeanConfidence) {
		fields = append(fields, document.FieldOcrMeanConfidence)
	}
	if m.FieldCleared(document.FieldImageWidth) {
		fields = append(fields, document.FieldImageWidth)
	}
	if m.FieldCleared(document.FieldImageHeight) {
		fields = append(fields, document.FieldImageHeight)
	}
	if m.FieldCleared(document.FieldFinalVerifiedData) {
		fields = append(fields, document.FieldFinalVerifiedData)
	}
	if m.FieldCleared(document.FieldOcrText) {
		fields = append(fields, document.FieldOcrText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case document.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case document.FieldFieldConfidence:
		m.ClearFieldConfidence()
		return nil
	case document.FieldOcrMeanConfidence:
		m.ClearOcrMeanConfidence()
		return nil
	case document.FieldImageWidth:
		m.ClearImageWidth()
		return nil
	case document.FieldImageHeight:
		m.ClearImageHeight()
		return nil
	case document.FieldFinalVerifiedData:
		m.ClearFinalVerifiedData()
		return nil
	case document.FieldOcrText:
		m.ClearOcrText()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldFormat:
		m.ResetFormat()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case document.FieldFieldConfidence:
		m.ResetFieldConfidence()
		return nil
	case document.FieldOcrMeanConfidence:
		m.ResetOcrMeanConfidence()
		return nil
	case document.FieldImageWidth:
		m.ResetImageWidth()
		return nil
	case document.FieldImageHeight:
		m.ResetImageHeight()
		return nil
	case document.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case document.FieldFinalVerifiedData:
		m.ResetFinalVerifiedData()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case document.FieldOcrText:
		m.ResetOcrText()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.verifications != nil {
		edges = append(edges, document.EdgeVerifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.verifications))
		for id := range m.verifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedverifications != nil {
		edges = append(edges, document.EdgeVerifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.removedverifications))
		for id := range m.removedverifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedverifications {
		edges = append(edges, document.EdgeVerifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeVerifications:
		return m.clearedverifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeVerifications:
		m.ResetVerifications()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// VerificationLogMutation represents an operation that mutates the VerificationLog nodes in the graph.
type VerificationLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	submitted_data       *json.RawMessage
	appendsubmitted_data json.RawMessage
	report               *json.RawMessage
	appendreport         json.RawMessage
	summary              *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	document             *uuid.UUID
	cleareddocument      bool
	done                 bool
	oldValue             func(context.Context) (*VerificationLog, error)
	predicates           []predicate.VerificationLog
}

var _ ent.Mutation = (*VerificationLogMutation)(nil)

// verificationlogOption allows management of the mutation configuration using functional options.
type verificationlogOption func(*VerificationLogMutation)

// newVerificationLogMutation creates new mutation for the VerificationLog entity.
func newVerificationLogMutation(c config, op Op, opts ...verificationlogOption) *VerificationLogMutation {
	m := &VerificationLogMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationLogID sets the ID field of the mutation.
func withVerificationLogID(id uuid.UUID) verificationlogOption {
	return func(m *VerificationLogMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationLog
		)
		m.oldValue = func(ctx context.Context) (*VerificationLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationLog sets the old VerificationLog of the mutation.
func withVerificationLog(node *VerificationLog) verificationlogOption {
	return func(m *VerificationLogMutation) {
		m.oldValue = func(context.Context) (*VerificationLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationLog entities.
func (m *VerificationLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *VerificationLogMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *VerificationLogMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the VerificationLog entity.
// If the VerificationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *VerificationLogMutation) ResetDocumentID() {
	m.document = nil
}

// SetSubmittedData sets the "submitted_data" field.
func (m *VerificationLogMutation) SetSubmittedData(jm json.RawMessage) {
	m.submitted_data = &jm
	m.appendsubmitted_data = nil
}

// SubmittedData returns the value of the "submitted_data" field in the mutation.
func (m *VerificationLogMutation) SubmittedData() (r json.RawMessage, exists bool) {
	v := m.submitted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedData returns the old "submitted_data" field's value of the VerificationLog entity.
// If the VerificationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogMutation) OldSubmittedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedData: %w", err)
	}
	return oldValue.SubmittedData, nil
}

// AppendSubmittedData adds jm to the "submitted_data" field.
func (m *VerificationLogMutation) AppendSubmittedData(jm json.RawMessage) {
	m.appendsubmitted_data = append(m.appendsubmitted_data, jm...)
}

// AppendedSubmittedData returns the list of values that were appended to the "submitted_data" field in this mutation.
func (m *VerificationLogMutation) AppendedSubmittedData() (json.RawMessage, bool) {
	if len(m.appendsubmitted_data) == 0 {
		return nil, false
	}
	return m.appendsubmitted_data, true
}

// ResetSubmittedData resets all changes to the "submitted_data" field.
func (m *VerificationLogMutation) ResetSubmittedData() {
	m.submitted_data = nil
	m.appendsubmitted_data = nil
}

// SetReport sets the "report" field.
func (m *VerificationLogMutation) SetReport(jm json.RawMessage) {
	m.report = &jm
	m.appendreport = nil
}

// Report returns the value of the "report" field in the mutation.
func (m *VerificationLogMutation) Report() (r json.RawMessage, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the VerificationLog entity.
// If the VerificationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogMutation) OldReport(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// AppendReport adds jm to the "report" field.
func (m *VerificationLogMutation) AppendReport(jm json.RawMessage) {
	m.appendreport = append(m.appendreport, jm...)
}

// AppendedReport returns the list of values that were appended to the "report" field in this mutation.
func (m *VerificationLogMutation) AppendedReport() (json.RawMessage, bool) {
	if len(m.appendreport) == 0 {
		return nil, false
	}
	return m.appendreport, true
}

// ResetReport resets all changes to the "report" field.
func (m *VerificationLogMutation) ResetReport() {
	m.report = nil
	m.appendreport = nil
}

// SetSummary sets the "summary" field.
func (m *VerificationLogMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *VerificationLogMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the VerificationLog entity.
// If the VerificationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *VerificationLogMutation) ResetSummary() {
	m.summary = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationLog entity.
// If the VerificationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *VerificationLogMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[verificationlog.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *VerificationLogMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *VerificationLogMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *VerificationLogMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the VerificationLogMutation builder.
func (m *VerificationLogMutation) Where(ps ...predicate.VerificationLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationLog).
func (m *VerificationLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, verificationlog.FieldDocumentID)
	}
	if m.submitted_data != nil {
		fields = append(fields, verificationlog.FieldSubmittedData)
	}
	if m.report != nil {
		fields = append(fields, verificationlog.FieldReport)
	}
	if m.summary != nil {
		fields = append(fields, verificationlog.FieldSummary)
	}
	if m.created_at != nil {
		fields = append(fields, verificationlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationlog.FieldDocumentID:
		return m.DocumentID()
	case verificationlog.FieldSubmittedData:
		return m.SubmittedData()
	case verificationlog.FieldReport:
		return m.Report()
	case verificationlog.FieldSummary:
		return m.Summary()
	case verificationlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationlog.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case verificationlog.FieldSubmittedData:
		return m.OldSubmittedData(ctx)
	case verificationlog.FieldReport:
		return m.OldReport(ctx)
	case verificationlog.FieldSummary:
		return m.OldSummary(ctx)
	case verificationlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationlog.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case verificationlog.FieldSubmittedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedData(v)
		return nil
	case verificationlog.FieldReport:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	case verificationlog.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case verificationlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VerificationLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationLogMutation) ResetField(name string) error {
	switch name {
	case verificationlog.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case verificationlog.FieldSubmittedData:
		m.ResetSubmittedData()
		return nil
	case verificationlog.FieldReport:
		m.ResetReport()
		return nil
	case verificationlog.FieldSummary:
		m.ResetSummary()
		return nil
	case verificationlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, verificationlog.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationlog.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, verificationlog.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationLogMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationlog.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationLogMutation) ClearEdge(name string) error {
	switch name {
	case verificationlog.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown VerificationLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationLogMutation) ResetEdge(name string) error {
	switch name {
	case verificationlog.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown VerificationLog edge %s", name)
}
