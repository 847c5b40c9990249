// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docstack-labs/idverify/gen/ent/document"
	"github.com/docstack-labs/idverify/gen/ent/predicate"
	"github.com/docstack-labs/idverify/gen/ent/verificationlog"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdate) SetFormat(v string) *DocumentUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFormat(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdate) SetErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdate) ClearErrorMessage() *DocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *DocumentUpdate) SetExtractedData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *DocumentUpdate) AppendExtractedData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *DocumentUpdate) ClearExtractedData() *DocumentUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetFieldConfidence sets the "field_confidence" field.
func (_u *DocumentUpdate) SetFieldConfidence(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetFieldConfidence(v)
	return _u
}

// AppendFieldConfidence appends value to the "field_confidence" field.
func (_u *DocumentUpdate) AppendFieldConfidence(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendFieldConfidence(v)
	return _u
}

// ClearFieldConfidence clears the value of the "field_confidence" field.
func (_u *DocumentUpdate) ClearFieldConfidence() *DocumentUpdate {
	_u.mutation.ClearFieldConfidence()
	return _u
}

// SetOcrMeanConfidence sets the "ocr_mean_confidence" field.
func (_u *DocumentUpdate) SetOcrMeanConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetOcrMeanConfidence()
	_u.mutation.SetOcrMeanConfidence(v)
	return _u
}

// SetNillableOcrMeanConfidence sets the "ocr_mean_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrMeanConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetOcrMeanConfidence(*v)
	}
	return _u
}

// AddOcrMeanConfidence adds value to the "ocr_mean_confidence" field.
func (_u *DocumentUpdate) AddOcrMeanConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddOcrMeanConfidence(v)
	return _u
}

// ClearOcrMeanConfidence clears the value of the "ocr_mean_confidence" field.
func (_u *DocumentUpdate) ClearOcrMeanConfidence() *DocumentUpdate {
	_u.mutation.ClearOcrMeanConfidence()
	return _u
}

// SetImageWidth sets the "image_width" field.
func (_u *DocumentUpdate) SetImageWidth(v int) *DocumentUpdate {
	_u.mutation.ResetImageWidth()
	_u.mutation.SetImageWidth(v)
	return _u
}

// SetNillableImageWidth sets the "image_width" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableImageWidth(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetImageWidth(*v)
	}
	return _u
}

// AddImageWidth adds value to the "image_width" field.
func (_u *DocumentUpdate) AddImageWidth(v int) *DocumentUpdate {
	_u.mutation.AddImageWidth(v)
	return _u
}

// ClearImageWidth clears the value of the "image_width" field.
func (_u *DocumentUpdate) ClearImageWidth() *DocumentUpdate {
	_u.mutation.ClearImageWidth()
	return _u
}

// SetImageHeight sets the "image_height" field.
func (_u *DocumentUpdate) SetImageHeight(v int) *DocumentUpdate {
	_u.mutation.ResetImageHeight()
	_u.mutation.SetImageHeight(v)
	return _u
}

// SetNillableImageHeight sets the "image_height" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableImageHeight(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetImageHeight(*v)
	}
	return _u
}

// AddImageHeight adds value to the "image_height" field.
func (_u *DocumentUpdate) AddImageHeight(v int) *DocumentUpdate {
	_u.mutation.AddImageHeight(v)
	return _u
}

// ClearImageHeight clears the value of the "image_height" field.
func (_u *DocumentUpdate) ClearImageHeight() *DocumentUpdate {
	_u.mutation.ClearImageHeight()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DocumentUpdate) SetNeedsReview(v bool) *DocumentUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNeedsReview(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetFinalVerifiedData sets the "final_verified_data" field.
func (_u *DocumentUpdate) SetFinalVerifiedData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetFinalVerifiedData(v)
	return _u
}

// AppendFinalVerifiedData appends value to the "final_verified_data" field.
func (_u *DocumentUpdate) AppendFinalVerifiedData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendFinalVerifiedData(v)
	return _u
}

// ClearFinalVerifiedData clears the value of the "final_verified_data" field.
func (_u *DocumentUpdate) ClearFinalVerifiedData() *DocumentUpdate {
	_u.mutation.ClearFinalVerifiedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdate) SetOcrText(v string) *DocumentUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdate) ClearOcrText() *DocumentUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// AddVerificationIDs adds the "verifications" edge to the VerificationLog entity by IDs.
func (_u *DocumentUpdate) AddVerificationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationLog entity.
func (_u *DocumentUpdate) AddVerifications(v ...*VerificationLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearVerifications clears all "verifications" edges to the VerificationLog entity.
func (_u *DocumentUpdate) ClearVerifications() *DocumentUpdate {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationLog entities by IDs.
func (_u *DocumentUpdate) RemoveVerificationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationLog entities.
func (_u *DocumentUpdate) RemoveVerifications(v ...*VerificationLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(document.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(document.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldConfidence(); ok {
		_spec.SetField(document.FieldFieldConfidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldConfidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldFieldConfidence, value)
		})
	}
	if _u.mutation.FieldConfidenceCleared() {
		_spec.ClearField(document.FieldFieldConfidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrMeanConfidence(); ok {
		_spec.SetField(document.FieldOcrMeanConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrMeanConfidence(); ok {
		_spec.AddField(document.FieldOcrMeanConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrMeanConfidenceCleared() {
		_spec.ClearField(document.FieldOcrMeanConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ImageWidth(); ok {
		_spec.SetField(document.FieldImageWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageWidth(); ok {
		_spec.AddField(document.FieldImageWidth, field.TypeInt, value)
	}
	if _u.mutation.ImageWidthCleared() {
		_spec.ClearField(document.FieldImageWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.ImageHeight(); ok {
		_spec.SetField(document.FieldImageHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageHeight(); ok {
		_spec.AddField(document.FieldImageHeight, field.TypeInt, value)
	}
	if _u.mutation.ImageHeightCleared() {
		_spec.ClearField(document.FieldImageHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalVerifiedData(); ok {
		_spec.SetField(document.FieldFinalVerifiedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinalVerifiedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldFinalVerifiedData, value)
		})
	}
	if _u.mutation.FinalVerifiedDataCleared() {
		_spec.ClearField(document.FieldFinalVerifiedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdateOne) SetFormat(v string) *DocumentUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFormat(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdateOne) SetErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdateOne) ClearErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *DocumentUpdateOne) SetExtractedData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *DocumentUpdateOne) AppendExtractedData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *DocumentUpdateOne) ClearExtractedData() *DocumentUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetFieldConfidence sets the "field_confidence" field.
func (_u *DocumentUpdateOne) SetFieldConfidence(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetFieldConfidence(v)
	return _u
}

// AppendFieldConfidence appends value to the "field_confidence" field.
func (_u *DocumentUpdateOne) AppendFieldConfidence(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendFieldConfidence(v)
	return _u
}

// ClearFieldConfidence clears the value of the "field_confidence" field.
func (_u *DocumentUpdateOne) ClearFieldConfidence() *DocumentUpdateOne {
	_u.mutation.ClearFieldConfidence()
	return _u
}

// SetOcrMeanConfidence sets the "ocr_mean_confidence" field.
func (_u *DocumentUpdateOne) SetOcrMeanConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetOcrMeanConfidence()
	_u.mutation.SetOcrMeanConfidence(v)
	return _u
}

// SetNillableOcrMeanConfidence sets the "ocr_mean_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrMeanConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrMeanConfidence(*v)
	}
	return _u
}

// AddOcrMeanConfidence adds value to the "ocr_mean_confidence" field.
func (_u *DocumentUpdateOne) AddOcrMeanConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddOcrMeanConfidence(v)
	return _u
}

// ClearOcrMeanConfidence clears the value of the "ocr_mean_confidence" field.
func (_u *DocumentUpdateOne) ClearOcrMeanConfidence() *DocumentUpdateOne {
	_u.mutation.ClearOcrMeanConfidence()
	return _u
}

// SetImageWidth sets the "image_width" field.
func (_u *DocumentUpdateOne) SetImageWidth(v int) *DocumentUpdateOne {
	_u.mutation.ResetImageWidth()
	_u.mutation.SetImageWidth(v)
	return _u
}

// SetNillableImageWidth sets the "image_width" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableImageWidth(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetImageWidth(*v)
	}
	return _u
}

// AddImageWidth adds value to the "image_width" field.
func (_u *DocumentUpdateOne) AddImageWidth(v int) *DocumentUpdateOne {
	_u.mutation.AddImageWidth(v)
	return _u
}

// ClearImageWidth clears the value of the "image_width" field.
func (_u *DocumentUpdateOne) ClearImageWidth() *DocumentUpdateOne {
	_u.mutation.ClearImageWidth()
	return _u
}

// SetImageHeight sets the "image_height" field.
func (_u *DocumentUpdateOne) SetImageHeight(v int) *DocumentUpdateOne {
	_u.mutation.ResetImageHeight()
	_u.mutation.SetImageHeight(v)
	return _u
}

// SetNillableImageHeight sets the "image_height" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableImageHeight(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetImageHeight(*v)
	}
	return _u
}

// AddImageHeight adds value to the "image_height" field.
func (_u *DocumentUpdateOne) AddImageHeight(v int) *DocumentUpdateOne {
	_u.mutation.AddImageHeight(v)
	return _u
}

// ClearImageHeight clears the value of the "image_height" field.
func (_u *DocumentUpdateOne) ClearImageHeight() *DocumentUpdateOne {
	_u.mutation.ClearImageHeight()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DocumentUpdateOne) SetNeedsReview(v bool) *DocumentUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNeedsReview(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetFinalVerifiedData sets the "final_verified_data" field.
func (_u *DocumentUpdateOne) SetFinalVerifiedData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetFinalVerifiedData(v)
	return _u
}

// AppendFinalVerifiedData appends value to the "final_verified_data" field.
func (_u *DocumentUpdateOne) AppendFinalVerifiedData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendFinalVerifiedData(v)
	return _u
}

// ClearFinalVerifiedData clears the value of the "final_verified_data" field.
func (_u *DocumentUpdateOne) ClearFinalVerifiedData() *DocumentUpdateOne {
	_u.mutation.ClearFinalVerifiedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdateOne) SetOcrText(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdateOne) ClearOcrText() *DocumentUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// AddVerificationIDs adds the "verifications" edge to the VerificationLog entity by IDs.
func (_u *DocumentUpdateOne) AddVerificationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationLog entity.
func (_u *DocumentUpdateOne) AddVerifications(v ...*VerificationLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearVerifications clears all "verifications" edges to the VerificationLog entity.
func (_u *DocumentUpdateOne) ClearVerifications() *DocumentUpdateOne {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationLog entities by IDs.
func (_u *DocumentUpdateOne) RemoveVerificationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationLog entities.
func (_u *DocumentUpdateOne) RemoveVerifications(v ...*VerificationLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(document.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(document.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldConfidence(); ok {
		_spec.SetField(document.FieldFieldConfidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldConfidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldFieldConfidence, value)
		})
	}
	if _u.mutation.FieldConfidenceCleared() {
		_spec.ClearField(document.FieldFieldConfidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrMeanConfidence(); ok {
		_spec.SetField(document.FieldOcrMeanConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrMeanConfidence(); ok {
		_spec.AddField(document.FieldOcrMeanConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrMeanConfidenceCleared() {
		_spec.ClearField(document.FieldOcrMeanConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ImageWidth(); ok {
		_spec.SetField(document.FieldImageWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageWidth(); ok {
		_spec.AddField(document.FieldImageWidth, field.TypeInt, value)
	}
	if _u.mutation.ImageWidthCleared() {
		_spec.ClearField(document.FieldImageWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.ImageHeight(); ok {
		_spec.SetField(document.FieldImageHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageHeight(); ok {
		_spec.AddField(document.FieldImageHeight, field.TypeInt, value)
	}
	if _u.mutation.ImageHeightCleared() {
		_spec.ClearField(document.FieldImageHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalVerifiedData(); ok {
		_spec.SetField(document.FieldFinalVerifiedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinalVerifiedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldFinalVerifiedData, value)
		})
	}
	if _u.mutation.FinalVerifiedDataCleared() {
		_spec.ClearField(document.FieldFinalVerifiedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
