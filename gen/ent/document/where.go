// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docstack-labs/idverify/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFormat, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// OcrMeanConfidence applies equality check predicate on the "ocr_mean_confidence" field. It's identical to OcrMeanConfidenceEQ.
func OcrMeanConfidence(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrMeanConfidence, v))
}

// ImageWidth applies equality check predicate on the "image_width" field. It's identical to ImageWidthEQ.
func ImageWidth(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldImageWidth, v))
}

// ImageHeight applies equality check predicate on the "image_height" field. It's identical to ImageHeightEQ.
func ImageHeight(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldImageHeight, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourcePath, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFormat, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedData))
}

// FieldConfidenceIsNil applies the IsNil predicate on the "field_confidence" field.
func FieldConfidenceIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFieldConfidence))
}

// FieldConfidenceNotNil applies the NotNil predicate on the "field_confidence" field.
func FieldConfidenceNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFieldConfidence))
}

// OcrMeanConfidenceEQ applies the EQ predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrMeanConfidence, v))
}

// OcrMeanConfidenceNEQ applies the NEQ predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceNEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrMeanConfidence, v))
}

// OcrMeanConfidenceIn applies the In predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrMeanConfidence, vs...))
}

// OcrMeanConfidenceNotIn applies the NotIn predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceNotIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrMeanConfidence, vs...))
}

// OcrMeanConfidenceGT applies the GT predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceGT(v float32) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrMeanConfidence, v))
}

// OcrMeanConfidenceGTE applies the GTE predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceGTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrMeanConfidence, v))
}

// OcrMeanConfidenceLT applies the LT predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceLT(v float32) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrMeanConfidence, v))
}

// OcrMeanConfidenceLTE applies the LTE predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceLTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrMeanConfidence, v))
}

// OcrMeanConfidenceIsNil applies the IsNil predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrMeanConfidence))
}

// OcrMeanConfidenceNotNil applies the NotNil predicate on the "ocr_mean_confidence" field.
func OcrMeanConfidenceNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrMeanConfidence))
}

// ImageWidthEQ applies the EQ predicate on the "image_width" field.
func ImageWidthEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldImageWidth, v))
}

// ImageWidthNEQ applies the NEQ predicate on the "image_width" field.
func ImageWidthNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldImageWidth, v))
}

// ImageWidthIn applies the In predicate on the "image_width" field.
func ImageWidthIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldImageWidth, vs...))
}

// ImageWidthNotIn applies the NotIn predicate on the "image_width" field.
func ImageWidthNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldImageWidth, vs...))
}

// ImageWidthGT applies the GT predicate on the "image_width" field.
func ImageWidthGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldImageWidth, v))
}

// ImageWidthGTE applies the GTE predicate on the "image_width" field.
func ImageWidthGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldImageWidth, v))
}

// ImageWidthLT applies the LT predicate on the "image_width" field.
func ImageWidthLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldImageWidth, v))
}

// ImageWidthLTE applies the LTE predicate on the "image_width" field.
func ImageWidthLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldImageWidth, v))
}

// ImageWidthIsNil applies the IsNil predicate on the "image_width" field.
func ImageWidthIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldImageWidth))
}

// ImageWidthNotNil applies the NotNil predicate on the "image_width" field.
func ImageWidthNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldImageWidth))
}

// ImageHeightEQ applies the EQ predicate on the "image_height" field.
func ImageHeightEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldImageHeight, v))
}

// ImageHeightNEQ applies the NEQ predicate on the "image_height" field.
func ImageHeightNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldImageHeight, v))
}

// ImageHeightIn applies the In predicate on the "image_height" field.
func ImageHeightIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldImageHeight, vs...))
}

// ImageHeightNotIn applies the NotIn predicate on the "image_height" field.
func ImageHeightNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldImageHeight, vs...))
}

// ImageHeightGT applies the GT predicate on the "image_height" field.
func ImageHeightGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldImageHeight, v))
}

// ImageHeightGTE applies the GTE predicate on the "image_height" field.
func ImageHeightGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldImageHeight, v))
}

// ImageHeightLT applies the LT predicate on the "image_height" field.
func ImageHeightLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldImageHeight, v))
}

// ImageHeightLTE applies the LTE predicate on the "image_height" field.
func ImageHeightLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldImageHeight, v))
}

// ImageHeightIsNil applies the IsNil predicate on the "image_height" field.
func ImageHeightIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldImageHeight))
}

// ImageHeightNotNil applies the NotNil predicate on the "image_height" field.
func ImageHeightNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldImageHeight))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNeedsReview, v))
}

// FinalVerifiedDataIsNil applies the IsNil predicate on the "final_verified_data" field.
func FinalVerifiedDataIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFinalVerifiedData))
}

// FinalVerifiedDataNotNil applies the NotNil predicate on the "final_verified_data" field.
func FinalVerifiedDataNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFinalVerifiedData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrText, v))
}

// HasVerifications applies the HasEdge predicate on the "verifications" edge.
func HasVerifications() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationsWith applies the HasEdge predicate on the "verifications" edge with a given conditions (other predicates).
func HasVerificationsWith(preds ...predicate.VerificationLog) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newVerificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
