// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: idverify/v1/idverify.proto

package idverifyv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ProcessDocumentResponse struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// field name -> normalized value; unresolved fields are absent
	Fields map[string]string `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	// field name -> 1.0 when a value was recovered, 0.0 otherwise
	FieldConfidence map[string]float64 `protobuf:"bytes,3,rep,name=field_confidence,json=fieldConfidence,proto3" json:"field_confidence,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	NeedsReview     bool               `protobuf:"varint,4,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ProcessDocumentResponse) GetFieldConfidence() map[string]float64 {
	if x != nil {
		return x.FieldConfidence
	}
	return nil
}

func (x *ProcessDocumentResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{2}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type Document struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	DocumentId        string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourcePath        string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Status            string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Fields            map[string]string      `protobuf:"bytes,4,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	FieldConfidence   map[string]float64     `protobuf:"bytes,5,rep,name=field_confidence,json=fieldConfidence,proto3" json:"field_confidence,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	OcrMeanConfidence float64                `protobuf:"fixed64,6,opt,name=ocr_mean_confidence,json=ocrMeanConfidence,proto3" json:"ocr_mean_confidence,omitempty"`
	NeedsReview       bool                   `protobuf:"varint,7,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ErrorMessage      string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{3}
}

func (x *Document) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Document) GetFieldConfidence() map[string]float64 {
	if x != nil {
		return x.FieldConfidence
	}
	return nil
}

func (x *Document) GetOcrMeanConfidence() float64 {
	if x != nil {
		return x.OcrMeanConfidence
	}
	return 0
}

func (x *Document) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type VerifyDocumentRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// field name -> user-confirmed value
	Fields        map[string]string `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyDocumentRequest) Reset() {
	*x = VerifyDocumentRequest{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyDocumentRequest) ProtoMessage() {}

func (x *VerifyDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyDocumentRequest.ProtoReflect.Descriptor instead.
func (*VerifyDocumentRequest) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{5}
}

func (x *VerifyDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *VerifyDocumentRequest) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

type FieldReport struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	OriginalValue string                 `protobuf:"bytes,2,opt,name=original_value,json=originalValue,proto3" json:"original_value,omitempty"`
	FinalValue    string                 `protobuf:"bytes,3,opt,name=final_value,json=finalValue,proto3" json:"final_value,omitempty"`
	// VERIFIED, CORRECTED, or OVERRIDDEN
	Status          string  `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	SimilarityScore float64 `protobuf:"fixed64,5,opt,name=similarity_score,json=similarityScore,proto3" json:"similarity_score,omitempty"`
	Notes           string  `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *FieldReport) Reset() {
	*x = FieldReport{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldReport) ProtoMessage() {}

func (x *FieldReport) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldReport.ProtoReflect.Descriptor instead.
func (*FieldReport) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{6}
}

func (x *FieldReport) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *FieldReport) GetOriginalValue() string {
	if x != nil {
		return x.OriginalValue
	}
	return ""
}

func (x *FieldReport) GetFinalValue() string {
	if x != nil {
		return x.FinalValue
	}
	return ""
}

func (x *FieldReport) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *FieldReport) GetSimilarityScore() float64 {
	if x != nil {
		return x.SimilarityScore
	}
	return 0
}

func (x *FieldReport) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type VerifyDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Reports       []*FieldReport         `protobuf:"bytes,2,rep,name=reports,proto3" json:"reports,omitempty"`
	Summary       string                 `protobuf:"bytes,3,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyDocumentResponse) Reset() {
	*x = VerifyDocumentResponse{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyDocumentResponse) ProtoMessage() {}

func (x *VerifyDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyDocumentResponse.ProtoReflect.Descriptor instead.
func (*VerifyDocumentResponse) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{7}
}

func (x *VerifyDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *VerifyDocumentResponse) GetReports() []*FieldReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

func (x *VerifyDocumentResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type ExportDocumentsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// document status to export; defaults to COMPLETED
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{8}
}

func (x *ExportDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_idverify_v1_idverify_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_idverify_v1_idverify_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_idverify_v1_idverify_proto_rawDescGZIP(), []int{9}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_idverify_v1_idverify_proto protoreflect.FileDescriptor

const file_idverify_v1_idverify_proto_rawDesc = "" +
	"\n" +
	"\x1aidverify/v1/idverify.proto\x12\vidverify.v1\",\n" +
	"\x16ProcessDocumentRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\x8c\x03\n" +
	"\x17ProcessDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12H\n" +
	"\x06fields\x18\x02 \x03(\v20.idverify.v1.ProcessDocumentResponse.FieldsEntryR\x06fields\x12d\n" +
	"\x10field_confidence\x18\x03 \x03(\v29.idverify.v1.ProcessDocumentResponse.FieldConfidenceEntryR\x0ffieldConfidence\x12!\n" +
	"\fneeds_review\x18\x04 \x01(\bR\vneedsReview\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1aB\n" +
	"\x14FieldConfidenceEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xab\x04\n" +
	"\bDocument\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x129\n" +
	"\x06fields\x18\x04 \x03(\v2!.idverify.v1.Document.FieldsEntryR\x06fields\x12U\n" +
	"\x10field_confidence\x18\x05 \x03(\v2*.idverify.v1.Document.FieldConfidenceEntryR\x0ffieldConfidence\x12.\n" +
	"\x13ocr_mean_confidence\x18\x06 \x01(\x01R\x11ocrMeanConfidence\x12!\n" +
	"\fneeds_review\x18\a \x01(\bR\vneedsReview\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1aB\n" +
	"\x14FieldConfidenceEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"H\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.idverify.v1.DocumentR\bdocument\"\xbb\x01\n" +
	"\x15VerifyDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12F\n" +
	"\x06fields\x18\x02 \x03(\v2..idverify.v1.VerifyDocumentRequest.FieldsEntryR\x06fields\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xc4\x01\n" +
	"\vFieldReport\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12%\n" +
	"\x0eoriginal_value\x18\x02 \x01(\tR\roriginalValue\x12\x1f\n" +
	"\vfinal_value\x18\x03 \x01(\tR\n" +
	"finalValue\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12)\n" +
	"\x10similarity_score\x18\x05 \x01(\x01R\x0fsimilarityScore\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\"\x87\x01\n" +
	"\x16VerifyDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x122\n" +
	"\areports\x18\x02 \x03(\v2\x18.idverify.v1.FieldReportR\areports\x12\x18\n" +
	"\asummary\x18\x03 \x01(\tR\asummary\"0\n" +
	"\x16ExportDocumentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xfb\x02\n" +
	"\x10DocumentsService\x12\\\n" +
	"\x0fProcessDocument\x12#.idverify.v1.ProcessDocumentRequest\x1a$.idverify.v1.ProcessDocumentResponse\x12P\n" +
	"\vGetDocument\x12\x1f.idverify.v1.GetDocumentRequest\x1a .idverify.v1.GetDocumentResponse\x12Y\n" +
	"\x0eVerifyDocument\x12\".idverify.v1.VerifyDocumentRequest\x1a#.idverify.v1.VerifyDocumentResponse\x12\\\n" +
	"\x0fExportDocuments\x12#.idverify.v1.ExportDocumentsRequest\x1a$.idverify.v1.ExportDocumentsResponseBDZBgithub.com/docstack-labs/idverify/gen/proto/idverify/v1;idverifyv1b\x06proto3"

var (
	file_idverify_v1_idverify_proto_rawDescOnce sync.Once
	file_idverify_v1_idverify_proto_rawDescData []byte
)

func file_idverify_v1_idverify_proto_rawDescGZIP() []byte {
	file_idverify_v1_idverify_proto_rawDescOnce.Do(func() {
		file_idverify_v1_idverify_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_idverify_v1_idverify_proto_rawDesc), len(file_idverify_v1_idverify_proto_rawDesc)))
	})
	return file_idverify_v1_idverify_proto_rawDescData
}

var file_idverify_v1_idverify_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_idverify_v1_idverify_proto_goTypes = []any{
	(*ProcessDocumentRequest)(nil),  // 0: idverify.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil), // 1: idverify.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),      // 2: idverify.v1.GetDocumentRequest
	(*Document)(nil),                // 3: idverify.v1.Document
	(*GetDocumentResponse)(nil),     // 4: idverify.v1.GetDocumentResponse
	(*VerifyDocumentRequest)(nil),   // 5: idverify.v1.VerifyDocumentRequest
	(*FieldReport)(nil),             // 6: idverify.v1.FieldReport
	(*VerifyDocumentResponse)(nil),  // 7: idverify.v1.VerifyDocumentResponse
	(*ExportDocumentsRequest)(nil),  // 8: idverify.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 9: idverify.v1.ExportDocumentsResponse
	nil,                             // 10: idverify.v1.ProcessDocumentResponse.FieldsEntry
	nil,                             // 11: idverify.v1.ProcessDocumentResponse.FieldConfidenceEntry
	nil,                             // 12: idverify.v1.Document.FieldsEntry
	nil,                             // 13: idverify.v1.Document.FieldConfidenceEntry
	nil,                             // 14: idverify.v1.VerifyDocumentRequest.FieldsEntry
}
var file_idverify_v1_idverify_proto_depIdxs = []int32{
	10, // 0: idverify.v1.ProcessDocumentResponse.fields:type_name -> idverify.v1.ProcessDocumentResponse.FieldsEntry
	11, // 1: idverify.v1.ProcessDocumentResponse.field_confidence:type_name -> idverify.v1.ProcessDocumentResponse.FieldConfidenceEntry
	12, // 2: idverify.v1.Document.fields:type_name -> idverify.v1.Document.FieldsEntry
	13, // 3: idverify.v1.Document.field_confidence:type_name -> idverify.v1.Document.FieldConfidenceEntry
	3,  // 4: idverify.v1.GetDocumentResponse.document:type_name -> idverify.v1.Document
	14, // 5: idverify.v1.VerifyDocumentRequest.fields:type_name -> idverify.v1.VerifyDocumentRequest.FieldsEntry
	6,  // 6: idverify.v1.VerifyDocumentResponse.reports:type_name -> idverify.v1.FieldReport
	0,  // 7: idverify.v1.DocumentsService.ProcessDocument:input_type -> idverify.v1.ProcessDocumentRequest
	2,  // 8: idverify.v1.DocumentsService.GetDocument:input_type -> idverify.v1.GetDocumentRequest
	5,  // 9: idverify.v1.DocumentsService.VerifyDocument:input_type -> idverify.v1.VerifyDocumentRequest
	8,  // 10: idverify.v1.DocumentsService.ExportDocuments:input_type -> idverify.v1.ExportDocumentsRequest
	1,  // 11: idverify.v1.DocumentsService.ProcessDocument:output_type -> idverify.v1.ProcessDocumentResponse
	4,  // 12: idverify.v1.DocumentsService.GetDocument:output_type -> idverify.v1.GetDocumentResponse
	7,  // 13: idverify.v1.DocumentsService.VerifyDocument:output_type -> idverify.v1.VerifyDocumentResponse
	9,  // 14: idverify.v1.DocumentsService.ExportDocuments:output_type -> idverify.v1.ExportDocumentsResponse
	11, // [11:15] is the sub-list for method output_type
	7,  // [7:11] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_idverify_v1_idverify_proto_init() }
func file_idverify_v1_idverify_proto_init() {
	if File_idverify_v1_idverify_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_idverify_v1_idverify_proto_rawDesc), len(file_idverify_v1_idverify_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_idverify_v1_idverify_proto_goTypes,
		DependencyIndexes: file_idverify_v1_idverify_proto_depIdxs,
		MessageInfos:      file_idverify_v1_idverify_proto_msgTypes,
	}.Build()
	File_idverify_v1_idverify_proto = out.File
	file_idverify_v1_idverify_proto_goTypes = nil
	file_idverify_v1_idverify_proto_depIdxs = nil
}
