// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "field_confidence", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_mean_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "image_width", Type: field.TypeInt, Nullable: true},
		{Name: "image_height", Type: field.TypeInt, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "final_verified_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4], DocumentsColumns[13]},
			},
			{
				Name:    "document_source_path",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
		},
	}
	// VerificationLogsColumns holds the columns for the "verification_logs" table.
	VerificationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "submitted_data", Type: field.TypeJSON},
		{Name: "report", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// VerificationLogsTable holds the schema information for the "verification_logs" table.
	VerificationLogsTable = &schema.Table{
		Name:       "verification_logs",
		Columns:    VerificationLogsColumns,
		PrimaryKey: []*schema.Column{VerificationLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_logs_documents_verifications",
				Columns:    []*schema.Column{VerificationLogsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationlog_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationLogsColumns[5], VerificationLogsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		VerificationLogsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	VerificationLogsTable.ForeignKeys[0].RefTable = DocumentsTable
	VerificationLogsTable.Annotation = &entsql.Annotation{
		Table: "verification_logs",
	}
}
