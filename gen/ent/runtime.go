// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docstack-labs/idverify/db/ent/schema"
	"github.com/docstack-labs/idverify/gen/ent/document"
	"github.com/docstack-labs/idverify/gen/ent/verificationlog"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[1].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[2].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[3].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = func() func(string) error {
		validators := documentDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescNeedsReview is the schema descriptor for needs_review field.
	documentDescNeedsReview := documentFields[11].Descriptor()
	// document.DefaultNeedsReview holds the default value on creation for the needs_review field.
	document.DefaultNeedsReview = documentDescNeedsReview.Default.(bool)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[13].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[14].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	verificationlogFields := schema.VerificationLog{}.Fields()
	_ = verificationlogFields
	// verificationlogDescSummary is the schema descriptor for summary field.
	verificationlogDescSummary := verificationlogFields[4].Descriptor()
	// verificationlog.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	verificationlog.SummaryValidator = verificationlogDescSummary.Validators[0].(func(string) error)
	// verificationlogDescCreatedAt is the schema descriptor for created_at field.
	verificationlogDescCreatedAt := verificationlogFields[5].Descriptor()
	// verificationlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationlog.DefaultCreatedAt = verificationlogDescCreatedAt.Default.(func() time.Time)
	// verificationlogDescID is the schema descriptor for id field.
	verificationlogDescID := verificationlogFields[0].Descriptor()
	// verificationlog.DefaultID holds the default value on creation for the id field.
	verificationlog.DefaultID = verificationlogDescID.Default.(func() uuid.UUID)
}
