// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docstack-labs/idverify/gen/ent/document"
	"github.com/docstack-labs/idverify/gen/ent/verificationlog"
	"github.com/google/uuid"
)

// VerificationLog is the model entity for the VerificationLog schema.
type VerificationLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// SubmittedData holds the value of the "submitted_data" field.
	SubmittedData json.RawMessage `json:"submitted_data,omitempty"`
	// Report holds the value of the "report" field.
	Report json.RawMessage `json:"report,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationLogQuery when eager-loading is set.
	Edges        VerificationLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationLogEdges holds the relations/edges for other nodes in the graph.
type VerificationLogEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationLogEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationlog.FieldSubmittedData, verificationlog.FieldReport:
			values[i] = new([]byte)
		case verificationlog.FieldSummary:
			values[i] = new(sql.NullString)
		case verificationlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case verificationlog.FieldID, verificationlog.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationLog fields.
func (_m *VerificationLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationlog.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case verificationlog.FieldSubmittedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubmittedData); err != nil {
					return fmt.Errorf("unmarshal field submitted_data: %w", err)
				}
			}
		case verificationlog.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		case verificationlog.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case verificationlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationLog.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the VerificationLog entity.
func (_m *VerificationLog) QueryDocument() *DocumentQuery {
	return NewVerificationLogClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this VerificationLog.
// Note that you need to call VerificationLog.Unwrap() before calling this method if this VerificationLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationLog) Update() *VerificationLogUpdateOne {
	return NewVerificationLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationLog) Unwrap() *VerificationLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationLog) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("submitted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmittedData))
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationLogs is a parsable slice of VerificationLog.
type VerificationLogs []*VerificationLog
