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

// VerificationLogUpdate is the builder for updating VerificationLog entities.
type VerificationLogUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationLogMutation
}

// Where appends a list predicates to the VerificationLogUpdate builder.
func (_u *VerificationLogUpdate) Where(ps ...predicate.VerificationLog) *VerificationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *VerificationLogUpdate) SetDocumentID(v uuid.UUID) *VerificationLogUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerificationLogUpdate) SetNillableDocumentID(v *uuid.UUID) *VerificationLogUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSubmittedData sets the "submitted_data" field.
func (_u *VerificationLogUpdate) SetSubmittedData(v json.RawMessage) *VerificationLogUpdate {
	_u.mutation.SetSubmittedData(v)
	return _u
}

// AppendSubmittedData appends value to the "submitted_data" field.
func (_u *VerificationLogUpdate) AppendSubmittedData(v json.RawMessage) *VerificationLogUpdate {
	_u.mutation.AppendSubmittedData(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *VerificationLogUpdate) SetReport(v json.RawMessage) *VerificationLogUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// AppendReport appends value to the "report" field.
func (_u *VerificationLogUpdate) AppendReport(v json.RawMessage) *VerificationLogUpdate {
	_u.mutation.AppendReport(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *VerificationLogUpdate) SetSummary(v string) *VerificationLogUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *VerificationLogUpdate) SetNillableSummary(v *string) *VerificationLogUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationLogUpdate) SetCreatedAt(v time.Time) *VerificationLogUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationLogUpdate) SetNillableCreatedAt(v *time.Time) *VerificationLogUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerificationLogUpdate) SetDocument(v *Document) *VerificationLogUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerificationLogMutation object of the builder.
func (_u *VerificationLogUpdate) Mutation() *VerificationLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerificationLogUpdate) ClearDocument() *VerificationLogUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationLogUpdate) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := verificationlog.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "VerificationLog.summary": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationLog.document"`)
	}
	return nil
}

func (_u *VerificationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationlog.Table, verificationlog.Columns, sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubmittedData(); ok {
		_spec.SetField(verificationlog.FieldSubmittedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubmittedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationlog.FieldSubmittedData, value)
		})
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(verificationlog.FieldReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReport(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationlog.FieldReport, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(verificationlog.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationlog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationlog.DocumentTable,
			Columns: []string{verificationlog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationlog.DocumentTable,
			Columns: []string{verificationlog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationLogUpdateOne is the builder for updating a single VerificationLog entity.
type VerificationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationLogMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *VerificationLogUpdateOne) SetDocumentID(v uuid.UUID) *VerificationLogUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerificationLogUpdateOne) SetNillableDocumentID(v *uuid.UUID) *VerificationLogUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSubmittedData sets the "submitted_data" field.
func (_u *VerificationLogUpdateOne) SetSubmittedData(v json.RawMessage) *VerificationLogUpdateOne {
	_u.mutation.SetSubmittedData(v)
	return _u
}

// AppendSubmittedData appends value to the "submitted_data" field.
func (_u *VerificationLogUpdateOne) AppendSubmittedData(v json.RawMessage) *VerificationLogUpdateOne {
	_u.mutation.AppendSubmittedData(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *VerificationLogUpdateOne) SetReport(v json.RawMessage) *VerificationLogUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// AppendReport appends value to the "report" field.
func (_u *VerificationLogUpdateOne) AppendReport(v json.RawMessage) *VerificationLogUpdateOne {
	_u.mutation.AppendReport(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *VerificationLogUpdateOne) SetSummary(v string) *VerificationLogUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *VerificationLogUpdateOne) SetNillableSummary(v *string) *VerificationLogUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationLogUpdateOne) SetCreatedAt(v time.Time) *VerificationLogUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationLogUpdateOne) SetNillableCreatedAt(v *time.Time) *VerificationLogUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerificationLogUpdateOne) SetDocument(v *Document) *VerificationLogUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerificationLogMutation object of the builder.
func (_u *VerificationLogUpdateOne) Mutation() *VerificationLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerificationLogUpdateOne) ClearDocument() *VerificationLogUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the VerificationLogUpdate builder.
func (_u *VerificationLogUpdateOne) Where(ps ...predicate.VerificationLog) *VerificationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationLogUpdateOne) Select(field string, fields ...string) *VerificationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationLog entity.
func (_u *VerificationLogUpdateOne) Save(ctx context.Context) (*VerificationLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationLogUpdateOne) SaveX(ctx context.Context) *VerificationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationLogUpdateOne) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := verificationlog.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "VerificationLog.summary": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationLog.document"`)
	}
	return nil
}

func (_u *VerificationLogUpdateOne) sqlSave(ctx context.Context) (_node *VerificationLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationlog.Table, verificationlog.Columns, sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationlog.FieldID)
		for _, f := range fields {
			if !verificationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationlog.FieldID {
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
	if value, ok := _u.mutation.SubmittedData(); ok {
		_spec.SetField(verificationlog.FieldSubmittedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubmittedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationlog.FieldSubmittedData, value)
		})
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(verificationlog.FieldReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReport(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationlog.FieldReport, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(verificationlog.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationlog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationlog.DocumentTable,
			Columns: []string{verificationlog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationlog.DocumentTable,
			Columns: []string{verificationlog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
