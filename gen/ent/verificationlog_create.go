// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docstack-labs/idverify/gen/ent/document"
	"github.com/docstack-labs/idverify/gen/ent/verificationlog"
	"github.com/google/uuid"
)

// VerificationLogCreate is the builder for creating a VerificationLog entity.
type VerificationLogCreate struct {
	config
	mutation *VerificationLogMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *VerificationLogCreate) SetDocumentID(v uuid.UUID) *VerificationLogCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSubmittedData sets the "submitted_data" field.
func (_c *VerificationLogCreate) SetSubmittedData(v json.RawMessage) *VerificationLogCreate {
	_c.mutation.SetSubmittedData(v)
	return _c
}

// SetReport sets the "report" field.
func (_c *VerificationLogCreate) SetReport(v json.RawMessage) *VerificationLogCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *VerificationLogCreate) SetSummary(v string) *VerificationLogCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationLogCreate) SetCreatedAt(v time.Time) *VerificationLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationLogCreate) SetNillableCreatedAt(v *time.Time) *VerificationLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationLogCreate) SetID(v uuid.UUID) *VerificationLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationLogCreate) SetNillableID(v *uuid.UUID) *VerificationLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *VerificationLogCreate) SetDocument(v *Document) *VerificationLogCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the VerificationLogMutation object of the builder.
func (_c *VerificationLogCreate) Mutation() *VerificationLogMutation {
	return _c.mutation
}

// Save creates the VerificationLog in the database.
func (_c *VerificationLogCreate) Save(ctx context.Context) (*VerificationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationLogCreate) SaveX(ctx context.Context) *VerificationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationLogCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "VerificationLog.document_id"`)}
	}
	if _, ok := _c.mutation.SubmittedData(); !ok {
		return &ValidationError{Name: "submitted_data", err: errors.New(`ent: missing required field "VerificationLog.submitted_data"`)}
	}
	if _, ok := _c.mutation.Report(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required field "VerificationLog.report"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "VerificationLog.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := verificationlog.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "VerificationLog.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationLog.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "VerificationLog.document"`)}
	}
	return nil
}

func (_c *VerificationLogCreate) sqlSave(ctx context.Context) (*VerificationLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationLogCreate) createSpec() (*VerificationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationlog.Table, sqlgraph.NewFieldSpec(verificationlog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SubmittedData(); ok {
		_spec.SetField(verificationlog.FieldSubmittedData, field.TypeJSON, value)
		_node.SubmittedData = value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(verificationlog.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(verificationlog.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationLogCreateBulk is the builder for creating many VerificationLog entities in bulk.
type VerificationLogCreateBulk struct {
	config
	err      error
	builders []*VerificationLogCreate
}

// Save creates the VerificationLog entities in the database.
func (_c *VerificationLogCreateBulk) Save(ctx context.Context) ([]*VerificationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VerificationLogCreateBulk) SaveX(ctx context.Context) []*VerificationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
