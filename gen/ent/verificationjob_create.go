// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/gen/ent/credentialfile"
	"github.com/microcred/credential-vault/gen/ent/profile"
	"github.com/microcred/credential-vault/gen/ent/verificationjob"
)

// VerificationJobCreate is the builder for creating a VerificationJob entity.
type VerificationJobCreate struct {
	config
	mutation *VerificationJobMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *VerificationJobCreate) SetFileID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *VerificationJobCreate) SetProfileID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetCredentialID sets the "credential_id" field.
func (_c *VerificationJobCreate) SetCredentialID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetCredentialID(v)
	return _c
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableCredentialID(v *uuid.UUID) *VerificationJobCreate {
	if v != nil {
		_c.SetCredentialID(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *VerificationJobCreate) SetFormat(v string) *VerificationJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *VerificationJobCreate) SetStartedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStartedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *VerificationJobCreate) SetFinishedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableFinishedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationJobCreate) SetStatus(v string) *VerificationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStatus(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VerificationJobCreate) SetErrorMessage(v string) *VerificationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableErrorMessage(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *VerificationJobCreate) SetExtractedText(v string) *VerificationJobCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableExtractedText(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetExtractMethod sets the "extract_method" field.
func (_c *VerificationJobCreate) SetExtractMethod(v string) *VerificationJobCreate {
	_c.mutation.SetExtractMethod(v)
	return _c
}

// SetNillableExtractMethod sets the "extract_method" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableExtractMethod(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetExtractMethod(*v)
	}
	return _c
}

// SetExtractPages sets the "extract_pages" field.
func (_c *VerificationJobCreate) SetExtractPages(v int) *VerificationJobCreate {
	_c.mutation.SetExtractPages(v)
	return _c
}

// SetNillableExtractPages sets the "extract_pages" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableExtractPages(v *int) *VerificationJobCreate {
	if v != nil {
		_c.SetExtractPages(*v)
	}
	return _c
}

// SetExtractDurationMs sets the "extract_duration_ms" field.
func (_c *VerificationJobCreate) SetExtractDurationMs(v int64) *VerificationJobCreate {
	_c.mutation.SetExtractDurationMs(v)
	return _c
}

// SetNillableExtractDurationMs sets the "extract_duration_ms" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableExtractDurationMs(v *int64) *VerificationJobCreate {
	if v != nil {
		_c.SetExtractDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationJobCreate) SetID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableID(v *uuid.UUID) *VerificationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the CredentialFile entity.
func (_c *VerificationJobCreate) SetFile(v *CredentialFile) *VerificationJobCreate {
	return _c.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *VerificationJobCreate) SetProfile(v *Profile) *VerificationJobCreate {
	return _c.SetProfileID(v.ID)
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_c *VerificationJobCreate) SetCredential(v *Credential) *VerificationJobCreate {
	return _c.SetCredentialID(v.ID)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_c *VerificationJobCreate) Mutation() *VerificationJobMutation {
	return _c.mutation
}

// Save creates the VerificationJob in the database.
func (_c *VerificationJobCreate) Save(ctx context.Context) (*VerificationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationJobCreate) SaveX(ctx context.Context) *VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := verificationjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "VerificationJob.file_id"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "VerificationJob.profile_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "VerificationJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := verificationjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "VerificationJob.started_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "VerificationJob.file"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "VerificationJob.profile"`)}
	}
	return nil
}

func (_c *VerificationJobCreate) sqlSave(ctx context.Context) (*VerificationJob, error) {
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

func (_c *VerificationJobCreate) createSpec() (*VerificationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationjob.Table, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(verificationjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(verificationjob.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.ExtractMethod(); ok {
		_spec.SetField(verificationjob.FieldExtractMethod, field.TypeString, value)
		_node.ExtractMethod = &value
	}
	if value, ok := _c.mutation.ExtractPages(); ok {
		_spec.SetField(verificationjob.FieldExtractPages, field.TypeInt, value)
		_node.ExtractPages = &value
	}
	if value, ok := _c.mutation.ExtractDurationMs(); ok {
		_spec.SetField(verificationjob.FieldExtractDurationMs, field.TypeInt64, value)
		_node.ExtractDurationMs = &value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationjob.FileTable,
			Columns: []string{verificationjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credentialfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationjob.ProfileTable,
			Columns: []string{verificationjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CredentialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationjob.CredentialTable,
			Columns: []string{verificationjob.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CredentialID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationJobCreateBulk is the builder for creating many VerificationJob entities in bulk.
type VerificationJobCreateBulk struct {
	config
	err      error
	builders []*VerificationJobCreate
}

// Save creates the VerificationJob entities in the database.
func (_c *VerificationJobCreateBulk) Save(ctx context.Context) ([]*VerificationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationJobMutation)
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
func (_c *VerificationJobCreateBulk) SaveX(ctx context.Context) []*VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
