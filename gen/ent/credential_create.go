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

// CredentialCreate is the builder for creating a Credential entity.
type CredentialCreate struct {
	config
	mutation *CredentialMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *CredentialCreate) SetProfileID(v uuid.UUID) *CredentialCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetFileID sets the "file_id" field.
func (_c *CredentialCreate) SetFileID(v uuid.UUID) *CredentialCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetCertificateName sets the "certificate_name" field.
func (_c *CredentialCreate) SetCertificateName(v string) *CredentialCreate {
	_c.mutation.SetCertificateName(v)
	return _c
}

// SetIssuer sets the "issuer" field.
func (_c *CredentialCreate) SetIssuer(v string) *CredentialCreate {
	_c.mutation.SetIssuer(v)
	return _c
}

// SetCertificateNumber sets the "certificate_number" field.
func (_c *CredentialCreate) SetCertificateNumber(v string) *CredentialCreate {
	_c.mutation.SetCertificateNumber(v)
	return _c
}

// SetCertificateURL sets the "certificate_url" field.
func (_c *CredentialCreate) SetCertificateURL(v string) *CredentialCreate {
	_c.mutation.SetCertificateURL(v)
	return _c
}

// SetNillableCertificateURL sets the "certificate_url" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableCertificateURL(v *string) *CredentialCreate {
	if v != nil {
		_c.SetCertificateURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CredentialCreate) SetStatus(v string) *CredentialCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetVerificationNote sets the "verification_note" field.
func (_c *CredentialCreate) SetVerificationNote(v string) *CredentialCreate {
	_c.mutation.SetVerificationNote(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *CredentialCreate) SetExtractedText(v string) *CredentialCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetMatched sets the "matched" field.
func (_c *CredentialCreate) SetMatched(v bool) *CredentialCreate {
	_c.mutation.SetMatched(v)
	return _c
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableMatched(v *bool) *CredentialCreate {
	if v != nil {
		_c.SetMatched(*v)
	}
	return _c
}

// SetMatchReason sets the "match_reason" field.
func (_c *CredentialCreate) SetMatchReason(v string) *CredentialCreate {
	_c.mutation.SetMatchReason(v)
	return _c
}

// SetCorroborationOutcome sets the "corroboration_outcome" field.
func (_c *CredentialCreate) SetCorroborationOutcome(v string) *CredentialCreate {
	_c.mutation.SetCorroborationOutcome(v)
	return _c
}

// SetNillableCorroborationOutcome sets the "corroboration_outcome" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableCorroborationOutcome(v *string) *CredentialCreate {
	if v != nil {
		_c.SetCorroborationOutcome(*v)
	}
	return _c
}

// SetCorroborationNote sets the "corroboration_note" field.
func (_c *CredentialCreate) SetCorroborationNote(v string) *CredentialCreate {
	_c.mutation.SetCorroborationNote(v)
	return _c
}

// SetNillableCorroborationNote sets the "corroboration_note" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableCorroborationNote(v *string) *CredentialCreate {
	if v != nil {
		_c.SetCorroborationNote(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *CredentialCreate) SetSkills(v []string) *CredentialCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *CredentialCreate) SetLevel(v int) *CredentialCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableLevel(v *int) *CredentialCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *CredentialCreate) SetFingerprint(v string) *CredentialCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableFingerprint(v *string) *CredentialCreate {
	if v != nil {
		_c.SetFingerprint(*v)
	}
	return _c
}

// SetAnchorState sets the "anchor_state" field.
func (_c *CredentialCreate) SetAnchorState(v string) *CredentialCreate {
	_c.mutation.SetAnchorState(v)
	return _c
}

// SetNillableAnchorState sets the "anchor_state" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableAnchorState(v *string) *CredentialCreate {
	if v != nil {
		_c.SetAnchorState(*v)
	}
	return _c
}

// SetAnchorTxRef sets the "anchor_tx_ref" field.
func (_c *CredentialCreate) SetAnchorTxRef(v string) *CredentialCreate {
	_c.mutation.SetAnchorTxRef(v)
	return _c
}

// SetNillableAnchorTxRef sets the "anchor_tx_ref" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableAnchorTxRef(v *string) *CredentialCreate {
	if v != nil {
		_c.SetAnchorTxRef(*v)
	}
	return _c
}

// SetAnchorError sets the "anchor_error" field.
func (_c *CredentialCreate) SetAnchorError(v string) *CredentialCreate {
	_c.mutation.SetAnchorError(v)
	return _c
}

// SetNillableAnchorError sets the "anchor_error" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableAnchorError(v *string) *CredentialCreate {
	if v != nil {
		_c.SetAnchorError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CredentialCreate) SetCreatedAt(v time.Time) *CredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableCreatedAt(v *time.Time) *CredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CredentialCreate) SetID(v uuid.UUID) *CredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CredentialCreate) SetNillableID(v *uuid.UUID) *CredentialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *CredentialCreate) SetProfile(v *Profile) *CredentialCreate {
	return _c.SetProfileID(v.ID)
}

// SetFile sets the "file" edge to the CredentialFile entity.
func (_c *CredentialCreate) SetFile(v *CredentialFile) *CredentialCreate {
	return _c.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_c *CredentialCreate) AddJobIDs(ids ...uuid.UUID) *CredentialCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_c *CredentialCreate) AddJobs(v ...*VerificationJob) *CredentialCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the CredentialMutation object of the builder.
func (_c *CredentialCreate) Mutation() *CredentialMutation {
	return _c.mutation
}

// Save creates the Credential in the database.
func (_c *CredentialCreate) Save(ctx context.Context) (*Credential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CredentialCreate) SaveX(ctx context.Context) *Credential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CredentialCreate) defaults() {
	if _, ok := _c.mutation.Matched(); !ok {
		v := credential.DefaultMatched
		_c.mutation.SetMatched(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := credential.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.AnchorState(); !ok {
		v := credential.DefaultAnchorState
		_c.mutation.SetAnchorState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := credential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := credential.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CredentialCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Credential.profile_id"`)}
	}
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "Credential.file_id"`)}
	}
	if _, ok := _c.mutation.CertificateName(); !ok {
		return &ValidationError{Name: "certificate_name", err: errors.New(`ent: missing required field "Credential.certificate_name"`)}
	}
	if v, ok := _c.mutation.CertificateName(); ok {
		if err := credential.CertificateNameValidator(v); err != nil {
			return &ValidationError{Name: "certificate_name", err: fmt.Errorf(`ent: validator failed for field "Credential.certificate_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Issuer(); !ok {
		return &ValidationError{Name: "issuer", err: errors.New(`ent: missing required field "Credential.issuer"`)}
	}
	if v, ok := _c.mutation.Issuer(); ok {
		if err := credential.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "Credential.issuer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CertificateNumber(); !ok {
		return &ValidationError{Name: "certificate_number", err: errors.New(`ent: missing required field "Credential.certificate_number"`)}
	}
	if v, ok := _c.mutation.CertificateNumber(); ok {
		if err := credential.CertificateNumberValidator(v); err != nil {
			return &ValidationError{Name: "certificate_number", err: fmt.Errorf(`ent: validator failed for field "Credential.certificate_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Credential.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := credential.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Credential.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VerificationNote(); !ok {
		return &ValidationError{Name: "verification_note", err: errors.New(`ent: missing required field "Credential.verification_note"`)}
	}
	if _, ok := _c.mutation.ExtractedText(); !ok {
		return &ValidationError{Name: "extracted_text", err: errors.New(`ent: missing required field "Credential.extracted_text"`)}
	}
	if _, ok := _c.mutation.Matched(); !ok {
		return &ValidationError{Name: "matched", err: errors.New(`ent: missing required field "Credential.matched"`)}
	}
	if _, ok := _c.mutation.MatchReason(); !ok {
		return &ValidationError{Name: "match_reason", err: errors.New(`ent: missing required field "Credential.match_reason"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Credential.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := credential.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Credential.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnchorState(); !ok {
		return &ValidationError{Name: "anchor_state", err: errors.New(`ent: missing required field "Credential.anchor_state"`)}
	}
	if v, ok := _c.mutation.AnchorState(); ok {
		if err := credential.AnchorStateValidator(v); err != nil {
			return &ValidationError{Name: "anchor_state", err: fmt.Errorf(`ent: validator failed for field "Credential.anchor_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Credential.created_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Credential.profile"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "Credential.file"`)}
	}
	return nil
}

func (_c *CredentialCreate) sqlSave(ctx context.Context) (*Credential, error) {
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

func (_c *CredentialCreate) createSpec() (*Credential, *sqlgraph.CreateSpec) {
	var (
		_node = &Credential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(credential.Table, sqlgraph.NewFieldSpec(credential.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CertificateName(); ok {
		_spec.SetField(credential.FieldCertificateName, field.TypeString, value)
		_node.CertificateName = value
	}
	if value, ok := _c.mutation.Issuer(); ok {
		_spec.SetField(credential.FieldIssuer, field.TypeString, value)
		_node.Issuer = value
	}
	if value, ok := _c.mutation.CertificateNumber(); ok {
		_spec.SetField(credential.FieldCertificateNumber, field.TypeString, value)
		_node.CertificateNumber = value
	}
	if value, ok := _c.mutation.CertificateURL(); ok {
		_spec.SetField(credential.FieldCertificateURL, field.TypeString, value)
		_node.CertificateURL = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(credential.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.VerificationNote(); ok {
		_spec.SetField(credential.FieldVerificationNote, field.TypeString, value)
		_node.VerificationNote = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(credential.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = value
	}
	if value, ok := _c.mutation.Matched(); ok {
		_spec.SetField(credential.FieldMatched, field.TypeBool, value)
		_node.Matched = value
	}
	if value, ok := _c.mutation.MatchReason(); ok {
		_spec.SetField(credential.FieldMatchReason, field.TypeString, value)
		_node.MatchReason = value
	}
	if value, ok := _c.mutation.CorroborationOutcome(); ok {
		_spec.SetField(credential.FieldCorroborationOutcome, field.TypeString, value)
		_node.CorroborationOutcome = &value
	}
	if value, ok := _c.mutation.CorroborationNote(); ok {
		_spec.SetField(credential.FieldCorroborationNote, field.TypeString, value)
		_node.CorroborationNote = &value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(credential.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(credential.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(credential.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = &value
	}
	if value, ok := _c.mutation.AnchorState(); ok {
		_spec.SetField(credential.FieldAnchorState, field.TypeString, value)
		_node.AnchorState = value
	}
	if value, ok := _c.mutation.AnchorTxRef(); ok {
		_spec.SetField(credential.FieldAnchorTxRef, field.TypeString, value)
		_node.AnchorTxRef = &value
	}
	if value, ok := _c.mutation.AnchorError(); ok {
		_spec.SetField(credential.FieldAnchorError, field.TypeString, value)
		_node.AnchorError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(credential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credential.ProfileTable,
			Columns: []string{credential.ProfileColumn},
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
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credential.FileTable,
			Columns: []string{credential.FileColumn},
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
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   credential.JobsTable,
			Columns: []string{credential.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CredentialCreateBulk is the builder for creating many Credential entities in bulk.
type CredentialCreateBulk struct {
	config
	err      error
	builders []*CredentialCreate
}

// Save creates the Credential entities in the database.
func (_c *CredentialCreateBulk) Save(ctx context.Context) ([]*Credential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Credential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CredentialMutation)
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
func (_c *CredentialCreateBulk) SaveX(ctx context.Context) []*Credential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
