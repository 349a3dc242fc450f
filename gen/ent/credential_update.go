// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/gen/ent/credentialfile"
	"github.com/microcred/credential-vault/gen/ent/predicate"
	"github.com/microcred/credential-vault/gen/ent/profile"
	"github.com/microcred/credential-vault/gen/ent/verificationjob"
)

// CredentialUpdate is the builder for updating Credential entities.
type CredentialUpdate struct {
	config
	hooks    []Hook
	mutation *CredentialMutation
}

// Where appends a list predicates to the CredentialUpdate builder.
func (_u *CredentialUpdate) Where(ps ...predicate.Credential) *CredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *CredentialUpdate) SetProfileID(v uuid.UUID) *CredentialUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableProfileID(v *uuid.UUID) *CredentialUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *CredentialUpdate) SetFileID(v uuid.UUID) *CredentialUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableFileID(v *uuid.UUID) *CredentialUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetCertificateName sets the "certificate_name" field.
func (_u *CredentialUpdate) SetCertificateName(v string) *CredentialUpdate {
	_u.mutation.SetCertificateName(v)
	return _u
}

// SetNillableCertificateName sets the "certificate_name" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableCertificateName(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetCertificateName(*v)
	}
	return _u
}

// SetIssuer sets the "issuer" field.
func (_u *CredentialUpdate) SetIssuer(v string) *CredentialUpdate {
	_u.mutation.SetIssuer(v)
	return _u
}

// SetNillableIssuer sets the "issuer" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableIssuer(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetIssuer(*v)
	}
	return _u
}

// SetCertificateNumber sets the "certificate_number" field.
func (_u *CredentialUpdate) SetCertificateNumber(v string) *CredentialUpdate {
	_u.mutation.SetCertificateNumber(v)
	return _u
}

// SetNillableCertificateNumber sets the "certificate_number" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableCertificateNumber(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetCertificateNumber(*v)
	}
	return _u
}

// SetCertificateURL sets the "certificate_url" field.
func (_u *CredentialUpdate) SetCertificateURL(v string) *CredentialUpdate {
	_u.mutation.SetCertificateURL(v)
	return _u
}

// SetNillableCertificateURL sets the "certificate_url" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableCertificateURL(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetCertificateURL(*v)
	}
	return _u
}

// ClearCertificateURL clears the value of the "certificate_url" field.
func (_u *CredentialUpdate) ClearCertificateURL() *CredentialUpdate {
	_u.mutation.ClearCertificateURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CredentialUpdate) SetStatus(v string) *CredentialUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableStatus(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerificationNote sets the "verification_note" field.
func (_u *CredentialUpdate) SetVerificationNote(v string) *CredentialUpdate {
	_u.mutation.SetVerificationNote(v)
	return _u
}

// SetNillableVerificationNote sets the "verification_note" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableVerificationNote(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetVerificationNote(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *CredentialUpdate) SetExtractedText(v string) *CredentialUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableExtractedText(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetMatched sets the "matched" field.
func (_u *CredentialUpdate) SetMatched(v bool) *CredentialUpdate {
	_u.mutation.SetMatched(v)
	return _u
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableMatched(v *bool) *CredentialUpdate {
	if v != nil {
		_u.SetMatched(*v)
	}
	return _u
}

// SetMatchReason sets the "match_reason" field.
func (_u *CredentialUpdate) SetMatchReason(v string) *CredentialUpdate {
	_u.mutation.SetMatchReason(v)
	return _u
}

// SetNillableMatchReason sets the "match_reason" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableMatchReason(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetMatchReason(*v)
	}
	return _u
}

// SetCorroborationOutcome sets the "corroboration_outcome" field.
func (_u *CredentialUpdate) SetCorroborationOutcome(v string) *CredentialUpdate {
	_u.mutation.SetCorroborationOutcome(v)
	return _u
}

// SetNillableCorroborationOutcome sets the "corroboration_outcome" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableCorroborationOutcome(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetCorroborationOutcome(*v)
	}
	return _u
}

// ClearCorroborationOutcome clears the value of the "corroboration_outcome" field.
func (_u *CredentialUpdate) ClearCorroborationOutcome() *CredentialUpdate {
	_u.mutation.ClearCorroborationOutcome()
	return _u
}

// SetCorroborationNote sets the "corroboration_note" field.
func (_u *CredentialUpdate) SetCorroborationNote(v string) *CredentialUpdate {
	_u.mutation.SetCorroborationNote(v)
	return _u
}

// SetNillableCorroborationNote sets the "corroboration_note" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableCorroborationNote(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetCorroborationNote(*v)
	}
	return _u
}

// ClearCorroborationNote clears the value of the "corroboration_note" field.
func (_u *CredentialUpdate) ClearCorroborationNote() *CredentialUpdate {
	_u.mutation.ClearCorroborationNote()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CredentialUpdate) SetSkills(v []string) *CredentialUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CredentialUpdate) AppendSkills(v []string) *CredentialUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CredentialUpdate) ClearSkills() *CredentialUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetLevel sets the "level" field.
func (_u *CredentialUpdate) SetLevel(v int) *CredentialUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableLevel(v *int) *CredentialUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CredentialUpdate) AddLevel(v int) *CredentialUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *CredentialUpdate) SetFingerprint(v string) *CredentialUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableFingerprint(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *CredentialUpdate) ClearFingerprint() *CredentialUpdate {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetAnchorState sets the "anchor_state" field.
func (_u *CredentialUpdate) SetAnchorState(v string) *CredentialUpdate {
	_u.mutation.SetAnchorState(v)
	return _u
}

// SetNillableAnchorState sets the "anchor_state" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableAnchorState(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetAnchorState(*v)
	}
	return _u
}

// SetAnchorTxRef sets the "anchor_tx_ref" field.
func (_u *CredentialUpdate) SetAnchorTxRef(v string) *CredentialUpdate {
	_u.mutation.SetAnchorTxRef(v)
	return _u
}

// SetNillableAnchorTxRef sets the "anchor_tx_ref" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableAnchorTxRef(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetAnchorTxRef(*v)
	}
	return _u
}

// ClearAnchorTxRef clears the value of the "anchor_tx_ref" field.
func (_u *CredentialUpdate) ClearAnchorTxRef() *CredentialUpdate {
	_u.mutation.ClearAnchorTxRef()
	return _u
}

// SetAnchorError sets the "anchor_error" field.
func (_u *CredentialUpdate) SetAnchorError(v string) *CredentialUpdate {
	_u.mutation.SetAnchorError(v)
	return _u
}

// SetNillableAnchorError sets the "anchor_error" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableAnchorError(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetAnchorError(*v)
	}
	return _u
}

// ClearAnchorError clears the value of the "anchor_error" field.
func (_u *CredentialUpdate) ClearAnchorError() *CredentialUpdate {
	_u.mutation.ClearAnchorError()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CredentialUpdate) SetProfile(v *Profile) *CredentialUpdate {
	return _u.SetProfileID(v.ID)
}

// SetFile sets the "file" edge to the CredentialFile entity.
func (_u *CredentialUpdate) SetFile(v *CredentialFile) *CredentialUpdate {
	return _u.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_u *CredentialUpdate) AddJobIDs(ids ...uuid.UUID) *CredentialUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_u *CredentialUpdate) AddJobs(v ...*VerificationJob) *CredentialUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CredentialMutation object of the builder.
func (_u *CredentialUpdate) Mutation() *CredentialMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CredentialUpdate) ClearProfile() *CredentialUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearFile clears the "file" edge to the CredentialFile entity.
func (_u *CredentialUpdate) ClearFile() *CredentialUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearJobs clears all "jobs" edges to the VerificationJob entity.
func (_u *CredentialUpdate) ClearJobs() *CredentialUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerificationJob entities by IDs.
func (_u *CredentialUpdate) RemoveJobIDs(ids ...uuid.UUID) *CredentialUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerificationJob entities.
func (_u *CredentialUpdate) RemoveJobs(v ...*VerificationJob) *CredentialUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CredentialUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CredentialUpdate) check() error {
	if v, ok := _u.mutation.CertificateName(); ok {
		if err := credential.CertificateNameValidator(v); err != nil {
			return &ValidationError{Name: "certificate_name", err: fmt.Errorf(`ent: validator failed for field "Credential.certificate_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Issuer(); ok {
		if err := credential.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "Credential.issuer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CertificateNumber(); ok {
		if err := credential.CertificateNumberValidator(v); err != nil {
			return &ValidationError{Name: "certificate_number", err: fmt.Errorf(`ent: validator failed for field "Credential.certificate_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := credential.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Credential.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := credential.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Credential.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnchorState(); ok {
		if err := credential.AnchorStateValidator(v); err != nil {
			return &ValidationError{Name: "anchor_state", err: fmt.Errorf(`ent: validator failed for field "Credential.anchor_state": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Credential.profile"`)
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Credential.file"`)
	}
	return nil
}

func (_u *CredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credential.Table, credential.Columns, sqlgraph.NewFieldSpec(credential.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CertificateName(); ok {
		_spec.SetField(credential.FieldCertificateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issuer(); ok {
		_spec.SetField(credential.FieldIssuer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CertificateNumber(); ok {
		_spec.SetField(credential.FieldCertificateNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CertificateURL(); ok {
		_spec.SetField(credential.FieldCertificateURL, field.TypeString, value)
	}
	if _u.mutation.CertificateURLCleared() {
		_spec.ClearField(credential.FieldCertificateURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(credential.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerificationNote(); ok {
		_spec.SetField(credential.FieldVerificationNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(credential.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Matched(); ok {
		_spec.SetField(credential.FieldMatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchReason(); ok {
		_spec.SetField(credential.FieldMatchReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorroborationOutcome(); ok {
		_spec.SetField(credential.FieldCorroborationOutcome, field.TypeString, value)
	}
	if _u.mutation.CorroborationOutcomeCleared() {
		_spec.ClearField(credential.FieldCorroborationOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.CorroborationNote(); ok {
		_spec.SetField(credential.FieldCorroborationNote, field.TypeString, value)
	}
	if _u.mutation.CorroborationNoteCleared() {
		_spec.ClearField(credential.FieldCorroborationNote, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(credential.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, credential.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(credential.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(credential.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(credential.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(credential.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(credential.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.AnchorState(); ok {
		_spec.SetField(credential.FieldAnchorState, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnchorTxRef(); ok {
		_spec.SetField(credential.FieldAnchorTxRef, field.TypeString, value)
	}
	if _u.mutation.AnchorTxRefCleared() {
		_spec.ClearField(credential.FieldAnchorTxRef, field.TypeString)
	}
	if value, ok := _u.mutation.AnchorError(); ok {
		_spec.SetField(credential.FieldAnchorError, field.TypeString, value)
	}
	if _u.mutation.AnchorErrorCleared() {
		_spec.ClearField(credential.FieldAnchorError, field.TypeString)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CredentialUpdateOne is the builder for updating a single Credential entity.
type CredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CredentialMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *CredentialUpdateOne) SetProfileID(v uuid.UUID) *CredentialUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableProfileID(v *uuid.UUID) *CredentialUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *CredentialUpdateOne) SetFileID(v uuid.UUID) *CredentialUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableFileID(v *uuid.UUID) *CredentialUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetCertificateName sets the "certificate_name" field.
func (_u *CredentialUpdateOne) SetCertificateName(v string) *CredentialUpdateOne {
	_u.mutation.SetCertificateName(v)
	return _u
}

// SetNillableCertificateName sets the "certificate_name" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableCertificateName(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetCertificateName(*v)
	}
	return _u
}

// SetIssuer sets the "issuer" field.
func (_u *CredentialUpdateOne) SetIssuer(v string) *CredentialUpdateOne {
	_u.mutation.SetIssuer(v)
	return _u
}

// SetNillableIssuer sets the "issuer" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableIssuer(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetIssuer(*v)
	}
	return _u
}

// SetCertificateNumber sets the "certificate_number" field.
func (_u *CredentialUpdateOne) SetCertificateNumber(v string) *CredentialUpdateOne {
	_u.mutation.SetCertificateNumber(v)
	return _u
}

// SetNillableCertificateNumber sets the "certificate_number" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableCertificateNumber(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetCertificateNumber(*v)
	}
	return _u
}

// SetCertificateURL sets the "certificate_url" field.
func (_u *CredentialUpdateOne) SetCertificateURL(v string) *CredentialUpdateOne {
	_u.mutation.SetCertificateURL(v)
	return _u
}

// SetNillableCertificateURL sets the "certificate_url" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableCertificateURL(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetCertificateURL(*v)
	}
	return _u
}

// ClearCertificateURL clears the value of the "certificate_url" field.
func (_u *CredentialUpdateOne) ClearCertificateURL() *CredentialUpdateOne {
	_u.mutation.ClearCertificateURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CredentialUpdateOne) SetStatus(v string) *CredentialUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableStatus(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerificationNote sets the "verification_note" field.
func (_u *CredentialUpdateOne) SetVerificationNote(v string) *CredentialUpdateOne {
	_u.mutation.SetVerificationNote(v)
	return _u
}

// SetNillableVerificationNote sets the "verification_note" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableVerificationNote(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetVerificationNote(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *CredentialUpdateOne) SetExtractedText(v string) *CredentialUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableExtractedText(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetMatched sets the "matched" field.
func (_u *CredentialUpdateOne) SetMatched(v bool) *CredentialUpdateOne {
	_u.mutation.SetMatched(v)
	return _u
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableMatched(v *bool) *CredentialUpdateOne {
	if v != nil {
		_u.SetMatched(*v)
	}
	return _u
}

// SetMatchReason sets the "match_reason" field.
func (_u *CredentialUpdateOne) SetMatchReason(v string) *CredentialUpdateOne {
	_u.mutation.SetMatchReason(v)
	return _u
}

// SetNillableMatchReason sets the "match_reason" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableMatchReason(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetMatchReason(*v)
	}
	return _u
}

// SetCorroborationOutcome sets the "corroboration_outcome" field.
func (_u *CredentialUpdateOne) SetCorroborationOutcome(v string) *CredentialUpdateOne {
	_u.mutation.SetCorroborationOutcome(v)
	return _u
}

// SetNillableCorroborationOutcome sets the "corroboration_outcome" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableCorroborationOutcome(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetCorroborationOutcome(*v)
	}
	return _u
}

// ClearCorroborationOutcome clears the value of the "corroboration_outcome" field.
func (_u *CredentialUpdateOne) ClearCorroborationOutcome() *CredentialUpdateOne {
	_u.mutation.ClearCorroborationOutcome()
	return _u
}

// SetCorroborationNote sets the "corroboration_note" field.
func (_u *CredentialUpdateOne) SetCorroborationNote(v string) *CredentialUpdateOne {
	_u.mutation.SetCorroborationNote(v)
	return _u
}

// SetNillableCorroborationNote sets the "corroboration_note" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableCorroborationNote(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetCorroborationNote(*v)
	}
	return _u
}

// ClearCorroborationNote clears the value of the "corroboration_note" field.
func (_u *CredentialUpdateOne) ClearCorroborationNote() *CredentialUpdateOne {
	_u.mutation.ClearCorroborationNote()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CredentialUpdateOne) SetSkills(v []string) *CredentialUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CredentialUpdateOne) AppendSkills(v []string) *CredentialUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CredentialUpdateOne) ClearSkills() *CredentialUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetLevel sets the "level" field.
func (_u *CredentialUpdateOne) SetLevel(v int) *CredentialUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableLevel(v *int) *CredentialUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CredentialUpdateOne) AddLevel(v int) *CredentialUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *CredentialUpdateOne) SetFingerprint(v string) *CredentialUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableFingerprint(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *CredentialUpdateOne) ClearFingerprint() *CredentialUpdateOne {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetAnchorState sets the "anchor_state" field.
func (_u *CredentialUpdateOne) SetAnchorState(v string) *CredentialUpdateOne {
	_u.mutation.SetAnchorState(v)
	return _u
}

// SetNillableAnchorState sets the "anchor_state" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableAnchorState(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetAnchorState(*v)
	}
	return _u
}

// SetAnchorTxRef sets the "anchor_tx_ref" field.
func (_u *CredentialUpdateOne) SetAnchorTxRef(v string) *CredentialUpdateOne {
	_u.mutation.SetAnchorTxRef(v)
	return _u
}

// SetNillableAnchorTxRef sets the "anchor_tx_ref" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableAnchorTxRef(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetAnchorTxRef(*v)
	}
	return _u
}

// ClearAnchorTxRef clears the value of the "anchor_tx_ref" field.
func (_u *CredentialUpdateOne) ClearAnchorTxRef() *CredentialUpdateOne {
	_u.mutation.ClearAnchorTxRef()
	return _u
}

// SetAnchorError sets the "anchor_error" field.
func (_u *CredentialUpdateOne) SetAnchorError(v string) *CredentialUpdateOne {
	_u.mutation.SetAnchorError(v)
	return _u
}

// SetNillableAnchorError sets the "anchor_error" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableAnchorError(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetAnchorError(*v)
	}
	return _u
}

// ClearAnchorError clears the value of the "anchor_error" field.
func (_u *CredentialUpdateOne) ClearAnchorError() *CredentialUpdateOne {
	_u.mutation.ClearAnchorError()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CredentialUpdateOne) SetProfile(v *Profile) *CredentialUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetFile sets the "file" edge to the CredentialFile entity.
func (_u *CredentialUpdateOne) SetFile(v *CredentialFile) *CredentialUpdateOne {
	return _u.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_u *CredentialUpdateOne) AddJobIDs(ids ...uuid.UUID) *CredentialUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_u *CredentialUpdateOne) AddJobs(v ...*VerificationJob) *CredentialUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CredentialMutation object of the builder.
func (_u *CredentialUpdateOne) Mutation() *CredentialMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CredentialUpdateOne) ClearProfile() *CredentialUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearFile clears the "file" edge to the CredentialFile entity.
func (_u *CredentialUpdateOne) ClearFile() *CredentialUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearJobs clears all "jobs" edges to the VerificationJob entity.
func (_u *CredentialUpdateOne) ClearJobs() *CredentialUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerificationJob entities by IDs.
func (_u *CredentialUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *CredentialUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerificationJob entities.
func (_u *CredentialUpdateOne) RemoveJobs(v ...*VerificationJob) *CredentialUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the CredentialUpdate builder.
func (_u *CredentialUpdateOne) Where(ps ...predicate.Credential) *CredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CredentialUpdateOne) Select(field string, fields ...string) *CredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Credential entity.
func (_u *CredentialUpdateOne) Save(ctx context.Context) (*Credential, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialUpdateOne) SaveX(ctx context.Context) *Credential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CredentialUpdateOne) check() error {
	if v, ok := _u.mutation.CertificateName(); ok {
		if err := credential.CertificateNameValidator(v); err != nil {
			return &ValidationError{Name: "certificate_name", err: fmt.Errorf(`ent: validator failed for field "Credential.certificate_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Issuer(); ok {
		if err := credential.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "Credential.issuer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CertificateNumber(); ok {
		if err := credential.CertificateNumberValidator(v); err != nil {
			return &ValidationError{Name: "certificate_number", err: fmt.Errorf(`ent: validator failed for field "Credential.certificate_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := credential.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Credential.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := credential.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Credential.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnchorState(); ok {
		if err := credential.AnchorStateValidator(v); err != nil {
			return &ValidationError{Name: "anchor_state", err: fmt.Errorf(`ent: validator failed for field "Credential.anchor_state": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Credential.profile"`)
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Credential.file"`)
	}
	return nil
}

func (_u *CredentialUpdateOne) sqlSave(ctx context.Context) (_node *Credential, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credential.Table, credential.Columns, sqlgraph.NewFieldSpec(credential.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Credential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, credential.FieldID)
		for _, f := range fields {
			if !credential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != credential.FieldID {
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
	if value, ok := _u.mutation.CertificateName(); ok {
		_spec.SetField(credential.FieldCertificateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issuer(); ok {
		_spec.SetField(credential.FieldIssuer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CertificateNumber(); ok {
		_spec.SetField(credential.FieldCertificateNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CertificateURL(); ok {
		_spec.SetField(credential.FieldCertificateURL, field.TypeString, value)
	}
	if _u.mutation.CertificateURLCleared() {
		_spec.ClearField(credential.FieldCertificateURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(credential.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerificationNote(); ok {
		_spec.SetField(credential.FieldVerificationNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(credential.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Matched(); ok {
		_spec.SetField(credential.FieldMatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchReason(); ok {
		_spec.SetField(credential.FieldMatchReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorroborationOutcome(); ok {
		_spec.SetField(credential.FieldCorroborationOutcome, field.TypeString, value)
	}
	if _u.mutation.CorroborationOutcomeCleared() {
		_spec.ClearField(credential.FieldCorroborationOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.CorroborationNote(); ok {
		_spec.SetField(credential.FieldCorroborationNote, field.TypeString, value)
	}
	if _u.mutation.CorroborationNoteCleared() {
		_spec.ClearField(credential.FieldCorroborationNote, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(credential.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, credential.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(credential.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(credential.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(credential.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(credential.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(credential.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.AnchorState(); ok {
		_spec.SetField(credential.FieldAnchorState, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnchorTxRef(); ok {
		_spec.SetField(credential.FieldAnchorTxRef, field.TypeString, value)
	}
	if _u.mutation.AnchorTxRefCleared() {
		_spec.ClearField(credential.FieldAnchorTxRef, field.TypeString)
	}
	if value, ok := _u.mutation.AnchorError(); ok {
		_spec.SetField(credential.FieldAnchorError, field.TypeString, value)
	}
	if _u.mutation.AnchorErrorCleared() {
		_spec.ClearField(credential.FieldAnchorError, field.TypeString)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Credential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
