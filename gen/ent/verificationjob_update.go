// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/gen/ent/credentialfile"
	"github.com/microcred/credential-vault/gen/ent/predicate"
	"github.com/microcred/credential-vault/gen/ent/profile"
	"github.com/microcred/credential-vault/gen/ent/verificationjob"
)

// VerificationJobUpdate is the builder for updating VerificationJob entities.
type VerificationJobUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationJobMutation
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdate) Where(ps ...predicate.VerificationJob) *VerificationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *VerificationJobUpdate) SetFileID(v uuid.UUID) *VerificationJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableFileID(v *uuid.UUID) *VerificationJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *VerificationJobUpdate) SetProfileID(v uuid.UUID) *VerificationJobUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableProfileID(v *uuid.UUID) *VerificationJobUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *VerificationJobUpdate) SetCredentialID(v uuid.UUID) *VerificationJobUpdate {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableCredentialID(v *uuid.UUID) *VerificationJobUpdate {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *VerificationJobUpdate) ClearCredentialID() *VerificationJobUpdate {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *VerificationJobUpdate) SetFormat(v string) *VerificationJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableFormat(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdate) SetStartedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStartedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdate) SetFinishedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdate) ClearFinishedAt() *VerificationJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdate) SetStatus(v string) *VerificationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStatus(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *VerificationJobUpdate) ClearStatus() *VerificationJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdate) SetErrorMessage(v string) *VerificationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableErrorMessage(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdate) ClearErrorMessage() *VerificationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *VerificationJobUpdate) SetExtractedText(v string) *VerificationJobUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableExtractedText(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *VerificationJobUpdate) ClearExtractedText() *VerificationJobUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetExtractMethod sets the "extract_method" field.
func (_u *VerificationJobUpdate) SetExtractMethod(v string) *VerificationJobUpdate {
	_u.mutation.SetExtractMethod(v)
	return _u
}

// SetNillableExtractMethod sets the "extract_method" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableExtractMethod(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetExtractMethod(*v)
	}
	return _u
}

// ClearExtractMethod clears the value of the "extract_method" field.
func (_u *VerificationJobUpdate) ClearExtractMethod() *VerificationJobUpdate {
	_u.mutation.ClearExtractMethod()
	return _u
}

// SetExtractPages sets the "extract_pages" field.
func (_u *VerificationJobUpdate) SetExtractPages(v int) *VerificationJobUpdate {
	_u.mutation.ResetExtractPages()
	_u.mutation.SetExtractPages(v)
	return _u
}

// SetNillableExtractPages sets the "extract_pages" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableExtractPages(v *int) *VerificationJobUpdate {
	if v != nil {
		_u.SetExtractPages(*v)
	}
	return _u
}

// AddExtractPages adds value to the "extract_pages" field.
func (_u *VerificationJobUpdate) AddExtractPages(v int) *VerificationJobUpdate {
	_u.mutation.AddExtractPages(v)
	return _u
}

// ClearExtractPages clears the value of the "extract_pages" field.
func (_u *VerificationJobUpdate) ClearExtractPages() *VerificationJobUpdate {
	_u.mutation.ClearExtractPages()
	return _u
}

// SetExtractDurationMs sets the "extract_duration_ms" field.
func (_u *VerificationJobUpdate) SetExtractDurationMs(v int64) *VerificationJobUpdate {
	_u.mutation.ResetExtractDurationMs()
	_u.mutation.SetExtractDurationMs(v)
	return _u
}

// SetNillableExtractDurationMs sets the "extract_duration_ms" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableExtractDurationMs(v *int64) *VerificationJobUpdate {
	if v != nil {
		_u.SetExtractDurationMs(*v)
	}
	return _u
}

// AddExtractDurationMs adds value to the "extract_duration_ms" field.
func (_u *VerificationJobUpdate) AddExtractDurationMs(v int64) *VerificationJobUpdate {
	_u.mutation.AddExtractDurationMs(v)
	return _u
}

// ClearExtractDurationMs clears the value of the "extract_duration_ms" field.
func (_u *VerificationJobUpdate) ClearExtractDurationMs() *VerificationJobUpdate {
	_u.mutation.ClearExtractDurationMs()
	return _u
}

// SetFile sets the "file" edge to the CredentialFile entity.
func (_u *VerificationJobUpdate) SetFile(v *CredentialFile) *VerificationJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *VerificationJobUpdate) SetProfile(v *Profile) *VerificationJobUpdate {
	return _u.SetProfileID(v.ID)
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *VerificationJobUpdate) SetCredential(v *Credential) *VerificationJobUpdate {
	return _u.SetCredentialID(v.ID)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdate) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the CredentialFile entity.
func (_u *VerificationJobUpdate) ClearFile() *VerificationJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *VerificationJobUpdate) ClearProfile() *VerificationJobUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *VerificationJobUpdate) ClearCredential() *VerificationJobUpdate {
	_u.mutation.ClearCredential()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := verificationjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.file"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.profile"`)
	}
	return nil
}

func (_u *VerificationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(verificationjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(verificationjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(verificationjob.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(verificationjob.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractMethod(); ok {
		_spec.SetField(verificationjob.FieldExtractMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractMethodCleared() {
		_spec.ClearField(verificationjob.FieldExtractMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractPages(); ok {
		_spec.SetField(verificationjob.FieldExtractPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractPages(); ok {
		_spec.AddField(verificationjob.FieldExtractPages, field.TypeInt, value)
	}
	if _u.mutation.ExtractPagesCleared() {
		_spec.ClearField(verificationjob.FieldExtractPages, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractDurationMs(); ok {
		_spec.SetField(verificationjob.FieldExtractDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExtractDurationMs(); ok {
		_spec.AddField(verificationjob.FieldExtractDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.ExtractDurationMsCleared() {
		_spec.ClearField(verificationjob.FieldExtractDurationMs, field.TypeInt64)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CredentialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationJobUpdateOne is the builder for updating a single VerificationJob entity.
type VerificationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *VerificationJobUpdateOne) SetFileID(v uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableFileID(v *uuid.UUID) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *VerificationJobUpdateOne) SetProfileID(v uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableProfileID(v *uuid.UUID) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *VerificationJobUpdateOne) SetCredentialID(v uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableCredentialID(v *uuid.UUID) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *VerificationJobUpdateOne) ClearCredentialID() *VerificationJobUpdateOne {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *VerificationJobUpdateOne) SetFormat(v string) *VerificationJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableFormat(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdateOne) SetStartedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStartedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdateOne) SetFinishedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdateOne) ClearFinishedAt() *VerificationJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdateOne) SetStatus(v string) *VerificationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStatus(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *VerificationJobUpdateOne) ClearStatus() *VerificationJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdateOne) SetErrorMessage(v string) *VerificationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableErrorMessage(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdateOne) ClearErrorMessage() *VerificationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *VerificationJobUpdateOne) SetExtractedText(v string) *VerificationJobUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableExtractedText(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *VerificationJobUpdateOne) ClearExtractedText() *VerificationJobUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetExtractMethod sets the "extract_method" field.
func (_u *VerificationJobUpdateOne) SetExtractMethod(v string) *VerificationJobUpdateOne {
	_u.mutation.SetExtractMethod(v)
	return _u
}

// SetNillableExtractMethod sets the "extract_method" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableExtractMethod(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetExtractMethod(*v)
	}
	return _u
}

// ClearExtractMethod clears the value of the "extract_method" field.
func (_u *VerificationJobUpdateOne) ClearExtractMethod() *VerificationJobUpdateOne {
	_u.mutation.ClearExtractMethod()
	return _u
}

// SetExtractPages sets the "extract_pages" field.
func (_u *VerificationJobUpdateOne) SetExtractPages(v int) *VerificationJobUpdateOne {
	_u.mutation.ResetExtractPages()
	_u.mutation.SetExtractPages(v)
	return _u
}

// SetNillableExtractPages sets the "extract_pages" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableExtractPages(v *int) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetExtractPages(*v)
	}
	return _u
}

// AddExtractPages adds value to the "extract_pages" field.
func (_u *VerificationJobUpdateOne) AddExtractPages(v int) *VerificationJobUpdateOne {
	_u.mutation.AddExtractPages(v)
	return _u
}

// ClearExtractPages clears the value of the "extract_pages" field.
func (_u *VerificationJobUpdateOne) ClearExtractPages() *VerificationJobUpdateOne {
	_u.mutation.ClearExtractPages()
	return _u
}

// SetExtractDurationMs sets the "extract_duration_ms" field.
func (_u *VerificationJobUpdateOne) SetExtractDurationMs(v int64) *VerificationJobUpdateOne {
	_u.mutation.ResetExtractDurationMs()
	_u.mutation.SetExtractDurationMs(v)
	return _u
}

// SetNillableExtractDurationMs sets the "extract_duration_ms" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableExtractDurationMs(v *int64) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetExtractDurationMs(*v)
	}
	return _u
}

// AddExtractDurationMs adds value to the "extract_duration_ms" field.
func (_u *VerificationJobUpdateOne) AddExtractDurationMs(v int64) *VerificationJobUpdateOne {
	_u.mutation.AddExtractDurationMs(v)
	return _u
}

// ClearExtractDurationMs clears the value of the "extract_duration_ms" field.
func (_u *VerificationJobUpdateOne) ClearExtractDurationMs() *VerificationJobUpdateOne {
	_u.mutation.ClearExtractDurationMs()
	return _u
}

// SetFile sets the "file" edge to the CredentialFile entity.
func (_u *VerificationJobUpdateOne) SetFile(v *CredentialFile) *VerificationJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *VerificationJobUpdateOne) SetProfile(v *Profile) *VerificationJobUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *VerificationJobUpdateOne) SetCredential(v *Credential) *VerificationJobUpdateOne {
	return _u.SetCredentialID(v.ID)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdateOne) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the CredentialFile entity.
func (_u *VerificationJobUpdateOne) ClearFile() *VerificationJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *VerificationJobUpdateOne) ClearProfile() *VerificationJobUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *VerificationJobUpdateOne) ClearCredential() *VerificationJobUpdateOne {
	_u.mutation.ClearCredential()
	return _u
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdateOne) Where(ps ...predicate.VerificationJob) *VerificationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationJobUpdateOne) Select(field string, fields ...string) *VerificationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationJob entity.
func (_u *VerificationJobUpdateOne) Save(ctx context.Context) (*VerificationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) SaveX(ctx context.Context) *VerificationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := verificationjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.file"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.profile"`)
	}
	return nil
}

func (_u *VerificationJobUpdateOne) sqlSave(ctx context.Context) (_node *VerificationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationjob.FieldID)
		for _, f := range fields {
			if !verificationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationjob.FieldID {
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
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(verificationjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(verificationjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(verificationjob.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(verificationjob.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractMethod(); ok {
		_spec.SetField(verificationjob.FieldExtractMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractMethodCleared() {
		_spec.ClearField(verificationjob.FieldExtractMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractPages(); ok {
		_spec.SetField(verificationjob.FieldExtractPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractPages(); ok {
		_spec.AddField(verificationjob.FieldExtractPages, field.TypeInt, value)
	}
	if _u.mutation.ExtractPagesCleared() {
		_spec.ClearField(verificationjob.FieldExtractPages, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractDurationMs(); ok {
		_spec.SetField(verificationjob.FieldExtractDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExtractDurationMs(); ok {
		_spec.AddField(verificationjob.FieldExtractDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.ExtractDurationMsCleared() {
		_spec.ClearField(verificationjob.FieldExtractDurationMs, field.TypeInt64)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CredentialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
