// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/gen/ent/credentialfile"
	"github.com/microcred/credential-vault/gen/ent/predicate"
	"github.com/microcred/credential-vault/gen/ent/profile"
	"github.com/microcred/credential-vault/gen/ent/verificationjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCredential      = "Credential"
	TypeCredentialFile  = "CredentialFile"
	TypeProfile         = "Profile"
	TypeVerificationJob = "VerificationJob"
)

// CredentialMutation represents an operation that mutates the Credential nodes in the graph.
type CredentialMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	certificate_name      *string
	issuer                *string
	certificate_number    *string
	certificate_url       *string
	status                *string
	verification_note     *string
	extracted_text        *string
	matched               *bool
	match_reason          *string
	corroboration_outcome *string
	corroboration_note    *string
	skills                *[]string
	appendskills          []string
	level                 *int
	addlevel              *int
	fingerprint           *string
	anchor_state          *string
	anchor_tx_ref         *string
	anchor_error          *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	profile               *uuid.UUID
	clearedprofile        bool
	file                  *uuid.UUID
	clearedfile           bool
	jobs                  map[uuid.UUID]struct{}
	removedjobs           map[uuid.UUID]struct{}
	clearedjobs           bool
	done                  bool
	oldValue              func(context.Context) (*Credential, error)
	predicates            []predicate.Credential
}

var _ ent.Mutation = (*CredentialMutation)(nil)

// credentialOption allows management of the mutation configuration using functional options.
type credentialOption func(*CredentialMutation)

// newCredentialMutation creates new mutation for the Credential entity.
func newCredentialMutation(c config, op Op, opts ...credentialOption) *CredentialMutation {
	m := &CredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCredentialID sets the ID field of the mutation.
func withCredentialID(id uuid.UUID) credentialOption {
	return func(m *CredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *Credential
		)
		m.oldValue = func(ctx context.Context) (*Credential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Credential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCredential sets the old Credential of the mutation.
func withCredential(node *Credential) credentialOption {
	return func(m *CredentialMutation) {
		m.oldValue = func(context.Context) (*Credential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Credential entities.
func (m *CredentialMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CredentialMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CredentialMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Credential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *CredentialMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *CredentialMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *CredentialMutation) ResetProfileID() {
	m.profile = nil
}

// SetFileID sets the "file_id" field.
func (m *CredentialMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *CredentialMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *CredentialMutation) ResetFileID() {
	m.file = nil
}

// SetCertificateName sets the "certificate_name" field.
func (m *CredentialMutation) SetCertificateName(s string) {
	m.certificate_name = &s
}

// CertificateName returns the value of the "certificate_name" field in the mutation.
func (m *CredentialMutation) CertificateName() (r string, exists bool) {
	v := m.certificate_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCertificateName returns the old "certificate_name" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCertificateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertificateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertificateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertificateName: %w", err)
	}
	return oldValue.CertificateName, nil
}

// ResetCertificateName resets all changes to the "certificate_name" field.
func (m *CredentialMutation) ResetCertificateName() {
	m.certificate_name = nil
}

// SetIssuer sets the "issuer" field.
func (m *CredentialMutation) SetIssuer(s string) {
	m.issuer = &s
}

// Issuer returns the value of the "issuer" field in the mutation.
func (m *CredentialMutation) Issuer() (r string, exists bool) {
	v := m.issuer
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuer returns the old "issuer" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldIssuer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuer: %w", err)
	}
	return oldValue.Issuer, nil
}

// ResetIssuer resets all changes to the "issuer" field.
func (m *CredentialMutation) ResetIssuer() {
	m.issuer = nil
}

// SetCertificateNumber sets the "certificate_number" field.
func (m *CredentialMutation) SetCertificateNumber(s string) {
	m.certificate_number = &s
}

// CertificateNumber returns the value of the "certificate_number" field in the mutation.
func (m *CredentialMutation) CertificateNumber() (r string, exists bool) {
	v := m.certificate_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCertificateNumber returns the old "certificate_number" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCertificateNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertificateNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertificateNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertificateNumber: %w", err)
	}
	return oldValue.CertificateNumber, nil
}

// ResetCertificateNumber resets all changes to the "certificate_number" field.
func (m *CredentialMutation) ResetCertificateNumber() {
	m.certificate_number = nil
}

// SetCertificateURL sets the "certificate_url" field.
func (m *CredentialMutation) SetCertificateURL(s string) {
	m.certificate_url = &s
}

// CertificateURL returns the value of the "certificate_url" field in the mutation.
func (m *CredentialMutation) CertificateURL() (r string, exists bool) {
	v := m.certificate_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCertificateURL returns the old "certificate_url" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCertificateURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertificateURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertificateURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertificateURL: %w", err)
	}
	return oldValue.CertificateURL, nil
}

// ClearCertificateURL clears the value of the "certificate_url" field.
func (m *CredentialMutation) ClearCertificateURL() {
	m.certificate_url = nil
	m.clearedFields[credential.FieldCertificateURL] = struct{}{}
}

// CertificateURLCleared returns if the "certificate_url" field was cleared in this mutation.
func (m *CredentialMutation) CertificateURLCleared() bool {
	_, ok := m.clearedFields[credential.FieldCertificateURL]
	return ok
}

// ResetCertificateURL resets all changes to the "certificate_url" field.
func (m *CredentialMutation) ResetCertificateURL() {
	m.certificate_url = nil
	delete(m.clearedFields, credential.FieldCertificateURL)
}

// SetStatus sets the "status" field.
func (m *CredentialMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CredentialMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CredentialMutation) ResetStatus() {
	m.status = nil
}

// SetVerificationNote sets the "verification_note" field.
func (m *CredentialMutation) SetVerificationNote(s string) {
	m.verification_note = &s
}

// VerificationNote returns the value of the "verification_note" field in the mutation.
func (m *CredentialMutation) VerificationNote() (r string, exists bool) {
	v := m.verification_note
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationNote returns the old "verification_note" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldVerificationNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationNote: %w", err)
	}
	return oldValue.VerificationNote, nil
}

// ResetVerificationNote resets all changes to the "verification_note" field.
func (m *CredentialMutation) ResetVerificationNote() {
	m.verification_note = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *CredentialMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *CredentialMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldExtractedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *CredentialMutation) ResetExtractedText() {
	m.extracted_text = nil
}

// SetMatched sets the "matched" field.
func (m *CredentialMutation) SetMatched(b bool) {
	m.matched = &b
}

// Matched returns the value of the "matched" field in the mutation.
func (m *CredentialMutation) Matched() (r bool, exists bool) {
	v := m.matched
	if v == nil {
		return
	}
	return *v, true
}

// OldMatched returns the old "matched" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldMatched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatched: %w", err)
	}
	return oldValue.Matched, nil
}

// ResetMatched resets all changes to the "matched" field.
func (m *CredentialMutation) ResetMatched() {
	m.matched = nil
}

// SetMatchReason sets the "match_reason" field.
func (m *CredentialMutation) SetMatchReason(s string) {
	m.match_reason = &s
}

// MatchReason returns the value of the "match_reason" field in the mutation.
func (m *CredentialMutation) MatchReason() (r string, exists bool) {
	v := m.match_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchReason returns the old "match_reason" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldMatchReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchReason: %w", err)
	}
	return oldValue.MatchReason, nil
}

// ResetMatchReason resets all changes to the "match_reason" field.
func (m *CredentialMutation) ResetMatchReason() {
	m.match_reason = nil
}

// SetCorroborationOutcome sets the "corroboration_outcome" field.
func (m *CredentialMutation) SetCorroborationOutcome(s string) {
	m.corroboration_outcome = &s
}

// CorroborationOutcome returns the value of the "corroboration_outcome" field in the mutation.
func (m *CredentialMutation) CorroborationOutcome() (r string, exists bool) {
	v := m.corroboration_outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldCorroborationOutcome returns the old "corroboration_outcome" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCorroborationOutcome(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorroborationOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorroborationOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorroborationOutcome: %w", err)
	}
	return oldValue.CorroborationOutcome, nil
}

// ClearCorroborationOutcome clears the value of the "corroboration_outcome" field.
func (m *CredentialMutation) ClearCorroborationOutcome() {
	m.corroboration_outcome = nil
	m.clearedFields[credential.FieldCorroborationOutcome] = struct{}{}
}

// CorroborationOutcomeCleared returns if the "corroboration_outcome" field was cleared in this mutation.
func (m *CredentialMutation) CorroborationOutcomeCleared() bool {
	_, ok := m.clearedFields[credential.FieldCorroborationOutcome]
	return ok
}

// ResetCorroborationOutcome resets all changes to the "corroboration_outcome" field.
func (m *CredentialMutation) ResetCorroborationOutcome() {
	m.corroboration_outcome = nil
	delete(m.clearedFields, credential.FieldCorroborationOutcome)
}

// SetCorroborationNote sets the "corroboration_note" field.
func (m *CredentialMutation) SetCorroborationNote(s string) {
	m.corroboration_note = &s
}

// CorroborationNote returns the value of the "corroboration_note" field in the mutation.
func (m *CredentialMutation) CorroborationNote() (r string, exists bool) {
	v := m.corroboration_note
	if v == nil {
		return
	}
	return *v, true
}

// OldCorroborationNote returns the old "corroboration_note" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCorroborationNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorroborationNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorroborationNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorroborationNote: %w", err)
	}
	return oldValue.CorroborationNote, nil
}

// ClearCorroborationNote clears the value of the "corroboration_note" field.
func (m *CredentialMutation) ClearCorroborationNote() {
	m.corroboration_note = nil
	m.clearedFields[credential.FieldCorroborationNote] = struct{}{}
}

// CorroborationNoteCleared returns if the "corroboration_note" field was cleared in this mutation.
func (m *CredentialMutation) CorroborationNoteCleared() bool {
	_, ok := m.clearedFields[credential.FieldCorroborationNote]
	return ok
}

// ResetCorroborationNote resets all changes to the "corroboration_note" field.
func (m *CredentialMutation) ResetCorroborationNote() {
	m.corroboration_note = nil
	delete(m.clearedFields, credential.FieldCorroborationNote)
}

// SetSkills sets the "skills" field.
func (m *CredentialMutation) SetSkills(s []string) {
	m.skills = &s
	m.appendskills = nil
}

// Skills returns the value of the "skills" field in the mutation.
func (m *CredentialMutation) Skills() (r []string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// AppendSkills adds s to the "skills" field.
func (m *CredentialMutation) AppendSkills(s []string) {
	m.appendskills = append(m.appendskills, s...)
}

// AppendedSkills returns the list of values that were appended to the "skills" field in this mutation.
func (m *CredentialMutation) AppendedSkills() ([]string, bool) {
	if len(m.appendskills) == 0 {
		return nil, false
	}
	return m.appendskills, true
}

// ClearSkills clears the value of the "skills" field.
func (m *CredentialMutation) ClearSkills() {
	m.skills = nil
	m.appendskills = nil
	m.clearedFields[credential.FieldSkills] = struct{}{}
}

// SkillsCleared returns if the "skills" field was cleared in this mutation.
func (m *CredentialMutation) SkillsCleared() bool {
	_, ok := m.clearedFields[credential.FieldSkills]
	return ok
}

// ResetSkills resets all changes to the "skills" field.
func (m *CredentialMutation) ResetSkills() {
	m.skills = nil
	m.appendskills = nil
	delete(m.clearedFields, credential.FieldSkills)
}

// SetLevel sets the "level" field.
func (m *CredentialMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *CredentialMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *CredentialMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *CredentialMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *CredentialMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *CredentialMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *CredentialMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (m *CredentialMutation) ClearFingerprint() {
	m.fingerprint = nil
	m.clearedFields[credential.FieldFingerprint] = struct{}{}
}

// FingerprintCleared returns if the "fingerprint" field was cleared in this mutation.
func (m *CredentialMutation) FingerprintCleared() bool {
	_, ok := m.clearedFields[credential.FieldFingerprint]
	return ok
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *CredentialMutation) ResetFingerprint() {
	m.fingerprint = nil
	delete(m.clearedFields, credential.FieldFingerprint)
}

// SetAnchorState sets the "anchor_state" field.
func (m *CredentialMutation) SetAnchorState(s string) {
	m.anchor_state = &s
}

// AnchorState returns the value of the "anchor_state" field in the mutation.
func (m *CredentialMutation) AnchorState() (r string, exists bool) {
	v := m.anchor_state
	if v == nil {
		return
	}
	return *v, true
}

// OldAnchorState returns the old "anchor_state" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldAnchorState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnchorState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnchorState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnchorState: %w", err)
	}
	return oldValue.AnchorState, nil
}

// ResetAnchorState resets all changes to the "anchor_state" field.
func (m *CredentialMutation) ResetAnchorState() {
	m.anchor_state = nil
}

// SetAnchorTxRef sets the "anchor_tx_ref" field.
func (m *CredentialMutation) SetAnchorTxRef(s string) {
	m.anchor_tx_ref = &s
}

// AnchorTxRef returns the value of the "anchor_tx_ref" field in the mutation.
func (m *CredentialMutation) AnchorTxRef() (r string, exists bool) {
	v := m.anchor_tx_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldAnchorTxRef returns the old "anchor_tx_ref" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldAnchorTxRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnchorTxRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnchorTxRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnchorTxRef: %w", err)
	}
	return oldValue.AnchorTxRef, nil
}

// ClearAnchorTxRef clears the value of the "anchor_tx_ref" field.
func (m *CredentialMutation) ClearAnchorTxRef() {
	m.anchor_tx_ref = nil
	m.clearedFields[credential.FieldAnchorTxRef] = struct{}{}
}

// AnchorTxRefCleared returns if the "anchor_tx_ref" field was cleared in this mutation.
func (m *CredentialMutation) AnchorTxRefCleared() bool {
	_, ok := m.clearedFields[credential.FieldAnchorTxRef]
	return ok
}

// ResetAnchorTxRef resets all changes to the "anchor_tx_ref" field.
func (m *CredentialMutation) ResetAnchorTxRef() {
	m.anchor_tx_ref = nil
	delete(m.clearedFields, credential.FieldAnchorTxRef)
}

// SetAnchorError sets the "anchor_error" field.
func (m *CredentialMutation) SetAnchorError(s string) {
	m.anchor_error = &s
}

// AnchorError returns the value of the "anchor_error" field in the mutation.
func (m *CredentialMutation) AnchorError() (r string, exists bool) {
	v := m.anchor_error
	if v == nil {
		return
	}
	return *v, true
}

// OldAnchorError returns the old "anchor_error" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldAnchorError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnchorError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnchorError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnchorError: %w", err)
	}
	return oldValue.AnchorError, nil
}

// ClearAnchorError clears the value of the "anchor_error" field.
func (m *CredentialMutation) ClearAnchorError() {
	m.anchor_error = nil
	m.clearedFields[credential.FieldAnchorError] = struct{}{}
}

// AnchorErrorCleared returns if the "anchor_error" field was cleared in this mutation.
func (m *CredentialMutation) AnchorErrorCleared() bool {
	_, ok := m.clearedFields[credential.FieldAnchorError]
	return ok
}

// ResetAnchorError resets all changes to the "anchor_error" field.
func (m *CredentialMutation) ResetAnchorError() {
	m.anchor_error = nil
	delete(m.clearedFields, credential.FieldAnchorError)
}

// SetCreatedAt sets the "created_at" field.
func (m *CredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *CredentialMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[credential.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *CredentialMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *CredentialMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *CredentialMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// ClearFile clears the "file" edge to the CredentialFile entity.
func (m *CredentialMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[credential.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the CredentialFile entity was cleared.
func (m *CredentialMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *CredentialMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *CredentialMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by ids.
func (m *CredentialMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the VerificationJob entity.
func (m *CredentialMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the VerificationJob entity was cleared.
func (m *CredentialMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the VerificationJob entity by IDs.
func (m *CredentialMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the VerificationJob entity.
func (m *CredentialMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *CredentialMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *CredentialMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the CredentialMutation builder.
func (m *CredentialMutation) Where(ps ...predicate.Credential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Credential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Credential).
func (m *CredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CredentialMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.profile != nil {
		fields = append(fields, credential.FieldProfileID)
	}
	if m.file != nil {
		fields = append(fields, credential.FieldFileID)
	}
	if m.certificate_name != nil {
		fields = append(fields, credential.FieldCertificateName)
	}
	if m.issuer != nil {
		fields = append(fields, credential.FieldIssuer)
	}
	if m.certificate_number != nil {
		fields = append(fields, credential.FieldCertificateNumber)
	}
	if m.certificate_url != nil {
		fields = append(fields, credential.FieldCertificateURL)
	}
	if m.status != nil {
		fields = append(fields, credential.FieldStatus)
	}
	if m.verification_note != nil {
		fields = append(fields, credential.FieldVerificationNote)
	}
	if m.extracted_text != nil {
		fields = append(fields, credential.FieldExtractedText)
	}
	if m.matched != nil {
		fields = append(fields, credential.FieldMatched)
	}
	if m.match_reason != nil {
		fields = append(fields, credential.FieldMatchReason)
	}
	if m.corroboration_outcome != nil {
		fields = append(fields, credential.FieldCorroborationOutcome)
	}
	if m.corroboration_note != nil {
		fields = append(fields, credential.FieldCorroborationNote)
	}
	if m.skills != nil {
		fields = append(fields, credential.FieldSkills)
	}
	if m.level != nil {
		fields = append(fields, credential.FieldLevel)
	}
	if m.fingerprint != nil {
		fields = append(fields, credential.FieldFingerprint)
	}
	if m.anchor_state != nil {
		fields = append(fields, credential.FieldAnchorState)
	}
	if m.anchor_tx_ref != nil {
		fields = append(fields, credential.FieldAnchorTxRef)
	}
	if m.anchor_error != nil {
		fields = append(fields, credential.FieldAnchorError)
	}
	if m.created_at != nil {
		fields = append(fields, credential.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case credential.FieldProfileID:
		return m.ProfileID()
	case credential.FieldFileID:
		return m.FileID()
	case credential.FieldCertificateName:
		return m.CertificateName()
	case credential.FieldIssuer:
		return m.Issuer()
	case credential.FieldCertificateNumber:
		return m.CertificateNumber()
	case credential.FieldCertificateURL:
		return m.CertificateURL()
	case credential.FieldStatus:
		return m.Status()
	case credential.FieldVerificationNote:
		return m.VerificationNote()
	case credential.FieldExtractedText:
		return m.ExtractedText()
	case credential.FieldMatched:
		return m.Matched()
	case credential.FieldMatchReason:
		return m.MatchReason()
	case credential.FieldCorroborationOutcome:
		return m.CorroborationOutcome()
	case credential.FieldCorroborationNote:
		return m.CorroborationNote()
	case credential.FieldSkills:
		return m.Skills()
	case credential.FieldLevel:
		return m.Level()
	case credential.FieldFingerprint:
		return m.Fingerprint()
	case credential.FieldAnchorState:
		return m.AnchorState()
	case credential.FieldAnchorTxRef:
		return m.AnchorTxRef()
	case credential.FieldAnchorError:
		return m.AnchorError()
	case credential.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case credential.FieldProfileID:
		return m.OldProfileID(ctx)
	case credential.FieldFileID:
		return m.OldFileID(ctx)
	case credential.FieldCertificateName:
		return m.OldCertificateName(ctx)
	case credential.FieldIssuer:
		return m.OldIssuer(ctx)
	case credential.FieldCertificateNumber:
		return m.OldCertificateNumber(ctx)
	case credential.FieldCertificateURL:
		return m.OldCertificateURL(ctx)
	case credential.FieldStatus:
		return m.OldStatus(ctx)
	case credential.FieldVerificationNote:
		return m.OldVerificationNote(ctx)
	case credential.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case credential.FieldMatched:
		return m.OldMatched(ctx)
	case credential.FieldMatchReason:
		return m.OldMatchReason(ctx)
	case credential.FieldCorroborationOutcome:
		return m.OldCorroborationOutcome(ctx)
	case credential.FieldCorroborationNote:
		return m.OldCorroborationNote(ctx)
	case credential.FieldSkills:
		return m.OldSkills(ctx)
	case credential.FieldLevel:
		return m.OldLevel(ctx)
	case credential.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case credential.FieldAnchorState:
		return m.OldAnchorState(ctx)
	case credential.FieldAnchorTxRef:
		return m.OldAnchorTxRef(ctx)
	case credential.FieldAnchorError:
		return m.OldAnchorError(ctx)
	case credential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Credential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case credential.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case credential.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case credential.FieldCertificateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertificateName(v)
		return nil
	case credential.FieldIssuer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuer(v)
		return nil
	case credential.FieldCertificateNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertificateNumber(v)
		return nil
	case credential.FieldCertificateURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertificateURL(v)
		return nil
	case credential.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case credential.FieldVerificationNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationNote(v)
		return nil
	case credential.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case credential.FieldMatched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatched(v)
		return nil
	case credential.FieldMatchReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchReason(v)
		return nil
	case credential.FieldCorroborationOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorroborationOutcome(v)
		return nil
	case credential.FieldCorroborationNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorroborationNote(v)
		return nil
	case credential.FieldSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case credential.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case credential.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case credential.FieldAnchorState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnchorState(v)
		return nil
	case credential.FieldAnchorTxRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnchorTxRef(v)
		return nil
	case credential.FieldAnchorError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnchorError(v)
		return nil
	case credential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CredentialMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, credential.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CredentialMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case credential.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	case credential.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Credential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(credential.FieldCertificateURL) {
		fields = append(fields, credential.FieldCertificateURL)
	}
	if m.FieldCleared(credential.FieldCorroborationOutcome) {
		fields = append(fields, credential.FieldCorroborationOutcome)
	}
	if m.FieldCleared(credential.FieldCorroborationNote) {
		fields = append(fields, credential.FieldCorroborationNote)
	}
	if m.FieldCleared(credential.FieldSkills) {
		fields = append(fields, credential.FieldSkills)
	}
	if m.FieldCleared(credential.FieldFingerprint) {
		fields = append(fields, credential.FieldFingerprint)
	}
	if m.FieldCleared(credential.FieldAnchorTxRef) {
		fields = append(fields, credential.FieldAnchorTxRef)
	}
	if m.FieldCleared(credential.FieldAnchorError) {
		fields = append(fields, credential.FieldAnchorError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CredentialMutation) ClearField(name string) error {
	switch name {
	case credential.FieldCertificateURL:
		m.ClearCertificateURL()
		return nil
	case credential.FieldCorroborationOutcome:
		m.ClearCorroborationOutcome()
		return nil
	case credential.FieldCorroborationNote:
		m.ClearCorroborationNote()
		return nil
	case credential.FieldSkills:
		m.ClearSkills()
		return nil
	case credential.FieldFingerprint:
		m.ClearFingerprint()
		return nil
	case credential.FieldAnchorTxRef:
		m.ClearAnchorTxRef()
		return nil
	case credential.FieldAnchorError:
		m.ClearAnchorError()
		return nil
	}
	return fmt.Errorf("unknown Credential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CredentialMutation) ResetField(name string) error {
	switch name {
	case credential.FieldProfileID:
		m.ResetProfileID()
		return nil
	case credential.FieldFileID:
		m.ResetFileID()
		return nil
	case credential.FieldCertificateName:
		m.ResetCertificateName()
		return nil
	case credential.FieldIssuer:
		m.ResetIssuer()
		return nil
	case credential.FieldCertificateNumber:
		m.ResetCertificateNumber()
		return nil
	case credential.FieldCertificateURL:
		m.ResetCertificateURL()
		return nil
	case credential.FieldStatus:
		m.ResetStatus()
		return nil
	case credential.FieldVerificationNote:
		m.ResetVerificationNote()
		return nil
	case credential.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case credential.FieldMatched:
		m.ResetMatched()
		return nil
	case credential.FieldMatchReason:
		m.ResetMatchReason()
		return nil
	case credential.FieldCorroborationOutcome:
		m.ResetCorroborationOutcome()
		return nil
	case credential.FieldCorroborationNote:
		m.ResetCorroborationNote()
		return nil
	case credential.FieldSkills:
		m.ResetSkills()
		return nil
	case credential.FieldLevel:
		m.ResetLevel()
		return nil
	case credential.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case credential.FieldAnchorState:
		m.ResetAnchorState()
		return nil
	case credential.FieldAnchorTxRef:
		m.ResetAnchorTxRef()
		return nil
	case credential.FieldAnchorError:
		m.ResetAnchorError()
		return nil
	case credential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.profile != nil {
		edges = append(edges, credential.EdgeProfile)
	}
	if m.file != nil {
		edges = append(edges, credential.EdgeFile)
	}
	if m.jobs != nil {
		edges = append(edges, credential.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CredentialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case credential.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case credential.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case credential.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, credential.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CredentialMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case credential.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedprofile {
		edges = append(edges, credential.EdgeProfile)
	}
	if m.clearedfile {
		edges = append(edges, credential.EdgeFile)
	}
	if m.clearedjobs {
		edges = append(edges, credential.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CredentialMutation) EdgeCleared(name string) bool {
	switch name {
	case credential.EdgeProfile:
		return m.clearedprofile
	case credential.EdgeFile:
		return m.clearedfile
	case credential.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CredentialMutation) ClearEdge(name string) error {
	switch name {
	case credential.EdgeProfile:
		m.ClearProfile()
		return nil
	case credential.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown Credential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CredentialMutation) ResetEdge(name string) error {
	switch name {
	case credential.EdgeProfile:
		m.ResetProfile()
		return nil
	case credential.EdgeFile:
		m.ResetFile()
		return nil
	case credential.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Credential edge %s", name)
}

// CredentialFileMutation represents an operation that mutates the CredentialFile nodes in the graph.
type CredentialFileMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	stored_path        *string
	content_hash       *[]byte
	filename           *string
	file_ext           *string
	file_size          *int
	addfile_size       *int
	uploaded_at        *time.Time
	clearedFields      map[string]struct{}
	profile            *uuid.UUID
	clearedprofile     bool
	jobs               map[uuid.UUID]struct{}
	removedjobs        map[uuid.UUID]struct{}
	clearedjobs        bool
	credentials        map[uuid.UUID]struct{}
	removedcredentials map[uuid.UUID]struct{}
	clearedcredentials bool
	done               bool
	oldValue           func(context.Context) (*CredentialFile, error)
	predicates         []predicate.CredentialFile
}

var _ ent.Mutation = (*CredentialFileMutation)(nil)

// credentialfileOption allows management of the mutation configuration using functional options.
type credentialfileOption func(*CredentialFileMutation)

// newCredentialFileMutation creates new mutation for the CredentialFile entity.
func newCredentialFileMutation(c config, op Op, opts ...credentialfileOption) *CredentialFileMutation {
	m := &CredentialFileMutation{
		config:        c,
		op:            op,
		typ:           TypeCredentialFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCredentialFileID sets the ID field of the mutation.
func withCredentialFileID(id uuid.UUID) credentialfileOption {
	return func(m *CredentialFileMutation) {
		var (
			err   error
			once  sync.Once
			value *CredentialFile
		)
		m.oldValue = func(ctx context.Context) (*CredentialFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CredentialFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCredentialFile sets the old CredentialFile of the mutation.
func withCredentialFile(node *CredentialFile) credentialfileOption {
	return func(m *CredentialFileMutation) {
		m.oldValue = func(context.Context) (*CredentialFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CredentialFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CredentialFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CredentialFile entities.
func (m *CredentialFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CredentialFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CredentialFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CredentialFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *CredentialFileMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *CredentialFileMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the CredentialFile entity.
// If the CredentialFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialFileMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *CredentialFileMutation) ResetProfileID() {
	m.profile = nil
}

// SetStoredPath sets the "stored_path" field.
func (m *CredentialFileMutation) SetStoredPath(s string) {
	m.stored_path = &s
}

// StoredPath returns the value of the "stored_path" field in the mutation.
func (m *CredentialFileMutation) StoredPath() (r string, exists bool) {
	v := m.stored_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredPath returns the old "stored_path" field's value of the CredentialFile entity.
// If the CredentialFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialFileMutation) OldStoredPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredPath: %w", err)
	}
	return oldValue.StoredPath, nil
}

// ResetStoredPath resets all changes to the "stored_path" field.
func (m *CredentialFileMutation) ResetStoredPath() {
	m.stored_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *CredentialFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *CredentialFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the CredentialFile entity.
// If the CredentialFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *CredentialFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *CredentialFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *CredentialFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the CredentialFile entity.
// If the CredentialFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *CredentialFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *CredentialFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *CredentialFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the CredentialFile entity.
// If the CredentialFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *CredentialFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *CredentialFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *CredentialFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the CredentialFile entity.
// If the CredentialFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *CredentialFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *CredentialFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *CredentialFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *CredentialFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *CredentialFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the CredentialFile entity.
// If the CredentialFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *CredentialFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *CredentialFileMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[credentialfile.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *CredentialFileMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *CredentialFileMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *CredentialFileMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by ids.
func (m *CredentialFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the VerificationJob entity.
func (m *CredentialFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the VerificationJob entity was cleared.
func (m *CredentialFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the VerificationJob entity by IDs.
func (m *CredentialFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the VerificationJob entity.
func (m *CredentialFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *CredentialFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *CredentialFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddCredentialIDs adds the "credentials" edge to the Credential entity by ids.
func (m *CredentialFileMutation) AddCredentialIDs(ids ...uuid.UUID) {
	if m.credentials == nil {
		m.credentials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.credentials[ids[i]] = struct{}{}
	}
}

// ClearCredentials clears the "credentials" edge to the Credential entity.
func (m *CredentialFileMutation) ClearCredentials() {
	m.clearedcredentials = true
}

// CredentialsCleared reports if the "credentials" edge to the Credential entity was cleared.
func (m *CredentialFileMutation) CredentialsCleared() bool {
	return m.clearedcredentials
}

// RemoveCredentialIDs removes the "credentials" edge to the Credential entity by IDs.
func (m *CredentialFileMutation) RemoveCredentialIDs(ids ...uuid.UUID) {
	if m.removedcredentials == nil {
		m.removedcredentials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.credentials, ids[i])
		m.removedcredentials[ids[i]] = struct{}{}
	}
}

// RemovedCredentials returns the removed IDs of the "credentials" edge to the Credential entity.
func (m *CredentialFileMutation) RemovedCredentialsIDs() (ids []uuid.UUID) {
	for id := range m.removedcredentials {
		ids = append(ids, id)
	}
	return
}

// CredentialsIDs returns the "credentials" edge IDs in the mutation.
func (m *CredentialFileMutation) CredentialsIDs() (ids []uuid.UUID) {
	for id := range m.credentials {
		ids = append(ids, id)
	}
	return
}

// ResetCredentials resets all changes to the "credentials" edge.
func (m *CredentialFileMutation) ResetCredentials() {
	m.credentials = nil
	m.clearedcredentials = false
	m.removedcredentials = nil
}

// Where appends a list predicates to the CredentialFileMutation builder.
func (m *CredentialFileMutation) Where(ps ...predicate.CredentialFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CredentialFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CredentialFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CredentialFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CredentialFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CredentialFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CredentialFile).
func (m *CredentialFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CredentialFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.profile != nil {
		fields = append(fields, credentialfile.FieldProfileID)
	}
	if m.stored_path != nil {
		fields = append(fields, credentialfile.FieldStoredPath)
	}
	if m.content_hash != nil {
		fields = append(fields, credentialfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, credentialfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, credentialfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, credentialfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, credentialfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CredentialFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case credentialfile.FieldProfileID:
		return m.ProfileID()
	case credentialfile.FieldStoredPath:
		return m.StoredPath()
	case credentialfile.FieldContentHash:
		return m.ContentHash()
	case credentialfile.FieldFilename:
		return m.Filename()
	case credentialfile.FieldFileExt:
		return m.FileExt()
	case credentialfile.FieldFileSize:
		return m.FileSize()
	case credentialfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CredentialFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case credentialfile.FieldProfileID:
		return m.OldProfileID(ctx)
	case credentialfile.FieldStoredPath:
		return m.OldStoredPath(ctx)
	case credentialfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case credentialfile.FieldFilename:
		return m.OldFilename(ctx)
	case credentialfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case credentialfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case credentialfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CredentialFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case credentialfile.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case credentialfile.FieldStoredPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredPath(v)
		return nil
	case credentialfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case credentialfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case credentialfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case credentialfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case credentialfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CredentialFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CredentialFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, credentialfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CredentialFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case credentialfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case credentialfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown CredentialFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CredentialFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CredentialFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CredentialFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CredentialFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CredentialFileMutation) ResetField(name string) error {
	switch name {
	case credentialfile.FieldProfileID:
		m.ResetProfileID()
		return nil
	case credentialfile.FieldStoredPath:
		m.ResetStoredPath()
		return nil
	case credentialfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case credentialfile.FieldFilename:
		m.ResetFilename()
		return nil
	case credentialfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case credentialfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case credentialfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown CredentialFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CredentialFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.profile != nil {
		edges = append(edges, credentialfile.EdgeProfile)
	}
	if m.jobs != nil {
		edges = append(edges, credentialfile.EdgeJobs)
	}
	if m.credentials != nil {
		edges = append(edges, credentialfile.EdgeCredentials)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CredentialFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case credentialfile.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case credentialfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case credentialfile.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.credentials))
		for id := range m.credentials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CredentialFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, credentialfile.EdgeJobs)
	}
	if m.removedcredentials != nil {
		edges = append(edges, credentialfile.EdgeCredentials)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CredentialFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case credentialfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case credentialfile.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.removedcredentials))
		for id := range m.removedcredentials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CredentialFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedprofile {
		edges = append(edges, credentialfile.EdgeProfile)
	}
	if m.clearedjobs {
		edges = append(edges, credentialfile.EdgeJobs)
	}
	if m.clearedcredentials {
		edges = append(edges, credentialfile.EdgeCredentials)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CredentialFileMutation) EdgeCleared(name string) bool {
	switch name {
	case credentialfile.EdgeProfile:
		return m.clearedprofile
	case credentialfile.EdgeJobs:
		return m.clearedjobs
	case credentialfile.EdgeCredentials:
		return m.clearedcredentials
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CredentialFileMutation) ClearEdge(name string) error {
	switch name {
	case credentialfile.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown CredentialFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CredentialFileMutation) ResetEdge(name string) error {
	switch name {
	case credentialfile.EdgeProfile:
		m.ResetProfile()
		return nil
	case credentialfile.EdgeJobs:
		m.ResetJobs()
		return nil
	case credentialfile.EdgeCredentials:
		m.ResetCredentials()
		return nil
	}
	return fmt.Errorf("unknown CredentialFile edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	email              *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	credentials        map[uuid.UUID]struct{}
	removedcredentials map[uuid.UUID]struct{}
	clearedcredentials bool
	files              map[uuid.UUID]struct{}
	removedfiles       map[uuid.UUID]struct{}
	clearedfiles       bool
	jobs               map[uuid.UUID]struct{}
	removedjobs        map[uuid.UUID]struct{}
	clearedjobs        bool
	done               bool
	oldValue           func(context.Context) (*Profile, error)
	predicates         []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[profile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[profile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, profile.FieldEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCredentialIDs adds the "credentials" edge to the Credential entity by ids.
func (m *ProfileMutation) AddCredentialIDs(ids ...uuid.UUID) {
	if m.credentials == nil {
		m.credentials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.credentials[ids[i]] = struct{}{}
	}
}

// ClearCredentials clears the "credentials" edge to the Credential entity.
func (m *ProfileMutation) ClearCredentials() {
	m.clearedcredentials = true
}

// CredentialsCleared reports if the "credentials" edge to the Credential entity was cleared.
func (m *ProfileMutation) CredentialsCleared() bool {
	return m.clearedcredentials
}

// RemoveCredentialIDs removes the "credentials" edge to the Credential entity by IDs.
func (m *ProfileMutation) RemoveCredentialIDs(ids ...uuid.UUID) {
	if m.removedcredentials == nil {
		m.removedcredentials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.credentials, ids[i])
		m.removedcredentials[ids[i]] = struct{}{}
	}
}

// RemovedCredentials returns the removed IDs of the "credentials" edge to the Credential entity.
func (m *ProfileMutation) RemovedCredentialsIDs() (ids []uuid.UUID) {
	for id := range m.removedcredentials {
		ids = append(ids, id)
	}
	return
}

// CredentialsIDs returns the "credentials" edge IDs in the mutation.
func (m *ProfileMutation) CredentialsIDs() (ids []uuid.UUID) {
	for id := range m.credentials {
		ids = append(ids, id)
	}
	return
}

// ResetCredentials resets all changes to the "credentials" edge.
func (m *ProfileMutation) ResetCredentials() {
	m.credentials = nil
	m.clearedcredentials = false
	m.removedcredentials = nil
}

// AddFileIDs adds the "files" edge to the CredentialFile entity by ids.
func (m *ProfileMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the CredentialFile entity.
func (m *ProfileMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the CredentialFile entity was cleared.
func (m *ProfileMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the CredentialFile entity by IDs.
func (m *ProfileMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the CredentialFile entity.
func (m *ProfileMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ProfileMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ProfileMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by ids.
func (m *ProfileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the VerificationJob entity.
func (m *ProfileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the VerificationJob entity was cleared.
func (m *ProfileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the VerificationJob entity by IDs.
func (m *ProfileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the VerificationJob entity.
func (m *ProfileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProfileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProfileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.email != nil {
		fields = append(fields, profile.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldName:
		return m.Name()
	case profile.FieldEmail:
		return m.Email()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldEmail:
		return m.OldEmail(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldEmail) {
		fields = append(fields, profile.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldEmail:
		m.ResetEmail()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.credentials != nil {
		edges = append(edges, profile.EdgeCredentials)
	}
	if m.files != nil {
		edges = append(edges, profile.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.credentials))
		for id := range m.credentials {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcredentials != nil {
		edges = append(edges, profile.EdgeCredentials)
	}
	if m.removedfiles != nil {
		edges = append(edges, profile.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.removedcredentials))
		for id := range m.removedcredentials {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcredentials {
		edges = append(edges, profile.EdgeCredentials)
	}
	if m.clearedfiles {
		edges = append(edges, profile.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeCredentials:
		return m.clearedcredentials
	case profile.EdgeFiles:
		return m.clearedfiles
	case profile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeCredentials:
		m.ResetCredentials()
		return nil
	case profile.EdgeFiles:
		m.ResetFiles()
		return nil
	case profile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// VerificationJobMutation represents an operation that mutates the VerificationJob nodes in the graph.
type VerificationJobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	format                 *string
	started_at             *time.Time
	finished_at            *time.Time
	status                 *string
	error_message          *string
	extracted_text         *string
	extract_method         *string
	extract_pages          *int
	addextract_pages       *int
	extract_duration_ms    *int64
	addextract_duration_ms *int64
	clearedFields          map[string]struct{}
	file                   *uuid.UUID
	clearedfile            bool
	profile                *uuid.UUID
	clearedprofile         bool
	credential             *uuid.UUID
	clearedcredential      bool
	done                   bool
	oldValue               func(context.Context) (*VerificationJob, error)
	predicates             []predicate.VerificationJob
}

var _ ent.Mutation = (*VerificationJobMutation)(nil)

// verificationjobOption allows management of the mutation configuration using functional options.
type verificationjobOption func(*VerificationJobMutation)

// newVerificationJobMutation creates new mutation for the VerificationJob entity.
func newVerificationJobMutation(c config, op Op, opts ...verificationjobOption) *VerificationJobMutation {
	m := &VerificationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationJobID sets the ID field of the mutation.
func withVerificationJobID(id uuid.UUID) verificationjobOption {
	return func(m *VerificationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationJob
		)
		m.oldValue = func(ctx context.Context) (*VerificationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationJob sets the old VerificationJob of the mutation.
func withVerificationJob(node *VerificationJob) verificationjobOption {
	return func(m *VerificationJobMutation) {
		m.oldValue = func(context.Context) (*VerificationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationJob entities.
func (m *VerificationJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *VerificationJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *VerificationJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *VerificationJobMutation) ResetFileID() {
	m.file = nil
}

// SetProfileID sets the "profile_id" field.
func (m *VerificationJobMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *VerificationJobMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *VerificationJobMutation) ResetProfileID() {
	m.profile = nil
}

// SetCredentialID sets the "credential_id" field.
func (m *VerificationJobMutation) SetCredentialID(u uuid.UUID) {
	m.credential = &u
}

// CredentialID returns the value of the "credential_id" field in the mutation.
func (m *VerificationJobMutation) CredentialID() (r uuid.UUID, exists bool) {
	v := m.credential
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialID returns the old "credential_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldCredentialID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialID: %w", err)
	}
	return oldValue.CredentialID, nil
}

// ClearCredentialID clears the value of the "credential_id" field.
func (m *VerificationJobMutation) ClearCredentialID() {
	m.credential = nil
	m.clearedFields[verificationjob.FieldCredentialID] = struct{}{}
}

// CredentialIDCleared returns if the "credential_id" field was cleared in this mutation.
func (m *VerificationJobMutation) CredentialIDCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldCredentialID]
	return ok
}

// ResetCredentialID resets all changes to the "credential_id" field.
func (m *VerificationJobMutation) ResetCredentialID() {
	m.credential = nil
	delete(m.clearedFields, verificationjob.FieldCredentialID)
}

// SetFormat sets the "format" field.
func (m *VerificationJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *VerificationJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *VerificationJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *VerificationJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *VerificationJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *VerificationJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *VerificationJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *VerificationJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *VerificationJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[verificationjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *VerificationJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *VerificationJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, verificationjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *VerificationJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *VerificationJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[verificationjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *VerificationJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, verificationjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *VerificationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *VerificationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *VerificationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[verificationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *VerificationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *VerificationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, verificationjob.FieldErrorMessage)
}

// SetExtractedText sets the "extracted_text" field.
func (m *VerificationJobMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *VerificationJobMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *VerificationJobMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[verificationjob.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *VerificationJobMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *VerificationJobMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, verificationjob.FieldExtractedText)
}

// SetExtractMethod sets the "extract_method" field.
func (m *VerificationJobMutation) SetExtractMethod(s string) {
	m.extract_method = &s
}

// ExtractMethod returns the value of the "extract_method" field in the mutation.
func (m *VerificationJobMutation) ExtractMethod() (r string, exists bool) {
	v := m.extract_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractMethod returns the old "extract_method" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldExtractMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractMethod: %w", err)
	}
	return oldValue.ExtractMethod, nil
}

// ClearExtractMethod clears the value of the "extract_method" field.
func (m *VerificationJobMutation) ClearExtractMethod() {
	m.extract_method = nil
	m.clearedFields[verificationjob.FieldExtractMethod] = struct{}{}
}

// ExtractMethodCleared returns if the "extract_method" field was cleared in this mutation.
func (m *VerificationJobMutation) ExtractMethodCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldExtractMethod]
	return ok
}

// ResetExtractMethod resets all changes to the "extract_method" field.
func (m *VerificationJobMutation) ResetExtractMethod() {
	m.extract_method = nil
	delete(m.clearedFields, verificationjob.FieldExtractMethod)
}

// SetExtractPages sets the "extract_pages" field.
func (m *VerificationJobMutation) SetExtractPages(i int) {
	m.extract_pages = &i
	m.addextract_pages = nil
}

// ExtractPages returns the value of the "extract_pages" field in the mutation.
func (m *VerificationJobMutation) ExtractPages() (r int, exists bool) {
	v := m.extract_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractPages returns the old "extract_pages" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldExtractPages(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractPages: %w", err)
	}
	return oldValue.ExtractPages, nil
}

// AddExtractPages adds i to the "extract_pages" field.
func (m *VerificationJobMutation) AddExtractPages(i int) {
	if m.addextract_pages != nil {
		*m.addextract_pages += i
	} else {
		m.addextract_pages = &i
	}
}

// AddedExtractPages returns the value that was added to the "extract_pages" field in this mutation.
func (m *VerificationJobMutation) AddedExtractPages() (r int, exists bool) {
	v := m.addextract_pages
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractPages clears the value of the "extract_pages" field.
func (m *VerificationJobMutation) ClearExtractPages() {
	m.extract_pages = nil
	m.addextract_pages = nil
	m.clearedFields[verificationjob.FieldExtractPages] = struct{}{}
}

// ExtractPagesCleared returns if the "extract_pages" field was cleared in this mutation.
func (m *VerificationJobMutation) ExtractPagesCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldExtractPages]
	return ok
}

// ResetExtractPages resets all changes to the "extract_pages" field.
func (m *VerificationJobMutation) ResetExtractPages() {
	m.extract_pages = nil
	m.addextract_pages = nil
	delete(m.clearedFields, verificationjob.FieldExtractPages)
}

// SetExtractDurationMs sets the "extract_duration_ms" field.
func (m *VerificationJobMutation) SetExtractDurationMs(i int64) {
	m.extract_duration_ms = &i
	m.addextract_duration_ms = nil
}

// ExtractDurationMs returns the value of the "extract_duration_ms" field in the mutation.
func (m *VerificationJobMutation) ExtractDurationMs() (r int64, exists bool) {
	v := m.extract_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractDurationMs returns the old "extract_duration_ms" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldExtractDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractDurationMs: %w", err)
	}
	return oldValue.ExtractDurationMs, nil
}

// AddExtractDurationMs adds i to the "extract_duration_ms" field.
func (m *VerificationJobMutation) AddExtractDurationMs(i int64) {
	if m.addextract_duration_ms != nil {
		*m.addextract_duration_ms += i
	} else {
		m.addextract_duration_ms = &i
	}
}

// AddedExtractDurationMs returns the value that was added to the "extract_duration_ms" field in this mutation.
func (m *VerificationJobMutation) AddedExtractDurationMs() (r int64, exists bool) {
	v := m.addextract_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractDurationMs clears the value of the "extract_duration_ms" field.
func (m *VerificationJobMutation) ClearExtractDurationMs() {
	m.extract_duration_ms = nil
	m.addextract_duration_ms = nil
	m.clearedFields[verificationjob.FieldExtractDurationMs] = struct{}{}
}

// ExtractDurationMsCleared returns if the "extract_duration_ms" field was cleared in this mutation.
func (m *VerificationJobMutation) ExtractDurationMsCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldExtractDurationMs]
	return ok
}

// ResetExtractDurationMs resets all changes to the "extract_duration_ms" field.
func (m *VerificationJobMutation) ResetExtractDurationMs() {
	m.extract_duration_ms = nil
	m.addextract_duration_ms = nil
	delete(m.clearedFields, verificationjob.FieldExtractDurationMs)
}

// ClearFile clears the "file" edge to the CredentialFile entity.
func (m *VerificationJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[verificationjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the CredentialFile entity was cleared.
func (m *VerificationJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *VerificationJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *VerificationJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *VerificationJobMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[verificationjob.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *VerificationJobMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *VerificationJobMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *VerificationJobMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (m *VerificationJobMutation) ClearCredential() {
	m.clearedcredential = true
	m.clearedFields[verificationjob.FieldCredentialID] = struct{}{}
}

// CredentialCleared reports if the "credential" edge to the Credential entity was cleared.
func (m *VerificationJobMutation) CredentialCleared() bool {
	return m.CredentialIDCleared() || m.clearedcredential
}

// CredentialIDs returns the "credential" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CredentialID instead. It exists only for internal usage by the builders.
func (m *VerificationJobMutation) CredentialIDs() (ids []uuid.UUID) {
	if id := m.credential; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCredential resets all changes to the "credential" edge.
func (m *VerificationJobMutation) ResetCredential() {
	m.credential = nil
	m.clearedcredential = false
}

// Where appends a list predicates to the VerificationJobMutation builder.
func (m *VerificationJobMutation) Where(ps ...predicate.VerificationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationJob).
func (m *VerificationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.file != nil {
		fields = append(fields, verificationjob.FieldFileID)
	}
	if m.profile != nil {
		fields = append(fields, verificationjob.FieldProfileID)
	}
	if m.credential != nil {
		fields = append(fields, verificationjob.FieldCredentialID)
	}
	if m.format != nil {
		fields = append(fields, verificationjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, verificationjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, verificationjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	if m.extracted_text != nil {
		fields = append(fields, verificationjob.FieldExtractedText)
	}
	if m.extract_method != nil {
		fields = append(fields, verificationjob.FieldExtractMethod)
	}
	if m.extract_pages != nil {
		fields = append(fields, verificationjob.FieldExtractPages)
	}
	if m.extract_duration_ms != nil {
		fields = append(fields, verificationjob.FieldExtractDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldFileID:
		return m.FileID()
	case verificationjob.FieldProfileID:
		return m.ProfileID()
	case verificationjob.FieldCredentialID:
		return m.CredentialID()
	case verificationjob.FieldFormat:
		return m.Format()
	case verificationjob.FieldStartedAt:
		return m.StartedAt()
	case verificationjob.FieldFinishedAt:
		return m.FinishedAt()
	case verificationjob.FieldStatus:
		return m.Status()
	case verificationjob.FieldErrorMessage:
		return m.ErrorMessage()
	case verificationjob.FieldExtractedText:
		return m.ExtractedText()
	case verificationjob.FieldExtractMethod:
		return m.ExtractMethod()
	case verificationjob.FieldExtractPages:
		return m.ExtractPages()
	case verificationjob.FieldExtractDurationMs:
		return m.ExtractDurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationjob.FieldFileID:
		return m.OldFileID(ctx)
	case verificationjob.FieldProfileID:
		return m.OldProfileID(ctx)
	case verificationjob.FieldCredentialID:
		return m.OldCredentialID(ctx)
	case verificationjob.FieldFormat:
		return m.OldFormat(ctx)
	case verificationjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case verificationjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case verificationjob.FieldStatus:
		return m.OldStatus(ctx)
	case verificationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case verificationjob.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case verificationjob.FieldExtractMethod:
		return m.OldExtractMethod(ctx)
	case verificationjob.FieldExtractPages:
		return m.OldExtractPages(ctx)
	case verificationjob.FieldExtractDurationMs:
		return m.OldExtractDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case verificationjob.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case verificationjob.FieldCredentialID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialID(v)
		return nil
	case verificationjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case verificationjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case verificationjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case verificationjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case verificationjob.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case verificationjob.FieldExtractMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractMethod(v)
		return nil
	case verificationjob.FieldExtractPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractPages(v)
		return nil
	case verificationjob.FieldExtractDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationJobMutation) AddedFields() []string {
	var fields []string
	if m.addextract_pages != nil {
		fields = append(fields, verificationjob.FieldExtractPages)
	}
	if m.addextract_duration_ms != nil {
		fields = append(fields, verificationjob.FieldExtractDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldExtractPages:
		return m.AddedExtractPages()
	case verificationjob.FieldExtractDurationMs:
		return m.AddedExtractDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldExtractPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractPages(v)
		return nil
	case verificationjob.FieldExtractDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationjob.FieldCredentialID) {
		fields = append(fields, verificationjob.FieldCredentialID)
	}
	if m.FieldCleared(verificationjob.FieldFinishedAt) {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.FieldCleared(verificationjob.FieldStatus) {
		fields = append(fields, verificationjob.FieldStatus)
	}
	if m.FieldCleared(verificationjob.FieldErrorMessage) {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	if m.FieldCleared(verificationjob.FieldExtractedText) {
		fields = append(fields, verificationjob.FieldExtractedText)
	}
	if m.FieldCleared(verificationjob.FieldExtractMethod) {
		fields = append(fields, verificationjob.FieldExtractMethod)
	}
	if m.FieldCleared(verificationjob.FieldExtractPages) {
		fields = append(fields, verificationjob.FieldExtractPages)
	}
	if m.FieldCleared(verificationjob.FieldExtractDurationMs) {
		fields = append(fields, verificationjob.FieldExtractDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationJobMutation) ClearField(name string) error {
	switch name {
	case verificationjob.FieldCredentialID:
		m.ClearCredentialID()
		return nil
	case verificationjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case verificationjob.FieldStatus:
		m.ClearStatus()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case verificationjob.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case verificationjob.FieldExtractMethod:
		m.ClearExtractMethod()
		return nil
	case verificationjob.FieldExtractPages:
		m.ClearExtractPages()
		return nil
	case verificationjob.FieldExtractDurationMs:
		m.ClearExtractDurationMs()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationJobMutation) ResetField(name string) error {
	switch name {
	case verificationjob.FieldFileID:
		m.ResetFileID()
		return nil
	case verificationjob.FieldProfileID:
		m.ResetProfileID()
		return nil
	case verificationjob.FieldCredentialID:
		m.ResetCredentialID()
		return nil
	case verificationjob.FieldFormat:
		m.ResetFormat()
		return nil
	case verificationjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case verificationjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case verificationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case verificationjob.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case verificationjob.FieldExtractMethod:
		m.ResetExtractMethod()
		return nil
	case verificationjob.FieldExtractPages:
		m.ResetExtractPages()
		return nil
	case verificationjob.FieldExtractDurationMs:
		m.ResetExtractDurationMs()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.file != nil {
		edges = append(edges, verificationjob.EdgeFile)
	}
	if m.profile != nil {
		edges = append(edges, verificationjob.EdgeProfile)
	}
	if m.credential != nil {
		edges = append(edges, verificationjob.EdgeCredential)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case verificationjob.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case verificationjob.EdgeCredential:
		if id := m.credential; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfile {
		edges = append(edges, verificationjob.EdgeFile)
	}
	if m.clearedprofile {
		edges = append(edges, verificationjob.EdgeProfile)
	}
	if m.clearedcredential {
		edges = append(edges, verificationjob.EdgeCredential)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationJobMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationjob.EdgeFile:
		return m.clearedfile
	case verificationjob.EdgeProfile:
		return m.clearedprofile
	case verificationjob.EdgeCredential:
		return m.clearedcredential
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationJobMutation) ClearEdge(name string) error {
	switch name {
	case verificationjob.EdgeFile:
		m.ClearFile()
		return nil
	case verificationjob.EdgeProfile:
		m.ClearProfile()
		return nil
	case verificationjob.EdgeCredential:
		m.ClearCredential()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationJobMutation) ResetEdge(name string) error {
	switch name {
	case verificationjob.EdgeFile:
		m.ResetFile()
		return nil
	case verificationjob.EdgeProfile:
		m.ResetProfile()
		return nil
	case verificationjob.EdgeCredential:
		m.ResetCredential()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob edge %s", name)
}
