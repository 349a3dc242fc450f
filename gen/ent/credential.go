// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/gen/ent/credentialfile"
	"github.com/microcred/credential-vault/gen/ent/profile"
)

// Credential is the model entity for the Credential schema.
type Credential struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// CertificateName holds the value of the "certificate_name" field.
	CertificateName string `json:"certificate_name,omitempty"`
	// Issuer holds the value of the "issuer" field.
	Issuer string `json:"issuer,omitempty"`
	// CertificateNumber holds the value of the "certificate_number" field.
	CertificateNumber string `json:"certificate_number,omitempty"`
	// CertificateURL holds the value of the "certificate_url" field.
	CertificateURL *string `json:"certificate_url,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// VerificationNote holds the value of the "verification_note" field.
	VerificationNote string `json:"verification_note,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText string `json:"extracted_text,omitempty"`
	// Matched holds the value of the "matched" field.
	Matched bool `json:"matched,omitempty"`
	// MatchReason holds the value of the "match_reason" field.
	MatchReason string `json:"match_reason,omitempty"`
	// CorroborationOutcome holds the value of the "corroboration_outcome" field.
	CorroborationOutcome *string `json:"corroboration_outcome,omitempty"`
	// CorroborationNote holds the value of the "corroboration_note" field.
	CorroborationNote *string `json:"corroboration_note,omitempty"`
	// Skills holds the value of the "skills" field.
	Skills []string `json:"skills,omitempty"`
	// Level holds the value of the "level" field.
	Level int `json:"level,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint *string `json:"fingerprint,omitempty"`
	// AnchorState holds the value of the "anchor_state" field.
	AnchorState string `json:"anchor_state,omitempty"`
	// AnchorTxRef holds the value of the "anchor_tx_ref" field.
	AnchorTxRef *string `json:"anchor_tx_ref,omitempty"`
	// AnchorError holds the value of the "anchor_error" field.
	AnchorError *string `json:"anchor_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CredentialQuery when eager-loading is set.
	Edges        CredentialEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CredentialEdges holds the relations/edges for other nodes in the graph.
type CredentialEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// File holds the value of the file edge.
	File *CredentialFile `json:"file,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*VerificationJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CredentialEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CredentialEdges) FileOrErr() (*CredentialFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: credentialfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e CredentialEdges) JobsOrErr() ([]*VerificationJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Credential) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case credential.FieldSkills:
			values[i] = new([]byte)
		case credential.FieldMatched:
			values[i] = new(sql.NullBool)
		case credential.FieldLevel:
			values[i] = new(sql.NullInt64)
		case credential.FieldCertificateName, credential.FieldIssuer, credential.FieldCertificateNumber, credential.FieldCertificateURL, credential.FieldStatus, credential.FieldVerificationNote, credential.FieldExtractedText, credential.FieldMatchReason, credential.FieldCorroborationOutcome, credential.FieldCorroborationNote, credential.FieldFingerprint, credential.FieldAnchorState, credential.FieldAnchorTxRef, credential.FieldAnchorError:
			values[i] = new(sql.NullString)
		case credential.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case credential.FieldID, credential.FieldProfileID, credential.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Credential fields.
func (_m *Credential) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case credential.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case credential.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case credential.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case credential.FieldCertificateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field certificate_name", values[i])
			} else if value.Valid {
				_m.CertificateName = value.String
			}
		case credential.FieldIssuer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuer", values[i])
			} else if value.Valid {
				_m.Issuer = value.String
			}
		case credential.FieldCertificateNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field certificate_number", values[i])
			} else if value.Valid {
				_m.CertificateNumber = value.String
			}
		case credential.FieldCertificateURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field certificate_url", values[i])
			} else if value.Valid {
				_m.CertificateURL = new(string)
				*_m.CertificateURL = value.String
			}
		case credential.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case credential.FieldVerificationNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_note", values[i])
			} else if value.Valid {
				_m.VerificationNote = value.String
			}
		case credential.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = value.String
			}
		case credential.FieldMatched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field matched", values[i])
			} else if value.Valid {
				_m.Matched = value.Bool
			}
		case credential.FieldMatchReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_reason", values[i])
			} else if value.Valid {
				_m.MatchReason = value.String
			}
		case credential.FieldCorroborationOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corroboration_outcome", values[i])
			} else if value.Valid {
				_m.CorroborationOutcome = new(string)
				*_m.CorroborationOutcome = value.String
			}
		case credential.FieldCorroborationNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corroboration_note", values[i])
			} else if value.Valid {
				_m.CorroborationNote = new(string)
				*_m.CorroborationNote = value.String
			}
		case credential.FieldSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Skills); err != nil {
					return fmt.Errorf("unmarshal field skills: %w", err)
				}
			}
		case credential.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case credential.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = new(string)
				*_m.Fingerprint = value.String
			}
		case credential.FieldAnchorState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anchor_state", values[i])
			} else if value.Valid {
				_m.AnchorState = value.String
			}
		case credential.FieldAnchorTxRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anchor_tx_ref", values[i])
			} else if value.Valid {
				_m.AnchorTxRef = new(string)
				*_m.AnchorTxRef = value.String
			}
		case credential.FieldAnchorError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anchor_error", values[i])
			} else if value.Valid {
				_m.AnchorError = new(string)
				*_m.AnchorError = value.String
			}
		case credential.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Credential.
// This includes values selected through modifiers, order, etc.
func (_m *Credential) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the Credential entity.
func (_m *Credential) QueryProfile() *ProfileQuery {
	return NewCredentialClient(_m.config).QueryProfile(_m)
}

// QueryFile queries the "file" edge of the Credential entity.
func (_m *Credential) QueryFile() *CredentialFileQuery {
	return NewCredentialClient(_m.config).QueryFile(_m)
}

// QueryJobs queries the "jobs" edge of the Credential entity.
func (_m *Credential) QueryJobs() *VerificationJobQuery {
	return NewCredentialClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Credential.
// Note that you need to call Credential.Unwrap() before calling this method if this Credential
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Credential) Update() *CredentialUpdateOne {
	return NewCredentialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Credential entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Credential) Unwrap() *Credential {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Credential is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Credential) String() string {
	var builder strings.Builder
	builder.WriteString("Credential(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("certificate_name=")
	builder.WriteString(_m.CertificateName)
	builder.WriteString(", ")
	builder.WriteString("issuer=")
	builder.WriteString(_m.Issuer)
	builder.WriteString(", ")
	builder.WriteString("certificate_number=")
	builder.WriteString(_m.CertificateNumber)
	builder.WriteString(", ")
	if v := _m.CertificateURL; v != nil {
		builder.WriteString("certificate_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("verification_note=")
	builder.WriteString(_m.VerificationNote)
	builder.WriteString(", ")
	builder.WriteString("extracted_text=")
	builder.WriteString(_m.ExtractedText)
	builder.WriteString(", ")
	builder.WriteString("matched=")
	builder.WriteString(fmt.Sprintf("%v", _m.Matched))
	builder.WriteString(", ")
	builder.WriteString("match_reason=")
	builder.WriteString(_m.MatchReason)
	builder.WriteString(", ")
	if v := _m.CorroborationOutcome; v != nil {
		builder.WriteString("corroboration_outcome=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CorroborationNote; v != nil {
		builder.WriteString("corroboration_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skills))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	if v := _m.Fingerprint; v != nil {
		builder.WriteString("fingerprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("anchor_state=")
	builder.WriteString(_m.AnchorState)
	builder.WriteString(", ")
	if v := _m.AnchorTxRef; v != nil {
		builder.WriteString("anchor_tx_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnchorError; v != nil {
		builder.WriteString("anchor_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Credentials is a parsable slice of Credential.
type Credentials []*Credential
