// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/gen/ent/credentialfile"
	"github.com/microcred/credential-vault/gen/ent/profile"
	"github.com/microcred/credential-vault/gen/ent/verificationjob"
)

// VerificationJob is the model entity for the VerificationJob schema.
type VerificationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// CredentialID holds the value of the "credential_id" field.
	CredentialID *uuid.UUID `json:"credential_id,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// ExtractMethod holds the value of the "extract_method" field.
	ExtractMethod *string `json:"extract_method,omitempty"`
	// ExtractPages holds the value of the "extract_pages" field.
	ExtractPages *int `json:"extract_pages,omitempty"`
	// ExtractDurationMs holds the value of the "extract_duration_ms" field.
	ExtractDurationMs *int64 `json:"extract_duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationJobQuery when eager-loading is set.
	Edges        VerificationJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationJobEdges holds the relations/edges for other nodes in the graph.
type VerificationJobEdges struct {
	// File holds the value of the file edge.
	File *CredentialFile `json:"file,omitempty"`
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Credential holds the value of the credential edge.
	Credential *Credential `json:"credential,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationJobEdges) FileOrErr() (*CredentialFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: credentialfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationJobEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// CredentialOrErr returns the Credential value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationJobEdges) CredentialOrErr() (*Credential, error) {
	if e.Credential != nil {
		return e.Credential, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: credential.Label}
	}
	return nil, &NotLoadedError{edge: "credential"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldCredentialID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case verificationjob.FieldExtractPages, verificationjob.FieldExtractDurationMs:
			values[i] = new(sql.NullInt64)
		case verificationjob.FieldFormat, verificationjob.FieldStatus, verificationjob.FieldErrorMessage, verificationjob.FieldExtractedText, verificationjob.FieldExtractMethod:
			values[i] = new(sql.NullString)
		case verificationjob.FieldStartedAt, verificationjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case verificationjob.FieldID, verificationjob.FieldFileID, verificationjob.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationJob fields.
func (_m *VerificationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationjob.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case verificationjob.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case verificationjob.FieldCredentialID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field credential_id", values[i])
			} else if value.Valid {
				_m.CredentialID = new(uuid.UUID)
				*_m.CredentialID = *value.S.(*uuid.UUID)
			}
		case verificationjob.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case verificationjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case verificationjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case verificationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case verificationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case verificationjob.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case verificationjob.FieldExtractMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extract_method", values[i])
			} else if value.Valid {
				_m.ExtractMethod = new(string)
				*_m.ExtractMethod = value.String
			}
		case verificationjob.FieldExtractPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extract_pages", values[i])
			} else if value.Valid {
				_m.ExtractPages = new(int)
				*_m.ExtractPages = int(value.Int64)
			}
		case verificationjob.FieldExtractDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extract_duration_ms", values[i])
			} else if value.Valid {
				_m.ExtractDurationMs = new(int64)
				*_m.ExtractDurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationJob.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the VerificationJob entity.
func (_m *VerificationJob) QueryFile() *CredentialFileQuery {
	return NewVerificationJobClient(_m.config).QueryFile(_m)
}

// QueryProfile queries the "profile" edge of the VerificationJob entity.
func (_m *VerificationJob) QueryProfile() *ProfileQuery {
	return NewVerificationJobClient(_m.config).QueryProfile(_m)
}

// QueryCredential queries the "credential" edge of the VerificationJob entity.
func (_m *VerificationJob) QueryCredential() *CredentialQuery {
	return NewVerificationJobClient(_m.config).QueryCredential(_m)
}

// Update returns a builder for updating this VerificationJob.
// Note that you need to call VerificationJob.Unwrap() before calling this method if this VerificationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationJob) Update() *VerificationJobUpdateOne {
	return NewVerificationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationJob) Unwrap() *VerificationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationJob) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.CredentialID; v != nil {
		builder.WriteString("credential_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractMethod; v != nil {
		builder.WriteString("extract_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractPages; v != nil {
		builder.WriteString("extract_pages=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractDurationMs; v != nil {
		builder.WriteString("extract_duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationJobs is a parsable slice of VerificationJob.
type VerificationJobs []*VerificationJob
