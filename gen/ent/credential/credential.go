// Code generated by ent, DO NOT EDIT.

package credential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the credential type in the database.
	Label = "credential"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldCertificateName holds the string denoting the certificate_name field in the database.
	FieldCertificateName = "certificate_name"
	// FieldIssuer holds the string denoting the issuer field in the database.
	FieldIssuer = "issuer"
	// FieldCertificateNumber holds the string denoting the certificate_number field in the database.
	FieldCertificateNumber = "certificate_number"
	// FieldCertificateURL holds the string denoting the certificate_url field in the database.
	FieldCertificateURL = "certificate_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVerificationNote holds the string denoting the verification_note field in the database.
	FieldVerificationNote = "verification_note"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldMatched holds the string denoting the matched field in the database.
	FieldMatched = "matched"
	// FieldMatchReason holds the string denoting the match_reason field in the database.
	FieldMatchReason = "match_reason"
	// FieldCorroborationOutcome holds the string denoting the corroboration_outcome field in the database.
	FieldCorroborationOutcome = "corroboration_outcome"
	// FieldCorroborationNote holds the string denoting the corroboration_note field in the database.
	FieldCorroborationNote = "corroboration_note"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldAnchorState holds the string denoting the anchor_state field in the database.
	FieldAnchorState = "anchor_state"
	// FieldAnchorTxRef holds the string denoting the anchor_tx_ref field in the database.
	FieldAnchorTxRef = "anchor_tx_ref"
	// FieldAnchorError holds the string denoting the anchor_error field in the database.
	FieldAnchorError = "anchor_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the credential in the database.
	Table = "credentials"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "credentials"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "credentials"
	// FileInverseTable is the table name for the CredentialFile entity.
	// It exists in this package in order to avoid circular dependency with the "credentialfile" package.
	FileInverseTable = "credential_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "verification_job"
	// JobsInverseTable is the table name for the VerificationJob entity.
	// It exists in this package in order to avoid circular dependency with the "verificationjob" package.
	JobsInverseTable = "verification_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "credential_id"
)

// Columns holds all SQL columns for credential fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldFileID,
	FieldCertificateName,
	FieldIssuer,
	FieldCertificateNumber,
	FieldCertificateURL,
	FieldStatus,
	FieldVerificationNote,
	FieldExtractedText,
	FieldMatched,
	FieldMatchReason,
	FieldCorroborationOutcome,
	FieldCorroborationNote,
	FieldSkills,
	FieldLevel,
	FieldFingerprint,
	FieldAnchorState,
	FieldAnchorTxRef,
	FieldAnchorError,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CertificateNameValidator is a validator for the "certificate_name" field. It is called by the builders before save.
	CertificateNameValidator func(string) error
	// IssuerValidator is a validator for the "issuer" field. It is called by the builders before save.
	IssuerValidator func(string) error
	// CertificateNumberValidator is a validator for the "certificate_number" field. It is called by the builders before save.
	CertificateNumberValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultMatched holds the default value on creation for the "matched" field.
	DefaultMatched bool
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
	// DefaultAnchorState holds the default value on creation for the "anchor_state" field.
	DefaultAnchorState string
	// AnchorStateValidator is a validator for the "anchor_state" field. It is called by the builders before save.
	AnchorStateValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Credential queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByCertificateName orders the results by the certificate_name field.
func ByCertificateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertificateName, opts...).ToFunc()
}

// ByIssuer orders the results by the issuer field.
func ByIssuer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuer, opts...).ToFunc()
}

// ByCertificateNumber orders the results by the certificate_number field.
func ByCertificateNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertificateNumber, opts...).ToFunc()
}

// ByCertificateURL orders the results by the certificate_url field.
func ByCertificateURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertificateURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVerificationNote orders the results by the verification_note field.
func ByVerificationNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationNote, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByMatched orders the results by the matched field.
func ByMatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatched, opts...).ToFunc()
}

// ByMatchReason orders the results by the match_reason field.
func ByMatchReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchReason, opts...).ToFunc()
}

// ByCorroborationOutcome orders the results by the corroboration_outcome field.
func ByCorroborationOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorroborationOutcome, opts...).ToFunc()
}

// ByCorroborationNote orders the results by the corroboration_note field.
func ByCorroborationNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorroborationNote, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByAnchorState orders the results by the anchor_state field.
func ByAnchorState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnchorState, opts...).ToFunc()
}

// ByAnchorTxRef orders the results by the anchor_tx_ref field.
func ByAnchorTxRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnchorTxRef, opts...).ToFunc()
}

// ByAnchorError orders the results by the anchor_error field.
func ByAnchorError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnchorError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
