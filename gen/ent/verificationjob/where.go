// Code generated by ent, DO NOT EDIT.

package verificationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFileID, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldProfileID, v))
}

// CredentialID applies equality check predicate on the "credential_id" field. It's identical to CredentialIDEQ.
func CredentialID(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCredentialID, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFormat, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractMethod applies equality check predicate on the "extract_method" field. It's identical to ExtractMethodEQ.
func ExtractMethod(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractMethod, v))
}

// ExtractPages applies equality check predicate on the "extract_pages" field. It's identical to ExtractPagesEQ.
func ExtractPages(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractPages, v))
}

// ExtractDurationMs applies equality check predicate on the "extract_duration_ms" field. It's identical to ExtractDurationMsEQ.
func ExtractDurationMs(v int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractDurationMs, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldFileID, vs...))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldProfileID, vs...))
}

// CredentialIDEQ applies the EQ predicate on the "credential_id" field.
func CredentialIDEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialIDNEQ applies the NEQ predicate on the "credential_id" field.
func CredentialIDNEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldCredentialID, v))
}

// CredentialIDIn applies the In predicate on the "credential_id" field.
func CredentialIDIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldCredentialID, vs...))
}

// CredentialIDNotIn applies the NotIn predicate on the "credential_id" field.
func CredentialIDNotIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldCredentialID, vs...))
}

// CredentialIDIsNil applies the IsNil predicate on the "credential_id" field.
func CredentialIDIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldCredentialID))
}

// CredentialIDNotNil applies the NotNil predicate on the "credential_id" field.
func CredentialIDNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldCredentialID))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldFormat, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextIsNil applies the IsNil predicate on the "extracted_text" field.
func ExtractedTextIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldExtractedText))
}

// ExtractedTextNotNil applies the NotNil predicate on the "extracted_text" field.
func ExtractedTextNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldExtractedText))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldExtractedText, v))
}

// ExtractMethodEQ applies the EQ predicate on the "extract_method" field.
func ExtractMethodEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractMethod, v))
}

// ExtractMethodNEQ applies the NEQ predicate on the "extract_method" field.
func ExtractMethodNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldExtractMethod, v))
}

// ExtractMethodIn applies the In predicate on the "extract_method" field.
func ExtractMethodIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldExtractMethod, vs...))
}

// ExtractMethodNotIn applies the NotIn predicate on the "extract_method" field.
func ExtractMethodNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldExtractMethod, vs...))
}

// ExtractMethodGT applies the GT predicate on the "extract_method" field.
func ExtractMethodGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldExtractMethod, v))
}

// ExtractMethodGTE applies the GTE predicate on the "extract_method" field.
func ExtractMethodGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldExtractMethod, v))
}

// ExtractMethodLT applies the LT predicate on the "extract_method" field.
func ExtractMethodLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldExtractMethod, v))
}

// ExtractMethodLTE applies the LTE predicate on the "extract_method" field.
func ExtractMethodLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldExtractMethod, v))
}

// ExtractMethodContains applies the Contains predicate on the "extract_method" field.
func ExtractMethodContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldExtractMethod, v))
}

// ExtractMethodHasPrefix applies the HasPrefix predicate on the "extract_method" field.
func ExtractMethodHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldExtractMethod, v))
}

// ExtractMethodHasSuffix applies the HasSuffix predicate on the "extract_method" field.
func ExtractMethodHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldExtractMethod, v))
}

// ExtractMethodIsNil applies the IsNil predicate on the "extract_method" field.
func ExtractMethodIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldExtractMethod))
}

// ExtractMethodNotNil applies the NotNil predicate on the "extract_method" field.
func ExtractMethodNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldExtractMethod))
}

// ExtractMethodEqualFold applies the EqualFold predicate on the "extract_method" field.
func ExtractMethodEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldExtractMethod, v))
}

// ExtractMethodContainsFold applies the ContainsFold predicate on the "extract_method" field.
func ExtractMethodContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldExtractMethod, v))
}

// ExtractPagesEQ applies the EQ predicate on the "extract_pages" field.
func ExtractPagesEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractPages, v))
}

// ExtractPagesNEQ applies the NEQ predicate on the "extract_pages" field.
func ExtractPagesNEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldExtractPages, v))
}

// ExtractPagesIn applies the In predicate on the "extract_pages" field.
func ExtractPagesIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldExtractPages, vs...))
}

// ExtractPagesNotIn applies the NotIn predicate on the "extract_pages" field.
func ExtractPagesNotIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldExtractPages, vs...))
}

// ExtractPagesGT applies the GT predicate on the "extract_pages" field.
func ExtractPagesGT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldExtractPages, v))
}

// ExtractPagesGTE applies the GTE predicate on the "extract_pages" field.
func ExtractPagesGTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldExtractPages, v))
}

// ExtractPagesLT applies the LT predicate on the "extract_pages" field.
func ExtractPagesLT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldExtractPages, v))
}

// ExtractPagesLTE applies the LTE predicate on the "extract_pages" field.
func ExtractPagesLTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldExtractPages, v))
}

// ExtractPagesIsNil applies the IsNil predicate on the "extract_pages" field.
func ExtractPagesIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldExtractPages))
}

// ExtractPagesNotNil applies the NotNil predicate on the "extract_pages" field.
func ExtractPagesNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldExtractPages))
}

// ExtractDurationMsEQ applies the EQ predicate on the "extract_duration_ms" field.
func ExtractDurationMsEQ(v int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldExtractDurationMs, v))
}

// ExtractDurationMsNEQ applies the NEQ predicate on the "extract_duration_ms" field.
func ExtractDurationMsNEQ(v int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldExtractDurationMs, v))
}

// ExtractDurationMsIn applies the In predicate on the "extract_duration_ms" field.
func ExtractDurationMsIn(vs ...int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldExtractDurationMs, vs...))
}

// ExtractDurationMsNotIn applies the NotIn predicate on the "extract_duration_ms" field.
func ExtractDurationMsNotIn(vs ...int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldExtractDurationMs, vs...))
}

// ExtractDurationMsGT applies the GT predicate on the "extract_duration_ms" field.
func ExtractDurationMsGT(v int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldExtractDurationMs, v))
}

// ExtractDurationMsGTE applies the GTE predicate on the "extract_duration_ms" field.
func ExtractDurationMsGTE(v int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldExtractDurationMs, v))
}

// ExtractDurationMsLT applies the LT predicate on the "extract_duration_ms" field.
func ExtractDurationMsLT(v int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldExtractDurationMs, v))
}

// ExtractDurationMsLTE applies the LTE predicate on the "extract_duration_ms" field.
func ExtractDurationMsLTE(v int64) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldExtractDurationMs, v))
}

// ExtractDurationMsIsNil applies the IsNil predicate on the "extract_duration_ms" field.
func ExtractDurationMsIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldExtractDurationMs))
}

// ExtractDurationMsNotNil applies the NotNil predicate on the "extract_duration_ms" field.
func ExtractDurationMsNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldExtractDurationMs))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.CredentialFile) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCredential applies the HasEdge predicate on the "credential" edge.
func HasCredential() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CredentialTable, CredentialColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCredentialWith applies the HasEdge predicate on the "credential" edge with a given conditions (other predicates).
func HasCredentialWith(preds ...predicate.Credential) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newCredentialStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.NotPredicates(p))
}
