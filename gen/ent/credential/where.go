// Code generated by ent, DO NOT EDIT.

package credential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldProfileID, v))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldFileID, v))
}

// CertificateName applies equality check predicate on the "certificate_name" field. It's identical to CertificateNameEQ.
func CertificateName(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCertificateName, v))
}

// Issuer applies equality check predicate on the "issuer" field. It's identical to IssuerEQ.
func Issuer(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldIssuer, v))
}

// CertificateNumber applies equality check predicate on the "certificate_number" field. It's identical to CertificateNumberEQ.
func CertificateNumber(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCertificateNumber, v))
}

// CertificateURL applies equality check predicate on the "certificate_url" field. It's identical to CertificateURLEQ.
func CertificateURL(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCertificateURL, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldStatus, v))
}

// VerificationNote applies equality check predicate on the "verification_note" field. It's identical to VerificationNoteEQ.
func VerificationNote(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldVerificationNote, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldExtractedText, v))
}

// Matched applies equality check predicate on the "matched" field. It's identical to MatchedEQ.
func Matched(v bool) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldMatched, v))
}

// MatchReason applies equality check predicate on the "match_reason" field. It's identical to MatchReasonEQ.
func MatchReason(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldMatchReason, v))
}

// CorroborationOutcome applies equality check predicate on the "corroboration_outcome" field. It's identical to CorroborationOutcomeEQ.
func CorroborationOutcome(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCorroborationOutcome, v))
}

// CorroborationNote applies equality check predicate on the "corroboration_note" field. It's identical to CorroborationNoteEQ.
func CorroborationNote(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCorroborationNote, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldLevel, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldFingerprint, v))
}

// AnchorState applies equality check predicate on the "anchor_state" field. It's identical to AnchorStateEQ.
func AnchorState(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldAnchorState, v))
}

// AnchorTxRef applies equality check predicate on the "anchor_tx_ref" field. It's identical to AnchorTxRefEQ.
func AnchorTxRef(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldAnchorTxRef, v))
}

// AnchorError applies equality check predicate on the "anchor_error" field. It's identical to AnchorErrorEQ.
func AnchorError(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldAnchorError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCreatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldProfileID, vs...))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldFileID, vs...))
}

// CertificateNameEQ applies the EQ predicate on the "certificate_name" field.
func CertificateNameEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCertificateName, v))
}

// CertificateNameNEQ applies the NEQ predicate on the "certificate_name" field.
func CertificateNameNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCertificateName, v))
}

// CertificateNameIn applies the In predicate on the "certificate_name" field.
func CertificateNameIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCertificateName, vs...))
}

// CertificateNameNotIn applies the NotIn predicate on the "certificate_name" field.
func CertificateNameNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCertificateName, vs...))
}

// CertificateNameGT applies the GT predicate on the "certificate_name" field.
func CertificateNameGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCertificateName, v))
}

// CertificateNameGTE applies the GTE predicate on the "certificate_name" field.
func CertificateNameGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCertificateName, v))
}

// CertificateNameLT applies the LT predicate on the "certificate_name" field.
func CertificateNameLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCertificateName, v))
}

// CertificateNameLTE applies the LTE predicate on the "certificate_name" field.
func CertificateNameLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCertificateName, v))
}

// CertificateNameContains applies the Contains predicate on the "certificate_name" field.
func CertificateNameContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldCertificateName, v))
}

// CertificateNameHasPrefix applies the HasPrefix predicate on the "certificate_name" field.
func CertificateNameHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldCertificateName, v))
}

// CertificateNameHasSuffix applies the HasSuffix predicate on the "certificate_name" field.
func CertificateNameHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldCertificateName, v))
}

// CertificateNameEqualFold applies the EqualFold predicate on the "certificate_name" field.
func CertificateNameEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldCertificateName, v))
}

// CertificateNameContainsFold applies the ContainsFold predicate on the "certificate_name" field.
func CertificateNameContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldCertificateName, v))
}

// IssuerEQ applies the EQ predicate on the "issuer" field.
func IssuerEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldIssuer, v))
}

// IssuerNEQ applies the NEQ predicate on the "issuer" field.
func IssuerNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldIssuer, v))
}

// IssuerIn applies the In predicate on the "issuer" field.
func IssuerIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldIssuer, vs...))
}

// IssuerNotIn applies the NotIn predicate on the "issuer" field.
func IssuerNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldIssuer, vs...))
}

// IssuerGT applies the GT predicate on the "issuer" field.
func IssuerGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldIssuer, v))
}

// IssuerGTE applies the GTE predicate on the "issuer" field.
func IssuerGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldIssuer, v))
}

// IssuerLT applies the LT predicate on the "issuer" field.
func IssuerLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldIssuer, v))
}

// IssuerLTE applies the LTE predicate on the "issuer" field.
func IssuerLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldIssuer, v))
}

// IssuerContains applies the Contains predicate on the "issuer" field.
func IssuerContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldIssuer, v))
}

// IssuerHasPrefix applies the HasPrefix predicate on the "issuer" field.
func IssuerHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldIssuer, v))
}

// IssuerHasSuffix applies the HasSuffix predicate on the "issuer" field.
func IssuerHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldIssuer, v))
}

// IssuerEqualFold applies the EqualFold predicate on the "issuer" field.
func IssuerEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldIssuer, v))
}

// IssuerContainsFold applies the ContainsFold predicate on the "issuer" field.
func IssuerContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldIssuer, v))
}

// CertificateNumberEQ applies the EQ predicate on the "certificate_number" field.
func CertificateNumberEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCertificateNumber, v))
}

// CertificateNumberNEQ applies the NEQ predicate on the "certificate_number" field.
func CertificateNumberNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCertificateNumber, v))
}

// CertificateNumberIn applies the In predicate on the "certificate_number" field.
func CertificateNumberIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCertificateNumber, vs...))
}

// CertificateNumberNotIn applies the NotIn predicate on the "certificate_number" field.
func CertificateNumberNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCertificateNumber, vs...))
}

// CertificateNumberGT applies the GT predicate on the "certificate_number" field.
func CertificateNumberGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCertificateNumber, v))
}

// CertificateNumberGTE applies the GTE predicate on the "certificate_number" field.
func CertificateNumberGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCertificateNumber, v))
}

// CertificateNumberLT applies the LT predicate on the "certificate_number" field.
func CertificateNumberLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCertificateNumber, v))
}

// CertificateNumberLTE applies the LTE predicate on the "certificate_number" field.
func CertificateNumberLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCertificateNumber, v))
}

// CertificateNumberContains applies the Contains predicate on the "certificate_number" field.
func CertificateNumberContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldCertificateNumber, v))
}

// CertificateNumberHasPrefix applies the HasPrefix predicate on the "certificate_number" field.
func CertificateNumberHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldCertificateNumber, v))
}

// CertificateNumberHasSuffix applies the HasSuffix predicate on the "certificate_number" field.
func CertificateNumberHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldCertificateNumber, v))
}

// CertificateNumberEqualFold applies the EqualFold predicate on the "certificate_number" field.
func CertificateNumberEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldCertificateNumber, v))
}

// CertificateNumberContainsFold applies the ContainsFold predicate on the "certificate_number" field.
func CertificateNumberContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldCertificateNumber, v))
}

// CertificateURLEQ applies the EQ predicate on the "certificate_url" field.
func CertificateURLEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCertificateURL, v))
}

// CertificateURLNEQ applies the NEQ predicate on the "certificate_url" field.
func CertificateURLNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCertificateURL, v))
}

// CertificateURLIn applies the In predicate on the "certificate_url" field.
func CertificateURLIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCertificateURL, vs...))
}

// CertificateURLNotIn applies the NotIn predicate on the "certificate_url" field.
func CertificateURLNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCertificateURL, vs...))
}

// CertificateURLGT applies the GT predicate on the "certificate_url" field.
func CertificateURLGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCertificateURL, v))
}

// CertificateURLGTE applies the GTE predicate on the "certificate_url" field.
func CertificateURLGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCertificateURL, v))
}

// CertificateURLLT applies the LT predicate on the "certificate_url" field.
func CertificateURLLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCertificateURL, v))
}

// CertificateURLLTE applies the LTE predicate on the "certificate_url" field.
func CertificateURLLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCertificateURL, v))
}

// CertificateURLContains applies the Contains predicate on the "certificate_url" field.
func CertificateURLContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldCertificateURL, v))
}

// CertificateURLHasPrefix applies the HasPrefix predicate on the "certificate_url" field.
func CertificateURLHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldCertificateURL, v))
}

// CertificateURLHasSuffix applies the HasSuffix predicate on the "certificate_url" field.
func CertificateURLHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldCertificateURL, v))
}

// CertificateURLIsNil applies the IsNil predicate on the "certificate_url" field.
func CertificateURLIsNil() predicate.Credential {
	return predicate.Credential(sql.FieldIsNull(FieldCertificateURL))
}

// CertificateURLNotNil applies the NotNil predicate on the "certificate_url" field.
func CertificateURLNotNil() predicate.Credential {
	return predicate.Credential(sql.FieldNotNull(FieldCertificateURL))
}

// CertificateURLEqualFold applies the EqualFold predicate on the "certificate_url" field.
func CertificateURLEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldCertificateURL, v))
}

// CertificateURLContainsFold applies the ContainsFold predicate on the "certificate_url" field.
func CertificateURLContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldCertificateURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldStatus, v))
}

// VerificationNoteEQ applies the EQ predicate on the "verification_note" field.
func VerificationNoteEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldVerificationNote, v))
}

// VerificationNoteNEQ applies the NEQ predicate on the "verification_note" field.
func VerificationNoteNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldVerificationNote, v))
}

// VerificationNoteIn applies the In predicate on the "verification_note" field.
func VerificationNoteIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldVerificationNote, vs...))
}

// VerificationNoteNotIn applies the NotIn predicate on the "verification_note" field.
func VerificationNoteNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldVerificationNote, vs...))
}

// VerificationNoteGT applies the GT predicate on the "verification_note" field.
func VerificationNoteGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldVerificationNote, v))
}

// VerificationNoteGTE applies the GTE predicate on the "verification_note" field.
func VerificationNoteGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldVerificationNote, v))
}

// VerificationNoteLT applies the LT predicate on the "verification_note" field.
func VerificationNoteLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldVerificationNote, v))
}

// VerificationNoteLTE applies the LTE predicate on the "verification_note" field.
func VerificationNoteLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldVerificationNote, v))
}

// VerificationNoteContains applies the Contains predicate on the "verification_note" field.
func VerificationNoteContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldVerificationNote, v))
}

// VerificationNoteHasPrefix applies the HasPrefix predicate on the "verification_note" field.
func VerificationNoteHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldVerificationNote, v))
}

// VerificationNoteHasSuffix applies the HasSuffix predicate on the "verification_note" field.
func VerificationNoteHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldVerificationNote, v))
}

// VerificationNoteEqualFold applies the EqualFold predicate on the "verification_note" field.
func VerificationNoteEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldVerificationNote, v))
}

// VerificationNoteContainsFold applies the ContainsFold predicate on the "verification_note" field.
func VerificationNoteContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldVerificationNote, v))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldExtractedText, v))
}

// MatchedEQ applies the EQ predicate on the "matched" field.
func MatchedEQ(v bool) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldMatched, v))
}

// MatchedNEQ applies the NEQ predicate on the "matched" field.
func MatchedNEQ(v bool) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldMatched, v))
}

// MatchReasonEQ applies the EQ predicate on the "match_reason" field.
func MatchReasonEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldMatchReason, v))
}

// MatchReasonNEQ applies the NEQ predicate on the "match_reason" field.
func MatchReasonNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldMatchReason, v))
}

// MatchReasonIn applies the In predicate on the "match_reason" field.
func MatchReasonIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldMatchReason, vs...))
}

// MatchReasonNotIn applies the NotIn predicate on the "match_reason" field.
func MatchReasonNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldMatchReason, vs...))
}

// MatchReasonGT applies the GT predicate on the "match_reason" field.
func MatchReasonGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldMatchReason, v))
}

// MatchReasonGTE applies the GTE predicate on the "match_reason" field.
func MatchReasonGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldMatchReason, v))
}

// MatchReasonLT applies the LT predicate on the "match_reason" field.
func MatchReasonLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldMatchReason, v))
}

// MatchReasonLTE applies the LTE predicate on the "match_reason" field.
func MatchReasonLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldMatchReason, v))
}

// MatchReasonContains applies the Contains predicate on the "match_reason" field.
func MatchReasonContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldMatchReason, v))
}

// MatchReasonHasPrefix applies the HasPrefix predicate on the "match_reason" field.
func MatchReasonHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldMatchReason, v))
}

// MatchReasonHasSuffix applies the HasSuffix predicate on the "match_reason" field.
func MatchReasonHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldMatchReason, v))
}

// MatchReasonEqualFold applies the EqualFold predicate on the "match_reason" field.
func MatchReasonEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldMatchReason, v))
}

// MatchReasonContainsFold applies the ContainsFold predicate on the "match_reason" field.
func MatchReasonContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldMatchReason, v))
}

// CorroborationOutcomeEQ applies the EQ predicate on the "corroboration_outcome" field.
func CorroborationOutcomeEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeNEQ applies the NEQ predicate on the "corroboration_outcome" field.
func CorroborationOutcomeNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeIn applies the In predicate on the "corroboration_outcome" field.
func CorroborationOutcomeIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCorroborationOutcome, vs...))
}

// CorroborationOutcomeNotIn applies the NotIn predicate on the "corroboration_outcome" field.
func CorroborationOutcomeNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCorroborationOutcome, vs...))
}

// CorroborationOutcomeGT applies the GT predicate on the "corroboration_outcome" field.
func CorroborationOutcomeGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeGTE applies the GTE predicate on the "corroboration_outcome" field.
func CorroborationOutcomeGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeLT applies the LT predicate on the "corroboration_outcome" field.
func CorroborationOutcomeLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeLTE applies the LTE predicate on the "corroboration_outcome" field.
func CorroborationOutcomeLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeContains applies the Contains predicate on the "corroboration_outcome" field.
func CorroborationOutcomeContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeHasPrefix applies the HasPrefix predicate on the "corroboration_outcome" field.
func CorroborationOutcomeHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeHasSuffix applies the HasSuffix predicate on the "corroboration_outcome" field.
func CorroborationOutcomeHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeIsNil applies the IsNil predicate on the "corroboration_outcome" field.
func CorroborationOutcomeIsNil() predicate.Credential {
	return predicate.Credential(sql.FieldIsNull(FieldCorroborationOutcome))
}

// CorroborationOutcomeNotNil applies the NotNil predicate on the "corroboration_outcome" field.
func CorroborationOutcomeNotNil() predicate.Credential {
	return predicate.Credential(sql.FieldNotNull(FieldCorroborationOutcome))
}

// CorroborationOutcomeEqualFold applies the EqualFold predicate on the "corroboration_outcome" field.
func CorroborationOutcomeEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldCorroborationOutcome, v))
}

// CorroborationOutcomeContainsFold applies the ContainsFold predicate on the "corroboration_outcome" field.
func CorroborationOutcomeContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldCorroborationOutcome, v))
}

// CorroborationNoteEQ applies the EQ predicate on the "corroboration_note" field.
func CorroborationNoteEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCorroborationNote, v))
}

// CorroborationNoteNEQ applies the NEQ predicate on the "corroboration_note" field.
func CorroborationNoteNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCorroborationNote, v))
}

// CorroborationNoteIn applies the In predicate on the "corroboration_note" field.
func CorroborationNoteIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCorroborationNote, vs...))
}

// CorroborationNoteNotIn applies the NotIn predicate on the "corroboration_note" field.
func CorroborationNoteNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCorroborationNote, vs...))
}

// CorroborationNoteGT applies the GT predicate on the "corroboration_note" field.
func CorroborationNoteGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCorroborationNote, v))
}

// CorroborationNoteGTE applies the GTE predicate on the "corroboration_note" field.
func CorroborationNoteGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCorroborationNote, v))
}

// CorroborationNoteLT applies the LT predicate on the "corroboration_note" field.
func CorroborationNoteLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCorroborationNote, v))
}

// CorroborationNoteLTE applies the LTE predicate on the "corroboration_note" field.
func CorroborationNoteLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCorroborationNote, v))
}

// CorroborationNoteContains applies the Contains predicate on the "corroboration_note" field.
func CorroborationNoteContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldCorroborationNote, v))
}

// CorroborationNoteHasPrefix applies the HasPrefix predicate on the "corroboration_note" field.
func CorroborationNoteHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldCorroborationNote, v))
}

// CorroborationNoteHasSuffix applies the HasSuffix predicate on the "corroboration_note" field.
func CorroborationNoteHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldCorroborationNote, v))
}

// CorroborationNoteIsNil applies the IsNil predicate on the "corroboration_note" field.
func CorroborationNoteIsNil() predicate.Credential {
	return predicate.Credential(sql.FieldIsNull(FieldCorroborationNote))
}

// CorroborationNoteNotNil applies the NotNil predicate on the "corroboration_note" field.
func CorroborationNoteNotNil() predicate.Credential {
	return predicate.Credential(sql.FieldNotNull(FieldCorroborationNote))
}

// CorroborationNoteEqualFold applies the EqualFold predicate on the "corroboration_note" field.
func CorroborationNoteEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldCorroborationNote, v))
}

// CorroborationNoteContainsFold applies the ContainsFold predicate on the "corroboration_note" field.
func CorroborationNoteContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldCorroborationNote, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.Credential {
	return predicate.Credential(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.Credential {
	return predicate.Credential(sql.FieldNotNull(FieldSkills))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldLevel, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintIsNil applies the IsNil predicate on the "fingerprint" field.
func FingerprintIsNil() predicate.Credential {
	return predicate.Credential(sql.FieldIsNull(FieldFingerprint))
}

// FingerprintNotNil applies the NotNil predicate on the "fingerprint" field.
func FingerprintNotNil() predicate.Credential {
	return predicate.Credential(sql.FieldNotNull(FieldFingerprint))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldFingerprint, v))
}

// AnchorStateEQ applies the EQ predicate on the "anchor_state" field.
func AnchorStateEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldAnchorState, v))
}

// AnchorStateNEQ applies the NEQ predicate on the "anchor_state" field.
func AnchorStateNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldAnchorState, v))
}

// AnchorStateIn applies the In predicate on the "anchor_state" field.
func AnchorStateIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldAnchorState, vs...))
}

// AnchorStateNotIn applies the NotIn predicate on the "anchor_state" field.
func AnchorStateNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldAnchorState, vs...))
}

// AnchorStateGT applies the GT predicate on the "anchor_state" field.
func AnchorStateGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldAnchorState, v))
}

// AnchorStateGTE applies the GTE predicate on the "anchor_state" field.
func AnchorStateGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldAnchorState, v))
}

// AnchorStateLT applies the LT predicate on the "anchor_state" field.
func AnchorStateLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldAnchorState, v))
}

// AnchorStateLTE applies the LTE predicate on the "anchor_state" field.
func AnchorStateLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldAnchorState, v))
}

// AnchorStateContains applies the Contains predicate on the "anchor_state" field.
func AnchorStateContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldAnchorState, v))
}

// AnchorStateHasPrefix applies the HasPrefix predicate on the "anchor_state" field.
func AnchorStateHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldAnchorState, v))
}

// AnchorStateHasSuffix applies the HasSuffix predicate on the "anchor_state" field.
func AnchorStateHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldAnchorState, v))
}

// AnchorStateEqualFold applies the EqualFold predicate on the "anchor_state" field.
func AnchorStateEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldAnchorState, v))
}

// AnchorStateContainsFold applies the ContainsFold predicate on the "anchor_state" field.
func AnchorStateContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldAnchorState, v))
}

// AnchorTxRefEQ applies the EQ predicate on the "anchor_tx_ref" field.
func AnchorTxRefEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldAnchorTxRef, v))
}

// AnchorTxRefNEQ applies the NEQ predicate on the "anchor_tx_ref" field.
func AnchorTxRefNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldAnchorTxRef, v))
}

// AnchorTxRefIn applies the In predicate on the "anchor_tx_ref" field.
func AnchorTxRefIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldAnchorTxRef, vs...))
}

// AnchorTxRefNotIn applies the NotIn predicate on the "anchor_tx_ref" field.
func AnchorTxRefNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldAnchorTxRef, vs...))
}

// AnchorTxRefGT applies the GT predicate on the "anchor_tx_ref" field.
func AnchorTxRefGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldAnchorTxRef, v))
}

// AnchorTxRefGTE applies the GTE predicate on the "anchor_tx_ref" field.
func AnchorTxRefGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldAnchorTxRef, v))
}

// AnchorTxRefLT applies the LT predicate on the "anchor_tx_ref" field.
func AnchorTxRefLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldAnchorTxRef, v))
}

// AnchorTxRefLTE applies the LTE predicate on the "anchor_tx_ref" field.
func AnchorTxRefLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldAnchorTxRef, v))
}

// AnchorTxRefContains applies the Contains predicate on the "anchor_tx_ref" field.
func AnchorTxRefContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldAnchorTxRef, v))
}

// AnchorTxRefHasPrefix applies the HasPrefix predicate on the "anchor_tx_ref" field.
func AnchorTxRefHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldAnchorTxRef, v))
}

// AnchorTxRefHasSuffix applies the HasSuffix predicate on the "anchor_tx_ref" field.
func AnchorTxRefHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldAnchorTxRef, v))
}

// AnchorTxRefIsNil applies the IsNil predicate on the "anchor_tx_ref" field.
func AnchorTxRefIsNil() predicate.Credential {
	return predicate.Credential(sql.FieldIsNull(FieldAnchorTxRef))
}

// AnchorTxRefNotNil applies the NotNil predicate on the "anchor_tx_ref" field.
func AnchorTxRefNotNil() predicate.Credential {
	return predicate.Credential(sql.FieldNotNull(FieldAnchorTxRef))
}

// AnchorTxRefEqualFold applies the EqualFold predicate on the "anchor_tx_ref" field.
func AnchorTxRefEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldAnchorTxRef, v))
}

// AnchorTxRefContainsFold applies the ContainsFold predicate on the "anchor_tx_ref" field.
func AnchorTxRefContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldAnchorTxRef, v))
}

// AnchorErrorEQ applies the EQ predicate on the "anchor_error" field.
func AnchorErrorEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldAnchorError, v))
}

// AnchorErrorNEQ applies the NEQ predicate on the "anchor_error" field.
func AnchorErrorNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldAnchorError, v))
}

// AnchorErrorIn applies the In predicate on the "anchor_error" field.
func AnchorErrorIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldAnchorError, vs...))
}

// AnchorErrorNotIn applies the NotIn predicate on the "anchor_error" field.
func AnchorErrorNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldAnchorError, vs...))
}

// AnchorErrorGT applies the GT predicate on the "anchor_error" field.
func AnchorErrorGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldAnchorError, v))
}

// AnchorErrorGTE applies the GTE predicate on the "anchor_error" field.
func AnchorErrorGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldAnchorError, v))
}

// AnchorErrorLT applies the LT predicate on the "anchor_error" field.
func AnchorErrorLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldAnchorError, v))
}

// AnchorErrorLTE applies the LTE predicate on the "anchor_error" field.
func AnchorErrorLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldAnchorError, v))
}

// AnchorErrorContains applies the Contains predicate on the "anchor_error" field.
func AnchorErrorContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldAnchorError, v))
}

// AnchorErrorHasPrefix applies the HasPrefix predicate on the "anchor_error" field.
func AnchorErrorHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldAnchorError, v))
}

// AnchorErrorHasSuffix applies the HasSuffix predicate on the "anchor_error" field.
func AnchorErrorHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldAnchorError, v))
}

// AnchorErrorIsNil applies the IsNil predicate on the "anchor_error" field.
func AnchorErrorIsNil() predicate.Credential {
	return predicate.Credential(sql.FieldIsNull(FieldAnchorError))
}

// AnchorErrorNotNil applies the NotNil predicate on the "anchor_error" field.
func AnchorErrorNotNil() predicate.Credential {
	return predicate.Credential(sql.FieldNotNull(FieldAnchorError))
}

// AnchorErrorEqualFold applies the EqualFold predicate on the "anchor_error" field.
func AnchorErrorEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldAnchorError, v))
}

// AnchorErrorContainsFold applies the ContainsFold predicate on the "anchor_error" field.
func AnchorErrorContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldAnchorError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.Credential {
	return predicate.Credential(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.Credential {
	return predicate.Credential(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.Credential {
	return predicate.Credential(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.CredentialFile) predicate.Credential {
	return predicate.Credential(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Credential {
	return predicate.Credential(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.VerificationJob) predicate.Credential {
	return predicate.Credential(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Credential) predicate.Credential {
	return predicate.Credential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Credential) predicate.Credential {
	return predicate.Credential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Credential) predicate.Credential {
	return predicate.Credential(sql.NotPredicates(p))
}
