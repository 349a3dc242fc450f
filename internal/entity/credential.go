package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the persisted verification record for one upload. It is
// created once at the end of a pipeline run and never mutated afterwards; a
// re-upload produces a new record.
type Credential struct {
	ID                   uuid.UUID `json:"id"`
	ProfileID            uuid.UUID `json:"profile_id"`
	FileID               uuid.UUID `json:"file_id"`
	CertificateName      string    `json:"certificate_name"`
	Issuer               string    `json:"issuer"`
	CertificateNumber    string    `json:"certificate_number"`
	CertificateURL       *string   `json:"certificate_url,omitempty"`
	Status               string    `json:"status"`
	VerificationNote     string    `json:"verification_note"`
	ExtractedText        string    `json:"extracted_text"`
	Matched              bool      `json:"matched"`
	MatchReason          string    `json:"match_reason"`
	CorroborationOutcome *string   `json:"corroboration_outcome,omitempty"`
	CorroborationNote    *string   `json:"corroboration_note,omitempty"`
	Skills               []string  `json:"skills,omitempty"`
	Level                int       `json:"level"`
	Fingerprint          *string   `json:"fingerprint,omitempty"`
	AnchorState          string    `json:"anchor_state"`
	AnchorTxRef          *string   `json:"anchor_tx_ref,omitempty"`
	AnchorError          *string   `json:"anchor_error,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}
