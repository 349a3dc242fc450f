package utils

import (
	"time"

	"github.com/microcred/credential-vault/gen/ent"
	credentialspb "github.com/microcred/credential-vault/gen/proto/credentials/v1"
	"github.com/microcred/credential-vault/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBProfile(p *ent.Profile) *credentialspb.Profile {
	return &credentialspb.Profile{
		Id:        p.ID.String(),
		Name:      p.Name,
		Email:     strOrEmpty(p.Email),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCredential(c *ent.Credential) *credentialspb.Credential {
	return &credentialspb.Credential{
		Id:                   c.ID.String(),
		ProfileId:            c.ProfileID.String(),
		FileId:               c.FileID.String(),
		CertificateName:      c.CertificateName,
		Issuer:               c.Issuer,
		CertificateNumber:    c.CertificateNumber,
		CertificateUrl:       strOrEmpty(c.CertificateURL),
		Status:               c.Status,
		VerificationNote:     c.VerificationNote,
		Matched:              c.Matched,
		MatchReason:          c.MatchReason,
		CorroborationOutcome: strOrEmpty(c.CorroborationOutcome),
		CorroborationNote:    strOrEmpty(c.CorroborationNote),
		Skills:               c.Skills,
		Level:                int32(c.Level),
		Fingerprint:          strOrEmpty(c.Fingerprint),
		AnchorState:          c.AnchorState,
		AnchorTxRef:          strOrEmpty(c.AnchorTxRef),
		CreatedAt:            c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCredential(e *ent.Credential) *entity.Credential {
	return &entity.Credential{
		ID:                   e.ID,
		ProfileID:            e.ProfileID,
		FileID:               e.FileID,
		CertificateName:      e.CertificateName,
		Issuer:               e.Issuer,
		CertificateNumber:    e.CertificateNumber,
		CertificateURL:       e.CertificateURL,
		Status:               e.Status,
		VerificationNote:     e.VerificationNote,
		ExtractedText:        e.ExtractedText,
		Matched:              e.Matched,
		MatchReason:          e.MatchReason,
		CorroborationOutcome: e.CorroborationOutcome,
		CorroborationNote:    e.CorroborationNote,
		Skills:               e.Skills,
		Level:                e.Level,
		Fingerprint:          e.Fingerprint,
		AnchorState:          e.AnchorState,
		AnchorTxRef:          e.AnchorTxRef,
		AnchorError:          e.AnchorError,
		CreatedAt:            e.CreatedAt,
	}
}
