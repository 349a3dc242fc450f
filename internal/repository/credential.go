package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent"
	entcredential "github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/internal/common"
	"github.com/microcred/credential-vault/internal/entity"
)

// CredentialRepository persists assembled verification records. Records are
// write-once: there is no update path, only create, read and owned delete.
type CredentialRepository interface {
	Create(ctx context.Context, rec *entity.Credential) (*ent.Credential, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Credential, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*ent.Credential, error)
	DeleteOwned(ctx context.Context, profileID, id uuid.UUID) error
}

type credentialRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCredentialRepository(client *ent.Client, logger *slog.Logger) CredentialRepository {
	return &credentialRepository{
		client: client,
		logger: logger,
	}
}

func (r *credentialRepository) Create(ctx context.Context, rec *entity.Credential) (*ent.Credential, error) {
	create := r.client.Credential.
		Create().
		SetProfileID(rec.ProfileID).
		SetFileID(rec.FileID).
		SetCertificateName(rec.CertificateName).
		SetIssuer(rec.Issuer).
		SetCertificateNumber(rec.CertificateNumber).
		SetStatus(rec.Status).
		SetVerificationNote(rec.VerificationNote).
		SetExtractedText(rec.ExtractedText).
		SetMatched(rec.Matched).
		SetMatchReason(rec.MatchReason).
		SetSkills(rec.Skills).
		SetLevel(rec.Level).
		SetAnchorState(rec.AnchorState)

	if rec.CertificateURL != nil {
		create = create.SetCertificateURL(*rec.CertificateURL)
	}
	if rec.CorroborationOutcome != nil {
		create = create.SetCorroborationOutcome(*rec.CorroborationOutcome)
	}
	if rec.CorroborationNote != nil {
		create = create.SetCorroborationNote(*rec.CorroborationNote)
	}
	if rec.Fingerprint != nil {
		create = create.SetFingerprint(*rec.Fingerprint)
	}
	if rec.AnchorTxRef != nil {
		create = create.SetAnchorTxRef(*rec.AnchorTxRef)
	}
	if rec.AnchorError != nil {
		create = create.SetAnchorError(*rec.AnchorError)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create credential record",
			"profile_id", rec.ProfileID, "certificate_name", rec.CertificateName, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *credentialRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Credential, error) {
	return r.client.Credential.Get(ctx, id)
}

func (r *credentialRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*ent.Credential, error) {
	rows, err := r.client.Credential.
		Query().
		Where(entcredential.ProfileID(profileID)).
		Order(entcredential.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list credentials", "profile_id", profileID, "error", err)
		return nil, err
	}
	return rows, nil
}

// DeleteOwned removes a credential only if it belongs to the given profile.
// A mismatch is reported as ErrNotOwner rather than not-found so callers can
// distinguish the two.
func (r *credentialRepository) DeleteOwned(ctx context.Context, profileID, id uuid.UUID) error {
	row, err := r.client.Credential.Get(ctx, id)
	if err != nil {
		return err
	}
	if row.ProfileID != profileID {
		r.logger.Warn("refusing cross-profile credential delete",
			"credential_id", id, "owner", row.ProfileID, "caller", profileID)
		return common.ErrNotOwner
	}
	return r.client.Credential.DeleteOneID(id).Exec(ctx)
}
