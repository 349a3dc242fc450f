package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent"
	entfile "github.com/microcred/credential-vault/gen/ent/credentialfile"
)

type CredentialFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.CredentialFile, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.CredentialFile, error)
	Create(ctx context.Context, profileID uuid.UUID, storedPath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.CredentialFile, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, storedPath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.CredentialFile, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type credentialFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCredentialFileRepository(entc *ent.Client, logger *slog.Logger) CredentialFileRepository {
	return &credentialFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *credentialFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.CredentialFile, error) {
	return r.ent.CredentialFile.Get(ctx, id)
}

func (r *credentialFileRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.CredentialFile, error) {
	row, err := r.ent.CredentialFile.Query().
		Where(
			entfile.ProfileID(profileID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *credentialFileRepo) Create(ctx context.Context, profileID uuid.UUID, storedPath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.CredentialFile, error) {
	row, err := r.ent.CredentialFile.Create().
		SetProfileID(profileID).
		SetStoredPath(storedPath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create credential file", "profile_id", profileID, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *credentialFileRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, storedPath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.CredentialFile, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, profileID, storedPath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert credential file by hash", "profile_id", profileID, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *credentialFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.CredentialFile.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete credential file", "file_id", id, "error", err)
		return err
	}
	return nil
}
