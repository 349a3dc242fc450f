package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/microcred/credential-vault/constants"
	"github.com/microcred/credential-vault/gen/ent"
)

// VerificationJobRepository tracks the lifecycle of a pipeline run over one
// uploaded file. Every upload gets exactly one job row.
type VerificationJobRepository interface {
	Start(ctx context.Context, fileID, profileID uuid.UUID, format string) (*ent.VerificationJob, error)
	MarkExtracted(ctx context.Context, jobID uuid.UUID, text, method string, pages int, durationMS int64) error
	FinishSuccess(ctx context.Context, jobID, credentialID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, id uuid.UUID) (*ent.VerificationJob, error)
}

type verificationJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVerificationJobRepository(client *ent.Client, logger *slog.Logger) VerificationJobRepository {
	return &verificationJobRepository{
		client: client,
		logger: logger,
	}
}

func (r *verificationJobRepository) Start(ctx context.Context, fileID, profileID uuid.UUID, format string) (*ent.VerificationJob, error) {
	job, err := r.client.VerificationJob.
		Create().
		SetFileID(fileID).
		SetProfileID(profileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start verification job", "file_id", fileID, "error", err)
		return nil, err
	}
	return job, nil
}

func (r *verificationJobRepository) MarkExtracted(ctx context.Context, jobID uuid.UUID, text, method string, pages int, durationMS int64) error {
	_, err := r.client.VerificationJob.
		UpdateOneID(jobID).
		SetExtractedText(text).
		SetExtractMethod(method).
		SetExtractPages(pages).
		SetExtractDurationMs(durationMS).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record extraction on job", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

func (r *verificationJobRepository) FinishSuccess(ctx context.Context, jobID, credentialID uuid.UUID) error {
	_, err := r.client.VerificationJob.
		UpdateOneID(jobID).
		SetCredentialID(credentialID).
		SetFinishedAt(time.Now().UTC()).
		SetStatus(string(constants.JobStatusDone)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish verification job", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

func (r *verificationJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.client.VerificationJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now().UTC()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark verification job failed", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

func (r *verificationJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.VerificationJob, error) {
	return r.client.VerificationJob.Get(ctx, id)
}
