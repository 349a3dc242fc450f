package textextract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcred/credential-vault/constants"
	"github.com/microcred/credential-vault/internal/extract"
	"github.com/microcred/credential-vault/internal/repository"
)

type Pipeline struct {
	FilesRepo     repository.CredentialFileRepository
	JobsRepo      repository.VerificationJobRepository
	TextExtractor extract.TextExtractor
	Log           *slog.Logger
}

func NewPipeline(files repository.CredentialFileRepository, jobs repository.VerificationJobRepository, tx extract.TextExtractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Log: log}
}

// Run starts a verification_job for the file and extracts its text.
// Extraction failure is data, not an error: the job records what happened and
// the result comes back with empty text so downstream can reject rather than
// crash. Run only errors when the file row or the job row cannot be touched.
func (p *Pipeline) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, row.ProfileID, format)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	res, err := p.TextExtractor.Extract(ctx, row.StoredPath)
	if err != nil {
		p.Log.Warn("pipeline.extract.failed", "file_id", fileID, "job_id", job.ID, "err", err)
		res.Text = ""
		res.Warnings = append(res.Warnings, err.Error())
		if markErr := p.JobsRepo.MarkExtracted(ctx, job.ID, "", res.Method, res.Pages, res.Duration.Milliseconds()); markErr != nil {
			return job.ID, res, markErr
		}
		return job.ID, res, nil
	}

	if err := p.JobsRepo.MarkExtracted(ctx, job.ID, res.Text, res.Method, res.Pages, res.Duration.Milliseconds()); err != nil {
		return job.ID, res, err
	}

	p.Log.Info("pipeline.extract.ok",
		"file_id", fileID,
		"job_id", job.ID,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
	)
	return job.ID, res, nil
}
