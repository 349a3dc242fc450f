// Package pipeline coordinates the verification stages for one upload:
// store, extract, match, corroborate, infer skills, fingerprint, anchor,
// decide, persist.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/microcred/credential-vault/constants"
	"github.com/microcred/credential-vault/gen/ent"
	"github.com/microcred/credential-vault/internal/common"
	"github.com/microcred/credential-vault/internal/corroborate"
	"github.com/microcred/credential-vault/internal/entity"
	"github.com/microcred/credential-vault/internal/extract"
	"github.com/microcred/credential-vault/internal/filestore"
	"github.com/microcred/credential-vault/internal/fingerprint"
	"github.com/microcred/credential-vault/internal/ledger"
	"github.com/microcred/credential-vault/internal/pipeline/verdict"
	"github.com/microcred/credential-vault/internal/repository"
	"github.com/microcred/credential-vault/internal/skills"
	"github.com/microcred/credential-vault/internal/verify"
)

// Request is one upload plus its claimed metadata. SkillsRaw is the
// caller-declared skill list, either a JSON array or comma-separated.
type Request struct {
	ProfileID      uuid.UUID
	Filename       string
	Content        []byte
	Claim          verify.Claim
	CertificateURL string
	SkillsRaw      string
	DeclaredLevel  int
}

// extractStage runs the store-to-text stage and tracks the verification job.
type extractStage interface {
	Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error)
}

// matcher runs the content-match stage. Never errors; failures are non-match
// judgments.
type matcher interface {
	Analyze(ctx context.Context, text string, claim verify.Claim) verify.Judgment
}

// urlChecker fetches a corroboration URL. Never errors; failures are
// Contradicted judgments.
type urlChecker interface {
	Check(ctx context.Context, url, claimedName string) corroborate.Judgment
}

type fileStore interface {
	Save(filename string, content []byte) (filestore.StoredFile, error)
	Remove(path string) error
}

type Processor struct {
	store     fileStore
	filesRepo repository.CredentialFileRepository
	credsRepo repository.CredentialRepository
	jobsRepo  repository.VerificationJobRepository
	extract   extractStage
	analyzer  matcher
	checker   urlChecker
	inferer   *skills.Inferencer
	anchorer  ledger.Anchorer // nil when no gateway is configured
	logger    *slog.Logger
}

func NewProcessor(
	store fileStore,
	filesRepo repository.CredentialFileRepository,
	credsRepo repository.CredentialRepository,
	jobsRepo repository.VerificationJobRepository,
	extractStage extractStage,
	analyzer matcher,
	checker urlChecker,
	inferer *skills.Inferencer,
	anchorer ledger.Anchorer,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if inferer == nil {
		inferer = skills.NewInferencer(nil)
	}
	return &Processor{
		store:     store,
		filesRepo: filesRepo,
		credsRepo: credsRepo,
		jobsRepo:  jobsRepo,
		extract:   extractStage,
		analyzer:  analyzer,
		checker:   checker,
		inferer:   inferer,
		anchorer:  anchorer,
		logger:    logger,
	}
}

// Process runs the full pipeline for one upload and persists exactly one
// verification record. Stage failures downstream of acceptance degrade into
// record fields; the only errors returned are upload validation, unreadable
// input and persistence failures.
func (p *Processor) Process(ctx context.Context, req Request) (*ent.Credential, error) {
	stored, err := p.store.Save(req.Filename, req.Content)
	if err != nil {
		return nil, common.WrapError(common.ErrInvalidInput, err.Error())
	}

	fileRow, dedup, err := p.filesRepo.UpsertByHash(
		ctx, req.ProfileID, stored.Path, stored.Filename, stored.FileExt,
		stored.Size, stored.ContentHash, stored.StoredAt,
	)
	if err != nil {
		p.removeStored(stored.Path)
		return nil, common.WrapError(err, "register upload")
	}
	if dedup {
		// An identical file already exists for this profile; the record is
		// built against the original copy.
		p.removeStored(stored.Path)
	}

	jobID, extRes, err := p.extract.Run(ctx, fileRow.ID)
	if err != nil {
		p.cleanupAccepted(fileRow, dedup)
		return nil, common.WrapError(common.ErrUnreadableFile, err.Error())
	}

	var (
		wg       sync.WaitGroup
		skillRes skills.Profile
		fp       string
		anchor   ledger.Receipt
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		declared := skills.ParseDeclared(req.SkillsRaw)
		skillRes = p.inferer.Infer(extRes.Text, declared, req.DeclaredLevel)
	}()
	go func() {
		defer wg.Done()
		fp, anchor = p.fingerprintAndAnchor(ctx, fileRow)
	}()

	match := p.analyzer.Analyze(ctx, extRes.Text, req.Claim)

	var corr *corroborate.Judgment
	if match.Matched && req.CertificateURL != "" && p.checker != nil {
		j := p.checker.Check(ctx, req.CertificateURL, req.Claim.CertificateName)
		corr = &j
	}

	wg.Wait()

	decision := verdict.Decide(verdict.Input{
		ExtractedText: extRes.Text,
		Match:         match,
		Corroboration: corr,
	})

	rec := p.assembleRecord(req, fileRow.ID, extRes, match, corr, skillRes, fp, anchor, decision)

	row, err := p.credsRepo.Create(ctx, rec)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, jobID, fmt.Sprintf("persist record: %v", err))
		p.cleanupAccepted(fileRow, dedup)
		return nil, common.WrapError(common.ErrDatabase, "persist verification record")
	}

	if err := p.jobsRepo.FinishSuccess(ctx, jobID, row.ID); err != nil {
		p.logger.Warn("pipeline.job_finish_failed", "job_id", jobID, "err", err)
	}

	p.logger.Info("pipeline.done",
		"req_id", common.RequestIDFromContext(ctx),
		"credential_id", row.ID,
		"profile_id", req.ProfileID,
		"status", row.Status,
		"anchor_state", row.AnchorState,
	)
	return row, nil
}

// fingerprintAndAnchor hashes the stored bytes and, when a gateway is
// configured, submits a prefix of the digest as the anchor payload. Both
// halves are best-effort.
func (p *Processor) fingerprintAndAnchor(ctx context.Context, fileRow *ent.CredentialFile) (string, ledger.Receipt) {
	fp, err := fingerprint.SumFile(fileRow.StoredPath)
	if err != nil {
		p.logger.Warn("pipeline.fingerprint_failed", "file_id", fileRow.ID, "err", err)
		return "", ledger.NotAttempted("no fingerprint available")
	}

	if p.anchorer == nil {
		return fp, ledger.NotAttempted("no ledger gateway configured")
	}

	payload := fp
	if len(payload) > 64 {
		payload = payload[:64]
	}
	txRef, err := p.anchorer.Anchor(ctx, fileRow.ID.String(), []byte(payload))
	if err != nil {
		p.logger.Warn("pipeline.anchor_failed", "file_id", fileRow.ID, "err", err)
		return fp, ledger.Failed(err.Error())
	}
	return fp, ledger.Succeeded(txRef)
}

func (p *Processor) assembleRecord(
	req Request,
	fileID uuid.UUID,
	extRes extract.TextExtractionResult,
	match verify.Judgment,
	corr *corroborate.Judgment,
	skillRes skills.Profile,
	fp string,
	anchor ledger.Receipt,
	decision verdict.Result,
) *entity.Credential {
	rec := &entity.Credential{
		ProfileID:         req.ProfileID,
		FileID:            fileID,
		CertificateName:   req.Claim.CertificateName,
		Issuer:            req.Claim.Issuer,
		CertificateNumber: req.Claim.CertificateNumber,
		Status:            string(decision.Status),
		VerificationNote:  decision.Note,
		ExtractedText:     extRes.Text,
		Matched:           match.Matched,
		MatchReason:       match.Reason,
		Skills:            skillRes.Skills,
		Level:             skillRes.Level,
		AnchorState:       string(anchor.State),
	}
	if req.CertificateURL != "" {
		rec.CertificateURL = &req.CertificateURL
	}
	if corr != nil {
		outcome := string(corr.Outcome)
		rec.CorroborationOutcome = &outcome
		rec.CorroborationNote = &corr.Note
	}
	if fp != "" {
		rec.Fingerprint = &fp
	}
	switch anchor.State {
	case constants.AnchorSucceeded:
		rec.AnchorTxRef = &anchor.TxRef
	default:
		if anchor.Reason != "" {
			reason := anchor.Reason
			rec.AnchorError = &reason
		}
	}
	return rec
}

// cleanupAccepted removes a file that was stored during this run. Deduped
// uploads keep their original copy since older records reference it.
func (p *Processor) cleanupAccepted(fileRow *ent.CredentialFile, dedup bool) {
	if dedup {
		return
	}
	p.removeStored(fileRow.StoredPath)
	if err := p.filesRepo.Delete(context.Background(), fileRow.ID); err != nil {
		p.logger.Warn("pipeline.cleanup_file_row_failed", "file_id", fileRow.ID, "err", err)
	}
}

func (p *Processor) removeStored(path string) {
	if err := p.store.Remove(path); err != nil {
		p.logger.Warn("pipeline.cleanup_failed", "path", path, "err", err)
	}
}
