package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/microcred/credential-vault/gen/proto/credentials/v1"
	"github.com/microcred/credential-vault/internal/common"
	"github.com/microcred/credential-vault/internal/filestore"
	"github.com/microcred/credential-vault/internal/pipeline"
	"github.com/microcred/credential-vault/internal/repository"
	"github.com/microcred/credential-vault/internal/utils"
	"github.com/microcred/credential-vault/internal/verify"
)

type CredentialsService struct {
	v1.UnimplementedCredentialsServiceServer
	processor   *pipeline.Processor
	credsRepo   repository.CredentialRepository
	filesRepo   repository.CredentialFileRepository
	profileRepo repository.ProfileRepository
	store       *filestore.Store
	logger      *slog.Logger
}

func NewCredentialsService(
	proc *pipeline.Processor,
	credsRepo repository.CredentialRepository,
	filesRepo repository.CredentialFileRepository,
	profileRepo repository.ProfileRepository,
	store *filestore.Store,
	logger *slog.Logger,
) *CredentialsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialsService{
		processor:   proc,
		credsRepo:   credsRepo,
		filesRepo:   filesRepo,
		profileRepo: profileRepo,
		store:       store,
		logger:      logger,
	}
}

// UploadCredential implements v1.CredentialsServiceServer
func (s *CredentialsService) UploadCredential(ctx context.Context, req *v1.UploadCredentialRequest) (*v1.UploadCredentialResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		s.logger.Error("upload request rejected", "profile_id", req.GetProfileId(), "error", err)
		return nil, err
	}

	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	claim := verify.Claim{
		CertificateName:   strings.TrimSpace(req.GetCertificateName()),
		Issuer:            strings.TrimSpace(req.GetIssuer()),
		CertificateNumber: strings.TrimSpace(req.GetCertificateNumber()),
	}
	if claim.CertificateName == "" || claim.Issuer == "" || claim.CertificateNumber == "" {
		return nil, status.Error(codes.InvalidArgument, "certificate_name, issuer and certificate_number are required")
	}

	if exists, _ := s.profileRepo.Exists(ctx, profileID); !exists {
		s.logger.Error("profile not found for upload", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "profile not found")
	}

	s.logger.Info("starting credential upload",
		"profile_id", profileID, "filename", filename, "certificate", claim.CertificateName)

	row, err := s.processor.Process(ctx, pipeline.Request{
		ProfileID:      profileID,
		Filename:       filename,
		Content:        req.GetContent(),
		Claim:          claim,
		CertificateURL: strings.TrimSpace(req.GetCertificateUrl()),
		SkillsRaw:      req.GetSkills(),
		DeclaredLevel:  int(req.GetDeclaredLevel()),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			return nil, status.Errorf(codes.InvalidArgument, "upload: %v", err)
		case errors.Is(err, common.ErrUnreadableFile):
			return nil, status.Error(codes.FailedPrecondition, "uploaded file could not be read")
		default:
			s.logger.Error("pipeline.failed", "profile_id", profileID, "err", err)
			return nil, status.Error(codes.Internal, "verification pipeline failed")
		}
	}

	return &v1.UploadCredentialResponse{Credential: utils.ToPBCredential(row)}, nil
}

func (s *CredentialsService) GetCredential(ctx context.Context, req *v1.GetCredentialRequest) (*v1.GetCredentialResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetCredentialId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "credential_id must be a UUID")
	}

	row, err := s.credsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "credential not found")
	}
	return &v1.GetCredentialResponse{Credential: utils.ToPBCredential(row)}, nil
}

func (s *CredentialsService) ListCredentials(ctx context.Context, req *v1.ListCredentialsRequest) (*v1.ListCredentialsResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	rows, err := s.credsRepo.ListByProfile(ctx, profileID)
	if err != nil {
		s.logger.Error("list credentials failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.Internal, "list credentials failed")
	}

	out := make([]*v1.Credential, 0, len(rows))
	for _, r := range rows {
		out = append(out, utils.ToPBCredential(r))
	}
	return &v1.ListCredentialsResponse{Credentials: out}, nil
}

// DeleteCredential removes an owned record and best-effort deletes the
// stored file when no other record references it.
func (s *CredentialsService) DeleteCredential(ctx context.Context, req *v1.DeleteCredentialRequest) (*v1.DeleteCredentialResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	credentialID, err := uuid.Parse(strings.TrimSpace(req.GetCredentialId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "credential_id must be a UUID")
	}

	row, err := s.credsRepo.GetByID(ctx, credentialID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "credential not found")
	}
	fileID := row.FileID

	if err := s.credsRepo.DeleteOwned(ctx, profileID, credentialID); err != nil {
		if errors.Is(err, common.ErrNotOwner) {
			return nil, status.Error(codes.PermissionDenied, "credential belongs to another profile")
		}
		s.logger.Error("delete credential failed", "credential_id", credentialID, "error", err)
		return nil, status.Error(codes.Internal, "delete credential failed")
	}

	if fileRow, err := s.filesRepo.GetByID(ctx, fileID); err == nil {
		if err := s.store.Remove(fileRow.StoredPath); err != nil {
			s.logger.Warn("stored file cleanup failed", "file_id", fileID, "error", err)
		}
		if err := s.filesRepo.Delete(ctx, fileID); err != nil {
			s.logger.Warn("file row cleanup failed", "file_id", fileID, "error", err)
		}
	}

	s.logger.Info("credential deleted", "credential_id", credentialID, "profile_id", profileID)
	return &v1.DeleteCredentialResponse{Deleted: true}, nil
}

func parseProfileID(raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	if pid == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	id, err := uuid.Parse(pid)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	return id, nil
}
