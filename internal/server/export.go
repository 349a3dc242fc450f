package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/microcred/credential-vault/gen/proto/credentials/v1"
	"github.com/microcred/credential-vault/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportCredentials(ctx context.Context, req *v1.ExportCredentialsRequest) (*v1.ExportCredentialsResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportCredentialsXLSX(ctx, profileID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", profileID, "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	return &v1.ExportCredentialsResponse{Xlsx: xlsx}, nil
}
