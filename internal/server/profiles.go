package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	credentialspb "github.com/microcred/credential-vault/gen/proto/credentials/v1"
	"github.com/microcred/credential-vault/internal/repository"
	"github.com/microcred/credential-vault/internal/utils"
)

type ProfileServer struct {
	credentialspb.UnimplementedProfilesServiceServer
	repo   repository.ProfileRepository
	logger *slog.Logger
}

func NewProfileServer(repo repository.ProfileRepository, logger *slog.Logger) *ProfileServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileServer{repo: repo, logger: logger}
}

func (s *ProfileServer) CreateProfile(ctx context.Context, req *credentialspb.CreateProfileRequest) (*credentialspb.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	p, err := s.repo.CreateProfile(ctx, &repository.Profile{
		Name:  name,
		Email: strings.TrimSpace(req.GetEmail()),
	})
	if err != nil {
		s.logger.Error("create profile failed", "name", name, "error", err)
		return nil, status.Error(codes.Internal, "create profile failed")
	}

	return &credentialspb.CreateProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}

func (s *ProfileServer) ListProfiles(ctx context.Context, _ *credentialspb.ListProfilesRequest) (*credentialspb.ListProfilesResponse, error) {
	plist, err := s.repo.ListProfiles(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", "error", err)
		return nil, status.Error(codes.Internal, "list profiles failed")
	}

	out := make([]*credentialspb.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfile(p))
	}
	return &credentialspb.ListProfilesResponse{Profiles: out}, nil
}
