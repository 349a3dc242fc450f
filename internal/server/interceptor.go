package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/microcred/credential-vault/internal/common"
)

// RequestIDInterceptor tags every RPC with a request ID and logs its
// outcome. Downstream code can pull the ID back out of the context for
// correlated logging.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc.failed",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc.ok",
			"req_id", rid,
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, nil
	}
}
