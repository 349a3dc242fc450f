package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/microcred/credential-vault/gen/proto/credentials/v1"
	"github.com/microcred/credential-vault/internal/common"
	"github.com/microcred/credential-vault/internal/corroborate"
	"github.com/microcred/credential-vault/internal/export"
	"github.com/microcred/credential-vault/internal/extract"
	"github.com/microcred/credential-vault/internal/filestore"
	"github.com/microcred/credential-vault/internal/ledger"
	"github.com/microcred/credential-vault/internal/ocr"
	"github.com/microcred/credential-vault/internal/pipeline"
	"github.com/microcred/credential-vault/internal/pipeline/textextract"
	"github.com/microcred/credential-vault/internal/repository"
	"github.com/microcred/credential-vault/internal/server"
	"github.com/microcred/credential-vault/internal/skills"
	"github.com/microcred/credential-vault/internal/verify"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	store, err := filestore.NewStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("failed to initialize file store", "error", err)
		os.Exit(1)
	}

	profileRepo := repository.NewProfileRepository(entc, logger)
	filesRepo := repository.NewCredentialFileRepository(entc, logger)
	credsRepo := repository.NewCredentialRepository(entc, logger)
	jobsRepo := repository.NewVerificationJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	extractStage := textextract.NewPipeline(filesRepo, jobsRepo,
		extract.NewOCRAdapter(extractor, logger), logger)

	// The judge is optional: with strategy gemini and no API key the
	// analyzer defaults every document to non-match and records go to
	// manual review.
	var judge verify.SemanticJudge
	switch {
	case cfg.Judge.Strategy == "rules":
		judge = verify.NewRuleJudge()
		logger.Info("semantic judge enabled", "strategy", "rules")
	case cfg.Judge.APIKey != "":
		g, err := verify.NewGeminiJudge(ctx, verify.GeminiConfig{
			APIKey:      cfg.Judge.APIKey,
			Model:       cfg.Judge.Model,
			Temperature: cfg.Judge.Temperature,
			Timeout:     cfg.Judge.Timeout,
		}, logger)
		if err != nil {
			logger.Error("failed to initialize semantic judge", "error", err)
			os.Exit(1)
		}
		judge = g
		logger.Info("semantic judge enabled", "strategy", "gemini", "model", cfg.Judge.Model)
	default:
		logger.Warn("GEMINI_API_KEY not set; uploads will require manual review")
	}
	analyzer := verify.NewAnalyzer(judge, logger)

	checker := corroborate.NewChecker(corroborate.Config{
		Timeout:      cfg.Checker.Timeout,
		MaxRedirects: cfg.Checker.MaxRedirects,
	}, logger)

	// Anchoring is likewise optional.
	var anchorer ledger.Anchorer
	if cfg.Ledger.GatewayURL != "" && cfg.Ledger.PrivateKeyHex != "" {
		gw, err := ledger.NewGateway(ledger.GatewayConfig{
			URL:           cfg.Ledger.GatewayURL,
			PrivateKeyHex: cfg.Ledger.PrivateKeyHex,
			Timeout:       cfg.Ledger.Timeout,
		}, logger)
		if err != nil {
			logger.Error("failed to initialize ledger gateway", "error", err)
			os.Exit(1)
		}
		anchorer = gw
		logger.Info("ledger anchoring enabled", "gateway", cfg.Ledger.GatewayURL)
	} else {
		logger.Warn("ledger gateway not configured; fingerprints will not be anchored")
	}

	proc := pipeline.NewProcessor(
		store, filesRepo, credsRepo, jobsRepo,
		extractStage, analyzer, checker,
		skills.NewInferencer(nil), anchorer, logger,
	)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.RequestIDInterceptor(logger)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterCredentialsServiceServer(grpcServer,
		server.NewCredentialsService(proc, credsRepo, filesRepo, profileRepo, store, logger))
	v1.RegisterProfilesServiceServer(grpcServer,
		server.NewProfileServer(profileRepo, logger))
	v1.RegisterExportServiceServer(grpcServer,
		server.NewExportServer(export.NewService(credsRepo, filesRepo, logger), logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
