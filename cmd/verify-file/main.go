// verify-file runs the full verification pipeline against a local document
// without going through the gRPC surface. Useful for smoke-testing OCR,
// judge and corroboration configuration.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/microcred/credential-vault/internal/common"
	"github.com/microcred/credential-vault/internal/corroborate"
	"github.com/microcred/credential-vault/internal/extract"
	"github.com/microcred/credential-vault/internal/filestore"
	"github.com/microcred/credential-vault/internal/ledger"
	"github.com/microcred/credential-vault/internal/ocr"
	"github.com/microcred/credential-vault/internal/pipeline"
	"github.com/microcred/credential-vault/internal/pipeline/textextract"
	repo "github.com/microcred/credential-vault/internal/repository"
	"github.com/microcred/credential-vault/internal/server"
	"github.com/microcred/credential-vault/internal/skills"
	"github.com/microcred/credential-vault/internal/utils"
	"github.com/microcred/credential-vault/internal/verify"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		profileID = flag.String("profile", "", "profile UUID (required)")
		path      = flag.String("file", "", "path to the credential document (required)")
		name      = flag.String("name", "", "claimed certificate name (required)")
		issuer    = flag.String("issuer", "", "claimed issuer (required)")
		number    = flag.String("number", "", "claimed certificate number (required)")
		certURL   = flag.String("url", "", "optional corroboration URL")
		skillsRaw = flag.String("skills", "", "declared skills (JSON array or comma-separated)")
		level     = flag.Int("level", 0, "declared level")
	)
	flag.Parse()

	if *profileID == "" || *path == "" || *name == "" || *issuer == "" || *number == "" {
		flag.Usage()
		os.Exit(2)
	}
	pid, err := uuid.Parse(*profileID)
	if err != nil {
		logger.Error("invalid profile id (must be UUID)", "arg", *profileID, "error", err)
		os.Exit(2)
	}

	content, err := os.ReadFile(*path)
	if err != nil {
		logger.Error("read file", "path", *path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	store, err := filestore.NewStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("init file store", "error", err)
		os.Exit(1)
	}

	filesRepo := repo.NewCredentialFileRepository(entc, logger)
	credsRepo := repo.NewCredentialRepository(entc, logger)
	jobsRepo := repo.NewVerificationJobRepository(entc, logger)

	ocrx := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	extractStage := textextract.NewPipeline(filesRepo, jobsRepo,
		extract.NewOCRAdapter(ocrx, logger), logger)

	var judge verify.SemanticJudge
	if cfg.Judge.Strategy == "rules" {
		judge = verify.NewRuleJudge()
	} else if cfg.Judge.APIKey != "" {
		g, err := verify.NewGeminiJudge(ctx, verify.GeminiConfig{
			APIKey:      cfg.Judge.APIKey,
			Model:       cfg.Judge.Model,
			Temperature: cfg.Judge.Temperature,
			Timeout:     cfg.Judge.Timeout,
		}, logger)
		if err != nil {
			logger.Error("init semantic judge", "error", err)
			os.Exit(1)
		}
		judge = g
	}

	var anchorer ledger.Anchorer
	if cfg.Ledger.GatewayURL != "" && cfg.Ledger.PrivateKeyHex != "" {
		gw, err := ledger.NewGateway(ledger.GatewayConfig{
			URL:           cfg.Ledger.GatewayURL,
			PrivateKeyHex: cfg.Ledger.PrivateKeyHex,
			Timeout:       cfg.Ledger.Timeout,
		}, logger)
		if err != nil {
			logger.Error("init ledger gateway", "error", err)
			os.Exit(1)
		}
		anchorer = gw
	}

	proc := pipeline.NewProcessor(
		store, filesRepo, credsRepo, jobsRepo,
		extractStage,
		verify.NewAnalyzer(judge, logger),
		corroborate.NewChecker(corroborate.Config{
			Timeout:      cfg.Checker.Timeout,
			MaxRedirects: cfg.Checker.MaxRedirects,
		}, logger),
		skills.NewInferencer(nil),
		anchorer,
		logger,
	)

	start := time.Now()
	row, err := proc.Process(ctx, pipeline.Request{
		ProfileID: pid,
		Filename:  filepath.Base(*path),
		Content:   content,
		Claim: verify.Claim{
			CertificateName:   *name,
			Issuer:            *issuer,
			CertificateNumber: *number,
		},
		CertificateURL: *certURL,
		SkillsRaw:      *skillsRaw,
		DeclaredLevel:  *level,
	})
	if err != nil {
		logger.Error("verification failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("verification complete",
		"credential_id", row.ID,
		"status", row.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out, _ := json.MarshalIndent(utils.ToCredential(row), "", "  ")
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
