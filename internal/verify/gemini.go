package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// GeminiConfig configures the remote judgment strategy.
type GeminiConfig struct {
	APIKey      string
	Model       string  // e.g., "gemini-2.5-flash"
	Temperature float32 // 0..2
	Timeout     time.Duration
}

// GeminiJudge delegates content matching to a Gemini model constrained to a
// JSON verdict. The verdict is schema-validated locally before it is trusted.
type GeminiJudge struct {
	cfg    GeminiConfig
	client *genai.Client
	logger *slog.Logger
}

func NewGeminiJudge(ctx context.Context, cfg GeminiConfig, logger *slog.Logger) (*GeminiJudge, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini judge: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini judge: %w", err)
	}
	return &GeminiJudge{cfg: cfg, client: client, logger: logger}, nil
}

const judgeSystemPrompt = "You are a strict data verification expert. Analyze the DOCUMENT_TEXT " +
	"and determine whether you can CONFIRM the presence and contextual consistency of all three " +
	"USER_INPUTS (certificate name, issuer, certificate number). Ignore formatting differences, " +
	"capitalization, and minor spelling errors. Respond ONLY with JSON matching the provided schema."

func (g *GeminiJudge) Judge(ctx context.Context, text string, claim Claim) (Judgment, error) {
	rid := uuid.New().String()
	start := time.Now()

	g.logger.Info("judge.gemini.start",
		"req_id", rid,
		"model", g.cfg.Model,
		"text_len", len(text),
		"certificate", claim.CertificateName,
	)

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	schema := BuildVerdictJSONSchema()
	prompt := buildJudgePrompt(text, claim, schema)

	result, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:       genai.Ptr(g.cfg.Temperature),
			ResponseMIMEType:  "application/json",
			SystemInstruction: genai.NewContentFromText(judgeSystemPrompt, genai.RoleUser),
		})
	if err != nil {
		g.logger.Error("judge.gemini.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Judgment{}, fmt.Errorf("gemini generate: %w", err)
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" {
		g.logger.Error("judge.gemini.empty_response", "req_id", rid)
		return Judgment{}, fmt.Errorf("empty response from gemini")
	}
	// models occasionally wrap the JSON in a markdown fence
	if !gjson.Valid(raw) {
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "```json"), "```")
		raw = strings.TrimSpace(raw)
	}

	if err := ValidateJSONAgainstSchema(schema, []byte(raw)); err != nil {
		g.logger.Error("judge.gemini.schema_validation_failed",
			"req_id", rid, "error", err, "content", raw,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Judgment{}, fmt.Errorf("verdict validation: %w", err)
	}

	var out Judgment
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Judgment{}, fmt.Errorf("unmarshal verdict: %w", err)
	}

	g.logger.Info("judge.gemini.ok",
		"req_id", rid,
		"matched", out.Matched,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func buildJudgePrompt(text string, claim Claim, schema map[string]any) string {
	var b strings.Builder
	b.WriteString("DOCUMENT_TEXT:\n\"\"\"")
	if len(text) > 6000 {
		b.WriteString(text[:6000])
	} else {
		b.WriteString(text)
	}
	b.WriteString("\"\"\"\n\nUSER_INPUTS:\n")
	b.WriteString("Certificate Name: " + claim.CertificateName + "\n")
	b.WriteString("Issuer: " + claim.Issuer + "\n")
	b.WriteString("Certificate Number: " + claim.CertificateNumber + "\n")
	b.WriteString("\nJSON Schema:\n" + mustJSON(schema))
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
