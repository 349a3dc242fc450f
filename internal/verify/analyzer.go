package verify

import (
	"context"
	"log/slog"
	"time"
)

// MinAnalyzableLength is the fast-rejection threshold: shorter extracted text
// is treated as unreadable before any judge is consulted.
const MinAnalyzableLength = 50

// Analyzer runs the content-match stage. The judge may be nil when no
// judgment strategy is configured; the analyzer then defaults to non-match so
// that judge unavailability can never silently pass a credential.
type Analyzer struct {
	judge  SemanticJudge
	logger *slog.Logger
}

func NewAnalyzer(judge SemanticJudge, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{judge: judge, logger: logger}
}

// Analyze never returns an error: every failure mode maps to a non-match
// judgment with a human-readable reason.
func (a *Analyzer) Analyze(ctx context.Context, text string, claim Claim) Judgment {
	if len(text) < MinAnalyzableLength {
		return Judgment{Matched: false, Reason: "document unreadable or too short"}
	}
	if a.judge == nil {
		a.logger.Warn("analyzer.judge_unavailable", "certificate", claim.CertificateName)
		return Judgment{Matched: false, Reason: "verification unavailable"}
	}

	start := time.Now()
	j, err := a.judge.Judge(ctx, text, claim)
	if err != nil {
		a.logger.Error("analyzer.judge_failed",
			"certificate", claim.CertificateName,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Judgment{Matched: false, Reason: "verification unavailable"}
	}
	a.logger.Info("analyzer.judged",
		"certificate", claim.CertificateName,
		"matched", j.Matched,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return j
}
