// Package corroborate fetches a user-supplied verification URL and judges
// whether its content corroborates the claimed certificate.
package corroborate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/microcred/credential-vault/constants"
)

// Judgment is the outcome of one URL check. Produced at most once per
// pipeline run; its absence in a record means no URL was supplied.
type Judgment struct {
	Outcome constants.CorroborationOutcome
	Note    string
}

// Config bounds the outbound fetch.
type Config struct {
	Timeout      time.Duration // default 7s
	MaxRedirects int           // default 3
}

// Checker fetches corroboration URLs with a bounded timeout and redirect
// limit. It never returns an error: every failure class maps to a
// Contradicted judgment with a descriptive note.
type Checker struct {
	client *resty.Client
	logger *slog.Logger
}

func NewChecker(cfg Config, logger *slog.Logger) *Checker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 7 * time.Second
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(cfg.MaxRedirects))
	return &Checker{client: client, logger: logger}
}

// Check fetches url and looks for the normalized claimed name plus a generic
// trust marker in the body.
func (c *Checker) Check(ctx context.Context, url, claimedName string) Judgment {
	start := time.Now()

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		c.logger.Warn("corroborate.fetch_failed", "url", url, "error", err)
		return Judgment{
			Outcome: constants.CorroborationContradicted,
			Note:    fmt.Sprintf("URL check failed: %v (link unreachable)", classifyErr(err)),
		}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.logger.Warn("corroborate.bad_status", "url", url, "status", resp.StatusCode())
		return Judgment{
			Outcome: constants.CorroborationContradicted,
			Note:    fmt.Sprintf("URL check failed: HTTP status %d (link broken or unauthorized)", resp.StatusCode()),
		}
	}

	body := strings.ToLower(string(resp.Body()))
	folded := foldAlnum(body)
	name := foldAlnum(claimedName)

	nameFound := name != "" && strings.Contains(folded, name)
	trustMarker := strings.Contains(body, "verified") || strings.Contains(body, "certificate")

	c.logger.Info("corroborate.fetched",
		"url", url,
		"status", resp.StatusCode(),
		"name_found", nameFound,
		"trust_marker", trustMarker,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if nameFound && trustMarker {
		return Judgment{
			Outcome: constants.CorroborationCorroborated,
			Note:    "URL is valid and key certificate data was found on the page",
		}
	}
	return Judgment{
		Outcome: constants.CorroborationIndeterminate,
		Note:    "URL is valid, but specific details could not be confirmed automatically",
	}
}

func classifyErr(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "deadline exceeded"), strings.Contains(msg, "Timeout"):
		return "timeout"
	case strings.Contains(msg, "no such host"):
		return "unknown host"
	case strings.Contains(msg, "connection refused"):
		return "connection refused"
	default:
		return msg
	}
}

// foldAlnum lowercases and strips non-alphanumerics.
func foldAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
