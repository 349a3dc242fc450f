package ledger

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// GatewayConfig configures the HTTP ledger gateway client.
type GatewayConfig struct {
	URL           string // gateway base URL
	PrivateKeyHex string // hex-encoded ed25519 seed or full private key
	Timeout       time.Duration
}

// Gateway submits self-referential anchor transactions to a ledger gateway
// over HTTP. The envelope embeds the payload, is signed ed25519, and the
// gateway responds with the broadcast transaction hash.
type Gateway struct {
	cfg     GatewayConfig
	client  *resty.Client
	priv    ed25519.PrivateKey
	address string
	logger  *slog.Logger
}

func NewGateway(cfg GatewayConfig, logger *slog.Logger) (*Gateway, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("ledger gateway: URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	priv, err := parsePrivateKey(cfg.PrivateKeyHex)
	if err != nil {
		return nil, err
	}
	pub := priv.Public().(ed25519.PublicKey)

	return &Gateway{
		cfg:     cfg,
		client:  resty.New().SetTimeout(cfg.Timeout).SetBaseURL(cfg.URL),
		priv:    priv,
		address: hex.EncodeToString(pub),
		logger:  logger,
	}, nil
}

func parsePrivateKey(keyHex string) (ed25519.PrivateKey, error) {
	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("ledger gateway: decode private key: %w", err)
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	default:
		return nil, fmt.Errorf("ledger gateway: private key must be %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

// Anchor signs and broadcasts a self-referential transaction carrying the
// payload, returning the gateway's transaction hash.
func (g *Gateway) Anchor(ctx context.Context, id string, payload []byte) (string, error) {
	start := time.Now()
	sig := ed25519.Sign(g.priv, payload)

	body := map[string]any{
		"from":       g.address,
		"to":         g.address, // self-transfer with the payload embedded
		"value":      "0x0",
		"data":       hex.EncodeToString(payload),
		"reference":  id,
		"signature":  hex.EncodeToString(sig),
		"public_key": g.address,
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/transactions")
	if err != nil {
		g.logger.Error("ledger.broadcast_failed", "id", id, "error", err)
		return "", fmt.Errorf("broadcast: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		g.logger.Error("ledger.broadcast_rejected", "id", id, "status", resp.StatusCode())
		return "", fmt.Errorf("broadcast: gateway status %d: %s", resp.StatusCode(), resp.String())
	}

	txRef := gjson.GetBytes(resp.Body(), "tx_hash").String()
	if txRef == "" {
		txRef = gjson.GetBytes(resp.Body(), "transaction_hash").String()
	}
	if txRef == "" {
		return "", fmt.Errorf("broadcast: gateway response missing tx_hash: %s", resp.String())
	}

	g.logger.Info("ledger.anchored",
		"id", id,
		"tx_ref", txRef,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return txRef, nil
}
