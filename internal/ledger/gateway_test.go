package ledger

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testSeedHex() string {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = 7
	}
	return hex.EncodeToString(seed)
}

func TestAnchorBroadcastsSignedEnvelope(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions" {
			t.Errorf("path = %s, want /transactions", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &captured)
		_, _ = w.Write([]byte(`{"tx_hash":"0xabc123"}`))
	}))
	defer srv.Close()

	g, err := NewGateway(GatewayConfig{URL: srv.URL, PrivateKeyHex: testSeedHex(), Timeout: 2 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	payload := []byte("f00dfeed")
	txRef, err := g.Anchor(context.Background(), "cred-1", payload)
	if err != nil {
		t.Fatalf("Anchor: %v", err)
	}
	if txRef != "0xabc123" {
		t.Fatalf("txRef = %s, want 0xabc123", txRef)
	}

	// self-referential envelope
	if captured["from"] != captured["to"] {
		t.Fatalf("from %v != to %v", captured["from"], captured["to"])
	}

	// signature must verify against the advertised public key
	pub, _ := hex.DecodeString(captured["public_key"].(string))
	sig, _ := hex.DecodeString(captured["signature"].(string))
	data, _ := hex.DecodeString(captured["data"].(string))
	if !ed25519.Verify(ed25519.PublicKey(pub), data, sig) {
		t.Fatal("envelope signature does not verify")
	}
}

func TestAnchorGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g, err := NewGateway(GatewayConfig{URL: srv.URL, PrivateKeyHex: testSeedHex()}, nil)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	if _, err := g.Anchor(context.Background(), "cred-1", []byte("x")); err == nil {
		t.Fatal("expected error on gateway 502")
	}
}

func TestAnchorMissingTxHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	g, err := NewGateway(GatewayConfig{URL: srv.URL, PrivateKeyHex: testSeedHex()}, nil)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	if _, err := g.Anchor(context.Background(), "cred-1", []byte("x")); err == nil {
		t.Fatal("expected error when response lacks tx_hash")
	}
}

func TestNewGatewayRejectsBadKeys(t *testing.T) {
	if _, err := NewGateway(GatewayConfig{URL: "http://x", PrivateKeyHex: "zz"}, nil); err == nil {
		t.Fatal("expected error for non-hex key")
	}
	if _, err := NewGateway(GatewayConfig{URL: "http://x", PrivateKeyHex: "abcd"}, nil); err == nil {
		t.Fatal("expected error for wrong-length key")
	}
	if _, err := NewGateway(GatewayConfig{PrivateKeyHex: testSeedHex()}, nil); err == nil {
		t.Fatal("expected error for missing URL")
	}
}
