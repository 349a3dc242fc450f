// Package ledger anchors content fingerprints on an external immutable
// ledger. Anchoring is best-effort: failures are recorded in the receipt and
// never block or change the verification status.
package ledger

import (
	"context"

	"github.com/microcred/credential-vault/constants"
)

// Receipt is the three-way result of an anchoring attempt. It is always a
// value, never a raised failure.
type Receipt struct {
	State  constants.AnchorState
	TxRef  string // set when State == AnchorSucceeded
	Reason string // set when State != AnchorSucceeded
}

// NotAttempted marks anchoring as skipped (no gateway configured, or no
// fingerprint to anchor).
func NotAttempted(reason string) Receipt {
	return Receipt{State: constants.AnchorNotAttempted, Reason: reason}
}

// Failed marks an attempted anchor that did not land.
func Failed(reason string) Receipt {
	return Receipt{State: constants.AnchorFailed, Reason: reason}
}

// Succeeded carries the ledger transaction reference.
func Succeeded(txRef string) Receipt {
	return Receipt{State: constants.AnchorSucceeded, TxRef: txRef}
}

// Anchorer submits a payload to the ledger and returns the transaction
// reference. Implementations sign with a process-held key.
type Anchorer interface {
	Anchor(ctx context.Context, id string, payload []byte) (string, error)
}
