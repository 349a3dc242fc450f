// Package verify decides whether extracted document text corroborates the
// user's claimed certificate identity.
package verify

import "context"

// Claim is the user-asserted certificate identity to confirm in the text.
type Claim struct {
	CertificateName   string `json:"certificate_name"`
	Issuer            string `json:"issuer"`
	CertificateNumber string `json:"certificate_number"`
}

// Judgment is the final word of the content-match stage. Immutable once
// produced; not retried within a single pipeline run.
type Judgment struct {
	Matched bool   `json:"matched"`
	Reason  string `json:"reason"`
}

// SemanticJudge evaluates whether free text substantively matches a
// structured claim. Implementations may be rule engines or remote
// classifiers; they are selected by configuration, never by branching inside
// the analyzer.
type SemanticJudge interface {
	Judge(ctx context.Context, text string, claim Claim) (Judgment, error)
}
