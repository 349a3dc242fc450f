package verify

import (
	"context"
	"fmt"
	"strings"
)

// RuleJudge is the deterministic judgment strategy: it confirms a claim when
// all three claimed fields appear in the text, ignoring case and punctuation.
// Used in tests and as the fallback strategy when no remote judge is
// configured but strict non-match defaults are not wanted.
type RuleJudge struct{}

func NewRuleJudge() *RuleJudge { return &RuleJudge{} }

func (RuleJudge) Judge(_ context.Context, text string, claim Claim) (Judgment, error) {
	haystack := foldForMatch(text)

	missing := make([]string, 0, 3)
	for _, f := range []struct{ label, value string }{
		{"certificate name", claim.CertificateName},
		{"issuer", claim.Issuer},
		{"certificate number", claim.CertificateNumber},
	} {
		if f.value == "" || !strings.Contains(haystack, foldForMatch(f.value)) {
			missing = append(missing, f.label)
		}
	}

	if len(missing) > 0 {
		return Judgment{
			Matched: false,
			Reason:  fmt.Sprintf("could not locate %s in the document text", strings.Join(missing, ", ")),
		}, nil
	}
	return Judgment{
		Matched: true,
		Reason:  "all claimed fields were found in the document text",
	}, nil
}

// foldForMatch lowercases and strips everything but letters and digits so
// formatting and punctuation differences do not break containment checks.
func foldForMatch(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
