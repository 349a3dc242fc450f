package verdict

import (
	"strings"
	"testing"

	"github.com/microcred/credential-vault/constants"
	"github.com/microcred/credential-vault/internal/corroborate"
	"github.com/microcred/credential-vault/internal/verify"
)

const readableText = "This certifies that Jane Example has successfully completed the Cloud Practitioner program under certificate EX-1001 issued by Example Institute."

func TestDecideShortTextRejects(t *testing.T) {
	for _, text := range []string{"", "too short", strings.Repeat("x", 49)} {
		got := Decide(Input{
			ExtractedText: text,
			Match:         verify.Judgment{Matched: true, Reason: "would match"},
		})
		if got.Status != constants.StatusRejected {
			t.Errorf("text %q: status = %q, want rejected", text, got.Status)
		}
		if !strings.Contains(got.Note, "unreadable") {
			t.Errorf("text %q: note %q missing unreadable marker", text, got.Note)
		}
	}
}

func TestDecideNonMatchIsPending(t *testing.T) {
	got := Decide(Input{
		ExtractedText: readableText,
		Match:         verify.Judgment{Matched: false, Reason: "issuer not found in document"},
	})
	if got.Status != constants.StatusPending {
		t.Fatalf("status = %q, want pending", got.Status)
	}
	if !strings.Contains(got.Note, "issuer not found in document") {
		t.Errorf("note %q does not carry the analyzer reason", got.Note)
	}
	if !strings.Contains(got.Note, "Requires manual review") {
		t.Errorf("note %q missing manual review tag", got.Note)
	}
}

func TestDecideMatchWithoutURLIsVerified(t *testing.T) {
	got := Decide(Input{
		ExtractedText: readableText,
		Match:         verify.Judgment{Matched: true, Reason: "all fields present"},
	})
	if got.Status != constants.StatusVerified {
		t.Fatalf("status = %q, want verified", got.Status)
	}
	if strings.Contains(got.Note, "URL Check") {
		t.Errorf("note %q mentions a URL check that never ran", got.Note)
	}
}

func TestDecideCorroborationOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		outcome    constants.CorroborationOutcome
		wantStatus constants.VerificationStatus
		wantInNote string
	}{
		{"corroborated stays verified", constants.CorroborationCorroborated, constants.StatusVerified, "URL Check"},
		{"indeterminate stays verified", constants.CorroborationIndeterminate, constants.StatusVerified, "URL Check"},
		{"contradicted demotes", constants.CorroborationContradicted, constants.StatusPending, "Demoted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(Input{
				ExtractedText: readableText,
				Match:         verify.Judgment{Matched: true, Reason: "all fields present"},
				Corroboration: &corroborate.Judgment{Outcome: tt.outcome, Note: "checker note"},
			})
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if !strings.Contains(got.Note, tt.wantInNote) {
				t.Errorf("note %q missing %q", got.Note, tt.wantInNote)
			}
		})
	}
}

// Corroboration may only demote. Whatever the checker says, a non-match never
// becomes verified and a demotion never lands anywhere but pending.
func TestDecideCorroborationNeverPromotes(t *testing.T) {
	for _, outcome := range []constants.CorroborationOutcome{
		constants.CorroborationCorroborated,
		constants.CorroborationIndeterminate,
		constants.CorroborationContradicted,
	} {
		got := Decide(Input{
			ExtractedText: readableText,
			Match:         verify.Judgment{Matched: false, Reason: "name mismatch"},
			Corroboration: &corroborate.Judgment{Outcome: outcome, Note: "irrelevant"},
		})
		if got.Status == constants.StatusVerified {
			t.Errorf("outcome %s promoted a non-match to verified", outcome)
		}
	}
}
