// Package verdict holds the status state machine as a pure function, kept
// free of I/O so the precedence rules can be tested in isolation.
package verdict

import (
	"fmt"

	"github.com/microcred/credential-vault/constants"
	"github.com/microcred/credential-vault/internal/corroborate"
	"github.com/microcred/credential-vault/internal/verify"
)

// Input is everything the state machine is allowed to look at. Corroboration
// is nil when no URL was supplied; that absence is distinct from a checked
// but indeterminate outcome.
type Input struct {
	ExtractedText string
	Match         verify.Judgment
	Corroboration *corroborate.Judgment
}

// Result pairs the terminal status with the assembled human-readable note.
type Result struct {
	Status constants.VerificationStatus
	Note   string
}

// Decide applies the transitions in precedence order:
//
//  1. text shorter than the analyzable minimum → rejected
//  2. non-match → pending, requires manual review
//  3. match → tentatively verified; a Contradicted corroboration demotes to
//     pending, Corroborated and Indeterminate leave it verified
//
// Corroboration only ever demotes; it can never promote past the analyzer's
// verdict.
func Decide(in Input) Result {
	if len(in.ExtractedText) < verify.MinAnalyzableLength {
		return Result{
			Status: constants.StatusRejected,
			Note:   "Parsing failed or document unreadable (REJECTED).",
		}
	}

	if !in.Match.Matched {
		return Result{
			Status: constants.StatusPending,
			Note:   fmt.Sprintf("AI analysis inconclusive: %s. Requires manual review.", in.Match.Reason),
		}
	}

	status := constants.StatusVerified
	note := fmt.Sprintf("AI Analysis: %s (Internal AI Match Confirmed)", in.Match.Reason)

	if in.Corroboration != nil {
		note += fmt.Sprintf(" | URL Check: %s", in.Corroboration.Note)
		if in.Corroboration.Outcome == constants.CorroborationContradicted {
			status = constants.StatusPending
			note += " (Demoted due to failed URL validation)."
		}
	}

	return Result{Status: status, Note: note}
}
