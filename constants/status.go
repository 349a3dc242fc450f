package constants

// VerificationStatus is the terminal outcome of a verification run.
type VerificationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusVerified VerificationStatus = "verified" // high-confidence, all checks passed
	StatusPending  VerificationStatus = "pending"  // needs human review
	StatusRejected VerificationStatus = "rejected" // unreadable or illegible document
)

// VerificationStatuses holds the allowed values for the credential status field.
var VerificationStatuses = []string{
	string(StatusVerified),
	string(StatusPending),
	string(StatusRejected),
}

// JobStatus is the canonical status for rows in verification_job.
type JobStatus string

const (
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 1 completed (text extracted)
	JobStatusDone      JobStatus = "DONE"       // record assembled and persisted
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

// CorroborationOutcome is the verdict of the external URL check.
type CorroborationOutcome string

const (
	CorroborationCorroborated  CorroborationOutcome = "CORROBORATED"
	CorroborationIndeterminate CorroborationOutcome = "INDETERMINATE"
	CorroborationContradicted  CorroborationOutcome = "CONTRADICTED"
)

// AnchorState records what happened to the ledger anchoring attempt.
type AnchorState string

const (
	AnchorNotAttempted AnchorState = "NOT_ATTEMPTED"
	AnchorFailed       AnchorState = "FAILED"
	AnchorSucceeded    AnchorState = "ANCHORED"
)

// AnchorStates holds the allowed values for the credential anchor_state field.
var AnchorStates = []string{
	string(AnchorNotAttempted),
	string(AnchorFailed),
	string(AnchorSucceeded),
}
