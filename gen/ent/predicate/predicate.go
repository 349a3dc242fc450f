// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// CredentialFile is the predicate function for credentialfile builders.
type CredentialFile func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// VerificationJob is the predicate function for verificationjob builders.
type VerificationJob func(*sql.Selector)
