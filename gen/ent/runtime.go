// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/microcred/credential-vault/db/ent/schema"
	"github.com/microcred/credential-vault/gen/ent/credential"
	"github.com/microcred/credential-vault/gen/ent/credentialfile"
	"github.com/microcred/credential-vault/gen/ent/profile"
	"github.com/microcred/credential-vault/gen/ent/verificationjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescCertificateName is the schema descriptor for certificate_name field.
	credentialDescCertificateName := credentialFields[3].Descriptor()
	// credential.CertificateNameValidator is a validator for the "certificate_name" field. It is called by the builders before save.
	credential.CertificateNameValidator = credentialDescCertificateName.Validators[0].(func(string) error)
	// credentialDescIssuer is the schema descriptor for issuer field.
	credentialDescIssuer := credentialFields[4].Descriptor()
	// credential.IssuerValidator is a validator for the "issuer" field. It is called by the builders before save.
	credential.IssuerValidator = credentialDescIssuer.Validators[0].(func(string) error)
	// credentialDescCertificateNumber is the schema descriptor for certificate_number field.
	credentialDescCertificateNumber := credentialFields[5].Descriptor()
	// credential.CertificateNumberValidator is a validator for the "certificate_number" field. It is called by the builders before save.
	credential.CertificateNumberValidator = credentialDescCertificateNumber.Validators[0].(func(string) error)
	// credentialDescStatus is the schema descriptor for status field.
	credentialDescStatus := credentialFields[7].Descriptor()
	// credential.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	credential.StatusValidator = func() func(string) error {
		validators := credentialDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// credentialDescMatched is the schema descriptor for matched field.
	credentialDescMatched := credentialFields[10].Descriptor()
	// credential.DefaultMatched holds the default value on creation for the matched field.
	credential.DefaultMatched = credentialDescMatched.Default.(bool)
	// credentialDescLevel is the schema descriptor for level field.
	credentialDescLevel := credentialFields[15].Descriptor()
	// credential.DefaultLevel holds the default value on creation for the level field.
	credential.DefaultLevel = credentialDescLevel.Default.(int)
	// credential.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	credential.LevelValidator = credentialDescLevel.Validators[0].(func(int) error)
	// credentialDescAnchorState is the schema descriptor for anchor_state field.
	credentialDescAnchorState := credentialFields[17].Descriptor()
	// credential.DefaultAnchorState holds the default value on creation for the anchor_state field.
	credential.DefaultAnchorState = credentialDescAnchorState.Default.(string)
	// credential.AnchorStateValidator is a validator for the "anchor_state" field. It is called by the builders before save.
	credential.AnchorStateValidator = func() func(string) error {
		validators := credentialDescAnchorState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(anchor_state string) error {
			for _, fn := range fns {
				if err := fn(anchor_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialFields[20].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	// credentialDescID is the schema descriptor for id field.
	credentialDescID := credentialFields[0].Descriptor()
	// credential.DefaultID holds the default value on creation for the id field.
	credential.DefaultID = credentialDescID.Default.(func() uuid.UUID)
	credentialfileFields := schema.CredentialFile{}.Fields()
	_ = credentialfileFields
	// credentialfileDescStoredPath is the schema descriptor for stored_path field.
	credentialfileDescStoredPath := credentialfileFields[2].Descriptor()
	// credentialfile.StoredPathValidator is a validator for the "stored_path" field. It is called by the builders before save.
	credentialfile.StoredPathValidator = credentialfileDescStoredPath.Validators[0].(func(string) error)
	// credentialfileDescContentHash is the schema descriptor for content_hash field.
	credentialfileDescContentHash := credentialfileFields[3].Descriptor()
	// credentialfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	credentialfile.ContentHashValidator = credentialfileDescContentHash.Validators[0].(func([]byte) error)
	// credentialfileDescFilename is the schema descriptor for filename field.
	credentialfileDescFilename := credentialfileFields[4].Descriptor()
	// credentialfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	credentialfile.FilenameValidator = credentialfileDescFilename.Validators[0].(func(string) error)
	// credentialfileDescFileExt is the schema descriptor for file_ext field.
	credentialfileDescFileExt := credentialfileFields[5].Descriptor()
	// credentialfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	credentialfile.FileExtValidator = credentialfileDescFileExt.Validators[0].(func(string) error)
	// credentialfileDescFileSize is the schema descriptor for file_size field.
	credentialfileDescFileSize := credentialfileFields[6].Descriptor()
	// credentialfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	credentialfile.FileSizeValidator = credentialfileDescFileSize.Validators[0].(func(int) error)
	// credentialfileDescUploadedAt is the schema descriptor for uploaded_at field.
	credentialfileDescUploadedAt := credentialfileFields[7].Descriptor()
	// credentialfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	credentialfile.DefaultUploadedAt = credentialfileDescUploadedAt.Default.(func() time.Time)
	// credentialfileDescID is the schema descriptor for id field.
	credentialfileDescID := credentialfileFields[0].Descriptor()
	// credentialfile.DefaultID holds the default value on creation for the id field.
	credentialfile.DefaultID = credentialfileDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	verificationjobFields := schema.VerificationJob{}.Fields()
	_ = verificationjobFields
	// verificationjobDescFormat is the schema descriptor for format field.
	verificationjobDescFormat := verificationjobFields[4].Descriptor()
	// verificationjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	verificationjob.FormatValidator = func() func(string) error {
		validators := verificationjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// verificationjobDescStartedAt is the schema descriptor for started_at field.
	verificationjobDescStartedAt := verificationjobFields[5].Descriptor()
	// verificationjob.DefaultStartedAt holds the default value on creation for the started_at field.
	verificationjob.DefaultStartedAt = verificationjobDescStartedAt.Default.(func() time.Time)
	// verificationjobDescID is the schema descriptor for id field.
	verificationjobDescID := verificationjobFields[0].Descriptor()
	// verificationjob.DefaultID holds the default value on creation for the id field.
	verificationjob.DefaultID = verificationjobDescID.Default.(func() uuid.UUID)
}
