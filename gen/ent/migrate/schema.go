// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "certificate_name", Type: field.TypeString},
		{Name: "issuer", Type: field.TypeString},
		{Name: "certificate_number", Type: field.TypeString},
		{Name: "certificate_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "verification_note", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "matched", Type: field.TypeBool, Default: false},
		{Name: "match_reason", Type: field.TypeString},
		{Name: "corroboration_outcome", Type: field.TypeString, Nullable: true},
		{Name: "corroboration_note", Type: field.TypeString, Nullable: true},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "anchor_state", Type: field.TypeString, Default: "NOT_ATTEMPTED"},
		{Name: "anchor_tx_ref", Type: field.TypeString, Nullable: true},
		{Name: "anchor_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credentials_credential_files_credentials",
				Columns:    []*schema.Column{CredentialsColumns[19]},
				RefColumns: []*schema.Column{CredentialFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "credentials_profiles_credentials",
				Columns:    []*schema.Column{CredentialsColumns[20]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "credential_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CredentialsColumns[20], CredentialsColumns[18]},
			},
			{
				Name:    "credential_status",
				Unique:  false,
				Columns: []*schema.Column{CredentialsColumns[5]},
			},
			{
				Name:    "credential_file_id",
				Unique:  false,
				Columns: []*schema.Column{CredentialsColumns[19]},
			},
		},
	}
	// CredentialFilesColumns holds the columns for the "credential_files" table.
	CredentialFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "stored_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// CredentialFilesTable holds the schema information for the "credential_files" table.
	CredentialFilesTable = &schema.Table{
		Name:       "credential_files",
		Columns:    CredentialFilesColumns,
		PrimaryKey: []*schema.Column{CredentialFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credential_files_profiles_files",
				Columns:    []*schema.Column{CredentialFilesColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "credentialfile_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{CredentialFilesColumns[7], CredentialFilesColumns[2]},
			},
			{
				Name:    "credentialfile_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{CredentialFilesColumns[7], CredentialFilesColumns[6]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// VerificationJobColumns holds the columns for the "verification_job" table.
	VerificationJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extract_method", Type: field.TypeString, Nullable: true},
		{Name: "extract_pages", Type: field.TypeInt, Nullable: true},
		{Name: "extract_duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "credential_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// VerificationJobTable holds the schema information for the "verification_job" table.
	VerificationJobTable = &schema.Table{
		Name:       "verification_job",
		Columns:    VerificationJobColumns,
		PrimaryKey: []*schema.Column{VerificationJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_job_credentials_jobs",
				Columns:    []*schema.Column{VerificationJobColumns[10]},
				RefColumns: []*schema.Column{CredentialsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "verification_job_credential_files_jobs",
				Columns:    []*schema.Column{VerificationJobColumns[11]},
				RefColumns: []*schema.Column{CredentialFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "verification_job_profiles_jobs",
				Columns:    []*schema.Column{VerificationJobColumns[12]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[12], VerificationJobColumns[4], VerificationJobColumns[2]},
			},
			{
				Name:    "verificationjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[11]},
			},
			{
				Name:    "verificationjob_credential_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CredentialsTable,
		CredentialFilesTable,
		ProfilesTable,
		VerificationJobTable,
	}
)

func init() {
	CredentialsTable.ForeignKeys[0].RefTable = CredentialFilesTable
	CredentialsTable.ForeignKeys[1].RefTable = ProfilesTable
	CredentialsTable.Annotation = &entsql.Annotation{
		Table: "credentials",
	}
	CredentialFilesTable.ForeignKeys[0].RefTable = ProfilesTable
	CredentialFilesTable.Annotation = &entsql.Annotation{
		Table: "credential_files",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	VerificationJobTable.ForeignKeys[0].RefTable = CredentialsTable
	VerificationJobTable.ForeignKeys[1].RefTable = CredentialFilesTable
	VerificationJobTable.ForeignKeys[2].RefTable = ProfilesTable
	VerificationJobTable.Annotation = &entsql.Annotation{
		Table: "verification_job",
	}
}
