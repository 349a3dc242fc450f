package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/microcred/credential-vault/constants"
	"github.com/microcred/credential-vault/db/ent/schema/utils"

	"github.com/google/uuid"
)

type VerificationJob struct{ ent.Schema }

func (VerificationJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_job"},
	}
}

func (VerificationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("credential_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("extract_method").Optional().Nillable(),
		field.Int("extract_pages").Optional().Nillable(),
		field.Int64("extract_duration_ms").Optional().Nillable(),
	}
}

func (VerificationJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", CredentialFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.From("profile", Profile.Type).
			Ref("jobs").
			Field("profile_id").
			Unique().
			Required(),
		edge.From("credential", Credential.Type).
			Ref("jobs").
			Field("credential_id").
			Unique(),
	}
}

func (VerificationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "status", "started_at"),
		index.Fields("file_id"),
		index.Fields("credential_id"),
	}
}
