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

	"github.com/google/uuid"
)

type CredentialFile struct {
	ent.Schema
}

func (CredentialFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "credential_files"},
	}
}

func (CredentialFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite unique index
		field.UUID("profile_id", uuid.UUID{}),
		field.String("stored_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (CredentialFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE profile
		edge.From("profile", Profile.Type).
			Ref("files").
			Field("profile_id").
			Required().
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", VerificationJob.Type),
		// ONE file -> MANY credentials (re-uploads produce new records)
		edge.To("credentials", Credential.Type),
	}
}

func (CredentialFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "content_hash").Unique(),
		index.Fields("profile_id", "uploaded_at"),
	}
}
