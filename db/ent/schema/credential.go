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

type Credential struct{ ent.Schema }

func (Credential) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "credentials"},
	}
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("file_id", uuid.UUID{}),
		field.String("certificate_name").NotEmpty(),
		field.String("issuer").NotEmpty(),
		field.String("certificate_number").NotEmpty(),
		field.String("certificate_url").Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.VerificationStatuses...)),
		field.String("verification_note").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("extracted_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("matched").Default(false),
		field.String("match_reason"),
		field.String("corroboration_outcome").Optional().Nillable(),
		field.String("corroboration_note").Optional().Nillable(),
		field.Strings("skills").Optional(),
		field.Int("level").Min(1).Default(1),
		field.String("fingerprint").Optional().Nillable(),
		field.String("anchor_state").NotEmpty().
			Default(string(constants.AnchorNotAttempted)).
			Validate(utils.EnumValidator(constants.AnchorStates...)),
		field.String("anchor_tx_ref").Optional().Nillable(),
		field.String("anchor_error").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Credential) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY credentials -> ONE profile
		edge.From("profile", Profile.Type).
			Ref("credentials").
			Field("profile_id").
			Required().
			Unique(),
		// MANY credentials -> ONE file
		edge.From("file", CredentialFile.Type).
			Ref("credentials").
			Field("file_id").
			Required().
			Unique(),
		// ONE credential -> MANY jobs
		edge.To("jobs", VerificationJob.Type),
	}
}

func (Credential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "created_at"),
		index.Fields("status"),
		index.Fields("file_id"),
	}
}
