package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type VerificationLog struct{ ent.Schema }

func (VerificationLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_logs"},
	}
}

func (VerificationLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		// user-submitted field -> value map
		field.JSON("submitted_data", json.RawMessage{}),
		// per-field report: status, similarity, notes
		field.JSON("report", json.RawMessage{}),
		field.String("summary").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (VerificationLog) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY logs -> ONE document
		edge.From("document", Document.Type).
			Ref("verifications").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (VerificationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
	}
}
