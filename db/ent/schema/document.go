package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/docstack-labs/idverify/constants"
	"github.com/docstack-labs/idverify/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.DocStatuses...)),
		field.String("error_message").Optional().Nillable(),
		// field -> normalized value; unset fields are absent
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		// field -> 1.0/0.0, the binary confidence reported to callers
		field.JSON("field_confidence", json.RawMessage{}).Optional(),
		field.Float32("ocr_mean_confidence").Optional().Nillable(),
		field.Int("image_width").Optional().Nillable(),
		field.Int("image_height").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		// filled in when manual verification completes
		field.JSON("final_verified_data", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY verification logs
		edge.To("verifications", VerificationLog.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("source_path"),
	}
}
