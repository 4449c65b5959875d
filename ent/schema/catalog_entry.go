package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CatalogEntry assigns a quizpack its fixed position in the unlock sequence.
// Orders are 1-based and contiguous; the entry at position 1 is always open.
type CatalogEntry struct {
	ent.Schema
}

func (CatalogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("catalog_order").
			Unique().
			Immutable().
			Comment("1-based position in the unlock sequence"),
		field.Int("quizpack_id").
			Unique().
			Immutable(),
	}
}

func (CatalogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("catalog_order"),
	}
}
