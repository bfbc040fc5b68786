package store

import (
	"context"

	"novel-hub/feature/novel/models"
)

// Patch field names. They address domain fields, not store columns, so the
// synchronization service stays free of any store-specific update
// vocabulary.
const (
	FieldTitle               = "title"
	FieldTitleZh             = "title_zh"
	FieldAuthors             = "authors"
	FieldClassification      = "classification"
	FieldTags                = "tags"
	FieldKeywords            = "keywords"
	FieldSynopsis            = "synopsis"
	FieldSynopsisZh          = "synopsis_zh"
	FieldGlossary            = "glossary"
	FieldGlossaryRevision    = "glossary_revision"
	FieldToc                 = "toc"
	FieldTranslateProgress   = "translate_progress"
	FieldPauseUpdate         = "pause_update"
	FieldExternalLibraryLink = "external_library_link"
	FieldCoverURL            = "cover_url"
	FieldSyncAt              = "sync_at"
	FieldChangeAt            = "change_at"
	FieldUpdateAt            = "update_at"
)

// Field is one (field, newValue) pair of a patch.
type Field struct {
	Name  string
	Value any
}

// Patch is an ordered list of field updates applied atomically by the
// store's conditional update.
type Patch []Field

// Set appends a field update and returns the patch for chaining.
func (p Patch) Set(name string, value any) Patch {
	return append(p, Field{Name: name, Value: value})
}

// WorkStore is the document store contract for work metadata.
type WorkStore interface {
	// FindOne returns the record for key, or nil when absent.
	FindOne(ctx context.Context, key models.WorkKey) (*models.WorkMetadata, error)
	// InsertOne creates the record; the (provider, workID) pair must not
	// exist yet.
	InsertOne(ctx context.Context, w *models.WorkMetadata) error
	// FindOneAndUpdate applies the patch atomically and returns the
	// post-update record, or nil when the record is absent.
	FindOneAndUpdate(ctx context.Context, key models.WorkKey, patch Patch) (*models.WorkMetadata, error)
	// IncrementVisit bumps the visit counter by one.
	IncrementVisit(ctx context.Context, key models.WorkKey) error
	// CountByProvider counts stored works, optionally scoped to one
	// provider (empty counts everything).
	CountByProvider(ctx context.Context, provider string) (int64, error)
	// List pages through all records, ordered by primary key, for index
	// rebuilds.
	List(ctx context.Context, offset, limit int) ([]*models.WorkMetadata, error)
}
