package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// WorkRecord is the gorm persistence shape of WorkMetadata. Structured
// fields are stored as JSON columns; the (provider, work_id) pair carries a
// unique index.
type WorkRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Provider string `gorm:"column:provider;size:32;uniqueIndex:idx_provider_work"`
	WorkID   string `gorm:"column:work_id;size:64;uniqueIndex:idx_provider_work"`

	Title   string         `gorm:"column:title;size:512"`
	TitleZh string         `gorm:"column:title_zh;size:512"`
	Authors datatypes.JSON `gorm:"column:authors"`

	Classification int            `gorm:"column:classification"`
	Tags           datatypes.JSON `gorm:"column:tags"`
	Keywords       datatypes.JSON `gorm:"column:keywords"`

	Synopsis   string `gorm:"column:synopsis;type:text"`
	SynopsisZh string `gorm:"column:synopsis_zh;type:text"`

	Glossary         datatypes.JSON `gorm:"column:glossary"`
	GlossaryRevision string         `gorm:"column:glossary_revision;size:36"`

	Toc datatypes.JSON `gorm:"column:toc"`

	Visited           int64          `gorm:"column:visited"`
	TranslateProgress datatypes.JSON `gorm:"column:translate_progress"`

	PauseUpdate bool `gorm:"column:pause_update"`

	ExternalLibraryLink string `gorm:"column:external_library_link;size:512"`
	CoverURL            string `gorm:"column:cover_url;size:512"`

	SyncAt   time.Time `gorm:"column:sync_at"`
	ChangeAt time.Time `gorm:"column:change_at"`
	UpdateAt time.Time `gorm:"column:update_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the gorm table name.
func (WorkRecord) TableName() string {
	return "works"
}

// ToDomain converts the persistence shape back into WorkMetadata.
func (r *WorkRecord) ToDomain() (*WorkMetadata, error) {
	w := &WorkMetadata{
		Provider:            r.Provider,
		WorkID:              r.WorkID,
		Title:               r.Title,
		TitleZh:             r.TitleZh,
		Classification:      Classification(r.Classification),
		Synopsis:            r.Synopsis,
		SynopsisZh:          r.SynopsisZh,
		GlossaryRevision:    r.GlossaryRevision,
		Visited:             r.Visited,
		PauseUpdate:         r.PauseUpdate,
		ExternalLibraryLink: r.ExternalLibraryLink,
		CoverURL:            r.CoverURL,
		SyncAt:              r.SyncAt,
		ChangeAt:            r.ChangeAt,
		UpdateAt:            r.UpdateAt,
	}

	for _, col := range []struct {
		name string
		raw  datatypes.JSON
		dst  any
	}{
		{"authors", r.Authors, &w.Authors},
		{"tags", r.Tags, &w.Tags},
		{"keywords", r.Keywords, &w.Keywords},
		{"glossary", r.Glossary, &w.Glossary},
		{"toc", r.Toc, &w.Toc},
		{"translate_progress", r.TranslateProgress, &w.TranslateProgress},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s column: %w", col.name, err)
		}
	}

	return w, nil
}

// FromDomain converts WorkMetadata into its persistence shape.
func FromDomain(w *WorkMetadata) (*WorkRecord, error) {
	r := &WorkRecord{
		Provider:            w.Provider,
		WorkID:              w.WorkID,
		Title:               w.Title,
		TitleZh:             w.TitleZh,
		Classification:      int(w.Classification),
		Synopsis:            w.Synopsis,
		SynopsisZh:          w.SynopsisZh,
		GlossaryRevision:    w.GlossaryRevision,
		Visited:             w.Visited,
		PauseUpdate:         w.PauseUpdate,
		ExternalLibraryLink: w.ExternalLibraryLink,
		CoverURL:            w.CoverURL,
		SyncAt:              w.SyncAt,
		ChangeAt:            w.ChangeAt,
		UpdateAt:            w.UpdateAt,
	}

	for _, col := range []struct {
		name string
		src  any
		dst  *datatypes.JSON
	}{
		{"authors", w.Authors, &r.Authors},
		{"tags", w.Tags, &r.Tags},
		{"keywords", w.Keywords, &r.Keywords},
		{"glossary", w.Glossary, &r.Glossary},
		{"toc", w.Toc, &r.Toc},
		{"translate_progress", w.TranslateProgress, &r.TranslateProgress},
	} {
		raw, err := json.Marshal(col.src)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s column: %w", col.name, err)
		}
		*col.dst = raw
	}

	return r, nil
}
