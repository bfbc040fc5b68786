package models

import "time"

// Classification is the publication state of a work.
type Classification int

const (
	// ClassificationUnknown is the state before the first successful merge.
	ClassificationUnknown Classification = 0
	// ClassificationOngoing marks a serial still receiving chapters.
	ClassificationOngoing Classification = 1
	// ClassificationCompleted marks a finished serial.
	ClassificationCompleted Classification = 2
	// ClassificationShort marks short-form works (one-shots).
	ClassificationShort Classification = 3
)

// Content-advisory tags recognized across providers. Tags are stored
// lowercased.
const (
	TagR18      = "r18"
	TagR18G     = "r18g"
	TagGore     = "gore"
	TagViolence = "violence"
)

// AdultTags is the advisory subset that the "general" search level excludes
// and the "adult" level requires.
func AdultTags() []string {
	return []string{TagR18, TagR18G}
}

// IsAdvisoryTag reports whether the literal names a recognized
// content-advisory tag.
func IsAdvisoryTag(s string) bool {
	switch s {
	case TagR18, TagR18G, TagGore, TagViolence:
		return true
	}
	return false
}

// WorkKey identifies one work on one provider. It is globally unique and
// never changes after creation.
type WorkKey struct {
	Provider string
	WorkID   string
}

// Author is one entry of a work's author list.
type Author struct {
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// TocItem is one chapter entry of a work's table of contents. Ordering within
// the containing slice reflects remote presentation order after each merge.
type TocItem struct {
	// Title is the source-language chapter title.
	Title string `json:"title"`
	// TitleZh is the human-translated title, if any.
	TitleZh string `json:"title_zh,omitempty"`
	// ChapterID is the provider's stable chapter identifier. Empty for
	// chapters the provider does not expose an identifier for.
	ChapterID string `json:"chapter_id,omitempty"`
	// CreatedAt is the remote creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// WorkMetadata is the canonical record for one (provider, workID) pair.
type WorkMetadata struct {
	Provider string `json:"provider"`
	WorkID   string `json:"work_id"`

	Title   string   `json:"title"`
	TitleZh string   `json:"title_zh,omitempty"`
	Authors []Author `json:"authors,omitempty"`

	Classification Classification `json:"classification"`
	Tags           []string       `json:"tags,omitempty"`
	Keywords       []string       `json:"keywords,omitempty"`

	Synopsis   string `json:"synopsis,omitempty"`
	SynopsisZh string `json:"synopsis_zh,omitempty"`

	// Glossary maps source terms to their translations. GlossaryRevision is
	// reissued on every glossary update so consumers can invalidate caches.
	Glossary         map[string]string `json:"glossary,omitempty"`
	GlossaryRevision string            `json:"glossary_revision"`

	Toc []TocItem `json:"toc"`

	Visited int64 `json:"visited"`
	// TranslateProgress counts translated chapters per translation engine.
	TranslateProgress map[string]int `json:"translate_progress,omitempty"`

	// PauseUpdate disables all refetching regardless of age.
	PauseUpdate bool `json:"pause_update"`

	ExternalLibraryLink string `json:"external_library_link,omitempty"`
	CoverURL            string `json:"cover_url,omitempty"`

	// SyncAt is the last time remote state was fetched successfully.
	SyncAt time.Time `json:"sync_at"`
	// ChangeAt is the last time any content changed, remote or human edit.
	ChangeAt time.Time `json:"change_at"`
	// UpdateAt is the last time a change was judged user-visible; it only
	// advances on remote changes, never on human edits.
	UpdateAt time.Time `json:"update_at"`
}

// Key returns the work's identity.
func (w *WorkMetadata) Key() WorkKey {
	return WorkKey{Provider: w.Provider, WorkID: w.WorkID}
}

// HasMachineTranslation reports whether any translation engine has produced
// at least one chapter.
func (w *WorkMetadata) HasMachineTranslation() bool {
	for _, n := range w.TranslateProgress {
		if n > 0 {
			return true
		}
	}
	return false
}

// RemoteWork is the snapshot a provider adapter returns for one work.
type RemoteWork struct {
	Title          string
	Authors        []Author
	Classification Classification
	Tags           []string
	Keywords       []string
	Synopsis       string
	CoverURL       string
	Toc            []TocItem
}

// RankItem is one entry of a provider rank listing.
type RankItem struct {
	WorkID   string            `json:"work_id"`
	Title    string            `json:"title"`
	Tags     []string          `json:"tags,omitempty"`
	Keywords []string          `json:"keywords,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// WorkOutline is a read-optimized listing projection combining live rank
// metadata with cached store data. It is computed per request, never
// persisted.
type WorkOutline struct {
	Provider string            `json:"provider"`
	WorkID   string            `json:"work_id"`
	Title    string            `json:"title"`
	TitleZh  string            `json:"title_zh,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
	Keywords []string          `json:"keywords,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`

	// Cached is true when the work exists in the document store; the fields
	// below are only meaningful then.
	Cached       bool       `json:"cached"`
	ChapterCount int        `json:"chapter_count,omitempty"`
	UpdateAt     *time.Time `json:"update_at,omitempty"`
}
