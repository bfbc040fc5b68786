package index

// Document is the projection stored in the search index for one work.
// Values are strings, string slices, numbers, or booleans.
type Document map[string]any

// Indexed field names shared by the compiler, the projections, and the
// adapters.
const (
	FieldProvider       = "provider"
	FieldTitle          = "title"
	FieldTitleZh        = "title_zh"
	FieldAuthors        = "authors"
	FieldClassification = "classification"
	FieldTags           = "tags"
	FieldKeywords       = "keywords"
	FieldHasMT          = "has_mt"
	FieldChapterCount   = "chapter_count"
	FieldUpdateAt       = "update_at"
)

// Term is an exact-match constraint on a single field.
// Value may be a string, bool, or int depending on the field.
type Term struct {
	Field string
	Value any
}

// Range is a numeric range constraint on a single field.
// Nil bounds are open; set bounds are exclusive (strict > / <).
type Range struct {
	Field string
	GT    *int
	LT    *int
}

// Text is a free-text constraint: every whitespace-separated term of Query
// must match at least one of Fields.
type Text struct {
	Fields []string
	Query  string
}

// Request is a structured boolean search request. All constraint groups are
// AND-combined; within Any at least one term must match.
type Request struct {
	Must    []Term
	Any     []Term
	MustNot []Term
	Ranges  []Range
	Text    *Text

	// SortByRecency orders results by update_at descending instead of
	// relevance. Set when the request carries no free text.
	SortByRecency bool

	// Page is zero-based.
	Page     int
	PageSize int
}

// Hit is a single search result.
type Hit struct {
	ID     string
	Fields map[string]any
}

// Result is a page of search results plus the total match count.
type Result struct {
	Hits  []Hit
	Total int64
}
