package search

import (
	"strconv"
	"strings"

	"novel-hub/core/index"
	"novel-hub/feature/novel/models"
)

// Level is the content-advisory facet of a search.
type Level string

const (
	// LevelAll applies no advisory constraint.
	LevelAll Level = "all"
	// LevelGeneral excludes works carrying any adult advisory tag.
	LevelGeneral Level = "general"
	// LevelAdult requires at least one adult advisory tag.
	LevelAdult Level = "adult"
)

// Filters are the independent optional facets of a search. Zero values apply
// no constraint.
type Filters struct {
	// Provider restricts to one provider id.
	Provider string
	// Classification restricts to one publication state.
	Classification *models.Classification
	// Level is the content-advisory facet; empty means LevelAll.
	Level Level
	// HasMT requires at least one machine-translated chapter.
	HasMT bool
}

// textFields are the fields free text matches against, most specific first.
var textFields = []string{
	index.FieldTitleZh,
	index.FieldTitle,
	index.FieldAuthors,
	index.FieldTags,
	index.FieldKeywords,
}

// Compile turns a raw user query plus facet filters into a structured boolean
// request.
//
// The raw query is whitespace-tokenized. ">N" and "<N" tokens become strict
// chapter-count range constraints. Tokens ending in "$" are exact tag or
// keyword constraints ("-" prefix negates); recognized advisory tags target
// the tag field, everything else the keyword field. Remaining tokens form one
// AND-combined multi-field text query. A request without free text sorts by
// recency instead, since there is no relevance to rank by.
func Compile(raw string, filters Filters, page, pageSize int) index.Request {
	req := index.Request{Page: page, PageSize: pageSize}

	if filters.Provider != "" {
		req.Must = append(req.Must, index.Term{Field: index.FieldProvider, Value: filters.Provider})
	}
	if filters.Classification != nil {
		req.Must = append(req.Must, index.Term{Field: index.FieldClassification, Value: int(*filters.Classification)})
	}
	switch filters.Level {
	case LevelGeneral:
		for _, tag := range models.AdultTags() {
			req.MustNot = append(req.MustNot, index.Term{Field: index.FieldTags, Value: tag})
		}
	case LevelAdult:
		for _, tag := range models.AdultTags() {
			req.Any = append(req.Any, index.Term{Field: index.FieldTags, Value: tag})
		}
	}
	if filters.HasMT {
		req.Must = append(req.Must, index.Term{Field: index.FieldHasMT, Value: true})
	}

	var free []string
	for _, tok := range strings.Fields(raw) {
		if r, ok := rangeToken(tok); ok {
			req.Ranges = append(req.Ranges, r)
			continue
		}
		if term, negated, ok := exactToken(tok); ok {
			if negated {
				req.MustNot = append(req.MustNot, term)
			} else {
				req.Must = append(req.Must, term)
			}
			continue
		}
		free = append(free, tok)
	}

	if len(free) > 0 {
		req.Text = &index.Text{Fields: textFields, Query: strings.Join(free, " ")}
	} else {
		req.SortByRecency = true
	}
	return req
}

// rangeToken parses ">N" and "<N" into a strict chapter-count range.
func rangeToken(tok string) (index.Range, bool) {
	if len(tok) < 2 || (tok[0] != '>' && tok[0] != '<') {
		return index.Range{}, false
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 {
		return index.Range{}, false
	}
	r := index.Range{Field: index.FieldChapterCount}
	if tok[0] == '>' {
		r.GT = &n
	} else {
		r.LT = &n
	}
	return r, true
}

// exactToken parses "literal$" and "-literal$" into an exact tag or keyword
// constraint.
func exactToken(tok string) (index.Term, bool, bool) {
	if !strings.HasSuffix(tok, "$") {
		return index.Term{}, false, false
	}
	negated := strings.HasPrefix(tok, "-")
	literal := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(tok, "-"), "$"))
	if literal == "" {
		return index.Term{}, false, false
	}

	field := index.FieldKeywords
	if models.IsAdvisoryTag(literal) {
		field = index.FieldTags
	}
	return index.Term{Field: field, Value: literal}, negated, true
}
