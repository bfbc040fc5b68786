// Package search implements faceted full-text search over indexed works.
//
// The document store stays authoritative; this package maintains a
// rebuildable projection of each work in the search index and compiles the
// user-facing query syntax into structured boolean requests.
//
// # Query Syntax
//
//   - `>N` / `<N`  : strict chapter-count range, consumed from free text.
//   - `foo$`       : exact keyword match; `r18$` and other recognized
//     advisory tags target the tag field instead.
//   - `-foo$`      : negated exact match.
//   - anything else: AND-combined free text over translated title, source
//     title, authors, tags, and keywords.
//
// A query with no free text sorts by most-recently-updated.
package search
