package index

import "context"

// Index is the search index contract. The document store remains
// authoritative; the index is a rebuildable projection, so implementations
// may trade durability for speed.
type Index interface {
	// Upsert inserts or replaces the document stored under id.
	Upsert(ctx context.Context, id string, doc Document) error
	// Search evaluates a structured boolean request and returns one page of
	// hits plus the total match count.
	Search(ctx context.Context, req Request) (*Result, error)
}

// Config holds configuration for the search index.
type Config struct {
	// Path is the on-disk location of the bleve index.
	Path string `mapstructure:"path" default:"novelhub.bleve"`
}
