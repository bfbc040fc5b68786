// Package index defines the search index contract and its adapters.
//
// The document store is authoritative; the index holds a search-optimized
// projection of each work and can be rebuilt from the store at any time
// (see the reindex command). Queries arrive as a neutral boolean Request
// produced by the search feature's query compiler, so the compiler stays
// free of any engine-specific query vocabulary.
//
// # Adapters
//
//   - Bleve: persistent on-disk index, the production adapter.
//   - Memory: linear-scan in-process index for tests and small deployments.
package index
