// Package novel implements the work metadata synchronization feature.
//
// It provides read-through access to work metadata by reconciling two sources
// of truth:
//  1. Providers (HTTP gateway): The live remote state of each work.
//  2. Database: The canonical local record, including human translations.
//
// # Synchronization Policy
//
// A read triggers a remote fetch only when the record is absent or older than
// the freshness window, and never when the work's pause flag is set. A failed
// refresh serves the cached record. Remote TOC snapshots are reconciled
// through the `merge` package, which preserves human-translated chapter
// titles and flags suspicious merges for review via the `audit` package.
//
// # Components
//
//   - Service: Orchestrates fetch, merge, persist, and the downstream cascade
//     into the search index and favorite relationships.
//   - CoverMirror: Copies remote cover images into object storage.
//   - Handler: Exposes HTTP endpoints for metadata reads and human edits.
//   - Feature: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET  /novels/:provider/:id                    : Get (and maybe refresh) metadata.
//   - POST /novels/:provider/:id/visit              : Record a visit.
//   - PUT  /novels/:provider/:id/translation        : Apply human translations.
//   - PUT  /novels/:provider/:id/glossary           : Replace the glossary.
//   - PUT  /novels/:provider/:id/progress/:engine   : Record engine progress.
//   - PUT  /novels/:provider/:id/library-link       : Set the archive link.
//   - PUT  /novels/:provider/:id/pause              : Toggle refetching.
package novel
