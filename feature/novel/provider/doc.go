// Package provider defines the adapter contract for external source sites.
//
// A provider adapter returns the current remote snapshot of a work (metadata
// plus an ordered table of contents) or a rank listing. Failures carry a
// kind: NotFound, Transient, or Permanent, so the synchronization service can
// decide between surfacing the error and serving the stale local copy.
//
// The HTTPProvider adapter talks to a scraping gateway's JSON API;
// site-specific scraping logic stays out of this repository.
package provider
