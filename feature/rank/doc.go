// Package rank serves provider rank listings joined with locally cached
// work metadata.
//
// Listings are fetched live from the provider and held in Redis for a
// configurable TTL keyed by provider and listing options. The per-work store
// join is not cached, so outline columns reflect current local state.
package rank
