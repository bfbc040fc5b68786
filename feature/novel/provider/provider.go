package provider

import (
	"context"
	"sort"
	"strings"

	"novel-hub/feature/novel/merge"
	"novel-hub/feature/novel/models"
)

// Provider is the adapter contract for one external source site. Per-site
// scraping logic lives behind this interface; the synchronization service
// only sees snapshots.
type Provider interface {
	// Name returns the provider identifier.
	Name() string
	// Stability reports whether this provider's chapter identifiers can be
	// trusted across refetches.
	Stability() merge.Stability
	// FetchMetadata returns the current remote snapshot of a work. Failures
	// are typed: NotFound, Transient, or Permanent.
	FetchMetadata(ctx context.Context, workID string) (*models.RemoteWork, error)
	// FetchRank returns a rank listing for the given options.
	FetchRank(ctx context.Context, opts RankOptions) ([]models.RankItem, error)
}

// RankOptions selects one of a provider's rank listings (genre, period, ...).
type RankOptions map[string]string

// Key returns a deterministic cache key fragment for the options.
func (o RankOptions) Key() string {
	if len(o) == 0 {
		return "default"
	}
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+o[k])
	}
	return strings.Join(parts, "&")
}
