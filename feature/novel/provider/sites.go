package provider

import (
	"time"

	"novel-hub/feature/novel/merge"
)

// Known provider sites exposed through the scraping gateway. The stability
// classification is a per-provider constant: syosetu and kakuyomu keep
// chapter identifiers fixed across refetches, alphapolis is known to
// renumber them.
const (
	Syosetu    = "syosetu"
	Kakuyomu   = "kakuyomu"
	Alphapolis = "alphapolis"
)

// Builtins returns the adapters for every known provider site, rooted at the
// scraping gateway base URL.
func Builtins(gatewayURL string, timeout time.Duration) []Provider {
	return []Provider{
		NewHTTP(Syosetu, gatewayURL+"/"+Syosetu, merge.Stable, timeout),
		NewHTTP(Kakuyomu, gatewayURL+"/"+Kakuyomu, merge.Stable, timeout),
		NewHTTP(Alphapolis, gatewayURL+"/"+Alphapolis, merge.Unstable, timeout),
	}
}
