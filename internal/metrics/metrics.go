// Package metrics provides application-level counters using stdlib expvar.
// Counters are automatically exported on the /debug/vars HTTP endpoint
// when expvar's handler is mounted by the API server.
package metrics

import "expvar"

// Catalog counters.
var (
	CatalogRequests      = expvar.NewInt("d360_catalog_requests_total")
	CatalogRequestErrors = expvar.NewInt("d360_catalog_request_errors_total")
	DecodeErrors         = expvar.NewInt("d360_decode_errors_total")
	CacheHits            = expvar.NewInt("d360_cache_hits_total")
	CacheMisses          = expvar.NewInt("d360_cache_misses_total")
	TruncatedPages       = expvar.NewInt("d360_truncated_pages_total")
	DiffsComputed        = expvar.NewInt("d360_diffs_computed_total")
)

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }
