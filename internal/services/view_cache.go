package services

import (
	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/metrics"
)

// cachedView serves a read view through the cache. Loader errors are
// never cached, so a NotFound today does not mask tomorrow's row.
func cachedView(cache common.CacheStore, reg *metrics.MetricsRegistry, key string, kind constants.EntityKind, loader func() (any, error)) (any, error) {
	if cache == nil {
		return loader()
	}
	if val, found := cache.Get(key); found {
		if reg != nil {
			reg.CacheHitsTotal.WithLabelValues(kind.String()).Inc()
		}
		return val, nil
	}
	if reg != nil {
		reg.CacheMissesTotal.WithLabelValues(kind.String()).Inc()
	}
	val, err := loader()
	if err != nil {
		return nil, err
	}
	cache.Set(key, val, constants.ViewCacheTTL)
	return val, nil
}
