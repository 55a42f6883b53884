package common

import (
	"path"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryCacheService is the in-memory CacheStore used for development and
// tests. Production deployments use RedisCacheService.
type MemoryCacheService struct {
	cache *cache.Cache
}

// Ensure MemoryCacheService implements CacheStore
var _ CacheStore = (*MemoryCacheService)(nil)

func NewMemoryCacheService(defaultExpiration, cleanUpInterval time.Duration) *MemoryCacheService {
	return &MemoryCacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *MemoryCacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *MemoryCacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *MemoryCacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// DeletePattern walks the item map and drops every key matching the
// glob pattern. go-cache has no native pattern support, so this is a
// linear scan; the view cache stays small because of the short TTL.
func (cs *MemoryCacheService) DeletePattern(pattern string) (int, error) {
	evicted := 0
	for key := range cs.cache.Items() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return evicted, err
		}
		if matched {
			cs.cache.Delete(key)
			evicted++
		}
	}
	return evicted, nil
}

func (cs *MemoryCacheService) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	cs.Set(key, val, duration)
	return val, nil
}

// Flush drops all entries.
func (cs *MemoryCacheService) Flush() error {
	cs.cache.Flush()
	return nil
}

// Close closes the cache (no-op for in-memory cache)
func (cs *MemoryCacheService) Close() error {
	return nil
}
