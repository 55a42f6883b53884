package common

import "time"

// CacheStore is the contract every cache backend implements. The booking
// and reference services receive it injected; nothing imports a concrete
// backend directly.
type CacheStore interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// Delete removes a value from cache by key
	Delete(key string)

	// DeletePattern removes every key matching the glob-style pattern,
	// e.g. "*flight_view*". Returns the number of keys evicted.
	DeletePattern(pattern string) (int, error)

	// GetOrSet retrieves a value from cache, or loads it using the loader function if not found
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Flush drops every entry. Called on shutdown so no stale views
	// survive a restart with a changed schema.
	Flush() error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
