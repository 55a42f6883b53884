package services

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
)

// recordingCache records DeletePattern calls and can be made to fail.
type recordingCache struct {
	mu       sync.Mutex
	patterns []string
	failWith error
}

func (c *recordingCache) Set(key string, value interface{}, d time.Duration) {}
func (c *recordingCache) Get(key string) (interface{}, bool)                 { return nil, false }
func (c *recordingCache) Delete(key string)                                  {}
func (c *recordingCache) Flush() error                                       { return nil }
func (c *recordingCache) Close() error                                       { return nil }

func (c *recordingCache) DeletePattern(pattern string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, pattern)
	if c.failWith != nil {
		return 0, c.failWith
	}
	return 1, nil
}

func (c *recordingCache) GetOrSet(key string, d time.Duration, loader func() (any, error)) (interface{}, error) {
	return loader()
}

var _ common.CacheStore = (*recordingCache)(nil)

func (c *recordingCache) sorted() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]string(nil), c.patterns...)
	sort.Strings(out)
	return out
}

func TestCacheInvalidator_Registrations(t *testing.T) {
	inv := NewCacheInvalidator(&recordingCache{}, nil)

	cases := []struct {
		kind constants.EntityKind
		want []string
	}{
		{constants.KindAirport, []string{"*airport_view*"}},
		{constants.KindRoute, []string{"*route_view*", "*flight_view*"}},
		{constants.KindAirplane, []string{"*airplane_view*", "*flight_view*"}},
		{constants.KindAirplaneType, []string{"*airplane_type_view*", "*airplane_view*", "*flight_view*"}},
		{constants.KindCrew, []string{"*crew_view*", "*flight_view*"}},
		{constants.KindFlight, []string{"*flight_view*"}},
		{constants.KindOrder, []string{"*order_view*"}},
		{constants.KindTicket, []string{"*ticket_view*", "*flight_view*"}},
	}
	for _, tc := range cases {
		got := inv.Patterns(tc.kind)
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.kind, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.kind, got, tc.want)
				break
			}
		}
	}
}

func TestCacheInvalidator_OnMutated_EvictsAllPatterns(t *testing.T) {
	cache := &recordingCache{}
	inv := NewCacheInvalidator(cache, nil)

	inv.OnMutated(constants.KindCrew, "crew-1")

	got := cache.sorted()
	want := []string{"*crew_view*", "*flight_view*"}
	if len(got) != len(want) {
		t.Fatalf("got patterns %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got patterns %v, want %v", got, want)
		}
	}
}

func TestCacheInvalidator_OnMutated_SwallowsEvictionFailure(t *testing.T) {
	cache := &recordingCache{failWith: errors.New("redis gone")}
	inv := NewCacheInvalidator(cache, nil)

	// Must not panic or propagate: the caller's write already committed.
	inv.OnMutated(constants.KindOrder, "order-1")

	if len(cache.sorted()) == 0 {
		t.Error("eviction was never attempted")
	}
}

func TestCacheInvalidator_OnMutated_EvictsStoredViews(t *testing.T) {
	cache := common.NewMemoryCacheService(time.Minute, time.Minute)
	cache.Set("flight_view:list", "stale", time.Minute)
	cache.Set("flight_view:detail:f1", "stale", time.Minute)
	cache.Set("airport_view:list", "fresh", time.Minute)

	inv := NewCacheInvalidator(cache, nil)
	inv.OnMutated(constants.KindTicket, "order-1")

	if _, found := cache.Get("flight_view:list"); found {
		t.Error("flight list view should be evicted after a ticket mutation")
	}
	if _, found := cache.Get("flight_view:detail:f1"); found {
		t.Error("flight detail view should be evicted after a ticket mutation")
	}
	if _, found := cache.Get("airport_view:list"); !found {
		t.Error("airport view must survive a ticket mutation")
	}
}
