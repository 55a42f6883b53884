package common

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cs := NewMemoryCacheService(time.Minute, time.Minute)

	cs.Set("flight_view:list", "payload", time.Minute)
	val, found := cs.Get("flight_view:list")
	if !found {
		t.Fatal("expected hit")
	}
	if val.(string) != "payload" {
		t.Errorf("got %v", val)
	}

	if _, found := cs.Get("missing"); found {
		t.Error("expected miss")
	}
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	cs := NewMemoryCacheService(time.Minute, time.Minute)

	cs.Set("flight_view:list", 1, time.Minute)
	cs.Set("flight_view:detail:f1", 2, time.Minute)
	cs.Set("order_view:user:u1:list", 3, time.Minute)

	evicted, err := cs.DeletePattern("*flight_view*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evicted != 2 {
		t.Errorf("expected 2 evictions, got %d", evicted)
	}
	if _, found := cs.Get("flight_view:list"); found {
		t.Error("flight list should be gone")
	}
	if _, found := cs.Get("order_view:user:u1:list"); !found {
		t.Error("order view must survive")
	}
}

func TestMemoryCache_DeletePatternDoesNotMatchOtherKinds(t *testing.T) {
	cs := NewMemoryCacheService(time.Minute, time.Minute)

	cs.Set("airplane_view:list", 1, time.Minute)
	cs.Set("airplane_type_view:list", 2, time.Minute)

	if _, err := cs.DeletePattern("*airplane_view*"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := cs.Get("airplane_type_view:list"); !found {
		t.Error("airplane_type views must not match the airplane pattern")
	}
	if _, found := cs.Get("airplane_view:list"); found {
		t.Error("airplane view should be gone")
	}
}

func TestMemoryCache_GetOrSet(t *testing.T) {
	cs := NewMemoryCacheService(time.Minute, time.Minute)

	loads := 0
	loader := func() (any, error) {
		loads++
		return "fresh", nil
	}

	for i := 0; i < 3; i++ {
		val, err := cs.GetOrSet("key", time.Minute, loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val.(string) != "fresh" {
			t.Errorf("got %v", val)
		}
	}
	if loads != 1 {
		t.Errorf("loader should run once, ran %d times", loads)
	}
}
