package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

const countriesKey = "countries:all:https://restcountries.com/v3.1/all"

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	payload := []byte(`[{"name":{"common":"Germany"}}]`)
	if err := cache.Set(ctx, countriesKey, payload, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, countriesKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Get returned %s, want %s", got, payload)
	}
}

func TestMemoryCache_Get_Miss(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "missing")

	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil for a missing key")
	}
}

func TestMemoryCache_Get_Expired(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, countriesKey, []byte("[]"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	got, err := cache.Get(ctx, countriesKey)
	if err == nil {
		t.Error("Get should return error for an expired key")
	}
	if got != nil {
		t.Error("Get should return nil for an expired key")
	}
}

func TestMemoryCache_Set_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, countriesKey, []byte("[]"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, countriesKey); err != nil {
		t.Errorf("value with zero TTL should still be present: %v", err)
	}
}

func TestMemoryCache_Set_Overwrites(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, countriesKey, []byte("first"), time.Hour)
	_ = cache.Set(ctx, countriesKey, []byte("second"), time.Hour)

	got, err := cache.Get(ctx, countriesKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get returned %s, want second", got)
	}
}

func TestMemoryCache_ValuesAreCopied(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	payload := []byte("abc")
	_ = cache.Set(ctx, countriesKey, payload, time.Hour)
	payload[0] = 'X'

	got, _ := cache.Get(ctx, countriesKey)
	if string(got) != "abc" {
		t.Errorf("stored value changed with caller slice: %s", got)
	}

	got[1] = 'Y'
	again, _ := cache.Get(ctx, countriesKey)
	if string(again) != "abc" {
		t.Errorf("stored value changed with returned slice: %s", again)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, countriesKey, []byte("[]"), time.Hour)
	if err := cache.Delete(ctx, countriesKey); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, countriesKey); err == nil {
		t.Error("Get should fail after Delete")
	}

	if err := cache.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of a missing key should succeed, got %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, countriesKey); !errors.Is(err, context.Canceled) {
		t.Errorf("Get error = %v, want context.Canceled", err)
	}
	if err := cache.Set(ctx, countriesKey, []byte("[]"), time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Set error = %v, want context.Canceled", err)
	}
	if err := cache.Delete(ctx, countriesKey); !errors.Is(err, context.Canceled) {
		t.Errorf("Delete error = %v, want context.Canceled", err)
	}
}

func TestMemoryCache_JanitorPurgesExpired(t *testing.T) {
	cache := NewMemoryCacheWithCleanup(5 * time.Millisecond)
	ctx := context.Background()

	_ = cache.Set(ctx, "short", []byte("1"), 5*time.Millisecond)
	_ = cache.Set(ctx, "long", []byte("2"), time.Hour)

	time.Sleep(50 * time.Millisecond)

	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1 after janitor run", cache.Len())
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = cache.Set(ctx, countriesKey, []byte("[]"), time.Minute)
				_, _ = cache.Get(ctx, countriesKey)
			}
		}()
	}
	wg.Wait()
}
