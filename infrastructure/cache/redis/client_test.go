package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countries-app-api/pkg/config"
)

const countriesKey = "countries:all:https://restcountries.com/v3.1/all"

func setupRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)

	cache, err := NewRedisCache(config.RedisConfig{Address: s.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, s
}

func TestNewRedisCache_EmptyAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{})

	assert.Error(t, err)
	assert.Nil(t, cache)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	cache, err := NewRedisCache(config.RedisConfig{Address: addr})

	assert.Error(t, err)
	assert.Nil(t, cache)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, s := setupRedisCache(t)
	ctx := context.Background()

	payload := []byte(`[{"name":{"common":"Åland Islands"}}]`)
	require.NoError(t, cache.Set(ctx, countriesKey, payload, time.Minute))

	got, err := cache.Get(ctx, countriesKey)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, time.Minute, s.TTL(countriesKey))
}

func TestRedisCache_Get_Miss(t *testing.T) {
	cache, _ := setupRedisCache(t)

	got, err := cache.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCache_Expiry(t *testing.T) {
	cache, s := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, countriesKey, []byte("[]"), 50*time.Millisecond))
	s.FastForward(100 * time.Millisecond)

	_, err := cache.Get(ctx, countriesKey)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_ZeroTTLNeverExpires(t *testing.T) {
	cache, s := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, countriesKey, []byte("[]"), 0))
	s.FastForward(24 * time.Hour)

	_, err := cache.Get(ctx, countriesKey)
	assert.NoError(t, err)
	assert.Equal(t, time.Duration(0), s.TTL(countriesKey))
}

func TestRedisCache_Delete(t *testing.T) {
	cache, s := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, countriesKey, []byte("[]"), time.Minute))
	require.NoError(t, cache.Delete(ctx, countriesKey))
	assert.False(t, s.Exists(countriesKey))

	assert.NoError(t, cache.Delete(ctx, "never-set"))
}

func TestRedisCache_ClosedClient(t *testing.T) {
	cache, _ := setupRedisCache(t)
	require.NoError(t, cache.Close())

	_, err := cache.Get(context.Background(), countriesKey)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
