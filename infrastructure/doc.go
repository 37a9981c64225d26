// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache on patrickmn/go-cache
// - cache/redis: Redis-based cache shared between instances
// - cache/sqlite: File-backed cache that survives restarts
// - http/standard: net/http client with retry logic
// - logger/logrus: logrus logger with optional rotating file output
//
// # Cache Implementations
//
// All caches store the raw upstream payload under a string key:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "countries:all:"+endpoint, payload, 10*time.Minute)
//	value, err := cache.Get(ctx, "countries:all:"+endpoint)
//
// Redis:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// SQLite:
//
//	cache, err := sqlite.NewSQLiteCache("countries-cache.db")
//	defer cache.Close()
//
// # HTTP Client
//
// The HTTP client retries transport failures and 5xx answers:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://restcountries.com/v3.1/all")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Countries loaded", map[string]interface{}{
//	    "count": 250,
//	})
package infrastructure
