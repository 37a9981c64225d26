// ABOUTME: Main entry point for the Countries API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	"countries-app-api/api"
	"countries-app-api/api/handlers"
	"countries-app-api/api/middleware"
	"countries-app-api/core/countries"
	"countries-app-api/core/interfaces"
	"countries-app-api/core/source"
	"countries-app-api/core/workers"
	"countries-app-api/infrastructure/cache/memory"
	"countries-app-api/infrastructure/cache/redis"
	"countries-app-api/infrastructure/cache/sqlite"
	stdhttp "countries-app-api/infrastructure/http/standard"
	logruslogger "countries-app-api/infrastructure/logger/logrus"
	"countries-app-api/pkg/config"
	"countries-app-api/pkg/featureflags"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println(config.Usage())
		return
	}

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.New(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting Countries API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"refresh_timer": cfg.Server.RefreshTimer,
		"flags":         flags.GetAllFlags(),
	})

	ctx := featureflags.WithManager(context.Background(), flags)

	cache, closeCache := newCache(cfg, logger, flags.IsEnabled(ctx, featureflags.CacheEnabled))
	defer closeCache()

	locale, err := language.Parse(cfg.Countries.Locale)
	if err != nil {
		logger.Warn("Unknown locale, using root collation", map[string]interface{}{
			"locale": cfg.Countries.Locale,
			"error":  err.Error(),
		})
		locale = language.Und
	}

	// Create HTTP client with upstream logging
	httpClient := stdhttp.NewStandardHTTPClientWithTransport(cfg.Countries.HTTPTimeout, &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	countrySource := source.NewRESTCountries(deps, source.Options{
		Endpoint: cfg.Countries.Endpoint,
		Locale:   locale,
		CacheTTL: cfg.Cache.TTL,
	})

	store := countries.NewStore(countrySource,
		countries.WithLogger(logger),
		countries.WithPageSize(cfg.Countries.PageSize),
		countries.WithLocale(locale),
	)

	// Initial load; failures are kept in the store and surfaced through the API
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.Countries.HTTPTimeout)
	store.Load(loadCtx)
	cancelLoad()

	// Background refresh
	var refresher *workers.RefreshWorker
	if interval := cfg.RefreshInterval(); interval > 0 && flags.IsEnabled(ctx, featureflags.RefreshEnabled) {
		refresher = workers.NewRefreshWorker(store, workers.RefreshConfig{
			Interval: interval,
			Timeout:  cfg.Countries.HTTPTimeout,
		}, logger)
		if err := refresher.Start(); err != nil {
			logger.Error("Failed to start refresh worker", map[string]interface{}{
				"error": err.Error(),
			})
			refresher = nil
		}
	}

	// Create API with middleware
	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		defer apiConfig.RateLimiter.Close()
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewCountriesHandler(store).RegisterRoutes(humaAPI)
	handlers.NewSearchHandler(store, flags).RegisterRoutes(humaAPI)

	errorLog := logger.Writer()
	defer errorLog.Close()

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Countries.HTTPTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     log.New(errorLog, "", 0),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	if refresher != nil {
		refresher.Stop()
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured response cache. A backend that fails to
// open falls back to memory. The returned func releases the backend.
func newCache(cfg *config.Config, logger interfaces.Logger, enabled bool) (interfaces.Cache, func()) {
	noop := func() {}

	if !enabled || cfg.Cache.Type == "none" || cfg.Cache.TTL <= 0 {
		logger.Info("Response cache disabled", nil)
		return nil, noop
	}

	fallback := func(err error) (interfaces.Cache, func()) {
		logger.Error("Failed to open cache, falling back to memory", map[string]interface{}{
			"type":  cfg.Cache.Type,
			"error": err.Error(),
		})
		return memory.NewMemoryCacheWithCleanup(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second), noop
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			return fallback(err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, func() { redisCache.Close() }
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			return fallback(err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, func() { sqliteCache.Close() }
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCacheWithCleanup(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second), noop
	}
}
