// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, and the catch-all redirect to /countries

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"countries-app-api/api/middleware"
	"countries-app-api/core/interfaces"
)

// HomePath is where unmatched paths are redirected
const HomePath = "/countries"

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimiter is applied to every request when set
	RateLimiter *middleware.RateLimiter
}

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func newHumaConfig() huma.Config {
	config := huma.DefaultConfig("Countries API", "1.0.0")
	config.Info.Description = "Browse, search, and page through the countries of the world"
	return config
}

// redirectHome sends clients that hit an unknown path to the country list
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, HomePath, http.StatusFound)
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflights are answered before rate limiting
	router.Use(cors.Handler(corsOptions()))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	router.NotFound(redirectHome)

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, newHumaConfig())

	return api, router
}
