// ABOUTME: Configuration options for the countries library client
// ABOUTME: Provides the functional options pattern for client configuration

package countries

import (
	"time"

	"golang.org/x/text/language"

	"countries-app-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// Cache stores upstream responses; nil disables response caching
	Cache interfaces.Cache

	// HTTPClient fetches the country list
	HTTPClient interfaces.HTTPClient

	// Logger receives load and refresh events
	Logger interfaces.Logger

	// Endpoint is the URL returning the full country list
	Endpoint string

	// PageSize is the number of countries per page
	PageSize int

	// Locale orders countries by common name
	Locale language.Tag

	// CacheTTL is how long a response stays in Cache
	CacheTTL time.Duration

	// RefreshInterval reloads the collection in the background when positive
	RefreshInterval time.Duration
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithCacheTTL sets how long upstream responses stay cached
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative")
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithEndpoint overrides the country list URL
func WithEndpoint(endpoint string) Option {
	return func(c *Config) error {
		if endpoint == "" {
			return NewError(ErrorTypeConfiguration, "endpoint cannot be empty")
		}
		c.Endpoint = endpoint
		return nil
	}
}

// WithPageSize sets the number of countries per page
func WithPageSize(size int) Option {
	return func(c *Config) error {
		if size < 1 {
			return NewError(ErrorTypeConfiguration, "page size must be at least 1").
				WithContext("page_size", size)
		}
		c.PageSize = size
		return nil
	}
}

// WithLocale sets the collation locale from a BCP 47 tag such as "sv" or "und"
func WithLocale(tag string) Option {
	return func(c *Config) error {
		parsed, err := language.Parse(tag)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid locale").
				WithCause(err).
				WithContext("locale", tag)
		}
		c.Locale = parsed
		return nil
	}
}

// WithRefreshInterval reloads the collection in the background
func WithRefreshInterval(interval time.Duration) Option {
	return func(c *Config) error {
		c.RefreshInterval = interval
		return nil
	}
}

// WithQuietMode suppresses all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = interfaces.NopLogger{}
		return nil
	}
}
