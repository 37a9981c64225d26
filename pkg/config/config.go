// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Reads settings with cleanenv and checks them with go-playground/validator

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Countries contains data source and browsing configuration
	Countries CountriesConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `env:"PORT" env-default:"8000" validate:"required,numeric"`

	// RefreshTimer is the interval in minutes between background reloads; 0 disables them
	RefreshTimer int `env:"REFRESH_TIMER" env-default:"0" validate:"gte=0"`
}

// CountriesConfig holds the country source and store settings
type CountriesConfig struct {
	// Endpoint is the URL returning the full country list
	Endpoint string `env:"COUNTRIES_ENDPOINT" env-default:"https://restcountries.com/v3.1/all?fields=name,flags,capital,region,population,cca2,cca3" validate:"required,url"`

	// Locale is the BCP 47 tag used to order countries by name
	Locale string `env:"COUNTRIES_LOCALE" env-default:"und" validate:"required"`

	// PageSize is the number of countries per page
	PageSize int `env:"COUNTRIES_PAGE_SIZE" env-default:"15" validate:"gte=1,lte=250"`

	// HTTPTimeout bounds a single upstream request
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" env-default:"30s" validate:"gt=0"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend
	Type string `env:"CACHE_TYPE" env-default:"memory" validate:"oneof=memory redis sqlite none"`

	// TTL is how long an upstream response stays cached; 0 disables response caching
	TTL time.Duration `env:"CACHE_TTL" env-default:"10m" validate:"gte=0"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `env:"REDIS_ADDRESS" env-default:"localhost:6379"`

	// Password is the Redis authentication password
	Password string `env:"REDIS_PASSWORD"`

	// DB is the Redis database number
	DB int `env:"REDIS_DB" env-default:"0" validate:"gte=0"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string `env:"SQLITE_PATH" env-default:"countries-cache.db"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the janitor interval for cache entries in seconds
	DefaultExpiration int `env:"MEMORY_CACHE_EXPIRATION" env-default:"3600" validate:"gte=1"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" env-default:"text" validate:"oneof=text json"`

	// File, when set, receives rotated log output in addition to stderr
	File string `env:"LOG_FILE"`
}

// RateLimitConfig holds per-client limits
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained rate per client IP
	RequestsPerMinute int `env:"RATE_LIMIT" env-default:"120" validate:"gte=1"`

	// Burst is the number of requests allowed at once
	Burst int `env:"RATE_BURST" env-default:"20" validate:"gte=1"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	return nil
}

// RefreshInterval returns the background refresh interval, 0 when disabled
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Server.RefreshTimer) * time.Minute
}

// Usage returns a description of every supported environment variable
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
