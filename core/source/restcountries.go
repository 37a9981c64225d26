// ABOUTME: REST Countries adapter fetches the full country list over HTTP
// ABOUTME: Checks the status, decodes, normalizes, sorts, and optionally caches the result

package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"

	"countries-app-api/core/domain"
	coreerrors "countries-app-api/core/errors"
	"countries-app-api/core/interfaces"
	"countries-app-api/core/search"
)

// DefaultEndpoint requests only the fields the application uses
const DefaultEndpoint = "https://restcountries.com/v3.1/all?fields=name,flags,capital,region,population,cca2,cca3"

// Options configures a RESTCountries source
type Options struct {
	// Endpoint is the full URL returning the country list; DefaultEndpoint when empty
	Endpoint string

	// Locale drives the collation used to sort by common name
	Locale language.Tag

	// CacheTTL is how long a successful response stays cached. Zero disables caching.
	CacheTTL time.Duration
}

// RESTCountries implements interfaces.CountrySource against the REST Countries API
type RESTCountries struct {
	deps     interfaces.Dependencies
	endpoint string
	locale   language.Tag
	cacheTTL time.Duration
}

// NewRESTCountries creates a new REST Countries source
func NewRESTCountries(deps interfaces.Dependencies, opts Options) *RESTCountries {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &RESTCountries{
		deps:     deps,
		endpoint: endpoint,
		locale:   opts.Locale,
		cacheTTL: opts.CacheTTL,
	}
}

// Endpoint returns the URL the source reads from
func (r *RESTCountries) Endpoint() string {
	return r.endpoint
}

// CacheKey returns the key under which responses are cached
func (r *RESTCountries) CacheKey() string {
	return "countries:all:" + r.endpoint
}

// FetchCountries retrieves all countries. Every returned country has a
// non-nil Capital slice and the list is sorted by common name.
func (r *RESTCountries) FetchCountries(ctx context.Context) ([]domain.Country, error) {
	if countries, ok := r.fromCache(ctx); ok {
		return countries, nil
	}

	if r.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := r.deps.HTTPClient.Get(ctx, r.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		r.deps.Logger.Warn("Country source returned non-success status", map[string]interface{}{
			"endpoint": r.endpoint,
			"status":   resp.StatusCode(),
		})
		return nil, &coreerrors.HTTPStatusError{StatusCode: resp.StatusCode()}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var countries []domain.Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, &coreerrors.ParseError{Resource: "countries", Err: err}
	}
	if countries == nil {
		countries = []domain.Country{}
	}

	for i := range countries {
		countries[i].EnsureCapital()
	}
	search.SortByCommonName(countries, r.locale)

	r.toCache(ctx, countries)
	return countries, nil
}

func (r *RESTCountries) fromCache(ctx context.Context) ([]domain.Country, bool) {
	if r.deps.Cache == nil || r.cacheTTL <= 0 {
		return nil, false
	}

	data, err := r.deps.Cache.Get(ctx, r.CacheKey())
	if err != nil || data == nil {
		return nil, false
	}

	var countries []domain.Country
	if err := json.Unmarshal(data, &countries); err != nil {
		r.deps.Logger.Warn("Discarding unreadable cached countries", map[string]interface{}{
			"key":   r.CacheKey(),
			"error": err.Error(),
		})
		return nil, false
	}

	for i := range countries {
		countries[i].EnsureCapital()
	}
	r.deps.Logger.Debug("Countries served from cache", map[string]interface{}{
		"key":   r.CacheKey(),
		"count": len(countries),
	})
	return countries, true
}

func (r *RESTCountries) toCache(ctx context.Context, countries []domain.Country) {
	if r.deps.Cache == nil || r.cacheTTL <= 0 || len(countries) == 0 {
		return
	}

	data, err := json.Marshal(countries)
	if err != nil {
		return
	}
	if err := r.deps.Cache.Set(ctx, r.CacheKey(), data, r.cacheTTL); err != nil {
		r.deps.Logger.Warn("Failed to cache countries", map[string]interface{}{
			"key":   r.CacheKey(),
			"error": err.Error(),
		})
	}
}
